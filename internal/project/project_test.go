package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seatmap/internal/venue"
)

func demoVenue(t *testing.T) *venue.Map {
	t.Helper()
	m := venue.NewDefaultMap()
	m.Name = "Royal Concert Hall"
	sec := &venue.Section{
		ID:            "sec-1",
		Kind:          venue.KindCurved,
		Label:         "Balcony Center",
		PricingTierID: "balcony",
		StartAngle:    30,
		EndAngle:      150,
		InnerRadius:   80,
		OuterRadius:   200,
		Rows:          2,
		Seats: []*venue.Seat{
			{ID: "s1", Label: "A1", X: 69.3, Y: 40, SectionID: "sec-1", Status: venue.StatusSold, PricingTierID: "balcony", Row: "A", Number: "1"},
		},
	}
	require.NoError(t, m.AddSection(2, sec))
	return m
}

func TestExportFileName(t *testing.T) {
	assert.Equal(t, "royal-concert-hall.venue.json", ExportFileName("Royal Concert Hall"))
	assert.Equal(t, "club-x.venue.json", ExportFileName("  Club X "))
	assert.Equal(t, "venue.venue.json", ExportFileName(""))
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ExportFileName("Royal Concert Hall"))

	doc := New(demoVenue(t))
	require.NoError(t, doc.Save(path))

	back, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, FormatVersion, back.Version)
	assert.False(t, back.Modified.IsZero())
	require.NotNil(t, back.Venue)
	assert.Equal(t, "Royal Concert Hall", back.Venue.Name)

	sec, ok := back.Venue.Tiers[2].Objects[0].(*venue.Section)
	require.True(t, ok)
	assert.Equal(t, venue.KindCurved, sec.Kind)
	assert.Equal(t, 150.0, sec.EndAngle)
	require.Len(t, sec.Seats, 1)
	assert.Equal(t, venue.StatusSold, sec.Seats[0].Status)
}

func TestDecodeRejectsMalformed(t *testing.T) {
	_, err := Decode([]byte("{not json"))
	assert.ErrorIs(t, err, ErrParse)

	_, err = Decode([]byte(`{"version":1}`))
	assert.ErrorIs(t, err, ErrParse)

	// A structurally valid document whose venue fails validation is
	// rejected the same way.
	bad := demoVenue(t)
	bad.CurrentTier = 99
	data, err := New(bad).Encode()
	require.NoError(t, err)
	_, err = Decode(data)
	assert.ErrorIs(t, err, ErrParse)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.venue.json"))
	assert.True(t, os.IsNotExist(err))
}
