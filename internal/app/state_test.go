package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seatmap/internal/venue"
	"seatmap/internal/view"
	"seatmap/pkg/geometry"
)

func testState(t *testing.T) *State {
	t.Helper()
	s := NewState([]byte("test-key"))
	sec := &venue.Section{
		ID:            "sec-1",
		Kind:          venue.KindStraight,
		Label:         "A",
		PricingTierID: "standard",
		Seats: []*venue.Seat{
			{ID: "s1", Label: "A1", X: 100, Y: 100, SectionID: "sec-1", Status: venue.StatusAvailable, PricingTierID: "standard"},
		},
	}
	require.NoError(t, s.Venue.AddSection(0, sec))
	return s
}

func TestEvents(t *testing.T) {
	s := testState(t)

	var got []interface{}
	s.On(EventModified, func(data interface{}) { got = append(got, data) })

	s.SetModified(true)
	require.Len(t, got, 1)
	assert.Equal(t, true, got[0])
}

func TestModeSwitchClearsSelectionAndArmsGuard(t *testing.T) {
	s := testState(t)
	s.Selection.Replace("s1")

	s.SetMode(ModeConsumer)
	assert.Equal(t, ModeConsumer, s.Mode())
	assert.Equal(t, 0, s.Selection.Len())
	assert.True(t, s.Controller.ConsumerMode)

	s.SetMode(ModeBuilder)
	assert.False(t, s.Controller.ConsumerMode)
}

func TestSwitchTierClearsSelection(t *testing.T) {
	s := testState(t)
	s.Selection.Replace("s1")

	require.NoError(t, s.SwitchTier(1))
	assert.Equal(t, 0, s.Selection.Len())

	assert.ErrorIs(t, s.SwitchTier(9), venue.ErrInvalidTier)
}

func TestSetSelectedStatus(t *testing.T) {
	s := testState(t)
	s.Selection.Replace("s1")

	require.NoError(t, s.SetSelectedStatus(venue.StatusBlocked))
	assert.Equal(t, venue.StatusBlocked, s.Venue.FindSeat("s1").Status)
	assert.True(t, s.Modified)
}

func TestSaveAndLoadVenue(t *testing.T) {
	s := testState(t)
	s.Venue.Name = "Test Hall"
	path := filepath.Join(t.TempDir(), "test-hall.venue.json")

	var saved, loaded bool
	s.On(EventVenueSaved, func(interface{}) { saved = true })
	s.On(EventVenueLoaded, func(interface{}) { loaded = true })

	require.NoError(t, s.SaveVenue(path))
	assert.True(t, saved)
	assert.False(t, s.Modified)
	assert.Equal(t, path, s.ProjectPath)

	s.Venue.Name = "Changed"
	require.NoError(t, s.LoadVenue(path))
	assert.True(t, loaded)
	assert.Equal(t, "Test Hall", s.Venue.Name)
	assert.NotNil(t, s.Venue.FindSeat("s1"))
}

func TestLoadBadFileKeepsVenue(t *testing.T) {
	s := testState(t)
	s.Venue.Name = "Keep Me"

	path := filepath.Join(t.TempDir(), "broken.venue.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	assert.Error(t, s.LoadVenue(path))
	assert.Equal(t, "Keep Me", s.Venue.Name)
}

func TestViewFromSeatFramesNearestStage(t *testing.T) {
	s := testState(t)
	near := &venue.Stage{ID: "st-near", Label: "Near", X: 50, Y: -100, Width: 100, Height: 50, Shape: venue.ShapeRectangle}
	far := &venue.Stage{ID: "st-far", Label: "Far", X: 2000, Y: -100, Width: 100, Height: 50, Shape: venue.ShapeRectangle}
	require.NoError(t, s.Venue.AddStage(far))
	require.NoError(t, s.Venue.AddStage(near))

	viewport := geometry.NewSize(800, 600)
	require.NoError(t, s.ViewFromSeat("s1", viewport))
	got := *s.Camera

	nearBounds := near.Bounds()
	want, err := view.FrameSeat(geometry.Point2D{X: 100, Y: 100}, &nearBounds, viewport)
	require.NoError(t, err)
	assert.InDelta(t, want.Zoom, got.Zoom, 1e-9)
	assert.InDelta(t, want.Pan.X, got.Pan.X, 1e-9)
	assert.InDelta(t, want.Pan.Y, got.Pan.Y, 1e-9)
}

func TestToggleCartSeat(t *testing.T) {
	s := testState(t)

	require.NoError(t, s.ToggleCartSeat("s1"))
	assert.True(t, s.Cart.Contains("s1"))
	assert.Equal(t, 100.0, s.Cart.Total())

	assert.ErrorIs(t, s.ToggleCartSeat("missing"), venue.ErrNotFound)
}
