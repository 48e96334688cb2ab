package venue

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func demoSection() *Section {
	return &Section{
		ID:            "straight-section-1",
		Kind:          KindStraight,
		Label:         "Section A",
		TierID:        "orchestra",
		PricingTierID: "standard",
		Color:         "#3b82f6",
		Rows:          1,
		SeatsPerRow:   2,
		Seats: []*Seat{
			{ID: "s1", Label: "A1", X: 0, Y: 0, SectionID: "straight-section-1", Status: StatusAvailable, PricingTierID: "standard", Row: "A", Number: "1"},
			{ID: "s2", Label: "A2", X: 25, Y: 0, SectionID: "straight-section-1", Status: StatusAvailable, PricingTierID: "standard", Row: "A", Number: "2"},
		},
	}
}

func TestAddSectionInvalidTier(t *testing.T) {
	m := NewDefaultMap()
	err := m.AddSection(7, demoSection())
	assert.ErrorIs(t, err, ErrInvalidTier)

	err = m.AddSection(-1, demoSection())
	assert.ErrorIs(t, err, ErrInvalidTier)

	require.NoError(t, m.AddSection(0, demoSection()))
	assert.Equal(t, 1, m.ObjectCount())
}

func TestSwitchTier(t *testing.T) {
	m := NewDefaultMap()
	require.NoError(t, m.SwitchTier(2))
	assert.Equal(t, "Balcony", m.CurrentTierPlane().Name)

	assert.ErrorIs(t, m.SwitchTier(3), ErrInvalidTier)
	assert.Equal(t, 2, m.CurrentTier)
}

func TestSetSeatStatus(t *testing.T) {
	m := NewDefaultMap()
	require.NoError(t, m.AddSection(0, demoSection()))

	require.NoError(t, m.SetSeatStatus("s1", StatusSold))
	assert.Equal(t, StatusSold, m.FindSeat("s1").Status)

	err := m.SetSeatStatus("nope", StatusSold)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSeatStatusBookable(t *testing.T) {
	assert.True(t, StatusAvailable.Bookable())
	assert.True(t, StatusSelected.Bookable())
	assert.False(t, StatusSold.Bookable())
	assert.False(t, StatusReserved.Bookable())
}

func TestSectionOf(t *testing.T) {
	m := NewDefaultMap()
	sec := demoSection()
	require.NoError(t, m.AddSection(0, sec))

	got := m.SectionOf("s2")
	require.NotNil(t, got)
	assert.Equal(t, sec.ID, got.ID)
	assert.Nil(t, m.SectionOf("missing"))
}

func TestTierJSONRoundTrip(t *testing.T) {
	m := NewDefaultMap()
	require.NoError(t, m.AddSection(0, demoSection()))
	require.NoError(t, m.AddStage(&Stage{
		ID: "stage-1", Label: "Main Stage", X: 50, Y: -150,
		Width: 200, Height: 100, Shape: ShapeRectangle, Color: "#1f2937",
	}))

	data, err := json.Marshal(m)
	require.NoError(t, err)

	// Objects carry their discriminator on the wire.
	assert.Contains(t, string(data), `"type":"straight-section"`)
	assert.Contains(t, string(data), `"type":"stage"`)

	var back Map
	require.NoError(t, json.Unmarshal(data, &back))
	require.Len(t, back.Tiers, 3)
	require.Len(t, back.Tiers[0].Objects, 2)

	sec, ok := back.Tiers[0].Objects[0].(*Section)
	require.True(t, ok)
	assert.Equal(t, "Section A", sec.Label)
	require.Len(t, sec.Seats, 2)
	assert.Equal(t, "A2", sec.Seats[1].Label)

	st, ok := back.Tiers[0].Objects[1].(*Stage)
	require.True(t, ok)
	assert.Equal(t, "Main Stage", st.Label)
	assert.Equal(t, ShapeRectangle, st.Shape)
}

func TestTierJSONUnknownType(t *testing.T) {
	var tier Tier
	err := json.Unmarshal([]byte(`{"id":"t","objects":[{"type":"hologram"}]}`), &tier)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	m := NewDefaultMap()
	require.NoError(t, m.AddSection(0, demoSection()))
	assert.NoError(t, m.Validate())

	m.CurrentTier = 9
	assert.ErrorIs(t, m.Validate(), ErrInvalidTier)
	m.CurrentTier = 0

	sec := m.Tiers[0].Objects[0].(*Section)
	sec.Seats[0].PricingTierID = "gone"
	assert.ErrorIs(t, m.Validate(), ErrNotFound)
}

func TestObjectsFlatView(t *testing.T) {
	m := NewDefaultMap()
	require.NoError(t, m.AddSection(0, demoSection()))
	require.NoError(t, m.SwitchTier(2))
	require.NoError(t, m.AddStage(&Stage{ID: "stage-b", Label: "Balcony Bar"}))

	objs := m.Objects()
	require.Len(t, objs, 2)
	assert.Equal(t, "straight-section-1", objs[0].ObjectID())
	assert.Equal(t, "stage-b", objs[1].ObjectID())
}
