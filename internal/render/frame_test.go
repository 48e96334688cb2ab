package render

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seatmap/internal/selection"
	"seatmap/internal/venue"
	"seatmap/internal/view"
	"seatmap/pkg/geometry"
)

func frameMap(t *testing.T) *venue.Map {
	t.Helper()
	m := venue.NewDefaultMap()
	sec := &venue.Section{
		ID:            "sec-1",
		Kind:          venue.KindStraight,
		Label:         "A",
		PricingTierID: "standard",
		Seats: []*venue.Seat{
			{ID: "near", Label: "B1", X: 0, Y: 200, SectionID: "sec-1", Status: venue.StatusAvailable, PricingTierID: "standard"},
			{ID: "far", Label: "A1", X: 0, Y: 100, SectionID: "sec-1", Status: venue.StatusAvailable, PricingTierID: "standard"},
			{ID: "sold", Label: "A2", X: 25, Y: 100, SectionID: "sec-1", Status: venue.StatusSold, PricingTierID: "standard"},
		},
	}
	require.NoError(t, m.AddSection(0, sec))
	return m
}

func TestBuildFrameDepthOrder(t *testing.T) {
	m := frameMap(t)
	frame := BuildFrame(m, view.NewCamera(), selection.NewSet(), nil, nil)

	require.Len(t, frame.Seats, 3)
	// Farther seats (smaller y+z) paint first.
	assert.Equal(t, "far", frame.Seats[0].Seat.ID)
	assert.Equal(t, "near", frame.Seats[2].Seat.ID)
}

func TestSeatColors(t *testing.T) {
	m := frameMap(t)
	sel := selection.NewSet()
	sel.Replace("far")
	frame := BuildFrame(m, view.NewCamera(), sel, nil, nil)

	byID := map[string]SeatSprite{}
	for _, sp := range frame.Seats {
		byID[sp.Seat.ID] = sp
	}

	assert.Equal(t, colorSelected, byID["far"].Color)
	assert.Equal(t, colorSold, byID["sold"].Color)
	// Available takes the pricing tier color (standard, #3b82f6).
	assert.Equal(t, color.RGBA{R: 0x3b, G: 0x82, B: 0xf6, A: 0xff}, byID["near"].Color)
}

func TestFrameProjectionAndScale(t *testing.T) {
	m := venue.NewDefaultMap()
	sec := &venue.Section{
		ID: "sec-1", Kind: venue.KindStraight, Label: "B", PricingTierID: "standard",
		Seats: []*venue.Seat{
			{ID: "up", Label: "A1", X: 0, Y: 100, Z: 100, SectionID: "sec-1", Status: venue.StatusAvailable, PricingTierID: "standard"},
		},
	}
	require.NoError(t, m.AddSection(0, sec))

	frame := BuildFrame(m, view.NewCamera(), selection.NewSet(), nil, nil)
	require.Len(t, frame.Seats, 1)
	sp := frame.Seats[0]

	// Elevated seat draws above its plan position and larger than base.
	assert.Less(t, sp.Screen.Y, 100.0)
	assert.Greater(t, sp.Size, baseSeatSize)

	// With 3D off the projection is bypassed.
	m.Settings.Show3D = false
	frame = BuildFrame(m, view.NewCamera(), selection.NewSet(), nil, nil)
	assert.Equal(t, 100.0, frame.Seats[0].Screen.Y)
	assert.Equal(t, baseSeatSize, frame.Seats[0].Size)
}

func TestSectionLabelAtSeatCentroid(t *testing.T) {
	m := frameMap(t)
	cam := view.NewCamera()
	cam.SetZoom(2.0)
	cam.Pan = geometry.Point2D{X: 10, Y: 20}
	frame := BuildFrame(m, cam, selection.NewSet(), nil, nil)

	require.Len(t, frame.Labels, 1)
	lb := frame.Labels[0]
	assert.Equal(t, "A", lb.Text)
	// Seats at (0,200), (0,100), (25,100) average to (25/3, 400/3).
	want := cam.WorldToScreen(geometry.Point2D{X: 25.0 / 3, Y: 400.0 / 3})
	assert.InDelta(t, want.X, lb.Screen.X, 1e-9)
	assert.InDelta(t, want.Y, lb.Screen.Y, 1e-9)
}

func TestParseHexColor(t *testing.T) {
	assert.Equal(t, color.RGBA{R: 0xef, G: 0x44, B: 0x44, A: 0xff}, ParseHexColor("#ef4444"))
	assert.Equal(t, color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}, ParseHexColor("bogus"))
}

func TestPaintReturnsImage(t *testing.T) {
	m := frameMap(t)
	m.Settings.ShowGrid = false
	frame := BuildFrame(m, view.NewCamera(), selection.NewSet(), nil, nil)
	img := Paint(frame, 320, 240)
	require.NotNil(t, img)
	assert.Equal(t, 320, img.Bounds().Dx())
	assert.Equal(t, 240, img.Bounds().Dy())

	// Background fills the corner.
	assert.Equal(t, colorBackground, img.RGBAAt(0, 0))
}
