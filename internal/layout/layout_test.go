package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seatmap/internal/venue"
	"seatmap/pkg/geometry"
)

func testTier() *venue.Tier {
	return &venue.Tier{ID: "orchestra", Name: "Orchestra", Elevation: 0}
}

func testPricing() venue.PricingTier {
	return venue.PricingTier{ID: "standard", Name: "Standard", Price: 100, Color: "#3b82f6"}
}

func TestStraightGrid(t *testing.T) {
	sec, err := Straight(geometry.Point2D{X: 10, Y: 20}, testTier(), testPricing(), "A", StraightParams{
		Rows: 2, SeatsPerRow: 3, Spacing: 25, RowSpacing: 35,
	})
	require.NoError(t, err)
	require.Len(t, sec.Seats, 6)

	// Row A along y=20, row B offset by one row spacing.
	wantLabels := []string{"A1", "A2", "A3", "B1", "B2", "B3"}
	for i, seat := range sec.Seats {
		assert.Equal(t, wantLabels[i], seat.Label)
	}
	assert.Equal(t, 10.0, sec.Seats[0].X)
	assert.Equal(t, 20.0, sec.Seats[0].Y)
	assert.Equal(t, 35.0, sec.Seats[1].X)
	assert.Equal(t, 60.0, sec.Seats[2].X)
	assert.Equal(t, 55.0, sec.Seats[3].Y)
	assert.Equal(t, 10.0, sec.Seats[3].X)

	assert.Equal(t, venue.KindStraight, sec.Kind)
	assert.Equal(t, 75.0, sec.Width)
	assert.Equal(t, 70.0, sec.Height)
	for _, seat := range sec.Seats {
		assert.Equal(t, venue.StatusAvailable, seat.Status)
		assert.Equal(t, sec.ID, seat.SectionID)
	}
}

func TestCurvedRowEndpoints(t *testing.T) {
	sec, err := Curved(geometry.Point2D{X: 0, Y: 0}, testTier(), testPricing(), "Balcony", CurvedParams{
		StartAngle: 0, EndAngle: 180, InnerRadius: 100, OuterRadius: 200, Rows: 1,
	})
	require.NoError(t, err)

	// radius 100 over 180 degrees: floor(100*pi/20) = 15 seats.
	require.Len(t, sec.Seats, 15)

	first := sec.Seats[0]
	last := sec.Seats[len(sec.Seats)-1]
	assert.InDelta(t, 100.0, first.X, 1e-9)
	assert.InDelta(t, 0.0, first.Y, 1e-9)
	assert.InDelta(t, -100.0, last.X, 1e-9)
	assert.InDelta(t, 0.0, last.Y, 1e-9)

	// Both arc endpoints are occupied and the angle is recorded.
	assert.InDelta(t, 0.0, first.ViewAngle, 1e-9)
	assert.InDelta(t, 180.0, last.ViewAngle, 1e-9)
}

func TestCurvedEqualRadiiCollapsesToOneArc(t *testing.T) {
	// A zero-width annulus is legal: every row lands on the same radius.
	sec, err := Curved(geometry.Point2D{X: 0, Y: 0}, testTier(), testPricing(), "Rail", CurvedParams{
		StartAngle: 0, EndAngle: 180, InnerRadius: 100, OuterRadius: 100, Rows: 1,
	})
	require.NoError(t, err)
	require.Len(t, sec.Seats, 15)

	first := sec.Seats[0]
	last := sec.Seats[len(sec.Seats)-1]
	assert.InDelta(t, 100.0, first.X, 1e-9)
	assert.InDelta(t, 0.0, first.Y, 1e-9)
	assert.InDelta(t, -100.0, last.X, 1e-9)
	assert.InDelta(t, 0.0, last.Y, 1e-9)
}

func TestCurvedMinimumSeatsPerRow(t *testing.T) {
	// A tiny arc still gets 8 seats per row.
	sec, err := Curved(geometry.Point2D{}, testTier(), testPricing(), "Tight", CurvedParams{
		StartAngle: 0, EndAngle: 10, InnerRadius: 10, OuterRadius: 20, Rows: 2,
	})
	require.NoError(t, err)
	require.Len(t, sec.Seats, 16)
	for _, seat := range sec.Seats[:8] {
		assert.Equal(t, "A", seat.Row)
	}
	for _, seat := range sec.Seats[8:] {
		assert.Equal(t, "B", seat.Row)
	}
}

func TestCurvedRadiusStep(t *testing.T) {
	sec, err := Curved(geometry.Point2D{}, testTier(), testPricing(), "C", CurvedParams{
		StartAngle: 0, EndAngle: 90, InnerRadius: 80, OuterRadius: 200, Rows: 5,
	})
	require.NoError(t, err)

	// First seat of each row sits at angle 0, so its X is the row radius:
	// inner + row*(outer-inner)/rows.
	rowStarts := map[string]float64{}
	for _, seat := range sec.Seats {
		if seat.Number == "1" {
			rowStarts[seat.Row] = seat.X
		}
	}
	assert.InDelta(t, 80.0, rowStarts["A"], 1e-9)
	assert.InDelta(t, 104.0, rowStarts["B"], 1e-9)
	assert.InDelta(t, 176.0, rowStarts["E"], 1e-9)
}

func TestInvalidParams(t *testing.T) {
	_, err := Straight(geometry.Point2D{}, testTier(), testPricing(), "A", StraightParams{
		Rows: 0, SeatsPerRow: 5, Spacing: 25, RowSpacing: 35,
	})
	assert.ErrorIs(t, err, ErrInvalidParameters)

	_, err = Curved(geometry.Point2D{}, testTier(), testPricing(), "B", CurvedParams{
		StartAngle: 90, EndAngle: 30, InnerRadius: 80, OuterRadius: 200, Rows: 3,
	})
	assert.ErrorIs(t, err, ErrInvalidParameters)

	_, err = Curved(geometry.Point2D{}, testTier(), testPricing(), "C", CurvedParams{
		StartAngle: 0, EndAngle: 90, InnerRadius: 200, OuterRadius: 100, Rows: 3,
	})
	assert.ErrorIs(t, err, ErrInvalidParameters)

	_, err = Stage(geometry.Point2D{}, "S", StageParams{Width: -1, Height: 50, Shape: venue.ShapeRectangle})
	assert.ErrorIs(t, err, ErrInvalidParameters)
}

func TestDefaults(t *testing.T) {
	s := DefaultStraight()
	assert.Equal(t, 5, s.Rows)
	assert.Equal(t, 10, s.SeatsPerRow)
	assert.Equal(t, 25.0, s.Spacing)
	assert.Equal(t, 35.0, s.RowSpacing)

	c := DefaultCurved()
	assert.Equal(t, 30.0, c.StartAngle)
	assert.Equal(t, 150.0, c.EndAngle)
	assert.Equal(t, 80.0, c.InnerRadius)
	assert.Equal(t, 200.0, c.OuterRadius)
	assert.Equal(t, 5, c.Rows)

	st := DefaultStage()
	assert.Equal(t, 200.0, st.Width)
	assert.Equal(t, 100.0, st.Height)
}

func TestRowLabel(t *testing.T) {
	cases := map[int]string{
		0:  "A",
		1:  "B",
		25: "Z",
		26: "AA",
		27: "AB",
		51: "AZ",
		52: "BA",
	}
	for row, want := range cases {
		assert.Equal(t, want, RowLabel(row), "row %d", row)
	}
}
