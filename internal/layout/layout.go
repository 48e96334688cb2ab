// Package layout is the geometry engine: it expands section-creation
// parameters into concrete, fully labeled seat sets, and places stages.
// All functions are deterministic; seats are generated once at creation
// time and never recomputed.
package layout

import (
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"

	"seatmap/internal/venue"
	"seatmap/pkg/geometry"
)

// ErrInvalidParameters is returned for degenerate geometry input:
// non-positive counts, outerRadius < innerRadius, endAngle <= startAngle.
var ErrInvalidParameters = errors.New("invalid parameters")

// seatPitch is the target arc length between adjacent seats in a curved
// row, in world units. Seat counts per row are derived from it so seat
// density stays visually uniform as the radius grows.
const seatPitch = 20.0

// minSeatsPerRow is the floor on seats in any curved row.
const minSeatsPerRow = 8

// StraightParams describes a rectangular grid section.
type StraightParams struct {
	Rows        int
	SeatsPerRow int
	Spacing     float64 // horizontal seat spacing, world units
	RowSpacing  float64 // vertical row spacing, world units
}

// DefaultStraight returns the builder's default straight-section form values.
func DefaultStraight() StraightParams {
	return StraightParams{Rows: 5, SeatsPerRow: 10, Spacing: 25, RowSpacing: 35}
}

// Validate rejects degenerate grids before any seat is created.
func (p StraightParams) Validate() error {
	if p.Rows <= 0 {
		return fmt.Errorf("%w: rows %d", ErrInvalidParameters, p.Rows)
	}
	if p.SeatsPerRow <= 0 {
		return fmt.Errorf("%w: seats per row %d", ErrInvalidParameters, p.SeatsPerRow)
	}
	if p.Spacing <= 0 || p.RowSpacing <= 0 {
		return fmt.Errorf("%w: spacing %.1f x %.1f", ErrInvalidParameters, p.Spacing, p.RowSpacing)
	}
	return nil
}

// CurvedParams describes an annular arc section. Angles are in degrees.
type CurvedParams struct {
	StartAngle  float64
	EndAngle    float64
	InnerRadius float64
	OuterRadius float64
	Rows        int
}

// DefaultCurved returns the builder's default curved-section form values.
func DefaultCurved() CurvedParams {
	return CurvedParams{StartAngle: 30, EndAngle: 150, InnerRadius: 80, OuterRadius: 200, Rows: 5}
}

// Validate rejects degenerate arcs before any seat is created.
func (p CurvedParams) Validate() error {
	if p.Rows <= 0 {
		return fmt.Errorf("%w: rows %d", ErrInvalidParameters, p.Rows)
	}
	// Equal radii are allowed: a zero-width annulus collapses every row
	// onto one arc, which is still well formed.
	if p.OuterRadius < p.InnerRadius {
		return fmt.Errorf("%w: radius range %.1f..%.1f", ErrInvalidParameters, p.InnerRadius, p.OuterRadius)
	}
	if p.EndAngle <= p.StartAngle {
		return fmt.Errorf("%w: angle range %.1f..%.1f", ErrInvalidParameters, p.StartAngle, p.EndAngle)
	}
	return nil
}

// StageParams describes a stage fixture.
type StageParams struct {
	Width  float64
	Height float64
	Shape  venue.StageShape
}

// DefaultStage returns the builder's default stage form values.
func DefaultStage() StageParams {
	return StageParams{Width: 200, Height: 100, Shape: venue.ShapeRectangle}
}

// Validate rejects zero- or negative-size stages.
func (p StageParams) Validate() error {
	if p.Width <= 0 || p.Height <= 0 {
		return fmt.Errorf("%w: stage size %.1f x %.1f", ErrInvalidParameters, p.Width, p.Height)
	}
	switch p.Shape {
	case venue.ShapeRectangle, venue.ShapeArc, venue.ShapeCircle:
	default:
		return fmt.Errorf("%w: stage shape %q", ErrInvalidParameters, p.Shape)
	}
	return nil
}

// Straight generates a straight section anchored at the given world
// position on a tier. Seat (r, s) sits at (x0 + s*spacing, y0 + r*rowSpacing)
// with label rowLetter(r) + (s+1).
func Straight(anchor geometry.Point2D, tier *venue.Tier, pricing venue.PricingTier, label string, p StraightParams) (*venue.Section, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	sectionID := fmt.Sprintf("straight-section-%s", uuid.NewString())
	seats := make([]*venue.Seat, 0, p.Rows*p.SeatsPerRow)

	for row := 0; row < p.Rows; row++ {
		rowLabel := RowLabel(row)
		for s := 0; s < p.SeatsPerRow; s++ {
			seats = append(seats, &venue.Seat{
				ID:            fmt.Sprintf("seat-%s-%d-%d", sectionID, row, s),
				Label:         fmt.Sprintf("%s%d", rowLabel, s+1),
				X:             anchor.X + float64(s)*p.Spacing,
				Y:             anchor.Y + float64(row)*p.RowSpacing,
				Z:             tier.Elevation,
				SectionID:     sectionID,
				Status:        venue.StatusAvailable,
				TierID:        tier.ID,
				PricingTierID: pricing.ID,
				Row:           rowLabel,
				Number:        fmt.Sprintf("%d", s+1),
			})
		}
	}

	return &venue.Section{
		ID:            sectionID,
		Kind:          venue.KindStraight,
		Label:         label,
		X:             anchor.X,
		Y:             anchor.Y,
		Z:             tier.Elevation,
		TierID:        tier.ID,
		PricingTierID: pricing.ID,
		Color:         pricing.Color,
		Seats:         seats,
		Rows:          p.Rows,
		SeatsPerRow:   p.SeatsPerRow,
		Width:         float64(p.SeatsPerRow) * p.Spacing,
		Height:        float64(p.Rows) * p.RowSpacing,
	}, nil
}

// Curved generates a curved section anchored at the given world position.
// Row r sits at radius innerRadius + r*(outer-inner)/rows; it holds
// max(8, floor(arcLength/seatPitch)) seats spread at equal angular
// increments spanning [startAngle, endAngle] inclusive of both endpoints.
// Every seat records its angle as ViewAngle for view-from-seat framing.
func Curved(anchor geometry.Point2D, tier *venue.Tier, pricing venue.PricingTier, label string, p CurvedParams) (*venue.Section, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	sectionID := fmt.Sprintf("curved-section-%s", uuid.NewString())
	radiusStep := (p.OuterRadius - p.InnerRadius) / float64(p.Rows)
	totalAngle := p.EndAngle - p.StartAngle

	var seats []*venue.Seat
	for row := 0; row < p.Rows; row++ {
		radius := p.InnerRadius + float64(row)*radiusStep
		seatsInRow := int(math.Floor(radius * totalAngle * math.Pi / (180 * seatPitch)))
		if seatsInRow < minSeatsPerRow {
			seatsInRow = minSeatsPerRow
		}
		angleStep := totalAngle / float64(seatsInRow-1)
		rowLabel := RowLabel(row)

		for s := 0; s < seatsInRow; s++ {
			angle := p.StartAngle + float64(s)*angleStep
			pos := geometry.PointOnCircle(anchor, radius, angle)
			seats = append(seats, &venue.Seat{
				ID:            fmt.Sprintf("seat-%s-%d-%d", sectionID, row, s),
				Label:         fmt.Sprintf("%s%d", rowLabel, s+1),
				X:             pos.X,
				Y:             pos.Y,
				Z:             tier.Elevation,
				SectionID:     sectionID,
				Status:        venue.StatusAvailable,
				TierID:        tier.ID,
				PricingTierID: pricing.ID,
				ViewAngle:     angle,
				Row:           rowLabel,
				Number:        fmt.Sprintf("%d", s+1),
			})
		}
	}

	return &venue.Section{
		ID:            sectionID,
		Kind:          venue.KindCurved,
		Label:         label,
		X:             anchor.X,
		Y:             anchor.Y,
		Z:             tier.Elevation,
		TierID:        tier.ID,
		PricingTierID: pricing.ID,
		Color:         pricing.Color,
		Seats:         seats,
		StartAngle:    p.StartAngle,
		EndAngle:      p.EndAngle,
		InnerRadius:   p.InnerRadius,
		OuterRadius:   p.OuterRadius,
		Rows:          p.Rows,
	}, nil
}

// stageColor is the default fill for new stages.
const stageColor = "#1f2937"

// Stage places a stage fixture at the given anchor. No seats are generated.
func Stage(anchor geometry.Point2D, label string, p StageParams) (*venue.Stage, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &venue.Stage{
		ID:     fmt.Sprintf("stage-%s", uuid.NewString()),
		Label:  label,
		X:      anchor.X,
		Y:      anchor.Y,
		Z:      0,
		Width:  p.Width,
		Height: p.Height,
		Shape:  p.Shape,
		Color:  stageColor,
	}, nil
}
