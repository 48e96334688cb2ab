// Package selection decides which seats a pointer interaction targets and
// tracks the accumulated selection set.
package selection

import (
	"math"

	"seatmap/internal/venue"
	"seatmap/internal/view"
	"seatmap/pkg/geometry"
)

// hitHalfExtent is half the rendered seat footprint in screen units: the
// seat sprite is a 12-unit square centered on its transformed position.
const hitHalfExtent = 6.0

// SeatAt returns the seat whose rendered footprint contains the screen
// point, or nil. When footprints overlap, the topmost seat by stacking
// order (depth key) wins.
func SeatAt(seats []*venue.Seat, screen geometry.Point2D, cam *view.Camera, settings venue.DisplaySettings) *venue.Seat {
	var (
		best      *venue.Seat
		bestDepth int
	)
	for _, seat := range seats {
		projY, _ := view.Project(seat.Y, seat.Z, settings.Perspective, settings.CameraHeight)
		sp := cam.WorldToScreen(geometry.Point2D{X: seat.X, Y: projY})
		if math.Abs(sp.X-screen.X) > hitHalfExtent || math.Abs(sp.Y-screen.Y) > hitHalfExtent {
			continue
		}
		depth := view.DepthKey(seat.Y, seat.Z)
		if best == nil || depth >= bestDepth {
			best = seat
			bestDepth = depth
		}
	}
	return best
}

// SeatsInBox returns every seat inside a selection rectangle given by two
// world-space corners, in either order. Both the corners and the seat
// positions are pushed through the same pan/zoom transform and compared in
// screen space — the historical behavior, preserved exactly. Elevation
// projection deliberately plays no part here.
func SeatsInBox(seats []*venue.Seat, cornerA, cornerB geometry.Point2D, cam *view.Camera) []*venue.Seat {
	box := geometry.RectFromCorners(cornerA, cornerB)
	min := cam.WorldToScreen(box.TopLeft())
	max := cam.WorldToScreen(box.BottomRight())

	var hit []*venue.Seat
	for _, seat := range seats {
		sp := cam.WorldToScreen(seat.Position())
		if sp.X >= min.X && sp.X <= max.X && sp.Y >= min.Y && sp.Y <= max.Y {
			hit = append(hit, seat)
		}
	}
	return hit
}
