package view

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"seatmap/pkg/geometry"
)

// FitToBounds computes the camera that frames the given world rectangle
// inside a viewport, leaving a small margin. The uniform scale and
// translation are recovered by least squares over the rectangle's corner
// correspondences, then the scale is clamped to the zoom range.
func FitToBounds(world geometry.Rect, viewport geometry.Size, margin float64) (*Camera, error) {
	if world.Width <= 0 || world.Height <= 0 {
		return nil, fmt.Errorf("degenerate world bounds %.1f x %.1f", world.Width, world.Height)
	}
	if viewport.Width <= 0 || viewport.Height <= 0 {
		return nil, fmt.Errorf("degenerate viewport %.1f x %.1f", viewport.Width, viewport.Height)
	}

	// Target rectangle: the world-aspect rectangle centered in the
	// viewport after the margin is taken off both axes.
	avail := geometry.NewRect(0, 0, viewport.Width, viewport.Height).Inset(margin)
	scaleX := avail.Width / world.Width
	scaleY := avail.Height / world.Height
	s := scaleX
	if scaleY < s {
		s = scaleY
	}
	target := geometry.NewRect(
		avail.X+(avail.Width-world.Width*s)/2,
		avail.Y+(avail.Height-world.Height*s)/2,
		world.Width*s,
		world.Height*s,
	)

	src := rectCorners(world)
	dst := rectCorners(target)

	cam, err := solveScaleTranslate(src, dst)
	if err != nil {
		return nil, err
	}
	solved := cam.Zoom
	cam.SetZoom(solved)
	if cam.Zoom != solved {
		// The clamp changed the scale, so the solved translation no
		// longer centers the bounds; recompute the pan for the clamped
		// zoom so the world center stays on the viewport center.
		wc := world.Center()
		cam.Pan = geometry.Point2D{
			X: viewport.Width/2 - wc.X*cam.Zoom,
			Y: viewport.Height/2 - wc.Y*cam.Zoom,
		}
	}
	return cam, nil
}

// FrameSeat frames the area between a seat and the stage for the
// view-from-seat presentation. Without a stage the frame is a fixed
// neighborhood around the seat.
func FrameSeat(seat geometry.Point2D, stage *geometry.Rect, viewport geometry.Size) (*Camera, error) {
	const neighborhood = 120.0
	bounds := geometry.NewRect(seat.X-neighborhood, seat.Y-neighborhood, 2*neighborhood, 2*neighborhood)
	if stage != nil {
		bounds = bounds.Union(*stage)
	}
	return FitToBounds(bounds, viewport, 20)
}

// rectCorners returns the four corners of a rectangle.
func rectCorners(r geometry.Rect) []geometry.Point2D {
	return []geometry.Point2D{
		{X: r.X, Y: r.Y},
		{X: r.X + r.Width, Y: r.Y},
		{X: r.X, Y: r.Y + r.Height},
		{X: r.X + r.Width, Y: r.Y + r.Height},
	}
}

// solveScaleTranslate recovers the uniform scale s and translation
// (tx, ty) mapping src points onto dst points by least squares:
//
//	[x 1 0] [s ]   [x']
//	[y 0 1] [tx] = [y']
//	        [ty]
func solveScaleTranslate(src, dst []geometry.Point2D) (*Camera, error) {
	n := len(src)
	if n < 2 || len(dst) != n {
		return nil, fmt.Errorf("need at least 2 point pairs, got %d/%d", n, len(dst))
	}

	A := mat.NewDense(n*2, 3, nil)
	B := mat.NewVecDense(n*2, nil)

	for i := 0; i < n; i++ {
		A.Set(i*2, 0, src[i].X)
		A.Set(i*2, 1, 1)
		B.SetVec(i*2, dst[i].X)

		A.Set(i*2+1, 0, src[i].Y)
		A.Set(i*2+1, 2, 1)
		B.SetVec(i*2+1, dst[i].Y)
	}

	var qr mat.QR
	qr.Factorize(A)

	var params mat.VecDense
	if err := qr.SolveVecTo(&params, false, B); err != nil {
		return nil, err
	}

	return &Camera{
		Zoom: params.AtVec(0),
		Pan:  geometry.Point2D{X: params.AtVec(1), Y: params.AtVec(2)},
	}, nil
}
