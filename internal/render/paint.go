package render

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"seatmap/internal/venue"
)

// gridSpacing is the world-unit pitch of the background grid.
const gridSpacing = 20.0

// labelZoomThreshold is the zoom level at which seat labels appear.
const labelZoomThreshold = 1.5

var (
	colorBackground = color.RGBA{R: 0x11, G: 0x18, B: 0x27, A: 0xff}
	colorGrid       = color.RGBA{R: 0x1f, G: 0x29, B: 0x37, A: 0xff}
	colorBoxOutline = color.RGBA{R: 0xfb, G: 0xbf, B: 0x24, A: 0xff}
	colorLabel      = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// Paint renders a frame into a new RGBA image of the given size.
func Paint(frame *Frame, width, height int) *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, width, height))
	fillRect(out, 0, 0, width-1, height-1, colorBackground)

	if frame.ShowGrid {
		paintGrid(out, frame)
	}
	for i := range frame.Stages {
		paintStage(out, &frame.Stages[i])
	}
	for i := range frame.Seats {
		paintSeat(out, &frame.Seats[i], frame.Zoom)
	}
	// Section names sit over their seats; hide them when the view is
	// close enough that seat labels take over.
	if frame.Zoom < labelZoomThreshold {
		for _, lb := range frame.Labels {
			drawText(out, lb.Text, int(lb.Screen.X), int(lb.Screen.Y), colorLabel)
		}
	}
	if frame.Box != nil {
		paintDashedRect(out, frame.Box.X, frame.Box.Y, frame.Box.X+frame.Box.Width, frame.Box.Y+frame.Box.Height)
	}
	return out
}

// paintGrid draws vertical and horizontal grid lines aligned to world
// coordinates, so the grid pans and zooms with the map.
func paintGrid(out *image.RGBA, frame *Frame) {
	b := out.Bounds()
	step := gridSpacing * frame.Zoom
	if step < 4 {
		return // too dense to be useful
	}
	startX := math.Mod(frame.Pan.X, step)
	for x := startX; x < float64(b.Max.X); x += step {
		for y := b.Min.Y; y < b.Max.Y; y++ {
			out.SetRGBA(int(x), y, colorGrid)
		}
	}
	startY := math.Mod(frame.Pan.Y, step)
	for y := startY; y < float64(b.Max.Y); y += step {
		for x := b.Min.X; x < b.Max.X; x++ {
			out.SetRGBA(x, int(y), colorGrid)
		}
	}
}

func paintStage(out *image.RGBA, st *StageSprite) {
	x1 := int(st.Screen.X)
	y1 := int(st.Screen.Y)
	x2 := int(st.Screen.X + st.Width)
	y2 := int(st.Screen.Y + st.Height)

	switch st.Stage.Shape {
	case venue.ShapeCircle:
		cx := (st.Screen.X + st.Screen.X + st.Width) / 2
		cy := (st.Screen.Y + st.Screen.Y + st.Height) / 2
		r := math.Min(st.Width, st.Height) / 2
		fillCircle(out, cx, cy, r, st.Color)
	case venue.ShapeArc:
		// Half disc, flat edge facing the seating.
		cx := (st.Screen.X + st.Screen.X + st.Width) / 2
		cy := st.Screen.Y
		r := st.Width / 2
		fillHalfCircle(out, cx, cy, r, st.Color)
	default:
		fillRect(out, x1, y1, x2, y2, st.Color)
	}

	if st.Stage.Label != "" {
		drawText(out, st.Stage.Label, (x1+x2)/2, (y1+y2)/2, colorLabel)
	}
}

func paintSeat(out *image.RGBA, sp *SeatSprite, zoom float64) {
	half := sp.Size / 2
	x1 := int(sp.Screen.X - half)
	y1 := int(sp.Screen.Y - half)
	x2 := int(sp.Screen.X + half)
	y2 := int(sp.Screen.Y + half)
	fillRect(out, x1, y1, x2, y2, sp.Color)

	// Darker 1px outline makes adjacent seats readable.
	outline := color.RGBA{R: sp.Color.R / 2, G: sp.Color.G / 2, B: sp.Color.B / 2, A: 0xff}
	drawRectOutline(out, x1, y1, x2, y2, outline)

	if zoom >= labelZoomThreshold {
		drawText(out, sp.Seat.Label, (x1+x2)/2, y1-4, colorLabel)
	}
}

// drawText draws a string centered horizontally on (cx, cy) with the
// bitmap face from golang.org/x/image.
func drawText(out *image.RGBA, s string, cx, cy int, col color.RGBA) {
	face := basicfont.Face7x13
	d := font.Drawer{
		Dst:  out,
		Src:  image.NewUniform(col),
		Face: face,
	}
	w := d.MeasureString(s).Ceil()
	d.Dot = fixed.P(cx-w/2, cy+face.Ascent/2)
	d.DrawString(s)
}

func fillRect(out *image.RGBA, x1, y1, x2, y2 int, col color.RGBA) {
	b := out.Bounds()
	for y := y1; y <= y2; y++ {
		if y < b.Min.Y || y >= b.Max.Y {
			continue
		}
		for x := x1; x <= x2; x++ {
			if x < b.Min.X || x >= b.Max.X {
				continue
			}
			out.SetRGBA(x, y, col)
		}
	}
}

func drawRectOutline(out *image.RGBA, x1, y1, x2, y2 int, col color.RGBA) {
	b := out.Bounds()
	inX := func(x int) bool { return x >= b.Min.X && x < b.Max.X }
	inY := func(y int) bool { return y >= b.Min.Y && y < b.Max.Y }
	for x := x1; x <= x2; x++ {
		if inX(x) && inY(y1) {
			out.SetRGBA(x, y1, col)
		}
		if inX(x) && inY(y2) {
			out.SetRGBA(x, y2, col)
		}
	}
	for y := y1; y <= y2; y++ {
		if inX(x1) && inY(y) {
			out.SetRGBA(x1, y, col)
		}
		if inX(x2) && inY(y) {
			out.SetRGBA(x2, y, col)
		}
	}
}

// paintDashedRect draws the rubber-band rectangle with alternating
// 2-on/2-off pixels.
func paintDashedRect(out *image.RGBA, fx1, fy1, fx2, fy2 float64) {
	x1, y1, x2, y2 := int(fx1), int(fy1), int(fx2), int(fy2)
	b := out.Bounds()
	for x := x1; x <= x2; x++ {
		if (x+y1)%4 < 2 && x >= b.Min.X && x < b.Max.X && y1 >= b.Min.Y && y1 < b.Max.Y {
			out.SetRGBA(x, y1, colorBoxOutline)
		}
		if (x+y2)%4 < 2 && x >= b.Min.X && x < b.Max.X && y2 >= b.Min.Y && y2 < b.Max.Y {
			out.SetRGBA(x, y2, colorBoxOutline)
		}
	}
	for y := y1; y <= y2; y++ {
		if (x1+y)%4 < 2 && x1 >= b.Min.X && x1 < b.Max.X && y >= b.Min.Y && y < b.Max.Y {
			out.SetRGBA(x1, y, colorBoxOutline)
		}
		if (x2+y)%4 < 2 && x2 >= b.Min.X && x2 < b.Max.X && y >= b.Min.Y && y < b.Max.Y {
			out.SetRGBA(x2, y, colorBoxOutline)
		}
	}
}

func fillCircle(out *image.RGBA, cx, cy, r float64, col color.RGBA) {
	b := out.Bounds()
	r2 := r * r
	for y := int(cy - r - 1); y <= int(cy+r+1); y++ {
		if y < b.Min.Y || y >= b.Max.Y {
			continue
		}
		for x := int(cx - r - 1); x <= int(cx+r+1); x++ {
			if x < b.Min.X || x >= b.Max.X {
				continue
			}
			dx := float64(x) - cx
			dy := float64(y) - cy
			if dx*dx+dy*dy <= r2 {
				out.SetRGBA(x, y, col)
			}
		}
	}
}

// fillHalfCircle fills the half disc below the center line.
func fillHalfCircle(out *image.RGBA, cx, cy, r float64, col color.RGBA) {
	b := out.Bounds()
	r2 := r * r
	for y := int(cy); y <= int(cy+r+1); y++ {
		if y < b.Min.Y || y >= b.Max.Y {
			continue
		}
		for x := int(cx - r - 1); x <= int(cx+r+1); x++ {
			if x < b.Min.X || x >= b.Max.X {
				continue
			}
			dx := float64(x) - cx
			dy := float64(y) - cy
			if dx*dx+dy*dy <= r2 {
				out.SetRGBA(x, y, col)
			}
		}
	}
}
