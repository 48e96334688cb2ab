// Package render builds drawable frames from the venue map and paints
// them to raster images.
package render

import (
	"image/color"
	"sort"

	"seatmap/internal/selection"
	"seatmap/internal/venue"
	"seatmap/internal/view"
	"seatmap/pkg/geometry"
)

// baseSeatSize is the seat square side in world units before the
// elevation scale factor is applied.
const baseSeatSize = 12.0

// Seat status colors. Available seats take their pricing tier color.
var (
	colorSelected = color.RGBA{R: 0xfb, G: 0xbf, B: 0x24, A: 0xff}
	colorSold     = color.RGBA{R: 0xef, G: 0x44, B: 0x44, A: 0xff}
	colorReserved = color.RGBA{R: 0x9c, G: 0xa3, B: 0xaf, A: 0xff}
	colorBlocked  = color.RGBA{R: 0x6b, G: 0x72, B: 0x80, A: 0xff}
)

// SeatSprite is one seat positioned in screen space, ready to paint.
type SeatSprite struct {
	Seat     *venue.Seat
	Screen   geometry.Point2D
	Size     float64 // screen units, square side
	Color    color.RGBA
	Selected bool
	InCart   bool
	depth    int
}

// LabelSprite is a section name anchored at the centroid of the
// section's seats, in screen space.
type LabelSprite struct {
	Text   string
	Screen geometry.Point2D
}

// StageSprite is one stage positioned in screen space.
type StageSprite struct {
	Stage  *venue.Stage
	Screen geometry.Point2D // top-left corner
	Width  float64
	Height float64
	Color  color.RGBA
	depth  int
}

// Frame is everything one paint of the canvas needs, already depth
// sorted: sprites earlier in the slices sit further from the viewer.
type Frame struct {
	Seats  []SeatSprite
	Stages []StageSprite
	Labels []LabelSprite
	// Box is the active rubber-band rectangle in screen space, if any.
	Box      *geometry.Rect
	Zoom     float64
	Pan      geometry.Point2D
	ShowGrid bool
}

// CartView answers whether a seat is currently in the cart. A nil
// CartView means no cart (builder mode).
type CartView interface {
	Contains(seatID string) bool
}

// BuildFrame projects the current tier of the map through the camera
// into a depth-sorted frame. boxWorld, when non-nil, is the in-flight
// selection rectangle in world coordinates.
func BuildFrame(m *venue.Map, cam *view.Camera, sel *selection.Set, cart CartView, boxWorld *geometry.Rect) *Frame {
	frame := &Frame{
		Zoom:     cam.Zoom,
		Pan:      cam.Pan,
		ShowGrid: m.Settings.ShowGrid,
	}
	tier := m.CurrentTierPlane()
	if tier == nil {
		return frame
	}

	for _, obj := range tier.Objects {
		switch o := obj.(type) {
		case *venue.Section:
			positions := make([]geometry.Point2D, 0, len(o.Seats))
			for _, seat := range o.Seats {
				positions = append(positions, seat.Position())
				frame.Seats = append(frame.Seats, buildSeatSprite(m, cam, sel, cart, o, seat))
			}
			if o.Label != "" && len(positions) > 0 {
				frame.Labels = append(frame.Labels, LabelSprite{
					Text:   o.Label,
					Screen: cam.WorldToScreen(geometry.Centroid(positions)),
				})
			}
		case *venue.Stage:
			frame.Stages = append(frame.Stages, buildStageSprite(m, cam, o))
		}
	}

	sort.SliceStable(frame.Seats, func(i, j int) bool {
		return frame.Seats[i].depth < frame.Seats[j].depth
	})
	sort.SliceStable(frame.Stages, func(i, j int) bool {
		return frame.Stages[i].depth < frame.Stages[j].depth
	})

	if boxWorld != nil {
		min := cam.WorldToScreen(boxWorld.TopLeft())
		max := cam.WorldToScreen(boxWorld.BottomRight())
		box := geometry.RectFromCorners(min, max)
		frame.Box = &box
	}
	return frame
}

func buildSeatSprite(m *venue.Map, cam *view.Camera, sel *selection.Set, cart CartView, sec *venue.Section, seat *venue.Seat) SeatSprite {
	y, scale := seat.Y, 1.0
	if m.Settings.Show3D {
		y, scale = view.Project(seat.Y, seat.Z, m.Settings.Perspective, m.Settings.CameraHeight)
	}
	sp := SeatSprite{
		Seat:     seat,
		Screen:   cam.WorldToScreen(geometry.Point2D{X: seat.X, Y: y}),
		Size:     baseSeatSize * scale * cam.Zoom,
		Selected: sel != nil && sel.Contains(seat.ID),
		InCart:   cart != nil && cart.Contains(seat.ID),
		depth:    view.DepthKey(seat.Y, seat.Z),
	}
	sp.Color = seatColor(m, sec, seat, sp.Selected || sp.InCart)
	return sp
}

func buildStageSprite(m *venue.Map, cam *view.Camera, st *venue.Stage) StageSprite {
	y := st.Y
	if m.Settings.Show3D {
		y, _ = view.Project(st.Y, st.Z, m.Settings.Perspective, m.Settings.CameraHeight)
	}
	return StageSprite{
		Stage:  st,
		Screen: cam.WorldToScreen(geometry.Point2D{X: st.X, Y: y}),
		Width:  st.Width * cam.Zoom,
		Height: st.Height * cam.Zoom,
		Color:  ParseHexColor(st.Color),
		depth:  view.DepthKey(st.Y, st.Z),
	}
}

// seatColor resolves the paint color for a seat. Selection wins over
// status; status wins over the pricing tier color.
func seatColor(m *venue.Map, sec *venue.Section, seat *venue.Seat, selected bool) color.RGBA {
	if selected {
		return colorSelected
	}
	switch seat.Status {
	case venue.StatusSold:
		return colorSold
	case venue.StatusReserved:
		return colorReserved
	case venue.StatusBlocked:
		return colorBlocked
	}
	if pt, ok := m.PricingTierByID(seat.PricingTierID); ok {
		return ParseHexColor(pt.Color)
	}
	return ParseHexColor(sec.Color)
}

// ParseHexColor parses "#rrggbb" into an opaque RGBA. Malformed input
// yields mid gray rather than an error.
func ParseHexColor(s string) color.RGBA {
	if len(s) != 7 || s[0] != '#' {
		return color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}
	}
	hex := func(c byte) uint8 {
		switch {
		case c >= '0' && c <= '9':
			return c - '0'
		case c >= 'a' && c <= 'f':
			return c - 'a' + 10
		case c >= 'A' && c <= 'F':
			return c - 'A' + 10
		}
		return 0
	}
	return color.RGBA{
		R: hex(s[1])<<4 | hex(s[2]),
		G: hex(s[3])<<4 | hex(s[4]),
		B: hex(s[5])<<4 | hex(s[6]),
		A: 0xff,
	}
}
