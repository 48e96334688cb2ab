// Package canvas provides the seat map canvas with pan, zoom, and
// selection.
package canvas

import (
	"image"

	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"seatmap/internal/app"
	"seatmap/internal/interaction"
	"seatmap/internal/render"
	"seatmap/pkg/geometry"
)

// MapCanvas renders the venue map through a raster and forwards pointer
// events to the interaction controller.
type MapCanvas struct {
	widget.BaseWidget

	state  *app.State
	raster *fynecanvas.Raster

	dragging bool
	lastPos  fyne.Position

	// additive mirrors the Ctrl key so a tap toggles instead of
	// replacing the selection.
	additive bool

	// OnStatus receives short status line updates.
	OnStatus func(text string)
}

// New creates a map canvas bound to the application state.
func New(state *app.State) *MapCanvas {
	mc := &MapCanvas{state: state}
	mc.raster = fynecanvas.NewRaster(mc.draw)
	mc.ExtendBaseWidget(mc)

	// Events can arrive from the checkout goroutine, so the refresh is
	// marshalled onto the fyne main thread.
	redraw := func(interface{}) { fyne.Do(mc.Refresh) }
	state.On(app.EventObjectsChanged, redraw)
	state.On(app.EventSelectionChanged, redraw)
	state.On(app.EventCameraChanged, redraw)
	state.On(app.EventTierChanged, redraw)
	state.On(app.EventVenueLoaded, redraw)
	state.On(app.EventCartChanged, redraw)
	return mc
}

func (mc *MapCanvas) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(mc.raster)
}

func (mc *MapCanvas) MinSize() fyne.Size {
	return fyne.NewSize(400, 300)
}

// draw is the raster generator; it runs on every refresh.
func (mc *MapCanvas) draw(w, h int) image.Image {
	ctrl := mc.state.Controller
	var boxWorld *geometry.Rect
	if box, ok := ctrl.BoxRect(); ok {
		boxWorld = &box
	}
	var cartView render.CartView
	if mc.state.Mode() == app.ModeConsumer {
		cartView = mc.state.Cart
	}
	frame := render.BuildFrame(mc.state.Venue, mc.state.Camera, mc.state.Selection, cartView, boxWorld)
	return render.Paint(frame, w, h)
}

// SetAdditive toggles Ctrl-click selection behavior.
func (mc *MapCanvas) SetAdditive(on bool) {
	mc.additive = on
}

// Tapped handles left-click events.
func (mc *MapCanvas) Tapped(ev *fyne.PointEvent) {
	p := pointOf(ev.Position)
	mc.state.Controller.PointerDown(p, interaction.ButtonPrimary, mc.additive)
	mc.state.Controller.PointerUp(p)
	if id, ok := mc.state.Controller.ViewingSeat(); ok {
		size := mc.Size()
		viewport := geometry.Size{Width: float64(size.Width), Height: float64(size.Height)}
		if err := mc.state.ViewFromSeat(id, viewport); err == nil && mc.OnStatus != nil {
			mc.OnStatus("Viewing from seat")
		}
	}
	mc.reportSeatAt(p)
	mc.Refresh()
}

// TappedSecondary toggles the seat under the cursor, matching
// Ctrl-click.
func (mc *MapCanvas) TappedSecondary(ev *fyne.PointEvent) {
	p := pointOf(ev.Position)
	mc.state.Controller.PointerDown(p, interaction.ButtonPrimary, true)
	mc.state.Controller.PointerUp(p)
	mc.Refresh()
}

// Dragged drives panning and rubber-band selection.
func (mc *MapCanvas) Dragged(ev *fyne.DragEvent) {
	pos := ev.Position
	if !mc.dragging {
		start := fyne.NewPos(pos.X-ev.Dragged.DX, pos.Y-ev.Dragged.DY)
		mc.state.Controller.PointerDown(pointOf(start), interaction.ButtonPrimary, mc.additive)
		mc.dragging = true
	}
	mc.state.Controller.PointerMove(pointOf(pos))
	mc.lastPos = pos
	mc.Refresh()
}

func (mc *MapCanvas) DragEnd() {
	if !mc.dragging {
		return
	}
	mc.dragging = false
	mc.state.Controller.PointerUp(pointOf(mc.lastPos))
	mc.Refresh()
}

// Scrolled zooms with the mouse wheel.
func (mc *MapCanvas) Scrolled(ev *fyne.ScrollEvent) {
	if ev.Scrolled.DY > 0 {
		mc.state.Camera.ZoomIn()
	} else if ev.Scrolled.DY < 0 {
		mc.state.Camera.ZoomOut()
	}
	mc.Refresh()
}

func (mc *MapCanvas) MouseIn(*desktop.MouseEvent) {}

func (mc *MapCanvas) MouseMoved(*desktop.MouseEvent) {}

// MouseOut cancels any gesture in flight when the pointer leaves the
// canvas.
func (mc *MapCanvas) MouseOut() {
	mc.dragging = false
	mc.state.Controller.PointerLeave()
	mc.Refresh()
}

func (mc *MapCanvas) reportSeatAt(p geometry.Point2D) {
	if mc.OnStatus == nil {
		return
	}
	seats := mc.state.Venue.CurrentTierPlane().Seats()
	for _, id := range mc.state.Selection.IDs() {
		for _, seat := range seats {
			if seat.ID == id {
				sec := mc.state.Venue.SectionOf(id)
				label := seat.Label
				if sec != nil {
					label = sec.Label + " " + label
				}
				mc.OnStatus("Selected " + label)
				return
			}
		}
	}
}

func pointOf(p fyne.Position) geometry.Point2D {
	return geometry.Point2D{X: float64(p.X), Y: float64(p.Y)}
}
