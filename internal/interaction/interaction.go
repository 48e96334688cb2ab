// Package interaction turns raw pointer events into edits of the venue
// map, the camera and the selection. The controller is a small state
// machine; exactly one gesture is in flight at a time.
package interaction

import (
	"fmt"

	"seatmap/internal/layout"
	"seatmap/internal/selection"
	"seatmap/internal/venue"
	"seatmap/internal/view"
	"seatmap/pkg/geometry"
)

// Tool is the active editing tool selected in the toolbar.
type Tool int

const (
	ToolSelect Tool = iota
	ToolPan
	ToolPlaceStraight
	ToolPlaceCurved
	ToolPlaceStage
	ToolViewFromSeat
)

func (t Tool) String() string {
	switch t {
	case ToolSelect:
		return "select"
	case ToolPan:
		return "pan"
	case ToolPlaceStraight:
		return "straight-section"
	case ToolPlaceCurved:
		return "curved-section"
	case ToolPlaceStage:
		return "stage"
	case ToolViewFromSeat:
		return "view-from-seat"
	}
	return "unknown"
}

// Button identifies which pointer button started a gesture.
type Button int

const (
	ButtonPrimary Button = iota
	ButtonSecondary
	ButtonMiddle
)

// state tags the single controller state in effect. anchorWorld and
// cursorWorld belong to stateBoxSelecting, viewingSeat to
// stateViewingSeat; the payloads are meaningless outside their state.
type state int

const (
	stateIdle state = iota
	statePanning
	stateBoxSelecting
	stateViewingSeat
)

// Controller owns the in-flight gesture state. It is not safe for
// concurrent use; the owning app state serializes calls.
type Controller struct {
	Map *venue.Map
	Cam *view.Camera
	Sel *selection.Set

	// ConsumerMode absorbs clicks on seats that cannot be booked, so a
	// browsing customer cannot select sold or reserved seats.
	ConsumerMode bool

	// OnPlaced fires after a placement tool adds an object to the map.
	OnPlaced func()
	// OnChanged fires after any gesture mutates selection or camera.
	OnChanged func()

	tool         Tool
	st           state
	lastScreen   geometry.Point2D
	anchorWorld  geometry.Point2D
	cursorWorld  geometry.Point2D
	viewingSeat  string
	sectionCount int

	straightParams layout.StraightParams
	curvedParams   layout.CurvedParams
	stageParams    layout.StageParams
}

func NewController(m *venue.Map, cam *view.Camera, sel *selection.Set) *Controller {
	return &Controller{
		Map: m, Cam: cam, Sel: sel, tool: ToolSelect,
		straightParams: layout.DefaultStraight(),
		curvedParams:   layout.DefaultCurved(),
		stageParams:    layout.DefaultStage(),
	}
}

// SetStraightParams arms the straight-section tool with custom
// parameters. Invalid parameters are rejected and the previous ones
// kept.
func (c *Controller) SetStraightParams(p layout.StraightParams) error {
	if err := p.Validate(); err != nil {
		return err
	}
	c.straightParams = p
	return nil
}

func (c *Controller) SetCurvedParams(p layout.CurvedParams) error {
	if err := p.Validate(); err != nil {
		return err
	}
	c.curvedParams = p
	return nil
}

func (c *Controller) SetStageParams(p layout.StageParams) error {
	if err := p.Validate(); err != nil {
		return err
	}
	c.stageParams = p
	return nil
}

func (c *Controller) StraightParams() layout.StraightParams { return c.straightParams }
func (c *Controller) CurvedParams() layout.CurvedParams     { return c.curvedParams }
func (c *Controller) StageParams() layout.StageParams       { return c.stageParams }

func (c *Controller) Tool() Tool { return c.tool }

// SetTool switches the active tool. Whatever state was in effect is
// abandoned without applying its effect, seat view included.
func (c *Controller) SetTool(t Tool) {
	c.toIdle()
	c.tool = t
}

// ViewingSeat reports the seat whose vantage is being previewed, if any.
func (c *Controller) ViewingSeat() (string, bool) {
	if c.st != stateViewingSeat {
		return "", false
	}
	return c.viewingSeat, true
}

// ExitSeatView leaves view-from-seat mode without changing the tool.
func (c *Controller) ExitSeatView() {
	if c.st == stateViewingSeat {
		c.toIdle()
	}
}

// BoxRect returns the active rubber-band rectangle in world space.
func (c *Controller) BoxRect() (geometry.Rect, bool) {
	if c.st != stateBoxSelecting {
		return geometry.Rect{}, false
	}
	return geometry.RectFromCorners(c.anchorWorld, c.cursorWorld), true
}

// toIdle drops the current state together with its payload.
func (c *Controller) toIdle() {
	c.st = stateIdle
	c.viewingSeat = ""
}

// PointerDown starts a gesture. The middle button always pans, whatever
// the tool; otherwise behavior follows the active tool. Any seat-view
// preview ends when a pan begins, so the controller is never in two
// states at once.
func (c *Controller) PointerDown(screen geometry.Point2D, btn Button, additive bool) {
	c.lastScreen = screen
	if btn == ButtonMiddle {
		c.toIdle()
		c.st = statePanning
		return
	}

	world := c.Cam.ScreenToWorld(screen)
	switch c.tool {
	case ToolPan:
		c.toIdle()
		c.st = statePanning
	case ToolPlaceStraight, ToolPlaceCurved, ToolPlaceStage:
		c.place(world)
	case ToolViewFromSeat:
		if seat := c.hitSeat(screen); seat != nil {
			c.st = stateViewingSeat
			c.viewingSeat = seat.ID
			c.changed()
		}
	default:
		c.selectAt(screen, world, additive)
	}
}

// PointerMove advances the gesture in flight.
func (c *Controller) PointerMove(screen geometry.Point2D) {
	switch c.st {
	case statePanning:
		delta := screen.Sub(c.lastScreen)
		c.Cam.Pan = c.Cam.Pan.Add(delta)
		c.changed()
	case stateBoxSelecting:
		c.cursorWorld = c.Cam.ScreenToWorld(screen)
		c.changed()
	}
	c.lastScreen = screen
}

// PointerUp finishes the gesture. A rubber-band drag replaces the
// selection with the boxed seats. Seat view is a resting state, not a
// gesture: it survives the pointer release.
func (c *Controller) PointerUp(screen geometry.Point2D) {
	switch c.st {
	case stateBoxSelecting:
		c.cursorWorld = c.Cam.ScreenToWorld(screen)
		boxed := selection.SeatsInBox(c.seats(), c.anchorWorld, c.cursorWorld, c.Cam)
		ids := make([]string, 0, len(boxed))
		for _, seat := range boxed {
			if c.ConsumerMode && !seat.Status.Bookable() {
				continue
			}
			ids = append(ids, seat.ID)
		}
		c.Sel.ReplaceAll(ids)
		c.changed()
		c.toIdle()
	case statePanning:
		c.toIdle()
	}
}

// PointerLeave cancels the gesture in flight without applying it. Seat
// view is kept; leaving the canvas should not end the preview.
func (c *Controller) PointerLeave() {
	if c.st == statePanning || c.st == stateBoxSelecting {
		c.toIdle()
	}
}

func (c *Controller) selectAt(screen, world geometry.Point2D, additive bool) {
	if seat := c.hitSeat(screen); seat != nil {
		if c.ConsumerMode && !seat.Status.Bookable() {
			return
		}
		if additive {
			c.Sel.Toggle(seat.ID)
		} else {
			c.Sel.Replace(seat.ID)
		}
		c.changed()
		return
	}
	c.st = stateBoxSelecting
	c.anchorWorld = world
	c.cursorWorld = world
}

// place drops a new object at the clicked world position using the
// armed parameters for the tool, then hands the tool back to select.
func (c *Controller) place(world geometry.Point2D) {
	tier := c.Map.CurrentTierPlane()

	var pricing venue.PricingTier
	if c.tool == ToolPlaceStraight || c.tool == ToolPlaceCurved {
		// An imported map may carry no pricing tiers at all; a section
		// cannot be priced then, so refuse the placement.
		if len(c.Map.PricingTiers) == 0 {
			c.tool = ToolSelect
			return
		}
		pricing = c.Map.PricingTiers[len(c.Map.PricingTiers)-1] // cheapest as the editing default
		if pt, ok := c.Map.PricingTierByID("standard"); ok {
			pricing = pt
		}
	}

	c.sectionCount++
	var err error
	switch c.tool {
	case ToolPlaceStraight:
		var sec *venue.Section
		sec, err = layout.Straight(world, tier, pricing, fmt.Sprintf("Section %d", c.sectionCount), c.straightParams)
		if err == nil {
			err = c.Map.AddSection(c.Map.CurrentTier, sec)
		}
	case ToolPlaceCurved:
		var sec *venue.Section
		sec, err = layout.Curved(world, tier, pricing, fmt.Sprintf("Section %d", c.sectionCount), c.curvedParams)
		if err == nil {
			err = c.Map.AddSection(c.Map.CurrentTier, sec)
		}
	case ToolPlaceStage:
		var st *venue.Stage
		st, err = layout.Stage(world, "Stage", c.stageParams)
		if err == nil {
			err = c.Map.AddStage(st)
		}
	}
	c.tool = ToolSelect
	if err != nil {
		return
	}
	if c.OnPlaced != nil {
		c.OnPlaced()
	}
	c.changed()
}

func (c *Controller) hitSeat(screen geometry.Point2D) *venue.Seat {
	return selection.SeatAt(c.seats(), screen, c.Cam, c.Map.Settings)
}

func (c *Controller) seats() []*venue.Seat {
	return c.Map.CurrentTierPlane().Seats()
}

func (c *Controller) changed() {
	if c.OnChanged != nil {
		c.OnChanged()
	}
}
