// Package app provides application state, configuration, and events.
package app

import (
	"context"
	"math"
	"sync"

	"seatmap/internal/cart"
	"seatmap/internal/interaction"
	"seatmap/internal/project"
	"seatmap/internal/selection"
	"seatmap/internal/venue"
	"seatmap/internal/view"
	"seatmap/pkg/geometry"
)

// Mode selects between the designer surface and the customer-facing
// browser surface.
type Mode int

const (
	ModeBuilder Mode = iota
	ModeConsumer
)

// EventType identifies different application events.
type EventType int

const (
	EventVenueLoaded EventType = iota
	EventVenueSaved
	EventObjectsChanged
	EventTierChanged
	EventSelectionChanged
	EventCameraChanged
	EventCartChanged
	EventOrderCompleted
	EventModeChanged
	EventModified
)

// EventListener is called when an event occurs.
type EventListener func(data interface{})

// State holds the application state: the venue being edited, the camera,
// the selection, the cart, and the active interaction controller.
type State struct {
	mu sync.RWMutex

	Venue      *venue.Map
	Camera     *view.Camera
	Selection  *selection.Set
	Cart       *cart.Cart
	Controller *interaction.Controller
	Issuer     *cart.TicketIssuer

	ProjectPath string
	Modified    bool

	mode Mode

	listeners map[EventType][]EventListener
}

// NewState creates application state around a fresh default venue.
func NewState(ticketKey []byte) *State {
	s := &State{
		Venue:     venue.NewDefaultMap(),
		Camera:    view.NewCamera(),
		Selection: selection.NewSet(),
		Cart:      cart.New(),
		Issuer:    cart.NewTicketIssuer(ticketKey),
		listeners: make(map[EventType][]EventListener),
	}
	s.Controller = interaction.NewController(s.Venue, s.Camera, s.Selection)
	s.Controller.OnPlaced = func() {
		s.SetModified(true)
		s.Emit(EventObjectsChanged, nil)
	}
	s.Controller.OnChanged = func() {
		s.Emit(EventSelectionChanged, nil)
	}
	return s
}

// On registers an event listener for the specified event type.
func (s *State) On(event EventType, listener EventListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners[event] = append(s.listeners[event], listener)
}

// Emit triggers all listeners for the specified event type.
func (s *State) Emit(event EventType, data interface{}) {
	s.mu.RLock()
	listeners := s.listeners[event]
	s.mu.RUnlock()

	for _, listener := range listeners {
		listener(data)
	}
}

// SetModified marks the venue as modified and emits an event.
func (s *State) SetModified(modified bool) {
	s.mu.Lock()
	s.Modified = modified
	s.mu.Unlock()
	s.Emit(EventModified, modified)
}

func (s *State) Mode() Mode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mode
}

// SetMode switches between builder and consumer surfaces. Entering
// consumer mode clears the selection and arms the booking guard.
func (s *State) SetMode(m Mode) {
	s.mu.Lock()
	s.mode = m
	s.Controller.ConsumerMode = m == ModeConsumer
	s.mu.Unlock()
	s.Selection.Clear()
	s.Emit(EventModeChanged, m)
	s.Emit(EventSelectionChanged, nil)
}

// LoadVenue replaces the current venue with one loaded from a file. The
// document is fully parsed and validated before anything is replaced, so
// a bad file leaves the current venue intact.
func (s *State) LoadVenue(path string) error {
	doc, err := project.Load(path)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.Venue = doc.Venue
	s.ProjectPath = path
	s.Modified = false
	s.Controller = interaction.NewController(s.Venue, s.Camera, s.Selection)
	s.Controller.ConsumerMode = s.mode == ModeConsumer
	s.mu.Unlock()

	s.Selection.Clear()
	s.Cart.Clear()
	s.Camera.Reset()
	s.Emit(EventVenueLoaded, path)
	return nil
}

// SaveVenue writes the venue to a file and clears the modified flag.
func (s *State) SaveVenue(path string) error {
	s.mu.RLock()
	doc := project.New(s.Venue)
	s.mu.RUnlock()

	if err := doc.Save(path); err != nil {
		return err
	}

	s.mu.Lock()
	s.ProjectPath = path
	s.Modified = false
	s.mu.Unlock()
	s.Emit(EventVenueSaved, path)
	return nil
}

// SwitchTier changes the visible tier and drops the selection, which
// only ever refers to seats on the visible tier.
func (s *State) SwitchTier(index int) error {
	if err := s.Venue.SwitchTier(index); err != nil {
		return err
	}
	s.Selection.Clear()
	s.Emit(EventTierChanged, index)
	s.Emit(EventSelectionChanged, nil)
	return nil
}

// SetSelectedStatus applies a seat status to every selected seat.
func (s *State) SetSelectedStatus(status venue.SeatStatus) error {
	for _, id := range s.Selection.IDs() {
		if err := s.Venue.SetSeatStatus(id, status); err != nil {
			return err
		}
	}
	s.SetModified(true)
	s.Emit(EventObjectsChanged, nil)
	return nil
}

// ToggleCartSeat adds or removes a selected seat from the cart.
func (s *State) ToggleCartSeat(seatID string) error {
	seat := s.Venue.FindSeat(seatID)
	if seat == nil {
		return venue.ErrNotFound
	}
	sec := s.Venue.SectionOf(seatID)
	pricing, _ := s.Venue.PricingTierByID(seat.PricingTierID)
	if err := s.Cart.Toggle(seat, sec, pricing); err != nil {
		return err
	}
	s.Emit(EventCartChanged, nil)
	return nil
}

// Checkout runs the purchase flow for the current cart contents.
func (s *State) Checkout(ctx context.Context, customer cart.CustomerInfo) (*cart.Order, error) {
	order, err := cart.Checkout(ctx, s.Cart, s.Venue, customer, s.Issuer)
	if err != nil {
		return order, err
	}
	s.Selection.Clear()
	s.SetModified(true)
	s.Emit(EventCartChanged, nil)
	s.Emit(EventObjectsChanged, nil)
	s.Emit(EventOrderCompleted, order)
	return order, nil
}

// FitAll frames the whole current tier in the viewport.
func (s *State) FitAll(viewport geometry.Size) error {
	bounds, ok := s.worldBounds()
	if !ok {
		s.Camera.Reset()
		s.Emit(EventCameraChanged, nil)
		return nil
	}
	cam, err := view.FitToBounds(bounds, viewport, 40)
	if err != nil {
		return err
	}
	*s.Camera = *cam
	s.Emit(EventCameraChanged, nil)
	return nil
}

// ViewFromSeat frames the neighborhood of a seat together with the
// nearest stage, approximating that seat's sightline.
func (s *State) ViewFromSeat(seatID string, viewport geometry.Size) error {
	seat := s.Venue.FindSeat(seatID)
	if seat == nil {
		return venue.ErrNotFound
	}
	// A tier can hold more than one stage; frame toward the nearest.
	var stageBounds *geometry.Rect
	best := math.MaxFloat64
	for _, obj := range s.Venue.CurrentTierPlane().Objects {
		if st, ok := obj.(*venue.Stage); ok {
			b := st.Bounds()
			if d := seat.Position().Distance(b.Center()); d < best {
				best = d
				bounds := b
				stageBounds = &bounds
			}
		}
	}
	cam, err := view.FrameSeat(seat.Position(), stageBounds, viewport)
	if err != nil {
		return err
	}
	*s.Camera = *cam
	s.Emit(EventCameraChanged, nil)
	return nil
}

// worldBounds is the bounding box of everything on the current tier.
func (s *State) worldBounds() (geometry.Rect, bool) {
	tier := s.Venue.CurrentTierPlane()
	if tier == nil {
		return geometry.Rect{}, false
	}
	var pts []geometry.Point2D
	for _, obj := range tier.Objects {
		switch o := obj.(type) {
		case *venue.Section:
			for _, seat := range o.Seats {
				pts = append(pts, seat.Position())
			}
		case *venue.Stage:
			b := o.Bounds()
			pts = append(pts, b.TopLeft(), b.BottomRight())
		}
	}
	if len(pts) == 0 {
		return geometry.Rect{}, false
	}
	return geometry.BoundingBox(pts), true
}
