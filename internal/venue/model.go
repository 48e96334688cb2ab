package venue

import "seatmap/pkg/geometry"

// SeatStatus is the booking state of a single seat.
type SeatStatus string

const (
	StatusAvailable SeatStatus = "available"
	StatusSelected  SeatStatus = "selected"
	StatusSold      SeatStatus = "sold"
	StatusBlocked   SeatStatus = "blocked"
	StatusReserved  SeatStatus = "reserved"
)

// Bookable reports whether a seat in this status can still be purchased.
// Reserved and sold seats are never addable to a cart.
func (s SeatStatus) Bookable() bool {
	return s != StatusSold && s != StatusReserved
}

// Seat is a single bookable unit. Its world position is fixed at creation
// time; only Status and the pricing tier association change afterwards.
type Seat struct {
	ID            string     `json:"id"`
	Label         string     `json:"label"`
	X             float64    `json:"x"`
	Y             float64    `json:"y"`
	Z             float64    `json:"z"`
	SectionID     string     `json:"sectionId"`
	Status        SeatStatus `json:"status"`
	TierID        string     `json:"tier"`
	PricingTierID string     `json:"pricingTier"`
	ViewAngle     float64    `json:"viewAngle,omitempty"`
	Obstructed    bool       `json:"obstructed,omitempty"`
	Row           string     `json:"row,omitempty"`
	Number        string     `json:"number,omitempty"`
}

// Position returns the seat's world position.
func (s *Seat) Position() geometry.Point2D {
	return geometry.Point2D{X: s.X, Y: s.Y}
}

// SectionKind distinguishes the two seat arrangements.
type SectionKind string

const (
	KindCurved   SectionKind = "curved-section"
	KindStraight SectionKind = "straight-section"
)

// Section is a placed arrangement of seats, either curved (an annular arc)
// or straight (a rectangular grid). A section exclusively owns its seats;
// they are generated once at creation and discarded with the section.
type Section struct {
	ID            string      `json:"id"`
	Kind          SectionKind `json:"type"`
	Label         string      `json:"label"`
	X             float64     `json:"x"`
	Y             float64     `json:"y"`
	Z             float64     `json:"z"`
	TierID        string      `json:"tier"`
	PricingTierID string      `json:"pricingTier"`
	Color         string      `json:"color,omitempty"`
	Seats         []*Seat     `json:"seats"`

	// Curved shape parameters (degrees / world units).
	StartAngle  float64 `json:"startAngle,omitempty"`
	EndAngle    float64 `json:"endAngle,omitempty"`
	InnerRadius float64 `json:"innerRadius,omitempty"`
	OuterRadius float64 `json:"outerRadius,omitempty"`

	// Straight shape parameters.
	Rows        int     `json:"rows,omitempty"`
	SeatsPerRow int     `json:"seatsPerRow,omitempty"`
	Width       float64 `json:"width,omitempty"`
	Height      float64 `json:"height,omitempty"`
}

// SeatByID returns the owned seat with the given id, or nil.
func (s *Section) SeatByID(id string) *Seat {
	for _, seat := range s.Seats {
		if seat.ID == id {
			return seat
		}
	}
	return nil
}

// StageShape is the outline drawn for a stage fixture.
type StageShape string

const (
	ShapeRectangle StageShape = "rectangle"
	ShapeArc       StageShape = "arc"
	ShapeCircle    StageShape = "circle"
)

// Stage is a non-bookable venue fixture. It has no seats.
type Stage struct {
	ID     string     `json:"id"`
	Label  string     `json:"label"`
	X      float64    `json:"x"`
	Y      float64    `json:"y"`
	Z      float64    `json:"z"`
	Width  float64    `json:"width"`
	Height float64    `json:"height"`
	Shape  StageShape `json:"shape"`
	Color  string     `json:"color"`
}

// Bounds returns the stage's world-space rectangle.
func (st *Stage) Bounds() geometry.Rect {
	return geometry.NewRect(st.X, st.Y, st.Width, st.Height)
}

// PricingTier is a named price point shared by reference from sections and
// seats. Its color drives both section and seat rendering.
type PricingTier struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Color string  `json:"color"`
}

// Tier is a horizontal elevation plane of the venue (orchestra, balcony, ...)
// holding the sections and stages placed on it.
type Tier struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Elevation float64  `json:"elevation"`
	Objects   []Object `json:"objects"`
}

// Seats returns every seat placed on this tier, section by section.
func (t *Tier) Seats() []*Seat {
	var seats []*Seat
	for _, obj := range t.Objects {
		if sec, ok := obj.(*Section); ok {
			seats = append(seats, sec.Seats...)
		}
	}
	return seats
}

// DisplaySettings holds the presentation parameters shared by builder and
// consumer views.
type DisplaySettings struct {
	Perspective  float64 `json:"perspective"`  // degrees
	CameraHeight float64 `json:"cameraHeight"` // world units
	ShowGrid     bool    `json:"showGrid"`
	Show3D       bool    `json:"show3D"`
}
