package venue

import "fmt"

// Map is the aggregate root for a venue plan. Tiers own the placed
// objects; the flat object view used for export is computed on demand so
// there is no duplicated list to keep in sync.
type Map struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Tiers        []*Tier         `json:"tiers"`
	CurrentTier  int             `json:"currentTier"`
	PricingTiers []PricingTier   `json:"pricingTiers"`
	Settings     DisplaySettings `json:"settings"`
}

// NewDefaultMap returns an empty three-tier venue with the standard pricing
// tiers, matching the builder's starting state.
func NewDefaultMap() *Map {
	return &Map{
		ID:   "venue-1",
		Name: "New Venue",
		Tiers: []*Tier{
			{ID: "orchestra", Name: "Orchestra", Elevation: 0},
			{ID: "boxes", Name: "Boxes", Elevation: 50},
			{ID: "balcony", Name: "Balcony", Elevation: 100},
		},
		CurrentTier: 0,
		PricingTiers: []PricingTier{
			{ID: "premium", Name: "Premium", Price: 150, Color: "#ef4444"},
			{ID: "standard", Name: "Standard", Price: 100, Color: "#3b82f6"},
			{ID: "economy", Name: "Economy", Price: 50, Color: "#10b981"},
			{ID: "balcony", Name: "Balcony", Price: 75, Color: "#f59e0b"},
		},
		Settings: DisplaySettings{
			Perspective:  45,
			CameraHeight: 200,
			ShowGrid:     true,
			Show3D:       true,
		},
	}
}

// CurrentTierPlane returns the active tier, or nil if the map has no tiers.
func (m *Map) CurrentTierPlane() *Tier {
	if m.CurrentTier < 0 || m.CurrentTier >= len(m.Tiers) {
		return nil
	}
	return m.Tiers[m.CurrentTier]
}

// SwitchTier changes the active tier. Seat data is untouched.
func (m *Map) SwitchTier(index int) error {
	if index < 0 || index >= len(m.Tiers) {
		return fmt.Errorf("%w: %d", ErrInvalidTier, index)
	}
	m.CurrentTier = index
	return nil
}

// AddSection places a section on the given tier.
func (m *Map) AddSection(tierIndex int, sec *Section) error {
	if tierIndex < 0 || tierIndex >= len(m.Tiers) {
		return fmt.Errorf("%w: %d", ErrInvalidTier, tierIndex)
	}
	m.Tiers[tierIndex].Objects = append(m.Tiers[tierIndex].Objects, sec)
	return nil
}

// AddStage places a stage on the current tier. At most one stage per tier
// is a convention, not enforced.
func (m *Map) AddStage(st *Stage) error {
	tier := m.CurrentTierPlane()
	if tier == nil {
		return fmt.Errorf("%w: %d", ErrInvalidTier, m.CurrentTier)
	}
	tier.Objects = append(tier.Objects, st)
	return nil
}

// Objects returns the flat union of every tier's placed objects, in tier
// order. Computed on demand; used for export and summaries.
func (m *Map) Objects() []Object {
	var all []Object
	for _, tier := range m.Tiers {
		all = append(all, tier.Objects...)
	}
	return all
}

// ObjectCount returns the number of placed objects across all tiers.
func (m *Map) ObjectCount() int {
	n := 0
	for _, tier := range m.Tiers {
		n += len(tier.Objects)
	}
	return n
}

// FindSeat locates a seat on the current tier by id. A linear scan is fine
// at venue scale (low thousands of seats).
func (m *Map) FindSeat(seatID string) *Seat {
	tier := m.CurrentTierPlane()
	if tier == nil {
		return nil
	}
	for _, obj := range tier.Objects {
		if sec, ok := obj.(*Section); ok {
			if seat := sec.SeatByID(seatID); seat != nil {
				return seat
			}
		}
	}
	return nil
}

// SectionOf returns the current-tier section owning the given seat.
func (m *Map) SectionOf(seatID string) *Section {
	tier := m.CurrentTierPlane()
	if tier == nil {
		return nil
	}
	for _, obj := range tier.Objects {
		if sec, ok := obj.(*Section); ok {
			if sec.SeatByID(seatID) != nil {
				return sec
			}
		}
	}
	return nil
}

// SetSeatStatus updates a seat's status on the current tier.
func (m *Map) SetSeatStatus(seatID string, status SeatStatus) error {
	seat := m.FindSeat(seatID)
	if seat == nil {
		return fmt.Errorf("seat %s: %w", seatID, ErrNotFound)
	}
	seat.Status = status
	return nil
}

// PricingTierByID resolves a pricing tier reference.
func (m *Map) PricingTierByID(id string) (PricingTier, bool) {
	for _, pt := range m.PricingTiers {
		if pt.ID == id {
			return pt, true
		}
	}
	return PricingTier{}, false
}

// Validate checks referential integrity: the current tier index is in
// range and every seat's pricing tier resolves. Used before an imported
// map replaces the live one.
func (m *Map) Validate() error {
	if len(m.Tiers) == 0 {
		return fmt.Errorf("%w: map has no tiers", ErrInvalidTier)
	}
	if m.CurrentTier < 0 || m.CurrentTier >= len(m.Tiers) {
		return fmt.Errorf("%w: current tier %d of %d", ErrInvalidTier, m.CurrentTier, len(m.Tiers))
	}
	for _, tier := range m.Tiers {
		for _, obj := range tier.Objects {
			sec, ok := obj.(*Section)
			if !ok {
				continue
			}
			if _, ok := m.PricingTierByID(sec.PricingTierID); !ok {
				return fmt.Errorf("section %s pricing tier %q: %w", sec.ID, sec.PricingTierID, ErrNotFound)
			}
			for _, seat := range sec.Seats {
				if _, ok := m.PricingTierByID(seat.PricingTierID); !ok {
					return fmt.Errorf("seat %s pricing tier %q: %w", seat.ID, seat.PricingTierID, ErrNotFound)
				}
			}
		}
	}
	return nil
}
