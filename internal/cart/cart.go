// Package cart implements the consumer purchase flow: a seat cart,
// simulated payment, and signed QR tickets.
package cart

import (
	"errors"

	"seatmap/internal/venue"
)

var (
	// ErrSeatUnavailable is returned when a sold or reserved seat is
	// added to the cart.
	ErrSeatUnavailable = errors.New("cart: seat is not available for booking")
	// ErrEmptyCart is returned by checkout when nothing is in the cart.
	ErrEmptyCart = errors.New("cart: cart is empty")
	// ErrMissingCustomer is returned by checkout when the customer name
	// or email is blank.
	ErrMissingCustomer = errors.New("cart: customer name and email are required")
)

// Item is one seat held in the cart together with its resolved price.
type Item struct {
	SeatID  string  `json:"seatId"`
	Label   string  `json:"label"`
	Section string  `json:"section"`
	Tier    string  `json:"tier"`
	Price   float64 `json:"price"`
}

// Cart holds seats the customer intends to buy. Adding a seat twice
// removes it, matching the toggle behavior of clicking a seat in the
// browser view.
type Cart struct {
	items []Item
}

func New() *Cart {
	return &Cart{}
}

// Toggle adds the seat to the cart or, if it is already in the cart,
// removes it. Seats that cannot be booked are rejected.
func (c *Cart) Toggle(seat *venue.Seat, section *venue.Section, pricing venue.PricingTier) error {
	if seat == nil {
		return venue.ErrNotFound
	}
	if !seat.Status.Bookable() {
		return ErrSeatUnavailable
	}
	for i, it := range c.items {
		if it.SeatID == seat.ID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return nil
		}
	}
	sectionLabel := ""
	if section != nil {
		sectionLabel = section.Label
	}
	c.items = append(c.items, Item{
		SeatID:  seat.ID,
		Label:   seat.Label,
		Section: sectionLabel,
		Tier:    pricing.Name,
		Price:   pricing.Price,
	})
	return nil
}

// Remove drops a seat from the cart by ID. Removing an absent seat is a
// no-op.
func (c *Cart) Remove(seatID string) {
	for i, it := range c.items {
		if it.SeatID == seatID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

func (c *Cart) Contains(seatID string) bool {
	for _, it := range c.items {
		if it.SeatID == seatID {
			return true
		}
	}
	return false
}

// Items returns a copy of the cart contents in insertion order.
func (c *Cart) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Cart) Len() int { return len(c.items) }

// Total is the sum of all item prices.
func (c *Cart) Total() float64 {
	var sum float64
	for _, it := range c.items {
		sum += it.Price
	}
	return sum
}

func (c *Cart) Clear() {
	c.items = nil
}
