package cart

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"seatmap/internal/venue"
)

// paymentDelay is how long the simulated payment processor takes.
const paymentDelay = 2 * time.Second

// PaymentStatus tracks an order through the (simulated) payment flow.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentSuccess PaymentStatus = "success"
	PaymentFailed  PaymentStatus = "failed"
)

// CustomerInfo identifies the purchaser. Name and Email are required;
// Phone is optional.
type CustomerInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

func (ci CustomerInfo) validate() error {
	if strings.TrimSpace(ci.Name) == "" || strings.TrimSpace(ci.Email) == "" {
		return ErrMissingCustomer
	}
	return nil
}

// Order is a completed purchase: the items bought, who bought them, and
// one signed ticket per seat.
type Order struct {
	ID        string        `json:"id"`
	Customer  CustomerInfo  `json:"customer"`
	Items     []Item        `json:"items"`
	Total     float64       `json:"total"`
	Status    PaymentStatus `json:"status"`
	CreatedAt time.Time     `json:"createdAt"`
	Tickets   []Ticket      `json:"tickets"`
}

// Checkout runs the purchase flow: validate the customer, simulate the
// payment processor, mark every cart seat sold on the map, and issue
// signed tickets. The cart is cleared on success. The context cancels
// the simulated payment wait.
func Checkout(ctx context.Context, c *Cart, m *venue.Map, customer CustomerInfo, issuer *TicketIssuer) (*Order, error) {
	if c.Len() == 0 {
		return nil, ErrEmptyCart
	}
	if err := customer.validate(); err != nil {
		return nil, err
	}

	order := &Order{
		ID:        uuid.NewString(),
		Customer:  customer,
		Items:     c.Items(),
		Total:     c.Total(),
		Status:    PaymentPending,
		CreatedAt: time.Now().UTC(),
	}

	select {
	case <-time.After(paymentDelay):
	case <-ctx.Done():
		order.Status = PaymentFailed
		return order, ctx.Err()
	}
	order.Status = PaymentSuccess

	for _, it := range order.Items {
		if err := m.SetSeatStatus(it.SeatID, venue.StatusSold); err != nil {
			return order, err
		}
		tk, err := issuer.Issue(order.ID, it)
		if err != nil {
			return order, err
		}
		order.Tickets = append(order.Tickets, tk)
	}

	c.Clear()
	return order, nil
}
