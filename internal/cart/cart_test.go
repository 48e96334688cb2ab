package cart

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seatmap/internal/venue"
)

func demoMap(t *testing.T) *venue.Map {
	t.Helper()
	m := venue.NewDefaultMap()
	sec := &venue.Section{
		ID:            "sec-1",
		Kind:          venue.KindStraight,
		Label:         "Section A",
		PricingTierID: "standard",
		Seats: []*venue.Seat{
			{ID: "s1", Label: "A1", SectionID: "sec-1", Status: venue.StatusAvailable, PricingTierID: "standard"},
			{ID: "s2", Label: "A2", SectionID: "sec-1", Status: venue.StatusReserved, PricingTierID: "standard"},
			{ID: "s3", Label: "A3", SectionID: "sec-1", Status: venue.StatusSold, PricingTierID: "premium"},
		},
	}
	require.NoError(t, m.AddSection(0, sec))
	return m
}

func toggle(t *testing.T, c *Cart, m *venue.Map, seatID string) error {
	t.Helper()
	seat := m.FindSeat(seatID)
	require.NotNil(t, seat)
	pricing, _ := m.PricingTierByID(seat.PricingTierID)
	return c.Toggle(seat, m.SectionOf(seatID), pricing)
}

func TestCartToggle(t *testing.T) {
	m := demoMap(t)
	c := New()

	require.NoError(t, toggle(t, c, m, "s1"))
	assert.True(t, c.Contains("s1"))
	assert.Equal(t, 100.0, c.Total())

	// Toggling again removes.
	require.NoError(t, toggle(t, c, m, "s1"))
	assert.False(t, c.Contains("s1"))
	assert.Equal(t, 0, c.Len())
}

func TestCartRejectsUnbookable(t *testing.T) {
	m := demoMap(t)
	c := New()

	assert.ErrorIs(t, toggle(t, c, m, "s2"), ErrSeatUnavailable)
	assert.ErrorIs(t, toggle(t, c, m, "s3"), ErrSeatUnavailable)
	assert.Equal(t, 0, c.Len())
}

func TestCartRemove(t *testing.T) {
	m := demoMap(t)
	c := New()
	require.NoError(t, toggle(t, c, m, "s1"))

	c.Remove("missing") // no-op
	assert.Equal(t, 1, c.Len())

	c.Remove("s1")
	assert.Equal(t, 0, c.Len())
}

func TestCheckoutValidation(t *testing.T) {
	m := demoMap(t)
	c := New()
	issuer := NewTicketIssuer([]byte("test-key"))

	_, err := Checkout(context.Background(), c, m, CustomerInfo{Name: "Ada", Email: "ada@example.com"}, issuer)
	assert.ErrorIs(t, err, ErrEmptyCart)

	require.NoError(t, toggle(t, c, m, "s1"))
	_, err = Checkout(context.Background(), c, m, CustomerInfo{Name: " ", Email: "ada@example.com"}, issuer)
	assert.ErrorIs(t, err, ErrMissingCustomer)
	_, err = Checkout(context.Background(), c, m, CustomerInfo{Name: "Ada"}, issuer)
	assert.ErrorIs(t, err, ErrMissingCustomer)

	// Failed validation leaves the cart intact.
	assert.Equal(t, 1, c.Len())
}

func TestCheckoutCancelled(t *testing.T) {
	m := demoMap(t)
	c := New()
	issuer := NewTicketIssuer([]byte("test-key"))
	require.NoError(t, toggle(t, c, m, "s1"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	order, err := Checkout(ctx, c, m, CustomerInfo{Name: "Ada", Email: "ada@example.com"}, issuer)
	assert.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, order)
	assert.Equal(t, PaymentFailed, order.Status)

	// The seat was not sold and the cart still holds it.
	assert.Equal(t, venue.StatusAvailable, m.FindSeat("s1").Status)
	assert.Equal(t, 1, c.Len())
}

func TestCheckoutMarksSeatsSold(t *testing.T) {
	m := demoMap(t)
	c := New()
	issuer := NewTicketIssuer([]byte("test-key"))
	require.NoError(t, toggle(t, c, m, "s1"))

	order, err := Checkout(context.Background(), c, m, CustomerInfo{Name: "Ada", Email: "ada@example.com"}, issuer)
	require.NoError(t, err)

	assert.Equal(t, PaymentSuccess, order.Status)
	assert.NotEmpty(t, order.ID)
	assert.Equal(t, 100.0, order.Total)
	require.Len(t, order.Tickets, 1)
	assert.Equal(t, "s1", order.Tickets[0].SeatID)
	assert.NotEmpty(t, order.Tickets[0].QR)

	assert.Equal(t, venue.StatusSold, m.FindSeat("s1").Status)
	assert.Equal(t, 0, c.Len())
}

func TestTicketVerify(t *testing.T) {
	issuer := NewTicketIssuer([]byte("test-key"))
	tk, err := issuer.Issue("order-1", Item{SeatID: "s1", Label: "A1", Price: 100})
	require.NoError(t, err)

	orderID, seatID, err := issuer.Verify(tk.Payload)
	require.NoError(t, err)
	assert.Equal(t, "order-1", orderID)
	assert.Equal(t, "s1", seatID)

	// Tampered payload fails, as does a payload signed with another key.
	_, _, err = issuer.Verify("order-2:s1:" + tk.Payload[len("order-1:s1:"):])
	assert.ErrorIs(t, err, ErrBadSignature)

	other := NewTicketIssuer([]byte("other-key"))
	_, _, err = other.Verify(tk.Payload)
	assert.ErrorIs(t, err, ErrBadSignature)
}
