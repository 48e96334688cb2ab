package cart

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/skip2/go-qrcode"
)

// ErrBadSignature is returned when a scanned ticket payload fails
// verification.
var ErrBadSignature = errors.New("cart: ticket signature does not verify")

// qrSize is the side length in pixels of the generated QR image.
const qrSize = 256

// Ticket is one admission credential. Payload is the signed string the
// QR code carries; QR is the encoded PNG.
type Ticket struct {
	SeatID  string `json:"seatId"`
	Payload string `json:"payload"`
	QR      []byte `json:"-"`
}

// TicketIssuer signs ticket payloads with an HMAC-SHA256 key so the
// venue can verify a scanned code offline.
type TicketIssuer struct {
	key []byte
}

func NewTicketIssuer(key []byte) *TicketIssuer {
	return &TicketIssuer{key: key}
}

// Issue builds the payload "orderID:seatID:signature" and renders it as
// a QR code.
func (ti *TicketIssuer) Issue(orderID string, it Item) (Ticket, error) {
	body := orderID + ":" + it.SeatID
	payload := body + ":" + ti.sign(body)

	png, err := qrcode.Encode(payload, qrcode.Medium, qrSize)
	if err != nil {
		return Ticket{}, fmt.Errorf("encoding ticket QR for seat %s: %w", it.SeatID, err)
	}
	return Ticket{SeatID: it.SeatID, Payload: payload, QR: png}, nil
}

// Verify checks a scanned payload and returns the order and seat IDs it
// names.
func (ti *TicketIssuer) Verify(payload string) (orderID, seatID string, err error) {
	i := strings.LastIndex(payload, ":")
	if i < 0 {
		return "", "", ErrBadSignature
	}
	body, sig := payload[:i], payload[i+1:]
	if !hmac.Equal([]byte(sig), []byte(ti.sign(body))) {
		return "", "", ErrBadSignature
	}
	parts := strings.SplitN(body, ":", 2)
	if len(parts) != 2 {
		return "", "", ErrBadSignature
	}
	return parts[0], parts[1], nil
}

func (ti *TicketIssuer) sign(body string) string {
	mac := hmac.New(sha256.New, ti.key)
	mac.Write([]byte(body))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}
