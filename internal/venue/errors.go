// Package venue holds the venue data model: tiers, sections, seats, stages
// and pricing tiers, plus the mutation operations that keep them consistent.
package venue

import "errors"

// ErrInvalidTier is returned when a tier index is out of range.
var ErrInvalidTier = errors.New("invalid tier index")

// ErrNotFound is returned when a referenced seat, section or pricing tier
// does not exist in the map.
var ErrNotFound = errors.New("not found")
