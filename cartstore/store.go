// Package cartstore persists cart snapshots to a named slot in a key-value
// backing store. Every save overwrites the slot with the full item sequence;
// a missing or unreadable slot always reads back as an empty cart.
package cartstore

import (
	"context"

	"github.com/take-two/storefront/models"
)

type Store interface {
	// Load reads the slot. Missing or malformed content yields an empty
	// sequence, never an error.
	Load(ctx context.Context) []models.LineItem
	// Save overwrites the slot with a full snapshot of the cart.
	Save(ctx context.Context, items []models.LineItem) error
}
