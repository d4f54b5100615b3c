// Package cart owns the in-memory list of line items for one shopping
// session. All mutation goes through Cart's methods; every successful
// mutation writes a full snapshot through the injected store.
package cart

import (
	"context"
	"fmt"
	"sync"

	"github.com/take-two/storefront/cartstore"
	"github.com/take-two/storefront/models"
)

// ValidationError reports a missing or invalid user-supplied field. The
// operation that produced it has not mutated the cart.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// AddParams describes one add-to-cart action. Quantity is always 1; repeated
// adds of the same (Name, Size, Color) merge into the existing row.
type AddParams struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Image string  `json:"img"`
	Size  string  `json:"size"`
	Color string  `json:"color"`
}

type Cart struct {
	mu     sync.Mutex
	items  []models.LineItem
	nextID int64
	store  cartstore.Store
}

// Open reads the slot snapshot and returns a cart positioned after the last
// assigned row ID. A missing or malformed slot yields an empty cart.
func Open(ctx context.Context, store cartstore.Store) *Cart {
	items := store.Load(ctx)
	var maxID int64
	for _, it := range items {
		if it.ID > maxID {
			maxID = it.ID
		}
	}
	return &Cart{items: items, nextID: maxID + 1, store: store}
}

// Add merges the item into an existing row when (Name, Size, Color) match,
// otherwise appends a fresh row with quantity 1. Size and color are required;
// on a validation failure the cart is untouched and nothing is persisted.
func (c *Cart) Add(ctx context.Context, p AddParams) error {
	if p.Size == "" {
		return &ValidationError{Field: "size", Reason: "please choose a size"}
	}
	if p.Color == "" {
		return &ValidationError{Field: "color", Reason: "please choose a color"}
	}
	if p.Price < 0 {
		return &ValidationError{Field: "price", Reason: "must not be negative"}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].Name == p.Name && c.items[i].Size == p.Size && c.items[i].Color == p.Color {
			c.items[i].Quantity++
			return c.persist(ctx)
		}
	}

	c.items = append(c.items, models.LineItem{
		ID:       c.nextID,
		Name:     p.Name,
		Price:    p.Price,
		Image:    p.Image,
		Size:     p.Size,
		Color:    p.Color,
		Quantity: 1,
	})
	c.nextID++
	return c.persist(ctx)
}

// Remove deletes the row currently displayed at the given position,
// regardless of its quantity. An out-of-range index is a no-op; callers only
// hold indices obtained from the current render.
func (c *Cart) Remove(ctx context.Context, index int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if index < 0 || index >= len(c.items) {
		return nil
	}
	c.items = append(c.items[:index], c.items[index+1:]...)
	return c.persist(ctx)
}

// Clear empties the cart and persists the empty snapshot.
func (c *Cart) Clear(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = []models.LineItem{}
	return c.persist(ctx)
}

// Items returns a copy of the current rows in insertion order.
func (c *Cart) Items() []models.LineItem {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]models.LineItem, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Cart) TotalQuantity() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	total := 0
	for _, it := range c.items {
		total += it.Quantity
	}
	return total
}

func (c *Cart) TotalPrice() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	var total float64
	for _, it := range c.items {
		total += it.Price * float64(it.Quantity)
	}
	return total
}

// persist writes the full snapshot. Callers hold c.mu.
func (c *Cart) persist(ctx context.Context) error {
	return c.store.Save(ctx, c.items)
}
