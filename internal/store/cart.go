// Package store owns the session-local cart and wishlist state. Each store
// is an explicitly constructed object: it loads its snapshot once at
// construction, and every mutating operation follows a mutate-then-persist
// two-step so persistence timing never depends on a rendering layer.
package store

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/shopspring/decimal"
	"github.com/tishe/storefront/internal/domain"
	"github.com/tishe/storefront/internal/normalize"
	"github.com/tishe/storefront/internal/port"
)

// Snapshot keys. A session owns its whole snapshot directory, so the keys
// themselves stay fixed.
const (
	DefaultCartKey     = "tishe_cart_v1"
	DefaultWishlistKey = "tishe_wishlist_v1"
)

// Cart holds an ordered collection of line items, at most one per item ID.
// Insertion order is preserved for display. Subtotal and TotalItems are
// recomputed on every call, never cached.
type Cart struct {
	mu    sync.Mutex
	items []domain.LineItem

	key       string
	snapshots port.SnapshotStore
	notifier  port.Notifier
	log       *slog.Logger
}

// NewCart builds a cart from the snapshot stored under key. A missing or
// unparseable snapshot yields an empty cart; it never fails the session.
func NewCart(key string, snapshots port.SnapshotStore, notifier port.Notifier, log *slog.Logger) *Cart {
	return &Cart{
		items:     loadSnapshot[domain.LineItem](key, snapshots, log),
		key:       key,
		snapshots: snapshots,
		notifier:  notifier,
		log:       log,
	}
}

// Add merges the product into the cart. If a line item with the same
// normalized ID already exists its quantity grows by the requested amount
// and its position is unchanged; otherwise the item is appended.
func (c *Cart) Add(rec domain.ProductRecord, quantity int) {
	item := normalize.LineItem(rec, quantity)

	c.mu.Lock()
	var message string
	if i := c.indexLocked(item.ID); i >= 0 {
		c.items[i].Quantity += item.Quantity
		message = fmt.Sprintf("%s quantity updated in cart", item.Name)
	} else {
		c.items = append(c.items, item)
		message = fmt.Sprintf("%s added to cart", item.Name)
	}
	c.persistLocked()
	c.mu.Unlock()

	c.notifier.Notify(message)
}

// UpdateQuantity sets the item's quantity. A quantity of zero or less
// removes the item; the same pass also drops any other item that somehow
// reached a non-positive quantity, keeping the invariant robust against
// earlier callers.
func (c *Cart) UpdateQuantity(id string, quantity int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	changed := false
	kept := c.items[:0]
	for _, item := range c.items {
		if item.ID == id {
			item.Quantity = quantity
			changed = true
		}
		if item.Quantity <= 0 {
			changed = true
			continue
		}
		kept = append(kept, item)
	}
	c.items = kept

	if changed {
		c.persistLocked()
	}
}

// Remove deletes the matching item. Removing an absent ID is a no-op.
func (c *Cart) Remove(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexLocked(id)
	if i < 0 {
		return
	}

	c.items = slices.Delete(c.items, i, i+1)
	c.persistLocked()
}

func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = nil
	c.persistLocked()
}

// Items returns the line items in insertion order. The slice is a copy.
func (c *Cart) Items() []domain.LineItem {
	c.mu.Lock()
	defer c.mu.Unlock()

	return slices.Clone(c.items)
}

// Subtotal is the sum of price*quantity over all items.
func (c *Cart) Subtotal() decimal.Decimal {
	c.mu.Lock()
	defer c.mu.Unlock()

	subtotal := decimal.Zero
	for _, item := range c.items {
		subtotal = subtotal.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	return subtotal
}

// TotalItems is the sum of quantities over all items.
func (c *Cart) TotalItems() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	total := 0
	for _, item := range c.items {
		total += item.Quantity
	}

	return total
}

func (c *Cart) persistLocked() {
	writeSnapshot(c.key, c.items, c.snapshots, c.log)
}

func (c *Cart) indexLocked(id string) int {
	return slices.IndexFunc(c.items, func(item domain.LineItem) bool {
		return item.ID == id
	})
}

// loadSnapshot reads and decodes the stored collection. Anything that goes
// wrong degrades to an empty collection with a warning; a corrupt snapshot
// must never fail the session.
func loadSnapshot[T any](key string, snapshots port.SnapshotStore, log *slog.Logger) []T {
	data, ok, err := snapshots.Read(key)
	if err != nil {
		log.Warn("snapshot read failed, starting empty", "key", key, "error", err)
		return nil
	}
	if !ok {
		return nil
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		log.Warn("snapshot is malformed, starting empty", "key", key, "error", err)
		return nil
	}

	return items
}

// writeSnapshot serializes the whole collection under the key. Write
// failures are logged and dropped: losing a snapshot must not fail the
// mutation that triggered it.
func writeSnapshot[T any](key string, items []T, snapshots port.SnapshotStore, log *slog.Logger) {
	data, err := json.Marshal(items)
	if err != nil {
		log.Warn("snapshot encode failed", "key", key, "error", err)
		return
	}

	if err := snapshots.Write(key, data); err != nil {
		log.Warn("snapshot write failed", "key", key, "error", err)
	}
}
