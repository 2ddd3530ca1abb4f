package store

import (
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/tishe/storefront/internal/domain"
	"github.com/tishe/storefront/internal/normalize"
	"github.com/tishe/storefront/internal/port"
)

// Wishlist holds saved products, at most one entry per item ID. Presence is
// binary; the retained order is only incidental display order.
type Wishlist struct {
	mu    sync.Mutex
	items []domain.WishlistItem

	key       string
	snapshots port.SnapshotStore
	notifier  port.Notifier
	log       *slog.Logger
}

// NewWishlist builds a wishlist from the snapshot stored under key. A
// missing or unparseable snapshot yields an empty wishlist.
func NewWishlist(key string, snapshots port.SnapshotStore, notifier port.Notifier, log *slog.Logger) *Wishlist {
	return &Wishlist{
		items:     loadSnapshot[domain.WishlistItem](key, snapshots, log),
		key:       key,
		snapshots: snapshots,
		notifier:  notifier,
		log:       log,
	}
}

// Add saves the product unless its normalized ID is already present.
// It reports whether an insertion happened, so callers can decide whether
// anything user-visible changed.
func (w *Wishlist) Add(rec domain.ProductRecord) bool {
	item := normalize.WishlistItem(rec)

	w.mu.Lock()
	if w.indexLocked(item.ID) >= 0 {
		w.mu.Unlock()
		return false
	}
	w.items = append(w.items, item)
	w.persistLocked()
	w.mu.Unlock()

	w.notifier.Notify(fmt.Sprintf("%s saved to wishlist", item.Name))
	return true
}

// Remove deletes the matching entry. Removing an absent ID is a no-op.
func (w *Wishlist) Remove(id string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	i := w.indexLocked(id)
	if i < 0 {
		return
	}

	w.items = slices.Delete(w.items, i, i+1)
	w.persistLocked()
}

// Toggle flips membership: present removes, absent inserts. The decision is
// made once under the lock, so a toggle never removes and re-adds in the
// same call.
func (w *Wishlist) Toggle(rec domain.ProductRecord) {
	item := normalize.WishlistItem(rec)

	w.mu.Lock()
	var message string
	if i := w.indexLocked(item.ID); i >= 0 {
		w.items = slices.Delete(w.items, i, i+1)
		message = fmt.Sprintf("%s removed from wishlist", item.Name)
	} else {
		w.items = append(w.items, item)
		message = fmt.Sprintf("%s saved to wishlist", item.Name)
	}
	w.persistLocked()
	w.mu.Unlock()

	w.notifier.Notify(message)
}

// Contains reports membership by item ID.
func (w *Wishlist) Contains(id string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.indexLocked(id) >= 0
}

// Items returns the saved products. The slice is a copy.
func (w *Wishlist) Items() []domain.WishlistItem {
	w.mu.Lock()
	defer w.mu.Unlock()

	return slices.Clone(w.items)
}

func (w *Wishlist) persistLocked() {
	writeSnapshot(w.key, w.items, w.snapshots, w.log)
}

func (w *Wishlist) indexLocked(id string) int {
	return slices.IndexFunc(w.items, func(item domain.WishlistItem) bool {
		return item.ID == id
	})
}
