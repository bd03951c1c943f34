// Package cart holds the in-memory cart and its mutation rules.
package cart

import (
	"github.com/nslux/shopctl/internal/model"
)

// Store is the persistence hook the manager writes through. The concrete
// implementation is storage.Storage; tests substitute a recorder.
type Store interface {
	SaveCart(cart model.Cart) error
}

// Manager owns the cart. Lines are unique per product id; quantities below
// one never survive a mutation. Every mutation persists the full cart.
type Manager struct {
	store Store
	lines model.Cart
}

// NewManager returns a Manager seeded with a previously persisted cart.
func NewManager(store Store, initial model.Cart) *Manager {
	return &Manager{store: store, lines: initial}
}

// Lines returns a copy of the cart in display order.
func (m *Manager) Lines() model.Cart {
	out := make(model.Cart, len(m.lines))
	copy(out, m.lines)
	return out
}

// Add puts quantity units of product in the cart. An existing line for the
// same product has its quantity incremented; otherwise a new line snapshots
// the product's current fields. Quantity values below one are normalized to
// one; stock is the caller's concern.
func (m *Manager) Add(product model.Product, quantity int) error {
	if quantity < 1 {
		quantity = 1
	}

	if line := m.lines.Find(product.ID); line != nil {
		line.Quantity += quantity
	} else {
		m.lines = append(m.lines, model.LineFromProduct(product, quantity))
	}
	return m.persist()
}

// Remove deletes the line for productID. Removing an absent id is a no-op
// that still persists (harmless overwrite with the same contents).
func (m *Manager) Remove(productID string) error {
	for i := range m.lines {
		if m.lines[i].ProductID == productID {
			m.lines = append(m.lines[:i], m.lines[i+1:]...)
			break
		}
	}
	return m.persist()
}

// SetQuantity sets the line's quantity to exactly quantity. A value of zero
// or below removes the line entirely.
func (m *Manager) SetQuantity(productID string, quantity int) error {
	if quantity <= 0 {
		return m.Remove(productID)
	}
	if line := m.lines.Find(productID); line != nil {
		line.Quantity = quantity
	}
	return m.persist()
}

// Clear empties the cart.
func (m *Manager) Clear() error {
	m.lines = nil
	return m.persist()
}

// Total returns the derived cart total.
func (m *Manager) Total() float64 {
	return m.lines.Total()
}

// ItemCount returns the derived number of items across all lines.
func (m *Manager) ItemCount() int {
	return m.lines.ItemCount()
}

// IsEmpty reports whether the cart has no lines.
func (m *Manager) IsEmpty() bool {
	return len(m.lines) == 0
}

func (m *Manager) persist() error {
	return m.store.SaveCart(m.Lines())
}
