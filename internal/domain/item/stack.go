package item

import (
	"fmt"

	"github.com/example/greykeep/internal/domain/inventory"
)

// ItemStack represents a quantity of a specific item type. It is the
// concrete slot occupant behind the inventory package's Stack contract.
type ItemStack struct {
	Type     ItemType `json:"type"`
	Quantity int      `json:"quantity"`
}

var _ inventory.Stack = (*ItemStack)(nil)

// NewStack creates a stack of qty items of type t.
func NewStack(t ItemType, qty int) *ItemStack {
	return &ItemStack{Type: t, Quantity: qty}
}

// Equals reports whether other holds the same item type. Quantity is
// irrelevant: a stack of 1 wood equals a stack of 99 wood.
func (s *ItemStack) Equals(other inventory.Stack) bool {
	o, ok := other.(*ItemStack)
	return ok && o.Type == s.Type
}

// Size reports the current quantity.
func (s *ItemStack) Size() int {
	return s.Quantity
}

// AddItems increases the quantity by n.
func (s *ItemStack) AddItems(n int) {
	s.Quantity += n
}

// PermitsStacking reports whether multiple units of this item type may
// share a slot. Types missing from the Registry do not stack.
func (s *ItemStack) PermitsStacking() bool {
	def, ok := GetItem(s.Type)
	return ok && def.Stackable
}

// String renders the stack for inventory summary lines, e.g. "(5) Wood".
func (s *ItemStack) String() string {
	name := string(s.Type)
	if def, ok := GetItem(s.Type); ok {
		name = def.Name
	}
	return fmt.Sprintf("(%d) %s", s.Quantity, name)
}
