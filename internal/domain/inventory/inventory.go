// Package inventory defines the bounded slot container that backs every
// item-carrying entity in Greykeep.
// This package is PURE and must NOT import any infrastructure packages.
//
// An Inventory is not safe for concurrent use. Callers own exactly one
// goroutine's worth of access per instance, or an external lock around it.
package inventory

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultCapacity is the slot count used when no capacity is requested.
const DefaultCapacity = 10

// ErrInvalidCapacity is returned by New for a zero or negative capacity.
var ErrInvalidCapacity = errors.New("inventory capacity must be positive")

// Stack is the contract an item stack must satisfy to occupy a slot.
// Equality is by item type only; two stacks of the same type with different
// quantities are equal.
type Stack interface {
	Equals(other Stack) bool
	Size() int
	AddItems(n int)
	PermitsStacking() bool
	fmt.Stringer
}

// MergeStacks adds the number of items in rhs to lhs. rhs is left untouched
// and should be discarded by the caller once merged.
func MergeStacks(lhs, rhs Stack) {
	lhs.AddItems(rhs.Size())
}

// Inventory holds at most one stack per slot, one slot per distinct item
// type, up to a fixed capacity. Slot order is insertion order.
type Inventory struct {
	slots    []Stack
	capacity int
}

// New creates an inventory with the given number of slots.
func New(capacity int) (*Inventory, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCapacity, capacity)
	}
	return &Inventory{capacity: capacity}, nil
}

// NewDefault creates an inventory with DefaultCapacity slots.
func NewDefault() *Inventory {
	return &Inventory{capacity: DefaultCapacity}
}

// UtilizedSlots reports the number of slots currently in use.
func (inv *Inventory) UtilizedSlots() int {
	return len(inv.slots)
}

// EmptySlots reports the number of unused slots.
func (inv *Inventory) EmptySlots() int {
	return inv.capacity - len(inv.slots)
}

// Capacity reports the total number of distinct item types this inventory
// can store. Fixed at construction.
func (inv *Inventory) Capacity() int {
	return inv.capacity
}

// IsFull reports whether every slot is occupied.
func (inv *Inventory) IsFull() bool {
	return len(inv.slots) == inv.capacity
}

// IsEmpty reports whether no slot is occupied.
func (inv *Inventory) IsEmpty() bool {
	return len(inv.slots) == 0
}

// FindMatchingStack scans the occupied slots in insertion order and returns
// the first stack whose item type matches key. Absence is a normal outcome,
// reported by the second return value.
func (inv *Inventory) FindMatchingStack(key Stack) (Stack, bool) {
	for _, s := range inv.slots {
		if s.Equals(key) {
			return s, true
		}
	}
	return nil, false
}

// AddItems adds a stack of items to the inventory. A stackable match merges
// into the existing slot; otherwise the stack occupies a new slot at the end
// while capacity allows. Returns false when the inventory is full and no
// merge happened, in which case the caller keeps the stack.
//
// Only the merge path consults PermitsStacking: a second stack of a
// non-stackable type still lands in a fresh slot when capacity allows.
func (inv *Inventory) AddItems(stack Stack) bool {
	if match, ok := inv.FindMatchingStack(stack); ok {
		if match.PermitsStacking() {
			MergeStacks(match, stack)
			return true
		}
	}

	if len(inv.slots) < inv.capacity {
		inv.slots = append(inv.slots, stack)
		return true
	}

	return false
}

// String renders a summary of the inventory: a usage header followed by one
// line per occupied slot, in insertion order.
func (inv *Inventory) String() string {
	var b strings.Builder

	fmt.Fprintf(&b, " -Used %d of %d slots\n", len(inv.slots), inv.capacity)
	for _, s := range inv.slots {
		fmt.Fprintf(&b, "  %s\n", s)
	}

	return b.String()
}
