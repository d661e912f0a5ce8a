package item

import (
	"testing"

	"github.com/example/greykeep/internal/domain/inventory"
)

func TestStackEqualsIgnoresQuantity(t *testing.T) {
	a := NewStack(ItemWood, 1)
	b := NewStack(ItemWood, 99)
	c := NewStack(ItemStone, 1)

	if !a.Equals(b) {
		t.Errorf("Expected wood stacks to be equal regardless of quantity")
	}
	if a.Equals(c) {
		t.Errorf("Expected wood and stone stacks to differ")
	}
}

func TestPermitsStackingFollowsRegistry(t *testing.T) {
	if !NewStack(ItemWood, 1).PermitsStacking() {
		t.Errorf("Expected wood to be stackable")
	}
	if NewStack(ItemIronSword, 1).PermitsStacking() {
		t.Errorf("Expected iron swords to not be stackable")
	}
	if NewStack(ItemType("MYSTERY_MEAT"), 1).PermitsStacking() {
		t.Errorf("Expected an unregistered type to not be stackable")
	}
}

func TestAddItemsIncreasesQuantity(t *testing.T) {
	s := NewStack(ItemTorch, 4)

	s.AddItems(3)

	if s.Quantity != 7 {
		t.Errorf("Expected quantity 7, got %d", s.Quantity)
	}
	if s.Size() != 7 {
		t.Errorf("Expected Size 7, got %d", s.Size())
	}
}

func TestStackString(t *testing.T) {
	if got := NewStack(ItemWood, 5).String(); got != "(5) Wood" {
		t.Errorf("Expected \"(5) Wood\", got %q", got)
	}
	// Unregistered types fall back to the raw type name.
	if got := NewStack(ItemType("MYSTERY_MEAT"), 2).String(); got != "(2) MYSTERY_MEAT" {
		t.Errorf("Expected \"(2) MYSTERY_MEAT\", got %q", got)
	}
}

func TestGetItemLookup(t *testing.T) {
	def, ok := GetItem(ItemBread)
	if !ok {
		t.Fatalf("Expected bread to be registered")
	}
	if def.Name != "Bread" {
		t.Errorf("Expected name Bread, got %s", def.Name)
	}

	if _, ok := GetItem(ItemType("MYSTERY_MEAT")); ok {
		t.Errorf("Expected an unregistered type to not resolve")
	}
}

func TestInventoryRoundTripWithRealStacks(t *testing.T) {
	// Setup: the capacity-2 gathering run
	inv, err := inventory.New(2)
	if err != nil {
		t.Fatalf("Expected no error for capacity 2, got %v", err)
	}

	// Act
	if !inv.AddItems(NewStack(ItemWood, 5)) {
		t.Fatalf("Expected wood to occupy slot 1")
	}
	if !inv.AddItems(NewStack(ItemStone, 2)) {
		t.Fatalf("Expected stone to occupy slot 2")
	}
	if inv.AddItems(NewStack(ItemIronOre, 1)) {
		t.Errorf("Expected iron ore to be rejected with both slots in use")
	}
	if !inv.AddItems(NewStack(ItemWood, 3)) {
		t.Errorf("Expected a second wood stack to merge")
	}

	// Assert
	match, found := inv.FindMatchingStack(NewStack(ItemWood, 0))
	if !found {
		t.Fatalf("Expected to find the wood slot")
	}
	if match.Size() != 8 {
		t.Errorf("Expected wood quantity 8 after merge, got %d", match.Size())
	}

	want := " -Used 2 of 2 slots\n" +
		"  (8) Wood\n" +
		"  (2) Stone\n"
	if got := inv.String(); got != want {
		t.Errorf("Expected summary %q, got %q", want, got)
	}
}

func TestNonStackableSwordsOccupyDistinctSlots(t *testing.T) {
	inv, _ := inventory.New(2)

	if !inv.AddItems(NewStack(ItemIronSword, 1)) {
		t.Fatalf("Expected first sword to occupy a slot")
	}
	if !inv.AddItems(NewStack(ItemIronSword, 1)) {
		t.Errorf("Expected second sword to occupy a fresh slot while capacity allows")
	}
	if inv.UtilizedSlots() != 2 {
		t.Errorf("Expected 2 utilized slots, got %d", inv.UtilizedSlots())
	}
	if inv.AddItems(NewStack(ItemLantern, 1)) {
		t.Errorf("Expected the lantern to be rejected once both slots are occupied")
	}
}
