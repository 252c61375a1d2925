package services

import (
	"testing"

	"roll-point/catalog"
	"roll-point/models"
)

func mustFind(t *testing.T, itemType string, id int) models.MenuItem {
	t.Helper()
	item, ok := catalog.FindItem(itemType, id)
	if !ok {
		t.Fatalf("catalog item %s/%d not found", itemType, id)
	}
	return item
}

func TestCartTotalAlwaysRecomputed(t *testing.T) {
	cart := &models.Cart{}

	roll := mustFind(t, models.TypeRoll, 1)   // 107817
	side := mustFind(t, models.TypeSide, 101) // 49717

	rollLine := AddCatalogItem(cart, roll, models.TypeRoll, 2)
	if cart.Total != 2*107817 {
		t.Errorf("after adding roll x2: total = %d, want %d", cart.Total, 2*107817)
	}

	sideLine := AddCatalogItem(cart, side, models.TypeSide, 1)
	if cart.Total != 2*107817+49717 {
		t.Errorf("after adding side: total = %d, want %d", cart.Total, 2*107817+49717)
	}
	if len(cart.Items) != 2 {
		t.Fatalf("cart count = %d, want 2", len(cart.Items))
	}

	if err := UpdateQuantity(cart, rollLine.ID, -1); err != nil {
		t.Fatalf("UpdateQuantity: %v", err)
	}
	if cart.Total != 107817+49717 {
		t.Errorf("after delta -1 on roll: total = %d, want %d", cart.Total, 107817+49717)
	}

	if err := RemoveItem(cart, sideLine.ID); err != nil {
		t.Fatalf("RemoveItem: %v", err)
	}
	if cart.Total != 107817 {
		t.Errorf("after removing side: total = %d, want %d", cart.Total, 107817)
	}
	if len(cart.Items) != 1 {
		t.Errorf("cart count = %d, want 1", len(cart.Items))
	}
}

func TestUpdateQuantityRemovesAtZero(t *testing.T) {
	cart := &models.Cart{}
	line := AddCatalogItem(cart, mustFind(t, models.TypeDrink, 201), models.TypeDrink, 1)

	if err := UpdateQuantity(cart, line.ID, -1); err != nil {
		t.Fatalf("UpdateQuantity: %v", err)
	}
	if len(cart.Items) != 0 {
		t.Errorf("cart count = %d, want 0", len(cart.Items))
	}
	if cart.Total != 0 {
		t.Errorf("total = %d, want 0", cart.Total)
	}

	// A large negative delta behaves the same
	line = AddCatalogItem(cart, mustFind(t, models.TypeDrink, 201), models.TypeDrink, 3)
	if err := UpdateQuantity(cart, line.ID, -10); err != nil {
		t.Fatalf("UpdateQuantity: %v", err)
	}
	if len(cart.Items) != 0 || cart.Total != 0 {
		t.Errorf("cart not empty after driving quantity below zero: count=%d total=%d", len(cart.Items), cart.Total)
	}
}

func TestUpdateQuantityUnknownLine(t *testing.T) {
	cart := &models.Cart{}
	if err := UpdateQuantity(cart, "no-such-line", 1); err != ErrCartItemNotFound {
		t.Errorf("UpdateQuantity on empty cart: err = %v, want ErrCartItemNotFound", err)
	}
	if err := RemoveItem(cart, "no-such-line"); err != ErrCartItemNotFound {
		t.Errorf("RemoveItem on empty cart: err = %v, want ErrCartItemNotFound", err)
	}
}

func TestAddCatalogItemDefaultsQuantity(t *testing.T) {
	cart := &models.Cart{}
	line := AddCatalogItem(cart, mustFind(t, models.TypeRoll, 2), models.TypeRoll, 0)
	if line.Quantity != 1 {
		t.Errorf("quantity = %d, want 1", line.Quantity)
	}
	if line.ID == "" {
		t.Error("line id should be generated")
	}
}

func TestAddCustomRollRecomputesPrice(t *testing.T) {
	cart := &models.Cart{}
	// Grilled Chicken (24900) + Cheese (8300) + Tortilla Wrap (8300)
	line, err := AddCustomRoll(cart, "My Roll", []int{1, 7, 19}, "")
	if err != nil {
		t.Fatalf("AddCustomRoll: %v", err)
	}
	if line.Price != 24900+8300+8300 {
		t.Errorf("price = %d, want %d", line.Price, 24900+8300+8300)
	}
	if line.Quantity != 1 {
		t.Errorf("quantity = %d, want 1", line.Quantity)
	}
	if line.Type != models.TypeCustomRoll {
		t.Errorf("type = %q, want %q", line.Type, models.TypeCustomRoll)
	}
	if len(line.Ingredients) != 3 || line.Ingredients[0] != "Grilled Chicken" {
		t.Errorf("ingredients = %v", line.Ingredients)
	}
	if cart.Total != line.Price {
		t.Errorf("total = %d, want %d", cart.Total, line.Price)
	}
}

func TestAddCustomRollUnknownIngredient(t *testing.T) {
	cart := &models.Cart{}
	if _, err := AddCustomRoll(cart, "", []int{1, 999}, ""); err != ErrIngredientNotFound {
		t.Errorf("err = %v, want ErrIngredientNotFound", err)
	}
	if len(cart.Items) != 0 {
		t.Error("failed add must not modify the cart")
	}
}

func TestAddCustomRollDefaultName(t *testing.T) {
	cart := &models.Cart{}
	line, err := AddCustomRoll(cart, "  ", []int{19}, "")
	if err != nil {
		t.Fatalf("AddCustomRoll: %v", err)
	}
	if line.Name != "Custom Roll" {
		t.Errorf("name = %q, want %q", line.Name, "Custom Roll")
	}
}

func TestClearCart(t *testing.T) {
	cart := &models.Cart{}
	AddCatalogItem(cart, mustFind(t, models.TypeRoll, 1), models.TypeRoll, 2)
	ClearCart(cart)
	if len(cart.Items) != 0 || cart.Total != 0 {
		t.Errorf("cart not cleared: count=%d total=%d", len(cart.Items), cart.Total)
	}
}
