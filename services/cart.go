package services

import (
	"strings"

	"roll-point/catalog"
	"roll-point/models"

	"github.com/google/uuid"
)

// Cart mutations operate on the session-held cart. The total is recomputed
// from the live item list after every change; it is never adjusted
// incrementally, so it cannot drift.

// AddCatalogItem appends a new line for a stock menu item. Quantities below
// one default to one.
func AddCatalogItem(cart *models.Cart, item models.MenuItem, itemType string, qty int) models.CartItem {
	if qty < 1 {
		qty = 1
	}
	line := models.CartItem{
		ID:       uuid.NewString(),
		ItemID:   item.ID,
		Name:     item.Name,
		Price:    item.Price,
		Quantity: qty,
		Type:     itemType,
		Image:    item.Image,
	}
	cart.Items = append(cart.Items, line)
	recomputeTotal(cart)
	return line
}

// AddCustomRoll appends a custom roll line with quantity fixed at one. The
// price is recomputed from the ingredient catalog; prices supplied by the
// client are not trusted.
func AddCustomRoll(cart *models.Cart, name string, ingredientIDs []int, image string) (models.CartItem, error) {
	if strings.TrimSpace(name) == "" {
		name = "Custom Roll"
	}
	var price int64
	names := make([]string, 0, len(ingredientIDs))
	for _, id := range ingredientIDs {
		ing, ok := catalog.FindIngredient(id)
		if !ok {
			return models.CartItem{}, ErrIngredientNotFound
		}
		price += ing.Price
		names = append(names, ing.Name)
	}
	line := models.CartItem{
		ID:          uuid.NewString(),
		Name:        name,
		Price:       price,
		Quantity:    1,
		Type:        models.TypeCustomRoll,
		Image:       image,
		Ingredients: names,
		Custom:      true,
	}
	cart.Items = append(cart.Items, line)
	recomputeTotal(cart)
	return line, nil
}

// UpdateQuantity applies a delta to a line's quantity. A result of zero or
// below removes the line entirely.
func UpdateQuantity(cart *models.Cart, lineID string, delta int) error {
	for i := range cart.Items {
		if cart.Items[i].ID != lineID {
			continue
		}
		qty := cart.Items[i].Quantity + delta
		if qty <= 0 {
			cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
		} else {
			cart.Items[i].Quantity = qty
		}
		recomputeTotal(cart)
		return nil
	}
	return ErrCartItemNotFound
}

// RemoveItem removes a line regardless of quantity.
func RemoveItem(cart *models.Cart, lineID string) error {
	for i := range cart.Items {
		if cart.Items[i].ID != lineID {
			continue
		}
		cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
		recomputeTotal(cart)
		return nil
	}
	return ErrCartItemNotFound
}

// ClearCart empties the cart after a successful order or logout.
func ClearCart(cart *models.Cart) {
	cart.Items = nil
	cart.Total = 0
}

func recomputeTotal(cart *models.Cart) {
	var total int64
	for _, it := range cart.Items {
		total += it.Price * int64(it.Quantity)
	}
	cart.Total = total
}
