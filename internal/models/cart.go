package models

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/shopspring/decimal"
)

type CartActionType string

const (
	ActionAddItem        CartActionType = "add_item"
	ActionUpdateQuantity CartActionType = "update_quantity"
	ActionRemoveItem     CartActionType = "remove_item"
	ActionClear          CartActionType = "clear"
)

type CartLineItem struct {
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
}

func (li CartLineItem) LineTotal() decimal.Decimal {
	return li.UnitPrice.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

// Cart keeps line items in insertion order, unique by name.
// It is persisted as a bare JSON array of line items.
type Cart struct {
	Items []CartLineItem
}

func (c Cart) MarshalJSON() ([]byte, error) {
	items := c.Items
	if items == nil {
		items = []CartLineItem{}
	}

	return json.Marshal(items)
}

func (c *Cart) UnmarshalJSON(data []byte) error {
	var items []CartLineItem

	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}

	c.Items = items

	return nil
}

func (c Cart) ItemCount() int {
	count := 0
	for _, item := range c.Items {
		count += item.Quantity
	}

	return count
}

func (c Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

func (c Cart) Subtotal() decimal.Decimal {
	subtotal := decimal.Zero
	for _, item := range c.Items {
		subtotal = subtotal.Add(item.LineTotal())
	}

	return subtotal
}

func (c Cart) indexOf(name string) int {
	return slices.IndexFunc(c.Items, func(li CartLineItem) bool { return li.Name == name })
}

// Check reports state that no sequence of actions could have produced.
func (c Cart) Check() error {
	seen := make(map[string]struct{}, len(c.Items))

	for _, item := range c.Items {
		if item.Name == "" {
			return fmt.Errorf("line item without a name")
		}
		if item.Quantity < 1 {
			return fmt.Errorf("line item %q has quantity %d", item.Name, item.Quantity)
		}
		if item.UnitPrice.IsNegative() {
			return fmt.Errorf("line item %q has a negative price", item.Name)
		}
		if _, dup := seen[item.Name]; dup {
			return fmt.Errorf("line item %q appears twice", item.Name)
		}
		seen[item.Name] = struct{}{}
	}

	return nil
}

// Apply returns the cart produced by the action. The receiver is never modified.
func (c Cart) Apply(action CartAction) Cart {
	items := slices.Clone(c.Items)
	idx := c.indexOf(action.Name)

	switch action.Type {
	case ActionAddItem:
		if idx >= 0 {
			items[idx].Quantity++
		} else {
			items = append(items, CartLineItem{Name: action.Name, UnitPrice: action.UnitPrice, Quantity: 1})
		}
	case ActionUpdateQuantity:
		if idx < 0 {
			break
		}
		if action.Quantity <= 0 {
			items = slices.Delete(items, idx, idx+1)
		} else {
			items[idx].Quantity = action.Quantity
		}
	case ActionRemoveItem:
		if idx >= 0 {
			items = slices.Delete(items, idx, idx+1)
		}
	case ActionClear:
		items = nil
	}

	return Cart{Items: items}
}

// Without takes the ordered quantities out of the cart. Lines added after the
// order was taken are kept.
func (c Cart) Without(ordered []CartLineItem) Cart {
	items := slices.Clone(c.Items)

	for _, line := range ordered {
		idx := slices.IndexFunc(items, func(li CartLineItem) bool { return li.Name == line.Name })
		if idx < 0 {
			continue
		}

		items[idx].Quantity -= line.Quantity
		if items[idx].Quantity <= 0 {
			items = slices.Delete(items, idx, idx+1)
		}
	}

	if len(items) == 0 {
		items = nil
	}

	return Cart{Items: items}
}

type CartAction struct {
	Type      CartActionType  `json:"type" validate:"required,oneof=add_item update_quantity remove_item clear"`
	Name      string          `json:"name,omitempty" validate:"required_unless=Type clear,omitempty,notblank,max=120"`
	UnitPrice decimal.Decimal `json:"price" validate:"gte=0"`
	Quantity  int             `json:"quantity"`
}

type AddItemRequest struct {
	Name      string          `json:"name" validate:"required,notblank,max=120"`
	UnitPrice decimal.Decimal `json:"price" validate:"gte=0"`
}

type UpdateQuantityRequest struct {
	Name     string `json:"name" validate:"required,notblank,max=120"`
	Quantity *int   `json:"quantity" validate:"required"`
}

// CartSnapshot is the full view of a cart handed to every reader.
type CartSnapshot struct {
	Items     []CartLineItem  `json:"items"`
	ItemCount int             `json:"itemCount"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

func NewCartSnapshot(c Cart) CartSnapshot {
	items := c.Items
	if items == nil {
		items = []CartLineItem{}
	}

	return CartSnapshot{
		Items:     items,
		ItemCount: c.ItemCount(),
		Subtotal:  c.Subtotal(),
	}
}

type CartResponse struct {
	CartSnapshot
	OrderType OrderType     `json:"orderType"`
	Totals    OrderTotals   `json:"totals"`
	Display   DisplayTotals `json:"display"`
}
