package model

import "github.com/shopspring/decimal"

// CartItem is one product held in a cart with its display name and unit
// price captured at the time it was added.
type CartItem struct {
	ProductID int64
	Name      string
	Price     decimal.Decimal
	Quantity  int64
}

// Cart holds a draft order while the customer is still composing it. The
// quantity of every item stays above zero: decrementing to zero removes the
// entry. Items keep insertion order for display. A Cart is not safe for
// concurrent use; callers serialize access.
type Cart struct {
	items []CartItem
}

// NewCart returns an empty cart.
func NewCart() *Cart {
	return &Cart{}
}

func (c *Cart) find(productID int64) int {
	for i := range c.items {
		if c.items[i].ProductID == productID {
			return i
		}
	}
	return -1
}

// Add puts one unit of the product into the cart, or bumps the quantity when
// it is already present.
func (c *Cart) Add(p Product) {
	if i := c.find(int64(p.ID)); i >= 0 {
		c.items[i].Quantity++
		return
	}
	c.items = append(c.items, CartItem{
		ProductID: int64(p.ID),
		Name:      p.Name,
		Price:     p.Price,
		Quantity:  1,
	})
}

// Increment bumps the quantity of an existing entry. Unknown products are
// ignored.
func (c *Cart) Increment(productID int64) {
	if i := c.find(productID); i >= 0 {
		c.items[i].Quantity++
	}
}

// Decrement lowers the quantity of an existing entry, removing it when the
// quantity would reach zero.
func (c *Cart) Decrement(productID int64) {
	i := c.find(productID)
	if i < 0 {
		return
	}
	c.items[i].Quantity--
	if c.items[i].Quantity <= 0 {
		c.items = append(c.items[:i], c.items[i+1:]...)
	}
}

// Remove drops the entry regardless of quantity.
func (c *Cart) Remove(productID int64) {
	if i := c.find(productID); i >= 0 {
		c.items = append(c.items[:i], c.items[i+1:]...)
	}
}

// Items returns a copy of the cart lines in insertion order.
func (c *Cart) Items() []CartItem {
	out := make([]CartItem, len(c.items))
	copy(out, c.items)
	return out
}

// Len reports the number of distinct products in the cart.
func (c *Cart) Len() int {
	return len(c.items)
}

// Total sums price*quantity over all lines.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.items {
		total = total.Add(item.Price.Mul(decimal.NewFromInt(item.Quantity)))
	}
	return total
}

// Lines converts the cart into order creation request lines.
func (c *Cart) Lines() []OrderLine {
	lines := make([]OrderLine, 0, len(c.items))
	for _, item := range c.items {
		lines = append(lines, OrderLine{ProductID: item.ProductID, Quantity: item.Quantity})
	}
	return lines
}

// Clear empties the cart after a successful checkout.
func (c *Cart) Clear() {
	c.items = nil
}
