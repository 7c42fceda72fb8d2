package order

import (
	"github.com/Mazdaratti/bestbuy/internal/domain/product"
	"github.com/Mazdaratti/bestbuy/internal/domain/store"
)

// Cart incrementally collects (product, quantity) selections before they
// are committed as one order batch. Repeated selections that resolve to an
// equal product aggregate into a single line, keyed on the product's value
// identity, while first-added order is preserved.
type Cart struct {
	keys  []product.Key
	lines map[product.Key]*store.Line
}

// NewCart returns an empty cart.
func NewCart() *Cart {
	return &Cart{lines: make(map[product.Key]*store.Line)}
}

// Add puts quantity units of p into the cart, merging with an existing line
// for an equal product.
func (c *Cart) Add(p *product.Product, quantity int) {
	key := p.Key()
	if line, ok := c.lines[key]; ok {
		line.Quantity += quantity
		return
	}
	c.keys = append(c.keys, key)
	c.lines[key] = &store.Line{Product: p, Quantity: quantity}
}

// Empty reports whether nothing has been added yet.
func (c *Cart) Empty() bool { return len(c.keys) == 0 }

// Len returns the number of distinct lines.
func (c *Cart) Len() int { return len(c.keys) }

// Lines returns the aggregated order batch in first-added order.
func (c *Cart) Lines() []store.Line {
	lines := make([]store.Line, 0, len(c.keys))
	for _, key := range c.keys {
		lines = append(lines, *c.lines[key])
	}
	return lines
}
