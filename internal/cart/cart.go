// Package cart holds the request-scoped cart a buyer builds before
// checkout. It is never persisted; the ordering screen submits it whole.
package cart

import (
	"sort"

	"dinepos-be/internal/inventory"
)

// Cart maps item id to requested quantity.
type Cart map[string]int

type Line struct {
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity"`
}

// Set stores the quantity for an item; zero or negative removes the line.
func (c Cart) Set(itemID string, quantity int) {
	if quantity > 0 {
		c[itemID] = quantity
	} else {
		delete(c, itemID)
	}
}

func (c Cart) Quantity(itemID string) int {
	return c[itemID]
}

func (c Cart) Len() int {
	return len(c)
}

// Lines returns the cart contents in a deterministic order.
func (c Cart) Lines() []Line {
	lines := make([]Line, 0, len(c))
	for id, qty := range c {
		lines = append(lines, Line{ItemID: id, Quantity: qty})
	}
	sort.Slice(lines, func(i, j int) bool { return lines[i].ItemID < lines[j].ItemID })
	return lines
}

// Total prices the cart against a catalog snapshot. Items absent from the
// snapshot contribute nothing; placement decides what to do about them.
func (c Cart) Total(catalog map[string]*inventory.Item) float64 {
	var total float64
	for id, qty := range c {
		if item, ok := catalog[id]; ok {
			total += item.Price * float64(qty)
		}
	}
	return total
}

// FromLines rebuilds a Cart from submitted lines, collapsing duplicates.
func FromLines(lines []Line) Cart {
	c := Cart{}
	for _, l := range lines {
		c.Set(l.ItemID, c[l.ItemID]+l.Quantity)
	}
	return c
}
