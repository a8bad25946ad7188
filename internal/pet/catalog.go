package pet

import (
	"errors"
	"fmt"
)

// ItemID identifies an item button.
type ItemID string

const (
	ItemApple  ItemID = "apple"
	ItemCandy  ItemID = "candy"
	ItemToy    ItemID = "toy"
	ItemRotate ItemID = "rotate"
)

// ErrUnknownItem is returned when an item id is not in the catalog.
var ErrUnknownItem = errors.New("pet: unknown item")

// Item is one entry of the button bar.
type Item struct {
	ID     ItemID
	Glyph  rune        // drawn on the button and where the item is placed
	Hotkey string      // key that presses the button
	Delta  DeltaVector // effect of using the item
}

// IsAction reports whether the item is an action button rather than
// something placed in the yard.
func (i Item) IsAction() bool {
	return i.ID == ItemRotate
}

// Catalog looks up items by id.
type Catalog interface {
	Lookup(id ItemID) (Item, bool)
}

// ItemCatalog is a fixed, ordered set of items.
type ItemCatalog struct {
	items map[ItemID]Item
	order []ItemID
}

// NewItemCatalog builds a catalog preserving the given order.
// Empty and duplicate ids are rejected.
func NewItemCatalog(items ...Item) (*ItemCatalog, error) {
	c := &ItemCatalog{items: make(map[ItemID]Item, len(items))}
	for _, it := range items {
		if it.ID == "" {
			return nil, errors.New("pet: item with empty id")
		}
		if _, dup := c.items[it.ID]; dup {
			return nil, fmt.Errorf("pet: duplicate item %q", it.ID)
		}
		c.items[it.ID] = it
		c.order = append(c.order, it.ID)
	}
	return c, nil
}

// DefaultCatalog returns the stock apple, candy, toy and rotate buttons.
func DefaultCatalog() *ItemCatalog {
	c, _ := NewItemCatalog(DefaultItems()...)
	return c
}

// DefaultItems returns the stock items in button order.
func DefaultItems() []Item {
	return []Item{
		{ID: ItemApple, Glyph: '@', Hotkey: "1", Delta: Delta(20, 0)},
		{ID: ItemCandy, Glyph: '%', Hotkey: "2", Delta: Delta(-10, 10)},
		{ID: ItemToy, Glyph: '&', Hotkey: "3", Delta: Delta(0, 15)},
		{ID: ItemRotate, Glyph: '~', Hotkey: "4", Delta: NewDeltaVector(map[Stat]int{StatFun: 20})},
	}
}

// Lookup returns the item with the given id.
func (c *ItemCatalog) Lookup(id ItemID) (Item, bool) {
	it, ok := c.items[id]
	return it, ok
}

// Get is Lookup returning ErrUnknownItem for missing ids.
func (c *ItemCatalog) Get(id ItemID) (Item, error) {
	it, ok := c.items[id]
	if !ok {
		return Item{}, fmt.Errorf("%w %q", ErrUnknownItem, id)
	}
	return it, nil
}

// Items returns all items in button order.
func (c *ItemCatalog) Items() []Item {
	out := make([]Item, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.items[id])
	}
	return out
}

// Names returns the item ids as strings in button order.
func (c *ItemCatalog) Names() []string {
	out := make([]string, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, string(id))
	}
	return out
}

// ByHotkey finds the item bound to a key.
func (c *ItemCatalog) ByHotkey(key string) (Item, bool) {
	for _, id := range c.order {
		if it := c.items[id]; it.Hotkey != "" && it.Hotkey == key {
			return it, true
		}
	}
	return Item{}, false
}
