// Package catalog holds the selection core of arpeggio: a fixed, ordered
// catalog of browsable items and a single active selection.
//
// The Viewer is a plain state holder. It knows nothing about rendering
// runtimes or storage; dependent views register observers and are told
// when the active item changes.
package catalog

import (
	"errors"
	"fmt"
	"iter"
)

// Renderer is an item's drawing capability. The catalog core never
// inspects what a Renderer produces; it only hands the capability to
// whoever displays the item.
type Renderer interface {
	// Render draws the item's preview at the given width in cells.
	Render(width int) string
}

// RenderFunc adapts a plain function to the Renderer interface.
type RenderFunc func(width int) string

func (f RenderFunc) Render(width int) string { return f(width) }

// Item is one immutable catalog entry. Items are created once at startup
// and never mutated or destroyed at runtime.
type Item struct {
	ID          string // stable unique identifier
	Name        string // display label
	Category    string
	Description string // markdown free text
	Render      Renderer
}

// Observer is notified with the new active item after every successful
// Select, including an idempotent re-select of the current item.
type Observer func(Item)

var (
	// ErrInvalidCatalog reports a catalog that cannot back a Viewer:
	// empty, or carrying duplicate item IDs.
	ErrInvalidCatalog = errors.New("invalid catalog")

	// ErrUnknownItem reports a Select for an id absent from the catalog.
	ErrUnknownItem = errors.New("unknown catalog item")
)

// Viewer presents a fixed, ordered catalog and exposes exactly one
// active item at a time.
//
// A Viewer is not internally synchronized. It is owned by a single
// event loop; Select must not be called concurrently.
type Viewer struct {
	items     []Item
	index     map[string]int
	active    int
	observers []Observer
}

// NewViewer builds a Viewer over the given catalog. The catalog order is
// preserved and the first element becomes the active item.
func NewViewer(items []Item) (*Viewer, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: no items", ErrInvalidCatalog)
	}

	index := make(map[string]int, len(items))
	for i, it := range items {
		if _, dup := index[it.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate id %q", ErrInvalidCatalog, it.ID)
		}
		index[it.ID] = i
	}

	v := &Viewer{
		items: make([]Item, len(items)),
		index: index,
	}
	copy(v.items, items)
	return v, nil
}

// Select makes the item with the given id active and notifies all
// observers. An unknown id is rejected atomically: the error is returned
// and the active item is left untouched.
func (v *Viewer) Select(id string) error {
	i, ok := v.index[id]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownItem, id)
	}

	v.active = i
	it := v.items[i]
	for _, notify := range v.observers {
		notify(it)
	}
	return nil
}

// Active returns the current active item. It never fails: a constructed
// Viewer always has one.
func (v *Viewer) Active() Item {
	return v.items[v.active]
}

// Items returns a restartable sequence over the catalog in its fixed
// order. Iterating never mutates viewer state.
func (v *Viewer) Items() iter.Seq[Item] {
	return func(yield func(Item) bool) {
		for _, it := range v.items {
			if !yield(it) {
				return
			}
		}
	}
}

// Len reports the catalog size.
func (v *Viewer) Len() int {
	return len(v.items)
}

// Subscribe registers an observer for selection changes. Observers run
// synchronously inside Select, in registration order.
func (v *Viewer) Subscribe(fn Observer) {
	v.observers = append(v.observers, fn)
}
