package ordermap

import (
	"fmt"

	"github.com/mikenye/ordermap/internal/bst"
	"github.com/mikenye/ordermap/internal/rbtree"
)

// Direction fixes which way a Cursor advances through a Map's in-order
// sequence.
type Direction int

const (
	// Forward advances from smallest key to largest.
	Forward Direction = iota
	// Backward advances from largest key to smallest.
	Backward
)

// Cursor is a stateful position into one Map's in-order sequence, fixed to
// a Direction at creation. It is either positioned at a live binding or
// past-the-end.
//
// A Cursor must not outlive the Map it was created from. It observes
// mutations only implicitly: removing the binding a Cursor currently
// references leaves that Cursor stale (ErrIteratorInvalid on the next
// observation); other mutations leave it valid.
type Cursor[K, V any] struct {
	m    *Map[K, V]
	dir  Direction
	node *bst.Node[K, V, rbtree.Color]
	// lastKey/hasLastKey track the key that was live when this Cursor last
	// referenced a binding, so a later observation can tell "removed"
	// (stale) apart from "legitimately past the end".
	lastKey    K
	hasLastKey bool
}

// NewCursor creates a Cursor over m in the given direction, initially
// positioned at the first binding for that direction (or past-end if m is
// empty).
func (m *Map[K, V]) NewCursor(dir Direction) *Cursor[K, V] {
	c := &Cursor[K, V]{m: m, dir: dir}
	c.seekExtremum(dir)
	return c
}

func (c *Cursor[K, V]) seekExtremum(dir Direction) {
	if c.m.Empty() {
		c.node = nil
		c.hasLastKey = false
		return
	}
	if dir == Forward {
		c.node = c.m.tree.Min(c.m.tree.Root())
	} else {
		c.node = c.m.tree.Max(c.m.tree.Root())
	}
	c.lastKey = c.m.tree.Key(c.node)
	c.hasLastKey = true
}

// isStale reports whether the binding this Cursor last referenced has been
// removed from the Map since.
func (c *Cursor[K, V]) isStale() bool {
	if !c.hasLastKey {
		return false
	}
	n, found := c.m.tree.Search(c.lastKey)
	if !found {
		return true
	}
	if c.node != nil && n != c.node {
		return true
	}
	return false
}

// HasNext reports whether the Cursor is positioned at a live binding.
func (c *Cursor[K, V]) HasNext() bool {
	return c.node != nil && !c.isStale()
}

// Key returns the key at the Cursor's current position.
// Returns ErrIteratorInvalid if the referenced binding was removed, or
// ErrIteratorAtEnd if the Cursor is past-the-end.
func (c *Cursor[K, V]) Key() (K, error) {
	var zero K
	if c.isStale() {
		return zero, ErrIteratorInvalid
	}
	if c.node == nil {
		return zero, ErrIteratorAtEnd
	}
	return c.m.tree.Key(c.node), nil
}

// Value returns the value at the Cursor's current position.
// Returns ErrIteratorInvalid if the referenced binding was removed, or
// ErrIteratorAtEnd if the Cursor is past-the-end.
func (c *Cursor[K, V]) Value() (V, error) {
	var zero V
	if c.isStale() {
		return zero, ErrIteratorInvalid
	}
	if c.node == nil {
		return zero, ErrIteratorAtEnd
	}
	return c.m.tree.Value(c.node), nil
}

// Advance moves the Cursor to the next binding in its Direction.
// Returns ErrIteratorInvalid if the Cursor was already stale, or
// ErrIteratorAtEnd if the Cursor was already past-the-end (no movement in
// either case).
func (c *Cursor[K, V]) Advance() error {
	if c.isStale() {
		return ErrIteratorInvalid
	}
	if c.node == nil {
		return ErrIteratorAtEnd
	}
	var next *bst.Node[K, V, rbtree.Color]
	if c.dir == Forward {
		next = c.m.tree.Successor(c.node)
	} else {
		next = c.m.tree.Predecessor(c.node)
	}
	if c.m.tree.IsNil(next) {
		c.node = nil
		c.hasLastKey = false
		return nil
	}
	c.node = next
	c.lastKey = c.m.tree.Key(next)
	c.hasLastKey = true
	return nil
}

// Seek repositions the Cursor at the binding whose key equals k.
// Returns ErrKeyNotFound, entering past-end, if no such binding exists.
func (c *Cursor[K, V]) Seek(k K) error {
	n, found := c.m.tree.Search(k)
	if !found {
		c.node = nil
		c.hasLastKey = false
		return fmt.Errorf("%w: %v", ErrKeyNotFound, k)
	}
	c.node = n
	c.lastKey = k
	c.hasLastKey = true
	return nil
}

// SeekFirst repositions the Cursor at the extremum matching its Direction
// (smallest key if Forward, largest if Backward), or past-end if the Map
// is empty.
func (c *Cursor[K, V]) SeekFirst() {
	c.seekExtremum(c.dir)
}

// SeekLast repositions the Cursor at the extremum opposite its Direction
// (largest key if Forward, smallest if Backward), or past-end if the Map
// is empty.
func (c *Cursor[K, V]) SeekLast() {
	opposite := Backward
	if c.dir == Backward {
		opposite = Forward
	}
	c.seekExtremum(opposite)
}
