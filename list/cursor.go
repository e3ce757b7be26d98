package list

import "fmt"

// Cursor is a stateful traversal over a list, forward or backward, yielding
// node handles and values.
//
// A cursor snapshots the list's generation counter when it is created and
// compares it again before every step, including the first. If the list was
// structurally mutated in between, the step panics with an error wrapping
// ErrModified instead of advancing; the comparison is never skipped, so
// interference surfaces deterministically on the very next step. Replacing a
// node's Value is not structural and does not trip the check.
//
// Typical use:
//
//	for c := l.Cursor(); c.Next(); {
//		fmt.Println(c.Value())
//	}
//
// An exhausted cursor stays exhausted: once Next has returned false it keeps
// returning false, even if the list is mutated afterwards.
type Cursor[E any] struct {
	list *List[E]
	node *Node[E] // node of the last successful step, nil otherwise
	next *Node[E] // node the next step moves to
	gen  uint64
	back bool
	done bool
}

// Cursor returns a cursor positioned before the front of the list, stepping
// towards the back.
func (l *List[E]) Cursor() *Cursor[E] {
	return &Cursor[E]{list: l, next: l.head, gen: l.gen}
}

// Backward returns a cursor positioned before the back of the list, stepping
// towards the front.
func (l *List[E]) Backward() *Cursor[E] {
	return &Cursor[E]{list: l, next: l.tail, gen: l.gen, back: true}
}

// Next advances the cursor by one node and reports whether a node is
// available. It panics with an error wrapping ErrModified if the list was
// structurally mutated since the cursor was created.
func (c *Cursor[E]) Next() bool {
	if c.done {
		return false
	}
	if c.gen != c.list.gen {
		panic(fmt.Errorf("%w", ErrModified))
	}
	if c.next == nil {
		c.node = nil
		c.done = true
		return false
	}
	c.node = c.next
	if c.back {
		c.next = c.node.prev
	} else {
		c.next = c.node.next
	}
	return true
}

// Node returns the handle the last successful Next positioned the cursor on,
// or nil if the cursor has not started or is exhausted.
func (c *Cursor[E]) Node() *Node[E] { return c.node }

// Value returns the value of the current node. The cursor must be positioned,
// that is the last call to Next must have returned true.
func (c *Cursor[E]) Value() E { return c.node.Value }

// Range calls f for each value from front to back, stopping early if f
// returns false. It fails the same way a cursor step does if f structurally
// mutates the list.
func (l *List[E]) Range(f func(E) bool) {
	for c := l.Cursor(); c.Next(); {
		if !f(c.Value()) {
			return
		}
	}
}

// Values returns the values of the list from front to back.
func (l *List[E]) Values() []E {
	s := make([]E, 0, l.size)
	for c := l.Cursor(); c.Next(); {
		s = append(s, c.Value())
	}
	return s
}

// ValuesBackward returns the values of the list from back to front.
func (l *List[E]) ValuesBackward() []E {
	s := make([]E, 0, l.size)
	for c := l.Backward(); c.Next(); {
		s = append(s, c.Value())
	}
	return s
}
