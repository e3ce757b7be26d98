// Package list implements a generic doubly-linked list that hands out stable
// node handles.
//
// The standard library provides a doubly-linked list in the container/list
// package, but its Element type is weakly typed and the list performs no
// validation when an element from one list is used with another. The list in
// this package keeps a typed handle per element and tags every node with the
// list that owns it, so structural operations can verify both ownership and
// attachment before touching any pointer. Misuse (a foreign handle, a handle
// removed earlier, an out-of-range index) fails fast with a panic carrying a
// distinguishable error, and never leaves the list partially mutated.
//
// Handles make the list a natural building block for LRU caches, editor
// buffers, and queues: the caller retains the *Node returned by an insertion
// and can later unlink, reposition, or splice relative to it in O(1) without
// any traversal.
//
//	l := list.From([]string{"A", "B", "C"})
//	n := l.Append("D")
//	l.MoveToFront(n)
//	l.Unlink(n)
//
// Cursors obtained from a list are fail-fast: a structural mutation performed
// between cursor creation and a step, or between two steps, makes the next
// step panic instead of yielding stale or skipped elements. Replacing a node's
// Value is not structural and never trips a cursor.
//
// Lists are not safe for concurrent use. Synchronization requirements vary too
// much between applications to generalize here, so the type makes no attempt
// at internal locking and assumes a single writer at a time.
package list

import "fmt"

// List is a doubly-linked chain of nodes. It tracks both ends, the element
// count, and a generation counter bumped on every structural mutation, which
// cursors use to detect interference.
//
// The zero value is a valid, empty list.
type List[E any] struct {
	head *Node[E]
	tail *Node[E]
	size int
	gen  uint64
}

// New returns an empty list.
func New[E any]() *List[E] { return &List[E]{} }

// From builds a list holding the given values in order.
func From[E any](values []E) *List[E] {
	l := New[E]()
	for _, v := range values {
		l.Append(v)
	}
	return l
}

// Filled builds a list of n nodes all holding value. The value is shared, not
// cloned. Filled panics if n is negative.
func Filled[E any](n int, value E) *List[E] {
	if n < 0 {
		panic(fmt.Errorf("%w: negative count %d", ErrRange, n))
	}
	l := New[E]()
	for i := 0; i < n; i++ {
		l.Append(value)
	}
	return l
}

// Generate builds a list of n nodes where the node at index i holds fn(i).
// Generate panics if n is negative.
func Generate[E any](n int, fn func(int) E) *List[E] {
	if n < 0 {
		panic(fmt.Errorf("%w: negative count %d", ErrRange, n))
	}
	l := New[E]()
	for i := 0; i < n; i++ {
		l.Append(fn(i))
	}
	return l
}

// NodeOf returns the first node of l holding value, or nil if no node does.
// The walk is O(n) from the front.
func NodeOf[E comparable](l *List[E], value E) *Node[E] {
	for n := l.head; n != nil; n = n.next {
		if n.Value == value {
			return n
		}
	}
	return nil
}

// Len returns the number of elements in the list.
func (l *List[E]) Len() int { return l.size }

// Front returns the node at the front of the list, or nil if the list is
// empty.
func (l *List[E]) Front() *Node[E] { return l.head }

// Back returns the node at the back of the list, or nil if the list is empty.
func (l *List[E]) Back() *Node[E] { return l.tail }

// First returns the value at the front of the list. It panics if the list is
// empty.
func (l *List[E]) First() E {
	if l.head == nil {
		return l.panicEmpty("no first element")
	}
	return l.head.Value
}

// Last returns the value at the back of the list. It panics if the list is
// empty.
func (l *List[E]) Last() E {
	if l.tail == nil {
		return l.panicEmpty("no last element")
	}
	return l.tail.Value
}

// Single returns the only value in the list. It panics unless the list holds
// exactly one element.
func (l *List[E]) Single() E {
	if l.size != 1 {
		return l.panicEmpty(fmt.Sprintf("want exactly 1 element, have %d", l.size))
	}
	return l.head.Value
}

// NodeAt returns the node at index i, walking from whichever end is closer.
// It panics if i is outside [0, Len()).
func (l *List[E]) NodeAt(i int) *Node[E] {
	if i < 0 || i >= l.size {
		panic(fmt.Errorf("%w: index %d, length %d", ErrRange, i, l.size))
	}
	return l.nodeAt(i)
}

// NodeAtOrNil is NodeAt returning nil instead of panicking for an index
// outside [0, Len()).
func (l *List[E]) NodeAtOrNil(i int) *Node[E] {
	if i < 0 || i >= l.size {
		return nil
	}
	return l.nodeAt(i)
}

// Append inserts value at the back of the list and returns its handle.
func (l *List[E]) Append(value E) *Node[E] {
	n := &Node[E]{list: l, Value: value}
	l.pushBack(n)
	l.size++
	l.gen++
	return n
}

// Prepend inserts value at the front of the list and returns its handle.
func (l *List[E]) Prepend(value E) *Node[E] {
	n := &Node[E]{list: l, Value: value}
	l.pushFront(n)
	l.size++
	l.gen++
	return n
}

// InsertAfter inserts value immediately after ref and returns the new handle.
//
// It panics if ref belongs to another list or is detached.
func (l *List[E]) InsertAfter(ref *Node[E], value E) *Node[E] {
	l.checkOwned(ref)
	n := &Node[E]{list: l, Value: value}
	l.spliceAfter(n, ref)
	l.size++
	l.gen++
	return n
}

// InsertBefore inserts value immediately before ref and returns the new
// handle.
//
// It panics if ref belongs to another list or is detached.
func (l *List[E]) InsertBefore(ref *Node[E], value E) *Node[E] {
	l.checkOwned(ref)
	n := &Node[E]{list: l, Value: value}
	l.spliceBefore(n, ref)
	l.size++
	l.gen++
	return n
}

// InsertAt inserts value at index i, shifting the nodes currently at i and
// beyond towards the back; i == Len() appends. The new handle is returned.
// InsertAt panics if i is outside [0, Len()].
func (l *List[E]) InsertAt(i int, value E) *Node[E] {
	if i < 0 || i > l.size {
		panic(fmt.Errorf("%w: index %d, length %d", ErrRange, i, l.size))
	}
	if i == l.size {
		return l.Append(value)
	}
	return l.InsertBefore(l.nodeAt(i), value)
}

// Unlink removes n from the list and returns its value. The handle becomes
// detached: both links are cleared and it can never rejoin a list.
//
// It panics if n belongs to another list or is already detached.
func (l *List[E]) Unlink(n *Node[E]) E {
	l.checkOwned(n)
	l.unsplice(n)
	n.list = nil
	l.size--
	l.gen++
	return n.Value
}

// TryUnlink is Unlink reporting failure instead of panicking: it returns false
// and mutates nothing when n is nil, belongs to another list, or is already
// detached.
func (l *List[E]) TryUnlink(n *Node[E]) bool {
	if n == nil || n.list != l {
		return false
	}
	l.unsplice(n)
	n.list = nil
	l.size--
	l.gen++
	return true
}

// RemoveAt unlinks the node at index i and returns its value. It panics if i
// is outside [0, Len()).
func (l *List[E]) RemoveAt(i int) E {
	if i < 0 || i >= l.size {
		panic(fmt.Errorf("%w: index %d, length %d", ErrRange, i, l.size))
	}
	return l.Unlink(l.nodeAt(i))
}

// MoveToFront moves n to the front of the list. It does nothing, and leaves
// in-flight cursors valid, if n is already at the front.
//
// It panics if n belongs to another list or is detached.
func (l *List[E]) MoveToFront(n *Node[E]) {
	l.checkOwned(n)
	if n == l.head {
		return
	}
	l.unsplice(n)
	l.pushFront(n)
	l.gen++
}

// MoveToBack moves n to the back of the list. It does nothing, and leaves
// in-flight cursors valid, if n is already at the back.
//
// It panics if n belongs to another list or is detached.
func (l *List[E]) MoveToBack(n *Node[E]) {
	l.checkOwned(n)
	if n == l.tail {
		return
	}
	l.unsplice(n)
	l.pushBack(n)
	l.gen++
}

// MoveAfter moves n immediately after target. Moving a node relative to
// itself, or to the position it already occupies, does nothing and leaves
// in-flight cursors valid.
//
// It panics if either handle belongs to another list or is detached.
func (l *List[E]) MoveAfter(n, target *Node[E]) {
	l.checkOwned(n)
	l.checkOwned(target)
	if n == target || target.next == n {
		return
	}
	l.unsplice(n)
	l.spliceAfter(n, target)
	l.gen++
}

// MoveBefore moves n immediately before target. Moving a node relative to
// itself, or to the position it already occupies, does nothing and leaves
// in-flight cursors valid.
//
// It panics if either handle belongs to another list or is detached.
func (l *List[E]) MoveBefore(n, target *Node[E]) {
	l.checkOwned(n)
	l.checkOwned(target)
	if n == target || target.prev == n {
		return
	}
	l.unsplice(n)
	l.spliceBefore(n, target)
	l.gen++
}

// Swap exchanges the positions of a and b. Swapping a node with itself does
// nothing.
//
// It panics if either handle belongs to another list or is detached.
func (l *List[E]) Swap(a, b *Node[E]) {
	l.checkOwned(a)
	l.checkOwned(b)
	if a == b {
		return
	}

	// Normalize the adjacent case so that a immediately precedes b.
	if b.next == a {
		a, b = b, a
	}
	if a.next == b {
		l.unsplice(a)
		l.spliceAfter(a, b)
	} else {
		aPrev, bPrev := a.prev, b.prev
		l.unsplice(a)
		l.unsplice(b)
		if aPrev == nil {
			l.pushFront(b)
		} else {
			l.spliceAfter(b, aPrev)
		}
		if bPrev == nil {
			l.pushFront(a)
		} else {
			l.spliceAfter(a, bPrev)
		}
	}
	l.gen++
}

// Reverse reverses the order of the list in place. Lists of length 0 or 1 are
// left untouched and in-flight cursors stay valid.
func (l *List[E]) Reverse() {
	if l.size <= 1 {
		return
	}
	for n := l.head; n != nil; {
		next := n.next
		n.next, n.prev = n.prev, n.next
		n = next
	}
	l.head, l.tail = l.tail, l.head
	l.gen++
}

// Clear detaches every node and empties the list. Clearing an already empty
// list does nothing.
func (l *List[E]) Clear() {
	if l.size == 0 {
		return
	}
	for n := l.head; n != nil; {
		next := n.next
		n.prev, n.next, n.list = nil, nil, nil
		n = next
	}
	l.head, l.tail, l.size = nil, nil, 0
	l.gen++
}

// SetLen resizes the list to n elements. Shrinking detaches every node beyond
// the new length; growing pads the back with the zero value of E. Resizing to
// the current length does nothing. SetLen panics if n is negative.
func (l *List[E]) SetLen(n int) {
	switch {
	case n < 0:
		panic(fmt.Errorf("%w: negative length %d", ErrRange, n))
	case n == l.size:
		return
	case n < l.size:
		cut := l.nodeAt(n - 1) // nodeAt(-1) is nil: the whole chain is dropped
		if cut == nil {
			cut = l.head
			l.head, l.tail = nil, nil
		} else {
			cut, l.tail = cut.next, cut
			l.tail.next = nil
		}
		for node := cut; node != nil; {
			next := node.next
			node.prev, node.next, node.list = nil, nil, nil
			node = next
		}
		l.size = n
		l.gen++
	default:
		var zero E
		for l.size < n {
			l.Append(zero)
		}
	}
}

// checkOwned panics unless n is currently attached to l. Validation runs
// before any pointer surgery, so a panic leaves the list untouched.
func (l *List[E]) checkOwned(n *Node[E]) {
	if n == nil || n.list == nil {
		panic(fmt.Errorf("%w", ErrDetached))
	}
	if n.list != l {
		panic(fmt.Errorf("%w", ErrNotOwned))
	}
}

func (l *List[E]) panicEmpty(msg string) E {
	panic(fmt.Errorf("%w: %s", ErrEmpty, msg))
}

// nodeAt returns the node at index i, or nil when i is -1. Any other index
// must be within [0, size).
func (l *List[E]) nodeAt(i int) *Node[E] {
	if i < 0 {
		return nil
	}
	if i < l.size/2 {
		n := l.head
		for ; i > 0; i-- {
			n = n.next
		}
		return n
	}
	n := l.tail
	for i = l.size - 1 - i; i > 0; i-- {
		n = n.prev
	}
	return n
}

// The helpers below perform pure pointer surgery: they fix up neighbor and
// boundary links but leave size, gen, and the owner tag to their callers.

// pushFront links the free-standing node n in at the head.
func (l *List[E]) pushFront(n *Node[E]) {
	if l.head == nil {
		l.head, l.tail = n, n
	} else {
		n.next = l.head
		l.head.prev = n
		l.head = n
	}
}

// pushBack links the free-standing node n in at the tail.
func (l *List[E]) pushBack(n *Node[E]) {
	if l.tail == nil {
		l.head, l.tail = n, n
	} else {
		n.prev = l.tail
		l.tail.next = n
		l.tail = n
	}
}

// spliceAfter links the free-standing node n in immediately after at.
func (l *List[E]) spliceAfter(n, at *Node[E]) {
	n.prev = at
	n.next = at.next
	at.next = n
	if n.next != nil {
		n.next.prev = n
	} else {
		l.tail = n
	}
}

// spliceBefore links the free-standing node n in immediately before at.
func (l *List[E]) spliceBefore(n, at *Node[E]) {
	n.next = at
	n.prev = at.prev
	at.prev = n
	if n.prev != nil {
		n.prev.next = n
	} else {
		l.head = n
	}
}

// unsplice disconnects n from its neighbors and clears its links. The owner
// tag is kept: move operations splice the node back in, unlink clears it.
func (l *List[E]) unsplice(n *Node[E]) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		l.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		l.tail = n.prev
	}
	n.prev, n.next = nil, nil
}
