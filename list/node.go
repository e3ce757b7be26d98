package list

// Node is a stable handle to one element stored in a List.
//
// Handles are created exclusively by list operations (Append, Prepend,
// InsertBefore, InsertAfter, and the construction helpers) and remain valid for
// as long as the node is part of the list that created it. Programs may hold
// any number of aliases to the same node; replacing Value through one alias is
// visible through all of them.
//
// Unlinking a node turns the handle into a detached, free-standing object: the
// value can still be read, both link accessors return nil, and the node can
// never be attached to a list again.
type Node[E any] struct {
	list       *List[E]
	prev, next *Node[E]

	// Value is the stored element. Replacing it is not a structural mutation:
	// links, list length, and in-flight cursors are unaffected.
	Value E
}

// Attached reports whether the node is currently part of a list.
func (n *Node[E]) Attached() bool { return n.list != nil }

// Prev returns the node preceding n, or nil if n is at the front of its list
// or detached.
func (n *Node[E]) Prev() *Node[E] { return n.prev }

// Next returns the node following n, or nil if n is at the back of its list
// or detached.
func (n *Node[E]) Next() *Node[E] { return n.next }
