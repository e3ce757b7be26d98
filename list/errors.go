package list

import "errors"

// Errors carried by the panics raised on misuse of the package. Every panic
// value wraps one of these sentinels, so deferred code can tell the failure
// kinds apart with errors.Is.
var (
	// ErrNotOwned reports a node handle passed to a list other than the one
	// currently holding it.
	ErrNotOwned = errors.New("list: node does not belong to this list")

	// ErrDetached reports a node handle that is no longer part of any list.
	ErrDetached = errors.New("list: node is detached")

	// ErrRange reports an index or count outside the valid bounds of the
	// operation.
	ErrRange = errors.New("list: index out of range")

	// ErrEmpty reports a value accessor called on a list that does not hold
	// the expected number of elements.
	ErrEmpty = errors.New("list: empty list")

	// ErrModified reports a cursor stepped after a structural mutation of the
	// list it traverses.
	ErrModified = errors.New("list: list modified during iteration")
)
