package list

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursorForward(t *testing.T) {
	l := From([]int{1, 2, 3})

	c := l.Cursor()
	assert.Nil(t, c.Node(), "cursor must not be positioned before the first step")

	var values []int
	for c.Next() {
		require.Same(t, l.NodeAt(len(values)), c.Node())
		values = append(values, c.Value())
	}
	assert.Equal(t, []int{1, 2, 3}, values)
	assert.Nil(t, c.Node(), "exhausted cursor must not stay positioned")
}

func TestCursorBackward(t *testing.T) {
	l := From([]int{1, 2, 3})

	var values []int
	for c := l.Backward(); c.Next(); {
		values = append(values, c.Value())
	}
	assert.Equal(t, []int{3, 2, 1}, values)
}

func TestCursorEmptyList(t *testing.T) {
	l := New[int]()
	assert.False(t, l.Cursor().Next())
	assert.False(t, l.Backward().Next())
}

// Whatever sequence of structural operations was performed, the forward walk
// must mirror the reversed backward walk.
func TestCursorRoundTrip(t *testing.T) {
	l := From([]int{1, 2, 3, 4, 5})
	l.MoveToFront(l.NodeAt(3))
	l.Swap(l.Front(), l.Back())
	l.Unlink(l.NodeAt(2))
	l.InsertAfter(l.Front(), 6)
	l.Reverse()

	forward := l.Values()
	backward := l.ValuesBackward()
	for i, j := 0, len(backward)-1; i < j; i, j = i+1, j-1 {
		backward[i], backward[j] = backward[j], backward[i]
	}
	assert.Equal(t, forward, backward)
}

func TestCursorFailFast(t *testing.T) {
	tests := []struct {
		scenario string
		mutate   func(*List[int])
	}{
		{"append", func(l *List[int]) { l.Append(9) }},
		{"prepend", func(l *List[int]) { l.Prepend(9) }},
		{"unlink", func(l *List[int]) { l.Unlink(l.Back()) }},
		{"try unlink", func(l *List[int]) { l.TryUnlink(l.Back()) }},
		{"move to front", func(l *List[int]) { l.MoveToFront(l.Back()) }},
		{"move after", func(l *List[int]) { l.MoveAfter(l.Front(), l.Back()) }},
		{"swap", func(l *List[int]) { l.Swap(l.Front(), l.Back()) }},
		{"reverse", func(l *List[int]) { l.Reverse() }},
		{"set length", func(l *List[int]) { l.SetLen(1) }},
		{"clear", func(l *List[int]) { l.Clear() }},
	}

	for _, test := range tests {
		t.Run(test.scenario+" before the first step", func(t *testing.T) {
			l := From([]int{1, 2, 3})
			c := l.Cursor()
			test.mutate(l)
			mustPanic(t, ErrModified, func() { c.Next() })
		})

		t.Run(test.scenario+" between steps", func(t *testing.T) {
			l := From([]int{1, 2, 3})
			c := l.Backward()
			require.True(t, c.Next())
			test.mutate(l)
			mustPanic(t, ErrModified, func() { c.Next() })
			// A failed cursor never recovers.
			mustPanic(t, ErrModified, func() { c.Next() })
		})
	}
}

func TestCursorSurvivesNonStructuralMutation(t *testing.T) {
	l := From([]int{1, 2, 3})
	c := l.Cursor()

	l.NodeAt(1).Value = 20              // value mutation
	l.MoveToFront(l.Front())            // no-op move
	l.MoveToBack(l.Back())              // no-op move
	l.TryUnlink(From([]int{9}).Front()) // failed try-unlink

	var values []int
	for c.Next() {
		values = append(values, c.Value())
	}
	assert.Equal(t, []int{1, 20, 3}, values)
}

func TestCursorExhaustionIsTerminal(t *testing.T) {
	l := From([]int{1})
	c := l.Cursor()
	require.True(t, c.Next())
	require.False(t, c.Next())

	// Mutations after exhaustion must not revive the cursor.
	l.Append(2)
	assert.False(t, c.Next())
}

func TestRange(t *testing.T) {
	l := From([]int{1, 2, 3, 4})

	var values []int
	l.Range(func(v int) bool {
		values = append(values, v)
		return true
	})
	assert.Equal(t, []int{1, 2, 3, 4}, values)

	values = values[:0]
	l.Range(func(v int) bool {
		values = append(values, v)
		return v < 2
	})
	assert.Equal(t, []int{1, 2}, values)
}

func TestValues(t *testing.T) {
	l := From([]string{"a", "b", "c"})
	assert.Equal(t, []string{"a", "b", "c"}, l.Values())
	assert.Equal(t, []string{"c", "b", "a"}, l.ValuesBackward())

	empty := New[string]()
	assert.Empty(t, empty.Values())
	assert.Empty(t, empty.ValuesBackward())
}
