package frontier_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/degrees/frontier"
)

// policies builds one fresh frontier of each kind.
func policies() map[string]func() frontier.Frontier[string, string] {
	return map[string]func() frontier.Frontier[string, string]{
		"stack": func() frontier.Frontier[string, string] { return frontier.NewStack[string, string]() },
		"queue": func() frontier.Frontier[string, string] { return frontier.NewQueue[string, string]() },
	}
}

// drain removes everything and returns the states in removal order.
func drain(t *testing.T, f frontier.Frontier[string, string]) []string {
	t.Helper()
	var out []string
	for !f.Empty() {
		n, err := f.Remove()
		require.NoError(t, err)
		out = append(out, n.State())
	}
	return out
}

// TestRemovalOrder checks LIFO for Stack and FIFO for Queue.
func TestRemovalOrder(t *testing.T) {
	s := frontier.NewStack[string, string]()
	q := frontier.NewQueue[string, string]()
	for _, id := range []string{"A", "B", "C"} {
		s.Add(frontier.NewRoot[string, string](id))
		q.Add(frontier.NewRoot[string, string](id))
	}
	assert.Equal(t, []string{"C", "B", "A"}, drain(t, s))
	assert.Equal(t, []string{"A", "B", "C"}, drain(t, q))
}

// TestRemoveEmpty verifies both policies fail with ErrEmptyFrontier.
func TestRemoveEmpty(t *testing.T) {
	for name, mk := range policies() {
		t.Run(name, func(t *testing.T) {
			f := mk()
			require.True(t, f.Empty())
			n, err := f.Remove()
			require.Nil(t, n)
			require.True(t, errors.Is(err, frontier.ErrEmptyFrontier), "got %v", err)

			// drained frontiers fail the same way
			f.Add(frontier.NewRoot[string, string]("A"))
			_, err = f.Remove()
			require.NoError(t, err)
			_, err = f.Remove()
			require.ErrorIs(t, err, frontier.ErrEmptyFrontier)
		})
	}
}

// TestContainsState covers membership before add, after add and after removal.
func TestContainsState(t *testing.T) {
	for name, mk := range policies() {
		t.Run(name, func(t *testing.T) {
			f := mk()
			assert.False(t, f.ContainsState("A"))

			f.Add(frontier.NewRoot[string, string]("A"))
			assert.True(t, f.ContainsState("A"))
			assert.False(t, f.ContainsState("B"))

			f.Add(frontier.NewRoot[string, string]("B"))
			assert.True(t, f.ContainsState("A"))
			assert.True(t, f.ContainsState("B"))
			assert.Equal(t, 2, f.Len())

			n, err := f.Remove()
			require.NoError(t, err)
			assert.False(t, f.ContainsState(n.State()), "removed state %q still reported", n.State())
			assert.Equal(t, 1, f.Len())
		})
	}
}

// TestContainsStateDuplicates shows a state added twice stays visible until
// its last copy leaves the frontier.
func TestContainsStateDuplicates(t *testing.T) {
	for name, mk := range policies() {
		t.Run(name, func(t *testing.T) {
			f := mk()
			f.Add(frontier.NewRoot[string, string]("A"))
			f.Add(frontier.NewRoot[string, string]("A"))

			_, err := f.Remove()
			require.NoError(t, err)
			assert.True(t, f.ContainsState("A"))

			_, err = f.Remove()
			require.NoError(t, err)
			assert.False(t, f.ContainsState("A"))
			assert.True(t, f.Empty())
		})
	}
}

// TestQueueInterleaved mixes adds and removes across the compaction threshold.
func TestQueueInterleaved(t *testing.T) {
	q := frontier.NewQueue[int, string]()
	next, want := 0, 0
	for round := 0; round < 50; round++ {
		for i := 0; i < 5; i++ {
			q.Add(frontier.NewRoot[int, string](next))
			next++
		}
		for i := 0; i < 3; i++ {
			n, err := q.Remove()
			require.NoError(t, err)
			require.Equal(t, want, n.State())
			want++
		}
	}
	require.Equal(t, next-want, q.Len())
	for !q.Empty() {
		n, err := q.Remove()
		require.NoError(t, err)
		require.Equal(t, want, n.State())
		require.False(t, q.ContainsState(n.State()))
		want++
	}
	require.Equal(t, next, want)
}

// TestNodeLinks verifies parent, action and depth bookkeeping.
func TestNodeLinks(t *testing.T) {
	root := frontier.NewRoot[string, string]("A")
	require.True(t, root.IsRoot())
	require.Nil(t, root.Parent())
	require.Equal(t, "", root.Action())
	require.Equal(t, 0, root.Depth())

	b := frontier.NewChild(root, "B", "M1")
	c := frontier.NewChild(b, "C", "M2")
	require.False(t, c.IsRoot())
	require.Same(t, b, c.Parent())
	require.Same(t, root, b.Parent())
	require.Equal(t, "M2", c.Action())
	require.Equal(t, 2, c.Depth())

	orphan := frontier.NewChild[string, string](nil, "Z", "ignored")
	require.True(t, orphan.IsRoot())
	require.Equal(t, "", orphan.Action())
}

// TestFrontierInterface is a compile-time check on both policies.
func TestFrontierInterface(_ *testing.T) {
	var _ frontier.Frontier[string, int] = frontier.NewStack[string, int]()
	var _ frontier.Frontier[string, int] = frontier.NewQueue[string, int]()
}
