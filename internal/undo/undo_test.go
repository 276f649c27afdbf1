package undo

import (
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// counter is a minimal target whose state is a list of applied values.
type counter struct {
	values   []int
	restores int
}

func (c *counter) Snapshot() []int { return slices.Clone(c.values) }

func (c *counter) Restore(s []int) {
	c.values = slices.Clone(s)
	c.restores++
}

func (c *counter) push(v int) func() error {
	return func() error {
		c.values = append(c.values, v)
		return nil
	}
}

func TestUndoRedoRoundTrip(t *testing.T) {
	c := &counter{}
	m := NewManager[[]int](c)

	require.NoError(t, m.Do(c.push(1)))
	require.NoError(t, m.Do(c.push(2)))
	require.NoError(t, m.Do(c.push(3)))

	for range 3 {
		require.NoError(t, m.Undo())
	}
	assert.Empty(t, c.values)

	require.NoError(t, m.Redo())
	assert.Equal(t, []int{1}, c.values)

	require.NoError(t, m.Undo())
	require.NoError(t, m.Redo())
	assert.Equal(t, []int{1}, c.values, "undo then redo is a no-op")
}

func TestEmptyHistory(t *testing.T) {
	m := NewManager[[]int](&counter{})
	assert.ErrorIs(t, m.Undo(), ErrNothingToUndo)
	assert.ErrorIs(t, m.Redo(), ErrNothingToRedo)
	assert.False(t, m.CanUndo())
	assert.False(t, m.CanRedo())
}

func TestNewActionClearsRedo(t *testing.T) {
	c := &counter{}
	m := NewManager[[]int](c)

	require.NoError(t, m.Do(c.push(1)))
	require.NoError(t, m.Undo())
	require.True(t, m.CanRedo())

	require.NoError(t, m.Do(c.push(2)))
	assert.ErrorIs(t, m.Redo(), ErrNothingToRedo)
	assert.Equal(t, []int{2}, c.values)
}

func TestNestedDoIsOneCommand(t *testing.T) {
	c := &counter{}
	m := NewManager[[]int](c)

	err := m.Do(func() error {
		assert.True(t, m.Running())
		if err := m.Do(c.push(1)); err != nil {
			return err
		}
		return m.Do(c.push(2))
	})
	require.NoError(t, err)
	assert.False(t, m.Running())

	require.NoError(t, m.Undo())
	assert.Empty(t, c.values)
	assert.ErrorIs(t, m.Undo(), ErrNothingToUndo)
}

func TestFailedActionRollsBack(t *testing.T) {
	c := &counter{}
	m := NewManager[[]int](c)
	boom := errors.New("boom")

	require.NoError(t, m.Do(c.push(1)))
	err := m.Do(func() error {
		c.values = append(c.values, 2)
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []int{1}, c.values)

	require.NoError(t, m.Undo())
	assert.Empty(t, c.values)
	assert.False(t, m.CanUndo(), "failed action must not be recorded")
}

func TestRestoredSnapshotIsNotAliased(t *testing.T) {
	c := &counter{}
	m := NewManager[[]int](c)

	require.NoError(t, m.Do(c.push(1)))
	require.NoError(t, m.Undo())
	require.NoError(t, m.Redo())
	c.values[0] = 42

	require.NoError(t, m.Undo())
	require.NoError(t, m.Redo())
	assert.Equal(t, []int{1}, c.values)
}

func TestClear(t *testing.T) {
	c := &counter{}
	m := NewManager[[]int](c)
	require.NoError(t, m.Do(c.push(1)))
	m.Clear()
	assert.False(t, m.CanUndo())
}
