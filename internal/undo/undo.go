// Package undo implements linear undo/redo over whole-state snapshots.
//
// A Manager wraps each action in a command holding the snapshot taken before
// and after it ran. Undo restores the before-snapshot, Redo the after one.
// Branching history is not kept: any new action clears the redo stack.
package undo

import "errors"

var (
	// ErrNothingToUndo is returned by Undo when the undo history is empty.
	ErrNothingToUndo = errors.New("nothing to undo")
	// ErrNothingToRedo is returned by Redo when the redo history is empty.
	ErrNothingToRedo = errors.New("nothing to redo")
)

// Snapshotter captures and restores the complete state of a target.
// Restore must not retain s: the same snapshot may be restored again later.
type Snapshotter[S any] interface {
	Snapshot() S
	Restore(s S)
}

type command[S any] struct {
	before S
	after  S
}

// Manager records undoable commands against a single target.
// It is not safe for concurrent use.
type Manager[S any] struct {
	target    Snapshotter[S]
	undoStack []command[S]
	redoStack []command[S]
	depth     int
}

// NewManager returns a manager with empty history.
func NewManager[S any](target Snapshotter[S]) *Manager[S] {
	return &Manager[S]{target: target}
}

// Do runs action and records it as one command.
//
// Calls to Do made while another Do is running execute inline and are part of
// the outer command. If action fails the target is restored to its state
// before the call and nothing is recorded.
func (m *Manager[S]) Do(action func() error) error {
	if m.depth > 0 {
		return action()
	}

	before := m.target.Snapshot()
	if err := m.run(action); err != nil {
		m.target.Restore(before)
		return err
	}

	m.undoStack = append(m.undoStack, command[S]{before: before, after: m.target.Snapshot()})
	m.redoStack = nil
	return nil
}

func (m *Manager[S]) run(action func() error) error {
	m.depth++
	defer func() { m.depth-- }()
	return action()
}

// Undo restores the state before the most recent command.
func (m *Manager[S]) Undo() error {
	if len(m.undoStack) == 0 {
		return ErrNothingToUndo
	}
	cmd := m.undoStack[len(m.undoStack)-1]
	m.undoStack = m.undoStack[:len(m.undoStack)-1]
	m.target.Restore(cmd.before)
	m.redoStack = append(m.redoStack, cmd)
	return nil
}

// Redo reapplies the most recently undone command.
func (m *Manager[S]) Redo() error {
	if len(m.redoStack) == 0 {
		return ErrNothingToRedo
	}
	cmd := m.redoStack[len(m.redoStack)-1]
	m.redoStack = m.redoStack[:len(m.redoStack)-1]
	m.target.Restore(cmd.after)
	m.undoStack = append(m.undoStack, cmd)
	return nil
}

// CanUndo reports whether Undo would succeed.
func (m *Manager[S]) CanUndo() bool {
	return len(m.undoStack) > 0
}

// CanRedo reports whether Redo would succeed.
func (m *Manager[S]) CanRedo() bool {
	return len(m.redoStack) > 0
}

// Running reports whether a Do call is in progress.
func (m *Manager[S]) Running() bool {
	return m.depth > 0
}

// Clear drops all history.
func (m *Manager[S]) Clear() {
	m.undoStack = nil
	m.redoStack = nil
}
