package cubestate

// History keeps the move log and the undo/redo stacks.
//
// The log is the sequence of moves actually applied to the cube, undo
// inverses and redos included, so replaying it from the starting state
// reproduces the current state.
type History struct {
	keepLog bool
	log     []Move
	undo    []Move
	redo    []Move
}

// NewHistory creates an empty history. When keepLog is false only the
// undo/redo stacks are kept.
func NewHistory(keepLog bool) *History {
	return &History{keepLog: keepLog}
}

// Record registers a freshly applied move. Any undone future is discarded.
func (h *History) Record(m Move) {
	h.appendLog(m)
	h.undo = append(h.undo, m)
	h.redo = h.redo[:0]
}

// popUndo moves the most recent move onto the redo stack and returns it.
func (h *History) popUndo() (Move, error) {
	if len(h.undo) == 0 {
		return Move{}, ErrEmptyHistory
	}
	m := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]
	h.redo = append(h.redo, m)
	h.appendLog(m.Inverse())
	return m, nil
}

// popRedo moves the most recently undone move back onto the undo stack.
func (h *History) popRedo() (Move, error) {
	if len(h.redo) == 0 {
		return Move{}, ErrEmptyHistory
	}
	m := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	h.undo = append(h.undo, m)
	h.appendLog(m)
	return m, nil
}

func (h *History) appendLog(m Move) {
	if h.keepLog {
		h.log = append(h.log, m)
	}
}

// Clear drops the log and both stacks.
func (h *History) Clear() {
	h.log = nil
	h.undo = nil
	h.redo = nil
}

// Log returns a copy of the applied-move log.
func (h *History) Log() []Move {
	return append([]Move(nil), h.log...)
}

// UndoStack returns a copy of the undo stack, oldest first.
func (h *History) UndoStack() []Move {
	return append([]Move(nil), h.undo...)
}

// RedoStack returns a copy of the redo stack, oldest first.
func (h *History) RedoStack() []Move {
	return append([]Move(nil), h.redo...)
}

// UndoDepth returns the number of moves that can be undone.
func (h *History) UndoDepth() int {
	return len(h.undo)
}

// RedoDepth returns the number of moves that can be redone.
func (h *History) RedoDepth() int {
	return len(h.redo)
}
