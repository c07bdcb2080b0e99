package textedit

import "errors"

// ErrHostRejected names a Host refusing an insertion. No function in
// this module returns it: the engine's own Paste reports a refusal as a
// bool instead, matching the original's void/bool-returning API (see §7
// of the design notes this package implements).
var ErrHostRejected = errors.New("textedit: host rejected insertion")

// ErrUndoExhausted names Undo or Redo having no more history to apply.
// No function in this module returns it: the engine's own Undo/Redo are
// silent no-ops in this case, matching every other out-of-range operation in this
// package.
var ErrUndoExhausted = errors.New("textedit: no more undo/redo history")
