// Package textedit implements a reusable, embeddable text-editing state
// machine: cursor and selection tracking, a fixed-capacity undo/redo log,
// and incremental layout traversal for click-to-index and vertical cursor
// motion. It owns none of the text it edits.
//
// # Architecture
//
// The package never allocates a string and never renders a glyph. Every
// capability it needs from its surroundings — string length, character
// access, row layout, display width, key-to-text decoding — is obtained
// through the Host interface supplied by the caller. This mirrors the
// engine/host split used throughout this codebase (compare
// renderer/backend.Backend, history.Command): the state machine here is
// the "engine," and a concrete Host (a terminal widget, a GPU text field,
// a test harness) is swapped in without the engine knowing the
// difference.
//
// EditorState holds all of the engine's mutable state: cursor and
// selection endpoints, insert-mode flag, paging geometry, and the
// undo/redo ring. It contains no pointers into the host's string — only
// indices, which the host interprets consistently across calls. Rune
// indices are the usual choice; a host with a variable-width encoding
// must not use raw byte offsets (see Index for why).
//
// # Usage
//
// A caller initializes one EditorState per editable field:
//
//	var state textedit.EditorState
//	textedit.Initialize(&state, false)
//
//	textedit.Click(host, &state, x, y)
//	textedit.HandleKey(host, &state, textedit.KeyRight.WithShift())
//	textedit.Text(host, &state, []rune("hello"))
//
// All operations take the Host and *EditorState explicitly; the package
// holds no global state and every EditorState is independent.
//
// # Thread-Safety
//
// EditorState is not safe for concurrent use. Exactly one goroutine may
// call engine functions against a given state at a time — the same
// contract stb_textedit.h itself makes, and the same one this codebase's
// other single-writer state machines (history.History, cursor.Cursor)
// make. Callers editing from multiple goroutines must serialize access
// themselves.
package textedit
