// Package macro drives a textedit.EditorState from small Lua scripts.
//
// A macro script calls a handful of global functions — click, drag,
// key, text, paste, cut, undo, redo — against one bound Host/EditorState
// pair, letting a script exercise the same entry points §6 of the
// engine's design defines for a real input event loop. This replaces
// the record-and-replay keystroke register the original editor's
// internal/input/macro package implements: instead of capturing raw
// key events for later playback, a macro here is a short, readable,
// hand- or tool-written script, the same shape used by this package's
// own integration tests to script a sequence of edits without a
// terminal attached.
//
// # Example
//
//	runner := macro.NewRunner(macro.Target{Host: host, State: &state})
//	err := runner.Run(`
//	    text("hello")
//	    key(KEY_LEFT, true)
//	    cut()
//	`)
//
// # Sandbox
//
// The Lua state opens only the base, table, string, and math libraries
// — no io, os, debug, or package — so a macro script can script the
// editor and nothing else.
//
// # Thread-Safety
//
// A Runner is not safe for concurrent use, matching the EditorState it
// drives (see internal/textedit's single-goroutine contract).
package macro
