// Package persist snapshots and restores editor session state as JSON.
//
// textedit.EditorState is POD-shaped by design (see internal/textedit's
// doc comment) so that a host could, in a language with direct memory
// access, memcpy it to and from disk. Go has no such idiom, so this
// package builds the equivalent by hand: github.com/tidwall/sjson
// writes the snapshot field by field instead of reflecting over the
// struct the way encoding/json would, and github.com/tidwall/gjson
// reads it back the same way — closer to the engine's own
// no-allocation, no-reflection ethos than a marshal tag would be.
//
// The undo/redo ring is not part of the snapshot: its fields are
// unexported (undo.go's undoState), so a restored session always starts
// with empty undo history, the same way reopening a file in most
// editors does.
package persist
