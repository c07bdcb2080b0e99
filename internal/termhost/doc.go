// Package termhost is the reference host: a textedit.Host backed by
// internal/engine/rope and a terminal widget built on tcell.
//
// Field adapts between the engine's rune-index address space and the
// rope's native byte offsets (see internal/textedit's doc comment for
// why the engine must index by rune), and between the engine's
// grapheme-cluster-granular cursor motion and the rope's rune-granular
// cursor. Widget draws a Field using rivo/uniseg and
// golang.org/x/text/width for layout (internal/termhost/layout) and
// github.com/lucasb-eyer/go-colorful for perceptually blended selection
// highlighting, and translates tcell key/mouse events into
// textedit.HandleKey/Click/Drag calls.
//
// Architecture
//
// Field owns a rope.Rope and nothing else; it has no knowledge of
// rendering. Widget owns a Field, a tcell.Screen, layout state (line
// wrap), and a Clipboard register; it is the only piece
// of this package that touches the terminal. Clipboard is a simple
// in-process cut/copy/paste register, not a system clipboard
// integration (see SPEC_FULL.md §11.3 on OS clipboard access);
// Widget wires Ctrl+C/Ctrl+X/Ctrl+V to it and to textedit.Cut/Paste.
//
// Thread-Safety
//
// Neither Field nor Widget is safe for concurrent use. Both are meant
// to be driven by a single event loop goroutine, matching
// internal/textedit's own single-goroutine contract.
package termhost
