// Package rope provides an immutable rope data structure for efficient text storage and manipulation.
//
// A rope is a binary tree where leaf nodes contain text chunks and internal nodes
// store aggregated metrics (byte count, line count, etc.). This implementation uses
// a B+ tree variant for better cache locality and worst-case performance.
//
// Within this module, a Rope is the concrete string storage that backs
// textedit.Host implementations (see internal/termhost): the textedit
// engine never owns or allocates the string it edits, only indices into
// it, so something has to hold the bytes. The engine indexes by rune
// position, not byte offset (its undo ring allocates one storage slot
// per index unit), so termhost converts between a Rope's native
// ByteOffset and rune index at the Host boundary using Rope's cursor.
//
// # Key Features
//
//   - O(log n) insertion, deletion, and access operations
//   - Immutable operations return new ropes; originals are never modified
//   - Copy-on-write semantics enable cheap snapshots
//   - Thread-safe for concurrent read access
//
// # Basic Usage
//
// Create and modify ropes:
//
//	// Create from string
//	r := rope.FromString("hello world")
//
//	// Insert text
//	r = r.Insert(5, ",")  // "hello, world"
//
//	// Delete text
//	r = r.Delete(0, 7)    // "world"
//
//	// Get content
//	text := r.String()  // full text
//	slice := r.Slice(0, 4)  // "worl"
//
// # Immutability
//
// All operations return new ropes without modifying the original:
//
//	original := rope.FromString("hello")
//	modified := original.Insert(5, " world")
//
//	fmt.Println(original.String())  // "hello" (unchanged)
//	fmt.Println(modified.String())  // "hello world"
//
// This enables cheap snapshots and safe concurrent access.
//
// # Cursor Navigation
//
// Use cursors for efficient sequential access. This is the access
// pattern termhost.Field uses to walk the rope one rune at a time
// while converting to the engine's rune-index space:
//
//	r := rope.FromString("hello world")
//	cursor := rope.NewCursor(r)
//
//	// Iterate over runes
//	for !cursor.AtEnd() {
//	    r, _ := cursor.Rune()
//	    fmt.Printf("%c", r)
//	    cursor.Next()
//	}
//
//	// Seek to a specific byte offset
//	cursor.SeekOffset(5)
//
// # Performance Characteristics
//
// Operation complexities for a rope of n bytes:
//
//   - FromString: O(n)
//   - Insert:     O(log n)
//   - Delete:     O(log n)
//   - Slice:      O(log n + k) where k is the slice length
//   - ByteAt:     O(log n)
//   - String:     O(n)
//   - Len:        O(1)
//
// # Memory Efficiency
//
// The rope uses structural sharing, so operations like Insert create
// new nodes only along the path from root to the modification point.
// Unchanged subtrees are shared between the old and new rope.
//
// # Thread Safety
//
// Ropes are safe for concurrent read access. The immutable design
// means multiple goroutines can safely read from the same rope
// without synchronization. For concurrent writes, external
// synchronization is required.
package rope
