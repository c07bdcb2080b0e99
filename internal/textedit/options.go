package textedit

// Default capacities for the undo/redo log, matching the original
// stb_textedit.h defaults (STB_TEXTEDIT_UNDOSTATECOUNT = 99,
// STB_TEXTEDIT_UNDOCHARCOUNT = 999).
const (
	DefaultUndoRecordCapacity = 99
	DefaultUndoCharCapacity   = 999
)

// undoConfig collects Option values applied during Initialize. Go has no
// way to parameterize an array's length at runtime the way a C macro or
// template parameter can, so the "fixed capacity" the undo log promises
// is implemented as slices sized once at Initialize and never grown or
// shrunk afterward — the same zero-incremental-allocation contract, via
// the idiom this codebase already uses for configurable-but-fixed
// collaborators (engine.Option, buffer.Option).
type undoConfig struct {
	recordCapacity int
	charCapacity   int
}

// Option configures an EditorState at Initialize time.
type Option func(*undoConfig)

// WithUndoRecordCapacity sets how many undo records the state retains
// before discarding the oldest. The zero value falls back to
// DefaultUndoRecordCapacity.
func WithUndoRecordCapacity(n int) Option {
	return func(c *undoConfig) { c.recordCapacity = n }
}

// WithUndoCharCapacity sets how many characters of deleted/replaced text
// the undo log can retain before discarding the oldest records to make
// room. The zero value falls back to DefaultUndoCharCapacity.
func WithUndoCharCapacity(n int) Option {
	return func(c *undoConfig) { c.charCapacity = n }
}
