package termhost

// Clipboard is an in-process cut/copy/paste register, not an OS
// clipboard integration (see SPEC_FULL.md §11.3 on OS clipboard
// access). It exists so a host application can wire Ctrl+X/Ctrl+C/
// Ctrl+V without reaching outside the process.
type Clipboard struct {
	text []rune
}

// Set replaces the clipboard contents.
func (c *Clipboard) Set(text []rune) {
	c.text = append(c.text[:0], text...)
}

// Get returns a copy of the clipboard contents.
func (c *Clipboard) Get() []rune {
	out := make([]rune, len(c.text))
	copy(out, c.text)
	return out
}
