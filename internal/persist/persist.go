package persist

import (
	"errors"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/dshills/stbtextedit/internal/textedit"
)

// ErrMalformedSnapshot is returned by Load when data isn't a snapshot
// this package recognizes.
var ErrMalformedSnapshot = errors.New("persist: malformed snapshot")

// Save returns a JSON snapshot of text and the exported fields of
// state: cursor, selection, insert mode, and page size.
func Save(text string, state *textedit.EditorState) (string, error) {
	json := `{}`
	var err error
	set := func(path string, value any) {
		if err != nil {
			return
		}
		json, err = sjson.Set(json, path, value)
	}

	set("text", text)
	set("cursor", int(state.Cursor))
	set("selectStart", int(state.SelectStart))
	set("selectEnd", int(state.SelectEnd))
	set("insertMode", state.InsertMode)
	set("singleLine", state.SingleLine)
	set("rowCountPerPage", state.RowCountPerPage)

	if err != nil {
		return "", err
	}
	return json, nil
}

// Load parses a snapshot written by Save, returning the text and an
// EditorState initialized from it. The returned state has a fresh,
// empty undo log regardless of what Save's input state held.
func Load(data string, opts ...textedit.Option) (text string, state textedit.EditorState, err error) {
	if !gjson.Valid(data) {
		return "", textedit.EditorState{}, ErrMalformedSnapshot
	}

	parsed := gjson.Parse(data)
	textResult := parsed.Get("text")
	if !textResult.Exists() {
		return "", textedit.EditorState{}, ErrMalformedSnapshot
	}

	singleLine := parsed.Get("singleLine").Bool()
	textedit.Initialize(&state, singleLine, opts...)

	state.Cursor = textedit.Index(parsed.Get("cursor").Int())
	state.SelectStart = textedit.Index(parsed.Get("selectStart").Int())
	state.SelectEnd = textedit.Index(parsed.Get("selectEnd").Int())
	state.InsertMode = parsed.Get("insertMode").Bool()
	state.RowCountPerPage = int(parsed.Get("rowCountPerPage").Int())

	return textResult.String(), state, nil
}
