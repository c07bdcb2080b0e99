package macro

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/stbtextedit/internal/textedit"
)

// Target is the Host/EditorState pair a Runner drives. The Host and
// State must outlive the Runner; Runner holds no ownership over either.
type Target struct {
	Host  textedit.Host
	State *textedit.EditorState
}

// Runner executes Lua scripts against one bound Target, one script at a
// time. Scripts call click, drag, key, text, paste, cut, undo, and redo
// as plain Lua functions; key code constants (KEY_LEFT, KEY_RIGHT, ...)
// and KEY_SHIFT are installed as globals.
type Runner struct {
	l      *lua.LState
	target Target
}

// NewRunner returns a Runner bound to target, with a sandboxed Lua
// state (base, table, string, math libraries only) and the editor
// globals installed.
func NewRunner(target Target) *Runner {
	l := lua.NewState(lua.Options{SkipOpenLibs: true})
	openSafeLibraries(l)

	r := &Runner{l: l, target: target}
	r.registerGlobals()
	return r
}

// openSafeLibraries opens only the Lua standard libraries a macro
// script needs to manipulate strings and numbers; io, os, debug, and
// package are deliberately never opened, the same selective-library
// sandboxing internal/plugin/lua.openSafeLibraries uses for its own
// untrusted scripts.
func openSafeLibraries(l *lua.LState) {
	lua.OpenBase(l)
	lua.OpenTable(l)
	lua.OpenString(l)
	lua.OpenMath(l)
}

// Close releases the underlying Lua state. A Runner must not be used
// afterward.
func (r *Runner) Close() { r.l.Close() }

// Run compiles and executes script synchronously against the Runner's
// Target. A Lua runtime error or panic recovered from the script is
// wrapped in ErrScriptFailed.
func (r *Runner) Run(script string) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("%w: %v", ErrScriptFailed, rec)
		}
	}()
	if doErr := r.l.DoString(script); doErr != nil {
		return fmt.Errorf("%w: %w", ErrScriptFailed, doErr)
	}
	return nil
}

func (r *Runner) registerGlobals() {
	l := r.l

	l.SetGlobal("click", l.NewFunction(r.luaClick))
	l.SetGlobal("drag", l.NewFunction(r.luaDrag))
	l.SetGlobal("key", l.NewFunction(r.luaKey))
	l.SetGlobal("text", l.NewFunction(r.luaText))
	l.SetGlobal("paste", l.NewFunction(r.luaPaste))
	l.SetGlobal("cut", l.NewFunction(r.luaCut))
	l.SetGlobal("undo", l.NewFunction(r.luaUndo))
	l.SetGlobal("redo", l.NewFunction(r.luaRedo))
	l.SetGlobal("cursor", l.NewFunction(r.luaCursor))
	l.SetGlobal("selection", l.NewFunction(r.luaSelection))

	l.SetGlobal("KEY_SHIFT", lua.LNumber(textedit.KeyShift))
	for name, k := range keyConstants {
		l.SetGlobal(name, lua.LNumber(k))
	}
}

// keyConstants names every command key the dispatcher recognizes (see
// internal/textedit/key.go) so a macro script can write key(KEY_LEFT)
// rather than a bare integer.
var keyConstants = map[string]textedit.Key{
	"KEY_LEFT":          textedit.KeyLeft,
	"KEY_RIGHT":         textedit.KeyRight,
	"KEY_UP":            textedit.KeyUp,
	"KEY_DOWN":          textedit.KeyDown,
	"KEY_PAGE_UP":       textedit.KeyPageUp,
	"KEY_PAGE_DOWN":     textedit.KeyPageDown,
	"KEY_LINE_START":    textedit.KeyLineStart,
	"KEY_LINE_END":      textedit.KeyLineEnd,
	"KEY_TEXT_START":    textedit.KeyTextStart,
	"KEY_TEXT_END":      textedit.KeyTextEnd,
	"KEY_DELETE":        textedit.KeyDelete,
	"KEY_BACKSPACE":     textedit.KeyBackspace,
	"KEY_UNDO":          textedit.KeyUndo,
	"KEY_REDO":          textedit.KeyRedo,
	"KEY_TOGGLE_INSERT": textedit.KeyToggleInsert,
}

func (r *Runner) luaClick(l *lua.LState) int {
	x := float32(l.CheckNumber(1))
	y := float32(l.CheckNumber(2))
	textedit.Click(r.target.Host, r.target.State, x, y)
	return 0
}

func (r *Runner) luaDrag(l *lua.LState) int {
	x := float32(l.CheckNumber(1))
	y := float32(l.CheckNumber(2))
	textedit.Drag(r.target.Host, r.target.State, x, y)
	return 0
}

func (r *Runner) luaKey(l *lua.LState) int {
	code := textedit.Key(l.CheckNumber(1))
	if l.GetTop() >= 2 && l.ToBool(2) {
		code = code.WithShift()
	}
	textedit.HandleKey(r.target.Host, r.target.State, code)
	return 0
}

func (r *Runner) luaText(l *lua.LState) int {
	s := l.CheckString(1)
	textedit.Text(r.target.Host, r.target.State, []rune(s))
	return 0
}

func (r *Runner) luaPaste(l *lua.LState) int {
	s := l.CheckString(1)
	ok := textedit.Paste(r.target.Host, r.target.State, []rune(s))
	l.Push(lua.LBool(ok))
	return 1
}

func (r *Runner) luaCut(l *lua.LState) int {
	ok := textedit.Cut(r.target.Host, r.target.State)
	l.Push(lua.LBool(ok))
	return 1
}

func (r *Runner) luaUndo(l *lua.LState) int {
	textedit.Undo(r.target.Host, r.target.State)
	return 0
}

func (r *Runner) luaRedo(l *lua.LState) int {
	textedit.Redo(r.target.Host, r.target.State)
	return 0
}

func (r *Runner) luaCursor(l *lua.LState) int {
	l.Push(lua.LNumber(r.target.State.Cursor))
	return 1
}

func (r *Runner) luaSelection(l *lua.LState) int {
	l.Push(lua.LNumber(r.target.State.SelectStart))
	l.Push(lua.LNumber(r.target.State.SelectEnd))
	return 2
}
