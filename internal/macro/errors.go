package macro

import "errors"

// ErrScriptFailed wraps any error a Lua script raised or that occurred
// while compiling it; the underlying gopher-lua error stays reachable
// through errors.As/errors.Is. A panic recovered from a script keeps
// only its text.
var ErrScriptFailed = errors.New("macro: script failed")
