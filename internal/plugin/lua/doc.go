// Package lua runs the optional user hook script.
//
// The script sees a single global module, strikeward, with two entry
// points: set_marker(open, close) overrides the delimiter pair, and
// on_strike(fn) registers a callback invoked after every successful
// strike with (word, line, cursor). The state is sandboxed: file,
// process, and code-loading primitives are removed. Script errors are
// reported to the caller and never take the editor down.
//
// gopher-lua's LState is not goroutine-safe; the engine serializes all
// access behind a mutex.
package lua
