package lua

import (
	"errors"
	"fmt"
	"sync"

	lua "github.com/yuin/gopher-lua"
)

// ErrClosed is returned when using an engine after Close.
var ErrClosed = errors.New("lua engine closed")

// ModuleName is the global table the script interacts with.
const ModuleName = "strikeward"

// MarkerFunc receives marker overrides from the script.
type MarkerFunc func(open, close string)

// Engine hosts the user hook script in a sandboxed Lua state.
type Engine struct {
	mu       sync.Mutex
	state    *lua.LState
	hooks    []*lua.LFunction
	onMarker MarkerFunc
	closed   bool
}

// NewEngine creates a sandboxed engine with the strikeward module
// registered.
func NewEngine() *Engine {
	L := lua.NewState()
	e := &Engine{state: L}
	e.installSandbox()
	e.registerModule()
	return e
}

// SetMarkerFunc installs the callback for set_marker calls.
// Must be set before loading a script that overrides the marker.
func (e *Engine) SetMarkerFunc(fn MarkerFunc) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.onMarker = fn
}

// LoadFile executes the script at path.
func (e *Engine) LoadFile(path string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return ErrClosed
	}
	if err := e.state.DoFile(path); err != nil {
		return fmt.Errorf("running hook script %s: %w", path, err)
	}
	return nil
}

// LoadString executes inline script source.
func (e *Engine) LoadString(src string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return ErrClosed
	}
	if err := e.state.DoString(src); err != nil {
		return fmt.Errorf("running hook script: %w", err)
	}
	return nil
}

// NotifyStrike invokes every registered on_strike hook with the word,
// the resulting line, and the new cursor offset. Hook errors are
// collected and returned; remaining hooks still run.
func (e *Engine) NotifyStrike(word, line string, cursor int) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return ErrClosed
	}

	var errs []error
	for _, fn := range e.hooks {
		err := e.state.CallByParam(lua.P{
			Fn:      fn,
			NRet:    0,
			Protect: true,
		}, lua.LString(word), lua.LString(line), lua.LNumber(cursor))
		if err != nil {
			errs = append(errs, fmt.Errorf("on_strike hook: %w", err))
		}
	}
	return errors.Join(errs...)
}

// HookCount returns the number of registered on_strike hooks.
func (e *Engine) HookCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.hooks)
}

// Close shuts the Lua state down. Further calls return ErrClosed.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}
	e.closed = true
	e.state.Close()
}

// installSandbox strips primitives that reach outside the process or
// load arbitrary code.
func (e *Engine) installSandbox() {
	L := e.state
	for _, name := range []string{"dofile", "loadfile", "load", "loadstring"} {
		L.SetGlobal(name, lua.LNil)
	}
	L.SetGlobal("io", lua.LNil)

	// os keeps only the clock functions.
	if osmod, ok := L.GetGlobal("os").(*lua.LTable); ok {
		for _, name := range []string{"execute", "remove", "rename", "exit", "getenv", "setenv", "tmpname"} {
			osmod.RawSetString(name, lua.LNil)
		}
	}
}

// registerModule publishes the strikeward global table.
func (e *Engine) registerModule() {
	L := e.state
	mod := L.NewTable()
	L.SetFuncs(mod, map[string]lua.LGFunction{
		"set_marker": e.luaSetMarker,
		"on_strike":  e.luaOnStrike,
	})
	L.SetGlobal(ModuleName, mod)
}

// luaSetMarker implements strikeward.set_marker(open, close).
func (e *Engine) luaSetMarker(L *lua.LState) int {
	open := L.CheckString(1)
	close := L.CheckString(2)
	if open == "" || close == "" {
		L.ArgError(1, "marker delimiters must be non-empty")
		return 0
	}
	// Called during DoFile/DoString while the engine lock is held.
	if e.onMarker != nil {
		e.onMarker(open, close)
	}
	return 0
}

// luaOnStrike implements strikeward.on_strike(fn).
func (e *Engine) luaOnStrike(L *lua.LState) int {
	fn := L.CheckFunction(1)
	e.hooks = append(e.hooks, fn)
	return 0
}
