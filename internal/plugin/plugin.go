// Package plugin hosts gopher-lua scripts that observe the editor's
// command dispatch: a script registers pre- and post-command hooks by
// action name, and the host invokes them before and after that action
// runs. A plugin never sees buffer internals directly and can never block
// or fail the core's own dispatch; a misbehaving hook's error is dropped.
package plugin

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"
)

// Host owns one Lua state and the hook registrations scripts have made
// against it.
type Host struct {
	L    *lua.LState
	pre  map[string][]*lua.LFunction
	post map[string][]*lua.LFunction
}

// NewHost returns a Host with register_pre/register_post installed as Lua
// globals, ready to load scripts.
func NewHost() *Host {
	h := &Host{
		L:    lua.NewState(),
		pre:  make(map[string][]*lua.LFunction),
		post: make(map[string][]*lua.LFunction),
	}
	h.L.SetGlobal("register_pre", h.L.NewFunction(h.registerPre))
	h.L.SetGlobal("register_post", h.L.NewFunction(h.registerPost))
	return h
}

func (h *Host) registerPre(L *lua.LState) int {
	name := L.CheckString(1)
	fn := L.CheckFunction(2)
	h.pre[name] = append(h.pre[name], fn)
	return 0
}

func (h *Host) registerPost(L *lua.LState) int {
	name := L.CheckString(1)
	fn := L.CheckFunction(2)
	h.post[name] = append(h.post[name], fn)
	return 0
}

// LoadScript executes src, which is expected to call register_pre and/or
// register_post zero or more times.
func (h *Host) LoadScript(src string) error {
	if err := h.L.DoString(src); err != nil {
		return fmt.Errorf("plugin: load script: %w", err)
	}
	return nil
}

// Before runs every hook registered for actionName via register_pre.
func (h *Host) Before(actionName string) {
	h.run(h.pre[actionName], actionName)
}

// After runs every hook registered for actionName via register_post.
func (h *Host) After(actionName string) {
	h.run(h.post[actionName], actionName)
}

func (h *Host) run(hooks []*lua.LFunction, actionName string) {
	for _, fn := range hooks {
		h.L.Push(fn)
		h.L.Push(lua.LString(actionName))
		// A misbehaving plugin must never block the core's own dispatch;
		// the call's error, if any, is dropped.
		_ = h.L.PCall(1, 0, nil)
	}
}

// Close releases the underlying Lua state.
func (h *Host) Close() {
	h.L.Close()
}
