package interpreter

import (
	"github.com/samber/mo"

	"risp/lib/stack"
	"risp/lib/value"
)

// Environment is one scope: names bound to values, last write wins.
type Environment struct {
	table map[string]value.Value
}

func NewEnvironment(bindings map[string]value.Value) Environment {
	table := make(map[string]value.Value, len(bindings))
	for k, v := range bindings {
		table[k] = v.Clone()
	}
	return Environment{table}
}

func (e Environment) Set(name string, v value.Value) {
	e.table[name] = v
}

func (e Environment) Get(name string) mo.Option[value.Value] {
	if ret, ok := e.table[name]; ok {
		return mo.Some(ret.Clone())
	}
	return mo.None[value.Value]()
}

func (e Environment) Len() int {
	return len(e.table)
}

// EnvironmentStack is the global scope plus one call-local frame per active
// user function call. Lookups see the frames active at call time, not the
// ones active where a function was declared.
type EnvironmentStack struct {
	global Environment
	frames stack.Stack[Environment]
}

func NewEnvironmentStack() *EnvironmentStack {
	return &EnvironmentStack{
		global: NewEnvironment(nil),
		frames: stack.New[Environment](8),
	}
}

// Set binds name in the innermost call frame, or globally when no call is
// active.
func (s *EnvironmentStack) Set(name string, v value.Value) {
	if top, err := s.frames.Top(); err == nil {
		top.Set(name, v)
		return
	}
	s.global.Set(name, v)
}

// Get searches call frames from newest to oldest, then the global scope.
func (s *EnvironmentStack) Get(name string) mo.Option[value.Value] {
	ret := mo.None[value.Value]()
	s.frames.Range(func(e Environment) bool {
		ret = e.Get(name)
		return ret.IsAbsent()
	})
	if ret.IsPresent() {
		return ret
	}
	return s.global.Get(name)
}

func (s *EnvironmentStack) PushEnvironment(bindings map[string]value.Value) {
	s.frames.Push(NewEnvironment(bindings))
}

// PopEnvironment discards the innermost call frame. Popping with no frame
// active returns stack.Underflow and leaves the global scope untouched.
func (s *EnvironmentStack) PopEnvironment() error {
	_, err := s.frames.Pop()
	return err
}

// Depth is the number of active call frames.
func (s *EnvironmentStack) Depth() int {
	return s.frames.Len()
}
