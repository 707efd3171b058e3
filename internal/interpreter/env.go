package interpreter

import (
	"fmt"
	"sort"
	"strings"
)

// Environment holds variables
type Environment struct {
	vars map[string]Value
}

// NewEnvironment returns an empty environment.
func NewEnvironment() *Environment {
	return &Environment{vars: make(map[string]Value)}
}

func (e *Environment) Get(name string) (Value, bool) {
	v, ok := e.vars[name]
	return v, ok
}

func (e *Environment) Set(name string, val Value) {
	e.vars[name] = val
}

func (e *Environment) Len() int {
	return len(e.vars)
}

// Names returns the bound names in sorted order.
func (e *Environment) Names() []string {
	names := make([]string, 0, len(e.vars))
	for name := range e.vars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Map returns a copy of the bindings.
func (e *Environment) Map() map[string]Value {
	m := make(map[string]Value, len(e.vars))
	for k, v := range e.vars {
		m[k] = v
	}
	return m
}

// Clone returns an independent copy of e.
func (e *Environment) Clone() *Environment {
	return &Environment{vars: e.Map()}
}

// restore replaces the bindings with those of snapshot.
func (e *Environment) restore(snapshot *Environment) {
	e.vars = snapshot.Map()
}

func (e *Environment) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, name := range e.Names() {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%s: %d", name, e.vars[name])
	}
	sb.WriteByte('}')
	return sb.String()
}
