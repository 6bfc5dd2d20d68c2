/*
File    : golox/environment/environment.go
Package : environment
*/

/*
Package environment implements the parent-chained binding store the
interpreter threads through block scopes, function calls, and
closures. It is the generalization of the teacher's scope package
(scope.Scope's Variables map and Parent pointer) to Lox's smaller value
set, plus the GetAt/AssignAt pair the resolver's depth side-table
requires.
*/
package environment

import "github.com/akashmaji946/golox/object"

// Environment is one binding frame: a map of names to values and a
// pointer to the enclosing frame (nil for globals).
type Environment struct {
	values map[string]object.Object
	parent *Environment
}

// New creates an Environment with the given parent (nil for a fresh
// global scope).
func New(parent *Environment) *Environment {
	return &Environment{values: make(map[string]object.Object), parent: parent}
}

// NewChild creates a child scope of e. Returned as the object.Environment
// interface so callable values never need to import this package
// directly.
func (e *Environment) NewChild() object.Environment {
	return New(e)
}

// Define binds name in this frame, overwriting any existing binding at
// this same level (spec.md §4.4's "Redefinition at the same level
// overwrites").
func (e *Environment) Define(name string, value object.Object) {
	e.values[name] = value
}

// Get searches this frame and its ancestors for name.
func (e *Environment) Get(name string) (object.Object, bool) {
	if v, ok := e.values[name]; ok {
		return v, true
	}
	if e.parent != nil {
		return e.parent.Get(name)
	}
	return nil, false
}

// Assign writes to the nearest frame (innermost-out) already holding
// name. Reports false when name is bound nowhere in the chain.
func (e *Environment) Assign(name string, value object.Object) bool {
	if _, ok := e.values[name]; ok {
		e.values[name] = value
		return true
	}
	if e.parent != nil {
		return e.parent.Assign(name, value)
	}
	return false
}

// GetAt reads name from the frame exactly `distance` links above this
// one, the lookup path the resolver's side-table licenses.
func (e *Environment) GetAt(distance int, name string) (object.Object, bool) {
	frame := e.ancestor(distance)
	if frame == nil {
		return nil, false
	}
	v, ok := frame.values[name]
	return v, ok
}

// AssignAt writes name in the frame exactly `distance` links above
// this one.
func (e *Environment) AssignAt(distance int, name string, value object.Object) bool {
	frame := e.ancestor(distance)
	if frame == nil {
		return false
	}
	frame.values[name] = value
	return true
}

func (e *Environment) ancestor(distance int) *Environment {
	frame := e
	for i := 0; i < distance && frame != nil; i++ {
		frame = frame.parent
	}
	return frame
}
