/*
File    : golox/environment/environment_test.go
Package : environment
*/
package environment

import (
	"testing"

	"github.com/akashmaji946/golox/object"
	"github.com/stretchr/testify/assert"
)

func TestEnvironment_DefineAndGet(t *testing.T) {
	env := New(nil)
	env.Define("a", object.Number(1))
	v, ok := env.Get("a")
	assert.True(t, ok)
	assert.Equal(t, object.Number(1), v)
}

func TestEnvironment_GetFallsThroughToParent(t *testing.T) {
	parent := New(nil)
	parent.Define("a", object.Number(1))
	child := New(parent)
	v, ok := child.Get("a")
	assert.True(t, ok)
	assert.Equal(t, object.Number(1), v)
}

func TestEnvironment_GetMissingFails(t *testing.T) {
	env := New(nil)
	_, ok := env.Get("missing")
	assert.False(t, ok)
}

func TestEnvironment_AssignWritesNearestFrame(t *testing.T) {
	parent := New(nil)
	parent.Define("a", object.Number(1))
	child := New(parent)

	ok := child.Assign("a", object.Number(2))
	assert.True(t, ok)

	v, _ := parent.Get("a")
	assert.Equal(t, object.Number(2), v)
}

func TestEnvironment_AssignMissingFails(t *testing.T) {
	env := New(nil)
	ok := env.Assign("missing", object.Number(1))
	assert.False(t, ok)
}

func TestEnvironment_GetAtAndAssignAt(t *testing.T) {
	global := New(nil)
	global.Define("a", object.Number(1))
	inner := New(New(global)) // global is two frames above inner

	v, ok := inner.GetAt(2, "a")
	assert.True(t, ok)
	assert.Equal(t, object.Number(1), v)

	assert.True(t, inner.AssignAt(2, "a", object.Number(9)))
	v, _ = global.Get("a")
	assert.Equal(t, object.Number(9), v)
}

func TestEnvironment_DefineOverwritesSameLevel(t *testing.T) {
	env := New(nil)
	env.Define("a", object.Number(1))
	env.Define("a", object.Number(2))
	v, _ := env.Get("a")
	assert.Equal(t, object.Number(2), v)
}
