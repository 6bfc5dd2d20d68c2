/*
File    : golox/object/callable.go
Package : object
*/
package object

import "github.com/akashmaji946/golox/ast"

// Environment is the subset of environment.Environment's surface that
// a callable value needs: enough to bind parameters in a fresh child
// scope and to read/write the resolver-bound `this`/`super` slots.
// Keeping this as an interface (rather than importing the environment
// package directly) is what lets object and environment depend on each
// other's values without an import cycle: environment imports object
// for the Object type; object only ever sees environment through this
// interface.
type Environment interface {
	Define(name string, value Object)
	Get(name string) (Object, bool)
	GetAt(distance int, name string) (Object, bool)
	Assign(name string, value Object) bool
	AssignAt(distance int, name string, value Object) bool
	NewChild() Environment
}

// Interpreter is the subset of the interpreter's surface a callable
// value needs to run its body: execute a block of statements in a
// given environment and report either the unwound Return value (a nil
// Object if the body fell off the end) or a runtime error.
type Interpreter interface {
	ExecuteBlock(statements []ast.Stmt, env Environment) (Object, error)
}

// Callable is any Object that can appear on the left of a Call
// expression: user functions, native functions, and classes
// (instantiation is calling the class itself).
type Callable interface {
	Object
	Arity() int
	Call(interp Interpreter, args []Object) (Object, error)
}

// Function is a user-defined Lox function or method, closing over the
// environment active at its declaration site.
type Function struct {
	Declaration   *ast.Function
	Closure       Environment
	IsInitializer bool
}

func NewFunction(decl *ast.Function, closure Environment, isInitializer bool) *Function {
	return &Function{Declaration: decl, Closure: closure, IsInitializer: isInitializer}
}

func (f *Function) Type() Type { return FunctionType }
func (f *Function) String() string {
	return "<fn " + f.Declaration.Name.Lexeme + ">"
}
func (f *Function) Arity() int { return len(f.Declaration.Params) }

func (f *Function) Call(interp Interpreter, args []Object) (Object, error) {
	env := f.Closure.NewChild()
	for i, param := range f.Declaration.Params {
		env.Define(param.Lexeme, args[i])
	}

	result, err := interp.ExecuteBlock(f.Declaration.Body, env)
	if err != nil {
		return nil, err
	}

	if f.IsInitializer {
		this, _ := f.Closure.GetAt(0, "this")
		return this, nil
	}
	if result == nil {
		return NilValue, nil
	}
	return result, nil
}

// Bind produces a copy of the method closed over an environment whose
// only binding is `this` pointing at instance — the step that turns
// an unbound method from a class's method table into a callable bound
// to one instance.
func (f *Function) Bind(instance *Instance) *Function {
	env := f.Closure.NewChild()
	env.Define("this", instance)
	return NewFunction(f.Declaration, env, f.IsInitializer)
}

// NativeFunction wraps a Go function as a Lox-callable value, the
// shape `clock` (and any other native) takes.
type NativeFunction struct {
	Name     string
	ArityVal int
	Fn       func(args []Object) (Object, error)
}

func (n *NativeFunction) Type() Type     { return NativeType }
func (n *NativeFunction) String() string { return "<native fn>" }
func (n *NativeFunction) Arity() int     { return n.ArityVal }
func (n *NativeFunction) Call(interp Interpreter, args []Object) (Object, error) {
	return n.Fn(args)
}
