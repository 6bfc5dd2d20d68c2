/*
File    : golox/interpreter/interpreter.go
Package : interpreter
*/

/*
Package interpreter tree-walks a resolved Lox AST. It mirrors the
teacher's eval package in shape — an evaluator struct threading an
active scope, a globals scope seeded with builtins, and a redirectable
output Writer — generalized to Lox's expression and
statement set and its resolver-driven environment lookup.
*/
package interpreter

import (
	"io"
	"os"

	"github.com/akashmaji946/golox/ast"
	"github.com/akashmaji946/golox/environment"
	"github.com/akashmaji946/golox/object"
)

// Interpreter holds everything needed to execute a resolved program:
// the global environment (pre-populated with natives), the currently
// active environment, the resolver's depth side-table, and the output
// sink for `print`.
type Interpreter struct {
	globals object.Environment
	env     object.Environment
	locals  map[ast.Expr]int
	Writer  io.Writer
}

// New constructs an Interpreter with a fresh global environment
// holding the native `clock`, writing `print` output to os.Stdout by
// default.
func New() *Interpreter {
	globals := environment.New(nil)
	registerNatives(globals)
	return &Interpreter{
		globals: globals,
		env:     globals,
		locals:  make(map[ast.Expr]int),
		Writer:  os.Stdout,
	}
}

// SetWriter redirects `print` output, the same testability hook the
// teacher's Evaluator.SetWriter provides.
func (in *Interpreter) SetWriter(w io.Writer) {
	in.Writer = w
}

// Interpret runs a full program (the `run` mode entry point). locals
// is the resolver's completed depth side-table.
func (in *Interpreter) Interpret(stmts []ast.Stmt, locals map[ast.Expr]int) error {
	in.locals = locals
	for _, stmt := range stmts {
		if err := in.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

// EvaluateExpression evaluates a single expression (the `evaluate`
// mode entry point).
func (in *Interpreter) EvaluateExpression(expr ast.Expr, locals map[ast.Expr]int) (object.Object, error) {
	in.locals = locals
	return in.evaluate(expr)
}

// execute runs one statement, recovering a RuntimeError panic raised
// deep in expression evaluation (arithmetic type checks panic rather
// than threading an error return through every visitor method — see
// evaluate's doc comment) back into a normal error return.
func (in *Interpreter) execute(stmt ast.Stmt) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if re, ok := r.(*RuntimeError); ok {
				err = re
				return
			}
			if rs, ok := r.(*returnSignal); ok {
				panic(rs) // re-throw: only ExecuteBlock may catch this
			}
			panic(r)
		}
	}()
	result := stmt.Accept(in)
	if err, ok := result.(error); ok {
		return err
	}
	return nil
}

// evaluate runs one expression, returning the panic-carried
// RuntimeError as a normal error so callers outside execute's recover
// scope (e.g. a raw expression entry point) also get one.
func (in *Interpreter) evaluate(expr ast.Expr) (result object.Object, err error) {
	defer func() {
		if r := recover(); r != nil {
			if re, ok := r.(*RuntimeError); ok {
				err = re
				return
			}
			panic(r)
		}
	}()
	return expr.Accept(in).(object.Object), nil
}

// ExecuteBlock implements object.Interpreter: run statements in env,
// restoring the previously active environment on every exit path,
// catching a returnSignal and reporting its value instead of letting
// it escape as an error.
func (in *Interpreter) ExecuteBlock(stmts []ast.Stmt, env object.Environment) (result object.Object, err error) {
	previous := in.env
	in.env = env
	defer func() { in.env = previous }()

	defer func() {
		if r := recover(); r != nil {
			if rs, ok := r.(*returnSignal); ok {
				result = rs.Value
				err = nil
				return
			}
			if re, ok := r.(*RuntimeError); ok {
				err = re
				return
			}
			panic(r)
		}
	}()

	for _, stmt := range stmts {
		stmt.Accept(in)
	}
	return nil, nil
}

// lookUpVariable resolves a name reference using the resolver's depth
// side-table when present, falling back to the globals lookup
// otherwise (spec.md §4.3's "no frame has the name" rule).
func (in *Interpreter) lookUpVariable(name string, expr ast.Expr, line int) object.Object {
	if distance, ok := in.locals[expr]; ok {
		if v, ok := in.env.GetAt(distance, name); ok {
			return v
		}
	} else if v, ok := in.globals.Get(name); ok {
		return v
	}
	panic(newRuntimeError(line, "Undefined variable '%s'.", name))
}
