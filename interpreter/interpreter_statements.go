/*
File    : golox/interpreter/interpreter_statements.go
Package : interpreter
*/
package interpreter

import (
	"fmt"

	"github.com/akashmaji946/golox/ast"
	"github.com/akashmaji946/golox/object"
)

func (in *Interpreter) VisitExpressionStmt(s *ast.ExpressionStmt) any {
	if _, err := in.evaluate(s.Expression); err != nil {
		panic(err)
	}
	return nil
}

func (in *Interpreter) VisitPrintStmt(s *ast.Print) any {
	v, err := in.evaluate(s.Expression)
	if err != nil {
		panic(err)
	}
	fmt.Fprintln(in.Writer, v.String())
	return nil
}

func (in *Interpreter) VisitVarStmt(s *ast.Var) any {
	var value object.Object = object.NilValue
	if s.Initializer != nil {
		v, err := in.evaluate(s.Initializer)
		if err != nil {
			panic(err)
		}
		value = v
	}
	in.env.Define(s.Name.Lexeme, value)
	return nil
}

// VisitBlockStmt runs the block in a fresh child scope without going
// through ExecuteBlock, so a returnSignal raised inside it keeps
// unwinding to the enclosing function call.
func (in *Interpreter) VisitBlockStmt(s *ast.Block) any {
	previous := in.env
	in.env = in.env.NewChild()
	defer func() { in.env = previous }()

	for _, stmt := range s.Statements {
		stmt.Accept(in)
	}
	return nil
}

func (in *Interpreter) VisitIfStmt(s *ast.If) any {
	cond, err := in.evaluate(s.Condition)
	if err != nil {
		panic(err)
	}
	if object.Truthy(cond) {
		in.executeOrPanic(s.ThenBranch)
	} else if s.ElseBranch != nil {
		in.executeOrPanic(s.ElseBranch)
	}
	return nil
}

func (in *Interpreter) VisitWhileStmt(s *ast.While) any {
	for {
		cond, err := in.evaluate(s.Condition)
		if err != nil {
			panic(err)
		}
		if !object.Truthy(cond) {
			break
		}
		in.executeOrPanic(s.Body)
	}
	return nil
}

// VisitForStmt gives the sugared For node while-loop semantics in a
// single enclosing scope, per spec.md §4.2's desugaring note: Init
// runs once in a fresh scope, Condition gates each iteration (absent
// means true), Body runs, then Increment runs at the end of each
// iteration — all without ever rewriting the AST into Block+While.
func (in *Interpreter) VisitForStmt(s *ast.For) any {
	previous := in.env
	in.env = in.env.NewChild()
	defer func() { in.env = previous }()

	if s.Init != nil {
		in.executeOrPanic(s.Init)
	}

	for {
		if s.Condition != nil {
			cond, err := in.evaluate(s.Condition)
			if err != nil {
				panic(err)
			}
			if !object.Truthy(cond) {
				break
			}
		}
		in.executeOrPanic(s.Body)
		if s.Increment != nil {
			if _, err := in.evaluate(s.Increment); err != nil {
				panic(err)
			}
		}
	}
	return nil
}

func (in *Interpreter) VisitFunctionStmt(s *ast.Function) any {
	fn := object.NewFunction(s, in.env, false)
	in.env.Define(s.Name.Lexeme, fn)
	return nil
}

func (in *Interpreter) VisitReturnStmt(s *ast.Return) any {
	var value object.Object = object.NilValue
	if s.Value != nil {
		v, err := in.evaluate(s.Value)
		if err != nil {
			panic(err)
		}
		value = v
	}
	panic(&returnSignal{Value: value})
}

func (in *Interpreter) VisitClassStmt(s *ast.Class) any {
	var superclass *object.Class
	if s.Superclass != nil {
		v := in.lookUpVariable(s.Superclass.Name.Lexeme, s.Superclass, s.Superclass.Name.Line)
		sc, ok := v.(*object.Class)
		if !ok {
			panic(newRuntimeError(s.Superclass.Name.Line, "Superclass must be a class."))
		}
		superclass = sc
	}

	in.env.Define(s.Name.Lexeme, object.NilValue)

	classEnv := in.env
	if superclass != nil {
		classEnv = in.env.NewChild()
		classEnv.Define("super", superclass)
	}

	methods := make(map[string]*object.Function)
	for _, method := range s.Methods {
		methods[method.Name.Lexeme] = object.NewFunction(method, classEnv, method.Name.Lexeme == "init")
	}

	class := object.NewClass(s.Name.Lexeme, superclass, methods)
	in.env.Assign(s.Name.Lexeme, class)
	return nil
}

// executeOrPanic runs a nested statement without a recover of its own:
// runtime errors and return signals raised inside it are already
// panics, so they reach the enclosing statement's recover (if any)
// uniformly with expression-evaluation failures.
func (in *Interpreter) executeOrPanic(stmt ast.Stmt) {
	stmt.Accept(in)
}
