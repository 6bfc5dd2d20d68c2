/*
File    : golox/interpreter/interpreter_expressions.go
Package : interpreter
*/
package interpreter

import (
	"github.com/akashmaji946/golox/ast"
	"github.com/akashmaji946/golox/lexer"
	"github.com/akashmaji946/golox/object"
)

func (in *Interpreter) VisitLiteralExpr(e *ast.Literal) any {
	return literalToObject(e.Value)
}

func literalToObject(v any) object.Object {
	switch val := v.(type) {
	case nil:
		return object.NilValue
	case bool:
		return object.Boolean(val)
	case float64:
		return object.Number(val)
	case string:
		return object.String(val)
	default:
		return object.NilValue
	}
}

func (in *Interpreter) VisitGroupingExpr(e *ast.Grouping) any {
	v, err := in.evaluate(e.Expression)
	if err != nil {
		panic(err)
	}
	return v
}

func (in *Interpreter) VisitUnaryExpr(e *ast.Unary) any {
	right, err := in.evaluate(e.Right)
	if err != nil {
		panic(err)
	}

	switch e.Operator.Kind {
	case lexer.MINUS:
		n, ok := right.(object.Number)
		if !ok {
			panic(newRuntimeError(e.Operator.Line, "Operand must be a number."))
		}
		return object.Number(-n)
	case lexer.BANG:
		return object.Boolean(!object.Truthy(right))
	}
	panic(newRuntimeError(e.Operator.Line, "Unknown unary operator."))
}

func (in *Interpreter) VisitBinaryExpr(e *ast.Binary) any {
	left, err := in.evaluate(e.Left)
	if err != nil {
		panic(err)
	}
	right, err := in.evaluate(e.Right)
	if err != nil {
		panic(err)
	}

	line := e.Operator.Line
	switch e.Operator.Kind {
	case lexer.PLUS:
		if ln, ok := left.(object.Number); ok {
			if rn, ok := right.(object.Number); ok {
				return ln + rn
			}
		}
		if ls, ok := left.(object.String); ok {
			if rs, ok := right.(object.String); ok {
				return ls + rs
			}
		}
		panic(newRuntimeError(line, "Operands must be two numbers or two strings."))
	case lexer.MINUS:
		ln, rn, ok := bothNumbers(left, right)
		if !ok {
			panic(newRuntimeError(line, "Operands must be numbers."))
		}
		return ln - rn
	case lexer.STAR:
		ln, rn, ok := bothNumbers(left, right)
		if !ok {
			panic(newRuntimeError(line, "Operands must be numbers."))
		}
		return ln * rn
	case lexer.SLASH:
		ln, rn, ok := bothNumbers(left, right)
		if !ok {
			panic(newRuntimeError(line, "Operands must be numbers."))
		}
		return ln / rn
	case lexer.GREATER:
		ln, rn, ok := bothNumbers(left, right)
		if !ok {
			panic(newRuntimeError(line, "Operands must be numbers."))
		}
		return object.Boolean(ln > rn)
	case lexer.GREATER_EQUAL:
		ln, rn, ok := bothNumbers(left, right)
		if !ok {
			panic(newRuntimeError(line, "Operands must be numbers."))
		}
		return object.Boolean(ln >= rn)
	case lexer.LESS:
		ln, rn, ok := bothNumbers(left, right)
		if !ok {
			panic(newRuntimeError(line, "Operands must be numbers."))
		}
		return object.Boolean(ln < rn)
	case lexer.LESS_EQUAL:
		ln, rn, ok := bothNumbers(left, right)
		if !ok {
			panic(newRuntimeError(line, "Operands must be numbers."))
		}
		return object.Boolean(ln <= rn)
	case lexer.EQUAL_EQUAL:
		return object.Boolean(object.Equal(left, right))
	case lexer.BANG_EQUAL:
		return object.Boolean(!object.Equal(left, right))
	}
	panic(newRuntimeError(line, "Unknown binary operator."))
}

func bothNumbers(left, right object.Object) (object.Number, object.Number, bool) {
	ln, ok1 := left.(object.Number)
	rn, ok2 := right.(object.Number)
	return ln, rn, ok1 && ok2
}

func (in *Interpreter) VisitLogicalExpr(e *ast.Logical) any {
	left, err := in.evaluate(e.Left)
	if err != nil {
		panic(err)
	}

	if e.Operator.Kind == lexer.OR {
		if object.Truthy(left) {
			return left
		}
	} else {
		if !object.Truthy(left) {
			return left
		}
	}

	right, err := in.evaluate(e.Right)
	if err != nil {
		panic(err)
	}
	return right
}

func (in *Interpreter) VisitVariableExpr(e *ast.Variable) any {
	return in.lookUpVariable(e.Name.Lexeme, e, e.Name.Line)
}

func (in *Interpreter) VisitAssignExpr(e *ast.Assign) any {
	value, err := in.evaluate(e.Value)
	if err != nil {
		panic(err)
	}

	if distance, ok := in.locals[e]; ok {
		if in.env.AssignAt(distance, e.Name.Lexeme, value) {
			return value
		}
	} else if in.globals.Assign(e.Name.Lexeme, value) {
		return value
	}
	panic(newRuntimeError(e.Name.Line, "Undefined variable '%s'.", e.Name.Lexeme))
}

func (in *Interpreter) VisitCallExpr(e *ast.Call) any {
	callee, err := in.evaluate(e.Callee)
	if err != nil {
		panic(err)
	}

	args := make([]object.Object, len(e.Arguments))
	for i, argExpr := range e.Arguments {
		v, err := in.evaluate(argExpr)
		if err != nil {
			panic(err)
		}
		args[i] = v
	}

	callable, ok := callee.(object.Callable)
	if !ok {
		panic(newRuntimeError(e.Paren.Line, "Can only call functions and classes."))
	}
	if len(args) != callable.Arity() {
		panic(newRuntimeError(e.Paren.Line, "Expected %d arguments but got %d.", callable.Arity(), len(args)))
	}

	result, err := callable.Call(in, args)
	if err != nil {
		panic(err)
	}
	return result
}

func (in *Interpreter) VisitGetExpr(e *ast.Get) any {
	obj, err := in.evaluate(e.Object)
	if err != nil {
		panic(err)
	}
	instance, ok := obj.(*object.Instance)
	if !ok {
		panic(newRuntimeError(e.Name.Line, "Only instances have properties."))
	}
	v, ok := instance.Get(e.Name.Lexeme)
	if !ok {
		panic(newRuntimeError(e.Name.Line, "Undefined property '%s'.", e.Name.Lexeme))
	}
	return v
}

func (in *Interpreter) VisitSetExpr(e *ast.Set) any {
	obj, err := in.evaluate(e.Object)
	if err != nil {
		panic(err)
	}
	instance, ok := obj.(*object.Instance)
	if !ok {
		panic(newRuntimeError(e.Name.Line, "Only instances have fields."))
	}
	value, err := in.evaluate(e.Value)
	if err != nil {
		panic(err)
	}
	instance.Set(e.Name.Lexeme, value)
	return value
}

func (in *Interpreter) VisitThisExpr(e *ast.This) any {
	return in.lookUpVariable("this", e, e.Keyword.Line)
}

func (in *Interpreter) VisitSuperExpr(e *ast.Super) any {
	distance, ok := in.locals[e]
	if !ok {
		panic(newRuntimeError(e.Keyword.Line, "Undefined variable 'super'."))
	}
	superVal, _ := in.env.GetAt(distance, "super")
	superclass, ok := superVal.(*object.Class)
	if !ok {
		panic(newRuntimeError(e.Keyword.Line, "Undefined variable 'super'."))
	}

	thisVal, _ := in.env.GetAt(distance-1, "this")
	instance, _ := thisVal.(*object.Instance)

	method, ok := superclass.FindMethod(e.Method.Lexeme)
	if !ok {
		panic(newRuntimeError(e.Method.Line, "Undefined property '%s'.", e.Method.Lexeme))
	}
	return method.Bind(instance)
}
