/*
File    : golox/resolver/resolver_expressions.go
Package : resolver
*/
package resolver

import "github.com/akashmaji946/golox/ast"

func (r *Resolver) VisitAssignExpr(e *ast.Assign) any {
	r.resolveExpr(e.Value)
	r.resolveLocal(e, e.Name)
	return nil
}

func (r *Resolver) VisitBinaryExpr(e *ast.Binary) any {
	r.resolveExpr(e.Left)
	r.resolveExpr(e.Right)
	return nil
}

func (r *Resolver) VisitCallExpr(e *ast.Call) any {
	r.resolveExpr(e.Callee)
	for _, arg := range e.Arguments {
		r.resolveExpr(arg)
	}
	return nil
}

func (r *Resolver) VisitGetExpr(e *ast.Get) any {
	r.resolveExpr(e.Object)
	return nil
}

func (r *Resolver) VisitSetExpr(e *ast.Set) any {
	r.resolveExpr(e.Value)
	r.resolveExpr(e.Object)
	return nil
}

func (r *Resolver) VisitSuperExpr(e *ast.Super) any {
	switch r.currentClass {
	case noClass:
		r.error(e.Keyword.Line, "Can't use 'super' outside of a class.")
	case inClass:
		r.error(e.Keyword.Line, "Can't use 'super' in a class with no superclass.")
	}
	r.resolveLocal(e, e.Keyword)
	return nil
}

func (r *Resolver) VisitThisExpr(e *ast.This) any {
	if r.currentClass == noClass {
		r.error(e.Keyword.Line, "Can't use 'this' outside of a class.")
		return nil
	}
	r.resolveLocal(e, e.Keyword)
	return nil
}

func (r *Resolver) VisitGroupingExpr(e *ast.Grouping) any {
	r.resolveExpr(e.Expression)
	return nil
}

func (r *Resolver) VisitLiteralExpr(e *ast.Literal) any {
	return nil
}

func (r *Resolver) VisitLogicalExpr(e *ast.Logical) any {
	r.resolveExpr(e.Left)
	r.resolveExpr(e.Right)
	return nil
}

func (r *Resolver) VisitUnaryExpr(e *ast.Unary) any {
	r.resolveExpr(e.Right)
	return nil
}

func (r *Resolver) VisitVariableExpr(e *ast.Variable) any {
	if len(r.scopes) > 0 {
		if defined, declared := r.scopes[len(r.scopes)-1][e.Name.Lexeme]; declared && !defined {
			r.error(e.Name.Line, "Can't read local variable in its own initializer.")
		}
	}
	r.resolveLocal(e, e.Name)
	return nil
}
