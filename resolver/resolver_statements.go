/*
File    : golox/resolver/resolver_statements.go
Package : resolver
*/
package resolver

import "github.com/akashmaji946/golox/ast"

func (r *Resolver) VisitBlockStmt(s *ast.Block) any {
	r.beginScope()
	r.resolveStmts(s.Statements)
	r.endScope()
	return nil
}

func (r *Resolver) VisitClassStmt(s *ast.Class) any {
	enclosingClass := r.currentClass
	r.currentClass = inClass

	r.declare(s.Name)
	r.define(s.Name)

	if s.Superclass != nil {
		if s.Superclass.Name.Lexeme == s.Name.Lexeme {
			r.error(s.Superclass.Name.Line, "A class can't inherit from itself.")
		}
		r.currentClass = inSubclass
		r.resolveExpr(s.Superclass)

		r.beginScope()
		r.scopes[len(r.scopes)-1]["super"] = true
	}

	r.beginScope()
	r.scopes[len(r.scopes)-1]["this"] = true

	for _, method := range s.Methods {
		kind := inMethod
		if method.Name.Lexeme == "init" {
			kind = inInitializer
		}
		r.resolveFunction(method, kind)
	}

	r.endScope()

	if s.Superclass != nil {
		r.endScope()
	}

	r.currentClass = enclosingClass
	return nil
}

func (r *Resolver) VisitExpressionStmt(s *ast.ExpressionStmt) any {
	r.resolveExpr(s.Expression)
	return nil
}

func (r *Resolver) VisitForStmt(s *ast.For) any {
	r.beginScope()
	if s.Init != nil {
		r.resolveStmt(s.Init)
	}
	if s.Condition != nil {
		r.resolveExpr(s.Condition)
	}
	if s.Increment != nil {
		r.resolveExpr(s.Increment)
	}
	r.resolveStmt(s.Body)
	r.endScope()
	return nil
}

func (r *Resolver) VisitFunctionStmt(s *ast.Function) any {
	r.declare(s.Name)
	r.define(s.Name)
	r.resolveFunction(s, inFunction)
	return nil
}

func (r *Resolver) VisitIfStmt(s *ast.If) any {
	r.resolveExpr(s.Condition)
	r.resolveStmt(s.ThenBranch)
	if s.ElseBranch != nil {
		r.resolveStmt(s.ElseBranch)
	}
	return nil
}

func (r *Resolver) VisitPrintStmt(s *ast.Print) any {
	r.resolveExpr(s.Expression)
	return nil
}

func (r *Resolver) VisitReturnStmt(s *ast.Return) any {
	if r.currentFunction == noFunction {
		r.error(s.Keyword.Line, "Can't return from top-level code.")
	}
	if s.Value != nil {
		if r.currentFunction == inInitializer {
			r.error(s.Keyword.Line, "Can't return a value from an initializer.")
		}
		r.resolveExpr(s.Value)
	}
	return nil
}

func (r *Resolver) VisitVarStmt(s *ast.Var) any {
	r.declare(s.Name)
	if s.Initializer != nil {
		r.resolveExpr(s.Initializer)
	}
	r.define(s.Name)
	return nil
}

func (r *Resolver) VisitWhileStmt(s *ast.While) any {
	r.resolveExpr(s.Condition)
	r.resolveStmt(s.Body)
	return nil
}
