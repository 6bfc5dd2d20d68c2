/*
File    : golox/resolver/resolver.go
Package : resolver
*/

/*
Package resolver performs the static pass between parsing and
evaluation: it walks the AST once, threading a stack of lexical scope
frames, and records for every variable reference how many scope frames
separate it from its declaration. The interpreter consults that
side-table instead of searching the environment chain at runtime.
*/
package resolver

import (
	"fmt"

	"github.com/akashmaji946/golox/ast"
	"github.com/akashmaji946/golox/lexer"
)

// functionType tracks what kind of function body is currently being
// resolved, so `return` and `this` can be validated contextually.
type functionType int

const (
	noFunction functionType = iota
	inFunction
	inInitializer
	inMethod
)

// classType tracks whether a class body (and which kind) is currently
// being resolved, so `this`/`super` can be validated contextually.
type classType int

const (
	noClass classType = iota
	inClass
	inSubclass
)

// ResolveError is one static error discovered during resolution. All
// three kinds named in spec.md §4.3 render through this type.
type ResolveError struct {
	Line    int
	Message string
}

func (e *ResolveError) Error() string {
	return fmt.Sprintf("[line %d] Error: %s", e.Line, e.Message)
}

// Resolver implements ast.ExprVisitor and ast.StmtVisitor. Each Visit*
// method returns nil; the side effect is populating depths and Errors.
type Resolver struct {
	scopes          []map[string]bool
	depths          map[ast.Expr]int
	currentFunction functionType
	currentClass    classType
	Errors          []*ResolveError
}

// New constructs a Resolver ready to walk a program's top-level
// statements. The global scope is implicit: names never found in
// scopes resolve to globals at runtime (spec.md §4.3's "no frame has
// the name" rule).
func New() *Resolver {
	return &Resolver{depths: make(map[ast.Expr]int)}
}

// Resolve walks every statement and returns the completed depth
// side-table. Check HasErrors afterward; a non-empty result does not
// imply a clean resolution.
func (r *Resolver) Resolve(stmts []ast.Stmt) map[ast.Expr]int {
	r.resolveStmts(stmts)
	return r.depths
}

// HasErrors reports whether any static error was recorded.
func (r *Resolver) HasErrors() bool { return len(r.Errors) > 0 }

func (r *Resolver) error(line int, message string) {
	r.Errors = append(r.Errors, &ResolveError{Line: line, Message: message})
}

func (r *Resolver) resolveStmts(stmts []ast.Stmt) {
	for _, s := range stmts {
		r.resolveStmt(s)
	}
}

func (r *Resolver) resolveStmt(s ast.Stmt) {
	if s == nil {
		return
	}
	s.Accept(r)
}

func (r *Resolver) resolveExpr(e ast.Expr) {
	if e == nil {
		return
	}
	e.Accept(r)
}

func (r *Resolver) beginScope() {
	r.scopes = append(r.scopes, make(map[string]bool))
}

func (r *Resolver) endScope() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

func (r *Resolver) scopeDepth() int { return len(r.scopes) }

// declare marks name as present but not yet initialized in the
// innermost scope. Redeclaring a name already declared at this same
// level is the "double declaration" static error.
func (r *Resolver) declare(name lexer.Token) {
	if len(r.scopes) == 0 {
		return
	}
	scope := r.scopes[len(r.scopes)-1]
	if _, exists := scope[name.Lexeme]; exists {
		r.error(name.Line, fmt.Sprintf("Already a variable named '%s' in this scope.", name.Lexeme))
	}
	scope[name.Lexeme] = false
}

// define marks name as fully initialized in the innermost scope.
func (r *Resolver) define(name lexer.Token) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name.Lexeme] = true
}

// resolveLocal searches scopes innermost-out for name and records the
// distance in the side-table keyed by the referencing expression node.
// No match leaves no entry, meaning "resolve in globals at runtime".
func (r *Resolver) resolveLocal(expr ast.Expr, name lexer.Token) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name.Lexeme]; ok {
			r.depths[expr] = len(r.scopes) - 1 - i
			return
		}
	}
}

func (r *Resolver) resolveFunction(fn *ast.Function, kind functionType) {
	enclosingFunction := r.currentFunction
	r.currentFunction = kind

	r.beginScope()
	for _, param := range fn.Params {
		r.declare(param)
		r.define(param)
	}
	r.resolveStmts(fn.Body)
	r.endScope()

	r.currentFunction = enclosingFunction
}
