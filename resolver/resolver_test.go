/*
File    : golox/resolver/resolver_test.go
Package : resolver
*/
package resolver

import (
	"testing"

	"github.com/akashmaji946/golox/ast"
	"github.com/akashmaji946/golox/lexer"
	"github.com/akashmaji946/golox/parser"
	"github.com/stretchr/testify/assert"
)

func mustParse(t *testing.T, src string) []ast.Stmt {
	t.Helper()
	tokens, errs := lexer.Lex(src)
	assert.Equal(t, 0, errs)
	p := parser.New(tokens)
	stmts := p.ParseProgram()
	assert.False(t, p.HasErrors())
	return stmts
}

func TestResolver_OwnInitializerIsStaticError(t *testing.T) {
	stmts := mustParse(t, `{ var a = "outer"; { var a = a; } }`)
	r := New()
	r.Resolve(stmts)
	assert.True(t, r.HasErrors())
	assert.Contains(t, r.Errors[0].Message, "own initializer")
}

func TestResolver_ReturnOutsideFunctionIsStaticError(t *testing.T) {
	stmts := mustParse(t, `return 1;`)
	r := New()
	r.Resolve(stmts)
	assert.True(t, r.HasErrors())
	assert.Contains(t, r.Errors[0].Message, "return from top-level")
}

func TestResolver_DoubleDeclarationInLocalScopeIsStaticError(t *testing.T) {
	stmts := mustParse(t, `{ var a = 1; var a = 2; }`)
	r := New()
	r.Resolve(stmts)
	assert.True(t, r.HasErrors())
}

func TestResolver_GlobalRedeclarationIsNotAnError(t *testing.T) {
	stmts := mustParse(t, `var a = 1; var a = 2;`)
	r := New()
	r.Resolve(stmts)
	assert.False(t, r.HasErrors())
}

func TestResolver_RecordsDepthForLocalReference(t *testing.T) {
	stmts := mustParse(t, `{ var a = 1; print a; }`)
	r := New()
	depths := r.Resolve(stmts)
	assert.False(t, r.HasErrors())

	block := stmts[0].(*ast.Block)
	printStmt := block.Statements[1].(*ast.Print)
	variable := printStmt.Expression.(*ast.Variable)

	depth, ok := depths[variable]
	assert.True(t, ok)
	assert.Equal(t, 0, depth)
}

func TestResolver_GlobalReferenceHasNoDepth(t *testing.T) {
	stmts := mustParse(t, `var a = 1; print a;`)
	r := New()
	depths := r.Resolve(stmts)
	assert.False(t, r.HasErrors())

	printStmt := stmts[1].(*ast.Print)
	variable := printStmt.Expression.(*ast.Variable)

	_, ok := depths[variable]
	assert.False(t, ok)
}

func TestResolver_ThisOutsideClassIsStaticError(t *testing.T) {
	stmts := mustParse(t, `print this;`)
	r := New()
	r.Resolve(stmts)
	assert.True(t, r.HasErrors())
	assert.Contains(t, r.Errors[0].Message, "'this' outside")
}

func TestResolver_SuperWithoutSuperclassIsStaticError(t *testing.T) {
	stmts := mustParse(t, `class A { m() { super.m(); } }`)
	r := New()
	r.Resolve(stmts)
	assert.True(t, r.HasErrors())
	assert.Contains(t, r.Errors[0].Message, "no superclass")
}

func TestResolver_ClassInheritingFromItselfIsStaticError(t *testing.T) {
	stmts := mustParse(t, `class Oops < Oops {}`)
	r := New()
	r.Resolve(stmts)
	assert.True(t, r.HasErrors())
}
