/*
File    : golox/parser/parser_test.go
Package : parser
*/
package parser

import (
	"testing"

	"github.com/akashmaji946/golox/ast"
	"github.com/akashmaji946/golox/lexer"
	"github.com/stretchr/testify/assert"
)

func parseExpr(t *testing.T, src string) ast.Expr {
	t.Helper()
	tokens, errs := lexer.Lex(src)
	assert.Equal(t, 0, errs)
	p := New(tokens)
	expr, err := p.ParseExpression()
	assert.NoError(t, err)
	return expr
}

func TestParser_ArithmeticPrecedence(t *testing.T) {
	expr := parseExpr(t, "-123 * (45.67)")
	assert.Equal(t, "(* (- 123.0) (group 45.67))", ast.NewPrinter().Print(expr))
}

func TestParser_Comparison(t *testing.T) {
	expr := parseExpr(t, "1 < 2 == 3 >= 4")
	assert.Equal(t, "(== (< 1.0 2.0) (>= 3.0 4.0))", ast.NewPrinter().Print(expr))
}

func TestParser_LogicalShortCircuit(t *testing.T) {
	expr := parseExpr(t, "true and false or nil")
	assert.Equal(t, "(or (and true false) nil)", ast.NewPrinter().Print(expr))
}

func TestParser_AssignmentRewritesVariableTarget(t *testing.T) {
	expr := parseExpr(t, "a = 1")
	assign, ok := expr.(*ast.Assign)
	assert.True(t, ok)
	assert.Equal(t, "a", assign.Name.Lexeme)
}

func TestParser_InvalidAssignmentTargetReportsError(t *testing.T) {
	tokens, _ := lexer.Lex("1 = 2")
	p := New(tokens)
	_, err := p.ParseExpression()
	assert.Error(t, err) // assignment() records the invalid target; ParseExpression then fails with it
	assert.True(t, p.HasErrors())
	assert.Contains(t, p.GetErrors()[0].Error(), "Invalid assignment target.")
}

func TestParser_ProgramWithVarAndPrint(t *testing.T) {
	tokens, _ := lexer.Lex(`var a = 1; print a;`)
	p := New(tokens)
	stmts := p.ParseProgram()
	assert.False(t, p.HasErrors())
	assert.Len(t, stmts, 2)
	_, isVar := stmts[0].(*ast.Var)
	assert.True(t, isVar)
	_, isPrint := stmts[1].(*ast.Print)
	assert.True(t, isPrint)
}

func TestParser_ForProducesForNode(t *testing.T) {
	tokens, _ := lexer.Lex(`for (var i = 0; i < 10; i = i + 1) print i;`)
	p := New(tokens)
	stmts := p.ParseProgram()
	assert.False(t, p.HasErrors())
	assert.Len(t, stmts, 1)
	forStmt, ok := stmts[0].(*ast.For)
	assert.True(t, ok)
	assert.NotNil(t, forStmt.Init)
	assert.NotNil(t, forStmt.Condition)
	assert.NotNil(t, forStmt.Increment)
}

func TestParser_ClassWithSuperclassAndMethods(t *testing.T) {
	tokens, _ := lexer.Lex(`
		class Doughnut {
			cook() { print "Fry until golden."; }
		}
		class BostonCream < Doughnut {
			cook() { super.cook(); print "Pipe full of custard."; }
		}
	`)
	p := New(tokens)
	stmts := p.ParseProgram()
	assert.False(t, p.HasErrors())
	assert.Len(t, stmts, 2)
	base, ok := stmts[0].(*ast.Class)
	assert.True(t, ok)
	assert.Nil(t, base.Superclass)
	assert.Len(t, base.Methods, 1)

	derived, ok := stmts[1].(*ast.Class)
	assert.True(t, ok)
	assert.NotNil(t, derived.Superclass)
	assert.Equal(t, "Doughnut", derived.Superclass.Name.Lexeme)
}

func TestParser_MissingSemicolonReportsErrorAndRecovers(t *testing.T) {
	tokens, _ := lexer.Lex(`print "no semicolon" var x = 1;`)
	p := New(tokens)
	stmts := p.ParseProgram()
	assert.True(t, p.HasErrors())
	// synchronize() should still recover the trailing var declaration
	assert.NotEmpty(t, stmts)
}

func TestParser_FunctionDeclaration(t *testing.T) {
	tokens, _ := lexer.Lex(`fun add(a, b) { return a + b; }`)
	p := New(tokens)
	stmts := p.ParseProgram()
	assert.False(t, p.HasErrors())
	fn, ok := stmts[0].(*ast.Function)
	assert.True(t, ok)
	assert.Equal(t, "add", fn.Name.Lexeme)
	assert.Len(t, fn.Params, 2)
}
