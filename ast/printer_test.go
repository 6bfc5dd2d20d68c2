/*
File   : golox/ast/printer_test.go
Package: ast
*/
package ast

import (
	"testing"

	"github.com/akashmaji946/golox/lexer"
	"github.com/stretchr/testify/assert"
)

func tok(kind lexer.Kind, lexeme string) lexer.Token {
	return lexer.NewToken(kind, lexeme, 1)
}

func TestPrinter_Binary(t *testing.T) {
	expr := NewBinary(
		NewUnary(tok(lexer.MINUS, "-"), NewLiteral(123.0)),
		tok(lexer.STAR, "*"),
		NewGrouping(NewLiteral(45.67)),
	)
	got := NewPrinter().Print(expr)
	assert.Equal(t, "(* (- 123.0) (group 45.67))", got)
}

func TestPrinter_Variable(t *testing.T) {
	expr := NewVariable(tok(lexer.IDENTIFIER, "orchid"))
	assert.Equal(t, "orchid", NewPrinter().Print(expr))
}

func TestPrinter_NilLiteral(t *testing.T) {
	assert.Equal(t, "nil", NewPrinter().Print(NewLiteral(nil)))
}

func TestPrinter_Call(t *testing.T) {
	callee := NewVariable(tok(lexer.IDENTIFIER, "add"))
	expr := NewCall(callee, tok(lexer.RIGHT_PAREN, ")"), []Expr{NewLiteral(1.0), NewLiteral(2.0)})
	assert.Equal(t, "(call add 1.0 2.0)", NewPrinter().Print(expr))
}
