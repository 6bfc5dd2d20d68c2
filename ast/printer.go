/*
File   : golox/ast/printer.go
Package: ast
*/
package ast

import (
	"fmt"
	"strings"

	"github.com/akashmaji946/golox/lexer"
)

// Printer renders an expression as a fully-parenthesized Lisp-style
// dump, the format `parse` mode uses to show a tree on one
// line. It implements ExprVisitor the way the teacher's PrintingVisitor
// implements NodeVisitor, but returns the rendered string up through
// Accept instead of writing indented lines to a buffer.
type Printer struct{}

// NewPrinter constructs a Printer. It carries no state; one value can
// print any number of expressions.
func NewPrinter() *Printer { return &Printer{} }

// Print renders expr as a parenthesized expression.
func (p *Printer) Print(expr Expr) string {
	return expr.Accept(p).(string)
}

func (p *Printer) parenthesize(name string, exprs ...Expr) string {
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(name)
	for _, e := range exprs {
		b.WriteByte(' ')
		b.WriteString(e.Accept(p).(string))
	}
	b.WriteByte(')')
	return b.String()
}

func (p *Printer) VisitAssignExpr(e *Assign) any {
	return p.parenthesize("= "+e.Name.Lexeme, e.Value)
}

func (p *Printer) VisitBinaryExpr(e *Binary) any {
	return p.parenthesize(e.Operator.Lexeme, e.Left, e.Right)
}

func (p *Printer) VisitCallExpr(e *Call) any {
	return p.parenthesize("call", append([]Expr{e.Callee}, e.Arguments...)...)
}

func (p *Printer) VisitGetExpr(e *Get) any {
	return p.parenthesize("."+e.Name.Lexeme, e.Object)
}

func (p *Printer) VisitSetExpr(e *Set) any {
	return p.parenthesize("="+"."+e.Name.Lexeme, e.Object, e.Value)
}

func (p *Printer) VisitSuperExpr(e *Super) any {
	return fmt.Sprintf("(super.%s)", e.Method.Lexeme)
}

func (p *Printer) VisitThisExpr(e *This) any {
	return "this"
}

func (p *Printer) VisitGroupingExpr(e *Grouping) any {
	return p.parenthesize("group", e.Expression)
}

func (p *Printer) VisitLiteralExpr(e *Literal) any {
	return literalString(e.Value)
}

func (p *Printer) VisitLogicalExpr(e *Logical) any {
	return p.parenthesize(e.Operator.Lexeme, e.Left, e.Right)
}

func (p *Printer) VisitUnaryExpr(e *Unary) any {
	return p.parenthesize(e.Operator.Lexeme, e.Right)
}

func (p *Printer) VisitVariableExpr(e *Variable) any {
	return e.Name.Lexeme
}

// literalString renders a decoded literal value the way `parse` mode's
// AST dump does: nil -> "nil", numbers use the lexer's dual float
// formatting rule, everything else via fmt.Sprint.
func literalString(v any) string {
	switch val := v.(type) {
	case nil:
		return "nil"
	case bool:
		return fmt.Sprintf("%t", val)
	case float64:
		return lexer.FormatNumber(val)
	case string:
		return val
	default:
		return fmt.Sprint(val)
	}
}
