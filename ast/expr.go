/*
File   : golox/ast/expr.go
Package: ast
*/
package ast

import "github.com/akashmaji946/golox/lexer"

// nextID hands out a monotonically increasing identity stamp to every
// node constructed through this package's New* helpers. The resolver's
// depth side-table is keyed by node pointer, not NodeID; the stamp
// exists so tests and diagnostics can name a node without depending on
// its address.
var nextID uint64

func newID() uint64 {
	nextID++
	return nextID
}

// Expr is any Lox expression node. Accept dispatches to the matching
// method of an ExprVisitor, double-dispatch style.
type Expr interface {
	NodeID() uint64
	Accept(v ExprVisitor) any
}

// ExprVisitor is implemented by anything that walks expression nodes:
// the AST printer, the resolver, the interpreter.
type ExprVisitor interface {
	VisitAssignExpr(e *Assign) any
	VisitBinaryExpr(e *Binary) any
	VisitCallExpr(e *Call) any
	VisitGetExpr(e *Get) any
	VisitSetExpr(e *Set) any
	VisitSuperExpr(e *Super) any
	VisitThisExpr(e *This) any
	VisitGroupingExpr(e *Grouping) any
	VisitLiteralExpr(e *Literal) any
	VisitLogicalExpr(e *Logical) any
	VisitUnaryExpr(e *Unary) any
	VisitVariableExpr(e *Variable) any
}

// Assign is `name = value`.
type Assign struct {
	id    uint64
	Name  lexer.Token
	Value Expr
}

func NewAssign(name lexer.Token, value Expr) *Assign {
	return &Assign{id: newID(), Name: name, Value: value}
}
func (e *Assign) NodeID() uint64        { return e.id }
func (e *Assign) Accept(v ExprVisitor) any { return v.VisitAssignExpr(e) }

// Binary is `left operator right` for arithmetic, comparison and
// equality operators.
type Binary struct {
	id       uint64
	Left     Expr
	Operator lexer.Token
	Right    Expr
}

func NewBinary(left Expr, operator lexer.Token, right Expr) *Binary {
	return &Binary{id: newID(), Left: left, Operator: operator, Right: right}
}
func (e *Binary) NodeID() uint64        { return e.id }
func (e *Binary) Accept(v ExprVisitor) any { return v.VisitBinaryExpr(e) }

// Call is `callee(arguments...)`. Paren is the closing `)` token, kept
// for runtime-error position reporting.
type Call struct {
	id        uint64
	Callee    Expr
	Paren     lexer.Token
	Arguments []Expr
}

func NewCall(callee Expr, paren lexer.Token, arguments []Expr) *Call {
	return &Call{id: newID(), Callee: callee, Paren: paren, Arguments: arguments}
}
func (e *Call) NodeID() uint64        { return e.id }
func (e *Call) Accept(v ExprVisitor) any { return v.VisitCallExpr(e) }

// Get is `object.name`, a property read.
type Get struct {
	id     uint64
	Object Expr
	Name   lexer.Token
}

func NewGet(object Expr, name lexer.Token) *Get {
	return &Get{id: newID(), Object: object, Name: name}
}
func (e *Get) NodeID() uint64        { return e.id }
func (e *Get) Accept(v ExprVisitor) any { return v.VisitGetExpr(e) }

// Set is `object.name = value`, a property write.
type Set struct {
	id     uint64
	Object Expr
	Name   lexer.Token
	Value  Expr
}

func NewSet(object Expr, name lexer.Token, value Expr) *Set {
	return &Set{id: newID(), Object: object, Name: name, Value: value}
}
func (e *Set) NodeID() uint64        { return e.id }
func (e *Set) Accept(v ExprVisitor) any { return v.VisitSetExpr(e) }

// Super is `super.method`, resolved one environment above `this`.
type Super struct {
	id       uint64
	Keyword  lexer.Token
	Method   lexer.Token
}

func NewSuper(keyword, method lexer.Token) *Super {
	return &Super{id: newID(), Keyword: keyword, Method: method}
}
func (e *Super) NodeID() uint64        { return e.id }
func (e *Super) Accept(v ExprVisitor) any { return v.VisitSuperExpr(e) }

// This is the `this` keyword used inside a method body.
type This struct {
	id      uint64
	Keyword lexer.Token
}

func NewThis(keyword lexer.Token) *This {
	return &This{id: newID(), Keyword: keyword}
}
func (e *This) NodeID() uint64        { return e.id }
func (e *This) Accept(v ExprVisitor) any { return v.VisitThisExpr(e) }

// Grouping is a parenthesized sub-expression: `( expr )`.
type Grouping struct {
	id         uint64
	Expression Expr
}

func NewGrouping(expression Expr) *Grouping {
	return &Grouping{id: newID(), Expression: expression}
}
func (e *Grouping) NodeID() uint64        { return e.id }
func (e *Grouping) Accept(v ExprVisitor) any { return v.VisitGroupingExpr(e) }

// Literal wraps a constant value already decoded by the lexer or
// parser: nil, bool, float64 or string.
type Literal struct {
	id    uint64
	Value any
}

func NewLiteral(value any) *Literal {
	return &Literal{id: newID(), Value: value}
}
func (e *Literal) NodeID() uint64        { return e.id }
func (e *Literal) Accept(v ExprVisitor) any { return v.VisitLiteralExpr(e) }

// Logical is `left and right` / `left or right`. Kept distinct from
// Binary because its operands short-circuit.
type Logical struct {
	id       uint64
	Left     Expr
	Operator lexer.Token
	Right    Expr
}

func NewLogical(left Expr, operator lexer.Token, right Expr) *Logical {
	return &Logical{id: newID(), Left: left, Operator: operator, Right: right}
}
func (e *Logical) NodeID() uint64        { return e.id }
func (e *Logical) Accept(v ExprVisitor) any { return v.VisitLogicalExpr(e) }

// Unary is `operator right` for `-` and `!`.
type Unary struct {
	id       uint64
	Operator lexer.Token
	Right    Expr
}

func NewUnary(operator lexer.Token, right Expr) *Unary {
	return &Unary{id: newID(), Operator: operator, Right: right}
}
func (e *Unary) NodeID() uint64        { return e.id }
func (e *Unary) Accept(v ExprVisitor) any { return v.VisitUnaryExpr(e) }

// Variable is a bare identifier read.
type Variable struct {
	id   uint64
	Name lexer.Token
}

func NewVariable(name lexer.Token) *Variable {
	return &Variable{id: newID(), Name: name}
}
func (e *Variable) NodeID() uint64        { return e.id }
func (e *Variable) Accept(v ExprVisitor) any { return v.VisitVariableExpr(e) }
