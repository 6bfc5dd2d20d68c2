/*
File   : golox/ast/stmt.go
Package: ast
*/
package ast

import "github.com/akashmaji946/golox/lexer"

// Stmt is any Lox statement node.
type Stmt interface {
	NodeID() uint64
	Accept(v StmtVisitor) any
}

// StmtVisitor is implemented by anything that walks statement nodes:
// the resolver, the interpreter.
type StmtVisitor interface {
	VisitBlockStmt(s *Block) any
	VisitClassStmt(s *Class) any
	VisitExpressionStmt(s *ExpressionStmt) any
	VisitForStmt(s *For) any
	VisitFunctionStmt(s *Function) any
	VisitIfStmt(s *If) any
	VisitPrintStmt(s *Print) any
	VisitReturnStmt(s *Return) any
	VisitVarStmt(s *Var) any
	VisitWhileStmt(s *While) any
}

// Block is `{ statements... }`, introducing a new lexical scope.
type Block struct {
	id         uint64
	Statements []Stmt
}

func NewBlock(statements []Stmt) *Block {
	return &Block{id: newID(), Statements: statements}
}
func (s *Block) NodeID() uint64        { return s.id }
func (s *Block) Accept(v StmtVisitor) any { return v.VisitBlockStmt(s) }

// Class is `class Name < Superclass { methods... }`. Superclass is nil
// when there is no `<` clause.
type Class struct {
	id         uint64
	Name       lexer.Token
	Superclass *Variable
	Methods    []*Function
}

func NewClass(name lexer.Token, superclass *Variable, methods []*Function) *Class {
	return &Class{id: newID(), Name: name, Superclass: superclass, Methods: methods}
}
func (s *Class) NodeID() uint64        { return s.id }
func (s *Class) Accept(v StmtVisitor) any { return v.VisitClassStmt(s) }

// ExpressionStmt evaluates an expression for its side effects and
// discards the result.
type ExpressionStmt struct {
	id         uint64
	Expression Expr
}

func NewExpressionStmt(expression Expr) *ExpressionStmt {
	return &ExpressionStmt{id: newID(), Expression: expression}
}
func (s *ExpressionStmt) NodeID() uint64        { return s.id }
func (s *ExpressionStmt) Accept(v StmtVisitor) any { return v.VisitExpressionStmt(s) }

// Function is a `fun name(params) { body }` declaration, and also the
// shape of a method inside a Class body (no leading `fun` there, but
// the node is identical).
type Function struct {
	id     uint64
	Name   lexer.Token
	Params []lexer.Token
	Body   []Stmt
}

func NewFunction(name lexer.Token, params []lexer.Token, body []Stmt) *Function {
	return &Function{id: newID(), Name: name, Params: params, Body: body}
}
func (s *Function) NodeID() uint64        { return s.id }
func (s *Function) Accept(v StmtVisitor) any { return v.VisitFunctionStmt(s) }

// If is `if (cond) thenBranch else elseBranch`; ElseBranch is nil when
// there is no `else` clause.
type If struct {
	id         uint64
	Condition  Expr
	ThenBranch Stmt
	ElseBranch Stmt
}

func NewIf(condition Expr, thenBranch, elseBranch Stmt) *If {
	return &If{id: newID(), Condition: condition, ThenBranch: thenBranch, ElseBranch: elseBranch}
}
func (s *If) NodeID() uint64        { return s.id }
func (s *If) Accept(v StmtVisitor) any { return v.VisitIfStmt(s) }

// Print is `print expr;`.
type Print struct {
	id         uint64
	Expression Expr
}

func NewPrint(expression Expr) *Print {
	return &Print{id: newID(), Expression: expression}
}
func (s *Print) NodeID() uint64        { return s.id }
func (s *Print) Accept(v StmtVisitor) any { return v.VisitPrintStmt(s) }

// Return is `return expr;` or bare `return;`; Value is nil for the
// latter, interpreted as `nil`.
type Return struct {
	id      uint64
	Keyword lexer.Token
	Value   Expr
}

func NewReturn(keyword lexer.Token, value Expr) *Return {
	return &Return{id: newID(), Keyword: keyword, Value: value}
}
func (s *Return) NodeID() uint64        { return s.id }
func (s *Return) Accept(v StmtVisitor) any { return v.VisitReturnStmt(s) }

// Var is `var name = initializer;` or `var name;`; Initializer is nil
// for the latter, leaving the binding as Lox `nil`.
type Var struct {
	id          uint64
	Name        lexer.Token
	Initializer Expr
}

func NewVar(name lexer.Token, initializer Expr) *Var {
	return &Var{id: newID(), Name: name, Initializer: initializer}
}
func (s *Var) NodeID() uint64        { return s.id }
func (s *Var) Accept(v StmtVisitor) any { return v.VisitVarStmt(s) }

// For is `for (init; cond; incr) body`, kept sugared in the AST:
// Init/Condition/Increment are each nil when their clause is absent.
// The resolver and interpreter give it while-loop semantics with an
// enclosing scope for Init; the parser never rewrites it into a
// Block+While pair.
type For struct {
	id        uint64
	Init      Stmt
	Condition Expr
	Increment Expr
	Body      Stmt
}

func NewFor(init Stmt, condition, increment Expr, body Stmt) *For {
	return &For{id: newID(), Init: init, Condition: condition, Increment: increment, Body: body}
}
func (s *For) NodeID() uint64        { return s.id }
func (s *For) Accept(v StmtVisitor) any { return v.VisitForStmt(s) }

// While is `while (cond) body`.
type While struct {
	id        uint64
	Condition Expr
	Body      Stmt
}

func NewWhile(condition Expr, body Stmt) *While {
	return &While{id: newID(), Condition: condition, Body: body}
}
func (s *While) NodeID() uint64        { return s.id }
func (s *While) Accept(v StmtVisitor) any { return v.VisitWhileStmt(s) }
