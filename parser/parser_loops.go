/*
File    : golox/parser/parser_loops.go
Package : parser
*/
package parser

import (
	"github.com/akashmaji946/golox/ast"
	"github.com/akashmaji946/golox/lexer"
)

// whileStmt → "while" "(" expression ")" statement
func (p *Parser) whileStatement() ast.Stmt {
	p.consume(lexer.LEFT_PAREN, "Expect '(' after 'while'.")
	condition := p.expression()
	p.consume(lexer.RIGHT_PAREN, "Expect ')' after condition.")
	body := p.statement()
	return ast.NewWhile(condition, body)
}

// forStmt → "for" "(" ( varDecl | exprStmt | ";" ) expression? ";" expression? ")" statement
//
// Produces an ast.For node directly; nothing here rewrites it into a
// Block+While pair, per the sugared-node contract.
func (p *Parser) forStatement() ast.Stmt {
	p.consume(lexer.LEFT_PAREN, "Expect '(' after 'for'.")

	var init ast.Stmt
	switch {
	case p.match(lexer.SEMICOLON):
		init = nil
	case p.match(lexer.VAR):
		init = p.varDeclaration()
	default:
		init = p.expressionStatement()
	}

	var condition ast.Expr
	if !p.check(lexer.SEMICOLON) {
		condition = p.expression()
	}
	p.consume(lexer.SEMICOLON, "Expect ';' after loop condition.")

	var increment ast.Expr
	if !p.check(lexer.RIGHT_PAREN) {
		increment = p.expression()
	}
	p.consume(lexer.RIGHT_PAREN, "Expect ')' after for clauses.")

	body := p.statement()
	return ast.NewFor(init, condition, increment, body)
}
