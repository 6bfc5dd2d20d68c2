/*
File    : golox/parser/parser_statements.go
Package : parser
*/
package parser

import (
	"github.com/akashmaji946/golox/ast"
	"github.com/akashmaji946/golox/lexer"
)

// declaration → varDecl | funDecl | classDecl | statement
//
// On a parse error inside a declaration, recover() discards tokens up
// to the next statement boundary and the declaration is dropped
// (returns nil); ParseProgram simply skips nil results.
func (p *Parser) declaration() (stmt ast.Stmt) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(*ParseError); ok {
				p.synchronize()
				stmt = nil
				return
			}
			panic(r)
		}
	}()

	switch {
	case p.match(lexer.CLASS):
		return p.classDeclaration()
	case p.match(lexer.FUN):
		return p.function("function")
	case p.match(lexer.VAR):
		return p.varDeclaration()
	}
	return p.statement()
}

// varDecl → "var" IDENT ( "=" expression )? ";"
func (p *Parser) varDeclaration() ast.Stmt {
	name := p.consume(lexer.IDENTIFIER, "Expect variable name.")

	var initializer ast.Expr
	if p.match(lexer.EQUAL) {
		initializer = p.expression()
	}

	p.consume(lexer.SEMICOLON, "Expect ';' after variable declaration.")
	return ast.NewVar(name, initializer)
}

// statement → exprStmt | printStmt | block | ifStmt | whileStmt
//           | forStmt | returnStmt
func (p *Parser) statement() ast.Stmt {
	switch {
	case p.match(lexer.PRINT):
		return p.printStatement()
	case p.match(lexer.RETURN):
		return p.returnStatement()
	case p.match(lexer.LEFT_BRACE):
		return ast.NewBlock(p.block())
	case p.match(lexer.IF):
		return p.ifStatement()
	case p.match(lexer.WHILE):
		return p.whileStatement()
	case p.match(lexer.FOR):
		return p.forStatement()
	}
	return p.expressionStatement()
}

// printStmt → "print" expression ";"
func (p *Parser) printStatement() ast.Stmt {
	value := p.expression()
	p.consume(lexer.SEMICOLON, "Expect ';' after value.")
	return ast.NewPrint(value)
}

// returnStmt → "return" expression? ";"
func (p *Parser) returnStatement() ast.Stmt {
	keyword := p.previous()
	var value ast.Expr
	if !p.check(lexer.SEMICOLON) {
		value = p.expression()
	}
	p.consume(lexer.SEMICOLON, "Expect ';' after return value.")
	return ast.NewReturn(keyword, value)
}

// exprStmt → expression ";"
func (p *Parser) expressionStatement() ast.Stmt {
	expr := p.expression()
	p.consume(lexer.SEMICOLON, "Expect ';' after expression.")
	return ast.NewExpressionStmt(expr)
}

// block → "{" declaration* "}"
func (p *Parser) block() []ast.Stmt {
	var stmts []ast.Stmt
	for !p.check(lexer.RIGHT_BRACE) && !p.isAtEnd() {
		if stmt := p.declaration(); stmt != nil {
			stmts = append(stmts, stmt)
		}
	}
	p.consume(lexer.RIGHT_BRACE, "Expect '}' after block.")
	return stmts
}
