/*
File    : golox/parser/parser_conditionals.go
Package : parser
*/
package parser

import (
	"github.com/akashmaji946/golox/ast"
	"github.com/akashmaji946/golox/lexer"
)

// ifStmt → "if" "(" expression ")" statement ( "else" statement )?
func (p *Parser) ifStatement() ast.Stmt {
	p.consume(lexer.LEFT_PAREN, "Expect '(' after 'if'.")
	condition := p.expression()
	p.consume(lexer.RIGHT_PAREN, "Expect ')' after if condition.")

	thenBranch := p.statement()
	var elseBranch ast.Stmt
	if p.match(lexer.ELSE) {
		elseBranch = p.statement()
	}
	return ast.NewIf(condition, thenBranch, elseBranch)
}
