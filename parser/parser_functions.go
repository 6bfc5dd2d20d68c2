/*
File    : golox/parser/parser_functions.go
Package : parser
*/
package parser

import (
	"fmt"

	"github.com/akashmaji946/golox/ast"
	"github.com/akashmaji946/golox/lexer"
)

// funDecl → "fun" IDENT "(" params? ")" block
//
// kind is "function" or "method", used only to tailor error messages
// the way the grammar note in spec.md §4.2 implies a shared node shape
// for both.
func (p *Parser) function(kind string) *ast.Function {
	name := p.consume(lexer.IDENTIFIER, fmt.Sprintf("Expect %s name.", kind))
	return p.functionBody(name, kind)
}

func (p *Parser) functionBody(name lexer.Token, kind string) *ast.Function {
	p.consume(lexer.LEFT_PAREN, fmt.Sprintf("Expect '(' after %s name.", kind))
	var params []lexer.Token
	if !p.check(lexer.RIGHT_PAREN) {
		for {
			if len(params) >= 255 {
				p.addError(p.peek(), "Can't have more than 255 parameters.")
			}
			params = append(params, p.consume(lexer.IDENTIFIER, "Expect parameter name."))
			if !p.match(lexer.COMMA) {
				break
			}
		}
	}
	p.consume(lexer.RIGHT_PAREN, "Expect ')' after parameters.")

	p.consume(lexer.LEFT_BRACE, fmt.Sprintf("Expect '{' before %s body.", kind))
	body := p.block()
	return ast.NewFunction(name, params, body)
}

// classDecl → "class" IDENT ( "<" IDENT )? "{" function* "}"
func (p *Parser) classDeclaration() ast.Stmt {
	name := p.consume(lexer.IDENTIFIER, "Expect class name.")

	var superclass *ast.Variable
	if p.match(lexer.LESS) {
		p.consume(lexer.IDENTIFIER, "Expect superclass name.")
		superclass = ast.NewVariable(p.previous())
	}

	p.consume(lexer.LEFT_BRACE, "Expect '{' before class body.")

	var methods []*ast.Function
	for !p.check(lexer.RIGHT_BRACE) && !p.isAtEnd() {
		methodName := p.consume(lexer.IDENTIFIER, "Expect method name.")
		methods = append(methods, p.functionBody(methodName, "method"))
	}

	p.consume(lexer.RIGHT_BRACE, "Expect '}' after class body.")
	return ast.NewClass(name, superclass, methods)
}
