/*
File    : golox/golox/golox.go
Package : golox
*/

/*
Package golox is the pipeline facade tying the lexer, parser, resolver
and interpreter into the four CLI modes spec.md §6 names: tokenize,
parse, evaluate, run. It generalizes the teacher's main.go, which wired
a parser straight into a PrintingVisitor for one hardcoded mode, into a
reusable facade `cmd/golox` (and the REPL) both call into, grounded on
`original_source/shared/lox_driver.cpp`'s per-mode dispatch functions.
*/
package golox

import (
	"fmt"
	"io"

	"github.com/akashmaji946/golox/ast"
	"github.com/akashmaji946/golox/interpreter"
	"github.com/akashmaji946/golox/lexer"
	"github.com/akashmaji946/golox/parser"
	"github.com/akashmaji946/golox/resolver"
)

// Exit codes, spec.md §6.
const (
	ExitSuccess     = 0
	ExitUsage       = 1
	ExitStaticError = 65
	ExitRuntime     = 70
)

// Tokenize runs Lex and prints every token per spec.md §6's rendering
// rule: errors first to stderr (as their ReportString), then every
// token (errors included, by kind/lexeme/literal) to stdout in source
// order. Returns ExitStaticError if any LEX_ERROR token appeared,
// ExitSuccess otherwise.
func Tokenize(src string, stdout, stderr io.Writer) int {
	tokens, errCount := lexer.Lex(src)

	for _, tok := range tokens {
		if tok.Kind == lexer.LEX_ERROR {
			fmt.Fprintln(stderr, tok.ReportString())
		}
	}
	for _, tok := range tokens {
		fmt.Fprintln(stdout, tok.String())
	}

	if errCount > 0 {
		return ExitStaticError
	}
	return ExitSuccess
}

// Parse lexes and parses src as a single expression, printing its
// parenthesized AST dump to stdout. Any lex or parse error goes to
// stderr and yields ExitStaticError.
func Parse(src string, stdout, stderr io.Writer) int {
	tokens, errCount := lexer.Lex(src)
	if errCount > 0 {
		reportLexErrors(tokens, stderr)
		return ExitStaticError
	}

	p := parser.New(tokens)
	expr, err := p.ParseExpression()
	if err != nil {
		fmt.Fprintln(stderr, err.Error())
		return ExitStaticError
	}

	fmt.Fprintln(stdout, ast.NewPrinter().Print(expr))
	return ExitSuccess
}

// Evaluate lexes, parses and resolves src as a single expression, then
// interprets it and prints its canonical rendering to stdout.
func Evaluate(src string, stdout, stderr io.Writer) int {
	tokens, errCount := lexer.Lex(src)
	if errCount > 0 {
		reportLexErrors(tokens, stderr)
		return ExitStaticError
	}

	p := parser.New(tokens)
	expr, err := p.ParseExpression()
	if err != nil {
		fmt.Fprintln(stderr, err.Error())
		return ExitStaticError
	}

	r := resolver.New()
	locals := r.Resolve([]ast.Stmt{ast.NewExpressionStmt(expr)})
	if r.HasErrors() {
		for _, e := range r.Errors {
			fmt.Fprintln(stderr, e.Error())
		}
		return ExitStaticError
	}

	in := interpreter.New()
	in.SetWriter(stdout)
	result, rerr := in.EvaluateExpression(expr, locals)
	if rerr != nil {
		fmt.Fprintln(stderr, rerr.Error())
		return ExitRuntime
	}

	fmt.Fprintln(stdout, result.String())
	return ExitSuccess
}

// Run lexes, parses, resolves and interprets src as a full program,
// the `run` mode entry point. Parser errors are gathered (panic-mode
// recovery lets it collect more than one); a resolver error halts on
// the first, per spec.md §7.
func Run(src string, stdout, stderr io.Writer) int {
	tokens, errCount := lexer.Lex(src)
	if errCount > 0 {
		reportLexErrors(tokens, stderr)
		return ExitStaticError
	}

	p := parser.New(tokens)
	stmts := p.ParseProgram()
	if p.HasErrors() {
		for _, e := range p.GetErrors() {
			fmt.Fprintln(stderr, e.Error())
		}
		return ExitStaticError
	}

	r := resolver.New()
	locals := r.Resolve(stmts)
	if r.HasErrors() {
		fmt.Fprintln(stderr, r.Errors[0].Error())
		return ExitStaticError
	}

	in := interpreter.New()
	in.SetWriter(stdout)
	if err := in.Interpret(stmts, locals); err != nil {
		fmt.Fprintln(stderr, err.Error())
		return ExitRuntime
	}
	return ExitSuccess
}

func reportLexErrors(tokens []lexer.Token, stderr io.Writer) {
	for _, tok := range tokens {
		if tok.Kind == lexer.LEX_ERROR {
			fmt.Fprintln(stderr, tok.ReportString())
		}
	}
}
