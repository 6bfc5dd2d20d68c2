/*
File    : golox/replmode/replmode.go
Package : replmode
*/

/*
Package replmode implements an interactive Read-Eval-Print Loop for
Lox. It generalizes the teacher's repl package (same readline +
color-coded banner shape, same executeWithRecovery structure) to the
lexer/parser/resolver/interpreter pipeline instead of go-mix's single
parser+evaluator, and accepts both bare expressions (printing their
value, the classic jlox REPL convenience) and full statements.
*/
package replmode

import (
	"io"
	"strings"

	"github.com/akashmaji946/golox/ast"
	"github.com/akashmaji946/golox/interpreter"
	"github.com/akashmaji946/golox/lexer"
	"github.com/akashmaji946/golox/parser"
	"github.com/akashmaji946/golox/resolver"
	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

const (
	banner = `   ____ ___  _     _____  __
  / ___/ _ \| |   / _ \ \/ /
 | |  | | | | |  | | | \  /
 | |__| |_| | |__| |_| /  \
  \____\___/|_____\___/_/\_\
`
	line    = "----------------------------------------------------------------"
	version = "v1.0.0"
	prompt  = "golox >>> "
)

// Repl is a configured interactive session. Its fields mirror the
// teacher's Repl struct (banner/version/line/prompt), trimmed to what
// a Lox session needs.
type Repl struct {
	Banner  string
	Version string
	Line    string
	Prompt  string
}

// New builds a Repl with golox's own banner and prompt.
func New() *Repl {
	return &Repl{Banner: banner, Version: version, Line: line, Prompt: prompt}
}

func (r *Repl) printBanner(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "golox "+r.Version+" — a Lox interpreter")
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintln(writer, "Type an expression or statement and press enter.")
	cyanColor.Fprintln(writer, "Type '.exit' to quit.")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the main loop: read a line, evaluate it, print the
// result or any diagnostics, repeat until '.exit' or EOF.
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.printBanner(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		redColor.Fprintf(writer, "could not start readline: %v\n", err)
		return
	}
	defer rl.Close()

	in := interpreter.New()
	in.SetWriter(writer)
	locals := make(map[ast.Expr]int)

	for {
		input, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good bye!\n"))
			break
		}

		input = strings.Trim(input, " \n\t\r")
		if input == "" {
			continue
		}
		if input == ".exit" {
			writer.Write([]byte("Good bye!\n"))
			break
		}
		rl.SaveHistory(input)

		r.evalLine(writer, input, in, locals)
	}
}

// evalLine parses input as a bare expression first (printing its
// value on success, the convenience every jlox-derived REPL offers),
// falling back to a full statement parse. Errors at any pipeline stage
// are reported and the loop continues; this session's bindings
// persist across lines via the shared interpreter and locals map.
func (r *Repl) evalLine(writer io.Writer, input string, in *interpreter.Interpreter, locals map[ast.Expr]int) {
	tokens, errCount := lexer.Lex(input)
	if errCount > 0 {
		for _, tok := range tokens {
			if tok.Kind == lexer.LEX_ERROR {
				redColor.Fprintln(writer, tok.ReportString())
			}
		}
		return
	}

	if expr, ok := tryParseExpression(tokens); ok {
		res := resolver.New()
		exprLocals := res.Resolve([]ast.Stmt{ast.NewExpressionStmt(expr)})
		if res.HasErrors() {
			reportResolveErrors(writer, res)
			return
		}
		mergeLocals(locals, exprLocals)

		value, err := in.EvaluateExpression(expr, locals)
		if err != nil {
			redColor.Fprintln(writer, err.Error())
			return
		}
		yellowColor.Fprintln(writer, value.String())
		return
	}

	p := parser.New(tokens)
	stmts := p.ParseProgram()
	if p.HasErrors() {
		for _, e := range p.GetErrors() {
			redColor.Fprintln(writer, e.Error())
		}
		return
	}

	res := resolver.New()
	stmtLocals := res.Resolve(stmts)
	if res.HasErrors() {
		reportResolveErrors(writer, res)
		return
	}
	mergeLocals(locals, stmtLocals)

	if err := in.Interpret(stmts, locals); err != nil {
		redColor.Fprintln(writer, err.Error())
	}
}

func tryParseExpression(tokens []lexer.Token) (ast.Expr, bool) {
	p := parser.New(tokens)
	expr, err := p.ParseExpression()
	if err != nil || p.HasErrors() {
		return nil, false
	}
	return expr, true
}

func reportResolveErrors(writer io.Writer, res *resolver.Resolver) {
	for _, e := range res.Errors {
		redColor.Fprintln(writer, e.Error())
	}
}

func mergeLocals(dst, src map[ast.Expr]int) {
	for k, v := range src {
		dst[k] = v
	}
}
