/*
File    : golox/interpreter/interpreter_test.go
Package : interpreter
*/
package interpreter

import (
	"bytes"
	"strings"
	"testing"

	"github.com/akashmaji946/golox/ast"
	"github.com/akashmaji946/golox/lexer"
	"github.com/akashmaji946/golox/parser"
	"github.com/akashmaji946/golox/resolver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, src string) (string, error) {
	t.Helper()
	tokens, errs := lexer.Lex(src)
	require.Equal(t, 0, errs)
	p := parser.New(tokens)
	stmts := p.ParseProgram()
	require.False(t, p.HasErrors())

	r := resolver.New()
	locals := r.Resolve(stmts)
	require.False(t, r.HasErrors())

	var out bytes.Buffer
	in := New()
	in.SetWriter(&out)
	err := in.Interpret(stmts, locals)
	return out.String(), err
}

func evalExpr(t *testing.T, src string) (ast.Expr, map[ast.Expr]int) {
	t.Helper()
	tokens, errs := lexer.Lex(src)
	require.Equal(t, 0, errs)
	p := parser.New(tokens)
	expr, err := p.ParseExpression()
	require.NoError(t, err)

	stmts := []ast.Stmt{ast.NewExpressionStmt(expr)}
	r := resolver.New()
	locals := r.Resolve(stmts)
	require.False(t, r.HasErrors())
	return expr, locals
}

func TestInterpreter_ArithmeticAndPrint(t *testing.T) {
	out, err := run(t, `print 1 + 2 * 3;`)
	require.NoError(t, err)
	assert.Equal(t, "7\n", out)
}

func TestInterpreter_StringConcatenation(t *testing.T) {
	out, err := run(t, `print "foo" + "bar";`)
	require.NoError(t, err)
	assert.Equal(t, "foobar\n", out)
}

func TestInterpreter_AddingNumberAndStringIsRuntimeError(t *testing.T) {
	_, err := run(t, `print 1 + "foo";`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Operands must be two numbers or two strings.")
}

func TestInterpreter_DivisionRequiresNumbers(t *testing.T) {
	_, err := run(t, `print "a" / 2;`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Operands must be numbers.")
}

func TestInterpreter_UndefinedVariableIsRuntimeError(t *testing.T) {
	_, err := run(t, `print x;`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Undefined variable 'x'.")
}

func TestInterpreter_GlobalAndLocalScoping(t *testing.T) {
	out, err := run(t, `
		var a = "global";
		{
			var a = "local";
			print a;
		}
		print a;
	`)
	require.NoError(t, err)
	assert.Equal(t, "local\nglobal\n", out)
}

func TestInterpreter_Closures(t *testing.T) {
	out, err := run(t, `
		fun makeCounter() {
			var i = 0;
			fun counter() {
				i = i + 1;
				print i;
			}
			return counter;
		}
		var counter = makeCounter();
		counter();
		counter();
	`)
	require.NoError(t, err)
	assert.Equal(t, "1\n2\n", out)
}

func TestInterpreter_ForLoop(t *testing.T) {
	out, err := run(t, `
		for (var i = 0; i < 3; i = i + 1) {
			print i;
		}
	`)
	require.NoError(t, err)
	assert.Equal(t, "0\n1\n2\n", out)
}

func TestInterpreter_WhileLoop(t *testing.T) {
	out, err := run(t, `
		var i = 0;
		while (i < 3) {
			print i;
			i = i + 1;
		}
	`)
	require.NoError(t, err)
	assert.Equal(t, "0\n1\n2\n", out)
}

func TestInterpreter_ReturnDoesNotLeakAsError(t *testing.T) {
	out, err := run(t, `
		fun early() {
			return 1;
			print "unreachable";
		}
		print early();
	`)
	require.NoError(t, err)
	assert.Equal(t, "1\n", out)
}

func TestInterpreter_IfElse(t *testing.T) {
	out, err := run(t, `
		if (1 < 2) print "yes"; else print "no";
	`)
	require.NoError(t, err)
	assert.Equal(t, "yes\n", out)
}

func TestInterpreter_LogicalShortCircuitReturnsOperandValue(t *testing.T) {
	out, err := run(t, `print nil or "default";`)
	require.NoError(t, err)
	assert.Equal(t, "default\n", out)
}

func TestInterpreter_ClassesFieldsAndMethods(t *testing.T) {
	out, err := run(t, `
		class Greeter {
			init(name) {
				this.name = name;
			}
			greet() {
				print "hello " + this.name;
			}
		}
		var g = Greeter("world");
		g.greet();
	`)
	require.NoError(t, err)
	assert.Equal(t, "hello world\n", out)
}

func TestInterpreter_SuperCallsParentMethod(t *testing.T) {
	out, err := run(t, `
		class Animal {
			speak() {
				print "...";
			}
		}
		class Dog < Animal {
			speak() {
				super.speak();
				print "woof";
			}
		}
		Dog().speak();
	`)
	require.NoError(t, err)
	assert.Equal(t, "...\nwoof\n", out)
}

func TestInterpreter_UndefinedPropertyIsRuntimeError(t *testing.T) {
	_, err := run(t, `
		class Box {}
		var b = Box();
		print b.missing;
	`)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "Undefined property 'missing'."))
}

func TestInterpreter_CallingNonCallableIsRuntimeError(t *testing.T) {
	_, err := run(t, `
		var notAFunction = 1;
		notAFunction();
	`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Can only call functions and classes.")
}

func TestInterpreter_WrongArityIsRuntimeError(t *testing.T) {
	_, err := run(t, `
		fun needsOne(a) { return a; }
		needsOne();
	`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Expected 1 arguments but got 0.")
}

func TestInterpreter_EvaluateExpressionMode(t *testing.T) {
	expr, locals := evalExpr(t, `1 + 2 * 3`)
	in := New()
	result, err := in.EvaluateExpression(expr, locals)
	require.NoError(t, err)
	assert.Equal(t, "7", result.String())
}
