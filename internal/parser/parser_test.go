package parser

import (
	"testing"

	"github.com/rx-lang/rx/internal/ast"
	"github.com/rx-lang/rx/internal/lexer"
	"github.com/stretchr/testify/assert"
)

func parseOK(t *testing.T, src string) *ast.Program {
	t.Helper()
	p := New(lexer.New(src))
	prog := p.ParseProgram()
	assert.Empty(t, p.Errors(), "unexpected parse errors: %v", p.Errors())
	return prog
}

func TestParseNewVariableAndAssign(t *testing.T) {
	prog := parseOK(t, "new x = 1 + 2\nx = 3\n")
	assert.Len(t, prog.Statements, 2)

	nv, ok := prog.Statements[0].(*ast.NewVariable)
	assert.True(t, ok)
	assert.Equal(t, "x", nv.Name)

	as, ok := prog.Statements[1].(*ast.Assign)
	assert.True(t, ok)
	assert.Equal(t, "x", as.Name)
}

func TestParseFunctionDecl(t *testing.T) {
	prog := parseOK(t, "ef add(a, b) {\nret a + b\n}\n")
	assert.Len(t, prog.Statements, 1)

	fn, ok := prog.Statements[0].(*ast.FunctionDecl)
	assert.True(t, ok)
	assert.Equal(t, "add", fn.Name)
	assert.Equal(t, []string{"a", "b"}, fn.Parameters)
	assert.Len(t, fn.Body, 1)
}

func TestParseIfDiffIfChain(t *testing.T) {
	prog := parseOK(t, `
if (x == 1) {
	ret 1
} diff if (x == 2) {
	ret 2
} diff {
	ret 3
}
`)
	assert.Len(t, prog.Statements, 1)
	ifs, ok := prog.Statements[0].(*ast.If)
	assert.True(t, ok)
	assert.NotNil(t, ifs.ElseIf)
	assert.NotNil(t, ifs.ElseIf.Else)
}

func TestParseWhile(t *testing.T) {
	prog := parseOK(t, "new i = 0\nwhile (i < 3) {\ni = i + 1\n}\n")
	assert.Len(t, prog.Statements, 2)
	_, ok := prog.Statements[1].(*ast.While)
	assert.True(t, ok)
}

func TestParsePrecedence(t *testing.T) {
	prog := parseOK(t, "new x = 1 + 2 * 3\n")
	nv := prog.Statements[0].(*ast.NewVariable)
	bin, ok := nv.Value.(*ast.Binary)
	assert.True(t, ok)

	// "1 + (2 * 3)": top-level operator is +, right side is the
	// multiplication that binds tighter.
	_, leftIsNumber := bin.Left.(*ast.Number)
	assert.True(t, leftIsNumber)
	_, rightIsMul := bin.Right.(*ast.Binary)
	assert.True(t, rightIsMul)
}

func TestParseCallAndMethodCall(t *testing.T) {
	prog := parseOK(t, "new r = obj.greet(\"hi\")\nnew s = add(1, 2)\n")
	assert.Len(t, prog.Statements, 2)

	nv1 := prog.Statements[0].(*ast.NewVariable)
	mc, ok := nv1.Value.(*ast.MethodCall)
	assert.True(t, ok)
	assert.Equal(t, "greet", mc.Method)

	nv2 := prog.Statements[1].(*ast.NewVariable)
	call, ok := nv2.Value.(*ast.Call)
	assert.True(t, ok)
	assert.Equal(t, "add", call.Function)
	assert.Len(t, call.Arguments, 2)
}

func TestParseArrayAndIndex(t *testing.T) {
	prog := parseOK(t, "new a = [1, 2, 3]\nnew b = a[0]\n")
	nv := prog.Statements[1].(*ast.NewVariable)
	idx, ok := nv.Value.(*ast.Index)
	assert.True(t, ok)
	_, isIdent := idx.Object.(*ast.Identifier)
	assert.True(t, isIdent)
}

func TestParseObjectLiteralWithMethod(t *testing.T) {
	prog := parseOK(t, `
new o = {
	name: "rex",
	greet: ef() {
		ret name
	}
}
`)
	nv := prog.Statements[0].(*ast.NewVariable)
	obj, ok := nv.Value.(*ast.Object)
	assert.True(t, ok)
	assert.Len(t, obj.Properties, 2)
	_, isFn := obj.Properties[1].Value.(*ast.Function)
	assert.True(t, isFn)
}

func TestParseInterpolation(t *testing.T) {
	prog := parseOK(t, `new s = "hi " << name >> " !"` + "\n")
	nv := prog.Statements[0].(*ast.NewVariable)
	interp, ok := nv.Value.(*ast.Interpolation)
	assert.True(t, ok)
	assert.Len(t, interp.Parts, 3)
}

func TestParseColorString(t *testing.T) {
	prog := parseOK(t, `new s = c@red"error"` + "\n")
	nv := prog.Statements[0].(*ast.NewVariable)
	cs, ok := nv.Value.(*ast.ColorString)
	assert.True(t, ok)
	assert.Equal(t, "red", cs.Color)
	assert.Equal(t, "error", cs.Text)
}

func TestParseImportAndSystemCall(t *testing.T) {
	prog := parseOK(t, "^math\nec(\"echo hi\")\n")
	assert.Len(t, prog.Statements, 2)
	imp, ok := prog.Statements[0].(*ast.Import)
	assert.True(t, ok)
	assert.Equal(t, "math", imp.Library)

	_, ok = prog.Statements[1].(*ast.SystemCall)
	assert.True(t, ok)
}

func TestParseSaveAndMessage(t *testing.T) {
	prog := parseOK(t, "Save slot\nMessage slot = \"hi\"\n")
	_, ok := prog.Statements[0].(*ast.Save)
	assert.True(t, ok)
	msg, ok := prog.Statements[1].(*ast.Message)
	assert.True(t, ok)
	assert.Equal(t, "slot", msg.Slot)
}

func TestParseErrorRecoverySkipsToNextLine(t *testing.T) {
	p := New(lexer.New("new = = =\nnew y = 1\n"))
	prog := p.ParseProgram()
	assert.NotEmpty(t, p.Errors())
	// Errors on the malformed line do not stop parsing; the well-formed
	// statement after it still parses.
	found := false
	for _, stmt := range prog.Statements {
		if nv, ok := stmt.(*ast.NewVariable); ok && nv.Name == "y" {
			found = true
		}
	}
	assert.True(t, found, "expected recovery to still parse `new y = 1`")
}
