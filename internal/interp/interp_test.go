package interp_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rx-lang/rx/internal/interp"
	"github.com/rx-lang/rx/internal/lexer"
	"github.com/rx-lang/rx/internal/parser"
	"github.com/stretchr/testify/assert"
)

func run(t *testing.T, src string) (string, error) {
	t.Helper()
	p := parser.New(lexer.New(src))
	prog := p.ParseProgram()
	assert.Empty(t, p.Errors(), "unexpected parse errors: %v", p.Errors())

	var out bytes.Buffer
	rt := interp.New(&out)
	err := rt.Interpret(prog, &bytes.Buffer{})
	return out.String(), err
}

func TestHelloWorld(t *testing.T) {
	out, err := run(t, `print("Hello, world!")`)
	assert.NoError(t, err)
	assert.Equal(t, "Hello, world!\n", out)
}

func TestArithmeticPrecedence(t *testing.T) {
	out, err := run(t, `print(1 + 2 * 3)`)
	assert.NoError(t, err)
	assert.Equal(t, "7\n", out)
}

func TestStringInterpolation(t *testing.T) {
	out, err := run(t, `
new name = "world"
print("hello " << name >> "!")
`)
	assert.NoError(t, err)
	assert.Equal(t, "hello world!\n", out)
}

func TestWhileAndFunction(t *testing.T) {
	out, err := run(t, `
ef double(n) {
	ret n * 2
}
new i = 0
while (i < 3) {
	print(double(i))
	i = i + 1
}
`)
	assert.NoError(t, err)
	assert.Equal(t, "0\n2\n4\n", out)
}

func TestEnvironmentRestoredAfterCall(t *testing.T) {
	out, err := run(t, `
new x = 1
ef mutate() {
	x = 99
	ret 0
}
mutate()
print(x)
`)
	assert.NoError(t, err)
	assert.Equal(t, "1\n", out)
}

func TestMethodCallBindsReceiverPropertiesByName(t *testing.T) {
	out, err := run(t, `
new dog = {
	name: "Rex",
	speak: ef() {
		print(name)
	}
}
dog.speak()
`)
	assert.NoError(t, err)
	assert.Equal(t, "Rex\n", out)
}

func TestMethodPropertyWritesAreDiscarded(t *testing.T) {
	// SPEC_FULL.md Open Question 3: a method writing to a by-name-bound
	// receiver property mutates only the snapshot copy, never the
	// receiver itself.
	out, err := run(t, `
new dog = {
	name: "Rex",
	rename: ef() {
		name = "Fido"
		print(name)
	}
}
dog.rename()
print(dog.name)
`)
	assert.NoError(t, err)
	assert.Equal(t, "Fido\nRex\n", out)
}

func TestTypeofAndCoercion(t *testing.T) {
	out, err := run(t, `
print(typeof(1))
print(typeof(1.5))
print(typeof("x"))
print(typeof([1]))
print(typeof({a: 1}))
print("n=" + 2)
`)
	assert.NoError(t, err)
	assert.Equal(t, "int\nfloat\nstring\narray\nobject\nn=2\n", out)
}

func TestEqualityUsesStringCoercionButOrderingUsesNumeric(t *testing.T) {
	// spec.md §4.3.4's deliberate asymmetry: == stringifies both sides,
	// while < compares numerically.
	out, err := run(t, `
print(1 == "1")
print("2" < "10")
`)
	assert.NoError(t, err)
	assert.Equal(t, "1\n1\n", out)
}

func TestArrayIndexOutOfBounds(t *testing.T) {
	_, err := run(t, `
new a = [1, 2]
print(a[5])
`)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "IndexOutOfBounds")
}

func TestUndefinedFunctionError(t *testing.T) {
	_, err := run(t, `missingFunc()`)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "UndefinedFunction")
}

func TestDivisionByZero(t *testing.T) {
	_, err := run(t, `print(1 / 0)`)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "DivisionByZero")
}

func TestSaveSlotConsultedBeforeEnvironment(t *testing.T) {
	out, err := run(t, `
new greeting = "env value"
Save greeting
Message greeting = "slot value"
print(greeting)
`)
	assert.NoError(t, err)
	assert.Equal(t, "slot value\n", out)
}

func TestSaveIsNoOpWhenSlotAlreadyExists(t *testing.T) {
	out, err := run(t, `
Save slot
Message slot = "first"
Save slot
print(slot)
`)
	assert.NoError(t, err)
	assert.Equal(t, "first\n", out)
}

func TestLibraryMustBeImportedBeforeUse(t *testing.T) {
	_, err := run(t, `print(sqrt(4))`)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "UndefinedFunction")
}

func TestImportedLibraryBecomesVisible(t *testing.T) {
	var out bytes.Buffer
	rt := interp.New(&out)
	rt.AddLibrary(interp.NewLibrary("math", map[string]interp.NativeFunc{
		"sqrt": func(args []interp.Value) (interp.Value, error) {
			return interp.Number(4), nil
		},
	}))

	p := parser.New(lexer.New("^math\nprint(sqrt(16))\n"))
	prog := p.ParseProgram()
	assert.Empty(t, p.Errors())
	assert.NoError(t, rt.Interpret(prog, &bytes.Buffer{}))
	assert.Equal(t, "4\n", out.String())
}

func TestObjectIterationOrderIsInsertionOrder(t *testing.T) {
	out, err := run(t, `
new o = { z: 1, a: 2, m: 3 }
print(o)
`)
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "{z: 1, a: 2, m: 3}"))
}
