package stdlib_test

import (
	"bytes"
	"math"
	"testing"

	"github.com/rx-lang/rx/internal/interp"
	"github.com/rx-lang/rx/internal/stdlib"
	"github.com/stretchr/testify/assert"
)

func call(t *testing.T, lib interp.Library, name string, args ...interp.Value) interp.Value {
	t.Helper()
	fn, ok := lib.Lookup(name)
	assert.True(t, ok, "library %s has no function %q", lib.Name(), name)
	v, err := fn(args)
	assert.NoError(t, err)
	return v
}

func TestMathSqrtMatchesStandardLibrary(t *testing.T) {
	var out bytes.Buffer
	rt := interp.New(&out)
	lib := stdlib.Math(rt)

	v := call(t, lib, "sqrt", interp.Number(2))
	assert.InDelta(t, math.Sqrt2, v.Number, 1e-9)

	// sqrt(x) * sqrt(x) is approximately x, per spec.md §8's round-trip
	// property.
	root := call(t, lib, "sqrt", interp.Number(17))
	assert.InDelta(t, 17.0, root.Number*root.Number, 1e-9)
}

func TestMathArityErrors(t *testing.T) {
	var out bytes.Buffer
	rt := interp.New(&out)
	lib := stdlib.Math(rt)

	fn, ok := lib.Lookup("pow")
	assert.True(t, ok)
	_, err := fn([]interp.Value{interp.Number(2)})
	assert.Error(t, err)
}

func TestMathRandomIsDeterministicPerInterpreter(t *testing.T) {
	// New() seeds its rand source fixed at 1, so two freshly-built
	// interpreters produce identical random() sequences.
	var out1, out2 bytes.Buffer
	rt1 := interp.New(&out1)
	rt2 := interp.New(&out2)

	a := call(t, stdlib.Math(rt1), "random")
	b := call(t, stdlib.Math(rt2), "random")
	assert.Equal(t, a.Number, b.Number)
}

func TestColorizeFallsBackToRawAnsiTableForUnknownFatihColors(t *testing.T) {
	var out bytes.Buffer
	rt := interp.New(&out)
	lib := stdlib.Colors(rt)

	v := call(t, lib, "colorize", interp.String("no_such_color"), interp.String("hi"))
	assert.Contains(t, v.Str, "hi")
	assert.Contains(t, v.Str, interp.ResetCode)
}

func TestListColorsIncludesEveryTableEntry(t *testing.T) {
	var out bytes.Buffer
	rt := interp.New(&out)
	lib := stdlib.Colors(rt)

	call(t, lib, "list_colors")
	for _, name := range interp.ColorNames() {
		assert.Contains(t, out.String(), name)
	}
}

func TestTimeDaysInMonthAndLeapYear(t *testing.T) {
	lib := stdlib.Time()

	assert.Equal(t, float64(29), call(t, lib, "days_in_month", interp.Number(2024), interp.Number(2)).Number)
	assert.Equal(t, float64(28), call(t, lib, "days_in_month", interp.Number(2023), interp.Number(2)).Number)
	assert.Equal(t, float64(31), call(t, lib, "days_in_month", interp.Number(2024), interp.Number(1)).Number)

	assert.Equal(t, float64(1), call(t, lib, "is_leap_year", interp.Number(2024)).Number)
	assert.Equal(t, float64(0), call(t, lib, "is_leap_year", interp.Number(2023)).Number)
	assert.Equal(t, float64(0), call(t, lib, "is_leap_year", interp.Number(1900)).Number)
	assert.Equal(t, float64(1), call(t, lib, "is_leap_year", interp.Number(2000)).Number)
}

func TestTimeDaysInMonthRejectsOutOfRangeMonth(t *testing.T) {
	lib := stdlib.Time()
	fn, ok := lib.Lookup("days_in_month")
	assert.True(t, ok)
	_, err := fn([]interp.Value{interp.Number(2024), interp.Number(13)})
	assert.Error(t, err)
}

func TestTimeAddCarriesMonthOverflowIntoYear(t *testing.T) {
	lib := stdlib.Time()
	// 2024-12-15 00:00:00 UTC plus 2 months should land on 2025-02-15.
	dec15 := call(t, lib, "date_parts") // sanity: date_parts is callable with no args
	assert.NotNil(t, dec15.Obj)

	base := float64(1734220800) // 2024-12-15T00:00:00Z
	shifted := call(t, lib, "add", interp.Number(base), interp.Number(2), interp.String("months"))
	parts := call(t, lib, "date_parts", shifted)
	year, _ := parts.Obj.Get("year")
	month, _ := parts.Obj.Get("month")
	assert.Equal(t, float64(2025), year.Number)
	assert.Equal(t, float64(2), month.Number)
}

func TestTimeFormatProducesZeroPaddedFields(t *testing.T) {
	lib := stdlib.Time()
	out := call(t, lib, "format", interp.Number(1704067200), interp.String("%Y-%m-%d")) // 2024-01-01T00:00:00Z
	assert.Equal(t, "2024-01-01", out.Str)
}

func TestTimeDiffIsSecondSubtraction(t *testing.T) {
	lib := stdlib.Time()
	out := call(t, lib, "diff", interp.Number(100), interp.Number(130))
	assert.Equal(t, float64(30), out.Number)
}
