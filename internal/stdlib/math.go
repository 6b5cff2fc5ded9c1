// Package stdlib provides rx's bundled standard libraries — math,
// colors, and time — each a gated Library per spec.md §4.3.6. They
// hold no interpreter-global state beyond what's passed in (the
// Interpreter's Rand()), per spec.md §9's note on confining mutable
// state to a single interpreter instance.
package stdlib

import (
	"math"

	"github.com/rx-lang/rx/internal/interp"
	"github.com/rx-lang/rx/internal/rxerr"
	"github.com/rx-lang/rx/internal/token"
)

// Math builds the `math` library: sqrt, pow, trig, rounding, min/max,
// random, and the log family, per spec.md §4.3.6.
func Math(rt *interp.Interpreter) interp.Library {
	unary := func(name string, f func(float64) float64) interp.NativeFunc {
		return func(args []interp.Value) (interp.Value, error) {
			if len(args) != 1 {
				return interp.Value{}, rxerr.ArityMismatch(token.Position{}, name, 1, len(args))
			}
			return interp.Number(f(args[0].ToNumber())), nil
		}
	}
	binary := func(name string, f func(a, b float64) float64) interp.NativeFunc {
		return func(args []interp.Value) (interp.Value, error) {
			if len(args) != 2 {
				return interp.Value{}, rxerr.ArityMismatch(token.Position{}, name, 2, len(args))
			}
			return interp.Number(f(args[0].ToNumber(), args[1].ToNumber())), nil
		}
	}

	funcs := map[string]interp.NativeFunc{
		"sqrt":  unary("sqrt", math.Sqrt),
		"pow":   binary("pow", math.Pow),
		"sin":   unary("sin", math.Sin),
		"cos":   unary("cos", math.Cos),
		"tan":   unary("tan", math.Tan),
		"abs":   unary("abs", math.Abs),
		"floor": unary("floor", math.Floor),
		"ceil":  unary("ceil", math.Ceil),
		"round": unary("round", math.Round),
		"min":   binary("min", math.Min),
		"max":   binary("max", math.Max),
		"log":   unary("log", math.Log),
		"log10": unary("log10", math.Log10),
		"exp":   unary("exp", math.Exp),
		"random": func(args []interp.Value) (interp.Value, error) {
			if len(args) != 0 {
				return interp.Value{}, rxerr.ArityMismatch(token.Position{}, "random", 0, len(args))
			}
			return interp.Number(rt.Rand().Float64()), nil
		},
	}
	return interp.NewLibrary("math", funcs)
}
