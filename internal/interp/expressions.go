package interp

import (
	"math"
	"strings"

	"github.com/rx-lang/rx/internal/ast"
	"github.com/rx-lang/rx/internal/rxerr"
	"github.com/rx-lang/rx/internal/token"
)

func (i *Interpreter) evalExpression(expr ast.Expression) (Value, error) {
	switch e := expr.(type) {
	case *ast.Number:
		return Number(e.Value), nil

	case *ast.String:
		return String(e.Value), nil

	case *ast.ColorString:
		return i.evalColorString(e), nil

	case *ast.Array:
		elems := make([]Value, 0, len(e.Elements))
		for _, elemExpr := range e.Elements {
			val, err := i.evalExpression(elemExpr)
			if err != nil {
				return Value{}, err
			}
			elems = append(elems, val)
		}
		return Array(elems), nil

	case *ast.Object:
		return i.evalObject(e)

	case *ast.Function:
		name := i.nextAnonName()
		i.registerFunction(name, e.Parameters, e.Body)
		return String(name), nil

	case *ast.Identifier:
		return i.evalIdentifier(e)

	case *ast.Member:
		return i.evalMember(e)

	case *ast.Index:
		return i.evalIndex(e)

	case *ast.Binary:
		return i.evalBinary(e)

	case *ast.Call:
		args, err := i.evalArgs(e.Arguments)
		if err != nil {
			return Value{}, err
		}
		return i.callFunction(e.Pos(), e.Function, args)

	case *ast.MethodCall:
		receiver, err := i.evalExpression(e.Receiver)
		if err != nil {
			return Value{}, err
		}
		args, err := i.evalArgs(e.Arguments)
		if err != nil {
			return Value{}, err
		}
		return i.callMethod(e.Pos(), receiver, e.Method, args)

	case *ast.Typeof:
		val, err := i.evalExpression(e.Expression)
		if err != nil {
			return Value{}, err
		}
		return String(val.TypeName()), nil

	case *ast.Interpolation:
		return i.evalInterpolation(e)

	default:
		return Value{}, rxerr.TypeErrorf(expr.Pos(), "unhandled expression type %T", expr)
	}
}

func (i *Interpreter) evalArgs(exprs []ast.Expression) ([]Value, error) {
	args := make([]Value, 0, len(exprs))
	for _, a := range exprs {
		val, err := i.evalExpression(a)
		if err != nil {
			return nil, err
		}
		args = append(args, val)
	}
	return args, nil
}

// evalColorString implements §4.3.1's ColorString rule: look up the
// name in the fixed ANSI table (colors_table.go), producing
// "<code><text>\033[0m"; an unknown color still appends the reset
// suffix to the raw text.
func (i *Interpreter) evalColorString(e *ast.ColorString) Value {
	code, ok := ColorCode(e.Color)
	if !ok {
		return String(e.Text + ResetCode)
	}
	return String(code + e.Text + ResetCode)
}

// evalObject implements §4.3.1's Object rule: function-literal
// properties are registered under a synthesized name and stored as a
// String reference (spec.md §9's "methods as string references" note);
// everything else is evaluated normally. Property evaluation order
// follows source order, though spec.md §5 says this must not be
// relied upon.
func (i *Interpreter) evalObject(e *ast.Object) (Value, error) {
	obj := NewObject()
	for _, prop := range e.Properties {
		if fn, ok := prop.Value.(*ast.Function); ok {
			name := i.nextAnonName()
			i.registerFunction(name, fn.Parameters, fn.Body)
			obj.Set(prop.Name, String(name))
			continue
		}
		val, err := i.evalExpression(prop.Value)
		if err != nil {
			return Value{}, err
		}
		obj.Set(prop.Name, val)
	}
	return Object(obj), nil
}

// evalIdentifier implements §4.3.1: the save-slot store is consulted
// before the environment.
func (i *Interpreter) evalIdentifier(e *ast.Identifier) (Value, error) {
	if val, ok := i.slots.Get(e.Name); ok {
		return val, nil
	}
	if val, ok := i.env.Get(e.Name); ok {
		return val, nil
	}
	return Value{}, rxerr.UndefinedVariable(e.Pos(), e.Name)
}

// evalMember implements §4.3.1: Object property access, plus the
// special-cased `.value` accessor on Arrays that returns the array
// itself.
func (i *Interpreter) evalMember(e *ast.Member) (Value, error) {
	obj, err := i.evalExpression(e.Object)
	if err != nil {
		return Value{}, err
	}
	switch obj.Kind {
	case KindObject:
		val, ok := obj.Obj.Get(e.Property)
		if !ok {
			return Value{}, rxerr.MissingProperty(e.Pos(), e.Property)
		}
		return val, nil
	case KindArray:
		if e.Property == "value" {
			return obj, nil
		}
		return Value{}, rxerr.TypeErrorf(e.Pos(), "array has no property %q", e.Property)
	default:
		return Value{}, rxerr.TypeErrorf(e.Pos(), "cannot access property %q on a %s", e.Property, obj.TypeName())
	}
}

// evalIndex implements §4.3.1: array indexing with numeric-coerced
// index and bounds checking.
func (i *Interpreter) evalIndex(e *ast.Index) (Value, error) {
	obj, err := i.evalExpression(e.Object)
	if err != nil {
		return Value{}, err
	}
	if obj.Kind != KindArray {
		return Value{}, rxerr.TypeErrorf(e.Pos(), "cannot index a %s", obj.TypeName())
	}
	idxVal, err := i.evalExpression(e.Index)
	if err != nil {
		return Value{}, err
	}
	idx := idxVal.ToInt()
	if idx < 0 || idx >= len(obj.Arr.Elements) {
		return Value{}, rxerr.IndexOutOfBounds(e.Pos(), idx, len(obj.Arr.Elements))
	}
	return obj.Arr.Elements[idx], nil
}

// evalBinary implements §4.3.1's per-operator table, including the
// deliberate asymmetry between `==`/`!=` (string-stringify both sides)
// and `< > <= >=` (numeric coercion) that spec.md §9 says to preserve.
func (i *Interpreter) evalBinary(e *ast.Binary) (Value, error) {
	left, err := i.evalExpression(e.Left)
	if err != nil {
		return Value{}, err
	}
	right, err := i.evalExpression(e.Right)
	if err != nil {
		return Value{}, err
	}

	switch e.Op {
	case token.PLUS:
		if left.Kind == KindString || right.Kind == KindString {
			return String(left.ToString() + right.ToString()), nil
		}
		return Number(left.ToNumber() + right.ToNumber()), nil

	case token.MINUS:
		return Number(left.ToNumber() - right.ToNumber()), nil

	case token.STAR:
		return Number(left.ToNumber() * right.ToNumber()), nil

	case token.SLASH:
		r := right.ToNumber()
		if r == 0 {
			return Value{}, rxerr.DivisionByZero(e.Pos())
		}
		return Number(left.ToNumber() / r), nil

	case token.PERCENT:
		r := right.ToNumber()
		if r == 0 {
			return Value{}, rxerr.DivisionByZero(e.Pos())
		}
		return Number(math.Mod(left.ToNumber(), r)), nil

	case token.EQ:
		return boolValue(left.ToString() == right.ToString()), nil

	case token.NOT_EQ:
		return boolValue(left.ToString() != right.ToString()), nil

	case token.LT:
		return boolValue(left.ToNumber() < right.ToNumber()), nil

	case token.GT:
		return boolValue(left.ToNumber() > right.ToNumber()), nil

	case token.LT_EQ:
		return boolValue(left.ToNumber() <= right.ToNumber()), nil

	case token.GT_EQ:
		return boolValue(left.ToNumber() >= right.ToNumber()), nil

	default:
		return Value{}, rxerr.TypeErrorf(e.Pos(), "unsupported operator %s", e.Op.String())
	}
}

func boolValue(b bool) Value {
	if b {
		return Number(1)
	}
	return Number(0)
}

// evalInterpolation implements §4.3.1: each part is evaluated in
// order and coerced to string.
func (i *Interpreter) evalInterpolation(e *ast.Interpolation) (Value, error) {
	var sb strings.Builder
	for _, part := range e.Parts {
		val, err := i.evalExpression(part)
		if err != nil {
			return Value{}, err
		}
		sb.WriteString(val.ToString())
	}
	return String(sb.String()), nil
}
