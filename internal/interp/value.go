package interp

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind tags the runtime type of a Value.
type Kind int

const (
	KindNumber Kind = iota
	KindString
	KindArray
	KindObject
)

// Value is rx's tagged runtime union: a Number, String, Array or
// Object. Arrays and Objects are held by pointer so assigning a
// binding to another never implicitly deep-copies; SPEC_FULL.md §3
// notes the language exposes no expression-level mutation operator, so
// this is purely a representation choice, not an observable aliasing
// hazard in practice.
type Value struct {
	Kind   Kind
	Number float64
	Str    string
	Arr    *ArrayValue
	Obj    *ObjectValue
}

// ArrayValue is an ordered, growable sequence of Values.
type ArrayValue struct {
	Elements []Value
}

// ObjectValue pairs an insertion-ordered key slice with its backing
// map so printing and typeof output are deterministic (SPEC_FULL.md
// Open Question 2), even though the language spec leaves order
// unspecified.
type ObjectValue struct {
	keys   []string
	values map[string]Value
}

// NewObject creates an empty Object value.
func NewObject() *ObjectValue {
	return &ObjectValue{values: make(map[string]Value)}
}

// Set inserts or overwrites a property, appending to the key order the
// first time the name is seen.
func (o *ObjectValue) Set(name string, v Value) {
	if _, ok := o.values[name]; !ok {
		o.keys = append(o.keys, name)
	}
	o.values[name] = v
}

// Get returns a property and whether it exists.
func (o *ObjectValue) Get(name string) (Value, bool) {
	v, ok := o.values[name]
	return v, ok
}

// Keys returns property names in insertion order.
func (o *ObjectValue) Keys() []string { return o.keys }

// Len reports the number of properties.
func (o *ObjectValue) Len() int { return len(o.keys) }

func Number(n float64) Value  { return Value{Kind: KindNumber, Number: n} }
func String(s string) Value   { return Value{Kind: KindString, Str: s} }
func Array(elems []Value) Value {
	return Value{Kind: KindArray, Arr: &ArrayValue{Elements: elems}}
}
func Object(o *ObjectValue) Value { return Value{Kind: KindObject, Obj: o} }

// IsTruthy implements §4.3.4's boolean coercion: numbers are truthy
// when non-zero, strings/arrays/objects when non-empty.
func (v Value) IsTruthy() bool {
	switch v.Kind {
	case KindNumber:
		return v.Number != 0
	case KindString:
		return v.Str != ""
	case KindArray:
		return len(v.Arr.Elements) > 0
	case KindObject:
		return v.Obj.Len() > 0
	}
	return false
}

// ToNumber implements §4.3.4's numeric coercion: numbers pass through,
// strings parse as decimals (unparseable or empty yields 0), arrays
// and objects yield 0.
func (v Value) ToNumber() float64 {
	switch v.Kind {
	case KindNumber:
		return v.Number
	case KindString:
		s := strings.TrimSpace(v.Str)
		if s == "" {
			return 0
		}
		n, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}

// ToInt truncates ToNumber toward zero, used for array index coercion.
func (v Value) ToInt() int { return int(v.ToNumber()) }

// ToString implements §4.3.4's string coercion.
func (v Value) ToString() string {
	switch v.Kind {
	case KindString:
		return v.Str
	case KindNumber:
		return formatNumber(v.Number)
	case KindArray:
		parts := make([]string, len(v.Arr.Elements))
		for i, e := range v.Arr.Elements {
			parts[i] = e.ToString()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case KindObject:
		parts := make([]string, 0, v.Obj.Len())
		for _, k := range v.Obj.Keys() {
			val, _ := v.Obj.Get(k)
			parts = append(parts, k+": "+val.ToString())
		}
		return "{" + strings.Join(parts, ", ") + "}"
	}
	return ""
}

// formatNumber prints integers with no decimal point and everything
// else with up to six significant digits, per §4.3.4.
func formatNumber(n float64) string {
	if n == float64(int64(n)) {
		return strconv.FormatInt(int64(n), 10)
	}
	return strconv.FormatFloat(n, 'g', 6, 64)
}

// TypeName implements typeof(): a Number is "int" iff it equals its
// truncation, "float" otherwise; per §4.3.1 and §8.
func (v Value) TypeName() string {
	switch v.Kind {
	case KindNumber:
		if v.Number == float64(int64(v.Number)) {
			return "int"
		}
		return "float"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	}
	return fmt.Sprintf("unknown(%d)", v.Kind)
}
