package interp

import (
	"fmt"

	"github.com/rx-lang/rx/internal/ast"
	"github.com/rx-lang/rx/internal/rxerr"
	"github.com/rx-lang/rx/internal/token"
)

// FunctionRecord is an entry in the user function table: a named or
// anonymous rx function's parameter list and body (spec.md §3). Every
// entry here has AST origin — native functions live in Libraries and
// are never copied into this table.
type FunctionRecord struct {
	Parameters []string
	Body       []ast.Statement
}

// nextAnonName synthesizes a unique internal function-table key for an
// anonymous function literal, per spec.md §4.3.1. The counter is
// per-Interpreter (anonCounter starts at zero in New) so two interpreter
// instances never collide and a deterministic test run is reproducible.
func (i *Interpreter) nextAnonName() string {
	i.anonCounter++
	return fmt.Sprintf("@lambda%d", i.anonCounter)
}

// registerFunction inserts a user-defined function into the shared
// function table; user functions and builtins share one global symbol
// space (spec.md §2), but builtins are resolved through Libraries
// before this table is ever consulted (§4.3.2).
func (i *Interpreter) registerFunction(name string, params []string, body []ast.Statement) {
	i.functions[name] = &FunctionRecord{Parameters: params, Body: body}
}

// callFunction implements the resolution order of §4.3.2: system
// primitives, then each imported library in import order, then the
// user function table, then UndefinedFunction.
func (i *Interpreter) callFunction(pos token.Position, name string, args []Value) (Value, error) {
	if fn, ok := i.system.Lookup(name); ok {
		return fn(args)
	}

	for _, libName := range i.importOrder {
		lib := i.libraries[libName]
		if fn, ok := lib.Lookup(name); ok {
			return fn(args)
		}
	}

	if rec, ok := i.functions[name]; ok {
		return i.invokeUserFunction(pos, name, rec, args)
	}

	return Value{}, rxerr.UndefinedFunction(pos, name)
}

// invokeUserFunction implements §4.3.2's five-step call protocol:
// snapshot, bind parameters, clear return state, run the body, then
// capture-and-restore. The environment is guaranteed bit-for-bit equal
// to its pre-call state once this returns (spec.md §3 invariants),
// since Restore replaces the whole binding map rather than patching it.
func (i *Interpreter) invokeUserFunction(pos token.Position, name string, rec *FunctionRecord, args []Value) (Value, error) {
	if len(args) != len(rec.Parameters) {
		return Value{}, rxerr.ArityMismatch(pos, name, len(rec.Parameters), len(args))
	}

	snapshot := i.env.Snapshot()
	savedReturning := i.returning
	savedReturnValue := i.returnValue

	for idx, param := range rec.Parameters {
		i.env.Set(param, args[idx])
	}
	i.returning = false
	i.returnValue = Number(0)

	if err := i.execBlock(rec.Body); err != nil {
		i.env.Restore(snapshot)
		i.returning = savedReturning
		i.returnValue = savedReturnValue
		return Value{}, err
	}

	result := i.returnValue
	i.env.Restore(snapshot)
	i.returning = savedReturning
	i.returnValue = savedReturnValue
	return result, nil
}

// callMethod implements §4.3.3: the receiver's other properties are
// bound into the flat environment by name (rx's substitute for
// lexical `this`), the method is invoked like any other function call,
// and the environment is restored afterwards. Per SPEC_FULL.md Open
// Question 3, property rebindings performed inside the method body are
// discarded along with the rest of the snapshot — this faithfully
// reproduces the source's behavior rather than writing mutated
// properties back into the receiver.
func (i *Interpreter) callMethod(pos token.Position, receiver Value, method string, args []Value) (Value, error) {
	if receiver.Kind != KindObject {
		return Value{}, rxerr.TypeErrorf(pos, "cannot call method %q on a %s", method, receiver.TypeName())
	}

	methodRef, ok := receiver.Obj.Get(method)
	if !ok {
		return Value{}, rxerr.MissingProperty(pos, method)
	}
	if methodRef.Kind != KindString {
		return Value{}, rxerr.TypeErrorf(pos, "property %q is not callable", method)
	}
	funcName := methodRef.Str

	snapshot := i.env.Snapshot()
	for _, key := range receiver.Obj.Keys() {
		if key == method {
			continue
		}
		val, _ := receiver.Obj.Get(key)
		i.env.Set(key, val)
	}

	rec, ok := i.functions[funcName]
	if !ok {
		i.env.Restore(snapshot)
		return Value{}, rxerr.UndefinedFunction(pos, funcName)
	}

	result, err := i.invokeUserFunction(pos, funcName, rec, args)
	i.env.Restore(snapshot)
	return result, err
}
