package interp

// Environment is rx's flat, global binding table. There is no lexical
// scoping: a function call snapshots the whole table, installs its
// parameters, runs, and restores the snapshot on return (see
// SPEC_FULL.md / spec.md §3, §4.3.2). This is the "clean
// re-architecture" spec.md §9 allows: an explicit Snapshot/Restore pair
// around a map, rather than a stack of frames, since the language
// never nests call frames that need to see each other's bindings.
type Environment struct {
	bindings map[string]Value
}

// NewEnvironment returns an empty Environment.
func NewEnvironment() *Environment {
	return &Environment{bindings: make(map[string]Value)}
}

// Get looks up a binding.
func (e *Environment) Get(name string) (Value, bool) {
	v, ok := e.bindings[name]
	return v, ok
}

// Set creates or overwrites a binding.
func (e *Environment) Set(name string, v Value) {
	e.bindings[name] = v
}

// Snapshot captures the current bindings for later restoration. The
// returned map is a full copy, not a reference, so later mutation of
// e doesn't retroactively change the snapshot.
func (e *Environment) Snapshot() map[string]Value {
	snap := make(map[string]Value, len(e.bindings))
	for k, v := range e.bindings {
		snap[k] = v
	}
	return snap
}

// Restore replaces the current bindings with a previously captured
// Snapshot, undoing every Set performed since (including new names and
// shadowed ones).
func (e *Environment) Restore(snap map[string]Value) {
	e.bindings = snap
}

// saveSlots is the side-channel "save slot" store described in
// spec.md §3/§4.3.5: identifiers consult it before the Environment.
type saveSlots struct {
	values map[string]Value
}

func newSaveSlots() *saveSlots {
	return &saveSlots{values: make(map[string]Value)}
}

func (s *saveSlots) Get(name string) (Value, bool) {
	v, ok := s.values[name]
	return v, ok
}

// Ensure creates the slot with an empty string payload if it doesn't
// already exist; a second `Save` on the same name is a no-op. This
// departs from the original Ryxon Interpreter.cpp, which resets the slot
// on every `Save` (see SPEC_FULL.md, SUPPLEMENTED FEATURES).
func (s *saveSlots) Ensure(name string) {
	if _, ok := s.values[name]; !ok {
		s.values[name] = String("")
	}
}

func (s *saveSlots) Set(name string, v Value) {
	s.values[name] = v
}
