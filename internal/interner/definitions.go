package interner

import (
	"github.com/orizon-lang/hirstore/internal/diagnostics"
	"github.com/orizon-lang/hirstore/internal/hir"
	"github.com/orizon-lang/hirstore/internal/position"
)

// DefinitionKindTag tags which case of DefinitionKind is populated.
type DefinitionKindTag int

const (
	DefinitionFunction DefinitionKindTag = iota
	DefinitionGlobal
	DefinitionLocal
	DefinitionGenericType
)

// DefinitionKind is spec.md §3's DefinitionInfo.kind: exactly one of a
// function, a global, a local (with an optional initializer), or a generic
// type parameter.
type DefinitionKind struct {
	Tag DefinitionKindTag

	Function hir.FuncID // valid when Tag == DefinitionFunction

	GlobalInit hir.ExprID // valid when Tag == DefinitionGlobal

	LocalInit   hir.ExprID // valid when Tag == DefinitionLocal
	HasLocalInit bool

	GenericVar *TypeVariable // valid when Tag == DefinitionGenericType
}

// IsGlobal reports whether this definition is a global — explicitly false
// for functions, matching spec.md's "is_global excludes functions".
func (k DefinitionKind) IsGlobal() bool {
	return k.Tag == DefinitionGlobal
}

// DefinitionInfo is spec.md §3's per-DefinitionId record.
type DefinitionInfo struct {
	Name     string
	Mutable  bool
	Kind     DefinitionKind
	Location position.Location
}

// PushDefinition assigns the next sequential DefinitionID, recording
// fid → DefinitionID when kind names a function (so FunctionModifiers and
// FuncMeta lookups by FuncID can find their owning definition).
func (s *Store) PushDefinition(name string, mutable bool, kind DefinitionKind, loc position.Location) hir.DefinitionID {
	id := hir.DefinitionID(len(s.definitions))

	s.definitions = append(s.definitions, DefinitionInfo{
		Name:     name,
		Mutable:  mutable,
		Kind:     kind,
		Location: loc,
	})

	if kind.Tag == DefinitionFunction {
		s.definitionIDByFunc[kind.Function] = id
	}

	return id
}

// Definition fetches the definition at id. Callers holding a dummy id
// should use TryDefinition instead; Definition ICEs on an out-of-range id.
func (s *Store) Definition(id hir.DefinitionID) DefinitionInfo {
	if int(id) >= len(s.definitions) {
		diagnostics.ICE("definition id %d out of range (len=%d)", id, len(s.definitions))
	}

	return s.definitions[id]
}

// TryDefinition returns the definition at id, or false for a dummy or
// otherwise out-of-range id — spec.md §7: "queries using sentinel ids
// return ... none where documented ..., never an ICE."
func (s *Store) TryDefinition(id hir.DefinitionID) (DefinitionInfo, bool) {
	if id == hir.DummyDefinitionID || int(id) >= len(s.definitions) {
		return DefinitionInfo{}, false
	}

	return s.definitions[id], true
}

// DefinitionIDForFunc returns the DefinitionID a function's own definition
// was registered under, if PushDefinition(..., Function(fid), ...) has run.
func (s *Store) DefinitionIDForFunc(fid hir.FuncID) (hir.DefinitionID, bool) {
	id, ok := s.definitionIDByFunc[fid]
	return id, ok
}
