package interner

import (
	"github.com/orizon-lang/hirstore/internal/diagnostics"
	"github.com/orizon-lang/hirstore/internal/hir"
	"github.com/orizon-lang/hirstore/internal/position"
)

// Visibility is a function's declared exposure.
type Visibility int

const (
	VisibilityPrivate Visibility = iota
	VisibilityPublic
	VisibilityPublicCrate
)

// ContractFunctionType controls how a contract function's arguments are
// treated; it defaults to Secret, matching spec.md §3.
type ContractFunctionType int

const (
	ContractSecret ContractFunctionType = iota
	ContractPublic
)

// FunctionModifiers is spec.md §3's per-FuncId record populated during
// definition collection, before FuncMeta exists.
type FunctionModifiers struct {
	Name         string
	Visibility   Visibility
	Attributes   []string
	Unconstrained bool
	ContractType ContractFunctionType
	Internal     bool
}

// Param is one resolved function parameter.
type Param struct {
	Definition hir.DefinitionID
	Type       Type
}

// FuncMeta is spec.md §3's per-FuncId record populated during name
// resolution: the post-resolution function record.
type FuncMeta struct {
	Parameters []Param
	ReturnType Type
	Generics   []*TypeVariable
	Location   position.Location
}

// PushFunctionModifiers records fid's modifiers. Definition collection
// always runs before name resolution, so this always precedes the matching
// SetFuncMeta call.
func (s *Store) PushFunctionModifiers(fid hir.FuncID, modifiers FunctionModifiers) {
	s.functionModifiers[fid] = modifiers
}

// FunctionModifiers fetches fid's modifiers, ICEing if none were recorded —
// spec.md §7 lists "missing modifiers for a known FuncId" among its ICE
// conditions.
func (s *Store) FunctionModifiers(fid hir.FuncID) FunctionModifiers {
	modifiers, ok := s.functionModifiers[fid]
	if !ok {
		diagnostics.ICE("no modifiers recorded for func id %v", fid)
	}

	return modifiers
}

// SetFuncMeta installs fid's resolved metadata.
func (s *Store) SetFuncMeta(fid hir.FuncID, meta FuncMeta) {
	s.funcMeta[fid] = meta
}

// FuncMeta fetches fid's resolved metadata, if name resolution has run for
// it yet.
func (s *Store) FuncMeta(fid hir.FuncID) (FuncMeta, bool) {
	meta, ok := s.funcMeta[fid]
	return meta, ok
}

// UpdateFunctionModifiers applies mutate in place.
func (s *Store) UpdateFunctionModifiers(fid hir.FuncID, mutate func(*FunctionModifiers)) {
	modifiers := s.FunctionModifiers(fid)
	mutate(&modifiers)
	s.functionModifiers[fid] = modifiers
}

// UpdateGlobal is spec.md §4.2's update_global: it re-records the global
// entry at the given index, matching the mutator style of the other
// update_* operations.
func (s *Store) UpdateGlobal(index int, mutate func(*GlobalEntry)) {
	if index < 0 || index >= len(s.globals) {
		diagnostics.ICE("global index %d out of range (len=%d)", index, len(s.globals))
	}

	mutate(&s.globals[index])
}
