package interner

import (
	"github.com/orizon-lang/hirstore/internal/diagnostics"
	"github.com/orizon-lang/hirstore/internal/hirtype"
	"github.com/orizon-lang/hirstore/internal/position"
)

// TraitMethodSignature is one method a trait declares, appended to as impls
// are collected (spec.md §3: "Methods are appended as impls are collected").
type TraitMethodSignature struct {
	Name string
	Type Type
}

// TraitConstant is a named associated constant a trait declares.
type TraitConstant struct {
	Name string
	Type Type
}

// TraitInfo is spec.md §3's per-TraitId record.
type TraitInfo struct {
	Name            string
	Crate           CrateID
	Location        position.Location
	Generics        []*TypeVariable
	SelfType        *TypeVariable
	Methods         []TraitMethodSignature
	Constants       []TraitConstant
	AssociatedTypes []string
}

// CrateID identifies the owning crate of a trait or struct; re-exported
// here from hirtype's ModuleID.Crate field type for callers that construct
// TraitInfo directly.
type CrateID = hirtype.CrateID

// PushEmptyTrait allocates a self-type type-variable, records generic
// arity with placeholder type-variable ids, and installs an empty method
// list at id — spec.md §4.2.
func (s *Store) PushEmptyTrait(id TraitID, name string, crate CrateID, arity int, loc position.Location) TraitID {
	generics := make([]*TypeVariable, arity)
	for i := range generics {
		generics[i] = s.NewTypeVariable()
	}

	s.traits[id] = &TraitInfo{
		Name:     name,
		Crate:    crate,
		Location: loc,
		Generics: generics,
		SelfType: s.NewTypeVariable(),
	}

	return id
}

// Trait fetches the trait record at id, ICEing if none was registered.
func (s *Store) Trait(id TraitID) *TraitInfo {
	info, ok := s.traits[id]
	if !ok {
		diagnostics.ICE("trait id %v has no registered record", id)
	}

	return info
}

// UpdateTrait applies mutate in place to the trait record at id.
func (s *Store) UpdateTrait(id TraitID, mutate func(*TraitInfo)) {
	mutate(s.Trait(id))
}
