package interner

import "github.com/orizon-lang/hirstore/internal/hirtype"

// These aliases let the rest of this package, and its callers, spell the
// vocabulary spec.md uses directly (Type, TypeBindings, TraitConstraint,
// StructID, ...) without qualifying every occurrence with hirtype., while
// the actual sum-type implementation and unification machinery stay in
// internal/hirtype where they're independently testable.
type (
	Type            = hirtype.Type
	TypeBindings    = hirtype.TypeBindings
	TraitConstraint = hirtype.TraitConstraint
	TypeVariable    = hirtype.TypeVariable
	TypeVariableID  = hirtype.TypeVariableID
	StructID        = hirtype.StructID
	TraitID         = hirtype.TraitID
	TypeAliasID     = hirtype.TypeAliasID
	TraitImplID     = hirtype.TraitImplID
)
