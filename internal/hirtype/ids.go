package hirtype

import "fmt"

// CrateID and LocalModuleID together form a ModuleID, the shared coordinate
// space structs and traits are addressed by: spec.md's StructId and TraitId
// are both defined as ModuleId, so both alias it here rather than wrapping
// it again.
type CrateID uint32

type LocalModuleID uint32

// ModuleID is the crate-qualified coordinate of a module. StructID and
// TraitID are both exactly this type, matching spec.md's "StructId =
// ModuleId" / "TraitId = ModuleId" equalities: this package does not tell a
// struct id from a trait id at the type level; only the interner's separate
// struct/trait tables keep a struct and a trait at the same module position
// apart.
type ModuleID struct {
	Crate CrateID
	Local LocalModuleID
}

func (m ModuleID) String() string {
	return fmt.Sprintf("%d:%d", m.Crate, m.Local)
}

// StructID indexes the struct table.
type StructID = ModuleID

// TraitID indexes the trait table.
type TraitID = ModuleID

// dummyModuleID is the sentinel StructID/TraitID used before a definition is
// known, e.g. while resolving a forward reference.
var dummyModuleID = ModuleID{Crate: ^CrateID(0), Local: ^LocalModuleID(0)}

// DummyStructID returns the sentinel struct id.
func DummyStructID() StructID { return dummyModuleID }

// DummyTraitID returns the sentinel trait id.
func DummyTraitID() TraitID { return dummyModuleID }

// TypeAliasID indexes the type-alias table, a flat counter independent of
// the module graph.
type TypeAliasID uint64

// DummyTypeAliasID is the sentinel TypeAliasID, spec.md's TypeAliasId(MAX).
const DummyTypeAliasID TypeAliasID = ^TypeAliasID(0)

func (id TypeAliasID) String() string { return fmt.Sprintf("alias#%d", id) }

// TraitImplID indexes the trait-implementation table. Impl ids are assigned
// densely from zero as impls are registered, never reused.
type TraitImplID uint64

func (id TraitImplID) String() string { return fmt.Sprintf("impl#%d", id) }

// TypeVariableID names one entry in the type-variable generator's monotonic
// counter (spec.md §3, §5: interior-mutability counter, no reuse).
type TypeVariableID uint64

func (id TypeVariableID) String() string { return fmt.Sprintf("'t%d", id) }
