package interner

import (
	"github.com/orizon-lang/hirstore/internal/diagnostics"
	"github.com/orizon-lang/hirstore/internal/position"
)

// StructField is one declared field of a struct: its name, its type, and
// the span the location resolver reports for "go to field definition"
// (§4.6's member-access case).
type StructField struct {
	Name string
	Type Type
	Span position.Span
}

// StructInfo is spec.md §3's per-StructId record. It is addressed
// exclusively through the Store by StructID (spec.md §9's preferred "arena
// + stable id" alternative to a shared mutable cell): any hirtype.Struct
// value referencing this id sees the same body once it is resolved,
// without either side holding a pointer into the other.
type StructInfo struct {
	Name       string
	Generics   []*TypeVariable
	Fields     []StructField
	Attributes []string
	Location   position.Location
}

// FieldByName returns the field declared under name, if any.
func (si *StructInfo) FieldByName(name string) (StructField, bool) {
	for _, f := range si.Fields {
		if f.Name == name {
			return f, true
		}
	}

	return StructField{}, false
}

// NewStruct constructs an empty struct record at id with arity generic
// placeholders, matching spec.md §4.2: "constructs the StructId from the
// owning module id, stores an empty-field struct with generic
// placeholders."
func (s *Store) NewStruct(id StructID, name string, arity int, loc position.Location) StructID {
	generics := make([]*TypeVariable, arity)
	for i := range generics {
		generics[i] = s.NewTypeVariable()
	}

	s.structs[id] = &StructInfo{
		Name:     name,
		Generics: generics,
		Location: loc,
	}

	return id
}

// Struct fetches the struct record at id. Reading an id with no registered
// struct is an ICE: callers are expected to have called NewStruct first.
func (s *Store) Struct(id StructID) *StructInfo {
	info, ok := s.structs[id]
	if !ok {
		diagnostics.ICE("struct id %v has no registered record", id)
	}

	return info
}

// UpdateStruct applies mutate in place to the struct record at id.
func (s *Store) UpdateStruct(id StructID, mutate func(*StructInfo)) {
	mutate(s.Struct(id))
}
