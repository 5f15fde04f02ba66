package interner

import "github.com/orizon-lang/hirstore/internal/hir"

// exprTypes is a supplemental ExprId → Type side table, analogous to the
// original source's id_to_type map, that the type checker populates as it
// resolves each expression's type. It is the only way the location
// resolver's member-access case (§4.6) can know what struct a
// MemberAccess's Object expression evaluates to; spec.md's data model
// section doesn't name it explicitly because it enumerates the tables
// under active design, but §1 lists "methods dispatched by type" as a core
// concern this table directly supports (see DESIGN.md).
func (s *Store) SetExpressionType(id hir.ExprID, typ Type) {
	if s.exprTypes == nil {
		s.exprTypes = make(map[hir.ExprID]Type)
	}

	s.exprTypes[id] = typ
}

// ExpressionType returns the type recorded for id, if the type checker has
// resolved it yet.
func (s *Store) ExpressionType(id hir.ExprID) (Type, bool) {
	typ, ok := s.exprTypes[id]
	return typ, ok
}
