package interner

import "github.com/orizon-lang/hirstore/internal/hir"

// GlobalEntry records a global's statement id, name, and owning local
// module id — spec.md §3: "used for duplicate-global detection and
// module-scope restriction."
type GlobalEntry struct {
	Stmt    hir.StmtID
	Ident   string
	LocalID uint32
}

// PushGlobal records a global. It performs no duplicate check itself — the
// name-resolution driver owns that policy and consults Globals() to
// enforce it — matching spec.md §4.2's "record only" contract.
func (s *Store) PushGlobal(stmt hir.StmtID, ident string, localID uint32) {
	s.globals = append(s.globals, GlobalEntry{Stmt: stmt, Ident: ident, LocalID: localID})
}

// Globals returns every registered global entry, in insertion order.
func (s *Store) Globals() []GlobalEntry {
	return s.globals
}
