package interner

import "github.com/orizon-lang/hirstore/internal/hirtype"

// NewTypeVariable mints a fresh, unbound type variable from the Store's
// monotonic counter (spec.md §3, §5: "next type-variable id ... logically
// mutable under shared access (interior mutability) to allow fresh-variable
// generation through immutable handles"). In this single-threaded, pointer
// receiver port the counter is simply a Store field; nothing needs an
// atomic or a cell since there is never a second goroutine to race.
func (s *Store) NewTypeVariable() *TypeVariable {
	id := hirtype.TypeVariableID(s.nextTypeVariableID)
	s.nextTypeVariableID++

	return hirtype.NewTypeVariable(id)
}

// fresh adapts NewTypeVariable to hirtype.FreshVariable, the function type
// Instantiate expects, so the solver can instantiate a Forall without
// hirtype needing to know how ids are minted.
func (s *Store) fresh() hirtype.FreshVariable {
	return s.NewTypeVariable
}
