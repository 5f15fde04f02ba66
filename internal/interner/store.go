// Package interner is the semantic index itself: the Store that owns the
// HIR arena, the definition/struct/trait/alias/global tables, the method
// tables, the trait-impl registry and its unification-driven solver, the
// operator-trait map, the type-variable generator, and the location →
// definition resolver. It is grounded in the Orizon compiler's
// internal/typechecker/trait_resolver.go and associated_type_resolver.go
// for the shape of a trait solver built around a scope stack of candidate
// impls, generalized here to the spec's exact unification + bounded
// where-clause-discharge algorithm, and in original_source/node_interner.rs
// for the precise semantics the distilled description leaves implicit.
package interner

import (
	"github.com/orizon-lang/hirstore/internal/diagnostics"
	"github.com/orizon-lang/hirstore/internal/hir"
	"github.com/orizon-lang/hirstore/internal/position"
)

// DefaultRecursionLimit bounds how many nested where-clause obligations the
// trait solver will chase before giving up, stopping divergence on
// self-referential clauses like `impl<T> Foo for T where T: Foo`.
const DefaultRecursionLimit = 10

// Store is the semantic index. Every table spec.md describes lives on it;
// there is exactly one per compilation and it is never accessed
// concurrently (spec.md §5: single-threaded, non-suspending).
type Store struct {
	arena     []hir.Node
	locations map[hir.Index]position.Location

	definitions            []DefinitionInfo
	definitionIDByFunc     map[hir.FuncID]hir.DefinitionID
	functionModifiers      map[hir.FuncID]FunctionModifiers
	funcMeta               map[hir.FuncID]FuncMeta

	structs map[StructID]*StructInfo
	traits  map[TraitID]*TraitInfo
	aliases []TypeAliasInfo
	globals []GlobalEntry

	structMethods    map[structMethodKey]*Methods
	primitiveMethods map[primitiveMethodKey]*Methods

	traitImplementations  []*TraitImpl
	traitImplementationMap map[TraitID][]traitImplEntry

	operatorTraits map[Operator]TraitID
	orderingType   Type

	instantiationBindings map[hir.ExprID]TypeBindings
	fieldIndices          map[hir.ExprID]int
	selectedImpl          map[hir.ExprID]TraitImplKind
	exprTypes             map[hir.ExprID]Type

	nextTypeVariableID uint64
	recursionLimit     int
}

// Option configures a Store at construction time, the functional-options
// style used throughout the teacher pack's builder-shaped constructors.
type Option func(*Store)

// WithRecursionLimit overrides the where-clause recursion bound (default
// DefaultRecursionLimit), letting tests shrink it to exercise the
// termination guarantee without building ten levels of nested impls.
func WithRecursionLimit(limit int) Option {
	return func(s *Store) { s.recursionLimit = limit }
}

// NewStore builds an empty index and pre-seeds arena index 0 with the
// canonical empty-block expression, per spec.md §3/§4.1/§8: "a reserved
// index 0 is pre-populated with an empty-block expression and has a stable
// public id."
func NewStore(opts ...Option) *Store {
	s := &Store{
		locations:              make(map[hir.Index]position.Location),
		definitionIDByFunc:     make(map[hir.FuncID]hir.DefinitionID),
		functionModifiers:      make(map[hir.FuncID]FunctionModifiers),
		funcMeta:               make(map[hir.FuncID]FuncMeta),
		structs:                make(map[StructID]*StructInfo),
		traits:                 make(map[TraitID]*TraitInfo),
		structMethods:          make(map[structMethodKey]*Methods),
		primitiveMethods:       make(map[primitiveMethodKey]*Methods),
		traitImplementationMap: make(map[TraitID][]traitImplEntry),
		operatorTraits:         make(map[Operator]TraitID),
		instantiationBindings:  make(map[hir.ExprID]TypeBindings),
		fieldIndices:           make(map[hir.ExprID]int),
		selectedImpl:           make(map[hir.ExprID]TraitImplKind),
		recursionLimit:         DefaultRecursionLimit,
	}

	for _, opt := range opts {
		opt(s)
	}

	id := s.PushExpr(hir.Block{Result: hir.DummyExprID})
	if id != EmptyBlockExprID() {
		diagnostics.ICE("canonical empty block did not land at arena index 0")
	}

	return s
}

// EmptyBlockExprID is the stable public id of the pre-seeded empty block,
// always arena index 0 on a fresh Store.
func EmptyBlockExprID() hir.ExprID {
	return hir.NewExprID(0)
}

// PushExpr appends an expression node and returns its stable id.
func (s *Store) PushExpr(node hir.Expression) hir.ExprID {
	idx := hir.Index(len(s.arena))
	s.arena = append(s.arena, node)

	return hir.NewExprID(idx)
}

// PushStmt appends a statement node and returns its stable id.
func (s *Store) PushStmt(node hir.Statement) hir.StmtID {
	idx := hir.Index(len(s.arena))
	s.arena = append(s.arena, node)

	return hir.NewStmtID(idx)
}

// PushFn appends a function node and returns its stable id.
func (s *Store) PushFn(node hir.Function) hir.FuncID {
	idx := hir.Index(len(s.arena))
	s.arena = append(s.arena, node)

	return hir.NewFuncID(idx)
}

func (s *Store) fetch(idx hir.Index, variant hir.NodeVariant) hir.Node {
	if int(idx) >= len(s.arena) {
		diagnostics.ICE("arena index %d out of range (len=%d)", idx, len(s.arena))
	}

	node := s.arena[idx]
	if node.Variant() != variant {
		diagnostics.ICE("arena index %d holds a %s node, expected %s", idx, node.Variant(), variant)
	}

	return node
}

// Expression fetches the expression stored at id. Reading an id that
// addresses a node of a different variant is an ICE, never a returned
// error: the caller is assumed to hold an id it obtained from this same
// Store.
func (s *Store) Expression(id hir.ExprID) hir.Expression {
	return s.fetch(id.Index(), hir.VariantExpression).(hir.Expression)
}

// Statement fetches the statement stored at id.
func (s *Store) Statement(id hir.StmtID) hir.Statement {
	return s.fetch(id.Index(), hir.VariantStatement).(hir.Statement)
}

// Function fetches the function stored at id.
func (s *Store) Function(id hir.FuncID) hir.Function {
	return s.fetch(id.Index(), hir.VariantFunction).(hir.Function)
}

// UpdateExpression replaces the node at id with mutate's result, preserving
// the id (spec.md §8: "an update_* preserves the id").
func (s *Store) UpdateExpression(id hir.ExprID, mutate func(hir.Expression) hir.Expression) {
	current := s.Expression(id)
	s.arena[id.Index()] = mutate(current)
}

// UpdateStatement replaces the node at id with mutate's result.
func (s *Store) UpdateStatement(id hir.StmtID, mutate func(hir.Statement) hir.Statement) {
	current := s.Statement(id)
	s.arena[id.Index()] = mutate(current)
}

// UpdateFn replaces the node at id with mutate's result.
func (s *Store) UpdateFn(id hir.FuncID, mutate func(hir.Function) hir.Function) {
	current := s.Function(id)
	s.arena[id.Index()] = mutate(current)
}

// ReplaceExpr overwrites the node at id outright.
func (s *Store) ReplaceExpr(id hir.ExprID, node hir.Expression) {
	_ = s.Expression(id) // ICEs if id is the wrong variant or out of range
	s.arena[id.Index()] = node
}

// PushExprLocation records where id's expression appears in source.
func (s *Store) PushExprLocation(id hir.ExprID, loc position.Location) {
	s.locations[id.Index()] = loc
}

// PushStmtLocation records where id's statement appears in source.
func (s *Store) PushStmtLocation(id hir.StmtID, loc position.Location) {
	s.locations[id.Index()] = loc
}

// PushFnLocation records where id's function appears in source.
func (s *Store) PushFnLocation(id hir.FuncID, loc position.Location) {
	s.locations[id.Index()] = loc
}

// ExprLocation returns the location recorded for id, if any.
func (s *Store) ExprLocation(id hir.ExprID) (position.Location, bool) {
	loc, ok := s.locations[id.Index()]
	return loc, ok
}

// FindLocationIndex linearly scans the location table for the node whose
// recorded span contains query.Span, breaking ties by picking the smallest
// (innermost) span — spec.md §4.1.
func (s *Store) FindLocationIndex(query position.Location) (hir.Index, bool) {
	var (
		best    hir.Index
		bestLoc position.Location
		found   bool
	)

	for idx, loc := range s.locations {
		if !loc.Contains(query) {
			continue
		}

		if !found || loc.Span.IsSmaller(bestLoc.Span) {
			best = idx
			bestLoc = loc
			found = true
		}
	}

	return best, found
}
