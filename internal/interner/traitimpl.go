package interner

import (
	"fmt"

	"github.com/orizon-lang/hirstore/internal/diagnostics"
	"github.com/orizon-lang/hirstore/internal/hir"
	"github.com/orizon-lang/hirstore/internal/hirtype"
	"github.com/orizon-lang/hirstore/internal/position"
)

// TraitImplKindTag tags which case of TraitImplKind a value holds.
type TraitImplKindTag int

const (
	KindNormal TraitImplKindTag = iota
	KindAssumed
)

// TraitImplKind is spec.md §3's TraitImplKind: either a concrete impl
// (Normal, addressed by TraitImplID) or an assumption introduced by a
// surrounding where clause (Assumed, carrying the object type it was
// assumed for).
type TraitImplKind struct {
	Tag        TraitImplKindTag
	ImplID     TraitImplID // valid when Tag == KindNormal
	ObjectType Type        // valid when Tag == KindAssumed
}

// TraitImplMethod is one method a trait impl provides: the function it
// dispatches to, and the signature AddMethod needs to match call-site
// receivers against it.
type TraitImplMethod struct {
	FuncID    hir.FuncID
	Signature Type
}

// TraitImpl is spec.md §3's per-TraitImplId record. TraitID is set by
// AddTraitImplementation regardless of what the caller supplies, so the
// location resolver's trait-impl → trait fallback (§4.6) always has
// somewhere to jump to.
type TraitImpl struct {
	TraitID   TraitID
	Methods   map[string]TraitImplMethod
	Where     []TraitConstraint
	IdentSpan position.Span
	File      position.FileID
}

type traitImplEntry struct {
	ObjectType Type
	Kind       TraitImplKind
}

// OverlapError reports that a new trait impl's object type unifies with an
// already-registered Normal impl of the same trait, carrying the existing
// impl's defining location so the caller can build a diagnostic pointing
// at both sites.
type OverlapError struct {
	Span position.Span
	File position.FileID
}

func (e *OverlapError) Error() string {
	return fmt.Sprintf("overlapping trait implementation (first defined at %s in file %d)", e.Span, e.File)
}

// UnresolvedConstraintError carries the chain of trait constraints from the
// root query down to the innermost one that failed to resolve.
type UnresolvedConstraintError struct {
	Chain []TraitConstraint
}

func (e *UnresolvedConstraintError) Error() string {
	return fmt.Sprintf("unresolved trait constraint chain: %v", e.Chain)
}

// NextTraitImplID returns the id the next successful AddTraitImplementation
// call must be given — spec.md §5: "the caller queries
// next_trait_impl_id(), then invokes add_trait_implementation with that
// exact id."
func (s *Store) NextTraitImplID() TraitImplID {
	return TraitImplID(len(s.traitImplementations))
}

// AddTraitImplementation registers impl as implementing traitID for
// objectType. expectedImplID must equal NextTraitImplID()'s value at the
// time of the call — a mismatch is an ICE (spec.md §5, §7), never a
// returned error, because it signals the caller violated the id-reservation
// protocol rather than anything about the program being analyzed.
//
// It fails with *OverlapError when objectType (after instantiation) already
// unifies with a previously registered Normal impl of traitID; an Assumed
// impl never blocks registration.
func (s *Store) AddTraitImplementation(objectType Type, traitID TraitID, expectedImplID TraitImplID, impl TraitImpl) error {
	if expectedImplID != s.NextTraitImplID() {
		diagnostics.ICE("trait impl id %v out of order, expected %v", expectedImplID, s.NextTraitImplID())
	}

	impl.TraitID = traitID
	s.traitImplementations = append(s.traitImplementations, &impl)

	instantiated, _ := hirtype.Instantiate(objectType, s.fresh())

	if kind, _, err := s.tryLookupTraitImplementationHelper(instantiated, traitID, hirtype.NewTypeBindings(), s.recursionLimit); err == nil {
		if kind.Tag == KindNormal {
			prior := s.traitImplementations[kind.ImplID]
			return &OverlapError{Span: prior.IdentSpan, File: prior.File}
		}
	}

	for name, method := range impl.Methods {
		s.AddMethod(objectType, name, method.FuncID, method.Signature, true)
	}

	s.traitImplementationMap[traitID] = append(s.traitImplementationMap[traitID], traitImplEntry{
		ObjectType: objectType,
		Kind:       TraitImplKind{Tag: KindNormal, ImplID: expectedImplID},
	})

	return nil
}

// AddAssumedTraitImplementation records that objectType implements traitID
// by assumption (a surrounding where clause), rejecting the assumption if a
// concrete or prior assumed impl already resolves it.
func (s *Store) AddAssumedTraitImplementation(objectType Type, traitID TraitID) bool {
	if _, _, err := s.tryLookupTraitImplementationHelper(objectType, traitID, hirtype.NewTypeBindings(), s.recursionLimit); err == nil {
		return false
	}

	s.traitImplementationMap[traitID] = append(s.traitImplementationMap[traitID], traitImplEntry{
		ObjectType: objectType,
		Kind:       TraitImplKind{Tag: KindAssumed, ObjectType: objectType},
	})

	return true
}

// RemoveAssumedTraitImplementationsForTrait drops every Assumed entry
// registered for traitID, e.g. at scope exit when the where clause that
// introduced them goes out of scope. Normal impls are never affected.
func (s *Store) RemoveAssumedTraitImplementationsForTrait(traitID TraitID) {
	entries := s.traitImplementationMap[traitID]
	kept := entries[:0]

	for _, e := range entries {
		if e.Kind.Tag == KindNormal {
			kept = append(kept, e)
		}
	}

	s.traitImplementationMap[traitID] = kept
}

// LookupTraitImplementation resolves which impl of traitID applies to
// objectType, committing any type-variable bindings the search needed on
// success.
func (s *Store) LookupTraitImplementation(objectType Type, traitID TraitID) (TraitImplKind, error) {
	kind, bindings, err := s.tryLookupTraitImplementationHelper(objectType, traitID, hirtype.NewTypeBindings(), s.recursionLimit)
	if err != nil {
		return TraitImplKind{}, err
	}

	bindings.Apply()

	return kind, nil
}

// TryLookupTraitImplementation is LookupTraitImplementation without
// committing bindings, so a caller can try a candidate and discard it.
func (s *Store) TryLookupTraitImplementation(objectType Type, traitID TraitID) (TraitImplKind, TypeBindings, error) {
	return s.tryLookupTraitImplementationHelper(objectType, traitID, hirtype.NewTypeBindings(), s.recursionLimit)
}

// tryLookupTraitImplementationHelper is the bounded-depth search spec.md
// §4.4 describes: substitute what's known so far into objectType, scan
// traitID's candidates in insertion order, and recurse into the winning
// candidate's where clause with one less unit of recursion budget.
func (s *Store) tryLookupTraitImplementationHelper(
	objectType Type,
	traitID TraitID,
	bindings TypeBindings,
	limit int,
) (TraitImplKind, TypeBindings, error) {
	if limit <= 0 {
		return TraitImplKind{}, nil, &UnresolvedConstraintError{
			Chain: []TraitConstraint{{Typ: objectType, TraitID: traitID}},
		}
	}

	substituted := hirtype.Substitute(objectType, bindings)

	candidates := s.traitImplementationMap[traitID]
	if len(candidates) == 0 {
		return TraitImplKind{}, nil, &UnresolvedConstraintError{
			Chain: []TraitConstraint{{Typ: substituted, TraitID: traitID}},
		}
	}

	for _, candidate := range candidates {
		instantiated, instantiationBindings := hirtype.Instantiate(candidate.ObjectType, s.fresh())

		attempt := hirtype.NewTypeBindings()
		if err := hirtype.TryUnify(substituted, instantiated, attempt); err != nil {
			continue
		}

		merged := mergeBindings(bindings, attempt)

		if candidate.Kind.Tag == KindNormal {
			impl := s.traitImplementations[candidate.Kind.ImplID]

			if err := s.validateWhereClause(impl.Where, merged, instantiationBindings, limit-1); err != nil {
				unresolved := err.(*UnresolvedConstraintError)
				chain := append(unresolved.Chain, TraitConstraint{Typ: substituted, TraitID: traitID})

				return TraitImplKind{}, nil, &UnresolvedConstraintError{Chain: chain}
			}
		}

		return candidate.Kind, merged, nil
	}

	return TraitImplKind{}, nil, &UnresolvedConstraintError{
		Chain: []TraitConstraint{{Typ: substituted, TraitID: traitID}},
	}
}

// validateWhereClause checks that every constraint an impl depends on is
// itself satisfiable, per spec.md's resolved Open Question #2: each
// clause's type is force-substituted with instantiationBindings first (to
// undo any monomorphization-time binding baked into the impl's own
// where-clause types), then substituted normally with typeBindings (to pick
// up whatever the call site just unified). Each clause gets a fresh
// binding set so its internal choices never leak back into the caller's.
func (s *Store) validateWhereClause(
	clauses []TraitConstraint,
	typeBindings TypeBindings,
	instantiationBindings TypeBindings,
	limit int,
) error {
	for _, clause := range clauses {
		ct := hirtype.ForceSubstitute(clause.Typ, instantiationBindings)
		ct = hirtype.Substitute(ct, typeBindings)

		if _, _, err := s.tryLookupTraitImplementationHelper(ct, clause.TraitID, hirtype.NewTypeBindings(), limit); err != nil {
			return err
		}
	}

	return nil
}

func mergeBindings(base, extra TypeBindings) TypeBindings {
	merged := hirtype.NewTypeBindings()

	for k, v := range base {
		merged[k] = v
	}

	for k, v := range extra {
		merged[k] = v
	}

	return merged
}
