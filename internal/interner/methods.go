package interner

import (
	"github.com/orizon-lang/hirstore/internal/diagnostics"
	"github.com/orizon-lang/hirstore/internal/hir"
	"github.com/orizon-lang/hirstore/internal/hirtype"
)

// TypeMethodKey classifies a non-struct type for the primitive-method
// table — spec.md §4.3: "Field and integer share FieldOrInt."
type TypeMethodKey int

const (
	KeyFieldOrInt TypeMethodKey = iota
	KeyArray
	KeyBool
	KeyString
	KeyFmtString
	KeyUnit
	KeyTuple
	KeyFunction
	KeyGeneric
)

// GetTypeMethodKey classifies typ for the primitive-method table. It
// reports false for types that can never carry methods: unresolved type
// variables, Forall, Constant, Error, TraitAsType, and struct types (which
// go through the struct-method table by StructID instead).
func GetTypeMethodKey(typ Type) (TypeMethodKey, bool) {
	switch hirtype.Follow(typ).(type) {
	case hirtype.FieldElement:
		return KeyFieldOrInt, true
	case hirtype.Array:
		return KeyArray, true
	case hirtype.Bool:
		return KeyBool, true
	case hirtype.String:
		return KeyString, true
	case hirtype.FmtString:
		return KeyFmtString, true
	case hirtype.Unit:
		return KeyUnit, true
	case hirtype.Tuple:
		return KeyTuple, true
	case hirtype.Function:
		return KeyFunction, true
	case hirtype.Generic:
		return KeyGeneric, true
	default:
		return 0, false
	}
}

// MethodEntry is one registered method: the function it dispatches to and
// the (possibly generic) function type used to match a receiver at a call
// site.
type MethodEntry struct {
	FuncID    hir.FuncID
	Signature Type // Forall(vars, Function(params, ret, env)) or a bare Function
}

// Methods is spec.md §4.3's per-(receiver, name) table: inherent methods
// shadow trait methods for unqualified name lookup, but multiple entries
// of either kind are allowed when their receiver-type specializations
// don't overlap.
type Methods struct {
	Direct           []MethodEntry
	TraitImplMethods []MethodEntry
}

type structMethodKey struct {
	Struct StructID
	Name   string
}

type primitiveMethodKey struct {
	Key  TypeMethodKey
	Name string
}

// AddMethod registers fid as a method named name with receiver type
// selfType and signature sig. isTraitMethod routes it into
// TraitImplMethods rather than Direct. On a struct receiver it first runs a
// type-directed lookup for selfType; if that finds a method whose whole
// signature is Equal to sig, it returns that method's FuncID with ok true
// and registers nothing. A method found for the same receiver whose
// signature differs from sig is not reported as a duplicate: the new
// method is added alongside it. ok is false when the method was newly
// added. Non-struct receivers are never checked for duplicates.
func (s *Store) AddMethod(selfType Type, name string, fid hir.FuncID, sig Type, isTraitMethod bool) (hir.FuncID, bool) {
	followed := hirtype.Follow(selfType)

	if ref, ok := followed.(hirtype.MutableReference); ok {
		return s.AddMethod(ref.Element, name, fid, sig, isTraitMethod)
	}

	if _, ok := followed.(hirtype.Error); ok {
		return hir.FuncID{}, false
	}

	if st, ok := followed.(hirtype.Struct); ok {
		key := structMethodKey{Struct: st.ID, Name: name}

		if existing, found := s.lookupMethodChecked(followed, st.ID, name, true); found {
			if hirtype.Equal(existing.Signature, sig) {
				return existing.FuncID, true
			}
		}

		methods := s.structMethods[key]
		if methods == nil {
			methods = &Methods{}
			s.structMethods[key] = methods
		}

		entry := MethodEntry{FuncID: fid, Signature: sig}
		if isTraitMethod {
			methods.TraitImplMethods = append(methods.TraitImplMethods, entry)
		} else {
			methods.Direct = append(methods.Direct, entry)
		}

		return hir.FuncID{}, false
	}

	key, ok := GetTypeMethodKey(followed)
	if !ok {
		diagnostics.ICE("type %s cannot carry methods", followed)
	}

	pKey := primitiveMethodKey{Key: key, Name: name}

	methods := s.primitiveMethods[pKey]
	if methods == nil {
		methods = &Methods{}
		s.primitiveMethods[pKey] = methods
	}

	entry := MethodEntry{FuncID: fid, Signature: sig}
	if isTraitMethod {
		methods.TraitImplMethods = append(methods.TraitImplMethods, entry)
	} else {
		methods.Direct = append(methods.Direct, entry)
	}

	return hir.FuncID{}, false
}

// LookupMethod resolves name against typ, a struct type known to be st. If
// forceTypeCheck is false and exactly one candidate is registered overall
// (direct wins when both direct and trait methods exist is NOT the rule —
// an unambiguous result requires there be only one entry in total, see
// GetUnambiguous), that candidate is returned without attempting
// unification. Otherwise it defers to FindMatchingMethod.
func (s *Store) LookupMethod(typ Type, st StructID, name string, forceTypeCheck bool) (MethodEntry, bool) {
	return s.lookupMethodChecked(typ, st, name, forceTypeCheck)
}

func (s *Store) lookupMethodChecked(typ Type, st StructID, name string, forceTypeCheck bool) (MethodEntry, bool) {
	methods := s.structMethods[structMethodKey{Struct: st, Name: name}]
	if methods == nil {
		return MethodEntry{}, false
	}

	if !forceTypeCheck {
		if entry, ok := unambiguous(methods); ok {
			return entry, true
		}
	}

	return s.findMatchingMethod(typ, methods, name)
}

// GetUnambiguous returns the sole method registered for (st, name) when
// there is exactly one across Direct and TraitImplMethods combined, and
// false when there are zero or more than one — forcing callers to fall
// back to type-directed dispatch in the ambiguous case.
func (s *Store) GetUnambiguous(st StructID, name string) (MethodEntry, bool) {
	methods := s.structMethods[structMethodKey{Struct: st, Name: name}]
	if methods == nil {
		return MethodEntry{}, false
	}

	return unambiguous(methods)
}

func unambiguous(methods *Methods) (MethodEntry, bool) {
	total := len(methods.Direct) + len(methods.TraitImplMethods)
	if total != 1 {
		return MethodEntry{}, false
	}

	if len(methods.Direct) == 1 {
		return methods.Direct[0], true
	}

	return methods.TraitImplMethods[0], true
}

// findMatchingMethod iterates Direct then TraitImplMethods, instantiating
// each candidate's signature with fresh variables and attempting to unify
// its first parameter with typ; the first success wins (spec.md §9's
// resolved Open Question #1 — no collect-all). Falling through both lists,
// it retries against the Generic-keyed primitive-method bucket, modeling a
// blanket `impl<T> ... for T`.
func (s *Store) findMatchingMethod(typ Type, methods *Methods, name string) (MethodEntry, bool) {
	if entry, ok := matchFirst(s, typ, methods.Direct); ok {
		return entry, true
	}

	if entry, ok := matchFirst(s, typ, methods.TraitImplMethods); ok {
		return entry, true
	}

	blanket := s.primitiveMethods[primitiveMethodKey{Key: KeyGeneric, Name: name}]
	if blanket == nil {
		return MethodEntry{}, false
	}

	if entry, ok := matchFirst(s, typ, blanket.Direct); ok {
		return entry, true
	}

	return matchFirst(s, typ, blanket.TraitImplMethods)
}

func matchFirst(s *Store, typ Type, candidates []MethodEntry) (MethodEntry, bool) {
	for _, candidate := range candidates {
		instantiated, _ := hirtype.Instantiate(candidate.Signature, s.fresh())

		fn, ok := instantiated.(hirtype.Function)
		if !ok || len(fn.Params) == 0 {
			continue
		}

		bindings := hirtype.NewTypeBindings()
		if err := hirtype.TryUnify(typ, fn.Params[0], bindings); err != nil {
			continue
		}

		bindings.Apply()

		return candidate, true
	}

	return MethodEntry{}, false
}

// LookupPrimitiveMethod resolves name against a non-struct typ, keying by
// GetTypeMethodKey after following bound variables and unwrapping any
// MutableReference. It returns false for a type variant that can never
// carry methods.
func (s *Store) LookupPrimitiveMethod(typ Type, name string) (MethodEntry, bool) {
	followed := hirtype.Follow(typ)

	if ref, ok := followed.(hirtype.MutableReference); ok {
		return s.LookupPrimitiveMethod(ref.Element, name)
	}

	key, ok := GetTypeMethodKey(followed)
	if !ok {
		return MethodEntry{}, false
	}

	methods := s.primitiveMethods[primitiveMethodKey{Key: key, Name: name}]
	if methods == nil {
		methods = &Methods{}
	}

	return s.findMatchingMethod(followed, methods, name)
}
