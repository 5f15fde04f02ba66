package interner

import (
	"github.com/orizon-lang/hirstore/internal/diagnostics"
	"github.com/orizon-lang/hirstore/internal/hirtype"
)

// Operator names a binary operator that can be overloaded through a
// recognized trait (spec.md §4.5).
type Operator int

const (
	OpAdd Operator = iota
	OpSub
	OpMul
	OpDiv
	OpRem
	OpEqual
	OpNotEqual
	OpLess
	OpLessEqual
	OpGreater
	OpGreaterEqual
	OpBitAnd
	OpBitOr
	OpBitXor
	OpShl
	OpShr
)

// OperatorTraitMethod is what get_operator_trait_method returns: the trait
// to look an impl up on, plus which of its methods is overloadable.
// Operator traits expose their overloadable method as the first entry by
// convention, so MethodIndex is always 0.
type OperatorTraitMethod struct {
	TraitID     TraitID
	MethodIndex int
}

// TryAddOperatorTrait pattern-matches trait name against the fixed set of
// operator-overloadable trait names and records the mapping. It reports
// whether name was recognized; an unrecognized name is not an error — most
// traits are not operator traits.
func (s *Store) TryAddOperatorTrait(id TraitID, name string) bool {
	switch name {
	case "Add":
		s.operatorTraits[OpAdd] = id
	case "Sub":
		s.operatorTraits[OpSub] = id
	case "Mul":
		s.operatorTraits[OpMul] = id
	case "Div":
		s.operatorTraits[OpDiv] = id
	case "Rem":
		s.operatorTraits[OpRem] = id
	case "BitAnd":
		s.operatorTraits[OpBitAnd] = id
	case "BitOr":
		s.operatorTraits[OpBitOr] = id
	case "BitXor":
		s.operatorTraits[OpBitXor] = id
	case "Shl":
		s.operatorTraits[OpShl] = id
	case "Shr":
		s.operatorTraits[OpShr] = id
	case "Eq":
		s.operatorTraits[OpEqual] = id
		s.operatorTraits[OpNotEqual] = id
	case "Ord":
		s.operatorTraits[OpLess] = id
		s.operatorTraits[OpLessEqual] = id
		s.operatorTraits[OpGreater] = id
		s.operatorTraits[OpGreaterEqual] = id
		s.populateOrderingType(id)
	default:
		return false
	}

	return true
}

// populateOrderingType extracts the Ordering type from Ord's first
// method, which must have the shape Forall(_, Function(_, ret, _)) —
// spec.md §4.5. Any other shape is an ICE: a well-formed Ord trait always
// has this signature by construction of the surrounding language.
func (s *Store) populateOrderingType(ordTraitID TraitID) {
	trait := s.Trait(ordTraitID)

	if len(trait.Methods) == 0 {
		diagnostics.ICE("trait %s registered as Ord has no methods", trait.Name)
	}

	forall, ok := trait.Methods[0].Type.(hirtype.Forall)
	if !ok {
		diagnostics.ICE("Ord's first method must be a Forall-quantified function, got %T", trait.Methods[0].Type)
	}

	fn, ok := forall.Body.(hirtype.Function)
	if !ok {
		diagnostics.ICE("Ord's first method must quantify a Function, got %T", forall.Body)
	}

	s.orderingType = fn.Return
}

// GetOperatorTraitMethod returns the trait + method index op dispatches
// through, if op has a registered trait.
func (s *Store) GetOperatorTraitMethod(op Operator) (OperatorTraitMethod, bool) {
	id, ok := s.operatorTraits[op]
	if !ok {
		return OperatorTraitMethod{}, false
	}

	return OperatorTraitMethod{TraitID: id, MethodIndex: 0}, true
}

// OrderingType returns the comparison return type extracted when Ord was
// registered, or false if no Ord trait has been registered yet.
func (s *Store) OrderingType() (Type, bool) {
	if s.orderingType == nil {
		return nil, false
	}

	return s.orderingType, true
}
