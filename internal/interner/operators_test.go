package interner

import (
	"testing"

	"github.com/orizon-lang/hirstore/internal/hirtype"
	"github.com/orizon-lang/hirstore/internal/position"
)

func TestOrdTraitPopulatesOrderingTypeAndOperators(t *testing.T) {
	s := NewStore()

	ordID := TraitID{Crate: 0, Local: 1}
	s.PushEmptyTrait(ordID, "Ord", 0, 0, position.Location{})

	orderingType := hirtype.Struct{ID: StructID{Crate: 0, Local: 2}, Name: "Ordering"}

	selfVar := s.Trait(ordID).SelfType
	cmpSignature := hirtype.Forall{
		TypeVars: []*hirtype.TypeVariable{selfVar},
		Body: hirtype.Function{
			Params: []hirtype.Type{hirtype.TypeVariableRef{Var: selfVar}},
			Return: orderingType,
		},
	}

	s.UpdateTrait(ordID, func(info *TraitInfo) {
		info.Methods = append(info.Methods, TraitMethodSignature{Name: "cmp", Type: cmpSignature})
	})

	if ok := s.TryAddOperatorTrait(ordID, "Ord"); !ok {
		t.Fatal("TryAddOperatorTrait(Ord) should recognize the name")
	}

	less, ok := s.GetOperatorTraitMethod(OpLess)
	if !ok || less.TraitID != ordID || less.MethodIndex != 0 {
		t.Errorf("GetOperatorTraitMethod(<) = %+v, %v, want {%v, 0}, true", less, ok, ordID)
	}

	ge, ok := s.GetOperatorTraitMethod(OpGreaterEqual)
	if !ok || ge.TraitID != ordID || ge.MethodIndex != 0 {
		t.Errorf("GetOperatorTraitMethod(>=) = %+v, %v, want {%v, 0}, true", ge, ok, ordID)
	}

	got, ok := s.OrderingType()
	if !ok || !hirtype.Equal(got, orderingType) {
		t.Errorf("OrderingType() = %v, %v, want %v, true", got, ok, orderingType)
	}
}

func TestEqTraitBindsEqualAndNotEqual(t *testing.T) {
	s := NewStore()

	eqID := TraitID{Crate: 0, Local: 1}
	s.PushEmptyTrait(eqID, "Eq", 0, 0, position.Location{})

	if ok := s.TryAddOperatorTrait(eqID, "Eq"); !ok {
		t.Fatal("TryAddOperatorTrait(Eq) should recognize the name")
	}

	for _, op := range []Operator{OpEqual, OpNotEqual} {
		m, ok := s.GetOperatorTraitMethod(op)
		if !ok || m.TraitID != eqID {
			t.Errorf("GetOperatorTraitMethod(%v) = %+v, %v, want trait %v", op, m, ok, eqID)
		}
	}
}

func TestUnrecognizedTraitNameIsNotAnOperatorTrait(t *testing.T) {
	s := NewStore()

	customID := TraitID{Crate: 0, Local: 5}
	s.PushEmptyTrait(customID, "Drop", 0, 0, position.Location{})

	if ok := s.TryAddOperatorTrait(customID, "Drop"); ok {
		t.Error("TryAddOperatorTrait(Drop) should not recognize an unrelated trait name")
	}
}
