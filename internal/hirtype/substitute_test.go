package hirtype

import "testing"

func TestSubstituteReplacesFreeVariable(t *testing.T) {
	v := mkVar(1)
	bindings := NewTypeBindings()
	bindings.Bind(v, FieldElement{})

	result := Substitute(Array{Length: Constant{Value: 3}, Element: TypeVariableRef{Var: v}}, bindings)

	arr, ok := result.(Array)
	if !ok {
		t.Fatalf("result = %T, want Array", result)
	}

	if _, ok := arr.Element.(FieldElement); !ok {
		t.Errorf("Element = %v, want FieldElement", arr.Element)
	}
}

func TestSubstituteLeavesUnboundUnmentionedVariable(t *testing.T) {
	v := mkVar(1)
	result := Substitute(TypeVariableRef{Var: v}, NewTypeBindings())

	ref, ok := result.(TypeVariableRef)
	if !ok || ref.Var.ID != v.ID {
		t.Errorf("Substitute with no matching binding should return the variable unchanged, got %v", result)
	}
}
