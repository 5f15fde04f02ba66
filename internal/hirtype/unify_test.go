package hirtype

import "testing"

func mkVar(id TypeVariableID) *TypeVariable { return NewTypeVariable(id) }

func TestUnifyPrimitives(t *testing.T) {
	tests := []struct {
		name    string
		a, b    Type
		wantErr bool
	}{
		{"field with field", FieldElement{}, FieldElement{}, false},
		{"bool with bool", Bool{}, Bool{}, false},
		{"unit with unit", Unit{}, Unit{}, false},
		{"field with bool", FieldElement{}, Bool{}, true},
		{"error absorbs anything", Error{}, Bool{}, false},
		{"constants equal", Constant{Value: 3}, Constant{Value: 3}, false},
		{"constants differ", Constant{Value: 3}, Constant{Value: 4}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Unify(tt.a, tt.b)
			if (err != nil) != tt.wantErr {
				t.Errorf("Unify(%v, %v) error = %v, wantErr %v", tt.a, tt.b, err, tt.wantErr)
			}
		})
	}
}

func TestUnifyBindsVariable(t *testing.T) {
	v := mkVar(1)
	ref := TypeVariableRef{Var: v}

	if err := Unify(ref, FieldElement{}); err != nil {
		t.Fatalf("Unify returned error: %v", err)
	}

	if !v.Bound() {
		t.Fatal("expected variable to be bound after unification")
	}

	if _, ok := Follow(ref).(FieldElement); !ok {
		t.Fatalf("Follow(ref) = %v, want FieldElement", Follow(ref))
	}
}

func TestUnifyOccursCheck(t *testing.T) {
	v := mkVar(1)
	ref := TypeVariableRef{Var: v}
	recursive := Array{Length: Constant{Value: 1}, Element: ref}

	if err := Unify(ref, recursive); err == nil {
		t.Fatal("expected occurs-check failure, got nil error")
	}

	if v.Bound() {
		t.Fatal("variable must not be bound after a failed unification")
	}
}

func TestUnifyStructsRequireSameID(t *testing.T) {
	a := Struct{ID: StructID{Crate: 0, Local: 1}, Name: "Widget"}
	b := Struct{ID: StructID{Crate: 0, Local: 2}, Name: "Gadget"}

	if err := Unify(a, b); err == nil {
		t.Fatal("expected distinct struct ids to fail to unify")
	}

	c := Struct{ID: a.ID, Name: "Widget"}
	if err := Unify(a, c); err != nil {
		t.Fatalf("expected identical struct ids to unify, got %v", err)
	}
}

func TestUnifyFunctionsRecurseIntoParams(t *testing.T) {
	v := mkVar(1)
	ref := TypeVariableRef{Var: v}

	left := Function{Params: []Type{ref}, Return: Bool{}, Env: Unit{}}
	right := Function{Params: []Type{FieldElement{}}, Return: Bool{}, Env: Unit{}}

	if err := Unify(left, right); err != nil {
		t.Fatalf("Unify returned error: %v", err)
	}

	if _, ok := Follow(ref).(FieldElement); !ok {
		t.Fatalf("expected param variable bound to FieldElement, got %v", Follow(ref))
	}
}

func TestTryUnifyDoesNotCommitOnFailure(t *testing.T) {
	v := mkVar(1)
	ref := TypeVariableRef{Var: v}
	bindings := NewTypeBindings()

	left := Tuple{Elements: []Type{ref, Bool{}}}
	right := Tuple{Elements: []Type{FieldElement{}, FieldElement{}}}

	if err := TryUnify(left, right, bindings); err == nil {
		t.Fatal("expected the second element mismatch to fail unification")
	}

	if v.Bound() {
		t.Fatal("TryUnify must not commit bindings on failure")
	}
}
