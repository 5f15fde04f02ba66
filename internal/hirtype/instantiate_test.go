package hirtype

import "testing"

func freshCounterFrom(start uint64) FreshVariable {
	next := start
	return func() *TypeVariable {
		v := NewTypeVariable(TypeVariableID(next))
		next++

		return v
	}
}

func TestInstantiateReplacesQuantifiedVariables(t *testing.T) {
	bound := mkVar(0)
	forall := Forall{
		TypeVars: []*TypeVariable{bound},
		Body: Function{
			Params: []Type{TypeVariableRef{Var: bound}},
			Return: TypeVariableRef{Var: bound},
			Env:    Unit{},
		},
	}

	instantiated, bindings := Instantiate(forall, freshCounterFrom(100))

	fn, ok := instantiated.(Function)
	if !ok {
		t.Fatalf("Instantiate result = %T, want Function", instantiated)
	}

	paramRef, ok := fn.Params[0].(TypeVariableRef)
	if !ok {
		t.Fatalf("param = %T, want TypeVariableRef", fn.Params[0])
	}

	if paramRef.Var.ID == bound.ID {
		t.Error("instantiation must mint a fresh variable, not reuse the quantified one")
	}

	returnRef, ok := fn.Return.(TypeVariableRef)
	if !ok || returnRef.Var.ID != paramRef.Var.ID {
		t.Error("both occurrences of the quantified variable must map to the same fresh variable")
	}

	if len(bindings) != 1 {
		t.Errorf("len(bindings) = %d, want 1", len(bindings))
	}
}

func TestInstantiateNonForallIsIdentity(t *testing.T) {
	bodyType := Bool{}

	result, bindings := Instantiate(bodyType, freshCounterFrom(0))

	if result != Type(bodyType) {
		t.Errorf("Instantiate(non-Forall) = %v, want unchanged", result)
	}

	if len(bindings) != 0 {
		t.Errorf("expected empty bindings, got %d entries", len(bindings))
	}
}

func TestGeneralizeQuantifiesFreeVariables(t *testing.T) {
	free := mkVar(1)
	excludedVar := mkVar(2)

	body := Tuple{Elements: []Type{
		TypeVariableRef{Var: free},
		TypeVariableRef{Var: excludedVar},
	}}

	excluded := map[TypeVariableID]bool{excludedVar.ID: true}

	result := Generalize(body, excluded)

	forall, ok := result.(Forall)
	if !ok {
		t.Fatalf("Generalize result = %T, want Forall", result)
	}

	if len(forall.TypeVars) != 1 || forall.TypeVars[0].ID != free.ID {
		t.Errorf("TypeVars = %v, want only %v", forall.TypeVars, free.ID)
	}
}

func TestGeneralizeWithNothingFreeReturnsUnchanged(t *testing.T) {
	result := Generalize(Bool{}, nil)

	if _, ok := result.(Forall); ok {
		t.Error("Generalize must not wrap a type with no free variables in a Forall")
	}
}

func TestForceSubstituteOverridesExistingBinding(t *testing.T) {
	v := mkVar(1)
	v.Bind(Bool{})

	bindings := NewTypeBindings()
	bindings.Bind(v, FieldElement{})

	ref := TypeVariableRef{Var: v}

	normal := Substitute(ref, bindings)
	if _, ok := normal.(Bool); !ok {
		t.Errorf("Substitute must follow the existing binding first, got %v", normal)
	}

	forced := ForceSubstitute(ref, bindings)
	if _, ok := forced.(FieldElement); !ok {
		t.Errorf("ForceSubstitute must prefer the supplied bindings, got %v", forced)
	}
}
