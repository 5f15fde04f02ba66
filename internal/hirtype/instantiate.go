package hirtype

// FreshVariable mints a new, unbound TypeVariableRef. The interner package
// owns the actual id counter (spec.md §5's interior-mutability counter); it
// passes this function down wherever hirtype needs to manufacture a
// variable, keeping id allocation in one place.
type FreshVariable func() *TypeVariable

// Instantiate replaces every variable quantified by a Forall with a fresh
// one, returning the instantiated body and the substitution it used (the
// trait-impl solver in internal/interner needs that substitution to carry
// the same fresh variables into the impl's where-clause constraints).
// A bare, non-Forall type instantiates to itself with an empty
// substitution.
func Instantiate(t Type, fresh FreshVariable) (Type, TypeBindings) {
	forall, ok := t.(Forall)
	if !ok {
		return t, NewTypeBindings()
	}

	bindings := NewTypeBindings()
	for _, v := range forall.TypeVars {
		bindings.Bind(v, TypeVariableRef{Var: fresh()})
	}

	return substituteFresh(forall.Body, bindings), bindings
}

// substituteFresh is Substitute's force-less recursion specialized to
// binding maps built purely of fresh, still-unbound variables: every
// quantified variable referenced in t is guaranteed to be a key of
// bindings and never itself bound, so there's no need to follow through
// shared cells first.
func substituteFresh(t Type, bindings TypeBindings) Type {
	return Substitute(t, bindings)
}

// Generalize quantifies every free, unbound type variable in t that does
// not appear in excluded (typically the variables still free in an
// enclosing scope) into a Forall. A type with nothing left to quantify
// returns unchanged rather than wrapped in an empty Forall.
func Generalize(t Type, excluded map[TypeVariableID]bool) Type {
	seen := map[TypeVariableID]*TypeVariable{}
	collectFreeVariables(t, excluded, seen)

	if len(seen) == 0 {
		return t
	}

	vars := make([]*TypeVariable, 0, len(seen))
	for _, v := range seen {
		vars = append(vars, v)
	}

	return Forall{TypeVars: vars, Body: t}
}

func collectFreeVariables(t Type, excluded map[TypeVariableID]bool, seen map[TypeVariableID]*TypeVariable) {
	switch v := Follow(t).(type) {
	case TypeVariableRef:
		if !excluded[v.Var.ID] {
			seen[v.Var.ID] = v.Var
		}
	case String:
		collectFreeVariables(v.Length, excluded, seen)
	case FmtString:
		collectFreeVariables(v.Length, excluded, seen)
		for _, e := range v.Elements {
			collectFreeVariables(e, excluded, seen)
		}
	case Array:
		collectFreeVariables(v.Length, excluded, seen)
		collectFreeVariables(v.Element, excluded, seen)
	case Tuple:
		for _, e := range v.Elements {
			collectFreeVariables(e, excluded, seen)
		}
	case Function:
		for _, p := range v.Params {
			collectFreeVariables(p, excluded, seen)
		}

		collectFreeVariables(v.Env, excluded, seen)
		collectFreeVariables(v.Return, excluded, seen)
	case Struct:
		for _, g := range v.Generics {
			collectFreeVariables(g, excluded, seen)
		}
	case TraitAsType:
		for _, g := range v.Generics {
			collectFreeVariables(g, excluded, seen)
		}
	case MutableReference:
		collectFreeVariables(v.Element, excluded, seen)
	case Forall:
		inner := make(map[TypeVariableID]bool, len(excluded))
		for k := range excluded {
			inner[k] = true
		}

		for _, tv := range v.TypeVars {
			inner[tv.ID] = true
		}

		collectFreeVariables(v.Body, inner, seen)
	}
}
