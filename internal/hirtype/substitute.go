package hirtype

// Substitute replaces every type variable in t that appears in bindings
// with its bound value, recursing through composite types. A variable
// already bound in its own shared cell is followed through that binding
// first and bindings is only consulted for variables still free — this is
// the "normal" substitution used when applying a call site's ambient
// unification results on top of whatever instantiation already did.
func Substitute(t Type, bindings TypeBindings) Type {
	return substitute(t, bindings, false)
}

// ForceSubstitute replaces every type variable present in bindings with its
// bound value even if the variable's own cell already holds a different
// binding, recursing through composites exactly like Substitute otherwise.
// It exists for the one call site the original source uses it for
// (validateWhereClause, see SPEC_FULL.md's Open Question #2): undoing a
// binding that instantiation baked into an impl's own where-clause types,
// so a single impl for `(A, B)` doesn't get silently narrowed to whatever
// monomorphized it first.
func ForceSubstitute(t Type, bindings TypeBindings) Type {
	return substitute(t, bindings, true)
}

func substitute(t Type, bindings TypeBindings, force bool) Type {
	if ref, ok := t.(TypeVariableRef); ok {
		if !force && ref.Var.Bound() {
			return substitute(ref.Var.binding, bindings, force)
		}

		if pending, ok := bindings[ref.Var.ID]; ok {
			return substitute(pending.value, bindings, force)
		}

		if force && ref.Var.Bound() {
			return substitute(ref.Var.binding, bindings, force)
		}

		return t
	}

	switch v := t.(type) {
	case String:
		return String{Length: substitute(v.Length, bindings, force)}
	case FmtString:
		elems := make([]Type, len(v.Elements))
		for i, e := range v.Elements {
			elems[i] = substitute(e, bindings, force)
		}

		return FmtString{Length: substitute(v.Length, bindings, force), Elements: elems}
	case Array:
		return Array{
			Length:  substitute(v.Length, bindings, force),
			Element: substitute(v.Element, bindings, force),
		}
	case Tuple:
		elems := make([]Type, len(v.Elements))
		for i, e := range v.Elements {
			elems[i] = substitute(e, bindings, force)
		}

		return Tuple{Elements: elems}
	case Function:
		params := make([]Type, len(v.Params))
		for i, p := range v.Params {
			params[i] = substitute(p, bindings, force)
		}

		return Function{
			Params: params,
			Return: substitute(v.Return, bindings, force),
			Env:    substitute(v.Env, bindings, force),
		}
	case Struct:
		generics := make([]Type, len(v.Generics))
		for i, g := range v.Generics {
			generics[i] = substitute(g, bindings, force)
		}

		return Struct{ID: v.ID, Name: v.Name, Generics: generics}
	case TraitAsType:
		generics := make([]Type, len(v.Generics))
		for i, g := range v.Generics {
			generics[i] = substitute(g, bindings, force)
		}

		return TraitAsType{ID: v.ID, Name: v.Name, Generics: generics}
	case MutableReference:
		return MutableReference{Element: substitute(v.Element, bindings, force)}
	case Forall:
		return Forall{TypeVars: v.TypeVars, Body: substitute(v.Body, bindings, force)}
	default:
		return t
	}
}
