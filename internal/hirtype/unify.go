package hirtype

import "fmt"

// UnifyError reports why two types could not be unified. The trait-impl
// solver treats it as "this candidate doesn't apply", never as a
// diagnostic in its own right — the caller decides whether exhausting all
// candidates becomes a user-visible diagnostics.UnresolvedConstraint.
type UnifyError struct {
	Left, Right Type
	Reason      string
}

func (e *UnifyError) Error() string {
	return fmt.Sprintf("cannot unify %s with %s: %s", e.Left, e.Right, e.Reason)
}

// TryUnify attempts to unify a and b, recording any variable bindings it
// needs into bindings rather than committing them. The caller applies
// bindings only once it has decided to keep this unification result — this
// is what lets the solver try several candidate impls and discard all but
// the chosen one without leaving partial binds behind.
func TryUnify(a, b Type, bindings TypeBindings) error {
	a = resolveWithPending(a, bindings)
	b = resolveWithPending(b, bindings)

	if aVar, ok := a.(TypeVariableRef); ok {
		return bindVariable(aVar.Var, b, bindings)
	}

	if bVar, ok := b.(TypeVariableRef); ok {
		return bindVariable(bVar.Var, a, bindings)
	}

	if _, ok := a.(Error); ok {
		return nil
	}

	if _, ok := b.(Error); ok {
		return nil
	}

	switch left := a.(type) {
	case FieldElement:
		if _, ok := b.(FieldElement); ok {
			return nil
		}
	case Bool:
		if _, ok := b.(Bool); ok {
			return nil
		}
	case Unit:
		if _, ok := b.(Unit); ok {
			return nil
		}
	case Constant:
		if right, ok := b.(Constant); ok && left.Value == right.Value {
			return nil
		}
	case String:
		if right, ok := b.(String); ok {
			return TryUnify(left.Length, right.Length, bindings)
		}
	case FmtString:
		if right, ok := b.(FmtString); ok && len(left.Elements) == len(right.Elements) {
			if err := TryUnify(left.Length, right.Length, bindings); err != nil {
				return err
			}

			for i := range left.Elements {
				if err := TryUnify(left.Elements[i], right.Elements[i], bindings); err != nil {
					return err
				}
			}

			return nil
		}
	case Array:
		if right, ok := b.(Array); ok {
			if err := TryUnify(left.Length, right.Length, bindings); err != nil {
				return err
			}

			return TryUnify(left.Element, right.Element, bindings)
		}
	case Tuple:
		if right, ok := b.(Tuple); ok && len(left.Elements) == len(right.Elements) {
			for i := range left.Elements {
				if err := TryUnify(left.Elements[i], right.Elements[i], bindings); err != nil {
					return err
				}
			}

			return nil
		}
	case Function:
		if right, ok := b.(Function); ok && len(left.Params) == len(right.Params) {
			for i := range left.Params {
				if err := TryUnify(left.Params[i], right.Params[i], bindings); err != nil {
					return err
				}
			}

			if err := TryUnify(left.Env, right.Env, bindings); err != nil {
				return err
			}

			return TryUnify(left.Return, right.Return, bindings)
		}
	case Struct:
		if right, ok := b.(Struct); ok && left.ID == right.ID && len(left.Generics) == len(right.Generics) {
			for i := range left.Generics {
				if err := TryUnify(left.Generics[i], right.Generics[i], bindings); err != nil {
					return err
				}
			}

			return nil
		}
	case TraitAsType:
		if right, ok := b.(TraitAsType); ok && left.ID == right.ID && len(left.Generics) == len(right.Generics) {
			for i := range left.Generics {
				if err := TryUnify(left.Generics[i], right.Generics[i], bindings); err != nil {
					return err
				}
			}

			return nil
		}
	case MutableReference:
		if right, ok := b.(MutableReference); ok {
			return TryUnify(left.Element, right.Element, bindings)
		}
	case Generic:
		if right, ok := b.(Generic); ok && left.Var.ID == right.Var.ID {
			return nil
		}
	}

	return &UnifyError{Left: a, Right: b, Reason: "incompatible type shapes"}
}

// Unify is TryUnify with the bindings committed on success, for call sites
// that don't need to try several candidates first.
func Unify(a, b Type) error {
	bindings := NewTypeBindings()

	if err := TryUnify(a, b, bindings); err != nil {
		return err
	}

	bindings.Apply()

	return nil
}

// resolveWithPending follows already-committed variable bindings (via
// Follow) and then any not-yet-committed binding recorded in bindings for
// this call, so a chain of variables unified earlier within the same
// attempt resolves consistently.
func resolveWithPending(t Type, bindings TypeBindings) Type {
	t = Follow(t)

	ref, ok := t.(TypeVariableRef)
	if !ok {
		return t
	}

	if pending, ok := bindings[ref.Var.ID]; ok {
		return resolveWithPending(pending.value, bindings)
	}

	return t
}

func bindVariable(v *TypeVariable, t Type, bindings TypeBindings) error {
	if ref, ok := t.(TypeVariableRef); ok && ref.Var.ID == v.ID {
		return nil
	}

	if occurs(v.ID, t, bindings) {
		return &UnifyError{Left: TypeVariableRef{Var: v}, Right: t, Reason: "would construct an infinite type"}
	}

	bindings.Bind(v, t)

	return nil
}

// occurs reports whether id appears free inside t, directly or through any
// pending binding — the standard occurs check that stops unification from
// building a type that contains itself (e.g. `T = [T; 1]`).
func occurs(id TypeVariableID, t Type, bindings TypeBindings) bool {
	t = resolveWithPending(t, bindings)

	switch v := t.(type) {
	case TypeVariableRef:
		return v.Var.ID == id
	case String:
		return occurs(id, v.Length, bindings)
	case FmtString:
		if occurs(id, v.Length, bindings) {
			return true
		}

		for _, e := range v.Elements {
			if occurs(id, e, bindings) {
				return true
			}
		}

		return false
	case Array:
		return occurs(id, v.Length, bindings) || occurs(id, v.Element, bindings)
	case Tuple:
		for _, e := range v.Elements {
			if occurs(id, e, bindings) {
				return true
			}
		}

		return false
	case Function:
		for _, p := range v.Params {
			if occurs(id, p, bindings) {
				return true
			}
		}

		return occurs(id, v.Env, bindings) || occurs(id, v.Return, bindings)
	case Struct:
		for _, g := range v.Generics {
			if occurs(id, g, bindings) {
				return true
			}
		}

		return false
	case TraitAsType:
		for _, g := range v.Generics {
			if occurs(id, g, bindings) {
				return true
			}
		}

		return false
	case MutableReference:
		return occurs(id, v.Element, bindings)
	case Forall:
		return occurs(id, v.Body, bindings)
	default:
		return false
	}
}
