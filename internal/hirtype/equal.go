package hirtype

// Equal reports whether a and b are the exact same type, following bound
// variables but never unifying free ones: two distinct unbound variables
// are equal only if they are literally the same cell. Two absent (nil)
// types, such as an unset Function.Env, are equal to each other. This is
// the comparison internal/interner's AddMethod applies to a candidate's
// full signature when checking for a duplicate method, which is a stricter
// question than Unify answers (Unify would happily relate two distinct free
// variables by binding one to the other).
func Equal(a, b Type) bool {
	a, b = Follow(a), Follow(b)

	if a == nil || b == nil {
		return a == nil && b == nil
	}

	switch left := a.(type) {
	case FieldElement:
		_, ok := b.(FieldElement)
		return ok
	case Bool:
		_, ok := b.(Bool)
		return ok
	case Unit:
		_, ok := b.(Unit)
		return ok
	case Error:
		_, ok := b.(Error)
		return ok
	case Constant:
		right, ok := b.(Constant)
		return ok && left.Value == right.Value
	case String:
		right, ok := b.(String)
		return ok && Equal(left.Length, right.Length)
	case FmtString:
		right, ok := b.(FmtString)
		if !ok || len(left.Elements) != len(right.Elements) || !Equal(left.Length, right.Length) {
			return false
		}

		for i := range left.Elements {
			if !Equal(left.Elements[i], right.Elements[i]) {
				return false
			}
		}

		return true
	case Array:
		right, ok := b.(Array)
		return ok && Equal(left.Length, right.Length) && Equal(left.Element, right.Element)
	case Tuple:
		right, ok := b.(Tuple)
		if !ok || len(left.Elements) != len(right.Elements) {
			return false
		}

		for i := range left.Elements {
			if !Equal(left.Elements[i], right.Elements[i]) {
				return false
			}
		}

		return true
	case Function:
		right, ok := b.(Function)
		if !ok || len(left.Params) != len(right.Params) || !Equal(left.Env, right.Env) || !Equal(left.Return, right.Return) {
			return false
		}

		for i := range left.Params {
			if !Equal(left.Params[i], right.Params[i]) {
				return false
			}
		}

		return true
	case Struct:
		right, ok := b.(Struct)
		if !ok || left.ID != right.ID || len(left.Generics) != len(right.Generics) {
			return false
		}

		for i := range left.Generics {
			if !Equal(left.Generics[i], right.Generics[i]) {
				return false
			}
		}

		return true
	case TraitAsType:
		right, ok := b.(TraitAsType)
		if !ok || left.ID != right.ID || len(left.Generics) != len(right.Generics) {
			return false
		}

		for i := range left.Generics {
			if !Equal(left.Generics[i], right.Generics[i]) {
				return false
			}
		}

		return true
	case MutableReference:
		right, ok := b.(MutableReference)
		return ok && Equal(left.Element, right.Element)
	case Generic:
		right, ok := b.(Generic)
		return ok && left.Var.ID == right.Var.ID
	case TypeVariableRef:
		right, ok := b.(TypeVariableRef)
		return ok && left.Var.ID == right.Var.ID
	default:
		return false
	}
}
