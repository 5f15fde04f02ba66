package hirtype

import "fmt"

// TypeVariable is the shared mutable cell a type variable's binding lives
// in. Every Type value that refers to "the same" variable holds a pointer
// to the same TypeVariable, so binding it through one reference makes the
// binding visible through all of them — the Go analogue of the original
// source's Rc<RefCell<TypeBinding>>, without needing a reference-counted
// cell type: a bare pointer already gives the sharing, and this index never
// frees a variable early (spec.md §5: no concurrency, no suspension, so
// there is never a second owner to race against).
type TypeVariable struct {
	ID      TypeVariableID
	binding Type // nil until bound
}

// NewTypeVariable creates a fresh, unbound variable. Callers normally get
// variables from the interner's generator (internal/interner) rather than
// calling this directly, so ids stay globally unique.
func NewTypeVariable(id TypeVariableID) *TypeVariable {
	return &TypeVariable{ID: id}
}

// Bound reports whether the variable has been unified with a concrete type.
func (v *TypeVariable) Bound() bool { return v.binding != nil }

// Bind sets the variable's binding. It never checks the occurs condition
// itself — Unify does that before calling Bind — so calling it directly
// can introduce an infinite type; production code should go through Unify.
func (v *TypeVariable) Bind(t Type) { v.binding = t }

// Unbind clears the variable's binding. The trait-impl solver does not use
// it: it records speculative binds in a TypeBindings and simply discards
// the set for a rejected candidate.
func (v *TypeVariable) Unbind() { v.binding = nil }

func (v *TypeVariable) String() string { return v.ID.String() }

// TypeVariableRef is the Type case wrapping an unbound (or possibly bound)
// variable cell. Resolving through it — via Follow — is how callers see a
// variable's current binding without caring whether it's still free.
type TypeVariableRef struct {
	Var *TypeVariable
}

func (t TypeVariableRef) Kind() Kind { return KindTypeVariable }
func (t TypeVariableRef) String() string {
	if t.Var.Bound() {
		return t.Var.binding.String()
	}

	return t.Var.String()
}
func (TypeVariableRef) typeNode() {}

// Follow resolves t through any chain of bound type variables, returning
// the first concrete (or still-unbound) type reached. It never mutates
// anything; it's a read-only walk of already-committed bindings.
func Follow(t Type) Type {
	for {
		ref, ok := t.(TypeVariableRef)
		if !ok || !ref.Var.Bound() {
			return t
		}

		t = ref.Var.binding
	}
}

// TypeBindings accumulates speculative variable → type assignments before
// they are committed. The trait-impl solver builds one of these per
// candidate it tries and only commits it (via Apply) once the candidate is
// chosen; a rejected candidate's bindings are simply discarded without ever
// touching the shared TypeVariable cells.
type TypeBindings map[TypeVariableID]typeBinding

type typeBinding struct {
	variable *TypeVariable
	value    Type
}

// NewTypeBindings returns an empty binding set.
func NewTypeBindings() TypeBindings {
	return make(TypeBindings)
}

// Bind records that variable should resolve to value, without yet mutating
// variable's cell.
func (b TypeBindings) Bind(variable *TypeVariable, value Type) {
	b[variable.ID] = typeBinding{variable: variable, value: value}
}

// Apply commits every recorded binding to its variable's shared cell. Once
// applied, every Type value referencing that variable observes the new
// binding through Follow.
func (b TypeBindings) Apply() {
	for _, entry := range b {
		entry.variable.Bind(entry.value)
	}
}

// TraitConstraint names a trait an instantiated type must implement,
// produced when a generic function or impl with a `where T: Trait` bound is
// instantiated (spec.md §4.4).
type TraitConstraint struct {
	Typ      Type
	TraitID  TraitID
	Generics []Type
}

func (c TraitConstraint) String() string {
	return fmt.Sprintf("%s: %s", c.Typ, c.TraitID)
}
