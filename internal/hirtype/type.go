// Package hirtype is the index's type representation: the sum type the
// spec calls Type, its shared mutable type-variable cells, and the
// unification/instantiation/generalization operations the trait-impl
// solver in internal/interner builds on. It is grounded in the Orizon
// compiler's internal/hir/types.go per-variant-struct idiom (one concrete
// Go type per case, a marker method, a String method) generalized from
// Orizon's broader HIR type hierarchy down to spec.md §3's Type enum.
package hirtype

import (
	"fmt"
	"strings"
)

// Kind tags which case of the Type sum a value holds. Logic dispatches via
// Go type switches on Type itself (including the method tables'
// TypeMethodKey classification in internal/interner); Kind exists for
// debugging.
type Kind int

const (
	KindFieldElement Kind = iota
	KindBool
	KindString
	KindFmtString
	KindUnit
	KindArray
	KindTuple
	KindFunction
	KindStruct
	KindTraitAsType
	KindForall
	KindMutableReference
	KindGeneric
	KindTypeVariable
	KindError
)

func (k Kind) String() string {
	switch k {
	case KindFieldElement:
		return "FieldElement"
	case KindBool:
		return "Bool"
	case KindString:
		return "String"
	case KindFmtString:
		return "FmtString"
	case KindUnit:
		return "Unit"
	case KindArray:
		return "Array"
	case KindTuple:
		return "Tuple"
	case KindFunction:
		return "Function"
	case KindStruct:
		return "Struct"
	case KindTraitAsType:
		return "TraitAsType"
	case KindForall:
		return "Forall"
	case KindMutableReference:
		return "MutableReference"
	case KindGeneric:
		return "Generic"
	case KindTypeVariable:
		return "TypeVariable"
	case KindError:
		return "Error"
	default:
		return "Unknown"
	}
}

// Type is the sum type every HIR type-level value is. Each case below is a
// distinct Go type implementing it; a Go type switch is the dispatch
// mechanism, matching the teacher's HIRType interface plus per-variant
// struct pattern rather than a tagged union with an interface{} payload.
type Type interface {
	Kind() Kind
	String() string

	typeNode()
}

// FieldElement is the index's sole numeric primitive (spec.md deliberately
// has no integer-width hierarchy).
type FieldElement struct{}

func (FieldElement) Kind() Kind      { return KindFieldElement }
func (FieldElement) String() string  { return "Field" }
func (FieldElement) typeNode()       {}

// Bool is the boolean primitive.
type Bool struct{}

func (Bool) Kind() Kind     { return KindBool }
func (Bool) String() string { return "bool" }
func (Bool) typeNode()      {}

// String is a fixed-length string type; Length is itself a Type (normally a
// Constant, see below) so generic string lengths can unify like any other
// type-level value.
type String struct {
	Length Type
}

func (t String) Kind() Kind { return KindString }
func (t String) String() string {
	if t.Length == nil {
		return "str<?>"
	}

	return fmt.Sprintf("str<%s>", t.Length)
}
func (String) typeNode() {}

// FmtString is a format-string type: a length plus the element types the
// interpolation holes resolve to.
type FmtString struct {
	Length   Type
	Elements []Type
}

func (t FmtString) Kind() Kind { return KindFmtString }
func (t FmtString) String() string {
	parts := make([]string, len(t.Elements))
	for i, e := range t.Elements {
		parts[i] = e.String()
	}

	return fmt.Sprintf("fmtstr<%s, (%s)>", t.Length, strings.Join(parts, ", "))
}
func (FmtString) typeNode() {}

// Constant is a type-level numeric literal, used as the Length of String,
// FmtString and Array.
type Constant struct {
	Value uint64
}

func (c Constant) Kind() Kind { return KindFieldElement }
func (c Constant) String() string {
	return fmt.Sprintf("%d", c.Value)
}
func (Constant) typeNode() {}

// Unit is the zero-element tuple, the type of statements and of calls made
// only for effect.
type Unit struct{}

func (Unit) Kind() Kind     { return KindUnit }
func (Unit) String() string { return "()" }
func (Unit) typeNode()      {}

// Array is a fixed-length homogeneous array; Length follows the same
// type-level-constant convention as String.
type Array struct {
	Length  Type
	Element Type
}

func (t Array) Kind() Kind { return KindArray }
func (t Array) String() string {
	return fmt.Sprintf("[%s; %s]", t.Element, t.Length)
}
func (Array) typeNode() {}

// Tuple is a fixed arity, possibly heterogeneous, product type.
type Tuple struct {
	Elements []Type
}

func (t Tuple) Kind() Kind { return KindTuple }
func (t Tuple) String() string {
	parts := make([]string, len(t.Elements))
	for i, e := range t.Elements {
		parts[i] = e.String()
	}

	return fmt.Sprintf("(%s)", strings.Join(parts, ", "))
}
func (Tuple) typeNode() {}

// Function is a function type: parameter types, a return type, and an
// environment type (Unit for a plain function, a Tuple of captures for a
// closure).
type Function struct {
	Params []Type
	Return Type
	Env    Type
}

func (t Function) Kind() Kind { return KindFunction }
func (t Function) String() string {
	parts := make([]string, len(t.Params))
	for i, p := range t.Params {
		parts[i] = p.String()
	}

	env := ""
	if _, isUnit := t.Env.(Unit); !isUnit && t.Env != nil {
		env = fmt.Sprintf("[%s]", t.Env)
	}

	return fmt.Sprintf("fn%s(%s) -> %s", env, strings.Join(parts, ", "), t.Return)
}
func (Function) typeNode() {}

// Struct refers to a struct definition by id, plus the generic arguments
// this occurrence of it was applied to. It holds no pointer to the struct's
// body: bodies live exclusively in the interner's struct table, addressed
// by StructID, so a Struct value is always a stable, copyable reference
// rather than a shared mutable cell (spec.md §9's "arena + stable id"
// alternative — see DESIGN.md).
type Struct struct {
	ID       StructID
	Name     string
	Generics []Type
}

func (t Struct) Kind() Kind { return KindStruct }
func (t Struct) String() string {
	if len(t.Generics) == 0 {
		return t.Name
	}

	parts := make([]string, len(t.Generics))
	for i, g := range t.Generics {
		parts[i] = g.String()
	}

	return fmt.Sprintf("%s<%s>", t.Name, strings.Join(parts, ", "))
}
func (Struct) typeNode() {}

// TraitAsType refers to a trait used in type position (`impl Trait`,
// `dyn Trait`-equivalents), again by id rather than by pointer.
type TraitAsType struct {
	ID       TraitID
	Name     string
	Generics []Type
}

func (t TraitAsType) Kind() Kind { return KindTraitAsType }
func (t TraitAsType) String() string {
	if len(t.Generics) == 0 {
		return fmt.Sprintf("impl %s", t.Name)
	}

	parts := make([]string, len(t.Generics))
	for i, g := range t.Generics {
		parts[i] = g.String()
	}

	return fmt.Sprintf("impl %s<%s>", t.Name, strings.Join(parts, ", "))
}
func (TraitAsType) typeNode() {}

// Forall universally quantifies TypeVars over Body; it is the type of every
// generic function and generic impl method before instantiation.
type Forall struct {
	TypeVars []*TypeVariable
	Body     Type
}

func (t Forall) Kind() Kind { return KindForall }
func (t Forall) String() string {
	if len(t.TypeVars) == 0 {
		return t.Body.String()
	}

	names := make([]string, len(t.TypeVars))
	for i, v := range t.TypeVars {
		names[i] = v.ID.String()
	}

	return fmt.Sprintf("forall %s. %s", strings.Join(names, " "), t.Body)
}
func (Forall) typeNode() {}

// MutableReference is `&mut T`.
type MutableReference struct {
	Element Type
}

func (t MutableReference) Kind() Kind     { return KindMutableReference }
func (t MutableReference) String() string { return fmt.Sprintf("&mut %s", t.Element) }
func (MutableReference) typeNode()        {}

// Generic is a named, rigid type parameter bound by an enclosing Forall: it
// never unifies with anything but itself or an unbound TypeVariable, unlike
// a free TypeVariable which unifies with any compatible type.
type Generic struct {
	Var  *TypeVariable
	Name string
}

func (t Generic) Kind() Kind     { return KindGeneric }
func (t Generic) String() string { return t.Name }
func (Generic) typeNode()        {}

// Error stands in for a type the index could not determine, e.g. after a
// diagnostic was already raised elsewhere; it unifies with everything so a
// single root cause doesn't cascade into a wall of further diagnostics.
type Error struct{}

func (Error) Kind() Kind     { return KindError }
func (Error) String() string { return "<error>" }
func (Error) typeNode()      {}
