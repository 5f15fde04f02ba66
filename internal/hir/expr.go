package hir

import (
	"fmt"

	"github.com/orizon-lang/hirstore/internal/hirtype"
)

// LiteralKind tags which field of a Literal is meaningful.
type LiteralKind int

const (
	LiteralInteger LiteralKind = iota
	LiteralBool
	LiteralString
	LiteralUnit
)

// Identifier resolves to a DefinitionID; the location resolver (§4.6) reads
// through it to reach the defining location (a function's metadata
// location, a local's own location, or nothing for globals and generic
// types).
type Identifier struct {
	Definition DefinitionID
}

func (Identifier) Variant() NodeVariant { return VariantExpression }
func (Identifier) isExpression()        {}

// Literal is a constant value: an integer, a boolean, a string, or unit.
// Only the field matching Kind is meaningful.
type Literal struct {
	Kind    LiteralKind
	Integer int64
	Boolean bool
	Text    string
}

func (Literal) Variant() NodeVariant { return VariantExpression }
func (Literal) isExpression()        {}

func (l Literal) String() string {
	switch l.Kind {
	case LiteralInteger:
		return fmt.Sprintf("%d", l.Integer)
	case LiteralBool:
		return fmt.Sprintf("%t", l.Boolean)
	case LiteralString:
		return fmt.Sprintf("%q", l.Text)
	default:
		return "()"
	}
}

// Call applies Callee to Args. The location resolver recurses into Callee
// when resolving a call expression (§4.6).
type Call struct {
	Callee ExprID
	Args   []ExprID
}

func (Call) Variant() NodeVariant { return VariantExpression }
func (Call) isExpression()        {}

// MemberAccess reads FieldName off Object. The location resolver needs the
// type of Object (looked up in whatever side table the caller maintains) to
// find the declaring field.
type MemberAccess struct {
	Object    ExprID
	FieldName string
}

func (MemberAccess) Variant() NodeVariant { return VariantExpression }
func (MemberAccess) isExpression()        {}

// Constructor builds a value of the struct named by Struct, binding each
// field in Fields to an initializer expression.
type Constructor struct {
	Struct hirtype.StructID
	Fields map[string]ExprID
}

func (Constructor) Variant() NodeVariant { return VariantExpression }
func (Constructor) isExpression()        {}

// Block sequences Statements and evaluates to Result, or to Unit if Result
// is DummyExprID. The pre-seeded empty block (arena index 0, spec.md's
// canonical expression id) is Block{Result: DummyExprID}.
type Block struct {
	Statements []StmtID
	Result     ExprID
}

func (Block) Variant() NodeVariant { return VariantExpression }
func (Block) isExpression()        {}
