// Package hir defines the node shapes the semantic index stores: the
// expression, statement and function variants produced by lowering, and
// the opaque id family that addresses them. It is adapted from the Orizon
// compiler's internal/hir package (hir.go's HIRNode interface, nodes.go's
// per-node-variant structs), trimmed to the handful of expression and
// statement shapes spec.md's location resolver (§4.6) and trait-impl
// solver (§4.4) actually need to dispatch on — the visitor interface,
// effect sets and region sets belonging to Orizon's own, much larger
// advanced type system are not part of this index and are left behind.
//
// The arena these ids address lives in internal/interner, not here: hir
// only describes what a node looks like once fetched, matching the
// Orizon teacher's split between the node shapes (internal/hir) and the
// table that owns them (internal/resolver, internal/typechecker).
package hir

import "fmt"

// Index is the position of a node within the interner's single append-only
// arena. Every stored node, regardless of whether it is a function, a
// statement, or an expression, occupies one Index; ExprID, StmtID and
// FuncID are distinct Go types wrapping the same underlying Index so a
// value produced as one kind is never implicitly usable as another — using
// one in place of another requires an explicit conversion, which is the
// same discipline the teacher applies to its own NodeID/ModuleID/TypeID
// family of wrapper types.
type Index uint32

// DummyIndex is the sentinel arena position used before a node exists, e.g.
// while constructing a forward reference during lowering.
const DummyIndex Index = ^Index(0)

// ExprID addresses an expression node.
type ExprID struct{ idx Index }

// NewExprID wraps a raw arena index as an ExprID. Only internal/interner,
// which owns the arena, should ever call this.
func NewExprID(idx Index) ExprID { return ExprID{idx} }

// Index returns the raw arena position this id addresses.
func (id ExprID) Index() Index { return id.idx }

func (id ExprID) String() string { return fmt.Sprintf("expr#%d", id.idx) }

// DummyExprID is spec.md's canonical "no expression" sentinel — for
// example, an empty block's implicit result expression.
var DummyExprID = ExprID{DummyIndex}

// StmtID addresses a statement node.
type StmtID struct{ idx Index }

// NewStmtID wraps a raw arena index as a StmtID.
func NewStmtID(idx Index) StmtID { return StmtID{idx} }

// Index returns the raw arena position this id addresses.
func (id StmtID) Index() Index { return id.idx }

func (id StmtID) String() string { return fmt.Sprintf("stmt#%d", id.idx) }

// DummyStmtID is the sentinel StmtID.
var DummyStmtID = StmtID{DummyIndex}

// FuncID addresses a function node.
type FuncID struct{ idx Index }

// NewFuncID wraps a raw arena index as a FuncID.
func NewFuncID(idx Index) FuncID { return FuncID{idx} }

// Index returns the raw arena position this id addresses.
func (id FuncID) Index() Index { return id.idx }

func (id FuncID) String() string { return fmt.Sprintf("func#%d", id.idx) }

// DummyFuncID is the sentinel FuncID.
var DummyFuncID = FuncID{DummyIndex}

// DefinitionID is a flat counter, independent of the node arena, naming one
// entry of the definitions table (locals, globals, function names, struct
// field bindings — anything an Identifier expression can resolve to).
type DefinitionID uint64

func (id DefinitionID) String() string { return fmt.Sprintf("def#%d", id) }

// DummyDefinitionID is the sentinel DefinitionID.
const DummyDefinitionID DefinitionID = ^DefinitionID(0)
