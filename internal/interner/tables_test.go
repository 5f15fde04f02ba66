package interner

import (
	"testing"

	"github.com/orizon-lang/hirstore/internal/hir"
	"github.com/orizon-lang/hirstore/internal/hirtype"
	"github.com/orizon-lang/hirstore/internal/position"
)

func TestTypeAliasStartsAsErrorUntilSet(t *testing.T) {
	s := NewStore()

	id := s.PushTypeAlias("MyAlias")

	if _, ok := s.TypeAlias(id).Type.(hirtype.Error); !ok {
		t.Fatalf("fresh alias type = %T, want hirtype.Error", s.TypeAlias(id).Type)
	}

	s.SetTypeAlias(id, nil, hirtype.Bool{})

	if _, ok := s.TypeAlias(id).Type.(hirtype.Bool); !ok {
		t.Fatalf("alias type after SetTypeAlias = %T, want hirtype.Bool", s.TypeAlias(id).Type)
	}
}

func TestPushGlobalRecordsInInsertionOrder(t *testing.T) {
	s := NewStore()

	stmt1 := s.PushStmt(hir.ExpressionStatement{Expr: EmptyBlockExprID()})
	stmt2 := s.PushStmt(hir.ExpressionStatement{Expr: EmptyBlockExprID()})

	s.PushGlobal(stmt1, "FIRST", 0)
	s.PushGlobal(stmt2, "SECOND", 0)

	globals := s.Globals()
	if len(globals) != 2 || globals[0].Ident != "FIRST" || globals[1].Ident != "SECOND" {
		t.Fatalf("Globals() = %+v, want [FIRST, SECOND] in order", globals)
	}
}

func TestTryDefinitionFalseForDummyID(t *testing.T) {
	s := NewStore()

	if _, ok := s.TryDefinition(hir.DummyDefinitionID); ok {
		t.Error("TryDefinition(DummyDefinitionID) should report false, not ICE")
	}

	if _, ok := s.TryDefinition(hir.DefinitionID(999)); ok {
		t.Error("TryDefinition(out-of-range id) should report false, not ICE")
	}
}

func TestNewStructSeedsGenericPlaceholders(t *testing.T) {
	s := NewStore()

	id := StructID{Crate: 0, Local: 1}
	s.NewStruct(id, "Pair", 2, position.Location{})

	info := s.Struct(id)
	if len(info.Generics) != 2 {
		t.Fatalf("Struct(id).Generics has %d entries, want 2", len(info.Generics))
	}

	if info.Generics[0].ID == info.Generics[1].ID {
		t.Error("the two generic placeholders share an id; they should be distinct fresh variables")
	}
}

func TestPushEmptyTraitAllocatesSelfTypeAndGenerics(t *testing.T) {
	s := NewStore()

	id := TraitID{Crate: 0, Local: 1}
	s.PushEmptyTrait(id, "Clone", 0, 1, position.Location{})

	info := s.Trait(id)
	if info.SelfType == nil {
		t.Fatal("Trait(id).SelfType should be allocated, not nil")
	}

	if len(info.Generics) != 1 {
		t.Fatalf("Trait(id).Generics has %d entries, want 1", len(info.Generics))
	}
}

func TestUpdateFunctionModifiersAppliesInPlace(t *testing.T) {
	s := NewStore()

	fid := s.PushFn(hir.Function{Body: EmptyBlockExprID()})
	s.PushFunctionModifiers(fid, FunctionModifiers{Name: "run"})

	s.UpdateFunctionModifiers(fid, func(m *FunctionModifiers) {
		m.Unconstrained = true
	})

	if !s.FunctionModifiers(fid).Unconstrained {
		t.Error("UpdateFunctionModifiers did not persist the mutation")
	}
}
