package interner

import (
	"testing"

	"github.com/orizon-lang/hirstore/internal/hir"
	"github.com/orizon-lang/hirstore/internal/position"
)

func TestNewStoreSeedsCanonicalEmptyBlock(t *testing.T) {
	s := NewStore()

	block := s.Expression(EmptyBlockExprID())

	b, ok := block.(hir.Block)
	if !ok {
		t.Fatalf("arena index 0 = %T, want hir.Block", block)
	}

	if b.Result != hir.DummyExprID {
		t.Errorf("canonical empty block Result = %v, want DummyExprID", b.Result)
	}
}

func TestPushAndFetchExpressionLocation(t *testing.T) {
	s := NewStore()

	e1 := s.PushExpr(hir.Literal{Kind: hir.LiteralInteger, Integer: 7})

	loc := position.Location{Span: position.NewSpan(10, 11), File: 1}
	s.PushExprLocation(e1, loc)

	got, ok := s.ExprLocation(e1)
	if !ok || got != loc {
		t.Fatalf("ExprLocation(e1) = %v, %v, want %v, true", got, ok, loc)
	}

	idx, found := s.FindLocationIndex(loc)
	if !found || idx != e1.Index() {
		t.Fatalf("FindLocationIndex(loc) = %v, %v, want %v, true", idx, found, e1.Index())
	}
}

func TestFindLocationIndexPicksInnermostSpan(t *testing.T) {
	s := NewStore()

	outer := s.PushExpr(hir.Literal{Kind: hir.LiteralInteger, Integer: 1})
	inner := s.PushExpr(hir.Literal{Kind: hir.LiteralInteger, Integer: 2})

	s.PushExprLocation(outer, position.Location{Span: position.NewSpan(0, 100), File: 1})
	s.PushExprLocation(inner, position.Location{Span: position.NewSpan(40, 60), File: 1})

	query := position.Location{Span: position.NewSpan(45, 50), File: 1}

	idx, found := s.FindLocationIndex(query)
	if !found {
		t.Fatal("expected FindLocationIndex to find a containing node")
	}

	if idx != inner.Index() {
		t.Errorf("FindLocationIndex picked index %v, want the innermost %v", idx, inner.Index())
	}
}

func TestUpdateExpressionPreservesID(t *testing.T) {
	s := NewStore()

	id := s.PushExpr(hir.Literal{Kind: hir.LiteralInteger, Integer: 1})

	s.UpdateExpression(id, func(hir.Expression) hir.Expression {
		return hir.Literal{Kind: hir.LiteralInteger, Integer: 99}
	})

	lit, ok := s.Expression(id).(hir.Literal)
	if !ok || lit.Integer != 99 {
		t.Errorf("Expression(id) after update = %+v, want Integer=99", lit)
	}
}

func TestFetchingWrongVariantPanics(t *testing.T) {
	s := NewStore()

	id := s.PushStmt(hir.ExpressionStatement{Expr: EmptyBlockExprID()})

	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected fetching a statement id through Expression() to panic")
		}
	}()

	s.Expression(hir.NewExprID(id.Index()))
}
