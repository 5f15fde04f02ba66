package diagnostics

import (
	"strings"
	"testing"

	"github.com/orizon-lang/hirstore/internal/position"
)

func TestDiagnosticConstructors(t *testing.T) {
	loc := position.Location{Span: position.NewSpan(0, 4), File: 1}

	tests := []struct {
		name     string
		build    func() *Diagnostic
		category Category
		contains string
	}{
		{
			name:     "duplicate method",
			build:    func() *Diagnostic { return DuplicateMethod(loc, "eq") },
			category: CategoryDuplicateMethod,
			contains: `"eq"`,
		},
		{
			name:     "overlapping impl",
			build:    func() *Diagnostic { return OverlappingImpl(loc, "Eq") },
			category: CategoryOverlappingImpl,
			contains: `"Eq"`,
		},
		{
			name:     "unresolved constraint",
			build:    func() *Diagnostic { return UnresolvedConstraint(loc, "Ord", "Widget") },
			category: CategoryUnresolvedConstraint,
			contains: `"Widget"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := tt.build()

			if d.Category != tt.category {
				t.Errorf("Category = %q, want %q", d.Category, tt.category)
			}

			if !strings.Contains(d.Message, tt.contains) {
				t.Errorf("Message = %q, want it to contain %q", d.Message, tt.contains)
			}

			if d.Location != loc {
				t.Errorf("Location = %v, want %v", d.Location, loc)
			}

			if d.Caller == "" || d.Caller == "unknown" {
				t.Errorf("Caller = %q, want a file:line", d.Caller)
			}

			if !strings.Contains(d.Error(), tt.contains) {
				t.Errorf("Error() = %q, want it to contain %q", d.Error(), tt.contains)
			}
		})
	}
}

func TestICEPanicsWithPrefix(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected ICE to panic")
		}

		msg, ok := r.(string)
		if !ok {
			t.Fatalf("panic value = %T, want string", r)
		}

		if !strings.HasPrefix(msg, "ice: ") {
			t.Errorf("panic message = %q, want prefix %q", msg, "ice: ")
		}

		if !strings.Contains(msg, "dummy") {
			t.Errorf("panic message = %q, want it to mention the formatted argument", msg)
		}
	}()

	ICE("lookup reached a %s id", "dummy")
}
