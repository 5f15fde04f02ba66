// Package diagnostics separates the two error tiers the index ever
// produces: Diagnostic values a caller can recover from and display, and
// ICE panics for states the data model guarantees can't happen. It is
// adapted from the Orizon compiler's internal/errors.StandardError, narrowed
// to the three diagnostic kinds this index actually raises.
package diagnostics

import (
	"fmt"
	"runtime"

	"github.com/orizon-lang/hirstore/internal/position"
)

// Category names the kind of user-visible diagnostic.
type Category string

const (
	// CategoryDuplicateMethod fires when add_method would register a second
	// inherent method of the same name on the same receiver type.
	CategoryDuplicateMethod Category = "duplicate_method"

	// CategoryOverlappingImpl fires when add_trait_implementation would admit
	// two trait impls whose object types can unify.
	CategoryOverlappingImpl Category = "overlapping_impl"

	// CategoryUnresolvedConstraint fires when the trait-impl solver exhausts
	// every candidate for a required trait constraint.
	CategoryUnresolvedConstraint Category = "unresolved_constraint"
)

// Diagnostic is a user-visible error the index surfaces instead of
// panicking: something the caller did (or the program under analysis
// contains) that the index recognizes as invalid, not a bug in the index
// itself.
type Diagnostic struct {
	Category Category
	Message  string
	Location position.Location
	Caller   string
}

func (d *Diagnostic) Error() string {
	return fmt.Sprintf("%s: %s (%s)", d.Category, d.Message, d.Location)
}

func newDiagnostic(category Category, loc position.Location, message string) *Diagnostic {
	caller := "unknown"
	if _, file, line, ok := runtime.Caller(2); ok {
		caller = fmt.Sprintf("%s:%d", file, line)
	}

	return &Diagnostic{
		Category: category,
		Message:  message,
		Location: loc,
		Caller:   caller,
	}
}

// DuplicateMethod reports that methodName is already registered as an
// inherent method on the receiver whose methods were being extended at loc.
func DuplicateMethod(loc position.Location, methodName string) *Diagnostic {
	return newDiagnostic(CategoryDuplicateMethod, loc,
		fmt.Sprintf("method %q is already defined for this type", methodName))
}

// OverlappingImpl reports that a new trait impl's object type unifies with
// an existing impl of the same trait, which the solver can never
// disambiguate between.
func OverlappingImpl(loc position.Location, traitName string) *Diagnostic {
	return newDiagnostic(CategoryOverlappingImpl, loc,
		fmt.Sprintf("conflicting implementations of trait %q for overlapping types", traitName))
}

// UnresolvedConstraint reports that no trait impl (normal or assumed)
// satisfies a required constraint, after exhausting every candidate the
// solver could reach within the recursion bound.
func UnresolvedConstraint(loc position.Location, traitName, typeName string) *Diagnostic {
	return newDiagnostic(CategoryUnresolvedConstraint, loc,
		fmt.Sprintf("no implementation of trait %q found for type %q", traitName, typeName))
}

// ICE panics with the invariant violation prefixed "ice: ", the index's
// convention for states the data model guarantees cannot occur: dummy ids
// reaching a lookup, a kind switch falling through every case, an arena
// index out of range. It is never meant to be recovered inside this
// package; a caller that wraps Store may recover() at its own boundary.
func ICE(format string, args ...interface{}) {
	panic("ice: " + fmt.Sprintf(format, args...))
}
