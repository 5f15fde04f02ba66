// Package position provides the opaque span and file identifiers the
// semantic index uses to point back into source text it never stores
// itself. It is adapted from the Orizon compiler's own position package,
// trimmed down: no source map, no line/column tracking, no text storage —
// only byte-offset spans and opaque file handles, exactly what the node
// interner needs to answer "what defines the thing at this location".
package position

import "fmt"

// FileID is an opaque handle to a source file. The index never resolves it
// back to a path or to file contents; it only compares file identities.
type FileID uint32

// Span is a half-open byte range [Start, End) within a single file.
type Span struct {
	Start uint32
	End   uint32
}

// NewSpan builds a span, asserting the obvious ordering invariant.
func NewSpan(start, end uint32) Span {
	if end < start {
		panic(fmt.Sprintf("ice: span end %d precedes start %d", end, start))
	}

	return Span{Start: start, End: end}
}

// Length returns the number of bytes the span covers.
func (s Span) Length() uint32 {
	return s.End - s.Start
}

// Contains reports whether s fully encloses other.
func (s Span) Contains(other Span) bool {
	return s.Start <= other.Start && other.End <= s.End
}

// IsSmaller reports whether s covers strictly fewer bytes than other. Used
// to break ties when several recorded spans all contain a query location —
// the innermost (smallest) one wins.
func (s Span) IsSmaller(other Span) bool {
	return s.Length() < other.Length()
}

func (s Span) String() string {
	return fmt.Sprintf("%d..%d", s.Start, s.End)
}

// Location pairs a span with the file it belongs to. Two locations compare
// only by file identity plus span; neither ever carries source text.
type Location struct {
	Span Span
	File FileID
}

// Contains reports whether l's span encloses other's span in the same file.
func (l Location) Contains(other Location) bool {
	return l.File == other.File && l.Span.Contains(other.Span)
}

func (l Location) String() string {
	return fmt.Sprintf("file(%d):%s", l.File, l.Span)
}
