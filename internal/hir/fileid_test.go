package hir

import "testing"

func TestNewSyntheticFileIDsAreDistinct(t *testing.T) {
	a := NewSyntheticFileID()
	b := NewSyntheticFileID()

	if a == b {
		t.Fatal("two synthetic file ids collided; UUID generation may be broken")
	}
}
