package textutil

import "testing"

func TestSameNameNormalizesUnicode(t *testing.T) {
	composed := "caf\u00e9"
	decomposed := "cafe\u0301"
	if composed == decomposed {
		t.Fatal("test inputs should differ byte-wise")
	}
	if !SameName(composed, decomposed) {
		t.Fatalf("expected %q and %q to match after normalisation", composed, decomposed)
	}
	if SameName("intro", "outro") {
		t.Fatal("different names should not match")
	}
}

func TestNormalizeNameTrims(t *testing.T) {
	if got := NormalizeName("  track  "); got != "track" {
		t.Fatalf("NormalizeName = %q", got)
	}
}
