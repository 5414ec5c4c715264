package category

import "testing"

func TestLookup(t *testing.T) {
	c := Lookup("transport")
	if c.Label != "Transport" || c.Icon != "car" {
		t.Fatalf("transport lookup = %+v", c)
	}

	// Unknown identifiers fall back to the default entry, never fail.
	fallback := Lookup("crypto")
	if fallback != Default() {
		t.Fatalf("unknown id must return default, got %+v", fallback)
	}
	if Default().ID != "food" {
		t.Fatalf("default must be the first-defined category")
	}
}

func TestKnown(t *testing.T) {
	if !Known("invest") {
		t.Fatalf("invest should be known")
	}
	if Known("crypto") {
		t.Fatalf("crypto should be unknown")
	}
}

func TestAllReturnsCopy(t *testing.T) {
	a := All()
	if len(a) != 5 {
		t.Fatalf("expected 5 categories, got %d", len(a))
	}
	a[0].Label = "mutated"
	if Lookup("food").Label == "mutated" {
		t.Fatalf("All must not expose internal state")
	}
}
