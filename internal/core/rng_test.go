package core

import "testing"

func TestRNGDeterministic(t *testing.T) {
	a := NewRNG(3)
	b := NewRNG(3)
	for i := 0; i < 100; i++ {
		if a.IntN(1000) != b.IntN(1000) {
			t.Fatalf("draw %d differs for equal seeds", i)
		}
		if a.Float64() != b.Float64() {
			t.Fatalf("float draw %d differs for equal seeds", i)
		}
	}
}

func TestRNGIntNBounds(t *testing.T) {
	r := NewRNG(1)
	if r.IntN(0) != 0 || r.IntN(-4) != 0 {
		t.Fatal("IntN with non-positive n must return 0")
	}
	for i := 0; i < 1000; i++ {
		if v := r.IntN(5); v < 0 || v >= 5 {
			t.Fatalf("IntN(5) = %d", v)
		}
	}
}
