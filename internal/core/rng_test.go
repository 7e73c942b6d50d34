package core

import "testing"

func TestRNGDeterminism(t *testing.T) {
	a := NewRNG(42)
	b := NewRNG(42)
	for i := 0; i < 100; i++ {
		if a.Next() != b.Next() {
			t.Fatalf("RNGs with the same seed diverged at step %d", i)
		}
	}
}

func TestRNGRanges(t *testing.T) {
	r := NewRNG(7)
	for i := 0; i < 10000; i++ {
		f := r.Float(-30, 30)
		if f < -30 || f >= 30 {
			t.Fatalf("Float(-30, 30) = %v out of range", f)
		}
		n := r.Int(0, 4)
		if n < 0 || n >= 4 {
			t.Fatalf("Int(0, 4) = %d out of range", n)
		}
	}
	if got := r.Int(3, 3); got != 3 {
		t.Errorf("Int(3, 3) = %d, expected 3", got)
	}
}

func TestRNGZeroSeed(t *testing.T) {
	r := NewRNG(0)
	if r.State() == 0 {
		t.Error("zero seed should be replaced with a non-zero state")
	}
}
