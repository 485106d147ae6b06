package rng

import "testing"

func TestRangeInclusive(t *testing.T) {
	s := New(42)
	seen := make(map[int]bool)
	for i := 0; i < 1000; i++ {
		v := s.Range(2, 5)
		if v < 2 || v > 5 {
			t.Fatalf("Range(2,5) returned %d", v)
		}
		seen[v] = true
	}
	for v := 2; v <= 5; v++ {
		if !seen[v] {
			t.Errorf("Range(2,5) never produced %d in 1000 draws", v)
		}
	}
}

func TestRangeSwappedBounds(t *testing.T) {
	s := New(7)
	for i := 0; i < 100; i++ {
		v := s.Range(10, 3)
		if v < 3 || v > 10 {
			t.Fatalf("Range(10,3) returned %d", v)
		}
	}
}

func TestDeterminism(t *testing.T) {
	a := New(12345)
	b := New(12345)
	for i := 0; i < 50; i++ {
		if a.Range(0, 1000) != b.Range(0, 1000) {
			t.Fatal("same seed produced diverging streams")
		}
	}
}

func TestShuffleDoesNotMutate(t *testing.T) {
	s := New(1)
	in := []string{"a", "b", "c", "d"}
	out := Shuffle(s, in)
	if len(out) != 4 {
		t.Fatalf("shuffle changed length: %d", len(out))
	}
	if in[0] != "a" || in[1] != "b" || in[2] != "c" || in[3] != "d" {
		t.Error("shuffle mutated its input")
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(35, 1, 30); got != 30 {
		t.Errorf("Clamp(35,1,30) = %d", got)
	}
	if got := Clamp(-2, 1, 30); got != 1 {
		t.Errorf("Clamp(-2,1,30) = %d", got)
	}
	if got := ClampF(1.5, 0, 1); got != 1 {
		t.Errorf("ClampF(1.5,0,1) = %v", got)
	}
}
