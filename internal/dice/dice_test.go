package dice

import (
	"math/rand"
	"testing"
)

func TestRollRange(t *testing.T) {
	for _, sides := range []int{1, 2, 6, 12, 20} {
		d := New(sides, rand.New(rand.NewSource(42)))
		for i := 0; i < 1000; i++ {
			r := d.Roll()
			if r < 1 || r > sides {
				t.Fatalf("Roll() with %d sides = %d, out of range", sides, r)
			}
		}
	}
}

func TestRollCoversAllFaces(t *testing.T) {
	d := New(6, rand.New(rand.NewSource(7)))
	seen := make(map[int]int)
	for i := 0; i < 6000; i++ {
		seen[d.Roll()]++
	}

	for face := 1; face <= 6; face++ {
		// Roughly uniform: each face should land near 1000 times
		if seen[face] < 800 || seen[face] > 1200 {
			t.Errorf("face %d rolled %d times out of 6000", face, seen[face])
		}
	}
}

func TestDefaultSidesFallback(t *testing.T) {
	tests := []struct {
		sides    int
		expected int
	}{
		{sides: 0, expected: DefaultSides},
		{sides: -4, expected: DefaultSides},
		{sides: 8, expected: 8},
	}

	for _, tt := range tests {
		if got := New(tt.sides, nil).Sides(); got != tt.expected {
			t.Errorf("New(%d).Sides() = %d, want %d", tt.sides, got, tt.expected)
		}
	}

	if Default().Sides() != 6 {
		t.Errorf("Default().Sides() = %d, want 6", Default().Sides())
	}
}

func TestSeededDeterminism(t *testing.T) {
	a := NewSeeded(6, 12345)
	b := NewSeeded(6, 12345)

	for i := 0; i < 50; i++ {
		if ra, rb := a.Roll(), b.Roll(); ra != rb {
			t.Fatalf("roll %d mismatch: %d vs %d", i, ra, rb)
		}
	}
}

func TestScripted(t *testing.T) {
	s := NewScripted(3, 6, 49)

	if s.Sides() != 49 {
		t.Errorf("Sides() = %d, want 49", s.Sides())
	}

	expected := []int{3, 6, 49, 3}
	for i, want := range expected {
		if got := s.Roll(); got != want {
			t.Errorf("Roll() #%d = %d, want %d", i, got, want)
		}
	}
}

func TestScriptedEmpty(t *testing.T) {
	s := NewScripted()
	if got := s.Roll(); got != 1 {
		t.Errorf("empty script Roll() = %d, want 1", got)
	}
	if s.Sides() != DefaultSides {
		t.Errorf("empty script Sides() = %d, want %d", s.Sides(), DefaultSides)
	}
}

func TestInterfaceSatisfied(t *testing.T) {
	var _ Roller = (*Dice)(nil)
	var _ Roller = (*Scripted)(nil)
}
