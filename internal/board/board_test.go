package board

import (
	"errors"
	"testing"
)

var (
	classicLadders = map[int]int{3: 51, 6: 27, 20: 70, 36: 55, 63: 95, 68: 98}
	classicSnakes  = map[int]int{34: 1, 25: 5, 47: 19, 65: 52, 87: 57, 91: 61, 99: 69}
)

func TestNewClassic(t *testing.T) {
	b, err := New(classicSnakes, classicLadders)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	if got := len(b.Snakes()); got != 7 {
		t.Errorf("Snakes() len = %d, want 7", got)
	}
	if got := len(b.Ladders()); got != 6 {
		t.Errorf("Ladders() len = %d, want 6", got)
	}

	// Insertion order follows ascending origin
	snakes := b.Snakes()
	for i := 1; i < len(snakes); i++ {
		if snakes[i-1].Origin >= snakes[i].Origin {
			t.Errorf("snakes not ordered: %v before %v", snakes[i-1], snakes[i])
		}
	}
}

func TestResolveLanding(t *testing.T) {
	b, err := New(classicSnakes, classicLadders)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	tests := []struct {
		square   int
		expected int
		kind     Kind
		linked   bool
	}{
		{square: 3, expected: 51, kind: KindLadder, linked: true},
		{square: 68, expected: 98, kind: KindLadder, linked: true},
		{square: 99, expected: 69, kind: KindSnake, linked: true},
		{square: 34, expected: 1, kind: KindSnake, linked: true},
		{square: 4, expected: 4},
		{square: 100, expected: 100},
		{square: 0, expected: 0},
	}

	for _, tt := range tests {
		got, link := b.ResolveLanding(tt.square)
		if got != tt.expected {
			t.Errorf("ResolveLanding(%d) = %d, want %d", tt.square, got, tt.expected)
		}
		if (link != nil) != tt.linked {
			t.Errorf("ResolveLanding(%d) link = %v, want linked=%v", tt.square, link, tt.linked)
			continue
		}
		if link != nil && link.Kind != tt.kind {
			t.Errorf("ResolveLanding(%d) kind = %v, want %v", tt.square, link.Kind, tt.kind)
		}
	}
}

func TestResolveLandingSingleHop(t *testing.T) {
	b, err := New(nil, map[int]int{10: 20, 20: 80})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	if got := b.Destination(10); got != 20 {
		t.Errorf("Destination(10) = %d, want 20 (no chaining)", got)
	}
	if got := b.Destination(20); got != 80 {
		t.Errorf("Destination(20) = %d, want 80", got)
	}
}

func TestSnakeBeforeLadder(t *testing.T) {
	b := Empty()
	if err := b.AddLink(40, 90, KindLadder); err != nil {
		t.Fatalf("AddLink() failed: %v", err)
	}
	if err := b.AddLink(40, 10, KindSnake); err != nil {
		t.Fatalf("AddLink() failed: %v", err)
	}

	// Snake was added second but is still consulted first
	if got := b.Destination(40); got != 10 {
		t.Errorf("Destination(40) = %d, want 10 (snake precedence)", got)
	}
}

func TestFirstAddedWinsWithinKind(t *testing.T) {
	b := Empty()
	if err := b.AddLink(50, 60, KindLadder); err != nil {
		t.Fatalf("AddLink() failed: %v", err)
	}
	if err := b.AddLink(50, 90, KindLadder); err != nil {
		t.Fatalf("AddLink() failed: %v", err)
	}

	if got := b.Destination(50); got != 60 {
		t.Errorf("Destination(50) = %d, want 60 (first added wins)", got)
	}
	if got := len(b.Ladders()); got != 2 {
		t.Errorf("Ladders() len = %d, want 2 (duplicates are kept)", got)
	}
}

func TestAddLinkValidation(t *testing.T) {
	tests := []struct {
		name        string
		origin      int
		destination int
		kind        Kind
	}{
		{name: "origin below board", origin: 0, destination: 5, kind: KindLadder},
		{name: "destination above board", origin: 95, destination: 101, kind: KindLadder},
		{name: "negative destination", origin: 20, destination: -3, kind: KindSnake},
		{name: "self loop", origin: 40, destination: 40, kind: KindSnake},
		{name: "snake going up", origin: 10, destination: 30, kind: KindSnake},
		{name: "ladder going down", origin: 30, destination: 10, kind: KindLadder},
		{name: "unknown kind", origin: 10, destination: 30, kind: Kind(7)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Empty()
			err := b.AddLink(tt.origin, tt.destination, tt.kind)
			if !errors.Is(err, ErrInvalidLink) {
				t.Fatalf("AddLink(%d, %d) error = %v, want ErrInvalidLink", tt.origin, tt.destination, err)
			}
			if len(b.Links()) != 0 {
				t.Error("rejected link should not be stored")
			}
		})
	}
}

func TestNewRejectsInvalid(t *testing.T) {
	_, err := New(map[int]int{120: 4}, nil)
	if !errors.Is(err, ErrInvalidLink) {
		t.Fatalf("New() error = %v, want ErrInvalidLink", err)
	}

	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("New() error should be *ConfigError, got %T", err)
	}
	if cfgErr.Link.Origin != 120 {
		t.Errorf("ConfigError.Link.Origin = %d, want 120", cfgErr.Link.Origin)
	}
}

func TestClear(t *testing.T) {
	b, err := New(classicSnakes, classicLadders)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	b.Clear()

	if len(b.Links()) != 0 {
		t.Errorf("Links() after Clear = %v, want empty", b.Links())
	}
	if got := b.Destination(3); got != 3 {
		t.Errorf("Destination(3) after Clear = %d, want 3", got)
	}
}

func TestLinksAreCopies(t *testing.T) {
	b, err := New(classicSnakes, classicLadders)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	snakes := b.Snakes()
	snakes[0].Destination = 99

	if b.Snakes()[0].Destination == 99 {
		t.Error("Snakes() should return a copy")
	}
}

func TestCellRoundTrip(t *testing.T) {
	for sq := 1; sq <= FinalSquare; sq++ {
		row, col := Cell(sq)
		if row < 0 || row >= Size || col < 0 || col >= Size {
			t.Fatalf("Cell(%d) = (%d, %d) out of grid", sq, row, col)
		}
		if got := SquareAt(row, col); got != sq {
			t.Errorf("SquareAt(Cell(%d)) = %d", sq, got)
		}
	}
}

func TestCellLayout(t *testing.T) {
	tests := []struct {
		square   int
		row, col int
	}{
		{square: 1, row: 9, col: 0},
		{square: 10, row: 9, col: 9},
		{square: 11, row: 8, col: 9},
		{square: 20, row: 8, col: 0},
		{square: 91, row: 0, col: 9},
		{square: 100, row: 0, col: 0},
		{square: 0, row: -1, col: -1},
		{square: 101, row: -1, col: -1},
	}

	for _, tt := range tests {
		row, col := Cell(tt.square)
		if row != tt.row || col != tt.col {
			t.Errorf("Cell(%d) = (%d, %d), want (%d, %d)", tt.square, row, col, tt.row, tt.col)
		}
	}
}
