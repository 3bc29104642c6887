package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-ladders/internal/board"
)

func TestRegisterAndCreate(t *testing.T) {
	Register("test_tiny", func() Layout {
		return Layout{
			ID:      "test_tiny",
			Title:   "Tiny",
			Snakes:  map[int]int{50: 10},
			Ladders: map[int]int{2: 98},
		}
	})

	if !Exists("test_tiny") {
		t.Fatal("Exists() = false after Register")
	}

	l, err := Create("test_tiny")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if l.Title != "Tiny" {
		t.Errorf("Title = %q, want Tiny", l.Title)
	}
	if l.Sides() != 6 {
		t.Errorf("Sides() = %d, want default 6", l.Sides())
	}

	b, err := l.Board()
	if err != nil {
		t.Fatalf("Board() failed: %v", err)
	}
	if b.Destination(2) != 98 {
		t.Errorf("Destination(2) = %d, want 98", b.Destination(2))
	}

	found := false
	for _, info := range List() {
		if info.ID == "test_tiny" && info.Title == "Tiny" {
			found = true
		}
	}
	if !found {
		t.Error("List() does not include registered layout")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	f := func() Layout { return Layout{ID: "test_dup", Title: "Dup"} }
	Register("test_dup", f)

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("test_dup", f)
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no_such_layout"); err == nil {
		t.Error("Create() of unknown layout should fail")
	}
	if Exists("no_such_layout") {
		t.Error("Exists() of unknown layout should be false")
	}
}

func TestBoardRejectsInvalidLayout(t *testing.T) {
	l := Layout{ID: "broken", Snakes: map[int]int{10: 40}}

	_, err := l.Board()
	if !errors.Is(err, board.ErrInvalidLink) {
		t.Errorf("Board() error = %v, want ErrInvalidLink", err)
	}
}

func TestListSorted(t *testing.T) {
	Register("test_zz", func() Layout { return Layout{ID: "test_zz", Title: "ZZ"} })
	Register("test_aa", func() Layout { return Layout{ID: "test_aa", Title: "AA"} })

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID >= list[i].ID {
			t.Errorf("List() not sorted: %s >= %s", list[i-1].ID, list[i].ID)
		}
	}
}
