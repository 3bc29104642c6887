package player

import (
	"errors"
	"testing"
)

func TestMoveByClamps(t *testing.T) {
	for start := 0; start <= 100; start += 7 {
		for roll := 1; roll <= 12; roll++ {
			p := New("A", "red", 1, false)
			p.MoveTo(start)
			p.MoveBy(roll)

			want := start + roll
			if want > 100 {
				want = 100
			}
			if p.Position() != want {
				t.Errorf("MoveBy(%d) from %d = %d, want %d", roll, start, p.Position(), want)
			}
		}
	}
}

func TestMoveToBounds(t *testing.T) {
	tests := []struct {
		square   int
		expected int
	}{
		{square: 0, expected: 0},
		{square: 42, expected: 42},
		{square: 100, expected: 100},
		{square: 150, expected: 100},
		{square: -5, expected: 0},
	}

	for _, tt := range tests {
		p := New("A", "red", 1, false)
		p.MoveTo(tt.square)
		if p.Position() != tt.expected {
			t.Errorf("MoveTo(%d) = %d, want %d", tt.square, p.Position(), tt.expected)
		}
	}
}

func TestControl(t *testing.T) {
	human := New("Ann", "red", 1, false)
	bot := New("CPU", "blue", 2, true)

	if human.IsBot() || human.Control() != Human {
		t.Errorf("human player reports control %v", human.Control())
	}
	if !bot.IsBot() || bot.Control() != Bot {
		t.Errorf("bot player reports control %v", bot.Control())
	}
	if Bot.String() != "Bot" || Human.String() != "Human" {
		t.Error("unexpected Control.String()")
	}
}

func TestRosterSingleHumanGetsBot(t *testing.T) {
	players, err := Roster(RosterOptions{Humans: []string{"Ann"}})
	if err != nil {
		t.Fatalf("Roster() failed: %v", err)
	}

	if len(players) != 2 {
		t.Fatalf("expected 2 players, got %d", len(players))
	}

	bot := players[1]
	if !bot.IsBot() || bot.Name != BotName {
		t.Errorf("second player should be the CPU bot, got %v", bot)
	}
	if bot.Color != "blue" {
		t.Errorf("bot colour = %q, want first unused palette colour blue", bot.Color)
	}
	if bot.Number != 2 {
		t.Errorf("bot number = %d, want 2", bot.Number)
	}
}

func TestRosterHumans(t *testing.T) {
	players, err := Roster(RosterOptions{Humans: []string{"Ann", " ", "Cy"}})
	if err != nil {
		t.Fatalf("Roster() failed: %v", err)
	}

	wantNames := []string{"Ann", "P2", "Cy"}
	wantColors := []string{"red", "blue", "green"}
	for i, p := range players {
		if p.Name != wantNames[i] {
			t.Errorf("player %d name = %q, want %q", i, p.Name, wantNames[i])
		}
		if p.Color != wantColors[i] {
			t.Errorf("player %d colour = %q, want %q", i, p.Color, wantColors[i])
		}
		if p.Number != i+1 {
			t.Errorf("player %d number = %d, want %d", i, p.Number, i+1)
		}
		if p.IsBot() {
			t.Errorf("player %d should be human", i)
		}
		if p.Position() != 0 {
			t.Errorf("player %d should start off-board", i)
		}
	}
}

func TestRosterBotsOnly(t *testing.T) {
	players, err := Roster(RosterOptions{Bots: 3})
	if err != nil {
		t.Fatalf("Roster() failed: %v", err)
	}

	if len(players) != 3 {
		t.Fatalf("expected 3 players, got %d", len(players))
	}
	if players[0].Name != "CPU 1" || players[2].Name != "CPU 3" {
		t.Errorf("unexpected bot names: %q, %q", players[0].Name, players[2].Name)
	}
}

func TestRosterCount(t *testing.T) {
	tests := []struct {
		name string
		opts RosterOptions
	}{
		{name: "nobody", opts: RosterOptions{}},
		{name: "five humans", opts: RosterOptions{Humans: []string{"a", "b", "c", "d", "e"}}},
		{name: "too many bots", opts: RosterOptions{Humans: []string{"a"}, Bots: 4}},
		{name: "one bot alone", opts: RosterOptions{Bots: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Roster(tt.opts)
			if !errors.Is(err, ErrPlayerCount) {
				t.Errorf("Roster() error = %v, want ErrPlayerCount", err)
			}
		})
	}
}
