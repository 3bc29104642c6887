package tui

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-ladders/internal/board"
	"github.com/vovakirdan/tui-ladders/internal/core"
	"github.com/vovakirdan/tui-ladders/internal/engine"
)

// Board view geometry. Each square is cellW x cellH characters:
// the first line holds the square number and link, the second the tokens.
const (
	cellW  = 8
	cellH  = 2
	boardW = board.Size * cellW
	boardH = board.Size * cellH
	panelH = 4
	viewW  = boardW
	viewH  = boardH + panelH
)

// boardFrame is everything the board view needs for one frame.
type boardFrame struct {
	snap      engine.Snapshot
	positions []int // Displayed token squares, may lag the snapshot while animating
	dice      int   // Face to show, 0 for none
	rolling   bool
	lastTurn  string
	message   string
}

// drawBoard renders the board grid and the status panel into s.
func drawBoard(s *core.Screen, f boardFrame) {
	s.Clear()

	links := make(map[int]board.Link)
	for _, l := range append(f.snap.Snakes, f.snap.Ladders...) {
		if _, taken := links[l.Origin]; !taken {
			links[l.Origin] = l
		}
	}

	for row := 0; row < board.Size; row++ {
		for col := 0; col < board.Size; col++ {
			sq := board.SquareAt(row, col)
			x, y := col*cellW, row*cellH

			numColor := core.ColorGray
			if sq == board.FinalSquare {
				numColor = core.ColorBrightYellow
			}
			s.DrawTextColored(x+1, y, fmt.Sprintf("%3d", sq), numColor)

			if l, ok := links[sq]; ok {
				glyph, c := "↑", core.ColorGreen
				if l.Kind == board.KindSnake {
					glyph, c = "↓", core.ColorRed
				}
				s.DrawTextColored(x+4, y, fmt.Sprintf("%s%d", glyph, l.Destination), c)
			}
		}
	}

	// Tokens: each player has a fixed slot inside the cell
	for i, p := range f.snap.Players {
		pos := p.Position
		if i < len(f.positions) {
			pos = f.positions[i]
		}
		if !board.OnBoard(pos) {
			continue
		}
		row, col := board.Cell(pos)
		glyph := rune('0' + p.Number%10)
		if f.snap.WinnerIndex == i {
			glyph = '★'
		}
		s.SetColored(col*cellW+1+i, row*cellH+1, glyph, core.ParseColor(p.Color))
	}

	drawPanel(s, f, boardH)
}

// drawPanel renders the status lines under the board starting at row y.
func drawPanel(s *core.Screen, f boardFrame, y int) {
	snap := f.snap

	// Line 1: turn, whose move, dice
	var status string
	if w, ok := snap.Winner(); ok {
		status = fmt.Sprintf("Turn %d │ %s wins!", snap.Turn, w.Name)
	} else {
		a := snap.Active()
		status = fmt.Sprintf("Turn %d │ %s to roll", snap.Turn, a.Name)
		if a.Bot {
			status += " (bot)"
		}
	}
	if snap.Phase == engine.PhasePaused {
		status += " │ PAUSED"
	}
	s.DrawText(0, y, status)

	if f.dice > 0 {
		label := fmt.Sprintf("[ %d ]", f.dice)
		c := core.ColorBrightWhite
		if f.rolling {
			c = core.ColorGray
		}
		s.DrawTextColored(viewW-len(label), y, label, c)
	}

	// Line 2: roster
	x := 0
	for i, p := range snap.Players {
		marker := "  "
		if i == snap.ActiveIndex && snap.WinnerIndex < 0 {
			marker = "▶ "
		}
		pos := p.Position
		if i < len(f.positions) {
			pos = f.positions[i]
		}
		entry := fmt.Sprintf("%s%d %s@%d", marker, p.Number, p.Name, pos)
		s.DrawTextColored(x, y+1, entry, core.ParseColor(p.Color))
		x += len([]rune(entry)) + 2
	}

	// Line 3: last move, line 4: message
	s.DrawTextColored(0, y+2, f.lastTurn, core.ColorWhite)
	s.DrawTextColored(0, y+3, f.message, core.ColorYellow)
}

// describeTurn returns a one-line account of a resolved turn.
func describeTurn(name string, r engine.TurnResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s rolled %d: %d → %d", name, r.Roll, r.From, r.Landed)
	if r.Link != nil {
		switch r.Link.Kind {
		case board.KindSnake:
			fmt.Fprintf(&b, ", bitten by a snake down to %d", r.Final)
		case board.KindLadder:
			fmt.Fprintf(&b, ", climbed a ladder to %d", r.Final)
		}
	}
	if r.Won {
		b.WriteString(", and wins!")
	}
	return b.String()
}

// stepPath returns the squares a token visits during a turn, in order.
// The last element is always the final square.
func stepPath(r engine.TurnResult) []int {
	var path []int
	for sq := r.From + 1; sq <= r.Landed; sq++ {
		path = append(path, sq)
	}
	if r.Final != r.Landed || len(path) == 0 {
		path = append(path, r.Final)
	}
	return path
}
