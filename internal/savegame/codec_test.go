package savegame

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-ladders/internal/board"
	"github.com/vovakirdan/tui-ladders/internal/dice"
	"github.com/vovakirdan/tui-ladders/internal/engine"
	"github.com/vovakirdan/tui-ladders/internal/player"
)

func classicBoard(t *testing.T) *board.Board {
	t.Helper()

	b, err := board.New(
		map[int]int{34: 1, 25: 5, 47: 19, 65: 52, 87: 57, 91: 61, 99: 69},
		map[int]int{3: 51, 6: 27, 20: 70, 36: 55, 63: 95, 68: 98},
	)
	require.NoError(t, err)
	return b
}

func playedGame(t *testing.T) *engine.Game {
	t.Helper()

	players := []*player.Player{
		player.New("Ann", "red", 1, false),
		player.New("Bob", "blue", 2, false),
		player.New("CPU", "green", 3, true),
	}
	g, err := engine.New(classicBoard(t), players, dice.NewScripted(3, 5, 2, 4))
	require.NoError(t, err)
	g.Start()
	for i := 0; i < 4; i++ {
		_, ok := g.TakeTurn()
		require.True(t, ok)
	}
	return g
}

func TestSaveCapturesState(t *testing.T) {
	g := playedGame(t)
	rec := Save(g)

	assert.Equal(t, 1, rec.CurrentIndex)
	assert.Equal(t, 2, rec.Turn)
	require.Len(t, rec.Players, 3)
	assert.Equal(t, PlayerRecord{Name: "Ann", Color: "red", Number: 1, Position: 55, IsBot: false}, rec.Players[0])
	assert.Equal(t, 5, rec.Players[1].Position)
	assert.True(t, rec.Players[2].IsBot)
	assert.Len(t, rec.Snakes, 7)
	assert.Len(t, rec.Ladders, 6)
	assert.Equal(t, [2]int{3, 51}, rec.Ladders[0])
}

func TestEncodeFormat(t *testing.T) {
	data, err := Encode(Save(playedGame(t)))
	require.NoError(t, err)

	text := string(data)
	assert.True(t, strings.HasPrefix(text, "{\n    \"current_index\": 1,\n    \"turn\": 2,\n    \"players\": ["), text)
	assert.Contains(t, text, "\"is_bot\": true")

	// Keys appear in wire order
	order := []string{"current_index", "turn", "players", "snakes", "ladders"}
	last := -1
	for _, k := range order {
		idx := strings.Index(text, "\""+k+"\"")
		require.Greater(t, idx, last, "key %s out of order", k)
		last = idx
	}
}

func TestEncodeEmptyLinks(t *testing.T) {
	data, err := Encode(Record{Players: []PlayerRecord{{Name: "A", Color: "red", Number: 1}}})
	require.NoError(t, err)
	assert.Contains(t, string(data), "\"snakes\": []")
	assert.Contains(t, string(data), "\"ladders\": []")
}

func TestRoundTripIsByteIdentical(t *testing.T) {
	g := playedGame(t)

	first, err := Encode(Save(g))
	require.NoError(t, err)

	rec, err := Decode(first)
	require.NoError(t, err)
	loaded, err := Load(rec, board.Empty(), dice.Default())
	require.NoError(t, err)

	second, err := Encode(Save(loaded))
	require.NoError(t, err)
	assert.Equal(t, string(first), string(second))

	assert.Equal(t, g.ActiveIndex(), loaded.ActiveIndex())
	assert.Equal(t, g.Turn(), loaded.Turn())
	for i, p := range g.Players() {
		assert.Equal(t, p.Position(), loaded.Players()[i].Position())
		assert.Equal(t, p.IsBot(), loaded.Players()[i].IsBot())
	}
	assert.Equal(t, g.Board().Links(), loaded.Board().Links())
	assert.Equal(t, engine.PhaseWaitingRoll, loaded.Phase())
}

func TestDecodeMissingIsBotDefaultsFalse(t *testing.T) {
	data := `{"current_index": 0, "turn": 1, "players": [
		{"name": "Ann", "color": "red", "number": 1, "position": 12},
		{"name": "Bob", "color": "blue", "number": 2, "position": 4, "is_bot": true}
	], "snakes": [], "ladders": []}`

	rec, err := Decode([]byte(data))
	require.NoError(t, err)
	assert.False(t, rec.Players[0].IsBot)
	assert.True(t, rec.Players[1].IsBot)
}

func TestDecodeOptionalTopLevelFields(t *testing.T) {
	rec, err := Decode([]byte(`{"players": [{"name": "A", "color": "red", "number": 1, "position": 0}]}`))
	require.NoError(t, err)
	assert.Equal(t, 0, rec.CurrentIndex)
	assert.Equal(t, 0, rec.Turn)
	assert.Empty(t, rec.Snakes)
	assert.Empty(t, rec.Ladders)
}

func TestDecodeErrors(t *testing.T) {
	okPlayer := `{"name": "A", "color": "red", "number": 1, "position": 3}`

	tests := []struct {
		name string
		data string
		want error
	}{
		{name: "not json", data: `{"players": [`, want: ErrCorrupt},
		{name: "empty input", data: ``, want: ErrCorrupt},
		{name: "no players key", data: `{"turn": 1}`, want: ErrInvalidSchema},
		{name: "empty players", data: `{"players": []}`, want: ErrInvalidSchema},
		{name: "missing name", data: `{"players": [{"color": "red", "number": 1, "position": 3}]}`, want: ErrInvalidSchema},
		{name: "missing position", data: `{"players": [{"name": "A", "color": "red", "number": 1}]}`, want: ErrInvalidSchema},
		{name: "null player", data: `{"players": [null]}`, want: ErrInvalidSchema},
		{name: "wrong type", data: `{"players": [{"name": 5, "color": "red", "number": 1, "position": 3}]}`, want: ErrInvalidSchema},
		{name: "players not a list", data: `{"players": {}}`, want: ErrInvalidSchema},
		{name: "short pair", data: `{"players": [` + okPlayer + `], "snakes": [[34]]}`, want: ErrInvalidSchema},
		{name: "long pair", data: `{"players": [` + okPlayer + `], "ladders": [[3, 51, 9]]}`, want: ErrInvalidSchema},
		{name: "position too high", data: `{"players": [{"name": "A", "color": "red", "number": 1, "position": 101}]}`, want: ErrInvalidSchema},
		{name: "position negative", data: `{"players": [{"name": "A", "color": "red", "number": 1, "position": -1}]}`, want: ErrInvalidSchema},
		{name: "index out of range", data: `{"current_index": 1, "players": [` + okPlayer + `]}`, want: ErrInvalidSchema},
		{name: "negative index", data: `{"current_index": -1, "players": [` + okPlayer + `]}`, want: ErrInvalidSchema},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.data))
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestLoadRejectsInvalidLinksWithoutTouchingBoard(t *testing.T) {
	b := classicBoard(t)
	before := b.Links()

	rec := Record{
		Players: []PlayerRecord{{Name: "A", Color: "red", Number: 1}},
		Snakes:  [][2]int{{40, 2}, {10, 60}}, // second snake leads up
	}

	_, err := Load(rec, b, nil)
	require.ErrorIs(t, err, ErrInvalidSchema)
	assert.ErrorIs(t, err, board.ErrInvalidLink)
	assert.Equal(t, before, b.Links())
}

func TestLoadReplacesBoardLinks(t *testing.T) {
	b := classicBoard(t)

	rec := Record{
		CurrentIndex: 1,
		Turn:         4,
		Players: []PlayerRecord{
			{Name: "A", Color: "red", Number: 1, Position: 10},
			{Name: "B", Color: "blue", Number: 2, Position: 22},
		},
		Snakes:  [][2]int{{50, 5}},
		Ladders: [][2]int{{8, 88}, {9, 90}},
	}

	g, err := Load(rec, b, dice.NewScripted(6))
	require.NoError(t, err)
	assert.Same(t, b, g.Board())
	assert.Len(t, b.Snakes(), 1)
	assert.Len(t, b.Ladders(), 2)
	assert.Equal(t, 88, b.Destination(8))
	assert.Equal(t, 34, b.Destination(34), "old links are gone")

	// The loaded game keeps playing from the saved index
	res, ok := g.TakeTurn()
	require.True(t, ok)
	assert.Equal(t, 1, res.PlayerIndex)
	assert.Equal(t, 28, res.Final)
}

func TestLoadFinishedGame(t *testing.T) {
	rec := Record{
		CurrentIndex: 0,
		Turn:         30,
		Players: []PlayerRecord{
			{Name: "A", Color: "red", Number: 1, Position: 64},
			{Name: "B", Color: "blue", Number: 2, Position: 100},
		},
	}

	w, ok := rec.Winner()
	require.True(t, ok)
	assert.Equal(t, "B", w.Name)

	g, err := Load(rec, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, engine.PhaseGameOver, g.Phase())
	require.NotNil(t, g.Winner())
	assert.Equal(t, "B", g.Winner().Name)
}
