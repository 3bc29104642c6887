package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ResultEntry is one finished game.
type ResultEntry struct {
	ID          int64
	GameID      string // UUID assigned when the game started
	Layout      string
	Winner      string
	WinnerColor string
	WinnerBot   bool
	Turns       int
	Players     int
	Bots        int
	CreatedAt   time.Time
}

// LeaderboardEntry aggregates wins per player name.
type LeaderboardEntry struct {
	Name      string
	Wins      int
	BestTurns int // Fewest turns in a win
	LastWin   time.Time
}

// Stats summarises all recorded games.
type Stats struct {
	Games     int
	AvgTurns  float64
	BotWins   int
	FastestID string
	Fastest   int
}

// NewGameID returns a fresh identifier for a game session.
func NewGameID() string {
	return uuid.NewString()
}

// SaveResult records a finished game. An empty GameID gets a new UUID.
// Returns the ID of the inserted record.
func (s *Store) SaveResult(r ResultEntry) (int64, error) {
	if r.GameID == "" {
		r.GameID = NewGameID()
	} else if _, err := uuid.Parse(r.GameID); err != nil {
		return 0, fmt.Errorf("storage: invalid game id %q: %w", r.GameID, err)
	}

	result, err := s.db.Exec(
		`INSERT INTO results
		 (game_id, layout, winner, winner_color, winner_bot, turns, players, bots)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.GameID, r.Layout, r.Winner, r.WinnerColor, r.WinnerBot, r.Turns, r.Players, r.Bots,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save result: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentResults retrieves the most recent finished games, newest first.
func (s *Store) RecentResults(limit int) ([]ResultEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, layout, winner, winner_color, winner_bot, turns, players, bots, created_at
		 FROM results
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var entries []ResultEntry
	for rows.Next() {
		var e ResultEntry
		var createdAt any
		if err := rows.Scan(
			&e.ID, &e.GameID, &e.Layout, &e.Winner, &e.WinnerColor, &e.WinnerBot,
			&e.Turns, &e.Players, &e.Bots, &createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// ResultByGameID retrieves one finished game. Returns nil if there is none.
func (s *Store) ResultByGameID(gameID string) (*ResultEntry, error) {
	var e ResultEntry
	var createdAt any

	err := s.db.QueryRow(
		`SELECT id, game_id, layout, winner, winner_color, winner_bot, turns, players, bots, created_at
		 FROM results WHERE game_id = ?`,
		gameID,
	).Scan(
		&e.ID, &e.GameID, &e.Layout, &e.Winner, &e.WinnerColor, &e.WinnerBot,
		&e.Turns, &e.Players, &e.Bots, &createdAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query result: %w", err)
	}

	e.CreatedAt = parseTime(createdAt)
	return &e, nil
}

// Leaderboard ranks players by wins, then by their fastest win.
func (s *Store) Leaderboard(limit int) ([]LeaderboardEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT winner, COUNT(*), MIN(turns), MAX(created_at)
		 FROM results
		 GROUP BY winner
		 ORDER BY COUNT(*) DESC, MIN(turns) ASC, winner ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query leaderboard: %w", err)
	}
	defer rows.Close()

	var entries []LeaderboardEntry
	for rows.Next() {
		var e LeaderboardEntry
		var lastWin any
		if err := rows.Scan(&e.Name, &e.Wins, &e.BestTurns, &lastWin); err != nil {
			return nil, fmt.Errorf("storage: cannot scan leaderboard row: %w", err)
		}
		e.LastWin = parseTime(lastWin)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// GetStats retrieves aggregated statistics over all results.
func (s *Store) GetStats() (*Stats, error) {
	stats := &Stats{}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(AVG(turns), 0), COALESCE(SUM(winner_bot), 0)
		 FROM results`,
	).Scan(&stats.Games, &stats.AvgTurns, &stats.BotWins)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}

	err = s.db.QueryRow(
		`SELECT game_id, turns FROM results ORDER BY turns ASC, id ASC LIMIT 1`,
	).Scan(&stats.FastestID, &stats.Fastest)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get fastest game: %w", err)
	}

	return stats, nil
}

// ClearResults deletes all recorded games.
func (s *Store) ClearResults() error {
	_, err := s.db.Exec("DELETE FROM results")
	if err != nil {
		return fmt.Errorf("storage: cannot clear results: %w", err)
	}
	return nil
}
