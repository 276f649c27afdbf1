// Package storage provides SQLite-based persistence for finished games.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/Abdur667/CS182-Final/internal/board"
	"github.com/Abdur667/CS182-Final/internal/game"
	"github.com/Abdur667/CS182-Final/internal/pieces"
)

// Store manages the SQLite database connection for game reports.
type Store struct {
	db *sql.DB
}

// Meta is run information that is not part of a game report.
type Meta struct {
	Seed    int64
	Agents  map[pieces.Player]string
	LogPath string
}

// GameRecord is one stored game.
type GameRecord struct {
	ID        string
	Winner    PlayerResult
	Turns     int
	Seed      int64
	LogPath   string
	EndedAt   time.Time
	CreatedAt time.Time
	Players   []PlayerResult // seat order
}

// PlayerResult is one player's line in a stored game.
type PlayerResult struct {
	Seat        int
	Name        string
	Color       string
	Agent       string
	Points      int
	Settlements int
	Cities      int
	Roads       int
	// Production counts adjacent tiles per resource, cities twice.
	Production map[board.Resource]int
}

// PlayerStats aggregates every stored game of one player name.
type PlayerStats struct {
	Name      string
	Games     int
	Wins      int
	AvgPoints float64
	LastPlay  time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS games (
			id TEXT PRIMARY KEY,
			winner_seat INTEGER NOT NULL,
			turns INTEGER NOT NULL,
			seed INTEGER NOT NULL DEFAULT 0,
			log_path TEXT NOT NULL DEFAULT '',
			ended_at TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_games_ended_at ON games(ended_at DESC);

		CREATE TABLE IF NOT EXISTS game_players (
			game_id TEXT NOT NULL REFERENCES games(id) ON DELETE CASCADE,
			seat INTEGER NOT NULL,
			name TEXT NOT NULL,
			color TEXT NOT NULL,
			agent TEXT NOT NULL DEFAULT '',
			points INTEGER NOT NULL DEFAULT 0,
			settlements INTEGER NOT NULL DEFAULT 0,
			cities INTEGER NOT NULL DEFAULT 0,
			roads INTEGER NOT NULL DEFAULT 0,
			wood INTEGER NOT NULL DEFAULT 0,
			brick INTEGER NOT NULL DEFAULT 0,
			wheat INTEGER NOT NULL DEFAULT 0,
			sheep INTEGER NOT NULL DEFAULT 0,
			ore INTEGER NOT NULL DEFAULT 0,
			PRIMARY KEY (game_id, seat)
		);
		CREATE INDEX IF NOT EXISTS idx_game_players_name ON game_players(name);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveReport records a finished game and returns its generated ID.
func (s *Store) SaveReport(rep *game.Report, meta Meta) (string, error) {
	if rep == nil {
		return "", errors.New("storage: nil report")
	}
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("storage: cannot generate game ID: %w", err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return "", fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO games (id, winner_seat, turns, seed, log_path, ended_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		id.String(), rep.Winner.Seat, rep.Turns, meta.Seed, meta.LogPath,
		rep.EndedAt.UTC().Format(endedAtLayout),
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save game: %w", err)
	}

	for _, p := range rep.Players {
		r := resultFor(rep, p, meta.Agents[p])
		_, err := tx.Exec(
			`INSERT INTO game_players
			 (game_id, seat, name, color, agent, points, settlements, cities, roads, wood, brick, wheat, sheep, ore)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			id.String(), r.Seat, r.Name, r.Color, r.Agent, r.Points,
			r.Settlements, r.Cities, r.Roads,
			r.Production[board.ResourceWood],
			r.Production[board.ResourceBrick],
			r.Production[board.ResourceWheat],
			r.Production[board.ResourceSheep],
			r.Production[board.ResourceOre],
		)
		if err != nil {
			return "", fmt.Errorf("storage: cannot save player %s: %w", p, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("storage: cannot commit game: %w", err)
	}
	return id.String(), nil
}

func resultFor(rep *game.Report, p pieces.Player, agent string) PlayerResult {
	r := PlayerResult{
		Seat:       p.Seat,
		Name:       p.Name,
		Color:      p.Color,
		Agent:      agent,
		Points:     rep.Points[p],
		Production: rep.ResourceCounts(p),
	}
	for _, pl := range rep.Pieces[p] {
		switch pl.Piece.Type {
		case pieces.Settlement:
			r.Settlements++
		case pieces.City:
			r.Cities++
		case pieces.Road:
			r.Roads++
		}
	}
	return r
}

// GameByID retrieves a stored game. Returns nil if it does not exist.
func (s *Store) GameByID(id string) (*GameRecord, error) {
	var rec GameRecord
	var winnerSeat int
	var endedAt string
	var createdAt any

	err := s.db.QueryRow(
		`SELECT id, winner_seat, turns, seed, log_path, ended_at, created_at
		 FROM games
		 WHERE id = ?`,
		id,
	).Scan(&rec.ID, &winnerSeat, &rec.Turns, &rec.Seed, &rec.LogPath, &endedAt, &createdAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query game: %w", err)
	}
	rec.EndedAt, _ = time.Parse(time.RFC3339Nano, endedAt)
	rec.CreatedAt = parseTime(createdAt)

	if err := s.loadPlayers(&rec, winnerSeat); err != nil {
		return nil, err
	}
	return &rec, nil
}

// RecentGames retrieves the most recently finished games, newest first.
func (s *Store) RecentGames(limit int) ([]GameRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, winner_seat, turns, seed, log_path, ended_at, created_at
		 FROM games
		 ORDER BY ended_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query games: %w", err)
	}
	defer rows.Close()

	var records []GameRecord
	var winners []int
	for rows.Next() {
		var rec GameRecord
		var winnerSeat int
		var endedAt string
		var createdAt any
		if err := rows.Scan(&rec.ID, &winnerSeat, &rec.Turns, &rec.Seed, &rec.LogPath, &endedAt, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		rec.EndedAt, _ = time.Parse(time.RFC3339Nano, endedAt)
		rec.CreatedAt = parseTime(createdAt)
		records = append(records, rec)
		winners = append(winners, winnerSeat)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	rows.Close()

	for i := range records {
		if err := s.loadPlayers(&records[i], winners[i]); err != nil {
			return nil, err
		}
	}
	return records, nil
}

func (s *Store) loadPlayers(rec *GameRecord, winnerSeat int) error {
	rows, err := s.db.Query(
		`SELECT seat, name, color, agent, points, settlements, cities, roads,
		        wood, brick, wheat, sheep, ore
		 FROM game_players
		 WHERE game_id = ?
		 ORDER BY seat`,
		rec.ID,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot query players: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var r PlayerResult
		var wood, brick, wheat, sheep, ore int
		if err := rows.Scan(
			&r.Seat, &r.Name, &r.Color, &r.Agent, &r.Points,
			&r.Settlements, &r.Cities, &r.Roads,
			&wood, &brick, &wheat, &sheep, &ore,
		); err != nil {
			return fmt.Errorf("storage: cannot scan player: %w", err)
		}
		r.Production = make(map[board.Resource]int)
		for res, n := range map[board.Resource]int{
			board.ResourceWood:  wood,
			board.ResourceBrick: brick,
			board.ResourceWheat: wheat,
			board.ResourceSheep: sheep,
			board.ResourceOre:   ore,
		} {
			if n > 0 {
				r.Production[res] = n
			}
		}
		if r.Seat == winnerSeat {
			rec.Winner = r
		}
		rec.Players = append(rec.Players, r)
	}
	return rows.Err()
}

// PlayerStats aggregates wins and points per player name, most wins first.
func (s *Store) PlayerStats() ([]PlayerStats, error) {
	rows, err := s.db.Query(
		`SELECT p.name, COUNT(*), SUM(CASE WHEN p.seat = g.winner_seat THEN 1 ELSE 0 END),
		        AVG(p.points), MAX(g.ended_at)
		 FROM game_players p
		 JOIN games g ON g.id = p.game_id
		 GROUP BY p.name
		 ORDER BY 3 DESC, p.name`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get player stats: %w", err)
	}
	defer rows.Close()

	var stats []PlayerStats
	for rows.Next() {
		var st PlayerStats
		var last string
		if err := rows.Scan(&st.Name, &st.Games, &st.Wins, &st.AvgPoints, &last); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.LastPlay, _ = time.Parse(time.RFC3339Nano, last)
		stats = append(stats, st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return stats, nil
}

// ClearGames deletes every stored game.
func (s *Store) ClearGames() error {
	if _, err := s.db.Exec("DELETE FROM game_players; DELETE FROM games;"); err != nil {
		return fmt.Errorf("storage: cannot clear games: %w", err)
	}
	return nil
}

// endedAtLayout keeps every ended_at the same width so that text order is
// time order. time.RFC3339Nano parses it back.
const endedAtLayout = "2006-01-02T15:04:05.000000000Z07:00"

// parseTime handles both time.Time and string datetimes.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
