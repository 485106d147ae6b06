// Package storage provides SQLite-based persistence for the player
// profile and run history. Uses the pure-Go modernc.org/sqlite driver to
// avoid CGO dependencies.
package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/neonrift/neonrift/internal/config"
	"github.com/neonrift/neonrift/internal/profile"
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// RunRecord is one finished mission attempt in the history table.
type RunRecord struct {
	ID          string
	MissionID   int
	MissionName string
	Success     bool
	Score       int
	XpGained    int
	Accuracy    float64
	PeakStreak  int
	TimeLeft    float64
	CreatedAt   time.Time
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

// migrate creates the database schema if it doesn't exist. The profile is
// a single JSON document row so the save schema can evolve without
// migrations; run history is relational for querying.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS profiles (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			data TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			mission_id INTEGER NOT NULL,
			mission_name TEXT NOT NULL,
			success INTEGER NOT NULL,
			score INTEGER NOT NULL DEFAULT 0,
			xp_gained INTEGER NOT NULL DEFAULT 0,
			accuracy REAL NOT NULL DEFAULT 0,
			peak_streak INTEGER NOT NULL DEFAULT 0,
			time_left REAL NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_mission ON runs(mission_id, score DESC);
		CREATE INDEX IF NOT EXISTS idx_runs_recent ON runs(created_at DESC);
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

// LoadProfile returns the stored profile, or a fresh one when no save
// exists or the stored document no longer parses. Loaded profiles are
// normalized against cfg so saves from older versions gain any new
// inventory slots.
func (s *Store) LoadProfile(cfg config.PowerUpConfig) (*profile.Profile, error) {
	var data string
	err := s.db.QueryRow("SELECT data FROM profiles WHERE id = 1").Scan(&data)
	if err == sql.ErrNoRows {
		return profile.New(cfg), nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot load profile: %w", err)
	}

	var p profile.Profile
	if err := json.Unmarshal([]byte(data), &p); err != nil {
		// A corrupt save is not worth refusing to start over.
		return profile.New(cfg), nil
	}
	p.Normalize(cfg)
	return &p, nil
}

// SaveProfile upserts the profile document. Implements the engine's
// ProfileSaver interface.
func (s *Store) SaveProfile(p *profile.Profile) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("storage: cannot encode profile: %w", err)
	}

	_, err = s.db.Exec(
		`INSERT INTO profiles (id, data, updated_at) VALUES (1, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(id) DO UPDATE SET data = excluded.data, updated_at = CURRENT_TIMESTAMP`,
		string(data),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save profile: %w", err)
	}
	return nil
}

// SaveRun records a finished mission attempt. A missing ID is filled with
// a fresh UUID; the stored ID is returned.
func (s *Store) SaveRun(rec RunRecord) (string, error) {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}

	_, err := s.db.Exec(
		`INSERT INTO runs
		 (id, mission_id, mission_name, success, score, xp_gained, accuracy, peak_streak, time_left)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID,
		rec.MissionID,
		rec.MissionName,
		rec.Success,
		rec.Score,
		rec.XpGained,
		rec.Accuracy,
		rec.PeakStreak,
		rec.TimeLeft,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save run: %w", err)
	}
	return rec.ID, nil
}

// RecentRuns retrieves the most recent runs, newest first.
func (s *Store) RecentRuns(limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, mission_id, mission_name, success, score, xp_gained, accuracy, peak_streak, time_left, created_at
		 FROM runs
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var records []RunRecord
	for rows.Next() {
		rec, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// MissionRuns retrieves the best runs for one mission, highest score first.
func (s *Store) MissionRuns(missionID, limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, mission_id, mission_name, success, score, xp_gained, accuracy, peak_streak, time_left, created_at
		 FROM runs
		 WHERE mission_id = ?
		 ORDER BY score DESC
		 LIMIT ?`,
		missionID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query mission runs: %w", err)
	}
	defer rows.Close()

	var records []RunRecord
	for rows.Next() {
		rec, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// BestScore returns the highest score recorded for the given mission.
// Returns 0 if the mission was never attempted.
func (s *Store) BestScore(missionID int) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM runs WHERE mission_id = ?",
		missionID,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// RunStats contains aggregated run-history statistics.
type RunStats struct {
	TotalRuns   int
	Wins        int
	BestScore   int
	AvgAccuracy float64
}

// Stats retrieves aggregated statistics across all recorded runs.
func (s *Store) Stats() (*RunStats, error) {
	stats := &RunStats{}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(success), 0), COALESCE(MAX(score), 0), COALESCE(AVG(accuracy), 0)
		 FROM runs`,
	).Scan(&stats.TotalRuns, &stats.Wins, &stats.BestScore, &stats.AvgAccuracy)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get run stats: %w", err)
	}

	return stats, nil
}

// scanRun reads one runs row. The driver may hand created_at back as
// either time.Time or its string form.
func scanRun(rows *sql.Rows) (RunRecord, error) {
	var rec RunRecord
	var createdAt any
	if err := rows.Scan(
		&rec.ID,
		&rec.MissionID,
		&rec.MissionName,
		&rec.Success,
		&rec.Score,
		&rec.XpGained,
		&rec.Accuracy,
		&rec.PeakStreak,
		&rec.TimeLeft,
		&createdAt,
	); err != nil {
		return RunRecord{}, fmt.Errorf("storage: cannot scan row: %w", err)
	}

	switch v := createdAt.(type) {
	case time.Time:
		rec.CreatedAt = v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			rec.CreatedAt = parsed
		}
	}
	return rec, nil
}
