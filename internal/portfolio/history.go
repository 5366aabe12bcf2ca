package portfolio

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// ScoreSnapshot is one recorded audit score in the local history.
type ScoreSnapshot struct {
	ID           int64  `json:"id"`
	OverallScore int    `json:"overall_score"`
	Hero         int    `json:"hero"`
	Experience   int    `json:"experience"`
	Projects     int    `json:"projects"`
	Skills       int    `json:"skills"`
	Achievements int    `json:"achievements"`
	Testimonials int    `json:"testimonials"`
	Note         string `json:"note,omitempty"`
	CreatedAt    string `json:"created_at"`
}

// ScoreHistoryAddInput is the input for score_history_add.
type ScoreHistoryAddInput struct {
	Profile Profile `json:"profile"`
	Note    string  `json:"note,omitempty"`
}

// ScoreHistoryAddResult is the output for score_history_add.
type ScoreHistoryAddResult struct {
	ID           int64  `json:"id"`
	OverallScore int    `json:"overall_score"`
	Message      string `json:"message"`
}

// ScoreHistoryListInput is the input for score_history_list.
type ScoreHistoryListInput struct {
	Limit int `json:"limit,omitempty"`
}

// ScoreHistoryListResult is the output for score_history_list.
type ScoreHistoryListResult struct {
	Snapshots []ScoreSnapshot `json:"snapshots"`
	Total     int             `json:"total"`
}

var (
	historyDB   *sql.DB
	historyOnce sync.Once
	historyErr  error
)

// openHistoryDB opens (or creates) the SQLite score-history database.
func openHistoryDB() (*sql.DB, error) {
	historyOnce.Do(func() {
		dir := filepath.Join(os.Getenv("HOME"), ".go_portfolio")
		if err := os.MkdirAll(dir, 0750); err != nil {
			historyErr = fmt.Errorf("history: mkdir %s: %w", dir, err)
			return
		}
		dbPath := filepath.Join(dir, "history.db")
		db, err := sql.Open("sqlite", dbPath)
		if err != nil {
			historyErr = fmt.Errorf("history: open db: %w", err)
			return
		}
		db.SetMaxOpenConns(1) // SQLite: single writer
		if err := initHistorySchema(db); err != nil {
			historyErr = fmt.Errorf("history: init schema: %w", err)
			return
		}
		historyDB = db
	})
	return historyDB, historyErr
}

// initHistorySchema creates the snapshots table if it doesn't exist.
func initHistorySchema(db *sql.DB) error {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS snapshots (
		id            INTEGER PRIMARY KEY AUTOINCREMENT,
		overall       INTEGER NOT NULL,
		hero          INTEGER NOT NULL,
		experience    INTEGER NOT NULL,
		projects      INTEGER NOT NULL,
		skills        INTEGER NOT NULL,
		achievements  INTEGER NOT NULL,
		testimonials  INTEGER NOT NULL,
		note          TEXT,
		created_at    TEXT NOT NULL
	)`)
	return err
}

// AddScoreSnapshot scores the given profile and appends the result to
// the local history. Recording a snapshot is an explicit, separate
// operation — the audit path itself never persists anything.
func AddScoreSnapshot(_ context.Context, input ScoreHistoryAddInput, now time.Time) (*ScoreHistoryAddResult, error) {
	db, err := openHistoryDB()
	if err != nil {
		return nil, err
	}

	audit := AnalyzeProfile(&input.Profile, now)
	s := audit.Sections
	res, err := db.Exec(
		`INSERT INTO snapshots (overall, hero, experience, projects, skills, achievements, testimonials, note, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		audit.OverallScore, s.Hero, s.Experience, s.Projects, s.Skills, s.Achievements, s.Testimonials,
		input.Note, now.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return nil, fmt.Errorf("score_history_add: insert: %w", err)
	}

	id, _ := res.LastInsertId()
	return &ScoreHistoryAddResult{
		ID:           id,
		OverallScore: audit.OverallScore,
		Message:      fmt.Sprintf("Snapshot #%d recorded with overall score %d", id, audit.OverallScore),
	}, nil
}

// ListScoreSnapshots returns recorded snapshots, newest first.
func ListScoreSnapshots(_ context.Context, input ScoreHistoryListInput) (*ScoreHistoryListResult, error) {
	db, err := openHistoryDB()
	if err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	rows, err := db.Query(
		`SELECT id, overall, hero, experience, projects, skills, achievements, testimonials, note, created_at
		 FROM snapshots ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("score_history_list: query: %w", err)
	}
	defer rows.Close()

	var snapshots []ScoreSnapshot
	for rows.Next() {
		var s ScoreSnapshot
		var note sql.NullString
		if err := rows.Scan(&s.ID, &s.OverallScore, &s.Hero, &s.Experience, &s.Projects,
			&s.Skills, &s.Achievements, &s.Testimonials, &note, &s.CreatedAt); err != nil {
			continue
		}
		s.Note = note.String
		snapshots = append(snapshots, s)
	}
	var total int
	db.QueryRow(`SELECT COUNT(*) FROM snapshots`).Scan(&total) //nolint:errcheck

	if snapshots == nil {
		snapshots = []ScoreSnapshot{}
	}
	return &ScoreHistoryListResult{Snapshots: snapshots, Total: total}, nil
}
