package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// ErrRunNotFound is returned by RunByID for unknown IDs.
var ErrRunNotFound = errors.New("storage: run not found")

// RunRecord summarises one headless or interactive simulation run.
type RunRecord struct {
	ID        int64
	Toy       string
	Seed      int64
	Ticks     int
	Bodies    int
	Resting   int
	Kinetic   float64
	Score     int
	Params    string // Parameters as YAML
	Duration  time.Duration
	CreatedAt time.Time
}

// SaveRun records a run and returns its row ID.
func (s *Store) SaveRun(r RunRecord) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO runs (toy, seed, ticks, bodies, resting, kinetic, score, params, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.Toy, r.Seed, r.Ticks, r.Bodies, r.Resting, r.Kinetic, r.Score, r.Params, r.Duration.Milliseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

const runColumns = `id, toy, seed, ticks, bodies, resting, kinetic, score, params, duration_ms, created_at`

// RecentRuns returns the latest runs, newest first. An empty toy matches
// every toy; a non-positive limit means 20.
func (s *Store) RecentRuns(toy string, limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM runs
		 WHERE ? = '' OR toy = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		toy, toy, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []RunRecord
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}

// RunByID returns a single run.
func (s *Store) RunByID(id int64) (RunRecord, error) {
	row := s.db.QueryRow(`SELECT `+runColumns+` FROM runs WHERE id = ?`, id)
	r, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return RunRecord{}, fmt.Errorf("%w: %d", ErrRunNotFound, id)
	}
	return r, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (RunRecord, error) {
	var r RunRecord
	var durationMS int64
	var createdAt any
	err := row.Scan(&r.ID, &r.Toy, &r.Seed, &r.Ticks, &r.Bodies, &r.Resting,
		&r.Kinetic, &r.Score, &r.Params, &durationMS, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return r, err
	}
	if err != nil {
		return r, fmt.Errorf("storage: cannot scan run: %w", err)
	}
	r.Duration = time.Duration(durationMS) * time.Millisecond
	r.CreatedAt = scanTime(createdAt)
	return r, nil
}
