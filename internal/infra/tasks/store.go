// Package tasks persists the to-do side records a bulk dispatch creates
// alongside its notifications. Task creation and message delivery are
// independent: neither failure rolls the other back.
package tasks

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

type Task struct {
	ID           string
	Title        string
	DueDate      string
	AssignedTo   string
	AssignedName string
	Status       string
	CreatedAt    time.Time
}

type Store struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS tasks (
	id            TEXT PRIMARY KEY,
	title         TEXT NOT NULL,
	due_date      TEXT NOT NULL,
	assigned_to   TEXT NOT NULL,
	assigned_name TEXT NOT NULL,
	status        TEXT NOT NULL DEFAULT 'pending',
	created_at    TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_tasks_assigned_to ON tasks (assigned_to);
`

func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("mkdir db dir: %w", err)
	}

	db, err := sql.Open("sqlite", path+"?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if _, err := db.ExecContext(context.Background(), schema); err != nil {
		return nil, fmt.Errorf("create tasks schema: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Create(ctx context.Context, t Task) error {
	if t.Status == "" {
		t.Status = "pending"
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO tasks (id, title, due_date, assigned_to, assigned_name, status, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.Title, t.DueDate, t.AssignedTo, t.AssignedName, t.Status, t.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert task: %w", err)
	}
	return nil
}

func (s *Store) ListByAssignee(ctx context.Context, assignedTo string) ([]Task, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, due_date, assigned_to, assigned_name, status, created_at
		 FROM tasks WHERE assigned_to = ? ORDER BY created_at`,
		assignedTo,
	)
	if err != nil {
		return nil, fmt.Errorf("query tasks: %w", err)
	}
	defer rows.Close()

	var out []Task
	for rows.Next() {
		var t Task
		if err := rows.Scan(&t.ID, &t.Title, &t.DueDate, &t.AssignedTo, &t.AssignedName, &t.Status, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (s *Store) Close() error {
	return s.db.Close()
}
