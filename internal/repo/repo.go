package repo

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	_ "github.com/lib/pq"
)

// Run is one completed visualization request.
type Run struct {
	RequestID      string    `json:"requestId"`
	Type           string    `json:"visualization_type"`
	Posture        string    `json:"posture"`
	GridResolution int       `json:"grid_resolution"`
	OutputMode     string    `json:"output_mode"`
	HTMLURL        string    `json:"html_url,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

type Repository interface {
	RecordRun(ctx context.Context, run Run) error
	RecentRuns(ctx context.Context, limit int) ([]Run, error)
}

const schema = `CREATE TABLE IF NOT EXISTS plot_runs (
	request_id      TEXT PRIMARY KEY,
	type            TEXT NOT NULL,
	posture         TEXT NOT NULL,
	grid_resolution INTEGER NOT NULL,
	output_mode     TEXT NOT NULL,
	html_url        TEXT,
	created_at      TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// OpenDB connects to Postgres and makes sure the runs table exists.
func OpenDB(ctx context.Context, connStr string) (*sql.DB, error) {
	if !strings.Contains(connStr, "sslmode=") {
		if strings.HasPrefix(connStr, "postgres://") || strings.HasPrefix(connStr, "postgresql://") {
			sep := "?"
			if strings.Contains(connStr, "?") {
				sep = "&"
			}
			connStr = connStr + sep + "sslmode=require"
		} else {
			connStr = connStr + " sslmode=require"
		}
	}
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err = db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	if _, err = db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create plot_runs: %w", err)
	}
	return db, nil
}

type PostgresRunRepository struct {
	db *sql.DB
}

func NewPostgresRunDB(db *sql.DB) *PostgresRunRepository {
	return &PostgresRunRepository{db: db}
}

func (r *PostgresRunRepository) RecordRun(ctx context.Context, run Run) error {
	query := `INSERT INTO plot_runs (request_id, type, posture, grid_resolution, output_mode, html_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (request_id) DO NOTHING`
	_, err := r.db.ExecContext(ctx, query, run.RequestID, run.Type, run.Posture, run.GridResolution, run.OutputMode, nullable(run.HTMLURL), run.CreatedAt)
	return err
}

func (r *PostgresRunRepository) RecentRuns(ctx context.Context, limit int) ([]Run, error) {
	query := `SELECT request_id, type, posture, grid_resolution, output_mode, COALESCE(html_url, ''), created_at
		FROM plot_runs ORDER BY created_at DESC LIMIT $1`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	runs := []Run{}
	for rows.Next() {
		var run Run
		if err := rows.Scan(&run.RequestID, &run.Type, &run.Posture, &run.GridResolution, &run.OutputMode, &run.HTMLURL, &run.CreatedAt); err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// data URLs are far too large to keep in the history table.
func nullable(url string) any {
	if url == "" || strings.HasPrefix(url, "data:") {
		return nil
	}
	return url
}

// MemoryRunRepository keeps the most recent runs in process when no
// database is configured.
type MemoryRunRepository struct {
	mu   sync.Mutex
	runs []Run
	max  int
}

func NewMemoryRunDB(max int) *MemoryRunRepository {
	return &MemoryRunRepository{max: max}
}

func (m *MemoryRunRepository) RecordRun(_ context.Context, run Run) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if strings.HasPrefix(run.HTMLURL, "data:") {
		run.HTMLURL = ""
	}
	m.runs = append(m.runs, run)
	if m.max > 0 && len(m.runs) > m.max {
		m.runs = m.runs[len(m.runs)-m.max:]
	}
	return nil
}

func (m *MemoryRunRepository) RecentRuns(_ context.Context, limit int) ([]Run, error) {
	m.mu.Lock()
	out := make([]Run, len(m.runs))
	copy(out, m.runs)
	m.mu.Unlock()

	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if limit >= 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
