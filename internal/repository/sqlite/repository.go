package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"wakatime-tracker/internal/errors"
	"wakatime-tracker/internal/logging"
	"wakatime-tracker/internal/repository/sqlite/migrations"

	"github.com/cenkalti/backoff/v4"
	_ "modernc.org/sqlite"
)

// Repository defines the interface for project summary storage operations
type Repository interface {
	// UpsertProjectSummary writes or replaces the row for the summary's
	// (date, project_name) pair. Numeric fields are replaced, never
	// accumulated; created_at is preserved across updates.
	UpsertProjectSummary(ctx context.Context, summary *ProjectSummary) error

	// GetProjectSummary retrieves the single row for (date, projectName)
	GetProjectSummary(ctx context.Context, date, projectName string) (*ProjectSummary, error)

	// QueryRange returns all rows with date in [startDate, endDate]
	// inclusive, optionally filtered to one project, ordered by date
	// descending with project_name as a stable tie-break.
	QueryRange(ctx context.Context, startDate, endDate string, projectName *string) ([]*ProjectSummary, error)

	// ListDistinctProjects returns every project_name ever recorded
	ListDistinctProjects(ctx context.Context) ([]string, error)

	// HasAnyData reports whether at least one row exists
	HasAnyData(ctx context.Context) (bool, error)

	// DailyTotals returns per-date sums of total_seconds over the inclusive
	// range, ordered by date ascending.
	DailyTotals(ctx context.Context, startDate, endDate string) ([]*DailyTotal, error)

	// Close closes the underlying connection pool
	Close() error
}

// ConnectOptions controls the bounded retry used while establishing the
// database connection.
type ConnectOptions struct {
	Attempts int           // total attempts before giving up
	Delay    time.Duration // fixed pause between attempts
}

// DefaultConnectOptions mirrors the retry budget used by the daily job
// deployment: five attempts, five seconds apart.
func DefaultConnectOptions() ConnectOptions {
	return ConnectOptions{Attempts: 5, Delay: 5 * time.Second}
}

// SQLiteRepository implements the Repository interface
type SQLiteRepository struct {
	db *sql.DB
}

// New creates a new SQLite repository instance. The connection is verified
// with a bounded constant-backoff retry; if every attempt fails the
// repository cannot be constructed and a connection_init error is returned.
func New(dbPath string, opts ConnectOptions) (*SQLiteRepository, error) {
	if opts.Attempts < 1 {
		opts.Attempts = 1
	}

	var db *sql.DB
	attempt := 0

	operation := func() error {
		attempt++
		var err error
		db, err = openAndPing(dbPath)
		if err != nil {
			logging.Debugf("database connection attempt %d failed: %v\n", attempt, err)
		}
		return err
	}

	policy := backoff.WithMaxRetries(backoff.NewConstantBackOff(opts.Delay), uint64(opts.Attempts-1))
	if err := backoff.Retry(operation, policy); err != nil {
		return nil, errors.NewConnectionInitError(dbPath, opts.Attempts, err)
	}

	if err := migrations.RunMigrations(db); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("run migrations", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func openAndPing(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn(dbPath))
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// dsn appends the pragmas to the data source name so that every connection
// database/sql opens from the pool runs with them, not just the one that
// happened to execute a PRAGMA statement. WAL mode and the busy timeout let
// concurrent logical sessions (overlapping backfill and daily job) wait on
// write locks instead of failing immediately.
func dsn(dbPath string) string {
	return "file:" + dbPath +
		"?_pragma=journal_mode(WAL)" +
		"&_pragma=busy_timeout(5000)" +
		"&_pragma=foreign_keys(1)"
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// UpsertProjectSummary writes or replaces the row for (date, project_name).
// The whole write is one atomic statement: the ON CONFLICT clause turns a
// raced insert of the same key into the update, and created_at is not in the
// update set so it survives replacement. A read-then-write transaction would
// start as a reader and SQLite refuses to wait on a reader-to-writer lock
// upgrade, surfacing SQLITE_BUSY to concurrent callers.
func (r *SQLiteRepository) UpsertProjectSummary(ctx context.Context, summary *ProjectSummary) error {
	now := FormatTimeForDB(time.Now())

	logging.Debugf("upserting summary for project %s on %s\n", summary.ProjectName, summary.Date)
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO project_summaries (date, project_name, total_seconds, digital_time, text_time, percent, created_at, updated_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(date, project_name) DO UPDATE SET
		total_seconds = excluded.total_seconds,
		digital_time = excluded.digital_time,
		text_time = excluded.text_time,
		percent = excluded.percent,
		updated_at = excluded.updated_at`,
		summary.Date, summary.ProjectName, summary.TotalSeconds,
		summary.DigitalTime, summary.TextTime, summary.Percent, now, now)
	if err != nil {
		return HandleDatabaseError("upsert project summary", err)
	}
	return nil
}

// GetProjectSummary retrieves the single row for (date, projectName)
func (r *SQLiteRepository) GetProjectSummary(ctx context.Context, date, projectName string) (*ProjectSummary, error) {
	query := `
	SELECT id, date, project_name, total_seconds, digital_time, text_time, percent, created_at, updated_at
	FROM project_summaries
	WHERE date = ? AND project_name = ?`

	return QuerySingle(ctx, r.db, query, ScanProjectSummary, "project summary", fmt.Sprintf("%s/%s", date, projectName), date, projectName)
}

// QueryRange returns all rows with date in the inclusive window, newest
// date first.
func (r *SQLiteRepository) QueryRange(ctx context.Context, startDate, endDate string, projectName *string) ([]*ProjectSummary, error) {
	query := `
	SELECT id, date, project_name, total_seconds, digital_time, text_time, percent, created_at, updated_at
	FROM project_summaries
	WHERE date >= ? AND date <= ?`
	args := []interface{}{startDate, endDate}

	if projectName != nil && *projectName != "" {
		query += " AND project_name = ?"
		args = append(args, *projectName)
	}
	query += " ORDER BY date DESC, project_name ASC"

	return QueryMultiple(ctx, r.db, query, ScanProjectSummaries, "project summaries", args...)
}

// ListDistinctProjects returns every project_name ever recorded
func (r *SQLiteRepository) ListDistinctProjects(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT DISTINCT project_name FROM project_summaries`)
	if err != nil {
		return nil, HandleDatabaseError("list distinct projects", err)
	}
	defer rows.Close()

	var projects []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, HandleDatabaseError("scan project name", err)
		}
		projects = append(projects, name)
	}
	if err := rows.Err(); err != nil {
		return nil, HandleDatabaseError("list distinct projects", err)
	}

	return projects, nil
}

// HasAnyData reports whether at least one row exists
func (r *SQLiteRepository) HasAnyData(ctx context.Context) (bool, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM project_summaries`).Scan(&count)
	if err != nil {
		return false, HandleDatabaseError("count project summaries", err)
	}
	return count > 0, nil
}

// DailyTotals returns per-date sums of total_seconds, date ascending
func (r *SQLiteRepository) DailyTotals(ctx context.Context, startDate, endDate string) ([]*DailyTotal, error) {
	query := `
	SELECT date, SUM(total_seconds)
	FROM project_summaries
	WHERE date >= ? AND date <= ?
	GROUP BY date
	ORDER BY date ASC`

	return QueryMultiple(ctx, r.db, query, ScanDailyTotals, "daily totals", startDate, endDate)
}
