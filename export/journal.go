package export

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

const journalSchema = `
CREATE TABLE IF NOT EXISTS jobs (
	id       TEXT PRIMARY KEY,
	created  TEXT NOT NULL,
	format   TEXT NOT NULL,
	document TEXT NOT NULL,
	output   TEXT NOT NULL,
	status   TEXT NOT NULL,
	error    TEXT NOT NULL DEFAULT ''
);
`

// Job statuses kept in journal.
const (
	StatusDone   = "done"
	StatusFailed = "failed"
)

// Entry is single journal record.
type Entry struct {
	ID       string    `yaml:"id"`
	Created  time.Time `yaml:"created"`
	Format   string    `yaml:"format"`
	Document string    `yaml:"document"`
	Output   string    `yaml:"output"`
	Status   string    `yaml:"status"`
	Error    string    `yaml:"error,omitempty"`
}

// Journal keeps history of dispatched jobs in SQLite database.
type Journal struct {
	mu   sync.Mutex
	conn *sqlite.Conn
	log  *zap.Logger
}

// OpenJournal opens (creating if necessary) journal database.
func OpenJournal(path string, log *zap.Logger) (*Journal, error) {
	if log == nil {
		log = zap.NewNop()
	}
	conn, err := sqlite.OpenConn(path, sqlite.OpenReadWrite, sqlite.OpenCreate, sqlite.OpenWAL)
	if err != nil {
		return nil, fmt.Errorf("open journal %s: %w", path, err)
	}
	if err := sqlitex.ExecuteScript(conn, journalSchema, nil); err != nil {
		conn.Close()
		return nil, fmt.Errorf("prepare journal %s: %w", path, err)
	}
	return &Journal{conn: conn, log: log.Named("journal")}, nil
}

// Close closes underlying database connection.
func (j *Journal) Close() error {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.conn.Close()
}

// Record stores outcome of the job.
func (j *Journal) Record(job *Job, exportErr error) error {
	status, message := StatusDone, ""
	if exportErr != nil {
		status, message = StatusFailed, exportErr.Error()
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	err := sqlitex.Execute(j.conn,
		`INSERT OR REPLACE INTO jobs (id, created, format, document, output, status, error) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		&sqlitex.ExecOptions{Args: []any{
			job.ID.String(),
			job.Created.UTC().Format(time.RFC3339Nano),
			job.Format.String(),
			job.Document,
			job.Output,
			status,
			message,
		}})
	if err != nil {
		return fmt.Errorf("record job %s: %w", job.ID, err)
	}
	return nil
}

// Recent returns up to limit latest entries, newest first. Job ids are time
// ordered so they are used for sorting.
func (j *Journal) Recent(limit int) ([]Entry, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	var entries []Entry
	err := sqlitex.Execute(j.conn,
		`SELECT id, created, format, document, output, status, error FROM jobs ORDER BY id DESC LIMIT ?`,
		&sqlitex.ExecOptions{
			Args: []any{limit},
			ResultFunc: func(stmt *sqlite.Stmt) error {
				created, err := time.Parse(time.RFC3339Nano, stmt.ColumnText(1))
				if err != nil {
					return fmt.Errorf("bad time for job %s: %w", stmt.ColumnText(0), err)
				}
				entries = append(entries, Entry{
					ID:       stmt.ColumnText(0),
					Created:  created,
					Format:   stmt.ColumnText(2),
					Document: stmt.ColumnText(3),
					Output:   stmt.ColumnText(4),
					Status:   stmt.ColumnText(5),
					Error:    stmt.ColumnText(6),
				})
				return nil
			},
		})
	if err != nil {
		return nil, fmt.Errorf("read journal: %w", err)
	}
	return entries, nil
}

// Wrap returns back end recording every job next back end handles. Failure
// to record is logged and does not fail the export.
func (j *Journal) Wrap(next Backend) Backend {
	return BackendFunc(func(ctx context.Context, job *Job) error {
		err := next.Export(ctx, job)
		if rerr := j.Record(job, err); rerr != nil {
			j.log.Warn("Unable to record job", zap.Stringer("job", job.ID), zap.Error(rerr))
		}
		return err
	})
}
