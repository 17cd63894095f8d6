package sqlite

import (
	"context"
	"database/sql"

	"github.com/epsommer/becky-mobile-sub003/internal/errors"
	"github.com/epsommer/becky-mobile-sub003/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// entryColumns is the shared column list of both entry tables.
const entryColumns = `entry_id, client_id, client_name, service_type, service_line_id,
	notes, hourly_rate, billable, start_time, end_time, created_at`

// Repository defines the interface for the engine's local store. It exposes
// two logical records: the active-entry singleton and the completed-entry log.
type Repository interface {
	// Active-entry record
	SaveActiveEntry(ctx context.Context, entry *TimeEntry) error
	GetActiveEntry(ctx context.Context) (*TimeEntry, error)
	ClearActiveEntry(ctx context.Context) error

	// Entry log
	AppendEntry(ctx context.Context, entry *TimeEntry) error
	GetEntry(ctx context.Context, entryID string) (*TimeEntry, error)
	ListEntries(ctx context.Context) ([]*TimeEntry, error)
	UpdateEntry(ctx context.Context, entry *TimeEntry) error
	DeleteEntry(ctx context.Context, entryID string) error
	DeleteAllEntries(ctx context.Context) error

	// Utility
	Close() error
}

// SQLiteRepository implements the Repository interface
type SQLiteRepository struct {
	db *sql.DB
}

// New creates a new SQLite repository instance
func New(dbPath string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewStorageError("open database", err)
	}

	// Run migrations
	if err := migrations.RunMigrations(db); err != nil {
		db.Close()
		return nil, errors.NewStorageError("run migrations", err)
	}

	return &SQLiteRepository{db: db}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// SaveActiveEntry writes the active-entry record, replacing any previous one.
func (r *SQLiteRepository) SaveActiveEntry(ctx context.Context, entry *TimeEntry) error {
	query := `
	INSERT INTO active_entry (id, ` + entryColumns + `)
	VALUES (1, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
		entry_id = excluded.entry_id,
		client_id = excluded.client_id,
		client_name = excluded.client_name,
		service_type = excluded.service_type,
		service_line_id = excluded.service_line_id,
		notes = excluded.notes,
		hourly_rate = excluded.hourly_rate,
		billable = excluded.billable,
		start_time = excluded.start_time,
		end_time = excluded.end_time,
		created_at = excluded.created_at`

	return Execute(ctx, r.db, query, entryArgs(entry)...)
}

// GetActiveEntry returns the active-entry record, or a not-found error if absent.
func (r *SQLiteRepository) GetActiveEntry(ctx context.Context) (*TimeEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM active_entry WHERE id = 1`
	return QuerySingle(ctx, r.db, query, ScanActiveEntry, "active entry", "1")
}

// ClearActiveEntry removes the active-entry record. Clearing an already-absent
// record is not an error.
func (r *SQLiteRepository) ClearActiveEntry(ctx context.Context) error {
	return Execute(ctx, r.db, `DELETE FROM active_entry WHERE id = 1`)
}

// AppendEntry adds a completed entry to the head of the log.
func (r *SQLiteRepository) AppendEntry(ctx context.Context, entry *TimeEntry) error {
	query := `
	INSERT INTO time_entries (` + entryColumns + `)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	seq, err := ExecuteWithLastInsertID(ctx, r.db, query, entryArgs(entry)...)
	if err != nil {
		return err
	}

	entry.Seq = seq
	return nil
}

// GetEntry retrieves a log entry by its entry ID
func (r *SQLiteRepository) GetEntry(ctx context.Context, entryID string) (*TimeEntry, error) {
	query := `SELECT seq, ` + entryColumns + ` FROM time_entries WHERE entry_id = ?`
	return QuerySingle(ctx, r.db, query, ScanLogEntry, "time entry", entryID, entryID)
}

// ListEntries retrieves all log entries, most recently appended first.
func (r *SQLiteRepository) ListEntries(ctx context.Context) ([]*TimeEntry, error) {
	query := `SELECT seq, ` + entryColumns + ` FROM time_entries ORDER BY seq DESC`
	return QueryMultiple(ctx, r.db, query, ScanLogEntries, "time entries")
}

// UpdateEntry updates an existing log entry in place. Its position in the log
// does not change.
func (r *SQLiteRepository) UpdateEntry(ctx context.Context, entry *TimeEntry) error {
	query := `
	UPDATE time_entries
	SET client_id = ?, client_name = ?, service_type = ?, service_line_id = ?,
		notes = ?, hourly_rate = ?, billable = ?, start_time = ?, end_time = ?, created_at = ?
	WHERE entry_id = ?`

	args := entryArgs(entry)[1:] // all columns except entry_id
	args = append(args, entry.EntryID)
	return ExecuteWithRowsAffected(ctx, r.db, query, "time entry", entry.EntryID, args...)
}

// DeleteEntry deletes a log entry by its entry ID
func (r *SQLiteRepository) DeleteEntry(ctx context.Context, entryID string) error {
	query := `DELETE FROM time_entries WHERE entry_id = ?`
	return ExecuteWithRowsAffected(ctx, r.db, query, "time entry", entryID, entryID)
}

// DeleteAllEntries resets the entry log. The active-entry record is untouched.
func (r *SQLiteRepository) DeleteAllEntries(ctx context.Context) error {
	return Execute(ctx, r.db, `DELETE FROM time_entries`)
}

// entryArgs returns the entry's values in entryColumns order.
func entryArgs(entry *TimeEntry) []interface{} {
	var serviceLineID interface{}
	if entry.ServiceLineID != nil {
		serviceLineID = *entry.ServiceLineID
	}
	var hourlyRate interface{}
	if entry.HourlyRate != nil {
		hourlyRate = *entry.HourlyRate
	}

	return []interface{}{
		entry.EntryID,
		entry.ClientID,
		entry.ClientName,
		entry.ServiceType,
		serviceLineID,
		entry.Notes,
		hourlyRate,
		entry.Billable,
		FormatTimeForDB(entry.StartTime),
		FormatTimePtrForDB(entry.EndTime),
		FormatTimeForDB(entry.CreatedAt),
	}
}
