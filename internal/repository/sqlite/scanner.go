package sqlite

import (
	"database/sql"
)

// Scanner interface defines the common scanning behavior for both sql.Row and sql.Rows
type Scanner interface {
	Scan(dest ...interface{}) error
}

// Rows interface defines the common behavior for sql.Rows
type Rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

// scanEntryColumns scans the shared column set of the active-entry and log
// tables into a TimeEntry. seq is nil for the active-entry table.
func scanEntryColumns(scanner Scanner, seq *int64) (*TimeEntry, error) {
	entry := &TimeEntry{}
	var (
		serviceLineID sql.NullString
		hourlyRate    sql.NullFloat64
		startTime     string
		endTime       sql.NullString
		createdAt     string
	)

	dest := []interface{}{}
	if seq != nil {
		dest = append(dest, seq)
	}
	dest = append(dest,
		&entry.EntryID,
		&entry.ClientID,
		&entry.ClientName,
		&entry.ServiceType,
		&serviceLineID,
		&entry.Notes,
		&hourlyRate,
		&entry.Billable,
		&startTime,
		&endTime,
		&createdAt,
	)

	if err := scanner.Scan(dest...); err != nil {
		return nil, err
	}

	if serviceLineID.Valid {
		entry.ServiceLineID = &serviceLineID.String
	}
	if hourlyRate.Valid {
		entry.HourlyRate = &hourlyRate.Float64
	}

	var err error
	if entry.StartTime, err = ParseTimeFromDB(startTime); err != nil {
		return nil, err
	}
	if endTime.Valid {
		parsed, err := ParseTimeFromDB(endTime.String)
		if err != nil {
			return nil, err
		}
		entry.EndTime = &parsed
	}
	if entry.CreatedAt, err = ParseTimeFromDB(createdAt); err != nil {
		return nil, err
	}

	return entry, nil
}

// ScanLogEntry scans a single log entry (with seq) from a database row
func ScanLogEntry(scanner Scanner) (*TimeEntry, error) {
	var seq int64
	entry, err := scanEntryColumns(scanner, &seq)
	if err != nil {
		return nil, err
	}
	entry.Seq = seq
	return entry, nil
}

// ScanActiveEntry scans the active-entry singleton row
func ScanActiveEntry(scanner Scanner) (*TimeEntry, error) {
	return scanEntryColumns(scanner, nil)
}

// ScanLogEntries scans multiple log entries from database rows
func ScanLogEntries(rows Rows) ([]*TimeEntry, error) {
	var entries []*TimeEntry
	for rows.Next() {
		entry, err := ScanLogEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
