package engine

import (
	"context"
	"fmt"

	"github.com/epsommer/becky-mobile-sub003/internal/errors"
	"github.com/epsommer/becky-mobile-sub003/internal/repository/sqlite"
)

// mockRepository is an in-memory sqlite.Repository for exercising the tracker
// without a database. Individual operations can be made to fail by name.
type mockRepository struct {
	active  *sqlite.TimeEntry
	entries []*sqlite.TimeEntry
	nextSeq int64

	failOps map[string]bool
	calls   []string
}

func newMockRepository() *mockRepository {
	return &mockRepository{
		nextSeq: 1,
		failOps: make(map[string]bool),
	}
}

func (m *mockRepository) failOn(ops ...string) {
	for _, op := range ops {
		m.failOps[op] = true
	}
}

func (m *mockRepository) check(op string) error {
	m.calls = append(m.calls, op)
	if m.failOps[op] {
		return errors.NewStorageError(op, errSimulated)
	}
	return nil
}

var errSimulated = fmt.Errorf("disk full")

func (m *mockRepository) SaveActiveEntry(_ context.Context, entry *sqlite.TimeEntry) error {
	if err := m.check("SaveActiveEntry"); err != nil {
		return err
	}
	copied := *entry
	m.active = &copied
	return nil
}

func (m *mockRepository) GetActiveEntry(_ context.Context) (*sqlite.TimeEntry, error) {
	if err := m.check("GetActiveEntry"); err != nil {
		return nil, err
	}
	if m.active == nil {
		return nil, errors.NewNotFoundError("active entry", "1")
	}
	copied := *m.active
	return &copied, nil
}

func (m *mockRepository) ClearActiveEntry(_ context.Context) error {
	if err := m.check("ClearActiveEntry"); err != nil {
		return err
	}
	m.active = nil
	return nil
}

func (m *mockRepository) AppendEntry(_ context.Context, entry *sqlite.TimeEntry) error {
	if err := m.check("AppendEntry"); err != nil {
		return err
	}
	copied := *entry
	copied.Seq = m.nextSeq
	m.nextSeq++
	entry.Seq = copied.Seq
	m.entries = append(m.entries, &copied)
	return nil
}

func (m *mockRepository) GetEntry(_ context.Context, entryID string) (*sqlite.TimeEntry, error) {
	if err := m.check("GetEntry"); err != nil {
		return nil, err
	}
	for _, entry := range m.entries {
		if entry.EntryID == entryID {
			copied := *entry
			return &copied, nil
		}
	}
	return nil, errors.NewNotFoundError("time entry", entryID)
}

func (m *mockRepository) ListEntries(_ context.Context) ([]*sqlite.TimeEntry, error) {
	if err := m.check("ListEntries"); err != nil {
		return nil, err
	}
	// Most recent first, like the real store's seq DESC ordering.
	result := make([]*sqlite.TimeEntry, 0, len(m.entries))
	for i := len(m.entries) - 1; i >= 0; i-- {
		copied := *m.entries[i]
		result = append(result, &copied)
	}
	return result, nil
}

func (m *mockRepository) UpdateEntry(_ context.Context, entry *sqlite.TimeEntry) error {
	if err := m.check("UpdateEntry"); err != nil {
		return err
	}
	for i, existing := range m.entries {
		if existing.EntryID == entry.EntryID {
			copied := *entry
			copied.Seq = existing.Seq
			m.entries[i] = &copied
			return nil
		}
	}
	return errors.NewNotFoundError("time entry", entry.EntryID)
}

func (m *mockRepository) DeleteEntry(_ context.Context, entryID string) error {
	if err := m.check("DeleteEntry"); err != nil {
		return err
	}
	for i, existing := range m.entries {
		if existing.EntryID == entryID {
			m.entries = append(m.entries[:i], m.entries[i+1:]...)
			return nil
		}
	}
	return errors.NewNotFoundError("time entry", entryID)
}

func (m *mockRepository) DeleteAllEntries(_ context.Context) error {
	if err := m.check("DeleteAllEntries"); err != nil {
		return err
	}
	m.entries = nil
	return nil
}

func (m *mockRepository) Close() error {
	return nil
}
