// Package engine owns the timer state machine and the completed-entry log.
// A single Tracker instance holds at most one active session, a periodic
// elapsed-time sampler, and an in-memory cache of the persisted log.
package engine

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/epsommer/becky-mobile-sub003/internal/config"
	"github.com/epsommer/becky-mobile-sub003/internal/domain"
	"github.com/epsommer/becky-mobile-sub003/internal/errors"
	"github.com/epsommer/becky-mobile-sub003/internal/logging"
	"github.com/epsommer/becky-mobile-sub003/internal/repository/sqlite"
	"github.com/epsommer/becky-mobile-sub003/internal/validation"
)

// State represents the timer state machine's current state.
type State int

const (
	StateIdle State = iota
	StateRunning
	StatePaused
)

// String returns the string representation of the state
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	default:
		return "unknown"
	}
}

// timeNow is a variable that can be replaced in tests
var timeNow = time.Now

// newEntryID is a variable that can be replaced in tests
var newEntryID = func() string { return uuid.NewString() }

// Tracker is the time-tracking engine. All transitions are serialized by a
// single mutex, so a second start cannot race a pending persistence write.
type Tracker struct {
	repo      sqlite.Repository
	mapper    *domain.Mapper
	validator *validation.EntryValidator
	interval  time.Duration

	mu      sync.Mutex
	state   State
	current *domain.TimeEntry
	entries []domain.TimeEntry // most-recent-first
	elapsed time.Duration
	lastErr error

	samplerQuit chan struct{}
	onTick      func(time.Duration)
}

// New creates a Tracker over the given store, loads the entry log, and
// performs startup recovery: if an active-entry record exists, the tracker
// resumes Running with elapsed time recomputed from the persisted start.
//
// A store that cannot be read does not fail construction; the tracker starts
// empty with the failure available via Err, so the UI keeps functioning for
// the current session.
func New(ctx context.Context, repo sqlite.Repository, cfg *config.Config) *Tracker {
	t := &Tracker{
		repo:      repo,
		mapper:    domain.NewMapper(),
		validator: validation.NewEntryValidator(),
		interval:  cfg.Timer.SamplerInterval,
		state:     StateIdle,
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	dbEntries, err := repo.ListEntries(ctx)
	if err != nil {
		t.recordStorageError("load entry log", err)
	} else {
		t.entries = t.mapper.TimeEntry.FromDatabaseSlice(dbEntries)
	}

	dbActive, err := repo.GetActiveEntry(ctx)
	switch {
	case err == nil:
		active := t.mapper.TimeEntry.FromDatabase(*dbActive)
		t.current = &active
		t.state = StateRunning
		t.elapsed = timeNow().Sub(active.StartTime)
		t.startSampler()
		logging.Debugf("recovered running session %s started at %s\n", active.ID, active.StartTime)
	case errors.IsErrorType(err, errors.ErrorTypeNotFound):
		// No session in progress.
	default:
		t.recordStorageError("load active entry", err)
	}

	return t
}

// SetTickObserver registers a callback invoked with the recomputed elapsed
// time on every sampler tick. Display plumbing only.
func (t *Tracker) SetTickObserver(fn func(time.Duration)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onTick = fn
}

// Start begins a new timing session. Returns an AlreadyRunning conflict error
// if an active session exists; the prior session is never silently discarded.
// The active-entry record is persisted before returning (durability point).
func (t *Tracker) Start(ctx context.Context, input domain.StartInput) (*domain.TimeEntry, error) {
	if err := t.validator.ValidateStartInput(input); err != nil {
		return nil, err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.current != nil {
		return nil, errors.NewAlreadyRunningError(t.current.ID)
	}

	now := timeNow()
	entry := domain.TimeEntry{
		ID:            newEntryID(),
		ClientID:      input.ClientID,
		ClientName:    input.ClientName,
		ServiceType:   input.ServiceType,
		ServiceLineID: input.ServiceLineID,
		Notes:         input.Notes,
		HourlyRate:    input.HourlyRate,
		Billable:      input.Billable,
		StartTime:     now,
		CreatedAt:     now,
	}

	t.current = &entry
	t.state = StateRunning
	t.elapsed = 0
	t.startSampler()

	dbEntry := t.mapper.TimeEntry.ToDatabase(entry)
	if err := t.repo.SaveActiveEntry(ctx, &dbEntry); err != nil {
		t.recordStorageError("save active entry", err)
	}

	result := entry
	return &result, nil
}

// Stop completes the active session: sets the end time, moves the entry to
// the head of the log, and clears the active-entry record. Returns (nil, nil)
// when there is nothing to stop.
func (t *Tracker) Stop(ctx context.Context) (*domain.TimeEntry, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.current == nil {
		return nil, nil
	}

	t.stopSampler()

	completed := t.current.Stop(timeNow())
	t.entries = append([]domain.TimeEntry{completed}, t.entries...)
	t.current = nil
	t.state = StateIdle
	t.elapsed = 0

	dbEntry := t.mapper.TimeEntry.ToDatabase(completed)
	if err := t.repo.AppendEntry(ctx, &dbEntry); err != nil {
		t.recordStorageError("append entry", err)
	}
	if err := t.repo.ClearActiveEntry(ctx); err != nil {
		t.recordStorageError("clear active entry", err)
	}

	result := completed
	return &result, nil
}

// Pause freezes the elapsed-time signal. The session's start time is not
// adjusted: paused wall-clock time still counts toward the final duration.
// No persisted state changes.
func (t *Tracker) Pause() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state != StateRunning {
		return
	}

	t.stopSampler()
	t.elapsed = timeNow().Sub(t.current.StartTime)
	t.state = StatePaused
}

// Resume unfreezes the elapsed-time signal after a pause.
func (t *Tracker) Resume() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state != StatePaused {
		return
	}

	t.state = StateRunning
	t.elapsed = timeNow().Sub(t.current.StartTime)
	t.startSampler()
}

// Discard abandons the active session without logging it. Irreversible.
// Discarding with no active session is a safe no-op.
func (t *Tracker) Discard(ctx context.Context) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.current == nil {
		return
	}

	t.stopSampler()
	t.current = nil
	t.state = StateIdle
	t.elapsed = 0

	if err := t.repo.ClearActiveEntry(ctx); err != nil {
		t.recordStorageError("clear active entry", err)
	}
}

// AddManualEntry records a backdated, already-completed session. The time
// range is validated before any record is constructed.
func (t *Tracker) AddManualEntry(ctx context.Context, input domain.ManualEntryInput) (*domain.TimeEntry, error) {
	if err := t.validator.ValidateManualEntry(input); err != nil {
		return nil, err
	}

	endTime := input.EndTime
	entry := domain.TimeEntry{
		ID:            newEntryID(),
		ClientID:      input.ClientID,
		ClientName:    input.ClientName,
		ServiceType:   input.ServiceType,
		ServiceLineID: input.ServiceLineID,
		Notes:         input.Notes,
		HourlyRate:    input.HourlyRate,
		Billable:      input.Billable,
		StartTime:     input.StartTime,
		EndTime:       &endTime,
		CreatedAt:     timeNow(),
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.entries = append([]domain.TimeEntry{entry}, t.entries...)

	dbEntry := t.mapper.TimeEntry.ToDatabase(entry)
	if err := t.repo.AppendEntry(ctx, &dbEntry); err != nil {
		t.recordStorageError("append entry", err)
	}

	result := entry
	return &result, nil
}

// UpdateEntry merges the patch into the identified log entry. Time-range
// invariants are re-validated only when the patch includes time bounds.
func (t *Tracker) UpdateEntry(ctx context.Context, id string, patch domain.EntryPatch) (*domain.TimeEntry, error) {
	if err := t.validator.ValidateEntryID(id); err != nil {
		return nil, err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	idx := t.findEntry(id)
	if idx < 0 {
		return nil, errors.NewNotFoundError("time entry", id)
	}

	updated := patch.Apply(t.entries[idx])
	if err := t.validator.ValidateUpdatedEntry(updated, patch.TouchesTimes()); err != nil {
		return nil, err
	}

	t.entries[idx] = updated

	dbEntry := t.mapper.TimeEntry.ToDatabase(updated)
	if err := t.repo.UpdateEntry(ctx, &dbEntry); err != nil {
		t.recordStorageError("update entry", err)
	}

	result := updated
	return &result, nil
}

// DeleteEntry removes the identified entry from the log. Deleting an unknown
// id is a safe no-op, not an error.
func (t *Tracker) DeleteEntry(ctx context.Context, id string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	idx := t.findEntry(id)
	if idx < 0 {
		return nil
	}

	t.entries = append(t.entries[:idx], t.entries[idx+1:]...)

	err := t.repo.DeleteEntry(ctx, id)
	if err != nil && !errors.IsErrorType(err, errors.ErrorTypeNotFound) {
		t.recordStorageError("delete entry", err)
	}
	return nil
}

// ClearEntries resets the persisted log. Debug/reset flows only. The active
// session, if any, is untouched.
func (t *Tracker) ClearEntries(ctx context.Context) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.entries = nil

	if err := t.repo.DeleteAllEntries(ctx); err != nil {
		t.recordStorageError("clear entry log", err)
	}
}

// EntriesByClient returns completed entries for the given client,
// most recent first.
func (t *Tracker) EntriesByClient(clientID string) []domain.TimeEntry {
	t.mu.Lock()
	defer t.mu.Unlock()

	var result []domain.TimeEntry
	for _, entry := range t.entries {
		if entry.ClientID == clientID {
			result = append(result, entry)
		}
	}
	return result
}

// EntriesByDateRange returns completed entries whose start time falls within
// [start, end], most recent first.
func (t *Tracker) EntriesByDateRange(start, end time.Time) []domain.TimeEntry {
	t.mu.Lock()
	defer t.mu.Unlock()

	var result []domain.TimeEntry
	for _, entry := range t.entries {
		if entry.StartTime.Before(start) || entry.StartTime.After(end) {
			continue
		}
		result = append(result, entry)
	}
	return result
}

// State returns the current timer state.
func (t *Tracker) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// IsRunning reports whether a session is actively timing (not paused).
func (t *Tracker) IsRunning() bool {
	return t.State() == StateRunning
}

// Elapsed returns the last sampled elapsed time of the active session.
// Display only; the persisted duration is always EndTime - StartTime.
func (t *Tracker) Elapsed() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.elapsed
}

// CurrentEntry returns a copy of the active entry, or nil when idle.
func (t *Tracker) CurrentEntry() *domain.TimeEntry {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.current == nil {
		return nil
	}
	entry := *t.current
	return &entry
}

// Entries returns a copy of the completed-entry log, most recent first.
func (t *Tracker) Entries() []domain.TimeEntry {
	t.mu.Lock()
	defer t.mu.Unlock()

	result := make([]domain.TimeEntry, len(t.entries))
	copy(result, t.entries)
	return result
}

// Err returns the most recent storage failure, or nil. Storage failures do
// not interrupt transitions; the in-memory state stays usable.
func (t *Tracker) Err() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.lastErr
}

// ClearErr resets the surfaced storage failure.
func (t *Tracker) ClearErr() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.lastErr = nil
}

// Close cancels the sampler. The tracker must not be used afterwards.
func (t *Tracker) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopSampler()
}

// findEntry returns the cache index of the entry with the given id, or -1.
// Callers must hold t.mu.
func (t *Tracker) findEntry(id string) int {
	for i, entry := range t.entries {
		if entry.ID == id {
			return i
		}
	}
	return -1
}

// recordStorageError surfaces a persistence failure without failing the
// transition. Callers must hold t.mu.
func (t *Tracker) recordStorageError(operation string, err error) {
	t.lastErr = err
	if errors.ShouldLogError(err) {
		logging.Errorf("storage failure (%s): %v\n", operation, err)
	}
}

// startSampler launches the periodic elapsed-time recomputation.
// Callers must hold t.mu.
func (t *Tracker) startSampler() {
	quit := make(chan struct{})
	t.samplerQuit = quit

	go func() {
		ticker := time.NewTicker(t.interval)
		defer ticker.Stop()

		for {
			select {
			case <-quit:
				return
			case <-ticker.C:
				t.sample(quit)
			}
		}
	}()
}

// sample recomputes elapsed time for one tick. The quit channel identifies
// the sampler generation, so a stale goroutine cannot clobber state after
// the session it was sampling has ended.
func (t *Tracker) sample(quit chan struct{}) {
	t.mu.Lock()
	if t.samplerQuit != quit || t.state != StateRunning || t.current == nil {
		t.mu.Unlock()
		return
	}
	t.elapsed = timeNow().Sub(t.current.StartTime)
	elapsed := t.elapsed
	observer := t.onTick
	t.mu.Unlock()

	if observer != nil {
		observer(elapsed)
	}
}

// stopSampler cancels the running sampler, if any. Callers must hold t.mu.
func (t *Tracker) stopSampler() {
	if t.samplerQuit != nil {
		close(t.samplerQuit)
		t.samplerQuit = nil
	}
}
