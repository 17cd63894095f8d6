package validation

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/epsommer/becky-mobile-sub003/internal/domain"
)

// EntryValidator provides validation for time entry operations. Struct-tag
// rules are checked with go-playground/validator; time-range invariants are
// checked explicitly so the engine can report field-level messages.
type EntryValidator struct {
	validate *validator.Validate
}

// NewEntryValidator creates a new entry validator
func NewEntryValidator() *EntryValidator {
	return &EntryValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// ValidateStartInput validates the form data for starting the timer.
func (ev *EntryValidator) ValidateStartInput(input domain.StartInput) error {
	validationError := NewValidationError()
	ev.collectTagErrors(validationError, ev.validate.Struct(input))

	if validationError.HasErrors() {
		return validationError
	}
	return nil
}

// ValidateManualEntry validates the form data for a manual (backdated) entry.
// The entry must describe a completed session: EndTime strictly after StartTime.
func (ev *EntryValidator) ValidateManualEntry(input domain.ManualEntryInput) error {
	validationError := NewValidationError()
	ev.collectTagErrors(validationError, ev.validate.Struct(input))

	if !input.StartTime.IsZero() && !input.EndTime.IsZero() && !input.EndTime.After(input.StartTime) {
		validationError.AddInvalidRangeError("time_range", map[string]time.Time{
			"start": input.StartTime,
			"end":   input.EndTime,
		}, "end time must be after start time")
	}

	if validationError.HasErrors() {
		return validationError
	}
	return nil
}

// ValidateUpdatedEntry validates an entry after an update patch has been
// applied. Time-range invariants are re-checked only when the patch touched
// the time bounds.
func (ev *EntryValidator) ValidateUpdatedEntry(entry domain.TimeEntry, touchedTimes bool) error {
	validationError := NewValidationError()

	if entry.HourlyRate != nil && *entry.HourlyRate < 0 {
		validationError.AddInvalidValueError("hourly_rate", *entry.HourlyRate, "must not be negative")
	}

	if touchedTimes {
		if entry.StartTime.IsZero() {
			validationError.AddRequiredError("start_time")
		}
		if entry.EndTime == nil {
			validationError.AddRequiredError("end_time")
		} else if !entry.EndTime.After(entry.StartTime) {
			validationError.AddInvalidRangeError("time_range", map[string]time.Time{
				"start": entry.StartTime,
				"end":   *entry.EndTime,
			}, "end time must be after start time")
		}
	}

	if validationError.HasErrors() {
		return validationError
	}
	return nil
}

// ValidateEntryID validates a time entry ID
func (ev *EntryValidator) ValidateEntryID(id string) error {
	if strings.TrimSpace(id) == "" {
		validationError := NewValidationError()
		validationError.AddRequiredError("entry_id")
		return validationError
	}
	return nil
}

// collectTagErrors translates go-playground tag violations into field errors.
func (ev *EntryValidator) collectTagErrors(validationError *ValidationError, err error) {
	if err == nil {
		return
	}

	tagErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		validationError.AddInvalidValueError("input", nil, err.Error())
		return
	}

	for _, fieldErr := range tagErrors {
		field := toSnakeCase(fieldErr.Field())
		switch fieldErr.Tag() {
		case "required":
			validationError.AddRequiredError(field)
		case "gte":
			validationError.AddInvalidValueError(field, fieldErr.Value(), "must not be negative")
		default:
			validationError.AddInvalidValueError(field, fieldErr.Value(), "failed "+fieldErr.Tag()+" validation")
		}
	}
}

func toSnakeCase(field string) string {
	var b strings.Builder
	prevLower := false
	for _, r := range field {
		if r >= 'A' && r <= 'Z' {
			if prevLower {
				b.WriteByte('_')
			}
			b.WriteRune(r - 'A' + 'a')
			prevLower = false
		} else {
			b.WriteRune(r)
			prevLower = true
		}
	}
	return b.String()
}
