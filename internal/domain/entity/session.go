package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Step indexes one page of the wizard. Steps are linear; the only movement
// is Next/Back between adjacent steps.
type Step int

const (
	StepIdentity Step = iota // identity and contact scalars
	StepAddress              // address sub-record
	StepContent              // free text, classification, visibility flag
	StepMedia                // cover and logo slots
	StepHours                // weekly schedule
	StepReview               // display only, gates on prior steps having passed
)

// StepCount is the number of wizard steps.
const StepCount = 6

// ErrorMap maps a dotted field path (e.g. "address.city" or
// "store_hours[3].open_time") to a human-readable message. Keys exist only
// for currently-invalid fields. It is fully replaced on each validation pass
// and cleared per field the moment that field is edited.
type ErrorMap map[string]string

// Clear removes the entry for path, if any.
func (m ErrorMap) Clear(path string) {
	delete(m, path)
}

// IsEmpty reports whether no field is currently invalid.
func (m ErrorMap) IsEmpty() bool {
	return len(m) == 0
}

// HourFieldPath builds the error-map path for one field of a day entry.
func HourFieldPath(dayIndex int, field string) string {
	return fmt.Sprintf("store_hours[%d].%s", dayIndex, field)
}

// WizardSession is one live wizard instance: the draft being built, the
// current error map, and the stepper position. A session owns its draft
// exclusively for its lifetime; the session store serializes access to it.
type WizardSession struct {
	ID         uuid.UUID
	Draft      *StoreDraft
	Errors     ErrorMap
	Step       Step
	Submitting bool // a terminal submission is outstanding
	Completed  bool // the draft has been consumed by a successful submission
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewWizardSession creates a session at step 0 with an empty draft.
func NewWizardSession() *WizardSession {
	now := time.Now().UTC()

	return &WizardSession{
		ID:        uuid.New(),
		Draft:     NewStoreDraft(),
		Errors:    ErrorMap{},
		Step:      StepIdentity,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
