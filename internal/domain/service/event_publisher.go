package service

import (
	"context"
	"time"
)

// Wizard event outcomes.
const (
	OutcomeSubmitted = "submitted"
	OutcomeFailed    = "failed"
)

// WizardEvent is the lifecycle event published when a wizard session reaches
// its terminal submission, feeding the marketplace activity log.
type WizardEvent struct {
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	DraftID    string    `json:"draft_id"`
	OwnerID    string    `json:"owner_id,omitempty"`
	StoreName  string    `json:"store_name"`
	Slug       string    `json:"slug"`
	Outcome    string    `json:"outcome"` // "submitted" or "failed"
	Detail     string    `json:"detail,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing wizard lifecycle
// events to a message queue.
type EventPublisher interface {
	// PublishWizardEvent publishes a wizard lifecycle event for async processing
	PublishWizardEvent(ctx context.Context, event *WizardEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
