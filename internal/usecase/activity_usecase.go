package usecase

import (
	"context"
	"time"

	"bazaar/internal/domain/service"
)

// ActivityEntry is one line of the marketplace activity feed.
type ActivityEntry struct {
	DraftID    string    `json:"draft_id"`
	StoreName  string    `json:"store_name"`
	Slug       string    `json:"slug"`
	Outcome    string    `json:"outcome"`
	Detail     string    `json:"detail,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
	Age        string    `json:"age"` // human-readable time since the event
}

// ActivityUsecase records wizard lifecycle events pushed by the event bus
// and serves the recent-activity feed.
type ActivityUsecase interface {
	Record(ctx context.Context, event *service.WizardEvent) error
	Recent(ctx context.Context, limit int) ([]ActivityEntry, error)
}
