package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"bazaar/config"
	"bazaar/internal/domain/service"
	"bazaar/internal/usecase"
	"bazaar/internal/util"

	"go.uber.org/fx"
)

const defaultMaxEntries = 100

// activityService keeps a capped, newest-first feed of wizard outcomes in
// memory. Entries past the cap are evicted oldest-first.
type activityService struct {
	mu      sync.RWMutex
	entries []usecase.ActivityEntry
	max     int
	logger  *slog.Logger
}

// ActivityServiceParams holds dependencies for the activity service, injected by Fx.
type ActivityServiceParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewActivityService is the constructor for activityService.
func NewActivityService(params ActivityServiceParams) usecase.ActivityUsecase {
	maxEntries := defaultMaxEntries
	if params.Config != nil && params.Config.Activity != nil && params.Config.Activity.MaxEntries > 0 {
		maxEntries = params.Config.Activity.MaxEntries
	}

	return &activityService{
		entries: make([]usecase.ActivityEntry, 0, maxEntries),
		max:     maxEntries,
		logger:  params.Logger,
	}
}

// Record appends one wizard outcome to the feed.
func (srv *activityService) Record(_ context.Context, event *service.WizardEvent) error {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	entry := usecase.ActivityEntry{
		DraftID:    event.DraftID,
		StoreName:  event.StoreName,
		Slug:       event.Slug,
		Outcome:    event.Outcome,
		Detail:     event.Detail,
		OccurredAt: event.OccurredAt,
	}

	srv.entries = append(srv.entries, entry)
	if len(srv.entries) > srv.max {
		srv.entries = srv.entries[len(srv.entries)-srv.max:]
	}

	srv.logger.Info("Activity recorded",
		slog.String("draft_id", event.DraftID),
		slog.String("outcome", event.Outcome),
	)

	return nil
}

// Recent returns up to limit entries, newest first. A non-positive limit
// returns the whole feed.
func (srv *activityService) Recent(_ context.Context, limit int) ([]usecase.ActivityEntry, error) {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	if limit <= 0 || limit > len(srv.entries) {
		limit = len(srv.entries)
	}

	now := time.Now().UTC()
	out := make([]usecase.ActivityEntry, 0, limit)
	for i := len(srv.entries) - 1; i >= len(srv.entries)-limit; i-- {
		entry := srv.entries[i]
		entry.Age = util.FormatDuration(now.Sub(entry.OccurredAt))
		out = append(out, entry)
	}

	return out, nil
}
