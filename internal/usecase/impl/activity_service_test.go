package impl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"bazaar/internal/domain/service"
	"bazaar/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestActivityService() usecase.ActivityUsecase {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewActivityService(ActivityServiceParams{Logger: logger})
}

func recordEvent(t *testing.T, svc usecase.ActivityUsecase, slug, outcome string, at time.Time) {
	t.Helper()
	err := svc.Record(context.Background(), &service.WizardEvent{
		DraftID:    "draft-" + slug,
		StoreName:  slug,
		Slug:       slug,
		Outcome:    outcome,
		OccurredAt: at,
	})
	require.NoError(t, err)
}

func TestActivityService_Recent_NewestFirst(t *testing.T) {
	svc := createTestActivityService()
	now := time.Now().UTC()

	recordEvent(t, svc, "first", service.OutcomeSubmitted, now.Add(-2*time.Hour))
	recordEvent(t, svc, "second", service.OutcomeFailed, now.Add(-time.Hour))
	recordEvent(t, svc, "third", service.OutcomeSubmitted, now.Add(-time.Minute))

	entries, err := svc.Recent(context.Background(), 0)

	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "third", entries[0].Slug)
	assert.Equal(t, "second", entries[1].Slug)
	assert.Equal(t, "first", entries[2].Slug)
	assert.NotEmpty(t, entries[0].Age)
}

func TestActivityService_Recent_Limit(t *testing.T) {
	svc := createTestActivityService()
	now := time.Now().UTC()

	for i := range 5 {
		recordEvent(t, svc, fmt.Sprintf("shop-%d", i), service.OutcomeSubmitted, now)
	}

	entries, err := svc.Recent(context.Background(), 2)

	require.NoError(t, err)
	assert.Len(t, entries, 2)
	assert.Equal(t, "shop-4", entries[0].Slug)
}

func TestActivityService_Record_EvictsOldestPastCap(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := &activityService{
		entries: make([]usecase.ActivityEntry, 0, 3),
		max:     3,
		logger:  logger,
	}
	now := time.Now().UTC()

	for i := range 5 {
		recordEvent(t, svc, fmt.Sprintf("shop-%d", i), service.OutcomeSubmitted, now)
	}

	entries, err := svc.Recent(context.Background(), 0)

	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "shop-4", entries[0].Slug)
	assert.Equal(t, "shop-2", entries[2].Slug)
}
