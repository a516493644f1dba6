package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/service"
	mockusecase "bazaar/internal/mocks/usecase"
	"bazaar/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newEventHandler(t *testing.T) (*EventHandler, *mockusecase.MockActivityUsecase) {
	t.Helper()

	activity := mockusecase.NewMockActivityUsecase(t)
	h := &EventHandler{
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		activity: activity,
	}

	return h, activity
}

// pushBody wraps a wizard event in the push envelope the publisher sends.
func pushBody(t *testing.T, event *service.WizardEvent, attributes map[string]string) string {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Subscription = "projects/local/subscriptions/wizard-sub"
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.MessageID = "msg-1"
	msg.Message.PublishTime = time.Now().UTC().Format(time.RFC3339)
	msg.Message.Attributes = attributes

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func newPushContext(body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestHandlePushRecordsEvent(t *testing.T) {
	h, activity := newEventHandler(t)

	event := &service.WizardEvent{
		DraftID:    "d-1",
		StoreName:  "Blue Bottle Ceramics",
		Slug:       "blue-bottle-ceramics",
		Outcome:    service.OutcomeSubmitted,
		OccurredAt: time.Now().UTC(),
	}

	activity.EXPECT().
		Record(mock.Anything, mock.MatchedBy(func(got *service.WizardEvent) bool {
			return got.DraftID == "d-1" && got.Outcome == service.OutcomeSubmitted
		})).
		Return(nil)

	c, rec := newPushContext(pushBody(t, event, nil))
	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandlePushPropagatesRequestID(t *testing.T) {
	h, activity := newEventHandler(t)

	event := &service.WizardEvent{DraftID: "d-2", Outcome: service.OutcomeFailed}

	var seenRequestID string
	activity.EXPECT().
		Record(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ *service.WizardEvent) error {
			seenRequestID = deliverycontext.GetRequestIDFromContext(ctx)

			return nil
		})

	attrs := map[string]string{"request_id": "req-42"}
	c, rec := newPushContext(pushBody(t, event, attrs))
	require.NoError(t, h.HandlePush(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "req-42", seenRequestID)
}

func TestHandlePushRejectsMalformedBody(t *testing.T) {
	h, activity := newEventHandler(t)

	c, rec := newPushContext(`{"message":{"data":"%%% not base64 %%%"}}`)
	require.NoError(t, h.HandlePush(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	activity.AssertNotCalled(t, "Record")
}

func TestHandlePushAcksRecordFailure(t *testing.T) {
	h, activity := newEventHandler(t)

	event := &service.WizardEvent{DraftID: "d-3", Outcome: service.OutcomeSubmitted}
	activity.EXPECT().Record(mock.Anything, mock.Anything).Return(errors.New("feed unavailable"))

	// The feed is best effort, failures must not trigger redelivery.
	c, rec := newPushContext(pushBody(t, event, nil))
	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRecentServesFeed(t *testing.T) {
	h, activity := newEventHandler(t)

	activity.EXPECT().
		Recent(mock.Anything, 5).
		Return([]usecase.ActivityEntry{
			{DraftID: "d-9", StoreName: "Night Market Vinyl", Outcome: service.OutcomeSubmitted, Age: "45s"},
		}, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/activity?limit=5", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Recent(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Night Market Vinyl")
}

func TestRecentRejectsBadLimit(t *testing.T) {
	h, activity := newEventHandler(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/activity?limit=lots", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Recent(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	activity.AssertNotCalled(t, "Recent")
}
