package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/service"
	"bazaar/internal/infra/session"
	mockService "bazaar/internal/mocks/service"
	"bazaar/internal/schema"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// wizardServiceFixtures holds all test dependencies for wizard service tests.
// The session store and validator are real; the outbound collaborators are
// mocked.
type wizardServiceFixtures struct {
	service     usecase.WizardUsecase
	submitter   *mockService.MockStoreSubmitter
	publisher   *mockService.MockEventPublisher
	qrcode      *mockService.MockQRCodeService
	attachments *mockService.MockAttachmentStore
}

func createTestWizardService(t *testing.T) wizardServiceFixtures {
	validator, err := schema.New()
	require.NoError(t, err)

	submitter := mockService.NewMockStoreSubmitter(t)
	publisher := mockService.NewMockEventPublisher(t)
	qrcode := mockService.NewMockQRCodeService(t)
	attachments := mockService.NewMockAttachmentStore(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewWizardService(WizardServiceParams{
		Sessions:    session.NewStore(),
		Validator:   validator,
		Submitter:   submitter,
		Publisher:   publisher,
		QRCode:      qrcode,
		Attachments: attachments,
		Logger:      logger,
	})

	return wizardServiceFixtures{
		service:     svc,
		submitter:   submitter,
		publisher:   publisher,
		qrcode:      qrcode,
		attachments: attachments,
	}
}

func testIdentity() *service.Identity {
	return &service.Identity{
		UserID:   uuid.New(),
		Email:    "owner@example.com",
		Username: "shopowner",
	}
}

// startValidDraft creates a hydrated session and fills the minimum fields a
// full validation pass requires.
func startValidDraft(t *testing.T, fx wizardServiceFixtures) uuid.UUID {
	ctx := context.Background()

	snap, err := fx.service.StartDraft(ctx, &usecase.StartDraftInput{Identity: testIdentity()})
	require.NoError(t, err)

	_, err = fx.service.SetField(ctx, snap.DraftID, &usecase.SetFieldInput{
		Field: "name",
		Value: "Blue Bottle Ceramics",
	})
	require.NoError(t, err)

	return snap.DraftID
}

// advanceToReview walks a valid draft through every gate up to the review step.
func advanceToReview(t *testing.T, fx wizardServiceFixtures, draftID uuid.UUID) {
	ctx := context.Background()
	for range entity.StepCount - 1 {
		snap, err := fx.service.Next(ctx, draftID)
		require.NoError(t, err)
		require.True(t, snap.Advanced, "step %d should validate cleanly", snap.Step-1)
	}

	snap, err := fx.service.GetDraft(ctx, draftID)
	require.NoError(t, err)
	require.Equal(t, entity.StepReview, snap.Step)
}

func TestWizardService_StartDraft_HydratesIdentity(t *testing.T) {
	fx := createTestWizardService(t)

	identity := testIdentity()
	snap, err := fx.service.StartDraft(context.Background(), &usecase.StartDraftInput{Identity: identity})

	require.NoError(t, err)
	assert.Equal(t, entity.StepIdentity, snap.Step)
	assert.Equal(t, identity.UserID, snap.Draft.OwnerID)
	assert.Equal(t, "owner@example.com", snap.Draft.Email)
	assert.Equal(t, "shopowner", snap.Draft.Username)
	assert.Equal(t, entity.ShippingLocalPickup, snap.Draft.ShippingType)
	assert.True(t, snap.Draft.Active)
	assert.Len(t, snap.Draft.Hours, 7)
	assert.Empty(t, snap.Errors)
}

func TestWizardService_StartDraft_NoIdentity(t *testing.T) {
	fx := createTestWizardService(t)

	snap, err := fx.service.StartDraft(context.Background(), &usecase.StartDraftInput{})

	require.NoError(t, err)
	assert.Equal(t, uuid.Nil, snap.Draft.OwnerID)
	assert.Empty(t, snap.Draft.Email)
	assert.Empty(t, snap.Draft.Username)
}

func TestWizardService_GetDraft_NotFound(t *testing.T) {
	fx := createTestWizardService(t)

	_, err := fx.service.GetDraft(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domainerrors.ErrDraftNotFound)
}

func TestWizardService_SetField_NameRegeneratesSlug(t *testing.T) {
	fx := createTestWizardService(t)
	draftID := startValidDraft(t, fx)

	snap, err := fx.service.SetField(context.Background(), draftID, &usecase.SetFieldInput{
		Field: "name",
		Value: "My Shop!!",
	})

	require.NoError(t, err)
	assert.Equal(t, "My Shop!!", snap.Draft.Name)
	assert.Equal(t, "my-shop", snap.Draft.Slug)
}

func TestWizardService_SetField_UnknownField(t *testing.T) {
	fx := createTestWizardService(t)
	draftID := startValidDraft(t, fx)

	_, err := fx.service.SetField(context.Background(), draftID, &usecase.SetFieldInput{
		Field: "tax_rate",
		Value: "0.21",
	})

	assert.ErrorIs(t, err, domainerrors.ErrUnknownField)
}

func TestWizardService_SetField_ClearsFieldError(t *testing.T) {
	fx := createTestWizardService(t)
	ctx := context.Background()

	snap, err := fx.service.StartDraft(ctx, &usecase.StartDraftInput{Identity: testIdentity()})
	require.NoError(t, err)
	draftID := snap.DraftID

	// Failing Next populates the error map for the identity step.
	snap, err = fx.service.Next(ctx, draftID)
	require.NoError(t, err)
	require.False(t, snap.Advanced)
	require.Contains(t, snap.Errors, "name")

	snap, err = fx.service.SetField(ctx, draftID, &usecase.SetFieldInput{
		Field: "name",
		Value: "Blue Bottle Ceramics",
	})
	require.NoError(t, err)
	assert.NotContains(t, snap.Errors, "name")
}

func TestWizardService_SetHourField_IndexOutOfRange(t *testing.T) {
	fx := createTestWizardService(t)
	draftID := startValidDraft(t, fx)

	_, err := fx.service.SetHourField(context.Background(), draftID, &usecase.SetHourFieldInput{
		DayIndex: 7,
		Field:    "is_open",
		Value:    false,
	})

	assert.ErrorIs(t, err, domainerrors.ErrDayIndexRange)
}

func TestWizardService_SetHourField_UpdatesSingleDay(t *testing.T) {
	fx := createTestWizardService(t)
	draftID := startValidDraft(t, fx)
	ctx := context.Background()

	snap, err := fx.service.SetHourField(ctx, draftID, &usecase.SetHourFieldInput{
		DayIndex: 2,
		Field:    "open_time",
		Value:    "07:30",
	})

	require.NoError(t, err)
	assert.Equal(t, "07:30", snap.Draft.Hours[2].OpenTime)
	assert.Equal(t, entity.DefaultOpenTime, snap.Draft.Hours[1].OpenTime)
	assert.Len(t, snap.Draft.Hours, 7)
}

func TestWizardService_Next_ValidationFailureKeepsStep(t *testing.T) {
	fx := createTestWizardService(t)
	ctx := context.Background()

	snap, err := fx.service.StartDraft(ctx, &usecase.StartDraftInput{})
	require.NoError(t, err)

	snap, err = fx.service.Next(ctx, snap.DraftID)

	require.NoError(t, err)
	assert.False(t, snap.Advanced)
	assert.Equal(t, entity.StepIdentity, snap.Step)
	assert.Contains(t, snap.Errors, "name")
	assert.Contains(t, snap.Errors, "username")
	assert.Contains(t, snap.Errors, "email")
}

func TestWizardService_Next_AdvancesOnValidStep(t *testing.T) {
	fx := createTestWizardService(t)
	draftID := startValidDraft(t, fx)

	snap, err := fx.service.Next(context.Background(), draftID)

	require.NoError(t, err)
	assert.True(t, snap.Advanced)
	assert.Equal(t, entity.StepAddress, snap.Step)
	assert.Empty(t, snap.Errors)
}

func TestWizardService_Next_AtReviewStaysPut(t *testing.T) {
	fx := createTestWizardService(t)
	draftID := startValidDraft(t, fx)
	advanceToReview(t, fx, draftID)

	snap, err := fx.service.Next(context.Background(), draftID)

	require.NoError(t, err)
	assert.Equal(t, entity.StepReview, snap.Step)
	assert.False(t, snap.Advanced)
}

func TestWizardService_Back_ClearsErrorsWithoutValidating(t *testing.T) {
	fx := createTestWizardService(t)
	ctx := context.Background()

	snap, err := fx.service.StartDraft(ctx, &usecase.StartDraftInput{})
	require.NoError(t, err)
	draftID := snap.DraftID

	snap, err = fx.service.Next(ctx, draftID)
	require.NoError(t, err)
	require.NotEmpty(t, snap.Errors)

	snap, err = fx.service.Back(ctx, draftID)

	require.NoError(t, err)
	assert.Equal(t, entity.StepIdentity, snap.Step)
	assert.Empty(t, snap.Errors)
}

func TestWizardService_Back_AtFirstStepStaysPut(t *testing.T) {
	fx := createTestWizardService(t)
	draftID := startValidDraft(t, fx)

	snap, err := fx.service.Back(context.Background(), draftID)

	require.NoError(t, err)
	assert.Equal(t, entity.StepIdentity, snap.Step)
}

func TestWizardService_Submit_NotAtReviewStep(t *testing.T) {
	fx := createTestWizardService(t)
	draftID := startValidDraft(t, fx)

	_, err := fx.service.Submit(context.Background(), draftID)

	assert.ErrorIs(t, err, domainerrors.ErrNotAtReviewStep)
}

func TestWizardService_Submit_Success(t *testing.T) {
	fx := createTestWizardService(t)
	draftID := startValidDraft(t, fx)
	advanceToReview(t, fx, draftID)

	ctx := context.Background()

	var captured *service.StorePayload
	fx.submitter.EXPECT().
		CreateStore(ctx, mock.AnythingOfType("*service.StorePayload")).
		Run(func(_ context.Context, payload *service.StorePayload) {
			captured = payload
		}).
		Return(&service.SubmissionResult{
			StoreID:  "store-42",
			StoreURL: "https://market.example.com/stores/blue-bottle-ceramics",
		}, nil).
		Once()

	fx.publisher.EXPECT().
		PublishWizardEvent(ctx, mock.AnythingOfType("*service.WizardEvent")).
		Run(func(_ context.Context, event *service.WizardEvent) {
			assert.Equal(t, service.OutcomeSubmitted, event.Outcome)
			assert.Equal(t, "blue-bottle-ceramics", event.Slug)
		}).
		Return(nil).
		Once()

	fx.qrcode.EXPECT().
		GenerateStoreQR("https://market.example.com/stores/blue-bottle-ceramics").
		Return([]byte{0x89, 0x50, 0x4e, 0x47}, nil).
		Once()

	out, err := fx.service.Submit(ctx, draftID)

	require.NoError(t, err)
	assert.Equal(t, "store-42", out.StoreID)
	assert.NotEmpty(t, out.QRCodePNG)

	require.NotNil(t, captured)
	keys := make(map[string]string, len(captured.Fields))
	for _, f := range captured.Fields {
		keys[f.Key] = f.Value
	}
	assert.Equal(t, "Blue Bottle Ceramics", keys["name"])
	assert.Equal(t, "blue-bottle-ceramics", keys["slug"])
	assert.Equal(t, "1", keys["is_active"])
	assert.Contains(t, keys, "store_hours[0][day]")
	assert.Contains(t, keys, "store_hours[6][close_time]")
	assert.NotContains(t, keys, "is_verified")

	snap, err := fx.service.GetDraft(ctx, draftID)
	require.NoError(t, err)
	assert.True(t, snap.Completed)
}

func TestWizardService_Submit_CompletedDraftRejectsMutation(t *testing.T) {
	fx := createTestWizardService(t)
	draftID := startValidDraft(t, fx)
	advanceToReview(t, fx, draftID)

	ctx := context.Background()
	fx.submitter.EXPECT().
		CreateStore(ctx, mock.Anything).
		Return(&service.SubmissionResult{StoreID: "store-1", StoreURL: "https://m.example.com/s/x"}, nil).
		Once()
	fx.publisher.EXPECT().PublishWizardEvent(ctx, mock.Anything).Return(nil).Once()
	fx.qrcode.EXPECT().GenerateStoreQR(mock.Anything).Return([]byte{1}, nil).Once()

	_, err := fx.service.Submit(ctx, draftID)
	require.NoError(t, err)

	_, err = fx.service.SetField(ctx, draftID, &usecase.SetFieldInput{Field: "name", Value: "Other"})
	assert.ErrorIs(t, err, domainerrors.ErrDraftCompleted)

	_, err = fx.service.Submit(ctx, draftID)
	assert.ErrorIs(t, err, domainerrors.ErrDraftCompleted)
}

func TestWizardService_Submit_FullValidationBlocksStaleDraft(t *testing.T) {
	fx := createTestWizardService(t)
	draftID := startValidDraft(t, fx)
	advanceToReview(t, fx, draftID)

	ctx := context.Background()

	// Invalidate a field belonging to an already-passed step.
	_, err := fx.service.SetField(ctx, draftID, &usecase.SetFieldInput{Field: "email", Value: "not-an-email"})
	require.NoError(t, err)

	_, err = fx.service.Submit(ctx, draftID)

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	snap, gerr := fx.service.GetDraft(ctx, draftID)
	require.NoError(t, gerr)
	assert.Contains(t, snap.Errors, "email")
	assert.False(t, snap.Completed)
	fx.submitter.AssertNotCalled(t, "CreateStore", mock.Anything, mock.Anything)
}

func TestWizardService_Submit_BackendFailureAllowsRetry(t *testing.T) {
	fx := createTestWizardService(t)
	draftID := startValidDraft(t, fx)
	advanceToReview(t, fx, draftID)

	ctx := context.Background()

	fx.submitter.EXPECT().
		CreateStore(ctx, mock.Anything).
		Return(nil, errors.New("upstream 503")).
		Once()
	fx.publisher.EXPECT().
		PublishWizardEvent(ctx, mock.Anything).
		Run(func(_ context.Context, event *service.WizardEvent) {
			assert.Equal(t, service.OutcomeFailed, event.Outcome)
			assert.Contains(t, event.Detail, "upstream 503")
		}).
		Return(nil).
		Once()

	_, err := fx.service.Submit(ctx, draftID)
	require.ErrorIs(t, err, domainerrors.ErrSubmissionFailed)

	// The failed attempt releases the in-flight guard; a retry reaches the
	// backend again.
	fx.submitter.EXPECT().
		CreateStore(ctx, mock.Anything).
		Return(&service.SubmissionResult{StoreID: "store-7", StoreURL: "https://m.example.com/s/y"}, nil).
		Once()
	fx.publisher.EXPECT().PublishWizardEvent(ctx, mock.Anything).Return(nil).Once()
	fx.qrcode.EXPECT().GenerateStoreQR(mock.Anything).Return([]byte{1}, nil).Once()

	out, err := fx.service.Submit(ctx, draftID)
	require.NoError(t, err)
	assert.Equal(t, "store-7", out.StoreID)
}

func TestWizardService_Submit_RejectsSecondCallWhileInFlight(t *testing.T) {
	fx := createTestWizardService(t)
	draftID := startValidDraft(t, fx)
	advanceToReview(t, fx, draftID)

	ctx := context.Background()

	backendEntered := make(chan struct{})
	releaseBackend := make(chan struct{})
	fx.submitter.EXPECT().
		CreateStore(ctx, mock.Anything).
		RunAndReturn(func(context.Context, *service.StorePayload) (*service.SubmissionResult, error) {
			close(backendEntered)
			<-releaseBackend

			return &service.SubmissionResult{StoreID: "store-9", StoreURL: "https://m.example.com/s/z"}, nil
		}).
		Once()
	fx.publisher.EXPECT().PublishWizardEvent(ctx, mock.Anything).Return(nil).Once()
	fx.qrcode.EXPECT().GenerateStoreQR(mock.Anything).Return([]byte{1}, nil).Once()

	firstDone := make(chan error, 1)
	go func() {
		_, err := fx.service.Submit(ctx, draftID)
		firstDone <- err
	}()

	// Wait until the first Submit is parked inside the backend call, then
	// issue a second one mid-flight.
	<-backendEntered
	_, err := fx.service.Submit(ctx, draftID)
	assert.ErrorIs(t, err, domainerrors.ErrSubmitInFlight)

	close(releaseBackend)
	require.NoError(t, <-firstDone)

	// After completion the draft is terminally consumed, not merely unlocked.
	_, err = fx.service.Submit(ctx, draftID)
	assert.ErrorIs(t, err, domainerrors.ErrDraftCompleted)

	fx.submitter.AssertNumberOfCalls(t, "CreateStore", 1)
}

func TestWizardService_AttachFile_ReplacementDropsStagedBytes(t *testing.T) {
	fx := createTestWizardService(t)
	draftID := startValidDraft(t, fx)
	ctx := context.Background()

	first := &entity.Attachment{Key: "uploads/a", Filename: "a.png", MIME: "image/png", Size: 1024}
	second := &entity.Attachment{Key: "uploads/b", Filename: "b.png", MIME: "image/png", Size: 2048}

	snap, err := fx.service.AttachFile(ctx, draftID, &usecase.AttachFileInput{
		Slot:       entity.SlotLogo,
		Attachment: first,
	})
	require.NoError(t, err)
	require.Equal(t, "uploads/a", snap.Draft.Logo.Key)

	fx.attachments.EXPECT().Delete(mock.Anything, "uploads/a").Return(nil).Once()

	snap, err = fx.service.AttachFile(ctx, draftID, &usecase.AttachFileInput{
		Slot:       entity.SlotLogo,
		Attachment: second,
	})
	require.NoError(t, err)
	assert.Equal(t, "uploads/b", snap.Draft.Logo.Key)
}

func TestWizardService_RemoveFile_ClearsSlot(t *testing.T) {
	fx := createTestWizardService(t)
	draftID := startValidDraft(t, fx)
	ctx := context.Background()

	att := &entity.Attachment{Key: "uploads/c", Filename: "c.jpg", MIME: "image/jpeg", Size: 4096}
	_, err := fx.service.AttachFile(ctx, draftID, &usecase.AttachFileInput{
		Slot:       entity.SlotCover,
		Attachment: att,
	})
	require.NoError(t, err)

	fx.attachments.EXPECT().Delete(mock.Anything, "uploads/c").Return(nil).Once()

	snap, err := fx.service.RemoveFile(ctx, draftID, entity.SlotCover)
	require.NoError(t, err)
	assert.Nil(t, snap.Draft.Cover)
}

func TestWizardService_Snapshot_IsDetachedCopy(t *testing.T) {
	fx := createTestWizardService(t)
	draftID := startValidDraft(t, fx)
	ctx := context.Background()

	snap, err := fx.service.GetDraft(ctx, draftID)
	require.NoError(t, err)

	snap.Draft.Name = "mutated locally"
	snap.Draft.Hours[0].OpenTime = "00:00"

	fresh, err := fx.service.GetDraft(ctx, draftID)
	require.NoError(t, err)
	assert.Equal(t, "Blue Bottle Ceramics", fresh.Draft.Name)
	assert.Equal(t, entity.DefaultOpenTime, fresh.Draft.Hours[0].OpenTime)
}
