// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"time"

	"bazaar/config"
	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	"bazaar/internal/errors"
	"bazaar/internal/schema"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// wizardService implements the WizardUsecase interface: the form state
// store, the step gate, and the terminal submission state machine.
type wizardService struct {
	sessions    repository.SessionStore
	validator   *schema.Validator
	submitter   service.StoreSubmitter
	publisher   service.EventPublisher
	qrcode      service.QRCodeService
	attachments service.AttachmentStore
	baseURL     string
	logger      *slog.Logger
}

// WizardServiceParams holds dependencies for the wizard service, injected by Fx.
type WizardServiceParams struct {
	fx.In

	Config      *config.Config
	Sessions    repository.SessionStore
	Validator   *schema.Validator
	Submitter   service.StoreSubmitter
	Publisher   service.EventPublisher
	QRCode      service.QRCodeService
	Attachments service.AttachmentStore
	Logger      *slog.Logger
}

// NewWizardService is the constructor for wizardService.
func NewWizardService(params WizardServiceParams) usecase.WizardUsecase {
	baseURL := ""
	if params.Config != nil && params.Config.Backend != nil {
		baseURL = params.Config.Backend.PublicBaseURL
	}

	return &wizardService{
		sessions:    params.Sessions,
		validator:   params.Validator,
		submitter:   params.Submitter,
		publisher:   params.Publisher,
		qrcode:      params.QRCode,
		attachments: params.Attachments,
		baseURL:     baseURL,
		logger:      params.Logger,
	}
}

// StartDraft creates a wizard session at step 0. The identity value, when
// present, pre-populates the owner, email and username fields; its absence
// leaves them empty.
func (srv *wizardService) StartDraft(ctx context.Context, input *usecase.StartDraftInput) (*usecase.Snapshot, error) {
	sess := entity.NewWizardSession()
	if input != nil && input.Identity != nil {
		sess.Draft.OwnerID = input.Identity.UserID
		sess.Draft.Email = input.Identity.Email
		sess.Draft.Username = input.Identity.Username
	}

	if err := srv.sessions.Create(ctx, sess); err != nil {
		return nil, errors.Wrap(err, "failed to create wizard session")
	}

	srv.logger.Info("Wizard session started",
		slog.String("draft_id", sess.ID.String()),
		slog.Bool("hydrated", input != nil && input.Identity != nil),
	)

	return snapshot(sess), nil
}

// GetDraft returns the read-only session snapshot for the rendering boundary.
func (srv *wizardService) GetDraft(ctx context.Context, draftID uuid.UUID) (*usecase.Snapshot, error) {
	var snap *usecase.Snapshot
	err := srv.sessions.View(ctx, draftID, func(sess *entity.WizardSession) error {
		snap = snapshot(sess)

		return nil
	})
	if err != nil {
		return nil, mapSessionErr(err)
	}

	return snap, nil
}

// SetField writes one scalar field. Writing the display name regenerates the
// slug; any existing error entry for the field is cleared immediately.
func (srv *wizardService) SetField(ctx context.Context, draftID uuid.UUID, input *usecase.SetFieldInput) (*usecase.Snapshot, error) {
	return srv.mutate(ctx, draftID, func(sess *entity.WizardSession) (string, error) {
		return sess.Draft.SetField(input.Field, input.Value)
	})
}

// SetAddressField writes one field of the address sub-record.
func (srv *wizardService) SetAddressField(ctx context.Context, draftID uuid.UUID, input *usecase.SetAddressFieldInput) (*usecase.Snapshot, error) {
	return srv.mutate(ctx, draftID, func(sess *entity.WizardSession) (string, error) {
		return sess.Draft.SetAddressField(input.Field, input.Value)
	})
}

// SetHourField rewrites one field of one day entry, leaving the other six
// entries of the schedule untouched.
func (srv *wizardService) SetHourField(ctx context.Context, draftID uuid.UUID, input *usecase.SetHourFieldInput) (*usecase.Snapshot, error) {
	return srv.mutate(ctx, draftID, func(sess *entity.WizardSession) (string, error) {
		return sess.Draft.SetHourField(input.DayIndex, input.Field, input.Value)
	})
}

// AttachFile stores an uploaded attachment reference. A replaced attachment's
// staged bytes are dropped from the attachment store.
func (srv *wizardService) AttachFile(ctx context.Context, draftID uuid.UUID, input *usecase.AttachFileInput) (*usecase.Snapshot, error) {
	return srv.mutate(ctx, draftID, func(sess *entity.WizardSession) (string, error) {
		srv.dropStaged(ctx, sess.Draft, input.Slot)

		return sess.Draft.SetFile(input.Slot, input.Attachment)
	})
}

// RemoveFile clears an attachment slot and drops its staged bytes.
func (srv *wizardService) RemoveFile(ctx context.Context, draftID uuid.UUID, slot entity.AttachmentSlot) (*usecase.Snapshot, error) {
	return srv.mutate(ctx, draftID, func(sess *entity.WizardSession) (string, error) {
		srv.dropStaged(ctx, sess.Draft, slot)

		return sess.Draft.SetFile(slot, nil)
	})
}

// Next validates the current step. On success the step index advances (a
// no-op at the review step); on failure the session keeps its step and the
// error map is replaced with the step's violations.
func (srv *wizardService) Next(ctx context.Context, draftID uuid.UUID) (*usecase.Snapshot, error) {
	var snap *usecase.Snapshot
	err := srv.sessions.Update(ctx, draftID, func(sess *entity.WizardSession) error {
		if err := guardMutable(sess); err != nil {
			return err
		}

		stepErrors := srv.validator.ValidateStep(sess.Step, sess.Draft)
		sess.Errors = stepErrors
		sess.UpdatedAt = time.Now().UTC()

		if !stepErrors.IsEmpty() {
			srv.logger.Warn("Step validation failed",
				slog.String("draft_id", sess.ID.String()),
				slog.Int("step", int(sess.Step)),
				slog.Int("violations", len(stepErrors)),
			)
			snap = snapshot(sess)

			return nil
		}

		if sess.Step < entity.StepReview {
			sess.Step++
			snap = snapshot(sess)
			snap.Advanced = true
		} else {
			snap = snapshot(sess)
		}

		return nil
	})
	if err != nil {
		return nil, mapSessionErr(err)
	}

	return snap, nil
}

// Back moves to the previous step. It never validates the step being left
// and clears the error map unconditionally.
func (srv *wizardService) Back(ctx context.Context, draftID uuid.UUID) (*usecase.Snapshot, error) {
	var snap *usecase.Snapshot
	err := srv.sessions.Update(ctx, draftID, func(sess *entity.WizardSession) error {
		if err := guardMutable(sess); err != nil {
			return err
		}

		if sess.Step > entity.StepIdentity {
			sess.Step--
		}
		sess.Errors = entity.ErrorMap{}
		sess.UpdatedAt = time.Now().UTC()
		snap = snapshot(sess)

		return nil
	})
	if err != nil {
		return nil, mapSessionErr(err)
	}

	return snap, nil
}

// Submit is the terminal gate. The entire draft is re-validated against the
// full rule table regardless of per-step history; only a fully valid draft
// is flattened and handed to the submission boundary, exactly once. While a
// submission is outstanding the session rejects further Submit calls.
func (srv *wizardService) Submit(ctx context.Context, draftID uuid.UUID) (*usecase.SubmitOutput, error) {
	payload, event, err := srv.prepareSubmission(ctx, draftID)
	if err != nil {
		return nil, err
	}

	result, submitErr := srv.submitter.CreateStore(ctx, payload)

	if finishErr := srv.finishSubmission(ctx, draftID, submitErr == nil); finishErr != nil {
		srv.logger.Error("Failed to finish submission",
			slog.String("draft_id", draftID.String()),
			slog.Any("error", finishErr),
		)
	}

	if submitErr != nil {
		event.Outcome = service.OutcomeFailed
		event.Detail = submitErr.Error()
		srv.publish(ctx, event)

		srv.logger.Error("Store submission failed",
			slog.String("draft_id", draftID.String()),
			slog.Any("error", submitErr),
		)

		return nil, domainerrors.ErrSubmissionFailed.WithDetails(submitErr.Error())
	}

	event.Outcome = service.OutcomeSubmitted
	srv.publish(ctx, event)

	out := &usecase.SubmitOutput{
		StoreID:  result.StoreID,
		StoreURL: result.StoreURL,
	}
	if out.StoreURL == "" {
		out.StoreURL = srv.baseURL + "/stores/" + event.Slug
	}
	if png, qrErr := srv.qrcode.GenerateStoreQR(out.StoreURL); qrErr == nil {
		out.QRCodePNG = png
	} else {
		srv.logger.Warn("QR code generation failed", slog.Any("error", qrErr))
	}

	srv.logger.Info("Store registered",
		slog.String("draft_id", draftID.String()),
		slog.String("slug", event.Slug),
		slog.String("store_url", out.StoreURL),
	)

	return out, nil
}

// prepareSubmission runs the final validation gate under the session lock,
// marks the submission in flight, and builds the transport payload. No
// payload is constructed when validation fails.
func (srv *wizardService) prepareSubmission(ctx context.Context, draftID uuid.UUID) (*service.StorePayload, *service.WizardEvent, error) {
	var (
		payload *service.StorePayload
		event   *service.WizardEvent
	)

	err := srv.sessions.Update(ctx, draftID, func(sess *entity.WizardSession) error {
		if sess.Completed {
			return errors.WithStack(domainerrors.ErrDraftCompleted)
		}
		if sess.Submitting {
			return errors.WithStack(domainerrors.ErrSubmitInFlight)
		}
		if sess.Step != entity.StepReview {
			return errors.WithStack(domainerrors.ErrNotAtReviewStep)
		}

		draftErrors := srv.validator.ValidateAll(sess.Draft)
		sess.Errors = draftErrors
		sess.UpdatedAt = time.Now().UTC()
		if !draftErrors.IsEmpty() {
			return errors.WithStack(domainerrors.ErrValidationFailed)
		}

		sess.Submitting = true
		payload = service.BuildStorePayload(sess.Draft)
		event = &service.WizardEvent{
			RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
			DraftID:    sess.ID.String(),
			OwnerID:    sess.Draft.OwnerID.String(),
			StoreName:  sess.Draft.Name,
			Slug:       sess.Draft.Slug,
			OccurredAt: time.Now().UTC(),
		}

		return nil
	})
	if err != nil {
		return nil, nil, mapSessionErr(err)
	}

	return payload, event, nil
}

// finishSubmission clears the in-flight flag and, on success, marks the
// draft terminally consumed.
func (srv *wizardService) finishSubmission(ctx context.Context, draftID uuid.UUID, succeeded bool) error {
	return srv.sessions.Update(ctx, draftID, func(sess *entity.WizardSession) error {
		sess.Submitting = false
		if succeeded {
			sess.Completed = true
		}
		sess.UpdatedAt = time.Now().UTC()

		return nil
	})
}

// mutate applies one field-scoped write under the session lock and clears
// the written field's error entry.
func (srv *wizardService) mutate(ctx context.Context, draftID uuid.UUID, fn func(*entity.WizardSession) (string, error)) (*usecase.Snapshot, error) {
	var snap *usecase.Snapshot
	err := srv.sessions.Update(ctx, draftID, func(sess *entity.WizardSession) error {
		if err := guardMutable(sess); err != nil {
			return err
		}

		path, err := fn(sess)
		if err != nil {
			return mapMutationErr(err)
		}

		sess.Errors.Clear(path)
		sess.UpdatedAt = time.Now().UTC()
		snap = snapshot(sess)

		return nil
	})
	if err != nil {
		return nil, mapSessionErr(err)
	}

	return snap, nil
}

// dropStaged deletes the staged bytes behind a slot, if any. Best effort:
// an orphaned blob is only a leak, not a correctness problem.
func (srv *wizardService) dropStaged(ctx context.Context, draft *entity.StoreDraft, slot entity.AttachmentSlot) {
	var att *entity.Attachment
	switch slot {
	case entity.SlotCover:
		att = draft.Cover
	case entity.SlotLogo:
		att = draft.Logo
	}
	if att == nil {
		return
	}

	if err := srv.attachments.Delete(ctx, att.Key); err != nil {
		srv.logger.Warn("Failed to drop staged attachment",
			slog.String("key", att.Key),
			slog.Any("error", err),
		)
	}
}

func (srv *wizardService) publish(ctx context.Context, event *service.WizardEvent) {
	if err := srv.publisher.PublishWizardEvent(ctx, event); err != nil {
		srv.logger.Warn("Failed to publish wizard event",
			slog.String("draft_id", event.DraftID),
			slog.String("outcome", event.Outcome),
			slog.Any("error", err),
		)
	}
}

func guardMutable(sess *entity.WizardSession) error {
	if sess.Completed {
		return errors.WithStack(domainerrors.ErrDraftCompleted)
	}
	if sess.Submitting {
		return errors.WithStack(domainerrors.ErrSubmitInFlight)
	}

	return nil
}

func snapshot(sess *entity.WizardSession) *usecase.Snapshot {
	return &usecase.Snapshot{
		DraftID:   sess.ID,
		Step:      sess.Step,
		Completed: sess.Completed,
		Draft:     sess.Draft.Clone(),
		Errors:    sess.Errors.Clone(),
	}
}

// mapSessionErr converts store-level errors to application errors.
func mapSessionErr(err error) error {
	if errors.Is(err, repository.ErrSessionNotFound) {
		return domainerrors.ErrDraftNotFound
	}

	return err
}

// mapMutationErr converts entity mutation errors to application errors.
func mapMutationErr(err error) error {
	switch {
	case errors.Is(err, entity.ErrUnknownField):
		return domainerrors.ErrUnknownField.WithDetails(err.Error())
	case errors.Is(err, entity.ErrInvalidFieldValue):
		return domainerrors.ErrInvalidFieldValue.WithDetails(err.Error())
	case errors.Is(err, entity.ErrDayIndexRange):
		return domainerrors.ErrDayIndexRange.WithDetails(err.Error())
	case errors.Is(err, entity.ErrUnknownSlot):
		return domainerrors.ErrUnknownSlot.WithDetails(err.Error())
	default:
		return err
	}
}
