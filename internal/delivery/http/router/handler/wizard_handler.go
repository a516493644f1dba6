// Package handler contains the HTTP handlers for the wizard API.
package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"bazaar/internal/delivery/http/response"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/service"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// WizardHandler holds dependencies for the wizard endpoints.
type WizardHandler struct {
	uc          usecase.WizardUsecase
	identity    service.IdentityResolver
	attachments service.AttachmentStore
	logger      *slog.Logger
}

// NewWizardHandler is the constructor for WizardHandler, injected by Fx.
func NewWizardHandler(
	uc usecase.WizardUsecase,
	identity service.IdentityResolver,
	attachments service.AttachmentStore,
	logger *slog.Logger,
) *WizardHandler {
	return &WizardHandler{
		uc:          uc,
		identity:    identity,
		attachments: attachments,
		logger:      logger,
	}
}

// setFieldRequest is the body for scalar field writes.
type setFieldRequest struct {
	Field string `json:"field" validate:"required"`
	Value any    `json:"value"`
}

// setAddressFieldRequest is the body for address field writes.
type setAddressFieldRequest struct {
	Field string `json:"field" validate:"required"`
	Value string `json:"value"`
}

// setHourFieldRequest is the body for schedule field writes.
type setHourFieldRequest struct {
	DayIndex int    `json:"day_index"`
	Field    string `json:"field" validate:"required"`
	Value    any    `json:"value"`
}

// StartDraft opens a fresh wizard session. When the request carries a bearer
// credential the resolved identity pre-populates the owner fields; an absent
// credential starts a blank draft.
func (h *WizardHandler) StartDraft(c echo.Context) error {
	input := &usecase.StartDraftInput{}

	if credential := bearerToken(c); credential != "" {
		identity, err := h.identity.Resolve(c.Request().Context(), credential)
		if err != nil {
			return response.Unauthorized(c, "INVALID_CREDENTIAL", "The supplied credential could not be verified")
		}
		input.Identity = identity
	}

	snap, err := h.uc.StartDraft(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, snap, "Draft started")
}

// GetDraft returns the current session snapshot.
func (h *WizardHandler) GetDraft(c echo.Context) error {
	draftID, err := draftIDParam(c)
	if err != nil {
		return err
	}

	snap, err := h.uc.GetDraft(c.Request().Context(), draftID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, snap, "")
}

// SetField writes one top-level scalar field of the draft.
func (h *WizardHandler) SetField(c echo.Context) error {
	draftID, err := draftIDParam(c)
	if err != nil {
		return err
	}

	var req setFieldRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid field input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "field is required")
	}

	snap, err := h.uc.SetField(c.Request().Context(), draftID, &usecase.SetFieldInput{
		Field: req.Field,
		Value: req.Value,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, snap, "")
}

// SetAddressField writes one field of the address sub-record.
func (h *WizardHandler) SetAddressField(c echo.Context) error {
	draftID, err := draftIDParam(c)
	if err != nil {
		return err
	}

	var req setAddressFieldRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid address input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "field is required")
	}

	snap, err := h.uc.SetAddressField(c.Request().Context(), draftID, &usecase.SetAddressFieldInput{
		Field: req.Field,
		Value: req.Value,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, snap, "")
}

// SetHourField writes one field of one day entry of the weekly schedule.
func (h *WizardHandler) SetHourField(c echo.Context) error {
	draftID, err := draftIDParam(c)
	if err != nil {
		return err
	}

	var req setHourFieldRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid hours input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "field is required")
	}

	snap, err := h.uc.SetHourField(c.Request().Context(), draftID, &usecase.SetHourFieldInput{
		DayIndex: req.DayIndex,
		Field:    req.Field,
		Value:    req.Value,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, snap, "")
}

// UploadFile stages the uploaded bytes and records the attachment on the
// draft. Validation of size and MIME type happens at the step gate, so an
// oversized upload is visible in the draft with its violation.
func (h *WizardHandler) UploadFile(c echo.Context) error {
	draftID, err := draftIDParam(c)
	if err != nil {
		return err
	}

	slot := entity.AttachmentSlot(c.Param("slot"))
	if !entity.ValidSlot(slot) {
		return errors.WithStack(domainerrors.ErrUnknownSlot)
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Multipart field 'file' is required")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return errors.WithStack(domainerrors.ErrUploadFailed.WithDetails(err.Error()))
	}
	defer src.Close()

	mime := fileHeader.Header.Get("Content-Type")
	key := fmt.Sprintf("uploads/%s/%s-%s", draftID, slot, uuid.New())

	size, err := h.attachments.Put(c.Request().Context(), key, src, mime)
	if err != nil {
		return errors.WithStack(domainerrors.ErrUploadFailed.WithDetails(err.Error()))
	}

	snap, err := h.uc.AttachFile(c.Request().Context(), draftID, &usecase.AttachFileInput{
		Slot: slot,
		Attachment: &entity.Attachment{
			Key:      key,
			Filename: fileHeader.Filename,
			MIME:     mime,
			Size:     size,
		},
	})
	if err != nil {
		// The draft rejected the attachment, drop the staged bytes.
		if delErr := h.attachments.Delete(c.Request().Context(), key); delErr != nil {
			h.logger.Warn("Failed to drop rejected upload", slog.String("key", key), slog.Any("error", delErr))
		}

		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, snap, "File attached")
}

// RemoveFile clears an attachment slot.
func (h *WizardHandler) RemoveFile(c echo.Context) error {
	draftID, err := draftIDParam(c)
	if err != nil {
		return err
	}

	slot := entity.AttachmentSlot(c.Param("slot"))
	if !entity.ValidSlot(slot) {
		return errors.WithStack(domainerrors.ErrUnknownSlot)
	}

	snap, err := h.uc.RemoveFile(c.Request().Context(), draftID, slot)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, snap, "File removed")
}

// Next validates the current step and advances on success.
func (h *WizardHandler) Next(c echo.Context) error {
	draftID, err := draftIDParam(c)
	if err != nil {
		return err
	}

	snap, err := h.uc.Next(c.Request().Context(), draftID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, snap, "")
}

// Back moves to the previous step without validating.
func (h *WizardHandler) Back(c echo.Context) error {
	draftID, err := draftIDParam(c)
	if err != nil {
		return err
	}

	snap, err := h.uc.Back(c.Request().Context(), draftID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, snap, "")
}

// Submit runs the terminal validation gate and posts the registration.
func (h *WizardHandler) Submit(c echo.Context) error {
	draftID, err := draftIDParam(c)
	if err != nil {
		return err
	}

	out, err := h.uc.Submit(c.Request().Context(), draftID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, out, "Store registered")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func draftIDParam(c echo.Context) (uuid.UUID, error) {
	draftID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, "draft ID must be a UUID")
	}

	return draftID, nil
}

func bearerToken(c echo.Context) string {
	auth := c.Request().Header.Get(echo.HeaderAuthorization)
	if token, found := strings.CutPrefix(auth, "Bearer "); found {
		return token
	}

	return ""
}
