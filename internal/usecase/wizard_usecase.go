// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/service"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// StartDraftInput carries the explicit identity value used to hydrate a new
// draft. Identity is nil when no authenticated user resolved.
type StartDraftInput struct {
	Identity *service.Identity
}

// SetFieldInput writes one top-level scalar field of the draft.
type SetFieldInput struct {
	Field string
	Value any
}

// SetAddressFieldInput writes one field of the nested address sub-record.
type SetAddressFieldInput struct {
	Field string
	Value string
}

// SetHourFieldInput writes one field of one day entry of the schedule.
type SetHourFieldInput struct {
	DayIndex int
	Field    string
	Value    any
}

// AttachFileInput stores an uploaded attachment reference on the draft. The
// bytes are already staged in the attachment store under Attachment.Key.
type AttachFileInput struct {
	Slot       entity.AttachmentSlot
	Attachment *entity.Attachment
}

// --- Output DTOs ---

// Snapshot is the read-only view of a wizard session handed to the rendering
// boundary: current step, draft, and error map.
type Snapshot struct {
	DraftID   uuid.UUID          `json:"draft_id"`
	Step      entity.Step        `json:"step"`
	Completed bool               `json:"completed"`
	Advanced  bool               `json:"advanced,omitempty"` // whether the last Next call moved forward
	Draft     *entity.StoreDraft `json:"draft"`
	Errors    entity.ErrorMap    `json:"errors"`
}

// SubmitOutput is the acknowledgment of a successful terminal submission.
type SubmitOutput struct {
	StoreID   string `json:"store_id,omitempty"`
	StoreURL  string `json:"store_url"`
	QRCodePNG []byte `json:"qr_code_png,omitempty"`
}

// WizardUsecase sequences the store-registration wizard: the form state
// store, the per-step validation gate, and the terminal submission.
type WizardUsecase interface {
	StartDraft(ctx context.Context, input *StartDraftInput) (*Snapshot, error)
	GetDraft(ctx context.Context, draftID uuid.UUID) (*Snapshot, error)
	SetField(ctx context.Context, draftID uuid.UUID, input *SetFieldInput) (*Snapshot, error)
	SetAddressField(ctx context.Context, draftID uuid.UUID, input *SetAddressFieldInput) (*Snapshot, error)
	SetHourField(ctx context.Context, draftID uuid.UUID, input *SetHourFieldInput) (*Snapshot, error)
	AttachFile(ctx context.Context, draftID uuid.UUID, input *AttachFileInput) (*Snapshot, error)
	RemoveFile(ctx context.Context, draftID uuid.UUID, slot entity.AttachmentSlot) (*Snapshot, error)
	Next(ctx context.Context, draftID uuid.UUID) (*Snapshot, error)
	Back(ctx context.Context, draftID uuid.UUID) (*Snapshot, error)
	Submit(ctx context.Context, draftID uuid.UUID) (*SubmitOutput, error)
}
