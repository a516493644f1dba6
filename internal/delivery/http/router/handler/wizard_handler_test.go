package handler

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"bazaar/internal/delivery/http/validator"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/service"
	mockservice "bazaar/internal/mocks/service"
	mockusecase "bazaar/internal/mocks/usecase"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type handlerFixtures struct {
	handler     *WizardHandler
	uc          *mockusecase.MockWizardUsecase
	identity    *mockservice.MockIdentityResolver
	attachments *mockservice.MockAttachmentStore
	echo        *echo.Echo
}

func newHandlerFixtures(t *testing.T) *handlerFixtures {
	t.Helper()

	uc := mockusecase.NewMockWizardUsecase(t)
	identity := mockservice.NewMockIdentityResolver(t)
	attachments := mockservice.NewMockAttachmentStore(t)

	e := echo.New()
	e.Validator = validator.New()

	return &handlerFixtures{
		handler: &WizardHandler{
			uc:          uc,
			identity:    identity,
			attachments: attachments,
			logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		},
		uc:          uc,
		identity:    identity,
		attachments: attachments,
		echo:        e,
	}
}

func (f *handlerFixtures) newContext(method, target string, body io.Reader) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, body)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	return f.echo.NewContext(req, rec), rec
}

func emptySnapshot(draftID uuid.UUID) *usecase.Snapshot {
	return &usecase.Snapshot{
		DraftID: draftID,
		Step:    entity.StepIdentity,
		Draft:   entity.NewStoreDraft(),
		Errors:  entity.ErrorMap{},
	}
}

func TestStartDraftWithoutCredential(t *testing.T) {
	f := newHandlerFixtures(t)
	draftID := uuid.New()

	f.uc.EXPECT().
		StartDraft(mock.Anything, mock.MatchedBy(func(in *usecase.StartDraftInput) bool {
			return in.Identity == nil
		})).
		Return(emptySnapshot(draftID), nil)

	c, rec := f.newContext(http.MethodPost, "/wizard/drafts", nil)
	require.NoError(t, f.handler.StartDraft(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), draftID.String())
	f.identity.AssertNotCalled(t, "Resolve")
}

func TestStartDraftWithBearerCredential(t *testing.T) {
	f := newHandlerFixtures(t)
	draftID := uuid.New()
	owner := &service.Identity{
		UserID:   uuid.New(),
		Email:    "owner@bluebottle.example",
		Username: "blue_bottle",
	}

	f.identity.EXPECT().Resolve(mock.Anything, "valid-token").Return(owner, nil)
	f.uc.EXPECT().
		StartDraft(mock.Anything, mock.MatchedBy(func(in *usecase.StartDraftInput) bool {
			return in.Identity == owner
		})).
		Return(emptySnapshot(draftID), nil)

	c, rec := f.newContext(http.MethodPost, "/wizard/drafts", nil)
	c.Request().Header.Set(echo.HeaderAuthorization, "Bearer valid-token")
	require.NoError(t, f.handler.StartDraft(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestStartDraftRejectsBadCredential(t *testing.T) {
	f := newHandlerFixtures(t)

	f.identity.EXPECT().Resolve(mock.Anything, "forged").Return(nil, errors.New("token is malformed"))

	c, rec := f.newContext(http.MethodPost, "/wizard/drafts", nil)
	c.Request().Header.Set(echo.HeaderAuthorization, "Bearer forged")
	require.NoError(t, f.handler.StartDraft(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_CREDENTIAL")
	f.uc.AssertNotCalled(t, "StartDraft")
}

func TestGetDraftRejectsMalformedID(t *testing.T) {
	f := newHandlerFixtures(t)

	c, _ := f.newContext(http.MethodGet, "/wizard/drafts/not-a-uuid", nil)
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	err := f.handler.GetDraft(c)
	require.Error(t, err)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	f.uc.AssertNotCalled(t, "GetDraft")
}

func TestSetFieldForwardsFieldAndValue(t *testing.T) {
	f := newHandlerFixtures(t)
	draftID := uuid.New()

	f.uc.EXPECT().
		SetField(mock.Anything, draftID, mock.MatchedBy(func(in *usecase.SetFieldInput) bool {
			return in.Field == "name" && in.Value == "Blue Bottle Ceramics"
		})).
		Return(emptySnapshot(draftID), nil)

	body := strings.NewReader(`{"field":"name","value":"Blue Bottle Ceramics"}`)
	c, rec := f.newContext(http.MethodPatch, "/wizard/drafts/"+draftID.String()+"/fields", body)
	c.SetParamNames("id")
	c.SetParamValues(draftID.String())

	require.NoError(t, f.handler.SetField(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSetFieldRequiresFieldName(t *testing.T) {
	f := newHandlerFixtures(t)
	draftID := uuid.New()

	body := strings.NewReader(`{"value":"orphan"}`)
	c, rec := f.newContext(http.MethodPatch, "/wizard/drafts/"+draftID.String()+"/fields", body)
	c.SetParamNames("id")
	c.SetParamValues(draftID.String())

	require.NoError(t, f.handler.SetField(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	f.uc.AssertNotCalled(t, "SetField")
}

func TestSetHourFieldForwardsDayIndex(t *testing.T) {
	f := newHandlerFixtures(t)
	draftID := uuid.New()

	f.uc.EXPECT().
		SetHourField(mock.Anything, draftID, mock.MatchedBy(func(in *usecase.SetHourFieldInput) bool {
			return in.DayIndex == 3 && in.Field == "open_time" && in.Value == "10:00"
		})).
		Return(emptySnapshot(draftID), nil)

	body := strings.NewReader(`{"day_index":3,"field":"open_time","value":"10:00"}`)
	c, rec := f.newContext(http.MethodPatch, "/wizard/drafts/"+draftID.String()+"/hours", body)
	c.SetParamNames("id")
	c.SetParamValues(draftID.String())

	require.NoError(t, f.handler.SetHourField(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

// multipartUpload builds a multipart body with one file part carrying an
// explicit content type, the way browsers submit file inputs.
func multipartUpload(t *testing.T, filename, contentType string, content []byte) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	return &buf, writer.FormDataContentType()
}

func TestUploadFileStagesAndAttaches(t *testing.T) {
	f := newHandlerFixtures(t)
	draftID := uuid.New()
	content := []byte("png-bytes")

	f.attachments.EXPECT().
		Put(mock.Anything, mock.MatchedBy(func(key string) bool {
			return strings.HasPrefix(key, "uploads/"+draftID.String()+"/logo-")
		}), mock.Anything, "image/png").
		Return(int64(len(content)), nil)

	f.uc.EXPECT().
		AttachFile(mock.Anything, draftID, mock.MatchedBy(func(in *usecase.AttachFileInput) bool {
			return in.Slot == entity.SlotLogo &&
				in.Attachment.Filename == "logo.png" &&
				in.Attachment.MIME == "image/png" &&
				in.Attachment.Size == int64(len(content))
		})).
		Return(emptySnapshot(draftID), nil)

	body, contentType := multipartUpload(t, "logo.png", "image/png", content)
	req := httptest.NewRequest(http.MethodPost, "/wizard/drafts/"+draftID.String()+"/files/logo", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	c := f.echo.NewContext(req, rec)
	c.SetParamNames("id", "slot")
	c.SetParamValues(draftID.String(), "logo")

	require.NoError(t, f.handler.UploadFile(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUploadFileRejectsUnknownSlot(t *testing.T) {
	f := newHandlerFixtures(t)
	draftID := uuid.New()

	c, _ := f.newContext(http.MethodPost, "/wizard/drafts/"+draftID.String()+"/files/avatar", nil)
	c.SetParamNames("id", "slot")
	c.SetParamValues(draftID.String(), "avatar")

	err := f.handler.UploadFile(c)
	assert.True(t, errors.Is(err, domainerrors.ErrUnknownSlot))
	f.attachments.AssertNotCalled(t, "Put")
}

func TestUploadFileDropsStagedBytesOnRejection(t *testing.T) {
	f := newHandlerFixtures(t)
	draftID := uuid.New()
	content := []byte("png-bytes")

	var stagedKey string
	f.attachments.EXPECT().
		Put(mock.Anything, mock.Anything, mock.Anything, "image/png").
		RunAndReturn(func(_ context.Context, key string, _ io.Reader, _ string) (int64, error) {
			stagedKey = key

			return int64(len(content)), nil
		})

	f.uc.EXPECT().
		AttachFile(mock.Anything, draftID, mock.Anything).
		Return(nil, domainerrors.ErrDraftCompleted)

	// The staged bytes are dropped once the draft rejects the attachment.
	f.attachments.EXPECT().
		Delete(mock.Anything, mock.MatchedBy(func(key string) bool { return key == stagedKey })).
		Return(nil)

	body, contentType := multipartUpload(t, "cover.png", "image/png", content)
	req := httptest.NewRequest(http.MethodPost, "/wizard/drafts/"+draftID.String()+"/files/cover_photo", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	c := f.echo.NewContext(req, rec)
	c.SetParamNames("id", "slot")
	c.SetParamValues(draftID.String(), "cover_photo")

	err := f.handler.UploadFile(c)
	assert.True(t, errors.Is(err, domainerrors.ErrDraftCompleted))
}

func TestRemoveFile(t *testing.T) {
	f := newHandlerFixtures(t)
	draftID := uuid.New()

	f.uc.EXPECT().
		RemoveFile(mock.Anything, draftID, entity.SlotLogo).
		Return(emptySnapshot(draftID), nil)

	c, rec := f.newContext(http.MethodDelete, "/wizard/drafts/"+draftID.String()+"/files/logo", nil)
	c.SetParamNames("id", "slot")
	c.SetParamValues(draftID.String(), "logo")

	require.NoError(t, f.handler.RemoveFile(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSubmitReturnsRegistration(t *testing.T) {
	f := newHandlerFixtures(t)
	draftID := uuid.New()

	f.uc.EXPECT().
		Submit(mock.Anything, draftID).
		Return(&usecase.SubmitOutput{
			StoreID:  "store-81",
			StoreURL: "https://market.example/stores/blue-bottle-ceramics",
		}, nil)

	c, rec := f.newContext(http.MethodPost, "/wizard/drafts/"+draftID.String()+"/submit", nil)
	c.SetParamNames("id")
	c.SetParamValues(draftID.String())

	require.NoError(t, f.handler.Submit(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Store registered")
	assert.Contains(t, rec.Body.String(), "blue-bottle-ceramics")
}

func TestHealthCheck(t *testing.T) {
	f := newHandlerFixtures(t)

	c, rec := f.newContext(http.MethodGet, "/health", nil)
	require.NoError(t, HealthCheck(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}
