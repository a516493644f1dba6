package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "bazaar/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func newErrorContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/wizard/drafts", nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func newTestErrorMiddleware() *ErrorMiddleware {
	return NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestHandleHTTPError_AppError(t *testing.T) {
	m := newTestErrorMiddleware()
	c, rec := newErrorContext()

	m.HandleHTTPError(domainerrors.ErrDraftNotFound, c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "DRAFT_NOT_FOUND")
}

func TestHandleHTTPError_EchoHTTPErrorWithStringMessage(t *testing.T) {
	m := newTestErrorMiddleware()
	c, rec := newErrorContext()

	m.HandleHTTPError(echo.NewHTTPError(http.StatusBadRequest, "draft ID must be a UUID"), c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "draft ID must be a UUID")
	assert.Contains(t, rec.Body.String(), "HTTP_ERROR")
}

func TestHandleHTTPError_EchoHTTPErrorWithNonStringMessage(t *testing.T) {
	m := newTestErrorMiddleware()
	c, rec := newErrorContext()

	// Handlers can stuff arbitrary values into NewHTTPError; the handler
	// must render them instead of panicking.
	m.HandleHTTPError(echo.NewHTTPError(http.StatusBadGateway, errors.New("upstream closed")), c)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "upstream closed")
}

func TestHandleHTTPError_UnknownErrorFallsBackTo500(t *testing.T) {
	m := newTestErrorMiddleware()
	c, rec := newErrorContext()

	m.HandleHTTPError(errors.New("wiring came loose"), c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "INTERNAL_ERROR")
}
