// Package backend posts finished registrations to the marketplace API.
package backend

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"time"

	"bazaar/config"
	"bazaar/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultTimeout = 30 * time.Second

// httpSubmitter implements StoreSubmitter by POSTing a multipart form to the
// marketplace registration endpoint. File parts are streamed straight from
// the attachment store, never buffered whole.
type httpSubmitter struct {
	endpoint    string
	httpClient  *http.Client
	attachments service.AttachmentStore
	logger      *slog.Logger
}

// createStoreResponse is the backend's acknowledgment body.
type createStoreResponse struct {
	StoreID  string `json:"store_id"`
	StoreURL string `json:"store_url"`
}

// SubmitterParams holds dependencies for the store submitter, injected by Fx
type SubmitterParams struct {
	fx.In

	Config      *config.Config
	Attachments service.AttachmentStore
	Logger      *slog.Logger
}

// NewStoreSubmitter is the constructor for httpSubmitter.
func NewStoreSubmitter(params SubmitterParams) (service.StoreSubmitter, error) {
	cfg := params.Config.Backend
	if cfg == nil || cfg.Endpoint == "" {
		return nil, errors.New("backend endpoint must be configured")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &httpSubmitter{
		endpoint:    cfg.Endpoint,
		httpClient:  &http.Client{Timeout: timeout},
		attachments: params.Attachments,
		logger:      params.Logger,
	}, nil
}

// CreateStore writes the flattened payload as multipart form data and sends
// it in a single request. The multipart body is produced through a pipe so
// attachment bytes stream directly into the request.
func (s *httpSubmitter) CreateStore(ctx context.Context, payload *service.StorePayload) (*service.SubmissionResult, error) {
	pr, pw := io.Pipe()
	writer := multipart.NewWriter(pw)

	go func() {
		pw.CloseWithError(s.writeBody(ctx, writer, payload))
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, pr)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	s.logger.Info("Submitting store registration",
		slog.String("endpoint", s.endpoint),
		slog.Int("field_count", len(payload.Fields)),
		slog.Int("file_count", len(payload.Files)),
	)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "post registration")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, errors.Wrap(err, "read registration response")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.Errorf("backend returned status %d: %s", resp.StatusCode, string(body))
	}

	var ack createStoreResponse
	if len(body) > 0 {
		if err := json.Unmarshal(body, &ack); err != nil {
			return nil, errors.Wrap(err, "decode registration response")
		}
	}

	return &service.SubmissionResult{
		StoreID:  ack.StoreID,
		StoreURL: ack.StoreURL,
	}, nil
}

// writeBody emits every scalar field, then streams each file part out of the
// attachment store.
func (s *httpSubmitter) writeBody(ctx context.Context, writer *multipart.Writer, payload *service.StorePayload) error {
	for _, field := range payload.Fields {
		if err := writer.WriteField(field.Key, field.Value); err != nil {
			return errors.Wrapf(err, "write field %s", field.Key)
		}
	}

	for _, part := range payload.Files {
		fw, err := writer.CreateFormFile(part.Field, part.Filename)
		if err != nil {
			return errors.Wrapf(err, "create file part %s", part.Field)
		}

		r, err := s.attachments.Open(ctx, part.BlobKey)
		if err != nil {
			return errors.Wrapf(err, "open staged attachment %s", part.BlobKey)
		}

		_, err = io.Copy(fw, r)
		r.Close()
		if err != nil {
			return errors.Wrapf(err, "stream file part %s", part.Field)
		}
	}

	return errors.WithStack(writer.Close())
}
