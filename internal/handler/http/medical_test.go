package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ScriptedSpythoN/demoos/internal/pkg/storage"
	medicalservice "github.com/ScriptedSpythoN/demoos/internal/service/medical"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingStorage struct {
	uploaded []string
	deleted  []string
}

var _ storage.FileStorage = (*recordingStorage)(nil)

func (s *recordingStorage) Upload(_ context.Context, _ io.Reader, path string, _ string) (string, error) {
	s.uploaded = append(s.uploaded, path)
	return path, nil
}

func (s *recordingStorage) Download(context.Context, string) (io.ReadCloser, error) {
	return nil, nil
}

func (s *recordingStorage) Delete(_ context.Context, path string) error {
	s.deleted = append(s.deleted, path)
	return nil
}

func (s *recordingStorage) GetURL(context.Context, string, time.Duration) (string, error) {
	return "", nil
}

func (s *recordingStorage) Exists(context.Context, string) (bool, error) { return false, nil }

func (s *recordingStorage) AbsolutePath(path string) string { return path }

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}

func TestReviewRejectsMalformedBody(t *testing.T) {
	h := NewMedicalHandler(nil, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/medical/requests/abc/review", bytes.NewBufferString("{not json"))
	rec := httptest.NewRecorder()

	h.Review(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeResponse(t, rec)
	assert.Equal(t, false, body["success"])
}

func TestReviewRejectsInvalidAction(t *testing.T) {
	h := NewMedicalHandler(nil, nil)

	payload, _ := json.Marshal(map[string]string{"action": "MAYBE"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/medical/requests/abc/review", bytes.NewBuffer(payload))
	rec := httptest.NewRecorder()

	h.Review(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	body := decodeResponse(t, rec)
	errDetail, ok := body["error"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "VALIDATION_ERROR", errDetail["code"])
}

func TestSubmitDeletesDocumentWhenServiceRejects(t *testing.T) {
	svc := medicalservice.NewService(nil, nil, nil, nil, nil, nil,
		slog.New(slog.NewTextHandler(io.Discard, nil)))
	fs := &recordingStorage{}
	h := NewMedicalHandler(svc, fs)

	var form bytes.Buffer
	mw := multipart.NewWriter(&form)
	require.NoError(t, mw.WriteField("student_roll_no", "CS21B001"))
	require.NoError(t, mw.WriteField("department_id", "dept-1"))
	require.NoError(t, mw.WriteField("from_date", "2024-03-15"))
	require.NoError(t, mw.WriteField("to_date", "2024-03-12"))
	fw, err := mw.CreateFormFile("document", "certificate.pdf")
	require.NoError(t, err)
	_, err = fw.Write([]byte("%PDF-1.4"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/medical/requests", &form)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()

	h.Submit(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.Len(t, fs.uploaded, 1)
	assert.Equal(t, fs.uploaded, fs.deleted)
}

func TestSubmitRequiresDocument(t *testing.T) {
	h := NewMedicalHandler(nil, nil)

	var form bytes.Buffer
	req := httptest.NewRequest(http.MethodPost, "/api/v1/medical/requests", &form)
	req.Header.Set("Content-Type", "multipart/form-data; boundary=xxx")
	rec := httptest.NewRecorder()

	h.Submit(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
