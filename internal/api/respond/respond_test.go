package respond

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteJSON(rec, []byte(`{"id":1}`), `W/"abc"`, time.Hour, true)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `{"id":1}`, rec.Body.String())
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, `W/"abc"`, rec.Header().Get("ETag"))
	assert.Equal(t, "HIT", rec.Header().Get("X-Cache"))
	assert.Equal(t, "public, max-age=3600, stale-while-revalidate=1800", rec.Header().Get("Cache-Control"))

	rec = httptest.NewRecorder()
	WriteJSON(rec, []byte(`{}`), `W/"x"`, time.Minute, false)
	assert.Equal(t, "MISS", rec.Header().Get("X-Cache"))
}

func TestWriteNotModified(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteNotModified(rec, `W/"abc"`)

	assert.Equal(t, http.StatusNotModified, rec.Code)
	assert.Equal(t, `W/"abc"`, rec.Header().Get("ETag"))
	assert.Empty(t, rec.Body.String())
}

func TestWriteErrorDetail(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteErrorDetail(rec, http.StatusBadGateway, "UPSTREAM_ERROR", "Upstream request failed", "timeout")

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, "no-cache, no-store, must-revalidate", rec.Header().Get("Cache-Control"))

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, ErrorBody{Code: "UPSTREAM_ERROR", Message: "Upstream request failed", Detail: "timeout"}, body.Error)
}

func TestWriteError_OmitsEmptyDetail(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(rec, http.StatusBadRequest, "INVALID_ID", "id must be a positive integer")

	assert.JSONEq(t, `{"error":{"code":"INVALID_ID","message":"id must be a positive integer"}}`, rec.Body.String())
}
