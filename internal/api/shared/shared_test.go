package shared

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/phrazzld/benefit-cards/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type samplePayload struct {
	Name string `json:"name" validate:"required"`
}

func TestDecodeJSON(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr error
		anyErr  bool
	}{
		{name: "valid", body: `{"name":"card"}`},
		{name: "empty body", body: "", wantErr: ErrEmptyBody},
		{name: "unknown field", body: `{"name":"card","extra":1}`, anyErr: true},
		{name: "trailing data", body: `{"name":"card"}{"name":"again"}`, anyErr: true},
		{name: "malformed", body: `{"name":`, anyErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))

			var got samplePayload
			err := DecodeJSON(req, &got)
			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.anyErr:
				assert.Error(t, err)
			default:
				require.NoError(t, err)
				assert.Equal(t, "card", got.Name)
			}
		})
	}
}

func TestValidateRequest(t *testing.T) {
	assert.NoError(t, ValidateRequest(&samplePayload{Name: "card"}))
	assert.Error(t, ValidateRequest(&samplePayload{}))
}

func TestContextValues(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, GetTraceID(ctx))

	_, ok := GetAPIKey(ctx)
	assert.False(t, ok)

	ctx = SetTraceID(ctx)
	assert.Len(t, GetTraceID(ctx), 36)

	key, ok := GetAPIKey(WithAPIKey(ctx, "abc"))
	assert.True(t, ok)
	assert.Equal(t, "abc", key)

	_, ok = GetAPIKey(WithAPIKey(ctx, ""))
	assert.False(t, ok)
}

func TestRespondWithJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondWithJSON(rec, httptest.NewRequest(http.MethodGet, "/", nil), http.StatusCreated, map[string]int{"id": 1})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"id":1}`, rec.Body.String())
}

func TestRespondWithErrorAndLog(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		wantLevel string
	}{
		{"client error logs at debug", http.StatusForbidden, "DEBUG"},
		{"server error logs at error", http.StatusInternalServerError, "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

			req := httptest.NewRequest(http.MethodPatch, "/api/cards/1/block", nil)
			ctx := logger.WithContext(SetTraceID(req.Context()), log)
			req = req.WithContext(ctx)

			rec := httptest.NewRecorder()
			cause := errors.New("connect postgres://cards:hunter2@db:5432/cards failed")
			RespondWithErrorAndLog(rec, req, tt.status, "Safe message", cause)

			assert.Equal(t, tt.status, rec.Code)

			var resp ErrorResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			assert.Equal(t, "Safe message", resp.Error)
			assert.Equal(t, GetTraceID(ctx), resp.TraceID)

			var entry map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			assert.Equal(t, tt.wantLevel, entry["level"])
			assert.NotContains(t, buf.String(), "hunter2")
		})
	}
}
