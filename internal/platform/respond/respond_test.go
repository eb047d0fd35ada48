// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package respond_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/redherring/internal/platform/apperr"
	"github.com/taibuivan/redherring/internal/platform/respond"
)

func TestError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantText   string
	}{
		{"not found", apperr.NotFound("Route"), http.StatusNotFound, apperr.CodeNotFound, "Route introuvable."},
		{"rate limited", apperr.RateLimited(), http.StatusTooManyRequests, apperr.CodeRateLimited, ""},
		{"plain error is hidden", errors.New("dial tcp: refused"), http.StatusInternalServerError, apperr.CodeInternal, "Une erreur inattendue est survenue."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			respond.Error(recorder, httptest.NewRequest(http.MethodGet, "/", nil), tt.err)

			assert.Equal(t, tt.wantStatus, recorder.Code)

			var body respond.ErrorEnvelope
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
			assert.Equal(t, tt.wantCode, body.Code)
			if tt.wantText != "" {
				assert.Equal(t, tt.wantText, body.Error)
			}
			assert.NotContains(t, recorder.Body.String(), "dial tcp")
		})
	}
}

func TestText(t *testing.T) {
	recorder := httptest.NewRecorder()
	respond.Text(recorder, "hello")

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "hello", recorder.Body.String())
	assert.Contains(t, recorder.Header().Get("Content-Type"), "text/plain")
}
