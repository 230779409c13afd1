package generate_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/diwan/internal/generate"
)

/*
TestHandler_Generate verifies status codes for the generation endpoint.
*/
func TestHandler_Generate(t *testing.T) {
	router := chi.NewRouter()
	generate.NewHandler(generate.NewService(&fakeCompleter{reply: "قصيدة"}, nil)).RegisterRoutes(router)

	tests := []struct {
		name   string
		body   string
		status int
	}{
		{"ok", `{"topic": "وصف الطبيعة"}`, http.StatusOK},
		{"missing topic", `{}`, http.StatusBadRequest},
		{"bad json", `topic`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/generate", strings.NewReader(tt.body)))
			assert.Equal(t, tt.status, recorder.Code)
		})
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/generate/topics", nil))
	require.Equal(t, http.StatusOK, recorder.Code)

	var envelope struct {
		Data []string `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	assert.Contains(t, envelope.Data, "الحكمة")
}
