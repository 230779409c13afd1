// Copyright (c) 2026 Diwan. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package requestutil_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/diwan/internal/platform/apperr"
	requestutil "github.com/taibuivan/diwan/internal/platform/request"
)

/*
TestQueryInt verifies defaulting of absent values and rejection of malformed ones.
*/
func TestQueryInt(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		want    int
		invalid bool
	}{
		{"absent", "", 10, false},
		{"blank", "?count=%20", 10, false},
		{"number", "?count=3", 3, false},
		{"negative", "?count=-4", -4, false},
		{"word", "?count=abc", 0, true},
		{"float", "?count=2.5", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest(http.MethodGet, "/poems/random"+tt.query, nil)

			got, err := requestutil.QueryInt(request, "count", 10)
			if !tt.invalid {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
				return
			}

			appErr := apperr.As(err)
			require.NotNil(t, appErr)
			assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
			assert.Equal(t, "count", appErr.Details[0].Field)
		})
	}
}
