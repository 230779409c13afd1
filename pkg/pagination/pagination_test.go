// Copyright (c) 2026 Diwan. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package pagination_test

import (
	"math"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/diwan/pkg/pagination"
)

/*
TestFromRequest verifies clamping of page and limit parameters.
*/
func TestFromRequest(t *testing.T) {
	tests := []struct {
		query string
		want  pagination.Params
	}{
		{"", pagination.Params{Page: 1, Limit: pagination.DefaultLimit}},
		{"?page=3&limit=10", pagination.Params{Page: 3, Limit: 10}},
		{"?page=-1&limit=1000", pagination.Params{Page: 1, Limit: pagination.MaxLimit}},
		{"?page=abc&limit=0", pagination.Params{Page: 1, Limit: pagination.DefaultLimit}},
		{"?page=9223372036854775807", pagination.Params{Page: pagination.MaxPage, Limit: pagination.DefaultLimit}},
	}

	for _, tt := range tests {
		request := httptest.NewRequest("GET", "/library"+tt.query, nil)
		assert.Equal(t, tt.want, pagination.FromRequest(request), tt.query)
	}
}

/*
TestWindow verifies slicing at the start, middle and past the end of a list.
*/
func TestWindow(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	assert.Equal(t, []int{1, 2}, pagination.Window(items, pagination.Params{Page: 1, Limit: 2}))
	assert.Equal(t, []int{5}, pagination.Window(items, pagination.Params{Page: 3, Limit: 2}))

	past := pagination.Window(items, pagination.Params{Page: 9, Limit: 2})
	assert.NotNil(t, past)
	assert.Empty(t, past)
}

/*
TestWindow_HugePage verifies that page numbers near the int limit yield an empty page.
*/
func TestWindow_HugePage(t *testing.T) {
	items := []int{1, 2, 3}

	tests := []struct {
		name   string
		params pagination.Params
	}{
		{"max int page", pagination.Params{Page: math.MaxInt, Limit: 20}},
		{"max page", pagination.Params{Page: pagination.MaxPage, Limit: pagination.MaxLimit}},
		{"parsed from query", pagination.FromRequest(httptest.NewRequest("GET", "/library?page=9223372036854775807", nil))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.GreaterOrEqual(t, tt.params.Offset(), 0)

			var page []int
			require.NotPanics(t, func() { page = pagination.Window(items, tt.params) })
			assert.NotNil(t, page)
			assert.Empty(t, page)
		})
	}
}

/*
TestNewMeta verifies the total page computation.
*/
func TestNewMeta(t *testing.T) {
	meta := pagination.NewMeta(pagination.Params{Page: 2, Limit: 20}, 41)
	assert.Equal(t, 3, meta.TotalPages)
	assert.Equal(t, 2, meta.Page)
	assert.Equal(t, 0, pagination.NewMeta(pagination.Params{Page: 1}, 10).TotalPages)
}
