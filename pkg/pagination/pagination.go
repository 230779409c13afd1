// Copyright (c) 2026 Diwan. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package pagination pages in-memory result lists for the API.
//
// Catalogue results are assembled in full (remote records, synthesized
// poems, the curated library) before they are paged, so paging here is a
// slice window rather than a SQL OFFSET.
package pagination

import (
	"math"
	"net/http"

	"github.com/taibuivan/diwan/pkg/convert"
)

const (
	// DefaultLimit is the page size when the client does not ask for one.
	DefaultLimit = 20
	// MaxLimit caps the page size; larger requests are clamped down to it.
	MaxLimit = 100
	// DefaultPage is the first page (1-indexed).
	DefaultPage = 1
	// MaxPage keeps the offset of any page representable as an int.
	MaxPage = math.MaxInt / MaxLimit
)

// Params holds the parsed page and limit from a request's query string.
type Params struct {
	Page  int
	Limit int
}

// Offset returns the index of the first item on the page.
// It saturates at [math.MaxInt] instead of overflowing.
func (p Params) Offset() int {
	if p.Page <= 1 || p.Limit <= 0 {
		return 0
	}
	if p.Page-1 > math.MaxInt/p.Limit {
		return math.MaxInt
	}
	return (p.Page - 1) * p.Limit
}

// Window returns the items covered by the page.
// Pages past the end yield an empty, non-nil slice.
func Window[T any](items []T, params Params) []T {
	start := min(max(params.Offset(), 0), len(items))
	end := start + min(max(params.Limit, 0), len(items)-start)
	return items[start:end:end]
}

// Meta is the pagination metadata included in list responses.
type Meta struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// NewMeta builds the metadata for a page of a list holding total items.
func NewMeta(params Params, total int) Meta {
	totalPages := 0
	if params.Limit > 0 {
		totalPages = (total + params.Limit - 1) / params.Limit
	}

	return Meta{
		Page:       params.Page,
		Limit:      params.Limit,
		Total:      total,
		TotalPages: totalPages,
	}
}

// FromRequest parses the "page" and "limit" query parameters.
//
// Malformed or non-positive values fall back to [DefaultPage] and
// [DefaultLimit]; a limit above [MaxLimit] or a page above [MaxPage]
// is clamped to it.
func FromRequest(r *http.Request) Params {
	query := r.URL.Query()
	page := convert.ToIntD(query.Get("page"), DefaultPage)
	limit := convert.ToIntD(query.Get("limit"), DefaultLimit)

	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}

	return Params{Page: min(page, MaxPage), Limit: min(limit, MaxLimit)}
}
