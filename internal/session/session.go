// Copyright (c) 2026 Diwan. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package session keeps per-reader application state on the server.

A reader is identified by the X-Session-ID header. Their favorites, active
library filters, current page and completed lessons live in a [State] that
expires after a period of inactivity. State is only ever changed through the
actions defined on it, applied inside [Store.Update].

Favorites are a set of poem ids. They are never written onto the poem records
themselves.
*/
package session

import (
	"slices"
	"time"
)

// Filters mirrors the library search bar.
type Filters struct {
	Query string `json:"query"`
	Type  string `json:"type"`
	Era   string `json:"era"`
	Poet  string `json:"poet"`
}

// State is everything the server remembers about one reader.
type State struct {
	ID               string    `json:"id"`
	Favorites        []string  `json:"favorites"`
	Filters          Filters   `json:"filters"`
	Page             int       `json:"page"`
	CompletedLessons []string  `json:"completed_lessons"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// New returns the empty state of a fresh session.
func New(id string) State {
	return State{
		ID:               id,
		Favorites:        []string{},
		CompletedLessons: []string{},
		Page:             1,
	}
}

// # Actions

// ToggleFavorite adds or removes poemID and reports whether it is now a favorite.
func (state *State) ToggleFavorite(poemID string) bool {
	var added bool
	state.Favorites, added = toggle(state.Favorites, poemID)
	return added
}

// IsFavorite reports whether poemID is among the favorites.
func (state State) IsFavorite(poemID string) bool {
	return slices.Contains(state.Favorites, poemID)
}

// SetFilters replaces the active filters and returns to the first page.
func (state *State) SetFilters(filters Filters) {
	state.Filters = filters
	state.Page = 1
}

// SetPage moves the library listing to page. Pages start at 1.
func (state *State) SetPage(page int) {
	state.Page = max(page, 1)
}

// ToggleLesson marks or unmarks lessonID and reports whether it is now completed.
func (state *State) ToggleLesson(lessonID string) bool {
	var added bool
	state.CompletedLessons, added = toggle(state.CompletedLessons, lessonID)
	return added
}

// toggle removes value when present, otherwise appends it.
func toggle(set []string, value string) ([]string, bool) {
	if index := slices.Index(set, value); index >= 0 {
		return slices.Delete(set, index, index+1), false
	}
	return append(set, value), true
}
