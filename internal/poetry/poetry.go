// Copyright (c) 2026 Diwan. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package poetry aggregates Arabic poems and poets from three places: a curated
library, a remote catalogue with an unstable schema, and a synthesized corpus
derived from a static poet registry.

# Data Flow

A request first tries the [Fetcher]. When every remote endpoint fails or
returns nothing, the [Service] falls back to the [Registry] and the
[Synthesizer]. Remote failures are logged and counted, never returned to
the caller.

# Records

[Poet] and [Poem] are values. They are built fresh on every fetch or
synthesis call and never mutated afterwards; favorites live in the
reader session, not on the poem.
*/
package poetry

// Origin tags where a [Poem] came from.
type Origin string

const (
	// OriginLocal marks hand-curated library poems.
	OriginLocal Origin = "local"
	// OriginExternal marks poems normalized from the remote catalogue.
	OriginExternal Origin = "external"
	// OriginSynthesized marks placeholder poems generated from the registry.
	OriginSynthesized Origin = "synthesized"
)

// PoemType is the prosodic form of a poem.
type PoemType string

const (
	TypeClassical PoemType = "عمودي"
	TypeFreeVerse PoemType = "تفعيلة"
	TypeProse     PoemType = "نثر"
)

// PoemTypes lists the forms in the order they appear in filters.
func PoemTypes() []PoemType {
	return []PoemType{TypeClassical, TypeFreeVerse, TypeProse}
}

// Default labels applied when a record lacks the field.
const (
	DefaultTitle = "بلا عنوان"
	DefaultPoet  = "مجهول"
	DefaultTheme = "متنوع"
)

// Poet is a single author, either from the registry or the remote catalogue.
type Poet struct {
	ID          string `json:"id"          yaml:"id"`
	Name        string `json:"name"        yaml:"name"`
	Era         Era    `json:"era"         yaml:"era"`
	BirthYear   string `json:"birth_year,omitempty"  yaml:"birth_year"`
	DeathYear   string `json:"death_year,omitempty"  yaml:"death_year"`
	Description string `json:"description,omitempty" yaml:"description"`
	PoemCount   int    `json:"poem_count,omitempty"  yaml:"poem_count"`
}

// Poem is the normalized shape shared by curated, remote and synthesized poems.
//
// Poet holds the display name, not the poet id.
type Poem struct {
	ID          string   `json:"id"      yaml:"id"`
	Title       string   `json:"title"   yaml:"title"`
	Poet        string   `json:"poet"    yaml:"poet"`
	Content     string   `json:"content" yaml:"content"`
	Source      string   `json:"source"  yaml:"-"`
	Origin      Origin   `json:"origin"  yaml:"-"`
	Era         Era      `json:"era,omitempty"         yaml:"era"`
	Theme       string   `json:"theme,omitempty"       yaml:"theme"`
	Type        PoemType `json:"type,omitempty"        yaml:"type"`
	Meter       string   `json:"meter,omitempty"       yaml:"meter"`
	Rhyme       string   `json:"rhyme,omitempty"       yaml:"rhyme"`
	Year        string   `json:"year,omitempty"        yaml:"year"`
	Description string   `json:"description,omitempty" yaml:"description"`
}
