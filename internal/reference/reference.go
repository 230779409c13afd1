// Copyright (c) 2026 Diwan. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package reference serves the static vocabulary of the library: artistic forms,
eras, meters, poem types and suggested poets.
*/
package reference

import (
	"embed"
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/taibuivan/diwan/internal/platform/apperr"
	"github.com/taibuivan/diwan/internal/poetry"
)

//go:embed data/forms.yaml
var dataFS embed.FS

// Form is an artistic form of Arabic poetry.
type Form struct {
	ID          string          `json:"id"          yaml:"id"`
	Type        poetry.PoemType `json:"type"        yaml:"type"`
	Title       string          `json:"title"       yaml:"title"`
	Description string          `json:"description" yaml:"description"`
	Details     string          `json:"details"     yaml:"details"`
	Example     string          `json:"example"     yaml:"example"`
}

// Catalog holds the reference data.
type Catalog struct {
	forms       []Form
	famousPoets []string
	meters      []string
}

// NewCatalog loads the embedded forms. Meters come from the poem synthesizer
// so that reference data and synthesized poems share one vocabulary.
func NewCatalog(meters []string) (*Catalog, error) {
	raw, err := dataFS.ReadFile("data/forms.yaml")
	if err != nil {
		return nil, fmt.Errorf("reference: read embedded forms: %w", err)
	}
	return LoadCatalog(raw, meters)
}

// LoadCatalog decodes a YAML document of the form {forms: [...], famous_poets: [...]}.
func LoadCatalog(raw []byte, meters []string) (*Catalog, error) {
	var document struct {
		Forms       []Form   `yaml:"forms"`
		FamousPoets []string `yaml:"famous_poets"`
	}
	if err := yaml.Unmarshal(raw, &document); err != nil {
		return nil, fmt.Errorf("reference: decode forms: %w", err)
	}

	types := poetry.PoemTypes()
	for _, form := range document.Forms {
		if form.ID == "" {
			return nil, fmt.Errorf("reference: form without id")
		}
		if !slices.Contains(types, form.Type) {
			return nil, fmt.Errorf("reference: form %s has unknown type %q", form.ID, form.Type)
		}
	}

	return &Catalog{
		forms:       document.Forms,
		famousPoets: document.FamousPoets,
		meters:      append([]string{}, meters...),
	}, nil
}

// Forms returns the artistic forms.
func (catalog *Catalog) Forms() []Form {
	return append([]Form{}, catalog.forms...)
}

// Form returns one artistic form or apperr.NotFound.
func (catalog *Catalog) Form(id string) (Form, error) {
	for _, form := range catalog.forms {
		if form.ID == id {
			return form, nil
		}
	}
	return Form{}, apperr.NotFound("Form")
}

// Meters returns the meter names.
func (catalog *Catalog) Meters() []string {
	return append([]string{}, catalog.meters...)
}

// FamousPoets returns the suggested poet names.
func (catalog *Catalog) FamousPoets() []string {
	return append([]string{}, catalog.famousPoets...)
}
