// Copyright (c) 2026 Diwan. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package learning serves the lesson path and derives a reader's progress from
the lessons they have marked as completed in their session.
*/
package learning

import (
	"embed"
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/taibuivan/diwan/pkg/pointer"
)

//go:embed data/lessons.yaml
var dataFS embed.FS

// Level is a lesson difficulty and also a reader's level.
type Level string

const (
	LevelBeginner     Level = "مبتدئ"
	LevelIntermediate Level = "متوسط"
	LevelAdvanced     Level = "متقدم"
)

// PointsPerLesson is awarded for every completed lesson.
const PointsPerLesson = 75

// Lesson is one step of the path.
type Lesson struct {
	ID          string `json:"id"          yaml:"id"`
	Title       string `json:"title"       yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Difficulty  Level  `json:"difficulty"  yaml:"difficulty"`
	Duration    string `json:"duration"    yaml:"duration"`
}

// LessonStatus is a lesson as seen by one reader.
type LessonStatus struct {
	Lesson
	Completed bool `json:"completed"`
}

// Progress summarizes a reader's path.
type Progress struct {
	Completed  int     `json:"completed"`
	Total      int     `json:"total"`
	Percent    int     `json:"percent"`
	Points     int     `json:"points"`
	Level      Level   `json:"level"`
	NextLesson *Lesson `json:"next_lesson"`
}

// # Catalog

// Catalog is the ordered, immutable lesson list.
type Catalog struct {
	lessons []Lesson
}

// NewCatalog loads the embedded lessons.
func NewCatalog() (*Catalog, error) {
	raw, err := dataFS.ReadFile("data/lessons.yaml")
	if err != nil {
		return nil, fmt.Errorf("learning: read embedded lessons: %w", err)
	}
	return LoadCatalog(raw)
}

// LoadCatalog decodes a YAML document of the form {lessons: [...]}.
func LoadCatalog(raw []byte) (*Catalog, error) {
	var document struct {
		Lessons []Lesson `yaml:"lessons"`
	}
	if err := yaml.Unmarshal(raw, &document); err != nil {
		return nil, fmt.Errorf("learning: decode lessons: %w", err)
	}
	if len(document.Lessons) == 0 {
		return nil, fmt.Errorf("learning: no lessons defined")
	}

	seen := make(map[string]bool, len(document.Lessons))
	for _, lesson := range document.Lessons {
		if lesson.ID == "" || seen[lesson.ID] {
			return nil, fmt.Errorf("learning: lesson id %q is empty or duplicated", lesson.ID)
		}
		if !slices.Contains([]Level{LevelBeginner, LevelIntermediate, LevelAdvanced}, lesson.Difficulty) {
			return nil, fmt.Errorf("learning: lesson %s has unknown difficulty %q", lesson.ID, lesson.Difficulty)
		}
		seen[lesson.ID] = true
	}

	return &Catalog{lessons: document.Lessons}, nil
}

// Lesson returns the lesson with id.
func (catalog *Catalog) Lesson(id string) (Lesson, bool) {
	for _, lesson := range catalog.lessons {
		if lesson.ID == id {
			return lesson, true
		}
	}
	return Lesson{}, false
}

// Statuses marks each lesson as completed when its id is in completed.
func (catalog *Catalog) Statuses(completed []string) []LessonStatus {
	statuses := make([]LessonStatus, 0, len(catalog.lessons))
	for _, lesson := range catalog.lessons {
		statuses = append(statuses, LessonStatus{
			Lesson:    lesson,
			Completed: slices.Contains(completed, lesson.ID),
		})
	}
	return statuses
}

/*
Progress derives the reader's standing from their completed lesson ids.

Description: Ids that are not in the catalog are ignored. The level is
beginner below 40% completion, intermediate below 80%, advanced otherwise.
The next lesson is the first one in path order not yet completed.
*/
func (catalog *Catalog) Progress(completed []string) Progress {
	progress := Progress{Total: len(catalog.lessons)}

	for _, status := range catalog.Statuses(completed) {
		if status.Completed {
			progress.Completed++
			continue
		}
		if progress.NextLesson == nil {
			progress.NextLesson = pointer.To(status.Lesson)
		}
	}

	progress.Points = progress.Completed * PointsPerLesson
	progress.Percent = progress.Completed * 100 / progress.Total

	switch {
	case progress.Percent < 40:
		progress.Level = LevelBeginner
	case progress.Percent < 80:
		progress.Level = LevelIntermediate
	default:
		progress.Level = LevelAdvanced
	}

	return progress
}
