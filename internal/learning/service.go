package learning

import (
	"context"

	"github.com/taibuivan/diwan/internal/platform/apperr"
	"github.com/taibuivan/diwan/internal/session"
)

// Sessions reads and updates the reader's completed lessons.
type Sessions interface {
	State(ctx context.Context, id string) (session.State, error)
	ToggleLesson(ctx context.Context, id, lessonID string) (session.State, bool, error)
}

// ToggleResult reports a lesson toggle and the progress that follows.
type ToggleResult struct {
	LessonID  string   `json:"lesson_id"`
	Completed bool     `json:"completed"`
	Progress  Progress `json:"progress"`
}

// # Service Layer

// Service combines the catalog with session state.
type Service struct {
	catalog  *Catalog
	sessions Sessions
}

// NewService constructs a learning [Service].
func NewService(catalog *Catalog, sessions Sessions) *Service {
	return &Service{catalog: catalog, sessions: sessions}
}

// Lessons returns the path with the reader's completion marks.
func (service *Service) Lessons(context context.Context, sessionID string) ([]LessonStatus, error) {
	state, err := service.sessions.State(context, sessionID)
	if err != nil {
		return nil, err
	}
	return service.catalog.Statuses(state.CompletedLessons), nil
}

// Progress returns the reader's current standing.
func (service *Service) Progress(context context.Context, sessionID string) (Progress, error) {
	state, err := service.sessions.State(context, sessionID)
	if err != nil {
		return Progress{}, err
	}
	return service.catalog.Progress(state.CompletedLessons), nil
}

/*
Toggle marks or unmarks a lesson for the reader.

Returns:
  - ToggleResult: New completion flag and progress
  - error: apperr.NotFound for an unknown lesson
*/
func (service *Service) Toggle(context context.Context, sessionID, lessonID string) (ToggleResult, error) {
	if _, ok := service.catalog.Lesson(lessonID); !ok {
		return ToggleResult{}, apperr.NotFound("Lesson")
	}

	state, completed, err := service.sessions.ToggleLesson(context, sessionID, lessonID)
	if err != nil {
		return ToggleResult{}, err
	}

	return ToggleResult{
		LessonID:  lessonID,
		Completed: completed,
		Progress:  service.catalog.Progress(state.CompletedLessons),
	}, nil
}
