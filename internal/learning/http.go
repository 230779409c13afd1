package learning

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/diwan/internal/platform/request"
	"github.com/taibuivan/diwan/internal/platform/respond"
)

// # Handler Implementation

// Handler exposes the learning path. Routes require the Session middleware.
type Handler struct {
	service *Service
}

// NewHandler constructs a learning [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the learning endpoints.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Route("/learning", func(learning chi.Router) {
		learning.Get("/lessons", handler.listLessons)
		learning.Get("/progress", handler.getProgress)
		learning.Post("/lessons/{id}/toggle", handler.toggleLesson)
	})
}

/*
GET /api/v1/learning/lessons.

Response:
  - 200: []LessonStatus
*/
func (handler *Handler) listLessons(writer http.ResponseWriter, request *http.Request) {
	sessionID, err := requestutil.RequiredSessionID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	lessons, err := handler.service.Lessons(request.Context(), sessionID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, lessons)
}

/*
GET /api/v1/learning/progress.

Response:
  - 200: Progress
*/
func (handler *Handler) getProgress(writer http.ResponseWriter, request *http.Request) {
	sessionID, err := requestutil.RequiredSessionID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	progress, err := handler.service.Progress(request.Context(), sessionID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, progress)
}

/*
POST /api/v1/learning/lessons/{id}/toggle.

Response:
  - 200: ToggleResult
  - 404: Unknown lesson
*/
func (handler *Handler) toggleLesson(writer http.ResponseWriter, request *http.Request) {
	sessionID, err := requestutil.RequiredSessionID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	result, err := handler.service.Toggle(request.Context(), sessionID, requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, result)
}
