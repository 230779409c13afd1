package generate

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/diwan/internal/platform/request"
	"github.com/taibuivan/diwan/internal/platform/respond"
)

// # Handler Implementation

// Handler exposes poem generation.
type Handler struct {
	service *Service
}

// NewHandler constructs a generation [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the generation endpoints.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Post("/generate", handler.generate)
	router.Get("/generate/topics", handler.listTopics)
}

/*
POST /api/v1/generate.

Request:
  - body: Request

Response:
  - 200: Result
  - 400: Missing topic
  - 502: The model failed
  - 503: Generation is not configured
*/
func (handler *Handler) generate(writer http.ResponseWriter, request *http.Request) {
	var body Request
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}

	result, err := handler.service.Generate(request.Context(), body.Topic)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, result)
}

// GET /api/v1/generate/topics
func (handler *Handler) listTopics(writer http.ResponseWriter, _ *http.Request) {
	respond.OK(writer, PopularTopics())
}
