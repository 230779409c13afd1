package analysis

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/diwan/internal/platform/request"
	"github.com/taibuivan/diwan/internal/platform/respond"
)

// Handler exposes the analyzer.
type Handler struct {
	analyzer *Analyzer
}

// NewHandler constructs an analysis [Handler].
func NewHandler(analyzer *Analyzer) *Handler {
	return &Handler{analyzer: analyzer}
}

// RegisterRoutes mounts the analysis endpoint.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Post("/analysis", handler.analyze)
}

/*
POST /api/v1/analysis.

Request:
  - body: Request

Response:
  - 200: Result
  - 400: Empty, oversized or non-Arabic text
*/
func (handler *Handler) analyze(writer http.ResponseWriter, request *http.Request) {
	var body Request
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}

	result, err := handler.analyzer.Analyze(body.Text)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, result)
}
