package reference

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/diwan/internal/platform/request"
	"github.com/taibuivan/diwan/internal/platform/respond"
	"github.com/taibuivan/diwan/internal/poetry"
)

// Handler exposes reference data.
type Handler struct {
	catalog *Catalog
}

// NewHandler constructs a reference [Handler].
func NewHandler(catalog *Catalog) *Handler {
	return &Handler{catalog: catalog}
}

// RegisterRoutes mounts the reference endpoints.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Route("/reference", func(reference chi.Router) {
		reference.Get("/forms", handler.listForms)
		reference.Get("/forms/{id}", handler.getForm)
		reference.Get("/eras", handler.listEras)
		reference.Get("/meters", handler.listMeters)
		reference.Get("/types", handler.listTypes)
		reference.Get("/poets", handler.listPoets)
	})
}

// GET /api/v1/reference/forms
func (handler *Handler) listForms(writer http.ResponseWriter, _ *http.Request) {
	respond.OK(writer, handler.catalog.Forms())
}

/*
GET /api/v1/reference/forms/{id}.

Response:
  - 200: Form
  - 404: Unknown form
*/
func (handler *Handler) getForm(writer http.ResponseWriter, request *http.Request) {
	form, err := handler.catalog.Form(requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, form)
}

// GET /api/v1/reference/eras
func (handler *Handler) listEras(writer http.ResponseWriter, _ *http.Request) {
	respond.OK(writer, poetry.Eras())
}

// GET /api/v1/reference/meters
func (handler *Handler) listMeters(writer http.ResponseWriter, _ *http.Request) {
	respond.OK(writer, handler.catalog.Meters())
}

// GET /api/v1/reference/types
func (handler *Handler) listTypes(writer http.ResponseWriter, _ *http.Request) {
	respond.OK(writer, poetry.PoemTypes())
}

// GET /api/v1/reference/poets
func (handler *Handler) listPoets(writer http.ResponseWriter, _ *http.Request) {
	respond.OK(writer, handler.catalog.FamousPoets())
}
