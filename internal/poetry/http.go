package poetry

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/diwan/internal/platform/apperr"
	"github.com/taibuivan/diwan/internal/platform/constants"
	requestutil "github.com/taibuivan/diwan/internal/platform/request"
	"github.com/taibuivan/diwan/internal/platform/respond"
	"github.com/taibuivan/diwan/internal/platform/validate"
	"github.com/taibuivan/diwan/pkg/pagination"
	"github.com/taibuivan/diwan/pkg/slice"
)

// maxRandomCount bounds a single random sample.
const maxRandomCount = 100

// # Handler Implementation

// Handler exposes poet and poem retrieval over HTTP.
type Handler struct {
	service *Service
}

// NewHandler constructs a poetry [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the poetry endpoints on router.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/poets", handler.listPoets)
	router.Get("/poets/{id}/poems", handler.listPoetPoems)

	router.Route("/poems", func(poems chi.Router) {
		poems.Get("/search", handler.searchPoems)
		poems.Get("/random", handler.randomPoems)
		poems.Get("/era/{era}", handler.poemsByEra)
		poems.Get("/theme/{theme}", handler.poemsByTheme)
		poems.Get("/poet/{name}", handler.poemsByPoet)
		poems.Get("/{id}", handler.getPoem)
	})

	router.Get("/library", handler.listLibrary)
	router.Get("/library/{id}", handler.getLibraryPoem)
}

// # Poets

/*
GET /api/v1/poets.

Description: Lists poets from the remote catalogue, or the static registry
when the catalogue is unreachable.

Response:
  - 200: []Poet
*/
func (handler *Handler) listPoets(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, handler.service.AllPoets(request.Context()))
}

/*
GET /api/v1/poets/{id}/poems.

Response:
  - 200: []Poem
  - 404: Poet unknown to both the remote catalogue and the registry
*/
func (handler *Handler) listPoetPoems(writer http.ResponseWriter, request *http.Request) {
	poems, err := handler.service.PoetPoems(request.Context(), requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, poems)
}

// # Poems

/*
GET /api/v1/poems/search.

Description: Substring search across title, poet, content, theme and era.
An empty query returns the first poems of the corpus.

Request:
  - q: string

Response:
  - 200: []Poem (possibly empty)
*/
func (handler *Handler) searchPoems(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, handler.service.SearchPoems(request.Context(), requestutil.Query(request, "q")))
}

/*
GET /api/v1/poems/random.

Request:
  - count: int (default 10, between 1 and 100)

Response:
  - 200: []Poem
  - 400: count not an integer or out of range
*/
func (handler *Handler) randomPoems(writer http.ResponseWriter, request *http.Request) {
	count, err := requestutil.QueryInt(request, "count", constants.DefaultRandomCount)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	v := &validate.Validator{}
	if err := v.Range("count", count, 1, maxRandomCount).Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, handler.service.RandomPoems(count))
}

// GET /api/v1/poems/era/{era}
func (handler *Handler) poemsByEra(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, handler.service.PoemsByEra(Era(requestutil.Param(request, "era"))))
}

// GET /api/v1/poems/theme/{theme}
func (handler *Handler) poemsByTheme(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, handler.service.PoemsByTheme(requestutil.Param(request, "theme")))
}

// GET /api/v1/poems/poet/{name}
func (handler *Handler) poemsByPoet(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, handler.service.PoemsByPoet(requestutil.Param(request, "name")))
}

/*
GET /api/v1/poems/{id}.

Response:
  - 200: Poem
  - 404: No synthesized poem with this id
*/
func (handler *Handler) getPoem(writer http.ResponseWriter, request *http.Request) {
	poem, ok := handler.service.PoemByID(requestutil.Param(request, "id"))
	if !ok {
		respond.Error(writer, request, apperr.NotFound("Poem"))
		return
	}
	respond.OK(writer, poem)
}

// # Library

/*
GET /api/v1/library.

Description: Curated poems followed by the synthesized corpus, filtered
and paginated.

Request:
  - q: string (substring over title, poet, content, theme, era)
  - type: string (عمودي, تفعيلة, نثر)
  - era: string (a recognized era)
  - poet: string (substring of the poet name)
  - page: int
  - limit: int

Response:
  - 200: []Poem with pagination meta
  - 400: Unknown type or era
*/
func (handler *Handler) listLibrary(writer http.ResponseWriter, request *http.Request) {
	filter := LibraryFilter{
		Query: requestutil.Query(request, "q"),
		Type:  PoemType(strings.TrimSpace(requestutil.Query(request, "type"))),
		Era:   Era(strings.TrimSpace(requestutil.Query(request, "era"))),
		Poet:  requestutil.Query(request, "poet"),
	}

	if err := ValidateFilter(filter); err != nil {
		respond.Error(writer, request, err)
		return
	}

	poems, err := handler.service.Library(request.Context(), filter)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	params := pagination.FromRequest(request)
	respond.Paginated(writer, pagination.Window(poems, params), pagination.NewMeta(params, len(poems)))
}

/*
GET /api/v1/library/{id}.

Response:
  - 200: Poem
  - 404: Neither curated nor synthesized
*/
func (handler *Handler) getLibraryPoem(writer http.ResponseWriter, request *http.Request) {
	poem, err := handler.service.LibraryPoem(request.Context(), requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, poem)
}

// ValidateFilter rejects unknown types and eras. Empty fields are allowed.
func ValidateFilter(filter LibraryFilter) error {
	v := &validate.Validator{}

	if filter.Type != "" {
		types := slice.Map(PoemTypes(), func(t PoemType) string { return string(t) })
		v.OneOf("type", string(filter.Type), types...)
	}
	if filter.Era != "" {
		v.Custom("era", !filter.Era.Recognized(), "Must be a recognized era")
	}

	return v.Err()
}
