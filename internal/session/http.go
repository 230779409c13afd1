package session

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/diwan/internal/platform/request"
	"github.com/taibuivan/diwan/internal/platform/respond"
	"github.com/taibuivan/diwan/pkg/pointer"
)

// # Handler Implementation

// Handler exposes the reader's session state.
type Handler struct {
	service *Service
}

// NewHandler constructs a session [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the session endpoints. Routes require the Session middleware.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Route("/session", func(session chi.Router) {
		session.Get("/", handler.getState)
		session.Get("/favorites", handler.listFavorites)
		session.Post("/favorites/{poemID}", handler.toggleFavorite)
		session.Put("/filters", handler.setFilters)
		session.Put("/page", handler.setPage)
	})
}

// FavoriteResponse reports the outcome of a favorite toggle.
type FavoriteResponse struct {
	PoemID   string `json:"poem_id"`
	Favorite bool   `json:"favorite"`
	State    State  `json:"state"`
}

// PageRequest is the body of PUT /session/page.
type PageRequest struct {
	Page *int `json:"page"`
}

/*
GET /api/v1/session.

Response:
  - 200: State
*/
func (handler *Handler) getState(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.RequiredSessionID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	state, err := handler.service.State(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, state)
}

/*
GET /api/v1/session/favorites.

Response:
  - 200: []Poem
*/
func (handler *Handler) listFavorites(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.RequiredSessionID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	poems, err := handler.service.Favorites(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, poems)
}

/*
POST /api/v1/session/favorites/{poemID}.

Description: Toggles the poem in the reader's favorites.

Response:
  - 200: FavoriteResponse
  - 404: Poem unknown to the library
*/
func (handler *Handler) toggleFavorite(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.RequiredSessionID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	poemID := requestutil.Param(request, "poemID")
	state, favorite, err := handler.service.ToggleFavorite(request.Context(), id, poemID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, FavoriteResponse{PoemID: poemID, Favorite: favorite, State: state})
}

/*
PUT /api/v1/session/filters.

Request:
  - body: Filters

Response:
  - 200: State (page reset to 1)
  - 400: Unknown type or era
*/
func (handler *Handler) setFilters(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.RequiredSessionID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var filters Filters
	if err := requestutil.DecodeJSON(request, &filters); err != nil {
		respond.Error(writer, request, err)
		return
	}
	filters.Type = strings.TrimSpace(filters.Type)
	filters.Era = strings.TrimSpace(filters.Era)

	state, err := handler.service.SetFilters(request.Context(), id, filters)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, state)
}

/*
PUT /api/v1/session/page.

Request:
  - body: PageRequest

Response:
  - 200: State
  - 400: Page missing or below 1
*/
func (handler *Handler) setPage(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.RequiredSessionID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var body PageRequest
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}

	state, err := handler.service.SetPage(request.Context(), id, pointer.Val(body.Page))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, state)
}
