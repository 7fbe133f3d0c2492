package film

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/filmorate/internal/platform/request"
	"github.com/taibuivan/filmorate/internal/platform/respond"
)

// Handler implements the HTTP layer for the film catalogue.
// It translates web requests into domain service calls.
type Handler struct {
	service *Service
}

// NewHandler constructs a new film [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] configured with the film domain's endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.list)
	router.Get("/popular", handler.popular)
	router.Get("/{id}", handler.get)
	router.Post("/", handler.create)
	router.Put("/", handler.update)
	router.Delete("/{id}", handler.delete)

	// # Likes
	router.Put("/{id}/like/{userId}", handler.like)
	router.Delete("/{id}/like/{userId}", handler.unlike)

	return router
}

/*
GET /api/v1/films.

Response:
  - 200: []Film: Every film ordered by ascending id
*/
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	films, err := handler.service.GetAll(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, films)
}

/*
GET /api/v1/films/{id}.

Response:
  - 200: Film: Film details with genres and liked user ids
  - 404: NOT_FOUND: Film not found
*/
func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	filmID, err := requestutil.Int64(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	film, err := handler.service.GetByID(request.Context(), filmID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, film)
}

/*
POST /api/v1/films.

Response:
  - 201: Film: The created film with assigned id and resolved MPA rating
  - 400: VALIDATION_ERROR: Every rule violation, aggregated
  - 404: NOT_FOUND: Unknown MPA rating or genre reference
*/
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	film := &Film{}
	if err := requestutil.DecodeJSON(request, film); err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.service.Create(request.Context(), film)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, created)
}

/*
PUT /api/v1/films.

The target film id travels in the body, not the path.

Response:
  - 200: Film: The updated film
  - 400: VALIDATION_ERROR: Every rule violation, aggregated
  - 404: NOT_FOUND: Film, MPA rating, or genre not found
*/
func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	film := &Film{}
	if err := requestutil.DecodeJSON(request, film); err != nil {
		respond.Error(writer, request, err)
		return
	}

	updated, err := handler.service.Update(request.Context(), film)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, updated)
}

/*
DELETE /api/v1/films/{id}.

Response:
  - 204: No content
  - 404: NOT_FOUND: Film not found
*/
func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	filmID, err := requestutil.Int64(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteByID(request.Context(), filmID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

/*
PUT /api/v1/films/{id}/like/{userId}.

Response:
  - 204: No content
  - 404: NOT_FOUND: Missing film and/or user, both reported
  - 409: CONFLICT: The user already likes this film
*/
func (handler *Handler) like(writer http.ResponseWriter, request *http.Request) {
	filmID, err := requestutil.Int64(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	userID, err := requestutil.Int64(request, "userId")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.LikeFilm(request.Context(), filmID, userID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

/*
DELETE /api/v1/films/{id}/like/{userId}.

Response:
  - 204: No content
  - 404: NOT_FOUND: Missing film and/or user, both reported
  - 409: CONFLICT: The user does not like this film
*/
func (handler *Handler) unlike(writer http.ResponseWriter, request *http.Request) {
	filmID, err := requestutil.Int64(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	userID, err := requestutil.Int64(request, "userId")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteLike(request.Context(), filmID, userID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

/*
GET /api/v1/films/popular?count={n}.

Response:
  - 200: []Film: Up to count films by like count descending, ties by id
*/
func (handler *Handler) popular(writer http.ResponseWriter, request *http.Request) {
	films, err := handler.service.GetPopularFilms(request.Context(), request.URL.Query().Get("count"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, films)
}
