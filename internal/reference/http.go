/*
Package reference provides the HTTP interface for managing master data.

It serves the genre and MPA-rating catalogues consumed by film clients and
exposes the standard five-operation CRUD shape for both.
*/
package reference

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/filmorate/internal/platform/request"
	"github.com/taibuivan/filmorate/internal/platform/respond"
)

// Handler implements the HTTP layer for reference and master data.
// It translates web requests into domain service calls.
type Handler struct {
	service *Service
}

// NewHandler constructs a new reference [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] configured with the reference domain's endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// # Genre Endpoints
	router.Route("/genres", func(genreRoute chi.Router) {
		genreRoute.Get("/", handler.listGenres)
		genreRoute.Get("/{id}", handler.getGenre)
		genreRoute.Post("/", handler.createGenre)
		genreRoute.Put("/{id}", handler.updateGenre)
		genreRoute.Delete("/{id}", handler.deleteGenre)
	})

	// # MPA Rating Endpoints
	router.Route("/mpa", func(mpaRoute chi.Router) {
		mpaRoute.Get("/", handler.listRatings)
		mpaRoute.Get("/{id}", handler.getRating)
		mpaRoute.Post("/", handler.createRating)
		mpaRoute.Put("/{id}", handler.updateRating)
		mpaRoute.Delete("/{id}", handler.deleteRating)
	})

	return router
}

/*
GET /api/v1/genres.

Response:
  - 200: []Genre: Success
*/
func (handler *Handler) listGenres(writer http.ResponseWriter, request *http.Request) {
	genres, err := handler.service.ListGenres(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, genres)
}

/*
GET /api/v1/genres/{id}.

Response:
  - 200: Genre: Genre details
  - 404: NOT_FOUND: Genre not found
*/
func (handler *Handler) getGenre(writer http.ResponseWriter, request *http.Request) {
	genreID, err := requestutil.Int64(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	genre, err := handler.service.GetGenre(request.Context(), genreID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, genre)
}

/*
POST /api/v1/genres.

Response:
  - 201: Genre: The created genre with assigned id
  - 400: VALIDATION_ERROR: Empty or overlong name
*/
func (handler *Handler) createGenre(writer http.ResponseWriter, request *http.Request) {
	genre := &Genre{}
	if err := requestutil.DecodeJSON(request, genre); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateGenre(request.Context(), genre); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, genre)
}

/*
PUT /api/v1/genres/{id}.

Response:
  - 200: Genre: The updated genre
  - 404: NOT_FOUND: Genre not found
*/
func (handler *Handler) updateGenre(writer http.ResponseWriter, request *http.Request) {
	genreID, err := requestutil.Int64(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	genre := &Genre{}
	if err := requestutil.DecodeJSON(request, genre); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdateGenre(request.Context(), genreID, genre); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, genre)
}

/*
DELETE /api/v1/genres/{id}.

Response:
  - 204: No content
  - 404: NOT_FOUND: Genre not found
*/
func (handler *Handler) deleteGenre(writer http.ResponseWriter, request *http.Request) {
	genreID, err := requestutil.Int64(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteGenre(request.Context(), genreID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

/*
GET /api/v1/mpa.

Response:
  - 200: []Rating: Success
*/
func (handler *Handler) listRatings(writer http.ResponseWriter, request *http.Request) {
	ratings, err := handler.service.ListRatings(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, ratings)
}

/*
GET /api/v1/mpa/{id}.

Response:
  - 200: Rating: Rating details
  - 404: NOT_FOUND: Rating not found
*/
func (handler *Handler) getRating(writer http.ResponseWriter, request *http.Request) {
	ratingID, err := requestutil.Int64(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	rating, err := handler.service.GetRating(request.Context(), ratingID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, rating)
}

/*
POST /api/v1/mpa.

Response:
  - 201: Rating: The created rating with assigned id
  - 400: VALIDATION_ERROR: Empty or overlong name
*/
func (handler *Handler) createRating(writer http.ResponseWriter, request *http.Request) {
	rating := &Rating{}
	if err := requestutil.DecodeJSON(request, rating); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateRating(request.Context(), rating); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, rating)
}

/*
PUT /api/v1/mpa/{id}.

Response:
  - 200: Rating: The updated rating
  - 404: NOT_FOUND: Rating not found
*/
func (handler *Handler) updateRating(writer http.ResponseWriter, request *http.Request) {
	ratingID, err := requestutil.Int64(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	rating := &Rating{}
	if err := requestutil.DecodeJSON(request, rating); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdateRating(request.Context(), ratingID, rating); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, rating)
}

/*
DELETE /api/v1/mpa/{id}.

Response:
  - 204: No content
  - 404: NOT_FOUND: Rating not found
*/
func (handler *Handler) deleteRating(writer http.ResponseWriter, request *http.Request) {
	ratingID, err := requestutil.Int64(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteRating(request.Context(), ratingID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
