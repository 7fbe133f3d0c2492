package user

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/filmorate/internal/platform/request"
	"github.com/taibuivan/filmorate/internal/platform/respond"
)

// Handler implements the HTTP layer for users and friendships.
// It translates web requests into domain service calls.
type Handler struct {
	service *Service
}

// NewHandler constructs a new user [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] configured with the user domain's endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.list)
	router.Get("/{id}", handler.get)
	router.Post("/", handler.create)
	router.Put("/", handler.update)
	router.Delete("/{id}", handler.delete)

	// # Friendships
	router.Get("/{id}/friends", handler.friends)
	router.Get("/{id}/friends/common/{otherId}", handler.commonFriends)
	router.Put("/{id}/friends/{friendId}", handler.addFriend)
	router.Delete("/{id}/friends/{friendId}", handler.deleteFriend)

	return router
}

/*
GET /api/v1/users.

Response:
  - 200: []User: Every user ordered by ascending id
*/
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	users, err := handler.service.GetAll(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, users)
}

/*
GET /api/v1/users/{id}.

Response:
  - 200: User: User details
  - 404: NOT_FOUND: User not found
*/
func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.Int64(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.service.GetByID(request.Context(), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, user)
}

/*
POST /api/v1/users.

Response:
  - 201: User: The created user; a blank name is returned as the login
  - 400: VALIDATION_ERROR: Every rule violation, aggregated
*/
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	user := &User{}
	if err := requestutil.DecodeJSON(request, user); err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.service.Create(request.Context(), user)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, created)
}

/*
PUT /api/v1/users.

The target user id travels in the body, not the path.

Response:
  - 200: User: The updated user
  - 400: VALIDATION_ERROR: Every rule violation, aggregated
  - 404: NOT_FOUND: User not found
*/
func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	user := &User{}
	if err := requestutil.DecodeJSON(request, user); err != nil {
		respond.Error(writer, request, err)
		return
	}

	updated, err := handler.service.Update(request.Context(), user)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, updated)
}

/*
DELETE /api/v1/users/{id}.

Response:
  - 204: No content
  - 404: NOT_FOUND: User not found
*/
func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.Int64(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteByID(request.Context(), userID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

/*
GET /api/v1/users/{id}/friends.

Response:
  - 200: []User: The user's friends ordered by ascending id
  - 404: NOT_FOUND: User not found
*/
func (handler *Handler) friends(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.Int64(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	friends, err := handler.service.GetAllFriends(request.Context(), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, friends)
}

/*
GET /api/v1/users/{id}/friends/common/{otherId}.

Response:
  - 200: []User: Friends both users share, ordered by ascending id
  - 404: NOT_FOUND: Missing user(s), every missing id reported
*/
func (handler *Handler) commonFriends(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.Int64(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	otherID, err := requestutil.Int64(request, "otherId")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	friends, err := handler.service.GetCommonFriends(request.Context(), userID, otherID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, friends)
}

/*
PUT /api/v1/users/{id}/friends/{friendId}.

Response:
  - 204: No content
  - 404: NOT_FOUND: Missing user(s), every missing id reported
  - 409: CONFLICT: The friendship request already exists
*/
func (handler *Handler) addFriend(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.Int64(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	friendID, err := requestutil.Int64(request, "friendId")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.AddFriend(request.Context(), userID, friendID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

/*
DELETE /api/v1/users/{id}/friends/{friendId}.

Response:
  - 204: No content
  - 404: NOT_FOUND: Missing user(s), every missing id reported
  - 409: CONFLICT: The friendship does not exist
*/
func (handler *Handler) deleteFriend(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.Int64(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	friendID, err := requestutil.Int64(request, "friendId")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteFriendByID(request.Context(), userID, friendID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
