package film

import (
	"context"

	"github.com/taibuivan/filmorate/internal/platform/apperr"
	"github.com/taibuivan/filmorate/internal/reference"
)

// Sentinel conflicts surfaced by like mutations. Both are semantic no-ops:
// the target state already holds, or does not hold.
var (
	ErrLikeExists  = apperr.Conflict("The user has already liked this film")
	ErrLikeMissing = apperr.Conflict("The user has not liked this film")
)

type Repository interface {
	CreateFilm(context context.Context, film *Film) error
	GetFilm(context context.Context, id int64) (*Film, error)
	ListFilms(context context.Context) ([]*Film, error)
	UpdateFilm(context context.Context, film *Film) error
	DeleteFilm(context context.Context, id int64) error
	FilmExists(context context.Context, id int64) (bool, error)

	AddLike(context context.Context, filmID, userID int64) error
	DeleteLike(context context.Context, filmID, userID int64) error
	ListPopular(context context.Context, limit int) ([]*Film, error)
}

// RatingResolver resolves MPA rating references during create/update.
// Satisfied by the reference-domain service.
type RatingResolver interface {
	GetRating(context context.Context, id int64) (*reference.Rating, error)
}

// UserChecker answers user-existence queries for like operations.
// Satisfied by the user-domain repository.
type UserChecker interface {
	UserExists(context context.Context, id int64) (bool, error)
}
