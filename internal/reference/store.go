package reference

import "context"

type Repository interface {
	ListGenres(context context.Context) ([]Genre, error)
	GetGenre(context context.Context, id int64) (*Genre, error)
	CreateGenre(context context.Context, genre *Genre) error
	UpdateGenre(context context.Context, genre *Genre) error
	DeleteGenre(context context.Context, id int64) error

	ListRatings(context context.Context) ([]Rating, error)
	GetRating(context context.Context, id int64) (*Rating, error)
	CreateRating(context context.Context, rating *Rating) error
	UpdateRating(context context.Context, rating *Rating) error
	DeleteRating(context context.Context, id int64) error
}
