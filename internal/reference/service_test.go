package reference_test

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/filmorate/internal/platform/apperr"
	"github.com/taibuivan/filmorate/internal/platform/dberr"
	"github.com/taibuivan/filmorate/internal/reference"
)

// fakeRepo is an in-memory [reference.Repository].
type fakeRepo struct {
	genres  map[int64]reference.Genre
	ratings map[int64]reference.Rating
	nextID  int64
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		genres:  make(map[int64]reference.Genre),
		ratings: make(map[int64]reference.Rating),
	}
}

func (r *fakeRepo) ListGenres(_ context.Context) ([]reference.Genre, error) {
	genres := make([]reference.Genre, 0, len(r.genres))
	for _, g := range r.genres {
		genres = append(genres, g)
	}
	sort.Slice(genres, func(i, j int) bool { return genres[i].ID < genres[j].ID })
	return genres, nil
}

func (r *fakeRepo) GetGenre(_ context.Context, id int64) (*reference.Genre, error) {
	g, ok := r.genres[id]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	return &g, nil
}

func (r *fakeRepo) CreateGenre(_ context.Context, genre *reference.Genre) error {
	r.nextID++
	genre.ID = r.nextID
	r.genres[genre.ID] = *genre
	return nil
}

func (r *fakeRepo) UpdateGenre(_ context.Context, genre *reference.Genre) error {
	if _, ok := r.genres[genre.ID]; !ok {
		return dberr.ErrNotFound
	}
	r.genres[genre.ID] = *genre
	return nil
}

func (r *fakeRepo) DeleteGenre(_ context.Context, id int64) error {
	if _, ok := r.genres[id]; !ok {
		return dberr.ErrNotFound
	}
	delete(r.genres, id)
	return nil
}

func (r *fakeRepo) ListRatings(_ context.Context) ([]reference.Rating, error) {
	ratings := make([]reference.Rating, 0, len(r.ratings))
	for _, rating := range r.ratings {
		ratings = append(ratings, rating)
	}
	sort.Slice(ratings, func(i, j int) bool { return ratings[i].ID < ratings[j].ID })
	return ratings, nil
}

func (r *fakeRepo) GetRating(_ context.Context, id int64) (*reference.Rating, error) {
	rating, ok := r.ratings[id]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	return &rating, nil
}

func (r *fakeRepo) CreateRating(_ context.Context, rating *reference.Rating) error {
	r.nextID++
	rating.ID = r.nextID
	r.ratings[rating.ID] = *rating
	return nil
}

func (r *fakeRepo) UpdateRating(_ context.Context, rating *reference.Rating) error {
	if _, ok := r.ratings[rating.ID]; !ok {
		return dberr.ErrNotFound
	}
	r.ratings[rating.ID] = *rating
	return nil
}

func (r *fakeRepo) DeleteRating(_ context.Context, id int64) error {
	if _, ok := r.ratings[id]; !ok {
		return dberr.ErrNotFound
	}
	delete(r.ratings, id)
	return nil
}

func newTestService() *reference.Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return reference.NewService(newFakeRepo(), logger)
}

/*
TestService_GenreLifecycle exercises the genre CRUD path end to end.
*/
func TestService_GenreLifecycle(t *testing.T) {
	service := newTestService()
	ctx := context.Background()

	genre := &reference.Genre{Name: "Comedy"}
	require.NoError(t, service.CreateGenre(ctx, genre))
	assert.NotZero(t, genre.ID)

	genre.Name = "Dark Comedy"
	require.NoError(t, service.UpdateGenre(ctx, genre.ID, genre))

	loaded, err := service.GetGenre(ctx, genre.ID)
	require.NoError(t, err)
	assert.Equal(t, "Dark Comedy", loaded.Name)

	require.NoError(t, service.DeleteGenre(ctx, genre.ID))

	_, err = service.GetGenre(ctx, genre.ID)
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
}

/*
TestService_NameValidation checks the shared name rules for genres and
ratings: required, at most 50 characters.
*/
func TestService_NameValidation(t *testing.T) {
	tests := []struct {
		name  string
		value string
		valid bool
	}{
		{"valid", "Thriller", true},
		{"empty", "", false},
		{"whitespace", "   ", false},
		{"max_length", strings.Repeat("a", 50), true},
		{"overlong", strings.Repeat("a", 51), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := newTestService()
			ctx := context.Background()

			genreErr := service.CreateGenre(ctx, &reference.Genre{Name: tt.value})
			ratingErr := service.CreateRating(ctx, &reference.Rating{Name: tt.value})

			if tt.valid {
				assert.NoError(t, genreErr)
				assert.NoError(t, ratingErr)
				return
			}

			require.Error(t, genreErr)
			assert.Equal(t, "VALIDATION_ERROR", apperr.As(genreErr).Code)
			require.Error(t, ratingErr)
			assert.Equal(t, "VALIDATION_ERROR", apperr.As(ratingErr).Code)
		})
	}
}

/*
TestService_RatingLookup checks rating retrieval and the missing-id error.
*/
func TestService_RatingLookup(t *testing.T) {
	service := newTestService()
	ctx := context.Background()

	rating := &reference.Rating{Name: "PG-13"}
	require.NoError(t, service.CreateRating(ctx, rating))

	loaded, err := service.GetRating(ctx, rating.ID)
	require.NoError(t, err)
	assert.Equal(t, "PG-13", loaded.Name)

	_, err = service.GetRating(ctx, 99)
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
}
