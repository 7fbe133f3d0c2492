package film_test

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/filmorate/internal/film"
	"github.com/taibuivan/filmorate/internal/platform/apperr"
	"github.com/taibuivan/filmorate/internal/platform/dberr"
	"github.com/taibuivan/filmorate/internal/reference"
	"github.com/taibuivan/filmorate/pkg/date"
)

// fakeRepo is an in-memory [film.Repository].
type fakeRepo struct {
	films  map[int64]*film.Film
	likes  map[int64]map[int64]bool
	nextID int64
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		films: make(map[int64]*film.Film),
		likes: make(map[int64]map[int64]bool),
	}
}

func (r *fakeRepo) CreateFilm(_ context.Context, f *film.Film) error {
	r.nextID++
	f.ID = r.nextID
	stored := *f
	r.films[f.ID] = &stored
	r.likes[f.ID] = make(map[int64]bool)
	return nil
}

func (r *fakeRepo) GetFilm(_ context.Context, id int64) (*film.Film, error) {
	stored, ok := r.films[id]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	f := *stored
	f.LikedUserIDs = likedIDs(r.likes[id])
	return &f, nil
}

func (r *fakeRepo) ListFilms(_ context.Context) ([]*film.Film, error) {
	ids := make([]int64, 0, len(r.films))
	for id := range r.films {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	films := make([]*film.Film, 0, len(ids))
	for _, id := range ids {
		f, _ := r.GetFilm(context.Background(), id)
		films = append(films, f)
	}
	return films, nil
}

func (r *fakeRepo) UpdateFilm(_ context.Context, f *film.Film) error {
	if _, ok := r.films[f.ID]; !ok {
		return dberr.ErrNotFound
	}
	stored := *f
	r.films[f.ID] = &stored
	return nil
}

func (r *fakeRepo) DeleteFilm(_ context.Context, id int64) error {
	if _, ok := r.films[id]; !ok {
		return dberr.ErrNotFound
	}
	delete(r.films, id)
	delete(r.likes, id)
	return nil
}

func (r *fakeRepo) FilmExists(_ context.Context, id int64) (bool, error) {
	_, ok := r.films[id]
	return ok, nil
}

func (r *fakeRepo) AddLike(_ context.Context, filmID, userID int64) error {
	if r.likes[filmID][userID] {
		return film.ErrLikeExists
	}
	r.likes[filmID][userID] = true
	return nil
}

func (r *fakeRepo) DeleteLike(_ context.Context, filmID, userID int64) error {
	if !r.likes[filmID][userID] {
		return film.ErrLikeMissing
	}
	delete(r.likes[filmID], userID)
	return nil
}

func (r *fakeRepo) ListPopular(_ context.Context, limit int) ([]*film.Film, error) {
	films, _ := r.ListFilms(context.Background())
	sort.SliceStable(films, func(i, j int) bool {
		iLikes, jLikes := len(films[i].LikedUserIDs), len(films[j].LikedUserIDs)
		if iLikes != jLikes {
			return iLikes > jLikes
		}
		return films[i].ID < films[j].ID
	})
	if len(films) > limit {
		films = films[:limit]
	}
	return films, nil
}

func likedIDs(set map[int64]bool) []int64 {
	ids := make([]int64, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// fakeRatings resolves MPA rating references from a fixed set.
type fakeRatings struct {
	ratings map[int64]reference.Rating
}

func (f *fakeRatings) GetRating(_ context.Context, id int64) (*reference.Rating, error) {
	rating, ok := f.ratings[id]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	return &rating, nil
}

// fakeUsers answers existence checks from a fixed id set.
type fakeUsers struct {
	ids map[int64]bool
}

func (f *fakeUsers) UserExists(_ context.Context, id int64) (bool, error) {
	return f.ids[id], nil
}

func newTestService() (*film.Service, *fakeRepo, *fakeUsers) {
	repo := newFakeRepo()
	ratings := &fakeRatings{ratings: map[int64]reference.Rating{
		1: {ID: 1, Name: "G"},
		2: {ID: 2, Name: "PG"},
	}}
	users := &fakeUsers{ids: map[int64]bool{10: true, 11: true, 12: true}}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return film.NewService(repo, ratings, users, logger), repo, users
}

func validFilm() *film.Film {
	description := "A thief who steals corporate secrets through dream-sharing."
	return &film.Film{
		Name:        "Inception",
		Description: &description,
		ReleaseDate: date.New(2010, time.July, 16),
		Duration:    148,
		Mpa:         reference.Rating{ID: 1},
	}
}

/*
TestService_Create_Valid checks the create round trip: id assignment, MPA
resolution, and normalized empty relation sets.
*/
func TestService_Create_Valid(t *testing.T) {
	service, _, _ := newTestService()

	created, err := service.Create(context.Background(), validFilm())
	require.NoError(t, err)

	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, "G", created.Mpa.Name, "rating reference should resolve to the full object")
	assert.NotNil(t, created.Genres)
	assert.Empty(t, created.Genres)
	assert.NotNil(t, created.LikedUserIDs)
}

/*
TestService_Create_DeduplicatesGenres checks that repeated genre references
collapse to one link, ordered by id.
*/
func TestService_Create_DeduplicatesGenres(t *testing.T) {
	service, _, _ := newTestService()

	f := validFilm()
	f.Genres = []reference.Genre{{ID: 2}, {ID: 1}, {ID: 2}}

	created, err := service.Create(context.Background(), f)
	require.NoError(t, err)

	require.Len(t, created.Genres, 2)
	assert.Equal(t, int64(1), created.Genres[0].ID)
	assert.Equal(t, int64(2), created.Genres[1].ID)
}

/*
TestService_Create_Validation covers the aggregated validation rules. Every
violation in one payload surfaces in a single VALIDATION_ERROR.
*/
func TestService_Create_Validation(t *testing.T) {
	longDescription := strings.Repeat("x", 201)

	tests := []struct {
		name   string
		mutate func(*film.Film)
		field  string
	}{
		{"empty_name", func(f *film.Film) { f.Name = "" }, "name"},
		{"overlong_description", func(f *film.Film) { f.Description = &longDescription }, "description"},
		{"missing_release_date", func(f *film.Film) { f.ReleaseDate = date.Date{} }, "release_date"},
		{"before_cinema", func(f *film.Film) { f.ReleaseDate = date.New(1895, time.December, 27) }, "release_date"},
		{"zero_duration", func(f *film.Film) { f.Duration = 0 }, "duration"},
		{"negative_duration", func(f *film.Film) { f.Duration = -5 }, "duration"},
		{"missing_mpa", func(f *film.Film) { f.Mpa = reference.Rating{} }, "mpa"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _, _ := newTestService()

			f := validFilm()
			tt.mutate(f)

			_, err := service.Create(context.Background(), f)
			require.Error(t, err)

			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, "VALIDATION_ERROR", ae.Code)

			fields := make([]string, 0, len(ae.Details))
			for _, d := range ae.Details {
				fields = append(fields, d.Field)
			}
			assert.Contains(t, fields, tt.field)
		})
	}
}

/*
TestService_Create_BoundaryReleaseDate confirms the first day of cinema is
itself a valid release date.
*/
func TestService_Create_BoundaryReleaseDate(t *testing.T) {
	service, _, _ := newTestService()

	f := validFilm()
	f.ReleaseDate = date.New(1895, time.December, 28)

	_, err := service.Create(context.Background(), f)
	assert.NoError(t, err)
}

/*
TestService_Create_UnknownRating checks that a dangling MPA reference is
NOT_FOUND, not a validation failure.
*/
func TestService_Create_UnknownRating(t *testing.T) {
	service, _, _ := newTestService()

	f := validFilm()
	f.Mpa = reference.Rating{ID: 99}

	_, err := service.Create(context.Background(), f)
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "NOT_FOUND", ae.Code)
	assert.Contains(t, ae.Message, "99")
}

/*
TestService_Update_Valid checks the full-record replacement: changed fields
persist, the rating is re-resolved, and the genre set is replaced and
deduplicated.
*/
func TestService_Update_Valid(t *testing.T) {
	service, _, _ := newTestService()
	ctx := context.Background()

	created, err := service.Create(ctx, validFilm())
	require.NoError(t, err)

	description := "Recut for the anniversary release."
	created.Name = "Inception (Director's Cut)"
	created.Description = &description
	created.Duration = 162
	created.Mpa = reference.Rating{ID: 2}
	created.Genres = []reference.Genre{{ID: 2}, {ID: 1}, {ID: 2}}

	updated, err := service.Update(ctx, created)
	require.NoError(t, err)

	assert.Equal(t, "Inception (Director's Cut)", updated.Name)
	assert.Equal(t, 162, updated.Duration)
	assert.Equal(t, "PG", updated.Mpa.Name, "rating reference should re-resolve to the full object")
	require.Len(t, updated.Genres, 2)
	assert.Equal(t, int64(1), updated.Genres[0].ID)
	assert.Equal(t, int64(2), updated.Genres[1].ID)

	stored, err := service.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Inception (Director's Cut)", stored.Name)
	assert.Equal(t, "PG", stored.Mpa.Name)
}

// danglingGenreRepo reports the foreign-key NOT_FOUND an update hits when a
// genre reference dangles on an existing film.
type danglingGenreRepo struct {
	*fakeRepo
}

func (r *danglingGenreRepo) UpdateFilm(context.Context, *film.Film) error {
	return apperr.NotFound("Referenced resource")
}

/*
TestService_Update_DanglingGenre checks that a missing genre reference on an
existing film surfaces as its own NOT_FOUND instead of being misreported as
a missing film.
*/
func TestService_Update_DanglingGenre(t *testing.T) {
	repo := newFakeRepo()
	ratings := &fakeRatings{ratings: map[int64]reference.Rating{1: {ID: 1, Name: "G"}}}
	users := &fakeUsers{ids: map[int64]bool{}}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := film.NewService(&danglingGenreRepo{repo}, ratings, users, logger)
	ctx := context.Background()

	f := validFilm()
	require.NoError(t, repo.CreateFilm(ctx, f))
	f.Genres = []reference.Genre{{ID: 99}}

	_, err := service.Update(ctx, f)
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "NOT_FOUND", ae.Code)
	assert.Equal(t, "Referenced resource not found", ae.Message)
	assert.NotContains(t, ae.Message, "The film with id")
}

/*
TestService_Update_NotFound checks the missing-id message on update.
*/
func TestService_Update_NotFound(t *testing.T) {
	service, _, _ := newTestService()

	f := validFilm()
	f.ID = 42

	_, err := service.Update(context.Background(), f)
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "NOT_FOUND", ae.Code)
	assert.Equal(t, "The film with id 42 was not found", ae.Message)
}

/*
TestService_LikeFilm covers the like lifecycle: success, duplicate conflict,
and removal of an absent like.
*/
func TestService_LikeFilm(t *testing.T) {
	service, _, _ := newTestService()

	created, err := service.Create(context.Background(), validFilm())
	require.NoError(t, err)

	require.NoError(t, service.LikeFilm(context.Background(), created.ID, 10))

	err = service.LikeFilm(context.Background(), created.ID, 10)
	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "CONFLICT", ae.Code)

	require.NoError(t, service.DeleteLike(context.Background(), created.ID, 10))

	err = service.DeleteLike(context.Background(), created.ID, 10)
	require.Error(t, err)
	ae = apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "CONFLICT", ae.Code)
}

/*
TestService_LikeFilm_MissingIDs checks that a like against a missing film and
a missing user reports both ids in one error.
*/
func TestService_LikeFilm_MissingIDs(t *testing.T) {
	service, _, _ := newTestService()

	err := service.LikeFilm(context.Background(), 7, 99)
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "NOT_FOUND", ae.Code)
	assert.Equal(t, "The film with id 7 was not found & The user with id 99 was not found", ae.Message)
}

/*
TestService_GetPopularFilms checks the ranking order, the explicit count,
and the fallback for an unparsable count.
*/
func TestService_GetPopularFilms(t *testing.T) {
	service, _, _ := newTestService()
	ctx := context.Background()

	first, err := service.Create(ctx, validFilm())
	require.NoError(t, err)
	second, err := service.Create(ctx, validFilm())
	require.NoError(t, err)
	third, err := service.Create(ctx, validFilm())
	require.NoError(t, err)

	require.NoError(t, service.LikeFilm(ctx, first.ID, 10))
	require.NoError(t, service.LikeFilm(ctx, second.ID, 10))
	require.NoError(t, service.LikeFilm(ctx, second.ID, 11))

	t.Run("ordered_by_like_count", func(t *testing.T) {
		films, err := service.GetPopularFilms(ctx, "")
		require.NoError(t, err)
		require.Len(t, films, 3)
		assert.Equal(t, second.ID, films[0].ID)
		assert.Equal(t, first.ID, films[1].ID)
		assert.Equal(t, third.ID, films[2].ID)
	})

	t.Run("explicit_count", func(t *testing.T) {
		films, err := service.GetPopularFilms(ctx, "1")
		require.NoError(t, err)
		require.Len(t, films, 1)
		assert.Equal(t, second.ID, films[0].ID)
	})

	t.Run("unparsable_count_falls_back", func(t *testing.T) {
		films, err := service.GetPopularFilms(ctx, "abc")
		require.NoError(t, err)
		assert.Len(t, films, 3)
	})

	t.Run("negative_count_falls_back", func(t *testing.T) {
		films, err := service.GetPopularFilms(ctx, "-3")
		require.NoError(t, err)
		assert.Len(t, films, 3)
	})
}

/*
TestService_DeleteByID checks deletion and its missing-id error.
*/
func TestService_DeleteByID(t *testing.T) {
	service, repo, _ := newTestService()

	created, err := service.Create(context.Background(), validFilm())
	require.NoError(t, err)

	require.NoError(t, service.DeleteByID(context.Background(), created.ID))
	assert.Empty(t, repo.films)

	err = service.DeleteByID(context.Background(), created.ID)
	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "NOT_FOUND", ae.Code)
}
