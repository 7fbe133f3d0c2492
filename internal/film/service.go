package film

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/taibuivan/filmorate/internal/platform/apperr"
	"github.com/taibuivan/filmorate/internal/platform/dberr"
	"github.com/taibuivan/filmorate/internal/platform/validate"
)

// Service orchestrates the film catalogue business rules: payload
// validation, MPA reference resolution, like bookkeeping, and the
// popularity ranking.
//
// The service is stateless; every operation is a self-contained request
// against the injected repository.
type Service struct {
	repo    Repository
	ratings RatingResolver
	users   UserChecker
	logger  *slog.Logger
}

func NewService(repo Repository, ratings RatingResolver, users UserChecker, logger *slog.Logger) *Service {
	return &Service{
		repo:    repo,
		ratings: ratings,
		users:   users,
		logger:  logger,
	}
}

// Create validates the candidate film, resolves its MPA rating reference,
// and persists it. The returned record carries the store-assigned id, the
// full rating object, and normalized genre/like sets.
func (service *Service) Create(context context.Context, film *Film) (*Film, error) {
	if err := validateFilm(film); err != nil {
		return nil, err
	}

	// Resolve the rating before any store mutation so a dangling reference
	// fails deterministically with NOT_FOUND.
	rating, err := service.ratings.GetRating(context, film.Mpa.ID)
	if err != nil {
		return nil, ratingNotFound(film.Mpa.ID, err)
	}
	film.Mpa = *rating

	film.Normalize()
	if err := service.repo.CreateFilm(context, film); err != nil {
		return nil, err
	}

	service.logger.Info("film_created", slog.Int64("film_id", film.ID), slog.String("name", film.Name))
	return film, nil
}

func (service *Service) GetByID(context context.Context, filmID int64) (*Film, error) {
	film, err := service.repo.GetFilm(context, filmID)
	if err != nil {
		return nil, filmNotFound(filmID, err)
	}
	return film, nil
}

// GetAll returns every film ordered by ascending id. An empty catalogue is
// an empty sequence, never an error.
func (service *Service) GetAll(context context.Context) ([]*Film, error) {
	return service.repo.ListFilms(context)
}

// Update replaces the stored record in full, genre links included.
func (service *Service) Update(context context.Context, film *Film) (*Film, error) {
	if err := validateFilm(film); err != nil {
		return nil, err
	}

	rating, err := service.ratings.GetRating(context, film.Mpa.ID)
	if err != nil {
		return nil, ratingNotFound(film.Mpa.ID, err)
	}
	film.Mpa = *rating

	film.Normalize()
	if err := service.repo.UpdateFilm(context, film); err != nil {
		return nil, filmNotFound(film.ID, err)
	}

	service.logger.Info("film_updated", slog.Int64("film_id", film.ID))
	return film, nil
}

func (service *Service) DeleteByID(context context.Context, filmID int64) error {
	if err := service.repo.DeleteFilm(context, filmID); err != nil {
		return filmNotFound(filmID, err)
	}

	service.logger.Warn("film_deleted", slog.Int64("film_id", filmID))
	return nil
}

// LikeFilm records userID's like of filmID.
//
// Both ids are checked up front; when both are missing the error reports
// both. A duplicate like is CONFLICT — the store's uniqueness constraint is
// the authoritative detector, so two racing likes resolve to one success
// and one conflict without a pre-check race.
func (service *Service) LikeFilm(context context.Context, filmID, userID int64) error {
	if err := service.checkIDs(context, filmID, userID); err != nil {
		return err
	}

	if err := service.repo.AddLike(context, filmID, userID); err != nil {
		return err
	}

	service.logger.Info("film_liked", slog.Int64("film_id", filmID), slog.Int64("user_id", userID))
	return nil
}

// DeleteLike is symmetric to LikeFilm: missing ids are NOT_FOUND, an absent
// like is CONFLICT.
func (service *Service) DeleteLike(context context.Context, filmID, userID int64) error {
	if err := service.checkIDs(context, filmID, userID); err != nil {
		return err
	}

	if err := service.repo.DeleteLike(context, filmID, userID); err != nil {
		return err
	}

	service.logger.Info("film_unliked", slog.Int64("film_id", filmID), slog.Int64("user_id", userID))
	return nil
}

// GetPopularFilms returns up to count films ranked by like count descending,
// ties broken by ascending id.
//
// The count arrives as the raw query-string value; anything that does not
// parse as a positive integer falls back to [DefaultPopularLimit]. The
// operation never fails on an empty catalogue.
func (service *Service) GetPopularFilms(context context.Context, count string) ([]*Film, error) {
	limit, err := strconv.Atoi(count)
	if err != nil || limit <= 0 {
		limit = DefaultPopularLimit
	}

	return service.repo.ListPopular(context, limit)
}

// validateFilm checks every film rule eagerly and aggregates all violations
// into a single VALIDATION_ERROR.
func validateFilm(film *Film) error {
	validator := &validate.Validator{}

	validator.Required(FieldName, film.Name)
	if film.Description != nil {
		validator.LenRange(FieldDescription, *film.Description, 1, 200)
	}
	validator.RequiredDate(FieldReleaseDate, film.ReleaseDate)
	validator.NotBefore(FieldReleaseDate, film.ReleaseDate, MinReleaseDate)
	validator.Positive(FieldDuration, film.Duration)
	validator.Custom(FieldMpa, film.Mpa.ID <= 0, "The MPA rating reference is required")

	return validator.Err()
}

// checkIDs verifies that both the film and the user exist, aggregating the
// missing ids into one NOT_FOUND error.
func (service *Service) checkIDs(context context.Context, filmID, userID int64) error {
	messages := make([]string, 0, 2)

	filmExists, err := service.repo.FilmExists(context, filmID)
	if err != nil {
		return err
	}
	if !filmExists {
		messages = append(messages, fmt.Sprintf("The film with id %d was not found", filmID))
	}

	userExists, err := service.users.UserExists(context, userID)
	if err != nil {
		return err
	}
	if !userExists {
		messages = append(messages, fmt.Sprintf("The user with id %d was not found", userID))
	}

	if len(messages) > 0 {
		return apperr.NotFoundAll(messages...)
	}
	return nil
}

// filmNotFound rewrites the store's row-miss with the film id. Other error
// kinds pass through untouched, notably the foreign-key NOT_FOUND raised
// when a genre reference dangles on an existing film.
func filmNotFound(filmID int64, err error) error {
	if errors.Is(err, dberr.ErrNotFound) {
		return apperr.NotFoundAll(fmt.Sprintf("The film with id %d was not found", filmID))
	}
	return err
}

// ratingNotFound rewrites a reference-lookup row-miss with the rating id.
func ratingNotFound(ratingID int64, err error) error {
	if errors.Is(err, dberr.ErrNotFound) {
		return apperr.NotFoundAll(fmt.Sprintf("The MPA rating with id %d was not found", ratingID))
	}
	return err
}
