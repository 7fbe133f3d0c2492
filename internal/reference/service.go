package reference

import (
	"context"
	"log/slog"

	"github.com/taibuivan/filmorate/internal/platform/validate"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// # Genres

func (service *Service) ListGenres(context context.Context) ([]Genre, error) {
	return service.repo.ListGenres(context)
}

func (service *Service) GetGenre(context context.Context, id int64) (*Genre, error) {
	return service.repo.GetGenre(context, id)
}

func (service *Service) CreateGenre(context context.Context, genre *Genre) error {
	if err := validateName(genre.Name); err != nil {
		return err
	}

	if err := service.repo.CreateGenre(context, genre); err != nil {
		return err
	}

	service.logger.Info("genre_created", slog.Int64("genre_id", genre.ID), slog.String("name", genre.Name))
	return nil
}

func (service *Service) UpdateGenre(context context.Context, id int64, genre *Genre) error {
	genre.ID = id
	if err := validateName(genre.Name); err != nil {
		return err
	}

	if err := service.repo.UpdateGenre(context, genre); err != nil {
		return err
	}

	service.logger.Info("genre_updated", slog.Int64("genre_id", genre.ID))
	return nil
}

func (service *Service) DeleteGenre(context context.Context, id int64) error {
	if err := service.repo.DeleteGenre(context, id); err != nil {
		return err
	}

	service.logger.Warn("genre_deleted", slog.Int64("genre_id", id))
	return nil
}

// # MPA Ratings

func (service *Service) ListRatings(context context.Context) ([]Rating, error) {
	return service.repo.ListRatings(context)
}

func (service *Service) GetRating(context context.Context, id int64) (*Rating, error) {
	return service.repo.GetRating(context, id)
}

func (service *Service) CreateRating(context context.Context, rating *Rating) error {
	if err := validateName(rating.Name); err != nil {
		return err
	}

	if err := service.repo.CreateRating(context, rating); err != nil {
		return err
	}

	service.logger.Info("rating_created", slog.Int64("rating_id", rating.ID), slog.String("name", rating.Name))
	return nil
}

func (service *Service) UpdateRating(context context.Context, id int64, rating *Rating) error {
	rating.ID = id
	if err := validateName(rating.Name); err != nil {
		return err
	}

	if err := service.repo.UpdateRating(context, rating); err != nil {
		return err
	}

	service.logger.Info("rating_updated", slog.Int64("rating_id", rating.ID))
	return nil
}

func (service *Service) DeleteRating(context context.Context, id int64) error {
	if err := service.repo.DeleteRating(context, id); err != nil {
		return err
	}

	service.logger.Warn("rating_deleted", slog.Int64("rating_id", id))
	return nil
}

func validateName(name string) error {
	validator := &validate.Validator{}
	validator.Required(FieldName, name).MaxLen(FieldName, name, maxNameLen)
	return validator.Err()
}
