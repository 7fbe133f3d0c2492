package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/taibuivan/filmorate/internal/platform/apperr"
	"github.com/taibuivan/filmorate/internal/platform/dberr"
	"github.com/taibuivan/filmorate/internal/platform/validate"
)

// Service orchestrates the user business rules: payload validation, the
// blank-name substitution, and the friendship graph operations.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Create validates the candidate user and persists it. A blank display name
// is replaced by the login after validation passes.
func (service *Service) Create(context context.Context, user *User) (*User, error) {
	if err := validateUser(user); err != nil {
		return nil, err
	}
	substituteName(user)

	if err := service.repo.CreateUser(context, user); err != nil {
		return nil, err
	}

	service.logger.Info("user_created", slog.Int64("user_id", user.ID), slog.String("login", user.Login))
	return user, nil
}

func (service *Service) GetByID(context context.Context, userID int64) (*User, error) {
	user, err := service.repo.GetUser(context, userID)
	if err != nil {
		return nil, userNotFound(userID, err)
	}
	return user, nil
}

// GetAll returns every user ordered by ascending id.
func (service *Service) GetAll(context context.Context) ([]*User, error) {
	return service.repo.ListUsers(context)
}

// Update replaces the stored record in full. The blank-name substitution
// applies on update exactly as on create.
func (service *Service) Update(context context.Context, user *User) (*User, error) {
	if err := validateUser(user); err != nil {
		return nil, err
	}
	substituteName(user)

	if err := service.repo.UpdateUser(context, user); err != nil {
		return nil, userNotFound(user.ID, err)
	}

	service.logger.Info("user_updated", slog.Int64("user_id", user.ID))
	return user, nil
}

func (service *Service) DeleteByID(context context.Context, userID int64) error {
	if err := service.repo.DeleteUser(context, userID); err != nil {
		return userNotFound(userID, err)
	}

	service.logger.Warn("user_deleted", slog.Int64("user_id", userID))
	return nil
}

// AddFriend records userID's friend request toward friendID.
//
// The edge is directional until friendID requests back, which reciprocates
// the pair into a mutual friendship. Repeats of an existing request are
// CONFLICT.
func (service *Service) AddFriend(context context.Context, userID, friendID int64) error {
	if err := service.checkIDs(context, userID, friendID); err != nil {
		return err
	}

	if err := service.repo.AddFriend(context, userID, friendID); err != nil {
		return err
	}

	service.logger.Info("friend_added", slog.Int64("user_id", userID), slog.Int64("friend_id", friendID))
	return nil
}

// DeleteFriendByID removes the friendship edge between the two users in
// whichever direction it was recorded. An absent edge is CONFLICT.
func (service *Service) DeleteFriendByID(context context.Context, userID, friendID int64) error {
	if err := service.checkIDs(context, userID, friendID); err != nil {
		return err
	}

	if err := service.repo.DeleteFriend(context, userID, friendID); err != nil {
		return err
	}

	service.logger.Info("friend_removed", slog.Int64("user_id", userID), slog.Int64("friend_id", friendID))
	return nil
}

// GetAllFriends returns userID's friends ordered by ascending id: everyone
// they requested plus the requesters who were reciprocated.
func (service *Service) GetAllFriends(context context.Context, userID int64) ([]*User, error) {
	exists, err := service.repo.UserExists(context, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperr.NotFoundAll(missingMessage(userID))
	}

	return service.repo.ListFriends(context, userID)
}

// GetCommonFriends returns the intersection of both users' friend lists,
// ordered by ascending id.
func (service *Service) GetCommonFriends(context context.Context, userID, otherID int64) ([]*User, error) {
	if err := service.checkIDs(context, userID, otherID); err != nil {
		return nil, err
	}

	return service.repo.ListCommonFriends(context, userID, otherID)
}

// validateUser checks every user rule eagerly and aggregates all violations
// into a single VALIDATION_ERROR. The display name is never validated.
func validateUser(user *User) error {
	validator := &validate.Validator{}

	validator.Required(FieldEmail, user.Email)
	validator.Email(FieldEmail, user.Email)
	validator.Required(FieldLogin, user.Login)
	validator.Login(FieldLogin, user.Login)
	validator.NotFuture(FieldBirthday, user.Birthday)

	return validator.Err()
}

// substituteName fills a blank display name with the login. Runs only after
// validation so a rejected payload is never mutated.
func substituteName(user *User) {
	if strings.TrimSpace(user.Name) == "" {
		user.Name = user.Login
	}
}

// checkIDs verifies that both users exist, aggregating the missing ids into
// one NOT_FOUND error.
func (service *Service) checkIDs(context context.Context, userID, otherID int64) error {
	messages := make([]string, 0, 2)

	for _, id := range []int64{userID, otherID} {
		exists, err := service.repo.UserExists(context, id)
		if err != nil {
			return err
		}
		if !exists {
			messages = append(messages, missingMessage(id))
		}
	}

	if len(messages) > 0 {
		return apperr.NotFoundAll(messages...)
	}
	return nil
}

func missingMessage(userID int64) string {
	return fmt.Sprintf("The user with id %d was not found", userID)
}

// userNotFound rewrites the store's row-miss with the user id; other error
// kinds pass through untouched.
func userNotFound(userID int64, err error) error {
	if errors.Is(err, dberr.ErrNotFound) {
		return apperr.NotFoundAll(missingMessage(userID))
	}
	return err
}
