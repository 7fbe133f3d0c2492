package user

import (
	"context"

	"github.com/taibuivan/filmorate/internal/platform/apperr"
)

// Sentinel conflicts surfaced by friendship mutations.
var (
	ErrAlreadyFriends = apperr.Conflict("The friendship request already exists")
	ErrNotFriends     = apperr.Conflict("The friendship does not exist")
)

type Repository interface {
	CreateUser(context context.Context, user *User) error
	GetUser(context context.Context, id int64) (*User, error)
	ListUsers(context context.Context) ([]*User, error)
	UpdateUser(context context.Context, user *User) error
	DeleteUser(context context.Context, id int64) error
	UserExists(context context.Context, id int64) (bool, error)

	// AddFriend records userID's friend request toward friendID. A fresh
	// request creates a one-way edge; the reverse of a pending one-way edge
	// reciprocates it. Any other repeat is [ErrAlreadyFriends].
	AddFriend(context context.Context, userID, friendID int64) error
	// DeleteFriend removes the pair's edge regardless of direction or
	// status. Absence is [ErrNotFriends].
	DeleteFriend(context context.Context, userID, friendID int64) error
	// ListFriends returns everyone userID sees as a friend, ascending id:
	// all users they requested plus the reciprocated requesters.
	ListFriends(context context.Context, userID int64) ([]*User, error)
	ListCommonFriends(context context.Context, userID, otherID int64) ([]*User, error)
}
