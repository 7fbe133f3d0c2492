package user

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/filmorate/internal/platform/database/schema"
	"github.com/taibuivan/filmorate/internal/platform/dberr"
)

// PostgresRepository persists users and the friendship graph.
type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) CreateUser(context context.Context, user *User) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s, %s) VALUES ($1, $2, $3, $4) RETURNING %s`,
		schema.User.Table,
		schema.User.Email, schema.User.Login, schema.User.Name, schema.User.Birthday,
		schema.User.ID)

	err := repository.db.QueryRow(context, query,
		user.Email, user.Login, user.Name, user.Birthday,
	).Scan(&user.ID)
	return dberr.Wrap(err, "create_user")
}

func (repository *PostgresRepository) GetUser(context context.Context, id int64) (*User, error) {
	query := userSelect() + fmt.Sprintf(` WHERE %s = $1`, schema.User.ID)

	u := &User{}
	err := repository.db.QueryRow(context, query, id).Scan(
		&u.ID, &u.Email, &u.Login, &u.Name, &u.Birthday)
	if err != nil {
		return nil, dberr.Wrap(err, "get_user")
	}

	return u, nil
}

func (repository *PostgresRepository) ListUsers(context context.Context) ([]*User, error) {
	query := userSelect() + fmt.Sprintf(` ORDER BY %s ASC`, schema.User.ID)
	return repository.listUsers(context, query, "list_users")
}

func (repository *PostgresRepository) UpdateUser(context context.Context, user *User) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = $2, %s = $3, %s = $4, %s = $5 WHERE %s = $1`,
		schema.User.Table,
		schema.User.Email, schema.User.Login, schema.User.Name, schema.User.Birthday,
		schema.User.ID)

	cmd, err := repository.db.Exec(context, query,
		user.ID, user.Email, user.Login, user.Name, user.Birthday)
	if err != nil {
		return dberr.Wrap(err, "update_user")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) DeleteUser(context context.Context, id int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.User.Table, schema.User.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_user")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) UserExists(context context.Context, id int64) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)`,
		schema.User.Table, schema.User.ID)

	var exists bool
	if err := repository.db.QueryRow(context, query, id).Scan(&exists); err != nil {
		return false, dberr.Wrap(err, "user_exists")
	}
	return exists, nil
}

// # Friendships

func (repository *PostgresRepository) AddFriend(context context.Context, userID, friendID int64) error {
	// A pending reverse edge means friendID asked first. This request
	// reciprocates it instead of creating a second row.
	reciprocate := fmt.Sprintf(`UPDATE %s SET %s = TRUE WHERE %s = $2 AND %s = $1 AND %s = FALSE`,
		schema.Friendship.Table, schema.Friendship.Status,
		schema.Friendship.UserOne, schema.Friendship.UserTwo, schema.Friendship.Status)

	cmd, err := repository.db.Exec(context, reciprocate, userID, friendID)
	if err != nil {
		return dberr.Wrap(err, "reciprocate_friendship")
	}
	if cmd.RowsAffected() > 0 {
		return nil
	}

	// Any surviving edge in either direction makes this request a repeat.
	existing := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE (%s = $1 AND %s = $2) OR (%s = $2 AND %s = $1))`,
		schema.Friendship.Table,
		schema.Friendship.UserOne, schema.Friendship.UserTwo,
		schema.Friendship.UserOne, schema.Friendship.UserTwo)

	var exists bool
	if err := repository.db.QueryRow(context, existing, userID, friendID).Scan(&exists); err != nil {
		return dberr.Wrap(err, "check_friendship")
	}
	if exists {
		return ErrAlreadyFriends
	}

	insert := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s) VALUES ($1, $2, FALSE)`,
		schema.Friendship.Table,
		schema.Friendship.UserOne, schema.Friendship.UserTwo, schema.Friendship.Status)

	if _, err := repository.db.Exec(context, insert, userID, friendID); err != nil {
		if dberr.IsUniqueViolation(err) {
			return ErrAlreadyFriends
		}
		return dberr.Wrap(err, "add_friend")
	}
	return nil
}

func (repository *PostgresRepository) DeleteFriend(context context.Context, userID, friendID int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE (%s = $1 AND %s = $2) OR (%s = $2 AND %s = $1)`,
		schema.Friendship.Table,
		schema.Friendship.UserOne, schema.Friendship.UserTwo,
		schema.Friendship.UserOne, schema.Friendship.UserTwo)

	cmd, err := repository.db.Exec(context, query, userID, friendID)
	if err != nil {
		return dberr.Wrap(err, "delete_friend")
	}

	if cmd.RowsAffected() == 0 {
		return ErrNotFriends
	}
	return nil
}

func (repository *PostgresRepository) ListFriends(context context.Context, userID int64) ([]*User, error) {
	query := userSelect() + fmt.Sprintf(` WHERE %s IN (%s) ORDER BY %s ASC`,
		schema.User.ID, friendIDs("$1"), schema.User.ID)

	return repository.listUsers(context, query, "list_friends", userID)
}

func (repository *PostgresRepository) ListCommonFriends(context context.Context, userID, otherID int64) ([]*User, error) {
	// INTERSECT binds tighter than the UNION inside each subquery, so both
	// sides are parenthesized.
	query := userSelect() + fmt.Sprintf(` WHERE %s IN ((%s) INTERSECT (%s)) ORDER BY %s ASC`,
		schema.User.ID, friendIDs("$1"), friendIDs("$2"), schema.User.ID)

	return repository.listUsers(context, query, "list_common_friends", userID, otherID)
}

// # Internals

func userSelect() string {
	return fmt.Sprintf(`SELECT %s, %s, %s, %s, %s FROM %s`,
		schema.User.ID, schema.User.Email, schema.User.Login,
		schema.User.Name, schema.User.Birthday, schema.User.Table)
}

// friendIDs builds the friend-id subquery for the user bound to placeholder:
// everyone they requested, plus requesters whose edge was reciprocated.
func friendIDs(placeholder string) string {
	return fmt.Sprintf(`SELECT %s FROM %s WHERE %s = %s UNION SELECT %s FROM %s WHERE %s = %s AND %s`,
		schema.Friendship.UserTwo, schema.Friendship.Table, schema.Friendship.UserOne, placeholder,
		schema.Friendship.UserOne, schema.Friendship.Table, schema.Friendship.UserTwo, placeholder,
		schema.Friendship.Status)
}

func (repository *PostgresRepository) listUsers(context context.Context, query, action string, args ...any) ([]*User, error) {
	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, action)
	}
	defer rows.Close()

	users := make([]*User, 0)
	for rows.Next() {
		u := &User{}
		if err := rows.Scan(&u.ID, &u.Email, &u.Login, &u.Name, &u.Birthday); err != nil {
			return nil, dberr.Wrap(err, "scan_user")
		}
		users = append(users, u)
	}

	return users, nil
}
