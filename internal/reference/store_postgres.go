package reference

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/filmorate/internal/platform/database/schema"
	"github.com/taibuivan/filmorate/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// # Genres

func (repository *PostgresRepository) ListGenres(context context.Context) ([]Genre, error) {
	query := fmt.Sprintf(`SELECT %s, %s FROM %s ORDER BY %s ASC`,
		schema.Genre.ID, schema.Genre.Name, schema.Genre.Table, schema.Genre.ID)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_genres")
	}
	defer rows.Close()

	genres := make([]Genre, 0)
	for rows.Next() {
		g := Genre{}
		if err := rows.Scan(&g.ID, &g.Name); err != nil {
			return nil, dberr.Wrap(err, "scan_genre")
		}
		genres = append(genres, g)
	}

	return genres, nil
}

func (repository *PostgresRepository) GetGenre(context context.Context, id int64) (*Genre, error) {
	query := fmt.Sprintf(`SELECT %s, %s FROM %s WHERE %s = $1`,
		schema.Genre.ID, schema.Genre.Name, schema.Genre.Table, schema.Genre.ID)

	g := &Genre{}
	err := repository.db.QueryRow(context, query, id).Scan(&g.ID, &g.Name)
	if err != nil {
		return nil, dberr.Wrap(err, "get_genre")
	}

	return g, nil
}

func (repository *PostgresRepository) CreateGenre(context context.Context, genre *Genre) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES ($1) RETURNING %s`,
		schema.Genre.Table, schema.Genre.Name, schema.Genre.ID)

	err := repository.db.QueryRow(context, query, genre.Name).Scan(&genre.ID)
	return dberr.Wrap(err, "create_genre")
}

func (repository *PostgresRepository) UpdateGenre(context context.Context, genre *Genre) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = $2 WHERE %s = $1`,
		schema.Genre.Table, schema.Genre.Name, schema.Genre.ID)

	cmd, err := repository.db.Exec(context, query, genre.ID, genre.Name)
	if err != nil {
		return dberr.Wrap(err, "update_genre")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) DeleteGenre(context context.Context, id int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.Genre.Table, schema.Genre.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_genre")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

// # MPA Ratings

func (repository *PostgresRepository) ListRatings(context context.Context) ([]Rating, error) {
	query := fmt.Sprintf(`SELECT %s, %s FROM %s ORDER BY %s ASC`,
		schema.Mpa.ID, schema.Mpa.Name, schema.Mpa.Table, schema.Mpa.ID)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_ratings")
	}
	defer rows.Close()

	ratings := make([]Rating, 0)
	for rows.Next() {
		r := Rating{}
		if err := rows.Scan(&r.ID, &r.Name); err != nil {
			return nil, dberr.Wrap(err, "scan_rating")
		}
		ratings = append(ratings, r)
	}

	return ratings, nil
}

func (repository *PostgresRepository) GetRating(context context.Context, id int64) (*Rating, error) {
	query := fmt.Sprintf(`SELECT %s, %s FROM %s WHERE %s = $1`,
		schema.Mpa.ID, schema.Mpa.Name, schema.Mpa.Table, schema.Mpa.ID)

	r := &Rating{}
	err := repository.db.QueryRow(context, query, id).Scan(&r.ID, &r.Name)
	if err != nil {
		return nil, dberr.Wrap(err, "get_rating")
	}

	return r, nil
}

func (repository *PostgresRepository) CreateRating(context context.Context, rating *Rating) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES ($1) RETURNING %s`,
		schema.Mpa.Table, schema.Mpa.Name, schema.Mpa.ID)

	err := repository.db.QueryRow(context, query, rating.Name).Scan(&rating.ID)
	return dberr.Wrap(err, "create_rating")
}

func (repository *PostgresRepository) UpdateRating(context context.Context, rating *Rating) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = $2 WHERE %s = $1`,
		schema.Mpa.Table, schema.Mpa.Name, schema.Mpa.ID)

	cmd, err := repository.db.Exec(context, query, rating.ID, rating.Name)
	if err != nil {
		return dberr.Wrap(err, "update_rating")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) DeleteRating(context context.Context, id int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.Mpa.Table, schema.Mpa.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_rating")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
