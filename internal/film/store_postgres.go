package film

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/filmorate/internal/platform/database/schema"
	"github.com/taibuivan/filmorate/internal/platform/dberr"
	"github.com/taibuivan/filmorate/internal/reference"
)

// PostgresRepository persists films, their genre links, and their likes.
//
// Films load in two passes: one query for the film rows joined with the MPA
// rating, then batched relation queries over ANY(ids) for genres and likes.
// This keeps list endpoints at a constant number of round trips regardless
// of catalogue size.
type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// querier is satisfied by both *pgxpool.Pool and pgx.Tx so relation loading
// can run inside or outside a transaction.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

func (repository *PostgresRepository) CreateFilm(context context.Context, film *Film) error {
	tx, err := repository.db.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "begin_create_film")
	}
	defer tx.Rollback(context)

	query := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s, %s, %s) VALUES ($1, $2, $3, $4, $5) RETURNING %s`,
		schema.Film.Table,
		schema.Film.Name, schema.Film.Description, schema.Film.ReleaseDate,
		schema.Film.Duration, schema.Film.MpaID,
		schema.Film.ID)

	err = tx.QueryRow(context, query,
		film.Name, film.Description, film.ReleaseDate, film.Duration, film.Mpa.ID,
	).Scan(&film.ID)
	if err != nil {
		return dberr.Wrap(err, "create_film")
	}

	if err := insertGenreLinks(context, tx, film.ID, film.Genres); err != nil {
		return err
	}

	if err := tx.Commit(context); err != nil {
		return dberr.Wrap(err, "commit_create_film")
	}

	return repository.reload(context, film)
}

func (repository *PostgresRepository) GetFilm(context context.Context, id int64) (*Film, error) {
	query := filmSelect() + fmt.Sprintf(` WHERE f.%s = $1`, schema.Film.ID)

	f := &Film{}
	err := repository.db.QueryRow(context, query, id).Scan(
		&f.ID, &f.Name, &f.Description, &f.ReleaseDate, &f.Duration, &f.Mpa.ID, &f.Mpa.Name)
	if err != nil {
		return nil, dberr.Wrap(err, "get_film")
	}

	if err := attachRelations(context, repository.db, []*Film{f}); err != nil {
		return nil, err
	}
	return f, nil
}

func (repository *PostgresRepository) ListFilms(context context.Context) ([]*Film, error) {
	query := filmSelect() + fmt.Sprintf(` ORDER BY f.%s ASC`, schema.Film.ID)
	return repository.listFilms(context, query)
}

func (repository *PostgresRepository) UpdateFilm(context context.Context, film *Film) error {
	tx, err := repository.db.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "begin_update_film")
	}
	defer tx.Rollback(context)

	query := fmt.Sprintf(`UPDATE %s SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6 WHERE %s = $1`,
		schema.Film.Table,
		schema.Film.Name, schema.Film.Description, schema.Film.ReleaseDate,
		schema.Film.Duration, schema.Film.MpaID,
		schema.Film.ID)

	cmd, err := tx.Exec(context, query,
		film.ID, film.Name, film.Description, film.ReleaseDate, film.Duration, film.Mpa.ID)
	if err != nil {
		return dberr.Wrap(err, "update_film")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}

	// Genre links are replaced wholesale: the payload's set is authoritative.
	deleteLinks := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.FilmGenre.Table, schema.FilmGenre.FilmID)
	if _, err := tx.Exec(context, deleteLinks, film.ID); err != nil {
		return dberr.Wrap(err, "clear_film_genres")
	}

	if err := insertGenreLinks(context, tx, film.ID, film.Genres); err != nil {
		return err
	}

	if err := tx.Commit(context); err != nil {
		return dberr.Wrap(err, "commit_update_film")
	}

	return repository.reload(context, film)
}

func (repository *PostgresRepository) DeleteFilm(context context.Context, id int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.Film.Table, schema.Film.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_film")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) FilmExists(context context.Context, id int64) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)`,
		schema.Film.Table, schema.Film.ID)

	var exists bool
	if err := repository.db.QueryRow(context, query, id).Scan(&exists); err != nil {
		return false, dberr.Wrap(err, "film_exists")
	}
	return exists, nil
}

// # Likes

func (repository *PostgresRepository) AddLike(context context.Context, filmID, userID int64) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s) VALUES ($1, $2)`,
		schema.Like.Table, schema.Like.FilmID, schema.Like.UserID)

	_, err := repository.db.Exec(context, query, filmID, userID)
	if err != nil {
		if dberr.IsUniqueViolation(err) {
			return ErrLikeExists
		}
		return dberr.Wrap(err, "add_like")
	}
	return nil
}

func (repository *PostgresRepository) DeleteLike(context context.Context, filmID, userID int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 AND %s = $2`,
		schema.Like.Table, schema.Like.FilmID, schema.Like.UserID)

	cmd, err := repository.db.Exec(context, query, filmID, userID)
	if err != nil {
		return dberr.Wrap(err, "delete_like")
	}

	if cmd.RowsAffected() == 0 {
		return ErrLikeMissing
	}
	return nil
}

// ListPopular ranks films by like count descending, ties broken by
// ascending film id. Films with zero likes still rank.
func (repository *PostgresRepository) ListPopular(context context.Context, limit int) ([]*Film, error) {
	query := filmSelect() + fmt.Sprintf(`
		LEFT JOIN %s l ON l.%s = f.%s
		GROUP BY f.%s, f.%s, f.%s, f.%s, f.%s, m.%s, m.%s
		ORDER BY COUNT(l.%s) DESC, f.%s ASC
		LIMIT $1`,
		schema.Like.Table, schema.Like.FilmID, schema.Film.ID,
		schema.Film.ID, schema.Film.Name, schema.Film.Description,
		schema.Film.ReleaseDate, schema.Film.Duration, schema.Mpa.ID, schema.Mpa.Name,
		schema.Like.UserID, schema.Film.ID)

	return repository.listFilms(context, query, limit)
}

// # Internals

// filmSelect is the shared projection: film columns plus the joined MPA
// rating.
func filmSelect() string {
	return fmt.Sprintf(`SELECT f.%s, f.%s, f.%s, f.%s, f.%s, m.%s, m.%s FROM %s f JOIN %s m ON m.%s = f.%s`,
		schema.Film.ID, schema.Film.Name, schema.Film.Description,
		schema.Film.ReleaseDate, schema.Film.Duration,
		schema.Mpa.ID, schema.Mpa.Name,
		schema.Film.Table, schema.Mpa.Table, schema.Mpa.ID, schema.Film.MpaID)
}

func (repository *PostgresRepository) listFilms(context context.Context, query string, args ...any) ([]*Film, error) {
	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "list_films")
	}
	defer rows.Close()

	films := make([]*Film, 0)
	for rows.Next() {
		f := &Film{}
		err := rows.Scan(&f.ID, &f.Name, &f.Description, &f.ReleaseDate, &f.Duration, &f.Mpa.ID, &f.Mpa.Name)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_film")
		}
		films = append(films, f)
	}

	if err := attachRelations(context, repository.db, films); err != nil {
		return nil, err
	}
	return films, nil
}

// reload rereads the stored record into film after a write so the caller
// sees the persisted genre names and like set.
func (repository *PostgresRepository) reload(context context.Context, film *Film) error {
	stored, err := repository.GetFilm(context, film.ID)
	if err != nil {
		return err
	}
	*film = *stored
	return nil
}

func insertGenreLinks(context context.Context, tx pgx.Tx, filmID int64, genres []reference.Genre) error {
	if len(genres) == 0 {
		return nil
	}

	query := fmt.Sprintf(`INSERT INTO %s (%s, %s) VALUES ($1, $2)`,
		schema.FilmGenre.Table, schema.FilmGenre.FilmID, schema.FilmGenre.GenreID)

	for _, genre := range genres {
		if _, err := tx.Exec(context, query, filmID, genre.ID); err != nil {
			return dberr.Wrap(err, "link_film_genre")
		}
	}
	return nil
}

// attachRelations loads genres and like sets for every film in one query
// per relation.
func attachRelations(context context.Context, db querier, films []*Film) error {
	if len(films) == 0 {
		return nil
	}

	byID := make(map[int64]*Film, len(films))
	ids := make([]int64, 0, len(films))
	for _, f := range films {
		f.Genres = make([]reference.Genre, 0)
		f.LikedUserIDs = make([]int64, 0)
		byID[f.ID] = f
		ids = append(ids, f.ID)
	}

	genreQuery := fmt.Sprintf(`SELECT fg.%s, g.%s, g.%s FROM %s fg JOIN %s g ON g.%s = fg.%s WHERE fg.%s = ANY($1) ORDER BY fg.%s ASC, g.%s ASC`,
		schema.FilmGenre.FilmID, schema.Genre.ID, schema.Genre.Name,
		schema.FilmGenre.Table, schema.Genre.Table, schema.Genre.ID, schema.FilmGenre.GenreID,
		schema.FilmGenre.FilmID, schema.FilmGenre.FilmID, schema.Genre.ID)

	rows, err := db.Query(context, genreQuery, ids)
	if err != nil {
		return dberr.Wrap(err, "list_film_genres")
	}
	for rows.Next() {
		var filmID int64
		genre := reference.Genre{}
		if err := rows.Scan(&filmID, &genre.ID, &genre.Name); err != nil {
			rows.Close()
			return dberr.Wrap(err, "scan_film_genre")
		}
		if f, ok := byID[filmID]; ok {
			f.Genres = append(f.Genres, genre)
		}
	}
	rows.Close()

	likeQuery := fmt.Sprintf(`SELECT %s, %s FROM %s WHERE %s = ANY($1) ORDER BY %s ASC, %s ASC`,
		schema.Like.FilmID, schema.Like.UserID, schema.Like.Table,
		schema.Like.FilmID, schema.Like.FilmID, schema.Like.UserID)

	rows, err = db.Query(context, likeQuery, ids)
	if err != nil {
		return dberr.Wrap(err, "list_film_likes")
	}
	for rows.Next() {
		var filmID, userID int64
		if err := rows.Scan(&filmID, &userID); err != nil {
			rows.Close()
			return dberr.Wrap(err, "scan_film_like")
		}
		if f, ok := byID[filmID]; ok {
			f.LikedUserIDs = append(f.LikedUserIDs, userID)
		}
	}
	rows.Close()

	return nil
}
