package schema

// FilmGenreTable represents the 'film_genre' join table
type FilmGenreTable struct {
	Table   string
	FilmID  string
	GenreID string
}

// FilmGenre is the schema definition for film_genre
var FilmGenre = FilmGenreTable{
	Table:   "film_genre",
	FilmID:  "film_id",
	GenreID: "genre_id",
}
