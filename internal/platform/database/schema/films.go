// Package schema centralizes table and column names for the Filmorate
// relational layout. Query builders reference these definitions instead of
// string literals so a rename happens in exactly one place.
package schema

// FilmTable represents the 'films' table
type FilmTable struct {
	Table       string
	ID          string
	Name        string
	Description string
	ReleaseDate string
	Duration    string
	MpaID       string
}

// Film is the schema definition for films
var Film = FilmTable{
	Table:       "films",
	ID:          "id",
	Name:        "name",
	Description: "description",
	ReleaseDate: "release_date",
	Duration:    "duration",
	MpaID:       "mpa_id",
}

// Columns returns all standard column names
func (t FilmTable) Columns() []string {
	return []string{t.ID, t.Name, t.Description, t.ReleaseDate, t.Duration, t.MpaID}
}
