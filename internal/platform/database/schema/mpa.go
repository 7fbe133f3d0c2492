package schema

// MpaTable represents the 'mpa' table
type MpaTable struct {
	Table string
	ID    string
	Name  string
}

// Mpa is the schema definition for mpa
var Mpa = MpaTable{
	Table: "mpa",
	ID:    "id",
	Name:  "name",
}
