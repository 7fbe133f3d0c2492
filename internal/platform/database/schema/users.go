package schema

// UserTable represents the 'users' table
type UserTable struct {
	Table    string
	ID       string
	Email    string
	Login    string
	Name     string
	Birthday string
}

// User is the schema definition for users
var User = UserTable{
	Table:    "users",
	ID:       "id",
	Email:    "email",
	Login:    "login",
	Name:     "name",
	Birthday: "birthday",
}

// Columns returns all standard column names
func (t UserTable) Columns() []string {
	return []string{t.ID, t.Email, t.Login, t.Name, t.Birthday}
}
