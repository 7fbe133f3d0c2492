package schema

// LikeTable represents the 'likes' join table.
// The (film_id, user_id) pair is the primary key: the store's uniqueness
// constraint is the authoritative duplicate-like detector.
type LikeTable struct {
	Table  string
	FilmID string
	UserID string
}

// Like is the schema definition for likes
var Like = LikeTable{
	Table:  "likes",
	FilmID: "film_id",
	UserID: "user_id",
}
