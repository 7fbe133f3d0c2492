// Package film implements the film catalogue: CRUD over films, likes, and
// the popularity ranking derived from them.
package film

import (
	"sort"
	"time"

	"github.com/taibuivan/filmorate/internal/reference"
	"github.com/taibuivan/filmorate/pkg/date"
)

// Film represents a single catalogue entry.
//
// Once created a film always carries exactly one MPA rating reference, and
// Genres / LikedUserIDs are never nil (empty slices, not absent).
type Film struct {
	ID           int64             `json:"id"`
	Name         string            `json:"name"`
	Description  *string           `json:"description"`
	ReleaseDate  date.Date         `json:"release_date"`
	Duration     int               `json:"duration"` // minutes
	Mpa          reference.Rating  `json:"mpa"`
	Genres       []reference.Genre `json:"genres"`
	LikedUserIDs []int64           `json:"liked_user_ids"`
}

// MinReleaseDate is the earliest legal release date: the day of the first
// public film screening (Salon Indien du Grand Café, Paris).
var MinReleaseDate = date.New(1895, time.December, 28)

// DefaultPopularLimit is the fallback size of the popularity ranking when
// the caller-provided count cannot be parsed.
const DefaultPopularLimit = 10

// Normalize deduplicates the genre set by id, orders it ascending, and
// guarantees the collection invariants (non-nil genre and like sets).
//
// Incoming payloads may repeat a genre reference; the set semantics are
// enforced here, before the record reaches the store.
func (f *Film) Normalize() {
	seen := make(map[int64]bool, len(f.Genres))
	genres := make([]reference.Genre, 0, len(f.Genres))

	for _, genre := range f.Genres {
		if seen[genre.ID] {
			continue
		}
		seen[genre.ID] = true
		genres = append(genres, genre)
	}

	sort.Slice(genres, func(i, j int) bool { return genres[i].ID < genres[j].ID })
	f.Genres = genres

	if f.LikedUserIDs == nil {
		f.LikedUserIDs = make([]int64, 0)
	}
}

// Global field names for validation
const (
	FieldName        = "name"
	FieldDescription = "description"
	FieldReleaseDate = "release_date"
	FieldDuration    = "duration"
	FieldMpa         = "mpa"
)
