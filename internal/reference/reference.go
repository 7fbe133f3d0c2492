/*
Package reference manages the "Master Data" of Filmorate.

It handles the lifecycle and retrieval of the small lookup entities shared
across the film catalogue, ensuring data consistency for discovery and
filtering features.

# Core Responsibility

  - Genres: named category tags a film may carry zero or more of.
  - MPA Ratings: content-rating classifications (G, PG, PG-13, ...), exactly
    one per film.

This package provides the "Common Language" used by the film catalogue to
classify content.
*/
package reference

// # Genre Domain

// Genre represents a named category tag applied to films.
type Genre struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// # Rating Domain

// Rating represents an MPA content-rating classification.
type Rating struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// # Field Identifiers

// Global field names for validation in the reference domain.
const (
	FieldName = "name"
)

// maxNameLen bounds genre and rating names, matching the column width.
const maxNameLen = 50
