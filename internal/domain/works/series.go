package works

import (
	"regexp"
	"strings"
	"time"
)

type Series struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string  `gorm:"not null" json:"name"`
	Slug        string  `gorm:"not null;uniqueIndex:idx_series_slug" json:"slug"`
	Description *string `json:"description,omitempty"`

	Artworks []Artwork `gorm:"foreignKey:SeriesID" json:"artworks,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify turns a series name into its URL slug:
// "The Light Series" -> "the-light-series".
func Slugify(name string) string {
	slug := slugPattern.ReplaceAllString(strings.ToLower(name), "-")
	return strings.Trim(slug, "-")
}
