package models

import (
	"strings"
	"time"
)

// Game represents one record of the best-sellers catalog. The table is
// seeded once from the source CSV and never written to afterwards.
// Numeric fields are pointers so that unparseable CSV cells stay NULL
// instead of turning into zeros.
type Game struct {
	ID                 uint       `gorm:"primarykey" json:"id"`
	Name               string     `gorm:"size:255;not null;index" json:"name"`
	Developer          string     `gorm:"size:255;index" json:"developer"`
	ReleaseDate        *time.Time `json:"release_date,omitempty"`
	ReleaseYear        *int       `gorm:"index" json:"release_year,omitempty"`
	EstimatedDownloads *int64     `gorm:"index" json:"estimated_downloads,omitempty"`
	ReviewCount        *int64     `json:"review_count,omitempty"`
	ReviewLikeRate     *float64   `json:"reviews_like_rate,omitempty"`
	Rating             *float64   `json:"rating,omitempty"`
	Price              *float64   `json:"price,omitempty"`
	Difficulty         *float64   `json:"difficulty,omitempty"`
	Length             *float64   `json:"length,omitempty"`
	AgeRestriction     *int       `json:"age_restriction,omitempty"`
	Tags               string     `json:"user_defined_tags"`
	SupportedOS        string     `gorm:"column:supported_os" json:"supported_os"`
	SupportedLanguages string     `json:"supported_languages"`
	// IsFree treats a missing price as free, matching the catalog's
	// convention for unlisted prices.
	IsFree bool `json:"is_free"`
}

// TagList splits the free-form tag column into trimmed, non-empty tags.
func (g Game) TagList() []string {
	return splitList(g.Tags)
}

// PrimaryTag returns the first tag, or "" when the game has none.
func (g Game) PrimaryTag() string {
	tags := g.TagList()
	if len(tags) == 0 {
		return ""
	}
	return tags[0]
}

// OSList splits the supported_os column into trimmed, non-empty entries.
func (g Game) OSList() []string {
	return splitList(g.SupportedOS)
}

// LanguageList splits the supported_languages column.
func (g Game) LanguageList() []string {
	return splitList(g.SupportedLanguages)
}

// Downloads returns the estimated download count, or 0 when unknown.
func (g Game) Downloads() int64 {
	if g.EstimatedDownloads == nil {
		return 0
	}
	return *g.EstimatedDownloads
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
