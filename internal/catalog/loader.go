package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"steamviz/backend/internal/models"
)

// Columns the loader requires in the CSV header. reviews_count and
// supported_languages are optional and default to empty when absent.
var requiredColumns = []string{
	"game_name",
	"developer",
	"release_date",
	"estimated_downloads",
	"reviews_like_rate",
	"rating",
	"price",
	"difficulty",
	"length",
	"age_restriction",
	"user_defined_tags",
	"supported_os",
}

var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"Jan 2, 2006",
	"2 Jan, 2006",
	"01/02/2006",
}

// Load reads the catalog CSV, coerces field types and returns the
// deduplicated record set. Duplicate (name, developer) pairs keep their
// first occurrence. Rows with the wrong field count are rejected as a
// malformed file rather than skipped silently.
func Load(path string) ([]models.Game, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	games, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	return games, nil
}

// Parse decodes catalog records from r. Split out from Load so tests can
// feed in-memory CSV.
func Parse(r io.Reader) ([]models.Game, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.TrimSpace(name)] = i
	}
	var missing []string
	for _, name := range requiredColumns {
		if _, ok := col[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing columns: %s", strings.Join(missing, ", "))
	}

	field := func(row []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var games []models.Game
	seen := make(map[string]bool)
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}

		name := field(row, "game_name")
		developer := field(row, "developer")
		key := name + "\x00" + developer
		if seen[key] {
			continue
		}
		seen[key] = true

		g := models.Game{
			Name:               name,
			Developer:          developer,
			EstimatedDownloads: parseInt(field(row, "estimated_downloads")),
			ReviewCount:        parseInt(field(row, "reviews_count")),
			ReviewLikeRate:     parseFloat(field(row, "reviews_like_rate")),
			Rating:             parseFloat(field(row, "rating")),
			Price:              parseFloat(field(row, "price")),
			Difficulty:         parseFloat(field(row, "difficulty")),
			Length:             parseFloat(field(row, "length")),
			Tags:               field(row, "user_defined_tags"),
			SupportedOS:        field(row, "supported_os"),
			SupportedLanguages: field(row, "supported_languages"),
		}
		if age := parseFloat(field(row, "age_restriction")); age != nil {
			v := int(*age)
			g.AgeRestriction = &v
		}
		if date := parseDate(field(row, "release_date")); date != nil {
			g.ReleaseDate = date
			year := date.Year()
			g.ReleaseYear = &year
		}
		// Unlisted price counts as free.
		g.IsFree = g.Price == nil || *g.Price == 0

		games = append(games, g)
	}
	return games, nil
}

func parseFloat(s string) *float64 {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
	if err != nil {
		return nil
	}
	return &v
}

func parseInt(s string) *int64 {
	f := parseFloat(s)
	if f == nil {
		return nil
	}
	v := int64(*f)
	return &v
}

func parseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}
