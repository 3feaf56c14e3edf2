package handler

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"steamviz/backend/internal/catalog"
	"steamviz/backend/internal/database"
	"steamviz/backend/internal/models"
)

// ErrorResponse represents a generic error response.
type ErrorResponse struct {
	Error string `json:"error" example:"An error message"`
}

// Chart row caps, matching the dashboard defaults.
const (
	barLimit      = 20
	parallelLimit = 200
	bubbleLimit   = 100
	sunburstTopN  = 10
	profileLimit  = 200
)

// Icicle depth controls and their allowed ranges.
const (
	defaultMaxTags  = 8
	minMaxTags      = 3
	maxMaxTags      = 30
	defaultMaxGames = 10
	minMaxGames     = 3
	maxMaxGames     = 50
)

// parseFilter reads the shared sidebar filter query parameters:
// min_downloads, year_from, year_to, developers, os, free_only.
func parseFilter(c *gin.Context) (catalog.Filter, error) {
	var f catalog.Filter

	if s := c.Query("min_downloads"); s != "" {
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil || v < 0 {
			return f, fmt.Errorf("invalid min_downloads %q", s)
		}
		f.MinDownloads = v
	}
	if s := c.Query("year_from"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 0 {
			return f, fmt.Errorf("invalid year_from %q", s)
		}
		f.YearFrom = v
	}
	if s := c.Query("year_to"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 0 {
			return f, fmt.Errorf("invalid year_to %q", s)
		}
		f.YearTo = v
	}
	if s := c.Query("free_only"); s != "" {
		v, err := strconv.ParseBool(s)
		if err != nil {
			return f, fmt.Errorf("invalid free_only %q", s)
		}
		f.FreeOnly = v
	}
	f.Developers = splitCommaSeparated(c.Query("developers"))
	f.OS = splitCommaSeparated(c.Query("os"))
	return f, nil
}

// parseBounded reads an integer query value clamped into [min, max].
func parseBounded(c *gin.Context, name string, def, min, max int) int {
	v, err := strconv.Atoi(c.DefaultQuery(name, strconv.Itoa(def)))
	if err != nil {
		return def
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// filteredGames fetches the rows matching the filter.
func filteredGames(f catalog.Filter) ([]models.Game, error) {
	var games []models.Game
	err := f.Scope(gamesQuery()).Find(&games).Error
	return games, err
}

// allGames fetches the unfiltered catalog.
func allGames() ([]models.Game, error) {
	var games []models.Game
	err := gamesQuery().Find(&games).Error
	return games, err
}

func gamesQuery() *gorm.DB {
	return database.DB.Model(&models.Game{})
}

// Helper to split comma-separated strings
func splitCommaSeparated(s string) []string {
	var result []string
	parts := strings.Split(s, ",")
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
