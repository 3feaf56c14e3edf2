package handler

import (
	"net/http"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"

	"steamviz/backend/internal/models"
)

// region --- DTOs ---

// DeveloperOption is one entry of the developer multi-select, ordered by
// how many games the developer has in the catalog.
type DeveloperOption struct {
	Name  string `json:"name" example:"Aperture Arts"`
	Count int64  `json:"count" example:"7"`
}

// FilterMetaResponse defines the structure for the sidebar widget bounds.
type FilterMetaResponse struct {
	Developers   []DeveloperOption `json:"developers"`
	OSOptions    []string          `json:"os_options"`
	YearMin      int               `json:"year_min" example:"1998"`
	YearMax      int               `json:"year_max" example:"2024"`
	MaxDownloads int64             `json:"max_downloads" example:"250000000"`
}

// endregion

// GetFilterMeta godoc
// @Summary      Get filter widget metadata
// @Description  Returns developer options by frequency, distinct OS values, release-year bounds and the download ceiling.
// @Tags         meta
// @Produce      json
// @Success      200 {object} FilterMetaResponse
// @Failure      500 {object} ErrorResponse
// @Router       /meta/filters [get]
func GetFilterMeta(c *gin.Context) {
	var developers []DeveloperOption
	err := gamesQuery().
		Select("developer AS name, COUNT(*) AS count").
		Where("developer <> ''").
		Group("developer").
		Order("count DESC, developer ASC").
		Scan(&developers).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load filter metadata"})
		return
	}

	var bounds struct {
		YearMin      *int
		YearMax      *int
		MaxDownloads *int64
	}
	err = gamesQuery().
		Select("MIN(release_year) AS year_min, MAX(release_year) AS year_max, MAX(estimated_downloads) AS max_downloads").
		Scan(&bounds).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load filter metadata"})
		return
	}

	var rows []models.Game
	if err := gamesQuery().Select("supported_os").Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load filter metadata"})
		return
	}
	osSet := make(map[string]bool)
	for _, g := range rows {
		// Options are space-stripped so "Mac OS" and "MacOS" collapse.
		for _, os := range strings.Split(strings.ReplaceAll(g.SupportedOS, " ", ""), ",") {
			if os != "" {
				osSet[os] = true
			}
		}
	}
	osOptions := make([]string, 0, len(osSet))
	for os := range osSet {
		osOptions = append(osOptions, os)
	}
	sort.Strings(osOptions)

	meta := FilterMetaResponse{
		Developers: developers,
		OSOptions:  osOptions,
	}
	if bounds.YearMin != nil {
		meta.YearMin = *bounds.YearMin
	}
	if bounds.YearMax != nil {
		meta.YearMax = *bounds.YearMax
	}
	if bounds.MaxDownloads != nil {
		meta.MaxDownloads = *bounds.MaxDownloads
	}
	c.JSON(http.StatusOK, meta)
}
