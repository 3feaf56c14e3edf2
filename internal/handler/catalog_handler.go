package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"steamviz/backend/internal/models"
)

// region --- DTOs ---

// GameResponse defines the structure for one catalog record.
type GameResponse struct {
	ID                 uint     `json:"id" example:"1"`
	Name               string   `json:"name" example:"Portal Storm"`
	Developer          string   `json:"developer" example:"Aperture Arts"`
	ReleaseYear        *int     `json:"release_year,omitempty" example:"2019"`
	EstimatedDownloads *int64   `json:"estimated_downloads,omitempty" example:"1500000"`
	ReviewCount        *int64   `json:"review_count,omitempty" example:"20931"`
	ReviewLikeRate     *float64 `json:"reviews_like_rate,omitempty" example:"93.5"`
	Rating             *float64 `json:"rating,omitempty" example:"4.4"`
	Price              *float64 `json:"price,omitempty" example:"19.99"`
	Difficulty         *float64 `json:"difficulty,omitempty" example:"3.2"`
	Length             *float64 `json:"length,omitempty" example:"24.5"`
	AgeRestriction     *int     `json:"age_restriction,omitempty" example:"13"`
	IsFree             bool     `json:"is_free" example:"false"`
	Tags               []string `json:"tags"`
	SupportedOS        []string `json:"supported_os"`
	SupportedLanguages []string `json:"supported_languages"`
}

func newGameResponse(g models.Game) GameResponse {
	return GameResponse{
		ID:                 g.ID,
		Name:               g.Name,
		Developer:          g.Developer,
		ReleaseYear:        g.ReleaseYear,
		EstimatedDownloads: g.EstimatedDownloads,
		ReviewCount:        g.ReviewCount,
		ReviewLikeRate:     g.ReviewLikeRate,
		Rating:             g.Rating,
		Price:              g.Price,
		Difficulty:         g.Difficulty,
		Length:             g.Length,
		AgeRestriction:     g.AgeRestriction,
		IsFree:             g.IsFree,
		Tags:               g.TagList(),
		SupportedOS:        g.OSList(),
		SupportedLanguages: g.LanguageList(),
	}
}

// PaginatedGameResponse defines the structure for a paginated list of games.
type PaginatedGameResponse struct {
	Data []GameResponse `json:"data"`
	Meta PaginationMeta `json:"meta"`
}

// endregion

// ListGames godoc
// @Summary      List catalog records
// @Description  Retrieves a paginated list of games matching the sidebar filters.
// @Tags         games
// @Produce      json
// @Param        min_downloads query int    false "Minimum estimated downloads"
// @Param        year_from     query int    false "Earliest release year (inclusive)"
// @Param        year_to       query int    false "Latest release year (inclusive)"
// @Param        developers    query string false "Comma-separated developer names"
// @Param        os            query string false "Comma-separated OS names"
// @Param        free_only     query bool   false "Only free games"
// @Param        page          query int    false "Page number" default(1)
// @Param        limit         query int    false "Items per page" default(20)
// @Success      200 {object} PaginatedGameResponse
// @Failure      400 {object} ErrorResponse
// @Router       /games [get]
func ListGames(c *gin.Context) {
	f, err := parseFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100 // Max limit
	}

	result, err := Paginate[models.Game](f.Scope(gamesQuery()), page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve games"})
		return
	}

	response := make([]GameResponse, 0, len(result.Data))
	for _, g := range result.Data {
		response = append(response, newGameResponse(g))
	}
	c.JSON(http.StatusOK, PaginatedGameResponse{Data: response, Meta: result.Meta})
}
