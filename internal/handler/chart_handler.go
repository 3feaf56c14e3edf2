package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"steamviz/backend/internal/analytics"
	"steamviz/backend/internal/models"
)

// region --- DTOs ---

// BarChartResponse defines the structure for the downloads ranking.
type BarChartResponse struct {
	Items []analytics.BarItem `json:"items"`
}

// TreeChartResponse defines the structure for a hierarchical chart
// (treemap, sunburst, icicle).
type TreeChartResponse struct {
	Root *analytics.TreeNode `json:"root"`
}

// ParallelChartResponse defines the structure for parallel coordinates.
type ParallelChartResponse struct {
	Dimensions []string                `json:"dimensions"`
	Rows       []analytics.ParallelRow `json:"rows"`
}

// BubbleChartResponse defines the structure for the price-vs-rating
// bubble chart.
type BubbleChartResponse struct {
	Points []analytics.BubblePoint `json:"points"`
}

// HeatmapResponse defines the structure for the correlation matrix.
type HeatmapResponse struct {
	Columns []string    `json:"columns"`
	Matrix  [][]float64 `json:"matrix"`
}

// LineChartResponse defines the structure for downloads per year.
type LineChartResponse struct {
	Points []analytics.YearPoint `json:"points"`
}

// Scatter3DResponse defines the structure for the 3D design profile.
type Scatter3DResponse struct {
	Points []analytics.ProfilePoint `json:"points"`
}

// endregion

var parallelDimensions = []string{"estimated_downloads", "rating", "price", "length", "difficulty"}

// GetBarChart godoc
// @Summary      Bar chart data
// @Description  Top 20 filtered games by estimated downloads, descending.
// @Tags         charts
// @Produce      json
// @Param        min_downloads query int    false "Minimum estimated downloads"
// @Param        year_from     query int    false "Earliest release year (inclusive)"
// @Param        year_to       query int    false "Latest release year (inclusive)"
// @Param        developers    query string false "Comma-separated developer names"
// @Param        os            query string false "Comma-separated OS names"
// @Param        free_only     query bool   false "Only free games"
// @Success      200 {object} BarChartResponse
// @Failure      400 {object} ErrorResponse
// @Router       /charts/bar [get]
func GetBarChart(c *gin.Context) {
	games, ok := chartRows(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, BarChartResponse{Items: analytics.TopByDownloads(games, barLimit)})
}

// GetTreemapChart godoc
// @Summary      Treemap data
// @Description  Developer -> Free/Paid -> game hierarchy sized by downloads, colored by review like-rate.
// @Tags         charts
// @Produce      json
// @Success      200 {object} TreeChartResponse
// @Failure      400 {object} ErrorResponse
// @Router       /charts/treemap [get]
func GetTreemapChart(c *gin.Context) {
	games, ok := chartRows(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, TreeChartResponse{Root: analytics.TreemapTree(games)})
}

// GetParallelChart godoc
// @Summary      Parallel coordinates data
// @Description  Top 200 filtered games with all five numeric dimensions present.
// @Tags         charts
// @Produce      json
// @Success      200 {object} ParallelChartResponse
// @Failure      400 {object} ErrorResponse
// @Router       /charts/parallel [get]
func GetParallelChart(c *gin.Context) {
	games, ok := chartRows(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, ParallelChartResponse{
		Dimensions: parallelDimensions,
		Rows:       analytics.ParallelRows(games, parallelLimit),
	})
}

// GetBubbleChart godoc
// @Summary      Bubble chart data
// @Description  Price vs rating for the top 100 filtered games, bubble size by downloads.
// @Tags         charts
// @Produce      json
// @Success      200 {object} BubbleChartResponse
// @Failure      400 {object} ErrorResponse
// @Router       /charts/bubble [get]
func GetBubbleChart(c *gin.Context) {
	games, ok := chartRows(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, BubbleChartResponse{Points: analytics.BubblePoints(games, bubbleLimit)})
}

// GetSunburstChart godoc
// @Summary      Sunburst data
// @Description  Tag -> developer -> game hierarchy over the top 10 filtered games, downloads split across tags.
// @Tags         charts
// @Produce      json
// @Success      200 {object} TreeChartResponse
// @Failure      400 {object} ErrorResponse
// @Router       /charts/sunburst [get]
func GetSunburstChart(c *gin.Context) {
	games, ok := chartRows(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, TreeChartResponse{Root: analytics.SunburstTree(games, sunburstTopN)})
}

// GetHeatmapChart godoc
// @Summary      Correlation heatmap data
// @Description  Pearson correlation matrix over the five numeric columns of the filtered rows.
// @Tags         charts
// @Produce      json
// @Success      200 {object} HeatmapResponse
// @Failure      400 {object} ErrorResponse
// @Router       /charts/heatmap [get]
func GetHeatmapChart(c *gin.Context) {
	games, ok := chartRows(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, HeatmapResponse{
		Columns: analytics.CorrelationColumns,
		Matrix:  analytics.CorrelationMatrix(games),
	})
}

// GetLineChart godoc
// @Summary      Line chart data
// @Description  Total downloads per release year for the filtered rows.
// @Tags         charts
// @Produce      json
// @Success      200 {object} LineChartResponse
// @Failure      400 {object} ErrorResponse
// @Router       /charts/line [get]
func GetLineChart(c *gin.Context) {
	games, ok := chartRows(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, LineChartResponse{Points: analytics.DownloadsPerYear(games)})
}

// GetIcicleChart godoc
// @Summary      Icicle data
// @Description  Age bucket -> primary tag -> game hierarchy, limited to the top tags and games per tag.
// @Tags         charts
// @Produce      json
// @Param        max_tags  query int false "Max tags kept" default(8) minimum(3) maximum(30)
// @Param        max_games query int false "Max games per tag" default(10) minimum(3) maximum(50)
// @Success      200 {object} TreeChartResponse
// @Failure      400 {object} ErrorResponse
// @Router       /charts/icicle [get]
func GetIcicleChart(c *gin.Context) {
	games, ok := chartRows(c)
	if !ok {
		return
	}
	maxTags := parseBounded(c, "max_tags", defaultMaxTags, minMaxTags, maxMaxTags)
	maxGames := parseBounded(c, "max_games", defaultMaxGames, minMaxGames, maxMaxGames)
	c.JSON(http.StatusOK, TreeChartResponse{Root: analytics.IcicleTree(games, maxTags, maxGames)})
}

// GetScatter3DChart godoc
// @Summary      3D design profile data
// @Description  Difficulty, length and rating for the 200 best-rated games. Reads the full catalog, not the filtered rows.
// @Tags         charts
// @Produce      json
// @Success      200 {object} Scatter3DResponse
// @Failure      500 {object} ErrorResponse
// @Router       /charts/scatter3d [get]
func GetScatter3DChart(c *gin.Context) {
	games, err := allGames()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve games"})
		return
	}
	c.JSON(http.StatusOK, Scatter3DResponse{Points: analytics.DesignProfile(games, profileLimit)})
}

// chartRows parses the filter query and fetches the matching rows,
// writing the error response itself when something is off.
func chartRows(c *gin.Context) ([]models.Game, bool) {
	f, err := parseFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}
	games, err := filteredGames(f)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve games"})
		return nil, false
	}
	return games, true
}
