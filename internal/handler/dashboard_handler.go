package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"steamviz/backend/internal/analytics"
	"steamviz/backend/internal/render"
)

// Dashboard godoc
// @Summary      Render the dashboard page
// @Description  Serves the interactive chart page for the current filter query. The same filter parameters as the chart endpoints apply; changing them and reloading redraws every chart.
// @Tags         dashboard
// @Produce      html
// @Param        min_downloads query int    false "Minimum estimated downloads"
// @Param        year_from     query int    false "Earliest release year (inclusive)"
// @Param        year_to       query int    false "Latest release year (inclusive)"
// @Param        developers    query string false "Comma-separated developer names"
// @Param        os            query string false "Comma-separated OS names"
// @Param        free_only     query bool   false "Only free games"
// @Success      200 {string} string "HTML page"
// @Failure      400 {object} ErrorResponse
// @Router       / [get]
func Dashboard(c *gin.Context) {
	games, ok := chartRows(c)
	if !ok {
		return
	}
	// The 3D profile intentionally reads the full catalog.
	catalogRows, err := allGames()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve games"})
		return
	}

	d := render.Dashboard{
		Bar:      analytics.TopByDownloads(games, barLimit),
		Treemap:  analytics.TreemapTree(games),
		Parallel: analytics.ParallelRows(games, parallelLimit),
		Bubble:   analytics.BubblePoints(games, bubbleLimit),
		Sunburst: analytics.SunburstTree(games, sunburstTopN),
		HeatCols: analytics.CorrelationColumns,
		Heatmap:  analytics.CorrelationMatrix(games),
		Line:     analytics.DownloadsPerYear(games),
		Profile:  analytics.DesignProfile(catalogRows, profileLimit),
	}

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := render.RenderPage(c.Writer, d); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render dashboard"})
	}
}

// GetIcicleSVG godoc
// @Summary      Icicle chart as SVG
// @Description  Draws the age -> tag -> game hierarchy as a standalone SVG.
// @Tags         dashboard
// @Produce      image/svg+xml
// @Param        max_tags  query int false "Max tags kept" default(8) minimum(3) maximum(30)
// @Param        max_games query int false "Max games per tag" default(10) minimum(3) maximum(50)
// @Success      200 {string} string "SVG document"
// @Failure      400 {object} ErrorResponse
// @Router       /charts/icicle.svg [get]
func GetIcicleSVG(c *gin.Context) {
	games, ok := chartRows(c)
	if !ok {
		return
	}
	maxTags := parseBounded(c, "max_tags", defaultMaxTags, minMaxTags, maxMaxTags)
	maxGames := parseBounded(c, "max_games", defaultMaxGames, minMaxGames, maxMaxGames)
	root := analytics.IcicleTree(games, maxTags, maxGames)

	c.Header("Content-Type", "image/svg+xml")
	c.Status(http.StatusOK)
	render.IcicleSVG(c.Writer, root, 1200, 480)
}

// ExportBarPNG godoc
// @Summary      Bar chart as PNG
// @Description  Server-side render of the downloads ranking for download.
// @Tags         export
// @Produce      image/png
// @Success      200 {string} string "PNG image"
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse "No rows match the filter"
// @Router       /export/bar.png [get]
func ExportBarPNG(c *gin.Context) {
	games, ok := chartRows(c)
	if !ok {
		return
	}
	png, err := render.BarPNG(analytics.TopByDownloads(games, barLimit))
	if err == render.ErrNoData {
		c.JSON(http.StatusNotFound, gin.H{"error": "No rows match the filter"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render chart"})
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}

// ExportLinePNG godoc
// @Summary      Line chart as PNG
// @Description  Server-side render of downloads per year for download.
// @Tags         export
// @Produce      image/png
// @Success      200 {string} string "PNG image"
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse "No rows match the filter"
// @Router       /export/line.png [get]
func ExportLinePNG(c *gin.Context) {
	games, ok := chartRows(c)
	if !ok {
		return
	}
	png, err := render.LinePNG(analytics.DownloadsPerYear(games))
	if err == render.ErrNoData {
		c.JSON(http.StatusNotFound, gin.H{"error": "No rows match the filter"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render chart"})
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}
