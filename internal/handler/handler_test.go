package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"steamviz/backend/internal/database"
	"steamviz/backend/internal/models"
)

func i64(v int64) *int64     { return &v }
func f64(v float64) *float64 { return &v }
func iptr(v int) *int        { return &v }

var handlerDBSeq int

func seedTestDB(t *testing.T, games []models.Game) {
	t.Helper()
	handlerDBSeq++
	dsn := fmt.Sprintf("file:handlertest%d?mode=memory&cache=shared", handlerDBSeq)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&models.Game{}))
	if len(games) > 0 {
		require.NoError(t, db.Create(&games).Error)
	}
	prev := database.DB
	database.DB = db
	t.Cleanup(func() { database.DB = prev })
}

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/", Dashboard)
	router.GET("/charts/icicle.svg", GetIcicleSVG)
	apiV1 := router.Group("/api/v1")
	{
		apiV1.GET("/games", ListGames)
		apiV1.GET("/meta/filters", GetFilterMeta)
		apiV1.GET("/charts/bar", GetBarChart)
		apiV1.GET("/charts/treemap", GetTreemapChart)
		apiV1.GET("/charts/parallel", GetParallelChart)
		apiV1.GET("/charts/bubble", GetBubbleChart)
		apiV1.GET("/charts/sunburst", GetSunburstChart)
		apiV1.GET("/charts/heatmap", GetHeatmapChart)
		apiV1.GET("/charts/line", GetLineChart)
		apiV1.GET("/charts/icicle", GetIcicleChart)
		apiV1.GET("/charts/scatter3d", GetScatter3DChart)
		apiV1.GET("/export/bar.png", ExportBarPNG)
		apiV1.GET("/export/line.png", ExportLinePNG)
	}
	return router
}

func testGames() []models.Game {
	return []models.Game{
		{Name: "Alpha", Developer: "DevA", EstimatedDownloads: i64(1000), ReleaseYear: iptr(2015),
			Price: f64(0), IsFree: true, SupportedOS: "windows, linux", Tags: "Action, Indie",
			Rating: f64(4.5), Length: f64(30), Difficulty: f64(3), ReviewLikeRate: f64(95)},
		{Name: "Beta", Developer: "DevB", EstimatedDownloads: i64(5000), ReleaseYear: iptr(2018),
			Price: f64(9.99), SupportedOS: "windows", Tags: "Puzzle",
			Rating: f64(4.0), Length: f64(12), Difficulty: f64(2), ReviewLikeRate: f64(88)},
		{Name: "Gamma", Developer: "DevA", EstimatedDownloads: i64(200), ReleaseYear: iptr(2020),
			Price: f64(4.99), SupportedOS: "mac os", Tags: "Action",
			Rating: f64(3.5), Length: f64(8), Difficulty: f64(4), ReviewLikeRate: f64(70)},
	}
}

func doGet(t *testing.T, router *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req, err := http.NewRequest(http.MethodGet, path, nil)
	require.NoError(t, err)
	router.ServeHTTP(w, req)
	return w
}

func TestGetFilterMeta(t *testing.T) {
	seedTestDB(t, testGames())
	w := doGet(t, testRouter(), "/api/v1/meta/filters")
	require.Equal(t, http.StatusOK, w.Code)

	var meta FilterMetaResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &meta))

	require.Len(t, meta.Developers, 2)
	assert.Equal(t, "DevA", meta.Developers[0].Name) // 2 games beats 1
	assert.Equal(t, int64(2), meta.Developers[0].Count)
	assert.Equal(t, []string{"linux", "macos", "windows"}, meta.OSOptions)
	assert.Equal(t, 2015, meta.YearMin)
	assert.Equal(t, 2020, meta.YearMax)
	assert.Equal(t, int64(5000), meta.MaxDownloads)
}

func TestListGames_FilteredSubset(t *testing.T) {
	seedTestDB(t, testGames())
	router := testRouter()

	w := doGet(t, router, "/api/v1/games?developers=DevA")
	require.Equal(t, http.StatusOK, w.Code)

	var resp PaginatedGameResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(2), resp.Meta.TotalItems)
	for _, g := range resp.Data {
		assert.Equal(t, "DevA", g.Developer)
	}

	// Unfiltered listing is the superset.
	w = doGet(t, router, "/api/v1/games")
	var all PaginatedGameResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &all))
	assert.GreaterOrEqual(t, all.Meta.TotalItems, resp.Meta.TotalItems)
}

func TestListGames_Pagination(t *testing.T) {
	seedTestDB(t, testGames())
	w := doGet(t, testRouter(), "/api/v1/games?page=2&limit=2")
	require.Equal(t, http.StatusOK, w.Code)

	var resp PaginatedGameResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Meta.CurrentPage)
	assert.Equal(t, 2, resp.Meta.TotalPages)
	assert.Len(t, resp.Data, 1)
}

func TestGetBarChart(t *testing.T) {
	seedTestDB(t, testGames())
	w := doGet(t, testRouter(), "/api/v1/charts/bar")
	require.Equal(t, http.StatusOK, w.Code)

	var resp BarChartResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Items, 3)
	assert.Equal(t, "Beta", resp.Items[0].Name)
	assert.Equal(t, int64(5000), resp.Items[0].Downloads)
}

func TestGetBarChart_BadFilter(t *testing.T) {
	seedTestDB(t, testGames())
	w := doGet(t, testRouter(), "/api/v1/charts/bar?min_downloads=banana")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "min_downloads")
}

func TestGetHeatmapChart(t *testing.T) {
	seedTestDB(t, testGames())
	w := doGet(t, testRouter(), "/api/v1/charts/heatmap")
	require.Equal(t, http.StatusOK, w.Code)

	var resp HeatmapResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Matrix, 5)
	assert.Equal(t, float64(1), resp.Matrix[0][0])
}

func TestGetIcicleChart_ClampsBounds(t *testing.T) {
	seedTestDB(t, testGames())
	w := doGet(t, testRouter(), "/api/v1/charts/icicle?max_tags=1000&max_games=nonsense")
	require.Equal(t, http.StatusOK, w.Code)

	var resp TreeChartResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Root)
	assert.NotEmpty(t, resp.Root.Children)
}

func TestGetScatter3DChart_IgnoresFilter(t *testing.T) {
	seedTestDB(t, testGames())
	// A filter that matches nothing must not empty the design profile.
	w := doGet(t, testRouter(), "/api/v1/charts/scatter3d?min_downloads=999999999")
	require.Equal(t, http.StatusOK, w.Code)

	var resp Scatter3DResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Points, 3)
}

func TestUnknownChartRoute(t *testing.T) {
	seedTestDB(t, testGames())
	w := doGet(t, testRouter(), "/api/v1/charts/pie")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDashboard(t *testing.T) {
	seedTestDB(t, testGames())
	w := doGet(t, testRouter(), "/?developers=DevA")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "echarts")
	assert.Contains(t, w.Body.String(), "Games by Estimated Downloads")
}

func TestGetIcicleSVG(t *testing.T) {
	seedTestDB(t, testGames())
	w := doGet(t, testRouter(), "/charts/icicle.svg")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "image/svg+xml")
	assert.Contains(t, w.Body.String(), "<svg")
}

func TestExportBarPNG(t *testing.T) {
	seedTestDB(t, testGames())
	w := doGet(t, testRouter(), "/api/v1/export/bar.png")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	body := w.Body.Bytes()
	require.Greater(t, len(body), 4)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, body[:4])
}

func TestExportLinePNG_NoRows(t *testing.T) {
	seedTestDB(t, nil)
	w := doGet(t, testRouter(), "/api/v1/export/line.png")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
