package render

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"steamviz/backend/internal/analytics"
	"steamviz/backend/internal/models"
)

func i64(v int64) *int64 { return &v }

func dashboardFixture() Dashboard {
	games := []models.Game{
		{Name: "Alpha", Developer: "DevA", EstimatedDownloads: i64(100), Tags: "Action", ReleaseYear: intp(2020),
			Rating: f64(4.2), Price: f64(9.99), Length: f64(20), Difficulty: f64(3), ReviewLikeRate: f64(92)},
		{Name: "Beta", Developer: "DevB", EstimatedDownloads: i64(50), Tags: "Puzzle", ReleaseYear: intp(2018),
			Rating: f64(3.9), Price: f64(0), Length: f64(10), Difficulty: f64(2), ReviewLikeRate: f64(85), IsFree: true},
	}
	return Dashboard{
		Bar:      analytics.TopByDownloads(games, 20),
		Treemap:  analytics.TreemapTree(games),
		Parallel: analytics.ParallelRows(games, 200),
		Bubble:   analytics.BubblePoints(games, 100),
		Sunburst: analytics.SunburstTree(games, 10),
		HeatCols: analytics.CorrelationColumns,
		Heatmap:  analytics.CorrelationMatrix(games),
		Line:     analytics.DownloadsPerYear(games),
		Profile:  analytics.DesignProfile(games, 200),
	}
}

func intp(v int) *int { return &v }

func TestRenderPage(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderPage(&buf, dashboardFixture()))
	out := buf.String()

	assert.Contains(t, out, "echarts")
	for _, title := range []string{
		"Games by Estimated Downloads",
		"Downloads Hierarchy",
		"Parallel Coordinates: Numeric Features",
		"Price vs Rating",
		"Sunburst by Genre, Developer, and Game",
		"Correlation Matrix",
		"Total Downloads per Year",
		"3D: Difficulty vs Length vs Rating",
	} {
		assert.Contains(t, out, title)
	}
	assert.Contains(t, out, "Alpha")
}

func TestRenderPage_EmptyFilterResult(t *testing.T) {
	d := Dashboard{
		Treemap:  analytics.TreemapTree(nil),
		Sunburst: analytics.SunburstTree(nil, 10),
		HeatCols: analytics.CorrelationColumns,
	}
	var buf bytes.Buffer
	require.NoError(t, RenderPage(&buf, d))
	assert.Contains(t, buf.String(), "echarts")
}

func TestSunburstChart(t *testing.T) {
	games := []models.Game{
		{Name: "Alpha", Developer: "DevA", EstimatedDownloads: i64(300), Tags: "Action, RPG", Rating: f64(4.2)},
		{Name: "Beta", Developer: "DevB", EstimatedDownloads: i64(100), Tags: "Puzzle", Rating: f64(3.8)},
	}
	root := analytics.SunburstTree(games, 10)

	nodes := sunburstNodes(root.Children)
	require.Len(t, nodes, 3)
	for _, n := range nodes {
		// Inner nodes carry no value of their own; leaves do.
		assert.Zero(t, n.Value)
		require.Len(t, n.Children, 1)
		require.Len(t, n.Children[0].Children, 1)
		assert.NotZero(t, n.Children[0].Children[0].Value)
	}

	var buf bytes.Buffer
	require.NoError(t, SunburstChart(root).Render(&buf))
	out := buf.String()
	for _, name := range []string{"Action", "RPG", "Puzzle", "DevA", "Alpha", "Beta"} {
		assert.Contains(t, out, name)
	}
}

func TestBubbleSize(t *testing.T) {
	assert.Equal(t, 60, bubbleSize(100, 100))
	assert.Equal(t, 30, bubbleSize(50, 100))
	// Tiny and degenerate inputs clamp to a visible marker.
	assert.Equal(t, 5, bubbleSize(1, 100))
	assert.Equal(t, 5, bubbleSize(0, 0))
}
