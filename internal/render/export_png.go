package render

import (
	"bytes"
	"errors"
	"fmt"

	chart "github.com/wcharczuk/go-chart/v2"

	"steamviz/backend/internal/analytics"
)

// ErrNoData is returned when a PNG export has nothing to draw.
var ErrNoData = errors.New("no rows to chart")

func truncateLabel(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}

// BarPNG renders the downloads ranking as a static PNG for download.
func BarPNG(items []analytics.BarItem) ([]byte, error) {
	if len(items) == 0 {
		return nil, ErrNoData
	}
	bars := make([]chart.Value, 0, len(items))
	for _, it := range items {
		bars = append(bars, chart.Value{
			Label: truncateLabel(it.Name, 14),
			Value: float64(it.Downloads),
		})
	}
	graph := chart.BarChart{
		Title:    "Games by Estimated Downloads",
		Width:    1280,
		Height:   720,
		BarWidth: 40,
		XAxis:    chart.Style{TextRotationDegrees: 45},
		Bars:     bars,
	}
	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render bar chart: %w", err)
	}
	return buf.Bytes(), nil
}

// LinePNG renders downloads-per-year as a static PNG for download.
func LinePNG(points []analytics.YearPoint) ([]byte, error) {
	if len(points) == 0 {
		return nil, ErrNoData
	}
	xs := make([]float64, 0, len(points))
	ys := make([]float64, 0, len(points))
	for _, p := range points {
		xs = append(xs, float64(p.Year))
		ys = append(ys, float64(p.Downloads))
	}
	// go-chart needs at least two X values.
	if len(xs) == 1 {
		xs = append(xs, xs[0]+1)
		ys = append(ys, ys[0])
	}
	graph := chart.Chart{
		Title:  "Total Downloads per Year",
		Width:  1280,
		Height: 720,
		XAxis: chart.XAxis{
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("%d", int(f))
				}
				return ""
			},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{Name: "Downloads", XValues: xs, YValues: ys},
		},
	}
	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render line chart: %w", err)
	}
	return buf.Bytes(), nil
}
