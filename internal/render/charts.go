package render

import (
	"fmt"
	"io"
	"math"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"steamviz/backend/internal/analytics"
)

const (
	chartWidth  = "1200px"
	chartHeight = "550px"
)

func initOpts() charts.GlobalOpts {
	return charts.WithInitializationOpts(opts.Initialization{
		Width:  chartWidth,
		Height: chartHeight,
	})
}

// BarChart renders the top-downloads ranking with axis tooltips and a
// zoom slider.
func BarChart(items []analytics.BarItem) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		initOpts(),
		charts.WithTitleOpts(opts.Title{Title: "Games by Estimated Downloads"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "slider"}),
		charts.WithXAxisOpts(opts.XAxis{AxisLabel: &opts.AxisLabel{Show: opts.Bool(true), Rotate: 45}}),
	)
	names := make([]string, 0, len(items))
	data := make([]opts.BarData, 0, len(items))
	for _, it := range items {
		names = append(names, it.Name)
		data = append(data, opts.BarData{Value: it.Downloads})
	}
	bar.SetXAxis(names).AddSeries("Downloads", data)
	return bar
}

// LineChart renders total downloads per release year.
func LineChart(points []analytics.YearPoint) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		initOpts(),
		charts.WithTitleOpts(opts.Title{Title: "Total Downloads per Year"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
	)
	years := make([]string, 0, len(points))
	data := make([]opts.LineData, 0, len(points))
	for _, p := range points {
		years = append(years, fmt.Sprintf("%d", p.Year))
		data = append(data, opts.LineData{Value: p.Downloads})
	}
	line.SetXAxis(years).AddSeries("Downloads", data)
	line.SetSeriesOptions(charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(true)}))
	return line
}

func treeMapNodes(nodes []*analytics.TreeNode) []opts.TreeMapNode {
	out := make([]opts.TreeMapNode, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, opts.TreeMapNode{
			Name:     n.Name,
			Value:    int(n.Value),
			Children: treeMapNodes(n.Children),
		})
	}
	return out
}

// TreemapChart renders the developer -> Free/Paid -> game hierarchy.
func TreemapChart(root *analytics.TreeNode) *charts.TreeMap {
	tm := charts.NewTreeMap()
	tm.SetGlobalOptions(
		initOpts(),
		charts.WithTitleOpts(opts.Title{Title: "Downloads Hierarchy"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	tm.AddSeries("Downloads", treeMapNodes(root.Children))
	return tm
}

// AddSeries takes the top level by value; only Children nests pointers.
func sunburstNodes(nodes []*analytics.TreeNode) []opts.SunBurstData {
	out := make([]opts.SunBurstData, 0, len(nodes))
	for _, n := range nodes {
		d := opts.SunBurstData{Name: n.Name, Children: sunburstChildren(n.Children)}
		if len(n.Children) == 0 {
			d.Value = n.Value
		}
		out = append(out, d)
	}
	return out
}

func sunburstChildren(nodes []*analytics.TreeNode) []*opts.SunBurstData {
	out := make([]*opts.SunBurstData, 0, len(nodes))
	for _, n := range nodes {
		d := &opts.SunBurstData{Name: n.Name, Children: sunburstChildren(n.Children)}
		if len(n.Children) == 0 {
			d.Value = n.Value
		}
		out = append(out, d)
	}
	return out
}

// SunburstChart renders the tag -> developer -> game hierarchy.
func SunburstChart(root *analytics.TreeNode) *charts.Sunburst {
	sb := charts.NewSunburst()
	sb.SetGlobalOptions(
		initOpts(),
		charts.WithTitleOpts(opts.Title{Title: "Sunburst by Genre, Developer, and Game"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	sb.AddSeries("Downloads", sunburstNodes(root.Children))
	return sb
}

var parallelAxes = []opts.ParallelAxis{
	{Dim: 0, Name: "Downloads"},
	{Dim: 1, Name: "Rating"},
	{Dim: 2, Name: "Price"},
	{Dim: 3, Name: "Length"},
	{Dim: 4, Name: "Difficulty"},
}

// ParallelChart renders one line per game across the five numeric axes.
func ParallelChart(rows []analytics.ParallelRow) *charts.Parallel {
	p := charts.NewParallel()
	p.SetGlobalOptions(
		initOpts(),
		charts.WithTitleOpts(opts.Title{Title: "Parallel Coordinates: Numeric Features"}),
		charts.WithParallelAxisList(parallelAxes),
	)
	data := make([]opts.ParallelData, 0, len(rows))
	for _, r := range rows {
		data = append(data, opts.ParallelData{
			Name:  r.Name,
			Value: []interface{}{r.Downloads, r.Rating, r.Price, r.Length, r.Difficulty},
		})
	}
	p.AddSeries("Games", data)
	return p
}

// bubbleSize maps a download count onto a sane marker radius.
func bubbleSize(downloads, max int64) int {
	if max <= 0 {
		return 5
	}
	size := int(60 * float64(downloads) / float64(max))
	if size < 5 {
		size = 5
	}
	return size
}

// BubbleChart renders price vs rating with one series per developer and
// marker size proportional to downloads.
func BubbleChart(points []analytics.BubblePoint) *charts.Scatter {
	sc := charts.NewScatter()
	sc.SetGlobalOptions(
		initOpts(),
		charts.WithTitleOpts(opts.Title{Title: "Price vs Rating"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Type: "value", Name: "Price"}),
		charts.WithYAxisOpts(opts.YAxis{Type: "value", Name: "Rating"}),
	)
	var max int64
	for _, p := range points {
		if p.Downloads > max {
			max = p.Downloads
		}
	}
	byDeveloper := make(map[string][]opts.ScatterData)
	var order []string
	for _, p := range points {
		if _, seen := byDeveloper[p.Developer]; !seen {
			order = append(order, p.Developer)
		}
		byDeveloper[p.Developer] = append(byDeveloper[p.Developer], opts.ScatterData{
			Name:       p.Name,
			Value:      []interface{}{p.Price, p.Rating},
			SymbolSize: bubbleSize(p.Downloads, max),
		})
	}
	for _, dev := range order {
		sc.AddSeries(dev, byDeveloper[dev])
	}
	return sc
}

// viridis endpoints, also used by the icicle SVG.
var heatmapColors = []string{"#440154", "#21918c", "#fde725"}

// HeatmapChart renders the correlation matrix with a -1..1 visual map.
func HeatmapChart(cols []string, matrix [][]float64) *charts.HeatMap {
	hm := charts.NewHeatMap()
	hm.SetGlobalOptions(
		initOpts(),
		charts.WithTitleOpts(opts.Title{Title: "Correlation Matrix"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Type: "category", Data: cols}),
		charts.WithYAxisOpts(opts.YAxis{Type: "category", Data: cols}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Calculable: opts.Bool(true),
			Min:        -1,
			Max:        1,
			InRange:    &opts.VisualMapInRange{Color: heatmapColors},
		}),
	)
	var data []opts.HeatMapData
	for i := range matrix {
		for j, v := range matrix[i] {
			// Cells display to 4 decimals; keep the value numeric so the
			// visual map can color it.
			data = append(data, opts.HeatMapData{
				Value: []interface{}{i, j, math.Round(v*1e4) / 1e4},
			})
		}
	}
	hm.AddSeries("Correlation", data)
	return hm
}

// Scatter3DChart renders difficulty x length x rating, one series per
// developer.
func Scatter3DChart(points []analytics.ProfilePoint) *charts.Scatter3D {
	sc := charts.NewScatter3D()
	sc.SetGlobalOptions(
		initOpts(),
		charts.WithTitleOpts(opts.Title{Title: "3D: Difficulty vs Length vs Rating"}),
		charts.WithXAxis3DOpts(opts.XAxis3D{Name: "Difficulty", Show: opts.Bool(true)}),
		charts.WithYAxis3DOpts(opts.YAxis3D{Name: "Length", Show: opts.Bool(true)}),
		charts.WithZAxis3DOpts(opts.ZAxis3D{Name: "Rating", Show: opts.Bool(true)}),
	)
	byDeveloper := make(map[string][]opts.Chart3DData)
	var order []string
	for _, p := range points {
		if _, seen := byDeveloper[p.Developer]; !seen {
			order = append(order, p.Developer)
		}
		byDeveloper[p.Developer] = append(byDeveloper[p.Developer], opts.Chart3DData{
			Name:  p.Name,
			Value: []interface{}{p.Difficulty, p.Length, p.Rating},
		})
	}
	for _, dev := range order {
		sc.AddSeries(dev, byDeveloper[dev])
	}
	return sc
}

// Dashboard bundles every chart of the page in render order.
type Dashboard struct {
	Bar      []analytics.BarItem
	Treemap  *analytics.TreeNode
	Parallel []analytics.ParallelRow
	Bubble   []analytics.BubblePoint
	Sunburst *analytics.TreeNode
	HeatCols []string
	Heatmap  [][]float64
	Line     []analytics.YearPoint
	Profile  []analytics.ProfilePoint
}

// RenderPage writes the complete dashboard page to w.
func RenderPage(w io.Writer, d Dashboard) error {
	page := components.NewPage()
	page.PageTitle = "Best Selling Games Dashboard"
	page.SetLayout(components.PageFlexLayout)
	page.AddCharts(
		BarChart(d.Bar),
		TreemapChart(d.Treemap),
		ParallelChart(d.Parallel),
		BubbleChart(d.Bubble),
		SunburstChart(d.Sunburst),
		HeatmapChart(d.HeatCols, d.Heatmap),
		LineChart(d.Line),
		Scatter3DChart(d.Profile),
	)
	return page.Render(w)
}
