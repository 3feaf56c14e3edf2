package render

import (
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"

	"steamviz/backend/internal/analytics"
)

// IcicleSVG draws the age -> tag -> game hierarchy as a top-down icicle:
// each depth level is one band of rectangles, widths proportional to the
// node's download share. Leaf fill encodes the rating on a dark-to-light
// ramp; inner nodes stay grey.
func IcicleSVG(w io.Writer, root *analytics.TreeNode, width, height int) {
	canvas := svg.New(w)
	canvas.Start(width, height)
	defer canvas.End()

	depth := treeDepth(root) - 1 // bands below the synthetic root
	if depth == 0 || root.Value == 0 {
		canvas.Text(width/2, height/2, "no data", "text-anchor:middle;font-size:14px;fill:#666")
		return
	}
	bandHeight := height / depth

	lo, hi := colorBounds(root)
	x := 0.0
	for _, c := range root.Children {
		bw := float64(width) * c.Value / root.Value
		drawIcicleNode(canvas, c, x, bw, 0, bandHeight, lo, hi)
		x += bw
	}
}

func drawIcicleNode(canvas *svg.SVG, n *analytics.TreeNode, x, w float64, level, bandHeight int, lo, hi float64) {
	fill := "#9e9e9e"
	if len(n.Children) == 0 && n.Color != nil {
		fill = rampColor(*n.Color, lo, hi)
	}
	y := level * bandHeight
	canvas.Rect(int(x), y, int(math.Max(w, 1)), bandHeight,
		fmt.Sprintf("fill:%s;stroke:#ffffff;stroke-width:1", fill))
	if w >= 60 {
		canvas.Text(int(x)+4, y+bandHeight/2+4, n.Name, "font-size:11px;fill:#111")
	}

	if n.Value == 0 {
		return
	}
	cx := x
	for _, c := range n.Children {
		cw := w * c.Value / n.Value
		drawIcicleNode(canvas, c, cx, cw, level+1, bandHeight, lo, hi)
		cx += cw
	}
}

func treeDepth(n *analytics.TreeNode) int {
	max := 0
	for _, c := range n.Children {
		if d := treeDepth(c); d > max {
			max = d
		}
	}
	return max + 1
}

// colorBounds finds the min/max leaf color values for normalization.
func colorBounds(root *analytics.TreeNode) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, leaf := range root.Leaves() {
		if leaf.Color == nil {
			continue
		}
		lo = math.Min(lo, *leaf.Color)
		hi = math.Max(hi, *leaf.Color)
	}
	if lo > hi {
		return 0, 0
	}
	return lo, hi
}

// rampColor interpolates the heatmap palette across [lo, hi].
func rampColor(v, lo, hi float64) string {
	t := 0.5
	if hi > lo {
		t = (v - lo) / (hi - lo)
	}
	// 3-stop ramp: dark purple, teal, yellow.
	stops := [][3]int{{0x44, 0x01, 0x54}, {0x21, 0x91, 0x8c}, {0xfd, 0xe7, 0x25}}
	var a, b [3]int
	if t < 0.5 {
		a, b = stops[0], stops[1]
		t *= 2
	} else {
		a, b = stops[1], stops[2]
		t = (t - 0.5) * 2
	}
	r := a[0] + int(t*float64(b[0]-a[0]))
	g := a[1] + int(t*float64(b[1]-a[1]))
	bl := a[2] + int(t*float64(b[2]-a[2]))
	return fmt.Sprintf("#%02x%02x%02x", r, g, bl)
}
