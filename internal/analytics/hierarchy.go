package analytics

import (
	"sort"
	"strconv"

	"steamviz/backend/internal/models"
)

// TreeNode is a node of a hierarchical aggregate (treemap, sunburst,
// icicle). Value on an inner node is the sum of its leaves. Color holds
// the chart's color dimension on leaves (like-rate or rating) and stays
// nil on inner nodes.
type TreeNode struct {
	Name     string      `json:"name"`
	Value    float64     `json:"value"`
	Color    *float64    `json:"color,omitempty"`
	Children []*TreeNode `json:"children,omitempty"`
}

func (n *TreeNode) child(name string) *TreeNode {
	for _, c := range n.Children {
		if c.Name == name {
			return c
		}
	}
	c := &TreeNode{Name: name}
	n.Children = append(n.Children, c)
	return c
}

// rollup recomputes inner node values bottom-up.
func (n *TreeNode) rollup() float64 {
	if len(n.Children) == 0 {
		return n.Value
	}
	var sum float64
	for _, c := range n.Children {
		sum += c.rollup()
	}
	n.Value = sum
	return sum
}

// Leaves returns the leaf nodes in depth-first order.
func (n *TreeNode) Leaves() []*TreeNode {
	if len(n.Children) == 0 {
		return []*TreeNode{n}
	}
	var leaves []*TreeNode
	for _, c := range n.Children {
		leaves = append(leaves, c.Leaves()...)
	}
	return leaves
}

// FreeLabel names the price tier used as the treemap's middle level.
func FreeLabel(g models.Game) string {
	if g.IsFree {
		return "Free"
	}
	return "Paid"
}

// TreemapTree builds the developer -> Free/Paid -> game hierarchy,
// sized by downloads and colored by review like-rate. Games without a
// download estimate carry no area and are skipped.
func TreemapTree(games []models.Game) *TreeNode {
	root := &TreeNode{Name: "All Games"}
	for _, g := range games {
		if g.EstimatedDownloads == nil {
			continue
		}
		leaf := root.child(g.Developer).child(FreeLabel(g)).child(g.Name)
		leaf.Value = float64(*g.EstimatedDownloads)
		leaf.Color = g.ReviewLikeRate
	}
	root.rollup()
	return root
}

// SunburstTree builds the tag -> developer -> game hierarchy over the
// topN most-downloaded games. A game's downloads are split evenly across
// its tags so its combined area stays its download count; untagged games
// are dropped.
func SunburstTree(games []models.Game, topN int) *TreeNode {
	sorted := sortedByDownloads(games)
	if len(sorted) > topN {
		sorted = sorted[:topN]
	}
	root := &TreeNode{Name: "All Tags"}
	for _, g := range sorted {
		tags := g.TagList()
		if len(tags) == 0 {
			continue
		}
		weight := float64(g.Downloads()) / float64(len(tags))
		for _, tag := range tags {
			leaf := root.child(tag).child(g.Developer).child(g.Name)
			leaf.Value = weight
			leaf.Color = g.Rating
		}
	}
	root.rollup()
	return root
}

// AgeLabel maps an age restriction to its display bucket. Unknown ages
// count as unrestricted; unmapped values fall back to the raw number.
func AgeLabel(age *int) string {
	v := 0
	if age != nil {
		v = *age
	}
	switch v {
	case 0:
		return "All Ages"
	case 13:
		return "Teen 13+"
	case 17:
		return "Mature 17+"
	}
	return strconv.Itoa(v)
}

// IcicleTree builds the age bucket -> primary tag -> game hierarchy.
// Only the maxTags primary tags with the highest summed downloads are
// kept, and within each tag only the maxGames most-downloaded games.
func IcicleTree(games []models.Game, maxTags, maxGames int) *TreeNode {
	primary := func(g models.Game) string {
		if tag := g.PrimaryTag(); tag != "" {
			return tag
		}
		return "Unknown"
	}

	tagTotals := make(map[string]int64)
	for _, g := range games {
		tagTotals[primary(g)] += g.Downloads()
	}
	tags := make([]string, 0, len(tagTotals))
	for tag := range tagTotals {
		tags = append(tags, tag)
	}
	sort.Slice(tags, func(i, j int) bool {
		if tagTotals[tags[i]] != tagTotals[tags[j]] {
			return tagTotals[tags[i]] > tagTotals[tags[j]]
		}
		return tags[i] < tags[j]
	})
	if len(tags) > maxTags {
		tags = tags[:maxTags]
	}
	keep := make(map[string]bool, len(tags))
	for _, tag := range tags {
		keep[tag] = true
	}

	perTag := make(map[string][]models.Game)
	for _, g := range sortedByDownloads(games) {
		tag := primary(g)
		if !keep[tag] || len(perTag[tag]) >= maxGames {
			continue
		}
		perTag[tag] = append(perTag[tag], g)
	}

	root := &TreeNode{Name: "All Ages Buckets"}
	for _, tag := range tags {
		for _, g := range perTag[tag] {
			leaf := root.child(AgeLabel(g.AgeRestriction)).child(tag).child(g.Name)
			leaf.Value = float64(g.Downloads())
			leaf.Color = g.Rating
		}
	}
	root.rollup()
	return root
}
