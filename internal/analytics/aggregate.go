package analytics

import (
	"sort"

	"steamviz/backend/internal/models"
)

// BarItem is one bar of the downloads ranking.
type BarItem struct {
	Name      string `json:"name"`
	Developer string `json:"developer"`
	Downloads int64  `json:"downloads"`
}

// YearPoint is one point of the downloads-per-year series.
type YearPoint struct {
	Year      int   `json:"year"`
	Downloads int64 `json:"downloads"`
}

// ParallelRow is one line of the parallel-coordinates chart. All five
// dimensions are guaranteed present.
type ParallelRow struct {
	Name       string  `json:"name"`
	Developer  string  `json:"developer"`
	Downloads  float64 `json:"downloads"`
	Rating     float64 `json:"rating"`
	Price      float64 `json:"price"`
	Length     float64 `json:"length"`
	Difficulty float64 `json:"difficulty"`
}

// BubblePoint is one marker of the price-vs-rating bubble chart.
type BubblePoint struct {
	Name      string  `json:"name"`
	Developer string  `json:"developer"`
	Price     float64 `json:"price"`
	Rating    float64 `json:"rating"`
	Downloads int64   `json:"downloads"`
}

// ProfilePoint is one marker of the difficulty/length/rating 3D scatter.
type ProfilePoint struct {
	Name       string  `json:"name"`
	Developer  string  `json:"developer"`
	Difficulty float64 `json:"difficulty"`
	Length     float64 `json:"length"`
	Rating     float64 `json:"rating"`
}

// downloadsKey sorts unknown download counts below zero-download rows.
func downloadsKey(g models.Game) int64 {
	if g.EstimatedDownloads == nil {
		return -1
	}
	return *g.EstimatedDownloads
}

func sortedByDownloads(games []models.Game) []models.Game {
	sorted := make([]models.Game, len(games))
	copy(sorted, games)
	sort.SliceStable(sorted, func(i, j int) bool {
		return downloadsKey(sorted[i]) > downloadsKey(sorted[j])
	})
	return sorted
}

// TopByDownloads returns the n most-downloaded games, descending.
func TopByDownloads(games []models.Game, n int) []BarItem {
	sorted := sortedByDownloads(games)
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	items := make([]BarItem, 0, len(sorted))
	for _, g := range sorted {
		items = append(items, BarItem{Name: g.Name, Developer: g.Developer, Downloads: g.Downloads()})
	}
	return items
}

// DownloadsPerYear sums estimated downloads per release year, ascending.
// Rows with an unknown release year are skipped.
func DownloadsPerYear(games []models.Game) []YearPoint {
	totals := make(map[int]int64)
	for _, g := range games {
		if g.ReleaseYear == nil {
			continue
		}
		totals[*g.ReleaseYear] += g.Downloads()
	}
	points := make([]YearPoint, 0, len(totals))
	for year, dl := range totals {
		points = append(points, YearPoint{Year: year, Downloads: dl})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Year < points[j].Year })
	return points
}

// ParallelRows drops rows missing any of the five numeric dimensions,
// then keeps the limit most-downloaded ones.
func ParallelRows(games []models.Game, limit int) []ParallelRow {
	var complete []models.Game
	for _, g := range games {
		if g.EstimatedDownloads != nil && g.Rating != nil && g.Price != nil && g.Length != nil && g.Difficulty != nil {
			complete = append(complete, g)
		}
	}
	complete = sortedByDownloads(complete)
	if len(complete) > limit {
		complete = complete[:limit]
	}
	rows := make([]ParallelRow, 0, len(complete))
	for _, g := range complete {
		rows = append(rows, ParallelRow{
			Name:       g.Name,
			Developer:  g.Developer,
			Downloads:  float64(*g.EstimatedDownloads),
			Rating:     *g.Rating,
			Price:      *g.Price,
			Length:     *g.Length,
			Difficulty: *g.Difficulty,
		})
	}
	return rows
}

// BubblePoints keeps the limit most-downloaded games first, then drops
// the ones missing a price, rating or download count.
func BubblePoints(games []models.Game, limit int) []BubblePoint {
	sorted := sortedByDownloads(games)
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	var points []BubblePoint
	for _, g := range sorted {
		if g.Price == nil || g.Rating == nil || g.EstimatedDownloads == nil {
			continue
		}
		points = append(points, BubblePoint{
			Name:      g.Name,
			Developer: g.Developer,
			Price:     *g.Price,
			Rating:    *g.Rating,
			Downloads: *g.EstimatedDownloads,
		})
	}
	return points
}

// DesignProfile drops rows missing difficulty, length or rating, then
// keeps the limit best-rated ones.
func DesignProfile(games []models.Game, limit int) []ProfilePoint {
	var complete []models.Game
	for _, g := range games {
		if g.Difficulty != nil && g.Length != nil && g.Rating != nil {
			complete = append(complete, g)
		}
	}
	sort.SliceStable(complete, func(i, j int) bool {
		return *complete[i].Rating > *complete[j].Rating
	})
	if len(complete) > limit {
		complete = complete[:limit]
	}
	points := make([]ProfilePoint, 0, len(complete))
	for _, g := range complete {
		points = append(points, ProfilePoint{
			Name:       g.Name,
			Developer:  g.Developer,
			Difficulty: *g.Difficulty,
			Length:     *g.Length,
			Rating:     *g.Rating,
		})
	}
	return points
}
