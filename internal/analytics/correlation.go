package analytics

import (
	"math"

	"steamviz/backend/internal/models"
)

// CorrelationColumns are the numeric columns of the correlation heatmap,
// in display order.
var CorrelationColumns = []string{
	"estimated_downloads",
	"rating",
	"price",
	"length",
	"reviews_like_rate",
}

func correlationValues(g models.Game) ([]float64, bool) {
	ptrs := []*float64{g.Rating, g.Price, g.Length, g.ReviewLikeRate}
	if g.EstimatedDownloads == nil {
		return nil, false
	}
	vals := []float64{float64(*g.EstimatedDownloads)}
	for _, p := range ptrs {
		if p == nil {
			return nil, false
		}
		vals = append(vals, *p)
	}
	return vals, true
}

// CorrelationMatrix computes the Pearson correlation matrix over the
// five numeric columns, dropping rows with any missing value. Returns
// nil when fewer than two complete rows remain. Undefined correlations
// (zero variance) come back as 0; the diagonal is always 1.
func CorrelationMatrix(games []models.Game) [][]float64 {
	var rows [][]float64
	for _, g := range games {
		if vals, ok := correlationValues(g); ok {
			rows = append(rows, vals)
		}
	}
	if len(rows) < 2 {
		return nil
	}

	n := len(CorrelationColumns)
	cols := make([][]float64, n)
	for i := range cols {
		cols[i] = make([]float64, len(rows))
		for r, row := range rows {
			cols[i][r] = row[i]
		}
	}

	m := make([][]float64, n)
	for i := range m {
		m[i] = make([]float64, n)
		for j := range m[i] {
			if i == j {
				m[i][j] = 1
			} else {
				m[i][j] = pearson(cols[i], cols[j])
			}
		}
	}
	return m
}

func pearson(xs, ys []float64) float64 {
	n := float64(len(xs))
	var sumX, sumY float64
	for i := range xs {
		sumX += xs[i]
		sumY += ys[i]
	}
	meanX, meanY := sumX/n, sumY/n

	var cov, varX, varY float64
	for i := range xs {
		dx, dy := xs[i]-meanX, ys[i]-meanY
		cov += dx * dy
		varX += dx * dx
		varY += dy * dy
	}
	denom := math.Sqrt(varX * varY)
	if denom == 0 {
		return 0
	}
	return cov / denom
}
