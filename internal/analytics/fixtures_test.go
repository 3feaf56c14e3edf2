package analytics

import "steamviz/backend/internal/models"

func i64(v int64) *int64     { return &v }
func f64(v float64) *float64 { return &v }
func iptr(v int) *int        { return &v }

// full returns a game with every numeric field populated.
func full(name, dev string, downloads int64, rating, price, length, difficulty, likeRate float64) models.Game {
	return models.Game{
		Name:               name,
		Developer:          dev,
		EstimatedDownloads: i64(downloads),
		Rating:             f64(rating),
		Price:              f64(price),
		Length:             f64(length),
		Difficulty:         f64(difficulty),
		ReviewLikeRate:     f64(likeRate),
	}
}
