// Package dataset generates the random, reproducible datasets explored by the
// data visualization demo and summarizes them.
package dataset

import (
	"math/rand"
	"sort"

	"github.com/samber/lo"
)

// Bounds of the point-count slider
const (
	MinPoints     = 10
	MaxPoints     = 1000
	DefaultPoints = 100

	// DefaultSeed makes every request for the same size produce the same data
	DefaultSeed int64 = 42
)

// Categories are assigned uniformly to points
var Categories = []string{"A", "B", "C"}

// Point is one row of a dataset
type Point struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Category string  `json:"category"`
}

// Dataset is an ordered list of points
type Dataset []Point

// ClampPoints forces n into [MinPoints, MaxPoints]
func ClampPoints(n int) int {
	return lo.Clamp(n, MinPoints, MaxPoints)
}

// Generate draws n points with x and y from a standard normal distribution
// and a uniformly chosen category. The same (n, seed) always yields the same
// dataset. n is clamped to the slider range.
func Generate(n int, seed int64) Dataset {
	n = ClampPoints(n)
	rng := rand.New(rand.NewSource(seed))

	// columns are drawn one after another: all x, then all y, then categories
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = rng.NormFloat64()
	}
	ys := make([]float64, n)
	for i := range ys {
		ys[i] = rng.NormFloat64()
	}

	data := make(Dataset, n)
	for i := range data {
		data[i] = Point{
			X:        xs[i],
			Y:        ys[i],
			Category: Categories[rng.Intn(len(Categories))],
		}
	}
	return data
}

// Xs returns the x column
func (d Dataset) Xs() []float64 {
	return lo.Map(d, func(p Point, _ int) float64 { return p.X })
}

// Ys returns the y column
func (d Dataset) Ys() []float64 {
	return lo.Map(d, func(p Point, _ int) float64 { return p.Y })
}

// SortedByX returns a copy ordered by x
func (d Dataset) SortedByX() Dataset {
	sorted := make(Dataset, len(d))
	copy(sorted, d)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].X < sorted[j].X })
	return sorted
}

// ByCategory splits the dataset per category, preserving order
func (d Dataset) ByCategory() map[string]Dataset {
	groups := lo.GroupBy(d, func(p Point) string { return p.Category })
	result := make(map[string]Dataset, len(groups))
	for category, points := range groups {
		result[category] = points
	}
	return result
}

// Counts returns the number of points per category; absent categories count zero
func (d Dataset) Counts() map[string]int {
	counts := lo.CountValuesBy(d, func(p Point) string { return p.Category })
	for _, category := range Categories {
		if _, ok := counts[category]; !ok {
			counts[category] = 0
		}
	}
	return counts
}
