package dataset

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary describes one numeric column
type Summary struct {
	Count int
	Mean  float64
	Std   float64
	Min   float64
	Q25   float64
	Q50   float64
	Q75   float64
	Max   float64
}

// Describe summarizes values. Std is the sample standard deviation and the
// quartiles interpolate linearly between order statistics. An empty input
// yields NaN for every statistic.
func Describe(values []float64) Summary {
	if len(values) == 0 {
		nan := math.NaN()
		return Summary{Mean: nan, Std: nan, Min: nan, Q25: nan, Q50: nan, Q75: nan, Max: nan}
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mean, std := stat.MeanStdDev(sorted, nil)
	return Summary{
		Count: len(sorted),
		Mean:  mean,
		Std:   std,
		Min:   floats.Min(sorted),
		Q25:   quantile(sorted, 0.25),
		Q50:   quantile(sorted, 0.5),
		Q75:   quantile(sorted, 0.75),
		Max:   floats.Max(sorted),
	}
}

// quantile interpolates linearly between the order statistics around (n-1)*p
func quantile(sorted []float64, p float64) float64 {
	pos := float64(len(sorted)-1) * p
	lower := math.Floor(pos)
	upper := math.Ceil(pos)
	if lower == upper {
		return sorted[int(lower)]
	}
	frac := pos - lower
	return sorted[int(lower)]*(1-frac) + sorted[int(upper)]*frac
}

// Describe summarizes the x and y columns
func (d Dataset) Describe() (x, y Summary) {
	return Describe(d.Xs()), Describe(d.Ys())
}

// Histogram bins x values; Counts holds one series per category
type Histogram struct {
	Edges  []float64
	Counts map[string][]int
}

// Centers returns the midpoint of each bin
func (h Histogram) Centers() []float64 {
	if len(h.Edges) < 2 {
		return nil
	}
	centers := make([]float64, len(h.Edges)-1)
	for i := range centers {
		centers[i] = (h.Edges[i] + h.Edges[i+1]) / 2
	}
	return centers
}

// Histogram splits the x range into equal-width bins and counts points per
// category in each. The last bin includes the maximum.
func (d Dataset) Histogram(bins int) Histogram {
	if bins < 1 {
		bins = 1
	}

	hist := Histogram{Counts: make(map[string][]int, len(Categories))}
	for _, category := range Categories {
		hist.Counts[category] = make([]int, bins)
	}
	if len(d) == 0 {
		return hist
	}

	xs := d.Xs()
	low, high := floats.Min(xs), floats.Max(xs)
	if low == high {
		low, high = low-0.5, high+0.5
	}

	hist.Edges = make([]float64, bins+1)
	floats.Span(hist.Edges, low, high)

	width := (high - low) / float64(bins)
	for _, p := range d {
		idx := int((p.X - low) / width)
		if idx >= bins {
			idx = bins - 1
		}
		if idx < 0 {
			idx = 0
		}
		if _, ok := hist.Counts[p.Category]; !ok {
			hist.Counts[p.Category] = make([]int, bins)
		}
		hist.Counts[p.Category][idx]++
	}
	return hist
}
