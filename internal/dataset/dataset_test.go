package dataset

import (
	"math"
	"sort"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateIsDeterministic(t *testing.T) {
	first := Generate(DefaultPoints, DefaultSeed)
	second := Generate(DefaultPoints, DefaultSeed)

	require.Len(t, first, 100)
	assert.Equal(t, first, second)

	other := Generate(DefaultPoints, DefaultSeed+1)
	assert.NotEqual(t, first, other)
}

func TestGenerateClampsPoints(t *testing.T) {
	assert.Len(t, Generate(0, DefaultSeed), MinPoints)
	assert.Len(t, Generate(-5, DefaultSeed), MinPoints)
	assert.Len(t, Generate(5000, DefaultSeed), MaxPoints)
	assert.Len(t, Generate(250, DefaultSeed), 250)
}

func TestGenerateCategories(t *testing.T) {
	data := Generate(MaxPoints, DefaultSeed)

	for _, p := range data {
		assert.Contains(t, Categories, p.Category)
	}

	counts := data.Counts()
	assert.Equal(t, MaxPoints, counts["A"]+counts["B"]+counts["C"])
	for _, category := range Categories {
		// uniform over three categories; a thousand draws stay well inside these bounds
		assert.InDelta(t, MaxPoints/3, counts[category], 80, category)
	}
}

func TestGenerateIsStandardNormal(t *testing.T) {
	x, y := Generate(MaxPoints, DefaultSeed).Describe()

	assert.InDelta(t, 0, x.Mean, 0.15)
	assert.InDelta(t, 1, x.Std, 0.15)
	assert.InDelta(t, 0, y.Mean, 0.15)
	assert.InDelta(t, 1, y.Std, 0.15)
}

func TestDescribe(t *testing.T) {
	summary := Describe([]float64{4, 1, 3, 2})

	assert.Equal(t, 4, summary.Count)
	assert.InDelta(t, 2.5, summary.Mean, 1e-12)
	assert.InDelta(t, math.Sqrt(5.0/3.0), summary.Std, 1e-12)
	assert.Equal(t, 1.0, summary.Min)
	assert.InDelta(t, 1.75, summary.Q25, 1e-12)
	assert.InDelta(t, 2.5, summary.Q50, 1e-12)
	assert.InDelta(t, 3.25, summary.Q75, 1e-12)
	assert.Equal(t, 4.0, summary.Max)

	empty := Describe(nil)
	assert.Zero(t, empty.Count)
	assert.True(t, math.IsNaN(empty.Mean))
}

func TestSortedByXDoesNotMutate(t *testing.T) {
	data := Generate(50, DefaultSeed)
	original := append(Dataset(nil), data...)

	sorted := data.SortedByX()
	assert.True(t, sort.SliceIsSorted(sorted, func(i, j int) bool { return sorted[i].X < sorted[j].X }))
	assert.Equal(t, original, data)
	assert.ElementsMatch(t, data, sorted)
}

func TestByCategory(t *testing.T) {
	data := Generate(120, DefaultSeed)
	groups := data.ByCategory()

	total := 0
	for category, points := range groups {
		total += len(points)
		assert.Equal(t, data.Counts()[category], len(points))
		for _, p := range points {
			assert.Equal(t, category, p.Category)
		}
	}
	assert.Equal(t, len(data), total)
}

func TestHistogramCountsEveryPoint(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50

	properties := gopter.NewProperties(parameters)
	properties.Property("bins add up to the dataset size", prop.ForAll(
		func(points int, bins int, seed int64) bool {
			data := Generate(points, seed)
			hist := data.Histogram(bins)

			if len(hist.Edges) != bins+1 || len(hist.Centers()) != bins {
				return false
			}

			total := 0
			for _, series := range hist.Counts {
				total += lo.Sum(series)
			}
			return total == len(data)
		},
		gen.IntRange(MinPoints, MaxPoints),
		gen.IntRange(1, 40),
		gen.Int64(),
	))

	properties.TestingRun(t)
}

func TestHistogramPerCategory(t *testing.T) {
	data := Dataset{
		{X: 0, Category: "A"},
		{X: 0.5, Category: "B"},
		{X: 1, Category: "A"},
	}
	hist := data.Histogram(2)

	assert.Equal(t, []float64{0, 0.5, 1}, hist.Edges)
	assert.Equal(t, []int{1, 1}, hist.Counts["A"])
	assert.Equal(t, []int{0, 1}, hist.Counts["B"])
	assert.Equal(t, []int{0, 0}, hist.Counts["C"])
	assert.Equal(t, []float64{0.25, 0.75}, hist.Centers())
}
