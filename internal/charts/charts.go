// Package charts builds the interactive charts of the demo gallery. Each chart
// renders as a standalone HTML document.
package charts

import (
	"fmt"
	"io"
	"math"
	"strings"

	echarts "github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/samber/lo"

	"github.com/osa911/portfolio/internal/dataset"
)

// Height of every chart
const Height = "400px"

// Bar colors of the sentiment chart
const (
	PolarityColor     = "#3b82f6"
	SubjectivityColor = "#8b5cf6"
)

// HistogramBins is the number of x bins in the histogram view
const HistogramBins = 20

var categoryColors = map[string]string{
	"A": "#636efa",
	"B": "#ef553b",
	"C": "#00cc96",
}

// Renderer writes a chart as an HTML document
type Renderer interface {
	Render(w io.Writer) error
}

// Kind is a chart type offered by the data visualization demo
type Kind string

const (
	Scatter   Kind = "Scatter"
	Line      Kind = "Line"
	Bar       Kind = "Bar"
	Histogram Kind = "Histogram"
)

// Kinds lists the chart types in menu order
var Kinds = []Kind{Scatter, Line, Bar, Histogram}

// ParseKind accepts a chart type name case-insensitively. Unknown names fall
// back to Scatter and report false.
func ParseKind(name string) (Kind, bool) {
	kind, ok := lo.Find(Kinds, func(k Kind) bool {
		return strings.EqualFold(string(k), strings.TrimSpace(name))
	})
	if !ok {
		return Scatter, false
	}
	return kind, true
}

func globalOptions(title string) []echarts.GlobalOpts {
	return []echarts.GlobalOpts{
		echarts.WithInitializationOpts(opts.Initialization{
			PageTitle: title,
			ChartID:   chartID(title),
			Width:     "100%",
			Height:    Height,
		}),
		echarts.WithTitleOpts(opts.Title{Title: title}),
		echarts.WithTooltipOpts(opts.Tooltip{Trigger: "item"}),
	}
}

// Sentiment draws polarity and subjectivity as two bars on a [-1,1] axis
func Sentiment(polarity, subjectivity float64) *echarts.Bar {
	bar := echarts.NewBar()
	bar.SetGlobalOptions(append(globalOptions("Sentiment Analysis Results"),
		echarts.WithYAxisOpts(opts.YAxis{Min: -1, Max: 1}),
	)...)

	bar.SetXAxis([]string{"Polarity", "Subjectivity"}).
		AddSeries("Score", []opts.BarData{
			{Name: "Polarity", Value: round(polarity), ItemStyle: &opts.ItemStyle{Color: PolarityColor}},
			{Name: "Subjectivity", Value: round(subjectivity), ItemStyle: &opts.ItemStyle{Color: SubjectivityColor}},
		})
	return bar
}

// Dataset draws data with the given chart kind
func Dataset(kind Kind, data dataset.Dataset) (Renderer, error) {
	switch kind {
	case Scatter:
		return scatterChart(data), nil
	case Line:
		return lineChart(data), nil
	case Bar:
		return countChart(data), nil
	case Histogram:
		return histogramChart(data), nil
	default:
		return nil, fmt.Errorf("unknown chart type %q", kind)
	}
}

func scatterChart(data dataset.Dataset) *echarts.Scatter {
	scatter := echarts.NewScatter()
	scatter.SetGlobalOptions(append(globalOptions("Scatter Plot"),
		echarts.WithXAxisOpts(opts.XAxis{Type: "value", Name: "x"}),
		echarts.WithYAxisOpts(opts.YAxis{Type: "value", Name: "y"}),
	)...)

	groups := data.ByCategory()
	for _, category := range dataset.Categories {
		points := lo.Map(groups[category], func(p dataset.Point, _ int) opts.ScatterData {
			return opts.ScatterData{Value: []interface{}{round(p.X), round(p.Y)}}
		})
		scatter.AddSeries(category, points, categoryStyle(category))
	}
	return scatter
}

func lineChart(data dataset.Dataset) *echarts.Line {
	line := echarts.NewLine()
	line.SetGlobalOptions(append(globalOptions("Line Chart"),
		echarts.WithXAxisOpts(opts.XAxis{Type: "value", Name: "x"}),
		echarts.WithYAxisOpts(opts.YAxis{Type: "value", Name: "y"}),
	)...)

	groups := data.SortedByX().ByCategory()
	for _, category := range dataset.Categories {
		points := lo.Map(groups[category], func(p dataset.Point, _ int) opts.LineData {
			return opts.LineData{Value: []interface{}{round(p.X), round(p.Y)}}
		})
		line.AddSeries(category, points, categoryStyle(category))
	}
	return line
}

func countChart(data dataset.Dataset) *echarts.Bar {
	bar := echarts.NewBar()
	bar.SetGlobalOptions(append(globalOptions("Bar Chart"),
		echarts.WithYAxisOpts(opts.YAxis{Name: "count"}),
	)...)

	counts := data.Counts()
	bars := lo.Map(dataset.Categories, func(category string, _ int) opts.BarData {
		return opts.BarData{Name: category, Value: counts[category]}
	})
	bar.SetXAxis(dataset.Categories).AddSeries("count", bars)
	return bar
}

func histogramChart(data dataset.Dataset) *echarts.Bar {
	bar := echarts.NewBar()
	bar.SetGlobalOptions(append(globalOptions("Histogram"),
		echarts.WithXAxisOpts(opts.XAxis{Name: "x"}),
		echarts.WithYAxisOpts(opts.YAxis{Name: "count"}),
	)...)

	hist := data.Histogram(HistogramBins)
	labels := lo.Map(hist.Centers(), func(center float64, _ int) string {
		return fmt.Sprintf("%.2f", center)
	})
	bar.SetXAxis(labels)

	for _, category := range dataset.Categories {
		bins := lo.Map(hist.Counts[category], func(count int, _ int) opts.BarData {
			return opts.BarData{Value: count}
		})
		bar.AddSeries(category, bins,
			echarts.WithBarChartOpts(opts.BarChart{Stack: "x"}),
			categoryStyle(category),
		)
	}
	return bar
}

func categoryStyle(category string) echarts.SeriesOpts {
	return echarts.WithItemStyleOpts(opts.ItemStyle{Color: categoryColors[category]})
}

// chartID derives a stable element id from the title so the same data always
// renders the same document
func chartID(title string) string {
	return strings.ReplaceAll(strings.ToLower(title), " ", "_")
}

// round keeps the embedded chart data compact
func round(v float64) float64 {
	return math.Round(v*1e4) / 1e4
}
