package demos

import (
	"errors"
	"fmt"
	"html/template"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/gin-gonic/gin"

	"github.com/osa911/portfolio/internal/api/dto/common"
	"github.com/osa911/portfolio/internal/charts"
	"github.com/osa911/portfolio/internal/dataset"
	"github.com/osa911/portfolio/internal/sentiment"
	"github.com/osa911/portfolio/internal/utils"
)

// MaxTextLength caps the text scored by the sentiment demo, in characters
const MaxTextLength = 5000

var errTextRequired = errors.New("text query parameter is empty")

// Handlers serves the gallery pages and the chart documents they embed
type Handlers struct {
	analyzer *sentiment.Analyzer
	markdown map[string]template.HTML
	seed     int64
}

func NewHandlers(analyzer *sentiment.Analyzer, markdown map[string]template.HTML, seed int64) *Handlers {
	return &Handlers{analyzer: analyzer, markdown: markdown, seed: seed}
}

// StaticPage renders one of the markdown pages
func (h *Handlers) StaticPage(slug string) gin.HandlerFunc {
	p := page(slug)
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, "markdown.html", markdownData{
			layoutData: newLayout(p),
			Body:       h.markdown[slug],
		})
	}
}

type textAnalysisData struct {
	layoutData
	Text      string
	MaxLength int
	Truncated bool
	Result    *sentiment.Result
	ChartURL  string
}

// TextAnalysis renders the sentiment demo. Blank input shows the form only.
func (h *Handlers) TextAnalysis(c *gin.Context) {
	text, truncated := truncate(c.Query("text"), MaxTextLength)
	data := textAnalysisData{
		layoutData: newLayout(page("text-analysis")),
		Text:       text,
		MaxLength:  MaxTextLength,
		Truncated:  truncated,
	}

	if strings.TrimSpace(text) != "" {
		result := h.analyzer.Analyze(text)
		data.Result = &result
		data.ChartURL = "/charts/sentiment?" + url.Values{"text": {text}}.Encode()
	}

	c.HTML(http.StatusOK, "text_analysis.html", data)
}

type statRow struct {
	Name string
	X    string
	Y    string
}

type dataVisualizationData struct {
	layoutData
	Points    int
	MinPoints int
	MaxPoints int
	Chart     charts.Kind
	Kinds     []charts.Kind
	ChartURL  string
	Stats     []statRow
}

// DataVisualization renders the dataset demo with its statistics table
func (h *Handlers) DataVisualization(c *gin.Context) {
	points, kind := datasetParams(c)
	x, y := dataset.Generate(points, h.seed).Describe()

	c.HTML(http.StatusOK, "data_visualization.html", dataVisualizationData{
		layoutData: newLayout(page("data-visualization")),
		Points:     points,
		MinPoints:  dataset.MinPoints,
		MaxPoints:  dataset.MaxPoints,
		Chart:      kind,
		Kinds:      charts.Kinds,
		ChartURL: "/charts/dataset?" + url.Values{
			"points": {strconv.Itoa(points)},
			"chart":  {string(kind)},
		}.Encode(),
		Stats: statRows(x, y),
	})
}

// SentimentChart writes the two-bar sentiment chart for the text parameter
func (h *Handlers) SentimentChart(c *gin.Context) {
	text, _ := truncate(c.Query("text"), MaxTextLength)
	if strings.TrimSpace(text) == "" {
		utils.HandleAPIError(c, errTextRequired, http.StatusBadRequest, common.ErrCodeBadRequest, "Text is required")
		return
	}

	result := h.analyzer.Analyze(text)
	writeChart(c, charts.Sentiment(result.Polarity, result.Subjectivity))
}

// DatasetChart writes the chart of the generated dataset
func (h *Handlers) DatasetChart(c *gin.Context) {
	points, kind := datasetParams(c)
	chart, err := charts.Dataset(kind, dataset.Generate(points, h.seed))
	if err != nil {
		utils.HandleAPIError(c, err, http.StatusInternalServerError, common.ErrCodeInternalServer, "Failed to build chart")
		return
	}
	writeChart(c, chart)
}

// NotFound renders the sidebar with a short notice
func (h *Handlers) NotFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "not_found.html", layoutData{Title: "Page not found", Pages: Pages})
}

func writeChart(c *gin.Context, chart charts.Renderer) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := chart.Render(c.Writer); err != nil {
		utils.LogError(err, "Failed to render chart")
	}
}

// datasetParams reads the slider and chart type; bad values fall back to the defaults
func datasetParams(c *gin.Context) (int, charts.Kind) {
	points, err := strconv.Atoi(c.Query("points"))
	if err != nil {
		points = dataset.DefaultPoints
	}
	kind, _ := charts.ParseKind(c.Query("chart"))
	return dataset.ClampPoints(points), kind
}

func statRows(x, y dataset.Summary) []statRow {
	row := func(name string, xv, yv float64) statRow {
		return statRow{Name: name, X: formatStat(xv), Y: formatStat(yv)}
	}
	return []statRow{
		{Name: "count", X: strconv.Itoa(x.Count), Y: strconv.Itoa(y.Count)},
		row("mean", x.Mean, y.Mean),
		row("std", x.Std, y.Std),
		row("min", x.Min, y.Min),
		row("25%", x.Q25, y.Q25),
		row("50%", x.Q50, y.Q50),
		row("75%", x.Q75, y.Q75),
		row("max", x.Max, y.Max),
	}
}

func formatStat(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	return fmt.Sprintf("%.6f", v)
}

// truncate keeps at most limit runes of s
func truncate(s string, limit int) (string, bool) {
	if utf8.RuneCountInString(s) <= limit {
		return s, false
	}
	return string([]rune(s)[:limit]), true
}
