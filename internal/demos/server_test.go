package demos

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osa911/portfolio/internal/config"
	"github.com/osa911/portfolio/internal/dataset"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestServer(t *testing.T) http.Handler {
	t.Helper()
	srv, err := NewServer(&config.DemosConfig{
		Environment: "test",
		Port:        "0",
		Seed:        dataset.DefaultSeed,
	}, nil)
	require.NoError(t, err)
	return srv.Handler()
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestSidebarOrder(t *testing.T) {
	w := get(t, newTestServer(t), "/")
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	last := -1
	for _, p := range Pages {
		idx := strings.Index(body, ">"+p.Title+"</a>")
		require.GreaterOrEqual(t, idx, 0, p.Title)
		assert.Greater(t, idx, last, "%s out of order", p.Title)
		last = idx
	}
	assert.Contains(t, body, "Welcome to my ML demos!")
}

func TestStaticPages(t *testing.T) {
	h := newTestServer(t)

	tests := []struct {
		path     string
		contains string
	}{
		{"/overview", "<h2>Available Demos</h2>"},
		{"/how-it-works", "<h2>Architecture</h2>"},
		{"/limitations", `<input disabled="" type="checkbox"`},
		{"/limitations/", `<a href="/contact">Contact me</a>`},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := get(t, h, tt.path)
			require.Equal(t, http.StatusOK, w.Code)
			assert.Contains(t, w.Body.String(), tt.contains)
			assert.Equal(t, "SAMEORIGIN", w.Header().Get("X-Frame-Options"))
		})
	}
}

func TestTextAnalysisEmptyInputRendersNoChart(t *testing.T) {
	h := newTestServer(t)

	for _, target := range []string{"/text-analysis", "/text-analysis?text=", "/text-analysis?text=%20%20%0A"} {
		w := get(t, h, target)
		require.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, "<textarea")
		assert.NotContains(t, body, "<iframe")
		assert.NotContains(t, body, "sentiment detected")
	}
}

func TestTextAnalysis(t *testing.T) {
	w := get(t, newTestServer(t), "/text-analysis?text=Very+good")
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.Contains(t, body, "Polarity")
	assert.Contains(t, body, "Range: -1 (negative) to 1 (positive)")
	assert.Contains(t, body, "Range: 0 (objective) to 1 (subjective)")
	assert.Contains(t, body, "0.91")
	assert.Contains(t, body, "Positive sentiment detected")
	assert.Contains(t, body, `src="/charts/sentiment?text=Very`)
}

func TestTextAnalysisEscapesInput(t *testing.T) {
	w := get(t, newTestServer(t), "/text-analysis?text=%3Cscript%3Ealert(1)%3C%2Fscript%3E")
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "<script>alert(1)</script>")
}

func TestTextAnalysisTruncatesLongInput(t *testing.T) {
	long := strings.Repeat("good ", MaxTextLength)
	w := get(t, newTestServer(t), "/text-analysis?text="+strings.ReplaceAll(long, " ", "+"))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Only the first 5000 characters were analyzed.")
}

func TestDataVisualization(t *testing.T) {
	h := newTestServer(t)

	w := get(t, h, "/data-visualization")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `value="100"`)
	assert.Contains(t, body, `<option value="Scatter" selected>`)
	assert.Contains(t, body, `src="/charts/dataset?chart=Scatter&amp;points=100"`)
	for _, stat := range []string{"count", "mean", "std", "min", "25%", "50%", "75%", "max"} {
		assert.Contains(t, body, "<th>"+stat+"</th>")
	}

	w = get(t, h, "/data-visualization?points=5000&chart=histogram")
	require.Equal(t, http.StatusOK, w.Code)
	body = w.Body.String()
	assert.Contains(t, body, `value="1000"`)
	assert.Contains(t, body, `<option value="Histogram" selected>`)
	assert.Contains(t, body, "<td>1000</td>")
}

func TestSentimentChart(t *testing.T) {
	h := newTestServer(t)

	w := get(t, h, "/charts/sentiment?text=good")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), "Sentiment Analysis Results")

	w = get(t, h, "/charts/sentiment?text=++")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Success bool `json:"success"`
		Error   struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "BAD_REQUEST", resp.Error.Code)
}

func TestDatasetChartIsDeterministic(t *testing.T) {
	h := newTestServer(t)

	read := func() string {
		w := get(t, h, "/charts/dataset?points=100&chart=Scatter")
		require.Equal(t, http.StatusOK, w.Code)
		body, err := io.ReadAll(w.Body)
		require.NoError(t, err)
		return string(body)
	}

	first := read()
	assert.Contains(t, first, "Scatter Plot")
	assert.Equal(t, first, read())
}

func TestDemosHealth(t *testing.T) {
	w := get(t, newTestServer(t), "/health")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok","service":"portfolio-demos","version":"1.0.0"}`, w.Body.String())
}

func TestUnknownPage(t *testing.T) {
	w := get(t, newTestServer(t), "/nope")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Page not found")
}
