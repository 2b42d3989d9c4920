package demos

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"

	"github.com/samber/lo"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed content/*.md
var contentFS embed.FS

// Page is one entry of the sidebar
type Page struct {
	Slug  string
	Title string
	Path  string

	// content is the markdown file of a static page; empty for demos
	content string
}

// Pages lists the sidebar in display order
var Pages = []Page{
	{Slug: "overview", Title: "Overview", Path: "/overview", content: "content/overview.md"},
	{Slug: "text-analysis", Title: "Demo 1: Text Analysis", Path: "/text-analysis"},
	{Slug: "data-visualization", Title: "Demo 2: Data Visualization", Path: "/data-visualization"},
	{Slug: "how-it-works", Title: "How It Works", Path: "/how-it-works", content: "content/how-it-works.md"},
	{Slug: "limitations", Title: "Limitations", Path: "/limitations", content: "content/limitations.md"},
}

// page finds a sidebar entry by slug
func page(slug string) Page {
	p, _ := lo.Find(Pages, func(p Page) bool { return p.Slug == slug })
	return p
}

// layoutData is shared by every template
type layoutData struct {
	Title  string
	Active string
	Pages  []Page
}

func newLayout(p Page) layoutData {
	return layoutData{Title: p.Title, Active: p.Slug, Pages: Pages}
}

type markdownData struct {
	layoutData
	Body template.HTML
}

// renderMarkdown converts every static page once; the content is compiled in
func renderMarkdown(source fs.FS) (map[string]template.HTML, error) {
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))

	rendered := make(map[string]template.HTML)
	for _, p := range Pages {
		if p.content == "" {
			continue
		}
		raw, err := fs.ReadFile(source, p.content)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", p.content, err)
		}
		var buf bytes.Buffer
		if err := md.Convert(raw, &buf); err != nil {
			return nil, fmt.Errorf("failed to render %s: %w", p.content, err)
		}
		// goldmark escapes raw HTML unless WithUnsafe is set, so the output is safe to embed
		rendered[p.Slug] = template.HTML(buf.String())
	}
	return rendered, nil
}

func parseTemplates() (*template.Template, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return tmpl, nil
}
