package dashboard

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"strconv"
	"time"

	"tb3/pkg/reputation"
)

//go:embed templates/*.html
var templatesFS embed.FS

const (
	layoutName   = "layout"
	layoutFile   = "templates/layout.html"
	notFoundPage = "404.html"
	errorPage    = "error.html"
)

// pageFiles maps every view to its template file.
var pageFiles = map[View]string{ //nolint: gochecknoglobals
	ViewDashboard:  "dashboard.html",
	ViewEdgeDetail: "edge.html",
	ViewLogsAudit:  "audit.html",
	ViewGovernance: "governance.html",
}

// PageData is passed to every page template.
type PageData struct {
	Title  string
	Active View
	Flash  string
	Error  string
	Data   any
}

// templateSet holds the layout cloned and extended once per page.
type templateSet struct {
	pages map[string]*template.Template
}

func newTemplateSet(router *Router) (*templateSet, error) {
	layout, err := template.New(layoutName).Funcs(funcMap(router)).ParseFS(templatesFS, layoutFile)
	if err != nil {
		return nil, fmt.Errorf("could not parse layout: %w", err)
	}

	files := []string{notFoundPage, errorPage}
	for _, f := range pageFiles {
		files = append(files, f)
	}

	ts := &templateSet{pages: make(map[string]*template.Template, len(files))}
	for _, f := range files {
		t, err := layout.Clone()
		if err != nil {
			return nil, fmt.Errorf("could not clone layout for %s: %w", f, err)
		}
		if _, err := t.ParseFS(templatesFS, "templates/"+f); err != nil {
			return nil, fmt.Errorf("could not parse template %s: %w", f, err)
		}
		ts.pages[f] = t
	}

	return ts, nil
}

func (ts *templateSet) render(w io.Writer, page string, data PageData) error {
	t, ok := ts.pages[page]
	if !ok {
		return fmt.Errorf("template not found: %s", page)
	}

	return t.ExecuteTemplate(w, layoutName, data)
}

func funcMap(router *Router) template.FuncMap {
	return template.FuncMap{
		// url builds a route path from its name and alternating param key/values.
		"url": func(name string, kv ...string) (string, error) {
			if len(kv)%2 != 0 {
				return "", fmt.Errorf("url %q: odd number of params", name)
			}
			params := make(map[string]string, len(kv)/2)
			for i := 0; i < len(kv); i += 2 {
				params[kv[i]] = kv[i+1]
			}

			return router.URL(name, params)
		},
		"score": formatScore,
		"unix":  formatUnix,
		"short": shortHash,
	}
}

// formatScore renders a reputation fixed-point value with three decimals.
func formatScore(v int64) string {
	return strconv.FormatFloat(float64(v)/float64(reputation.Scale), 'f', 3, 64)
}

func formatUnix(ts int64) string {
	if ts == 0 {
		return "-"
	}

	return time.Unix(ts, 0).UTC().Format(time.DateTime)
}

func shortHash(h string) string {
	if len(h) <= 14 {
		return h
	}

	return h[:8] + "…" + h[len(h)-4:]
}
