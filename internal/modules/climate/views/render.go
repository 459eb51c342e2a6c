package views

import (
	"embed"
	"errors"
	"html/template"
	"io"
	"io/fs"
)

//go:embed templates static
var viewsFS embed.FS

var pageTmpl *template.Template

// loadTemplatesFromFS parses pages and partials under dir. Tests pass their
// own fs to exercise failures.
func loadTemplatesFromFS(fsys fs.FS, dir string) error {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		return err
	}
	tmpl, err := template.ParseFS(sub, "*.html", "partials/*.html")
	if err != nil {
		return err
	}
	pageTmpl = tmpl
	return nil
}

// LoadTemplates loads the embedded templates. Call during startup before
// serving requests; if it returns an error, do not start the server.
func LoadTemplates() error {
	return loadTemplatesFromFS(viewsFS, "templates")
}

// Static returns the embedded stylesheet directory, rooted at static/.
func Static() fs.FS {
	sub, err := fs.Sub(viewsFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

// RouteLink is one row of the home page's route index.
type RouteLink struct {
	Path        string
	Example     string
	Description string
}

type HomeData struct {
	Title        string
	LatestDate   string
	HasData      bool
	StationCount int
	Routes       []RouteLink
}

type ChartData struct {
	Title  string
	Window string
	YAxis  string
	// Traces is a JSON array of Plotly traces.
	Traces template.JS
}

func RenderHome(w io.Writer, data *HomeData) error {
	if pageTmpl == nil {
		return errors.New("home template not loaded: call views.LoadTemplates during startup")
	}
	return pageTmpl.ExecuteTemplate(w, "home.html", data)
}

func RenderChart(w io.Writer, data *ChartData) error {
	if pageTmpl == nil {
		return errors.New("chart template not loaded: call views.LoadTemplates during startup")
	}
	return pageTmpl.ExecuteTemplate(w, "chart.html", data)
}
