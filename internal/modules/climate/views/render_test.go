package views

import (
	"bytes"
	"io/fs"
	"strings"
	"testing"
	"testing/fstest"
)

func TestLoadTemplates_success(t *testing.T) {
	if err := LoadTemplates(); err != nil {
		t.Fatalf("LoadTemplates() = %v; want nil", err)
	}
	if pageTmpl == nil {
		t.Fatal("LoadTemplates() left pageTmpl nil")
	}
}

func TestLoadTemplates_failure_sub(t *testing.T) {
	// Empty FS has no "templates" directory; ParseFS finds no files.
	err := loadTemplatesFromFS(fstest.MapFS{}, "templates")
	if err == nil {
		t.Fatal("loadTemplatesFromFS(emptyFS) = nil; want error")
	}
}

func TestLoadTemplates_failure_parse(t *testing.T) {
	badFS := fstest.MapFS{
		"templates/home.html":            {Data: []byte("{{ .")},
		"templates/partials/layout.html": {Data: []byte("")},
	}
	err := loadTemplatesFromFS(badFS, "templates")
	if err == nil {
		t.Fatal("loadTemplatesFromFS(badFS) = nil; want error")
	}
}

func TestRender_notLoaded(t *testing.T) {
	prev := pageTmpl
	pageTmpl = nil
	t.Cleanup(func() { pageTmpl = prev })

	var buf bytes.Buffer
	if err := RenderHome(&buf, &HomeData{}); err == nil || !strings.Contains(err.Error(), "not loaded") {
		t.Errorf("RenderHome() = %v; want not loaded error", err)
	}
	if err := RenderChart(&buf, &ChartData{}); err == nil || !strings.Contains(err.Error(), "not loaded") {
		t.Errorf("RenderChart() = %v; want not loaded error", err)
	}
}

func TestRenderHome(t *testing.T) {
	if err := LoadTemplates(); err != nil {
		t.Fatalf("LoadTemplates(): %v", err)
	}

	t.Run("with data", func(t *testing.T) {
		var buf bytes.Buffer
		err := RenderHome(&buf, &HomeData{
			Title:        "Hawaii Climate API",
			LatestDate:   "2017-08-23",
			HasData:      true,
			StationCount: 9,
			Routes: []RouteLink{
				{Path: "/api/v1.0/stations", Example: "/api/v1.0/stations", Description: "station names"},
			},
		})
		if err != nil {
			t.Fatalf("RenderHome: %v", err)
		}
		out := buf.String()
		for _, want := range []string{"Hawaii Climate API", "2017-08-23", "<strong>9</strong>", "/api/v1.0/stations", "/static/style.css"} {
			if !strings.Contains(out, want) {
				t.Errorf("output missing %q", want)
			}
		}
	})

	t.Run("empty dataset", func(t *testing.T) {
		var buf bytes.Buffer
		if err := RenderHome(&buf, &HomeData{Title: "Hawaii Climate API"}); err != nil {
			t.Fatalf("RenderHome: %v", err)
		}
		if !strings.Contains(buf.String(), "No measurements loaded.") {
			t.Errorf("output missing empty notice: %s", buf.String())
		}
	})
}

func TestRenderChart(t *testing.T) {
	if err := LoadTemplates(); err != nil {
		t.Fatalf("LoadTemplates(): %v", err)
	}

	var buf bytes.Buffer
	err := RenderChart(&buf, &ChartData{
		Title:  "Temperature observations",
		Window: "2016-08-24 to 2017-08-23",
		YAxis:  "tobs (°F)",
		Traces: `[{"type":"scatter","x":["2016-08-24"],"y":[79]}]`,
	})
	if err != nil {
		t.Fatalf("RenderChart: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, `[{"type":"scatter","x":["2016-08-24"],"y":[79]}]`) {
		t.Errorf("traces not embedded verbatim: %s", out)
	}
	if !strings.Contains(out, "cdn.plot.ly") {
		t.Error("output missing plotly script")
	}
	if !strings.Contains(out, "Temperature observations") {
		t.Error("output missing title")
	}
}

func TestStatic(t *testing.T) {
	b, err := fs.ReadFile(Static(), "style.css")
	if err != nil {
		t.Fatalf("read style.css: %v", err)
	}
	if !bytes.Contains(b, []byte(".chart")) {
		t.Error("style.css missing .chart rule")
	}
}
