package chart

import (
	"encoding/json"
	"strings"
	"testing"

	"climate-server/internal/modules/climate/types"
)

func ptr(v float64) *float64 { return &v }

func TestSeries(t *testing.T) {
	rows := []types.Measurement{
		{Date: "2016-08-24", Prcp: ptr(0.08), Tobs: ptr(79)},
		{Date: "2016-08-25", Prcp: nil, Tobs: ptr(80)},
	}

	t.Run("tobs", func(t *testing.T) {
		pts, err := Series(rows, "tobs")
		if err != nil {
			t.Fatalf("Series: %v", err)
		}
		if len(pts) != 2 || pts[0].X != "2016-08-24" || *pts[1].Y != 80 {
			t.Errorf("points = %+v", pts)
		}
	})

	t.Run("prcp keeps nulls", func(t *testing.T) {
		pts, err := Series(rows, "prcp")
		if err != nil {
			t.Fatalf("Series: %v", err)
		}
		if pts[1].Y != nil {
			t.Errorf("pts[1].Y = %v; want nil", *pts[1].Y)
		}
	})

	t.Run("unknown column", func(t *testing.T) {
		if _, err := Series(rows, "station"); err == nil {
			t.Fatal("Series(station) = nil error; want error")
		}
	})
}

func TestScatterEncode(t *testing.T) {
	trace := Scatter("tobs", []Point{{X: "2016-08-24", Y: ptr(79)}, {X: "2016-08-25"}}, TemperatureStyle)

	b, err := Encode(trace)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	var got []map[string]any
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d traces; want 1", len(got))
	}
	tr := got[0]
	if tr["type"] != "scatter" || tr["mode"] != "markers" {
		t.Errorf("type/mode = %v/%v", tr["type"], tr["mode"])
	}
	if !strings.Contains(string(b), `"y":[79,null]`) {
		t.Errorf("y values not encoded with null gap: %s", b)
	}
	m := tr["marker"].(map[string]any)
	if m["color"] != "LightSkyBlue" || m["size"] != 5.0 || m["opacity"] != 0.5 {
		t.Errorf("marker = %v", m)
	}
	l := m["line"].(map[string]any)
	if l["color"] != "MediumPurple" || l["width"] != 2.0 {
		t.Errorf("marker.line = %v", l)
	}
}

func TestEncode_empty(t *testing.T) {
	b, err := Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if string(b) != "[]" {
		t.Errorf("Encode() = %s; want []", b)
	}

	b, err = Encode(Scatter("prcp", nil, PrecipitationStyle))
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !strings.Contains(string(b), `"x":[]`) || !strings.Contains(string(b), `"orangered"`) {
		t.Errorf("empty trace = %s", b)
	}
}
