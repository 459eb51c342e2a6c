// Package chart builds Plotly.js trace definitions for the chart pages.
package chart

import (
	"encoding/json"
	"fmt"

	"climate-server/internal/modules/climate/types"
)

type Style struct {
	Color     string
	LineColor string
	LineWidth float64
	Size      float64
	Opacity   float64
}

var (
	TemperatureStyle = Style{
		Color:     "LightSkyBlue",
		LineColor: "MediumPurple",
		LineWidth: 2,
		Size:      5,
		Opacity:   0.5,
	}
	PrecipitationStyle = Style{
		Color:     "LightSkyBlue",
		LineColor: "orangered",
		LineWidth: 2,
		Size:      5,
		Opacity:   0.5,
	}
)

// Point is one marker. A nil Y leaves a gap.
type Point struct {
	X string
	Y *float64
}

type Trace struct {
	Type   string     `json:"type"`
	Mode   string     `json:"mode"`
	Name   string     `json:"name,omitempty"`
	X      []string   `json:"x"`
	Y      []*float64 `json:"y"`
	Marker marker     `json:"marker"`
}

type marker struct {
	Color   string  `json:"color"`
	Size    float64 `json:"size"`
	Opacity float64 `json:"opacity"`
	Line    line    `json:"line"`
}

type line struct {
	Color string  `json:"color"`
	Width float64 `json:"width"`
}

// Scatter returns a markers-only scatter trace.
func Scatter(name string, points []Point, style Style) Trace {
	t := Trace{
		Type: "scatter",
		Mode: "markers",
		Name: name,
		X:    make([]string, 0, len(points)),
		Y:    make([]*float64, 0, len(points)),
		Marker: marker{
			Color:   style.Color,
			Size:    style.Size,
			Opacity: style.Opacity,
			Line:    line{Color: style.LineColor, Width: style.LineWidth},
		},
	}
	for _, p := range points {
		t.X = append(t.X, p.X)
		t.Y = append(t.Y, p.Y)
	}
	return t
}

// Series picks one numeric column of measurements as points keyed by date.
func Series(rows []types.Measurement, column string) ([]Point, error) {
	points := make([]Point, 0, len(rows))
	for _, m := range rows {
		var y *float64
		switch column {
		case "tobs":
			y = m.Tobs
		case "prcp":
			y = m.Prcp
		default:
			return nil, fmt.Errorf("chart: unknown column %q", column)
		}
		points = append(points, Point{X: m.Date, Y: y})
	}
	return points, nil
}

// Encode marshals traces into the JSON array Plotly.newPlot expects.
func Encode(traces ...Trace) ([]byte, error) {
	if traces == nil {
		traces = []Trace{}
	}
	b, err := json.Marshal(traces)
	if err != nil {
		return nil, fmt.Errorf("encode traces: %w", err)
	}
	return b, nil
}
