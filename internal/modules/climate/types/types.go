package types

// Measurement is one station/date observation. Prcp and Tobs are nil when the
// source row holds NULL.
type Measurement struct {
	ID      int64    `json:"id"`
	Station string   `json:"station"`
	Date    string   `json:"date"`
	Prcp    *float64 `json:"prcp"`
	Tobs    *float64 `json:"tobs"`
}

// Fields maps column names to values.
func (m Measurement) Fields() map[string]any {
	return map[string]any{
		"id":      m.ID,
		"station": m.Station,
		"date":    m.Date,
		"prcp":    m.Prcp,
		"tobs":    m.Tobs,
	}
}

type Station struct {
	ID        int64   `json:"id"`
	Station   string  `json:"station"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Elevation float64 `json:"elevation"`
}

func (s Station) Fields() map[string]any {
	return map[string]any{
		"id":        s.ID,
		"station":   s.Station,
		"name":      s.Name,
		"latitude":  s.Latitude,
		"longitude": s.Longitude,
		"elevation": s.Elevation,
	}
}

// TemperatureStats holds MIN/AVG/MAX of tobs over a date range. A nil field
// means the aggregate had no value, which is not the same as zero.
type TemperatureStats struct {
	Min *float64
	Avg *float64
	Max *float64
}

// Found reports whether all three aggregates have a value.
func (s TemperatureStats) Found() bool {
	return s.Min != nil && s.Avg != nil && s.Max != nil
}

// TemperatureSummary is the JSON payload of the range endpoint.
type TemperatureSummary struct {
	Tmin float64 `json:"Tmin"`
	Tavg float64 `json:"Tavg"`
	Tmax float64 `json:"Tmax"`
}

// FailurePayload is returned by the range endpoint for any error that is
// reported as data rather than as a guidance message.
type FailurePayload struct {
	Status string `json:"status"`
	Error  string `json:"error"`
}

// ListPayload wraps the listing endpoints' rows.
type ListPayload struct {
	Result []map[string]any `json:"result"`
}
