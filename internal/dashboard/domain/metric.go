package domain

// Status classifies an indicator's current risk reading.
type Status string

const (
	StatusSuccess Status = "success"
	StatusWarning Status = "warning"
	StatusDanger  Status = "danger"
	StatusNeutral Status = "neutral"
)

// Point is one observation in a metric's history. History is ordered
// time-ascending and finite.
type Point struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// Metric is one indicator snapshot exactly as delivered by the backend
// feed. The core reads only ID and StatusColor; all values are computed
// server-side and passed through untouched.
type Metric struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Ticker          string  `json:"ticker"`
	Value           float64 `json:"value"`
	Unit            string  `json:"unit"`
	Description     string  `json:"description"`
	StatusText      string  `json:"statusText"`
	StatusColor     Status  `json:"statusColor"`
	History         []Point `json:"history"`
	SecondaryValue  float64 `json:"secondaryValue,omitempty"`
	Formula         string  `json:"formula,omitempty"`
	DataRange       string  `json:"dataRange,omitempty"`
	DataDate        string  `json:"dataDate,omitempty"`
	UpdateFrequency string  `json:"updateFrequency,omitempty"`
	NextUpdateTime  string  `json:"nextUpdateTime,omitempty"`
}
