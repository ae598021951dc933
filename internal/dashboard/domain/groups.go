package domain

// Groups is the ordered display partition of a dashboard feed. Each slice
// keeps the fixed per-module order; absent metrics are omitted, never
// padded.
type Groups struct {
	IndexRow []Metric
	RatioRow []Metric
	Tier1    []Metric
	Tier2    []Metric
	Tier3    []Metric
}

// All returns every grouped metric in render order.
func (g Groups) All() []Metric {
	out := make([]Metric, 0, len(g.IndexRow)+len(g.RatioRow)+len(g.Tier1)+len(g.Tier2)+len(g.Tier3))
	out = append(out, g.IndexRow...)
	out = append(out, g.RatioRow...)
	out = append(out, g.Tier1...)
	out = append(out, g.Tier2...)
	out = append(out, g.Tier3...)
	return out
}

// IsEmpty reports whether no metric made it into any group.
func (g Groups) IsEmpty() bool {
	return len(g.IndexRow) == 0 && len(g.RatioRow) == 0 &&
		len(g.Tier1) == 0 && len(g.Tier2) == 0 && len(g.Tier3) == 0
}
