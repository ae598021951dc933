// Package application contains the metric composition policy and the view
// controller that mediates between entitlement decisions and the rendering
// layer.
package application

import "github.com/felixgeelhaar/stratus/internal/dashboard/domain"

// The backend guarantees ordinal stability only for the shared 12-metric
// block at the head of the feed, so the two stock-style dashboards slice by
// position while the metals dashboard selects its commodity-specific
// metrics by id. Both selection paths are deliberate; do not unify them.
var (
	metalsTierIDs  = []string{"real_yield", "breakeven", "fed_assets", "nonfarm", "gold_dxy", "gold_unrate"}
	metalsRatioIDs = []string{"gold_index", "silver_index"}
	growthIndexIDs = []string{"nasdaq_index", "nasdaq100_index"}
)

const (
	broadIndexID = "sp500_index"
	unrateID     = "unrate"
	vixID        = "vix"
)

// Compose partitions the full indicator feed into the display groups for a
// module. It is pure, deterministic, and total: ids missing from the feed
// are omitted, a short feed clamps the positional tiers, and no input ever
// produces an error.
func Compose(metrics []domain.Metric, module domain.Module) domain.Groups {
	if len(metrics) == 0 {
		return domain.Groups{}
	}

	switch module {
	case domain.ModuleMetals:
		return composeMetals(metrics)
	case domain.ModuleGrowth:
		return composeGrowth(metrics)
	default:
		return composeBroad(metrics)
	}
}

func composeMetals(metrics []domain.Metric) domain.Groups {
	tiered := pickByID(metrics, metalsTierIDs)
	split := len(tiered)
	if split > 3 {
		split = 3
	}
	return domain.Groups{
		RatioRow: pickByID(metrics, metalsRatioIDs),
		Tier1:    tiered[:split],
		Tier2:    tiered[split:],
	}
}

func composeGrowth(metrics []domain.Metric) domain.Groups {
	return domain.Groups{
		IndexRow: pickByID(metrics, growthIndexIDs),
		Tier1:    slicePositional(metrics, 0, 4),
		Tier2:    slicePositional(metrics, 4, 8),
		Tier3:    slicePositional(metrics, 8, 12),
	}
}

func composeBroad(metrics []domain.Metric) domain.Groups {
	// Tier 1 swaps the two tech-specific head metrics for the unemployment
	// rate and the volatility index; positions 0 and 1 stay positional.
	candidates := make([]*domain.Metric, 0, 4)
	candidates = append(candidates, at(metrics, 0), at(metrics, 1))
	candidates = append(candidates, findByID(metrics, unrateID), findByID(metrics, vixID))

	tier1 := make([]domain.Metric, 0, 4)
	for _, m := range candidates {
		if m != nil {
			tier1 = append(tier1, *m)
		}
	}

	var indexRow []domain.Metric
	if m := findByID(metrics, broadIndexID); m != nil {
		indexRow = []domain.Metric{*m}
	}

	return domain.Groups{
		IndexRow: indexRow,
		Tier1:    tier1,
		Tier2:    slicePositional(metrics, 4, 8),
		Tier3:    slicePositional(metrics, 8, 12),
	}
}

// pickByID looks up each id in order, dropping ids absent from the feed.
func pickByID(metrics []domain.Metric, ids []string) []domain.Metric {
	out := make([]domain.Metric, 0, len(ids))
	for _, id := range ids {
		if m := findByID(metrics, id); m != nil {
			out = append(out, *m)
		}
	}
	return out
}

func findByID(metrics []domain.Metric, id string) *domain.Metric {
	for i := range metrics {
		if metrics[i].ID == id {
			return &metrics[i]
		}
	}
	return nil
}

// slicePositional returns metrics[lo:hi] clamped to the feed length.
func slicePositional(metrics []domain.Metric, lo, hi int) []domain.Metric {
	if lo >= len(metrics) {
		return nil
	}
	if hi > len(metrics) {
		hi = len(metrics)
	}
	return metrics[lo:hi]
}

func at(metrics []domain.Metric, i int) *domain.Metric {
	if i >= len(metrics) {
		return nil
	}
	return &metrics[i]
}
