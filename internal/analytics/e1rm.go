package analytics

import (
	"fmt"
	"strings"

	"github.com/misterclayt0n/gymlog/internal/models"
)

// E1RM estimates a one-rep max with the Epley formula. Without positive reps
// there is nothing to extrapolate from and the load is returned as is.
func E1RM(loadKg float64, reps int) float64 {
	if reps <= 0 {
		return loadKg
	}
	return loadKg * (1 + float64(reps)/30)
}

// Metric reduces the sets of one entry to a single value.
type Metric int

const (
	MetricMaxLoad Metric = iota
	MetricMaxE1RM
)

func ParseMetric(s string) (Metric, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "load", "weight", "max":
		return MetricMaxLoad, nil
	case "e1rm", "1rm":
		return MetricMaxE1RM, nil
	default:
		return 0, fmt.Errorf("unknown metric %q (want load or e1rm)", s)
	}
}

func (m Metric) String() string {
	if m == MetricMaxE1RM {
		return "e1rm"
	}
	return "load"
}

func (m Metric) Title() string {
	if m == MetricMaxE1RM {
		return "Estimated 1RM"
	}
	return "Max weight"
}

// Of applies the metric to a set collection. An empty collection is worth 0.
func (m Metric) Of(sets []models.Set) float64 {
	var best float64
	for i, set := range sets {
		v := m.value(set)
		if i == 0 || v > best {
			best = v
		}
	}
	return best
}

func (m Metric) value(set models.Set) float64 {
	if m == MetricMaxE1RM {
		return E1RM(set.LoadKg, set.Reps)
	}
	return set.LoadKg
}
