package coverage

import (
	"math"
	"time"

	"github.com/pantierra/phenocam-finder/model"
)

// ComputeGapStatistics quantifies the temporal sparsity of one scene
// subset. The dates must be sorted ascending; gaps are measured in whole
// days between consecutive dates. A subset of fewer than two scenes has no
// gaps and yields the zero statistics.
//
// The same function serves both subset policies: it is invoked once per
// site with all scene dates and once with the clear-scene dates only.
func ComputeGapStatistics(dates []time.Time, cfg Config) model.GapStatistics {
	cfg = cfg.normalized()

	stats := model.GapStatistics{}
	if len(dates) < 2 {
		return stats
	}

	for i := 0; i < len(dates)-1; i++ {
		gap := daysBetween(dates[i], dates[i+1])
		if gap > stats.MaxGapDays {
			stats.MaxGapDays = gap
		}
		if gap > cfg.GapThresholdDays {
			stats.GapCount++
		}
		stats.WeightedGapScore += math.Exp(float64(gap)/cfg.GapDecayDays) * float64(gap)
	}
	stats.WeightedGapScore /= cfg.PeriodDays

	return stats
}

// daysBetween returns the calendar-day distance between two acquisition
// timestamps. Timestamps are reduced to their UTC date first, so two
// acquisitions on the same day are zero days apart regardless of the time
// of day.
func daysBetween(earlier, later time.Time) int {
	return int(toUTCDate(later).Sub(toUTCDate(earlier)).Hours() / 24)
}

func toUTCDate(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
