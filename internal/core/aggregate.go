package core

import (
	"time"

	"github.com/flowlens/flowlens/internal/domain"
)

// Aggregate reduces one node's run sequence to its summary statistics. The
// total is summed at full duration precision and the average is computed
// once at the end, so aggregating the same input twice yields identical
// stats. An empty sequence fails with ErrEmptyInput; callers filter out
// never-executed nodes first.
func Aggregate(runs []domain.NodeRun) (domain.NodeStats, error) {
	if len(runs) == 0 {
		return domain.NodeStats{}, domain.ErrEmptyInput
	}

	stats := domain.NodeStats{
		Count:       len(runs),
		MinDuration: runs[0].Duration,
		MaxDuration: runs[0].Duration,
	}

	for _, run := range runs {
		stats.TotalDuration += run.Duration
		if run.Duration < stats.MinDuration {
			stats.MinDuration = run.Duration
		}
		if run.Duration > stats.MaxDuration {
			stats.MaxDuration = run.Duration
		}
		if run.Succeeded() {
			stats.Successes++
		} else {
			stats.Failures++
		}
	}

	stats.AverageDuration = stats.TotalDuration / time.Duration(stats.Count)
	stats.SuccessRate = float64(stats.Successes) / float64(stats.Count)

	return stats, nil
}
