package core

import (
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/flowlens/flowlens/internal/domain"
)

// Analyze runs the full pipeline for one execution record: collect the runs,
// aggregate every node in name order, then reconstruct the timeline forest.
// It fails fast on the first error so a bad record always reports the same
// node and run. The result is freshly built per call and shares no state
// with any other call.
func Analyze(record *domain.ExecutionRecord) (*domain.Analysis, error) {
	runs, err := Collect(record)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(runs))
	for name := range runs {
		names = append(names, name)
	}
	sort.Strings(names)

	stats := make(map[string]domain.NodeStats, len(runs))
	totalRuns := 0
	for _, name := range names {
		nodeStats, err := Aggregate(runs[name])
		if err != nil {
			return nil, fmt.Errorf("aggregate node %s: %w", name, err)
		}
		stats[name] = nodeStats
		totalRuns += nodeStats.Count
	}

	timeline, err := BuildTimeline(runs)
	if err != nil {
		return nil, err
	}

	var info *domain.ExecutionInfo
	if record != nil {
		info = record.Info
	}

	return &domain.Analysis{
		ID:        uuid.New().String(),
		Info:      info,
		Runs:      runs,
		Stats:     stats,
		Timeline:  timeline,
		NodeCount: len(stats),
		TotalRuns: totalRuns,
	}, nil
}
