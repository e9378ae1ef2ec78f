package domain

import (
	"sort"
	"time"
)

// NodeStats is the aggregate over every run of one node. It is recomputed
// from scratch whenever the underlying run set changes, never adjusted
// incrementally.
type NodeStats struct {
	Count           int           `json:"count"`
	TotalDuration   time.Duration `json:"total_duration"`
	AverageDuration time.Duration `json:"average_duration"`
	MinDuration     time.Duration `json:"min_duration"`
	MaxDuration     time.Duration `json:"max_duration"`
	Successes       int           `json:"successes"`
	Failures        int           `json:"failures"`
	SuccessRate     float64       `json:"success_rate"`
}

// Analysis is the full output of one analyze call: the per-node stats table,
// the reconstructed timeline forest, and the normalized runs both were
// derived from. Ownership transfers to the caller on return.
type Analysis struct {
	ID        string               `json:"id"`
	Info      *ExecutionInfo       `json:"info,omitempty"`
	Runs      map[string][]NodeRun `json:"runs"`
	Stats     map[string]NodeStats `json:"stats"`
	Timeline  []*TimelineNode      `json:"timeline"`
	NodeCount int                  `json:"node_count"`
	TotalRuns int                  `json:"total_runs"`
}

// NodeNames returns the analyzed node names in ascending order.
func (a *Analysis) NodeNames() []string {
	names := make([]string, 0, len(a.Stats))
	for name := range a.Stats {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
