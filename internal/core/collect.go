package core

import (
	"sort"
	"time"

	"github.com/flowlens/flowlens/internal/domain"
)

// Collect normalizes the raw record into ordered per-node run sequences.
// Nodes with zero payloads are legal and simply absent from the result. The
// record itself is never modified. Nodes are scanned in name order so a
// malformed payload always surfaces as the same error for the same input.
func Collect(record *domain.ExecutionRecord) (map[string][]domain.NodeRun, error) {
	if record == nil || len(record.Nodes) == 0 {
		return map[string][]domain.NodeRun{}, nil
	}

	names := make([]string, 0, len(record.Nodes))
	for name := range record.Nodes {
		names = append(names, name)
	}
	sort.Strings(names)

	runs := make(map[string][]domain.NodeRun, len(record.Nodes))
	for _, name := range names {
		payloads := record.Nodes[name]
		if len(payloads) == 0 {
			continue
		}

		nodeRuns := make([]domain.NodeRun, 0, len(payloads))
		for i, payload := range payloads {
			run, err := normalizeRun(name, i, payload)
			if err != nil {
				return nil, err
			}
			nodeRuns = append(nodeRuns, run)
		}
		runs[name] = nodeRuns
	}

	return runs, nil
}

func normalizeRun(name string, index int, payload domain.RunPayload) (domain.NodeRun, error) {
	if payload.StartedAt == nil {
		return domain.NodeRun{}, domain.NewMalformedInputError(name, index, "missing start time")
	}

	var duration time.Duration
	switch {
	case payload.StoppedAt != nil:
		duration = payload.StoppedAt.Sub(*payload.StartedAt)
	case payload.Duration != nil:
		duration = *payload.Duration
	default:
		return domain.NodeRun{}, domain.NewMalformedInputError(name, index, "neither end time nor duration present")
	}
	if duration < 0 {
		duration = 0
	}

	// Lenient by default: only an explicit failure marker counts as an error.
	status := domain.RunStatusSuccess
	if payload.Failed {
		status = domain.RunStatusError
	}

	return domain.NodeRun{
		NodeName:  name,
		RunIndex:  index,
		StartedAt: *payload.StartedAt,
		Duration:  duration,
		Status:    status,
		Parent:    payload.Parent,
	}, nil
}
