package core

import (
	"sort"
	"time"

	"github.com/flowlens/flowlens/internal/domain"
)

// BuildTimeline reconstructs the call forest from flat per-node run
// sequences. Runs are processed in global start order and placed with an
// open-invocation stack: a run nests under the innermost invocation that is
// still open when it starts, and becomes a root when none is. Explicit
// parent hints win over inference. The returned roots are in start order.
//
// Boundary rule: an invocation ending exactly when another starts is already
// closed, so equal end/start never nests. A zero-duration run closes before
// any later-sorted run with the same start time and is therefore always a
// leaf. Ties are broken by (node name, run index).
func BuildTimeline(runsByNode map[string][]domain.NodeRun) ([]*domain.TimelineNode, error) {
	total := 0
	for _, runs := range runsByNode {
		total += len(runs)
	}

	ordered := make([]*domain.NodeRun, 0, total)
	exists := make(map[domain.ParentRef]struct{}, total)
	for name := range runsByNode {
		runs := runsByNode[name]
		for i := range runs {
			if runs[i].Duration < 0 {
				return nil, domain.NewMalformedRunError(runs[i].NodeName, runs[i].RunIndex,
					"end time precedes start time")
			}
			ordered = append(ordered, &runs[i])
			exists[domain.ParentRef{NodeName: runs[i].NodeName, RunIndex: runs[i].RunIndex}] = struct{}{}
		}
	}

	sort.Slice(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]
		if !a.StartedAt.Equal(b.StartedAt) {
			return a.StartedAt.Before(b.StartedAt)
		}
		if a.NodeName != b.NodeName {
			return a.NodeName < b.NodeName
		}
		return a.RunIndex < b.RunIndex
	})

	type openRun struct {
		node *domain.TimelineNode
		end  time.Time
	}

	placed := make(map[domain.ParentRef]*domain.TimelineNode, total)
	stack := make([]openRun, 0, 8)
	roots := make([]*domain.TimelineNode, 0, 4)

	for _, run := range ordered {
		node := &domain.TimelineNode{Run: run}

		// Completed invocations are no longer candidate parents.
		for len(stack) > 0 && !stack[len(stack)-1].end.After(run.StartedAt) {
			stack = stack[:len(stack)-1]
		}

		var parent *domain.TimelineNode
		if run.Parent != nil {
			if _, ok := exists[*run.Parent]; !ok {
				return nil, domain.NewUnknownParentError(run.NodeName, run.RunIndex, *run.Parent)
			}
			// A hint to a run that exists but is not placed yet (a
			// same-instant tie that sorts after this run) falls back to
			// time-based inference.
			parent = placed[*run.Parent]
		}
		if parent == nil && len(stack) > 0 {
			parent = stack[len(stack)-1].node
		}

		if parent != nil {
			node.Depth = parent.Depth + 1
			parent.Children = append(parent.Children, node)
		} else {
			roots = append(roots, node)
		}

		placed[domain.ParentRef{NodeName: run.NodeName, RunIndex: run.RunIndex}] = node
		stack = append(stack, openRun{node: node, end: run.EndsAt()})
	}

	return roots, nil
}
