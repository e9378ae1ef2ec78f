package domain

import (
	"time"
)

type RunStatus string

const (
	RunStatusSuccess RunStatus = "success"
	RunStatusError   RunStatus = "error"
)

// ExecutionRecord is the raw input to an analysis: every node name mapped to
// the ordered run payloads observed for it. The record is owned by the caller
// and is never mutated by the core.
type ExecutionRecord struct {
	Nodes map[string][]RunPayload
	Info  *ExecutionInfo
}

// RunPayload is one raw, unnormalized node invocation. Either StoppedAt or
// Duration must be present; a payload carrying neither has no usable timing
// data and is rejected during collection.
type RunPayload struct {
	StartedAt *time.Time
	StoppedAt *time.Time
	Duration  *time.Duration
	Failed    bool
	Parent    *ParentRef
}

// ParentRef is an explicit linkage hint: the upstream invocation that fed
// this one. When present it takes precedence over time-based inference.
type ParentRef struct {
	NodeName string `json:"node_name"`
	RunIndex int    `json:"run_index"`
}

// NodeRun is one normalized invocation of a node. RunIndex is 0-based and
// matches the payload's position in the raw input order.
type NodeRun struct {
	NodeName  string        `json:"node_name"`
	RunIndex  int           `json:"run_index"`
	StartedAt time.Time     `json:"started_at"`
	Duration  time.Duration `json:"duration"`
	Status    RunStatus     `json:"status"`
	Parent    *ParentRef    `json:"parent,omitempty"`
}

func (r NodeRun) EndsAt() time.Time {
	return r.StartedAt.Add(r.Duration)
}

func (r NodeRun) Succeeded() bool {
	return r.Status == RunStatusSuccess
}

// ExecutionInfo carries the envelope of the source execution. It is extracted
// by the decoding adapter and passed through the analysis untouched.
type ExecutionInfo struct {
	ExecutionID  string     `json:"execution_id"`
	WorkflowID   string     `json:"workflow_id"`
	WorkflowName string     `json:"workflow_name"`
	Status       string     `json:"status"`
	StartedAt    *time.Time `json:"started_at,omitempty"`
	StoppedAt    *time.Time `json:"stopped_at,omitempty"`
}

// Duration returns the envelope duration when both endpoints are known.
func (i *ExecutionInfo) Duration() (time.Duration, bool) {
	if i == nil || i.StartedAt == nil || i.StoppedAt == nil {
		return 0, false
	}
	return i.StoppedAt.Sub(*i.StartedAt), true
}
