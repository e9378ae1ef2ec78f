// Package flowlens derives aggregate timing statistics and a reconstructed
// call timeline from a single workflow execution record.
//
// The input is one execution's raw node-run data: every node name mapped to
// the ordered invocations observed for it, looped nodes included. One
// Analyze call produces per-node stats (count, total, average, min, max,
// success rate) and a forest of timeline nodes whose nesting represents
// "ran during" containment, inferred from timing with explicit linkage data
// taking precedence when the record carries it.
//
// Basic usage:
//
//	record, err := flowlens.DecodeExecution(exportJSON, flowlens.DefaultDecoderConfig(), logger)
//	analysis, err := flowlens.Analyze(record)
//	for name, stats := range analysis.Stats { ... }
//
// The core is pure and synchronous: it performs no I/O, holds no state
// between calls, and is safe to invoke concurrently for different records.
package flowlens

import (
	"log/slog"

	"github.com/flowlens/flowlens/internal/adapters/n8n"
	"github.com/flowlens/flowlens/internal/core"
	"github.com/flowlens/flowlens/internal/domain"
)

const Version = "0.4.0"

// ExecutionRecord is the raw input: node names mapped to ordered run
// payloads, plus the optional execution envelope.
type ExecutionRecord = domain.ExecutionRecord

// RunPayload is one raw node invocation before normalization.
type RunPayload = domain.RunPayload

// ParentRef is an explicit linkage hint naming the upstream run that fed an
// invocation.
type ParentRef = domain.ParentRef

// NodeRun is one normalized invocation of a node.
type NodeRun = domain.NodeRun

// NodeStats is the aggregate over all runs of one node.
type NodeStats = domain.NodeStats

// TimelineNode is one entry in the reconstructed call hierarchy.
type TimelineNode = domain.TimelineNode

// ExecutionInfo is the source execution's envelope, passed through the
// analysis untouched.
type ExecutionInfo = domain.ExecutionInfo

// Analysis is the full output of one Analyze call.
type Analysis = domain.Analysis

type RunStatus = domain.RunStatus

const (
	RunStatusSuccess = domain.RunStatusSuccess
	RunStatusError   = domain.RunStatusError
)

type Config = domain.Config

type ReportConfig = domain.ReportConfig

type TimelineConfig = domain.TimelineConfig

type DecoderConfig = domain.DecoderConfig

// Analyze collects the record's runs, aggregates every node and rebuilds the
// call timeline. It fails fast on the first malformed node, scanning in name
// order.
func Analyze(record *ExecutionRecord) (*Analysis, error) {
	return core.Analyze(record)
}

// Collect exposes the run collection stage on its own.
func Collect(record *ExecutionRecord) (map[string][]NodeRun, error) {
	return core.Collect(record)
}

// Aggregate exposes the aggregation stage on its own. It fails with
// ErrEmptyInput when runs is empty.
func Aggregate(runs []NodeRun) (NodeStats, error) {
	return core.Aggregate(runs)
}

// BuildTimeline exposes the hierarchy reconstruction stage on its own.
func BuildTimeline(runsByNode map[string][]NodeRun) ([]*TimelineNode, error) {
	return core.BuildTimeline(runsByNode)
}

// DecodeExecution converts a raw n8n execution export document into an
// execution record, validating it first unless the config says otherwise.
func DecodeExecution(data []byte, config DecoderConfig, logger *slog.Logger) (*ExecutionRecord, error) {
	return n8n.NewDecoder(config, logger).Decode(data)
}

func DefaultConfig() *Config {
	return domain.DefaultConfig()
}

func DefaultDecoderConfig() DecoderConfig {
	return domain.DefaultDecoderConfig()
}

func LoadConfig(path string) (*Config, error) {
	return domain.LoadConfig(path)
}

var (
	ErrEmptyInput    = domain.ErrEmptyInput
	ErrInvalidConfig = domain.ErrInvalidConfig
)

func IsMalformedInput(err error) bool { return domain.IsMalformedInput(err) }

func IsMalformedRun(err error) bool { return domain.IsMalformedRun(err) }

func IsUnknownParent(err error) bool { return domain.IsUnknownParent(err) }

func IsEmptyInput(err error) bool { return domain.IsEmptyInput(err) }
