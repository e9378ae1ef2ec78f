// Package report renders finished analyses for humans and for downstream
// plotting tools. Renderers round durations for display; the analysis they
// receive is never modified.
package report

import (
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/flowlens/flowlens/internal/domain"
)

// TextRenderer writes the per-node summary table and, optionally, the
// individual run listing for every node.
type TextRenderer struct {
	w      io.Writer
	config domain.ReportConfig
	logger *slog.Logger
}

func NewTextRenderer(w io.Writer, config domain.ReportConfig, logger *slog.Logger) *TextRenderer {
	if logger == nil {
		logger = slog.Default()
	}
	return &TextRenderer{
		w:      w,
		config: config,
		logger: logger.With("component", "text-renderer"),
	}
}

func (r *TextRenderer) Render(analysis *domain.Analysis) error {
	if err := r.renderHeader(analysis); err != nil {
		return err
	}

	names := sortedNodeNames(analysis, r.config.SortBy)
	if r.config.TopN > 0 && len(names) > r.config.TopN {
		names = names[:r.config.TopN]
	}

	rule := strings.Repeat("-", 104)
	fmt.Fprintf(r.w, "%-30s | %5s | %12s | %12s | %10s | %10s | %8s\n",
		"Node", "Runs", "Total", "Avg", "Min", "Max", "Success")
	fmt.Fprintln(r.w, rule)

	for _, name := range names {
		stats := analysis.Stats[name]
		fmt.Fprintf(r.w, "%-30s | %5d | %12s | %12s | %10s | %10s | %7.1f%%\n",
			name,
			stats.Count,
			formatDuration(stats.TotalDuration),
			formatDuration(stats.AverageDuration),
			formatDuration(stats.MinDuration),
			formatDuration(stats.MaxDuration),
			stats.SuccessRate*100)
	}
	fmt.Fprintln(r.w, rule)

	if r.config.ShowRuns {
		r.renderRuns(analysis, names)
	}

	r.logger.Debug("rendered summary report", "nodes", len(names))
	return nil
}

func (r *TextRenderer) renderHeader(analysis *domain.Analysis) error {
	if analysis.Info != nil {
		info := analysis.Info
		fmt.Fprintf(r.w, "Execution %s | %s | status: %s\n",
			orUnknown(info.ExecutionID), orUnknown(info.WorkflowName), orUnknown(info.Status))
		if duration, ok := info.Duration(); ok {
			fmt.Fprintf(r.w, "Wall clock: %s\n", formatDuration(duration))
		}
	}
	_, err := fmt.Fprintf(r.w, "Nodes: %d | Node runs: %d\n\n", analysis.NodeCount, analysis.TotalRuns)
	return err
}

func (r *TextRenderer) renderRuns(analysis *domain.Analysis, names []string) {
	for _, name := range names {
		runs := analysis.Runs[name]
		fmt.Fprintf(r.w, "\n%s\n", name)
		for _, run := range runs {
			fmt.Fprintf(r.w, "  %2d. %s at %s (%s)\n",
				run.RunIndex+1,
				formatDuration(run.Duration),
				run.StartedAt.Format("15:04:05.000"),
				run.Status)
		}
	}
}

func sortedNodeNames(analysis *domain.Analysis, order domain.SortOrder) []string {
	names := analysis.NodeNames()

	switch order {
	case domain.SortByTotal:
		sort.SliceStable(names, func(i, j int) bool {
			return analysis.Stats[names[i]].TotalDuration > analysis.Stats[names[j]].TotalDuration
		})
	case domain.SortByAvg:
		sort.SliceStable(names, func(i, j int) bool {
			return analysis.Stats[names[i]].AverageDuration > analysis.Stats[names[j]].AverageDuration
		})
	case domain.SortByCount:
		sort.SliceStable(names, func(i, j int) bool {
			return analysis.Stats[names[i]].Count > analysis.Stats[names[j]].Count
		})
	}

	return names
}

func formatDuration(d time.Duration) string {
	return d.Round(domain.DurationPrecision).String()
}

func orUnknown(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
