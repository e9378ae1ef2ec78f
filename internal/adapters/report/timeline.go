package report

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/flowlens/flowlens/internal/domain"
)

// TimelineRenderer writes the reconstructed call forest as an indented tree,
// one run per line, with start offsets relative to the earliest run.
type TimelineRenderer struct {
	w      io.Writer
	config domain.TimelineConfig
	logger *slog.Logger
}

func NewTimelineRenderer(w io.Writer, config domain.TimelineConfig, logger *slog.Logger) *TimelineRenderer {
	if logger == nil {
		logger = slog.Default()
	}
	return &TimelineRenderer{
		w:      w,
		config: config,
		logger: logger.With("component", "timeline-renderer"),
	}
}

func (r *TimelineRenderer) Render(analysis *domain.Analysis) error {
	if len(analysis.Timeline) == 0 {
		_, err := fmt.Fprintln(r.w, "(no runs)")
		return err
	}

	origin := analysis.Timeline[0].Start()
	lines := 0
	for _, root := range analysis.Timeline {
		lines += r.renderNode(root, origin)
	}

	r.logger.Debug("rendered timeline", "roots", len(analysis.Timeline), "lines", lines)
	return nil
}

func (r *TimelineRenderer) renderNode(node *domain.TimelineNode, origin time.Time) int {
	if r.config.MaxDepth > 0 && node.Depth >= r.config.MaxDepth {
		return 0
	}

	marker := ""
	if !node.Run.Succeeded() {
		marker = " !"
	}

	fmt.Fprintf(r.w, "%s%s #%d  +%s  %s%s\n",
		strings.Repeat(r.config.Indent, node.Depth),
		node.Run.NodeName,
		node.Run.RunIndex,
		formatDuration(node.Start().Sub(origin)),
		formatDuration(node.Run.Duration),
		marker)

	lines := 1
	for _, child := range node.Children {
		lines += r.renderNode(child, origin)
	}
	return lines
}
