package domain

import (
	"fmt"
	"log/slog"
	"time"
)

type SortOrder string

const (
	SortByName  SortOrder = "name"
	SortByTotal SortOrder = "total"
	SortByAvg   SortOrder = "avg"
	SortByCount SortOrder = "count"
)

// Config controls the presentation collaborators. The analysis core itself
// takes no configuration; everything here belongs to rendering and decoding.
type Config struct {
	Logger *slog.Logger `json:"-" yaml:"-"`

	Report   ReportConfig   `json:"report" yaml:"report"`
	Timeline TimelineConfig `json:"timeline" yaml:"timeline"`
	Decoder  DecoderConfig  `json:"decoder" yaml:"decoder"`
}

type ReportConfig struct {
	SortBy   SortOrder `json:"sort_by" yaml:"sort_by"`
	TopN     int       `json:"top_n" yaml:"top_n"`
	ShowRuns bool      `json:"show_runs" yaml:"show_runs"`
}

type TimelineConfig struct {
	MaxDepth int    `json:"max_depth" yaml:"max_depth"`
	Indent   string `json:"indent" yaml:"indent"`
}

type DecoderConfig struct {
	SkipValidation bool `json:"skip_validation" yaml:"skip_validation"`
}

func (c *Config) Validate() error {
	switch c.Report.SortBy {
	case SortByName, SortByTotal, SortByAvg, SortByCount:
	default:
		return fmt.Errorf("%w: unknown report sort order %q", ErrInvalidConfig, c.Report.SortBy)
	}

	if c.Report.TopN < 0 {
		return fmt.Errorf("%w: report top_n must be >= 0, got %d", ErrInvalidConfig, c.Report.TopN)
	}

	if c.Timeline.MaxDepth < 0 {
		return fmt.Errorf("%w: timeline max_depth must be >= 0, got %d", ErrInvalidConfig, c.Timeline.MaxDepth)
	}

	return nil
}

// DurationPrecision is the display rounding applied by renderers; the core
// never rounds.
const DurationPrecision = time.Millisecond
