package domain

import (
	"log/slog"
	"os"

	"dario.cat/mergo"
)

func DefaultConfig() *Config {
	return &Config{
		Logger:   slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})),
		Report:   DefaultReportConfig(),
		Timeline: DefaultTimelineConfig(),
		Decoder:  DefaultDecoderConfig(),
	}
}

func DefaultReportConfig() ReportConfig {
	return ReportConfig{
		SortBy:   SortByName,
		TopN:     0,
		ShowRuns: true,
	}
}

func DefaultTimelineConfig() TimelineConfig {
	return TimelineConfig{
		MaxDepth: 0,
		Indent:   "  ",
	}
}

func DefaultDecoderConfig() DecoderConfig {
	return DecoderConfig{
		SkipValidation: false,
	}
}

// ApplyOverrides layers non-zero fields of overrides on top of c. The
// receiver is modified in place; overrides is left untouched.
func (c *Config) ApplyOverrides(overrides *Config) error {
	if overrides == nil {
		return nil
	}

	if err := mergo.Merge(c, *overrides, mergo.WithOverride); err != nil {
		return err
	}

	return c.Validate()
}
