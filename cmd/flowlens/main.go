package main

import (
	"fmt"
	"os"

	"github.com/flowlens/flowlens"
	"github.com/flowlens/flowlens/internal/adapters/n8n"
	"github.com/flowlens/flowlens/internal/adapters/report"
	"github.com/flowlens/flowlens/internal/core"
	"github.com/flowlens/flowlens/internal/domain"
	"github.com/flowlens/flowlens/internal/ports"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	command := os.Args[1]
	if command == "-v" || command == "--version" || command == "version" {
		fmt.Println("flowlens " + flowlens.Version)
		return
	}

	if len(os.Args) < 3 {
		usage()
		os.Exit(1)
	}
	exportPath := os.Args[2]

	configPath := ""
	if len(os.Args) > 3 {
		configPath = os.Args[3]
	}

	config, err := domain.LoadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "flowlens: %v\n", err)
		os.Exit(1)
	}

	switch command {
	case "analyze":
		run(exportPath, config, report.NewTextRenderer(os.Stdout, config.Report, config.Logger))
	case "timeline":
		run(exportPath, config, report.NewTimelineRenderer(os.Stdout, config.Timeline, config.Logger))
	case "export":
		run(exportPath, config, report.NewJSONRenderer(os.Stdout))
	case "validate":
		data, err := os.ReadFile(exportPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "flowlens: %v\n", err)
			os.Exit(1)
		}
		if err := n8n.ValidateDocument(data); err != nil {
			fmt.Fprintf(os.Stderr, "flowlens: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("execution export is valid: %s\n", exportPath)
	default:
		usage()
		os.Exit(1)
	}
}

func run(exportPath string, config *domain.Config, renderer ports.Renderer) {
	source := n8n.NewFileSource(exportPath, n8n.NewDecoder(config.Decoder, config.Logger))

	record, err := source.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "flowlens: %v\n", err)
		os.Exit(1)
	}

	analysis, err := core.Analyze(record)
	if err != nil {
		fmt.Fprintf(os.Stderr, "flowlens: %v\n", err)
		os.Exit(1)
	}

	if err := renderer.Render(analysis); err != nil {
		fmt.Fprintf(os.Stderr, "flowlens: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `flowlens - single-execution workflow timing analyzer

Usage:
  flowlens analyze  <export.json> [config.yaml]   per-node summary statistics
  flowlens timeline <export.json> [config.yaml]   reconstructed call timeline
  flowlens export   <export.json> [config.yaml]   full analysis as JSON
  flowlens validate <export.json>                 check an export document
  flowlens version`)
}
