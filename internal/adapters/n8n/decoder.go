// Package n8n decodes n8n execution export documents into execution records.
// The export carries per-node run lists under data.resultData.runData with
// millisecond timestamps; node loops show up as multiple entries in one list.
package n8n

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	json "github.com/goccy/go-json"

	"github.com/flowlens/flowlens/internal/domain"
)

type Decoder struct {
	config domain.DecoderConfig
	logger *slog.Logger
}

func NewDecoder(config domain.DecoderConfig, logger *slog.Logger) *Decoder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Decoder{
		config: config,
		logger: logger.With("component", "n8n-decoder"),
	}
}

// flexID tolerates the export's habit of serializing IDs as either strings
// or numbers depending on the n8n version.
type flexID string

func (f *flexID) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`)
	if value == "null" {
		value = ""
	}
	*f = flexID(value)
	return nil
}

type exportDocument struct {
	ID           flexID `json:"id"`
	WorkflowID   flexID `json:"workflowId"`
	Status       string `json:"status"`
	StartedAt    string `json:"startedAt"`
	StoppedAt    string `json:"stoppedAt"`
	WorkflowData struct {
		Name string `json:"name"`
	} `json:"workflowData"`
	Data struct {
		ResultData struct {
			RunData map[string][]runEntry `json:"runData"`
		} `json:"resultData"`
	} `json:"data"`
}

type runEntry struct {
	StartTime       *int64       `json:"startTime"`
	ExecutionTime   *int64       `json:"executionTime"`
	ExecutionStatus string       `json:"executionStatus"`
	Source          []*runSource `json:"source"`
}

type runSource struct {
	PreviousNode    string `json:"previousNode"`
	PreviousNodeRun int    `json:"previousNodeRun"`
}

// Decode validates and converts one export document. Runs keep their export
// order, so run indices assigned downstream match n8n's own numbering.
func (d *Decoder) Decode(data []byte) (*domain.ExecutionRecord, error) {
	if !d.config.SkipValidation {
		if err := ValidateDocument(data); err != nil {
			return nil, err
		}
	}

	var doc exportDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode execution export: %w", err)
	}

	record := &domain.ExecutionRecord{
		Nodes: make(map[string][]domain.RunPayload, len(doc.Data.ResultData.RunData)),
		Info:  d.extractInfo(&doc),
	}

	for nodeName, entries := range doc.Data.ResultData.RunData {
		payloads := make([]domain.RunPayload, 0, len(entries))
		for _, entry := range entries {
			payloads = append(payloads, convertEntry(entry))
		}
		record.Nodes[nodeName] = payloads
	}

	d.logger.Debug("decoded execution export",
		"execution_id", record.Info.ExecutionID,
		"nodes", len(record.Nodes))

	return record, nil
}

func (d *Decoder) extractInfo(doc *exportDocument) *domain.ExecutionInfo {
	info := &domain.ExecutionInfo{
		ExecutionID:  string(doc.ID),
		WorkflowID:   string(doc.WorkflowID),
		WorkflowName: doc.WorkflowData.Name,
		Status:       doc.Status,
	}

	if t, err := parseExportTime(doc.StartedAt); err == nil {
		info.StartedAt = &t
	} else if doc.StartedAt != "" {
		d.logger.Warn("unparseable startedAt timestamp", "value", doc.StartedAt)
	}

	if t, err := parseExportTime(doc.StoppedAt); err == nil {
		info.StoppedAt = &t
	} else if doc.StoppedAt != "" {
		d.logger.Warn("unparseable stoppedAt timestamp", "value", doc.StoppedAt)
	}

	return info
}

func convertEntry(entry runEntry) domain.RunPayload {
	payload := domain.RunPayload{
		Failed: isFailedStatus(entry.ExecutionStatus),
	}

	if entry.StartTime != nil {
		start := time.UnixMilli(*entry.StartTime).UTC()
		payload.StartedAt = &start
	}

	if entry.ExecutionTime != nil {
		duration := time.Duration(*entry.ExecutionTime) * time.Millisecond
		payload.Duration = &duration
	}

	if len(entry.Source) > 0 && entry.Source[0] != nil && entry.Source[0].PreviousNode != "" {
		payload.Parent = &domain.ParentRef{
			NodeName: entry.Source[0].PreviousNode,
			RunIndex: entry.Source[0].PreviousNodeRun,
		}
	}

	return payload
}

// Anything not explicitly failed counts as success, matching the lenient
// status normalization of the collector.
func isFailedStatus(status string) bool {
	switch status {
	case "error", "failed", "crashed":
		return true
	default:
		return false
	}
}

func parseExportTime(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, fmt.Errorf("empty timestamp")
	}
	return time.Parse(time.RFC3339Nano, value)
}

// FileSource loads an execution record from an export file on disk.
type FileSource struct {
	path    string
	decoder *Decoder
}

func NewFileSource(path string, decoder *Decoder) *FileSource {
	return &FileSource{
		path:    path,
		decoder: decoder,
	}
}

func (s *FileSource) Load() (*domain.ExecutionRecord, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read execution export %s: %w", s.path, err)
	}
	return s.decoder.Decode(data)
}
