package report

import (
	"fmt"
	"io"

	json "github.com/goccy/go-json"

	"github.com/flowlens/flowlens/internal/domain"
)

// JSONRenderer writes the whole analysis as one JSON document, the shape
// external plotting tools consume.
type JSONRenderer struct {
	w io.Writer
}

func NewJSONRenderer(w io.Writer) *JSONRenderer {
	return &JSONRenderer{w: w}
}

func (r *JSONRenderer) Render(analysis *domain.Analysis) error {
	data, err := json.MarshalIndent(analysis, "", "  ")
	if err != nil {
		return fmt.Errorf("encode analysis: %w", err)
	}

	if _, err := r.w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("write analysis: %w", err)
	}
	return nil
}
