package ports

import (
	"github.com/flowlens/flowlens/internal/domain"
)

// RecordSource supplies one fully materialized execution record. Fetching,
// decoding and validation all happen behind this boundary; the analysis core
// only ever sees the finished record.
type RecordSource interface {
	Load() (*domain.ExecutionRecord, error)
}
