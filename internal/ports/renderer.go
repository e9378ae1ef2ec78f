package ports

import (
	"github.com/flowlens/flowlens/internal/domain"
)

// Renderer consumes a finished analysis. The analysis is handed over whole;
// renderers may keep or discard it but never feed anything back into the
// core.
type Renderer interface {
	Render(analysis *domain.Analysis) error
}
