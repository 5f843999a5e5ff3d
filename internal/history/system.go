// Package history records completed analyses in PostgreSQL and serves them
// back as a paginated, searchable list.
package history

import (
	"context"

	"github.com/google/uuid"

	"github.com/JaimeStill/opiniao/internal/analysis"
	"github.com/JaimeStill/opiniao/pkg/pagination"
)

// System defines the public contract for analysis history operations.
type System interface {
	Handler() *Handler

	Record(ctx context.Context, a *analysis.Analysis) error

	List(
		ctx context.Context,
		page pagination.PageRequest,
		filters Filters,
	) (*pagination.PageResult[analysis.Analysis], error)

	Find(ctx context.Context, id uuid.UUID) (*analysis.Analysis, error)
}
