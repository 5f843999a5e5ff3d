package history

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/JaimeStill/opiniao/internal/analysis"
	"github.com/JaimeStill/opiniao/pkg/database"
	"github.com/JaimeStill/opiniao/pkg/pagination"
	"github.com/JaimeStill/opiniao/pkg/query"
	"github.com/JaimeStill/opiniao/pkg/repository"
)

const insertAnalysis = `
	INSERT INTO analyses(id, review, normalized, sentiment, label, confidence, prob_negative, prob_positive, language, warning, analyzed_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

var storeErrors = repository.Errors{
	NotFound:  ErrNotFound,
	Duplicate: ErrDuplicate,
	Rejected:  ErrRejected,
}

type repo struct {
	db         database.System
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates a history repository implementing the System interface.
func New(
	db database.System,
	logger *slog.Logger,
	pagination pagination.Config,
) System {
	return &repo{
		db:         db,
		logger:     logger.With("system", "history"),
		pagination: pagination,
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger, r.pagination)
}

func (r *repo) Record(ctx context.Context, a *analysis.Analysis) error {
	if !r.db.Ready() {
		return database.ErrNotReady
	}

	err := repository.ExecExpectOne(
		ctx, r.db.Connection(), insertAnalysis,
		a.ID,
		a.Review,
		a.Normalized,
		a.Sentiment,
		a.Label,
		a.Confidence,
		a.Probabilities.Negative,
		a.Probabilities.Positive,
		a.Language,
		a.Warning,
		a.AnalyzedAt,
	)
	if err != nil {
		return repository.MapError(err, storeErrors)
	}

	r.logger.Debug("analysis recorded", "id", a.ID)
	return nil
}

func (r *repo) List(
	ctx context.Context,
	page pagination.PageRequest,
	filters Filters,
) (*pagination.PageResult[analysis.Analysis], error) {
	if !r.db.Ready() {
		return nil, database.ErrNotReady
	}

	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "Review", "Normalized")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)

	return repository.WithTx(ctx, r.db.Connection(), repository.ReadSnapshot,
		func(tx *sql.Tx) (*pagination.PageResult[analysis.Analysis], error) {
			var total int
			if err := tx.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
				return nil, fmt.Errorf("count analyses: %w", err)
			}

			items, err := repository.QueryMany(ctx, tx, pageSQL, pageArgs, scanAnalysis)
			if err != nil {
				return nil, fmt.Errorf("query analyses: %w", err)
			}

			result := pagination.NewPageResult(items, total, page.Page, page.PageSize)
			return &result, nil
		},
	)
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*analysis.Analysis, error) {
	if !r.db.Ready() {
		return nil, database.ErrNotReady
	}

	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	a, err := repository.QueryOne(ctx, r.db.Connection(), q, args, scanAnalysis)
	if err != nil {
		return nil, repository.MapError(err, storeErrors)
	}
	return &a, nil
}
