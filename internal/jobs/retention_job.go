package jobs

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/chembio-ls/quotation-api/internal/config"
	"github.com/chembio-ls/quotation-api/internal/repository"
	"github.com/chembio-ls/quotation-api/internal/storage"
)

// RetentionJob prunes archived export files past the retention window.
// Only the archived render and its record are removed; the quotation
// itself is never touched, so a pruned document can be re-exported.
type RetentionJob struct {
	documentRepo *repository.ExportedDocumentRepository
	store        storage.Storage
	maxAge       time.Duration
	logger       *zap.Logger
}

// NewRetentionJob creates an export retention job.
func NewRetentionJob(
	documentRepo *repository.ExportedDocumentRepository,
	store storage.Storage,
	cfg *config.RetentionConfig,
	logger *zap.Logger,
) *RetentionJob {
	return &RetentionJob{
		documentRepo: documentRepo,
		store:        store,
		maxAge:       cfg.MaxAge(),
		logger:       logger,
	}
}

// Run deletes expired archives. Each document is removed from storage
// first and from the table after, so a failed storage delete leaves the
// record for the next sweep.
func (j *RetentionJob) Run(ctx context.Context) {
	cutoff := time.Now().Add(-j.maxAge)

	docs, err := j.documentRepo.ListOlderThan(ctx, cutoff)
	if err != nil {
		j.logger.Error("failed to list expired exports", zap.Error(err))
		return
	}
	if len(docs) == 0 {
		return
	}

	pruned := 0
	for _, doc := range docs {
		if err := j.store.Delete(ctx, doc.StoragePath); err != nil {
			j.logger.Warn("failed to delete archived export",
				zap.String("storage_path", doc.StoragePath),
				zap.Error(err))
			continue
		}
		if err := j.documentRepo.Delete(ctx, doc.ID); err != nil {
			j.logger.Warn("failed to delete export record",
				zap.String("document_id", doc.ID.String()),
				zap.Error(err))
			continue
		}
		pruned++
	}

	j.logger.Info("export retention sweep finished",
		zap.Int("expired", len(docs)),
		zap.Int("pruned", pruned),
		zap.Time("cutoff", cutoff))
}
