package ports

import (
	"context"

	"github.com/gitbrief/gitbrief/internal/domain/models"
)

// SummaryGenerator turns a non-empty event list into a short digest text.
// A failure is returned as-is; deciding what to publish instead is the
// caller's job.
type SummaryGenerator interface {
	GenerateDigest(ctx context.Context, events []models.Event) (string, error)
}
