package ports

import (
	"context"

	"github.com/gitbrief/gitbrief/internal/domain/models"
)

// ActivityFetcher retrieves the user's recent events from the VCS provider,
// already projected into the digest model, in the order the provider reports
// them (typically newest first).
type ActivityFetcher interface {
	FetchEvents(ctx context.Context) ([]models.Event, error)
}
