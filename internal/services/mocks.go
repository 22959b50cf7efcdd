package services

import (
	"context"

	"github.com/gitbrief/gitbrief/internal/domain/models"
	"github.com/stretchr/testify/mock"
)

type (
	MockActivityFetcher struct {
		mock.Mock
	}

	MockSummaryGenerator struct {
		mock.Mock
	}

	MockNotifier struct {
		mock.Mock
	}
)

func (m *MockActivityFetcher) FetchEvents(ctx context.Context) ([]models.Event, error) {
	args := m.Called(ctx)
	var events []models.Event
	if args.Get(0) != nil {
		events = args.Get(0).([]models.Event)
	}
	return events, args.Error(1)
}

func (m *MockSummaryGenerator) GenerateDigest(ctx context.Context, events []models.Event) (string, error) {
	args := m.Called(ctx, events)
	return args.String(0), args.Error(1)
}

func (m *MockNotifier) SendDigest(ctx context.Context, message string) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

func (m *MockNotifier) SendError(ctx context.Context, runErr error) error {
	args := m.Called(ctx, runErr)
	return args.Error(0)
}
