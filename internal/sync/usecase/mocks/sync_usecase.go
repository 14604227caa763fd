package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	syncDomain "github.com/lifelog-app/lifelog/internal/sync/domain"
)

// MockSyncUseCase is a mock implementation of usecase.SyncUseCase for testing.
type MockSyncUseCase struct {
	mock.Mock
}

// Pull mocks the Pull method of SyncUseCase.
func (m *MockSyncUseCase) Pull(ctx context.Context, cursor int64, limit int) (*syncDomain.PullResult, error) {
	args := m.Called(ctx, cursor, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*syncDomain.PullResult), args.Error(1)
}
