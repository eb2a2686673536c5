package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"github.com/khdiyz/media-service/internal/storage"
)

// MockStorage is a mock implementation of storage.Storage.
type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) Upload(ctx context.Context, body io.Reader, fileName string) (*storage.UploadResult, error) {
	args := m.Called(ctx, body, fileName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*storage.UploadResult), args.Error(1)
}

func (m *MockStorage) Delete(ctx context.Context, assetURL string, opts storage.DeleteOptions) (storage.DeleteResult, error) {
	args := m.Called(ctx, assetURL, opts)
	return args.Get(0).(storage.DeleteResult), args.Error(1)
}
