package impl

import (
	"context"
	"testing"

	domainerrors "wellkart/internal/domain/errors"
	"wellkart/internal/domain/service"
	mockSvc "wellkart/internal/mocks/service"
	"wellkart/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// uploadServiceFixtures holds all test dependencies for upload service tests.
type uploadServiceFixtures struct {
	service usecase.UploadUsecase
	storage *mockSvc.MockFileStorage
}

func createTestUploadService(t *testing.T) uploadServiceFixtures {
	storage := mockSvc.NewMockFileStorage(t)

	service := NewUploadService(storage, newDiscardLogger())

	return uploadServiceFixtures{
		service: service,
		storage: storage,
	}
}

func newTestUpload(name string) *service.UploadedFile {
	return &service.UploadedFile{
		Name:        name,
		ContentType: "image/png",
		Data:        []byte{0x89, 0x50, 0x4e, 0x47},
	}
}

func TestUploadService_Upload_Success(t *testing.T) {
	fx := createTestUploadService(t)

	ctx := context.Background()
	file := newTestUpload("banner.png")

	fx.storage.EXPECT().Upload(ctx, file).Return("https://cdn.example.com/banner.png", nil)

	output, err := fx.service.Upload(ctx, file)

	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/banner.png", output.URL)
}

func TestUploadService_Upload_EmptyPayload(t *testing.T) {
	fx := createTestUploadService(t)

	output, err := fx.service.Upload(context.Background(), &service.UploadedFile{Name: "empty.png"})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestUploadService_UploadMany_AllOrNothing(t *testing.T) {
	fx := createTestUploadService(t)

	ctx := context.Background()
	first := newTestUpload("one.png")
	second := newTestUpload("two.png")

	fx.storage.EXPECT().Upload(ctx, first).Return("https://cdn.example.com/one.png", nil)
	fx.storage.EXPECT().Upload(ctx, second).Return("", errors.New("bucket unavailable"))
	// The already stored file is rolled back.
	fx.storage.EXPECT().Delete(ctx, "https://cdn.example.com/one.png").Return(nil)

	outputs, err := fx.service.UploadMany(ctx, []*service.UploadedFile{first, second})

	require.Error(t, err)
	assert.Nil(t, outputs)
}

func TestUploadService_UploadMany_Success(t *testing.T) {
	fx := createTestUploadService(t)

	ctx := context.Background()
	first := newTestUpload("one.png")
	second := newTestUpload("two.png")

	fx.storage.EXPECT().Upload(ctx, first).Return("https://cdn.example.com/one.png", nil)
	fx.storage.EXPECT().Upload(ctx, second).Return("https://cdn.example.com/two.png", nil)

	outputs, err := fx.service.UploadMany(ctx, []*service.UploadedFile{first, second})

	require.NoError(t, err)
	require.Len(t, outputs, 2)
	assert.Equal(t, "https://cdn.example.com/one.png", outputs[0].URL)
	assert.Equal(t, "https://cdn.example.com/two.png", outputs[1].URL)
}

func TestUploadService_UploadMany_NoFiles(t *testing.T) {
	fx := createTestUploadService(t)

	outputs, err := fx.service.UploadMany(context.Background(), nil)

	require.Error(t, err)
	assert.Nil(t, outputs)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestUploadService_Delete_Success(t *testing.T) {
	fx := createTestUploadService(t)

	ctx := context.Background()

	fx.storage.EXPECT().Delete(ctx, "https://cdn.example.com/banner.png").Return(nil)

	err := fx.service.Delete(ctx, "https://cdn.example.com/banner.png")

	require.NoError(t, err)
}
