package http

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"wellkart/config"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterUploadRoute_DiskFilesAreServed(t *testing.T) {
	dir := t.TempDir()
	payload := []byte("fake png bytes")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "product-1.png"), payload, 0o644))

	e := echo.New()
	registerUploadRoute(e, &config.StorageConfig{
		Provider:      "disk",
		DiskPath:      dir,
		PublicBaseURL: "http://localhost:8080/uploads",
	})

	req := httptest.NewRequest(http.MethodGet, "/uploads/product-1.png", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, payload, rec.Body.Bytes())
}

func TestRegisterUploadRoute_PrefixFollowsPublicBaseURL(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "banner.jpg"), []byte("jpg"), 0o644))

	e := echo.New()
	registerUploadRoute(e, &config.StorageConfig{
		Provider:      "disk",
		DiskPath:      dir,
		PublicBaseURL: "https://shop.example.com/static/files",
	})

	req := httptest.NewRequest(http.MethodGet, "/static/files/banner.jpg", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRegisterUploadRoute_S3ProviderRegistersNothing(t *testing.T) {
	e := echo.New()
	registerUploadRoute(e, &config.StorageConfig{
		Provider: "s3",
		Bucket:   "wellkart-media",
		Region:   "ap-south-1",
	})

	req := httptest.NewRequest(http.MethodGet, "/uploads/anything.png", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
