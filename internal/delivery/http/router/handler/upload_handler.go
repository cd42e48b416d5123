package handler

import (
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"

	"wellkart/internal/delivery/http/response"
	"wellkart/internal/domain/service"
	"wellkart/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// maxUploadBytes caps a single uploaded file.
const maxUploadBytes = 10 << 20

// UploadHandler holds dependencies for file upload handlers.
type UploadHandler struct {
	uc     usecase.UploadUsecase
	logger *slog.Logger
}

// NewUploadHandler is the constructor for UploadHandler, injected by Fx.
func NewUploadHandler(uc usecase.UploadUsecase, logger *slog.Logger) *UploadHandler {
	return &UploadHandler{uc: uc, logger: logger}
}

// UploadImage stores a single multipart file from the "image" field.
func (h *UploadHandler) UploadImage(c echo.Context) error {
	header, err := c.FormFile("image")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Missing image file")
	}

	file, err := readMultipartFile(header)
	if err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Upload(c.Request().Context(), file)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Image uploaded successfully")
}

// UploadImages stores every multipart file from the "images" field.
// The batch is all-or-nothing.
func (h *UploadHandler) UploadImages(c echo.Context) error {
	form, err := c.MultipartForm()
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid multipart form")
	}

	headers := form.File["images"]
	if len(headers) == 0 {
		return response.BadRequest(c, "INVALID_INPUT", "Missing image files")
	}

	files := make([]*service.UploadedFile, 0, len(headers))
	for _, header := range headers {
		file, err := readMultipartFile(header)
		if err != nil {
			return errors.WithStack(err)
		}
		files = append(files, file)
	}

	outputs, err := h.uc.UploadMany(c.Request().Context(), files)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, outputs, "Images uploaded successfully")
}

// DeleteImage removes a previously uploaded file by its URL.
func (h *UploadHandler) DeleteImage(c echo.Context) error {
	var input struct {
		URL string `json:"url" validate:"required"`
	}
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid delete input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.Delete(c.Request().Context(), input.URL); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Image deleted"}, "Image deleted successfully")
}

func readMultipartFile(header *multipart.FileHeader) (*service.UploadedFile, error) {
	src, err := header.Open()
	if err != nil {
		return nil, errors.Wrap(err, "open multipart file")
	}
	defer func() { _ = src.Close() }()

	data, err := io.ReadAll(io.LimitReader(src, maxUploadBytes+1))
	if err != nil {
		return nil, errors.Wrap(err, "read multipart file")
	}

	return &service.UploadedFile{
		Name:        header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}
