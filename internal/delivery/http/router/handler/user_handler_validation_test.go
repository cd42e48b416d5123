package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"wellkart/internal/delivery/http/validator"
	"wellkart/internal/domain/entity"
	domainerrors "wellkart/internal/domain/errors"
	"wellkart/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingUserUsecase counts how far a request makes it past the handler's
// input checks.
type recordingUserUsecase struct {
	registerCustomerCalls int
	loginCalls            int
}

func (s *recordingUserUsecase) RegisterCustomer(_ context.Context, input *usecase.RegisterCustomerInput) (*usecase.RegisterOutput, error) {
	s.registerCustomerCalls++
	return &usecase.RegisterOutput{User: &entity.User{Name: input.Name, Email: input.Email}}, nil
}

func (s *recordingUserUsecase) RegisterDoctor(_ context.Context, _ *usecase.RegisterDoctorInput) (*usecase.RegisterOutput, error) {
	return &usecase.RegisterOutput{User: &entity.User{}}, nil
}

func (s *recordingUserUsecase) RegisterInfluencer(_ context.Context, _ *usecase.RegisterInfluencerInput) (*usecase.RegisterOutput, error) {
	return &usecase.RegisterOutput{User: &entity.User{}}, nil
}

func (s *recordingUserUsecase) RegisterAdmin(_ context.Context, _ *usecase.RegisterAdminInput) (*usecase.RegisterOutput, error) {
	return &usecase.RegisterOutput{User: &entity.User{}}, nil
}

func (s *recordingUserUsecase) Login(_ context.Context, _ *usecase.LoginInput) (*usecase.LoginOutput, error) {
	s.loginCalls++
	return &usecase.LoginOutput{AccessToken: "access", RefreshToken: "refresh", User: &entity.User{}}, nil
}

func (s *recordingUserUsecase) RefreshToken(_ context.Context, _ *usecase.RefreshTokenInput) (*usecase.RefreshTokenOutput, error) {
	return &usecase.RefreshTokenOutput{AccessToken: "access"}, nil
}

func (s *recordingUserUsecase) Logout(_ context.Context, _ *usecase.LogoutInput) error {
	return nil
}

func newValidationTestContext(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestUserHandler_RegisterCustomer_EmptyEmailRejected(t *testing.T) {
	uc := &recordingUserUsecase{}
	h := &UserHandler{uc: uc}

	c, _ := newValidationTestContext(t, `{"name":"Asha Rao","email":"","password":"Str0ng!pass"}`)

	err := h.RegisterCustomer(c)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
	assert.Zero(t, uc.registerCustomerCalls)
}

func TestUserHandler_RegisterCustomer_MalformedEmailRejected(t *testing.T) {
	uc := &recordingUserUsecase{}
	h := &UserHandler{uc: uc}

	c, _ := newValidationTestContext(t, `{"name":"Asha Rao","email":"not-an-email","password":"Str0ng!pass"}`)

	err := h.RegisterCustomer(c)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
	assert.Zero(t, uc.registerCustomerCalls)
}

func TestUserHandler_RegisterCustomer_ValidBodyReachesUsecase(t *testing.T) {
	uc := &recordingUserUsecase{}
	h := &UserHandler{uc: uc}

	c, rec := newValidationTestContext(t, `{"name":"Asha Rao","email":"asha@example.com","password":"Str0ng!pass"}`)

	err := h.RegisterCustomer(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, 1, uc.registerCustomerCalls)
}

func TestUserHandler_Login_MissingPasswordRejected(t *testing.T) {
	uc := &recordingUserUsecase{}
	h := &UserHandler{uc: uc}

	c, _ := newValidationTestContext(t, `{"email":"asha@example.com"}`)

	err := h.Login(c)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
	assert.Zero(t, uc.loginCalls)
}
