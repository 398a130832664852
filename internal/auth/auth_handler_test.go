package auth_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"go-benefits/internal/auth"
	autherrors "go-benefits/internal/auth/errors"
	authMock "go-benefits/internal/auth/mock"
	"go-benefits/internal/shared/apperror"
)

func setupAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func TestAuthHandler_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := authMock.NewMockService(ctrl)
	handler := auth.NewHandler(mockService)
	router := setupAuthRouter()
	router.POST("/register", handler.Register)

	t.Run("created with envelope", func(t *testing.T) {
		companyID := uuid.NewString()
		reqBody := auth.RegisterRequest{
			Email:     "worker@acme.test",
			Password:  "secret123",
			Name:      "Worker",
			Role:      "employee",
			CompanyID: &companyID,
		}
		body, _ := json.Marshal(reqBody)

		mockService.EXPECT().
			Register(gomock.Any(), reqBody).
			Return(auth.AuthResponse{AccessToken: "token-abc", TokenType: "bearer"}, nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/register", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var envelope map[string]any
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
		assert.Equal(t, true, envelope["ok"])
		data := envelope["data"].(map[string]any)
		assert.Equal(t, "token-abc", data["access_token"])
		assert.Equal(t, "bearer", data["token_type"])
	})

	t.Run("invalid role fails binding", func(t *testing.T) {
		body := []byte(`{"email":"x@y.test","password":"secret123","name":"X","role":"owner"}`)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/register", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var envelope map[string]any
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
		assert.Equal(t, false, envelope["ok"])
		errObj := envelope["error"].(map[string]any)
		assert.Equal(t, apperror.CodeInvalidInput, errObj["code"])
		assert.Contains(t, errObj["message"], "is invalid")
	})

	t.Run("duplicate email surfaces as 409", func(t *testing.T) {
		reqBody := auth.RegisterRequest{
			Email:    "taken@acme.test",
			Password: "secret123",
			Name:     "Taken",
			Role:     "company_admin",
		}
		body, _ := json.Marshal(reqBody)

		mockService.EXPECT().
			Register(gomock.Any(), reqBody).
			Return(auth.AuthResponse{}, autherrors.ErrEmailAlreadyRegistered)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/register", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestAuthHandler_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := authMock.NewMockService(ctrl)
	handler := auth.NewHandler(mockService)
	router := setupAuthRouter()
	router.POST("/login", handler.Login)

	t.Run("bad credentials surface as 401", func(t *testing.T) {
		reqBody := auth.LoginRequest{Email: "worker@acme.test", Password: "wrong"}
		body, _ := json.Marshal(reqBody)

		mockService.EXPECT().
			Login(gomock.Any(), reqBody).
			Return(auth.AuthResponse{}, autherrors.ErrInvalidCredentials)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/login", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)

		var envelope map[string]any
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
		assert.Equal(t, false, envelope["ok"])
	})

	t.Run("missing email fails binding", func(t *testing.T) {
		body := []byte(`{"password":"secret123"}`)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/login", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
