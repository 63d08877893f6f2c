package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"youthcup_backend/internal/domain/entity"
	"youthcup_backend/internal/feature/auth/usecase"
	jwtmw "youthcup_backend/internal/platform/jwt"
)

// mockAuthUsecase is a mock implementation of the AuthUsecase interface.
type mockAuthUsecase struct {
	SignupFunc         func(ctx context.Context, name, email, password string) (*usecase.Result, error)
	LoginFunc          func(ctx context.Context, email, password string) (*usecase.Result, error)
	RefreshFunc        func(ctx context.Context, refreshToken string) (*usecase.TokenPair, error)
	LogoutFunc         func(ctx context.Context, refreshToken string) error
	ResetPasswordFunc  func(ctx context.Context, email string) error
	ChangePasswordFunc func(ctx context.Context, userID uint, oldPassword, newPassword string) error
	MeFunc             func(ctx context.Context, userID uint) (*entity.User, error)
}

func (m *mockAuthUsecase) Signup(ctx context.Context, name, email, password string) (*usecase.Result, error) {
	return m.SignupFunc(ctx, name, email, password)
}

func (m *mockAuthUsecase) Login(ctx context.Context, email, password string) (*usecase.Result, error) {
	return m.LoginFunc(ctx, email, password)
}

func (m *mockAuthUsecase) Refresh(ctx context.Context, refreshToken string) (*usecase.TokenPair, error) {
	return m.RefreshFunc(ctx, refreshToken)
}

func (m *mockAuthUsecase) Logout(ctx context.Context, refreshToken string) error {
	if m.LogoutFunc != nil {
		return m.LogoutFunc(ctx, refreshToken)
	}
	return nil
}

func (m *mockAuthUsecase) ResetPassword(ctx context.Context, email string) error {
	return m.ResetPasswordFunc(ctx, email)
}

func (m *mockAuthUsecase) ChangePassword(ctx context.Context, userID uint, oldPassword, newPassword string) error {
	return m.ChangePasswordFunc(ctx, userID, oldPassword, newPassword)
}

func (m *mockAuthUsecase) Me(ctx context.Context, userID uint) (*entity.User, error) {
	return m.MeFunc(ctx, userID)
}

func newRouter(h *AuthHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/signup", h.Signup)
	r.POST("/login", h.Login)
	r.POST("/logout", h.Logout)
	r.POST("/refresh-token", h.Refresh)
	r.POST("/reset-password", h.ResetPassword)

	authed := r.Group("/", func(c *gin.Context) {
		c.Set(jwtmw.ContextUserID, uint(7))
		c.Next()
	})
	authed.GET("/me", h.Me)
	authed.POST("/change-password", h.ChangePassword)
	r.GET("/me-anon", h.Me)
	return r
}

func do(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthHandler_Signup(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    gin.H
		mockSignupFunc func(ctx context.Context, name, email, password string) (*usecase.Result, error)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:        "success: user registration",
			requestBody: gin.H{"name": "Ana", "email": "test@example.com", "password": "password123"},
			mockSignupFunc: func(ctx context.Context, name, email, password string) (*usecase.Result, error) {
				return &usecase.Result{
					User:         &entity.User{ID: 1, Name: name, Email: email, Password: "hash", Role: entity.RoleCustomer},
					AccessToken:  "a",
					RefreshToken: "r",
				}, nil
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "failure: invalid email address",
			requestBody:    gin.H{"name": "Ana", "email": "invalid-email", "password": "password123"},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Field validation for 'Email' failed on the 'email' tag",
		},
		{
			name:           "failure: short password",
			requestBody:    gin.H{"name": "Ana", "email": "test@example.com", "password": "short"},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Field validation for 'Password' failed on the 'min' tag",
		},
		{
			name:        "failure: duplicate email (usecase error)",
			requestBody: gin.H{"name": "Ana", "email": "existing@example.com", "password": "password123"},
			mockSignupFunc: func(ctx context.Context, name, email, password string) (*usecase.Result, error) {
				return nil, usecase.ErrEmailAlreadyExists
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "email already exists",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRouter(NewAuthHandler(&mockAuthUsecase{SignupFunc: tt.mockSignupFunc}))

			w := do(r, http.MethodPost, "/signup", tt.requestBody)

			assert.Equal(t, tt.expectedStatus, w.Code)
			var body map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			if tt.expectedMsg != "" {
				assert.Contains(t, body["message"], tt.expectedMsg)
				return
			}
			user := body["user"].(map[string]any)
			assert.Equal(t, "Ana", user["name"])
			assert.NotContains(t, user, "password")
			assert.Equal(t, "a", body["accessToken"])
			assert.Equal(t, "r", body["refreshToken"])
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    gin.H
		mockLoginFunc  func(ctx context.Context, email, password string) (*usecase.Result, error)
		expectedStatus int
	}{
		{
			name:        "success: user login",
			requestBody: gin.H{"email": "test@example.com", "password": "password123"},
			mockLoginFunc: func(ctx context.Context, email, password string) (*usecase.Result, error) {
				return &usecase.Result{User: &entity.User{ID: 1, Email: email}, AccessToken: "a", RefreshToken: "r"}, nil
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "failure: missing password",
			requestBody:    gin.H{"email": "test@example.com"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "failure: wrong credentials",
			requestBody: gin.H{"email": "test@example.com", "password": "nope"},
			mockLoginFunc: func(ctx context.Context, email, password string) (*usecase.Result, error) {
				return nil, usecase.ErrInvalidCredentials
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:        "failure: storage error",
			requestBody: gin.H{"email": "test@example.com", "password": "password123"},
			mockLoginFunc: func(ctx context.Context, email, password string) (*usecase.Result, error) {
				return nil, errors.New("connection reset")
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRouter(NewAuthHandler(&mockAuthUsecase{LoginFunc: tt.mockLoginFunc}))

			w := do(r, http.MethodPost, "/login", tt.requestBody)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusInternalServerError {
				assert.JSONEq(t, `{"message":"internal server error"}`, w.Body.String())
			}
		})
	}
}

func TestAuthHandler_Refresh(t *testing.T) {
	uc := &mockAuthUsecase{
		RefreshFunc: func(ctx context.Context, refreshToken string) (*usecase.TokenPair, error) {
			if refreshToken == "good" {
				return &usecase.TokenPair{AccessToken: "a2", RefreshToken: "r2"}, nil
			}
			return nil, usecase.ErrInvalidRefreshToken
		},
	}
	r := newRouter(NewAuthHandler(uc))

	w := do(r, http.MethodPost, "/refresh-token", gin.H{"refreshToken": "good"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"accessToken":"a2","refreshToken":"r2"}`, w.Body.String())

	w = do(r, http.MethodPost, "/refresh-token", gin.H{"refreshToken": "stale"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(r, http.MethodPost, "/refresh-token", gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthHandler_Logout(t *testing.T) {
	var got []string
	uc := &mockAuthUsecase{
		LogoutFunc: func(ctx context.Context, refreshToken string) error {
			got = append(got, refreshToken)
			if refreshToken == "bad" {
				return usecase.ErrInvalidRefreshToken
			}
			return nil
		},
	}
	r := newRouter(NewAuthHandler(uc))

	assert.Equal(t, http.StatusOK, do(r, http.MethodPost, "/logout", gin.H{"refreshToken": "tok"}).Code)
	assert.Equal(t, http.StatusOK, do(r, http.MethodPost, "/logout", nil).Code)
	assert.Equal(t, http.StatusUnauthorized, do(r, http.MethodPost, "/logout", gin.H{"refreshToken": "bad"}).Code)
	assert.Equal(t, []string{"tok", "", "bad"}, got)
}

func TestAuthHandler_ResetPassword(t *testing.T) {
	uc := &mockAuthUsecase{
		ResetPasswordFunc: func(ctx context.Context, email string) error {
			if email == "ghost@example.com" {
				return usecase.ErrUserNotFound
			}
			return nil
		},
	}
	r := newRouter(NewAuthHandler(uc))

	assert.Equal(t, http.StatusOK, do(r, http.MethodPost, "/reset-password", gin.H{"email": "bo@example.com"}).Code)
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodPost, "/reset-password", gin.H{"email": "ghost@example.com"}).Code)
}

func TestAuthHandler_ChangePassword(t *testing.T) {
	uc := &mockAuthUsecase{
		ChangePasswordFunc: func(ctx context.Context, userID uint, oldPassword, newPassword string) error {
			assert.Equal(t, uint(7), userID)
			if oldPassword != "current-pw" {
				return usecase.ErrWrongPassword
			}
			return nil
		},
	}
	r := newRouter(NewAuthHandler(uc))

	w := do(r, http.MethodPost, "/change-password", gin.H{"oldPassword": "current-pw", "newPassword": "brand-new-pw"})
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodPost, "/change-password", gin.H{"oldPassword": "wrong", "newPassword": "brand-new-pw"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"message":"old password is incorrect"}`, w.Body.String())
}

func TestAuthHandler_Me(t *testing.T) {
	uc := &mockAuthUsecase{
		MeFunc: func(ctx context.Context, userID uint) (*entity.User, error) {
			return &entity.User{ID: userID, Name: "Ana", Email: "ana@example.com", Password: "secret-hash", Role: entity.RoleAdmin}, nil
		},
	}
	r := newRouter(NewAuthHandler(uc))

	w := do(r, http.MethodGet, "/me", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "secret-hash")
	assert.Contains(t, w.Body.String(), `"role":"admin"`)

	w = do(r, http.MethodGet, "/me-anon", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
