// Package handler はauthフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"youthcup_backend/internal/domain/entity"
	"youthcup_backend/internal/feature/auth/transport/http/dto"
	"youthcup_backend/internal/feature/auth/usecase"
	"youthcup_backend/internal/platform/http/response"
	jwtmw "youthcup_backend/internal/platform/jwt"
	"youthcup_backend/internal/shared/apperror"
)

// AuthUsecase は認証操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type AuthUsecase interface {
	Signup(ctx context.Context, name, email, password string) (*usecase.Result, error)
	Login(ctx context.Context, email, password string) (*usecase.Result, error)
	Refresh(ctx context.Context, refreshToken string) (*usecase.TokenPair, error)
	Logout(ctx context.Context, refreshToken string) error
	ResetPassword(ctx context.Context, email string) error
	ChangePassword(ctx context.Context, userID uint, oldPassword, newPassword string) error
	Me(ctx context.Context, userID uint) (*entity.User, error)
}

var errNotAuthenticated = apperror.Unauthorized("not authenticated")

// AuthHandler は認証操作のHTTPリクエストを処理します。
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler はAuthHandlerの新しいインスタンスを生成します。
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Signup はユーザー登録APIエンドポイントを処理します。
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	res, err := h.auth.Signup(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		response.Error(c, err)
		return
	}
	slog.Info("user signup successful", "user_id", res.User.ID, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, authRes(res))
}

// Login はユーザーログインAPIエンドポイントを処理します。
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	res, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		response.Error(c, err)
		return
	}
	slog.Info("user login successful", "user_id", res.User.ID, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, authRes(res))
}

// Refresh rotates the refresh token.
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	pair, err := h.auth.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.TokenRes{AccessToken: pair.AccessToken, RefreshToken: pair.RefreshToken})
}

// Logout revokes the refresh token in the body, if any.
func (h *AuthHandler) Logout(c *gin.Context) {
	var req dto.LogoutReq
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.BindError(c, err)
			return
		}
	}
	if err := h.auth.Logout(c.Request.Context(), req.RefreshToken); err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Message{Message: "logged out"})
}

// ResetPassword emails a new password to the account owner.
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req dto.ResetPasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	if err := h.auth.ResetPassword(c.Request.Context(), req.Email); err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Message{Message: "a new password has been sent to your email"})
}

// ChangePassword requires an authenticated user.
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	userID, ok := jwtmw.UserIDFrom(c)
	if !ok {
		response.Error(c, errNotAuthenticated)
		return
	}
	var req dto.ChangePasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	if err := h.auth.ChangePassword(c.Request.Context(), userID, req.OldPassword, req.NewPassword); err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Message{Message: "password updated"})
}

// Me returns the authenticated user without the password.
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := jwtmw.UserIDFrom(c)
	if !ok {
		response.Error(c, errNotAuthenticated)
		return
	}
	user, err := h.auth.Me(c.Request.Context(), userID)
	if err != nil {
		if apperror.KindOf(err) == apperror.KindNotFound {
			err = errNotAuthenticated
		}
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewUserRes(user))
}

func authRes(res *usecase.Result) dto.AuthRes {
	return dto.AuthRes{
		User:         dto.NewUserRes(res.User),
		AccessToken:  res.AccessToken,
		RefreshToken: res.RefreshToken,
	}
}
