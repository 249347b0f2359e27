// Package handler はauthフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"task_backend/internal/feature/auth/domain/entity"
	"task_backend/internal/feature/auth/transport/http/dto"
	"task_backend/internal/feature/auth/usecase"
	"task_backend/internal/shared/validation"
)

// AuthUsecase は認証操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type AuthUsecase interface {
	// Register は指定された名前・メールアドレス・パスワードで新規ユーザーを登録します。
	Register(ctx context.Context, fname, lname, email, password string) (*entity.User, error)
	// Login はユーザーを認証し、成功時にユーザーとJWTトークンを返します。
	Login(ctx context.Context, email, password string) (*entity.User, string, error)
}

// AuthHandler は認証操作のHTTPリクエストを処理します。
// AuthUsecaseインターフェースに依存し、JSONリクエスト/レスポンスを処理します。
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler はAuthHandlerの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタで、外部からAuthUsecaseを注入します。
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Register はユーザー登録APIエンドポイントを処理します。
// - リクエストJSONをRegisterReqにバインド
// - バリデーションエラー時はフィールド別エラー付きで422を返却
// - メールアドレス重複時は409を返却
// - 成功時は作成したユーザー付きで200を返却
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		verr := validation.FromBindError(err)
		slog.Warn("register validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": verr.Fields})
		return
	}

	user, err := h.auth.Register(c.Request.Context(), req.Fname, req.Lname, req.Email, req.Password)
	if err != nil {
		var verr *validation.Error
		switch {
		case errors.As(err, &verr):
			slog.Warn("register validation failed", "error", err, "remote_addr", c.ClientIP())
			c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": verr.Fields})
		case errors.Is(err, usecase.ErrEmailAlreadyExists):
			slog.Warn("register rejected: email taken", "email", req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
		default:
			slog.Error("register failed", "error", err, "remote_addr", c.ClientIP())
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	slog.Info("user registered", "user_id", user.ID, "email", user.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.RegisterResp{
		Message: "User created successfully",
		User:    dto.NewUserSummary(user),
	})
}

// Login はユーザーログインAPIエンドポイントを処理します。
// - リクエストJSONをLoginReqにバインド
// - バリデーションエラー時は422を返却
// - 認証失敗時は401を返却（存在しないユーザーとパスワード不一致を区別しない）
// - 認証成功時はJWTトークン付きで200を返却
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		verr := validation.FromBindError(err)
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": verr.Fields})
		return
	}

	user, token, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			// ユーザー列挙攻撃を防止するため、失敗理由を公開しない
			slog.Warn("login failed", "email", req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}
		slog.Error("login failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	slog.Info("user login successful", "user_id", user.ID, "email", user.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.LoginResp{
		Message: "Login successful",
		User:    dto.NewUserSummary(user),
		Token:   token,
	})
}
