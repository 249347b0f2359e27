package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"task_backend/internal/feature/auth/domain/entity"
	"task_backend/internal/feature/userlist/transport/http/dto"
)

// UserListUsecase はユーザーディレクトリに関するユースケースのインターフェースです。
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type UserListUsecase interface {
	ListUsers(ctx context.Context) ([]entity.User, error)
}

// UserHandler はユーザーディレクトリに関するHTTPリクエストを処理します。
type UserHandler struct {
	uc UserListUsecase
}

// NewUserHandler は新しい UserHandler を作成します。
func NewUserHandler(uc UserListUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

// List は登録済みユーザーの一覧を取得するAPIです。
// Usecaseを呼び出してユーザー一覧を取得し、DTOに変換してJSONレスポンスとして返します。
// Usecaseでエラーが発生した場合は500 Internal Server Errorを返します。
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.uc.ListUsers(c.Request.Context())
	if err != nil {
		slog.Error("user list failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	out := make([]dto.UserItem, 0, len(users))
	for _, u := range users {
		out = append(out, dto.UserItem{ID: u.ID, Fname: u.Fname, Lname: u.Lname, Email: u.Email})
	}
	c.JSON(http.StatusOK, gin.H{"users": out})
}
