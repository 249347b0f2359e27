package router

import (
	"github.com/gin-gonic/gin"

	authhandler "task_backend/internal/feature/auth/transport/handler"
	taskhandler "task_backend/internal/feature/tasks/transport/handler"
	userhandler "task_backend/internal/feature/userlist/transport/handler"
	healthhandler "task_backend/internal/platform/http/handler"
	jwtmw "task_backend/internal/platform/jwt"
)

func NewRouter(auth *authhandler.AuthHandler, tasks *taskhandler.TaskHandler,
	users *userhandler.UserHandler, finder jwtmw.UserFinder) *gin.Engine {
	r := gin.Default()

	// 認証不要
	// 導通確認用
	r.GET("/healthz", healthhandler.Health)
	// 新規ユーザー登録
	r.POST("/api/auth/register", auth.Register)
	// ログイン（JWT 発行）
	r.POST("/api/auth/login", auth.Login)

	// 認証必須のルート
	// jwtmw.AuthRequired() ミドルウェアを適用
	// → リクエストヘッダーに JWT が必要になる
	api := r.Group("/api")
	api.Use(jwtmw.AuthRequired(finder))
	{
		api.GET("/tasks", tasks.List)
		api.GET("/tasks/:id", tasks.GetByID)
		api.POST("/tasks", tasks.Create)
		api.PUT("/tasks/:id", tasks.Update)
		api.DELETE("/tasks/:id", tasks.Delete)
		api.PATCH("/tasks/:id/toggle", tasks.ToggleCompletion)
		api.GET("/users", users.List)
	}

	return r
}
