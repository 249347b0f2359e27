package main

import (
	"log"
	"os"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"task_backend/internal/app/router"
	authadapters "task_backend/internal/feature/auth/adapters"
	authhandler "task_backend/internal/feature/auth/transport/handler"
	authusecase "task_backend/internal/feature/auth/usecase"
	taskadapters "task_backend/internal/feature/tasks/adapters"
	taskhandler "task_backend/internal/feature/tasks/transport/handler"
	taskusecase "task_backend/internal/feature/tasks/usecase"
	userlistadapters "task_backend/internal/feature/userlist/adapters"
	userlisthandler "task_backend/internal/feature/userlist/transport/handler"
	userlistusecase "task_backend/internal/feature/userlist/usecase"
	"task_backend/internal/platform/cache"
	platformdb "task_backend/internal/platform/db"
	jwtmw "task_backend/internal/platform/jwt"
	platformredis "task_backend/internal/platform/redis"
)

const tokenLifetime = 7 * 24 * time.Hour

func main() {
	// db
	db := platformdb.OpenDB()

	// Redis
	var rdb *redisv9.Client
	if tmp, err := platformredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// JWT_SECRETチェック（開発中の注意喚起）
	secret := os.Getenv(jwtmw.EnvKeyJWTSecret)
	if secret == "" {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}

	// Repository
	userRepo := authadapters.NewUserPostgres(db)
	taskRepo := taskadapters.NewTaskPostgres(db)
	directoryRepo := userlistadapters.NewUserListPostgres(db)

	// Redisキャッシュでラップ（未設定時は素通し）
	cachedDirectory := cache.NewCachingUserDirectory(rdb, time.Minute, directoryRepo, "users")

	// Usecase
	tokenGen := jwtmw.NewGenerator(secret, tokenLifetime)
	authUC := authusecase.NewAuthUsecase(userRepo, tokenGen)
	taskUC := taskusecase.NewTaskUsecase(taskRepo)
	userListUC := userlistusecase.NewUserListUsecase(cachedDirectory)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	taskH := taskhandler.NewTaskHandler(taskUC)
	userH := userlisthandler.NewUserHandler(userListUC)

	// ルータ生成
	r := router.NewRouter(authH, taskH, userH, userRepo)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
