// Package adapters はuserlistフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"

	"gorm.io/gorm"

	"task_backend/internal/feature/auth/domain/entity"
	"task_backend/internal/feature/userlist/usecase"
)

// userListPostgres はUserDirectoryRepositoryインターフェースのPostgreSQL実装です。
type userListPostgres struct {
	db *gorm.DB
}

var _ usecase.UserDirectoryRepository = (*userListPostgres)(nil)

// NewUserListPostgres は指定されたDB接続でuserListPostgresリポジトリの新しいインスタンスを生成します。
func NewUserListPostgres(db *gorm.DB) *userListPostgres {
	return &userListPostgres{db: db}
}

// ListAll はfname昇順ですべてのユーザーを返します。
// 認証情報（パスワードハッシュ）は読み込みません。
func (r *userListPostgres) ListAll(ctx context.Context) ([]entity.User, error) {
	var users []entity.User
	if err := r.db.WithContext(ctx).
		Select("id", "fname", "lname", "email").
		Order("fname ASC").
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
