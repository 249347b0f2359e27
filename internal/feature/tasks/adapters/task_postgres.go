// Package adapters はtasksフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"task_backend/internal/feature/tasks/domain/entity"
	"task_backend/internal/feature/tasks/usecase"
)

// taskPostgres はTaskRepositoryインターフェースのPostgreSQL実装です。
// GORMを使用してデータベース操作を行います。
type taskPostgres struct {
	db *gorm.DB
}

// taskPostgresがTaskRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.TaskRepository = (*taskPostgres)(nil)

// NewTaskPostgres は指定されたgorm.DB接続でtaskPostgresの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタです。
func NewTaskPostgres(db *gorm.DB) *taskPostgres {
	return &taskPostgres{db: db}
}

// FindAll は作成日時の降順でタスク一覧を返します。
// completedがnil以外の場合、完了状態でフィルタします。
func (r *taskPostgres) FindAll(ctx context.Context, completed *bool) ([]entity.Task, error) {
	q := r.db.WithContext(ctx).
		Preload("Assignee").
		Preload("Creator").
		Order("created_at DESC")
	if completed != nil {
		q = q.Where("is_completed = ?", *completed)
	}

	var tasks []entity.Task
	if err := q.Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// FindByID はAssignee/Creatorを結合したタスクを取得します。
// タスクが存在しない場合、usecase.ErrTaskNotFoundを返します。
func (r *taskPostgres) FindByID(ctx context.Context, id uint) (*entity.Task, error) {
	var t entity.Task
	if err := r.db.WithContext(ctx).
		Preload("Assignee").
		Preload("Creator").
		First(&t, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrTaskNotFound
		}
		return nil, err
	}
	return &t, nil
}

// Create はタスクをデータベースに追加します。
func (r *taskPostgres) Create(ctx context.Context, t *entity.Task) error {
	return r.db.WithContext(ctx).Create(t).Error
}

// Save は既存タスクの変更を永続化します。
// 結合済みのユーザーエンティティを誤って更新しないよう、関連は除外します。
func (r *taskPostgres) Save(ctx context.Context, t *entity.Task) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(t).Error
}

// Delete はIDでタスクを削除します。
// 対象が存在しない場合、usecase.ErrTaskNotFoundを返します。
func (r *taskPostgres) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&entity.Task{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrTaskNotFound
	}
	return nil
}
