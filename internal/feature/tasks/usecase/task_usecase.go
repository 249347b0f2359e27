// Package usecase はtasksフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"strings"
	"time"

	"task_backend/internal/feature/tasks/domain/entity"
	"task_backend/internal/shared/validation"
)

// Status filter values accepted by List.
const (
	StatusCompleted = "completed"
	StatusPending   = "pending"
)

// TaskRepository はタスクエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type TaskRepository interface {
	// FindAll は作成日時の降順で、Assignee/Creatorを結合したタスク一覧を返します。
	// completedがnil以外の場合、完了状態でフィルタします。
	FindAll(ctx context.Context, completed *bool) ([]entity.Task, error)

	// FindByID はAssignee/Creatorを結合したタスクを取得します。
	// タスクが存在しない場合、ErrTaskNotFoundを返します。
	FindByID(ctx context.Context, id uint) (*entity.Task, error)

	// Create は新しいタスクをストレージに永続化します。
	Create(ctx context.Context, t *entity.Task) error

	// Save は既存タスクの変更を永続化します。関連エンティティは更新しません。
	Save(ctx context.Context, t *entity.Task) error

	// Delete はIDでタスクを削除します。
	// タスクが存在しない場合、ErrTaskNotFoundを返します。
	Delete(ctx context.Context, id uint) error
}

// CreateTaskInput carries the client-supplied fields for task creation.
// The creator is never part of the input; it always comes from the
// authenticated caller.
type CreateTaskInput struct {
	Title       string
	Description string
	DueDate     *time.Time
	AssignedTo  *uint
}

// UpdateTaskPatch is a partial update. A nil Title/Description/IsCompleted
// was absent from the request and leaves the stored value untouched. The
// nullable columns carry an explicit Set flag instead: when the flag is true
// the value is applied even if it is nil, which clears the column.
type UpdateTaskPatch struct {
	Title       *string
	Description *string
	IsCompleted *bool

	DueDate    *time.Time
	DueDateSet bool

	AssignedTo    *uint
	AssignedToSet bool
}

// taskUsecase はタスクのビジネスロジックを実装します。
type taskUsecase struct {
	tasks TaskRepository
}

// NewTaskUsecase はtaskUsecaseの新しいインスタンスを生成します。
func NewTaskUsecase(tasks TaskRepository) *taskUsecase {
	return &taskUsecase{tasks: tasks}
}

// List は完了状態フィルタに一致するタスクを新しい順に返します。
// statusが"completed"/"pending"以外の場合はフィルタなしで全件を返します。
func (u *taskUsecase) List(ctx context.Context, status string) ([]entity.Task, error) {
	var completed *bool
	switch status {
	case StatusCompleted:
		v := true
		completed = &v
	case StatusPending:
		v := false
		completed = &v
	}
	return u.tasks.FindAll(ctx, completed)
}

// GetByID は指定されたIDのタスクを返します。
func (u *taskUsecase) GetByID(ctx context.Context, id uint) (*entity.Task, error) {
	return u.tasks.FindByID(ctx, id)
}

// Create は認証済みユーザーを作成者として新規タスクを永続化し、
// 関連を結合した状態で再取得して返します。
func (u *taskUsecase) Create(ctx context.Context, in CreateTaskInput, creatorID uint) (*entity.Task, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, validation.NewError("title", "Title is required")
	}

	task := &entity.Task{
		Title:       title,
		Description: in.Description,
		DueDate:     in.DueDate,
		AssignedTo:  in.AssignedTo,
		IsCompleted: false,
		CreatedBy:   creatorID,
	}
	if err := u.tasks.Create(ctx, task); err != nil {
		return nil, err
	}

	// 関連（Assignee/Creator）を含めて再取得する。
	// 再取得に失敗してもレコード自体は永続化されている。
	return u.tasks.FindByID(ctx, task.ID)
}

// Update は指定されたフィールドのみを適用する部分更新です。
// リクエストに含まれないフィールドは変更されません。
// DueDate/AssignedToはSetフラグが立っている場合のみ適用され、nil値はカラムをクリアします。
// 認証以外の所有権チェックは行いません。
func (u *taskUsecase) Update(ctx context.Context, id uint, patch UpdateTaskPatch) (*entity.Task, error) {
	task, err := u.tasks.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Title != nil {
		title := strings.TrimSpace(*patch.Title)
		if title == "" {
			return nil, validation.NewError("title", "Title is required")
		}
		task.Title = title
	}
	if patch.Description != nil {
		task.Description = *patch.Description
	}
	if patch.DueDateSet {
		task.DueDate = patch.DueDate
	}
	if patch.AssignedToSet {
		task.AssignedTo = patch.AssignedTo
	}
	if patch.IsCompleted != nil {
		task.IsCompleted = *patch.IsCompleted
	}

	if err := u.tasks.Save(ctx, task); err != nil {
		return nil, err
	}
	return u.tasks.FindByID(ctx, id)
}

// ToggleCompletion は完了フラグを反転させ、更新後のタスクを返します。
func (u *taskUsecase) ToggleCompletion(ctx context.Context, id uint) (*entity.Task, error) {
	task, err := u.tasks.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	task.IsCompleted = !task.IsCompleted
	if err := u.tasks.Save(ctx, task); err != nil {
		return nil, err
	}
	return u.tasks.FindByID(ctx, id)
}

// Delete はIDでタスクを削除します。
func (u *taskUsecase) Delete(ctx context.Context, id uint) error {
	return u.tasks.Delete(ctx, id)
}
