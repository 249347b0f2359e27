// Package handler はtasksフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"task_backend/internal/feature/tasks/domain/entity"
	"task_backend/internal/feature/tasks/transport/http/dto"
	"task_backend/internal/feature/tasks/usecase"
	jwtmw "task_backend/internal/platform/jwt"
	"task_backend/internal/shared/validation"
)

// TaskUsecase はタスク操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type TaskUsecase interface {
	List(ctx context.Context, status string) ([]entity.Task, error)
	GetByID(ctx context.Context, id uint) (*entity.Task, error)
	Create(ctx context.Context, in usecase.CreateTaskInput, creatorID uint) (*entity.Task, error)
	Update(ctx context.Context, id uint, patch usecase.UpdateTaskPatch) (*entity.Task, error)
	ToggleCompletion(ctx context.Context, id uint) (*entity.Task, error)
	Delete(ctx context.Context, id uint) error
}

// TaskHandler はタスク操作のHTTPリクエストを処理します。
type TaskHandler struct {
	tasks TaskUsecase
}

// NewTaskHandler はTaskHandlerの新しいインスタンスを生成します。
func NewTaskHandler(tasks TaskUsecase) *TaskHandler {
	return &TaskHandler{tasks: tasks}
}

// taskID parses the :id path parameter. A non-numeric ID cannot match any
// task, so it is reported the same way as a missing one.
func taskID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return 0, false
	}
	return uint(id), true
}

// List はタスク一覧APIエンドポイントを処理します。
// status クエリパラメータ（completed/pending）で完了状態をフィルタできます。
func (h *TaskHandler) List(c *gin.Context) {
	tasks, err := h.tasks.List(c.Request.Context(), c.Query("status"))
	if err != nil {
		slog.Error("task list failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"tasks": dto.NewTaskItems(tasks)})
}

// GetByID は単一タスク取得APIエンドポイントを処理します。
func (h *TaskHandler) GetByID(c *gin.Context) {
	id, ok := taskID(c)
	if !ok {
		return
	}

	task, err := h.tasks.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
			return
		}
		slog.Error("task fetch failed", "error", err, "task_id", id, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"task": dto.NewTaskItem(task)})
}

// Create はタスク作成APIエンドポイントを処理します。
// 作成者は常に認証済みユーザーであり、リクエストボディの値は使用しません。
func (h *TaskHandler) Create(c *gin.Context) {
	var req dto.CreateTaskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		verr := validation.FromBindError(err)
		slog.Warn("task create validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": verr.Fields})
		return
	}

	callerID := c.GetUint(jwtmw.ContextUserID)
	if callerID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication token required"})
		return
	}

	in := usecase.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		AssignedTo:  req.AssignedTo,
	}
	task, err := h.tasks.Create(c.Request.Context(), in, callerID)
	if err != nil {
		h.writeTaskError(c, err, "task create failed")
		return
	}

	slog.Info("task created", "task_id", task.ID, "created_by", callerID)
	c.JSON(http.StatusCreated, dto.TaskResp{
		Message: "Task created successfully",
		Task:    dto.NewTaskItem(task),
	})
}

// Update はタスク更新APIエンドポイントを処理します。
// リクエストに含まれるフィールドのみを適用する部分更新です。
// 明示的なnullはdueDate/assignedToをクリアします。
func (h *TaskHandler) Update(c *gin.Context) {
	id, ok := taskID(c)
	if !ok {
		return
	}

	var req dto.UpdateTaskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		verr := validation.FromBindError(err)
		slog.Warn("task update validation failed", "error", err, "task_id", id, "remote_addr", c.ClientIP())
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": verr.Fields})
		return
	}

	patch := usecase.UpdateTaskPatch{
		Title:         req.Title,
		Description:   req.Description,
		IsCompleted:   req.IsCompleted,
		DueDate:       req.DueDate,
		DueDateSet:    req.DueDateSet,
		AssignedTo:    req.AssignedTo,
		AssignedToSet: req.AssignedToSet,
	}
	task, err := h.tasks.Update(c.Request.Context(), id, patch)
	if err != nil {
		h.writeTaskError(c, err, "task update failed")
		return
	}

	slog.Info("task updated", "task_id", task.ID)
	c.JSON(http.StatusOK, dto.TaskResp{
		Message: "Task updated successfully",
		Task:    dto.NewTaskItem(task),
	})
}

// ToggleCompletion はタスクの完了フラグを反転するAPIエンドポイントを処理します。
func (h *TaskHandler) ToggleCompletion(c *gin.Context) {
	id, ok := taskID(c)
	if !ok {
		return
	}

	task, err := h.tasks.ToggleCompletion(c.Request.Context(), id)
	if err != nil {
		h.writeTaskError(c, err, "task toggle failed")
		return
	}

	slog.Info("task completion toggled", "task_id", task.ID, "is_completed", task.IsCompleted)
	c.JSON(http.StatusOK, dto.TaskResp{
		Message: "Task status updated",
		Task:    dto.NewTaskItem(task),
	})
}

// Delete はタスク削除APIエンドポイントを処理します。
func (h *TaskHandler) Delete(c *gin.Context) {
	id, ok := taskID(c)
	if !ok {
		return
	}

	if err := h.tasks.Delete(c.Request.Context(), id); err != nil {
		h.writeTaskError(c, err, "task delete failed")
		return
	}

	slog.Info("task deleted", "task_id", id)
	c.JSON(http.StatusOK, gin.H{"message": "Task deleted successfully"})
}

// writeTaskError はユースケースのエラーをHTTPレスポンスに変換します。
func (h *TaskHandler) writeTaskError(c *gin.Context, err error, logMsg string) {
	var verr *validation.Error
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": verr.Fields})
	case errors.Is(err, usecase.ErrTaskNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
	default:
		slog.Error(logMsg, "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
