package dto

import (
	"time"

	authentity "task_backend/internal/feature/auth/domain/entity"
	"task_backend/internal/feature/tasks/domain/entity"
)

// UserSummary is the minimal identity view embedded in task responses.
// It never carries credential data.
type UserSummary struct {
	ID    uint   `json:"id"`
	Fname string `json:"fname"`
	Lname string `json:"lname"`
	Email string `json:"email"`
}

// TaskItem is the client-facing view of a task with its joined
// assignee/creator summaries.
type TaskItem struct {
	ID          uint         `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	IsCompleted bool         `json:"isCompleted"`
	DueDate     *time.Time   `json:"dueDate"`
	AssignedTo  *uint        `json:"assignedTo"`
	CreatedBy   uint         `json:"createdBy"`
	Assignee    *UserSummary `json:"assignee"`
	Creator     *UserSummary `json:"creator"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

// TaskResp is the response body for mutating task endpoints.
type TaskResp struct {
	Message string   `json:"message"`
	Task    TaskItem `json:"task"`
}

// NewTaskItem converts a task entity into its response representation.
func NewTaskItem(t *entity.Task) TaskItem {
	return TaskItem{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		IsCompleted: t.IsCompleted,
		DueDate:     t.DueDate,
		AssignedTo:  t.AssignedTo,
		CreatedBy:   t.CreatedBy,
		Assignee:    newUserSummary(t.Assignee),
		Creator:     newUserSummary(&t.Creator),
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// NewTaskItems converts a slice of task entities.
func NewTaskItems(tasks []entity.Task) []TaskItem {
	out := make([]TaskItem, 0, len(tasks))
	for i := range tasks {
		out = append(out, NewTaskItem(&tasks[i]))
	}
	return out
}

func newUserSummary(u *authentity.User) *UserSummary {
	if u == nil || u.ID == 0 {
		return nil
	}
	return &UserSummary{ID: u.ID, Fname: u.Fname, Lname: u.Lname, Email: u.Email}
}
