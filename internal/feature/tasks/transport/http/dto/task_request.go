// Package dto defines data transfer objects for the tasks feature's HTTP transport layer.
package dto

import (
	"encoding/json"
	"time"
)

// CreateTaskReq represents the request body for POST /api/tasks.
// dueDate must be RFC 3339; assignedTo references a user ID.
// Any creator field sent by the client is ignored.
type CreateTaskReq struct {
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	DueDate     *time.Time `json:"dueDate"`
	AssignedTo  *uint      `json:"assignedTo"`
}

// UpdateTaskReq represents the request body for PUT /api/tasks/:id.
// A field absent from the JSON leaves the stored value untouched, while an
// explicit null clears the nullable fields (dueDate, assignedTo). Both decode
// to the same nil pointer, so key presence is recorded during unmarshaling to
// keep them distinguishable.
type UpdateTaskReq struct {
	Title       *string
	Description *string
	DueDate     *time.Time
	AssignedTo  *uint
	IsCompleted *bool

	// DueDateSet / AssignedToSet report whether the key appeared in the
	// request body at all, including with a null value.
	DueDateSet    bool
	AssignedToSet bool
}

// UnmarshalJSON decodes the body and records which nullable keys were present.
func (r *UpdateTaskReq) UnmarshalJSON(data []byte) error {
	type fields struct {
		Title       *string    `json:"title"`
		Description *string    `json:"description"`
		DueDate     *time.Time `json:"dueDate"`
		AssignedTo  *uint      `json:"assignedTo"`
		IsCompleted *bool      `json:"isCompleted"`
	}
	var f fields
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(data, &keys); err != nil {
		return err
	}

	r.Title = f.Title
	r.Description = f.Description
	r.DueDate = f.DueDate
	r.AssignedTo = f.AssignedTo
	r.IsCompleted = f.IsCompleted
	_, r.DueDateSet = keys["dueDate"]
	_, r.AssignedToSet = keys["assignedTo"]
	return nil
}
