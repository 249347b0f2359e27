package dto

import "task_backend/internal/feature/auth/domain/entity"

// UserSummary is the client-facing view of a user.
// It deliberately omits the password hash.
type UserSummary struct {
	ID    uint   `json:"id"`
	Fname string `json:"fname"`
	Lname string `json:"lname"`
	Email string `json:"email"`
}

// NewUserSummary converts a user entity into its response representation.
func NewUserSummary(u *entity.User) UserSummary {
	return UserSummary{ID: u.ID, Fname: u.Fname, Lname: u.Lname, Email: u.Email}
}

// RegisterResp is the success response body for /api/auth/register.
type RegisterResp struct {
	Message string      `json:"message"`
	User    UserSummary `json:"user"`
}

// LoginResp is the success response body for /api/auth/login.
type LoginResp struct {
	Message string      `json:"message"`
	User    UserSummary `json:"user"`
	Token   string      `json:"token"`
}
