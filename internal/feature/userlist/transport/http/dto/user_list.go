// Package dto defines data transfer objects for the userlist feature's HTTP transport layer.
package dto

// UserItem is a single entry in the user directory response.
type UserItem struct {
	ID    uint   `json:"id"`
	Fname string `json:"fname"`
	Lname string `json:"lname"`
	Email string `json:"email"`
}
