package dto

import (
	"time"

	"pacificreef/models"
)

type UserResponse struct {
	ID        uint       `json:"id"`
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	FirstName string     `json:"firstName"`
	LastName  string     `json:"lastName"`
	Role      int        `json:"role"`
	Status    int        `json:"status"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}

// NewUserResponse maps a user model to its response shape.
func NewUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      u.Role,
		Status:    u.Status,
		LastLogin: u.LastLogin,
		CreatedAt: u.CreatedAt,
	}
}

// UserStatsResponse carries counts by role and status.
type UserStatsResponse struct {
	Admins   int64 `json:"admins"`
	Clients  int64 `json:"clients"`
	Active   int64 `json:"active"`
	Inactive int64 `json:"inactive"`
}

// NameSearchResponse carries substring matches plus fuzzy suggestions
// for near-miss queries.
type NameSearchResponse struct {
	Users       []UserResponse `json:"users"`
	Suggestions []string       `json:"suggestions,omitempty"`
}
