package user

import "time"

// UserResponse represents a participant in API responses
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateUserResponse is returned by POST /users
type CreateUserResponse struct {
	User *UserResponse `json:"user"`
}

// ListUsersResponse is returned by GET /users
type ListUsersResponse struct {
	Users []*UserResponse `json:"users"`
}
