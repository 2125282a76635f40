package presenter

import (
	userDTO "github.com/johnquangdev/reunicheck/internal/adapter/dto/user"
	"github.com/johnquangdev/reunicheck/internal/domain/entities"
)

// ToUserResponse converts a User entity to UserResponse DTO
func ToUserResponse(u *entities.User) *userDTO.UserResponse {
	if u == nil {
		return nil
	}
	return &userDTO.UserResponse{
		ID:        u.ID.String(),
		Email:     u.Email,
		Name:      u.Name,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
	}
}

// ToUserListResponse converts users to ListUsersResponse DTO
func ToUserListResponse(users []*entities.User) *userDTO.ListUsersResponse {
	out := make([]*userDTO.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, ToUserResponse(u))
	}
	return &userDTO.ListUsersResponse{Users: out}
}
