package user

// CreateUserRequest represents the request to register a participant
type CreateUserRequest struct {
	Name  string `json:"name" validate:"required,min=3,max=255"`
	Email string `json:"email" validate:"required,email,max=255"`
}
