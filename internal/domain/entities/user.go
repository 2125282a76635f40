package entities

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User is a meeting participant, looked up by email
type User struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key"`
	Email     string    `json:"email" gorm:"type:varchar(255);uniqueIndex;not null"`
	Name      string    `json:"name" gorm:"type:varchar(255);not null"`
	Role      UserRole  `json:"role" gorm:"type:varchar(50);default:'participant';not null"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName specifies the table name for GORM
func (User) TableName() string {
	return "users"
}

// UserRole defines user roles
type UserRole string

const (
	RoleAdmin       UserRole = "admin"
	RoleHost        UserRole = "host"
	RoleParticipant UserRole = "participant"
)

// IsValid checks if the user role is valid
func (r UserRole) IsValid() bool {
	switch r {
	case RoleAdmin, RoleHost, RoleParticipant:
		return true
	}
	return false
}

// MinNameLength is the shortest accepted user name
const MinNameLength = 3

// NormalizeEmail trims and lower-cases an email so lookups are case-insensitive
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NewUser creates a new participant
func NewUser(email, name string) *User {
	return &User{
		ID:        uuid.New(),
		Email:     NormalizeEmail(email),
		Name:      strings.TrimSpace(name),
		Role:      RoleParticipant,
		CreatedAt: time.Now().UTC(),
	}
}

// Validate validates user data
func (u *User) Validate() error {
	if u.Email == "" || !strings.Contains(u.Email, "@") {
		return ErrInvalidEmail
	}
	if len([]rune(u.Name)) < MinNameLength {
		return ErrInvalidName
	}
	if !u.Role.IsValid() {
		return ErrInvalidRole
	}
	return nil
}
