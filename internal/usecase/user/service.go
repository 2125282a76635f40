package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/johnquangdev/reunicheck/internal/domain/entities"
	"github.com/johnquangdev/reunicheck/internal/domain/repositories"
	usecaseErrors "github.com/johnquangdev/reunicheck/internal/usecase/errors"
)

// Service manages the participant directory
type Service interface {
	// CreateUser registers a participant
	CreateUser(ctx context.Context, name, email string) (*entities.User, error)

	// ListUsers returns every participant ordered by name
	ListUsers(ctx context.Context) ([]*entities.User, error)

	// StartChat resolves a participant by email and lists their meetings
	StartChat(ctx context.Context, email string) (*ChatStart, error)
}

// ChatStart is what a participant needs to pick a meeting
type ChatStart struct {
	UserID   uuid.UUID
	Meetings []*entities.Meeting
}

type directory struct {
	userRepo    repositories.UserRepository
	meetingRepo repositories.MeetingRepository
	logger      *zap.Logger
}

var _ Service = (*directory)(nil)

// NewService creates the user directory service
func NewService(userRepo repositories.UserRepository, meetingRepo repositories.MeetingRepository, logger *zap.Logger) Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &directory{
		userRepo:    userRepo,
		meetingRepo: meetingRepo,
		logger:      logger,
	}
}

func (d *directory) CreateUser(ctx context.Context, name, email string) (*entities.User, error) {
	u := entities.NewUser(email, name)
	if err := u.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", usecaseErrors.ErrInvalidInput, err)
	}

	if err := d.userRepo.Create(ctx, u); err != nil {
		if errors.Is(err, entities.ErrUserAlreadyExists) {
			return nil, usecaseErrors.ErrEmailAlreadyUsed
		}
		return nil, usecaseErrors.Store(usecaseErrors.ErrStoreWrite, err)
	}

	d.logger.Info("👤 user created",
		zap.String("user_id", u.ID.String()),
		zap.String("email", u.Email),
	)
	return u, nil
}

func (d *directory) ListUsers(ctx context.Context) ([]*entities.User, error) {
	users, err := d.userRepo.List(ctx)
	if err != nil {
		return nil, usecaseErrors.Store(usecaseErrors.ErrStoreRead, err)
	}
	return users, nil
}

func (d *directory) StartChat(ctx context.Context, email string) (*ChatStart, error) {
	u, err := d.userRepo.FindByEmail(ctx, entities.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			return nil, usecaseErrors.ErrUserNotFound
		}
		return nil, usecaseErrors.Store(usecaseErrors.ErrStoreRead, err)
	}

	meetings, err := d.meetingRepo.FindByUser(ctx, u.ID)
	if err != nil {
		return nil, usecaseErrors.Store(usecaseErrors.ErrStoreRead, err)
	}
	if len(meetings) == 0 {
		return nil, usecaseErrors.ErrNoMeetingsAssigned
	}

	return &ChatStart{UserID: u.ID, Meetings: meetings}, nil
}
