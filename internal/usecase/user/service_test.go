package user

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/reunicheck/internal/adapter/repository"
	"github.com/johnquangdev/reunicheck/internal/domain/entities"
	"github.com/johnquangdev/reunicheck/internal/infrastructure/database"
	usecaseErrors "github.com/johnquangdev/reunicheck/internal/usecase/errors"
)

func newService(t *testing.T) (Service, *repository.MeetingRepository) {
	t.Helper()
	db := database.NewTestDB(t)
	meetings := repository.NewMeetingRepository(db)
	return NewService(repository.NewUserRepository(db), meetings, nil), meetings
}

func TestCreateUser(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	u, err := svc.CreateUser(ctx, "Ana Lopez", "  Ana@X.com ")
	require.NoError(t, err)
	assert.Equal(t, "ana@x.com", u.Email)
	assert.Equal(t, entities.RoleParticipant, u.Role)

	_, err = svc.CreateUser(ctx, "Another Ana", "ana@x.com")
	require.Error(t, err)
	assert.True(t, errors.Is(err, usecaseErrors.ErrEmailAlreadyUsed))
}

func TestCreateUser_Invalid(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.CreateUser(context.Background(), "Al", "al@x.com")
	assert.True(t, errors.Is(err, usecaseErrors.ErrInvalidInput))

	_, err = svc.CreateUser(context.Background(), "Alice", "not-an-email")
	assert.True(t, errors.Is(err, usecaseErrors.ErrInvalidInput))
}

func TestListUsers_OrderedByName(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()
	for _, n := range []string{"Zoe Adams", "Bob Brown", "Mia Clark"} {
		_, err := svc.CreateUser(ctx, n, uuid.NewString()+"@x.com")
		require.NoError(t, err)
	}

	users, err := svc.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 3)
	assert.Equal(t, "Bob Brown", users[0].Name)
	assert.Equal(t, "Zoe Adams", users[2].Name)
}

func TestStartChat(t *testing.T) {
	svc, meetings := newService(t)
	ctx := context.Background()

	_, err := svc.StartChat(ctx, "ghost@x.com")
	assert.True(t, errors.Is(err, usecaseErrors.ErrUserNotFound))

	u, err := svc.CreateUser(ctx, "Ana Lopez", "ana@x.com")
	require.NoError(t, err)

	_, err = svc.StartChat(ctx, "ana@x.com")
	assert.True(t, errors.Is(err, usecaseErrors.ErrNoMeetingsAssigned))

	m := entities.NewMeeting(uuid.New(), "Budget review", u.ID)
	require.NoError(t, meetings.Create(ctx, m))

	start, err := svc.StartChat(ctx, "ANA@x.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, start.UserID)
	require.Len(t, start.Meetings, 1)
	assert.Equal(t, "Budget review", start.Meetings[0].Topic)
}
