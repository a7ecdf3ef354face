package users

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	userRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/user"
	"github.com/m04kA/SMC-HotelService/internal/service/users/models"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newService() *Service {
	return NewService(userRepo.NewRepository(), nopLogger{})
}

func TestSetUser_Success(t *testing.T) {
	s := newService()

	resp, err := s.SetUser(context.Background(), &models.SetUserRequest{ID: 1, Balance: 5000})
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, int64(5000), resp.Balance)
	assert.False(t, resp.CreatedAt.IsZero())
}

func TestSetUser_NegativeBalance(t *testing.T) {
	s := newService()

	_, err := s.SetUser(context.Background(), &models.SetUserRequest{ID: 1, Balance: -100})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestSetUser_OverwritesBalance(t *testing.T) {
	s := newService()
	ctx := context.Background()

	_, err := s.SetUser(ctx, &models.SetUserRequest{ID: 1, Balance: 5000})
	require.NoError(t, err)

	// Баланс перезаписывается, а не прибавляется
	resp, err := s.SetUser(ctx, &models.SetUserRequest{ID: 1, Balance: 300})
	require.NoError(t, err)
	assert.Equal(t, int64(300), resp.Balance)

	list, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, list.Users, 1)
	assert.Equal(t, int64(300), list.Users[0].Balance)
}

func TestList_NewestFirst(t *testing.T) {
	s := newService()
	ctx := context.Background()

	for id := int64(1); id <= 3; id++ {
		_, err := s.SetUser(ctx, &models.SetUserRequest{ID: id, Balance: id * 1000})
		require.NoError(t, err)
	}

	list, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, list.Users, 3)

	assert.Equal(t, int64(3), list.Users[0].ID)
	assert.Equal(t, int64(2), list.Users[1].ID)
	assert.Equal(t, int64(1), list.Users[2].ID)
}

func TestList_UpsertKeepsPosition(t *testing.T) {
	s := newService()
	ctx := context.Background()

	_, err := s.SetUser(ctx, &models.SetUserRequest{ID: 1, Balance: 5000})
	require.NoError(t, err)
	_, err = s.SetUser(ctx, &models.SetUserRequest{ID: 2, Balance: 10000})
	require.NoError(t, err)

	// Перезапись баланса не двигает пользователя в списке
	_, err = s.SetUser(ctx, &models.SetUserRequest{ID: 1, Balance: 7000})
	require.NoError(t, err)

	list, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, list.Users, 2)
	assert.Equal(t, int64(2), list.Users[0].ID)
	assert.Equal(t, int64(1), list.Users[1].ID)
	assert.Equal(t, int64(7000), list.Users[1].Balance)
}
