package set_user

import (
	"context"

	"github.com/m04kA/SMC-HotelService/internal/service/users/models"
)

type UsersService interface {
	SetUser(ctx context.Context, req *models.SetUserRequest) (*models.UserResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
