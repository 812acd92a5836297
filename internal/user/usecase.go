package user

import (
	"context"

	"github.com/lnadoceria/doceria-api/internal/model"
	"github.com/lnadoceria/doceria-api/internal/user/dto"
)

type UseCase interface {
	Register(ctx context.Context, input *dto.RegisterInput) (*model.User, error)
	Login(ctx context.Context, input *dto.LoginInput) (*dto.LoginResponse, error)
	UpdateUser(ctx context.Context, input *dto.UpdateUserInput) (*model.User, error)
}
