package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/lnadoceria/doceria-api/internal/apperror"
	"github.com/lnadoceria/doceria-api/internal/auth"
	"github.com/lnadoceria/doceria-api/internal/model"
	"github.com/lnadoceria/doceria-api/internal/platform/logger"
	"github.com/lnadoceria/doceria-api/internal/user"
	"github.com/lnadoceria/doceria-api/internal/user/dto"
)

type userUseCase struct {
	repo   user.Repository
	tokens *auth.TokenManager
	logger logger.ZapLogger
}

func NewUserUseCase(repo user.Repository, tokens *auth.TokenManager, log logger.ZapLogger) user.UseCase {
	return &userUseCase{
		repo:   repo,
		tokens: tokens,
		logger: log,
	}
}

func (uc *userUseCase) Register(ctx context.Context, input *dto.RegisterInput) (*model.User, error) {
	existing, err := uc.repo.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, apperror.Store(err)
	}
	if existing != nil {
		return nil, apperror.Conflict("email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperror.Store(err)
	}

	now := time.Now()
	u := &model.User{
		BaseModel: model.BaseModel{
			ID:        uuid.New().String(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:     input.Name,
		Email:    input.Email,
		Password: string(hash),
	}

	if err := uc.repo.Create(ctx, u); err != nil {
		return nil, apperror.Store(err)
	}

	uc.logger.Info("user registered", zap.String("id", u.ID), zap.String("email", u.Email))
	return u, nil
}

func (uc *userUseCase) Login(ctx context.Context, input *dto.LoginInput) (*dto.LoginResponse, error) {
	u, err := uc.repo.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, apperror.Store(err)
	}
	// Same answer for unknown email and wrong password.
	if u == nil {
		return nil, apperror.Forbidden("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(input.Password)); err != nil {
		return nil, apperror.Forbidden("invalid email or password")
	}

	token, err := uc.tokens.CreateToken(u)
	if err != nil {
		return nil, apperror.Store(err)
	}

	return &dto.LoginResponse{Token: token, User: u}, nil
}

func (uc *userUseCase) UpdateUser(ctx context.Context, input *dto.UpdateUserInput) (*model.User, error) {
	if input.Name == nil && input.Email == nil && input.Password == nil {
		return nil, apperror.Validation("nothing to update")
	}

	u, err := uc.repo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, apperror.Store(err)
	}
	if u == nil {
		return nil, apperror.NotFound("user not found")
	}

	if input.Email != nil && *input.Email != "" && *input.Email != u.Email {
		existing, err := uc.repo.FindByEmail(ctx, *input.Email)
		if err != nil {
			return nil, apperror.Store(err)
		}
		if existing != nil {
			return nil, apperror.Conflict("email already exists")
		}
		u.Email = *input.Email
	}
	if input.Name != nil && *input.Name != "" {
		u.Name = *input.Name
	}
	if input.Password != nil && *input.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, apperror.Store(err)
		}
		u.Password = string(hash)
	}
	u.UpdatedAt = time.Now()

	if err := uc.repo.Update(ctx, u); err != nil {
		return nil, apperror.Store(err)
	}
	return u, nil
}
