package usecase

import (
	"context"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/lnadoceria/doceria-api/internal/apperror"
	"github.com/lnadoceria/doceria-api/internal/auth"
	"github.com/lnadoceria/doceria-api/internal/model"
	"github.com/lnadoceria/doceria-api/internal/platform/logger"
	"github.com/lnadoceria/doceria-api/internal/user/dto"
)

type fakeUserRepo struct {
	users map[string]*model.User // keyed by id
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*model.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, u *model.User) error {
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id string) (*model.User, error) {
	if u, ok := r.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(_ context.Context, u *model.User) error {
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func newTestUseCase(repo *fakeUserRepo) *userUseCase {
	return &userUseCase{
		repo:   repo,
		tokens: auth.NewTokenManager("test-secret", time.Hour),
		logger: logger.NewNop(),
	}
}

func TestRegisterHashesPassword(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newTestUseCase(repo)

	u, err := uc.Register(context.Background(), &dto.RegisterInput{
		Name:     "Ana",
		Email:    "ana@example.com",
		Password: "sweet-tooth",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.Password == "sweet-tooth" {
		t.Fatal("password must not be stored in plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("sweet-tooth")); err != nil {
		t.Errorf("stored hash does not match the password: %v", err)
	}
	if _, ok := repo.users[u.ID]; !ok {
		t.Error("user was not persisted")
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newTestUseCase(repo)

	input := &dto.RegisterInput{Name: "Ana", Email: "ana@example.com", Password: "sweet-tooth"}
	if _, err := uc.Register(context.Background(), input); err != nil {
		t.Fatalf("first register failed: %v", err)
	}

	_, err := uc.Register(context.Background(), input)
	appErr := apperror.As(err)
	if appErr == nil || appErr.Kind != apperror.KindConflict {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestLogin(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newTestUseCase(repo)

	registered, err := uc.Register(context.Background(), &dto.RegisterInput{
		Name:     "Ana",
		Email:    "ana@example.com",
		Password: "sweet-tooth",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	resp, err := uc.Login(context.Background(), &dto.LoginInput{
		Email:    "ana@example.com",
		Password: "sweet-tooth",
	})
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if resp.Token == "" {
		t.Error("expected a token")
	}
	if resp.User == nil || resp.User.ID != registered.ID {
		t.Error("response should carry the logged-in user")
	}

	claims, err := uc.tokens.VerifyToken(resp.Token)
	if err != nil {
		t.Fatalf("issued token does not verify: %v", err)
	}
	if claims.UserID != registered.ID || claims.Email != "ana@example.com" {
		t.Errorf("unexpected claims: %+v", claims)
	}
}

func TestLoginSameAnswerForUnknownEmailAndBadPassword(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newTestUseCase(repo)

	if _, err := uc.Register(context.Background(), &dto.RegisterInput{
		Name:     "Ana",
		Email:    "ana@example.com",
		Password: "sweet-tooth",
	}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	_, errUnknown := uc.Login(context.Background(), &dto.LoginInput{
		Email: "nobody@example.com", Password: "whatever",
	})
	_, errBadPass := uc.Login(context.Background(), &dto.LoginInput{
		Email: "ana@example.com", Password: "wrong",
	})

	for _, err := range []error{errUnknown, errBadPass} {
		appErr := apperror.As(err)
		if appErr == nil || appErr.Kind != apperror.KindForbidden {
			t.Fatalf("expected forbidden, got %v", err)
		}
	}
	if errUnknown.Error() != errBadPass.Error() {
		t.Errorf("unknown email and bad password must read the same: %q vs %q",
			errUnknown.Error(), errBadPass.Error())
	}
}

func TestUpdateUser(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newTestUseCase(repo)

	registered, err := uc.Register(context.Background(), &dto.RegisterInput{
		Name:     "Ana",
		Email:    "ana@example.com",
		Password: "sweet-tooth",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	t.Run("empty input rejected", func(t *testing.T) {
		_, err := uc.UpdateUser(context.Background(), &dto.UpdateUserInput{ID: registered.ID})
		appErr := apperror.As(err)
		if appErr == nil || appErr.Kind != apperror.KindValidation {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		name := "Bia"
		_, err := uc.UpdateUser(context.Background(), &dto.UpdateUserInput{ID: "missing", Name: &name})
		appErr := apperror.As(err)
		if appErr == nil || appErr.Kind != apperror.KindNotFound {
			t.Fatalf("expected not found, got %v", err)
		}
	})

	t.Run("password rehash", func(t *testing.T) {
		newPass := "new-secret"
		updated, err := uc.UpdateUser(context.Background(), &dto.UpdateUserInput{
			ID:       registered.ID,
			Password: &newPass,
		})
		if err != nil {
			t.Fatalf("update failed: %v", err)
		}
		if err := bcrypt.CompareHashAndPassword([]byte(updated.Password), []byte(newPass)); err != nil {
			t.Errorf("new password hash does not verify: %v", err)
		}
		if _, err := uc.Login(context.Background(), &dto.LoginInput{
			Email: "ana@example.com", Password: newPass,
		}); err != nil {
			t.Errorf("login with the new password failed: %v", err)
		}
	})

	t.Run("email conflict", func(t *testing.T) {
		if _, err := uc.Register(context.Background(), &dto.RegisterInput{
			Name: "Bia", Email: "bia@example.com", Password: "another-one",
		}); err != nil {
			t.Fatalf("second register failed: %v", err)
		}
		taken := "bia@example.com"
		_, err := uc.UpdateUser(context.Background(), &dto.UpdateUserInput{
			ID:    registered.ID,
			Email: &taken,
		})
		appErr := apperror.As(err)
		if appErr == nil || appErr.Kind != apperror.KindConflict {
			t.Fatalf("expected conflict, got %v", err)
		}
	})
}
