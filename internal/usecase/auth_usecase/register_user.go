package auth

import (
	"context"
	"errors"
	"strings"

	"app/internal/domain/model"
	"app/internal/repository"
)

var (
	ErrUsernameRequired = errors.New("username and password required")
	ErrPasswordTooShort = errors.New("password too short")
	ErrUserExists       = errors.New("user already exists")
)

type RegisterUserInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RegisterUserUsecase struct {
	users  repository.UserRepository
	hasher PasswordHasher
}

func NewRegisterUserUsecase(users repository.UserRepository, hasher PasswordHasher) *RegisterUserUsecase {
	return &RegisterUserUsecase{users: users, hasher: hasher}
}

func (u *RegisterUserUsecase) Execute(ctx context.Context, in RegisterUserInput) (model.User, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" || in.Password == "" {
		return model.User{}, ErrUsernameRequired
	}
	if len(in.Password) < 8 {
		return model.User{}, ErrPasswordTooShort
	}

	hashed, err := u.hasher.Hash(in.Password)
	if err != nil {
		return model.User{}, err
	}

	user, err := u.users.Create(ctx, username, hashed)
	if errors.Is(err, repository.ErrConflict) {
		return model.User{}, ErrUserExists
	}
	if err != nil {
		return model.User{}, err
	}
	return user, nil
}
