package auth

import (
	"context"
	"errors"
	"time"

	"app/internal/repository"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TokenOutput mirrors the token response of a standard bearer flow.
type TokenOutput struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
	Username    string `json:"username"`
}

// AccessTokenIssuer signs a bearer token for the given subject.
type AccessTokenIssuer interface {
	Issue(subject string, now time.Time) (token string, expiresAt time.Time, err error)
}

type LoginUsecase struct {
	users    repository.UserRepository
	verifier PasswordVerifier
	issuer   AccessTokenIssuer
}

func NewLoginUsecase(users repository.UserRepository, verifier PasswordVerifier, issuer AccessTokenIssuer) *LoginUsecase {
	return &LoginUsecase{users: users, verifier: verifier, issuer: issuer}
}

func (u *LoginUsecase) Execute(ctx context.Context, in LoginInput) (TokenOutput, error) {
	if in.Username == "" || in.Password == "" {
		return TokenOutput{}, ErrUsernameRequired
	}

	user, err := u.users.FindByUsername(ctx, in.Username)
	if errors.Is(err, repository.ErrNotFound) {
		return TokenOutput{}, ErrInvalidCredentials
	}
	if err != nil {
		return TokenOutput{}, err
	}

	if !u.verifier.Verify(in.Password, user.PasswordHash) {
		return TokenOutput{}, ErrInvalidCredentials
	}

	now := time.Now()
	token, expiresAt, err := u.issuer.Issue(user.ID.String(), now)
	if err != nil {
		return TokenOutput{}, err
	}

	return TokenOutput{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(expiresAt.Sub(now).Seconds()),
		Username:    user.Username,
	}, nil
}
