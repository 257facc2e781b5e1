package ports

import (
	"context"

	"github.com/openelect/evote/internal/core/domain"
)

type AuthRepository interface {
	StoreRefreshToken(ctx context.Context, token *domain.RefreshToken) error
	GetRefreshTokenByHash(ctx context.Context, tokenHash string) (*domain.RefreshToken, error)
	RevokeRefreshToken(ctx context.Context, id string) error
}

type TokenPayload struct {
	Email string
	Name  string
}

type TokenVerifier interface {
	Verify(ctx context.Context, token string, clientID string) (*TokenPayload, error)
}

type RegisterInput struct {
	Email    string
	Name     string
	Password string
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (string, string, error)           // returns access_token, refresh_token
	Login(ctx context.Context, email, password string) (string, string, error)           // returns access_token, refresh_token
	LoginWithGoogle(ctx context.Context, googleToken string) (string, string, error)     // returns access_token, refresh_token
	RefreshAccessToken(ctx context.Context, refreshToken string) (string, string, error) // returns new access_token, refresh_token
	Logout(ctx context.Context, refreshToken string) error
}
