package service

import (
	"time"

	"github.com/faisal5177/bistro-boss-restaurant-server/internal/config"
	"github.com/faisal5177/bistro-boss-restaurant-server/internal/dto"
	"github.com/faisal5177/bistro-boss-restaurant-server/internal/middleware"

	"github.com/golang-jwt/jwt/v5"
)

// AuthService signs identity assertions. There is no revocation:
// expiry is the only lifetime bound on a token.
type AuthService interface {
	IssueToken(req dto.TokenRequest) (string, error)
}

type authService struct {
	cfg *config.Config
}

func NewAuthService(cfg *config.Config) AuthService {
	return &authService{cfg: cfg}
}

func (s *authService) IssueToken(req dto.TokenRequest) (string, error) {
	now := time.Now()
	claims := &middleware.Claims{
		Email: req.Email,
		Name:  req.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(s.cfg.JWTExpirationMinutes) * time.Minute)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}
