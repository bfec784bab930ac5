package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/trademindiq/trading-account/internal/core/domain"
	"github.com/trademindiq/trading-account/internal/core/ports"
)

// LookupField selects which account attribute a login identifier is resolved
// against. The original deployment sent email addresses in a request field
// named "username"; making the attribute explicit configuration removes that
// ambiguity at startup rather than burying it in a query.
type LookupField string

const (
	LookupEmail    LookupField = "email"
	LookupUsername LookupField = "username"
)

// ParseLookupField maps a configuration string to a LookupField. Anything
// other than "username" falls back to email, the historical behaviour.
func ParseLookupField(s string) LookupField {
	if strings.EqualFold(strings.TrimSpace(s), string(LookupUsername)) {
		return LookupUsername
	}
	return LookupEmail
}

// AuthService implements login, token issuance and token resolution.
type AuthService struct {
	repo      ports.UserRepository
	jwtSecret string
	tokenTTL  time.Duration
	lookup    LookupField
	log       zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, jwtSecret string, tokenTTL time.Duration, lookup LookupField, log zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	if lookup != LookupUsername {
		lookup = LookupEmail
	}
	return &AuthService{repo: repo, jwtSecret: jwtSecret, tokenTTL: tokenTTL, lookup: lookup, log: log}
}

// Login verifies the submitted credentials and returns a signed token plus
// the sanitized account projection. Unknown accounts and wrong passwords
// both come back as ErrInvalidCredentials; the distinction is logged
// server-side only, so responses cannot be used to enumerate accounts.
func (s *AuthService) Login(ctx context.Context, identifier, password string) (string, domain.Profile, error) {
	if identifier == "" || password == "" {
		return "", domain.Profile{}, domain.ErrInvalidCredentials
	}

	user, err := s.findUser(ctx, identifier)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.log.Info().Str("identifier", identifier).Msg("login rejected: unknown account")
			return "", domain.Profile{}, domain.ErrInvalidCredentials
		}
		return "", domain.Profile{}, fmt.Errorf("lookup account: %w", err)
	}

	// bcrypt comparison is constant-time.
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		s.log.Info().Str("identifier", identifier).Msg("login rejected: password mismatch")
		return "", domain.Profile{}, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", domain.Profile{}, fmt.Errorf("sign token: %w", err)
	}

	return token, user.Profile(), nil
}

// Resolve verifies a bearer token and re-fetches the account it names. The
// token alone is never treated as proof: an account removed after issuance
// fails resolution even while the token is otherwise valid.
func (s *AuthService) Resolve(ctx context.Context, tokenString string) (domain.Profile, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !tkn.Valid {
		return domain.Profile{}, domain.ErrInvalidToken
	}

	email, _ := claims["email"].(string)
	if email == "" {
		return domain.Profile{}, domain.ErrInvalidToken
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.Profile{}, domain.ErrUserNotFound
		}
		return domain.Profile{}, fmt.Errorf("lookup account: %w", err)
	}

	return user.Profile(), nil
}

func (s *AuthService) findUser(ctx context.Context, identifier string) (*domain.User, error) {
	if s.lookup == LookupUsername {
		return s.repo.FindByUsername(ctx, identifier)
	}
	return s.repo.FindByEmail(ctx, identifier)
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"email":    user.Email,
		"exp":      time.Now().Add(s.tokenTTL).Unix(),
		"jti":      uuid.NewString(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
