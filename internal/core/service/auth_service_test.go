package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/trademindiq/trading-account/internal/core/domain"
)

type stubUserRepo struct {
	users map[string]*domain.User // keyed by email
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func (r *stubUserRepo) add(t *testing.T, id int64, username, email, password string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	r.users[email] = &domain.User{
		ID:           id,
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.DefaultRole,
		CreatedAt:    time.Now(),
	}
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	if u, ok := r.users[email]; ok {
		clone := *u
		return &clone, nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func newTestService(repo *stubUserRepo) *AuthService {
	return NewAuthService(repo, "secret", 24*time.Hour, LookupEmail, zerolog.Nop())
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	repo.add(t, 1, "demo1", "demo1@trademindiq.com", "demo123")
	svc := newTestService(repo)

	before := time.Now()
	token, user, err := svc.Login(context.Background(), "demo1@trademindiq.com", "demo123")
	after := time.Now()
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}
	if user.ID != 1 || user.Username != "demo1" || user.Email != "demo1@trademindiq.com" {
		t.Fatalf("unexpected profile: %+v", user)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims["email"] != "demo1@trademindiq.com" {
		t.Fatalf("expected email claim, got %v", claims["email"])
	}
	if claims["username"] != "demo1" {
		t.Fatalf("expected username claim, got %v", claims["username"])
	}
	if claims["jti"] == "" || claims["jti"] == nil {
		t.Fatalf("expected jti claim")
	}

	// Expiry is issuance time + 24h, to the second.
	exp, err := claims.GetExpirationTime()
	if err != nil {
		t.Fatalf("exp claim: %v", err)
	}
	min := before.Add(24 * time.Hour).Truncate(time.Second)
	max := after.Add(24 * time.Hour)
	if exp.Time.Before(min) || exp.Time.After(max) {
		t.Fatalf("exp %v not within [%v, %v]", exp.Time, min, max)
	}
}

func TestAuthService_Login_WrongPasswordAndUnknownAccountIndistinguishable(t *testing.T) {
	repo := newStubUserRepo()
	repo.add(t, 1, "demo1", "demo1@trademindiq.com", "demo123")
	svc := newTestService(repo)

	_, _, badPass := svc.Login(context.Background(), "demo1@trademindiq.com", "wrong")
	_, _, noUser := svc.Login(context.Background(), "ghost@trademindiq.com", "demo123")

	if badPass != domain.ErrInvalidCredentials {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", badPass)
	}
	if noUser != domain.ErrInvalidCredentials {
		t.Fatalf("unknown account: expected ErrInvalidCredentials, got %v", noUser)
	}
	if badPass.Error() != noUser.Error() {
		t.Fatalf("error messages differ: %q vs %q", badPass, noUser)
	}
}

func TestAuthService_Login_EmptyCredentials(t *testing.T) {
	svc := newTestService(newStubUserRepo())

	if _, _, err := svc.Login(context.Background(), "", "demo123"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "demo1@trademindiq.com", ""); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UsernameLookup(t *testing.T) {
	repo := newStubUserRepo()
	repo.add(t, 2, "demo2", "demo2@trademindiq.com", "demo123")
	svc := NewAuthService(repo, "secret", time.Hour, LookupUsername, zerolog.Nop())

	token, user, err := svc.Login(context.Background(), "demo2", "demo123")
	if err != nil {
		t.Fatalf("login by username failed: %v", err)
	}
	if token == "" || user.Email != "demo2@trademindiq.com" {
		t.Fatalf("unexpected result: token=%q user=%+v", token, user)
	}

	// Email identifiers no longer resolve in username mode.
	if _, _, err := svc.Login(context.Background(), "demo2@trademindiq.com", "demo123"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Resolve_RoundTrip(t *testing.T) {
	repo := newStubUserRepo()
	repo.add(t, 3, "admin", "admin@trademindiq.com", "admin123")
	svc := newTestService(repo)

	token, loggedIn, err := svc.Login(context.Background(), "admin@trademindiq.com", "admin123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	resolved, err := svc.Resolve(context.Background(), token)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if resolved != loggedIn {
		t.Fatalf("resolved profile %+v differs from login profile %+v", resolved, loggedIn)
	}
}

func TestAuthService_Resolve_AccountRemoved(t *testing.T) {
	repo := newStubUserRepo()
	repo.add(t, 4, "test", "test@trademindiq.com", "test123")
	svc := newTestService(repo)

	token, _, err := svc.Login(context.Background(), "test@trademindiq.com", "test123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	delete(repo.users, "test@trademindiq.com")

	if _, err := svc.Resolve(context.Background(), token); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound after account removal, got %v", err)
	}
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func TestAuthService_Resolve_ExpiredToken(t *testing.T) {
	repo := newStubUserRepo()
	repo.add(t, 1, "demo1", "demo1@trademindiq.com", "demo123")
	svc := newTestService(repo)

	expired := signToken(t, "secret", jwt.MapClaims{
		"email": "demo1@trademindiq.com",
		"exp":   time.Now().Add(-time.Hour).Unix(),
	})
	if _, err := svc.Resolve(context.Background(), expired); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestAuthService_Resolve_ExactlyAtExpiryIsExpired(t *testing.T) {
	repo := newStubUserRepo()
	repo.add(t, 1, "demo1", "demo1@trademindiq.com", "demo123")
	svc := newTestService(repo)

	// exp truncates to the current second, so validation time is never
	// strictly before it.
	boundary := signToken(t, "secret", jwt.MapClaims{
		"email": "demo1@trademindiq.com",
		"exp":   time.Now().Unix(),
	})
	if _, err := svc.Resolve(context.Background(), boundary); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken at expiry boundary, got %v", err)
	}
}

func TestAuthService_Resolve_BadSignature(t *testing.T) {
	repo := newStubUserRepo()
	repo.add(t, 1, "demo1", "demo1@trademindiq.com", "demo123")
	svc := newTestService(repo)

	forged := signToken(t, "other-secret", jwt.MapClaims{
		"email": "demo1@trademindiq.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	if _, err := svc.Resolve(context.Background(), forged); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestAuthService_Resolve_MissingEmailClaim(t *testing.T) {
	svc := newTestService(newStubUserRepo())

	noEmail := signToken(t, "secret", jwt.MapClaims{
		"user_id": 1,
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	if _, err := svc.Resolve(context.Background(), noEmail); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestAuthService_Resolve_Garbage(t *testing.T) {
	svc := newTestService(newStubUserRepo())

	if _, err := svc.Resolve(context.Background(), "not-a-token"); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}
