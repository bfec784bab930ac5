package ports

import (
	"context"

	"github.com/trademindiq/trading-account/internal/core/domain"
)

// AuthService authenticates accounts and resolves bearer tokens back to
// their current store record.
type AuthService interface {
	Login(ctx context.Context, identifier, password string) (string, domain.Profile, error)
	Resolve(ctx context.Context, token string) (domain.Profile, error)
}
