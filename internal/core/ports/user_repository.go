package ports

import (
	"context"

	"github.com/trademindiq/trading-account/internal/core/domain"
)

// UserRepository defines read access to stored accounts. Accounts are only
// ever written by the seeding commands, so no Create/Update surface exists
// here.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
}

// TradeRepository defines read access to stored trade rows.
type TradeRepository interface {
	ListByUser(ctx context.Context, userID int64) ([]domain.Trade, error)
}
