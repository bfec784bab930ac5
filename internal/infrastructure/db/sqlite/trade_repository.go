package sqlite

import (
	"context"
	"fmt"

	"github.com/trademindiq/trading-account/internal/core/domain"
)

// TradeRepository reads trade rows. Trades are seeded once and never
// mutated, so the only operation is a per-user listing.
type TradeRepository struct {
	store *Store
}

func NewTradeRepository(store *Store) *TradeRepository {
	return &TradeRepository{store: store}
}

func (r *TradeRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Trade, error) {
	db, err := r.store.Open(ctx)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, `SELECT id, user_id, symbol, side, quantity, price,
		COALESCE(profit_loss, 0), COALESCE(status, ''), created_at
		FROM trades WHERE user_id = ? ORDER BY created_at DESC, id DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("list trades: %w", err)
	}
	defer rows.Close()

	trades := make([]domain.Trade, 0)
	for rows.Next() {
		var t domain.Trade
		if err := rows.Scan(&t.ID, &t.UserID, &t.Symbol, &t.Side, &t.Quantity, &t.Price,
			&t.ProfitLoss, &t.Status, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan trade: %w", err)
		}
		trades = append(trades, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list trades: %w", err)
	}
	return trades, nil
}
