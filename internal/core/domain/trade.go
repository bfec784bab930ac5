package domain

import "time"

const (
	SideBuy  = "buy"
	SideSell = "sell"
)

const (
	TradeOpen   = "open"
	TradeClosed = "closed"
)

// Trade is a demo position row. Trades are written once at seed time and
// only ever read back; the user_id reference is not enforced by the storage
// engine.
type Trade struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"user_id"`
	Symbol     string    `json:"symbol"`
	Side       string    `json:"side"`
	Quantity   float64   `json:"quantity"`
	Price      float64   `json:"price"`
	ProfitLoss float64   `json:"profit_loss"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}
