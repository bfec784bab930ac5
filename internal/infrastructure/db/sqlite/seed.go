package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/trademindiq/trading-account/internal/core/domain"
)

// DemoUser is one seeded account. The password is kept in the clear so the
// final report can echo working credentials; only its bcrypt hash is stored.
type DemoUser struct {
	Username  string
	Email     string
	Password  string
	FirstName string
	LastName  string
	Role      string
}

// DemoTrade is one seeded position, tied to its owner by username so the
// insert can reference whatever id the user row received.
type DemoTrade struct {
	Username   string
	Symbol     string
	Side       string
	Quantity   float64
	Price      float64
	ProfitLoss float64
	Status     string
}

// DemoUsers is the fixed demo account set.
var DemoUsers = []DemoUser{
	{Username: "demo1", Email: "demo1@trademindiq.com", Password: "demo123", FirstName: "Demo", LastName: "User1", Role: domain.DefaultRole},
	{Username: "demo2", Email: "demo2@trademindiq.com", Password: "demo123", FirstName: "Demo", LastName: "User2", Role: domain.DefaultRole},
	{Username: "admin", Email: "admin@trademindiq.com", Password: "admin123", FirstName: "Admin", LastName: "User", Role: "admin"},
	{Username: "test", Email: "test@trademindiq.com", Password: "test123", FirstName: "Test", LastName: "User", Role: domain.DefaultRole},
}

// DemoTrades is the fixed demo position set.
var DemoTrades = []DemoTrade{
	{Username: "demo1", Symbol: "AAPL", Side: domain.SideBuy, Quantity: 100, Price: 150.25, ProfitLoss: 525.50, Status: domain.TradeClosed},
	{Username: "demo1", Symbol: "TSLA", Side: domain.SideSell, Quantity: 50, Price: 245.75, ProfitLoss: -125.25, Status: domain.TradeClosed},
	{Username: "demo2", Symbol: "GOOGL", Side: domain.SideBuy, Quantity: 25, Price: 2750.00, ProfitLoss: 1250.75, Status: domain.TradeClosed},
	{Username: "demo2", Symbol: "MSFT", Side: domain.SideBuy, Quantity: 75, Price: 325.50, ProfitLoss: 325.25, Status: domain.TradeClosed},
	{Username: "admin", Symbol: "NVDA", Side: domain.SideBuy, Quantity: 200, Price: 875.25, ProfitLoss: 2150.50, Status: domain.TradeClosed},
	{Username: "admin", Symbol: "AMD", Side: domain.SideSell, Quantity: 150, Price: 125.75, ProfitLoss: -75.25, Status: domain.TradeClosed},
}

// Summary reports the outcome of one seeding run. Failed counts cover rows
// that were reported and skipped; a failing row never aborts the batch.
type Summary struct {
	Path         string
	Users        int
	Trades       int
	FailedUsers  int
	FailedTrades int
	TotalUsers   int
	TotalTrades  int
}

// Seeder populates the store with the demo dataset under one of two
// mutually exclusive policies: preserving (upsert users, append trades) or
// destructive (delete the file and rebuild).
type Seeder struct {
	store *Store
	log   zerolog.Logger
}

func NewSeeder(store *Store, log zerolog.Logger) *Seeder {
	return &Seeder{store: store, log: log}
}

// SeedPreserving creates the tables if absent, upserts each demo user by its
// unique username/email pair and appends the demo trades. Re-running leaves
// the user count unchanged but appends the trade batch again; the
// duplication mirrors the original data loader and is intentional.
func (s *Seeder) SeedPreserving(ctx context.Context) (*Summary, error) {
	return s.seed(ctx, true)
}

// SeedDestructive removes any existing database file, then rebuilds schema,
// users and trades from scratch.
func (s *Seeder) SeedDestructive(ctx context.Context) (*Summary, error) {
	if s.store.Exists() {
		if err := os.Remove(s.store.Path()); err != nil {
			return nil, fmt.Errorf("remove existing store: %w", err)
		}
		s.log.Info().Str("path", s.store.Path()).Msg("removed existing database")
	}
	return s.seed(ctx, false)
}

func (s *Seeder) seed(ctx context.Context, upsert bool) (*Summary, error) {
	db, err := s.store.Create(ctx)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	if err := CreateSchema(ctx, db); err != nil {
		return nil, err
	}

	sum := &Summary{Path: s.store.Path()}
	ids := s.insertUsers(ctx, db, upsert, sum)
	s.insertTrades(ctx, db, ids, sum)

	// Report totals as stored, not as inserted, so partial failures and
	// accumulated trade rows are visible.
	if sum.TotalUsers, err = countRows(ctx, db, "users"); err != nil {
		return nil, err
	}
	if sum.TotalTrades, err = countRows(ctx, db, "trades"); err != nil {
		return nil, err
	}
	return sum, nil
}

// insertUsers writes the demo accounts and returns username → generated id.
// Row failures are logged and counted, never fatal.
func (s *Seeder) insertUsers(ctx context.Context, db *sql.DB, upsert bool, sum *Summary) map[string]int64 {
	stmt := `INSERT INTO users (username, email, hashed_password, first_name, last_name, role)
		VALUES (?, ?, ?, ?, ?, ?)`
	if upsert {
		stmt = `INSERT OR REPLACE INTO users (username, email, hashed_password, first_name, last_name, role)
			VALUES (?, ?, ?, ?, ?, ?)`
	}

	ids := make(map[string]int64, len(DemoUsers))
	for _, u := range DemoUsers {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			s.log.Error().Err(err).Str("email", u.Email).Msg("hash password failed")
			sum.FailedUsers++
			continue
		}

		res, err := db.ExecContext(ctx, stmt, u.Username, u.Email, string(hash), u.FirstName, u.LastName, u.Role)
		if err != nil {
			s.log.Error().Err(err).Str("email", u.Email).Msg("seed user failed")
			sum.FailedUsers++
			continue
		}

		id, err := res.LastInsertId()
		if err != nil {
			s.log.Error().Err(err).Str("email", u.Email).Msg("read generated id failed")
			sum.FailedUsers++
			continue
		}

		ids[u.Username] = id
		sum.Users++
		s.log.Info().Str("email", u.Email).Int64("id", id).Msg("seeded user")
	}
	return ids
}

func (s *Seeder) insertTrades(ctx context.Context, db *sql.DB, ids map[string]int64, sum *Summary) {
	for _, t := range DemoTrades {
		userID, ok := ids[t.Username]
		if !ok {
			s.log.Warn().Str("username", t.Username).Str("symbol", t.Symbol).Msg("skipping trade: owner was not seeded")
			sum.FailedTrades++
			continue
		}

		_, err := db.ExecContext(ctx, `INSERT INTO trades (user_id, symbol, side, quantity, price, profit_loss, status)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			userID, t.Symbol, t.Side, t.Quantity, t.Price, t.ProfitLoss, t.Status)
		if err != nil {
			s.log.Error().Err(err).Str("symbol", t.Symbol).Msg("seed trade failed")
			sum.FailedTrades++
			continue
		}

		sum.Trades++
		s.log.Info().Str("symbol", t.Symbol).Str("username", t.Username).Msg("seeded trade")
	}
}

func countRows(ctx context.Context, db *sql.DB, table string) (int, error) {
	var n int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table).Scan(&n); err != nil {
		return 0, fmt.Errorf("count %s: %w", table, err)
	}
	return n, nil
}

// LogSummary reports the outcome of a seeding run, including the demo
// credentials so the database is immediately usable.
func LogSummary(log zerolog.Logger, sum *Summary) {
	path := sum.Path
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}

	log.Info().
		Int("users", sum.TotalUsers).
		Int("trades", sum.TotalTrades).
		Str("path", path).
		Msg("database ready")

	if sum.FailedUsers > 0 || sum.FailedTrades > 0 {
		log.Warn().
			Int("failed_users", sum.FailedUsers).
			Int("failed_trades", sum.FailedTrades).
			Msg("some rows were skipped")
	}

	for _, u := range DemoUsers {
		log.Info().Str("email", u.Email).Str("password", u.Password).Msg("demo credential")
	}
}
