package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/trademindiq/trading-account/internal/infrastructure/db/sqlite"
)

const serviceName = "TradeMindIQ API"

// HealthHandler serves the liveness probes. Both variants report whether the
// database file is currently present on disk, not whether it is queryable.
type HealthHandler struct {
	store *sqlite.Store
}

func NewHealthHandler(store *sqlite.Store) *HealthHandler {
	return &HealthHandler{store: store}
}

type healthResponse struct {
	Status    string `json:"status"`
	Service   string `json:"service"`
	Database  string `json:"database"`
	Timestamp string `json:"timestamp,omitempty"`
}

// Liveness handles GET /health.
func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, healthResponse{
		Status:   "ok",
		Service:  serviceName,
		Database: h.databaseStatus(),
	})
}

// APIHealth handles GET /api/health; identical to Liveness plus the current
// UTC timestamp.
func (h *HealthHandler) APIHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, healthResponse{
		Status:    "ok",
		Service:   serviceName,
		Database:  h.databaseStatus(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *HealthHandler) databaseStatus() string {
	if h.store.Exists() {
		return "connected"
	}
	return "not found"
}
