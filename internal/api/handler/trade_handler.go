package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/trademindiq/trading-account/internal/core/domain"
	"github.com/trademindiq/trading-account/internal/core/ports"
)

type TradeHandler struct {
	trades ports.TradeRepository
}

func NewTradeHandler(trades ports.TradeRepository) *TradeHandler {
	return &TradeHandler{trades: trades}
}

type tradesResponse struct {
	Trades []domain.Trade `json:"trades"`
}

// List returns the authenticated account's trade rows, newest first.
//
// @Summary      List own trades
// @Tags         trades
// @Produce      json
// @Success      200  {object}  tradesResponse
// @Failure      401  {object}  map[string]string
// @Security     BearerAuth
// @Router       /api/trades [get]
func (h *TradeHandler) List(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	trades, err := h.trades.ListByUser(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tradesResponse{Trades: trades})
}
