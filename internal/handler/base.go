// Package handler defines HTTP request handlers and related utilities.
package handler

import (
	"log/slog"
	"strconv"
)

// BaseHandler provides common dependencies for HTTP handlers.
type BaseHandler struct {
	logger *slog.Logger
}

// parseAmount reads a raw base-10 token amount from a query parameter.
func (h *BaseHandler) parseAmount(field, s string) (uint64, error) {
	if s == "" {
		return 0, NewAmountRequired(field)
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		h.logger.Debug("failed to parse amount", "field", field, "value", s, "err", err)
		return 0, NewInvalidAmount(field)
	}
	return v, nil
}
