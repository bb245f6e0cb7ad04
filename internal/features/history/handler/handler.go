package handler

import (
	"net/http"

	"ongkir-api/internal/core/logger"
	"ongkir-api/internal/features/history/ports"
	"ongkir-api/internal/features/history/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const sessionTokenHeader = "X-Session-Token"

// HistoryHandler handles HTTP requests for the calculation history.
type HistoryHandler struct {
	historyService *service.HistoryService
	sessions       ports.SessionResolver
}

// NewHistoryHandler creates a new HistoryHandler.
func NewHistoryHandler(historyService *service.HistoryService, sessions ports.SessionResolver) *HistoryHandler {
	return &HistoryHandler{
		historyService: historyService,
		sessions:       sessions,
	}
}

// ErrorResponse represents an error response with Ray ID.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for tracing.
	RayID string `json:"ray_id,omitempty"`
}

// List godoc
// @Summary List calculation history
// @Description Returns the caller's journal of past calculations, most recent first, capped at 10 entries.
// @Tags history
// @Produce json
// @Param X-Session-Token header string true "Session token"
// @Success 200 {array} rates.ShippingCalculation
// @Failure 401 {object} ErrorResponse
// @Router /history [get]
func (h *HistoryHandler) List(c *fiber.Ctx) error {
	rayID, ok := c.Locals("requestid").(string)
	if !ok {
		rayID = "unknown"
	}

	userID := h.sessions.ResolveUser(c.Context(), c.Get(sessionTokenHeader))
	if userID == "" {
		return c.Status(http.StatusUnauthorized).JSON(ErrorResponse{
			Message: "valid session required",
			RayID:   rayID,
		})
	}

	return c.JSON(h.historyService.List(c.Context(), userID))
}

// Clear godoc
// @Summary Clear calculation history
// @Description Deletes the caller's entire journal unconditionally.
// @Tags history
// @Produce json
// @Param X-Session-Token header string true "Session token"
// @Success 200 {object} map[string]string
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /history [delete]
func (h *HistoryHandler) Clear(c *fiber.Ctx) error {
	rayID, ok := c.Locals("requestid").(string)
	if !ok {
		rayID = "unknown"
	}

	userID := h.sessions.ResolveUser(c.Context(), c.Get(sessionTokenHeader))
	if userID == "" {
		return c.Status(http.StatusUnauthorized).JSON(ErrorResponse{
			Message: "valid session required",
			RayID:   rayID,
		})
	}

	if err := h.historyService.Clear(c.Context(), userID); err != nil {
		logger.Get().Error("Failed to clear history",
			zap.String("user_id", userID),
			zap.String("ray_id", rayID),
			zap.Error(err),
		)
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Message: "Internal server error",
			RayID:   rayID,
		})
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "History cleared",
	})
}
