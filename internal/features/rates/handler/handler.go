package handler

import (
	"errors"
	"net/http"

	"ongkir-api/internal/core/logger"
	"ongkir-api/internal/features/rates/ports"
	"ongkir-api/internal/features/rates/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// sessionTokenHeader carries the opaque session token, when the caller has one.
const sessionTokenHeader = "X-Session-Token"

// RateHandler handles HTTP requests for shipping cost lookups.
type RateHandler struct {
	rateService *service.RateService
	sessions    ports.SessionResolver
}

// NewRateHandler creates a new RateHandler.
func NewRateHandler(rateService *service.RateService, sessions ports.SessionResolver) *RateHandler {
	return &RateHandler{
		rateService: rateService,
		sessions:    sessions,
	}
}

// ErrorResponse represents an error response with Ray ID.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for tracing.
	RayID string `json:"ray_id,omitempty"`
}

// Calculate godoc
// @Summary Calculate shipping cost
// @Description Submits an origin/destination/weight/courier request to the rate provider. With a valid X-Session-Token the calculation is saved to the user's history.
// @Tags rates
// @Accept json
// @Produce json
// @Param request body service.CalculationRequest true "Calculation request"
// @Param X-Session-Token header string false "Session token"
// @Success 200 {array} domain.CourierResult
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /shipping/cost [post]
func (h *RateHandler) Calculate(c *fiber.Ctx) error {
	rayID, ok := c.Locals("requestid").(string)
	if !ok {
		rayID = "unknown"
	}

	var req service.CalculationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "Invalid request body",
			RayID:   rayID,
		})
	}

	userID := h.sessions.ResolveUser(c.Context(), c.Get(sessionTokenHeader))

	results, err := h.rateService.Calculate(c.Context(), req, userID)
	if err != nil {
		if errors.Is(err, service.ErrMissingCity) ||
			errors.Is(err, service.ErrInvalidWeight) ||
			errors.Is(err, service.ErrUnknownCourier) {
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Message: err.Error(),
				RayID:   rayID,
			})
		}

		logger.Get().Error("Failed to calculate shipping cost",
			zap.String("origin", req.Origin.ID),
			zap.String("destination", req.Destination.ID),
			zap.String("courier", req.Courier),
			zap.String("ray_id", rayID),
			zap.Error(err),
		)

		return c.Status(http.StatusBadGateway).JSON(ErrorResponse{
			Message: err.Error(),
			RayID:   rayID,
		})
	}

	return c.Status(http.StatusOK).JSON(results)
}
