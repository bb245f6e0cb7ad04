package handler

import (
	"net/http"

	"ongkir-api/internal/features/session/domain"
	"ongkir-api/internal/features/session/service"

	"github.com/gofiber/fiber/v2"
)

const sessionTokenHeader = "X-Session-Token"

// SessionHandler handles auth HTTP requests.
type SessionHandler struct {
	sessionService *service.SessionService
}

// NewSessionHandler creates a new session handler.
func NewSessionHandler(sessionService *service.SessionService) *SessionHandler {
	return &SessionHandler{sessionService: sessionService}
}

// ErrorResponse represents an error response with Ray ID.
type ErrorResponse struct {
	Message string `json:"message"`
	RayID   string `json:"ray_id"`
}

// LoginRequest is the login form payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is the registration form payload.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse carries a fresh session and its token.
type AuthResponse struct {
	Token   string         `json:"token"`
	Session domain.Session `json:"session"`
}

// Login godoc
// @Summary Log in
// @Description Creates a session from the submitted credentials. The password is accepted but never verified.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/login [post]
func (h *SessionHandler) Login(c *fiber.Ctx) error {
	rayID, _ := c.Locals("requestid").(string)

	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "invalid request body",
			RayID:   rayID,
		})
	}
	if req.Email == "" {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "email is required",
			RayID:   rayID,
		})
	}

	session, token, err := h.sessionService.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Message: "failed to create session",
			RayID:   rayID,
		})
	}

	return c.JSON(AuthResponse{Token: token, Session: *session})
}

// Register godoc
// @Summary Register
// @Description Creates a session using the supplied display name. No uniqueness or format validation is applied to the email.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration form"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/register [post]
func (h *SessionHandler) Register(c *fiber.Ctx) error {
	rayID, _ := c.Locals("requestid").(string)

	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "invalid request body",
			RayID:   rayID,
		})
	}
	if req.Name == "" || req.Email == "" {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "name and email are required",
			RayID:   rayID,
		})
	}

	session, token, err := h.sessionService.Register(c.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Message: "failed to create session",
			RayID:   rayID,
		})
	}

	return c.JSON(AuthResponse{Token: token, Session: *session})
}

// Logout godoc
// @Summary Log out
// @Description Deletes the session identified by the X-Session-Token header. Idempotent.
// @Tags auth
// @Produce json
// @Param X-Session-Token header string false "Session token"
// @Success 200 {object} map[string]string
// @Failure 500 {object} ErrorResponse
// @Router /auth/logout [post]
func (h *SessionHandler) Logout(c *fiber.Ctx) error {
	rayID, _ := c.Locals("requestid").(string)

	if err := h.sessionService.Logout(c.Context(), c.Get(sessionTokenHeader)); err != nil {
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Message: "failed to delete session",
			RayID:   rayID,
		})
	}
	return c.JSON(fiber.Map{"message": "Logged out"})
}

// Current godoc
// @Summary Current session
// @Description Returns the session identified by the X-Session-Token header.
// @Tags auth
// @Produce json
// @Param X-Session-Token header string false "Session token"
// @Success 200 {object} domain.Session
// @Failure 401 {object} ErrorResponse
// @Router /auth/me [get]
func (h *SessionHandler) Current(c *fiber.Ctx) error {
	rayID, _ := c.Locals("requestid").(string)

	session, err := h.sessionService.Current(c.Context(), c.Get(sessionTokenHeader))
	if err != nil || session == nil {
		return c.Status(http.StatusUnauthorized).JSON(ErrorResponse{
			Message: "valid session required",
			RayID:   rayID,
		})
	}
	return c.JSON(session)
}
