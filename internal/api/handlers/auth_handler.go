package handlers

import (
	"time"

	"nyaay-saathi/internal/dto"
	"nyaay-saathi/internal/service"
	"nyaay-saathi/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type AuthHandler struct {
	authService  *service.AuthService
	secureCookie bool
	logger       *zap.Logger
}

func NewAuthHandler(authService *service.AuthService, secureCookie bool, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		secureCookie: secureCookie,
		logger:       logger,
	}
}

func (h *AuthHandler) setSessionCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.TokenCookie,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(h.authService.TokenDuration()),
		HTTPOnly: true,
		Secure:   h.secureCookie,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// Register godoc
// @Summary Register a new user
// @Description Creates an account and logs it in
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Registration request"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.MessageResponse
// @Router /api/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c)
	}

	res, err := h.authService.Register(c.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		return respondFailure(c, h.logger, err, "Registration failed")
	}

	h.setSessionCookie(c, res.Token)
	return c.JSON(dto.MessageResponse{Success: true, Message: "Registration successful"})
}

// Login godoc
// @Summary Login user
// @Description Login with email and password; sets the session cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login request"
// @Success 200 {object} dto.MessageResponse
// @Failure 401 {object} dto.MessageResponse
// @Router /api/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c)
	}

	res, err := h.authService.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return respondFailure(c, h.logger, err, "Login failed")
	}

	h.setSessionCookie(c, res.Token)
	return c.JSON(dto.MessageResponse{Success: true, Message: "Login successful"})
}

// Logout godoc
// @Summary Logout user
// @Tags auth
// @Produce json
// @Success 200 {object} dto.MessageResponse
// @Router /api/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.ClearCookie(middleware.TokenCookie)
	return c.JSON(dto.MessageResponse{Success: true, Message: "Logged out successfully"})
}

// CurrentUser godoc
// @Summary Current user
// @Tags auth
// @Produce json
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} dto.UserResponse
// @Router /api/user [get]
func (h *AuthHandler) CurrentUser(c *fiber.Ctx) error {
	userID, email, name := middleware.CurrentUser(c)
	return c.JSON(dto.UserResponse{
		LoggedIn: true,
		UserID:   userID,
		Email:    email,
		Name:     name,
	})
}
