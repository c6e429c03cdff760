package handler

import (
	"crypto/subtle"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/noah-isme/jadwal-go-api/internal/dto"
	"github.com/noah-isme/jadwal-go-api/internal/utils"
)

// AuthHandler exchanges the shared admin passcode for a signed bearer token.
type AuthHandler struct {
	passcode string
	secret   string
	tokenTTL time.Duration
	logger   zerolog.Logger
	now      func() time.Time
}

// NewAuthHandler constructs the handler.
func NewAuthHandler(passcode, secret string, tokenTTL time.Duration, logger zerolog.Logger) *AuthHandler {
	if tokenTTL <= 0 {
		tokenTTL = 12 * time.Hour
	}
	return &AuthHandler{
		passcode: passcode,
		secret:   secret,
		tokenTTL: tokenTTL,
		logger:   logger.With().Str("component", "auth_handler").Logger(),
		now:      time.Now,
	}
}

// Register attaches the login endpoint to the router group.
func (h *AuthHandler) Register(router fiber.Router) {
	router.Post("/login", h.login)
}

func (h *AuthHandler) login(c *fiber.Ctx) error {
	var payload dto.LoginRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	if subtle.ConstantTimeCompare([]byte(payload.Passcode), []byte(h.passcode)) != 1 {
		h.logger.Warn().Str("ip", c.IP()).Msg("admin login rejected")
		return utils.SendError(c, fiber.StatusUnauthorized, "invalid passcode")
	}

	now := h.now()
	expiresAt := now.Add(h.tokenTTL)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"role": "admin",
		"iat":  now.Unix(),
		"exp":  expiresAt.Unix(),
	})

	signed, err := token.SignedString([]byte(h.secret))
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to sign admin token")
		return utils.SendError(c, fiber.StatusInternalServerError, "internal server error")
	}

	return utils.SendSuccess(c, "login successful", dto.LoginResponse{Token: signed, ExpiresAt: expiresAt})
}
