package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"bookhive/internal/api/dto"
	"bookhive/internal/api/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService service.AuthService
	logger      *slog.Logger
}

func NewAuthHandler(authService service.AuthService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, logger: logger}
}

// RegisterRoutes registers auth routes. Signup and login sit behind the rate
// limiter; logout additionally requires a valid token.
func (h *AuthHandler) RegisterRoutes(router *gin.RouterGroup, rateLimit, authRequired gin.HandlerFunc) {
	auth := router.Group("/auth", rateLimit)
	{
		auth.POST("/signup", h.Signup)
		auth.POST("/login", h.Login)
		auth.POST("/logout", authRequired, h.Logout)
	}
}

// Signup creates an account and returns the public user fields plus a token
// POST /api/auth/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Please fill all fields"})
		return
	}

	user, token, err := h.authService.Signup(req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrEmailInUse) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "User already exists"})
			return
		}
		h.serverError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data": dto.SignupData{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
			Token: token,
		},
	})
}

// Login authenticates and returns a token with the user projection
// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Please fill all fields"})
		return
	}

	token, user, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid credentials"})
			return
		}
		h.serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": dto.LoginData{
			Token: token,
			User:  dto.FromModelToUserProjection(user),
		},
	})
}

// Logout revokes the presented token until its natural expiry
// POST /api/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	token := c.GetString("token")

	if err := h.authService.Logout(token); err != nil {
		h.logger.Error("logout failed", slog.String("error", err.Error()))
	}

	// logout always succeeds from the client's point of view
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Logged out"})
}

func (h *AuthHandler) serverError(c *gin.Context, err error) {
	h.logger.Error("auth handler error", slog.String("error", err.Error()))
	c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
}
