package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/taskflowhq/taskflow-api/internal/domain"
	"github.com/taskflowhq/taskflow-api/internal/metrics"
)

// authUsecaser is the subset of AuthUsecase the handler needs.
// Defined here (point of use) so tests can inject a fake.
type authUsecaser interface {
	Signup(ctx context.Context, name, email, password string) (*domain.User, string, error)
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
	CurrentUser(ctx context.Context, userID string) (*domain.User, error)
}

type AuthHandler struct {
	authUsecase authUsecaser
	logger      *slog.Logger
}

func NewAuthHandler(authUsecase authUsecaser, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		logger:      logger.With("component", "auth_handler"),
	}
}

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// userResponse exposes the public profile only; the password hash never
// leaves the server.
type userResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type authResponse struct {
	User  userResponse `json:"user"`
	Token string       `json:"token"`
}

// POST /api/auth/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": errMissingFields})
		return
	}

	user, tok, err := h.authUsecase.Signup(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		var weak *domain.WeakPasswordError
		switch {
		case errors.Is(err, domain.ErrMissingFields):
			c.JSON(http.StatusBadRequest, gin.H{"message": errMissingFields})
		case errors.As(err, &weak):
			msg := "Password is too weak"
			if weak.TooShort {
				msg = "Password is too short"
			}
			c.JSON(http.StatusBadRequest, gin.H{"message": msg, "score": weak.Score})
		case errors.Is(err, domain.ErrEmailTaken):
			metrics.SignupsTotal.WithLabelValues("conflict").Inc()
			c.JSON(http.StatusConflict, gin.H{"message": errEmailTaken})
		default:
			// Request bodies carry the raw password, so log the error only.
			h.logger.Error("signup", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": errInternalServer})
		}
		return
	}

	metrics.SignupsTotal.WithLabelValues("success").Inc()
	h.logger.InfoContext(c.Request.Context(), "user created", "user_id", user.ID, "email", user.Email)
	c.JSON(http.StatusOK, authResponse{
		User:  userResponse{Name: user.Name, Email: user.Email},
		Token: tok,
	})
}

// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": errMissingFields})
		return
	}

	user, tok, err := h.authUsecase.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMissingFields):
			c.JSON(http.StatusBadRequest, gin.H{"message": errMissingFields})
		case errors.Is(err, domain.ErrInvalidCredentials):
			metrics.LoginsTotal.WithLabelValues("denied").Inc()
			c.JSON(http.StatusUnauthorized, gin.H{"message": errInvalidCredentials})
		default:
			h.logger.Error("login", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": errInternalServer})
		}
		return
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	h.logger.InfoContext(c.Request.Context(), "login success", "user_id", user.ID)
	c.JSON(http.StatusOK, authResponse{
		User:  userResponse{Name: user.Name, Email: user.Email},
		Token: tok,
	})
}

// GET /api/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.authUsecase.CurrentUser(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnauthorized):
			c.JSON(http.StatusUnauthorized, gin.H{"message": errTokenInvalid})
		case errors.Is(err, domain.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": errUserNotFound})
		default:
			h.logger.Error("current user", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": errInternalServer})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": userResponse{Name: user.Name, Email: user.Email}})
}
