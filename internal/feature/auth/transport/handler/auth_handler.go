// Package handler provides the HTTP handlers for the auth feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"taskmaster/internal/feature/auth/domain/entity"
	"taskmaster/internal/feature/auth/transport/http/dto"
	"taskmaster/internal/feature/auth/usecase"
	"taskmaster/internal/platform/http/middleware"
	"taskmaster/pkg/apierrors"
)

// AuthUsecase defines the auth operations consumed by this handler.
type AuthUsecase interface {
	// Register creates a user and logs it in, returning the issued token.
	Register(ctx context.Context, name, email, password string) (*entity.User, string, error)
	// Login authenticates a user and returns a signed token on success.
	Login(ctx context.Context, email, password string) (*entity.User, string, error)
}

// AuthHandler handles HTTP requests for registration and login.
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler creates a new AuthHandler with the injected usecase.
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Register handles POST /api/auth/register.
// Returns 201 with a token on success, 400 on malformed input, 409 when the
// email is taken.
func (h *AuthHandler) Register(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("register validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidRequest, lang))
		return
	}

	user, token, err := h.auth.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		var ve *usecase.ValidationError
		switch {
		case errors.As(err, &ve):
			slog.Warn("register rejected", "error", err, "remote_addr", c.ClientIP())
			c.JSON(http.StatusBadRequest,
				apierrors.JsonErr{ErrDetails: apierrors.Err{Code: http.StatusBadRequest, Message: ve.Message}})
		case errors.Is(err, usecase.ErrEmailAlreadyExists):
			slog.Warn("register conflict", "email", req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusConflict,
				apierrors.CreateError(http.StatusConflict, apierrors.MsgEmailExists, lang))
		default:
			slog.Error("register failed", "error", err, "remote_addr", c.ClientIP())
			c.JSON(http.StatusInternalServerError,
				apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgInternalError, lang))
		}
		return
	}

	slog.Info("user registered", "user_id", user.ID, "email", user.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, toAuthResponse(user, token))
}

// Login handles POST /api/auth/login.
// Returns 200 with a token on success, 400 on malformed input, 401 on bad
// credentials (identical for unknown email and wrong password).
func (h *AuthHandler) Login(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidRequest, lang))
		return
	}

	user, token, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		var ve *usecase.ValidationError
		switch {
		case errors.As(err, &ve):
			slog.Warn("login rejected", "error", err, "remote_addr", c.ClientIP())
			c.JSON(http.StatusBadRequest,
				apierrors.JsonErr{ErrDetails: apierrors.Err{Code: http.StatusBadRequest, Message: ve.Message}})
		case errors.Is(err, usecase.ErrInvalidCredentials):
			slog.Warn("login failed", "email", req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusUnauthorized,
				apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgInvalidCredentials, lang))
		default:
			slog.Error("login error", "error", err, "remote_addr", c.ClientIP())
			c.JSON(http.StatusInternalServerError,
				apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgInternalError, lang))
		}
		return
	}

	slog.Info("user login successful", "user_id", user.ID, "email", user.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, toAuthResponse(user, token))
}

func toAuthResponse(user *entity.User, token string) dto.AuthResponse {
	return dto.AuthResponse{
		Token: token,
		User: dto.UserPayload{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
		},
	}
}
