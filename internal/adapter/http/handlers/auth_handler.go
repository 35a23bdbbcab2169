package handlers

import (
	"errors"
	"log"
	"net/http"

	request "bahia_gestao/internal/adapter/http/dto/request"
	response "bahia_gestao/internal/adapter/http/dto/response"
	"bahia_gestao/internal/adapter/http/middleware"
	"bahia_gestao/internal/usecase"
	"bahia_gestao/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidAuthPayload = pkg.NewDomainErrorSimple("INVALID_AUTH_INPUT", "Invalid authentication payload", http.StatusBadRequest)

type AuthHandler struct {
	usecase usecase.IAuthUseCase
}

func NewAuthHandler(uc usecase.IAuthUseCase) *AuthHandler {
	return &AuthHandler{usecase: uc}
}

// SignUp godoc
// @Summary Register a user
// @Tags auth
// @Accept json
// @Produce json
// @Param user body request.SignUpRequest true "User"
// @Success 201 {object} entities.UserProfile
// @Failure 400 {object} pkg.HTTPError
// @Failure 409 {object} pkg.HTTPError
// @Router /auth/signup [post]
func (h *AuthHandler) SignUp(c *gin.Context) {
	var payload request.SignUpRequest
	if !bindJSON(c, &payload, errInvalidAuthPayload) {
		return
	}
	profile, err := h.usecase.SignUp(c.Request.Context(), payload.Email, payload.Password, payload.Name)
	if err != nil {
		writeError(c, mapAuthError(err))
		return
	}
	c.JSON(http.StatusCreated, profile)
}

// Login godoc
// @Summary Exchange credentials for a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body request.LoginRequest true "Credentials"
// @Success 200 {object} response.LoginResponse
// @Failure 401 {object} pkg.HTTPError
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if !bindJSON(c, &payload, errInvalidAuthPayload) {
		return
	}
	session, err := h.usecase.Login(c.Request.Context(), payload.Email, payload.Password)
	if err != nil {
		writeError(c, mapAuthError(err))
		return
	}
	log.Printf("[auth][handler] login success user_id=%s", session.Profile.ID)
	c.JSON(http.StatusOK, response.FromSession(session))
}

// Me godoc
// @Summary Current user
// @Tags auth
// @Produce json
// @Security Bearer
// @Success 200 {object} entities.UserProfile
// @Failure 401 {object} pkg.HTTPError
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	claims, _ := middleware.ClaimsFromContext(c)
	profile, err := h.usecase.CurrentUser(c.Request.Context(), claims.UserID)
	if err != nil {
		writeError(c, mapAuthError(err))
		return
	}
	c.JSON(http.StatusOK, profile)
}

// Logout revokes the presented token until it expires.
func (h *AuthHandler) Logout(c *gin.Context) {
	claims, _ := middleware.ClaimsFromContext(c)
	if err := h.usecase.Logout(c.Request.Context(), claims); err != nil {
		writeError(c, mapAuthError(err))
		return
	}
	log.Printf("[auth][handler] logout user_id=%s", claims.UserID)
	c.Status(http.StatusNoContent)
}

func mapAuthError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return pkg.NewDomainErrorSimple("INVALID_CREDENTIALS", "Invalid email or password", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrEmailTaken):
		return pkg.NewDomainErrorSimple("EMAIL_TAKEN", "Email already registered", http.StatusConflict)
	case errors.Is(err, usecase.ErrUserNotFound):
		return pkg.NewDomainErrorSimple("USER_NOT_FOUND", "User not found", http.StatusNotFound)
	default:
		return mapDomainError(err)
	}
}
