package handlers

import (
	"net/http"

	request "bahia_gestao/internal/adapter/http/dto/request"
	"bahia_gestao/internal/adapter/http/middleware"
	"bahia_gestao/internal/usecase"
	"bahia_gestao/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidProfilePayload  = pkg.NewDomainErrorSimple("INVALID_PROFILE_INPUT", "Invalid profile payload", http.StatusBadRequest)
	errInvalidSettingsPayload = pkg.NewDomainErrorSimple("INVALID_SETTINGS_INPUT", "Invalid settings payload", http.StatusBadRequest)
)

// ProfileHandler serves user administration (admin routes) and the caller's
// own company settings.
type ProfileHandler struct {
	usecase usecase.IProfileUseCase
}

func NewProfileHandler(uc usecase.IProfileUseCase) *ProfileHandler {
	return &ProfileHandler{usecase: uc}
}

func (h *ProfileHandler) ListProfiles(c *gin.Context) {
	profiles, err := h.usecase.List(c.Request.Context())
	if err != nil {
		writeError(c, mapAuthError(err))
		return
	}
	c.JSON(http.StatusOK, profiles)
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	profile, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapAuthError(err))
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	var payload request.ProfileRequest
	if !bindJSON(c, &payload, errInvalidProfilePayload) {
		return
	}
	profile, err := h.usecase.Update(c.Request.Context(), payload.ToEntity(c.Param("id")))
	if err != nil {
		writeError(c, mapAuthError(err))
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) DeleteProfile(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, mapAuthError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// GetSettings godoc
// @Summary Company settings of the current user
// @Tags settings
// @Produce json
// @Security Bearer
// @Success 200 {object} entities.UserSettings
// @Router /settings [get]
func (h *ProfileHandler) GetSettings(c *gin.Context) {
	claims, _ := middleware.ClaimsFromContext(c)
	settings, err := h.usecase.GetSettings(c.Request.Context(), claims.UserID)
	if err != nil {
		writeError(c, mapAuthError(err))
		return
	}
	c.JSON(http.StatusOK, settings)
}

func (h *ProfileHandler) UpdateSettings(c *gin.Context) {
	var payload request.SettingsRequest
	if !bindJSON(c, &payload, errInvalidSettingsPayload) {
		return
	}
	claims, _ := middleware.ClaimsFromContext(c)
	settings, err := h.usecase.UpdateSettings(c.Request.Context(), claims.UserID, payload.ToEntity())
	if err != nil {
		writeError(c, mapAuthError(err))
		return
	}
	c.JSON(http.StatusOK, settings)
}
