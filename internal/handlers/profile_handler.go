package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/stagelink/approval/backend/internal/repositories"
)

// ProfileHandler handles HTTP requests related to profiles
type ProfileHandler struct {
	profileRepository repositories.ProfileRepository
}

// NewProfileHandler creates a new ProfileHandler
func NewProfileHandler(profileRepo repositories.ProfileRepository) *ProfileHandler {
	return &ProfileHandler{profileRepository: profileRepo}
}

// ListClientProfiles returns the non-admin profiles, for the assignment and
// client-filter dropdowns. Admin-only; the route group applies the gate.
func (h *ProfileHandler) ListClientProfiles(c echo.Context) error {
	profiles, err := h.profileRepository.ListClientProfiles()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, profiles)
}
