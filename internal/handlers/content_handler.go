package handlers

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stagelink/approval/backend/internal/content"
	"github.com/stagelink/approval/backend/internal/middleware"
	"github.com/stagelink/approval/backend/internal/models"
	"github.com/stagelink/approval/backend/internal/repositories"
	"gorm.io/gorm"
)

// ContentHandler handles HTTP requests related to content items
type ContentHandler struct {
	contentRepository  repositories.ContentRepository
	profileRepository  repositories.ProfileRepository
	activityRepository repositories.ActivityRepository
}

// NewContentHandler creates a new ContentHandler
func NewContentHandler(contentRepo repositories.ContentRepository, profileRepo repositories.ProfileRepository, activityRepo repositories.ActivityRepository) *ContentHandler {
	return &ContentHandler{
		contentRepository:  contentRepo,
		profileRepository:  profileRepo,
		activityRepository: activityRepo,
	}
}

// RegisterContentRoutes registers content routes open to every viewer
func (h *ContentHandler) RegisterContentRoutes(g *echo.Group) {
	g.GET("/content", h.ListContent)
	g.POST("/content/:id/approve", h.ApproveContent)
	g.POST("/content/:id/reject", h.RejectContent)
}

// RegisterAdminContentRoutes registers the admin-only content routes
func (h *ContentHandler) RegisterAdminContentRoutes(g *echo.Group) {
	g.POST("/content", h.CreateContent)
	g.GET("/content/:id/activity", h.GetContentActivity)
}

func viewerClaims(c echo.Context) (*models.JwtCustomClaims, error) {
	claims, ok := c.Get(middleware.ProfileClaimsKey).(*models.JwtCustomClaims)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Missing authentication claims")
	}
	return claims, nil
}

// ListContent retrieves the viewer's content items classified for the
// requested view: list (default), type, calendar or archive.
func (h *ContentHandler) ListContent(c echo.Context) error {
	claims, err := viewerClaims(c)
	if err != nil {
		return err
	}

	items, err := h.contentRepository.ListVisible(claims.ProfileID, claims.IsAdmin)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	loc := time.Local
	if tz := c.QueryParam("tz"); tz != "" {
		parsed, err := time.LoadLocation(tz)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Unknown timezone")
		}
		loc = parsed
	}
	today := content.StartOfDay(time.Now(), loc)

	current, archived := content.Split(items, today)

	counts := echo.Map{
		"total":    len(items),
		"current":  len(current),
		"archived": len(archived),
	}

	view := c.QueryParam("view")
	switch view {
	case "", "list":
		filtered := content.ApplyFilter(current, content.Filter{
			Type:   c.QueryParam("type"),
			Status: c.QueryParam("status"),
			Client: c.QueryParam("client"),
		})
		return c.JSON(http.StatusOK, echo.Map{"view": "list", "counts": counts, "items": filtered})
	case "type":
		return c.JSON(http.StatusOK, echo.Map{"view": "type", "counts": counts, "types": content.GroupByType(current)})
	case "calendar":
		days := content.GroupByDate(current)
		if days == nil {
			days = []content.DateGroup{}
		}
		return c.JSON(http.StatusOK, echo.Map{"view": "calendar", "counts": counts, "days": days})
	case "archive":
		years := content.GroupArchive(archived)
		if years == nil {
			years = []content.YearGroup{}
		}
		return c.JSON(http.StatusOK, echo.Map{"view": "archive", "counts": counts, "years": years})
	}
	return echo.NewHTTPError(http.StatusBadRequest, "Unknown view")
}

// CreateContent creates a new content item assigned to a client profile.
// Status is always forced to Pending and created_by comes from the session.
func (h *ContentHandler) CreateContent(c echo.Context) error {
	claims, err := viewerClaims(c)
	if err != nil {
		return err
	}

	var req models.CreateContentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	scheduleDate, err := time.Parse("2006-01-02", req.ScheduleDate)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid schedule date")
	}

	// The assignee must exist before anything is written
	if _, err := h.profileRepository.GetProfileByID(req.AssignedTo); err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusBadRequest, "Assigned profile not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	item := &models.ContentItem{
		Caption:      req.Caption,
		ContentType:  models.ContentType(req.ContentType),
		MediaURL:     req.MediaURL,
		ScheduleDate: scheduleDate,
		AssignedTo:   req.AssignedTo,
		CreatedBy:    claims.ProfileID,
	}

	if err := h.contentRepository.CreateContentItem(item); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	h.appendActivity(c, item.ID, claims.ProfileID, models.ActionCreated, "")

	return c.JSON(http.StatusCreated, item)
}

// ApproveContent transitions a Pending item to Approved
func (h *ContentHandler) ApproveContent(c echo.Context) error {
	claims, err := viewerClaims(c)
	if err != nil {
		return err
	}
	itemID := c.Param("id")

	if _, err := h.contentRepository.GetVisibleByID(itemID, claims.ProfileID, claims.IsAdmin); err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Content item not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if err := h.contentRepository.UpdateStatus(itemID, models.StatusApproved, "", nil); err != nil {
		if err == repositories.ErrStatusFinal {
			return echo.NewHTTPError(http.StatusConflict, "Content item was already approved or rejected")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	h.appendActivity(c, itemID, claims.ProfileID, models.ActionApproved, "")

	item, err := h.contentRepository.GetVisibleByID(itemID, claims.ProfileID, claims.IsAdmin)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, item)
}

// RejectContent transitions a Pending item to Rejected. Notes must be
// non-empty after trimming; the raw text is stored and rejected_at is the
// time of the write.
func (h *ContentHandler) RejectContent(c echo.Context) error {
	claims, err := viewerClaims(c)
	if err != nil {
		return err
	}
	itemID := c.Param("id")

	var req models.RejectContentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if strings.TrimSpace(req.Notes) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Rejection notes are required")
	}

	if _, err := h.contentRepository.GetVisibleByID(itemID, claims.ProfileID, claims.IsAdmin); err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Content item not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	rejectedAt := time.Now()
	if err := h.contentRepository.UpdateStatus(itemID, models.StatusRejected, req.Notes, &rejectedAt); err != nil {
		if err == repositories.ErrStatusFinal {
			return echo.NewHTTPError(http.StatusConflict, "Content item was already approved or rejected")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	h.appendActivity(c, itemID, claims.ProfileID, models.ActionRejected, req.Notes)

	item, err := h.contentRepository.GetVisibleByID(itemID, claims.ProfileID, claims.IsAdmin)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, item)
}

// GetContentActivity returns an item's audit trail, oldest event first
func (h *ContentHandler) GetContentActivity(c echo.Context) error {
	claims, err := viewerClaims(c)
	if err != nil {
		return err
	}
	itemID := c.Param("id")

	if _, err := h.contentRepository.GetVisibleByID(itemID, claims.ProfileID, claims.IsAdmin); err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Content item not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	events, err := h.activityRepository.GetEventsByContentID(c.Request().Context(), itemID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if events == nil {
		events = []models.ActivityEvent{}
	}
	return c.JSON(http.StatusOK, events)
}

// appendActivity records a content write in the audit trail. A failed append
// is logged and does not fail the write it records.
func (h *ContentHandler) appendActivity(c echo.Context, contentID, actorID string, action models.ActivityAction, notes string) {
	event := &models.ActivityEvent{
		ContentID:  contentID,
		ActorID:    actorID,
		Action:     action,
		Notes:      notes,
		OccurredAt: time.Now(),
	}
	if err := h.activityRepository.AppendEvent(c.Request().Context(), event); err != nil {
		log.Printf("Failed to append %s activity for content %s: %v", action, contentID, err)
	}
}
