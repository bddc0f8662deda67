package handlers

import (
	"errors"
	"io"
	"net/http"
	"time"

	"tutorhub/middleware"
	"tutorhub/models"
	"tutorhub/services/availability"
	"tutorhub/utils"

	"github.com/gin-gonic/gin"
)

// AvailabilityHandler exposes the weekly availability editor.
type AvailabilityHandler struct {
	Service          availability.AvailabilityService
	DefaultNamespace string
}

func NewAvailabilityHandler(svc availability.AvailabilityService, defaultNamespace string) *AvailabilityHandler {
	return &AvailabilityHandler{Service: svc, DefaultNamespace: defaultNamespace}
}

func (h *AvailabilityHandler) namespace(c *gin.Context) string {
	return middleware.Namespace(c, h.DefaultNamespace)
}

// GetAvailabilityHandler returns the template and its weekly count.
func (h *AvailabilityHandler) GetAvailabilityHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.Service.View(c.Request.Context(), h.namespace(c)))
}

// ToggleSlotHandler handles a grid click ({day, slot}) or a week-view
// click or selection ({start}).
func (h *AvailabilityHandler) ToggleSlotHandler(c *gin.Context) {
	var req models.SlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	ctx := c.Request.Context()
	var (
		notice models.Notice
		err    error
	)
	switch {
	case req.Start != nil:
		notice, err = h.Service.ClickSlot(ctx, h.namespace(c), *req.Start)
	case req.Day != "" && req.Slot != "":
		notice, err = h.Service.ClickCell(ctx, h.namespace(c), req.Day, req.Slot)
	default:
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", "either start or day and slot are required")
		return
	}
	h.respond(c, notice, err)
}

// RemoveSlotHandler handles a click on a rendered event: always a removal.
func (h *AvailabilityHandler) RemoveSlotHandler(c *gin.Context) {
	notice, err := h.Service.ClickEvent(c.Request.Context(), h.namespace(c), c.Param("day"), c.Param("slot"))
	h.respond(c, notice, err)
}

// ApplyWeekdayTemplateHandler sets Monday-Friday to the given or default slots.
func (h *AvailabilityHandler) ApplyWeekdayTemplateHandler(c *gin.Context) {
	var req models.WeekdayTemplateRequest
	// An empty body, chunked or not, means "use the configured defaults".
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}
	notice, err := h.Service.ApplyWeekdayTemplate(c.Request.Context(), h.namespace(c), req.Slots)
	h.respond(c, notice, err)
}

// ClearAvailabilityHandler empties every day.
func (h *AvailabilityHandler) ClearAvailabilityHandler(c *gin.Context) {
	notice, err := h.Service.ClearAll(c.Request.Context(), h.namespace(c))
	h.respond(c, notice, err)
}

// GetMonthHandler returns the 42-day grid for ?cursor=YYYY-MM or YYYY-MM-DD.
func (h *AvailabilityHandler) GetMonthHandler(c *gin.Context) {
	cursor := h.Service.Now()
	if raw := c.Query("cursor"); raw != "" {
		parsed, err := parseCursor(raw, h.Service.Location())
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid cursor", "expected YYYY-MM or YYYY-MM-DD")
			return
		}
		cursor = parsed
	}
	c.JSON(http.StatusOK, h.Service.Month(c.Request.Context(), h.namespace(c), cursor))
}

// GetWeekHandler returns the seven-day event list from ?anchor (default yesterday).
func (h *AvailabilityHandler) GetWeekHandler(c *gin.Context) {
	anchor, ok := h.anchor(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.Service.Week(c.Request.Context(), h.namespace(c), anchor))
}

// GetWeekCalendarHandler exports the same events as text/calendar.
func (h *AvailabilityHandler) GetWeekCalendarHandler(c *gin.Context) {
	anchor, ok := h.anchor(c)
	if !ok {
		return
	}
	body := h.Service.Calendar(c.Request.Context(), h.namespace(c), anchor)
	c.Header("Content-Disposition", `attachment; filename="availability.ics"`)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(body))
}

func (h *AvailabilityHandler) anchor(c *gin.Context) (*time.Time, bool) {
	raw := c.Query("anchor")
	if raw == "" {
		return nil, true
	}
	t, err := time.ParseInLocation("2006-01-02", raw, h.Service.Location())
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid anchor", "expected YYYY-MM-DD")
		return nil, false
	}
	return &t, true
}

func (h *AvailabilityHandler) respond(c *gin.Context, notice models.Notice, err error) {
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{
			"notice":       notice,
			"availability": h.Service.View(c.Request.Context(), h.namespace(c)),
		})
	case errors.Is(err, availability.ErrUnknownWeekday), errors.Is(err, availability.ErrInvalidSlot):
		utils.JSONError(c, http.StatusBadRequest, "Invalid slot", err.Error())
	default:
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update availability", err.Error())
	}
}

func parseCursor(raw string, loc *time.Location) (time.Time, error) {
	if t, err := time.ParseInLocation("2006-01", raw, loc); err == nil {
		return t, nil
	}
	return time.ParseInLocation("2006-01-02", raw, loc)
}
