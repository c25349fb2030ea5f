package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/floor-ceiling-tracker/internal/core/domain"
	"github.com/comitanigiacomo/floor-ceiling-tracker/internal/core/services"
)

type ProgressHandler struct {
	svc *services.ProgressService
	now func() time.Time
}

func NewProgressHandler(svc *services.ProgressService) *ProgressHandler {
	return &ProgressHandler{svc: svc, now: time.Now}
}

// WithClock replaces the clock used when no date is given.
func (h *ProgressHandler) WithClock(now func() time.Time) *ProgressHandler {
	h.now = now
	return h
}

func (h *ProgressHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/goals/:id/progress", h.Progress)
	router.GET("/goals/:id/history", h.History)
	router.GET("/logs/month", h.Month)
}

// Progress godoc
// @Summary Evaluate a goal
// @Description The verdict shape depends on the goal's frequency type.
// @Tags progress
// @Produce json
// @Param id path string true "Goal ID"
// @Param date query string false "yyyy-MM-dd or RFC 3339, defaults to today"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /goals/{id}/progress [get]
func (h *ProgressHandler) Progress(c *gin.Context) {
	now := h.now()
	ref := domain.DateOf(now)
	if raw := c.Query("date"); raw != "" {
		var err error
		ref, err = domain.ParseDateParam(raw, now.Location())
		if err != nil {
			handleError(c, err)
			return
		}
	}

	verdict, err := h.svc.Evaluate(c.Request.Context(), c.Param("id"), ref)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, verdict)
}

// History godoc
// @Summary Streaks, successes and ratings of a goal
// @Tags progress
// @Produce json
// @Param id path string true "Goal ID"
// @Success 200 {object} domain.GoalHistory
// @Failure 404 {object} errorResponse
// @Router /goals/{id}/history [get]
func (h *ProgressHandler) History(c *gin.Context) {
	history, err := h.svc.History(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, history)
}

// Month godoc
// @Summary Calendar summary of a month
// @Tags progress
// @Produce json
// @Param userId query string false "User ID, defaults to X-User-ID"
// @Param year query int true "Year"
// @Param month query int true "Month, 1 to 12"
// @Success 200 {array} domain.CalendarDay
// @Failure 400 {object} errorResponse
// @Router /logs/month [get]
func (h *ProgressHandler) Month(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		userID = callerOr(c, "")
	}
	if userID == "" {
		badRequest(c, "userId is required")
		return
	}

	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		badRequest(c, "year must be an integer")
		return
	}
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil {
		badRequest(c, "month must be an integer")
		return
	}

	days, err := h.svc.Calendar(c.Request.Context(), userID, year, time.Month(month))
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, days)
}
