package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/floor-ceiling-tracker/internal/core/domain"
	"github.com/comitanigiacomo/floor-ceiling-tracker/internal/core/services"
)

type LogHandler struct {
	svc *services.LogService
	loc *time.Location
}

func NewLogHandler(svc *services.LogService) *LogHandler {
	return &LogHandler{svc: svc, loc: time.Local}
}

type upsertLogRequest struct {
	GoalID string           `json:"goal_id" binding:"required"`
	UserID string           `json:"user_id"`
	Date   string           `json:"date" binding:"required" example:"2024-01-15"`
	Status domain.LogStatus `json:"status" binding:"required" example:"achieved"`
	Rating *int             `json:"rating" example:"7"`
}

func (h *LogHandler) RegisterRoutes(router *gin.RouterGroup) {
	logs := router.Group("/logs")
	{
		logs.POST("", h.Upsert)
		logs.GET("", h.List)
		logs.DELETE("/:id", h.Delete)
	}
}

// Upsert godoc
// @Summary Record the outcome of a goal for one day
// @Description Replaces any log for the same goal, user and date.
// @Tags logs
// @Accept json
// @Produce json
// @Param log body upsertLogRequest true "Log entry"
// @Success 200 {object} domain.GoalLog
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /logs [post]
func (h *LogHandler) Upsert(c *gin.Context) {
	var req upsertLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	date, err := domain.ParseDateParam(req.Date, h.loc)
	if err != nil {
		handleError(c, err)
		return
	}

	entry, err := h.svc.Upsert(c.Request.Context(), services.UpsertLogInput{
		GoalID: req.GoalID,
		UserID: callerOr(c, req.UserID),
		Date:   date,
		Status: req.Status,
		Rating: req.Rating,
	})
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, entry)
}

// List godoc
// @Summary Query logs
// @Description goalId returns the whole history of a goal; otherwise userId with either date or from and to.
// @Tags logs
// @Produce json
// @Param goalId query string false "Goal ID"
// @Param userId query string false "User ID, defaults to X-User-ID"
// @Param date query string false "Single day"
// @Param from query string false "Range start (inclusive)"
// @Param to query string false "Range end (inclusive)"
// @Success 200 {array} domain.GoalLog
// @Failure 400 {object} errorResponse
// @Router /logs [get]
func (h *LogHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	if goalID := c.Query("goalId"); goalID != "" {
		logs, err := h.svc.ListByGoalID(ctx, goalID)
		if err != nil {
			handleError(c, err)
			return
		}
		c.JSON(http.StatusOK, logs)
		return
	}

	userID := c.Query("userId")
	if userID == "" {
		userID = callerOr(c, "")
	}
	if userID == "" {
		badRequest(c, "goalId or userId is required")
		return
	}

	if raw := c.Query("date"); raw != "" {
		date, err := domain.ParseDateParam(raw, h.loc)
		if err != nil {
			handleError(c, err)
			return
		}
		logs, err := h.svc.ListByUserAndDate(ctx, userID, date)
		if err != nil {
			handleError(c, err)
			return
		}
		c.JSON(http.StatusOK, logs)
		return
	}

	rawFrom, rawTo := c.Query("from"), c.Query("to")
	if rawFrom == "" || rawTo == "" {
		badRequest(c, "date, or both from and to, are required with userId")
		return
	}
	from, err := domain.ParseDateParam(rawFrom, h.loc)
	if err != nil {
		handleError(c, err)
		return
	}
	to, err := domain.ParseDateParam(rawTo, h.loc)
	if err != nil {
		handleError(c, err)
		return
	}

	logs, err := h.svc.ListByUserAndDateRange(ctx, userID, from, to)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, logs)
}

// Delete godoc
// @Summary Delete a log
// @Tags logs
// @Param id path string true "Log ID"
// @Success 204
// @Failure 404 {object} errorResponse
// @Router /logs/{id} [delete]
func (h *LogHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
