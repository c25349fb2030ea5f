package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/floor-ceiling-tracker/internal/adapters/handler/http/middleware"
	"github.com/comitanigiacomo/floor-ceiling-tracker/internal/core/domain"
	"github.com/comitanigiacomo/floor-ceiling-tracker/internal/core/services"
)

type GoalHandler struct {
	svc *services.GoalService
}

func NewGoalHandler(svc *services.GoalService) *GoalHandler {
	return &GoalHandler{svc: svc}
}

type goalRequest struct {
	UserID   string `json:"user_id"`
	Category string `json:"category" example:"Health"`
	Title    string `json:"title" example:"Morning walk"`
	Floor    string `json:"floor" example:"10 minutes"`
	Ceiling  string `json:"ceiling" example:"45 minutes"`
	Unit     string `json:"unit" example:"minutes"`

	StartDate domain.Date `json:"start_date" swaggertype:"string" example:"2024-01-01"`
	domain.RecurrenceFields

	TargetDate      domain.Date `json:"target_date" swaggertype:"string" example:"2024-06-30"`
	TargetSuccesses *int        `json:"target_successes"`
}

func (r goalRequest) details() domain.GoalDetails {
	return domain.GoalDetails{
		Category: r.Category,
		Title:    r.Title,
		Floor:    r.Floor,
		Ceiling:  r.Ceiling,
		Unit:     r.Unit,
	}
}

func (h *GoalHandler) RegisterRoutes(router *gin.RouterGroup) {
	goals := router.Group("/goals")
	{
		goals.POST("", h.Create)
		goals.GET("", h.List)
		goals.GET("/:id", h.Get)
		goals.PUT("/:id", h.Update)
		goals.DELETE("/:id", h.Delete)
	}
}

// callerOr prefers the X-User-ID identity over a fallback taken from the
// request itself.
func callerOr(c *gin.Context, fallback string) string {
	if id, ok := middleware.GetUserID(c); ok {
		return id
	}
	return fallback
}

// Create godoc
// @Summary Create a goal
// @Tags goals
// @Accept json
// @Produce json
// @Param X-User-ID header string false "Owner"
// @Param goal body goalRequest true "Goal definition"
// @Success 201 {object} domain.Goal
// @Failure 400 {object} errorResponse
// @Router /goals [post]
func (h *GoalHandler) Create(c *gin.Context) {
	var req goalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	goal, err := h.svc.Create(c.Request.Context(), services.CreateGoalInput{
		UserID:          callerOr(c, req.UserID),
		Details:         req.details(),
		StartDate:       req.StartDate,
		Recurrence:      req.RecurrenceFields,
		TargetDate:      req.TargetDate,
		TargetSuccesses: req.TargetSuccesses,
	})
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, goal)
}

// List godoc
// @Summary List the goals of a user
// @Tags goals
// @Produce json
// @Param userId query string false "Owner, defaults to X-User-ID"
// @Success 200 {array} domain.Goal
// @Failure 400 {object} errorResponse
// @Router /goals [get]
func (h *GoalHandler) List(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		userID = callerOr(c, "")
	}
	if userID == "" {
		badRequest(c, "userId is required")
		return
	}

	goals, err := h.svc.ListByUserID(c.Request.Context(), userID)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, goals)
}

// Get godoc
// @Summary Get a goal
// @Tags goals
// @Produce json
// @Param id path string true "Goal ID"
// @Success 200 {object} domain.Goal
// @Failure 404 {object} errorResponse
// @Router /goals/{id} [get]
func (h *GoalHandler) Get(c *gin.Context) {
	goal, err := h.svc.Get(c.Request.Context(), c.Param("id"), callerOr(c, ""))
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, goal)
}

// Update godoc
// @Summary Update a goal
// @Description Empty fields keep their stored value; the recurrence is replaced only when frequency_type is sent.
// @Tags goals
// @Accept json
// @Produce json
// @Param id path string true "Goal ID"
// @Param goal body goalRequest true "Changes"
// @Success 200 {object} domain.Goal
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /goals/{id} [put]
func (h *GoalHandler) Update(c *gin.Context) {
	var req goalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	goal, err := h.svc.Update(c.Request.Context(), services.UpdateGoalInput{
		ID:              c.Param("id"),
		UserID:          callerOr(c, req.UserID),
		Details:         req.details(),
		StartDate:       req.StartDate,
		Recurrence:      req.RecurrenceFields,
		TargetDate:      req.TargetDate,
		TargetSuccesses: req.TargetSuccesses,
	})
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, goal)
}

// Delete godoc
// @Summary Delete a goal and its logs
// @Tags goals
// @Param id path string true "Goal ID"
// @Success 204
// @Failure 404 {object} errorResponse
// @Router /goals/{id} [delete]
func (h *GoalHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id"), callerOr(c, "")); err != nil {
		handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
