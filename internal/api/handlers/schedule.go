package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	apperrors "shift-planner-backend/internal/errors"
	"shift-planner-backend/internal/service"
)

// ScheduleHandler handles schedule generation, saving and reads
type ScheduleHandler struct {
	scheduleService service.ScheduleServiceInterface
}

// NewScheduleHandler creates a new schedule handler
func NewScheduleHandler(scheduleService service.ScheduleServiceInterface) *ScheduleHandler {
	return &ScheduleHandler{scheduleService: scheduleService}
}

// Generate godoc
// @Summary Generate a monthly schedule
// @Description Expands staffing demand, runs the external solver and persists the outcome
// @Tags schedules
// @Accept json
// @Produce json
// @Param request body service.GenerateScheduleRequest true "Generation request"
// @Success 200 {object} service.ScheduleResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Security BearerAuth
// @Router /schedules/generate [post]
func (h *ScheduleHandler) Generate(c *gin.Context) {
	var req service.GenerateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body: " + err.Error()})
		return
	}

	resp, err := h.scheduleService.Generate(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Save godoc
// @Summary Save an edited schedule
// @Description Replaces the month's stored schedule with the submitted assignments
// @Tags schedules
// @Accept json
// @Produce json
// @Param request body service.SaveScheduleRequest true "Schedule to save"
// @Success 200 {object} service.ScheduleResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /schedules [put]
func (h *ScheduleHandler) Save(c *gin.Context) {
	var req service.SaveScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body: " + err.Error()})
		return
	}

	resp, err := h.scheduleService.Save(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Get godoc
// @Summary Get the saved schedule for a month
// @Tags schedules
// @Produce json
// @Param account_id query string true "Account ID"
// @Param year query int false "Year (defaults to current)"
// @Param month query int true "Month (1-12)"
// @Success 200 {object} service.ScheduleResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /schedules [get]
func (h *ScheduleHandler) Get(c *gin.Context) {
	accountID, year, month, ok := periodQuery(c)
	if !ok {
		return
	}

	resp, err := h.scheduleService.GetSchedule(c.Request.Context(), accountID, year, month)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetShifts godoc
// @Summary Get the canonical per-employee shift rows for a month
// @Tags schedules
// @Produce json
// @Param account_id query string true "Account ID"
// @Param year query int false "Year (defaults to current)"
// @Param month query int true "Month (1-12)"
// @Success 200 {array} models.Shift
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /schedules/shifts [get]
func (h *ScheduleHandler) GetShifts(c *gin.Context) {
	accountID, year, month, ok := periodQuery(c)
	if !ok {
		return
	}

	shifts, err := h.scheduleService.GetShifts(c.Request.Context(), accountID, year, month)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, shifts)
}

// periodQuery parses the account_id/year/month query triple shared by the
// schedule read endpoints
func periodQuery(c *gin.Context) (uuid.UUID, int, int, bool) {
	accountID, err := uuid.Parse(c.Query("account_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid account_id"})
		return uuid.Nil, 0, 0, false
	}

	month, err := strconv.Atoi(c.Query("month"))
	if err != nil {
		respondError(c, apperrors.ErrInvalidMonth)
		return uuid.Nil, 0, 0, false
	}

	year := 0
	if raw := c.Query("year"); raw != "" {
		year, err = strconv.Atoi(raw)
		if err != nil {
			respondError(c, apperrors.ErrInvalidYear)
			return uuid.Nil, 0, 0, false
		}
	}
	return accountID, year, month, true
}
