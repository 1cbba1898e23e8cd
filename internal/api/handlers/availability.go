package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shift-planner-backend/internal/service"
)

// AvailabilityHandler handles per-employee availability endpoints
type AvailabilityHandler struct {
	availabilityService service.AvailabilityServiceInterface
}

// NewAvailabilityHandler creates a new availability handler
func NewAvailabilityHandler(availabilityService service.AvailabilityServiceInterface) *AvailabilityHandler {
	return &AvailabilityHandler{availabilityService: availabilityService}
}

// Set godoc
// @Summary Set an employee's availability for a date
// @Description Writes the employee's status for one date, replacing any previous record
// @Tags availability
// @Accept json
// @Produce json
// @Param id path string true "Employee ID"
// @Param request body service.SetAvailabilityRequest true "Availability record"
// @Success 200 {object} service.AvailabilityResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /employees/{id}/availability [put]
func (h *AvailabilityHandler) Set(c *gin.Context) {
	employeeID, ok := pathID(c)
	if !ok {
		return
	}

	var req service.SetAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body: " + err.Error()})
		return
	}

	resp, err := h.availabilityService.Set(employeeID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// List godoc
// @Summary List an employee's availability records
// @Tags availability
// @Produce json
// @Param id path string true "Employee ID"
// @Success 200 {array} service.AvailabilityResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /employees/{id}/availability [get]
func (h *AvailabilityHandler) List(c *gin.Context) {
	employeeID, ok := pathID(c)
	if !ok {
		return
	}

	resp, err := h.availabilityService.List(employeeID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Clear godoc
// @Summary Remove an employee's availability record for a date
// @Tags availability
// @Param id path string true "Employee ID"
// @Param date path string true "Date (YYYY-MM-DD)"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /employees/{id}/availability/{date} [delete]
func (h *AvailabilityHandler) Clear(c *gin.Context) {
	employeeID, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.availabilityService.Clear(employeeID, c.Param("date")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
