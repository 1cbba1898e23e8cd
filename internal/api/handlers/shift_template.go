package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"shift-planner-backend/internal/service"
)

// ShiftTemplateHandler handles shift template endpoints
type ShiftTemplateHandler struct {
	templateService service.ShiftTemplateServiceInterface
}

// NewShiftTemplateHandler creates a new shift template handler
func NewShiftTemplateHandler(templateService service.ShiftTemplateServiceInterface) *ShiftTemplateHandler {
	return &ShiftTemplateHandler{templateService: templateService}
}

// Create godoc
// @Summary Create a shift template
// @Tags shift-templates
// @Accept json
// @Produce json
// @Param request body service.CreateShiftTemplateRequest true "Template to create"
// @Success 201 {object} service.ShiftTemplateResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /shift-templates [post]
func (h *ShiftTemplateHandler) Create(c *gin.Context) {
	var req service.CreateShiftTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body: " + err.Error()})
		return
	}

	resp, err := h.templateService.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Get godoc
// @Summary Get a shift template
// @Tags shift-templates
// @Produce json
// @Param id path string true "Template ID"
// @Success 200 {object} service.ShiftTemplateResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /shift-templates/{id} [get]
func (h *ShiftTemplateHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	resp, err := h.templateService.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// List godoc
// @Summary List an account's shift templates
// @Tags shift-templates
// @Produce json
// @Param account_id query string true "Account ID"
// @Success 200 {array} service.ShiftTemplateResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /shift-templates [get]
func (h *ShiftTemplateHandler) List(c *gin.Context) {
	accountID, err := uuid.Parse(c.Query("account_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid account_id"})
		return
	}

	resp, err := h.templateService.List(accountID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Update godoc
// @Summary Update a shift template
// @Tags shift-templates
// @Accept json
// @Produce json
// @Param id path string true "Template ID"
// @Param request body service.UpdateShiftTemplateRequest true "Fields to update"
// @Success 200 {object} service.ShiftTemplateResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /shift-templates/{id} [put]
func (h *ShiftTemplateHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req service.UpdateShiftTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body: " + err.Error()})
		return
	}

	resp, err := h.templateService.Update(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Delete godoc
// @Summary Delete a shift template
// @Tags shift-templates
// @Param id path string true "Template ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /shift-templates/{id} [delete]
func (h *ShiftTemplateHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.templateService.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
