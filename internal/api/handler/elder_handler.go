package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/idosos/backend/internal/api/dto"
	"github.com/idosos/backend/internal/core/domain"
	"github.com/idosos/backend/internal/core/service"
)

type ElderHandler struct {
	elderService *service.ElderService
}

func NewElderHandler(elderService *service.ElderService) *ElderHandler {
	return &ElderHandler{
		elderService: elderService,
	}
}

// CreateElder handles POST /idosos
func (h *ElderHandler) CreateElder(c *gin.Context) {
	var req dto.CreateElderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(fmt.Errorf("invalid request body: %w", err)).SetType(gin.ErrorTypeBind)
		return
	}

	id, err := h.elderService.Register(c.Request.Context(), toSubmission(req))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, dto.CreateElderResponse{
		Message: "Elder registered successfully",
		ID:      id,
	})
}

// ListElders handles GET /idosos
func (h *ElderHandler) ListElders(c *gin.Context) {
	elders, err := h.elderService.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response := make([]dto.ElderResponse, len(elders))
	for i, elder := range elders {
		response[i] = toElderResponse(elder)
	}

	c.JSON(http.StatusOK, response)
}

// GetElder handles GET /idosos/:id
func (h *ElderHandler) GetElder(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	elder, err := h.elderService.Get(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, toElderResponse(elder))
}

// DeleteElder handles DELETE /idosos/:id
func (h *ElderHandler) DeleteElder(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.elderService.Delete(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{
		Message: "Elder deleted successfully",
	})
}

func parseID(c *gin.Context) (int64, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		c.Error(fmt.Errorf("invalid id: %q", raw)).SetType(gin.ErrorTypeBind)
		return 0, false
	}
	return id, true
}

func toSubmission(req dto.CreateElderRequest) service.Submission {
	return service.Submission{
		Name:          req.Name,
		Age:           req.Age,
		GuardianName:  req.GuardianName,
		GuardianPhone: req.GuardianPhone,
		PostalCode:    req.PostalCode,
		Street:        req.Street,
		Number:        req.Number,
		Neighborhood:  req.Neighborhood,
		City:          req.City,
		State:         req.State,
	}
}

func toElderResponse(elder *domain.Elder) dto.ElderResponse {
	return dto.ElderResponse{
		ID:            elder.ID,
		Name:          elder.Name,
		Age:           elder.Age,
		GuardianName:  elder.GuardianName,
		GuardianPhone: elder.GuardianPhone,
		PostalCode:    elder.PostalCode,
		Street:        elder.Street,
		Number:        elder.Number,
		Neighborhood:  elder.Neighborhood,
		City:          elder.City,
		State:         elder.State,
	}
}
