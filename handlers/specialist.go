package handlers

import (
	"errors"
	"net/http"

	specialistRepoPkg "hrmanager/database/repository/specialist"
	"hrmanager/models"
	"hrmanager/services/specialist"
	"hrmanager/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SpecialistHandler exposes specialist CRUD endpoints.
type SpecialistHandler struct {
	Service specialist.SpecialistService
}

func NewSpecialistHandler(svc specialist.SpecialistService) *SpecialistHandler {
	return &SpecialistHandler{Service: svc}
}

// GetSpecialistsHandler handles GET /api/specialists.
func (h *SpecialistHandler) GetSpecialistsHandler(c *gin.Context) {
	specialists, err := h.Service.GetSpecialists(c.Request.Context())
	if err != nil {
		utils.GetLogger().Error("Failed to fetch specialists", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server Error"})
		return
	}
	if specialists == nil {
		specialists = []models.Specialist{}
	}
	c.JSON(http.StatusOK, specialists)
}

// CreateSpecialistHandler handles POST /api/specialists.
func (h *SpecialistHandler) CreateSpecialistHandler(c *gin.Context) {
	var input models.SpecialistInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing or invalid required fields"})
		return
	}

	sp, err := h.Service.CreateSpecialist(c.Request.Context(), input)
	if err != nil {
		h.respondError(c, err, "Failed to add specialist")
		return
	}
	c.JSON(http.StatusCreated, sp)
}

// UpdateSpecialistHandler handles PUT /api/specialists/:id.
func (h *SpecialistHandler) UpdateSpecialistHandler(c *gin.Context) {
	id := c.Param("id")

	var input models.SpecialistInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing or invalid required fields"})
		return
	}

	sp, err := h.Service.UpdateSpecialist(c.Request.Context(), id, input)
	if err != nil {
		h.respondError(c, err, "Failed to update specialist")
		return
	}
	c.JSON(http.StatusOK, sp)
}

// DeleteSpecialistHandler handles DELETE /api/specialists/:id.
func (h *SpecialistHandler) DeleteSpecialistHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.Service.DeleteSpecialist(c.Request.Context(), id); err != nil {
		h.respondError(c, err, "Failed to delete specialist")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Specialist with ID " + id + " deleted successfully"})
}

func (h *SpecialistHandler) respondError(c *gin.Context, err error, logMsg string) {
	var ve *specialist.ValidationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{"error": ve.Message})
	case errors.Is(err, specialistRepoPkg.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Specialist not found"})
	default:
		utils.GetLogger().Error(logMsg, zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server Error"})
	}
}
