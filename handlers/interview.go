package handlers

import (
	"errors"
	"net/http"

	"hrmanager/models"
	"hrmanager/services/scheduling"
	"hrmanager/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// InterviewHandler exposes interview listing and booking endpoints.
type InterviewHandler struct {
	Service scheduling.BookingService
}

func NewInterviewHandler(svc scheduling.BookingService) *InterviewHandler {
	return &InterviewHandler{Service: svc}
}

// GetInterviewsHandler handles GET /api/interviews.
func (h *InterviewHandler) GetInterviewsHandler(c *gin.Context) {
	interviews, err := h.Service.ListInterviews(c.Request.Context())
	if err != nil {
		utils.GetLogger().Error("Failed to fetch interviews", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server Error"})
		return
	}
	if interviews == nil {
		interviews = []models.InterviewWithSpecialist{}
	}
	c.JSON(http.StatusOK, interviews)
}

// CreateInterviewHandler handles POST /api/interviews. It maps each booking
// error kind to its transport status: InvalidRequest, SkillMismatch and
// ScheduleConflict to 400, SpecialistNotFound to 404, StoreFailure to 500.
func (h *InterviewHandler) CreateInterviewHandler(c *gin.Context) {
	var req models.InterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing or invalid required fields"})
		return
	}

	interview, err := h.Service.CreateInterview(c.Request.Context(), req)
	if err != nil {
		h.respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, interview)
}

func (h *InterviewHandler) respondBookingError(c *gin.Context, err error) {
	var be *scheduling.BookingError
	if !errors.As(err, &be) {
		utils.GetLogger().Error("Unexpected booking failure", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server Error"})
		return
	}

	switch be.Kind {
	case scheduling.KindInvalidRequest:
		c.JSON(http.StatusBadRequest, gin.H{"error": be.Message})
	case scheduling.KindSpecialistNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": "Specialist not found"})
	case scheduling.KindSkillMismatch:
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Specialist skills do not match the applicant",
			"details": be.Message,
		})
	case scheduling.KindScheduleConflict:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Time overlap with another interview"})
	default:
		utils.GetLogger().Error("Booking store failure", zap.Error(be))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server Error"})
	}
}
