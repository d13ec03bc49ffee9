package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clublibertad/clubfees-backend/models"
	"github.com/clublibertad/clubfees-backend/services"
	"github.com/clublibertad/clubfees-backend/utils"
)

// EnrollmentHandler handles enrollment-related HTTP requests
type EnrollmentHandler struct {
	enrollmentService *services.EnrollmentService
}

// NewEnrollmentHandler creates a new enrollment handler
func NewEnrollmentHandler(enrollmentService *services.EnrollmentService) *EnrollmentHandler {
	return &EnrollmentHandler{enrollmentService: enrollmentService}
}

// CreateEnrollment handles POST /enrollments
func (h *EnrollmentHandler) CreateEnrollment(c *gin.Context) {
	var req models.CreateEnrollmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	enrollment, err := h.enrollmentService.CreateEnrollment(&req)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, enrollment)
}

// CancelEnrollment handles POST /enrollments/:id/cancel
func (h *EnrollmentHandler) CancelEnrollment(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	if err := h.enrollmentService.CancelEnrollment(id); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, gin.H{"message": "Enrollment cancelled successfully"})
}

// ListEnrollments handles GET /enrollments
func (h *EnrollmentHandler) ListEnrollments(c *gin.Context) {
	if c.Query("active") == "true" {
		enrollments, err := h.enrollmentService.ListActiveEnrollments()
		if err != nil {
			utils.HandleError(c, err)
			return
		}
		utils.HandleSuccess(c, enrollments)
		return
	}

	enrollments, err := h.enrollmentService.ListEnrollments()
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, enrollments)
}
