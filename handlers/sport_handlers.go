package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clublibertad/clubfees-backend/models"
	"github.com/clublibertad/clubfees-backend/services"
	"github.com/clublibertad/clubfees-backend/utils"
)

// SportHandler handles sport-related HTTP requests
type SportHandler struct {
	sportService *services.SportService
}

// NewSportHandler creates a new sport handler
func NewSportHandler(sportService *services.SportService) *SportHandler {
	return &SportHandler{sportService: sportService}
}

// CreateSport handles POST /sports
func (h *SportHandler) CreateSport(c *gin.Context) {
	var req models.CreateSportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	sport, err := h.sportService.CreateSport(&req)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, sport)
}

// UpdateSport handles PATCH /sports/:id
func (h *SportHandler) UpdateSport(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	var req models.UpdateSportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	sport, err := h.sportService.UpdateSport(id, &req)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, sport)
}

// GetSport handles GET /sports/:id
func (h *SportHandler) GetSport(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	sport, err := h.sportService.GetSport(id)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, sport)
}

// ListSports handles GET /sports
func (h *SportHandler) ListSports(c *gin.Context) {
	sports, err := h.sportService.ListSports()
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, sports)
}
