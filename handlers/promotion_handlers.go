package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clublibertad/clubfees-backend/models"
	"github.com/clublibertad/clubfees-backend/services"
	"github.com/clublibertad/clubfees-backend/utils"
)

// PromotionHandler handles promotion-related HTTP requests
type PromotionHandler struct {
	promotionService *services.PromotionService
}

// NewPromotionHandler creates a new promotion handler
func NewPromotionHandler(promotionService *services.PromotionService) *PromotionHandler {
	return &PromotionHandler{promotionService: promotionService}
}

// CreatePromotion handles POST /promotions
func (h *PromotionHandler) CreatePromotion(c *gin.Context) {
	var req models.CreatePromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	promotion, err := h.promotionService.CreatePromotion(&req)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, promotion)
}

// GetPromotion handles GET /promotions/:id
func (h *PromotionHandler) GetPromotion(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	promotion, err := h.promotionService.GetPromotion(id)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, promotion)
}

// ListPromotions handles GET /promotions
func (h *PromotionHandler) ListPromotions(c *gin.Context) {
	promotions, err := h.promotionService.ListPromotions()
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, promotions)
}

// SetPromotionActive handles PATCH /promotions/:id/active
func (h *PromotionHandler) SetPromotionActive(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	var req models.SetPromotionActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	if err := h.promotionService.SetActive(id, *req.Active); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, gin.H{"message": "Promotion updated successfully"})
}
