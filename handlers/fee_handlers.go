package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/clublibertad/clubfees-backend/models"
	"github.com/clublibertad/clubfees-backend/services"
	"github.com/clublibertad/clubfees-backend/utils"
)

// FeeHandler handles fee-related HTTP requests
type FeeHandler struct {
	feeService        *services.FeeService
	generationService *services.GenerationService
	expirationService *services.ExpirationService
}

// NewFeeHandler creates a new fee handler
func NewFeeHandler(feeService *services.FeeService, generationService *services.GenerationService, expirationService *services.ExpirationService) *FeeHandler {
	return &FeeHandler{
		feeService:        feeService,
		generationService: generationService,
		expirationService: expirationService,
	}
}

// CreateFee handles POST /fees
func (h *FeeHandler) CreateFee(c *gin.Context) {
	var req models.CreateFeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	fee, err := h.feeService.CreateFee(&req)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, fee)
}

// GetFee handles GET /fees/:id
func (h *FeeHandler) GetFee(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	fee, err := h.feeService.GetFee(id)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, fee)
}

// ListFees handles GET /fees
func (h *FeeHandler) ListFees(c *gin.Context) {
	fees, err := h.feeService.ListFees()
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, fees)
}

// ChangeFeeState handles PATCH /fees/:id/state. This is the manual override
// path; it does not check the transition order.
func (h *FeeHandler) ChangeFeeState(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	var req models.ChangeFeeStateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	if err := h.feeService.ChangeFeeState(id, req.State); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, gin.H{"message": "Fee state updated successfully"})
}

// GenerateFees handles POST /fees/generate
func (h *FeeHandler) GenerateFees(c *gin.Context) {
	var req models.GenerateFeesRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
			return
		}
	}

	period := req.Period
	created, err := h.generationService.GenerateForPeriod(period)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	if period.IsZero() {
		period = utils.CurrentPeriod()
	}

	utils.HandleSuccess(c, models.GenerateFeesResponse{Period: period, Created: created})
}

// SweepOverdue handles POST /fees/sweep
func (h *FeeHandler) SweepOverdue(c *gin.Context) {
	var req models.SweepOverdueRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
			return
		}
	}

	asOf := req.AsOf
	transitioned, err := h.expirationService.SweepOverdue(asOf)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	if asOf.IsZero() {
		asOf = time.Now().UTC()
	}

	utils.HandleSuccess(c, models.SweepOverdueResponse{AsOf: asOf, Transitioned: transitioned})
}

// parseID parses the :id path parameter
func parseID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, utils.NewBadRequestError("Invalid ID")
	}
	return id, nil
}
