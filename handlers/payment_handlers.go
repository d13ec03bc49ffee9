package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clublibertad/clubfees-backend/models"
	"github.com/clublibertad/clubfees-backend/services"
	"github.com/clublibertad/clubfees-backend/utils"
)

// PaymentHandler handles payment-related HTTP requests
type PaymentHandler struct {
	paymentService *services.PaymentService
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(paymentService *services.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// AllocatePayment handles POST /payments
func (h *PaymentHandler) AllocatePayment(c *gin.Context) {
	var req models.AllocatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	payment, err := h.paymentService.AllocatePayment(&req)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, payment)
}

// GetPayment handles GET /payments/:id
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	detail, err := h.paymentService.GetPayment(id)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, detail)
}

// ListPayments handles GET /payments
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	payments, err := h.paymentService.ListPayments()
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, payments)
}
