package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clublibertad/clubfees-backend/models"
	"github.com/clublibertad/clubfees-backend/services"
	"github.com/clublibertad/clubfees-backend/utils"
)

// MemberHandler handles member-related HTTP requests
type MemberHandler struct {
	memberService *services.MemberService
	feeService    *services.FeeService
}

// NewMemberHandler creates a new member handler
func NewMemberHandler(memberService *services.MemberService, feeService *services.FeeService) *MemberHandler {
	return &MemberHandler{memberService: memberService, feeService: feeService}
}

// CreateMember handles POST /members
func (h *MemberHandler) CreateMember(c *gin.Context) {
	var req models.CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	member, err := h.memberService.CreateMember(&req)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, member)
}

// GetMember handles GET /members/:id
func (h *MemberHandler) GetMember(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	member, err := h.memberService.GetMember(id)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, member)
}

// ListMembers handles GET /members
func (h *MemberHandler) ListMembers(c *gin.Context) {
	members, err := h.memberService.ListMembers()
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, members)
}

// ListMemberFees handles GET /members/:id/fees
func (h *MemberHandler) ListMemberFees(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	fees, err := h.feeService.ListFeesByMember(id)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, fees)
}

// SetMemberActive handles PATCH /members/:id/active
func (h *MemberHandler) SetMemberActive(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	var req struct {
		Active *bool `json:"active" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	if err := h.memberService.SetActive(id, *req.Active); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, gin.H{"message": "Member updated successfully"})
}

// DeleteMember handles DELETE /members/:id
func (h *MemberHandler) DeleteMember(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	var req models.DeleteMemberRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
			return
		}
	}

	if err := h.memberService.DeleteMember(id, req.Note); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, gin.H{"message": "Member deleted successfully"})
}
