package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/clublibertad/clubfees-backend/handlers"
)

// Handlers bundles the handler dependencies for route setup
type Handlers struct {
	Fees        *handlers.FeeHandler
	Payments    *handlers.PaymentHandler
	Members     *handlers.MemberHandler
	Sports      *handlers.SportHandler
	Enrollments *handlers.EnrollmentHandler
	Promotions  *handlers.PromotionHandler
	Reports     *handlers.ReportHandler
}

// SetupRoutes configures all API routes for the application
func SetupRoutes(router *gin.Engine, h *Handlers) {
	v1 := router.Group("/api/v1")
	{
		// Fee endpoints
		v1.GET("/fees", h.Fees.ListFees)
		v1.GET("/fees/:id", h.Fees.GetFee)
		v1.POST("/fees", h.Fees.CreateFee)
		v1.PATCH("/fees/:id/state", h.Fees.ChangeFeeState)
		v1.POST("/fees/generate", h.Fees.GenerateFees)
		v1.POST("/fees/sweep", h.Fees.SweepOverdue)

		// Payment endpoints
		v1.GET("/payments", h.Payments.ListPayments)
		v1.GET("/payments/:id", h.Payments.GetPayment)
		v1.POST("/payments", h.Payments.AllocatePayment)

		// Member endpoints
		v1.GET("/members", h.Members.ListMembers)
		v1.GET("/members/:id", h.Members.GetMember)
		v1.GET("/members/:id/fees", h.Members.ListMemberFees)
		v1.POST("/members", h.Members.CreateMember)
		v1.PATCH("/members/:id/active", h.Members.SetMemberActive)
		v1.DELETE("/members/:id", h.Members.DeleteMember)

		// Sport endpoints
		v1.GET("/sports", h.Sports.ListSports)
		v1.GET("/sports/:id", h.Sports.GetSport)
		v1.POST("/sports", h.Sports.CreateSport)
		v1.PATCH("/sports/:id", h.Sports.UpdateSport)

		// Enrollment endpoints
		v1.GET("/enrollments", h.Enrollments.ListEnrollments)
		v1.POST("/enrollments", h.Enrollments.CreateEnrollment)
		v1.POST("/enrollments/:id/cancel", h.Enrollments.CancelEnrollment)

		// Promotion endpoints
		v1.GET("/promotions", h.Promotions.ListPromotions)
		v1.GET("/promotions/:id", h.Promotions.GetPromotion)
		v1.POST("/promotions", h.Promotions.CreatePromotion)
		v1.PATCH("/promotions/:id/active", h.Promotions.SetPromotionActive)

		// Report export endpoint
		v1.GET("/reports/export", h.Reports.ExportFeesAndPayments)
	}
}
