package routes

import (
	"treatment_planner/internal/adapter/http/handlers"
	"treatment_planner/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const (
	PathPlans = "/plans/:code"
)

func addPlanRoutes(rg *gin.RouterGroup, h *handlers.PlanHandler) {
	plans := rg.Group(PathPlans, middleware.Capabilities(), middleware.RequestContext())
	{
		plans.GET("", h.GetPlan)
		plans.GET("/events", h.ListEvents)

		plans.POST("/submit", h.SubmitForReview)
		plans.POST("/approve", h.Approve)
		plans.POST("/reject", h.Reject)

		plans.POST("/phases/:phaseId/items", h.AddItems)
		plans.POST("/phases/:phaseId/order/moves", h.MoveItem)
		plans.POST("/phases/:phaseId/order/reset", h.ResetOrder)
		plans.PUT("/phases/:phaseId/order", h.SaveOrder)

		plans.GET("/selection", h.GetSelection)
		plans.DELETE("/selection", h.ClearSelection)
		plans.POST("/selection/toggle", h.ToggleSelection)
		plans.POST("/selection/book", h.BookSelection)

		plans.POST("/prices/preview", h.PreviewPrices)
		plans.PUT("/prices", h.CommitPrices)
		plans.GET("/prices/revisions", h.ListPriceRevisions)

		plans.POST("/schedule", h.GenerateSchedule)
		plans.POST("/schedule/select", h.SelectSlot)
	}
}
