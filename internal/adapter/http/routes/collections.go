package routes

import (
	"marcenaria_gestao/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPing            = "/ping"
	PathRequests        = "/requests"
	PathProjects        = "/projects"
	PathTeams           = "/teams"
	PathVehicles        = "/vehicles"
	PathSupplyOrders    = "/supply-orders"
	PathLogisticsEvents = "/logistics-events"
	PathDashboard       = "/dashboard"
	PathAdmin           = "/admin"
	PathEvents          = "/events"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET(PathPing, handlers.Ping)
}

func addRequestRoutes(rg *gin.RouterGroup, h *handlers.RequestHandler) {
	requests := rg.Group(PathRequests)
	{
		requests.GET("", h.ListRequests)
		requests.POST("", h.CreateRequest)
		requests.GET("/:id", h.GetRequest)
		requests.PATCH("/:id", h.UpdateRequest)
		requests.DELETE("/:id", h.DeleteRequest)
		requests.PATCH("/:id/status", h.UpdateRequestStatus)
	}
}

func addProjectRoutes(rg *gin.RouterGroup, h *handlers.ProjectHandler) {
	projects := rg.Group(PathProjects)
	{
		projects.GET("", h.ListProjects)
		projects.POST("", h.CreateProject)
		projects.GET("/:id", h.GetProject)
		projects.PATCH("/:id", h.UpdateProject)
		projects.DELETE("/:id", h.DeleteProject)
		projects.PATCH("/:id/status", h.UpdateProjectStatus)
		projects.POST("/:id/updates", h.AddProjectUpdate)
	}
}

func addTeamRoutes(rg *gin.RouterGroup, h *handlers.TeamHandler) {
	teams := rg.Group(PathTeams)
	{
		teams.GET("", h.ListTeams)
		teams.POST("", h.CreateTeam)
		teams.GET("/:id", h.GetTeam)
		teams.PATCH("/:id", h.UpdateTeam)
		teams.DELETE("/:id", h.DeleteTeam)
		teams.POST("/:id/members", h.AddTeamMember)
		teams.DELETE("/:id/members/:member_id", h.RemoveTeamMember)
	}
}

func addVehicleRoutes(rg *gin.RouterGroup, h *handlers.VehicleHandler) {
	vehicles := rg.Group(PathVehicles)
	{
		vehicles.GET("", h.ListVehicles)
		vehicles.POST("", h.CreateVehicle)
		// static segment, matched before /:id
		vehicles.GET("/maintenance-due", h.MaintenanceDue)
		vehicles.GET("/:id", h.GetVehicle)
		vehicles.PATCH("/:id", h.UpdateVehicle)
		vehicles.DELETE("/:id", h.DeleteVehicle)
		vehicles.PATCH("/:id/status", h.UpdateVehicleStatus)
		vehicles.POST("/:id/maintenance", h.AddMaintenanceRecord)
	}
}

func addSupplyOrderRoutes(rg *gin.RouterGroup, h *handlers.SupplyOrderHandler) {
	orders := rg.Group(PathSupplyOrders)
	{
		orders.GET("", h.ListSupplyOrders)
		orders.POST("", h.CreateSupplyOrder)
		orders.GET("/:id", h.GetSupplyOrder)
		orders.PATCH("/:id", h.UpdateSupplyOrder)
		orders.DELETE("/:id", h.DeleteSupplyOrder)
		orders.PATCH("/:id/status", h.UpdateSupplyOrderStatus)
		orders.PATCH("/:id/review", h.ReviewSupplyOrder)
	}
}

func addLogisticsRoutes(rg *gin.RouterGroup, h *handlers.LogisticsHandler) {
	events := rg.Group(PathLogisticsEvents)
	{
		events.GET("", h.ListLogisticsEvents)
		events.POST("", h.CreateLogisticsEvent)
		events.GET("/timeline", h.Timeline)
		events.GET("/:id", h.GetLogisticsEvent)
		events.PATCH("/:id", h.UpdateLogisticsEvent)
		events.DELETE("/:id", h.DeleteLogisticsEvent)
		events.PATCH("/:id/status", h.UpdateLogisticsEventStatus)
	}
}

func addDashboardRoutes(rg *gin.RouterGroup, h *handlers.DashboardHandler) {
	rg.GET(PathDashboard, h.GetDashboard)
}

func addAdminRoutes(rg *gin.RouterGroup, h *handlers.AdminHandler) {
	admin := rg.Group(PathAdmin)
	{
		admin.POST("/snapshot", h.PersistSnapshot)
		admin.POST("/reset", h.ResetStore)
	}
}

func addEventRoutes(rg *gin.RouterGroup, h *handlers.EventsHandler) {
	rg.GET(PathEvents, h.StreamChanges)
}
