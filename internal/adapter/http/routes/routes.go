package routes

import (
	"log"
	"net/http"

	_ "marcenaria_gestao/docs"
	"marcenaria_gestao/internal/adapter/http/handlers"
	"marcenaria_gestao/internal/config"
	"marcenaria_gestao/internal/infrastructure/metrics"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const headerRequestID = "X-Request-ID"

// Handlers groups every HTTP handler mounted under /v1.
type Handlers struct {
	Requests     *handlers.RequestHandler
	Projects     *handlers.ProjectHandler
	Teams        *handlers.TeamHandler
	Vehicles     *handlers.VehicleHandler
	SupplyOrders *handlers.SupplyOrderHandler
	Logistics    *handlers.LogisticsHandler
	Dashboard    *handlers.DashboardHandler
	Admin        *handlers.AdminHandler
	Events       *handlers.EventsHandler
}

// NewRouter builds the gin engine with middlewares, docs, metrics and the
// /v1 API.
func NewRouter(cfg config.Config, h Handlers) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, cfg)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addRequestRoutes(v1, h.Requests)
	addProjectRoutes(v1, h.Projects)
	addTeamRoutes(v1, h.Teams)
	addVehicleRoutes(v1, h.Vehicles)
	addSupplyOrderRoutes(v1, h.SupplyOrders)
	addLogisticsRoutes(v1, h.Logistics)
	addDashboardRoutes(v1, h.Dashboard)
	addAdminRoutes(v1, h.Admin)
	addEventRoutes(v1, h.Events)
	return router
}

func setMiddlewares(router *gin.Engine, cfg config.Config) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Printf("[http][router] recovered from panic request_id=%s err=%v", c.GetString(headerRequestID), recovered)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
	router.Use(requestID())
	router.Use(cors.New(corsConfig(cfg.CORSAllowedOrigins)))
}

// requestID keeps the caller's X-Request-ID or stamps a new one.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(headerRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(headerRequestID, id)
		c.Header(headerRequestID, id)
		c.Next()
	}
}

func corsConfig(origins []string) cors.Config {
	cc := cors.DefaultConfig()
	cc.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions}
	cc.AllowHeaders = append(cc.AllowHeaders, "Authorization", headerRequestID)
	cc.ExposeHeaders = []string{headerRequestID}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cc.AllowAllOrigins = true
		return cc
	}
	cc.AllowOrigins = origins
	return cc
}
