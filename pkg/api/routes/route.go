package routes

import (
	"github.com/ibn-network/ccm-backend/pkg/api/handlers"
	"github.com/ibn-network/ccm-backend/pkg/api/servers"
	postgresRepositories "github.com/ibn-network/ccm-backend/pkg/infrastructure/postgres/repositories"
	"github.com/ibn-network/ccm-backend/pkg/services"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func SetupRoutes(server *servers.Server) {
	deploymentRepo := postgresRepositories.NewDeploymentPostgresRepository(server.PostgresDB)
	chaincodeRepo := postgresRepositories.NewChaincodePostgresRepository(server.PostgresDB)
	auditRepo := postgresRepositories.NewAuditPostgresRepository(server.PostgresDB)

	deploymentService := services.NewDeploymentService(
		deploymentRepo,
		chaincodeRepo,
		server.Gateway,
		server.Publisher,
		server.TaskManager,
	)
	chaincodeService := services.NewChaincodeService(
		chaincodeRepo,
		deploymentService,
		services.AutoDeployConfig{
			Enabled:        server.Config.AutoDeploy,
			DefaultChannel: server.Config.DefaultChannel,
			DefaultPeers:   server.Config.DefaultPeers,
		},
	)

	auditService := services.NewAuditService(auditRepo)

	apiV1 := server.Router.Group("/api/v1")
	setupDeploymentRoutes(apiV1.Group("/deployments"), handlers.NewDeploymentHandler(deploymentService))
	setupChaincodeRoutes(apiV1.Group("/chaincodes"), handlers.NewChaincodeHandler(chaincodeService, deploymentService))
	setupAuditRoutes(apiV1.Group("/audit-logs"), handlers.NewAuditHandler(auditService))

	setupHealthRoutes(server.Router.Group("/health"))

	server.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

func setupDeploymentRoutes(router *gin.RouterGroup, handler *handlers.DeploymentHandler) {
	router.POST("", handler.Create)
	router.POST("/:id/execute", handler.Execute)
	router.GET("", handler.List)
	router.GET("/:id", handler.Get)
	router.GET("/:id/status", handler.GetStatus)
}

func setupChaincodeRoutes(router *gin.RouterGroup, handler *handlers.ChaincodeHandler) {
	router.POST("", handler.Upload)
	router.GET("", handler.List)
	router.GET("/:id", handler.Get)
	router.POST("/:id/approve", handler.Approve)
	router.POST("/:id/reject", handler.Reject)
	router.POST("/:id/invoke", handler.Invoke)
	router.POST("/:id/query", handler.Query)
}

func setupAuditRoutes(router *gin.RouterGroup, handler *handlers.AuditHandler) {
	router.GET("", handler.List)
}

func setupHealthRoutes(router *gin.RouterGroup) {
	handler := handlers.NewHealthHandler()
	router.GET("", handler.GetHealth)
}
