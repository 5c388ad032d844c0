package main

import (
	"fmt"
	"log"

	"github.com/ibn-network/ccm-backend/docs"
	"github.com/ibn-network/ccm-backend/internal/config"
	"github.com/ibn-network/ccm-backend/internal/logger"
	"github.com/ibn-network/ccm-backend/pkg/api/routes"
	"github.com/ibn-network/ccm-backend/pkg/api/servers"
	"github.com/ibn-network/ccm-backend/pkg/infrastructure/gateway"
	"github.com/ibn-network/ccm-backend/pkg/infrastructure/notify"
	"github.com/ibn-network/ccm-backend/pkg/infrastructure/postgres/connection"
	"github.com/ibn-network/ccm-backend/pkg/taskmanager"

	"github.com/gin-contrib/cors"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// @title           Chaincode Management Backend
// @version         1.0
// @description     Deployment workflow engine for chaincode lifecycle management

// @host      localhost:${PORT}
// @BasePath  /api/v1

// @securityDefinitions.basic  NoAuth
func main() {

	logger.Init()

	// Load .env file if it exists (optional for Docker runtime)
	if err := godotenv.Load(".env"); err != nil {
		logger.Infof("No .env file found, using environment variables: %s", err)
	}

	cfg := config.Load()

	postgresDB, err := connection.Init(
		cfg.PostgresUser,
		cfg.PostgresHost,
		cfg.PostgresPassword,
		cfg.PostgresDatabase,
		cfg.PostgresPort,
	)
	if err != nil {
		logger.Fatal("Failed to connect to postgres", zap.Error(err))
	}

	publisher, err := notify.NewRedisPublisher(cfg.RedisURL)
	if err != nil {
		logger.Fatal("Failed to connect to redis", zap.Error(err))
	}
	defer publisher.Close()

	gatewayClient := gateway.NewClient(cfg.GatewayURL, cfg.GatewayTimeout, cfg.GatewayMaxRetries)
	taskManager := taskmanager.NewTaskManager(cfg.Workers, cfg.TaskBuffer)
	defer taskManager.Stop()

	// programmatically set swagger info
	docs.SwaggerInfo.Title = "Chaincode Management Backend"
	docs.SwaggerInfo.Description = "Chaincode deployment workflow API"
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.Schemes = []string{"http"}
	docs.SwaggerInfo.Host = fmt.Sprintf("localhost:%s", cfg.Port)
	docs.SwaggerInfo.BasePath = "/api/v1"

	server := servers.NewServer(postgresDB, gatewayClient, publisher, taskManager, cfg)
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"*"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"*"}

	server.Use(cors.New(corsConfig))

	routes.SetupRoutes(server)

	err = server.Start(cfg.Port)
	if err != nil {
		logger.Error("Failed to start server", zap.Error(err))
		log.Fatal(err)
	}
}
