package servers

import (
	"github.com/ibn-network/ccm-backend/internal/config"
	"github.com/ibn-network/ccm-backend/pkg/infrastructure/gateway"
	"github.com/ibn-network/ccm-backend/pkg/services"
	"github.com/ibn-network/ccm-backend/pkg/taskmanager"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Server struct {
	Router      *gin.Engine
	PostgresDB  *gorm.DB
	Gateway     *gateway.Client
	Publisher   services.Publisher
	TaskManager *taskmanager.TaskManager
	Config      *config.Config
}

func (s *Server) Start(port string) error {
	return s.Router.Run(":" + port)
}

func (s *Server) Use(middleware gin.HandlerFunc) {
	s.Router.Use(middleware)
}

func NewServer(
	db *gorm.DB,
	gatewayClient *gateway.Client,
	publisher services.Publisher,
	taskManager *taskmanager.TaskManager,
	cfg *config.Config,
) *Server {
	app := gin.Default()

	return &Server{
		Router:      app,
		PostgresDB:  db,
		Gateway:     gatewayClient,
		Publisher:   publisher,
		TaskManager: taskManager,
		Config:      cfg,
	}
}
