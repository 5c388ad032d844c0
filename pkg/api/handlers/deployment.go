package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/ibn-network/ccm-backend/pkg/api/dtos"
	"github.com/ibn-network/ccm-backend/pkg/domain/entities"
	"github.com/ibn-network/ccm-backend/pkg/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type DeploymentHandler struct {
	DeploymentService *services.DeploymentService
}

func NewDeploymentHandler(deploymentService *services.DeploymentService) *DeploymentHandler {
	return &DeploymentHandler{DeploymentService: deploymentService}
}

// Create godoc
// @Summary  Create a deployment and start executing it
// @Tags     deployments
// @Accept   json
// @Produce  json
// @Param    request body dtos.CreateDeploymentRequest true "deployment"
// @Success  202 {object} map[string]interface{}
// @Router   /deployments [post]
func (h *DeploymentHandler) Create(c *gin.Context) {
	var request dtos.CreateDeploymentRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	deployment, err := h.DeploymentService.CreateDeployment(c.Request.Context(), services.CreateDeploymentParams{
		ChaincodeID: request.ChaincodeID,
		ChannelName: request.ChannelName,
		TargetPeers: request.TargetPeers,
		DeployedBy:  request.DeployedBy,
		Sequence:    request.Sequence,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}

	if err := h.DeploymentService.ExecuteDeployment(c.Request.Context(), deployment.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":         err.Error(),
			"deployment_id": deployment.ID.String(),
		})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"message":       "deployment initiated",
		"deployment_id": deployment.ID.String(),
		"status":        entities.DeploymentStatusPending,
	})
}

// Execute godoc
// @Summary  Schedule execution of a pending deployment
// @Tags     deployments
// @Produce  json
// @Param    id path string true "deployment id"
// @Success  202 {object} map[string]interface{}
// @Router   /deployments/{id}/execute [post]
func (h *DeploymentHandler) Execute(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.DeploymentService.ExecuteDeployment(c.Request.Context(), id); err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"message": "execution scheduled", "deployment_id": id.String()})
}

// Get godoc
// @Summary  Get a deployment record
// @Tags     deployments
// @Produce  json
// @Param    id path string true "deployment id"
// @Success  200 {object} dtos.DeploymentResponse
// @Router   /deployments/{id} [get]
func (h *DeploymentHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	deployment, err := h.DeploymentService.GetDeployment(id)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deployment": dtos.NewDeploymentResponse(deployment)})
}

// GetStatus godoc
// @Summary  Get a deployment's status only
// @Tags     deployments
// @Produce  json
// @Param    id path string true "deployment id"
// @Success  200 {object} entities.DeploymentStatusWithID
// @Router   /deployments/{id}/status [get]
func (h *DeploymentHandler) GetStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	status, err := h.DeploymentService.GetDeploymentStatus(id)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, status)
}

// List godoc
// @Summary  List deployments
// @Tags     deployments
// @Produce  json
// @Param    status query string false "status filter"
// @Param    deployedBy query string false "deployer filter"
// @Success  200 {object} map[string]interface{}
// @Router   /deployments [get]
func (h *DeploymentHandler) List(c *gin.Context) {
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	deployments, err := h.DeploymentService.ListDeployments(
		entities.DeploymentStatus(c.Query("status")),
		c.Query("deployedBy"),
		skip,
		limit,
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	responses := make([]dtos.DeploymentResponse, 0, len(deployments))
	for _, deployment := range deployments {
		responses = append(responses, dtos.NewDeploymentResponse(deployment))
	}

	c.JSON(http.StatusOK, gin.H{"deployments": responses, "total": len(responses)})
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return uuid.Nil, false
	}
	return id, true
}

func abortWithError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, entities.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, entities.ErrInvalidState):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
