package handlers

import (
	"net/http"
	"strconv"

	"github.com/ibn-network/ccm-backend/pkg/api/dtos"
	"github.com/ibn-network/ccm-backend/pkg/domain/entities"
	"github.com/ibn-network/ccm-backend/pkg/services"

	"github.com/gin-gonic/gin"
)

type ChaincodeHandler struct {
	ChaincodeService  *services.ChaincodeService
	DeploymentService *services.DeploymentService
}

func NewChaincodeHandler(
	chaincodeService *services.ChaincodeService,
	deploymentService *services.DeploymentService,
) *ChaincodeHandler {
	return &ChaincodeHandler{
		ChaincodeService:  chaincodeService,
		DeploymentService: deploymentService,
	}
}

// Upload godoc
// @Summary  Upload a chaincode
// @Tags     chaincodes
// @Accept   json
// @Produce  json
// @Param    request body dtos.UploadChaincodeRequest true "chaincode"
// @Success  201 {object} map[string]interface{}
// @Router   /chaincodes [post]
func (h *ChaincodeHandler) Upload(c *gin.Context) {
	var request dtos.UploadChaincodeRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	chaincode, err := h.ChaincodeService.UploadChaincode(c.Request.Context(), services.UploadChaincodeParams{
		Name:        request.Name,
		Version:     request.Version,
		SourceCode:  request.SourceCode,
		Description: request.Description,
		Language:    request.Language,
		UploadedBy:  request.UploadedBy,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"chaincode": chaincode})
}

// Get godoc
// @Summary  Get a chaincode
// @Tags     chaincodes
// @Produce  json
// @Param    id path string true "chaincode id"
// @Success  200 {object} map[string]interface{}
// @Router   /chaincodes/{id} [get]
func (h *ChaincodeHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	chaincode, err := h.ChaincodeService.GetChaincode(id)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"chaincode": chaincode})
}

// List godoc
// @Summary  List chaincodes
// @Tags     chaincodes
// @Produce  json
// @Param    status query string false "status filter"
// @Success  200 {object} map[string]interface{}
// @Router   /chaincodes [get]
func (h *ChaincodeHandler) List(c *gin.Context) {
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	chaincodes, err := h.ChaincodeService.ListChaincodes(
		entities.ChaincodeStatus(c.Query("status")),
		skip,
		limit,
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"chaincodes": chaincodes, "total": len(chaincodes)})
}

// Approve godoc
// @Summary  Approve a chaincode for deployment
// @Tags     chaincodes
// @Accept   json
// @Produce  json
// @Param    id path string true "chaincode id"
// @Param    request body dtos.ApproveChaincodeRequest true "approval"
// @Success  200 {object} map[string]interface{}
// @Router   /chaincodes/{id}/approve [post]
func (h *ChaincodeHandler) Approve(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var request dtos.ApproveChaincodeRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	chaincode, err := h.ChaincodeService.ApproveChaincode(c.Request.Context(), id, request.ApprovedBy)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"chaincode": chaincode})
}

// Reject godoc
// @Summary  Reject a chaincode
// @Tags     chaincodes
// @Accept   json
// @Produce  json
// @Param    id path string true "chaincode id"
// @Param    request body dtos.RejectChaincodeRequest true "rejection"
// @Success  200 {object} map[string]interface{}
// @Router   /chaincodes/{id}/reject [post]
func (h *ChaincodeHandler) Reject(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var request dtos.RejectChaincodeRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.ChaincodeService.RejectChaincode(c.Request.Context(), id, request.RejectedBy, request.Reason); err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "OK"})
}

// Invoke godoc
// @Summary  Invoke a chaincode function
// @Tags     chaincodes
// @Accept   json
// @Produce  json
// @Param    id path string true "chaincode id"
// @Param    request body dtos.ChaincodeCallRequest true "call"
// @Success  200 {object} map[string]interface{}
// @Router   /chaincodes/{id}/invoke [post]
func (h *ChaincodeHandler) Invoke(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var request dtos.ChaincodeCallRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if request.ChannelName == "" {
		request.ChannelName = dtos.DefaultChannelName
	}

	result, err := h.DeploymentService.InvokeChaincode(
		c.Request.Context(), id, request.FunctionName, request.Args, request.ChannelName,
	)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"transaction_id": result.TransactionID,
		"result":         result.Result,
	})
}

// Query godoc
// @Summary  Query a chaincode function
// @Tags     chaincodes
// @Accept   json
// @Produce  json
// @Param    id path string true "chaincode id"
// @Param    request body dtos.ChaincodeCallRequest true "call"
// @Success  200 {object} map[string]interface{}
// @Router   /chaincodes/{id}/query [post]
func (h *ChaincodeHandler) Query(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var request dtos.ChaincodeCallRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if request.ChannelName == "" {
		request.ChannelName = dtos.DefaultChannelName
	}

	result, err := h.DeploymentService.QueryChaincode(
		c.Request.Context(), id, request.FunctionName, request.Args, request.ChannelName,
	)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "result": result.Result})
}
