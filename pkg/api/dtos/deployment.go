package dtos

import (
	"time"

	"github.com/ibn-network/ccm-backend/pkg/domain/entities"

	"github.com/google/uuid"
)

type CreateDeploymentRequest struct {
	ChaincodeID uuid.UUID `json:"chaincodeId" binding:"required"`
	ChannelName string    `json:"channelName" binding:"required"`
	TargetPeers []string  `json:"targetPeers" binding:"required,min=1"`
	// DeployedBy identifies the caller. Authentication is handled upstream;
	// this layer records the identity it is handed.
	DeployedBy uuid.UUID `json:"deployedBy" binding:"required"`
	Sequence   int       `json:"sequence"`
}

type DeploymentResponse struct {
	ID             uuid.UUID                 `json:"id"`
	ChaincodeID    uuid.UUID                 `json:"chaincode_id"`
	ChannelName    string                    `json:"channel_name"`
	TargetPeers    []string                  `json:"target_peers"`
	Status         entities.DeploymentStatus `json:"status"`
	Sequence       int                       `json:"sequence"`
	Context        map[string]interface{}    `json:"context,omitempty"`
	ErrorMessage   string                    `json:"error_message,omitempty"`
	Logs           string                    `json:"logs,omitempty"`
	DeployedBy     uuid.UUID                 `json:"deployed_by"`
	DeploymentDate *time.Time                `json:"deployment_date,omitempty"`
	CompletionDate *time.Time                `json:"completion_date,omitempty"`
	CreatedAt      time.Time                 `json:"created_at"`
	UpdatedAt      time.Time                 `json:"updated_at"`
}

func NewDeploymentResponse(deployment *entities.DeploymentEntity) DeploymentResponse {
	return DeploymentResponse{
		ID:             deployment.ID,
		ChaincodeID:    deployment.ChaincodeID,
		ChannelName:    deployment.ChannelName,
		TargetPeers:    deployment.TargetPeers,
		Status:         deployment.Status,
		Sequence:       deployment.Sequence,
		Context:        deployment.Context,
		ErrorMessage:   deployment.ErrorMessage,
		Logs:           deployment.Logs,
		DeployedBy:     deployment.DeployedBy,
		DeploymentDate: deployment.DeploymentDate,
		CompletionDate: deployment.CompletionDate,
		CreatedAt:      deployment.CreatedAt,
		UpdatedAt:      deployment.UpdatedAt,
	}
}
