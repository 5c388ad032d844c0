package entities

import (
	"time"

	"github.com/google/uuid"
)

// Audit actions recorded against deployment and chaincode transitions.
const (
	AuditDeploymentCreated   = "DEPLOYMENT_CREATED"
	AuditDeploymentDeploying = "DEPLOYMENT_DEPLOYING"
	AuditDeploymentSuccess   = "DEPLOYMENT_SUCCESS"
	AuditDeploymentFailed    = "DEPLOYMENT_FAILED"
	AuditChaincodeUploaded   = "CHAINCODE_UPLOADED"
	AuditChaincodeApproved   = "CHAINCODE_APPROVED"
	AuditChaincodeRejected   = "CHAINCODE_REJECTED"
	AuditChaincodeActive     = "CHAINCODE_ACTIVE"
)

// AuditLogEntity is the tamper-evident trail of who triggered which
// transition. Writes happen in the same transaction as the status update they
// document.
type AuditLogEntity struct {
	ID           uuid.UUID              `json:"id"`
	UserID       *uuid.UUID             `json:"user_id,omitempty"`
	Action       string                 `json:"action"`
	ResourceType string                 `json:"resource_type"`
	ResourceID   string                 `json:"resource_id"`
	Details      map[string]interface{} `json:"details,omitempty"`
	Timestamp    time.Time              `json:"timestamp"`
}
