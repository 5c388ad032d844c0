package entities

import (
	"time"

	"github.com/google/uuid"
)

// DeploymentEntity is one deployment attempt. Records are append-only audit
// artifacts: re-deploys create new records, nothing ever deletes one.
type DeploymentEntity struct {
	ID          uuid.UUID        `json:"id"`
	ChaincodeID uuid.UUID        `json:"chaincode_id"`
	ChannelName string           `json:"channel_name"`
	TargetPeers []string         `json:"target_peers"`
	Status      DeploymentStatus `json:"status"`
	// Sequence is the chaincode-definition sequence used by approve/commit.
	// Defaults to 1, caller-supplied for upgrades.
	Sequence int `json:"sequence"`
	// Context accumulates step outputs (package_id, package_path,
	// peer_endpoint, ...). Keys are write-once; later steps read what earlier
	// steps wrote. Persisted as an open map so new steps can add keys without
	// a migration.
	Context        map[string]interface{} `json:"context,omitempty"`
	ErrorMessage   string                 `json:"error_message,omitempty"`
	Logs           string                 `json:"logs,omitempty"`
	DeployedBy     uuid.UUID              `json:"deployed_by"`
	DeploymentDate *time.Time             `json:"deployment_date,omitempty"`
	CompletionDate *time.Time             `json:"completion_date,omitempty"`
	CreatedAt      time.Time              `json:"created_at"`
	UpdatedAt      time.Time              `json:"updated_at"`
}

type DeploymentStatusWithID struct {
	DeploymentID uuid.UUID        `json:"deployment_id"`
	Status       DeploymentStatus `json:"status"`
}
