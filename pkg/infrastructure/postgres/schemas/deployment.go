package schemas

import (
	"time"

	"github.com/ibn-network/ccm-backend/pkg/domain/entities"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Deployment struct {
	ID             uuid.UUID                   `gorm:"type:uuid;primaryKey;column:id"`
	ChaincodeID    uuid.UUID                   `gorm:"type:uuid;not null;index;column:chaincode_id"`
	Chaincode      Chaincode                   `gorm:"foreignKey:ChaincodeID"`
	ChannelName    string                      `gorm:"column:channel_name;not null;index"`
	TargetPeers    datatypes.JSONSlice[string] `gorm:"type:jsonb;not null;column:target_peers"`
	Status         entities.DeploymentStatus   `gorm:"column:status;not null;index"`
	Sequence       int                         `gorm:"column:sequence;not null;default:1"`
	Context        datatypes.JSONMap           `gorm:"type:jsonb;column:context"`
	ErrorMessage   string                      `gorm:"column:error_message;type:text"`
	Logs           string                      `gorm:"column:logs;type:text"`
	DeployedBy     uuid.UUID                   `gorm:"type:uuid;not null;column:deployed_by"`
	DeploymentDate *time.Time                  `gorm:"column:deployment_date"`
	CompletionDate *time.Time                  `gorm:"column:completion_date"`
	CreatedAt      time.Time                   `gorm:"autoCreateTime;column:created_at"`
	UpdatedAt      time.Time                   `gorm:"autoUpdateTime;column:updated_at"`
}

func (Deployment) TableName() string {
	return "deployments"
}
