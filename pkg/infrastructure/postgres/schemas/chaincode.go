package schemas

import (
	"time"

	"github.com/ibn-network/ccm-backend/pkg/domain/entities"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Chaincode struct {
	ID              uuid.UUID                `gorm:"type:uuid;primaryKey;column:id"`
	Name            string                   `gorm:"column:name;not null;index;uniqueIndex:idx_chaincode_name_version"`
	Version         string                   `gorm:"column:version;not null;index;uniqueIndex:idx_chaincode_name_version"`
	SourceCode      string                   `gorm:"column:source_code;type:text;not null"`
	Description     string                   `gorm:"column:description;type:text"`
	Language        string                   `gorm:"column:language;default:golang"`
	Status          entities.ChaincodeStatus `gorm:"column:status;not null;index"`
	UploadedBy      uuid.UUID                `gorm:"type:uuid;not null;column:uploaded_by"`
	ApprovedBy      *uuid.UUID               `gorm:"type:uuid;column:approved_by"`
	RejectionReason string                   `gorm:"column:rejection_reason;type:text"`
	Metadata        datatypes.JSONMap        `gorm:"type:jsonb;column:metadata"`
	CreatedAt       time.Time                `gorm:"autoCreateTime;column:created_at"`
	UpdatedAt       time.Time                `gorm:"autoUpdateTime;column:updated_at"`
}

func (Chaincode) TableName() string {
	return "chaincodes"
}
