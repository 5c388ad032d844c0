package schemas

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type AuditLog struct {
	ID           uuid.UUID         `gorm:"type:uuid;primaryKey;column:id"`
	UserID       *uuid.UUID        `gorm:"type:uuid;index;column:user_id"`
	Action       string            `gorm:"column:action;not null;index"`
	ResourceType string            `gorm:"column:resource_type;index"`
	ResourceID   string            `gorm:"column:resource_id;index"`
	Details      datatypes.JSONMap `gorm:"type:jsonb;column:details"`
	Timestamp    time.Time         `gorm:"autoCreateTime;column:timestamp"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}
