package repositories

import (
	"github.com/ibn-network/ccm-backend/pkg/domain/entities"
	"github.com/ibn-network/ccm-backend/pkg/infrastructure/postgres/schemas"

	"gorm.io/gorm"
)

type AuditPostgresRepository struct {
	db *gorm.DB
}

func NewAuditPostgresRepository(db *gorm.DB) *AuditPostgresRepository {
	return &AuditPostgresRepository{db: db}
}

func (r *AuditPostgresRepository) Create(audit *entities.AuditLogEntity) error {
	return r.db.Create(auditRow(audit)).Error
}

func (r *AuditPostgresRepository) List(
	action string,
	resourceType string,
	resourceID string,
	skip int,
	limit int,
) ([]*entities.AuditLogEntity, error) {
	query := r.db.Model(&schemas.AuditLog{})
	if action != "" {
		query = query.Where("action = ?", action)
	}
	if resourceType != "" {
		query = query.Where("resource_type = ?", resourceType)
	}
	if resourceID != "" {
		query = query.Where("resource_id = ?", resourceID)
	}

	var rows []schemas.AuditLog
	err := query.Order("timestamp DESC").Offset(skip).Limit(limit).Find(&rows).Error
	if err != nil {
		return nil, err
	}

	logs := make([]*entities.AuditLogEntity, 0, len(rows))
	for i := range rows {
		logs = append(logs, &entities.AuditLogEntity{
			ID:           rows[i].ID,
			UserID:       rows[i].UserID,
			Action:       rows[i].Action,
			ResourceType: rows[i].ResourceType,
			ResourceID:   rows[i].ResourceID,
			Details:      map[string]interface{}(rows[i].Details),
			Timestamp:    rows[i].Timestamp,
		})
	}
	return logs, nil
}
