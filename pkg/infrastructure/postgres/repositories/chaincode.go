package repositories

import (
	"errors"

	"github.com/ibn-network/ccm-backend/pkg/domain/entities"
	"github.com/ibn-network/ccm-backend/pkg/infrastructure/postgres/schemas"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ChaincodePostgresRepository struct {
	db *gorm.DB
}

func NewChaincodePostgresRepository(db *gorm.DB) *ChaincodePostgresRepository {
	return &ChaincodePostgresRepository{db: db}
}

func (r *ChaincodePostgresRepository) CreateWithAudit(
	chaincode *entities.ChaincodeEntity,
	audit *entities.AuditLogEntity,
) error {
	row := schemas.Chaincode{
		ID:          chaincode.ID,
		Name:        chaincode.Name,
		Version:     chaincode.Version,
		SourceCode:  chaincode.SourceCode,
		Description: chaincode.Description,
		Language:    chaincode.Language,
		Status:      chaincode.Status,
		UploadedBy:  chaincode.UploadedBy,
		Metadata:    datatypes.JSONMap(chaincode.Metadata),
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
		return tx.Create(auditRow(audit)).Error
	})
}

func (r *ChaincodePostgresRepository) GetByID(id string) (*entities.ChaincodeEntity, error) {
	var row schemas.Chaincode
	err := r.db.Where("id = ?", id).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entities.ErrNotFound
		}
		return nil, err
	}
	return toChaincodeEntity(&row), nil
}

func (r *ChaincodePostgresRepository) List(
	status entities.ChaincodeStatus,
	skip int,
	limit int,
) ([]*entities.ChaincodeEntity, error) {
	query := r.db.Model(&schemas.Chaincode{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var rows []schemas.Chaincode
	err := query.Order("created_at DESC").Offset(skip).Limit(limit).Find(&rows).Error
	if err != nil {
		return nil, err
	}

	chaincodes := make([]*entities.ChaincodeEntity, 0, len(rows))
	for i := range rows {
		chaincodes = append(chaincodes, toChaincodeEntity(&rows[i]))
	}
	return chaincodes, nil
}

// UpdateStatusWithAudit applies a lifecycle transition and its audit event in
// one transaction.
func (r *ChaincodePostgresRepository) UpdateStatusWithAudit(
	id string,
	status entities.ChaincodeStatus,
	approvedBy *uuid.UUID,
	rejectionReason string,
	audit *entities.AuditLogEntity,
) error {
	updates := map[string]interface{}{"status": status}
	if approvedBy != nil {
		updates["approved_by"] = *approvedBy
	}
	if rejectionReason != "" {
		updates["rejection_reason"] = rejectionReason
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&schemas.Chaincode{}).Where("id = ?", id).Updates(updates)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return entities.ErrNotFound
		}
		return tx.Create(auditRow(audit)).Error
	})
}

func toChaincodeEntity(row *schemas.Chaincode) *entities.ChaincodeEntity {
	return &entities.ChaincodeEntity{
		ID:              row.ID,
		Name:            row.Name,
		Version:         row.Version,
		SourceCode:      row.SourceCode,
		Description:     row.Description,
		Language:        row.Language,
		Status:          row.Status,
		UploadedBy:      row.UploadedBy,
		ApprovedBy:      row.ApprovedBy,
		RejectionReason: row.RejectionReason,
		Metadata:        map[string]interface{}(row.Metadata),
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
	}
}
