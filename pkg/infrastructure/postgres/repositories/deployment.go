package repositories

import (
	"errors"
	"time"

	"github.com/ibn-network/ccm-backend/pkg/domain/entities"
	"github.com/ibn-network/ccm-backend/pkg/infrastructure/postgres/schemas"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type DeploymentPostgresRepository struct {
	db *gorm.DB
}

func NewDeploymentPostgresRepository(db *gorm.DB) *DeploymentPostgresRepository {
	return &DeploymentPostgresRepository{db: db}
}

// CreateWithAudit persists a new deployment record together with its audit
// event in one transaction.
func (r *DeploymentPostgresRepository) CreateWithAudit(
	deployment *entities.DeploymentEntity,
	audit *entities.AuditLogEntity,
) error {
	row := schemas.Deployment{
		ID:          deployment.ID,
		ChaincodeID: deployment.ChaincodeID,
		ChannelName: deployment.ChannelName,
		TargetPeers: datatypes.NewJSONSlice(deployment.TargetPeers),
		Status:      deployment.Status,
		Sequence:    deployment.Sequence,
		Context:     datatypes.JSONMap(deployment.Context),
		DeployedBy:  deployment.DeployedBy,
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
		return tx.Create(auditRow(audit)).Error
	})
}

// MarkDeploying is the compare-and-swap guard for execution: the transition
// succeeds only when the record is still pending, so a deployment can be
// executed at most once. Also stamps deployment_date and writes the audit row.
func (r *DeploymentPostgresRepository) MarkDeploying(
	id string,
	audit *entities.AuditLogEntity,
) (bool, error) {
	var swapped bool
	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&schemas.Deployment{}).
			Where("id = ? AND status = ?", id, entities.DeploymentStatusPending).
			Updates(map[string]interface{}{
				"status":          entities.DeploymentStatusDeploying,
				"deployment_date": time.Now().UTC(),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		swapped = true
		return tx.Create(auditRow(audit)).Error
	})
	return swapped, err
}

// Finish moves a deploying record into a terminal status, stamping
// completion_date and storing the final context and diagnostics. Guarded on
// status = deploying so a terminal record is never overwritten.
func (r *DeploymentPostgresRepository) Finish(
	id string,
	status entities.DeploymentStatus,
	errorMessage string,
	logs string,
	stepContext map[string]interface{},
	audit *entities.AuditLogEntity,
) (bool, error) {
	updates := map[string]interface{}{
		"status":          status,
		"completion_date": time.Now().UTC(),
		"error_message":   errorMessage,
	}
	if logs != "" {
		updates["logs"] = logs
	}
	if stepContext != nil {
		updates["context"] = datatypes.JSONMap(stepContext)
	}

	var swapped bool
	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&schemas.Deployment{}).
			Where("id = ? AND status = ?", id, entities.DeploymentStatusDeploying).
			Updates(updates)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		swapped = true
		return tx.Create(auditRow(audit)).Error
	})
	return swapped, err
}

// SaveContext persists the inter-step context while a deployment is running,
// so a partially completed run leaves an inspectable trail.
func (r *DeploymentPostgresRepository) SaveContext(
	id string,
	stepContext map[string]interface{},
) error {
	return r.db.Model(&schemas.Deployment{}).
		Where("id = ?", id).
		Update("context", datatypes.JSONMap(stepContext)).Error
}

func (r *DeploymentPostgresRepository) GetByID(id string) (*entities.DeploymentEntity, error) {
	var row schemas.Deployment
	err := r.db.Where("id = ?", id).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entities.ErrNotFound
		}
		return nil, err
	}
	return toDeploymentEntity(&row), nil
}

func (r *DeploymentPostgresRepository) GetStatus(id string) (entities.DeploymentStatus, error) {
	var row schemas.Deployment
	err := r.db.Select("status").Where("id = ?", id).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", entities.ErrNotFound
		}
		return "", err
	}
	return row.Status, nil
}

func (r *DeploymentPostgresRepository) List(
	status entities.DeploymentStatus,
	deployedBy string,
	skip int,
	limit int,
) ([]*entities.DeploymentEntity, error) {
	query := r.db.Model(&schemas.Deployment{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if deployedBy != "" {
		query = query.Where("deployed_by = ?", deployedBy)
	}

	var rows []schemas.Deployment
	err := query.Order("created_at DESC").Offset(skip).Limit(limit).Find(&rows).Error
	if err != nil {
		return nil, err
	}

	deployments := make([]*entities.DeploymentEntity, 0, len(rows))
	for i := range rows {
		deployments = append(deployments, toDeploymentEntity(&rows[i]))
	}
	return deployments, nil
}

func toDeploymentEntity(row *schemas.Deployment) *entities.DeploymentEntity {
	return &entities.DeploymentEntity{
		ID:             row.ID,
		ChaincodeID:    row.ChaincodeID,
		ChannelName:    row.ChannelName,
		TargetPeers:    row.TargetPeers,
		Status:         row.Status,
		Sequence:       row.Sequence,
		Context:        map[string]interface{}(row.Context),
		ErrorMessage:   row.ErrorMessage,
		Logs:           row.Logs,
		DeployedBy:     row.DeployedBy,
		DeploymentDate: row.DeploymentDate,
		CompletionDate: row.CompletionDate,
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
	}
}

func auditRow(audit *entities.AuditLogEntity) *schemas.AuditLog {
	return &schemas.AuditLog{
		ID:           audit.ID,
		UserID:       audit.UserID,
		Action:       audit.Action,
		ResourceType: audit.ResourceType,
		ResourceID:   audit.ResourceID,
		Details:      datatypes.JSONMap(audit.Details),
	}
}
