package services

import (
	"github.com/ibn-network/ccm-backend/pkg/domain/entities"
)

type AuditRepository interface {
	Create(audit *entities.AuditLogEntity) error
	List(action string, resourceType string, resourceID string, skip int, limit int) ([]*entities.AuditLogEntity, error)
}

// AuditService exposes the trail for inspection. Writes happen inside the
// repositories, in the same transaction as the transition they document; this
// service only reads.
type AuditService struct {
	auditRepo AuditRepository
}

func NewAuditService(auditRepo AuditRepository) *AuditService {
	return &AuditService{auditRepo: auditRepo}
}

func (s *AuditService) ListAuditLogs(
	action string,
	resourceType string,
	resourceID string,
	skip int,
	limit int,
) ([]*entities.AuditLogEntity, error) {
	return s.auditRepo.List(action, resourceType, resourceID, skip, limit)
}
