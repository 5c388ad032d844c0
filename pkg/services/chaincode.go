package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/ibn-network/ccm-backend/internal/logger"
	"github.com/ibn-network/ccm-backend/pkg/domain/entities"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DeploymentScheduler is the slice of the deployment service the chaincode
// lifecycle needs for auto-deploys.
type DeploymentScheduler interface {
	CreateDeployment(ctx context.Context, params CreateDeploymentParams) (*entities.DeploymentEntity, error)
	ExecuteDeployment(ctx context.Context, deploymentID uuid.UUID) error
}

// AutoDeployConfig enables deploying a chaincode as soon as it is approved,
// using defaults when the chaincode carries no deployment metadata.
type AutoDeployConfig struct {
	Enabled        bool
	DefaultChannel string
	DefaultPeers   []string
}

type UploadChaincodeParams struct {
	Name        string
	Version     string
	SourceCode  string
	Description string
	Language    string
	UploadedBy  uuid.UUID
}

type ChaincodeService struct {
	chaincodeRepo ChaincodeRepository
	deployments   DeploymentScheduler
	autoDeploy    AutoDeployConfig
}

func NewChaincodeService(
	chaincodeRepo ChaincodeRepository,
	deployments DeploymentScheduler,
	autoDeploy AutoDeployConfig,
) *ChaincodeService {
	return &ChaincodeService{
		chaincodeRepo: chaincodeRepo,
		deployments:   deployments,
		autoDeploy:    autoDeploy,
	}
}

func (s *ChaincodeService) UploadChaincode(
	ctx context.Context,
	params UploadChaincodeParams,
) (*entities.ChaincodeEntity, error) {
	if errs := ValidateSource(params.SourceCode); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", entities.ErrInvalidState, strings.Join(errs, "; "))
	}

	language := params.Language
	if language == "" {
		language = "golang"
	}

	chaincode := &entities.ChaincodeEntity{
		ID:          uuid.New(),
		Name:        params.Name,
		Version:     params.Version,
		SourceCode:  params.SourceCode,
		Description: params.Description,
		Language:    language,
		Status:      entities.ChaincodeStatusUploaded,
		UploadedBy:  params.UploadedBy,
	}

	err := s.chaincodeRepo.CreateWithAudit(chaincode, chaincodeAudit(
		chaincode.ID, &params.UploadedBy, entities.AuditChaincodeUploaded,
		map[string]interface{}{"name": params.Name, "version": params.Version},
	))
	if err != nil {
		return nil, err
	}

	return chaincode, nil
}

// ApproveChaincode marks a chaincode deployable. When auto-deploy is on, a
// deployment is scheduled right here; any error in that scheduling is
// swallowed so it can never fail the approval itself.
func (s *ChaincodeService) ApproveChaincode(
	ctx context.Context,
	chaincodeID uuid.UUID,
	approvedBy uuid.UUID,
) (*entities.ChaincodeEntity, error) {
	chaincode, err := s.chaincodeRepo.GetByID(chaincodeID.String())
	if err != nil {
		return nil, err
	}
	if chaincode.Status == entities.ChaincodeStatusActive || chaincode.Status == entities.ChaincodeStatusRejected {
		return nil, fmt.Errorf(
			"%w: chaincode in status %q cannot be approved",
			entities.ErrInvalidState, chaincode.Status,
		)
	}

	err = s.chaincodeRepo.UpdateStatusWithAudit(
		chaincodeID.String(),
		entities.ChaincodeStatusApproved,
		&approvedBy,
		"",
		chaincodeAudit(chaincodeID, &approvedBy, entities.AuditChaincodeApproved, nil),
	)
	if err != nil {
		return nil, err
	}
	chaincode.Status = entities.ChaincodeStatusApproved
	chaincode.ApprovedBy = &approvedBy

	if s.autoDeploy.Enabled {
		s.triggerAutoDeploy(ctx, chaincode, approvedBy)
	}

	return chaincode, nil
}

func (s *ChaincodeService) RejectChaincode(
	ctx context.Context,
	chaincodeID uuid.UUID,
	rejectedBy uuid.UUID,
	reason string,
) error {
	return s.chaincodeRepo.UpdateStatusWithAudit(
		chaincodeID.String(),
		entities.ChaincodeStatusRejected,
		nil,
		reason,
		chaincodeAudit(chaincodeID, &rejectedBy, entities.AuditChaincodeRejected,
			map[string]interface{}{"reason": reason}),
	)
}

func (s *ChaincodeService) GetChaincode(chaincodeID uuid.UUID) (*entities.ChaincodeEntity, error) {
	return s.chaincodeRepo.GetByID(chaincodeID.String())
}

func (s *ChaincodeService) ListChaincodes(
	status entities.ChaincodeStatus,
	skip int,
	limit int,
) ([]*entities.ChaincodeEntity, error) {
	return s.chaincodeRepo.List(status, skip, limit)
}

// triggerAutoDeploy schedules a deployment for a freshly approved chaincode.
// Best-effort by contract: every failure is logged and dropped.
func (s *ChaincodeService) triggerAutoDeploy(
	ctx context.Context,
	chaincode *entities.ChaincodeEntity,
	approvedBy uuid.UUID,
) {
	defer func() {
		if r := recover(); r != nil {
			logger.Warn("auto-deploy trigger panicked",
				zap.String("chaincodeId", chaincode.ID.String()),
				zap.Any("panic", r))
		}
	}()

	channel := s.autoDeploy.DefaultChannel
	peers := s.autoDeploy.DefaultPeers
	if md := chaincode.Metadata; md != nil {
		if c, ok := md["default_channel"].(string); ok && c != "" {
			channel = c
		}
		if raw, ok := md["default_peers"].([]interface{}); ok && len(raw) > 0 {
			peers = nil
			for _, p := range raw {
				if endpoint, ok := p.(string); ok {
					peers = append(peers, endpoint)
				}
			}
		}
	}
	if channel == "" || len(peers) == 0 {
		logger.Warn("auto-deploy skipped, no channel or peers configured",
			zap.String("chaincodeId", chaincode.ID.String()))
		return
	}

	deployment, err := s.deployments.CreateDeployment(ctx, CreateDeploymentParams{
		ChaincodeID: chaincode.ID,
		ChannelName: channel,
		TargetPeers: peers,
		DeployedBy:  approvedBy,
	})
	if err != nil {
		logger.Warn("auto-deploy create failed",
			zap.String("chaincodeId", chaincode.ID.String()),
			zap.Error(err))
		return
	}

	if err := s.deployments.ExecuteDeployment(ctx, deployment.ID); err != nil {
		logger.Warn("auto-deploy execute failed",
			zap.String("deploymentId", deployment.ID.String()),
			zap.Error(err))
	}
}

// ValidateSource runs the basic structural checks a chaincode must pass
// before it enters the lifecycle. Full static analysis is a separate
// collaborator, not this service.
func ValidateSource(sourceCode string) []string {
	var errs []string
	if strings.TrimSpace(sourceCode) == "" {
		errs = append(errs, "source code cannot be empty")
		return errs
	}
	if !strings.Contains(sourceCode, "package main") {
		errs = append(errs, "missing package main declaration")
	}
	if !strings.Contains(sourceCode, "func main") && !strings.Contains(sourceCode, "func Init") {
		errs = append(errs, "missing main or Init function")
	}
	return errs
}

func chaincodeAudit(
	chaincodeID uuid.UUID,
	userID *uuid.UUID,
	action string,
	details map[string]interface{},
) *entities.AuditLogEntity {
	return &entities.AuditLogEntity{
		ID:           uuid.New(),
		UserID:       userID,
		Action:       action,
		ResourceType: "chaincode",
		ResourceID:   chaincodeID.String(),
		Details:      details,
	}
}
