package services

import (
	"context"
	"fmt"

	"github.com/ibn-network/ccm-backend/internal/logger"
	"github.com/ibn-network/ccm-backend/pkg/domain/entities"
	"github.com/ibn-network/ccm-backend/pkg/infrastructure/gateway"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type DeploymentRepository interface {
	CreateWithAudit(deployment *entities.DeploymentEntity, audit *entities.AuditLogEntity) error
	MarkDeploying(id string, audit *entities.AuditLogEntity) (bool, error)
	Finish(
		id string,
		status entities.DeploymentStatus,
		errorMessage string,
		logs string,
		stepContext map[string]interface{},
		audit *entities.AuditLogEntity,
	) (bool, error)
	SaveContext(id string, stepContext map[string]interface{}) error
	GetByID(id string) (*entities.DeploymentEntity, error)
	GetStatus(id string) (entities.DeploymentStatus, error)
	List(status entities.DeploymentStatus, deployedBy string, skip int, limit int) ([]*entities.DeploymentEntity, error)
}

type ChaincodeRepository interface {
	CreateWithAudit(chaincode *entities.ChaincodeEntity, audit *entities.AuditLogEntity) error
	GetByID(id string) (*entities.ChaincodeEntity, error)
	List(status entities.ChaincodeStatus, skip int, limit int) ([]*entities.ChaincodeEntity, error)
	UpdateStatusWithAudit(
		id string,
		status entities.ChaincodeStatus,
		approvedBy *uuid.UUID,
		rejectionReason string,
		audit *entities.AuditLogEntity,
	) error
}

// Publisher is the event sink for status updates. Implementations may fail;
// the workflow never lets that failure surface.
type Publisher interface {
	Publish(ctx context.Context, topic string, payload interface{}) error
}

type TaskManager interface {
	Start()
	AddTask(task entities.Task)
	Stop()
}

type CreateDeploymentParams struct {
	ChaincodeID uuid.UUID
	ChannelName string
	TargetPeers []string
	DeployedBy  uuid.UUID
	Sequence    int
}

// DeploymentService is the public entry point of the deployment engine. It
// owns record lifecycle and queries; the step machinery lives in the
// workflow engine.
type DeploymentService struct {
	deploymentRepo DeploymentRepository
	chaincodeRepo  ChaincodeRepository
	gateway        GatewayClient
	engine         *WorkflowEngine
	publisher      Publisher
	taskManager    TaskManager
}

func NewDeploymentService(
	deploymentRepo DeploymentRepository,
	chaincodeRepo ChaincodeRepository,
	gatewayClient GatewayClient,
	publisher Publisher,
	taskManager TaskManager,
) *DeploymentService {
	service := &DeploymentService{
		deploymentRepo: deploymentRepo,
		chaincodeRepo:  chaincodeRepo,
		gateway:        gatewayClient,
		engine:         NewWorkflowEngine(gatewayClient),
		publisher:      publisher,
		taskManager:    taskManager,
	}

	service.taskManager.Start()

	return service
}

// CreateDeployment persists a new pending record. The chaincode must be
// approved and at least one target peer given; violations are rejected
// synchronously and nothing is persisted.
func (s *DeploymentService) CreateDeployment(
	ctx context.Context,
	params CreateDeploymentParams,
) (*entities.DeploymentEntity, error) {
	if len(params.TargetPeers) == 0 {
		return nil, fmt.Errorf("%w: target peers must not be empty", entities.ErrInvalidState)
	}

	chaincode, err := s.chaincodeRepo.GetByID(params.ChaincodeID.String())
	if err != nil {
		return nil, err
	}
	if chaincode.Status != entities.ChaincodeStatusApproved {
		return nil, fmt.Errorf(
			"%w: chaincode must be approved before deployment (status %q)",
			entities.ErrInvalidState, chaincode.Status,
		)
	}

	sequence := params.Sequence
	if sequence < 1 {
		sequence = 1
	}

	deployment := &entities.DeploymentEntity{
		ID:          uuid.New(),
		ChaincodeID: params.ChaincodeID,
		ChannelName: params.ChannelName,
		TargetPeers: params.TargetPeers,
		Status:      entities.DeploymentStatusPending,
		Sequence:    sequence,
		DeployedBy:  params.DeployedBy,
	}

	err = s.deploymentRepo.CreateWithAudit(deployment, deploymentAudit(
		deployment, params.DeployedBy, entities.AuditDeploymentCreated,
		map[string]interface{}{
			"chaincode_id": params.ChaincodeID.String(),
			"channel_name": params.ChannelName,
			"target_peers": params.TargetPeers,
		},
	))
	if err != nil {
		logger.Error("failed to create deployment",
			zap.String("chaincodeId", params.ChaincodeID.String()),
			zap.Error(err))
		return nil, err
	}

	logger.Info("deployment created",
		zap.String("deploymentId", deployment.ID.String()),
		zap.String("channel", params.ChannelName))

	return deployment, nil
}

// ExecuteDeployment schedules the workflow for a pending record. The
// pending->deploying swap happens here, synchronously, so a record can only
// ever be executed once; the steps then run on a worker.
func (s *DeploymentService) ExecuteDeployment(ctx context.Context, deploymentID uuid.UUID) error {
	deployment, err := s.deploymentRepo.GetByID(deploymentID.String())
	if err != nil {
		return err
	}

	swapped, err := s.deploymentRepo.MarkDeploying(deploymentID.String(), deploymentAudit(
		deployment, deployment.DeployedBy, entities.AuditDeploymentDeploying, nil,
	))
	if err != nil {
		return err
	}
	if !swapped {
		return fmt.Errorf(
			"%w: deployment %s is not pending",
			entities.ErrInvalidState, deploymentID,
		)
	}

	// The run outlives the HTTP request that scheduled it; a canceled caller
	// context must not abort gateway calls mid-deployment.
	runCtx := context.WithoutCancel(ctx)
	s.taskManager.AddTask(func() {
		s.runDeployment(runCtx, deploymentID)
	})

	return nil
}

// runDeployment executes the workflow on a worker goroutine and resolves the
// record to a terminal status. Nothing here may escape: an unexpected error
// becomes a failed record, not a dead worker.
func (s *DeploymentService) runDeployment(ctx context.Context, deploymentID uuid.UUID) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("deployment run panicked",
				zap.String("deploymentId", deploymentID.String()),
				zap.Any("panic", r))
			s.finish(ctx, deploymentID, nil, entities.DeploymentStatusFailed,
				fmt.Sprintf("internal error: %v", r), nil)
		}
	}()

	deployment, err := s.deploymentRepo.GetByID(deploymentID.String())
	if err != nil {
		logger.Error("failed to load deployment",
			zap.String("deploymentId", deploymentID.String()),
			zap.Error(err))
		return
	}

	chaincode, err := s.chaincodeRepo.GetByID(deployment.ChaincodeID.String())
	if err != nil {
		s.finish(ctx, deploymentID, deployment, entities.DeploymentStatusFailed,
			fmt.Sprintf("failed to load chaincode: %s", err), nil)
		return
	}

	stepContext, err := s.engine.Run(ctx, chaincode, deployment, func(sc *StepContext) {
		if saveErr := s.deploymentRepo.SaveContext(deploymentID.String(), sc.ToMap()); saveErr != nil {
			logger.Warn("failed to persist step context",
				zap.String("deploymentId", deploymentID.String()),
				zap.Error(saveErr))
		}
	})
	if err != nil {
		logger.Error("deployment failed",
			zap.String("deploymentId", deploymentID.String()),
			zap.Error(err))
		s.finish(ctx, deploymentID, deployment, entities.DeploymentStatusFailed,
			err.Error(), stepContext.ToMap())
		return
	}

	// Flip the chaincode live and keep the final shape of the deployment in
	// the record for traceability.
	err = s.chaincodeRepo.UpdateStatusWithAudit(
		chaincode.ID.String(),
		entities.ChaincodeStatusActive,
		nil,
		"",
		&entities.AuditLogEntity{
			ID:           uuid.New(),
			UserID:       &deployment.DeployedBy,
			Action:       entities.AuditChaincodeActive,
			ResourceType: "chaincode",
			ResourceID:   chaincode.ID.String(),
			Details: map[string]interface{}{
				"deployment_id": deploymentID.String(),
			},
		},
	)
	if err != nil {
		s.finish(ctx, deploymentID, deployment, entities.DeploymentStatusFailed,
			fmt.Sprintf("failed to activate chaincode: %s", err), stepContext.ToMap())
		return
	}

	finalContext := stepContext.ToMap()
	finalContext["version"] = chaincode.Version
	finalContext["channel"] = deployment.ChannelName
	finalContext["target_peers"] = deployment.TargetPeers

	s.finish(ctx, deploymentID, deployment, entities.DeploymentStatusSuccess, "", finalContext)

	logger.Info("deployment completed",
		zap.String("deploymentId", deploymentID.String()),
		zap.String("chaincode", chaincode.Name))
}

func (s *DeploymentService) finish(
	ctx context.Context,
	deploymentID uuid.UUID,
	deployment *entities.DeploymentEntity,
	status entities.DeploymentStatus,
	errorMessage string,
	stepContext map[string]interface{},
) {
	action := entities.AuditDeploymentFailed
	if status == entities.DeploymentStatusSuccess {
		action = entities.AuditDeploymentSuccess
	}

	var userID *uuid.UUID
	if deployment != nil {
		userID = &deployment.DeployedBy
	}

	swapped, err := s.deploymentRepo.Finish(
		deploymentID.String(), status, errorMessage, "", stepContext,
		&entities.AuditLogEntity{
			ID:           uuid.New(),
			UserID:       userID,
			Action:       action,
			ResourceType: "deployment",
			ResourceID:   deploymentID.String(),
			Details: map[string]interface{}{
				"status":        string(status),
				"error_message": errorMessage,
			},
		},
	)
	if err != nil {
		logger.Error("failed to finish deployment",
			zap.String("deploymentId", deploymentID.String()),
			zap.Error(err))
		return
	}
	if !swapped {
		logger.Warn("deployment already terminal, not overwriting",
			zap.String("deploymentId", deploymentID.String()),
			zap.String("status", string(status)))
		return
	}

	s.emitDeploymentUpdate(ctx, deploymentID, status, errorMessage)
}

// emitDeploymentUpdate is fire-and-forget: a broken event sink must never
// change a workflow outcome.
func (s *DeploymentService) emitDeploymentUpdate(
	ctx context.Context,
	deploymentID uuid.UUID,
	status entities.DeploymentStatus,
	errorMessage string,
) {
	payload := map[string]interface{}{
		"deployment_id": deploymentID.String(),
		"status":        string(status),
	}
	if errorMessage != "" {
		payload["error_message"] = errorMessage
	}
	topic := "deployments:" + deploymentID.String()
	if err := s.publisher.Publish(ctx, topic, payload); err != nil {
		logger.Warn("failed to publish deployment update",
			zap.String("deploymentId", deploymentID.String()),
			zap.Error(err))
	}
}

// InvokeChaincode is a single pass-through transaction. No retry: a failed
// invoke is reported once, transactions are not idempotent.
func (s *DeploymentService) InvokeChaincode(
	ctx context.Context,
	chaincodeID uuid.UUID,
	functionName string,
	args []string,
	channelName string,
) (*gateway.TransactionResult, error) {
	chaincode, err := s.chaincodeRepo.GetByID(chaincodeID.String())
	if err != nil {
		return nil, err
	}
	if chaincode.Status != entities.ChaincodeStatusActive {
		return nil, fmt.Errorf("%w: chaincode must be active to invoke", entities.ErrInvalidState)
	}

	return s.gateway.InvokeChaincode(ctx, gateway.TransactionRequest{
		ChaincodeName: chaincode.Name,
		FunctionName:  functionName,
		Args:          args,
		ChannelName:   channelName,
	})
}

// QueryChaincode evaluates a read-only function, same contract as invoke.
func (s *DeploymentService) QueryChaincode(
	ctx context.Context,
	chaincodeID uuid.UUID,
	functionName string,
	args []string,
	channelName string,
) (*gateway.TransactionResult, error) {
	chaincode, err := s.chaincodeRepo.GetByID(chaincodeID.String())
	if err != nil {
		return nil, err
	}
	if chaincode.Status != entities.ChaincodeStatusActive {
		return nil, fmt.Errorf("%w: chaincode must be active to query", entities.ErrInvalidState)
	}

	return s.gateway.QueryChaincode(ctx, gateway.TransactionRequest{
		ChaincodeName: chaincode.Name,
		FunctionName:  functionName,
		Args:          args,
		ChannelName:   channelName,
	})
}

func (s *DeploymentService) GetDeployment(deploymentID uuid.UUID) (*entities.DeploymentEntity, error) {
	return s.deploymentRepo.GetByID(deploymentID.String())
}

func (s *DeploymentService) GetDeploymentStatus(deploymentID uuid.UUID) (*entities.DeploymentStatusWithID, error) {
	status, err := s.deploymentRepo.GetStatus(deploymentID.String())
	if err != nil {
		return nil, err
	}
	return &entities.DeploymentStatusWithID{DeploymentID: deploymentID, Status: status}, nil
}

func (s *DeploymentService) ListDeployments(
	status entities.DeploymentStatus,
	deployedBy string,
	skip int,
	limit int,
) ([]*entities.DeploymentEntity, error) {
	return s.deploymentRepo.List(status, deployedBy, skip, limit)
}

func deploymentAudit(
	deployment *entities.DeploymentEntity,
	userID uuid.UUID,
	action string,
	details map[string]interface{},
) *entities.AuditLogEntity {
	return &entities.AuditLogEntity{
		ID:           uuid.New(),
		UserID:       &userID,
		Action:       action,
		ResourceType: "deployment",
		ResourceID:   deployment.ID.String(),
		Details:      details,
	}
}
