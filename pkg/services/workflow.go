package services

import (
	"context"
	"fmt"

	"github.com/ibn-network/ccm-backend/internal/utils"
	"github.com/ibn-network/ccm-backend/pkg/domain/entities"
	"github.com/ibn-network/ccm-backend/pkg/infrastructure/gateway"
)

// GatewayClient is the outbound boundary to the network gateway. Retry and
// backoff live behind it; the engine only sees final outcomes.
type GatewayClient interface {
	PackageChaincode(ctx context.Context, req gateway.PackageRequest) (*gateway.PackageResult, error)
	InstallChaincode(ctx context.Context, req gateway.InstallRequest) (*gateway.InstallResult, error)
	ApproveChaincode(ctx context.Context, req gateway.ApproveRequest) error
	CommitChaincode(ctx context.Context, req gateway.CommitRequest) error
	InvokeChaincode(ctx context.Context, req gateway.TransactionRequest) (*gateway.TransactionResult, error)
	QueryChaincode(ctx context.Context, req gateway.TransactionRequest) (*gateway.TransactionResult, error)
}

// StepContext carries outputs between workflow steps. Each field is written
// exactly once by the step named in its comment; later steps only read.
type StepContext struct {
	// PackageID and PackagePath are written by the package step.
	PackageID   string
	PackagePath string
	// PeerEndpoint is the peer used for install, written by the install step
	// and reused by approve.
	PeerEndpoint string
}

// ToMap renders the context in the open key-value form the record persists.
func (sc *StepContext) ToMap() map[string]interface{} {
	m := make(map[string]interface{})
	if sc.PackageID != "" {
		m["package_id"] = sc.PackageID
	}
	if sc.PackagePath != "" {
		m["package_path"] = sc.PackagePath
	}
	if sc.PeerEndpoint != "" {
		m["peer_endpoint"] = sc.PeerEndpoint
	}
	return m
}

type workflowStep struct {
	name string
	run  func(ctx context.Context, chaincode *entities.ChaincodeEntity, deployment *entities.DeploymentEntity, sc *StepContext) error
}

// WorkflowEngine drives one deployment through package, install, approve and
// commit, strictly in that order. Chaincode and deployment are read-only
// throughout; the step context is the only channel between steps.
type WorkflowEngine struct {
	gateway GatewayClient
}

func NewWorkflowEngine(gatewayClient GatewayClient) *WorkflowEngine {
	return &WorkflowEngine{gateway: gatewayClient}
}

// Run executes the step sequence. The first failure aborts the remaining
// steps; there is no partial rollback. persist, when non-nil, is called with
// the accumulated context after every successful step.
func (e *WorkflowEngine) Run(
	ctx context.Context,
	chaincode *entities.ChaincodeEntity,
	deployment *entities.DeploymentEntity,
	persist func(*StepContext),
) (*StepContext, error) {
	sc := &StepContext{}
	for _, step := range e.steps() {
		if err := step.run(ctx, chaincode, deployment, sc); err != nil {
			return sc, fmt.Errorf("Deployment failed at step '%s': %s", step.name, err.Error())
		}
		if persist != nil {
			persist(sc)
		}
	}
	return sc, nil
}

func (e *WorkflowEngine) steps() []workflowStep {
	return []workflowStep{
		{name: "package", run: e.packageStep},
		{name: "install", run: e.installStep},
		{name: "approve", run: e.approveStep},
		{name: "commit", run: e.commitStep},
	}
}

func (e *WorkflowEngine) packageStep(
	ctx context.Context,
	chaincode *entities.ChaincodeEntity,
	_ *entities.DeploymentEntity,
	sc *StepContext,
) error {
	result, err := e.gateway.PackageChaincode(ctx, gateway.PackageRequest{
		ChaincodeName: chaincode.Name,
		Version:       chaincode.Version,
		SourcePath:    utils.GetChaincodeSourcePath(chaincode.Name, chaincode.Version),
	})
	if err != nil {
		return err
	}
	sc.PackageID = result.PackageID
	sc.PackagePath = result.PackagePath
	return nil
}

func (e *WorkflowEngine) installStep(
	ctx context.Context,
	_ *entities.ChaincodeEntity,
	deployment *entities.DeploymentEntity,
	sc *StepContext,
) error {
	// Invariant: package must have produced an id before install runs.
	if sc.PackageID == "" {
		return fmt.Errorf("missing package_id in step context")
	}

	peer := deployment.TargetPeers[0]
	_, err := e.gateway.InstallChaincode(ctx, gateway.InstallRequest{
		PackagePath:  sc.PackagePath,
		PackageID:    sc.PackageID,
		PeerEndpoint: peer,
	})
	// A package the peer already holds counts as installed.
	if err != nil && !gateway.IsAlreadyInstalled(err) {
		return err
	}
	sc.PeerEndpoint = peer
	return nil
}

func (e *WorkflowEngine) approveStep(
	ctx context.Context,
	chaincode *entities.ChaincodeEntity,
	deployment *entities.DeploymentEntity,
	sc *StepContext,
) error {
	if sc.PackageID == "" || sc.PeerEndpoint == "" {
		return fmt.Errorf("missing package_id or peer_endpoint in step context")
	}
	return e.gateway.ApproveChaincode(ctx, gateway.ApproveRequest{
		ChaincodeName: chaincode.Name,
		Version:       chaincode.Version,
		PackageID:     sc.PackageID,
		Sequence:      deployment.Sequence,
		ChannelName:   deployment.ChannelName,
		PeerEndpoint:  sc.PeerEndpoint,
	})
}

func (e *WorkflowEngine) commitStep(
	ctx context.Context,
	chaincode *entities.ChaincodeEntity,
	deployment *entities.DeploymentEntity,
	_ *StepContext,
) error {
	return e.gateway.CommitChaincode(ctx, gateway.CommitRequest{
		ChaincodeName: chaincode.Name,
		Version:       chaincode.Version,
		Sequence:      deployment.Sequence,
		ChannelName:   deployment.ChannelName,
		PeerEndpoints: deployment.TargetPeers,
	})
}
