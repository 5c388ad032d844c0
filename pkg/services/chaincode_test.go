package services

import (
	"context"
	"errors"
	"testing"

	"github.com/ibn-network/ccm-backend/pkg/domain/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validSource = `package main

import "fmt"

func main() {
	fmt.Println("chaincode")
}
`

type fakeScheduler struct {
	created   []CreateDeploymentParams
	executed  []uuid.UUID
	createErr error
	execErr   error
}

func (s *fakeScheduler) CreateDeployment(_ context.Context, params CreateDeploymentParams) (*entities.DeploymentEntity, error) {
	s.created = append(s.created, params)
	if s.createErr != nil {
		return nil, s.createErr
	}
	return &entities.DeploymentEntity{ID: uuid.New(), Status: entities.DeploymentStatusPending}, nil
}

func (s *fakeScheduler) ExecuteDeployment(_ context.Context, deploymentID uuid.UUID) error {
	s.executed = append(s.executed, deploymentID)
	return s.execErr
}

func newChaincodeService(repo *fakeChaincodeRepo, scheduler DeploymentScheduler, autoDeploy AutoDeployConfig) *ChaincodeService {
	return NewChaincodeService(repo, scheduler, autoDeploy)
}

func TestUploadChaincode(t *testing.T) {
	repo := newFakeChaincodeRepo()
	service := newChaincodeService(repo, &fakeScheduler{}, AutoDeployConfig{})

	chaincode, err := service.UploadChaincode(context.Background(), UploadChaincodeParams{
		Name:       "asset-transfer",
		Version:    "1.0",
		SourceCode: validSource,
		UploadedBy: uuid.New(),
	})
	require.NoError(t, err)

	assert.Equal(t, entities.ChaincodeStatusUploaded, chaincode.Status)
	assert.Equal(t, "golang", chaincode.Language)

	stored, err := repo.GetByID(chaincode.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "asset-transfer", stored.Name)
	require.Len(t, repo.audits, 1)
	assert.Equal(t, entities.AuditChaincodeUploaded, repo.audits[0].Action)
}

func TestUploadChaincodeRejectsInvalidSource(t *testing.T) {
	repo := newFakeChaincodeRepo()
	service := newChaincodeService(repo, &fakeScheduler{}, AutoDeployConfig{})

	tests := []struct {
		name   string
		source string
	}{
		{"empty", "   "},
		{"no package main", "func main() {}"},
		{"no entrypoint", "package main\n\nvar x = 1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.UploadChaincode(context.Background(), UploadChaincodeParams{
				Name:       "bad",
				Version:    "1.0",
				SourceCode: tt.source,
				UploadedBy: uuid.New(),
			})
			require.Error(t, err)
			assert.ErrorIs(t, err, entities.ErrInvalidState)
		})
	}
	assert.Empty(t, repo.chaincodes)
}

func TestValidateSource(t *testing.T) {
	assert.Empty(t, ValidateSource(validSource))
	assert.Empty(t, ValidateSource("package main\n\nfunc Init() {}\n"))

	errs := ValidateSource("package other\nvar x = 1")
	assert.Len(t, errs, 2)
}

func TestApproveChaincode(t *testing.T) {
	repo := newFakeChaincodeRepo()
	service := newChaincodeService(repo, &fakeScheduler{}, AutoDeployConfig{})

	chaincode := testChaincode()
	chaincode.Status = entities.ChaincodeStatusUploaded
	require.NoError(t, repo.CreateWithAudit(chaincode, chaincodeAudit(
		chaincode.ID, nil, entities.AuditChaincodeUploaded, nil,
	)))

	approver := uuid.New()
	approved, err := service.ApproveChaincode(context.Background(), chaincode.ID, approver)
	require.NoError(t, err)
	assert.Equal(t, entities.ChaincodeStatusApproved, approved.Status)
	require.NotNil(t, approved.ApprovedBy)
	assert.Equal(t, approver, *approved.ApprovedBy)

	stored, err := repo.GetByID(chaincode.ID.String())
	require.NoError(t, err)
	assert.Equal(t, entities.ChaincodeStatusApproved, stored.Status)
}

func TestApproveChaincodeRejectsTerminalStatuses(t *testing.T) {
	repo := newFakeChaincodeRepo()
	service := newChaincodeService(repo, &fakeScheduler{}, AutoDeployConfig{})

	for _, status := range []entities.ChaincodeStatus{
		entities.ChaincodeStatusActive,
		entities.ChaincodeStatusRejected,
	} {
		chaincode := testChaincode()
		chaincode.Status = status
		require.NoError(t, repo.CreateWithAudit(chaincode, chaincodeAudit(
			chaincode.ID, nil, entities.AuditChaincodeUploaded, nil,
		)))

		_, err := service.ApproveChaincode(context.Background(), chaincode.ID, uuid.New())
		require.Error(t, err)
		assert.ErrorIs(t, err, entities.ErrInvalidState)
	}
}

func TestRejectChaincode(t *testing.T) {
	repo := newFakeChaincodeRepo()
	service := newChaincodeService(repo, &fakeScheduler{}, AutoDeployConfig{})

	chaincode := testChaincode()
	chaincode.Status = entities.ChaincodeStatusUploaded
	require.NoError(t, repo.CreateWithAudit(chaincode, chaincodeAudit(
		chaincode.ID, nil, entities.AuditChaincodeUploaded, nil,
	)))

	rejector := uuid.New()
	require.NoError(t, service.RejectChaincode(context.Background(), chaincode.ID, rejector, "fails review"))

	stored, err := repo.GetByID(chaincode.ID.String())
	require.NoError(t, err)
	assert.Equal(t, entities.ChaincodeStatusRejected, stored.Status)
	assert.Equal(t, "fails review", stored.RejectionReason)
}

func TestApproveTriggersAutoDeploy(t *testing.T) {
	repo := newFakeChaincodeRepo()
	scheduler := &fakeScheduler{}
	service := newChaincodeService(repo, scheduler, AutoDeployConfig{
		Enabled:        true,
		DefaultChannel: "ibnchannel",
		DefaultPeers:   []string{"peer0.org1:7051"},
	})

	chaincode := testChaincode()
	chaincode.Status = entities.ChaincodeStatusUploaded
	require.NoError(t, repo.CreateWithAudit(chaincode, chaincodeAudit(
		chaincode.ID, nil, entities.AuditChaincodeUploaded, nil,
	)))

	approver := uuid.New()
	_, err := service.ApproveChaincode(context.Background(), chaincode.ID, approver)
	require.NoError(t, err)

	require.Len(t, scheduler.created, 1)
	assert.Equal(t, chaincode.ID, scheduler.created[0].ChaincodeID)
	assert.Equal(t, "ibnchannel", scheduler.created[0].ChannelName)
	assert.Equal(t, []string{"peer0.org1:7051"}, scheduler.created[0].TargetPeers)
	assert.Equal(t, approver, scheduler.created[0].DeployedBy)
	assert.Len(t, scheduler.executed, 1)
}

func TestAutoDeployUsesChaincodeMetadata(t *testing.T) {
	repo := newFakeChaincodeRepo()
	scheduler := &fakeScheduler{}
	service := newChaincodeService(repo, scheduler, AutoDeployConfig{
		Enabled:        true,
		DefaultChannel: "ibnchannel",
		DefaultPeers:   []string{"peer0.org1:7051"},
	})

	chaincode := testChaincode()
	chaincode.Status = entities.ChaincodeStatusUploaded
	chaincode.Metadata = map[string]interface{}{
		"default_channel": "orders",
		"default_peers":   []interface{}{"peer1.org1:8051", "peer1.org2:10051"},
	}
	require.NoError(t, repo.CreateWithAudit(chaincode, chaincodeAudit(
		chaincode.ID, nil, entities.AuditChaincodeUploaded, nil,
	)))

	_, err := service.ApproveChaincode(context.Background(), chaincode.ID, uuid.New())
	require.NoError(t, err)

	require.Len(t, scheduler.created, 1)
	assert.Equal(t, "orders", scheduler.created[0].ChannelName)
	assert.Equal(t, []string{"peer1.org1:8051", "peer1.org2:10051"}, scheduler.created[0].TargetPeers)
}

func TestAutoDeployFailureDoesNotFailApproval(t *testing.T) {
	repo := newFakeChaincodeRepo()
	scheduler := &fakeScheduler{createErr: errors.New("no workers")}
	service := newChaincodeService(repo, scheduler, AutoDeployConfig{
		Enabled:        true,
		DefaultChannel: "ibnchannel",
		DefaultPeers:   []string{"peer0.org1:7051"},
	})

	chaincode := testChaincode()
	chaincode.Status = entities.ChaincodeStatusUploaded
	require.NoError(t, repo.CreateWithAudit(chaincode, chaincodeAudit(
		chaincode.ID, nil, entities.AuditChaincodeUploaded, nil,
	)))

	approved, err := service.ApproveChaincode(context.Background(), chaincode.ID, uuid.New())
	require.NoError(t, err)
	assert.Equal(t, entities.ChaincodeStatusApproved, approved.Status)
	assert.Empty(t, scheduler.executed)
}

func TestAutoDeploySkippedWithoutPeers(t *testing.T) {
	repo := newFakeChaincodeRepo()
	scheduler := &fakeScheduler{}
	service := newChaincodeService(repo, scheduler, AutoDeployConfig{Enabled: true})

	chaincode := testChaincode()
	chaincode.Status = entities.ChaincodeStatusUploaded
	require.NoError(t, repo.CreateWithAudit(chaincode, chaincodeAudit(
		chaincode.ID, nil, entities.AuditChaincodeUploaded, nil,
	)))

	_, err := service.ApproveChaincode(context.Background(), chaincode.ID, uuid.New())
	require.NoError(t, err)
	assert.Empty(t, scheduler.created)
}
