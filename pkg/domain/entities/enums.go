package entities

// ChaincodeStatus follows the upstream approval lifecycle. Deployment only
// consumes it: a chaincode must be Approved to be deployed and becomes Active
// once a deployment commits it to a channel.
type ChaincodeStatus string

const (
	ChaincodeStatusUploaded  ChaincodeStatus = "uploaded"
	ChaincodeStatusValidated ChaincodeStatus = "validated"
	ChaincodeStatusApproved  ChaincodeStatus = "approved"
	ChaincodeStatusActive    ChaincodeStatus = "active"
	ChaincodeStatusRejected  ChaincodeStatus = "rejected"
	ChaincodeStatusInvalid   ChaincodeStatus = "invalid"
)

type DeploymentStatus string

const (
	DeploymentStatusPending   DeploymentStatus = "pending"
	DeploymentStatusDeploying DeploymentStatus = "deploying"
	DeploymentStatusSuccess   DeploymentStatus = "success"
	DeploymentStatusFailed    DeploymentStatus = "failed"
	// DeploymentStatusRolledBack is a reserved terminal status. No workflow
	// path sets it today; rollback semantics are not defined at this layer.
	DeploymentStatusRolledBack DeploymentStatus = "rolled_back"
)

// IsTerminal reports whether the status ends a deployment's lifecycle.
func (s DeploymentStatus) IsTerminal() bool {
	switch s {
	case DeploymentStatusSuccess, DeploymentStatusFailed, DeploymentStatusRolledBack:
		return true
	}
	return false
}
