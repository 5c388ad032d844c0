package dtos

import (
	"github.com/google/uuid"
)

// DefaultChannelName is used when invoke/query requests omit the channel.
const DefaultChannelName = "ibnchannel"

type UploadChaincodeRequest struct {
	Name        string    `json:"name" binding:"required"`
	Version     string    `json:"version" binding:"required"`
	SourceCode  string    `json:"sourceCode" binding:"required"`
	Description string    `json:"description"`
	Language    string    `json:"language"`
	UploadedBy  uuid.UUID `json:"uploadedBy" binding:"required"`
}

type ApproveChaincodeRequest struct {
	ApprovedBy uuid.UUID `json:"approvedBy" binding:"required"`
}

type RejectChaincodeRequest struct {
	RejectedBy uuid.UUID `json:"rejectedBy" binding:"required"`
	Reason     string    `json:"reason" binding:"required"`
}

type ChaincodeCallRequest struct {
	FunctionName string   `json:"functionName" binding:"required"`
	Args         []string `json:"args"`
	ChannelName  string   `json:"channelName"`
}
