package entities

import (
	"time"

	"github.com/google/uuid"
)

type ChaincodeEntity struct {
	ID              uuid.UUID              `json:"id"`
	Name            string                 `json:"name"`
	Version         string                 `json:"version"`
	SourceCode      string                 `json:"-"`
	Description     string                 `json:"description,omitempty"`
	Language        string                 `json:"language"`
	Status          ChaincodeStatus        `json:"status"`
	UploadedBy      uuid.UUID              `json:"uploaded_by"`
	ApprovedBy      *uuid.UUID             `json:"approved_by,omitempty"`
	RejectionReason string                 `json:"rejection_reason,omitempty"`
	Metadata        map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt       time.Time              `json:"created_at"`
	UpdatedAt       time.Time              `json:"updated_at"`
}
