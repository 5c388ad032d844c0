package gateway

import (
	"encoding/json"
	"errors"
	"strings"
)

type PackageRequest struct {
	ChaincodeName string `json:"chaincodeName"`
	Version       string `json:"version"`
	SourcePath    string `json:"sourcePath"`
}

type PackageResult struct {
	PackageID   string `json:"packageId"`
	PackagePath string `json:"packagePath"`
}

type InstallRequest struct {
	PackagePath  string `json:"packagePath"`
	PackageID    string `json:"packageId"`
	PeerEndpoint string `json:"peerEndpoint"`
}

type InstallResult struct {
	PackageID string `json:"packageId"`
}

type ApproveRequest struct {
	ChaincodeName string `json:"chaincodeName"`
	Version       string `json:"version"`
	PackageID     string `json:"packageId"`
	Sequence      int    `json:"sequence"`
	ChannelName   string `json:"channelName"`
	PeerEndpoint  string `json:"peerEndpoint"`
}

type CommitRequest struct {
	ChaincodeName string   `json:"chaincodeName"`
	Version       string   `json:"version"`
	Sequence      int      `json:"sequence"`
	ChannelName   string   `json:"channelName"`
	PeerEndpoints []string `json:"peerEndpoints"`
}

type TransactionRequest struct {
	ChaincodeName string   `json:"chaincodeName"`
	FunctionName  string   `json:"functionName"`
	Args          []string `json:"args"`
	ChannelName   string   `json:"channelName"`
}

type TransactionResult struct {
	TransactionID string          `json:"transactionId,omitempty"`
	Result        json.RawMessage `json:"result,omitempty"`
}

// Error is a non-transport failure reported by the gateway.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return e.Message
}

// Temporary reports whether the call is worth retrying. Client errors (4xx)
// are not: repeating the same request cannot change the outcome.
func (e *Error) Temporary() bool {
	return e.StatusCode >= 500
}

// IsAlreadyInstalled matches the gateway's response to installing a package a
// peer already holds. Installation is idempotent per peer, so callers treat
// this as success.
func IsAlreadyInstalled(err error) bool {
	var gerr *Error
	return errors.As(err, &gerr) &&
		strings.Contains(strings.ToLower(gerr.Message), "already installed")
}
