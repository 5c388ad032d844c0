package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
)

const defaultRetryWait = 2 * time.Second

// Client talks to the network gateway over JSON/HTTP. It owns all transport
// concerns: per-call timeout, retry with exponential backoff on transient
// failures, and no retry on client errors.
type Client struct {
	baseURL    string
	httpClient *http.Client
	maxRetries int
	retryWait  time.Duration
}

func NewClient(baseURL string, timeout time.Duration, maxRetries int) *Client {
	if maxRetries < 1 {
		maxRetries = 1
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		maxRetries: maxRetries,
		retryWait:  defaultRetryWait,
	}
}

func (c *Client) PackageChaincode(ctx context.Context, req PackageRequest) (*PackageResult, error) {
	var result PackageResult
	if err := c.post(ctx, "/api/chaincode/package", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) InstallChaincode(ctx context.Context, req InstallRequest) (*InstallResult, error) {
	var result InstallResult
	if err := c.post(ctx, "/api/chaincode/install", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) ApproveChaincode(ctx context.Context, req ApproveRequest) error {
	return c.post(ctx, "/api/chaincode/approve", req, nil)
}

func (c *Client) CommitChaincode(ctx context.Context, req CommitRequest) error {
	return c.post(ctx, "/api/chaincode/commit", req, nil)
}

// InvokeChaincode submits a transaction. Single attempt: transactions are not
// idempotent, so a failure is reported once instead of retried.
func (c *Client) InvokeChaincode(ctx context.Context, req TransactionRequest) (*TransactionResult, error) {
	var result TransactionResult
	if err := c.doOnce(ctx, "/api/chaincode/invoke", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// QueryChaincode evaluates a read-only transaction. Single attempt, same as
// invoke.
func (c *Client) QueryChaincode(ctx context.Context, req TransactionRequest) (*TransactionResult, error) {
	var result TransactionResult
	if err := c.doOnce(ctx, "/api/chaincode/query", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// post runs doOnce up to maxRetries times, sleeping 2^attempt seconds between
// transient failures. A client error aborts immediately; exhausting the
// budget annotates the last error with the attempt count.
func (c *Client) post(ctx context.Context, path string, body interface{}, out interface{}) error {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = c.retryWait
	bo.RandomizationFactor = 0
	bo.Multiplier = 2
	bo.MaxInterval = 10 * time.Minute
	bo.MaxElapsedTime = 0

	var err error
	for attempt := 1; attempt <= c.maxRetries; attempt++ {
		err = c.doOnce(ctx, path, body, out)
		if err == nil {
			return nil
		}
		if !isTemporary(err) {
			return err
		}
		if attempt == c.maxRetries {
			break
		}
		select {
		case <-time.After(bo.NextBackOff()):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return fmt.Errorf("%w (failed after %d attempts)", err, c.maxRetries)
}

func (c *Client) doOnce(ctx context.Context, path string, body interface{}, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &Error{StatusCode: resp.StatusCode, Message: errorMessage(raw)}
	}

	var envelope struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
		Error   string          `json:"error"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return fmt.Errorf("malformed gateway response: %w", err)
	}
	if !envelope.Success {
		return &Error{StatusCode: resp.StatusCode, Message: envelope.Error}
	}
	if out != nil && len(envelope.Data) > 0 {
		return json.Unmarshal(envelope.Data, out)
	}
	return nil
}

// isTemporary classifies failures for retry. Anything without a gateway
// status code is a transport-level failure (timeout, connection refused) and
// is retryable; gateway responses defer to their status class.
func isTemporary(err error) bool {
	var gerr *Error
	if errors.As(err, &gerr) {
		return gerr.Temporary()
	}
	return true
}

func errorMessage(raw []byte) string {
	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(raw, &body); err == nil && body.Error != "" {
		return body.Error
	}
	return strings.TrimSpace(string(raw))
}
