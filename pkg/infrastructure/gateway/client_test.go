package gateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, maxRetries int) (*Client, *int32) {
	t.Helper()
	var requests int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&requests, 1)
		handler(w, r)
	}))
	t.Cleanup(server.Close)

	client := NewClient(server.URL, 5*time.Second, maxRetries)
	client.retryWait = 10 * time.Millisecond
	return client, &requests
}

func TestPackageChaincodeDecodesResult(t *testing.T) {
	client, requests := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/chaincode/package", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.Write([]byte(`{"success":true,"data":{"packageId":"pkg-9","packagePath":"/tmp/pkg-9.tar.gz"}}`))
	}, 3)

	result, err := client.PackageChaincode(context.Background(), PackageRequest{
		ChaincodeName: "asset-transfer",
		Version:       "1.0",
		SourcePath:    "/srv/chaincodes/asset-transfer_1.0",
	})
	require.NoError(t, err)
	assert.Equal(t, "pkg-9", result.PackageID)
	assert.Equal(t, "/tmp/pkg-9.tar.gz", result.PackagePath)
	assert.Equal(t, int32(1), atomic.LoadInt32(requests))
}

func TestClientErrorFailsWithoutRetry(t *testing.T) {
	client, requests := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"invalid sequence"}`))
	}, 3)

	err := client.ApproveChaincode(context.Background(), ApproveRequest{ChaincodeName: "asset-transfer"})
	require.Error(t, err)
	assert.Equal(t, "invalid sequence", err.Error())
	assert.NotContains(t, err.Error(), "failed after")
	assert.Equal(t, int32(1), atomic.LoadInt32(requests))

	var gerr *Error
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, http.StatusBadRequest, gerr.StatusCode)
	assert.False(t, gerr.Temporary())
}

func TestServerErrorsExhaustRetryBudget(t *testing.T) {
	client, requests := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusGatewayTimeout)
		w.Write([]byte(`{"error":"gateway timeout"}`))
	}, 3)

	err := client.CommitChaincode(context.Background(), CommitRequest{ChaincodeName: "asset-transfer"})
	require.Error(t, err)
	assert.Equal(t, "gateway timeout (failed after 3 attempts)", err.Error())
	assert.Equal(t, int32(3), atomic.LoadInt32(requests))
}

func TestRetryExhaustionKeepsGatewayError(t *testing.T) {
	client, requests := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"chaincode already installed on peer0.org1"}`))
	}, 3)

	_, err := client.InstallChaincode(context.Background(), InstallRequest{PackageID: "pkg-1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "(failed after 3 attempts)")
	assert.Equal(t, int32(3), atomic.LoadInt32(requests))

	// The wrap must not hide the typed error from callers classifying it.
	var gerr *Error
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, http.StatusInternalServerError, gerr.StatusCode)
	assert.True(t, IsAlreadyInstalled(err))
}

func TestRetryBacksOffExponentiallyThenSucceeds(t *testing.T) {
	var failures int32 = 2
	client, requests := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&failures, -1) >= 0 {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte(`{"error":"peer unreachable"}`))
			return
		}
		w.Write([]byte(`{"success":true,"data":{"packageId":"pkg-1"}}`))
	}, 3)
	client.retryWait = 20 * time.Millisecond

	start := time.Now()
	result, err := client.InstallChaincode(context.Background(), InstallRequest{PackageID: "pkg-1"})
	elapsed := time.Since(start)

	require.NoError(t, err)
	assert.Equal(t, "pkg-1", result.PackageID)
	assert.Equal(t, int32(3), atomic.LoadInt32(requests))
	// Waits double per attempt: 20ms then 40ms before the third try.
	assert.GreaterOrEqual(t, elapsed, 60*time.Millisecond)
}

func TestTransportErrorsAreRetried(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewClient(server.URL, time.Second, 2)
	client.retryWait = 5 * time.Millisecond

	err := client.ApproveChaincode(context.Background(), ApproveRequest{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "(failed after 2 attempts)")
}

func TestEnvelopeFailureIsGatewayError(t *testing.T) {
	client, requests := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":false,"error":"endorsement policy not satisfied"}`))
	}, 3)

	err := client.CommitChaincode(context.Background(), CommitRequest{})
	require.Error(t, err)
	assert.Equal(t, "endorsement policy not satisfied", err.Error())
	// 200 with success=false is a definitive answer, not worth retrying.
	assert.Equal(t, int32(1), atomic.LoadInt32(requests))
}

func TestAlreadyInstalledIsRecognizable(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"chaincode already installed on peer0.org1"}`))
	}, 3)

	_, err := client.InstallChaincode(context.Background(), InstallRequest{PackageID: "pkg-1"})
	require.Error(t, err)
	assert.True(t, IsAlreadyInstalled(err))
}

func TestInvokeIsSingleAttempt(t *testing.T) {
	client, requests := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"endorsement failed"}`))
	}, 3)

	_, err := client.InvokeChaincode(context.Background(), TransactionRequest{FunctionName: "CreateAsset"})
	require.Error(t, err)
	assert.Equal(t, "endorsement failed", err.Error())
	assert.Equal(t, int32(1), atomic.LoadInt32(requests))
}

func TestQueryDecodesResult(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"data":{"result":{"id":"a1","color":"blue"}}}`))
	}, 3)

	result, err := client.QueryChaincode(context.Background(), TransactionRequest{FunctionName: "ReadAsset"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"a1","color":"blue"}`, string(result.Result))
}

func TestErrorMessageFallsBackToRawBody(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("plain text failure\n"))
	}, 1)

	err := client.ApproveChaincode(context.Background(), ApproveRequest{})
	require.Error(t, err)
	assert.Equal(t, "plain text failure", err.Error())
}

func TestContextCancellationStopsRetries(t *testing.T) {
	client, requests := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"flaky"}`))
	}, 5)
	client.retryWait = 50 * time.Millisecond

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := client.ApproveChaincode(ctx, ApproveRequest{})
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "context deadline exceeded"))
	assert.Equal(t, int32(1), atomic.LoadInt32(requests))
}
