// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// HTTPMinter posts mint requests to a chain gateway as JSON.
type HTTPMinter struct {
	endpoint string
	client   *http.Client
}

type HTTPMinterConfig struct {
	Endpoint string
	Timeout  time.Duration
}

// NewHTTPMinter creates a minter for the gateway at cfg.Endpoint.
func NewHTTPMinter(cfg HTTPMinterConfig) *HTTPMinter {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Second
	}
	return &HTTPMinter{
		endpoint: cfg.Endpoint,
		client: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

func (m *HTTPMinter) Mint(ctx context.Context, req MintRequest) (*MintReceipt, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal mint request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, m.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build mint request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("mint request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("mint gateway returned status %d", resp.StatusCode)
	}

	var receipt MintReceipt
	if err := json.NewDecoder(resp.Body).Decode(&receipt); err != nil {
		return nil, fmt.Errorf("failed to decode mint receipt: %w", err)
	}
	if receipt.TxHash == "" {
		return nil, fmt.Errorf("mint gateway returned an empty transaction hash")
	}

	logrus.Infof("minted reward %s for %s (tx %s)", req.RewardID, req.Recipient, receipt.TxHash)
	return &receipt, nil
}

// MockMinter fabricates receipts. It is used when no gateway is configured.
type MockMinter struct {
	now func() time.Time
}

// NewMockMinter creates a mock minter.
func NewMockMinter() *MockMinter {
	return &MockMinter{now: time.Now}
}

func (m *MockMinter) Mint(ctx context.Context, req MintRequest) (*MintReceipt, error) {
	ts := m.now().UnixMilli()
	logrus.Infof("[MOCK] minting reward %s for %s", req.RewardID, req.Recipient)
	return &MintReceipt{
		TxHash: fmt.Sprintf("mock_tx_%d", ts),
		NFTID:  fmt.Sprintf("reward_%s_%d", req.RewardType, ts),
	}, nil
}
