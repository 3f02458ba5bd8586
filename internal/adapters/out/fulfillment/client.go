// Package fulfillment implements the FulfillmentGateway port against the
// storefront ordering endpoint. The locked snapshot is posted as-is; the
// retry job resubmits the same payload until a receipt comes back.
package fulfillment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"tacoshare/internal/core/domain/model/grouporder"
	"tacoshare/internal/core/ports"
	"tacoshare/internal/pkg/errs"
)

const defaultTimeout = 5 * time.Second

var _ ports.FulfillmentGateway = (*Client)(nil)

// Client submits locked group orders to the storefront.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a fulfillment client for the given base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}
}

type submitResponse struct {
	OrderID       string `json:"order_id"`
	TransactionID string `json:"transaction_id"`
}

// Submit posts the snapshot to the storefront and returns its receipt. Any
// transport failure, non-200 status or unusable response body is reported as
// a dependency error so the caller leaves the order pending for the retry
// job.
func (c *Client) Submit(ctx context.Context, snapshot grouporder.Snapshot) (ports.Receipt, error) {
	body, err := json.Marshal(snapshot)
	if err != nil {
		return ports.Receipt{}, errs.NewDependencyUnavailableError("fulfillment", err)
	}

	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, c.baseURL+"/orders", bytes.NewReader(body))
	if err != nil {
		return ports.Receipt{}, errs.NewDependencyUnavailableError("fulfillment", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return ports.Receipt{}, errs.NewDependencyUnavailableError("fulfillment", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ports.Receipt{}, errs.NewDependencyUnavailableError(
			"fulfillment", fmt.Errorf("unexpected status: %d", resp.StatusCode))
	}

	var decoded submitResponse
	if err = json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return ports.Receipt{}, errs.NewDependencyUnavailableError("fulfillment", err)
	}
	if decoded.OrderID == "" || decoded.TransactionID == "" {
		return ports.Receipt{}, errs.NewDependencyUnavailableError(
			"fulfillment", fmt.Errorf("incomplete receipt: order_id=%q transaction_id=%q",
				decoded.OrderID, decoded.TransactionID))
	}

	return ports.Receipt{
		ExternalOrderID: decoded.OrderID,
		TransactionID:   decoded.TransactionID,
	}, nil
}
