// Package vrf requests verifiable randomness from a coordinator. In mock mode
// the client acts as a local coordinator and delivers words itself.
package vrf

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/big"
	"net/http"
	"strings"
	"time"

	"github.com/ArowuTest/raffle-backend/internal/models"
	"github.com/ethereum/go-ethereum/common"
)

// Fulfiller receives the random words for a request
type Fulfiller func(ctx context.Context, requestID string, randomWords []*big.Int) error

// Config configures a Client
type Config struct {
	BaseURL          string
	APIKey           string
	CallbackURL      string
	Consumer         common.Address
	MockAPI          bool
	MockFulfillDelay time.Duration
}

// Client represents a randomness coordinator client
type Client struct {
	BaseURL     string
	APIKey      string
	CallbackURL string
	Consumer    common.Address
	MockAPI     bool
	client      *http.Client

	mock *mockCoordinator
}

// NewClient creates a new coordinator client
func NewClient(cfg Config) *Client {
	c := &Client{
		BaseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		APIKey:      cfg.APIKey,
		CallbackURL: cfg.CallbackURL,
		Consumer:    cfg.Consumer,
		MockAPI:     cfg.MockAPI,
		client:      &http.Client{Timeout: 10 * time.Second},
	}
	if cfg.MockAPI {
		c.mock = newMockCoordinator(cfg.MockFulfillDelay)
	}
	return c
}

// SetFulfiller registers where mock fulfillments are delivered. It has no
// effect against a remote coordinator, which calls back over HTTP.
func (c *Client) SetFulfiller(f Fulfiller) {
	if c.mock != nil {
		c.mock.setFulfiller(f)
	}
}

// Close stops pending mock deliveries
func (c *Client) Close() {
	if c.mock != nil {
		c.mock.close()
	}
}

type randomWordsRequest struct {
	KeyHash                     string `json:"keyHash"`
	SubID                       uint64 `json:"subId"`
	MinimumRequestConfirmations uint16 `json:"minimumRequestConfirmations"`
	CallbackGasLimit            uint32 `json:"callbackGasLimit"`
	NumWords                    uint32 `json:"numWords"`
	Consumer                    string `json:"consumer"`
	CallbackURL                 string `json:"callbackUrl,omitempty"`
}

type randomWordsResponse struct {
	RequestID json.Number `json:"requestId"`
}

// RequestRandomWords submits a request and returns its handle. The words
// arrive later, never before this call returns.
func (c *Client) RequestRandomWords(ctx context.Context, cfg models.OracleConfig) (models.RequestHandle, error) {
	if c.MockAPI {
		return c.mock.request(cfg.NumWords), nil
	}

	body, err := json.Marshal(randomWordsRequest{
		KeyHash:                     cfg.GasLane.Hex(),
		SubID:                       cfg.SubscriptionID,
		MinimumRequestConfirmations: cfg.RequestConfirmations,
		CallbackGasLimit:            cfg.CallbackGasLimit,
		NumWords:                    cfg.NumWords,
		Consumer:                    c.Consumer.Hex(),
		CallbackURL:                 c.CallbackURL,
	})
	if err != nil {
		return models.RequestHandle{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/requests", bytes.NewReader(body))
	if err != nil {
		return models.RequestHandle{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.APIKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return models.RequestHandle{}, fmt.Errorf("coordinator request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return models.RequestHandle{}, fmt.Errorf("coordinator returned %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	var out randomWordsResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return models.RequestHandle{}, fmt.Errorf("decode coordinator response: %w", err)
	}
	if out.RequestID == "" {
		return models.RequestHandle{}, errors.New("coordinator response has no requestId")
	}
	return models.RequestHandle{ID: out.RequestID.String(), IssuedAt: time.Now()}, nil
}
