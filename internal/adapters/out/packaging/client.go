// Package packaging calls the external packaging optimizer over HTTP.
package packaging

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/ports"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	recommendPath  = "/pack"
	defaultTimeout = 3 * time.Second
	maxBodySize    = 1 << 20
)

var _ ports.PackagingOptimizer = (*Client)(nil)

type recommendRequest struct {
	OrderKey string        `json:"orderkey"`
	Items    []requestItem `json:"items"`
}

type requestItem struct {
	SKU        string  `json:"sku"`
	Count      int     `json:"count"`
	A          int     `json:"a"`
	B          int     `json:"b"`
	C          int     `json:"c"`
	Weight     float64 `json:"goods_wght"`
	CargoTypes []int   `json:"cargotypes"`
}

type recommendResponse struct {
	Package string `json:"package"`
}

// Client is the ports.PackagingOptimizer backed by the optimizer's JSON endpoint.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

type Option func(*Client)

// WithHTTPClient replaces the instrumented default client.
func WithHTTPClient(c *http.Client) Option {
	return func(client *Client) {
		client.httpClient = c
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(client *Client) {
		client.httpClient.Timeout = timeout
	}
}

func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
			Timeout:   defaultTimeout,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Recommend asks for a packaging type. Every failure, including an empty answer, wraps
// ports.ErrNoRecommendation.
func (c *Client) Recommend(ctx context.Context, orderID kernel.UUID, items []ports.PackagingItem) (string, error) {
	body, err := json.Marshal(newRecommendRequest(orderID, items))
	if err != nil {
		return "", fmt.Errorf("%w: encode request: %w", ports.ErrNoRecommendation, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+recommendPath, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: build request: %w", ports.ErrNoRecommendation, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ports.ErrNoRecommendation, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodySize))
		return "", fmt.Errorf("%w: optimizer responded %d", ports.ErrNoRecommendation, resp.StatusCode)
	}

	var out recommendResponse
	if err = json.NewDecoder(io.LimitReader(resp.Body, maxBodySize)).Decode(&out); err != nil {
		return "", fmt.Errorf("%w: decode response: %w", ports.ErrNoRecommendation, err)
	}
	packaging := strings.TrimSpace(out.Package)
	if packaging == "" {
		return "", fmt.Errorf("%w: empty package in response", ports.ErrNoRecommendation)
	}
	return packaging, nil
}

func newRecommendRequest(orderID kernel.UUID, items []ports.PackagingItem) recommendRequest {
	req := recommendRequest{
		OrderKey: orderID.String(),
		Items:    make([]requestItem, 0, len(items)),
	}
	for _, it := range items {
		codes := make([]int, 0, len(it.CargoTypes))
		for _, c := range it.CargoTypes {
			codes = append(codes, int(c))
		}
		req.Items = append(req.Items, requestItem{
			SKU:        it.ItemID.String(),
			Count:      it.Quantity,
			A:          it.Dimensions.Length(),
			B:          it.Dimensions.Width(),
			C:          it.Dimensions.Height(),
			Weight:     it.Weight,
			CargoTypes: codes,
		})
	}
	return req
}
