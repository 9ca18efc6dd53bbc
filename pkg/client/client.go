package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"

	"github.com/rabbitwatch/cluster-mgmt/pkg/types"
)

var tracer = otel.Tracer("cluster-mgmt-client")

// AlertsResult is the response body of a server alerts request.
type AlertsResult struct {
	Alerts     []types.Alert      `json:"alerts"`
	Summary    types.AlertSummary `json:"summary"`
	Thresholds types.Thresholds   `json:"thresholds"`
}

type ClusterManagementClient interface {
	GetServerAlerts(ctx context.Context, serverID string) (*AlertsResult, error)
	GetServerHealth(ctx context.Context, serverID string) (*types.HealthCheck, error)
}

type clusterManagementClient struct {
	url   string
	token string
}

func NewClusterManagementClient(url, token string) ClusterManagementClient {
	return &clusterManagementClient{
		url:   url,
		token: token,
	}
}

func (c *clusterManagementClient) GetServerAlerts(ctx context.Context, serverID string) (*AlertsResult, error) {
	var err error
	ctx, span := tracer.Start(ctx, "get-server-alerts")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	result := &AlertsResult{}

	err = c.get(ctx, fmt.Sprintf("%s/api/v0/servers/%s/alerts", c.url, serverID), result)
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (c *clusterManagementClient) GetServerHealth(ctx context.Context, serverID string) (*types.HealthCheck, error) {
	var err error
	ctx, span := tracer.Start(ctx, "get-server-health")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	hc := &types.HealthCheck{}

	err = c.get(ctx, fmt.Sprintf("%s/api/v0/servers/%s/health", c.url, serverID), hc)
	if err != nil {
		return nil, err
	}

	return hc, nil
}

func (c *clusterManagementClient) get(ctx context.Context, url string, into any) error {
	log := logging.GetFromContext(ctx)

	httpClient := http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create http request: %w", err)
	}

	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("server not found")
	}

	if resp.StatusCode != http.StatusOK {
		log.Error("request failed", "status", resp.StatusCode, "url", url)
		return fmt.Errorf("request failed with status code %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	err = json.Unmarshal(body, into)
	if err != nil {
		return fmt.Errorf("failed to unmarshal response body: %w", err)
	}

	return nil
}
