package management

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"

	"github.com/rabbitwatch/cluster-mgmt/pkg/types"
)

var tracer = otel.Tracer("cluster-mgmt/management-client")

const defaultTimeout = 10 * time.Second

// Client talks to the HTTP management API of a RabbitMQ cluster. Every
// call carries a bounded timeout; a timeout surfaces as an error and the
// caller degrades to an empty snapshot.
type Client interface {
	ListNodes(ctx context.Context, server types.Server) ([]types.NodeMetrics, error)
	ListQueues(ctx context.Context, server types.Server) ([]types.QueueMetrics, error)
	Ping(ctx context.Context, server types.Server) error
}

type clientImpl struct {
	httpClient http.Client
	timeout    time.Duration
}

func NewClient() Client {
	return &clientImpl{
		httpClient: http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		timeout: defaultTimeout,
	}
}

type nodeRecord struct {
	Name         string   `json:"name"`
	Running      bool     `json:"running"`
	MemUsed      int64    `json:"mem_used"`
	MemLimit     int64    `json:"mem_limit"`
	MemAlarm     bool     `json:"mem_alarm"`
	DiskFree     int64    `json:"disk_free"`
	DiskLimit    int64    `json:"disk_free_limit"`
	DiskAlarm    bool     `json:"disk_free_alarm"`
	FDUsed       int64    `json:"fd_used"`
	FDTotal      int64    `json:"fd_total"`
	SocketsUsed  int64    `json:"sockets_used"`
	SocketsTotal int64    `json:"sockets_total"`
	ProcUsed     int64    `json:"proc_used"`
	ProcTotal    int64    `json:"proc_total"`
	RunQueue     int64    `json:"run_queue"`
	Partitions   []string `json:"partitions"`
}

type rateDetails struct {
	Rate float64 `json:"rate"`
}

type queueRecord struct {
	Name         string `json:"name"`
	Vhost        string `json:"vhost"`
	Messages     int64  `json:"messages"`
	Ready        int64  `json:"messages_ready"`
	Unacked      int64  `json:"messages_unacknowledged"`
	Consumers    int64  `json:"consumers"`
	IdleSince    string `json:"idle_since"`
	MessageStats struct {
		PublishDetails    rateDetails `json:"publish_details"`
		DeliverGetDetails rateDetails `json:"deliver_get_details"`
	} `json:"message_stats"`
}

func (c *clientImpl) ListNodes(ctx context.Context, server types.Server) ([]types.NodeMetrics, error) {
	var err error
	ctx, span := tracer.Start(ctx, "list-nodes")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	var records []nodeRecord
	err = c.get(ctx, server, "/api/nodes", &records)
	if err != nil {
		return nil, err
	}

	nodes := make([]types.NodeMetrics, 0, len(records))
	for _, r := range records {
		nodes = append(nodes, types.NodeMetrics{
			Name:          r.Name,
			Running:       r.Running,
			MemUsed:       r.MemUsed,
			MemLimit:      r.MemLimit,
			MemAlarm:      r.MemAlarm,
			DiskFree:      r.DiskFree,
			DiskFreeLimit: r.DiskLimit,
			DiskAlarm:     r.DiskAlarm,
			FDUsed:        r.FDUsed,
			FDTotal:       r.FDTotal,
			SocketsUsed:   r.SocketsUsed,
			SocketsTotal:  r.SocketsTotal,
			ProcUsed:      r.ProcUsed,
			ProcTotal:     r.ProcTotal,
			RunQueue:      r.RunQueue,
			Partitions:    r.Partitions,
		})
	}

	return nodes, nil
}

func (c *clientImpl) ListQueues(ctx context.Context, server types.Server) ([]types.QueueMetrics, error) {
	var err error
	ctx, span := tracer.Start(ctx, "list-queues")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	var records []queueRecord
	err = c.get(ctx, server, "/api/queues", &records)
	if err != nil {
		return nil, err
	}

	queues := make([]types.QueueMetrics, 0, len(records))
	for _, r := range records {
		q := types.QueueMetrics{
			Name:        r.Name,
			Vhost:       r.Vhost,
			Messages:    r.Messages,
			Ready:       r.Ready,
			Unacked:     r.Unacked,
			Consumers:   r.Consumers,
			PublishRate: r.MessageStats.PublishDetails.Rate,
			DeliverRate: r.MessageStats.DeliverGetDetails.Rate,
		}

		if ts, ok := parseIdleSince(r.IdleSince); ok {
			q.IdleSince = &ts
		}

		queues = append(queues, q)
	}

	return queues, nil
}

func (c *clientImpl) Ping(ctx context.Context, server types.Server) error {
	var err error
	ctx, span := tracer.Start(ctx, "ping")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	var overview struct {
		ManagementVersion string `json:"management_version"`
	}

	err = c.get(ctx, server, "/api/overview", &overview)
	return err
}

func (c *clientImpl) get(ctx context.Context, server types.Server, path string, result any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	u, err := url.JoinPath(server.URL, path)
	if err != nil {
		return fmt.Errorf("invalid management url for server %s: %w", server.ID, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("failed to create http request: %w", err)
	}

	if server.Username != "" {
		req.SetBasicAuth(server.Username, server.Password)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("management api request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("management api returned status code %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	err = json.Unmarshal(body, result)
	if err != nil {
		return fmt.Errorf("failed to unmarshal response body: %w", err)
	}

	return nil
}

// parseIdleSince handles both the "2006-01-02 15:04:05" form the
// management API emits and RFC3339 from newer brokers.
func parseIdleSince(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}

	if ts, err := time.Parse("2006-01-02 15:04:05", s); err == nil {
		return ts.UTC(), true
	}

	if ts, err := time.Parse(time.RFC3339, s); err == nil {
		return ts.UTC(), true
	}

	return time.Time{}, false
}
