package alerts

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/samber/lo"
	"go.opentelemetry.io/otel"

	"github.com/rabbitwatch/cluster-mgmt/internal/pkg/infrastructure/storage"
	"github.com/rabbitwatch/cluster-mgmt/pkg/types"
)

var tracer = otel.Tracer("cluster-mgmt/alerts")

var ErrServerNotFound = fmt.Errorf("server not found")

type AlertsResult struct {
	Alerts     []types.Alert      `json:"alerts"`
	Summary    types.AlertSummary `json:"summary"`
	Thresholds types.Thresholds   `json:"thresholds"`
}

// ThresholdProvider yields the effective threshold set for a tenant.
// Implementations fall back to defaults and never fail.
type ThresholdProvider interface {
	GetThresholds(ctx context.Context, tenant string) types.Thresholds
}

//go:generate moq -rm -out alertservice_mock.go . AlertService
type AlertService interface {
	GetServerAlerts(ctx context.Context, serverID string, tenants []string) (AlertsResult, error)
	GetHealthCheck(ctx context.Context, serverID string, tenants []string) (types.HealthCheck, error)
	History(ctx context.Context, serverID string, offset, limit int, tenants []string) (types.Collection[types.SeenAlert], error)
}

type alertSvc struct {
	storage    AlertStorage
	source     MetricSource
	thresholds ThresholdProvider
	messenger  messaging.MsgContext
	senders    Senders
}

func New(s AlertStorage, source MetricSource, thresholds ThresholdProvider, messenger messaging.MsgContext, senders Senders) AlertService {
	return alertSvc{
		storage:    s,
		source:     source,
		thresholds: thresholds,
		messenger:  messenger,
		senders:    senders,
	}
}

// GetServerAlerts runs one evaluation pass for a server and returns the
// candidates plus a severity summary. A failing node or queue fetch
// degrades to an empty snapshot for that half; tracking and
// notification run as a side effect and can never fail the read path.
func (svc alertSvc) GetServerAlerts(ctx context.Context, serverID string, tenants []string) (AlertsResult, error) {
	var err error
	ctx, span := tracer.Start(ctx, "get-server-alerts")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	log := logging.GetFromContext(ctx)

	server, err := svc.storage.GetServer(ctx, serverID, tenants...)
	if err != nil {
		return AlertsResult{}, ErrServerNotFound
	}

	th := svc.thresholds.GetThresholds(ctx, server.Tenant)

	nodes, queues := svc.fetchSnapshot(ctx, server)

	candidates := make([]types.Alert, 0)

	for _, node := range nodes {
		candidates = append(candidates, EvaluateNode(server, node, th)...)
	}

	for _, queue := range queues {
		candidates = append(candidates, EvaluateQueue(server, queue, th)...)
	}

	sortAlerts(candidates)

	summary := Summarize(candidates)

	svc.trackAndNotify(ctx, candidates, server)

	log.Debug("evaluation pass complete", "server_id", serverID, "alerts", summary.Total)

	return AlertsResult{
		Alerts:     candidates,
		Summary:    summary,
		Thresholds: th,
	}, nil
}

// fetchSnapshot retrieves node and queue metrics concurrently. The two
// calls fail independently; either failure is logged and yields an
// empty list so evaluation proceeds with whatever data is available.
func (svc alertSvc) fetchSnapshot(ctx context.Context, server types.Server) ([]types.NodeMetrics, []types.QueueMetrics) {
	log := logging.GetFromContext(ctx)

	var nodes []types.NodeMetrics
	var queues []types.QueueMetrics

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		var err error
		nodes, err = svc.source.ListNodes(ctx, server)
		if err != nil {
			log.Error("could not list nodes", "server_id", server.ID, "err", err.Error())
			nodes = nil
		}
	}()

	go func() {
		defer wg.Done()
		var err error
		queues, err = svc.source.ListQueues(ctx, server)
		if err != nil {
			log.Error("could not list queues", "server_id", server.ID, "err", err.Error())
			queues = nil
		}
	}()

	wg.Wait()

	return nodes, queues
}

func sortAlerts(alerts []types.Alert) {
	slices.SortStableFunc(alerts, func(a, b types.Alert) int {
		if d := b.Severity.Rank() - a.Severity.Rank(); d != 0 {
			return d
		}
		return b.ObservedAt.Compare(a.ObservedAt)
	})
}

func Summarize(alerts []types.Alert) types.AlertSummary {
	bySeverity := lo.CountValuesBy(alerts, func(a types.Alert) types.Severity { return a.Severity })

	return types.AlertSummary{
		Total:    len(alerts),
		Critical: bySeverity[types.SeverityCritical],
		Warning:  bySeverity[types.SeverityWarning],
		Info:     bySeverity[types.SeverityInfo],
	}
}

func (svc alertSvc) History(ctx context.Context, serverID string, offset, limit int, tenants []string) (types.Collection[types.SeenAlert], error) {
	_, err := svc.storage.GetServer(ctx, serverID, tenants...)
	if err != nil {
		return types.Collection[types.SeenAlert]{}, ErrServerNotFound
	}

	return svc.storage.QuerySeenAlerts(ctx,
		storage.WithServerID(serverID),
		storage.WithTenants(tenants),
		storage.WithOffset(offset),
		storage.WithLimit(limit),
	)
}

// GetHealthCheck produces the coarse health rollup for a server. The
// overall verdict is the worst of all individual checks.
func (svc alertSvc) GetHealthCheck(ctx context.Context, serverID string, tenants []string) (types.HealthCheck, error) {
	var err error
	ctx, span := tracer.Start(ctx, "get-health-check")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	server, err := svc.storage.GetServer(ctx, serverID, tenants...)
	if err != nil {
		return types.HealthCheck{}, ErrServerNotFound
	}

	now := time.Now().UTC()

	hc := types.HealthCheck{CheckedAt: now}

	err = svc.source.Ping(ctx, server)
	if err != nil {
		hc.Connectivity = check(types.HealthStatusCritical, fmt.Sprintf("cannot reach management api: %s", err.Error()))
		noData := check(types.HealthStatusDegraded, "no data, management api unreachable")
		hc.Nodes, hc.Memory, hc.Disk, hc.Queues, hc.Consumers = noData, noData, noData, noData, noData
		hc.Overall = types.HealthStatusCritical
		return hc, nil
	}

	hc.Connectivity = check(types.HealthStatusHealthy, "management api reachable")

	th := svc.thresholds.GetThresholds(ctx, server.Tenant)
	nodes, queues := svc.fetchSnapshot(ctx, server)

	hc.Nodes = nodeCheck(nodes)
	hc.Memory = alarmCheck(nodes, "memory", func(n types.NodeMetrics) bool { return n.MemAlarm })
	hc.Disk = alarmCheck(nodes, "disk", func(n types.NodeMetrics) bool { return n.DiskAlarm })
	hc.Queues = queueCheck(queues, th)
	hc.Consumers = consumerCheck(queues)

	hc.Overall = worstOf(hc.Connectivity, hc.Nodes, hc.Memory, hc.Disk, hc.Queues, hc.Consumers)

	return hc, nil
}

func check(status types.HealthStatus, message string) types.HealthCheckItem {
	return types.HealthCheckItem{Status: status, Message: message}
}

func nodeCheck(nodes []types.NodeMetrics) types.HealthCheckItem {
	if len(nodes) == 0 {
		return check(types.HealthStatusDegraded, "no node data available")
	}

	running := lo.CountBy(nodes, func(n types.NodeMetrics) bool { return n.Running })

	switch {
	case running == len(nodes):
		return check(types.HealthStatusHealthy, fmt.Sprintf("all %d node(s) running", len(nodes)))
	case running*2 >= len(nodes):
		return check(types.HealthStatusDegraded, fmt.Sprintf("%d of %d node(s) running", running, len(nodes)))
	default:
		return check(types.HealthStatusCritical, fmt.Sprintf("only %d of %d node(s) running", running, len(nodes)))
	}
}

func alarmCheck(nodes []types.NodeMetrics, what string, alarmed func(types.NodeMetrics) bool) types.HealthCheckItem {
	count := lo.CountBy(nodes, alarmed)

	if count > 0 {
		return check(types.HealthStatusCritical, fmt.Sprintf("%d node(s) with an active %s alarm", count, what))
	}

	return check(types.HealthStatusHealthy, fmt.Sprintf("no %s alarms", what))
}

func queueCheck(queues []types.QueueMetrics, th types.Thresholds) types.HealthCheckItem {
	critical := lo.CountBy(queues, func(q types.QueueMetrics) bool { return float64(q.Messages) >= th.QueueMessages.Critical })
	warning := lo.CountBy(queues, func(q types.QueueMetrics) bool {
		return float64(q.Messages) >= th.QueueMessages.Warning && float64(q.Messages) < th.QueueMessages.Critical
	})

	switch {
	case critical > 0:
		return check(types.HealthStatusCritical, fmt.Sprintf("%d queue(s) with a critical backlog", critical))
	case warning > 0:
		return check(types.HealthStatusDegraded, fmt.Sprintf("%d queue(s) with a high backlog", warning))
	default:
		return check(types.HealthStatusHealthy, fmt.Sprintf("%d queue(s) within thresholds", len(queues)))
	}
}

func consumerCheck(queues []types.QueueMetrics) types.HealthCheckItem {
	count := lo.CountBy(queues, func(q types.QueueMetrics) bool { return q.Messages > 0 && q.Consumers == 0 })

	if count > 0 {
		return check(types.HealthStatusDegraded, fmt.Sprintf("%d queue(s) with messages but no consumers", count))
	}

	return check(types.HealthStatusHealthy, "all queues with messages have consumers")
}

func worstOf(items ...types.HealthCheckItem) types.HealthStatus {
	worst := types.HealthStatusHealthy
	for _, item := range items {
		if item.Status.Rank() > worst.Rank() {
			worst = item.Status
		}
	}
	return worst
}
