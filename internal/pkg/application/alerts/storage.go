package alerts

import (
	"context"
	"time"

	"github.com/rabbitwatch/cluster-mgmt/internal/pkg/infrastructure/storage"
	"github.com/rabbitwatch/cluster-mgmt/pkg/types"
)

//go:generate moq -rm -out alertstorage_mock.go . AlertStorage
type AlertStorage interface {
	GetSeenAlerts(ctx context.Context, tenant, serverID string) ([]types.SeenAlert, error)
	UpsertSeenAlert(ctx context.Context, alert types.SeenAlert) error
	ResolveAbsent(ctx context.Context, tenant, serverID string, present []string, now time.Time) ([]types.SeenAlert, error)
	MarkNotified(ctx context.Context, tenant, serverID string, fingerprints []string, now time.Time) error
	QuerySeenAlerts(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.SeenAlert], error)

	GetServer(ctx context.Context, serverID string, tenants ...string) (types.Server, error)
	GetTenant(ctx context.Context, tenantID string) (types.Tenant, error)
}

//go:generate moq -rm -out metricsource_mock.go . MetricSource
type MetricSource interface {
	ListNodes(ctx context.Context, server types.Server) ([]types.NodeMetrics, error)
	ListQueues(ctx context.Context, server types.Server) ([]types.QueueMetrics, error)
	Ping(ctx context.Context, server types.Server) error
}
