package watchdog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/matryer/is"

	"github.com/rabbitwatch/cluster-mgmt/internal/pkg/application/alerts"
	"github.com/rabbitwatch/cluster-mgmt/pkg/types"
)

func TestWatchdogSweepsAllServers(t *testing.T) {
	is := is.New(t)

	servers := &ServerListerMock{
		GetServersFunc: func(ctx context.Context) ([]types.Server, error) {
			return []types.Server{
				{ID: "srv-001", Tenant: "acme"},
				{ID: "srv-002", Tenant: "globex"},
			}, nil
		},
	}

	alertSvc := &alerts.AlertServiceMock{
		GetServerAlertsFunc: func(ctx context.Context, serverID string, tenants []string) (alerts.AlertsResult, error) {
			return alerts.AlertsResult{}, nil
		},
	}

	w := &watchdogImpl{servers: servers, alerts: alertSvc}
	w.sweep(context.Background())

	calls := alertSvc.GetServerAlertsCalls()
	is.Equal(len(calls), 2)
	is.Equal(calls[0].ServerID, "srv-001")
	is.Equal(calls[0].Tenants, []string{"acme"})
	is.Equal(calls[1].ServerID, "srv-002")
}

func TestWatchdogSweepContinuesPastFailingServer(t *testing.T) {
	is := is.New(t)

	servers := &ServerListerMock{
		GetServersFunc: func(ctx context.Context) ([]types.Server, error) {
			return []types.Server{
				{ID: "srv-001", Tenant: "acme"},
				{ID: "srv-002", Tenant: "globex"},
			}, nil
		},
	}

	alertSvc := &alerts.AlertServiceMock{
		GetServerAlertsFunc: func(ctx context.Context, serverID string, tenants []string) (alerts.AlertsResult, error) {
			if serverID == "srv-001" {
				return alerts.AlertsResult{}, errors.New("management api unreachable")
			}
			return alerts.AlertsResult{}, nil
		},
	}

	w := &watchdogImpl{servers: servers, alerts: alertSvc}
	w.sweep(context.Background())

	is.Equal(len(alertSvc.GetServerAlertsCalls()), 2)
}

func TestWatchdogStartStop(t *testing.T) {
	is := is.New(t)

	servers := &ServerListerMock{
		GetServersFunc: func(ctx context.Context) ([]types.Server, error) {
			return []types.Server{{ID: "srv-001", Tenant: "acme"}}, nil
		},
	}

	alertSvc := &alerts.AlertServiceMock{
		GetServerAlertsFunc: func(ctx context.Context, serverID string, tenants []string) (alerts.AlertsResult, error) {
			return alerts.AlertsResult{}, nil
		},
	}

	ctx := context.Background()

	w := New(servers, alertSvc, 10*time.Millisecond)
	w.Start(ctx)

	time.Sleep(50 * time.Millisecond)
	w.Stop(ctx)

	is.True(len(alertSvc.GetServerAlertsCalls()) >= 1)
}

func TestWatchdogStopsOnContextCancel(t *testing.T) {
	is := is.New(t)

	servers := &ServerListerMock{
		GetServersFunc: func(ctx context.Context) ([]types.Server, error) {
			return nil, nil
		},
	}

	alertSvc := &alerts.AlertServiceMock{}

	ctx, cancel := context.WithCancel(context.Background())

	w := New(servers, alertSvc, 10*time.Millisecond)
	w.Start(ctx)

	time.Sleep(25 * time.Millisecond)
	cancel()

	// the worker exits on its own; a later Stop must not be required
	time.Sleep(25 * time.Millisecond)
	is.True(len(servers.GetServersCalls()) >= 1)
}
