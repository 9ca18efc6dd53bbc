package watchdog

import (
	"context"
	"time"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"

	"github.com/rabbitwatch/cluster-mgmt/internal/pkg/application/alerts"
	"github.com/rabbitwatch/cluster-mgmt/pkg/types"
)

const DefaultInterval = 60 * time.Second

//go:generate moq -rm -out serverlister_mock.go . ServerLister
type ServerLister interface {
	GetServers(ctx context.Context) ([]types.Server, error)
}

// Watchdog periodically runs an evaluation pass over every registered
// server so that tracking, auto resolution and notifications happen
// even when no client polls the API.
type Watchdog interface {
	Start(ctx context.Context)
	Stop(ctx context.Context)
}

type watchdogImpl struct {
	interval time.Duration
	servers  ServerLister
	alerts   alerts.AlertService
	done     chan bool
}

func New(servers ServerLister, alertSvc alerts.AlertService, interval time.Duration) Watchdog {
	if interval <= 0 {
		interval = DefaultInterval
	}

	return &watchdogImpl{
		interval: interval,
		servers:  servers,
		alerts:   alertSvc,
		done:     make(chan bool),
	}
}

func (w *watchdogImpl) Start(ctx context.Context) {
	go w.run(ctx)
}

func (w *watchdogImpl) Stop(ctx context.Context) {
	w.done <- true
}

func (w *watchdogImpl) run(ctx context.Context) {
	log := logging.GetFromContext(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.done:
			return
		case <-ticker.C:
			w.sweep(ctx)
			log.Debug("watchdog sweep complete")
		}
	}
}

// sweep evaluates every registered server once. A failing server never
// stops the sweep; each evaluation carries its own error handling.
func (w *watchdogImpl) sweep(ctx context.Context) {
	log := logging.GetFromContext(ctx)

	servers, err := w.servers.GetServers(ctx)
	if err != nil {
		log.Error("could not list servers", "err", err.Error())
		return
	}

	for _, server := range servers {
		_, err := w.alerts.GetServerAlerts(ctx, server.ID, []string{server.Tenant})
		if err != nil {
			log.Error("evaluation pass failed", "server_id", server.ID, "err", err.Error())
		}
	}
}
