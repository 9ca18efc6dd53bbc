package webevents

import (
	"encoding/json"

	gosse "github.com/alexandrevicenzi/go-sse"

	"github.com/rabbitwatch/cluster-mgmt/pkg/types"
)

// WebEvents pushes server side events to connected dashboards. One
// event stream carries all servers; consumers filter on serverID.
type WebEvents interface {
	Server() *gosse.Server
	Shutdown()
	Publish(event string, data any) error
	PublishAlertSummary(serverID string, summary types.AlertSummary)
	PublishHealth(serverID string, hc types.HealthCheck)
}

type webEvents struct {
	s *gosse.Server
}

func New() WebEvents {
	return &webEvents{
		s: gosse.NewServer(&gosse.Options{}),
	}
}

func (we *webEvents) Server() *gosse.Server {
	return we.s
}

func (we *webEvents) Shutdown() {
	we.s.Shutdown()
}

func (we *webEvents) Publish(event string, data any) error {
	b, err := json.Marshal(data)
	if err != nil {
		return err
	}

	message := gosse.NewMessage("", string(b), event)
	we.s.SendMessage("", message)

	return nil
}

func (we *webEvents) PublishAlertSummary(serverID string, summary types.AlertSummary) {
	_ = we.Publish("alert-summary", struct {
		ServerID string             `json:"serverID"`
		Summary  types.AlertSummary `json:"summary"`
	}{ServerID: serverID, Summary: summary})
}

func (we *webEvents) PublishHealth(serverID string, hc types.HealthCheck) {
	_ = we.Publish("health", struct {
		ServerID string            `json:"serverID"`
		Health   types.HealthCheck `json:"health"`
	}{ServerID: serverID, Health: hc})
}
