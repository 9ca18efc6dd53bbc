package alerts

import (
	"context"
	"encoding/json"
	"time"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"

	"github.com/rabbitwatch/cluster-mgmt/pkg/types"
)

type AlertCreated struct {
	Fingerprint string      `json:"fingerprint"`
	Alert       types.Alert `json:"alert"`
	Tenant      string      `json:"tenant"`
	Timestamp   time.Time   `json:"timestamp"`
}

func (l *AlertCreated) ContentType() string {
	return "application/json"
}
func (l *AlertCreated) TopicName() string {
	return "alerts.alertCreated"
}
func (l *AlertCreated) Body() []byte {
	b, _ := json.Marshal(l)
	return b
}

type AlertResolved struct {
	Fingerprint string    `json:"fingerprint"`
	Tenant      string    `json:"tenant"`
	ServerID    string    `json:"serverID"`
	Timestamp   time.Time `json:"timestamp"`
}

func (l *AlertResolved) ContentType() string {
	return "application/json"
}
func (l *AlertResolved) TopicName() string {
	return "alerts.alertResolved"
}
func (l *AlertResolved) Body() []byte {
	b, _ := json.Marshal(l)
	return b
}

func (svc alertSvc) publish(ctx context.Context, msg messaging.TopicMessage) {
	if svc.messenger == nil {
		return
	}

	err := svc.messenger.PublishOnTopic(ctx, msg)
	if err != nil {
		logging.GetFromContext(ctx).Error("failed to publish message", "topic", msg.TopicName(), "err", err.Error())
	}
}
