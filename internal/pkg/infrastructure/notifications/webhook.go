package notifications

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	cloudevents "github.com/cloudevents/sdk-go/v2"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"golang.org/x/sys/unix"

	"github.com/rabbitwatch/cluster-mgmt/pkg/types"
)

const webhookEventType = "rabbitwatch.alerts"

type WebhookSender struct {
	source string
}

func NewWebhookSender() *WebhookSender {
	return &WebhookSender{source: "github.com/rabbitwatch/cluster-mgmt"}
}

type webhookPayload struct {
	TenantID   string        `json:"tenantID"`
	TenantName string        `json:"tenantName"`
	ServerID   string        `json:"serverID"`
	ServerName string        `json:"serverName"`
	Alerts     []types.Alert `json:"alerts"`
}

// SendWebhook delivers one cloud event per pass to a tenant webhook
// endpoint. When the config carries a secret, the event is signed with
// an hmac-sha256 extension so receivers can verify the origin.
func (w *WebhookSender) SendWebhook(ctx context.Context, config types.WebhookConfig, tenantID, tenantName, serverID, serverName string, alerts []types.Alert) error {
	if len(alerts) == 0 {
		return nil
	}

	log := logging.GetFromContext(ctx)

	c, err := cloudevents.NewClientHTTP()
	if err != nil {
		return err
	}

	payload := webhookPayload{
		TenantID:   tenantID,
		TenantName: tenantName,
		ServerID:   serverID,
		ServerName: serverName,
		Alerts:     alerts,
	}

	event := cloudevents.NewEvent()
	event.SetID(fmt.Sprintf("%s:%d", serverID, time.Now().UTC().Unix()))
	event.SetTime(time.Now().UTC())
	event.SetSource(w.source)
	event.SetType(webhookEventType)

	err = event.SetData(cloudevents.ApplicationJSON, payload)
	if err != nil {
		return err
	}

	if config.Secret != "" {
		body, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		event.SetExtension("signature", sign(body, config.Secret))
	}

	ctxWithTarget := cloudevents.ContextWithTarget(ctx, config.Endpoint)

	result := c.Send(ctxWithTarget, event)
	if cloudevents.IsUndelivered(result) || errors.Is(result, unix.ECONNREFUSED) {
		log.Error("failed to deliver webhook event", "endpoint", config.Endpoint, "err", result.Error())
		return fmt.Errorf("%w", result)
	}

	return nil
}

func sign(body []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}
