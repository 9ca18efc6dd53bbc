package alerts

import (
	"context"
	"time"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/samber/lo"

	"github.com/rabbitwatch/cluster-mgmt/pkg/types"
)

//go:generate moq -rm -out emailsender_mock.go . EmailSender
type EmailSender interface {
	SendAlertEmail(ctx context.Context, contact, tenantName, serverName, serverID string, alerts []types.Alert) error
}

//go:generate moq -rm -out webhooksender_mock.go . WebhookSender
type WebhookSender interface {
	SendWebhook(ctx context.Context, config types.WebhookConfig, tenantID, tenantName, serverID, serverName string, alerts []types.Alert) error
}

//go:generate moq -rm -out slacksender_mock.go . SlackSender
type SlackSender interface {
	SendSlack(ctx context.Context, config types.SlackConfig, tenantName, serverName string, alerts []types.Alert) error
}

type Senders struct {
	Email   EmailSender
	Webhook WebhookSender
	Slack   SlackSender
}

// dispatch fans one pass's notify-eligible alerts out to the tenant's
// channels. Channels are independent; a failing channel is logged and
// never blocks the others. Only a successful email delivery moves the
// notified-at bookkeeping forward, since that is what gates the
// never-notified condition on later passes.
func (svc alertSvc) dispatch(ctx context.Context, tenant types.Tenant, server types.Server, alerts []types.Alert, fingerprints []string, now time.Time) {
	log := logging.GetFromContext(ctx)

	if svc.senders.Email != nil {
		err := svc.senders.Email.SendAlertEmail(ctx, tenant.ContactEmail, tenant.Name, server.Name, server.ID, alerts)
		if err != nil {
			log.Error("email notification failed", "channel", "email", "tenant", tenant.ID, "err", err.Error())
		} else {
			err = svc.storage.MarkNotified(ctx, tenant.ID, server.ID, fingerprints, now)
			if err != nil {
				log.Error("could not record notification bookkeeping", "server_id", server.ID, "err", err.Error())
			}
		}
	}

	// only the first enabled config per channel type is targeted
	if webhook, ok := lo.Find(tenant.Webhooks, func(c types.WebhookConfig) bool { return c.Enabled }); ok && svc.senders.Webhook != nil {
		err := svc.senders.Webhook.SendWebhook(ctx, webhook, tenant.ID, tenant.Name, server.ID, server.Name, alerts)
		if err != nil {
			log.Error("webhook notification failed", "channel", "webhook", "config_id", webhook.ID, "err", err.Error())
		}
	}

	if slack, ok := lo.Find(tenant.SlackIntegrations, func(c types.SlackConfig) bool { return c.Enabled }); ok && svc.senders.Slack != nil {
		err := svc.senders.Slack.SendSlack(ctx, slack, tenant.Name, server.Name, alerts)
		if err != nil {
			log.Error("slack notification failed", "channel", "slack", "config_id", slack.ID, "err", err.Error())
		}
	}
}
