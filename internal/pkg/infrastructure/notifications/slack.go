package notifications

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/rabbitwatch/cluster-mgmt/pkg/types"
)

type SlackSender struct {
	httpClient http.Client
	timeout    time.Duration
}

func NewSlackSender() *SlackSender {
	return &SlackSender{
		httpClient: http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		timeout: 10 * time.Second,
	}
}

type slackMessage struct {
	Channel string `json:"channel,omitempty"`
	Text    string `json:"text"`
}

// SendSlack posts one message per pass to a tenant's Slack incoming
// webhook, listing every notify-eligible alert.
func (s *SlackSender) SendSlack(ctx context.Context, config types.SlackConfig, tenantName, serverName string, alerts []types.Alert) error {
	if len(alerts) == 0 {
		return nil
	}

	log := logging.GetFromContext(ctx)

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	text := strings.Builder{}
	text.WriteString(fmt.Sprintf("*%d alert(s) on %s* (%s)\n", len(alerts), serverName, tenantName))

	for _, a := range alerts {
		text.WriteString(fmt.Sprintf("%s *%s* [%s] %s: %s\n", severityEmoji(a.Severity), a.Title, a.Severity, a.Source.Name, a.Description))
	}

	body, err := json.Marshal(slackMessage{
		Channel: config.Channel,
		Text:    text.String(),
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, config.WebhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create http request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("slack delivery failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("slack webhook returned status code %d", resp.StatusCode)
	}

	log.Debug("slack notification sent", "alerts", len(alerts))

	return nil
}

func severityEmoji(s types.Severity) string {
	switch s {
	case types.SeverityCritical:
		return ":red_circle:"
	case types.SeverityWarning:
		return ":large_yellow_circle:"
	default:
		return ":large_blue_circle:"
	}
}
