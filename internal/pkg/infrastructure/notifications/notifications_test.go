package notifications

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/matryer/is"

	"github.com/rabbitwatch/cluster-mgmt/pkg/types"
)

func testAlerts() []types.Alert {
	return []types.Alert{
		{
			Title:       "Critical Memory Usage",
			Description: "Node rabbit@node1 memory usage is at 96.0% of its limit",
			Severity:    types.SeverityCritical,
			Category:    types.CategoryMemory,
			Source:      types.AlertSource{Type: types.SourceNode, Name: "rabbit@node1"},
		},
		{
			Title:       "High Queue Backlog",
			Description: "Queue orders has 20000 messages",
			Severity:    types.SeverityWarning,
			Category:    types.CategoryQueue,
			Source:      types.AlertSource{Type: types.SourceQueue, Name: "orders"},
		},
	}
}

func TestBuildHTMLBodyListsEveryAlert(t *testing.T) {
	is := is.New(t)

	body := buildHTMLBody("production", "srv-001", testAlerts())

	is.True(strings.Contains(body, "Alerts for production"))
	is.True(strings.Contains(body, "srv-001"))
	is.True(strings.Contains(body, "Critical Memory Usage"))
	is.True(strings.Contains(body, "High Queue Backlog"))
	is.True(strings.Contains(body, "node/rabbit@node1"))
	is.True(strings.Contains(body, "queue/orders"))
}

func TestSeverityColors(t *testing.T) {
	is := is.New(t)

	is.Equal(severityColor(types.SeverityCritical), "#ff0000")
	is.Equal(severityColor(types.SeverityWarning), "#ffcc00")
	is.Equal(severityColor(types.SeverityInfo), "#0099cc")
}

func TestSendAlertEmailRequiresContact(t *testing.T) {
	is := is.New(t)

	sender := NewEmailSender(SMTPConfig{Host: "localhost", Port: 25, From: "alerts@rabbitwatch.example"})

	err := sender.SendAlertEmail(context.Background(), "", "Acme Inc", "production", "srv-001", testAlerts())
	is.True(err != nil)
}

func TestSendAlertEmailNoAlertsIsANoop(t *testing.T) {
	is := is.New(t)

	sender := NewEmailSender(SMTPConfig{})

	err := sender.SendAlertEmail(context.Background(), "ops@acme.example", "Acme Inc", "production", "srv-001", nil)
	is.NoErr(err)
}

func TestSendSlackPostsToWebhook(t *testing.T) {
	is := is.New(t)

	var received slackMessage

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		is.Equal(r.Method, http.MethodPost)
		is.Equal(r.Header.Get("Content-Type"), "application/json")

		body, _ := io.ReadAll(r.Body)
		is.NoErr(json.Unmarshal(body, &received))

		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	sender := NewSlackSender()

	err := sender.SendSlack(context.Background(), types.SlackConfig{
		ID: "sl-1", WebhookURL: srv.URL, Channel: "#alerts", Enabled: true,
	}, "Acme Inc", "production", testAlerts())
	is.NoErr(err)

	is.Equal(received.Channel, "#alerts")
	is.True(strings.Contains(received.Text, "2 alert(s) on production"))
	is.True(strings.Contains(received.Text, ":red_circle:"))
	is.True(strings.Contains(received.Text, "Critical Memory Usage"))
}

func TestSendSlackNon200IsAnError(t *testing.T) {
	is := is.New(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	sender := NewSlackSender()

	err := sender.SendSlack(context.Background(), types.SlackConfig{WebhookURL: srv.URL}, "Acme Inc", "production", testAlerts())
	is.True(err != nil)
}

func TestSendWebhookDeliversSignedCloudEvent(t *testing.T) {
	is := is.New(t)

	var eventType, signature string
	var body []byte

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		eventType = r.Header.Get("ce-type")
		signature = r.Header.Get("ce-signature")
		body, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	sender := NewWebhookSender()

	err := sender.SendWebhook(context.Background(), types.WebhookConfig{
		ID: "wh-1", Endpoint: srv.URL, Secret: "hunter2", Enabled: true,
	}, "acme", "Acme Inc", "srv-001", "production", testAlerts())
	is.NoErr(err)

	is.Equal(eventType, "rabbitwatch.alerts")

	var payload webhookPayload
	is.NoErr(json.Unmarshal(body, &payload))
	is.Equal(payload.TenantID, "acme")
	is.Equal(payload.ServerID, "srv-001")
	is.Equal(len(payload.Alerts), 2)

	expected, err := json.Marshal(payload)
	is.NoErr(err)
	is.Equal(signature, sign(expected, "hunter2"))
}

func TestSendWebhookUnreachableEndpointIsAnError(t *testing.T) {
	is := is.New(t)

	sender := NewWebhookSender()

	err := sender.SendWebhook(context.Background(), types.WebhookConfig{
		Endpoint: "http://127.0.0.1:1", Enabled: true,
	}, "acme", "Acme Inc", "srv-001", "production", testAlerts())
	is.True(err != nil)
}

func TestSignIsDeterministic(t *testing.T) {
	is := is.New(t)

	a := sign([]byte("payload"), "secret")
	b := sign([]byte("payload"), "secret")

	is.Equal(a, b)
	is.True(a != sign([]byte("payload"), "othersecret"))
	is.True(a != sign([]byte("otherpayload"), "secret"))
}

func TestSendSlackNoAlertsIsANoop(t *testing.T) {
	is := is.New(t)

	sender := NewSlackSender()

	err := sender.SendSlack(context.Background(), types.SlackConfig{WebhookURL: "http://127.0.0.1:1"}, "Acme Inc", "production", nil)
	is.NoErr(err)
}
