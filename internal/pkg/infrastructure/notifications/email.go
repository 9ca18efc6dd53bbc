package notifications

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"

	"github.com/rabbitwatch/cluster-mgmt/pkg/types"
)

type SMTPConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	From     string `yaml:"from"`
}

type EmailSender struct {
	cfg SMTPConfig
}

func NewEmailSender(cfg SMTPConfig) *EmailSender {
	return &EmailSender{cfg: cfg}
}

// SendAlertEmail delivers a single message containing every
// notify-eligible alert from one evaluation pass.
func (e *EmailSender) SendAlertEmail(ctx context.Context, contact, tenantName, serverName, serverID string, alerts []types.Alert) error {
	if len(alerts) == 0 {
		return nil
	}
	if contact == "" {
		return fmt.Errorf("no contact email configured")
	}

	log := logging.GetFromContext(ctx)

	subject := fmt.Sprintf("[%s] %d alert(s) on %s", tenantName, len(alerts), serverName)
	body := buildHTMLBody(serverName, serverID, alerts)

	msg := strings.Builder{}
	msg.WriteString(fmt.Sprintf("From: %s\r\n", e.cfg.From))
	msg.WriteString(fmt.Sprintf("To: %s\r\n", contact))
	msg.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(body)

	addr := fmt.Sprintf("%s:%d", e.cfg.Host, e.cfg.Port)

	var auth smtp.Auth
	if e.cfg.Username != "" {
		auth = smtp.PlainAuth("", e.cfg.Username, e.cfg.Password, e.cfg.Host)
	}

	err := smtp.SendMail(addr, auth, e.cfg.From, []string{contact}, []byte(msg.String()))
	if err != nil {
		return fmt.Errorf("smtp delivery failed: %w", err)
	}

	log.Debug("alert email sent", "to", contact, "alerts", len(alerts))

	return nil
}

func buildHTMLBody(serverName, serverID string, alerts []types.Alert) string {
	b := strings.Builder{}

	b.WriteString("<!DOCTYPE html><html><body>")
	b.WriteString(fmt.Sprintf("<h2>Alerts for %s</h2>", serverName))
	b.WriteString(fmt.Sprintf("<p>Server id: %s</p>", serverID))
	b.WriteString("<table border='1' cellpadding='5' cellspacing='0' style='border-collapse:collapse'>")
	b.WriteString("<tr style='background-color:#f2f2f2'><th>Severity</th><th>Category</th><th>Alert</th><th>Description</th><th>Source</th><th>Observed</th></tr>")

	for _, a := range alerts {
		b.WriteString("<tr>")
		b.WriteString(fmt.Sprintf("<td style='color:%s'>%s</td>", severityColor(a.Severity), a.Severity))
		b.WriteString(fmt.Sprintf("<td>%s</td>", a.Category))
		b.WriteString(fmt.Sprintf("<td>%s</td>", a.Title))
		b.WriteString(fmt.Sprintf("<td>%s</td>", a.Description))
		b.WriteString(fmt.Sprintf("<td>%s/%s</td>", a.Source.Type, a.Source.Name))
		b.WriteString(fmt.Sprintf("<td>%s</td>", a.ObservedAt.Format("2006-01-02 15:04:05")))
		b.WriteString("</tr>")
	}

	b.WriteString("</table></body></html>")

	return b.String()
}

func severityColor(s types.Severity) string {
	switch s {
	case types.SeverityCritical:
		return "#ff0000"
	case types.SeverityWarning:
		return "#ffcc00"
	default:
		return "#0099cc"
	}
}
