// Package email delivers escalation notifications to the support team
// over SMTP.
package email

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/Belkouche/jarvis-sub000/internal/domain/complaint"
	vo "github.com/Belkouche/jarvis-sub000/internal/domain/complaint/valueobjects"
	"github.com/Belkouche/jarvis-sub000/internal/shared/logger"
)

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
	SupportTeam []string
}

// SMTPNotifier sends escalation, reminder and priority-bump emails to the
// support team. Delivery failures are logged and swallowed: email is an
// observer of complaint state, never a participant in it.
type SMTPNotifier struct {
	config SMTPConfig
	dialer *gomail.Dialer
	log    logger.Interface
}

func NewSMTPNotifier(config SMTPConfig, log logger.Interface) *SMTPNotifier {
	dialer := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)

	return &SMTPNotifier{
		config: config,
		dialer: dialer,
		log:    log,
	}
}

func (n *SMTPNotifier) NotifyEscalation(_ context.Context, c *complaint.Complaint, ticketID string) {
	subject := fmt.Sprintf("[ESCALATION] Complaint #%d escalated to Orange", c.ID())
	body := fmt.Sprintf(`Complaint #%d has been escalated to Orange.

Ticket:     %s
Customer:   %s
Contract:   %s
Category:   %s
Priority:   %s
Opened:     %s

Description:
%s
`, c.ID(), ticketID, c.Phone(), orDash(c.ContractNumber()), c.Category(), c.Priority(),
		c.CreatedAt().Format("02/01/2006 15:04"), c.Description())

	n.send(subject, body, "complaint_id", c.ID(), "ticket_id", ticketID)
}

func (n *SMTPNotifier) NotifyReminder(_ context.Context, c *complaint.Complaint, thresholdHours int) {
	subject := fmt.Sprintf("[REMINDER] Complaint #%d unresolved after %dh", c.ID(), thresholdHours)
	body := fmt.Sprintf(`Complaint #%d is still unresolved %d hours after creation.

Customer:   %s
Contract:   %s
Category:   %s
Priority:   %s
Status:     %s
Assigned:   %s

Description:
%s
`, c.ID(), thresholdHours, c.Phone(), orDash(c.ContractNumber()), c.Category(), c.Priority(),
		c.Status(), orDash(c.AssignedTo()), c.Description())

	n.send(subject, body, "complaint_id", c.ID(), "threshold_hours", thresholdHours)
}

func (n *SMTPNotifier) NotifyPriorityBump(_ context.Context, c *complaint.Complaint, from, to vo.Priority) {
	subject := fmt.Sprintf("[PRIORITY] Complaint #%d raised from %s to %s", c.ID(), from, to)
	body := fmt.Sprintf(`Complaint #%d aged past its priority threshold and was raised from %s to %s.

Customer:   %s
Contract:   %s
Category:   %s
Status:     %s
Opened:     %s
`, c.ID(), from, to, c.Phone(), orDash(c.ContractNumber()), c.Category(), c.Status(),
		c.CreatedAt().Format("02/01/2006 15:04"))

	n.send(subject, body, "complaint_id", c.ID(), "from", from.String(), "to", to.String())
}

func (n *SMTPNotifier) send(subject, body string, logFields ...interface{}) {
	if len(n.config.SupportTeam) == 0 {
		n.log.Warnw("no support team recipients configured, dropping notification",
			append([]interface{}{"subject", subject}, logFields...)...)
		return
	}

	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(n.config.FromAddress, n.config.FromName))
	m.SetHeader("To", n.config.SupportTeam...)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	if err := n.dialer.DialAndSend(m); err != nil {
		n.log.Errorw("failed to send notification email",
			append([]interface{}{"subject", subject, "error", err}, logFields...)...)
		return
	}

	n.log.Infow("notification email sent",
		append([]interface{}{"subject", subject}, logFields...)...)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
