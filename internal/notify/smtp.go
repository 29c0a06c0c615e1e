package notify

import (
	"fmt"
	"log"
	"net/smtp"

	"github.com/rogerio-castellano/consumables-tracker/internal/config"
)

// Notifier delivers a single notification. Implementations never return an
// error: delivery failure is reported as false and the caller decides whether
// it cares. There is no retry.
type Notifier interface {
	Send(subject, body, recipient string) bool
}

// SMTPNotifier sends plain-text mail through a single relay. The send is one
// blocking smtp.SendMail call; timeouts are left to the transport.
type SMTPNotifier struct {
	cfg config.SMTP
}

func NewSMTPNotifier(cfg config.SMTP) *SMTPNotifier {
	return &SMTPNotifier{cfg: cfg}
}

func (n *SMTPNotifier) Send(subject, body, recipient string) bool {
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s",
		n.cfg.Username, recipient, subject, body)

	addr := fmt.Sprintf("%s:%d", n.cfg.Host, n.cfg.Port)
	auth := smtp.PlainAuth("", n.cfg.Username, n.cfg.Password, n.cfg.Host)
	if n.cfg.AuthDisabled {
		auth = nil
	}

	if err := smtp.SendMail(addr, auth, n.cfg.Username, []string{recipient}, []byte(msg)); err != nil {
		log.Printf("Failed to send email: %v", err)
		return false
	}
	return true
}
