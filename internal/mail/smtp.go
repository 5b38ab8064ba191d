package mail

import (
	"gopkg.in/gomail.v2"

	"github.com/itzlabs/clientdesk/internal/config"
)

type SMTPMailer struct {
	dialer   *gomail.Dialer
	fromAddr string
}

func NewSMTPMailer(cfg *config.Config) *SMTPMailer {
	return &SMTPMailer{
		dialer:   gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
		fromAddr: cfg.MailFromAddr,
	}
}

func (m *SMTPMailer) Send(fromName, toEmail, toName, subject, htmlBody, altText string) error {
	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", m.fromAddr, fromName)
	msg.SetAddressHeader("To", toEmail, toName)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", altText)
	msg.AddAlternative("text/html", htmlBody)

	return m.dialer.DialAndSend(msg)
}

// Compile-time check
var _ Mailer = (*SMTPMailer)(nil)
