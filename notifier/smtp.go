package notifier

import (
	"fmt"
	"log"
	"net/smtp"
	"strings"

	"academia/config"
)

// smtpSender delivers email through a plain-auth SMTP relay
type smtpSender struct {
	host     string
	port     string
	from     string
	password string
}

// NewSMTPSender builds an EmailSender from the SMTP credentials in config
func NewSMTPSender() EmailSender {
	return &smtpSender{
		host:     config.AppConfig.SMTPHost,
		port:     config.AppConfig.SMTPPort,
		from:     config.AppConfig.EmailSender,
		password: config.AppConfig.Password,
	}
}

func (s *smtpSender) Send(to []string, subject, htmlBody string) error {
	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: Academia <%s>\r\n", s.from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", s.from, s.password, s.host)

	if err := smtp.SendMail(s.host+":"+s.port, auth, s.from, to, []byte(msg)); err != nil {
		return err
	}
	return nil
}

// consoleSender logs instead of delivering. Used in development and
// whenever SMTP credentials are missing.
type consoleSender struct{}

// NewConsoleSender returns an EmailSender that only logs
func NewConsoleSender() EmailSender {
	return consoleSender{}
}

func (consoleSender) Send(to []string, subject, _ string) error {
	log.Printf("[EMAIL] to=%v subject=%q (console sink, not delivered)", to, subject)
	return nil
}
