// Package email sends transactional mail over SMTP.
package email

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
	BaseURL     string
}

// WelcomeSender is implemented by services able to greet new accounts.
type WelcomeSender interface {
	SendWelcomeEmail(to, username string) error
}

type SMTPEmailService struct {
	config SMTPConfig
	dialer *gomail.Dialer
}

func NewSMTPEmailService(config SMTPConfig) *SMTPEmailService {
	return &SMTPEmailService{
		config: config,
		dialer: gomail.NewDialer(config.Host, config.Port, config.Username, config.Password),
	}
}

// SendWelcomeEmail greets a freshly registered user. Registration treats
// failures as non-fatal; account creation never depends on mail delivery.
func (s *SMTPEmailService) SendWelcomeEmail(to, username string) error {
	htmlBody, plainBody := s.welcomeBodies(username)
	return s.sendEmail(to, "Welcome to LITRevu", htmlBody, plainBody)
}

func (s *SMTPEmailService) welcomeBodies(username string) (htmlBody, plainBody string) {
	htmlBody = fmt.Sprintf(`
		<html>
		<body>
			<h2>Welcome, %s!</h2>
			<p>Your account is ready. Head over to your feed to get started:</p>
			<p><a href="%s/home/">Open your feed</a></p>
			<p>Create a ticket to ask for reviews, or follow other readers to fill your feed.</p>
		</body>
		</html>
	`, username, s.config.BaseURL)

	plainBody = fmt.Sprintf(`
Welcome, %s!

Your account is ready: %s/home/

Create a ticket to ask for reviews, or follow other readers to fill your feed.
	`, username, s.config.BaseURL)

	return htmlBody, plainBody
}

func (s *SMTPEmailService) sendEmail(to, subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.config.FromAddress, s.config.FromName))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// NoopEmailService satisfies WelcomeSender when mail is disabled.
type NoopEmailService struct{}

func (NoopEmailService) SendWelcomeEmail(string, string) error { return nil }
