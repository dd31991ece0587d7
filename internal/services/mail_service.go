package services

import (
	"fmt"
	"log"
	"net/smtp"
)

// Mailer sends transactional email. Handlers treat it as a fire-and-forget
// notification sink.
type Mailer interface {
	SendOtp(to, code string) error
	SendRegistrationConfirmation(to, name string) error
}

// MailService delivers mail over SMTP.
type MailService struct {
	host     string
	port     string
	username string
	password string
	from     string
}

// NewMailService creates a new MailService.
func NewMailService(host, port, username, password, from string) *MailService {
	return &MailService{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
	}
}

// Send delivers a plain-text message. When no SMTP host is configured the
// message is logged and dropped so local development works without a relay.
func (s *MailService) Send(to, subject, body string) error {
	if s.host == "" {
		log.Printf("[Mail] SMTP not configured, dropping message to %s: %s", to, subject)
		return nil
	}

	addr := s.host + ":" + s.port

	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n"+
		"MIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n%s",
		s.from, to, subject, body)

	var auth smtp.Auth
	if s.username != "" {
		auth = smtp.PlainAuth("", s.username, s.password, s.host)
	}

	if err := smtp.SendMail(addr, auth, s.from, []string{to}, []byte(msg)); err != nil {
		log.Printf("[Mail] Failed to send message to %s: %v", to, err)
		return err
	}

	return nil
}

// SendOtp emails a one-time password to the given address.
func (s *MailService) SendOtp(to, code string) error {
	body := fmt.Sprintf("Your OTP code is %s. It is valid for 5 minutes.", code)
	return s.Send(to, "Your OTP Code", body)
}

// SendRegistrationConfirmation emails a welcome message after signup.
func (s *MailService) SendRegistrationConfirmation(to, name string) error {
	body := fmt.Sprintf("Welcome to our platform, %s! You have successfully registered.", name)
	return s.Send(to, "Registration Successful", body)
}
