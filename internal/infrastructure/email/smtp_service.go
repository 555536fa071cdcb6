package email

import (
	"context"
	"fmt"
	"net/smtp"

	"titledb-backend/pkg/logger"
)

// ConfirmationEmailData carries everything needed to deliver a signup
// confirmation code.
type ConfirmationEmailData struct {
	Email     string
	Username  string
	Code      string
	ExpiresIn string
}

type EmailService interface {
	SendConfirmationEmail(ctx context.Context, data ConfirmationEmailData) error
}

type smtpEmailService struct {
	smtpAddr string
	smtpFrom string
}

func NewSMTPEmailService(smtpHost, smtpPort, from string) EmailService {
	return &smtpEmailService{
		smtpAddr: smtpHost + ":" + smtpPort,
		smtpFrom: from,
	}
}

func (s *smtpEmailService) SendConfirmationEmail(ctx context.Context, data ConfirmationEmailData) error {
	subject := "TitleDB confirmation code"
	body := fmt.Sprintf(`Hello %s,

Your TitleDB confirmation code:
%s

The code is valid for %s.

If you did not request this registration, ignore this email.`, data.Username, data.Code, data.ExpiresIn)

	msg := []byte(fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s",
		s.smtpFrom, data.Email, subject, body))

	if err := smtp.SendMail(s.smtpAddr, nil, s.smtpFrom, []string{data.Email}, msg); err != nil {
		logger.Error("Failed to send confirmation email", err)
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

// logEmailService is the development fallback used when SMTP_HOST is not
// configured. It writes the code to the log instead of delivering it.
type logEmailService struct{}

func NewLogEmailService() EmailService {
	return logEmailService{}
}

func (logEmailService) SendConfirmationEmail(ctx context.Context, data ConfirmationEmailData) error {
	logger.Info("Confirmation email (log-only delivery)", map[string]interface{}{
		"to":       data.Email,
		"username": data.Username,
		"code":     data.Code,
	})
	return nil
}
