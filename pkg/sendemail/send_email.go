package sendemail

import (
	"errors"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type EmailService interface {
	SendEmail(subject, toEmail, plainTextContent, htmlContent string) error
}

type emailService struct {
	client      *sendgrid.Client
	senderEmail string
	senderName  string
}

// NewEmailService creates a SendGrid-backed sender. Credentials come from the
// process configuration, not ambient environment reads.
func NewEmailService(apiKey, senderEmail, senderName string) EmailService {
	return &emailService{
		client:      sendgrid.NewSendClient(apiKey),
		senderEmail: senderEmail,
		senderName:  senderName,
	}
}

func (e *emailService) SendEmail(subject, toEmail, plainTextContent, htmlContent string) error {
	from := mail.NewEmail(e.senderName, e.senderEmail)
	to := mail.NewEmail("", toEmail)
	message := mail.NewSingleEmail(from, subject, to, plainTextContent, htmlContent)
	response, err := e.client.Send(message)
	if err != nil {
		return err
	}
	if response.StatusCode >= 400 {
		return errors.New("failed to send email")
	}
	return nil
}

type noopEmailService struct{}

// NewNoopEmailService returns a sender that silently drops mail. Used when
// SendGrid is not configured, so lookups still hand the link back over HTTP.
func NewNoopEmailService() EmailService {
	return noopEmailService{}
}

func (noopEmailService) SendEmail(subject, toEmail, plainTextContent, htmlContent string) error {
	return nil
}
