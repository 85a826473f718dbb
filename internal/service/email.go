package service

import (
	"context"
	"fmt"
	"time"

	"rentwheels-backend/internal/domain"
	"rentwheels-backend/internal/logger"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type sendClient interface {
	SendWithContext(ctx context.Context, email *mail.SGMailV3) (*rest.Response, error)
}

type emailService struct {
	client    sendClient
	fromEmail string
	fromName  string
}

// NewEmailService sends through SendGrid. With an empty API key messages are
// only logged.
func NewEmailService(apiKey, fromEmail, fromName string) EmailService {
	s := &emailService{fromEmail: fromEmail, fromName: fromName}
	if apiKey != "" {
		s.client = sendgrid.NewSendClient(apiKey)
	}
	return s
}

func (s *emailService) send(ctx context.Context, to, subject, body string) error {
	if s.client == nil {
		logger.Info("Email delivery disabled, dropping message", "to", to, "subject", subject)
		return nil
	}

	message := mail.NewSingleEmail(mail.NewEmail(s.fromName, s.fromEmail), subject, mail.NewEmail("", to), body, "")

	logger.ExternalServiceCall("sendgrid", "send", "to", to, "subject", subject)
	resp, err := s.client.SendWithContext(ctx, message)
	if err == nil && resp.StatusCode >= 400 {
		err = fmt.Errorf("sendgrid error: status %d, body: %s", resp.StatusCode, resp.Body)
	}
	logger.ExternalServiceResult("sendgrid", "send", err, "to", to)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func (s *emailService) SendRentalRequestNotification(ctx context.Context, ownerEmail, renterName, vehicleName string, period domain.DateRange) error {
	subject := fmt.Sprintf("New Rental Request: %s", vehicleName)
	body := fmt.Sprintf("Hello,\n\n%s has requested to rent your %s from %s to %s.\n\nPlease accept or reject the request.\n\nBest regards,\nThe RentWheels Team",
		renterName, vehicleName, period.Start.Format(time.DateOnly), period.End.Format(time.DateOnly))
	return s.send(ctx, ownerEmail, subject, body)
}

func (s *emailService) SendRentalStatusNotification(ctx context.Context, renterEmail, vehicleName string, status domain.RentalStatus) error {
	subject := fmt.Sprintf("Rental Update: %s", vehicleName)
	var line string
	switch status {
	case domain.RentalStatusActive:
		line = fmt.Sprintf("Your rental of %s has been accepted.", vehicleName)
	case domain.RentalStatusCancelled:
		line = fmt.Sprintf("Your rental of %s has been cancelled.", vehicleName)
	case domain.RentalStatusCompleted:
		line = fmt.Sprintf("Your rental of %s is complete. Thank you for renting with us.", vehicleName)
	default:
		line = fmt.Sprintf("Your rental of %s is now %s.", vehicleName, status)
	}
	return s.send(ctx, renterEmail, subject, "Hello,\n\n"+line+"\n\nBest regards,\nThe RentWheels Team")
}

func (s *emailService) SendProviderStatusNotification(ctx context.Context, email, name string, status domain.ProviderStatus) error {
	subject := "Provider Application Update"
	body := fmt.Sprintf("Hello %s,\n\nYour provider application has been %s.\n\nBest regards,\nThe RentWheels Team", name, status)
	return s.send(ctx, email, subject, body)
}
