package notification

import (
	"context"
	"fmt"

	"venuely/models"
	"venuely/utils"

	"firebase.google.com/go/v4/messaging"
	"go.uber.org/zap"
)

// BookingCreated notifies admins of a new booking and mails the customer a
// confirmation. Channel failures are collected but partial delivery is not
// rolled back.
func (s *DefaultNotificationService) BookingCreated(ctx context.Context, b *models.Booking) error {
	title := "New booking " + b.BookingRef
	body := fmt.Sprintf("%s booked %s on %s", b.CustomerName, b.PlanName, b.EventDate)

	pushErr := s.pushToAdmins(ctx, title, body, map[string]string{
		"bookingRef": b.BookingRef,
		"event":      "booking_created",
	})

	mailErr := s.mailCustomer(b.CustomerEmail,
		"Booking received: "+b.BookingRef,
		fmt.Sprintf("Hi %s,\r\n\r\nWe received your booking %s for %s on %s (total %.2f).\r\nWe will confirm it shortly.\r\n",
			b.CustomerName, b.BookingRef, b.PlanName, b.EventDate, b.TotalAmount))

	if pushErr != nil || mailErr != nil {
		return fmt.Errorf("booking created notification: push=%v mail=%v", pushErr, mailErr)
	}
	return nil
}

// BookingCancelled notifies admins and the customer of a cancellation.
func (s *DefaultNotificationService) BookingCancelled(ctx context.Context, b *models.Booking) error {
	title := "Booking cancelled " + b.BookingRef
	body := fmt.Sprintf("%s on %s was cancelled", b.PlanName, b.EventDate)

	pushErr := s.pushToAdmins(ctx, title, body, map[string]string{
		"bookingRef": b.BookingRef,
		"event":      "booking_cancelled",
	})

	mailErr := s.mailCustomer(b.CustomerEmail,
		"Booking cancelled: "+b.BookingRef,
		fmt.Sprintf("Hi %s,\r\n\r\nYour booking %s for %s on %s has been cancelled.\r\n",
			b.CustomerName, b.BookingRef, b.PlanName, b.EventDate))

	if pushErr != nil || mailErr != nil {
		return fmt.Errorf("booking cancelled notification: push=%v mail=%v", pushErr, mailErr)
	}
	return nil
}

// pushToAdmins sends an FCM message to every admin device with a registered
// token. Skipped silently when Firebase is not configured.
func (s *DefaultNotificationService) pushToAdmins(ctx context.Context, title, body string, data map[string]string) error {
	if utils.FCMClient == nil {
		return nil
	}

	admins, err := s.Users.GetByRole(models.RoleAdmin)
	if err != nil {
		return fmt.Errorf("pushToAdmins: could not list admins: %w", err)
	}

	logger := utils.GetLogger()
	var lastErr error
	for _, admin := range admins {
		if admin.FCMToken == "" {
			continue
		}
		msg := &messaging.Message{
			Token: admin.FCMToken,
			Notification: &messaging.Notification{
				Title: title,
				Body:  body,
			},
			Data: data,
		}
		if _, err := utils.FCMClient.Send(ctx, msg); err != nil {
			logger.Warn("admin push failed",
				zap.String("admin", admin.ID), zap.Error(err))
			lastErr = err
		}
	}
	return lastErr
}
