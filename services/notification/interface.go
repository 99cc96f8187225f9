package notification

import (
	"context"

	userRepo "venuely/database/repository/user"
	"venuely/models"
)

// Service defines best-effort booking notifications. Implementations are
// side-effecting collaborators; callers log failures and move on.
type Service interface {
	BookingCreated(ctx context.Context, b *models.Booking) error
	BookingCancelled(ctx context.Context, b *models.Booking) error
}

// DefaultNotificationService pushes booking events to admin devices over
// FCM and mails the customer a confirmation over SMTP. Either channel stays
// silent when its configuration is absent.
type DefaultNotificationService struct {
	Users userRepo.UserRepository
}
