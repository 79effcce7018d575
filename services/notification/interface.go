package notification

import (
	"context"
	"fmt"
	"time"

	userRepo "tinyhouse/database/repository/user"
	"tinyhouse/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// NotificationService delivers in-app notifications to users.
type NotificationService interface {
	NotifyUser(ctx context.Context, userID, kind, title, body string, data map[string]any) error
	SendBookingReminder(ctx context.Context, p models.ReminderPayload) error
}

// DefaultNotificationService stores notifications on the user record.
type DefaultNotificationService struct {
	users  userRepo.UserRepository
	logger *zap.Logger
}

func NewDefaultNotificationService(users userRepo.UserRepository, logger *zap.Logger) (*DefaultNotificationService, error) {
	if users == nil {
		return nil, fmt.Errorf("notification service initialization error: user repository is nil")
	}
	return &DefaultNotificationService{users: users, logger: logger}, nil
}

func (s *DefaultNotificationService) NotifyUser(ctx context.Context, userID, kind, title, body string, data map[string]any) error {
	n := models.Notification{
		ID:        uuid.New().String(),
		Type:      kind,
		Title:     title,
		Body:      body,
		Data:      data,
		CreatedAt: time.Now(),
	}
	if err := s.users.AddNotification(ctx, userID, n); err != nil {
		return fmt.Errorf("failed to notify user %s: %w", userID, err)
	}
	s.logger.Debug("notification stored", zap.String("userId", userID), zap.String("type", kind))
	return nil
}

// SendBookingReminder tells the tenant their stay starts soon.
func (s *DefaultNotificationService) SendBookingReminder(ctx context.Context, p models.ReminderPayload) error {
	body := fmt.Sprintf("Your stay at %s starts on %s.", p.Title, p.CheckIn)
	return s.NotifyUser(ctx, p.TenantID, "booking_reminder", "Upcoming stay", body, map[string]any{
		"bookingId": p.BookingID,
		"listingId": p.ListingID,
		"checkIn":   p.CheckIn,
	})
}
