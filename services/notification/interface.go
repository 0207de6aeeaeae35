package notification

import (
	"context"
	"fmt"

	"solmar/utils"

	"firebase.google.com/go/v4/messaging"
)

// NotificationService defines methods for sending FCM pushes to the device
// that made the booking.
type NotificationService interface {
	SendBookingPush(ctx context.Context, deviceToken, title, body string, data map[string]string) error
}

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct{}

// SendBookingPush sends a push to the given device token.
func (s *DefaultNotificationService) SendBookingPush(
	ctx context.Context,
	deviceToken, title, body string,
	data map[string]string,
) error {
	if deviceToken == "" {
		return fmt.Errorf("SendBookingPush: no device token provided")
	}

	msg := &messaging.Message{
		Token: deviceToken,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	response, err := utils.FCMClient.Send(ctx, msg)
	if err != nil {
		return fmt.Errorf("SendBookingPush: failed to send FCM message: %w", err)
	}

	fmt.Printf("SendBookingPush: successfully sent message: %s\n", response)
	return nil
}
