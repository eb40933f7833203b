package notification

import (
	"context"
	"fmt"
	"time"

	customerRepo "hoofline/database/repository/customer"
	providerRepo "hoofline/database/repository/provider"
	"hoofline/utils"

	"firebase.google.com/go/v4/messaging"
)

// NotificationService sends FCM pushes to customers and providers.
type NotificationService interface {
	SendCustomerPush(ctx context.Context, customerID, title, body string, data map[string]string) error
	SendProviderPush(ctx context.Context, providerID, title, body string, data map[string]string) error
}

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	Customers customerRepo.CustomerRepository
	Providers providerRepo.ProviderRepository
}

// fcmTokenTTL bounds staleness of cached device tokens; updates also delete
// the key eagerly via FCMTokenCacheKey.
const fcmTokenTTL = 10 * time.Minute

// FCMTokenCacheKey is the cache key for one account's device token.
func FCMTokenCacheKey(role, id string) string {
	return "fcm:" + role + ":" + id
}

func cachedFCMToken(ctx context.Context, role, id string, fetch func() (string, error)) (string, error) {
	cache := utils.GetCacheClient()
	key := FCMTokenCacheKey(role, id)

	if token, err := cache.Get(ctx, key).Result(); err == nil && token != "" {
		return token, nil
	}

	token, err := fetch()
	if err != nil {
		return "", err
	}
	cache.Set(ctx, key, token, fcmTokenTTL)
	return token, nil
}

// SendCustomerPush looks up the customer's FCM token and sends a push.
func (s *DefaultNotificationService) SendCustomerPush(ctx context.Context, customerID, title, body string, data map[string]string) error {
	token, err := cachedFCMToken(ctx, "customer", customerID, func() (string, error) {
		c, err := s.Customers.GetByID(ctx, customerID)
		if err != nil {
			return "", fmt.Errorf("SendCustomerPush: could not find customer %s: %w", customerID, err)
		}
		if c == nil || c.FCMToken == "" {
			return "", fmt.Errorf("SendCustomerPush: customer %s has no FCM token", customerID)
		}
		return c.FCMToken, nil
	})
	if err != nil {
		return err
	}
	return send(ctx, token, title, body, withRole(data, "customer"))
}

// SendProviderPush looks up the provider's FCM token and sends a push.
func (s *DefaultNotificationService) SendProviderPush(ctx context.Context, providerID, title, body string, data map[string]string) error {
	token, err := cachedFCMToken(ctx, "provider", providerID, func() (string, error) {
		p, err := s.Providers.GetByID(ctx, providerID)
		if err != nil {
			return "", fmt.Errorf("SendProviderPush: could not find provider %s: %w", providerID, err)
		}
		if p == nil || p.FCMToken == "" {
			return "", fmt.Errorf("SendProviderPush: provider %s has no FCM token", providerID)
		}
		return p.FCMToken, nil
	})
	if err != nil {
		return err
	}
	return send(ctx, token, title, body, withRole(data, "provider"))
}

func withRole(data map[string]string, role string) map[string]string {
	if data == nil {
		data = map[string]string{}
	}
	if _, ok := data["role"]; !ok {
		data["role"] = role
	}
	return data
}

func send(ctx context.Context, token, title, body string, data map[string]string) error {
	msg := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}
	if _, err := utils.FCMClient.Send(ctx, msg); err != nil {
		return fmt.Errorf("failed to send FCM message: %w", err)
	}
	return nil
}
