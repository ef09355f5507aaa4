package service

import "context"

// PushSender delivers a push notification to a device token. Implementations
// may be disabled entirely, in which case Send is a no-op.
type PushSender interface {
	Send(ctx context.Context, deviceToken string, title string, body string, data map[string]string) error
}
