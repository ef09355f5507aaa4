// Package push implements the PushSender interface on Firebase Cloud
// Messaging, with a disabled fallback when no credentials are configured.
package push

import (
	"context"
	"fmt"
	"log/slog"

	"zeemart/config"
	"zeemart/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

type firebaseSender struct {
	client *messaging.Client
}

// disabledSender is used when Firebase is not configured. Push delivery is
// optional; in-app notifications are always written regardless.
type disabledSender struct {
	logger *slog.Logger
}

func (s *disabledSender) Send(_ context.Context, _ string, title string, _ string, _ map[string]string) error {
	s.logger.Debug("[Push] Firebase not configured, skipping push",
		slog.String("title", title),
	)

	return nil
}

// SenderParams holds dependencies for PushSender, injected by Fx
type SenderParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewPushSender creates a PushSender based on configuration
func NewPushSender(params SenderParams) (service.PushSender, error) {
	cfg := params.Config.Firebase
	if cfg == nil || cfg.CredentialsPath == "" {
		params.Logger.Info("Firebase not configured, push notifications disabled")

		return &disabledSender{logger: params.Logger}, nil
	}

	opt := option.WithCredentialsFile(cfg.CredentialsPath)
	app, err := firebase.NewApp(params.Ctx, &firebase.Config{ProjectID: cfg.ProjectID}, opt)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	client, err := app.Messaging(params.Ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get messaging client: %w", err)
	}

	return &firebaseSender{client: client}, nil
}

// Send delivers a push notification to a single device token
func (s *firebaseSender) Send(ctx context.Context, deviceToken string, title string, body string, data map[string]string) error {
	message := &messaging.Message{
		Token: deviceToken,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	if _, err := s.client.Send(ctx, message); err != nil {
		return fmt.Errorf("failed to send push notification: %w", err)
	}

	return nil
}
