package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationType classifies a user-targeted message.
type NotificationType string

const (
	NotificationOrderCreated NotificationType = "ORDER_CREATED"
	NotificationOrderStatus  NotificationType = "ORDER_STATUS"
	NotificationVerification NotificationType = "VERIFICATION"
	NotificationWallet       NotificationType = "WALLET"
	NotificationSystem       NotificationType = "SYSTEM"
)

// Notification is a user-targeted message, created as a side effect of
// other mutations (order creation, status transitions, verification review).
type Notification struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Type      NotificationType
	Title     string
	Content   string
	Link      string // Optional deep link into the frontend.
	Read      bool
	CreatedAt time.Time
}
