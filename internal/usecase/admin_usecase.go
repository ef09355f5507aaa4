package usecase

import (
	"context"

	"github.com/google/uuid"

	"zeemart/internal/domain/entity"
)

// DashboardStats aggregates marketplace-wide counters for the admin console.
type DashboardStats struct {
	TotalUsers     int64
	TotalSellers   int64
	TotalOrders    int64
	DisputedOrders int64
	GrossVolume    float64
	FeeRevenue     float64
}

// ListManagedUsersInput filters the admin user list.
type ListManagedUsersInput struct {
	Role               string
	Banned             *bool
	VerificationStatus string
	Limit              int
	Offset             int
}

// UserPage is one page of users plus the total match count.
type UserPage struct {
	Items []*entity.User
	Total int64
}

// BanUserInput bans a user with a recorded reason.
type BanUserInput struct {
	UserID uuid.UUID
	Reason string
}

// ReviewVerificationInput resolves a pending seller verification.
type ReviewVerificationInput struct {
	UserID  uuid.UUID
	Approve bool
	Reason  string // Required when rejecting.
	Details string
}

// AdminUsecase defines moderation and reporting operations. Every method is
// reachable only through the admin-gated routes.
type AdminUsecase interface {
	Dashboard(ctx context.Context) (*DashboardStats, error)
	ListDisputes(ctx context.Context, limit, offset int) (*OrderPage, error)
	ListUsers(ctx context.Context, input *ListManagedUsersInput) (*UserPage, error)
	BanUser(ctx context.Context, input *BanUserInput) error
	UnbanUser(ctx context.Context, userID uuid.UUID) error
	ListVerifications(ctx context.Context, status string, limit, offset int) (*UserPage, error)
	// ReviewVerification stamps reviewedAt, updates the status, and writes a
	// notification to the seller in the same transaction.
	ReviewVerification(ctx context.Context, input *ReviewVerificationInput) (*entity.Profile, error)
}
