// Package repository defines the persistence contracts the domain depends
// on. Concrete implementations live under internal/infra/persistence.
package repository

import (
	"context"

	"zeemart/internal/domain/entity"
	"zeemart/internal/errors"

	"github.com/google/uuid"
)

// Sentinel errors returned by repository implementations so the use case
// layer can react without knowing the underlying driver.
var (
	ErrUserNotFound    = errors.New("user not found")
	ErrDuplicateEmail  = errors.New("email already exists")
	ErrProfileNotFound = errors.New("profile not found")
)

// ListUsersOptions is an explicit filter structure mapped to a query by the
// implementation; optional fields are pointers so "unset" is representable.
type ListUsersOptions struct {
	Role               *entity.Role
	Banned             *bool
	VerificationStatus *entity.VerificationStatus
	Limit              int
	Offset             int
}

// UserRepository persists users together with their profile extension.
type UserRepository interface {
	// Create persists a new user with its profile and returns generated fields on the entity.
	Create(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	// FindByEmail matches case-insensitively; implementations compare the lower-cased email.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	UpdateProfile(ctx context.Context, profile *entity.Profile) error
	List(ctx context.Context, opts ListUsersOptions) ([]*entity.User, int64, error)
	Count(ctx context.Context) (int64, error)
	CountByRole(ctx context.Context, role entity.Role) (int64, error)
}
