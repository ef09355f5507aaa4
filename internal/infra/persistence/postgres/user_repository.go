package postgres

import (
	"context"
	"encoding/json"
	"strings"

	"zeemart/internal/domain/entity"
	domainerrors "zeemart/internal/domain/errors"
	"zeemart/internal/domain/repository"
	"zeemart/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the repository.UserRepository interface.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		db: db,
	}
}

// Create persists a new user together with its profile row. The email is
// stored lower-cased so the unique index doubles as a case-insensitive guard.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)
	userM.Email = strings.ToLower(userM.Email)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateEmail
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	// Update the entity with generated values
	user.ID = userM.ID
	user.Email = userM.Email
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt
	if user.Profile != nil {
		user.Profile.UserID = userM.ID
	}

	return nil
}

// FindByID retrieves a user with its profile by primary key.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Preload("Profile").
		Where("id = ?", id).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by ID")
	}

	return toUserDomain(&userM), nil
}

// FindByEmail retrieves a user by email, matching case-insensitively.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Preload("Profile").
		Where("email = ?", strings.ToLower(email)).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

// Update persists changes to the user row. The profile is updated separately
// through UpdateProfile.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)
	userM.Email = strings.ToLower(userM.Email)
	userM.Profile = nil

	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", user.ID).
		Updates(map[string]interface{}{
			"email":             userM.Email,
			"name":              userM.Name,
			"password_hash":     userM.PasswordHash,
			"phone":             userM.Phone,
			"image":             userM.Image,
			"email_verified_at": userM.EmailVerifiedAt,
		})

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicateEmail
		}

		return errors.Wrap(result.Error, "failed to update user")
	}

	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// UpdateProfile persists changes to the profile extension row.
func (repo *userRepository) UpdateProfile(ctx context.Context, profile *entity.Profile) error {
	profileM := fromProfileDomain(profile)

	result := repo.db.WithContext(ctx).
		Model(&model.ProfileModel{}).
		Where("user_id = ?", profile.UserID).
		Updates(map[string]interface{}{
			"role":                profileM.Role,
			"verification_status": profileM.VerificationStatus,
			"verification_notes":  profileM.VerificationNotes,
			"rejection_reason":    profileM.RejectionReason,
			"submitted_at":        profileM.SubmittedAt,
			"reviewed_at":         profileM.ReviewedAt,
			"is_banned":           profileM.IsBanned,
			"banned_reason":       profileM.BannedReason,
			"business_name":       profileM.BusinessName,
			"business_address":    profileM.BusinessAddress,
			"legal_name":          profileM.LegalName,
			"tax_id":              profileM.TaxID,
			"document_keys":       profileM.DocumentKeys,
			"device_token":        profileM.DeviceToken,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update profile")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	return nil
}

// List retrieves a page of users matching the filter, newest first, plus the
// total count of matches.
func (repo *userRepository) List(ctx context.Context, opts repository.ListUsersOptions) ([]*entity.User, int64, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Joins("JOIN profiles ON profiles.user_id = users.id")

	if opts.Role != nil {
		query = query.Where("profiles.role = ?", string(*opts.Role))
	}
	if opts.Banned != nil {
		query = query.Where("profiles.is_banned = ?", *opts.Banned)
	}
	if opts.VerificationStatus != nil {
		query = query.Where("profiles.verification_status = ?", string(*opts.VerificationStatus))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count users")
	}

	query = query.Preload("Profile").Order("users.created_at DESC")
	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.Offset > 0 {
		query = query.Offset(opts.Offset)
	}

	var userModels []*model.UserModel
	if err := query.Find(&userModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list users")
	}

	users := make([]*entity.User, 0, len(userModels))
	for _, userM := range userModels {
		users = append(users, toUserDomain(userM))
	}

	return users, total, nil
}

// Count returns the total number of registered users.
func (repo *userRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Count(&total).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count users")
	}

	return total, nil
}

// CountByRole returns the number of users holding the given role.
func (repo *userRepository) CountByRole(ctx context.Context, role entity.Role) (int64, error) {
	var total int64
	if err := repo.db.WithContext(ctx).
		Model(&model.ProfileModel{}).
		Where("role = ?", string(role)).
		Count(&total).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count users by role")
	}

	return total, nil
}

// --- Mapper Functions ---

func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:              data.ID,
		Email:           data.Email,
		Name:            data.Name,
		PasswordHash:    data.PasswordHash,
		Phone:           data.Phone,
		Image:           data.Image,
		EmailVerifiedAt: data.EmailVerifiedAt,
		Profile:         toProfileDomain(data.Profile),
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:              data.ID,
		Email:           data.Email,
		Name:            data.Name,
		PasswordHash:    data.PasswordHash,
		Phone:           data.Phone,
		Image:           data.Image,
		EmailVerifiedAt: data.EmailVerifiedAt,
		Profile:         fromProfileDomain(data.Profile),
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func toProfileDomain(data *model.ProfileModel) *entity.Profile {
	if data == nil {
		return nil
	}

	var documentKeys []string
	if data.DocumentKeys != "" {
		// A corrupt column should not make the whole profile unreadable.
		_ = json.Unmarshal([]byte(data.DocumentKeys), &documentKeys)
	}

	return &entity.Profile{
		UserID:             data.UserID,
		Role:               entity.Role(data.Role),
		VerificationStatus: entity.VerificationStatus(data.VerificationStatus),
		VerificationNotes:  data.VerificationNotes,
		RejectionReason:    data.RejectionReason,
		SubmittedAt:        data.SubmittedAt,
		ReviewedAt:         data.ReviewedAt,
		IsBanned:           data.IsBanned,
		BannedReason:       data.BannedReason,
		BusinessName:       data.BusinessName,
		BusinessAddress:    data.BusinessAddress,
		LegalName:          data.LegalName,
		TaxID:              data.TaxID,
		DocumentKeys:       documentKeys,
		DeviceToken:        data.DeviceToken,
		UpdatedAt:          data.UpdatedAt,
	}
}

func fromProfileDomain(data *entity.Profile) *model.ProfileModel {
	if data == nil {
		return nil
	}

	documentKeys := ""
	if len(data.DocumentKeys) > 0 {
		if encoded, err := json.Marshal(data.DocumentKeys); err == nil {
			documentKeys = string(encoded)
		}
	}

	return &model.ProfileModel{
		UserID:             data.UserID,
		Role:               string(data.Role),
		VerificationStatus: string(data.VerificationStatus),
		VerificationNotes:  data.VerificationNotes,
		RejectionReason:    data.RejectionReason,
		SubmittedAt:        data.SubmittedAt,
		ReviewedAt:         data.ReviewedAt,
		IsBanned:           data.IsBanned,
		BannedReason:       data.BannedReason,
		BusinessName:       data.BusinessName,
		BusinessAddress:    data.BusinessAddress,
		LegalName:          data.LegalName,
		TaxID:              data.TaxID,
		DocumentKeys:       documentKeys,
		DeviceToken:        data.DeviceToken,
		UpdatedAt:          data.UpdatedAt,
	}
}
