// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"zeemart/config"
	deliverycontext "zeemart/internal/delivery/context"
	"zeemart/internal/domain/entity"
	domainerrors "zeemart/internal/domain/errors"
	"zeemart/internal/domain/repository"
	"zeemart/internal/domain/service"
	"zeemart/internal/usecase"
	"zeemart/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultMinPasswordLength = 8

// authService implements the AuthUsecase interface.
type authService struct {
	txManager         repository.TransactionManager
	userRepo          repository.UserRepository
	tokenRepo         repository.VerificationTokenRepository
	hasher            service.PasswordHasher
	tokenService      service.TokenService
	minPasswordLength int
	logger            *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	TokenRepo    repository.VerificationTokenRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	minLength := defaultMinPasswordLength
	if params.Config != nil && params.Config.Auth != nil && params.Config.Auth.MinPasswordLength > 0 {
		minLength = params.Config.Auth.MinPasswordLength
	}

	return &authService{
		txManager:         params.TxManager,
		userRepo:          params.UserRepo,
		tokenRepo:         params.TokenRepo,
		hasher:            params.Hasher,
		tokenService:      params.TokenService,
		minPasswordLength: minLength,
		logger:            params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates the user, its BUYER profile, and a zeroed wallet in one
// transaction. The email is compared and stored lower-cased.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	srv.log(ctx).Info("Starting registration", slog.String("email", email))

	if len(input.Password) < srv.minPasswordLength {
		return nil, domainerrors.ErrPasswordTooShort
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password")
	}

	var registeredUser *entity.User
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		walletRepo := repoFactory.WalletRepo()

		user := &entity.User{
			Email:        email,
			Name:         input.Name,
			PasswordHash: hashedPassword,
			Phone:        input.Phone,
			Profile: &entity.Profile{
				Role:               entity.RoleBuyer,
				VerificationStatus: entity.VerificationPending,
			},
		}

		if err := userRepo.Create(ctx, user); err != nil {
			if errors.Is(err, repository.ErrDuplicateEmail) {
				return domainerrors.ErrEmailTaken
			}

			return errors.Wrap(err, "failed to create user")
		}

		wallet := &entity.Wallet{UserID: user.ID}
		if err := walletRepo.Create(ctx, wallet); err != nil {
			return errors.Wrap(err, "failed to create wallet")
		}
		user.Wallet = wallet

		registeredUser = user

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("email", email), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", registeredUser.ID))

	return &usecase.RegisterOutput{User: registeredUser}, nil
}

// Login verifies the credentials and issues an access token. Banned
// profiles are refused even with a correct password.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	if err := srv.hasher.Compare(user.PasswordHash, input.Password); err != nil {
		srv.log(ctx).Warn("Login with wrong password", slog.String("email", email))

		return nil, domainerrors.ErrInvalidCredentials
	}

	if user.Profile != nil && user.Profile.IsBanned {
		srv.log(ctx).Warn("Banned account attempted login", slog.Any("userID", user.ID))

		return nil, domainerrors.ErrUserBanned
	}

	role := entity.RoleBuyer
	if user.Profile != nil {
		role = user.Profile.Role
	}

	accessToken, err := srv.tokenService.GenerateAccessToken(user.ID, user.Email, role)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	srv.log(ctx).Info("Login succeeded", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{
		AccessToken: accessToken,
		User:        user,
	}, nil
}

// RequestOTP issues a 6-digit code with a 10-minute expiry, replacing any
// earlier code for the identifier. The code is logged for development;
// delivery (mail, SMS) is a separate concern and it is never returned.
func (srv *authService) RequestOTP(ctx context.Context, input *usecase.RequestOTPInput) error {
	identifier := strings.ToLower(strings.TrimSpace(input.Identifier))

	code, err := util.NewOTP()
	if err != nil {
		return errors.Wrap(err, "failed to generate otp")
	}

	token := &entity.VerificationToken{
		Identifier: identifier,
		Token:      code,
		ExpiresAt:  time.Now().Add(entity.OTPTTL),
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.VerificationTokenRepo().Replace(ctx, token)
	})
	if err != nil {
		return errors.Wrap(err, "failed to store verification token")
	}

	srv.log(ctx).Info("OTP issued",
		slog.String("identifier", identifier),
		slog.String("code", code),
		slog.Time("expiresAt", token.ExpiresAt),
	)

	return nil
}

// VerifyOTP checks the submitted code against the stored token. Expired or
// mismatched codes fail without mutating anything; success consumes the
// token and stamps emailVerifiedAt when the identifier is an account email.
func (srv *authService) VerifyOTP(ctx context.Context, input *usecase.VerifyOTPInput) error {
	identifier := strings.ToLower(strings.TrimSpace(input.Identifier))

	token, err := srv.tokenRepo.FindByIdentifier(ctx, identifier)
	if err != nil {
		if errors.Is(err, repository.ErrVerificationTokenNotFound) {
			return domainerrors.ErrOTPNotFound
		}

		return errors.Wrap(err, "failed to find verification token")
	}

	if token.Expired(time.Now()) {
		return domainerrors.ErrOTPExpired
	}
	if token.Token != input.Token {
		return domainerrors.ErrOTPMismatch
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.VerificationTokenRepo().DeleteByIdentifier(ctx, identifier); err != nil {
			return errors.Wrap(err, "failed to consume verification token")
		}

		user, err := repoFactory.UserRepo().FindByEmail(ctx, identifier)
		if errors.Is(err, repository.ErrUserNotFound) {
			// Phone identifiers have no account email to stamp.
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "failed to find user for verification")
		}

		now := time.Now()
		user.EmailVerifiedAt = &now

		return errors.Wrap(repoFactory.UserRepo().Update(ctx, user), "failed to stamp email verification")
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("OTP verified", slog.String("identifier", identifier))

	return nil
}

// GetRole returns the caller's current marketplace role.
func (srv *authService) GetRole(ctx context.Context, userID uuid.UUID) (entity.Role, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", domainerrors.ErrUserNotFound
		}

		return "", errors.Wrap(err, "failed to find user")
	}

	if user.Profile == nil {
		return entity.RoleBuyer, nil
	}

	return user.Profile.Role, nil
}

// SelectRole sets the caller's role. Only BUYER and SELLER are
// self-assignable; everything else is rejected.
func (srv *authService) SelectRole(ctx context.Context, input *usecase.SelectRoleInput) (entity.Role, error) {
	role := entity.Role(strings.ToUpper(strings.TrimSpace(input.Role)))
	if !role.IsAssignable() {
		return "", domainerrors.ErrInvalidRole
	}

	user, err := srv.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", domainerrors.ErrUserNotFound
		}

		return "", errors.Wrap(err, "failed to find user")
	}
	if user.Profile == nil {
		return "", domainerrors.ErrUserNotFound.WrapMessage("profile missing for user")
	}

	user.Profile.Role = role
	if err := srv.userRepo.UpdateProfile(ctx, user.Profile); err != nil {
		return "", errors.Wrap(err, "failed to update role")
	}

	srv.log(ctx).Info("Role selected", slog.Any("userID", input.UserID), slog.String("role", string(role)))

	return role, nil
}
