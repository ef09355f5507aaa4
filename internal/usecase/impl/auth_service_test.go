package impl

import (
	"context"
	"testing"
	"time"

	"zeemart/internal/domain/entity"
	domainerrors "zeemart/internal/domain/errors"
	"zeemart/internal/domain/repository"
	mockRepo "zeemart/internal/mocks/repository"
	mockSvc "zeemart/internal/mocks/service"
	"zeemart/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service      usecase.AuthUsecase
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	tokenRepo    *mockRepo.MockVerificationTokenRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	tokenRepo := mockRepo.NewMockVerificationTokenRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	service := NewAuthService(AuthServiceParams{
		TxManager:    txManager,
		UserRepo:     userRepo,
		TokenRepo:    tokenRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Config:       newAuthTestConfig(8),
		Logger:       newDiscardLogger(),
	})

	return authServiceFixtures{
		service:      service,
		txManager:    txManager,
		userRepo:     userRepo,
		tokenRepo:    tokenRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:     "Test Buyer",
		Email:    "Buyer@Example.com",
		Password: "Password123!",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockWalletRepo := mockRepo.NewMockWalletRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().WalletRepo().Return(mockWalletRepo)

			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					user.ID = uuid.New()
				}).
				Return(nil)

			mockWalletRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Wallet")).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "buyer@example.com", output.User.Email)
	assert.Equal(t, "hashed_password", output.User.PasswordHash)
	require.NotNil(t, output.User.Profile)
	assert.Equal(t, entity.RoleBuyer, output.User.Profile.Role)
	require.NotNil(t, output.User.Wallet)
	assert.Zero(t, output.User.Wallet.Balance)
	assert.Zero(t, output.User.Wallet.PendingBalance)
}

func TestAuthService_Register_PasswordTooShort(t *testing.T) {
	fx := createTestAuthService(t)

	output, err := fx.service.Register(context.Background(), &usecase.RegisterInput{
		Name:     "Test Buyer",
		Email:    "buyer@example.com",
		Password: "short",
	})

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrPasswordTooShort)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:     "Test Buyer",
		Email:    "taken@example.com",
		Password: "Password123!",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockWalletRepo := mockRepo.NewMockWalletRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().WalletRepo().Return(mockWalletRepo)

			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Return(repository.ErrDuplicateEmail)

			return fn(mockFactory)
		})

	output, err := fx.service.Register(ctx, input)

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrEmailTaken)
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{
		ID:           userID,
		Email:        "buyer@example.com",
		PasswordHash: "hashed_password",
		Profile:      &entity.Profile{UserID: userID, Role: entity.RoleSeller},
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, "buyer@example.com").Return(user, nil)
	fx.hasher.EXPECT().Compare("hashed_password", "Password123!").Return(nil)
	fx.tokenService.EXPECT().
		GenerateAccessToken(userID, "buyer@example.com", entity.RoleSeller).
		Return("signed.jwt.token", nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "Buyer@Example.com",
		Password: "Password123!",
	})

	require.NoError(t, err)
	assert.Equal(t, "signed.jwt.token", output.AccessToken)
	assert.Equal(t, userID, output.User.ID)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	fx.userRepo.EXPECT().
		FindByEmail(ctx, "nobody@example.com").
		Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "nobody@example.com",
		Password: "Password123!",
	})

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:           uuid.New(),
		Email:        "buyer@example.com",
		PasswordHash: "hashed_password",
		Profile:      &entity.Profile{Role: entity.RoleBuyer},
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, "buyer@example.com").Return(user, nil)
	fx.hasher.EXPECT().Compare("hashed_password", "wrong").Return(assert.AnError)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "buyer@example.com",
		Password: "wrong",
	})

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_BannedUser(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:           uuid.New(),
		Email:        "banned@example.com",
		PasswordHash: "hashed_password",
		Profile: &entity.Profile{
			Role:         entity.RoleBuyer,
			IsBanned:     true,
			BannedReason: "fraud",
		},
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, "banned@example.com").Return(user, nil)
	fx.hasher.EXPECT().Compare("hashed_password", "Password123!").Return(nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "banned@example.com",
		Password: "Password123!",
	})

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrUserBanned)
}

func TestAuthService_RequestOTP_ReplacesExistingToken(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	var stored *entity.VerificationToken

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockTokenRepo := mockRepo.NewMockVerificationTokenRepository(t)

			mockFactory.EXPECT().VerificationTokenRepo().Return(mockTokenRepo)

			mockTokenRepo.EXPECT().
				Replace(ctx, mock.AnythingOfType("*entity.VerificationToken")).
				Run(func(ctx context.Context, token *entity.VerificationToken) {
					stored = token
				}).
				Return(nil)

			return fn(mockFactory)
		})

	err := fx.service.RequestOTP(ctx, &usecase.RequestOTPInput{Identifier: "Buyer@Example.com"})

	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "buyer@example.com", stored.Identifier)
	assert.Len(t, stored.Token, 6)
	assert.WithinDuration(t, time.Now().Add(entity.OTPTTL), stored.ExpiresAt, 5*time.Second)
}

func TestAuthService_VerifyOTP_NotFound(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	fx.tokenRepo.EXPECT().
		FindByIdentifier(ctx, "buyer@example.com").
		Return(nil, repository.ErrVerificationTokenNotFound)

	err := fx.service.VerifyOTP(ctx, &usecase.VerifyOTPInput{
		Identifier: "buyer@example.com",
		Token:      "123456",
	})

	assert.ErrorIs(t, err, domainerrors.ErrOTPNotFound)
}

func TestAuthService_VerifyOTP_Expired(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	fx.tokenRepo.EXPECT().
		FindByIdentifier(ctx, "buyer@example.com").
		Return(&entity.VerificationToken{
			Identifier: "buyer@example.com",
			Token:      "123456",
			ExpiresAt:  time.Now().Add(-time.Minute),
		}, nil)

	err := fx.service.VerifyOTP(ctx, &usecase.VerifyOTPInput{
		Identifier: "buyer@example.com",
		Token:      "123456",
	})

	assert.ErrorIs(t, err, domainerrors.ErrOTPExpired)
}

func TestAuthService_VerifyOTP_Mismatch(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	fx.tokenRepo.EXPECT().
		FindByIdentifier(ctx, "buyer@example.com").
		Return(&entity.VerificationToken{
			Identifier: "buyer@example.com",
			Token:      "123456",
			ExpiresAt:  time.Now().Add(5 * time.Minute),
		}, nil)

	err := fx.service.VerifyOTP(ctx, &usecase.VerifyOTPInput{
		Identifier: "buyer@example.com",
		Token:      "654321",
	})

	assert.ErrorIs(t, err, domainerrors.ErrOTPMismatch)
}

func TestAuthService_VerifyOTP_Success_StampsEmailVerification(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.tokenRepo.EXPECT().
		FindByIdentifier(ctx, "buyer@example.com").
		Return(&entity.VerificationToken{
			Identifier: "buyer@example.com",
			Token:      "123456",
			ExpiresAt:  time.Now().Add(5 * time.Minute),
		}, nil)

	var updated *entity.User
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockTokenRepo := mockRepo.NewMockVerificationTokenRepository(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().VerificationTokenRepo().Return(mockTokenRepo)
			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockTokenRepo.EXPECT().DeleteByIdentifier(ctx, "buyer@example.com").Return(nil)
			mockUserRepo.EXPECT().
				FindByEmail(ctx, "buyer@example.com").
				Return(&entity.User{ID: userID, Email: "buyer@example.com"}, nil)
			mockUserRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					updated = user
				}).
				Return(nil)

			return fn(mockFactory)
		})

	err := fx.service.VerifyOTP(ctx, &usecase.VerifyOTPInput{
		Identifier: "buyer@example.com",
		Token:      "123456",
	})

	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.NotNil(t, updated.EmailVerifiedAt)
}

func TestAuthService_SelectRole_AdminNotAssignable(t *testing.T) {
	fx := createTestAuthService(t)

	role, err := fx.service.SelectRole(context.Background(), &usecase.SelectRoleInput{
		UserID: uuid.New(),
		Role:   "ADMIN",
	})

	assert.Empty(t, role)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidRole)
}

func TestAuthService_SelectRole_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{
		ID:      userID,
		Profile: &entity.Profile{UserID: userID, Role: entity.RoleBuyer},
	}

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	fx.userRepo.EXPECT().
		UpdateProfile(ctx, mock.AnythingOfType("*entity.Profile")).
		Run(func(ctx context.Context, profile *entity.Profile) {
			assert.Equal(t, entity.RoleSeller, profile.Role)
		}).
		Return(nil)

	role, err := fx.service.SelectRole(ctx, &usecase.SelectRoleInput{
		UserID: userID,
		Role:   "seller",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.RoleSeller, role)
}
