package impl

import (
	"context"
	"encoding/base64"
	"testing"
	"time"

	"recipehub/internal/domain/entity"
	domainerrors "recipehub/internal/domain/errors"
	"recipehub/internal/domain/repository"
	"recipehub/internal/domain/service"
	mockRepo "recipehub/internal/mocks/repository"
	mockService "recipehub/internal/mocks/service"
	"recipehub/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type passwordServiceFixtures struct {
	txManager *mockRepo.MockTransactionManager
	userRepo  *mockRepo.MockUserRepository
	tokenRepo *mockRepo.MockTokenRepository
	hasher    *mockService.MockPasswordHasher
	signer    *mockService.MockTokenSigner
	mailer    *mockService.MockMailer
}

func createTestPasswordService(t *testing.T) (usecase.PasswordResetUsecase, *passwordServiceFixtures) {
	f := &passwordServiceFixtures{
		txManager: mockRepo.NewMockTransactionManager(t),
		userRepo:  mockRepo.NewMockUserRepository(t),
		tokenRepo: mockRepo.NewMockTokenRepository(t),
		hasher:    mockService.NewMockPasswordHasher(t),
		signer:    mockService.NewMockTokenSigner(t),
		mailer:    mockService.NewMockMailer(t),
	}

	svc := NewPasswordService(PasswordServiceParams{
		TxManager: f.txManager,
		UserRepo:  f.userRepo,
		TokenRepo: f.tokenRepo,
		Hasher:    f.hasher,
		Signer:    f.signer,
		Mailer:    f.mailer,
		Config:    newTestConfig(),
		Logger:    newDiscardLogger(),
	})

	return svc, f
}

func TestPasswordService_ForgotPassword_Success(t *testing.T) {
	svc, f := createTestPasswordService(t)
	ctx := context.Background()

	user := &entity.User{ID: 42, Name: "Alice", Email: "alice@example.com"}
	expiresAt := time.Now().Add(30 * time.Minute)

	f.userRepo.EXPECT().FindByEmail(ctx, "alice@example.com").Return(user, nil)
	f.signer.EXPECT().Issue(42, entity.TokenKindPasswordReset, 30*time.Minute).
		Return(&service.SignedToken{Value: "reset+token", ExpiresAt: expiresAt}, nil)
	f.tokenRepo.EXPECT().Store(ctx, mock.AnythingOfType("*entity.IssuedToken")).
		Run(func(_ context.Context, token *entity.IssuedToken) {
			assert.Equal(t, entity.TokenKindPasswordReset, token.Kind)
			assert.Equal(t, "reset+token", token.Value)
		}).
		Return(nil)
	f.mailer.EXPECT().SendTemplate(ctx, mock.AnythingOfType("*service.TemplateMessage")).
		Run(func(_ context.Context, msg *service.TemplateMessage) {
			assert.Equal(t, "Alice", msg.Name)
			assert.Equal(t, "alice@example.com", msg.Email)
			assert.Equal(t, "Password Reset Request", msg.Subject)
			assert.Equal(t, "PasswordReset", msg.TemplateType)
			// The token value is URL-escaped inside the link.
			assert.Equal(t,
				"https://recipehub.example.com/reset-password?token=reset%2Btoken",
				msg.TemplateData["ResetLink"],
			)
		}).
		Return(nil)

	err := svc.ForgotPassword(ctx, &usecase.ForgotPasswordInput{Email: "alice@example.com"})

	require.NoError(t, err)
}

func TestPasswordService_ForgotPassword_UnknownEmail(t *testing.T) {
	svc, f := createTestPasswordService(t)
	ctx := context.Background()

	f.userRepo.EXPECT().FindByEmail(ctx, "nobody@example.com").Return(nil, repository.ErrUserNotFound)

	err := svc.ForgotPassword(ctx, &usecase.ForgotPasswordInput{Email: "nobody@example.com"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestPasswordService_ForgotPassword_MailerFailure(t *testing.T) {
	svc, f := createTestPasswordService(t)
	ctx := context.Background()

	user := &entity.User{ID: 42, Name: "Alice", Email: "alice@example.com"}

	f.userRepo.EXPECT().FindByEmail(ctx, "alice@example.com").Return(user, nil)
	f.signer.EXPECT().Issue(42, entity.TokenKindPasswordReset, 30*time.Minute).
		Return(&service.SignedToken{Value: "reset-token", ExpiresAt: time.Now().Add(30 * time.Minute)}, nil)
	f.tokenRepo.EXPECT().Store(ctx, mock.AnythingOfType("*entity.IssuedToken")).Return(nil)
	f.mailer.EXPECT().SendTemplate(ctx, mock.AnythingOfType("*service.TemplateMessage")).
		Return(domainerrors.ErrNotificationFailed)

	err := svc.ForgotPassword(ctx, &usecase.ForgotPasswordInput{Email: "alice@example.com"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotificationFailed))
}

func TestPasswordService_GenerateResetLink(t *testing.T) {
	svc, f := createTestPasswordService(t)
	ctx := context.Background()

	user := &entity.User{ID: 42, Name: "Alice", Email: "alice@example.com"}

	f.userRepo.EXPECT().FindByID(ctx, 42).Return(user, nil)
	f.signer.EXPECT().Issue(42, entity.TokenKindPasswordReset, 30*time.Minute).
		Return(&service.SignedToken{Value: "reset-token", ExpiresAt: time.Now().Add(30 * time.Minute)}, nil)
	f.tokenRepo.EXPECT().Store(ctx, mock.AnythingOfType("*entity.IssuedToken")).Return(nil)

	link, err := svc.GenerateResetLink(ctx, 42)

	require.NoError(t, err)
	assert.Equal(t, "https://recipehub.example.com/reset-password?token=reset-token", link)
}

func TestPasswordService_GenerateResetLink_UnknownUser(t *testing.T) {
	svc, f := createTestPasswordService(t)
	ctx := context.Background()

	f.userRepo.EXPECT().FindByID(ctx, 99).Return(nil, repository.ErrUserNotFound)

	link, err := svc.GenerateResetLink(ctx, 99)

	require.Error(t, err)
	assert.Empty(t, link)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestPasswordService_ResetPassword_Success(t *testing.T) {
	svc, f := createTestPasswordService(t)
	ctx := context.Background()

	salt := []byte("0123456789abcdef")

	f.signer.EXPECT().Validate("reset-token").
		Return(&service.TokenClaims{UserID: 42, Kind: entity.TokenKindPasswordReset, ExpiresAt: time.Now().Add(time.Minute)}, nil)
	f.tokenRepo.EXPECT().IsValid(ctx, 42, "reset-token").Return(true, nil)
	f.hasher.EXPECT().GenerateSalt().Return(salt, nil)
	f.hasher.EXPECT().Hash("NewSecret123", salt).Return("new-hash-b64")

	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockTokenRepo := mockRepo.NewMockTokenRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().TokenRepo().Return(mockTokenRepo)

			mockTokenRepo.EXPECT().Invalidate(ctx, "reset-token").Return(true, nil)
			mockUserRepo.EXPECT().
				UpdateCredential(ctx, 42, "new-hash-b64", base64.StdEncoding.EncodeToString(salt)).
				Return(nil)

			return fn(mockFactory)
		})

	err := svc.ResetPassword(ctx, &usecase.ResetPasswordInput{
		Token:           "reset-token",
		NewPassword:     "NewSecret123",
		ConfirmPassword: "NewSecret123",
	})

	require.NoError(t, err)
}

func TestPasswordService_ResetPassword_ConfirmationMismatch(t *testing.T) {
	svc, _ := createTestPasswordService(t)

	err := svc.ResetPassword(context.Background(), &usecase.ResetPasswordInput{
		Token:           "reset-token",
		NewPassword:     "NewSecret123",
		ConfirmPassword: "Different123",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordMismatch))
}

func TestPasswordService_ResetPassword_EmptyNewPassword(t *testing.T) {
	svc, _ := createTestPasswordService(t)

	err := svc.ResetPassword(context.Background(), &usecase.ResetPasswordInput{
		Token:           "reset-token",
		NewPassword:     "",
		ConfirmPassword: "",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestPasswordService_ResetPassword_WrongTokenKind(t *testing.T) {
	svc, f := createTestPasswordService(t)
	ctx := context.Background()

	// An access token must not be usable as a reset token.
	f.signer.EXPECT().Validate("access-token").
		Return(&service.TokenClaims{UserID: 42, Kind: entity.TokenKindAccess, ExpiresAt: time.Now().Add(time.Minute)}, nil)

	err := svc.ResetPassword(ctx, &usecase.ResetPasswordInput{
		Token:           "access-token",
		NewPassword:     "NewSecret123",
		ConfirmPassword: "NewSecret123",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
}

func TestPasswordService_ResetPassword_ConsumedToken(t *testing.T) {
	svc, f := createTestPasswordService(t)
	ctx := context.Background()

	f.signer.EXPECT().Validate("reset-token").
		Return(&service.TokenClaims{UserID: 42, Kind: entity.TokenKindPasswordReset, ExpiresAt: time.Now().Add(time.Minute)}, nil)
	f.tokenRepo.EXPECT().IsValid(ctx, 42, "reset-token").Return(false, nil)

	err := svc.ResetPassword(ctx, &usecase.ResetPasswordInput{
		Token:           "reset-token",
		NewPassword:     "NewSecret123",
		ConfirmPassword: "NewSecret123",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
}

func TestPasswordService_ResetPassword_ConcurrentConsume(t *testing.T) {
	svc, f := createTestPasswordService(t)
	ctx := context.Background()

	salt := []byte("0123456789abcdef")

	f.signer.EXPECT().Validate("reset-token").
		Return(&service.TokenClaims{UserID: 42, Kind: entity.TokenKindPasswordReset, ExpiresAt: time.Now().Add(time.Minute)}, nil)
	f.tokenRepo.EXPECT().IsValid(ctx, 42, "reset-token").Return(true, nil)
	f.hasher.EXPECT().GenerateSalt().Return(salt, nil)
	f.hasher.EXPECT().Hash("NewSecret123", salt).Return("new-hash-b64")

	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockTokenRepo := mockRepo.NewMockTokenRepository(t)

			mockFactory.EXPECT().TokenRepo().Return(mockTokenRepo)
			mockFactory.EXPECT().UserRepo().Return(mockRepo.NewMockUserRepository(t))

			// Another request consumed the token between IsValid and the transaction.
			mockTokenRepo.EXPECT().Invalidate(ctx, "reset-token").Return(false, nil)

			return fn(mockFactory)
		})

	err := svc.ResetPassword(ctx, &usecase.ResetPasswordInput{
		Token:           "reset-token",
		NewPassword:     "NewSecret123",
		ConfirmPassword: "NewSecret123",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
}
