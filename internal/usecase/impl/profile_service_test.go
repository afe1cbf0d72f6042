package impl

import (
	"context"
	"encoding/base64"
	"testing"

	"recipehub/internal/domain/entity"
	domainerrors "recipehub/internal/domain/errors"
	"recipehub/internal/domain/repository"
	mockRepo "recipehub/internal/mocks/repository"
	mockService "recipehub/internal/mocks/service"
	"recipehub/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type profileServiceFixtures struct {
	txManager *mockRepo.MockTransactionManager
	userRepo  *mockRepo.MockUserRepository
	hasher    *mockService.MockPasswordHasher
}

func createTestProfileService(t *testing.T) (usecase.ProfileUsecase, *profileServiceFixtures) {
	f := &profileServiceFixtures{
		txManager: mockRepo.NewMockTransactionManager(t),
		userRepo:  mockRepo.NewMockUserRepository(t),
		hasher:    mockService.NewMockPasswordHasher(t),
	}

	svc := NewProfileService(ProfileServiceParams{
		TxManager: f.txManager,
		UserRepo:  f.userRepo,
		Hasher:    f.hasher,
		Logger:    newDiscardLogger(),
	})

	return svc, f
}

func TestProfileService_GetProfile(t *testing.T) {
	svc, f := createTestProfileService(t)
	ctx := context.Background()

	user := &entity.User{ID: 42, Name: "Alice", Email: "alice@example.com"}
	f.userRepo.EXPECT().FindByID(ctx, 42).Return(user, nil)

	got, err := svc.GetProfile(ctx, 42)

	require.NoError(t, err)
	assert.Equal(t, user, got)
}

func TestProfileService_GetProfile_NotFound(t *testing.T) {
	svc, f := createTestProfileService(t)
	ctx := context.Background()

	f.userRepo.EXPECT().FindByID(ctx, 42).Return(nil, repository.ErrUserNotFound)

	got, err := svc.GetProfile(ctx, 42)

	require.Error(t, err)
	assert.Nil(t, got)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestProfileService_ChangePassword_Success(t *testing.T) {
	svc, f := createTestProfileService(t)
	ctx := context.Background()

	user := &entity.User{ID: 42, PasswordHash: "old-hash", PasswordSalt: "old-salt"}
	salt := []byte("0123456789abcdef")

	f.userRepo.EXPECT().FindByID(ctx, 42).Return(user, nil)
	f.hasher.EXPECT().Verify("OldSecret123", "old-hash", "old-salt").Return(true, nil)
	f.hasher.EXPECT().GenerateSalt().Return(salt, nil)
	f.hasher.EXPECT().Hash("NewSecret123", salt).Return("new-hash-b64")
	f.userRepo.EXPECT().
		UpdateCredential(ctx, 42, "new-hash-b64", base64.StdEncoding.EncodeToString(salt)).
		Return(nil)

	err := svc.ChangePassword(ctx, 42, &usecase.ChangePasswordInput{
		CurrentPassword: "OldSecret123",
		NewPassword:     "NewSecret123",
		ConfirmPassword: "NewSecret123",
	})

	require.NoError(t, err)
}

func TestProfileService_ChangePassword_ValidationOrder(t *testing.T) {
	svc, _ := createTestProfileService(t)
	ctx := context.Background()

	// Confirmation mismatch is reported before anything else, even with a
	// missing current password.
	err := svc.ChangePassword(ctx, 42, &usecase.ChangePasswordInput{
		NewPassword:     "NewSecret123",
		ConfirmPassword: "Different123",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordMismatch))

	// With matching confirmation, the missing current password is next.
	err = svc.ChangePassword(ctx, 42, &usecase.ChangePasswordInput{
		NewPassword:     "NewSecret123",
		ConfirmPassword: "NewSecret123",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrMissingCurrentPassword))
}

func TestProfileService_ChangePassword_WrongCurrentPassword(t *testing.T) {
	svc, f := createTestProfileService(t)
	ctx := context.Background()

	user := &entity.User{ID: 42, PasswordHash: "old-hash", PasswordSalt: "old-salt"}

	f.userRepo.EXPECT().FindByID(ctx, 42).Return(user, nil)
	f.hasher.EXPECT().Verify("wrong", "old-hash", "old-salt").Return(false, nil)

	err := svc.ChangePassword(ctx, 42, &usecase.ChangePasswordInput{
		CurrentPassword: "wrong",
		NewPassword:     "NewSecret123",
		ConfirmPassword: "NewSecret123",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestProfileService_UpdateProfile_Success(t *testing.T) {
	svc, f := createTestProfileService(t)
	ctx := context.Background()

	stored := &entity.User{
		ID:               42,
		Name:             "Alice",
		DietPreferences:  []string{"vegan"},
		FavoriteCuisines: []string{"thai"},
	}

	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindByID(ctx, 42).Return(stored, nil)
			mockUserRepo.EXPECT().UpdateProfile(ctx, mock.AnythingOfType("*entity.User")).Return(nil)

			return fn(mockFactory)
		})

	// Nil FavoriteCuisines keeps the stored list.
	updated, err := svc.UpdateProfile(ctx, 42, &usecase.UpdateProfileInput{
		Name:            "Alice Cooper",
		DietPreferences: []string{"vegetarian", "halal"},
	})

	require.NoError(t, err)
	assert.Equal(t, "Alice Cooper", updated.Name)
	assert.Equal(t, []string{"vegetarian", "halal"}, updated.DietPreferences)
	assert.Equal(t, []string{"thai"}, updated.FavoriteCuisines)
}

func TestProfileService_UpdateProfile_EmptyName(t *testing.T) {
	svc, _ := createTestProfileService(t)

	updated, err := svc.UpdateProfile(context.Background(), 42, &usecase.UpdateProfileInput{
		Name: "   ",
	})

	require.Error(t, err)
	assert.Nil(t, updated)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestProfileService_DeleteAccount_Success(t *testing.T) {
	svc, f := createTestProfileService(t)
	ctx := context.Background()

	user := &entity.User{ID: 42, PasswordHash: "stored-hash", PasswordSalt: "stored-salt"}

	f.userRepo.EXPECT().FindByID(ctx, 42).Return(user, nil)
	f.hasher.EXPECT().Verify("Secret123", "stored-hash", "stored-salt").Return(true, nil)
	f.userRepo.EXPECT().Delete(ctx, 42).Return(nil)

	err := svc.DeleteAccount(ctx, 42, &usecase.DeleteAccountInput{Password: "Secret123"})

	require.NoError(t, err)
}

func TestProfileService_DeleteAccount_WrongPassword(t *testing.T) {
	svc, f := createTestProfileService(t)
	ctx := context.Background()

	user := &entity.User{ID: 42, PasswordHash: "stored-hash", PasswordSalt: "stored-salt"}

	f.userRepo.EXPECT().FindByID(ctx, 42).Return(user, nil)
	f.hasher.EXPECT().Verify("wrong", "stored-hash", "stored-salt").Return(false, nil)

	err := svc.DeleteAccount(ctx, 42, &usecase.DeleteAccountInput{Password: "wrong"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}
