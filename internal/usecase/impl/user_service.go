package impl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"walletmart/internal/domain/entity"
	domainerrors "walletmart/internal/domain/errors"
	"walletmart/internal/domain/repository"
	"walletmart/internal/domain/service"
	"walletmart/internal/usecase"
)

type userService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	merchantRepo repository.MerchantRepository
	logRepo      repository.LogRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	fileStorage  service.FileStorage
	clock        service.Clock
	logger       *slog.Logger
}

// NewUserService creates a new user service instance
func NewUserService(
	txManager repository.TransactionManager,
	userRepo repository.UserRepository,
	merchantRepo repository.MerchantRepository,
	logRepo repository.LogRepository,
	hasher service.PasswordHasher,
	tokenService service.TokenService,
	fileStorage service.FileStorage,
	clock service.Clock,
	logger *slog.Logger,
) usecase.UserUsecase {
	return &userService{
		txManager:    txManager,
		userRepo:     userRepo,
		merchantRepo: merchantRepo,
		logRepo:      logRepo,
		hasher:       hasher,
		tokenService: tokenService,
		fileStorage:  fileStorage,
		clock:        clock,
		logger:       logger,
	}
}

// Register creates a user together with an empty wallet account and returns
// a signed token.
func (s *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthResult, error) {
	if _, err := s.userRepo.FindByEmail(ctx, input.Email); err == nil {
		return nil, domainerrors.ErrUserAlreadyExists
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to check existing email")
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed
	}

	role := input.Role
	if role == "" {
		role = entity.RoleCustomer
	}

	now := s.clock.Now()
	user := &entity.User{
		FullName:     input.FullName,
		Email:        input.Email,
		PasswordHash: hash,
		Role:         role,
		Status:       entity.UserActive,
		Phone:        input.Phone,
		CreatedAt:    now,
	}

	// The user and their wallet are born together.
	err = s.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		if err := f.NewUserRepository().Create(ctx, user); err != nil {
			return err
		}

		account := &entity.Account{
			UserID:    user.ID,
			Type:      entity.AccountUser,
			Balance:   decimal.Zero,
			CreatedAt: now,
		}

		return f.NewAccountRepository().Create(ctx, account)
	})
	if err != nil {
		return nil, err
	}

	token, err := s.tokenService.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate token")
	}

	s.audit(ctx, user.ID, "register", fmt.Sprintf("Registered account for %s", user.Email))

	return &usecase.AuthResult{Token: token, User: user}, nil
}

// Login verifies credentials and returns a signed token.
func (s *userService) Login(ctx context.Context, email, password string) (*usecase.AuthResult, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	if !s.hasher.Check(password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}
	// Status is checked after the password so a probe can't distinguish a
	// blocked account from a wrong password without knowing the password.
	if user.Status == entity.UserBlocked {
		return nil, domainerrors.ErrUserBlocked
	}

	token, err := s.tokenService.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate token")
	}

	return &usecase.AuthResult{Token: token, User: user}, nil
}

// GetProfile retrieves the user's profile.
func (s *userService) GetProfile(ctx context.Context, userID uint) (*entity.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

// UpdateProfile applies the non-nil fields of input.
func (s *userService) UpdateProfile(ctx context.Context, userID uint, input *usecase.UpdateProfileInput) (*entity.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	if input.FullName != nil {
		user.FullName = *input.FullName
	}
	if input.Phone != nil {
		user.Phone = *input.Phone
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to update user")
	}

	return user, nil
}

// UploadProfileImage stores the image and records its URL on the profile.
func (s *userService) UploadProfileImage(ctx context.Context, userID uint, filename string, content io.Reader) (string, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", domainerrors.ErrUserNotFound
		}

		return "", errors.Wrap(err, "failed to find user")
	}

	stored := fmt.Sprintf("user_%d%s", userID, filepath.Ext(filename))
	url, err := s.fileStorage.Save(ctx, "profiles", stored, content)
	if err != nil {
		return "", errors.Wrap(err, "failed to store profile image")
	}

	user.ProfileImage = url
	if err := s.userRepo.Update(ctx, user); err != nil {
		return "", errors.Wrap(err, "failed to update user")
	}

	return url, nil
}

// RegisterMerchant creates a merchant profile for the user and promotes
// their role.
func (s *userService) RegisterMerchant(ctx context.Context, userID uint, input *usecase.MerchantInput) (*entity.Merchant, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	now := s.clock.Now()
	merchant := &entity.Merchant{
		UserID:           user.ID,
		BusinessName:     input.BusinessName,
		BusinessCategory: input.BusinessCategory,
		ContactName:      input.ContactName,
		ContactEmail:     input.ContactEmail,
		ContactPhone:     input.ContactPhone,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	err = s.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		if err := f.NewMerchantRepository().Create(ctx, merchant); err != nil {
			return err
		}

		user.Role = entity.RoleMerchant

		return f.NewUserRepository().Update(ctx, user)
	})
	if err != nil {
		return nil, err
	}

	s.audit(ctx, userID, "register_merchant", fmt.Sprintf("Registered merchant %q", merchant.BusinessName))

	return merchant, nil
}

func (s *userService) audit(ctx context.Context, userID uint, action, description string) {
	entry := &entity.LogEntry{
		UserID:      userID,
		Action:      action,
		Description: description,
		CreatedAt:   s.clock.Now(),
	}
	if err := s.logRepo.Append(ctx, entry); err != nil {
		s.logger.Warn("failed to append audit log",
			slog.String("action", action),
			slog.Any("error", err),
		)
	}
}
