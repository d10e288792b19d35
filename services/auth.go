package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/LovationAdmin/travel-api/models"
	"github.com/LovationAdmin/travel-api/repository"
	"github.com/LovationAdmin/travel-api/utils"
)

type AuthService struct {
	users         repository.UserRepository
	tokens        *utils.TokenIssuer
	encryptionKey string
}

// NewAuthService builds the login and account service. encryptionKey seals
// TOTP secrets; when empty, 2FA setup is unavailable.
func NewAuthService(users repository.UserRepository, tokens *utils.TokenIssuer, encryptionKey string) *AuthService {
	return &AuthService{users: users, tokens: tokens, encryptionKey: encryptionKey}
}

// Login checks the password and, for 2FA accounts, the TOTP code.
func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	user, err := s.users.GetByUsername(ctx, req.Username)
	if errors.Is(err, repository.ErrNotFound) {
		utils.LogAuthAction("login", req.Username, false)
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("load user: %w", err)
	}

	if !utils.CheckPassword(user.PasswordHash, req.Password) {
		utils.LogAuthAction("login", req.Username, false)
		return nil, ErrInvalidCredentials
	}

	if user.TOTPEnabled {
		if req.TOTPCode == "" {
			return nil, ErrTOTPRequired
		}
		ok, err := s.checkTOTP(user, req.TOTPCode)
		if err != nil {
			return nil, err
		}
		if !ok {
			utils.LogAuthAction("login-2fa", req.Username, false)
			return nil, ErrInvalidTOTP
		}
	}

	token, err := s.tokens.Generate(user.ID, user.Username, user.Role)
	if err != nil {
		return nil, err
	}

	utils.LogAuthAction("login", user.Username, true)
	return &models.AuthResponse{Token: token, User: *user}, nil
}

func (s *AuthService) CurrentUser(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, notFound("User")
	}
	if err != nil {
		return nil, fmt.Errorf("load user %d: %w", id, err)
	}
	return user, nil
}

func (s *AuthService) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	exists, err := s.users.ExistsByUsernameOrEmail(ctx, req.Username, req.Email)
	if err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}
	if exists {
		return nil, ErrUserExists
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         req.Role,
	}
	if user.Role == "" {
		user.Role = models.RoleUser
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrUserExists
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	utils.LogAuthAction("register", user.Username, true)
	utils.SafeDebug("user %d registered with email %s", user.ID, utils.MaskEmail(user.Email))
	return user, nil
}

func (s *AuthService) ChangePassword(ctx context.Context, userID uint, req models.ChangePasswordRequest) error {
	user, err := s.CurrentUser(ctx, userID)
	if err != nil {
		return err
	}

	if !utils.CheckPassword(user.PasswordHash, req.CurrentPassword) {
		return invalid("Current password is incorrect")
	}

	hash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	user.PasswordHash = hash

	if err := s.users.Update(ctx, user); err != nil {
		return fmt.Errorf("update user %d: %w", userID, err)
	}

	utils.LogAuthAction("password-change", user.Username, true)
	return nil
}

// SetupTOTP stores a fresh encrypted secret. 2FA is only enabled once a code
// generated from it has been verified.
func (s *AuthService) SetupTOTP(ctx context.Context, userID uint) (*models.TOTPSetupResponse, error) {
	if s.encryptionKey == "" {
		return nil, fmt.Errorf("DATA_ENCRYPTION_KEY: %w", ErrNotConfigured)
	}

	user, err := s.CurrentUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.TOTPEnabled {
		return nil, invalid("2FA is already enabled")
	}

	secret, url, err := utils.GenerateTOTPSecret(user.Username)
	if err != nil {
		return nil, fmt.Errorf("generate totp secret: %w", err)
	}

	sealed, err := utils.Encrypt(s.encryptionKey, []byte(secret))
	if err != nil {
		return nil, fmt.Errorf("encrypt totp secret: %w", err)
	}
	user.TOTPSecret = sealed

	if err := s.users.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user %d: %w", userID, err)
	}

	return &models.TOTPSetupResponse{Secret: secret, OTPAuthURL: url}, nil
}

func (s *AuthService) VerifyTOTP(ctx context.Context, userID uint, code string) error {
	user, err := s.CurrentUser(ctx, userID)
	if err != nil {
		return err
	}
	if user.TOTPSecret == "" {
		return invalid("2FA setup has not been started")
	}

	ok, err := s.checkTOTP(user, code)
	if err != nil {
		return err
	}
	if !ok {
		return ErrInvalidTOTP
	}

	user.TOTPEnabled = true
	if err := s.users.Update(ctx, user); err != nil {
		return fmt.Errorf("update user %d: %w", userID, err)
	}

	utils.LogAuthAction("2fa-enable", user.Username, true)
	return nil
}

func (s *AuthService) DisableTOTP(ctx context.Context, userID uint, code string) error {
	user, err := s.CurrentUser(ctx, userID)
	if err != nil {
		return err
	}
	if !user.TOTPEnabled {
		return invalid("2FA is not enabled")
	}

	ok, err := s.checkTOTP(user, code)
	if err != nil {
		return err
	}
	if !ok {
		return ErrInvalidTOTP
	}

	user.TOTPEnabled = false
	user.TOTPSecret = ""
	if err := s.users.Update(ctx, user); err != nil {
		return fmt.Errorf("update user %d: %w", userID, err)
	}

	utils.LogAuthAction("2fa-disable", user.Username, true)
	return nil
}

func (s *AuthService) checkTOTP(user *models.User, code string) (bool, error) {
	secret, err := utils.Decrypt(s.encryptionKey, user.TOTPSecret)
	if err != nil {
		return false, fmt.Errorf("decrypt totp secret: %w", err)
	}
	return utils.VerifyTOTP(string(secret), code), nil
}
