package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/LovationAdmin/travel-api/models"
	"github.com/LovationAdmin/travel-api/repository/repotest"
	"github.com/LovationAdmin/travel-api/utils"

	"github.com/pquerna/otp/totp"
)

const testEncryptionKey = "0123456789abcdef0123456789abcdef"

func newAuthService(t *testing.T) (*AuthService, *utils.TokenIssuer) {
	t.Helper()
	tokens := utils.NewTokenIssuer("test-secret", time.Hour)
	svc := NewAuthService(repotest.NewStore().Users(), tokens, testEncryptionKey)
	return svc, tokens
}

func register(t *testing.T, svc *AuthService, username, role string) *models.User {
	t.Helper()
	user, err := svc.Register(context.Background(), models.RegisterRequest{
		Username: username,
		Email:    username + "@example.com",
		Password: "password",
		Role:     role,
	})
	if err != nil {
		t.Fatalf("register %s: %v", username, err)
	}
	return user
}

func TestLoginIssuesTokenWithClaims(t *testing.T) {
	svc, tokens := newAuthService(t)
	admin := register(t, svc, "admin", models.RoleAdmin)

	resp, err := svc.Login(context.Background(), models.LoginRequest{Username: "admin", Password: "password"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	claims, err := tokens.Parse(resp.Token)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if claims.UserID != admin.ID || claims.Username != "admin" || claims.Role != models.RoleAdmin {
		t.Fatalf("unexpected claims %+v", claims)
	}
	if resp.User.PasswordHash == "" {
		t.Fatalf("service should hand back the stored user")
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	svc, _ := newAuthService(t)
	register(t, svc, "user", "")

	for _, req := range []models.LoginRequest{
		{Username: "user", Password: "wrong"},
		{Username: "nobody", Password: "password"},
	} {
		if _, err := svc.Login(context.Background(), req); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("login %+v: expected invalid credentials, got %v", req, err)
		}
	}
}

func TestRegisterDefaultsAndDuplicates(t *testing.T) {
	svc, _ := newAuthService(t)
	user := register(t, svc, "user", "")
	if user.Role != models.RoleUser {
		t.Fatalf("expected default role user, got %q", user.Role)
	}
	if !utils.CheckPassword(user.PasswordHash, "password") {
		t.Fatalf("password was not hashed with bcrypt")
	}

	_, err := svc.Register(context.Background(), models.RegisterRequest{
		Username: "other", Email: "user@example.com", Password: "password",
	})
	if !errors.Is(err, ErrUserExists) {
		t.Fatalf("expected duplicate email to fail, got %v", err)
	}
}

func TestChangePassword(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()
	user := register(t, svc, "user", "")

	err := svc.ChangePassword(ctx, user.ID, models.ChangePasswordRequest{CurrentPassword: "nope", NewPassword: "secret1"})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error for wrong current password, got %v", err)
	}

	if err := svc.ChangePassword(ctx, user.ID, models.ChangePasswordRequest{CurrentPassword: "password", NewPassword: "secret1"}); err != nil {
		t.Fatalf("change password: %v", err)
	}
	if _, err := svc.Login(ctx, models.LoginRequest{Username: "user", Password: "secret1"}); err != nil {
		t.Fatalf("login with new password: %v", err)
	}
}

func TestTOTPLifecycle(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()
	user := register(t, svc, "admin", models.RoleAdmin)

	setup, err := svc.SetupTOTP(ctx, user.ID)
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	if setup.Secret == "" || setup.OTPAuthURL == "" {
		t.Fatalf("incomplete setup %+v", setup)
	}

	stored, _ := svc.CurrentUser(ctx, user.ID)
	if stored.TOTPSecret == "" || stored.TOTPSecret == setup.Secret {
		t.Fatalf("secret should be stored encrypted")
	}

	if err := svc.VerifyTOTP(ctx, user.ID, "000000"); !errors.Is(err, ErrInvalidTOTP) {
		// A random secret matching 000000 is possible but vanishingly rare.
		t.Fatalf("expected invalid code, got %v", err)
	}

	code, err := totp.GenerateCode(setup.Secret, time.Now())
	if err != nil {
		t.Fatalf("generate code: %v", err)
	}
	if err := svc.VerifyTOTP(ctx, user.ID, code); err != nil {
		t.Fatalf("verify: %v", err)
	}

	login := models.LoginRequest{Username: "admin", Password: "password"}
	if _, err := svc.Login(ctx, login); !errors.Is(err, ErrTOTPRequired) {
		t.Fatalf("expected 2FA required, got %v", err)
	}
	login.TOTPCode = code
	if _, err := svc.Login(ctx, login); err != nil {
		t.Fatalf("login with code: %v", err)
	}

	if err := svc.DisableTOTP(ctx, user.ID, code); err != nil {
		t.Fatalf("disable: %v", err)
	}
	if _, err := svc.Login(ctx, models.LoginRequest{Username: "admin", Password: "password"}); err != nil {
		t.Fatalf("login after disable: %v", err)
	}
}

func TestTOTPSetupNeedsEncryptionKey(t *testing.T) {
	store := repotest.NewStore()
	svc := NewAuthService(store.Users(), utils.NewTokenIssuer("s", time.Hour), "")
	user := register(t, svc, "user", "")

	if _, err := svc.SetupTOTP(context.Background(), user.ID); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected not configured, got %v", err)
	}
}
