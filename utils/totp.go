package utils

import (
	"github.com/pquerna/otp/totp"
)

const totpIssuer = "Travel Management"

// GenerateTOTPSecret returns the base32 secret and its otpauth:// URL.
func GenerateTOTPSecret(accountName string) (string, string, error) {
	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      totpIssuer,
		AccountName: accountName,
	})
	if err != nil {
		return "", "", err
	}

	return key.Secret(), key.URL(), nil
}

func VerifyTOTP(secret, code string) bool {
	return totp.Validate(code, secret)
}
