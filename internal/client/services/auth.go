// Package services contains the application services of the wallet client:
// account/auth operations, wallet backup and restore, and the support chat.
// Services orchestrate the API client and the credential store; global
// state transitions (session reset, navigation) stay with the callers.
package services

import (
	"context"
	"errors"

	"github.com/umuhoratech/wallet-cli/internal/client/api"
	"github.com/umuhoratech/wallet-cli/internal/client/models"
)

// Input rejections detected before any network call. Matched with errors.Is.
var (
	ErrOTPLength        = errors.New("the OTP must be 6 characters long")
	ErrPasswordTooShort = errors.New("the new password must be at least 8 characters long")
)

const otpLength = 6

// CredentialWriter persists and invalidates the bearer credential in both
// of its locations.
type CredentialWriter interface {
	Save(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}

// AuthAPI is the slice of the backend contract the auth service needs.
// api.Client satisfies it.
type AuthAPI interface {
	Register(ctx context.Context, req api.RegisterRequest) error
	Login(ctx context.Context, email, password, otp string) (string, error)
	VerifyEmail(ctx context.Context, email, otp string) (string, error)
	ResendOTP(ctx context.Context, email string) error
	ChangePassword(ctx context.Context, current, newPassword string) error
	Setup2FA(ctx context.Context) (*models.TwoFactorSetup, error)
	Enable2FA(ctx context.Context, otp string) error
	Disable2FA(ctx context.Context, otp string) error
}

// AuthService defines the account operations of the CLI.
//
// Contract:
//   - Login / VerifyEmail: authenticate and persist the issued credential.
//   - Register / ResendOTP / ChangePassword: plain backend calls.
//   - Setup2FA / Enable2FA / Disable2FA: two-factor lifecycle; after a
//     successful enable or disable the caller refetches the user profile.
//   - Logout: invalidate the stored credential everywhere.
//
// All methods must honor context cancellation/timeouts.
type AuthService interface {
	Register(ctx context.Context, req api.RegisterRequest) error
	Login(ctx context.Context, email string, password []byte, otp string) error
	VerifyEmail(ctx context.Context, email, otp string) error
	ResendOTP(ctx context.Context, email string) error
	ChangePassword(ctx context.Context, current, newPassword []byte) error
	Setup2FA(ctx context.Context) (*models.TwoFactorSetup, error)
	Enable2FA(ctx context.Context, otp string) error
	Disable2FA(ctx context.Context, otp string) error
	Logout(ctx context.Context) error
}

type authService struct {
	client AuthAPI
	creds  CredentialWriter
}

// NewAuthService constructs an AuthService bound to the given API client
// and credential store.
func NewAuthService(client AuthAPI, creds CredentialWriter) AuthService {
	return &authService{client: client, creds: creds}
}

func (a *authService) Register(ctx context.Context, req api.RegisterRequest) error {
	return a.client.Register(ctx, req)
}

// Login authenticates and persists the returned credential. The otp
// argument is empty for accounts without 2FA.
func (a *authService) Login(ctx context.Context, email string, password []byte, otp string) error {
	token, err := a.client.Login(ctx, email, string(password), otp)
	if err != nil {
		return err
	}
	return a.creds.Save(ctx, token)
}

// VerifyEmail submits the emailed OTP. A successful verification activates
// the account and issues the first credential, which is persisted.
func (a *authService) VerifyEmail(ctx context.Context, email, otp string) error {
	if len(otp) != otpLength {
		return ErrOTPLength
	}
	token, err := a.client.VerifyEmail(ctx, email, otp)
	if err != nil {
		return err
	}
	return a.creds.Save(ctx, token)
}

func (a *authService) ResendOTP(ctx context.Context, email string) error {
	return a.client.ResendOTP(ctx, email)
}

func (a *authService) ChangePassword(ctx context.Context, current, newPassword []byte) error {
	if len(newPassword) < 8 {
		return ErrPasswordTooShort
	}
	return a.client.ChangePassword(ctx, string(current), string(newPassword))
}

func (a *authService) Setup2FA(ctx context.Context) (*models.TwoFactorSetup, error) {
	return a.client.Setup2FA(ctx)
}

func (a *authService) Enable2FA(ctx context.Context, otp string) error {
	if len(otp) != otpLength {
		return ErrOTPLength
	}
	return a.client.Enable2FA(ctx, otp)
}

func (a *authService) Disable2FA(ctx context.Context, otp string) error {
	if len(otp) != otpLength {
		return ErrOTPLength
	}
	return a.client.Disable2FA(ctx, otp)
}

// Logout invalidates the credential in both stores. Safe to call when
// already logged out.
func (a *authService) Logout(ctx context.Context) error {
	return a.creds.Clear(ctx)
}
