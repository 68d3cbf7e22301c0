// Package api defines the wallet backend contract consumed by the client
// and its HTTP implementation. The backend owns every payload shape; this
// package only pins down what the client depends on, including the mapping
// of failure signals to structured error kinds.
package api

import (
	"context"

	"github.com/umuhoratech/wallet-cli/internal/client/models"
)

// Client is the remote wallet API surface.
//
// Every method returns either a decoded payload or an error. Errors that
// originate from the backend or the transport are *Error values carrying a
// discriminated Kind, so callers branch on a tag instead of sniffing
// messages or status codes themselves.
type Client interface {
	Close() error

	// Account lifecycle.
	Register(ctx context.Context, req RegisterRequest) error
	Login(ctx context.Context, email, password, otp string) (string, error)
	VerifyEmail(ctx context.Context, email, otp string) (string, error)
	ResendOTP(ctx context.Context, email string) error
	ChangePassword(ctx context.Context, current, newPassword string) error

	// Profile.
	CurrentUser(ctx context.Context) (*models.User, error)
	Profile(ctx context.Context) (*models.Profile, error)

	// Two-factor authentication.
	Setup2FA(ctx context.Context) (*models.TwoFactorSetup, error)
	Enable2FA(ctx context.Context, otp string) error
	Disable2FA(ctx context.Context, otp string) error

	// Wallet.
	WalletBalance(ctx context.Context) (*models.Balance, error)
	WalletStatus(ctx context.Context) (models.WalletStatus, error)
	BackupWallet(ctx context.Context) (string, error)
	RestoreWallet(ctx context.Context, data string) error

	// Support chat: one conversation turn.
	SupportChat(ctx context.Context, history []models.ChatMessage, message string) (string, error)
}

// RegisterRequest carries the fields collected at sign-up.
type RegisterRequest struct {
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}
