package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/umuhoratech/wallet-cli/internal/client/api"
	"github.com/umuhoratech/wallet-cli/internal/common"
)

// ChangePassword prompts for the current and new passwords and submits the
// change. A wrong current password comes back as a validation message.
func (a *App) ChangePassword(ctx context.Context) error {
	current, err := getPassword(os.Stdout, "Current password: ")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(current)

	newPassword, err := getPassword(os.Stdout, "New password: ")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(newPassword)

	if err := a.auth.ChangePassword(ctx, current, newPassword); err != nil {
		fmt.Println("Password change failed:", api.Message(err, "please try again"))
		return err
	}

	fmt.Println("Password updated.")
	return nil
}

// Enable2FA runs the two-step setup: fetch the shared secret, then confirm
// with a code from the authenticator app. The profile is refetched on
// success so the 2FA flag is current.
func (a *App) Enable2FA(ctx context.Context) error {
	setup, err := a.auth.Setup2FA(ctx)
	if err != nil {
		fmt.Println("2FA setup failed:", api.Message(err, "please try again later"))
		return err
	}

	fmt.Println("Add this secret to your authenticator app:", setup.Secret)
	if setup.QRCode != "" {
		fmt.Println("Or scan the provisioning QR code:", setup.QRCode)
	}

	otp, err := getSimpleText(a.reader, "Enter the 6-digit code from your app", os.Stdout)
	if err != nil {
		return err
	}
	if err := a.auth.Enable2FA(ctx, otp); err != nil {
		fmt.Println("Could not enable 2FA:", api.Message(err, "please try again"))
		return err
	}

	a.session.Refetch(ctx)
	fmt.Println("Two-factor authentication is now enabled.")
	return nil
}

// Disable2FA turns 2FA off after confirming a current code.
func (a *App) Disable2FA(ctx context.Context) error {
	otp, err := getSimpleText(a.reader, "Enter the 6-digit code from your app", os.Stdout)
	if err != nil {
		return err
	}
	if err := a.auth.Disable2FA(ctx, otp); err != nil {
		fmt.Println("Could not disable 2FA:", api.Message(err, "please try again"))
		return err
	}

	a.session.Refetch(ctx)
	fmt.Println("Two-factor authentication is now disabled.")
	return nil
}
