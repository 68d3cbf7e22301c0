package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/umuhoratech/wallet-cli/internal/client/api"
	"github.com/umuhoratech/wallet-cli/internal/client/nav"
	"github.com/umuhoratech/wallet-cli/internal/common"
)

// Register prompts for the sign-up fields and creates a new account. The
// account stays inactive until the emailed OTP is confirmed with Verify.
func (a *App) Register(ctx context.Context) error {
	a.router.Navigate(nav.RouteRegister)

	username, err := getSimpleText(a.reader, "Choose a username", os.Stdout)
	if err != nil {
		return err
	}
	firstName, err := getSimpleText(a.reader, "First name", os.Stdout)
	if err != nil {
		return err
	}
	lastName, err := getSimpleText(a.reader, "Last name", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout, "Choose a password: ")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	req := api.RegisterRequest{
		Username:  username,
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Password:  string(password),
	}
	if err := a.auth.Register(ctx, req); err != nil {
		fmt.Println("Registration failed:", api.Message(err, "please try again later"))
		return err
	}

	a.router.Navigate(nav.RouteVerifyEmail)
	fmt.Println("Account created. A verification code was sent to your email; run 'verify' to activate it.")
	return nil
}

// Login prompts for credentials and authenticates. On success the issued
// credential is persisted, the user profile is fetched, and the app
// navigates to the dashboard, which triggers the first balance fetch.
func (a *App) Login(ctx context.Context) error {
	a.router.Navigate(nav.RouteLogin)

	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout, "Enter password: ")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	otp, err := getSimpleText(a.reader, "2FA code (leave empty if not enabled)", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.auth.Login(ctx, email, password, otp); err != nil {
		fmt.Println("Login failed:", api.Message(err, "please check your credentials"))
		return err
	}

	a.session.Refetch(ctx)
	a.router.Navigate(nav.RouteDashboard)
	fmt.Println("Success!")
	return nil
}

// Verify submits the emailed OTP. Success activates the account, stores
// the first credential and moves on to wallet creation/restore.
func (a *App) Verify(ctx context.Context) error {
	a.router.Navigate(nav.RouteVerifyEmail)

	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	otp, err := getSimpleText(a.reader, "Verification code (OTP)", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.auth.VerifyEmail(ctx, email, otp); err != nil {
		fmt.Println("Verification failed:", api.Message(err, "please try again"))
		return err
	}

	a.session.Refetch(ctx)
	a.router.Navigate(nav.RouteCreateOrRestore)
	fmt.Println("Verification successful. Your account is now active.")
	return nil
}

// Resend requests a fresh verification code.
func (a *App) Resend(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	if err := a.auth.ResendOTP(ctx, email); err != nil {
		fmt.Println("Could not resend the code:", api.Message(err, "please try again later"))
		return err
	}
	fmt.Println("A new verification code was sent to your email.")
	return nil
}

// Logout invalidates the credential everywhere and resets all cached state.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		return err
	}
	a.session.Reset()
	a.wallet.Reset()
	a.chat.Reset()
	a.router.Navigate(nav.RouteLogin)
	fmt.Println("Logged out.")
	return nil
}
