package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/shopspring/decimal"

	"github.com/umuhoratech/wallet-cli/internal/client/api"
	"github.com/umuhoratech/wallet-cli/internal/client/models"
	"github.com/umuhoratech/wallet-cli/internal/client/nav"
	"github.com/umuhoratech/wallet-cli/internal/client/settings"
)

var satsPerBTC = decimal.New(1, 8)

// Balance navigates to the dashboard, which triggers a fetch through the
// wallet container, then prints the resulting snapshot.
func (a *App) Balance(ctx context.Context) error {
	a.router.Navigate(nav.RouteDashboard)
	a.printBalance(ctx)
	return nil
}

// RefreshBalance forces a new snapshot without a navigation event.
func (a *App) RefreshBalance(ctx context.Context) error {
	a.wallet.Refresh(ctx)
	a.printBalance(ctx)
	return nil
}

func (a *App) printBalance(ctx context.Context) {
	if msg := a.wallet.ErrorMessage(); msg != "" {
		fmt.Println("Could not load the balance:", msg)
		return
	}
	balance := a.wallet.Balance()
	if balance == nil {
		fmt.Println("You don't have an on-chain wallet yet. Use 'restore' to import one.")
		return
	}

	prefs, err := a.prefs.Load(ctx)
	if err != nil {
		a.log.Warn(ctx, "failed to load preferences", "err", err)
	}

	fmt.Println("Balance:      ", a.formatAmount(balance.CurrentBalance, prefs.DisplayUnit))
	fmt.Println("Total sent:   ", a.formatAmount(balance.TotalSent.Abs(), prefs.DisplayUnit))
	fmt.Println("Total received:", a.formatAmount(balance.TotalReceived, prefs.DisplayUnit))
	fmt.Println("Transactions: ", balance.TotalTransactions)
	if balance.PrimaryAddress != "" {
		fmt.Println("Address:      ", balance.PrimaryAddress)
	}
}

// formatAmount renders a BTC amount in the preferred display unit.
// Fiat-denominated units fall back to BTC; the conversion rate is
// backend-owned and not available offline.
func (a *App) formatAmount(amount decimal.Decimal, unit settings.Unit) string {
	if unit == settings.UnitSats {
		return fmt.Sprintf("%d sats", amount.Mul(satsPerBTC).IntPart())
	}
	return amount.StringFixed(8) + " BTC"
}

// Profile fetches and prints the full account view: identity plus on-chain
// and Lightning snapshots.
func (a *App) Profile(ctx context.Context) error {
	a.router.Navigate(nav.RouteProfile)

	profile, err := a.apiClient.Profile(ctx)
	if err != nil {
		fmt.Println("Could not load the profile:", api.Message(err, "please try again later"))
		return err
	}

	if profile.User != nil {
		fmt.Println("User: ", profile.User.DisplayName())
		fmt.Println("Email:", profile.User.Email)
		if profile.User.Is2FAEnabled {
			fmt.Println("2FA:   enabled")
		} else {
			fmt.Println("2FA:   disabled")
		}
	}

	if stats := profile.OnchainWallet; stats != nil {
		fmt.Println("-- On-chain wallet --")
		fmt.Println("Balance:       ", stats.CurrentBalance.StringFixed(8), "BTC")
		fmt.Println("Total sent:    ", stats.TotalSent.Abs().StringFixed(8), "BTC")
		fmt.Println("Total received:", stats.TotalReceived.StringFixed(8), "BTC")
		fmt.Println("Transactions:  ", stats.TotalTransactions)
		fmt.Println("Wallet age:    ", stats.WalletAgeDays, "days")
		if stats.PrimaryAddress != "" {
			fmt.Println("Address:       ", stats.PrimaryAddress)
		}
	}

	if stats := profile.LightningWallet; stats != nil {
		fmt.Println("-- Lightning wallet --")
		fmt.Println("Balance:         ", stats.Balance, "sats")
		fmt.Println("Sats received:   ", stats.TotalReceivedSats)
		fmt.Println("Sats sent:       ", stats.TotalSentSats)
		fmt.Println("Invoices:        ", stats.TotalInvoices)
		fmt.Println("Pending invoices:", stats.PendingInvoices)
		fmt.Println("Expired invoices:", stats.ExpiredInvoices)
	}

	return nil
}

// Backup reveals the wallet's private key in WIF format after an explicit
// confirmation.
func (a *App) Backup(ctx context.Context) error {
	answer, err := getSimpleText(a.reader, "This will display your private key on screen. Type 'yes' to continue", os.Stdout)
	if err != nil {
		return err
	}
	if answer != "yes" {
		fmt.Println("Backup cancelled.")
		return nil
	}

	wif, err := a.walletSvc.Backup(ctx)
	if err != nil {
		fmt.Println("Backup failed:", api.Message(err, "please try again later"))
		return err
	}

	fmt.Println("Private key (WIF):", wif)
	fmt.Println("Write it down and store it offline. Anyone holding this key controls your funds.")
	return nil
}

// Restore imports a wallet from a recovery phrase, a WIF key or an
// extended key. Input is validated locally first; after the backend
// accepts it, the command waits for the server-side rebuild and then
// refreshes the balance.
func (a *App) Restore(ctx context.Context) error {
	data, err := getSimpleText(a.reader, "Enter a 12/24-word recovery phrase or a WIF/extended key", os.Stdout)
	if err != nil {
		return err
	}

	fmt.Println("Restoring the wallet, this can take a moment...")
	if err := a.walletSvc.Restore(ctx, data); err != nil {
		fmt.Println("Restore failed:", api.Message(err, "please try again later"))
		return err
	}

	a.wallet.Refresh(ctx)
	fmt.Println("Wallet restored.")
	a.printBalance(ctx)
	return nil
}

func walletStatusLabel(status models.WalletStatus) string {
	switch status {
	case models.WalletStatusReady:
		return "ready"
	case models.WalletStatusRestoring:
		return "restoring"
	default:
		return "not provisioned"
	}
}
