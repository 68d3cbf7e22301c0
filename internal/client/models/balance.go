package models

import "github.com/shopspring/decimal"

// Balance is a snapshot of the on-chain wallet's economics. Amounts are in
// BTC; decimal avoids float drift when formatting eight fractional digits.
type Balance struct {
	CurrentBalance    decimal.Decimal `json:"current_balance"`
	TotalSent         decimal.Decimal `json:"total_sent"`
	TotalReceived     decimal.Decimal `json:"total_received"`
	TotalTransactions int             `json:"total_transactions"`
	WalletAgeDays     int             `json:"wallet_age_days"`
	PrimaryAddress    string          `json:"primary_address"`
}

// LightningStats is the Lightning-wallet snapshot shown on the profile page.
// Amounts are in sats (the smallest unit), so plain integers suffice.
type LightningStats struct {
	Balance           int64 `json:"balance"`
	TotalReceivedSats int64 `json:"total_received_sats"`
	TotalSentSats     int64 `json:"total_sent_sats"`
	TotalInvoices     int   `json:"total_invoices"`
	PendingInvoices   int   `json:"pending_invoices"`
	ExpiredInvoices   int   `json:"expired_invoices"`
}

// Profile aggregates the account record with both wallet snapshots. Either
// wallet section may be nil when the corresponding wallet does not exist.
type Profile struct {
	User            *User           `json:"user"`
	OnchainWallet   *Balance        `json:"onchain_wallet"`
	LightningWallet *LightningStats `json:"lightning_wallet"`
}

// WalletStatus reports the server-side wallet provisioning state, polled
// after a restore until the rebuild completes.
type WalletStatus string

const (
	WalletStatusReady     WalletStatus = "ready"
	WalletStatusRestoring WalletStatus = "restoring"
	WalletStatusNone      WalletStatus = "none"
)
