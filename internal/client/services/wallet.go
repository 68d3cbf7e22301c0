package services

import (
	"context"
	"errors"
	"time"

	"github.com/umuhoratech/wallet-cli/internal/client/api"
	"github.com/umuhoratech/wallet-cli/internal/client/models"
	"github.com/umuhoratech/wallet-cli/internal/logging"
)

// ErrRestoreTimeout is returned when the server-side rebuild does not
// report ready within the configured deadline. The restore itself may still
// complete later; the caller can refresh manually.
var ErrRestoreTimeout = errors.New("wallet restore did not complete in time")

// WalletAPI is the slice of the backend contract the wallet service needs.
type WalletAPI interface {
	BackupWallet(ctx context.Context) (string, error)
	RestoreWallet(ctx context.Context, data string) error
	WalletStatus(ctx context.Context) (models.WalletStatus, error)
}

// WalletService covers the destructive wallet operations: revealing the
// backup key and restoring from user-provided material.
type WalletService interface {
	// Backup returns the wallet's private key in WIF format.
	Backup(ctx context.Context) (string, error)

	// Restore validates data locally, submits it, and then waits until the
	// server-side wallet rebuild completes.
	Restore(ctx context.Context, data string) error
}

type walletService struct {
	client       WalletAPI
	pollInterval time.Duration
	pollTimeout  time.Duration
	log          logging.Logger
}

func NewWalletService(client WalletAPI, pollInterval, pollTimeout time.Duration, log logging.Logger) WalletService {
	return &walletService{
		client:       client,
		pollInterval: pollInterval,
		pollTimeout:  pollTimeout,
		log:          log,
	}
}

func (w *walletService) Backup(ctx context.Context) (string, error) {
	return w.client.BackupWallet(ctx)
}

func (w *walletService) Restore(ctx context.Context, data string) error {
	if err := ValidateRestoreData(data); err != nil {
		return err
	}
	if err := w.client.RestoreWallet(ctx, data); err != nil {
		return err
	}
	return w.waitForRebuild(ctx)
}

// waitForRebuild polls the wallet status until the backend reports the
// rebuilt wallet as ready. The backend rebuilds asynchronously after
// accepting a restore, so returning before it finishes would hand the
// caller a stale or missing balance.
func (w *walletService) waitForRebuild(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, w.pollTimeout)
	defer cancel()

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	for {
		status, err := w.client.WalletStatus(ctx)
		if err == nil && status == models.WalletStatusReady {
			return nil
		}
		if err != nil && !api.IsForbidden(err) {
			// Forbidden means the wallet is not visible yet; keep
			// polling. Anything else ends the wait.
			return err
		}
		w.log.Debug(ctx, "wallet rebuild pending", "status", status)

		select {
		case <-ticker.C:
		case <-ctx.Done():
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				return ErrRestoreTimeout
			}
			return ctx.Err()
		}
	}
}
