package services

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/umuhoratech/wallet-cli/internal/client/api"
	"github.com/umuhoratech/wallet-cli/internal/client/models"
	"github.com/umuhoratech/wallet-cli/internal/logging"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

type statusResult struct {
	status models.WalletStatus
	err    error
}

// fakeWalletAPI serves one queued status per WalletStatus call; past the end
// of the queue the last result repeats.
type fakeWalletAPI struct {
	mu sync.Mutex

	wif        string
	backupErr  error
	restoreErr error

	lastRestoreData string
	restoreCalls    int

	statuses    []statusResult
	statusCalls int
}

func (f *fakeWalletAPI) BackupWallet(ctx context.Context) (string, error) {
	return f.wif, f.backupErr
}

func (f *fakeWalletAPI) RestoreWallet(ctx context.Context, data string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.restoreCalls++
	f.lastRestoreData = data
	return f.restoreErr
}

func (f *fakeWalletAPI) WalletStatus(ctx context.Context) (models.WalletStatus, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	idx := f.statusCalls
	f.statusCalls++
	if idx >= len(f.statuses) {
		idx = len(f.statuses) - 1
	}
	res := f.statuses[idx]
	return res.status, res.err
}

func newTestWalletService(client WalletAPI) WalletService {
	return NewWalletService(client, time.Millisecond, time.Second, testLogger())
}

func TestBackup_ReturnsWIF(t *testing.T) {
	client := &fakeWalletAPI{wif: testWIFCompressed}
	svc := newTestWalletService(client)

	wif, err := svc.Backup(context.Background())
	require.NoError(t, err)
	require.Equal(t, testWIFCompressed, wif)
}

func TestRestore_InvalidDataNeverReachesBackend(t *testing.T) {
	client := &fakeWalletAPI{}
	svc := newTestWalletService(client)

	err := svc.Restore(context.Background(), "definitely not a wallet")
	require.ErrorIs(t, err, ErrRestoreDataInvalid)
	require.Equal(t, 0, client.restoreCalls)
}

func TestRestore_WaitsForRebuild(t *testing.T) {
	client := &fakeWalletAPI{statuses: []statusResult{
		{status: models.WalletStatusRestoring},
		{status: models.WalletStatusRestoring},
		{status: models.WalletStatusReady},
	}}
	svc := newTestWalletService(client)

	err := svc.Restore(context.Background(), testMnemonic12)
	require.NoError(t, err)
	require.Equal(t, 1, client.restoreCalls)
	require.Equal(t, testMnemonic12, client.lastRestoreData)
	require.Equal(t, 3, client.statusCalls)
}

func TestRestore_ForbiddenStatusKeepsPolling(t *testing.T) {
	// the wallet is invisible right after the restore is accepted
	client := &fakeWalletAPI{statuses: []statusResult{
		{err: &api.Error{Kind: api.KindForbidden, Status: 403}},
		{status: models.WalletStatusReady},
	}}
	svc := newTestWalletService(client)

	err := svc.Restore(context.Background(), testMnemonic12)
	require.NoError(t, err)
	require.Equal(t, 2, client.statusCalls)
}

func TestRestore_StatusFailureEndsWait(t *testing.T) {
	client := &fakeWalletAPI{statuses: []statusResult{
		{err: &api.Error{Kind: api.KindServer, Status: 500, Message: "boom"}},
	}}
	svc := newTestWalletService(client)

	err := svc.Restore(context.Background(), testMnemonic12)
	require.True(t, api.IsKind(err, api.KindServer))
}

func TestRestore_TimesOut(t *testing.T) {
	client := &fakeWalletAPI{statuses: []statusResult{
		{status: models.WalletStatusRestoring},
	}}
	svc := NewWalletService(client, time.Millisecond, 20*time.Millisecond, testLogger())

	err := svc.Restore(context.Background(), testMnemonic12)
	require.ErrorIs(t, err, ErrRestoreTimeout)
}

func TestRestore_BackendRejectionPropagates(t *testing.T) {
	client := &fakeWalletAPI{
		restoreErr: &api.Error{Kind: api.KindValidation, Status: 400, Message: "unknown key format"},
	}
	svc := newTestWalletService(client)

	err := svc.Restore(context.Background(), testMnemonic12)
	require.True(t, api.IsValidation(err))
	require.Equal(t, 0, client.statusCalls)
}
