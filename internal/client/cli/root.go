package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

func (a *App) getStatus() string {
	if user := a.session.User(); user != nil {
		return fmt.Sprintf("(%s)", user.Username)
	}
	return ""
}

func (a *App) Root(ctx context.Context) {

	fmt.Println("Umuhora Wallet CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Printf("wallet %s> ", a.getStatus())
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Println("Available commands: balance, refresh, profile, status, backup, restore, passwd, 2fa on|off, settings, set, chat, logout, exit")
			} else {
				fmt.Println("Available commands: register, login, verify, resend, exit")
			}

		case "register":
			_ = a.Register(ctx)
		case "login":
			_ = a.Login(ctx)
		case "verify":
			_ = a.Verify(ctx)
		case "resend":
			_ = a.Resend(ctx)
		case "balance":
			_ = a.Balance(ctx)
		case "refresh":
			_ = a.RefreshBalance(ctx)
		case "profile":
			_ = a.Profile(ctx)
		case "status":
			_ = a.WalletState(ctx)
		case "backup":
			_ = a.Backup(ctx)
		case "restore":
			_ = a.Restore(ctx)
		case "passwd":
			_ = a.ChangePassword(ctx)
		case "2fa":
			if len(args) != 1 || (args[0] != "on" && args[0] != "off") {
				fmt.Println("Usage: 2fa on|off")
				continue
			}
			if args[0] == "on" {
				_ = a.Enable2FA(ctx)
			} else {
				_ = a.Disable2FA(ctx)
			}
		case "settings":
			_ = a.ShowSettings(ctx)
		case "set":
			_ = a.SetPreference(ctx, args)
		case "chat":
			_ = a.Chat(ctx)
		case "logout":
			_ = a.Logout(ctx)
		case "exit", "quit":
			fmt.Println("Bye!")
			return
		default:
			fmt.Println("Unknown command:", cmd)
		}
	}
}

// WalletState prints the server-side wallet provisioning state.
func (a *App) WalletState(ctx context.Context) error {
	status, err := a.apiClient.WalletStatus(ctx)
	if err != nil {
		fmt.Println("Could not load the wallet status:", err)
		return err
	}
	fmt.Println("Wallet status:", walletStatusLabel(status))
	return nil
}
