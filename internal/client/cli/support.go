package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/umuhoratech/wallet-cli/internal/client/api"
	"github.com/umuhoratech/wallet-cli/internal/client/nav"
)

// Chat opens a support conversation with the assistant. An empty line ends
// the conversation; the history is kept for follow-up questions until
// logout. Never paste passwords, recovery phrases or private keys here.
func (a *App) Chat(ctx context.Context) error {
	a.router.Navigate(nav.RouteSupport)

	fmt.Println("Support chat. Press Enter on an empty line to leave.")
	for {
		message, err := getSimpleText(a.reader, "you:", os.Stdout)
		if err != nil {
			return err
		}
		if message == "" {
			fmt.Println("Chat closed.")
			return nil
		}

		response, err := a.chat.Send(ctx, message)
		if err != nil {
			fmt.Println("The assistant is unavailable:", api.Message(err, "please try again later"))
			continue
		}
		fmt.Println("support:", response)
	}
}
