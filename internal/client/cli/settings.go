package cli

import (
	"context"
	"fmt"

	"github.com/umuhoratech/wallet-cli/internal/client/nav"
	"github.com/umuhoratech/wallet-cli/internal/client/settings"
)

// ShowSettings prints the current display preferences.
func (a *App) ShowSettings(ctx context.Context) error {
	a.router.Navigate(nav.RouteSettings)

	prefs, err := a.prefs.Load(ctx)
	if err != nil {
		return err
	}
	fmt.Println("Currency:    ", prefs.Currency)
	fmt.Println("Display unit:", prefs.DisplayUnit)
	fmt.Println("Theme:       ", prefs.Theme)
	return nil
}

// SetPreference handles "set currency|unit|theme <value>". Preferences are
// client-local and saved immediately.
func (a *App) SetPreference(ctx context.Context, args []string) error {
	if len(args) != 2 {
		fmt.Println("Usage: set currency|unit|theme <value>")
		return nil
	}

	var err error
	switch args[0] {
	case "currency":
		err = a.prefs.SetCurrency(ctx, settings.Currency(args[1]))
	case "unit":
		err = a.prefs.SetDisplayUnit(ctx, settings.Unit(args[1]))
	case "theme":
		err = a.prefs.SetTheme(ctx, settings.Theme(args[1]))
	default:
		fmt.Println("Unknown preference:", args[0])
		return nil
	}

	if err != nil {
		fmt.Println("Could not save the preference:", err)
		return err
	}
	fmt.Println("Saved.")
	return nil
}
