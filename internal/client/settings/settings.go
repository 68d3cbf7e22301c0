// Package settings manages the client-local display preferences: fiat
// currency, primary display unit and theme. Preferences are persisted
// synchronously in the local metadata store; no server round-trip.
package settings

import (
	"context"
	"errors"
	"sync"

	"github.com/umuhoratech/wallet-cli/internal/client/repositories/metadata"
)

var ErrInvalidValue = errors.New("invalid settings value")

type Currency string

const (
	CurrencyUSD Currency = "usd"
	CurrencyEUR Currency = "eur"
	CurrencyJPY Currency = "jpy"
	CurrencyBIF Currency = "bif"
)

type Unit string

const (
	UnitBTC  Unit = "btc"
	UnitSats Unit = "sats"
	UnitUSD  Unit = "usd"
	UnitBIF  Unit = "bif"
)

type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

const (
	currencyKey = "settings_currency"
	unitKey     = "settings_display_unit"
	themeKey    = "settings_theme"
)

// Settings is the current preference record.
type Settings struct {
	Currency    Currency
	DisplayUnit Unit
	Theme       Theme
}

func defaults() Settings {
	return Settings{Currency: CurrencyUSD, DisplayUnit: UnitBTC, Theme: ThemeSystem}
}

// Service reads and writes preferences. Unset or unrecognized stored values
// fall back to defaults on read, so an old database never breaks startup.
type Service struct {
	repo metadata.Repository
	mu   sync.Mutex
}

func NewService(repo metadata.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Load(ctx context.Context) (Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := defaults()

	if v, err := s.repo.Get(ctx, currencyKey); err != nil {
		return result, err
	} else if c := Currency(v); validCurrency(c) {
		result.Currency = c
	}

	if v, err := s.repo.Get(ctx, unitKey); err != nil {
		return result, err
	} else if u := Unit(v); validUnit(u) {
		result.DisplayUnit = u
	}

	if v, err := s.repo.Get(ctx, themeKey); err != nil {
		return result, err
	} else if t := Theme(v); validTheme(t) {
		result.Theme = t
	}

	return result, nil
}

func (s *Service) SetCurrency(ctx context.Context, c Currency) error {
	if !validCurrency(c) {
		return ErrInvalidValue
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.repo.Set(ctx, currencyKey, []byte(c))
}

func (s *Service) SetDisplayUnit(ctx context.Context, u Unit) error {
	if !validUnit(u) {
		return ErrInvalidValue
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.repo.Set(ctx, unitKey, []byte(u))
}

func (s *Service) SetTheme(ctx context.Context, t Theme) error {
	if !validTheme(t) {
		return ErrInvalidValue
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.repo.Set(ctx, themeKey, []byte(t))
}

func validCurrency(c Currency) bool {
	switch c {
	case CurrencyUSD, CurrencyEUR, CurrencyJPY, CurrencyBIF:
		return true
	}
	return false
}

func validUnit(u Unit) bool {
	switch u {
	case UnitBTC, UnitSats, UnitUSD, UnitBIF:
		return true
	}
	return false
}

func validTheme(t Theme) bool {
	switch t {
	case ThemeLight, ThemeDark, ThemeSystem:
		return true
	}
	return false
}
