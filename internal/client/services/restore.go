package services

import (
	"errors"
	"regexp"
	"strings"

	"github.com/mr-tron/base58"
)

// Restore-input rejections, detected locally before any network call.
var (
	ErrRestoreDataTooShort = errors.New("the restore data looks too short")
	ErrRestoreDataInvalid  = errors.New("enter a valid 12/24-word recovery phrase or a WIF/extended key")
)

var extendedKeyRe = regexp.MustCompile(`^(xpub|ypub|zpub|tpub|upub|vpub)`)

// ValidateRestoreData checks that data plausibly encodes a wallet: a 12- or
// 24-word mnemonic phrase, a WIF private key, or an extended key. Anything
// else is rejected here so garbage never reaches the backend.
func ValidateRestoreData(data string) error {
	trimmed := strings.TrimSpace(data)
	if len(trimmed) < 20 {
		return ErrRestoreDataTooShort
	}

	words := strings.Fields(trimmed)
	if len(words) == 12 || len(words) == 24 {
		return nil
	}
	if len(words) == 1 {
		if extendedKeyRe.MatchString(trimmed) {
			return nil
		}
		if isWIF(trimmed) {
			return nil
		}
	}
	return ErrRestoreDataInvalid
}

// isWIF reports whether s is a plausible Wallet Import Format key: the
// mainnet prefixes L/K (compressed) or 5 (uncompressed), and a base58
// payload of version byte + 32-byte key + optional compression flag +
// 4-byte checksum.
func isWIF(s string) bool {
	switch s[0] {
	case 'L', 'K', '5':
	default:
		return false
	}
	raw, err := base58.Decode(s)
	if err != nil {
		return false
	}
	return len(raw) == 37 || len(raw) == 38
}
