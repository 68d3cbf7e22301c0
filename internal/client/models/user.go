// Package models holds the payload types exchanged with the wallet backend.
// All of them are server-owned records; the client keeps read-mostly copies.
package models

// User is the profile record for the authenticated account.
type User struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Email        string `json:"email"`
	Is2FAEnabled bool   `json:"is_2fa_enabled"`
}

// DisplayName returns the user's full name, falling back to the username
// when name fields are empty.
func (u *User) DisplayName() string {
	if u.FirstName != "" && u.LastName != "" {
		return u.FirstName + " " + u.LastName
	}
	return u.Username
}

// TwoFactorSetup is returned by the 2FA setup operation: a shared secret
// plus a scannable provisioning payload (otpauth URI rendered as a QR code
// by the backend).
type TwoFactorSetup struct {
	Secret string `json:"secret"`
	QRCode string `json:"qr_code"`
}

// ChatMessage is a single turn in the support chat conversation.
// Role is either RoleUser or RoleModel.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

const (
	RoleUser  = "user"
	RoleModel = "model"
)
