// Package common contains shared constants and small utilities used across
// the wallet client components.
package common

// AuthCookieName is the cookie attribute mirroring the persistent credential.
// Server-rendered route checks read the same name.
const AuthCookieName = "authToken"

// AuthCookieMaxAge is the lifetime, in seconds, of the credential cookie
// written on login/verification (7 days).
const AuthCookieMaxAge = 604800
