package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/umuhoratech/wallet-cli/internal/client/models"
	"github.com/umuhoratech/wallet-cli/internal/logging"
)

// TokenSource supplies the current credential for outbound requests.
// Both values are optional: an empty token means the request goes out
// unauthenticated, a nil cookie means no cookie is attached.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
	Cookie(ctx context.Context) (*http.Cookie, error)
}

// HTTPClient implements Client over the backend's JSON/HTTP API.
//
// Timeout policy is owned by the injected http.Client; this layer adds no
// timeouts of its own.
type HTTPClient struct {
	baseURL string
	hc      *http.Client
	tokens  TokenSource
	log     logging.Logger
}

func NewHTTPClient(baseURL string, timeout time.Duration, tokens TokenSource, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		hc:      &http.Client{Timeout: timeout},
		tokens:  tokens,
		log:     log,
	}
}

func (c *HTTPClient) Close() error {
	c.hc.CloseIdleConnections()
	return nil
}

// errorBody is the error envelope the backend uses for non-2xx responses.
// Some endpoints use "error", others "message".
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (b errorBody) text() string {
	if b.Error != "" {
		return b.Error
	}
	return b.Message
}

// invalidTokenMarker is the phrase the backend puts into error messages for
// rejected credentials. Matching it here keeps message sniffing out of the
// state containers.
const invalidTokenMarker = "invalid token"

func classify(status int, message string) Kind {
	if strings.Contains(strings.ToLower(message), invalidTokenMarker) {
		return KindUnauthorized
	}
	switch {
	case status == http.StatusUnauthorized:
		return KindUnauthorized
	case status == http.StatusForbidden:
		return KindForbidden
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		return KindValidation
	default:
		return KindServer
	}
}

func (c *HTTPClient) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if token, err := c.tokens.Token(ctx); err == nil && token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if cookie, err := c.tokens.Cookie(ctx); err == nil && cookie != nil {
		req.AddCookie(cookie)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return &Error{Kind: KindNetwork, Message: "", cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var eb errorBody
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
		_ = json.Unmarshal(data, &eb)
		return &Error{
			Kind:    classify(resp.StatusCode, eb.text()),
			Status:  resp.StatusCode,
			Message: eb.text(),
		}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}
	return nil
}

func (c *HTTPClient) Register(ctx context.Context, req RegisterRequest) error {
	return c.do(ctx, http.MethodPost, "/api/auth/register", req, nil)
}

func (c *HTTPClient) Login(ctx context.Context, email, password, otp string) (string, error) {
	req := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		OTP      string `json:"otp,omitempty"`
	}{Email: email, Password: password, OTP: otp}

	var resp struct {
		Token string `json:"token"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", req, &resp); err != nil {
		return "", err
	}
	return resp.Token, nil
}

func (c *HTTPClient) VerifyEmail(ctx context.Context, email, otp string) (string, error) {
	req := struct {
		Email string `json:"email"`
		OTP   string `json:"otp"`
	}{Email: email, OTP: otp}

	var resp struct {
		Token string `json:"token"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/auth/verify-email", req, &resp); err != nil {
		return "", err
	}
	return resp.Token, nil
}

func (c *HTTPClient) ResendOTP(ctx context.Context, email string) error {
	req := struct {
		Email string `json:"email"`
	}{Email: email}
	return c.do(ctx, http.MethodPost, "/api/auth/resend-otp", req, nil)
}

func (c *HTTPClient) ChangePassword(ctx context.Context, current, newPassword string) error {
	req := struct {
		CurrentPassword string `json:"current_password"`
		NewPassword     string `json:"new_password"`
	}{CurrentPassword: current, NewPassword: newPassword}
	return c.do(ctx, http.MethodPost, "/api/auth/change-password", req, nil)
}

func (c *HTTPClient) CurrentUser(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodGet, "/api/users/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *HTTPClient) Profile(ctx context.Context) (*models.Profile, error) {
	var profile models.Profile
	if err := c.do(ctx, http.MethodGet, "/api/users/me/profile", nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (c *HTTPClient) Setup2FA(ctx context.Context) (*models.TwoFactorSetup, error) {
	var setup models.TwoFactorSetup
	if err := c.do(ctx, http.MethodPost, "/api/2fa/setup", nil, &setup); err != nil {
		return nil, err
	}
	return &setup, nil
}

func (c *HTTPClient) Enable2FA(ctx context.Context, otp string) error {
	req := struct {
		OTP string `json:"otp"`
	}{OTP: otp}
	return c.do(ctx, http.MethodPost, "/api/2fa/enable", req, nil)
}

func (c *HTTPClient) Disable2FA(ctx context.Context, otp string) error {
	req := struct {
		OTP string `json:"otp"`
	}{OTP: otp}
	return c.do(ctx, http.MethodPost, "/api/2fa/disable", req, nil)
}

func (c *HTTPClient) WalletBalance(ctx context.Context) (*models.Balance, error) {
	var balance models.Balance
	if err := c.do(ctx, http.MethodGet, "/api/wallet/balance", nil, &balance); err != nil {
		return nil, err
	}
	return &balance, nil
}

func (c *HTTPClient) WalletStatus(ctx context.Context) (models.WalletStatus, error) {
	var resp struct {
		Status models.WalletStatus `json:"status"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/wallet/status", nil, &resp); err != nil {
		return "", err
	}
	return resp.Status, nil
}

func (c *HTTPClient) BackupWallet(ctx context.Context) (string, error) {
	var resp struct {
		WIF string `json:"wif"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/wallet/backup", nil, &resp); err != nil {
		return "", err
	}
	return resp.WIF, nil
}

func (c *HTTPClient) RestoreWallet(ctx context.Context, data string) error {
	req := struct {
		Data string `json:"data"`
	}{Data: data}
	return c.do(ctx, http.MethodPost, "/api/wallet/restore", req, nil)
}

func (c *HTTPClient) SupportChat(ctx context.Context, history []models.ChatMessage, message string) (string, error) {
	req := struct {
		History []models.ChatMessage `json:"history"`
		Message string               `json:"message"`
	}{History: history, Message: message}

	var resp struct {
		Response string `json:"response"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/support/chat", req, &resp); err != nil {
		return "", err
	}
	return resp.Response, nil
}
