package services

import (
	"context"
	"sync"

	"github.com/umuhoratech/wallet-cli/internal/client/models"
)

// ChatAPI is the slice of the backend contract the support chat needs.
// The backend owns the assistant and its prompt; this side only relays
// conversation turns.
type ChatAPI interface {
	SupportChat(ctx context.Context, history []models.ChatMessage, message string) (string, error)
}

// SupportChat keeps one support conversation's history on the client and
// sends it along with each new message, so the assistant keeps context
// across turns.
type SupportChat struct {
	client ChatAPI

	mu      sync.Mutex
	history []models.ChatMessage
}

func NewSupportChat(client ChatAPI) *SupportChat {
	return &SupportChat{client: client}
}

// Send submits one user message and returns the assistant's reply. The
// exchange is appended to the history only when the call succeeds, so a
// failed turn can simply be retried.
func (s *SupportChat) Send(ctx context.Context, message string) (string, error) {
	s.mu.Lock()
	history := make([]models.ChatMessage, len(s.history))
	copy(history, s.history)
	s.mu.Unlock()

	response, err := s.client.SupportChat(ctx, history, message)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	s.history = append(s.history,
		models.ChatMessage{Role: models.RoleUser, Content: message},
		models.ChatMessage{Role: models.RoleModel, Content: response},
	)
	s.mu.Unlock()

	return response, nil
}

// History returns a copy of the conversation so far.
func (s *SupportChat) History() []models.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	history := make([]models.ChatMessage, len(s.history))
	copy(history, s.history)
	return history
}

// Reset drops the conversation, e.g. on logout.
func (s *SupportChat) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = nil
}
