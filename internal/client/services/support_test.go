package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/umuhoratech/wallet-cli/internal/client/models"
)

type fakeChatAPI struct {
	reply string
	err   error

	lastHistory []models.ChatMessage
	lastMessage string
	calls       int
}

func (f *fakeChatAPI) SupportChat(_ context.Context, history []models.ChatMessage, message string) (string, error) {
	f.calls++
	f.lastHistory = history
	f.lastMessage = message
	return f.reply, f.err
}

func TestSend_FirstTurnHasEmptyHistory(t *testing.T) {
	client := &fakeChatAPI{reply: "hello, how can I help?"}
	chat := NewSupportChat(client)

	reply, err := chat.Send(context.Background(), "hi")
	require.NoError(t, err)
	require.Equal(t, "hello, how can I help?", reply)
	require.Empty(t, client.lastHistory)
	require.Equal(t, "hi", client.lastMessage)
}

func TestSend_HistoryGrowsByOneExchange(t *testing.T) {
	client := &fakeChatAPI{reply: "reply"}
	chat := NewSupportChat(client)
	ctx := context.Background()

	_, err := chat.Send(ctx, "first")
	require.NoError(t, err)
	_, err = chat.Send(ctx, "second")
	require.NoError(t, err)

	// the second call carries the first exchange
	require.Equal(t, []models.ChatMessage{
		{Role: models.RoleUser, Content: "first"},
		{Role: models.RoleModel, Content: "reply"},
	}, client.lastHistory)

	require.Len(t, chat.History(), 4)
}

func TestSend_FailedTurnLeavesHistoryUntouched(t *testing.T) {
	client := &fakeChatAPI{err: errors.New("assistant down")}
	chat := NewSupportChat(client)

	_, err := chat.Send(context.Background(), "hi")
	require.Error(t, err)
	require.Empty(t, chat.History())
}

func TestHistory_ReturnsACopy(t *testing.T) {
	client := &fakeChatAPI{reply: "reply"}
	chat := NewSupportChat(client)

	_, err := chat.Send(context.Background(), "hi")
	require.NoError(t, err)

	history := chat.History()
	history[0].Content = "mutated"

	require.Equal(t, "hi", chat.History()[0].Content)
}

func TestReset_DropsConversation(t *testing.T) {
	client := &fakeChatAPI{reply: "reply"}
	chat := NewSupportChat(client)

	_, err := chat.Send(context.Background(), "hi")
	require.NoError(t, err)

	chat.Reset()
	require.Empty(t, chat.History())

	_, err = chat.Send(context.Background(), "again")
	require.NoError(t, err)
	require.Empty(t, client.lastHistory)
}
