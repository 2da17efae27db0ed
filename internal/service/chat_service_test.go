package service

import (
	"errors"
	"strings"
	"testing"

	"ai-notecapture-be/internal/dto"
	"ai-notecapture-be/internal/entity"
	"ai-notecapture-be/pkg/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatServiceSendMessageSuccess(t *testing.T) {
	f := newFixture(t)
	nb := f.createNotebook(t, "Travel")
	f.addContent(t, nb.Id, "Flights", "Depart Monday 9am")

	provider := &fakeLLM{reply: "A"}
	svc := f.chatService(provider)

	res, err := svc.SendMessage(f.ctx, nb.Id, &dto.SendChatMessageRequest{Question: "Q"})
	require.NoError(t, err)
	assert.Equal(t, "Q", res.Question.Content)
	assert.Equal(t, "A", res.Answer.Content)

	history, err := f.chat.ListByNotebook(f.ctx, nb.Id)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, entity.ChatRoleUser, history[0].Role)
	assert.Equal(t, "Q", history[0].Content)
	assert.Equal(t, entity.ChatRoleAssistant, history[1].Role)
	assert.Equal(t, "A", history[1].Content)

	assert.Contains(t, f.events.types(), events.ChatAnswered)
}

func TestChatServiceSendMessageFailureKeepsQuestion(t *testing.T) {
	f := newFixture(t)
	nb := f.createNotebook(t, "Travel")
	f.addContent(t, nb.Id, "Flights", "Depart Monday 9am")

	svc := f.chatService(&fakeLLM{err: errors.New("quota exceeded")})

	_, err := svc.SendMessage(f.ctx, nb.Id, &dto.SendChatMessageRequest{Question: "Q"})
	require.ErrorIs(t, err, ErrCompletionFailed)

	history, err := f.chat.ListByNotebook(f.ctx, nb.Id)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, entity.ChatRoleUser, history[0].Role)
	assert.Equal(t, "Q", history[0].Content)
	assert.NotContains(t, f.events.types(), events.ChatAnswered)
}

func TestChatServicePromptCarriesNotebookContext(t *testing.T) {
	f := newFixture(t)
	nb := f.createNotebook(t, "Kitchen")
	f.addContent(t, nb.Id, "Older", "flour and water")
	f.addContent(t, nb.Id, "Newer", "https://example.com/bread")

	provider := &fakeLLM{reply: "ok"}
	_, err := f.chatService(provider).SendMessage(f.ctx, nb.Id, &dto.SendChatMessageRequest{Question: "  How do I bake?  "})
	require.NoError(t, err)

	require.Len(t, provider.prompts, 1)
	prompt := provider.prompts[0]
	assert.Contains(t, prompt, `knowledge base called "Kitchen"`)
	assert.Contains(t, prompt, "Title: Newer\nType: link\nContent: https://example.com/bread\n---\nTitle: Older\nType: text\nContent: flour and water\n---")
	assert.Contains(t, prompt, "User question: How do I bake?")
	assert.Less(t, strings.Index(prompt, "Title: Newer"), strings.Index(prompt, "Title: Older"))
}

func TestChatServiceRejectsSecondRequestWhileInFlight(t *testing.T) {
	f := newFixture(t)
	nb := f.createNotebook(t, "Busy")
	other := f.createNotebook(t, "Idle")

	provider := &fakeLLM{reply: "done", block: make(chan struct{}), entered: make(chan struct{}, 2)}
	svc := f.chatService(provider)

	errc := make(chan error, 1)
	go func() {
		_, err := svc.SendMessage(f.ctx, nb.Id, &dto.SendChatMessageRequest{Question: "first"})
		errc <- err
	}()
	<-provider.entered

	_, err := svc.SendMessage(f.ctx, nb.Id, &dto.SendChatMessageRequest{Question: "second"})
	assert.ErrorIs(t, err, ErrChatInFlight)

	// other notebooks are independent
	otherErr := make(chan error, 1)
	go func() {
		_, err := svc.SendMessage(f.ctx, other.Id, &dto.SendChatMessageRequest{Question: "parallel"})
		otherErr <- err
	}()
	<-provider.entered

	close(provider.block)
	require.NoError(t, <-errc)
	require.NoError(t, <-otherErr)

	_, err = svc.SendMessage(f.ctx, nb.Id, &dto.SendChatMessageRequest{Question: "third"})
	assert.NoError(t, err)
}

func TestChatServiceValidation(t *testing.T) {
	f := newFixture(t)
	nb := f.createNotebook(t, "Empty")
	svc := f.chatService(&fakeLLM{reply: "x"})

	_, err := svc.SendMessage(f.ctx, nb.Id, &dto.SendChatMessageRequest{Question: "   "})
	require.Error(t, err)

	_, err = svc.SendMessage(f.ctx, "missing", &dto.SendChatMessageRequest{Question: "Q"})
	assert.ErrorIs(t, err, ErrNotebookNotFound)

	history, err := f.chat.ListByNotebook(f.ctx, nb.Id)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestChatServiceHistoryAndClear(t *testing.T) {
	f := newFixture(t)
	a := f.createNotebook(t, "A")
	b := f.createNotebook(t, "B")
	svc := f.chatService(&fakeLLM{reply: "answer"})

	for _, q := range []string{"one", "two"} {
		_, err := svc.SendMessage(f.ctx, a.Id, &dto.SendChatMessageRequest{Question: q})
		require.NoError(t, err)
	}
	_, err := svc.SendMessage(f.ctx, b.Id, &dto.SendChatMessageRequest{Question: "three"})
	require.NoError(t, err)

	history, err := svc.GetHistory(f.ctx, a.Id)
	require.NoError(t, err)
	require.Len(t, history, 4)
	assert.Equal(t, "one", history[0].Content)
	assert.Equal(t, "answer", history[1].Content)
	assert.Equal(t, "two", history[2].Content)

	require.NoError(t, svc.ClearHistory(f.ctx, a.Id))
	history, err = svc.GetHistory(f.ctx, a.Id)
	require.NoError(t, err)
	assert.Empty(t, history)

	untouched, err := svc.GetHistory(f.ctx, b.Id)
	require.NoError(t, err)
	assert.Len(t, untouched, 2)

	require.NoError(t, svc.ClearHistory(f.ctx, a.Id))
	assert.ErrorIs(t, svc.ClearHistory(f.ctx, "missing"), ErrNotebookNotFound)
}
