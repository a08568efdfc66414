package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"nyaay-saathi/internal/legaldata"
	"nyaay-saathi/internal/models"
	"nyaay-saathi/pkg/config"
)

type stubModel struct {
	mu       sync.Mutex
	answer   string
	err      error
	requests []CompletionRequest
	onCall   func()
}

func (m *stubModel) Complete(_ context.Context, req CompletionRequest) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.onCall != nil {
		m.onCall()
	}
	m.requests = append(m.requests, req)
	return m.answer, m.err
}

func (m *stubModel) calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.requests)
}

func newTestChatService(t *testing.T, scope string, model ChatModel) *ChatService {
	t.Helper()
	store, err := NewConversationStore(scope, 10)
	require.NoError(t, err)
	cache, err := NewMemoryResponseCache(100)
	require.NoError(t, err)

	return NewChatService(
		store,
		NewKnowledgeService(legaldata.DefaultQAPairs),
		cache,
		model,
		NewJargonService(legaldata.Jargon),
		NewTranslationService(legaldata.PhraseTables, legaldata.LegalTerms),
		5,
		zap.NewNop(),
	)
}

func TestChatService_KnowledgeBaseAnswerSkipsModel(t *testing.T) {
	model := &stubModel{onCall: func() { t.Fatal("model must not be called") }}
	svc := newTestChatService(t, config.ScopeSession, model)

	answer, err := svc.Chat(context.Background(), "s1", ChatRequest{
		Message:  "What are my rights during an arrest?",
		Language: "English",
	})
	require.NoError(t, err)
	assert.Equal(t, legaldata.DefaultQAPairs[0].Answer, answer)

	msgs := svc.Conversation("s1").Messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, models.RoleUser, msgs[0].Role)
	assert.Equal(t, models.RoleAssistant, msgs[1].Role)
	assert.Equal(t, StateIdle, svc.Conversation("s1").State())
}

func TestChatService_EmptyMessageIsValidationError(t *testing.T) {
	model := &stubModel{answer: "x"}
	svc := newTestChatService(t, config.ScopeSession, model)

	_, err := svc.Chat(context.Background(), "s1", ChatRequest{Message: "   "})
	require.Error(t, err)
	assert.Equal(t, KindValidation, KindOf(err))
	assert.Empty(t, svc.Conversation("s1").Messages())
	assert.Zero(t, model.calls())
}

func TestChatService_ModelAnswerIsCached(t *testing.T) {
	model := &stubModel{answer: "Consumer forums handle this."}
	svc := newTestChatService(t, config.ScopeSession, model)
	ctx := context.Background()

	first, err := svc.Chat(ctx, "s1", ChatRequest{Message: "Where do I complain about a faulty phone?"})
	require.NoError(t, err)
	second, err := svc.Chat(ctx, "s2", ChatRequest{Message: "Where do I complain about a faulty phone?"})
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, model.calls())

	req := model.requests[0]
	assert.Equal(t, systemPrompt, req.System)
	assert.InDelta(t, 0.3, req.Temperature, 0.0001)
	assert.Equal(t, 1000, req.MaxTokens)
	assert.False(t, req.JSON)
}

func TestChatService_ContextWindowIsLastFiveMessages(t *testing.T) {
	model := &stubModel{answer: "ok"}
	svc := newTestChatService(t, config.ScopeSession, model)
	ctx := context.Background()

	for _, msg := range []string{"one", "two", "three", "four"} {
		_, err := svc.Chat(ctx, "s1", ChatRequest{Message: msg})
		require.NoError(t, err)
	}

	last := model.requests[len(model.requests)-1]
	require.Len(t, last.Messages, 5)
	assert.Equal(t, "two", last.Messages[0].Content)
	assert.Equal(t, "four", last.Messages[4].Content)
	assert.Len(t, svc.Conversation("s1").Messages(), 8)
}

func TestChatService_ModelFailure(t *testing.T) {
	model := &stubModel{err: errors.New("upstream 503")}
	svc := newTestChatService(t, config.ScopeSession, model)

	_, err := svc.Chat(context.Background(), "s1", ChatRequest{Message: "Can my employer withhold salary?"})
	require.Error(t, err)
	assert.Equal(t, KindExternalService, KindOf(err))

	conv := svc.Conversation("s1")
	assert.Equal(t, StateFailed, conv.State())
	msgs := conv.Messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, models.RoleUser, msgs[0].Role)

	model.err = nil
	model.answer = "recovered"
	answer, err := svc.Chat(context.Background(), "s1", ChatRequest{Message: "Can my employer withhold salary?"})
	require.NoError(t, err)
	assert.Equal(t, "recovered", answer)
	assert.Equal(t, StateIdle, conv.State())
}

func TestChatService_ResetClearsContext(t *testing.T) {
	model := &stubModel{answer: "ok"}
	svc := newTestChatService(t, config.ScopeSession, model)
	ctx := context.Background()

	_, err := svc.Chat(ctx, "s1", ChatRequest{Message: "first question"})
	require.NoError(t, err)

	svc.Reset("s1")
	assert.Empty(t, svc.Conversation("s1").Messages())

	_, err = svc.Chat(ctx, "s1", ChatRequest{Message: "second question"})
	require.NoError(t, err)

	last := model.requests[len(model.requests)-1]
	require.Len(t, last.Messages, 1)
	assert.Equal(t, "second question", last.Messages[0].Content)
}

func TestChatService_SimplifyAndTranslate(t *testing.T) {
	model := &stubModel{answer: "You may apply for bail. Please consult a lawyer"}
	svc := newTestChatService(t, config.ScopeSession, model)

	answer, err := svc.Chat(context.Background(), "s1", ChatRequest{
		Message:  "Can I get out of jail?",
		Simplify: true,
		Language: "Hindi",
	})
	require.NoError(t, err)
	assert.Contains(t, answer, "bail (temporary release during trial proceedings)")
	assert.Contains(t, answer, "कृपया एक वकील से परामर्श करें")

	// The cache keeps the raw model answer.
	cached, ok := svc.cache.Get(context.Background(), QuestionHash("Can I get out of jail?"), "Hindi")
	require.True(t, ok)
	assert.Equal(t, model.answer, cached)
}

func TestChatService_SessionsAreIsolated(t *testing.T) {
	model := &stubModel{answer: "ok"}
	svc := newTestChatService(t, config.ScopeSession, model)
	ctx := context.Background()

	_, err := svc.Chat(ctx, "a", ChatRequest{Message: "question from a"})
	require.NoError(t, err)
	_, err = svc.Chat(ctx, "b", ChatRequest{Message: "question from b"})
	require.NoError(t, err)

	last := model.requests[len(model.requests)-1]
	require.Len(t, last.Messages, 1)
	assert.Equal(t, "question from b", last.Messages[0].Content)
}

func TestChatService_GlobalScopeSharesConversation(t *testing.T) {
	model := &stubModel{answer: "ok"}
	svc := newTestChatService(t, config.ScopeGlobal, model)
	ctx := context.Background()

	_, err := svc.Chat(ctx, "a", ChatRequest{Message: "question from a"})
	require.NoError(t, err)
	_, err = svc.Chat(ctx, "b", ChatRequest{Message: "question from b"})
	require.NoError(t, err)

	assert.Len(t, svc.Conversation("anything").Messages(), 4)
}

func TestChatService_ConcurrentTurnsDoNotInterleave(t *testing.T) {
	model := &stubModel{answer: "ok"}
	svc := newTestChatService(t, config.ScopeGlobal, model)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = svc.Chat(ctx, "", ChatRequest{Message: "tell me about tenancy law"})
		}()
	}
	wg.Wait()

	msgs := svc.Conversation("").Messages()
	require.Len(t, msgs, 40)
	for i := 0; i < len(msgs); i += 2 {
		assert.Equal(t, models.RoleUser, msgs[i].Role)
		assert.Equal(t, models.RoleAssistant, msgs[i+1].Role)
	}
}

func TestChatService_FAQsAndSimplify(t *testing.T) {
	svc := newTestChatService(t, config.ScopeSession, &stubModel{})

	assert.Equal(t, legaldata.DefaultQAPairs, svc.FAQs())
	assert.Equal(t, "no jargon here", svc.Simplify("no jargon here"))
}
