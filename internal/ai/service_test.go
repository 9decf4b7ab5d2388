package ai

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSentenceGenerator struct {
	mock.Mock
}

func (m *MockSentenceGenerator) GenerateSentence(ctx context.Context, keyword, sourceQuote string) (string, error) {
	args := m.Called(ctx, keyword, sourceQuote)
	return args.String(0), args.Error(1)
}

type MockVoiceJudge struct {
	mock.Mock
}

func (m *MockVoiceJudge) JudgeVoices(ctx context.Context, audio1 []byte, mime1 string, audio2 []byte, mime2 string, sentence string) ([]byte, error) {
	args := m.Called(ctx, audio1, mime1, audio2, mime2, sentence)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func newTestService(t *testing.T, sentences SentenceGenerator, judge VoiceJudge) *Service {
	t.Helper()
	if sentences == nil {
		sentences = Unconfigured{}
	}
	if judge == nil {
		judge = Unconfigured{}
	}
	svc, err := NewService(sentences, judge, Unconfigured{}, Unconfigured{}, StaticWords{}, 16, zerolog.Nop())
	require.NoError(t, err)
	return svc
}

func TestGenerateSentenceCachesPerKeywordAndQuote(t *testing.T) {
	t.Parallel()
	gen := &MockSentenceGenerator{}
	svc := newTestService(t, gen, nil)
	ctx := context.Background()

	gen.On("GenerateSentence", ctx, "복수", "누구냐, 넌.").Return("복수하러 왔다, 누구냐 넌!", nil).Once()

	first, err := svc.GenerateSentence(ctx, "복수", "누구냐, 넌.")
	require.NoError(t, err)
	second, err := svc.GenerateSentence(ctx, "복수", "누구냐, 넌.")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	gen.AssertExpectations(t) // upstream hit exactly once

	// a different keyword misses the cache
	gen.On("GenerateSentence", ctx, "사랑", "누구냐, 넌.").Return("사랑이냐 넌?", nil).Once()
	_, err = svc.GenerateSentence(ctx, "사랑", "누구냐, 넌.")
	require.NoError(t, err)
	gen.AssertExpectations(t)
}

func TestGenerateSentenceDoesNotCacheFailures(t *testing.T) {
	t.Parallel()
	gen := &MockSentenceGenerator{}
	svc := newTestService(t, gen, nil)
	ctx := context.Background()

	gen.On("GenerateSentence", ctx, "운명", "").Return("", assert.AnError).Once()
	gen.On("GenerateSentence", ctx, "운명", "").Return("운명이다.", nil).Once()

	_, err := svc.GenerateSentence(ctx, "운명", "")
	require.Error(t, err)

	sentence, err := svc.GenerateSentence(ctx, "운명", "")
	require.NoError(t, err)
	assert.Equal(t, "운명이다.", sentence)
	gen.AssertExpectations(t)
}

func TestJudgeVoices(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	audio1, audio2 := []byte("a1"), []byte("a2")

	t.Run("normalizes the judge response", func(t *testing.T) {
		t.Parallel()
		judge := &MockVoiceJudge{}
		svc := newTestService(t, nil, judge)

		// judge reports a bogus winner; normalization overrules it
		raw := []byte(`{
			"player1_tone": 90, "player1_emotion": 90, "player1_rhythm": 90, "player1_pronunciation": 90,
			"player2_tone": 40, "player2_emotion": 40, "player2_rhythm": 40, "player2_pronunciation": 40,
			"winner": 2, "reason": "ok"
		}`)
		judge.On("JudgeVoices", ctx, audio1, "audio/webm", audio2, "audio/webm", "문장").Return(raw, nil).Once()

		j := svc.JudgeVoices(ctx, audio1, "audio/webm", audio2, "audio/webm", "문장")
		assert.Equal(t, 1, j.Winner)
		assert.Equal(t, 90.0, j.Player1Total)
		assert.Equal(t, 40.0, j.Player2Total)
		judge.AssertExpectations(t)
	})

	t.Run("falls back to neutral on judge error", func(t *testing.T) {
		t.Parallel()
		judge := &MockVoiceJudge{}
		svc := newTestService(t, nil, judge)

		judge.On("JudgeVoices", ctx, audio1, "", audio2, "", "문장").Return(nil, assert.AnError).Once()

		j := svc.JudgeVoices(ctx, audio1, "", audio2, "", "문장")
		assert.Equal(t, 1, j.Winner)
		assert.Equal(t, 50.0, j.Player1Total)
		assert.Equal(t, 50.0, j.Player2Total)
	})

	t.Run("falls back to neutral on garbage response", func(t *testing.T) {
		t.Parallel()
		judge := &MockVoiceJudge{}
		svc := newTestService(t, nil, judge)

		judge.On("JudgeVoices", ctx, audio1, "", audio2, "", "문장").Return([]byte("not json"), nil).Once()

		j := svc.JudgeVoices(ctx, audio1, "", audio2, "", "문장")
		assert.Equal(t, 1, j.Winner)
		assert.Equal(t, 50.0, j.Player1Total)
	})
}

func TestStaticWords(t *testing.T) {
	t.Parallel()
	words := StaticWords{}
	for i := 0; i < 20; i++ {
		assert.Contains(t, aiWords, words.Word())
	}
}

func TestUnconfiguredBackends(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	_, err := Unconfigured{}.GenerateSentence(ctx, "w", "q")
	assert.ErrorIs(t, err, ErrUnavailable)
	_, _, err = Unconfigured{}.Synthesize(ctx, "text")
	assert.ErrorIs(t, err, ErrUnavailable)
	_, _, err = Unconfigured{}.GenerateCharacterImage(ctx, "n", "s", "d")
	assert.ErrorIs(t, err, ErrUnavailable)
}
