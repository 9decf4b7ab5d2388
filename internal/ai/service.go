package ai

import (
	"context"
	"encoding/json"
	"fmt"

	lru "github.com/hashicorp/golang-lru"
	"github.com/rs/zerolog"

	"github.com/Kukuru-Pingpong/kukuruPingpong/internal/game"
)

const judgeFallbackReason = "판정 중 오류가 발생했습니다."

type Service struct {
	sentences SentenceGenerator
	judge     VoiceJudge
	tts       TextToSpeech
	images    ImageGenerator
	words     WordGenerator

	// sentenceCache memoizes remixes per (keyword, quote) pair; regenerating
	// the same remix costs an upstream round trip for an identical result.
	sentenceCache *lru.ARCCache
	logger        zerolog.Logger
}

func NewService(
	sentences SentenceGenerator,
	judge VoiceJudge,
	tts TextToSpeech,
	images ImageGenerator,
	words WordGenerator,
	cacheSize int,
	logger zerolog.Logger,
) (*Service, error) {
	cache, err := lru.NewARC(cacheSize)
	if err != nil {
		return nil, fmt.Errorf("sentence cache: %w", err)
	}

	return &Service{
		sentences:     sentences,
		judge:         judge,
		tts:           tts,
		images:        images,
		words:         words,
		sentenceCache: cache,
		logger:        logger,
	}, nil
}

func sentenceKey(keyword, quote string) string {
	return keyword + "\x00" + quote
}

func (s *Service) GenerateSentence(ctx context.Context, keyword, sourceQuote string) (string, error) {
	key := sentenceKey(keyword, sourceQuote)
	if cached, ok := s.sentenceCache.Get(key); ok {
		return cached.(string), nil
	}

	sentence, err := s.sentences.GenerateSentence(ctx, keyword, sourceQuote)
	if err != nil {
		return "", fmt.Errorf("generate sentence: %w", err)
	}

	s.sentenceCache.Add(key, sentence)
	return sentence, nil
}

// JudgeVoices runs the judge and normalizes its output. A failed or
// unparseable response degrades to the neutral midpoint judgment instead of
// an error: the round contract guarantees the resolver always gets a
// judgment.
func (s *Service) JudgeVoices(ctx context.Context, audio1 []byte, mime1 string, audio2 []byte, mime2 string, sentence string) game.Judgment {
	raw, err := s.judge.JudgeVoices(ctx, audio1, mime1, audio2, mime2, sentence)
	if err != nil {
		s.logger.Warn().Err(err).Msg("voice judge failed, using neutral judgment")
		return game.NeutralJudgment(judgeFallbackReason)
	}

	var judgment game.Judgment
	if err := json.Unmarshal(raw, &judgment); err != nil {
		s.logger.Warn().Err(err).Msg("unparseable judge response, using neutral judgment")
		return game.NeutralJudgment(judgeFallbackReason)
	}

	return game.NormalizeJudgment(judgment)
}

func (s *Service) Synthesize(ctx context.Context, text string) ([]byte, string, error) {
	data, mimeType, err := s.tts.Synthesize(ctx, text)
	if err != nil {
		return nil, "", fmt.Errorf("synthesize: %w", err)
	}
	return data, mimeType, nil
}

func (s *Service) GenerateCharacterImage(ctx context.Context, name, symbol, description string) ([]byte, string, error) {
	data, mimeType, err := s.images.GenerateCharacterImage(ctx, name, symbol, description)
	if err != nil {
		return nil, "", fmt.Errorf("generate character image: %w", err)
	}
	return data, mimeType, nil
}

func (s *Service) RandomWord() string {
	return s.words.Word()
}
