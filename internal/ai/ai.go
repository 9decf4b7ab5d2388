// Package ai fronts the generative collaborators: sentence remixing, voice
// judging, speech synthesis and character art. The concrete backends are
// injected; this package only owns caching, fallbacks and the REST surface.
package ai

import (
	"context"
	"errors"

	"github.com/valyala/fastrand"
)

var ErrUnavailable = errors.New("ai backend not configured")

type SentenceGenerator interface {
	GenerateSentence(ctx context.Context, keyword, sourceQuote string) (string, error)
}

type VoiceJudge interface {
	// JudgeVoices compares two performances of the same sentence and returns
	// the raw judgment payload produced by the judge.
	JudgeVoices(ctx context.Context, audio1 []byte, mime1 string, audio2 []byte, mime2 string, sentence string) ([]byte, error)
}

type TextToSpeech interface {
	Synthesize(ctx context.Context, text string) (data []byte, mimeType string, err error)
}

type ImageGenerator interface {
	GenerateCharacterImage(ctx context.Context, name, symbol, description string) (data []byte, mimeType string, err error)
}

type WordGenerator interface {
	Word() string
}

// Unconfigured is the default backend wiring: every generative call reports
// ErrUnavailable. Deployments plug real clients in cmd/server.
type Unconfigured struct{}

func (Unconfigured) GenerateSentence(context.Context, string, string) (string, error) {
	return "", ErrUnavailable
}

func (Unconfigured) JudgeVoices(context.Context, []byte, string, []byte, string, string) ([]byte, error) {
	return nil, ErrUnavailable
}

func (Unconfigured) Synthesize(context.Context, string) ([]byte, string, error) {
	return nil, "", ErrUnavailable
}

func (Unconfigured) GenerateCharacterImage(context.Context, string, string, string) ([]byte, string, error) {
	return nil, "", ErrUnavailable
}

// aiWords is the pool the "AI word" mode draws keywords from.
var aiWords = []string{
	"복수", "사랑", "배신", "용서", "침묵",
	"거짓말", "약속", "기억", "운명", "자존심",
}

type StaticWords struct{}

func (StaticWords) Word() string {
	return aiWords[fastrand.Uint32n(uint32(len(aiWords)))]
}
