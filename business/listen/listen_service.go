package listen

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"smartShop/domain"
	"smartShop/pkg/logger"
)

// ---- Collaborator interfaces ----

type SpeechRepository interface {
	Transcribe(ctx context.Context, audioURI string) (string, error)
}

type Suggester interface {
	Suggest(ctx context.Context, amount float64) ([]domain.SuggestedCombination, error)
}

// ---- Inputs / outputs ----

type ListenInput struct {
	Transcript string `json:"transcript"`
	AudioURI   string `json:"audio_uri"`
}

type ListenResult struct {
	Transcript  string                        `json:"transcript"`
	Amount      float64                       `json:"amount"`
	Suggestions []domain.SuggestedCombination `json:"suggestions"`
}

// ---- Service ----

type Service struct {
	speech    SpeechRepository
	suggester Suggester
}

func NewService(speech SpeechRepository, suggester Suggester) *Service {
	return &Service{
		speech:    speech,
		suggester: suggester,
	}
}

// Listen turns an overheard payment into basket suggestions: transcribe if
// only audio was given, extract the amount, suggest combinations.
func (s *Service) Listen(ctx context.Context, input ListenInput) (ListenResult, error) {
	if err := ctx.Err(); err != nil {
		return ListenResult{}, fmt.Errorf("context error: %w", err)
	}

	transcript := strings.TrimSpace(input.Transcript)
	if transcript == "" {
		if strings.TrimSpace(input.AudioURI) == "" {
			return ListenResult{}, errors.New("transcript or audio uri is required")
		}
		if s.speech == nil {
			return ListenResult{}, errors.New("speech transcription is not configured")
		}

		var err error
		transcript, err = s.speech.Transcribe(ctx, input.AudioURI)
		if err != nil {
			return ListenResult{}, fmt.Errorf("transcribe audio: %w", err)
		}
	}

	amount, ok := ExtractAmount(transcript)
	if !ok {
		return ListenResult{}, errors.New("no amount found in transcript")
	}

	suggestions, err := s.suggester.Suggest(ctx, amount)
	if err != nil {
		return ListenResult{}, fmt.Errorf("suggest combinations: %w", err)
	}

	logger.Debug("listen resolved",
		"amount", amount,
		"suggestions", len(suggestions),
	)

	return ListenResult{
		Transcript:  transcript,
		Amount:      amount,
		Suggestions: suggestions,
	}, nil
}
