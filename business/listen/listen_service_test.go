package listen

import (
	"context"
	"errors"
	"testing"

	"smartShop/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSpeech struct {
	transcript string
	err        error
	calls      int
}

func (s *stubSpeech) Transcribe(ctx context.Context, audioURI string) (string, error) {
	s.calls++
	return s.transcript, s.err
}

type stubSuggester struct {
	suggestions []domain.SuggestedCombination
	err         error
	lastAmount  float64
}

func (s *stubSuggester) Suggest(ctx context.Context, amount float64) ([]domain.SuggestedCombination, error) {
	s.lastAmount = amount
	return s.suggestions, s.err
}

func TestListenWithTranscript(t *testing.T) {
	suggester := &stubSuggester{suggestions: []domain.SuggestedCombination{{Total: 45, Confidence: 1.0}}}
	speech := &stubSpeech{}
	svc := NewService(speech, suggester)

	result, err := svc.Listen(context.Background(), ListenInput{Transcript: "received 45 rupees"})
	require.NoError(t, err)

	assert.Equal(t, 45.0, result.Amount)
	assert.Equal(t, 45.0, suggester.lastAmount)
	require.Len(t, result.Suggestions, 1)
	// transcript provided directly, no transcription round-trip
	assert.Equal(t, 0, speech.calls)
}

func TestListenTranscribesAudio(t *testing.T) {
	suggester := &stubSuggester{}
	speech := &stubSpeech{transcript: "payment of forty five rupees"}
	svc := NewService(speech, suggester)

	result, err := svc.Listen(context.Background(), ListenInput{AudioURI: "file:///clip.m4a"})
	require.NoError(t, err)

	assert.Equal(t, 1, speech.calls)
	assert.Equal(t, "payment of forty five rupees", result.Transcript)
	assert.Equal(t, 45.0, result.Amount)
}

func TestListenRequiresInput(t *testing.T) {
	svc := NewService(&stubSpeech{}, &stubSuggester{})

	_, err := svc.Listen(context.Background(), ListenInput{})
	assert.Error(t, err)
}

func TestListenNoAmountInTranscript(t *testing.T) {
	svc := NewService(&stubSpeech{}, &stubSuggester{})

	_, err := svc.Listen(context.Background(), ListenInput{Transcript: "good morning bhaiya"})
	assert.Error(t, err)
}

func TestListenPropagatesTranscriptionError(t *testing.T) {
	svc := NewService(&stubSpeech{err: errors.New("whisper down")}, &stubSuggester{})

	_, err := svc.Listen(context.Background(), ListenInput{AudioURI: "file:///clip.m4a"})
	assert.Error(t, err)
}

func TestListenPropagatesSuggesterError(t *testing.T) {
	svc := NewService(&stubSpeech{}, &stubSuggester{err: errors.New("db down")})

	_, err := svc.Listen(context.Background(), ListenInput{Transcript: "50 received"})
	assert.Error(t, err)
}
