package speech

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

type SpeechConfig struct {
	BaseURL string
	APIKey  string
	Model   string
}

// SpeechRepository calls a Whisper-style transcription API. The audio itself
// is referenced by URI; the transcript comes back as plain text.
type SpeechRepository struct {
	speechConfig SpeechConfig
	client       *http.Client
}

func NewSpeechRepository(cfg SpeechConfig) *SpeechRepository {
	if cfg.Model == "" {
		cfg.Model = "whisper-1"
	}
	return &SpeechRepository{
		speechConfig: cfg,
		client:       &http.Client{Timeout: 30 * time.Second},
	}
}

type transcriptionRequest struct {
	AudioURI string `json:"audio_uri"`
	Model    string `json:"model"`
	Language string `json:"language"`
}

type transcriptionResponse struct {
	Text  string `json:"text"`
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (r *SpeechRepository) Transcribe(ctx context.Context, audioURI string) (string, error) {
	payload, err := json.Marshal(transcriptionRequest{
		AudioURI: audioURI,
		Model:    r.speechConfig.Model,
		Language: "en",
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal transcription request: %w", err)
	}

	url := r.speechConfig.BaseURL + "/v1/audio/transcriptions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, strings.NewReader(string(payload)))
	if err != nil {
		return "", err
	}
	req.Header.Add("Content-Type", "application/json")
	req.Header.Add("Authorization", "Bearer "+r.speechConfig.APIKey)

	res, err := r.client.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return "", err
	}

	var parsed transcriptionResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("failed to unmarshal transcription response: %w", err)
	}

	if res.StatusCode != http.StatusOK {
		if parsed.Error.Message != "" {
			return "", fmt.Errorf("transcription API error: %s", parsed.Error.Message)
		}
		return "", fmt.Errorf("transcription API error: %s", res.Status)
	}

	return parsed.Text, nil
}
