package detector

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"smartShop/domain"
	"smartShop/pkg/logger"

	"github.com/google/uuid"
	"github.com/pobyzaarif/goshortcute"
)

const (
	eventsLimit    = 100
	pairingCodeTTL = 10 // minutes
)

// ---- Repository interfaces ----

type ConfigRepository interface {
	Get(ctx context.Context) (domain.DetectorConfig, bool, error)
	Upsert(ctx context.Context, cfg *domain.DetectorConfig) error
}

type EventRepository interface {
	Create(ctx context.Context, event *domain.DetectionEvent) error
	FindByID(ctx context.Context, id string) (domain.DetectionEvent, error)
	FindRecent(ctx context.Context, limit int) ([]domain.DetectionEvent, error)
	FindAll(ctx context.Context) ([]domain.DetectionEvent, error)
	Update(ctx context.Context, event *domain.DetectionEvent) error
}

// ---- Inputs ----

type ConfigUpdate struct {
	Enabled             *bool    `json:"enabled"`
	ActiveStartHour     *int     `json:"active_start_hour"`
	ActiveEndHour       *int     `json:"active_end_hour"`
	DebounceMs          *int     `json:"debounce_ms"`
	ConfidenceThreshold *float64 `json:"confidence_threshold"`
	BatterySaver        *bool    `json:"battery_saver"`
	OnlyDuringShopHours *bool    `json:"only_during_shop_hours"`
}

type EventInput struct {
	Confidence    float64  `json:"confidence" validate:"gte=0,lte=1"`
	ClipURI       string   `json:"clip_uri"`
	Transcription string   `json:"transcription"`
	Amount        *float64 `json:"amount"`
	Error         string   `json:"error"`
}

// DefaultConfig is what a freshly paired device runs with.
func DefaultConfig() domain.DetectorConfig {
	return domain.DetectorConfig{
		ID:                  1,
		Enabled:             false,
		ActiveStartHour:     8,
		ActiveEndHour:       21,
		DebounceMs:          2000,
		ConfidenceThreshold: 0.7,
		BatterySaver:        false,
		OnlyDuringShopHours: true,
	}
}

// ---- Service ----

type Service struct {
	cfgRepo    ConfigRepository
	eventRepo  EventRepository
	pairingKey string
	now        func() time.Time
}

func NewService(cfgRepo ConfigRepository, eventRepo EventRepository, pairingKey string) *Service {
	return &Service{
		cfgRepo:    cfgRepo,
		eventRepo:  eventRepo,
		pairingKey: pairingKey,
		now:        time.Now,
	}
}

func (s *Service) GetConfig(ctx context.Context) (domain.DetectorConfig, error) {
	if err := ctx.Err(); err != nil {
		return domain.DetectorConfig{}, fmt.Errorf("context error: %w", err)
	}

	stored, ok, err := s.cfgRepo.Get(ctx)
	if err != nil {
		return domain.DetectorConfig{}, fmt.Errorf("load detector config: %w", err)
	}
	if !ok {
		return DefaultConfig(), nil
	}
	return stored, nil
}

func (s *Service) UpdateConfig(ctx context.Context, update ConfigUpdate) (domain.DetectorConfig, error) {
	if err := ctx.Err(); err != nil {
		return domain.DetectorConfig{}, fmt.Errorf("context error: %w", err)
	}

	current, err := s.GetConfig(ctx)
	if err != nil {
		return domain.DetectorConfig{}, err
	}

	if update.ActiveStartHour != nil && (*update.ActiveStartHour < 0 || *update.ActiveStartHour > 23) {
		return domain.DetectorConfig{}, errors.New("active start hour must be between 0 and 23")
	}
	if update.ActiveEndHour != nil && (*update.ActiveEndHour < 0 || *update.ActiveEndHour > 23) {
		return domain.DetectorConfig{}, errors.New("active end hour must be between 0 and 23")
	}
	if update.ConfidenceThreshold != nil && (*update.ConfidenceThreshold < 0 || *update.ConfidenceThreshold > 1) {
		return domain.DetectorConfig{}, errors.New("confidence threshold must be between 0 and 1")
	}
	if update.DebounceMs != nil && *update.DebounceMs < 0 {
		return domain.DetectorConfig{}, errors.New("debounce cannot be negative")
	}

	if update.Enabled != nil {
		current.Enabled = *update.Enabled
	}
	if update.ActiveStartHour != nil {
		current.ActiveStartHour = *update.ActiveStartHour
	}
	if update.ActiveEndHour != nil {
		current.ActiveEndHour = *update.ActiveEndHour
	}
	if update.DebounceMs != nil {
		current.DebounceMs = *update.DebounceMs
	}
	if update.ConfidenceThreshold != nil {
		current.ConfidenceThreshold = *update.ConfidenceThreshold
	}
	if update.BatterySaver != nil {
		current.BatterySaver = *update.BatterySaver
	}
	if update.OnlyDuringShopHours != nil {
		current.OnlyDuringShopHours = *update.OnlyDuringShopHours
	}

	current.ID = 1
	if err := s.cfgRepo.Upsert(ctx, &current); err != nil {
		return domain.DetectorConfig{}, fmt.Errorf("save detector config: %w", err)
	}

	logger.Info("detector config updated", "enabled", current.Enabled)
	return current, nil
}

// RecordEvent stores one detector trigger as reported by the native bridge.
func (s *Service) RecordEvent(ctx context.Context, input EventInput) (domain.DetectionEvent, error) {
	if err := ctx.Err(); err != nil {
		return domain.DetectionEvent{}, fmt.Errorf("context error: %w", err)
	}
	if input.Confidence < 0 || input.Confidence > 1 {
		return domain.DetectionEvent{}, errors.New("confidence must be between 0 and 1")
	}

	event := domain.DetectionEvent{
		ID:            uuid.NewString(),
		Timestamp:     s.now().UnixMilli(),
		Confidence:    input.Confidence,
		ClipURI:       input.ClipURI,
		Transcription: input.Transcription,
		Amount:        input.Amount,
		IsProcessed:   input.Transcription != "",
		Error:         input.Error,
	}

	if err := s.eventRepo.Create(ctx, &event); err != nil {
		return domain.DetectionEvent{}, fmt.Errorf("failed to save detection event: %w", err)
	}

	logger.Debug("detection event recorded", "event_id", event.ID, "confidence", event.Confidence)
	return event, nil
}

// Events returns the most recent detections, newest first.
func (s *Service) Events(ctx context.Context) ([]domain.DetectionEvent, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	events, err := s.eventRepo.FindRecent(ctx, eventsLimit)
	if err != nil {
		return nil, fmt.Errorf("load detection events: %w", err)
	}
	return events, nil
}

// MarkEvent records the QA verdict for one detection.
func (s *Service) MarkEvent(ctx context.Context, eventID string, truePositive bool) (domain.DetectionEvent, error) {
	if err := ctx.Err(); err != nil {
		return domain.DetectionEvent{}, fmt.Errorf("context error: %w", err)
	}

	event, err := s.eventRepo.FindByID(ctx, eventID)
	if err != nil {
		return domain.DetectionEvent{}, fmt.Errorf("look up detection event %s: %w", eventID, err)
	}

	event.IsTruePositive = &truePositive
	event.IsProcessed = true

	if err := s.eventRepo.Update(ctx, &event); err != nil {
		return domain.DetectionEvent{}, fmt.Errorf("failed to mark detection event: %w", err)
	}
	return event, nil
}

func (s *Service) Stats(ctx context.Context) (domain.DetectorStats, error) {
	if err := ctx.Err(); err != nil {
		return domain.DetectorStats{}, fmt.Errorf("context error: %w", err)
	}

	events, err := s.eventRepo.FindAll(ctx)
	if err != nil {
		return domain.DetectorStats{}, fmt.Errorf("load detection events: %w", err)
	}

	stats := domain.DetectorStats{TotalDetections: len(events)}
	for _, event := range events {
		switch {
		case event.IsTruePositive == nil:
			stats.Unmarked++
		case *event.IsTruePositive:
			stats.TruePositives++
		default:
			stats.FalsePositives++
		}
	}
	return stats, nil
}

// Pair issues an expiring code the native bridge presents when it connects.
func (s *Service) Pair(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("context error: %w", err)
	}
	if s.pairingKey == "" {
		return "", errors.New("pairing is not configured")
	}

	expAt := s.now().Add(time.Minute * pairingCodeTTL).Unix()
	payload := fmt.Sprintf("%v|%v", uuid.NewString(), expAt)

	encrypted, err := goshortcute.AESCBCEncrypt([]byte(payload), []byte(s.pairingKey))
	if err != nil {
		return "", fmt.Errorf("encrypt pairing code: %w", err)
	}

	return goshortcute.StringtoBase64Encode(encrypted), nil
}

// VerifyPairing checks a presented code and rejects expired or garbled ones.
func (s *Service) VerifyPairing(ctx context.Context, code string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}
	if s.pairingKey == "" {
		return errors.New("pairing is not configured")
	}

	decoded := goshortcute.StringtoBase64Decode(code)
	decrypted, err := goshortcute.AESCBCDecrypt([]byte(decoded), []byte(s.pairingKey))
	if err != nil {
		logger.Error("pairing code decrypt failed", err)
		return errors.New("invalid or expired pairing code")
	}

	parts := strings.Split(decrypted, "|")
	if len(parts) != 2 {
		return errors.New("invalid or expired pairing code")
	}

	expAt, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return errors.New("invalid or expired pairing code")
	}
	if s.now().Unix() > expAt {
		return errors.New("invalid or expired pairing code")
	}
	return nil
}
