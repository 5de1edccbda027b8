package detector

import (
	"context"
	"errors"
	"testing"
	"time"

	"smartShop/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memConfigRepo struct {
	stored *domain.DetectorConfig
	err    error
}

func (r *memConfigRepo) Get(ctx context.Context) (domain.DetectorConfig, bool, error) {
	if r.err != nil {
		return domain.DetectorConfig{}, false, r.err
	}
	if r.stored == nil {
		return domain.DetectorConfig{}, false, nil
	}
	return *r.stored, true, nil
}

func (r *memConfigRepo) Upsert(ctx context.Context, cfg *domain.DetectorConfig) error {
	if r.err != nil {
		return r.err
	}
	copied := *cfg
	r.stored = &copied
	return nil
}

type memEventRepo struct {
	events map[string]*domain.DetectionEvent
	order  []string
}

func newMemEventRepo() *memEventRepo {
	return &memEventRepo{events: make(map[string]*domain.DetectionEvent)}
}

func (r *memEventRepo) Create(ctx context.Context, event *domain.DetectionEvent) error {
	r.events[event.ID] = event
	r.order = append(r.order, event.ID)
	return nil
}

func (r *memEventRepo) FindByID(ctx context.Context, id string) (domain.DetectionEvent, error) {
	e, ok := r.events[id]
	if !ok {
		return domain.DetectionEvent{}, errors.New("detection event not found")
	}
	return *e, nil
}

func (r *memEventRepo) FindRecent(ctx context.Context, limit int) ([]domain.DetectionEvent, error) {
	var out []domain.DetectionEvent
	for i := len(r.order) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, *r.events[r.order[i]])
	}
	return out, nil
}

func (r *memEventRepo) FindAll(ctx context.Context) ([]domain.DetectionEvent, error) {
	out := make([]domain.DetectionEvent, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, *r.events[id])
	}
	return out, nil
}

func (r *memEventRepo) Update(ctx context.Context, event *domain.DetectionEvent) error {
	if _, ok := r.events[event.ID]; !ok {
		return errors.New("detection event not found")
	}
	r.events[event.ID] = event
	return nil
}

const testPairingKey = "0123456789abcdef0123456789abcdef"

var testNow = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

func newDetectorService(cfgRepo *memConfigRepo, eventRepo *memEventRepo) *Service {
	svc := NewService(cfgRepo, eventRepo, testPairingKey)
	svc.now = func() time.Time { return testNow }
	return svc
}

func TestGetConfigDefaults(t *testing.T) {
	svc := newDetectorService(&memConfigRepo{}, newMemEventRepo())

	cfg, err := svc.GetConfig(context.Background())
	require.NoError(t, err)

	assert.False(t, cfg.Enabled)
	assert.Equal(t, 8, cfg.ActiveStartHour)
	assert.Equal(t, 21, cfg.ActiveEndHour)
	assert.Equal(t, 2000, cfg.DebounceMs)
	assert.Equal(t, 0.7, cfg.ConfidenceThreshold)
	assert.True(t, cfg.OnlyDuringShopHours)
}

func TestUpdateConfigPartial(t *testing.T) {
	repo := &memConfigRepo{}
	svc := newDetectorService(repo, newMemEventRepo())

	enabled := true
	threshold := 0.85
	cfg, err := svc.UpdateConfig(context.Background(), ConfigUpdate{
		Enabled:             &enabled,
		ConfidenceThreshold: &threshold,
	})
	require.NoError(t, err)

	assert.True(t, cfg.Enabled)
	assert.Equal(t, 0.85, cfg.ConfidenceThreshold)
	assert.Equal(t, 2000, cfg.DebounceMs)
	require.NotNil(t, repo.stored)
}

func TestUpdateConfigValidation(t *testing.T) {
	svc := newDetectorService(&memConfigRepo{}, newMemEventRepo())

	badHour := 24
	_, err := svc.UpdateConfig(context.Background(), ConfigUpdate{ActiveStartHour: &badHour})
	assert.Error(t, err)

	badThreshold := 1.5
	_, err = svc.UpdateConfig(context.Background(), ConfigUpdate{ConfidenceThreshold: &badThreshold})
	assert.Error(t, err)

	badDebounce := -1
	_, err = svc.UpdateConfig(context.Background(), ConfigUpdate{DebounceMs: &badDebounce})
	assert.Error(t, err)
}

func TestRecordEventAndList(t *testing.T) {
	svc := newDetectorService(&memConfigRepo{}, newMemEventRepo())

	first, err := svc.RecordEvent(context.Background(), EventInput{Confidence: 0.9, ClipURI: "file:///clip1.wav"})
	require.NoError(t, err)
	assert.Equal(t, testNow.UnixMilli(), first.Timestamp)
	assert.False(t, first.IsProcessed)

	second, err := svc.RecordEvent(context.Background(), EventInput{Confidence: 0.8, Transcription: "fifty rupees"})
	require.NoError(t, err)
	assert.True(t, second.IsProcessed)

	events, err := svc.Events(context.Background())
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, second.ID, events[0].ID)
	assert.Equal(t, first.ID, events[1].ID)
}

func TestRecordEventRejectsBadConfidence(t *testing.T) {
	svc := newDetectorService(&memConfigRepo{}, newMemEventRepo())

	_, err := svc.RecordEvent(context.Background(), EventInput{Confidence: 1.2})
	assert.Error(t, err)

	_, err = svc.RecordEvent(context.Background(), EventInput{Confidence: -0.1})
	assert.Error(t, err)
}

func TestMarkEventAndStats(t *testing.T) {
	svc := newDetectorService(&memConfigRepo{}, newMemEventRepo())

	a, _ := svc.RecordEvent(context.Background(), EventInput{Confidence: 0.9})
	b, _ := svc.RecordEvent(context.Background(), EventInput{Confidence: 0.6})
	_, _ = svc.RecordEvent(context.Background(), EventInput{Confidence: 0.7})

	marked, err := svc.MarkEvent(context.Background(), a.ID, true)
	require.NoError(t, err)
	require.NotNil(t, marked.IsTruePositive)
	assert.True(t, *marked.IsTruePositive)
	assert.True(t, marked.IsProcessed)

	_, err = svc.MarkEvent(context.Background(), b.ID, false)
	require.NoError(t, err)

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.DetectorStats{
		TotalDetections: 3,
		TruePositives:   1,
		FalsePositives:  1,
		Unmarked:        1,
	}, stats)
}

func TestMarkEventUnknownID(t *testing.T) {
	svc := newDetectorService(&memConfigRepo{}, newMemEventRepo())

	_, err := svc.MarkEvent(context.Background(), "missing", true)
	assert.Error(t, err)
}

func TestPairingRoundTrip(t *testing.T) {
	svc := newDetectorService(&memConfigRepo{}, newMemEventRepo())

	code, err := svc.Pair(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, code)

	assert.NoError(t, svc.VerifyPairing(context.Background(), code))
}

func TestPairingCodeExpires(t *testing.T) {
	svc := newDetectorService(&memConfigRepo{}, newMemEventRepo())

	code, err := svc.Pair(context.Background())
	require.NoError(t, err)

	svc.now = func() time.Time { return testNow.Add(11 * time.Minute) }
	assert.Error(t, svc.VerifyPairing(context.Background(), code))
}

func TestVerifyPairingRejectsGarbage(t *testing.T) {
	svc := newDetectorService(&memConfigRepo{}, newMemEventRepo())

	assert.Error(t, svc.VerifyPairing(context.Background(), "not-a-code"))
}
