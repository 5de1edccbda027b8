package domain

import "time"

// DetectorConfig controls the on-device wake-word detector bridge. Single row,
// partial updates merged over stored values.
type DetectorConfig struct {
	ID                  uint      `gorm:"primaryKey;column:id" json:"-"`
	Enabled             bool      `gorm:"column:enabled;default:false" json:"enabled"`
	ActiveStartHour     int       `gorm:"column:active_start_hour;default:8" json:"active_start_hour"`
	ActiveEndHour       int       `gorm:"column:active_end_hour;default:21" json:"active_end_hour"`
	DebounceMs          int       `gorm:"column:debounce_ms;default:2000" json:"debounce_ms"`
	ConfidenceThreshold float64   `gorm:"column:confidence_threshold;type:numeric;default:0.7" json:"confidence_threshold"`
	BatterySaver        bool      `gorm:"column:battery_saver;default:false" json:"battery_saver"`
	OnlyDuringShopHours bool      `gorm:"column:only_during_shop_hours;default:true" json:"only_during_shop_hours"`
	UpdatedAt           time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (DetectorConfig) TableName() string {
	return "detector_config"
}

// DetectionEvent is one detector trigger, optionally resolved into a
// transcription and amount, and QA-markable as true/false positive.
type DetectionEvent struct {
	ID             string    `gorm:"primaryKey;column:id" json:"id"`
	Timestamp      int64     `gorm:"column:timestamp;not null" json:"timestamp"` // epoch ms
	Confidence     float64   `gorm:"column:confidence;type:numeric" json:"confidence"`
	ClipURI        string    `gorm:"column:clip_uri;type:text" json:"clip_uri,omitempty"`
	Transcription  string    `gorm:"column:transcription;type:text" json:"transcription,omitempty"`
	Amount         *float64  `gorm:"column:amount;type:numeric" json:"amount,omitempty"`
	IsProcessed    bool      `gorm:"column:is_processed;default:false" json:"is_processed"`
	IsTruePositive *bool     `gorm:"column:is_true_positive" json:"is_true_positive,omitempty"`
	Error          string    `gorm:"column:error;type:text" json:"error,omitempty"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (DetectionEvent) TableName() string {
	return "detection_events"
}

type DetectorStats struct {
	TotalDetections int `json:"total_detections"`
	TruePositives   int `json:"true_positives"`
	FalsePositives  int `json:"false_positives"`
	Unmarked        int `json:"unmarked"`
}
