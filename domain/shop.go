package domain

import (
	"time"

	"gorm.io/datatypes"
)

type HourRange struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

type Supplier struct {
	Name         string `json:"name"`
	Contact      string `json:"contact"`
	LeadTimeDays int    `json:"lead_time_days"`
}

// ShopContext is the single-row shop profile consulted by the assistant and
// reporting surfaces. All fields have working defaults; updates are partial
// merges over the stored row.
type ShopContext struct {
	ID                       uint                           `gorm:"primaryKey;column:id" json:"-"`
	ShopName                 string                         `gorm:"column:shop_name;type:text" json:"shop_name"`
	OwnerName                string                         `gorm:"column:owner_name;type:text" json:"owner_name"`
	Timezone                 string                         `gorm:"column:timezone;type:text" json:"timezone"`
	Currency                 string                         `gorm:"column:currency;type:text" json:"currency"`
	PrimaryLanguage          string                         `gorm:"column:primary_language;type:text" json:"primary_language"`
	SecondaryLanguages       datatypes.JSONSlice[string]    `gorm:"column:secondary_languages;type:jsonb" json:"secondary_languages"`
	OpeningHour              string                         `gorm:"column:opening_hour;type:text" json:"opening_hour"`
	ClosingHour              string                         `gorm:"column:closing_hour;type:text" json:"closing_hour"`
	BusyHours                datatypes.JSONSlice[HourRange] `gorm:"column:busy_hours;type:jsonb" json:"busy_hours"`
	PaymentTypes             datatypes.JSONSlice[string]    `gorm:"column:payment_types;type:jsonb" json:"payment_types"`
	TypicalCustomers         string                         `gorm:"column:typical_customers;type:text" json:"typical_customers"`
	PreferredSuppliers       datatypes.JSONSlice[Supplier]  `gorm:"column:preferred_suppliers;type:jsonb" json:"preferred_suppliers"`
	ReorderThresholdDays     int                            `gorm:"column:reorder_threshold_days" json:"reorder_threshold_days"`
	DefaultTargetCoverageDay int                            `gorm:"column:default_target_coverage_days" json:"default_target_coverage_days"`
	PriceRounding            float64                        `gorm:"column:price_rounding;type:numeric" json:"price_rounding"`
	DemoMode                 bool                           `gorm:"column:demo_mode;default:false" json:"demo_mode"`
	LocalTone                string                         `gorm:"column:local_tone;type:text" json:"local_tone"`
	ShopAddressRegion        string                         `gorm:"column:shop_address_region;type:text" json:"shop_address_region"`
	TimeFormat               int                            `gorm:"column:time_format;default:12" json:"time_format"`
	UpdatedAt                time.Time                      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (ShopContext) TableName() string {
	return "shop_context"
}
