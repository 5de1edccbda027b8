package shop

import (
	"context"
	"errors"
	"fmt"

	"smartShop/domain"
	"smartShop/pkg/logger"

	"gorm.io/datatypes"
)

// ---- Repository interface ----

type ContextRepository interface {
	Get(ctx context.Context) (domain.ShopContext, bool, error)
	Upsert(ctx context.Context, shopCtx *domain.ShopContext) error
}

// ContextUpdate carries only the fields the caller wants changed.
type ContextUpdate struct {
	ShopName                 *string             `json:"shop_name"`
	OwnerName                *string             `json:"owner_name"`
	Timezone                 *string             `json:"timezone"`
	Currency                 *string             `json:"currency"`
	PrimaryLanguage          *string             `json:"primary_language"`
	SecondaryLanguages       *[]string           `json:"secondary_languages"`
	OpeningHour              *string             `json:"opening_hour"`
	ClosingHour              *string             `json:"closing_hour"`
	BusyHours                *[]domain.HourRange `json:"busy_hours"`
	PaymentTypes             *[]string           `json:"payment_types"`
	TypicalCustomers         *string             `json:"typical_customers"`
	PreferredSuppliers       *[]domain.Supplier  `json:"preferred_suppliers"`
	ReorderThresholdDays     *int                `json:"reorder_threshold_days"`
	DefaultTargetCoverageDay *int                `json:"default_target_coverage_days"`
	PriceRounding            *float64            `json:"price_rounding"`
	DemoMode                 *bool               `json:"demo_mode"`
	LocalTone                *string             `json:"local_tone"`
	ShopAddressRegion        *string             `json:"shop_address_region"`
	TimeFormat               *int                `json:"time_format"`
}

// DefaultContext is the profile a brand-new shop starts from.
func DefaultContext() domain.ShopContext {
	return domain.ShopContext{
		ID:                       1,
		ShopName:                 "My Shop",
		Timezone:                 "Asia/Kolkata",
		Currency:                 "INR",
		PrimaryLanguage:          "en",
		SecondaryLanguages:       datatypes.JSONSlice[string]{},
		OpeningHour:              "08:00",
		ClosingHour:              "21:00",
		BusyHours:                datatypes.JSONSlice[domain.HourRange]{{Start: 8, End: 10}, {Start: 17, End: 20}},
		PaymentTypes:             datatypes.JSONSlice[string]{"cash", "upi"},
		PreferredSuppliers:       datatypes.JSONSlice[domain.Supplier]{},
		ReorderThresholdDays:     3,
		DefaultTargetCoverageDay: 7,
		PriceRounding:            1,
		TimeFormat:               12,
	}
}

// ---- Service ----

type Service struct {
	repo ContextRepository
}

func NewService(repo ContextRepository) *Service {
	return &Service{repo: repo}
}

// Get returns the stored profile, or the defaults when nothing is stored yet.
func (s *Service) Get(ctx context.Context) (domain.ShopContext, error) {
	if err := ctx.Err(); err != nil {
		return domain.ShopContext{}, fmt.Errorf("context error: %w", err)
	}

	stored, ok, err := s.repo.Get(ctx)
	if err != nil {
		return domain.ShopContext{}, fmt.Errorf("load shop context: %w", err)
	}
	if !ok {
		return DefaultContext(), nil
	}
	return stored, nil
}

// Update merges the provided fields over the current profile and persists the
// result. Omitted fields keep their stored values.
func (s *Service) Update(ctx context.Context, update ContextUpdate) (domain.ShopContext, error) {
	if err := ctx.Err(); err != nil {
		return domain.ShopContext{}, fmt.Errorf("context error: %w", err)
	}

	current, err := s.Get(ctx)
	if err != nil {
		return domain.ShopContext{}, err
	}

	if update.TimeFormat != nil && *update.TimeFormat != 12 && *update.TimeFormat != 24 {
		return domain.ShopContext{}, errors.New("time format must be 12 or 24")
	}

	if update.ShopName != nil {
		current.ShopName = *update.ShopName
	}
	if update.OwnerName != nil {
		current.OwnerName = *update.OwnerName
	}
	if update.Timezone != nil {
		current.Timezone = *update.Timezone
	}
	if update.Currency != nil {
		current.Currency = *update.Currency
	}
	if update.PrimaryLanguage != nil {
		current.PrimaryLanguage = *update.PrimaryLanguage
	}
	if update.SecondaryLanguages != nil {
		current.SecondaryLanguages = datatypes.JSONSlice[string](*update.SecondaryLanguages)
	}
	if update.OpeningHour != nil {
		current.OpeningHour = *update.OpeningHour
	}
	if update.ClosingHour != nil {
		current.ClosingHour = *update.ClosingHour
	}
	if update.BusyHours != nil {
		current.BusyHours = datatypes.JSONSlice[domain.HourRange](*update.BusyHours)
	}
	if update.PaymentTypes != nil {
		current.PaymentTypes = datatypes.JSONSlice[string](*update.PaymentTypes)
	}
	if update.TypicalCustomers != nil {
		current.TypicalCustomers = *update.TypicalCustomers
	}
	if update.PreferredSuppliers != nil {
		current.PreferredSuppliers = datatypes.JSONSlice[domain.Supplier](*update.PreferredSuppliers)
	}
	if update.ReorderThresholdDays != nil {
		current.ReorderThresholdDays = *update.ReorderThresholdDays
	}
	if update.DefaultTargetCoverageDay != nil {
		current.DefaultTargetCoverageDay = *update.DefaultTargetCoverageDay
	}
	if update.PriceRounding != nil {
		current.PriceRounding = *update.PriceRounding
	}
	if update.DemoMode != nil {
		current.DemoMode = *update.DemoMode
	}
	if update.LocalTone != nil {
		current.LocalTone = *update.LocalTone
	}
	if update.ShopAddressRegion != nil {
		current.ShopAddressRegion = *update.ShopAddressRegion
	}
	if update.TimeFormat != nil {
		current.TimeFormat = *update.TimeFormat
	}

	current.ID = 1
	if err := s.repo.Upsert(ctx, &current); err != nil {
		return domain.ShopContext{}, fmt.Errorf("save shop context: %w", err)
	}

	logger.Info("shop context updated", "shop_name", current.ShopName)
	return current, nil
}
