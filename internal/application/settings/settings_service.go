package settings

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/palengke/backend/internal/domain/finance"
	"github.com/palengke/backend/internal/domain/identity"
	"github.com/palengke/backend/internal/domain/legacy"
	"github.com/palengke/backend/internal/domain/shared"
)

// The settings collection holds a single well-known record.
const settingsRecordID = "market"

// MarketSettings is the office-wide configuration the admin screens
// edit: display details, the default stall rate, and per-role approval
// threshold overrides. A nil threshold means unlimited.
type MarketSettings struct {
	MarketName       string                      `json:"market_name"`
	Address          string                      `json:"address"`
	DefaultStallRate decimal.Decimal             `json:"default_stall_rate"`
	Thresholds       map[string]*decimal.Decimal `json:"approval_thresholds,omitempty"`
}

// SettingsService reads and writes market settings in the legacy
// settings collection and turns the stored threshold overrides into an
// approval policy for the finance side.
type SettingsService struct {
	store  legacy.KeyedStore
	logger *zap.Logger
}

// NewSettingsService creates a new SettingsService
func NewSettingsService(store legacy.KeyedStore, logger *zap.Logger) *SettingsService {
	return &SettingsService{store: store, logger: logger}
}

// defaults returns the settings used before anything is stored
func defaults() *MarketSettings {
	return &MarketSettings{
		MarketName:       "Palengke Public Market",
		DefaultStallRate: decimal.NewFromInt(3500),
	}
}

// Get returns the stored settings, or the defaults when none exist
func (s *SettingsService) Get(ctx context.Context) (*MarketSettings, error) {
	records, err := s.store.Load(ctx, legacy.CollectionSettings)
	if err != nil {
		return nil, err
	}
	rec, ok := legacy.FindByID(records, settingsRecordID)
	if !ok {
		return defaults(), nil
	}
	return fromRecord(rec), nil
}

// Update validates and persists the settings
func (s *SettingsService) Update(ctx context.Context, settings *MarketSettings) error {
	if strings.TrimSpace(settings.MarketName) == "" {
		return shared.NewDomainError(shared.CodeValidationError, "Market name is required")
	}
	if settings.DefaultStallRate.IsNegative() {
		return shared.NewDomainError(shared.CodeValidationError, "Default stall rate cannot be negative")
	}
	for name, limit := range settings.Thresholds {
		if !identity.Role(name).IsValid() {
			return shared.NewDomainError(shared.CodeValidationError, "Unknown role in thresholds: "+name)
		}
		if limit != nil && limit.IsNegative() {
			return shared.NewDomainError(shared.CodeValidationError, "Approval threshold cannot be negative")
		}
	}

	if err := s.store.Upsert(ctx, legacy.CollectionSettings, toRecord(settings)); err != nil {
		return err
	}
	s.logger.Info("market settings updated", zap.String("market_name", settings.MarketName))
	return nil
}

// ApprovalPolicy builds the expense approval policy. Without stored
// overrides the standard market-office policy applies.
func (s *SettingsService) ApprovalPolicy(ctx context.Context) (*finance.ApprovalPolicy, error) {
	settings, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}
	if len(settings.Thresholds) == 0 {
		return finance.DefaultApprovalPolicy(), nil
	}

	thresholds := make(map[identity.Role]*decimal.Decimal, len(settings.Thresholds))
	for name, limit := range settings.Thresholds {
		thresholds[identity.Role(name)] = limit
	}
	return finance.NewApprovalPolicy(thresholds,
		[]identity.Role{identity.RoleFinanceHead},
		[]identity.Role{identity.RoleExecutive},
	)
}

func toRecord(settings *MarketSettings) legacy.Record {
	rec := legacy.NewRecord("settings", "")
	rec.ID = settingsRecordID
	rec.Set("marketName", settings.MarketName)
	rec.Set("address", settings.Address)
	rec.Set("defaultStallRate", settings.DefaultStallRate.InexactFloat64())
	if len(settings.Thresholds) > 0 {
		thresholds := make(map[string]any, len(settings.Thresholds))
		for name, limit := range settings.Thresholds {
			if limit == nil {
				thresholds[name] = nil
			} else {
				thresholds[name] = limit.InexactFloat64()
			}
		}
		rec.Set("approvalThresholds", thresholds)
	}
	return rec
}

func fromRecord(rec legacy.Record) *MarketSettings {
	settings := defaults()
	if name := rec.GetString("marketName"); name != "" {
		settings.MarketName = name
	}
	settings.Address = rec.GetString("address")
	if raw, ok := rec.Get("defaultStallRate"); ok {
		if rate, ok := raw.(float64); ok {
			settings.DefaultStallRate = decimal.NewFromFloat(rate)
		}
	}
	if raw, ok := rec.Get("approvalThresholds"); ok {
		if table, ok := raw.(map[string]any); ok {
			settings.Thresholds = make(map[string]*decimal.Decimal, len(table))
			for name, value := range table {
				if value == nil {
					settings.Thresholds[name] = nil
					continue
				}
				if limit, ok := value.(float64); ok {
					d := decimal.NewFromFloat(limit)
					settings.Thresholds[name] = &d
				}
			}
		}
	}
	return settings
}
