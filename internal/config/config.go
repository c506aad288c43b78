package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/teambition/rrule-go"
	"gopkg.in/yaml.v3"

	"github.com/gardaplan/gardaplan/pkg/core/engine"
)

// ShiftTypeConfig defines one shift type of a hospital
type ShiftTypeConfig struct {
	ID            string `yaml:"id" validate:"required"`
	Name          string `yaml:"name" validate:"required"`
	Start         string `yaml:"start" validate:"required,datetime=15:04"`
	End           string `yaml:"end" validate:"required,datetime=15:04"`
	Color         string `yaml:"color,omitempty"`
	DurationHours int    `yaml:"durationHours" validate:"required,min=1,max=24"`

	// Category is inferred from the id and duration when omitted
	Category string `yaml:"category,omitempty" validate:"omitempty,oneof=day night extended"`
}

// HolidayConfig defines a hospital's holiday calendar as fixed dates plus
// recurring rules
type HolidayConfig struct {
	Dates  []string `yaml:"dates,omitempty" validate:"dive,datetime=2006-01-02"`
	RRules []string `yaml:"rrules,omitempty"`
}

// HospitalEntry configures scheduling for one hospital
type HospitalEntry struct {
	ID           string            `yaml:"id" validate:"required"`
	Name         string            `yaml:"name" validate:"required"`
	ShiftPattern string            `yaml:"shiftPattern" validate:"required,oneof=only_24 standard_12_24 custom"`
	ShiftTypes   []ShiftTypeConfig `yaml:"shiftTypes" validate:"required,min=1,dive"`

	WeekdayShifts []string       `yaml:"weekdayShifts,omitempty"`
	WeekendShifts []string       `yaml:"weekendShifts,omitempty"`
	HolidayShifts []string       `yaml:"holidayShifts,omitempty"`
	Holidays      *HolidayConfig `yaml:"holidays,omitempty"`

	MaxShiftsPerMonth    int `yaml:"maxShiftsPerMonth,omitempty" validate:"omitempty,min=1"`
	MaxConsecutiveNights int `yaml:"maxConsecutiveNights,omitempty" validate:"omitempty,min=1"`
	MinRestHours         int `yaml:"minRestHours,omitempty" validate:"omitempty,min=1"`
}

// Config represents the application configuration
type Config struct {
	DatabaseURL string          `yaml:"databaseURL" validate:"required"`
	Hospitals   []HospitalEntry `yaml:"hospitals" validate:"required,min=1,dive"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Load loads and validates the configuration from gardaplan.yaml,
// looking in the current directory first, then in the user's home directory
func Load() (*Config, error) {
	return loadNamed("gardaplan.yaml")
}

// LoadWithEnv loads the configuration for a named environment
// (gardaplan_<env>.yaml)
func LoadWithEnv(env string) (*Config, error) {
	return loadNamed(fmt.Sprintf("gardaplan_%s.yaml", env))
}

func loadNamed(name string) (*Config, error) {
	path, err := findConfigFile(name)
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}
	return LoadFromPath(path)
}

// LoadFromPath loads and validates the configuration from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate validates the configuration struct, cross-references shift-type
// ids, and checks holiday rrule syntax
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	for _, h := range cfg.Hospitals {
		if h.Holidays == nil {
			continue
		}
		for i, rule := range h.Holidays.RRules {
			if _, err := rrule.StrToRRule(rule); err != nil {
				return fmt.Errorf("invalid rrule in hospital %q holidays[%d]: %w", h.ID, i, err)
			}
		}
	}

	return nil
}

// Hospital returns the entry for the given hospital id
func (c *Config) Hospital(id string) (*HospitalEntry, error) {
	for i := range c.Hospitals {
		if c.Hospitals[i].ID == id {
			return &c.Hospitals[i], nil
		}
	}
	return nil, fmt.Errorf("hospital %q is not configured", id)
}

// EngineConfig converts a hospital entry into the engine's scheduling policy
// for the given year, expanding holiday rules into concrete dates.
func (h *HospitalEntry) EngineConfig(year int) (*engine.HospitalConfig, error) {
	shiftTypes := make(map[string]engine.ShiftType, len(h.ShiftTypes))
	for _, st := range h.ShiftTypes {
		shiftTypes[st.ID] = engine.ShiftType{
			ID:            st.ID,
			Name:          st.Name,
			Start:         st.Start,
			End:           st.End,
			Color:         st.Color,
			DurationHours: st.DurationHours,
			Category:      inferCategory(st),
		}
	}

	holidays, err := h.expandHolidays(year)
	if err != nil {
		return nil, err
	}

	return &engine.HospitalConfig{
		HospitalID:           h.ID,
		Pattern:              engine.ShiftPattern(h.ShiftPattern),
		ShiftTypes:           shiftTypes,
		WeekdayShifts:        h.WeekdayShifts,
		WeekendShifts:        h.WeekendShifts,
		HolidayShifts:        h.HolidayShifts,
		Holidays:             holidays,
		MaxShiftsPerMonth:    h.MaxShiftsPerMonth,
		MaxConsecutiveNights: h.MaxConsecutiveNights,
		MinRestHours:         h.MinRestHours,
	}, nil
}

// expandHolidays resolves fixed dates and rrule occurrences within the year
func (h *HospitalEntry) expandHolidays(year int) (map[string]bool, error) {
	holidays := make(map[string]bool)
	if h.Holidays == nil {
		return holidays, nil
	}

	for _, date := range h.Holidays.Dates {
		holidays[date] = true
	}

	yearStart := time.Date(year, time.January, 1, 0, 0, 0, 0, time.Local)
	yearEnd := time.Date(year, time.December, 31, 23, 59, 59, 0, time.Local)

	for i, rule := range h.Holidays.RRules {
		r, err := rrule.StrToRRule(rule)
		if err != nil {
			return nil, fmt.Errorf("invalid rrule in hospital %q holidays[%d]: %w", h.ID, i, err)
		}
		for _, occurrence := range r.Between(yearStart, yearEnd, true) {
			holidays[occurrence.Format("2006-01-02")] = true
		}
	}

	return holidays, nil
}

// inferCategory falls back to id and duration heuristics when the category
// is not set explicitly. The NOAPTE/night substring match mirrors the ids
// the standard patterns use.
func inferCategory(st ShiftTypeConfig) engine.ShiftCategory {
	if st.Category != "" {
		return engine.ShiftCategory(st.Category)
	}
	if st.DurationHours >= 24 {
		return engine.CategoryExtended
	}
	id := strings.ToUpper(st.ID)
	if strings.Contains(id, "NOAPTE") || strings.Contains(id, "NIGHT") {
		return engine.CategoryNight
	}
	return engine.CategoryDay
}

// findConfigFile searches for the named file in the current directory and
// the user's home directory
func findConfigFile(name string) (string, error) {
	if _, err := os.Stat(name); err == nil {
		return name, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homePath := filepath.Join(homeDir, name)
	if _, err := os.Stat(homePath); err == nil {
		return homePath, nil
	}

	return "", fmt.Errorf("config file %s not found in current directory or home directory", name)
}
