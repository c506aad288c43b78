package commands

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/gardaplan/gardaplan/internal/config"
	"github.com/gardaplan/gardaplan/pkg/core/engine"
	"github.com/gardaplan/gardaplan/pkg/postgres"
)

// AppContext holds the application dependencies shared by all commands
type AppContext struct {
	Ctx      context.Context
	Cfg      *config.Config
	Logger   *zap.Logger
	Database *postgres.DB
}

// hospitalEngineConfig resolves a hospital id and month argument into the
// engine's scheduling policy
func (app *AppContext) hospitalEngineConfig(hospitalID, monthArg string) (*engine.HospitalConfig, time.Time, error) {
	month, err := time.ParseInLocation("2006-01", monthArg, time.Local)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("month must be YYYY-MM: %w", err)
	}

	hospital, err := app.Cfg.Hospital(hospitalID)
	if err != nil {
		return nil, time.Time{}, err
	}

	cfg, err := hospital.EngineConfig(month.Year())
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("failed to build hospital config: %w", err)
	}

	return cfg, month, nil
}
