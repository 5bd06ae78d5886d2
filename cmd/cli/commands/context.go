package commands

import (
	"context"

	"go.uber.org/zap"

	"github.com/misenavi/shiftplanner/internal/config"
)

// AppContext holds the application dependencies shared across all commands
type AppContext struct {
	Policy *config.Policy
	Logger *zap.Logger
	Ctx    context.Context
}
