// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"github.com/supplyaid/supplyaid-server/internal/app/system/indexes"
	"go.uber.org/zap"
)

// EnsureSchema reconciles the index set on every collection the app uses.
// It runs on each startup and is idempotent.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	return indexes.EnsureAll(ctx, deps.SupplyAidMongoDatabase)
}
