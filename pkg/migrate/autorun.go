package migrate

import (
	"context"
	"fmt"

	"github.com/packline/inventory-api/pkg/config"
	"github.com/packline/inventory-api/pkg/db"
	"github.com/packline/inventory-api/pkg/db/models"
	"github.com/packline/inventory-api/pkg/logger"
)

// EnsureSchema creates the items table when it does not exist yet. It runs
// before the first request is served; failure here aborts startup.
func EnsureSchema(ctx context.Context, cfg *config.Config, logg *logger.Logger, client *db.Client) error {
	if !cfg.DB.AutoMigrate {
		return nil
	}

	if err := client.DB().WithContext(ctx).AutoMigrate(&models.Item{}); err != nil {
		return fmt.Errorf("ensuring items table: %w", err)
	}

	if logg != nil {
		logg.Info(logg.WithField(ctx, "table", models.Item{}.TableName()), "schema ensured")
	}
	return nil
}
