package migrate

import (
	"context"
	"fmt"

	"github.com/angelmondragon/threadline-backend/pkg/db"
	"github.com/angelmondragon/threadline-backend/pkg/db/models"
	"github.com/angelmondragon/threadline-backend/pkg/logger"
)

// Run builds the store schema on the client's database. The backing database
// is in-memory and rebuilt on every boot, so this always runs.
func Run(ctx context.Context, client *db.Client, logg *logger.Logger) error {
	if client == nil {
		return fmt.Errorf("db client is required")
	}

	err := client.DB().WithContext(ctx).AutoMigrate(
		&models.Product{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderLineItem{},
		&models.DiscountCode{},
	)
	if err != nil {
		return fmt.Errorf("running automigrate: %w", err)
	}

	if logg != nil {
		logg.Info(ctx, "store schema migrated")
	}
	return nil
}
