package catalog

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/bencom-ar/storefront-backend/pkg/logger"
)

//go:embed seed/products.json
var seedProducts []byte

// Seed migrates the catalog table and, when it is empty, loads the embedded
// product fixture. Existing rows are left alone so edits survive restarts.
func Seed(ctx context.Context, repo Repository, logg *logger.Logger) error {
	if err := repo.Migrate(ctx); err != nil {
		return fmt.Errorf("migrating catalog: %w", err)
	}

	count, err := repo.Count(ctx)
	if err != nil {
		return fmt.Errorf("counting catalog: %w", err)
	}
	if count > 0 {
		return nil
	}

	var products []Product
	if err := json.Unmarshal(seedProducts, &products); err != nil {
		return fmt.Errorf("decoding catalog seed: %w", err)
	}
	for i := range products {
		products[i].IsActive = true
	}
	if err := repo.CreateBatch(ctx, products); err != nil {
		return fmt.Errorf("seeding catalog: %w", err)
	}

	if logg != nil {
		logg.Info(logg.WithField(ctx, "products", len(products)), "catalog seeded")
	}
	return nil
}
