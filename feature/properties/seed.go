package properties

import (
	"context"

	"server-props/feature/properties/models"

	"go.uber.org/zap"
)

// DefaultCategoryKey is the landing category for properties discovered by the
// import pass.
const DefaultCategoryKey = "default"

// seedCategoryKeys is the fixed set of well-known categories created at startup.
var seedCategoryKeys = []string{
	"gameplay",
	"networkAndConnectivity",
	"worldAndEnvironment",
	"managementAndAdministration",
	"security",
	"serverMessages",
	"resourcePacks",
	"other",
	DefaultCategoryKey,
}

// SeedCategories creates any missing well-known categories. It is idempotent
// and never deletes categories added by operators.
func SeedCategories(ctx context.Context, repo *Repository, logger *zap.Logger) error {
	for _, key := range seedCategoryKeys {
		existing, err := repo.FindCategoryByKey(ctx, key)
		if err != nil {
			return err
		}
		if existing != nil {
			continue
		}
		if err := repo.CreateCategory(ctx, &models.Category{Key: key}); err != nil {
			return err
		}
		logger.Info("Seeded category", zap.String("key", key))
	}
	return nil
}
