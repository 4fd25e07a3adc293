package properties

import (
	"context"
	"fmt"

	"server-props/core/propsfile"
	"server-props/feature/properties/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service exposes the property catalog and the reconciliation engine to the
// HTTP layer and the CLI.
type Service struct {
	repo   *Repository
	engine *Engine
	logger *zap.Logger
}

// NewService creates a new properties service for the file at path.
func NewService(db *gorm.DB, files propsfile.Store, path string, logger *zap.Logger) *Service {
	repo := NewRepository(db)
	return &Service{
		repo:   repo,
		engine: NewEngine(repo, files, path, logger),
		logger: logger,
	}
}

// MapConfiguration runs the import pass.
func (s *Service) MapConfiguration(ctx context.Context) error {
	return s.engine.MapConfiguration(ctx)
}

// UpdateProperties runs the update pass for a batch of changes.
func (s *Service) UpdateProperties(ctx context.Context, changes []KeyValue) (*UpdateReport, error) {
	return s.engine.UpdateProperties(ctx, changes)
}

// GetProperties lists all properties grouped by category.
func (s *Service) GetProperties(ctx context.Context) ([]models.CategoryGroup, error) {
	return s.repo.GetProperties(ctx)
}

// GetProperty returns a single property by id.
func (s *Service) GetProperty(ctx context.Context, id uint) (*models.Property, error) {
	return s.repo.GetPropertyByID(ctx, id)
}

// PatchProperty applies a metadata patch to a property.
func (s *Service) PatchProperty(ctx context.Context, id uint, patch PropertyPatch) (*models.Property, error) {
	columns, err := patch.columns()
	if err != nil {
		return nil, err
	}
	if len(columns) == 0 {
		return s.repo.GetPropertyByID(ctx, id)
	}
	return s.repo.UpdatePropertyByID(ctx, id, columns)
}

// DeleteProperty removes a property, returning the deleted record.
func (s *Service) DeleteProperty(ctx context.Context, id uint) (*models.Property, error) {
	return s.repo.DeletePropertyByID(ctx, id)
}

// GetPropertiesByCategory lists the properties of one category.
// The category must exist.
func (s *Service) GetPropertiesByCategory(ctx context.Context, categoryID uint) ([]models.Property, error) {
	if _, err := s.repo.GetCategoryByID(ctx, categoryID); err != nil {
		return nil, err
	}
	return s.repo.GetPropertiesByCategory(ctx, categoryID)
}

// GetCategories lists all categories.
func (s *Service) GetCategories(ctx context.Context) ([]models.Category, error) {
	return s.repo.GetCategories(ctx)
}

// CreateCategory creates a category with a unique key.
func (s *Service) CreateCategory(ctx context.Context, key string) (*models.Category, error) {
	existing, err := s.repo.FindCategoryByKey(ctx, key)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("category %q: %w", key, ErrDuplicateKey)
	}

	cat := &models.Category{Key: key}
	if err := s.repo.CreateCategory(ctx, cat); err != nil {
		return nil, err
	}
	return cat, nil
}
