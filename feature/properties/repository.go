package properties

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"server-props/feature/properties/models"

	"gorm.io/gorm"
)

// Catalog is the abstract keyed store the reconciliation engine writes to.
// The gorm-backed Repository is the production implementation.
type Catalog interface {
	FindPropertyByKey(ctx context.Context, key string) (*models.Property, error)
	FindPropertyByKeyAndCategory(ctx context.Context, key string, categoryID uint) (*models.Property, error)
	CreateProperty(ctx context.Context, prop *models.Property) error
	SaveProperty(ctx context.Context, prop *models.Property) error
	FindCategoryByKey(ctx context.Context, key string) (*models.Category, error)
}

// Repository provides catalog access on top of GORM.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new catalog repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// FindPropertyByKey returns the property with the given key, or nil when absent.
func (r *Repository) FindPropertyByKey(ctx context.Context, key string) (*models.Property, error) {
	var prop models.Property
	err := r.db.WithContext(ctx).Where("`key` = ?", key).First(&prop).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &prop, nil
}

// FindPropertyByKeyAndCategory returns the property with the given key inside
// a category, or nil when absent.
func (r *Repository) FindPropertyByKeyAndCategory(ctx context.Context, key string, categoryID uint) (*models.Property, error) {
	var prop models.Property
	err := r.db.WithContext(ctx).Where("`key` = ? AND category_id = ?", key, categoryID).First(&prop).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &prop, nil
}

// CreateProperty inserts a new property record.
func (r *Repository) CreateProperty(ctx context.Context, prop *models.Property) error {
	return r.db.WithContext(ctx).Create(prop).Error
}

// SaveProperty persists all fields of an existing property record.
func (r *Repository) SaveProperty(ctx context.Context, prop *models.Property) error {
	return r.db.WithContext(ctx).Save(prop).Error
}

// FindCategoryByKey returns the category with the given key, or nil when absent.
func (r *Repository) FindCategoryByKey(ctx context.Context, key string) (*models.Category, error) {
	var cat models.Category
	err := r.db.WithContext(ctx).Where("`key` = ?", key).First(&cat).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cat, nil
}

// GetProperties returns all properties grouped by category key, with group
// names sorted for deterministic output.
func (r *Repository) GetProperties(ctx context.Context) ([]models.CategoryGroup, error) {
	var props []models.Property
	if err := r.db.WithContext(ctx).Preload("Category").Find(&props).Error; err != nil {
		return nil, err
	}

	byCategory := make(map[string][]models.Property)
	for _, p := range props {
		key := "uncategorized"
		if p.Category != nil {
			key = p.Category.Key
		}
		byCategory[key] = append(byCategory[key], p)
	}

	keys := make([]string, 0, len(byCategory))
	for key := range byCategory {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	groups := make([]models.CategoryGroup, 0, len(keys))
	for _, key := range keys {
		groups = append(groups, models.CategoryGroup{Category: key, Properties: byCategory[key]})
	}
	return groups, nil
}

// GetPropertyByID returns a property with its category preloaded.
func (r *Repository) GetPropertyByID(ctx context.Context, id uint) (*models.Property, error) {
	var prop models.Property
	err := r.db.WithContext(ctx).Preload("Category").First(&prop, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &prop, nil
}

// UpdatePropertyByID applies a metadata patch to an existing property.
// When the patch moves the property to another category, the category must exist.
func (r *Repository) UpdatePropertyByID(ctx context.Context, id uint, patch map[string]any) (*models.Property, error) {
	if categoryID, ok := patch["category_id"]; ok {
		var count int64
		if err := r.db.WithContext(ctx).Model(&models.Category{}).Where("id = ?", categoryID).Count(&count).Error; err != nil {
			return nil, err
		}
		if count == 0 {
			return nil, fmt.Errorf("category %v: %w", categoryID, ErrNotFound)
		}
	}

	var prop models.Property
	err := r.db.WithContext(ctx).First(&prop, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).Model(&prop).Updates(patch).Error; err != nil {
		return nil, err
	}
	return r.GetPropertyByID(ctx, id)
}

// DeletePropertyByID removes a property, returning the deleted record.
func (r *Repository) DeletePropertyByID(ctx context.Context, id uint) (*models.Property, error) {
	var prop models.Property
	err := r.db.WithContext(ctx).First(&prop, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).Delete(&prop).Error; err != nil {
		return nil, err
	}
	return &prop, nil
}

// GetPropertiesByCategory returns all properties belonging to a category.
func (r *Repository) GetPropertiesByCategory(ctx context.Context, categoryID uint) ([]models.Property, error) {
	var props []models.Property
	err := r.db.WithContext(ctx).Where("category_id = ?", categoryID).Find(&props).Error
	if err != nil {
		return nil, err
	}
	return props, nil
}

// GetCategoryByID returns a category by primary key, or ErrNotFound.
func (r *Repository) GetCategoryByID(ctx context.Context, id uint) (*models.Category, error) {
	var cat models.Category
	err := r.db.WithContext(ctx).First(&cat, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &cat, nil
}

// GetCategories returns all categories.
func (r *Repository) GetCategories(ctx context.Context) ([]models.Category, error) {
	var cats []models.Category
	if err := r.db.WithContext(ctx).Order("`key`").Find(&cats).Error; err != nil {
		return nil, err
	}
	return cats, nil
}

// CreateCategory inserts a new category record.
func (r *Repository) CreateCategory(ctx context.Context, cat *models.Category) error {
	return r.db.WithContext(ctx).Create(cat).Error
}
