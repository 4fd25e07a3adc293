package properties

import (
	"context"
	"testing"

	"server-props/feature/properties/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func TestRepositoryFindPropertyByKey(t *testing.T) {
	_, repo := setupCatalog(t)
	seedProperty(t, repo, "motd", models.TypeString, "Hi", nil)

	found, err := repo.FindPropertyByKey(context.Background(), "motd")
	assert.NoError(t, err)
	assert.NotNil(t, found)
	assert.Equal(t, "motd", found.Key)

	missing, err := repo.FindPropertyByKey(context.Background(), "no-such-key")
	assert.NoError(t, err)
	assert.Nil(t, missing, "absence is not an error")
}

func TestRepositoryFindPropertyByKey_QueryError(t *testing.T) {
	db, mock := setupMockDB(t)
	mock.ExpectQuery("SELECT \\* FROM `server_properties`").
		WillReturnError(assert.AnError)

	_, err := NewRepository(db).FindPropertyByKey(context.Background(), "motd")
	assert.Error(t, err)
}

func TestRepositoryGetProperties_Grouping(t *testing.T) {
	db, repo := setupCatalog(t)

	gameplay, err := repo.FindCategoryByKey(context.Background(), "gameplay")
	assert.NoError(t, err)

	first := &models.Property{Key: "pvp", Type: models.TypeBool, CategoryID: gameplay.ID}
	assert.NoError(t, first.SetValue(true))
	assert.NoError(t, repo.CreateProperty(context.Background(), first))

	seedProperty(t, repo, "motd", models.TypeString, "Hi", nil)

	// A record with a dangling category id falls into "uncategorized".
	orphan := &models.Property{Key: "orphan", Type: models.TypeString, CategoryID: 9999}
	assert.NoError(t, db.Create(orphan).Error)

	groups, err := repo.GetProperties(context.Background())
	assert.NoError(t, err)
	assert.Len(t, groups, 3)

	assert.Equal(t, "default", groups[0].Category)
	assert.Equal(t, "gameplay", groups[1].Category)
	assert.Equal(t, "uncategorized", groups[2].Category)
	assert.Equal(t, "pvp", groups[1].Properties[0].Key)
}

func TestRepositoryGetProperties_QueryError(t *testing.T) {
	db, mock := setupMockDB(t)
	mock.ExpectQuery("SELECT \\* FROM `server_properties`").
		WillReturnError(assert.AnError)

	_, err := NewRepository(db).GetProperties(context.Background())
	assert.Error(t, err)
}

func TestRepositoryGetPropertyByID(t *testing.T) {
	_, repo := setupCatalog(t)
	seeded := seedProperty(t, repo, "motd", models.TypeString, "Hi", nil)

	found, err := repo.GetPropertyByID(context.Background(), seeded.ID)
	assert.NoError(t, err)
	assert.Equal(t, "motd", found.Key)
	assert.NotNil(t, found.Category, "category is preloaded")
	assert.Equal(t, DefaultCategoryKey, found.Category.Key)

	_, err = repo.GetPropertyByID(context.Background(), 9999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRepositoryUpdatePropertyByID(t *testing.T) {
	_, repo := setupCatalog(t)
	seeded := seedProperty(t, repo, "motd", models.TypeUnknown, "Hi", nil)

	gameplay, err := repo.FindCategoryByKey(context.Background(), "gameplay")
	assert.NoError(t, err)

	updated, err := repo.UpdatePropertyByID(context.Background(), seeded.ID, map[string]any{
		"type":        string(models.TypeString),
		"category_id": gameplay.ID,
	})
	assert.NoError(t, err)
	assert.Equal(t, models.TypeString, updated.Type)
	assert.Equal(t, gameplay.ID, updated.CategoryID)
	assert.Equal(t, "gameplay", updated.Category.Key)
}

func TestRepositoryUpdatePropertyByID_MissingCategory(t *testing.T) {
	_, repo := setupCatalog(t)
	seeded := seedProperty(t, repo, "motd", models.TypeString, "Hi", nil)

	_, err := repo.UpdatePropertyByID(context.Background(), seeded.ID, map[string]any{
		"category_id": uint(9999),
	})
	assert.ErrorIs(t, err, ErrNotFound)

	// The patch must not partially apply.
	reloaded, err := repo.GetPropertyByID(context.Background(), seeded.ID)
	assert.NoError(t, err)
	assert.Equal(t, seeded.CategoryID, reloaded.CategoryID)
}

func TestRepositoryUpdatePropertyByID_MissingProperty(t *testing.T) {
	_, repo := setupCatalog(t)

	_, err := repo.UpdatePropertyByID(context.Background(), 9999, map[string]any{
		"type": string(models.TypeString),
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRepositoryDeletePropertyByID(t *testing.T) {
	_, repo := setupCatalog(t)
	seeded := seedProperty(t, repo, "motd", models.TypeString, "Hi", nil)

	deleted, err := repo.DeletePropertyByID(context.Background(), seeded.ID)
	assert.NoError(t, err)
	assert.Equal(t, "motd", deleted.Key)

	_, err = repo.GetPropertyByID(context.Background(), seeded.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = repo.DeletePropertyByID(context.Background(), seeded.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRepositoryGetPropertiesByCategory(t *testing.T) {
	_, repo := setupCatalog(t)
	seeded := seedProperty(t, repo, "motd", models.TypeString, "Hi", nil)

	props, err := repo.GetPropertiesByCategory(context.Background(), seeded.CategoryID)
	assert.NoError(t, err)
	assert.Len(t, props, 1)

	empty, err := repo.GetPropertiesByCategory(context.Background(), 9999)
	assert.NoError(t, err)
	assert.Empty(t, empty)
}

func TestRepositoryCategories(t *testing.T) {
	_, repo := setupCatalog(t)

	cats, err := repo.GetCategories(context.Background())
	assert.NoError(t, err)
	assert.Len(t, cats, len(seedCategoryKeys))

	// Ordered by key.
	assert.Equal(t, "default", cats[0].Key)

	cat, err := repo.GetCategoryByID(context.Background(), cats[0].ID)
	assert.NoError(t, err)
	assert.Equal(t, "default", cat.Key)

	_, err = repo.GetCategoryByID(context.Background(), 9999)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.NoError(t, repo.CreateCategory(context.Background(), &models.Category{Key: "custom"}))
	assert.Error(t, repo.CreateCategory(context.Background(), &models.Category{Key: "custom"}),
		"category keys are unique")
}
