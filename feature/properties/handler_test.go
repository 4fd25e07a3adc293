package properties

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"

	"server-props/core/propsfile/mocks"
	"server-props/feature/properties/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestApp(t *testing.T) (*fiber.App, *Repository, *mocks.Store) {
	t.Helper()

	app := fiber.New()
	db, repo := setupCatalog(t)

	store := new(mocks.Store)
	svc := NewService(db, store, propsPath, zap.NewNop())
	handler := NewHandler(svc)
	handler.RegisterRoutes(app)
	return app, repo, store
}

func TestHandleGetProperties(t *testing.T) {
	app, repo, _ := setupTestApp(t)
	seedProperty(t, repo, "motd", models.TypeString, "Hi", nil)

	req := httptest.NewRequest("GET", "/server/properties", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var groups []models.CategoryGroup
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&groups))
	require.Len(t, groups, 1)
	assert.Equal(t, "default", groups[0].Category)
	assert.Equal(t, "motd", groups[0].Properties[0].Key)
}

func TestHandleMapConfiguration(t *testing.T) {
	app, repo, store := setupTestApp(t)

	store.On("ReadText", propsPath).Return("pvp=true\n", nil)

	req := httptest.NewRequest("POST", "/server/properties/map", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 201, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, false, body["error"])
	assert.Equal(t, "Configuration mapped and saved successfully", body["message"])

	created, err := repo.FindPropertyByKey(context.Background(), "pvp")
	require.NoError(t, err)
	assert.NotNil(t, created)
}

func TestHandleMapConfiguration_ReadFailure(t *testing.T) {
	app, _, store := setupTestApp(t)

	store.On("ReadText", propsPath).Return("", assert.AnError)

	req := httptest.NewRequest("POST", "/server/properties/map", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 500, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Error reading or saving the configuration", body["message"])
}

func TestHandleUpdateProperties(t *testing.T) {
	app, repo, store := setupTestApp(t)
	seedProperty(t, repo, "max-players", models.TypeNumber, 10.0, rangeData(1, 100))

	store.On("ReadText", propsPath).Return("max-players=10\n", nil)
	store.On("WriteText", propsPath, mock.Anything).Return(nil)

	body := `[{"key":"max-players","value":20},{"key":"missing","value":1}]`
	req := httptest.NewRequest("PUT", "/server/properties", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var out UpdateResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.True(t, out.Success)
	assert.Equal(t, []string{"max-players"}, out.UpdatedKeys)
	assert.Equal(t, []string{"missing"}, out.SkippedKeys)
	assert.Empty(t, out.UnchangedKeys)
}

func TestHandleUpdateProperties_CommitFailure(t *testing.T) {
	app, repo, store := setupTestApp(t)
	seedProperty(t, repo, "max-players", models.TypeNumber, 10.0, rangeData(1, 100))

	store.On("ReadText", propsPath).Return("max-players=10\n", nil)
	store.On("WriteText", propsPath, mock.Anything).Return(assert.AnError)

	body := `[{"key":"max-players","value":20}]`
	req := httptest.NewRequest("PUT", "/server/properties", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 500, resp.StatusCode)

	// The per-key breakdown is reported even on failure.
	var out UpdateResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.False(t, out.Success)
	assert.Equal(t, "Transaction failed. Changes rolled back.", out.Message)
	assert.Equal(t, []string{"max-players"}, out.UpdatedKeys)
}

func TestHandleUpdateProperties_InvalidBody(t *testing.T) {
	app, _, _ := setupTestApp(t)

	tests := []struct {
		name string
		body string
	}{
		{"Not an array", `{"key":"a","value":1}`},
		{"Unknown field", `[{"key":"a","value":1,"extra":true}]`},
		{"Missing key", `[{"value":1}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("PUT", "/server/properties", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			resp, err := app.Test(req)

			require.NoError(t, err)
			assert.Equal(t, 400, resp.StatusCode)
		})
	}
}

func TestHandleGetProperty(t *testing.T) {
	app, repo, _ := setupTestApp(t)
	seeded := seedProperty(t, repo, "motd", models.TypeString, "Hi", nil)

	req := httptest.NewRequest("GET", "/server/properties/1", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var prop models.Property
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&prop))
	assert.Equal(t, seeded.Key, prop.Key)
}

func TestHandleGetProperty_NotFound(t *testing.T) {
	app, _, _ := setupTestApp(t)

	req := httptest.NewRequest("GET", "/server/properties/42", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Server property not found", body["error"])
}

func TestHandleGetProperty_BadID(t *testing.T) {
	app, _, _ := setupTestApp(t)

	req := httptest.NewRequest("GET", "/server/properties/abc", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestHandlePatchProperty(t *testing.T) {
	app, repo, _ := setupTestApp(t)
	seeded := seedProperty(t, repo, "motd", models.TypeUnknown, "Hi", nil)

	body := `{"type":"string","isConfigured":true}`
	req := httptest.NewRequest("PATCH", "/server/properties/1", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	reloaded, err := repo.GetPropertyByID(context.Background(), seeded.ID)
	require.NoError(t, err)
	assert.Equal(t, models.TypeString, reloaded.Type)
	assert.True(t, reloaded.IsConfigured)
}

func TestHandlePatchProperty_InvalidType(t *testing.T) {
	app, repo, _ := setupTestApp(t)
	seedProperty(t, repo, "motd", models.TypeString, "Hi", nil)

	body := `{"type":"integer"}`
	req := httptest.NewRequest("PATCH", "/server/properties/1", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestHandleDeleteProperty(t *testing.T) {
	app, repo, _ := setupTestApp(t)
	seedProperty(t, repo, "motd", models.TypeString, "Hi", nil)

	req := httptest.NewRequest("DELETE", "/server/properties/1", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var prop models.Property
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&prop))
	assert.Equal(t, "motd", prop.Key)

	gone, err := repo.FindPropertyByKey(context.Background(), "motd")
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestHandleGetPropertiesByCategory(t *testing.T) {
	app, repo, _ := setupTestApp(t)
	seeded := seedProperty(t, repo, "motd", models.TypeString, "Hi", nil)

	req := httptest.NewRequest("GET", fmt.Sprintf("/server/properties/category/%d", seeded.CategoryID), nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var props []models.Property
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&props))
	require.Len(t, props, 1)
	assert.Equal(t, "motd", props[0].Key)
}

func TestHandleGetPropertiesByCategory_NotFound(t *testing.T) {
	app, _, _ := setupTestApp(t)

	req := httptest.NewRequest("GET", "/server/properties/category/9999", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestHandleCategories(t *testing.T) {
	app, _, _ := setupTestApp(t)

	req := httptest.NewRequest("GET", "/server/categories", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var cats []models.Category
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&cats))
	assert.Len(t, cats, len(seedCategoryKeys))
}

func TestHandleCreateCategory(t *testing.T) {
	app, _, _ := setupTestApp(t)

	body := `{"key":"custom"}`
	req := httptest.NewRequest("POST", "/server/categories", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 201, resp.StatusCode)

	// Creating the same key twice is rejected.
	req = httptest.NewRequest("POST", "/server/categories", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)

	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "Category with this key already exists", out["message"])
}
