package status

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockPinger struct {
	mock.Mock
}

func (m *mockPinger) Ping(ctx context.Context, host string, port int) (*ServerStatus, error) {
	args := m.Called(ctx, host, port)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ServerStatus), args.Error(1)
}

func setupTestApp(t *testing.T) (*fiber.App, *mockPinger) {
	t.Helper()

	app := fiber.New()
	pinger := new(mockPinger)
	svc := NewService(pinger, "mc.example.com", 25565, zap.NewNop())
	NewHandler(svc).RegisterRoutes(app)
	return app, pinger
}

func TestHandleGetInformation(t *testing.T) {
	app, pinger := setupTestApp(t)

	pinger.On("Ping", mock.Anything, "mc.example.com", 25565).Return(&ServerStatus{
		Name:       "A Minecraft Server",
		Version:    "1.20.4",
		MaxPlayers: 20,
		Online:     1,
		Players:    []Player{{Name: "alice", ID: "aaaa"}},
		Connect:    "mc.example.com:25565",
		Ping:       12,
	}, nil)

	req := httptest.NewRequest("GET", "/server", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, false, body["error"])
	assert.Equal(t, "Information successfully obtained", body["message"])

	info := body["information"].(map[string]any)
	assert.Equal(t, "A Minecraft Server", info["name"])
	assert.Equal(t, float64(20), info["maxplayers"])
}

func TestHandleGetInformation_ServerDown(t *testing.T) {
	app, pinger := setupTestApp(t)

	pinger.On("Ping", mock.Anything, "mc.example.com", 25565).Return(nil, assert.AnError)

	req := httptest.NewRequest("GET", "/server", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 503, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Cannot get the required information, server is down", body["message"])
}

func TestFeatureIsEnabled(t *testing.T) {
	enabled := NewFeature(new(mockPinger), "mc.example.com", 25565, zap.NewNop())
	assert.True(t, enabled.IsEnabled())
	assert.Equal(t, "status", enabled.Name())

	disabled := NewFeature(new(mockPinger), "", 25565, zap.NewNop())
	assert.False(t, disabled.IsEnabled())
}
