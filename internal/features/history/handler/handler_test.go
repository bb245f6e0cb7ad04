package handler

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"ongkir-api/internal/core/cache"
	"ongkir-api/internal/features/history/adapters"
	"ongkir-api/internal/features/history/service"
	rates "ongkir-api/internal/features/rates/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockResolver is a mock implementation of SessionResolver for testing.
type mockResolver struct {
	users map[string]string
}

// ResolveUser implements SessionResolver.
func (m *mockResolver) ResolveUser(ctx context.Context, token string) string {
	return m.users[token]
}

func newTestApp(t *testing.T) (*fiber.App, *service.HistoryService) {
	t.Helper()

	mr := miniredis.RunT(t)
	store, err := cache.NewRedisAdapter("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	historyService := service.NewHistoryService(adapters.NewRedisHistoryRepository(store))
	resolver := &mockResolver{users: map[string]string{"tok-123": "user-1"}}
	handler := NewHistoryHandler(historyService, resolver)

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("requestid", "test-ray-id")
		return c.Next()
	})
	app.Get("/history", handler.List)
	app.Delete("/history", handler.Clear)
	return app, historyService
}

// TestHistoryHandler_List_RequiresSession verifies the 401 on a missing session.
func TestHistoryHandler_List_RequiresSession(t *testing.T) {
	app, _ := newTestApp(t)

	req := httptest.NewRequest("GET", "/history", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	var errResp ErrorResponse
	err = json.NewDecoder(resp.Body).Decode(&errResp)
	require.NoError(t, err)
	assert.Contains(t, errResp.Message, "valid session required")
	assert.Equal(t, "test-ray-id", errResp.RayID)
}

// TestHistoryHandler_List_Empty verifies an empty journal renders as an empty array.
func TestHistoryHandler_List_Empty(t *testing.T) {
	app, _ := newTestApp(t)

	req := httptest.NewRequest("GET", "/history", nil)
	req.Header.Set("X-Session-Token", "tok-123")
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var journal []rates.ShippingCalculation
	err = json.NewDecoder(resp.Body).Decode(&journal)
	require.NoError(t, err)
	assert.Empty(t, journal)
}

// TestHistoryHandler_ListAfterRecord verifies the recorded journal round trip.
func TestHistoryHandler_ListAfterRecord(t *testing.T) {
	app, historyService := newTestApp(t)

	err := historyService.Record(context.Background(), "user-1", rates.ShippingCalculation{
		Weight:  2.5,
		Courier: "pos",
	})
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/history", nil)
	req.Header.Set("X-Session-Token", "tok-123")
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var journal []rates.ShippingCalculation
	err = json.NewDecoder(resp.Body).Decode(&journal)
	require.NoError(t, err)
	require.Len(t, journal, 1)
	assert.Equal(t, "pos", journal[0].Courier)
	assert.False(t, journal[0].RecordedAt.IsZero())
}

// TestHistoryHandler_Clear verifies the bulk delete.
func TestHistoryHandler_Clear(t *testing.T) {
	app, historyService := newTestApp(t)

	err := historyService.Record(context.Background(), "user-1", rates.ShippingCalculation{Courier: "jne"})
	require.NoError(t, err)

	req := httptest.NewRequest("DELETE", "/history", nil)
	req.Header.Set("X-Session-Token", "tok-123")
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	listReq := httptest.NewRequest("GET", "/history", nil)
	listReq.Header.Set("X-Session-Token", "tok-123")
	listResp, err := app.Test(listReq)
	require.NoError(t, err)

	var journal []rates.ShippingCalculation
	err = json.NewDecoder(listResp.Body).Decode(&journal)
	require.NoError(t, err)
	assert.Empty(t, journal)
}

// TestHistoryHandler_Clear_RequiresSession verifies the 401 on a missing session.
func TestHistoryHandler_Clear_RequiresSession(t *testing.T) {
	app, _ := newTestApp(t)

	req := httptest.NewRequest("DELETE", "/history", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
