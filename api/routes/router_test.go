package routes

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	itemsvc "github.com/packline/inventory-api/internal/items"
	"github.com/packline/inventory-api/pkg/config"
	"github.com/packline/inventory-api/pkg/db"
	"github.com/packline/inventory-api/pkg/db/models"
	"github.com/packline/inventory-api/pkg/logger"
	"github.com/packline/inventory-api/pkg/metrics"
)

type itemBody struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	SKU       string  `json:"sku"`
	Qty       int     `json:"qty"`
	Price     float64 `json:"price"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	cfg := &config.Config{}
	cfg.App.Env = "test"
	cfg.DB = config.DBConfig{
		Driver:       config.DriverSQLite,
		DSN:          fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()),
		MaxOpenConns: 1,
	}

	logg := logger.New(logger.Options{ServiceName: "test", Output: io.Discard})

	client, err := db.New(context.Background(), cfg.DB, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	require.NoError(t, client.DB().AutoMigrate(&models.Item{}))

	svc, err := itemsvc.NewService(itemsvc.NewRepository(client.DB()), client)
	require.NoError(t, err)

	registry := prometheus.NewRegistry()

	return NewRouter(RouterParams{
		Config:          cfg,
		Logger:          logg,
		DB:              client,
		ItemService:     svc,
		Metrics:         metrics.NewHTTPMetrics(registry),
		MetricsGatherer: registry,
	})
}

func doJSON(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func createItem(t *testing.T, router http.Handler, name, sku string, qty int, price float64) itemBody {
	t.Helper()
	payload := fmt.Sprintf(`{"name":%q,"sku":%q,"qty":%d,"price":%g}`, name, sku, qty, price)
	rec := doJSON(t, router, http.MethodPost, "/items", payload)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var created itemBody
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&created))
	return created
}

func TestRootDirectory(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "Welcome to Inventory Management API", body["message"])
	assert.NotEmpty(t, body["endpoints"])
}

func TestHealthEndpoints(t *testing.T) {
	router := newTestRouter(t)

	live := doJSON(t, router, http.MethodGet, "/health/live", "")
	require.Equal(t, http.StatusOK, live.Code)

	ready := doJSON(t, router, http.MethodGet, "/health/ready", "")
	require.Equal(t, http.StatusOK, ready.Code)
}

func TestCreateThenGetRoundTrip(t *testing.T) {
	router := newTestRouter(t)

	created := createItem(t, router, "Test Item", "TEST123", 10, 99.99)
	require.NotZero(t, created.ID)
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)

	rec := doJSON(t, router, http.MethodGet, fmt.Sprintf("/items/%d", created.ID), "")
	require.Equal(t, http.StatusOK, rec.Code)

	var fetched itemBody
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&fetched))
	assert.Equal(t, created, fetched)
}

func TestListPaginationAndFilter(t *testing.T) {
	router := newTestRouter(t)

	for i := 0; i < 5; i++ {
		createItem(t, router, fmt.Sprintf("Widget %d", i), fmt.Sprintf("W-%d", i), i, float64(i))
	}
	createItem(t, router, "Gadget", "G-1", 1, 1)

	rec := doJSON(t, router, http.MethodGet, "/items?limit=2&offset=1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var page []itemBody
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&page))
	require.Len(t, page, 2)
	assert.Equal(t, "Widget 1", page[0].Name)
	assert.Equal(t, "Widget 2", page[1].Name)

	rec = doJSON(t, router, http.MethodGet, "/items?q=Gadget", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var filtered []itemBody
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&filtered))
	require.Len(t, filtered, 1)
	assert.Equal(t, "Gadget", filtered[0].Name)
}

func TestUpdateFlow(t *testing.T) {
	router := newTestRouter(t)

	created := createItem(t, router, "Widget", "W-1", 3, 1.5)

	body := `{"name":"Widget v2","sku":"W-2","qty":9,"price":4.25}`
	rec := doJSON(t, router, http.MethodPut, fmt.Sprintf("/items/%d", created.ID), body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var updated itemBody
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&updated))
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Widget v2", updated.Name)
	assert.Equal(t, "W-2", updated.SKU)
	assert.Equal(t, 9, updated.Qty)
	assert.Equal(t, 4.25, updated.Price)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.NotEqual(t, created.UpdatedAt, updated.UpdatedAt)
}

func TestDeleteFlow(t *testing.T) {
	router := newTestRouter(t)

	created := createItem(t, router, "Widget", "W-1", 3, 1.5)

	rec := doJSON(t, router, http.MethodDelete, fmt.Sprintf("/items/%d", created.ID), "")
	require.Equal(t, http.StatusOK, rec.Code)

	var ack map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&ack))
	assert.Equal(t, true, ack["ok"])
	assert.Equal(t, "Item deleted", ack["message"])

	rec = doJSON(t, router, http.MethodGet, fmt.Sprintf("/items/%d", created.ID), "")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestNotFoundResponses(t *testing.T) {
	router := newTestRouter(t)

	paths := []struct {
		method string
		path   string
		body   string
	}{
		{http.MethodGet, "/items/999999", ""},
		{http.MethodPut, "/items/999999", `{"name":"X","sku":"X"}`},
		{http.MethodDelete, "/items/999999", ""},
	}

	for _, tc := range paths {
		rec := doJSON(t, router, tc.method, tc.path, tc.body)
		require.Equal(t, http.StatusNotFound, rec.Code, "%s %s", tc.method, tc.path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
		assert.Equal(t, "Item not found", body["detail"])
	}
}

func TestMetricsEndpoint(t *testing.T) {
	router := newTestRouter(t)

	doJSON(t, router, http.MethodGet, "/items", "")

	rec := doJSON(t, router, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "http_requests_total")
}
