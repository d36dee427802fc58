package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	handlers "github.com/UmmeHabiba1312/Kharedo-api/internal/adapter/http"
	"github.com/UmmeHabiba1312/Kharedo-api/internal/adapter/repo"
	"github.com/UmmeHabiba1312/Kharedo-api/internal/entity"
	"github.com/UmmeHabiba1312/Kharedo-api/internal/usecase"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memIdem is an in-memory stand-in for the redis idempotency store.
type memIdem struct {
	locks map[string]bool
	vals  map[string]string
}

func newMemIdem() *memIdem {
	return &memIdem{locks: map[string]bool{}, vals: map[string]string{}}
}

func (m *memIdem) TryLock(_ context.Context, scope, key string) (bool, error) {
	k := scope + ":" + key
	if m.locks[k] {
		return false, nil
	}
	m.locks[k] = true
	return true, nil
}

func (m *memIdem) Remember(_ context.Context, scope, key, value string) error {
	m.vals[scope+":"+key] = value
	return nil
}

func (m *memIdem) Recall(_ context.Context, scope, key string) (string, bool, error) {
	v, ok := m.vals[scope+":"+key]
	return v, ok, nil
}

func newOrderEnv(t *testing.T, idem usecase.IdempotencyStore) *gin.Engine {
	t.Helper()
	svc := usecase.NewOrderService(repo.DefaultCatalog(), repo.NewMemoryOrderLedger(), noopNotifier{},
		usecase.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	h := handlers.NewOrderHandler(svc, idem)

	r := gin.New()
	r.POST("/v1/orders", h.PlaceOrder)
	r.GET("/v1/orders/:id", h.GetOrderByID)
	r.PATCH("/v1/orders/:id", h.UpdateOrder)
	r.DELETE("/v1/orders/:id", h.CancelOrder)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string, hdr map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range hdr {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPlaceOrderEndpoint(t *testing.T) {
	r := newOrderEnv(t, nil)

	w := doJSON(t, r, nethttp.MethodPost, "/v1/orders",
		`{"item":"iphone 15 pro","phoneNumber":"03001234567","address":"123 Main St","quantity":2}`, nil)
	require.Equal(t, nethttp.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		OrderID string       `json:"orderId"`
		Order   entity.Order `json:"order"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.OrderID)
	assert.Equal(t, "Iphone 15 Pro", resp.Order.Item)
	assert.InDelta(t, 2399.98, resp.Order.Price, 1e-9)
	assert.Equal(t, entity.StatusPending, resp.Order.Status)

	// round-trip through GET
	got := doJSON(t, r, nethttp.MethodGet, "/v1/orders/"+resp.OrderID, "", nil)
	require.Equal(t, nethttp.StatusOK, got.Code)
	assert.Contains(t, got.Body.String(), resp.OrderID)
}

func TestPlaceOrderEndpointUnknownProduct(t *testing.T) {
	r := newOrderEnv(t, nil)

	w := doJSON(t, r, nethttp.MethodPost, "/v1/orders",
		`{"item":"iphone 99","phoneNumber":"03001234567","address":"X"}`, nil)
	require.Equal(t, nethttp.StatusNotFound, w.Code)

	var resp struct {
		Suggestions []string `json:"suggestions"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Suggestions, "Iphone 15 Pro")
}

func TestPlaceOrderEndpointValidation(t *testing.T) {
	r := newOrderEnv(t, nil)

	// missing phone
	w := doJSON(t, r, nethttp.MethodPost, "/v1/orders", `{"item":"OnePlus 11","address":"X"}`, nil)
	assert.Equal(t, nethttp.StatusBadRequest, w.Code)

	// negative quantity rejected by binding
	w = doJSON(t, r, nethttp.MethodPost, "/v1/orders",
		`{"item":"OnePlus 11","phoneNumber":"03001234567","address":"X","quantity":-1}`, nil)
	assert.Equal(t, nethttp.StatusBadRequest, w.Code)
}

func TestPlaceOrderEndpointIdempotency(t *testing.T) {
	r := newOrderEnv(t, newMemIdem())
	hdr := map[string]string{"X-Idempotency-Key": "k-1"}
	body := `{"item":"Nike Air Max","phoneNumber":"03001234567","address":"X"}`

	first := doJSON(t, r, nethttp.MethodPost, "/v1/orders", body, hdr)
	require.Equal(t, nethttp.StatusCreated, first.Code)

	var resp struct {
		OrderID string `json:"orderId"`
	}
	require.NoError(t, json.Unmarshal(first.Body.Bytes(), &resp))

	second := doJSON(t, r, nethttp.MethodPost, "/v1/orders", body, hdr)
	require.Equal(t, nethttp.StatusOK, second.Code, "replay must return the original order, not create a new one")
	assert.Contains(t, second.Body.String(), resp.OrderID)
}

func TestUpdateOrderEndpoint(t *testing.T) {
	r := newOrderEnv(t, nil)

	w := doJSON(t, r, nethttp.MethodPost, "/v1/orders",
		`{"item":"Puma Classic","phoneNumber":"03001234567","address":"X"}`, nil)
	require.Equal(t, nethttp.StatusCreated, w.Code)
	var resp struct {
		OrderID string `json:"orderId"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	upd := doJSON(t, r, nethttp.MethodPatch, "/v1/orders/"+resp.OrderID, `{"quantity":4}`, nil)
	require.Equal(t, nethttp.StatusOK, upd.Code, upd.Body.String())
	assert.Contains(t, upd.Body.String(), "519.96") // 4 x 129.99

	missing := doJSON(t, r, nethttp.MethodPatch, "/v1/orders/0000", `{"quantity":4}`, nil)
	assert.Equal(t, nethttp.StatusNotFound, missing.Code)
}

func TestCancelOrderEndpoint(t *testing.T) {
	r := newOrderEnv(t, nil)

	w := doJSON(t, r, nethttp.MethodPost, "/v1/orders",
		`{"item":"Xbox Series X","phoneNumber":"03001234567","address":"X"}`, nil)
	require.Equal(t, nethttp.StatusCreated, w.Code)
	var resp struct {
		OrderID string `json:"orderId"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	del := doJSON(t, r, nethttp.MethodDelete, "/v1/orders/"+resp.OrderID, "", nil)
	require.Equal(t, nethttp.StatusOK, del.Code)
	assert.Contains(t, del.Body.String(), "cancelled")

	// idempotent second cancel
	del2 := doJSON(t, r, nethttp.MethodDelete, "/v1/orders/"+resp.OrderID, "", nil)
	assert.Equal(t, nethttp.StatusOK, del2.Code)

	missing := doJSON(t, r, nethttp.MethodDelete, "/v1/orders/0000", "", nil)
	assert.Equal(t, nethttp.StatusNotFound, missing.Code)
}

func TestCatalogEndpoints(t *testing.T) {
	svc := usecase.NewOrderService(repo.DefaultCatalog(), repo.NewMemoryOrderLedger(), noopNotifier{},
		usecase.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	h := handlers.NewCatalogHandler(svc)

	r := gin.New()
	r.GET("/categories", h.GetCategories)
	r.GET("/v1/catalog", h.GetCatalog)
	r.GET("/v1/offers", h.GetOffers)

	w := doJSON(t, r, nethttp.MethodGet, "/categories", "", nil)
	require.Equal(t, nethttp.StatusOK, w.Code)
	var cats struct {
		Categories []string `json:"categories"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cats))
	assert.Len(t, cats.Categories, 9)

	w = doJSON(t, r, nethttp.MethodGet, "/v1/catalog?category=Audio", "", nil)
	require.Equal(t, nethttp.StatusOK, w.Code)
	var prods struct {
		Products []entity.Product `json:"products"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &prods))
	assert.Len(t, prods.Products, 3)

	w = doJSON(t, r, nethttp.MethodGet, "/v1/offers", "", nil)
	require.Equal(t, nethttp.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "special offers")
}
