package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campus-eats/controllers"
	"campus-eats/models"
	"campus-eats/services"
	"campus-eats/store/memstore"
)

type cartEnv struct {
	store  *memstore.Store
	router *mux.Router
	user   *models.User
	item   *models.MenuItem
}

func newCartEnv(t *testing.T) *cartEnv {
	t.Helper()
	st := memstore.New()

	user := &models.User{
		Name:  "Ravi Kumar",
		Email: "ravi@campus.edu",
		Role:  "user",
		Cart:  []models.CartItem{},
	}
	require.NoError(t, st.Users().Insert(context.Background(), user))

	item := &models.MenuItem{Name: "Masala Dosa", Price: 50, Category: "Meals", Stock: 10}
	require.NoError(t, st.Menus().Insert(context.Background(), item))

	cartService := services.NewCartService(st)
	orderService := services.NewOrderService(st, nil)
	cc := controllers.NewCartController(cartService, orderService)

	router := mux.NewRouter()
	router.HandleFunc("/cart/add", cc.AddToCart).Methods("POST")
	router.HandleFunc("/cart/viewCart/{userId}", cc.ViewCart).Methods("GET")
	router.HandleFunc("/cart/update", cc.UpdateQuantity).Methods("POST")
	router.HandleFunc("/cart/remove", cc.RemoveItem).Methods("POST")
	router.HandleFunc("/cart/checkout/{userId}", cc.Checkout).Methods("POST")

	return &cartEnv{store: st, router: router, user: user, item: item}
}

func (e *cartEnv) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func TestAddToCartHandler(t *testing.T) {
	env := newCartEnv(t)

	rec := env.do(t, http.MethodPost, "/cart/add", map[string]interface{}{
		"userId":   env.user.ID.Hex(),
		"itemId":   env.item.ID.Hex(),
		"quantity": 2,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Message string            `json:"message"`
		Cart    []models.CartItem `json:"cart"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Item added to cart", resp.Message)
	require.Len(t, resp.Cart, 1)
	assert.Equal(t, 2, resp.Cart[0].Quantity)
}

func TestAddToCartHandlerUnknownItem(t *testing.T) {
	env := newCartEnv(t)

	rec := env.do(t, http.MethodPost, "/cart/add", map[string]interface{}{
		"userId": env.user.ID.Hex(),
		"itemId": "00000000000000000000000a",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAddToCartHandlerMalformedID(t *testing.T) {
	env := newCartEnv(t)

	rec := env.do(t, http.MethodPost, "/cart/add", map[string]interface{}{
		"userId": "nope",
		"itemId": env.item.ID.Hex(),
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestViewCartHandlerEmpty(t *testing.T) {
	env := newCartEnv(t)

	rec := env.do(t, http.MethodGet, "/cart/viewCart/"+env.user.ID.Hex(), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"cart":[]}`, rec.Body.String())
}

func TestUpdateQuantityHandlerRejectsZero(t *testing.T) {
	env := newCartEnv(t)

	env.do(t, http.MethodPost, "/cart/add", map[string]interface{}{
		"userId": env.user.ID.Hex(), "itemId": env.item.ID.Hex(), "quantity": 2,
	})

	rec := env.do(t, http.MethodPost, "/cart/update", map[string]interface{}{
		"userId": env.user.ID.Hex(), "itemId": env.item.ID.Hex(), "quantity": 0,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRemoveHandlerMissingLine(t *testing.T) {
	env := newCartEnv(t)

	rec := env.do(t, http.MethodPost, "/cart/remove", map[string]interface{}{
		"userId": env.user.ID.Hex(), "itemId": env.item.ID.Hex(),
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCheckoutHandler(t *testing.T) {
	env := newCartEnv(t)

	env.do(t, http.MethodPost, "/cart/add", map[string]interface{}{
		"userId": env.user.ID.Hex(), "itemId": env.item.ID.Hex(), "quantity": 3,
	})

	rec := env.do(t, http.MethodPost, "/cart/checkout/"+env.user.ID.Hex(), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Message string       `json:"message"`
		Order   models.Order `json:"order"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Order placed successfully!", resp.Message)
	assert.Equal(t, 150.0, resp.Order.TotalAmount)
	assert.Regexp(t, `^ORD-[0-9A-F]{6}$`, resp.Order.OrderNumber)

	// cart is empty afterwards
	rec = env.do(t, http.MethodGet, "/cart/viewCart/"+env.user.ID.Hex(), nil)
	assert.JSONEq(t, `{"cart":[]}`, rec.Body.String())

	// a second checkout has nothing to convert
	rec = env.do(t, http.MethodPost, fmt.Sprintf("/cart/checkout/%s", env.user.ID.Hex()), nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
