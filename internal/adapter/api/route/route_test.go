package route

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/loja-api/internal/adapter/api/controller"
	"github.com/hugohenrick/loja-api/internal/adapter/repository/memory"
	"github.com/hugohenrick/loja-api/internal/config"
	"github.com/hugohenrick/loja-api/internal/domain/catalog"
	"github.com/hugohenrick/loja-api/internal/domain/user"
	"github.com/hugohenrick/loja-api/internal/service"
	"github.com/hugohenrick/loja-api/pkg/auth"
	"github.com/hugohenrick/loja-api/pkg/logger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopGeocoder struct{}

func (nopGeocoder) ReverseGeocode(context.Context, decimal.Decimal, decimal.Decimal) string {
	return ""
}

type testAPI struct {
	router *gin.Engine
	store  *memory.Store
	tokens *auth.JWTService
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := logger.NewNop()
	store := memory.New()
	tokens, err := auth.NewJWTService(config.JWTConfig{SecretKey: "segredo-de-teste"})
	require.NoError(t, err)

	users := service.NewUserService(store.Users(), log)
	catalogService := service.NewCatalogService(store.Categories(), store.Products(), log)

	r := gin.New()
	SetupRoutes(r.Group("/api/v1"), Controllers{
		Health:   controller.NewHealthController("memory", nil, log),
		Auth:     controller.NewAuthController(service.NewAuthService(users, store.Users(), tokens, log), log),
		User:     controller.NewUserController(users, log),
		Category: controller.NewCategoryController(catalogService, log),
		Product:  controller.NewProductController(catalogService, log),
		Cart:     controller.NewCartController(service.NewCartService(store.Carts(), store.Products(), log), log),
		Order: controller.NewOrderController(
			service.NewOrderService(store.Orders(), store.UnitOfWork(), store.Carts(), nopGeocoder{}, log), log),
		Expense: controller.NewExpenseController(service.NewExpenseService(store.Expenses(), time.UTC, log), log),
		Finance: controller.NewFinanceController(service.NewFinanceService(store.Finance(), time.UTC, log), log),
	}, auth.JWTAuthMiddleware(tokens))

	return &testAPI{router: r, store: store, tokens: tokens}
}

// login cria o usuário direto no repositório e devolve o cabeçalho Authorization
func (a *testAPI) login(t *testing.T, username string, staff bool) (*user.User, string) {
	t.Helper()
	u, err := user.NewUser(username, username+"@loja.test", "", "", "senha-forte")
	require.NoError(t, err)
	u.IsStaff = staff
	require.NoError(t, a.store.Users().Create(context.Background(), u))

	pair, err := a.tokens.GenerateTokenPair(u)
	require.NoError(t, err)
	return u, "Bearer " + pair.AccessToken
}

func (a *testAPI) product(t *testing.T, price string, stock int) *catalog.Product {
	t.Helper()
	ctx := context.Background()
	cat, err := catalog.NewCategory("Ferramentas "+time.Now().Format(time.RFC3339Nano), "")
	require.NoError(t, err)
	require.NoError(t, a.store.Categories().Create(ctx, cat))

	p, err := catalog.NewProduct("Furadeira", decimal.RequireFromString(price), decimal.RequireFromString("10"), stock, cat.ID)
	require.NoError(t, err)
	require.NoError(t, a.store.Products().Create(ctx, p))
	return p
}

func (a *testAPI) do(method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestHealth(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(http.MethodGet, "/api/v1/health", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", decode(t, w)["status"])
}

func TestAuthRequired(t *testing.T) {
	api := newTestAPI(t)

	for _, path := range []string{"/api/v1/cart", "/api/v1/orders", "/api/v1/auth/me", "/api/v1/finance/overview"} {
		w := api.do(http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}
}

func TestStaffOnlyRoutes(t *testing.T) {
	api := newTestAPI(t)
	_, customerToken := api.login(t, "cliente", false)
	_, staffToken := api.login(t, "gerente", true)

	for _, path := range []string{"/api/v1/finance/overview", "/api/v1/expenses"} {
		assert.Equal(t, http.StatusForbidden, api.do(http.MethodGet, path, customerToken, nil).Code, path)
		assert.Equal(t, http.StatusOK, api.do(http.MethodGet, path, staffToken, nil).Code, path)
	}

	w := api.do(http.MethodPost, "/api/v1/categories", customerToken, map[string]any{"name": "Jardim"})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRegisterAndLogin(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(http.MethodPost, "/api/v1/auth/register", "", map[string]any{
		"username": "maria",
		"password": "senha-forte",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.NotEmpty(t, decode(t, w)["access"])

	w = api.do(http.MethodPost, "/api/v1/auth/login", "", map[string]any{"username": "maria", "password": "errada"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = api.do(http.MethodPost, "/api/v1/auth/login", "", map[string]any{"username": "maria", "password": "senha-forte"})
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)

	w = api.do(http.MethodGet, "/api/v1/auth/me", "Bearer "+body["access"].(string), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "maria", decode(t, w)["username"])

	// token de renovação não serve como token de acesso
	w = api.do(http.MethodGet, "/api/v1/auth/me", "Bearer "+body["refresh"].(string), nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = api.do(http.MethodPost, "/api/v1/auth/refresh", "", map[string]any{"refresh": body["refresh"]})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUserVisibility(t *testing.T) {
	api := newTestAPI(t)
	_, aliceToken := api.login(t, "alice", false)
	bob, _ := api.login(t, "bob", false)

	w := api.do(http.MethodGet, "/api/v1/users/"+bob.ID, aliceToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCartAddItemStatus(t *testing.T) {
	api := newTestAPI(t)
	_, token := api.login(t, "cliente", false)
	p := api.product(t, "100", 5)

	w := api.do(http.MethodPost, "/api/v1/cart/items", token, map[string]any{"product": p.ID})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = api.do(http.MethodPost, "/api/v1/cart/items", token, map[string]any{"product": p.ID, "quantity": 2})
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	items := body["items"].([]any)
	require.Len(t, items, 1)
	assert.EqualValues(t, 3, items[0].(map[string]any)["quantity"])
	assert.Equal(t, "300.00", body["total_price"])

	w = api.do(http.MethodPost, "/api/v1/cart/items", token, map[string]any{"product": p.ID, "quantity": 0})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decode(t, w)["fields"], "quantity")
}

func TestCourierOrderWithoutCoordinates(t *testing.T) {
	api := newTestAPI(t)
	_, token := api.login(t, "cliente", false)
	p := api.product(t, "100", 5)

	w := api.do(http.MethodPost, "/api/v1/orders", token, map[string]any{
		"items":         []map[string]any{{"product": p.ID, "quantity": 1}},
		"delivery_type": "courier",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decode(t, w)["fields"], "delivery_location")

	stored, err := api.store.Products().FindByID(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, stored.Stock)
}

func TestOrderFromCart(t *testing.T) {
	api := newTestAPI(t)
	_, token := api.login(t, "cliente", false)
	_, otherToken := api.login(t, "outro", false)
	p := api.product(t, "100", 5)

	require.Equal(t, http.StatusCreated,
		api.do(http.MethodPost, "/api/v1/cart/items", token, map[string]any{"product": p.ID, "quantity": 2}).Code)

	w := api.do(http.MethodPost, "/api/v1/orders", token, map[string]any{})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode(t, w)
	assert.Equal(t, "200.00", created["total_price"])

	orderID := created["id"].(string)
	assert.Equal(t, http.StatusOK, api.do(http.MethodGet, "/api/v1/orders/"+orderID, token, nil).Code)
	assert.Equal(t, http.StatusNotFound, api.do(http.MethodGet, "/api/v1/orders/"+orderID, otherToken, nil).Code)

	// status é exclusivo da equipe
	w = api.do(http.MethodPatch, "/api/v1/orders/"+orderID+"/status", token, map[string]any{"status": "paid"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = api.do(http.MethodGet, "/api/v1/cart", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode(t, w)["items"])
}

func TestExpenseCRUD(t *testing.T) {
	api := newTestAPI(t)
	_, token := api.login(t, "gerente", true)

	w := api.do(http.MethodPost, "/api/v1/expenses", token, map[string]any{
		"title":        "Aluguel",
		"amount":       "1500.5",
		"expense_date": "2026-03-01",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode(t, w)
	assert.Equal(t, "1500.50", created["amount"])
	assert.Equal(t, "2026-03-01", created["expense_date"])
	id := created["id"].(string)

	w = api.do(http.MethodPatch, "/api/v1/expenses/"+id, token, map[string]any{"note": "março"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Aluguel", decode(t, w)["title"])

	w = api.do(http.MethodPost, "/api/v1/expenses", token, map[string]any{
		"title":        "Luz",
		"amount":       "10",
		"expense_date": "01/03/2026",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decode(t, w)["fields"], "expense_date")

	assert.Equal(t, http.StatusBadRequest, api.do(http.MethodGet, "/api/v1/expenses?expense_date=ontem", token, nil).Code)

	assert.Equal(t, http.StatusNoContent, api.do(http.MethodDelete, "/api/v1/expenses/"+id, token, nil).Code)
	assert.Equal(t, http.StatusNotFound, api.do(http.MethodGet, "/api/v1/expenses/"+id, token, nil).Code)
}

func TestProductListRejectsInvalidPrice(t *testing.T) {
	api := newTestAPI(t)
	api.product(t, "100", 5)

	w := api.do(http.MethodGet, "/api/v1/products?min_price=abc", "", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decode(t, w)["fields"], "min_price")

	w = api.do(http.MethodGet, "/api/v1/products?min_price=50", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var products []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))
	assert.Len(t, products, 1)
}

func TestMalformedIDs(t *testing.T) {
	api := newTestAPI(t)
	_, token := api.login(t, "cliente", false)
	p := api.product(t, "100", 5)

	w := api.do(http.MethodPost, "/api/v1/orders", token, map[string]any{
		"items": []map[string]any{{"product": p.ID, "quantity": 1}, {"product": "abc", "quantity": 1}},
	})
	require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	fields, ok := decode(t, w)["fields"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, fmt.Sprint(fields["items"]), "abc")

	stored, err := api.store.Products().FindByID(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, stored.Stock)

	assert.Equal(t, http.StatusNotFound, api.do(http.MethodGet, "/api/v1/products/abc", "", nil).Code)
	assert.Equal(t, http.StatusNotFound, api.do(http.MethodGet, "/api/v1/orders/abc", token, nil).Code)
}
