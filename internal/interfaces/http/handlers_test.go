package http_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/warehouse-manager/internal/application/auth"
	"github.com/jhoicas/warehouse-manager/internal/application/dto"
	"github.com/jhoicas/warehouse-manager/internal/application/inventory"
	"github.com/jhoicas/warehouse-manager/internal/domain/entity"
	infrapdf "github.com/jhoicas/warehouse-manager/internal/infrastructure/pdf"
	"github.com/jhoicas/warehouse-manager/internal/infrastructure/xmlexport"
	apphttp "github.com/jhoicas/warehouse-manager/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/warehouse-manager/pkg/jwt"
	"github.com/jhoicas/warehouse-manager/pkg/logger"
)

const (
	testOperator = "operador"
	testPassword = "clave-segura-123"
)

// newServer arma el router completo sobre una bodega en memoria.
func newServer(t *testing.T) *fiber.App {
	t.Helper()
	log := logger.Nop()
	warehouse := inventory.NewSerializedWarehouse(entity.NewWarehouse())

	hash, err := auth.HashPassword(testPassword)
	require.NoError(t, err)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		StockUC:  inventory.NewStockUseCase("main", warehouse, log),
		OrderUC:  inventory.NewOrderUseCase(warehouse, log),
		ReportUC: inventory.NewReportUseCase("main", warehouse, infrapdf.NewMarotoStockReport(), xmlexport.NewStockXML()),
		AuthUC: auth.NewAuthUseCase(
			auth.Operator{User: testOperator, PasswordHash: hash},
			auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer},
		),
		JWTSecret: testJWTSecret,
	})
	return app
}

func call(t *testing.T, app *fiber.App, method, path, authHeader string, body interface{}) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func amount(n int) dto.StockAmountRequest { return dto.StockAmountRequest{Amount: &n} }

// ──────────────────────────────────────────────────────────────────────────────
// Auth
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_CredencialesValidas(t *testing.T) {
	app := newServer(t)
	resp := call(t, app, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{User: testOperator, Password: testPassword})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	out := decode[dto.LoginResponse](t, resp)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, pkgjwt.RoleOperator, out.Role)

	// El token emitido sirve para las rutas protegidas.
	resp = call(t, app, http.MethodGet, "/api/stock", "Bearer "+out.Token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestLogin_PasswordIncorrecto_Retorna401(t *testing.T) {
	app := newServer(t)
	resp := call(t, app, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{User: testOperator, Password: "otra"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLogin_CamposVacios_Retorna400(t *testing.T) {
	app := newServer(t)
	resp := call(t, app, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{User: testOperator})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRutasProtegidas_SinToken_Retorna401(t *testing.T) {
	app := newServer(t)
	resp := call(t, app, http.MethodGet, "/api/stock", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Stock
// ──────────────────────────────────────────────────────────────────────────────

func TestStock_EscenarioCherry(t *testing.T) {
	app := newServer(t)
	op := tokenForRole(t, pkgjwt.RoleOperator)

	resp := call(t, app, http.MethodPost, "/api/stock/Cherry/add", op, amount(9999))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 9999, decode[dto.StockItemResponse](t, resp).Quantity)

	resp = call(t, app, http.MethodPost, "/api/stock/Cherry/take", op, amount(999))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 9000, decode[dto.StockItemResponse](t, resp).Quantity)

	resp = call(t, app, http.MethodGet, "/api/stock/Cherry", tokenForRole(t, pkgjwt.RoleViewer), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, dto.StockItemResponse{Product: "Cherry", Quantity: 9000}, decode[dto.StockItemResponse](t, resp))
}

func TestStock_ProductoConEspacios(t *testing.T) {
	app := newServer(t)
	op := tokenForRole(t, pkgjwt.RoleOperator)

	resp := call(t, app, http.MethodPost, "/api/stock/Green%20Apple/add", op, amount(3))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Green Apple", decode[dto.StockItemResponse](t, resp).Product)
}

func TestStock_Errores(t *testing.T) {
	app := newServer(t)
	op := tokenForRole(t, pkgjwt.RoleOperator)
	require.Equal(t, http.StatusOK, call(t, app, http.MethodPost, "/api/stock/Apple/add", op, amount(0)).StatusCode)

	cases := []struct {
		name   string
		method string
		path   string
		body   interface{}
		status int
		code   string
	}{
		{"consulta producto inexistente", http.MethodGet, "/api/stock/Ghost", nil, http.StatusNotFound, "NO_SUCH_PRODUCT"},
		{"entrada negativa", http.MethodPost, "/api/stock/Apple/add", amount(-1), http.StatusBadRequest, "VALIDATION"},
		{"salida sin stock", http.MethodPost, "/api/stock/Apple/take", amount(1), http.StatusConflict, "INSUFFICIENT_STOCK"},
		{"salida de producto inexistente", http.MethodPost, "/api/stock/Ghost/take", amount(-1), http.StatusNotFound, "NO_SUCH_PRODUCT"},
		{"salida negativa", http.MethodPost, "/api/stock/Apple/take", amount(-1), http.StatusBadRequest, "VALIDATION"},
		{"nombre en blanco", http.MethodPost, "/api/stock/%20/add", amount(1), http.StatusBadRequest, "VALIDATION"},
		{"sin amount", http.MethodPost, "/api/stock/Apple/add", dto.StockAmountRequest{}, http.StatusBadRequest, "VALIDATION"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := call(t, app, tc.method, tc.path, op, tc.body)
			assert.Equal(t, tc.status, resp.StatusCode)
			assert.Equal(t, tc.code, decode[dto.ErrorResponse](t, resp).Code)
		})
	}

	// Ninguna falla modificó el stock.
	resp := call(t, app, http.MethodGet, "/api/stock/Apple", op, nil)
	assert.Equal(t, 0, decode[dto.StockItemResponse](t, resp).Quantity)
}

func TestStock_ViewerNoPuedeMoverStock(t *testing.T) {
	app := newServer(t)
	resp := call(t, app, http.MethodPost, "/api/stock/Apple/add", tokenForRole(t, pkgjwt.RoleViewer), amount(1))
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestStock_ListOrdenadoPorProducto(t *testing.T) {
	app := newServer(t)
	op := tokenForRole(t, pkgjwt.RoleOperator)
	call(t, app, http.MethodPost, "/api/stock/Banana/add", op, amount(1))
	call(t, app, http.MethodPost, "/api/stock/Apple/add", op, amount(0))

	resp := call(t, app, http.MethodGet, "/api/stock", op, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decode[dto.StockListResponse](t, resp)
	assert.Equal(t, "main", out.WarehouseID)
	assert.Equal(t, 2, out.Total)
	assert.Equal(t, []dto.StockItemResponse{
		{Product: "Apple", Quantity: 0},
		{Product: "Banana", Quantity: 1},
	}, out.Items)
}

func TestStock_ReportePDF(t *testing.T) {
	app := newServer(t)
	op := tokenForRole(t, pkgjwt.RoleOperator)
	call(t, app, http.MethodPost, "/api/stock/Cherry/add", op, amount(9000))

	resp := call(t, app, http.MethodGet, "/api/stock/report.pdf", op, nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(body, []byte("%PDF")))
}

func TestStock_ExportacionXML(t *testing.T) {
	app := newServer(t)
	op := tokenForRole(t, pkgjwt.RoleOperator)
	call(t, app, http.MethodPost, "/api/stock/Cherry/add", op, amount(9000))

	resp := call(t, app, http.MethodGet, "/api/stock/export.xml", op, nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, strings.HasPrefix(resp.Header.Get("Content-Type"), "application/xml"))
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `<Item product="Cherry" quantity="9000"></Item>`)
}

// ──────────────────────────────────────────────────────────────────────────────
// Orders
// ──────────────────────────────────────────────────────────────────────────────

func TestOrders_CrearConsultarYDespachar(t *testing.T) {
	app := newServer(t)
	op := tokenForRole(t, pkgjwt.RoleOperator)
	call(t, app, http.MethodPost, "/api/stock/Cherry/add", op, amount(5))

	resp := call(t, app, http.MethodPost, "/api/orders", op, dto.CreateOrderRequest{Product: "Cherry", Amount: 5})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	order := decode[dto.OrderResponse](t, resp)
	assert.False(t, order.Filled)

	resp = call(t, app, http.MethodGet, "/api/orders/"+order.ID+"/can-fill", op, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, decode[dto.CanFillResponse](t, resp).CanFill)

	resp = call(t, app, http.MethodPost, "/api/orders/"+order.ID+"/fill", op, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	filled := decode[dto.OrderResponse](t, resp)
	assert.True(t, filled.Filled)
	assert.NotNil(t, filled.FilledAt)

	resp = call(t, app, http.MethodGet, "/api/stock/Cherry", op, nil)
	assert.Equal(t, 0, decode[dto.StockItemResponse](t, resp).Quantity)

	resp = call(t, app, http.MethodPost, "/api/orders/"+order.ID+"/fill", op, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "ORDER_ALREADY_FILLED", decode[dto.ErrorResponse](t, resp).Code)

	resp = call(t, app, http.MethodGet, "/api/orders", op, nil)
	list := decode[dto.OrderListResponse](t, resp)
	require.Equal(t, 1, list.Total)
	assert.Equal(t, order.ID, list.Items[0].ID)
}

func TestOrders_CantidadInvalida_Retorna400(t *testing.T) {
	app := newServer(t)
	resp := call(t, app, http.MethodPost, "/api/orders", tokenForRole(t, pkgjwt.RoleOperator),
		dto.CreateOrderRequest{Product: "Cherry", Amount: 0})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_AMOUNT", decode[dto.ErrorResponse](t, resp).Code)
}

func TestOrders_NoEncontrada_Retorna404(t *testing.T) {
	app := newServer(t)
	resp := call(t, app, http.MethodGet, "/api/orders/no-existe", tokenForRole(t, pkgjwt.RoleViewer), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestOrders_FillSinStock_Retorna409YNoDespacha(t *testing.T) {
	app := newServer(t)
	op := tokenForRole(t, pkgjwt.RoleOperator)
	call(t, app, http.MethodPost, "/api/stock/Cherry/add", op, amount(1))

	order := decode[dto.OrderResponse](t, call(t, app, http.MethodPost, "/api/orders", op,
		dto.CreateOrderRequest{Product: "Cherry", Amount: 2}))

	resp := call(t, app, http.MethodGet, "/api/orders/"+order.ID+"/can-fill", op, nil)
	assert.False(t, decode[dto.CanFillResponse](t, resp).CanFill)

	resp = call(t, app, http.MethodPost, "/api/orders/"+order.ID+"/fill", op, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "WAREHOUSE_OPERATION_FAILED", decode[dto.ErrorResponse](t, resp).Code)

	resp = call(t, app, http.MethodGet, "/api/orders/"+order.ID, op, nil)
	assert.False(t, decode[dto.OrderResponse](t, resp).Filled)
}

// offlineWarehouse bodega cuyo backend no responde.
type offlineWarehouse struct{}

func (offlineWarehouse) HasProduct(string) (bool, error)  { return false, errors.New("connection refused") }
func (offlineWarehouse) CurrentStock(string) (int, error) { return 0, errors.New("connection refused") }
func (offlineWarehouse) AddStock(string, int) error       { return errors.New("connection refused") }
func (offlineWarehouse) TakeStock(string, int) error      { return errors.New("connection refused") }

func TestOrders_CanFillConBackendCaido_NoRespondeFalse(t *testing.T) {
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		OrderUC:   inventory.NewOrderUseCase(offlineWarehouse{}, logger.Nop()),
		JWTSecret: testJWTSecret,
	})
	op := tokenForRole(t, pkgjwt.RoleOperator)
	order := decode[dto.OrderResponse](t, call(t, app, http.MethodPost, "/api/orders", op,
		dto.CreateOrderRequest{Product: "Cherry", Amount: 1}))

	resp := call(t, app, http.MethodGet, "/api/orders/"+order.ID+"/can-fill", op, nil)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "INTERNAL", decode[dto.ErrorResponse](t, resp).Code)

	resp = call(t, app, http.MethodPost, "/api/orders/"+order.ID+"/fill", op, nil)
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
}

func TestOrders_ViewerNoPuedeDespachar(t *testing.T) {
	app := newServer(t)
	op := tokenForRole(t, pkgjwt.RoleOperator)
	order := decode[dto.OrderResponse](t, call(t, app, http.MethodPost, "/api/orders", op,
		dto.CreateOrderRequest{Product: "Cherry", Amount: 1}))

	resp := call(t, app, http.MethodPost, "/api/orders/"+order.ID+"/fill", tokenForRole(t, pkgjwt.RoleViewer), nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}
