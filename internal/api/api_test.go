package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"dinepos-be/internal/cart"
	"dinepos-be/internal/inventory"
	"dinepos-be/internal/order"
	"dinepos-be/internal/report"
	"dinepos-be/internal/tables"
	"dinepos-be/internal/user"
	"dinepos-be/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockUserService struct{ mock.Mock }

func (m *MockUserService) Register(ctx context.Context, email, password string) (string, user.User, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.Get(1).(user.User), args.Error(2)
}

func (m *MockUserService) Login(ctx context.Context, email, password string) (string, user.User, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.Get(1).(user.User), args.Error(2)
}

type MockInventoryService struct{ mock.Mock }

func (m *MockInventoryService) AddItem(ctx context.Context, input inventory.NewItemInput) (*inventory.Item, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.Item), args.Error(1)
}

func (m *MockInventoryService) GetItem(ctx context.Context, id string) (*inventory.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.Item), args.Error(1)
}

func (m *MockInventoryService) Menu(ctx context.Context, category string) ([]*inventory.Item, []string, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).([]*inventory.Item), args.Get(1).([]string), args.Error(2)
}

func (m *MockInventoryService) EditItem(ctx context.Context, id string, input inventory.UpdateItemInput) (*inventory.Item, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.Item), args.Error(1)
}

func (m *MockInventoryService) RemoveItem(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockOrderService struct{ mock.Mock }

func (m *MockOrderService) PlaceOrder(ctx context.Context, c cart.Cart, info order.CustomerInfo) (*order.Order, error) {
	args := m.Called(ctx, c, info)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderService) CompleteOrder(ctx context.Context, orderID string) (*order.Order, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderService) PendingOrders(ctx context.Context, search string) ([]*order.Order, error) {
	args := m.Called(ctx, search)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockTableService struct{ mock.Mock }

func (m *MockTableService) Bootstrap(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTableService) List(ctx context.Context) ([]*tables.Table, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*tables.Table), args.Error(1)
}

func (m *MockTableService) ListFree(ctx context.Context) ([]*tables.Table, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*tables.Table), args.Error(1)
}

func (m *MockTableService) SetStatus(ctx context.Context, id string, status tables.Status) (*tables.Table, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tables.Table), args.Error(1)
}

type MockReportService struct{ mock.Mock }

func (m *MockReportService) Sales(ctx context.Context, period report.Period) (*report.SalesReport, error) {
	args := m.Called(ctx, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*report.SalesReport), args.Error(1)
}

func (m *MockReportService) SalesCSV(ctx context.Context, period report.Period) ([]byte, error) {
	args := m.Called(ctx, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockReportService) Summary(ctx context.Context) (*report.Summary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*report.Summary), args.Error(1)
}

type testHandler struct {
	h         *Handler
	userSvc   *MockUserService
	invSvc    *MockInventoryService
	orderSvc  *MockOrderService
	tableSvc  *MockTableService
	reportSvc *MockReportService
}

func newTestHandler() *testHandler {
	th := &testHandler{
		userSvc:   new(MockUserService),
		invSvc:    new(MockInventoryService),
		orderSvc:  new(MockOrderService),
		tableSvc:  new(MockTableService),
		reportSvc: new(MockReportService),
	}
	th.h = &Handler{
		UserSvc:      th.userSvc,
		InventorySvc: th.invSvc,
		OrderSvc:     th.orderSvc,
		TableSvc:     th.tableSvc,
		ReportSvc:    th.reportSvc,
	}
	return th
}

func (th *testHandler) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	th.h.Routes().ServeHTTP(rec, req)
	return rec
}

func asAdmin(req *http.Request) *http.Request {
	ctx := utils.SetUserContext(req.Context(), 1, "admin@example.com", "admin")
	return req.WithContext(ctx)
}

func TestPlaceOrder(t *testing.T) {
	body := `{
		"items": [{"item_id": "item-a", "quantity": 2}],
		"customer": {"name": "John Doe", "phone": "555", "pay_on_delivery": true, "table_id": "table1"}
	}`

	t.Run("Success", func(t *testing.T) {
		th := newTestHandler()

		tableID := "table1"
		placed := &order.Order{
			ID:            "order-1",
			CustomerName:  "John Doe",
			Phone:         "555",
			PaymentMethod: order.PaymentPayOnDelivery,
			Lines:         []order.Line{{ItemID: "item-a", Name: "Burger", Price: 3.00, Quantity: 2}},
			TotalPrice:    6.00,
			Status:        order.StatusPending,
			TableID:       &tableID,
			CreatedAt:     time.Now(),
		}
		th.orderSvc.On("PlaceOrder", mock.Anything, cart.Cart{"item-a": 2}, order.CustomerInfo{
			Name: "John Doe", Phone: "555", PayOnDelivery: true, TableID: "table1",
		}).Return(placed, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewBufferString(body))
		rec := th.do(req)

		assert.Equal(t, http.StatusCreated, rec.Code)

		var resp placeOrderResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "order-1", resp.Order.ID)
		assert.Contains(t, resp.Receipt, "John Doe")
		th.orderSvc.AssertExpectations(t)
	})

	t.Run("Error - insufficient stock maps to 409", func(t *testing.T) {
		th := newTestHandler()

		th.orderSvc.On("PlaceOrder", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, &order.InsufficientStockError{Name: "Burger", Available: 1}).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewBufferString(body))
		rec := th.do(req)

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Contains(t, rec.Body.String(), "Burger")
	})

	t.Run("Error - table required maps to 400", func(t *testing.T) {
		th := newTestHandler()

		th.orderSvc.On("PlaceOrder", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, order.ErrTableRequired).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewBufferString(body))
		rec := th.do(req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Error - invalid body", func(t *testing.T) {
		th := newTestHandler()

		req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewBufferString("{"))
		rec := th.do(req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		th.orderSvc.AssertNotCalled(t, "PlaceOrder")
	})
}

func TestCompleteOrder(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		th := newTestHandler()

		th.orderSvc.On("CompleteOrder", mock.Anything, "order-1").
			Return(&order.Order{ID: "order-1", Status: order.StatusCompleted}, nil).Once()

		req := asAdmin(httptest.NewRequest(http.MethodPost, "/api/orders/order-1/complete", nil))
		rec := th.do(req)

		assert.Equal(t, http.StatusOK, rec.Code)
		th.orderSvc.AssertExpectations(t)
	})

	t.Run("Success - partial write surfaces as warning", func(t *testing.T) {
		th := newTestHandler()

		completed := &order.Order{ID: "order-1", Status: order.StatusCompleted}
		th.orderSvc.On("CompleteOrder", mock.Anything, "order-1").
			Return(completed, &order.PartialWriteError{Op: "table release", Err: errors.New("db error")}).Once()

		req := asAdmin(httptest.NewRequest(http.MethodPost, "/api/orders/order-1/complete", nil))
		rec := th.do(req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "table status not updated")
	})

	t.Run("Error - not found", func(t *testing.T) {
		th := newTestHandler()

		th.orderSvc.On("CompleteOrder", mock.Anything, "missing").
			Return(nil, order.ErrOrderNotFound).Once()

		req := asAdmin(httptest.NewRequest(http.MethodPost, "/api/orders/missing/complete", nil))
		rec := th.do(req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("Error - already completed maps to 409", func(t *testing.T) {
		th := newTestHandler()

		th.orderSvc.On("CompleteOrder", mock.Anything, "order-1").
			Return(nil, order.ErrOrderNotPending).Once()

		req := asAdmin(httptest.NewRequest(http.MethodPost, "/api/orders/order-1/complete", nil))
		rec := th.do(req)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("Error - non-admin forbidden", func(t *testing.T) {
		th := newTestHandler()

		req := httptest.NewRequest(http.MethodPost, "/api/orders/order-1/complete", nil)
		rec := th.do(req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		th.orderSvc.AssertNotCalled(t, "CompleteOrder")
	})
}

func TestMenu(t *testing.T) {
	t.Run("Success - bootstraps tables on load", func(t *testing.T) {
		th := newTestHandler()

		items := []*inventory.Item{{ID: "item-a", Name: "Burger", Category: "food"}}
		th.tableSvc.On("Bootstrap", mock.Anything).Return(nil).Once()
		th.invSvc.On("Menu", mock.Anything, "food").Return(items, []string{"all", "food"}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/menu?category=food", nil)
		rec := th.do(req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Burger")
		th.tableSvc.AssertExpectations(t)
	})

	t.Run("Error - bootstrap failure", func(t *testing.T) {
		th := newTestHandler()

		th.tableSvc.On("Bootstrap", mock.Anything).Return(errors.New("db error")).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/menu", nil)
		rec := th.do(req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		th.invSvc.AssertNotCalled(t, "Menu")
	})
}

func TestInventoryAdmin(t *testing.T) {
	t.Run("Success - add item", func(t *testing.T) {
		th := newTestHandler()

		input := inventory.NewItemInput{Name: "Burger", Price: 3.00, Stock: 10, Category: "food"}
		created := &inventory.Item{ID: "item-a", Name: "Burger", Price: 3.00, Stock: 10, Category: "food"}
		th.invSvc.On("AddItem", mock.Anything, input).Return(created, nil).Once()

		body, _ := json.Marshal(input)
		req := asAdmin(httptest.NewRequest(http.MethodPost, "/api/inventory", bytes.NewBuffer(body)))
		rec := th.do(req)

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("Error - add item requires admin", func(t *testing.T) {
		th := newTestHandler()

		req := httptest.NewRequest(http.MethodPost, "/api/inventory", bytes.NewBufferString(`{}`))
		rec := th.do(req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		th.invSvc.AssertNotCalled(t, "AddItem")
	})

	t.Run("Error - delete missing item", func(t *testing.T) {
		th := newTestHandler()

		th.invSvc.On("RemoveItem", mock.Anything, "missing").Return(inventory.ErrItemNotFound).Once()

		req := asAdmin(httptest.NewRequest(http.MethodDelete, "/api/inventory/missing", nil))
		rec := th.do(req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestSetTableStatus(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		th := newTestHandler()

		updated := &tables.Table{ID: "table1", Status: tables.StatusMaintenance}
		th.tableSvc.On("SetStatus", mock.Anything, "table1", tables.StatusMaintenance).
			Return(updated, nil).Once()

		req := asAdmin(httptest.NewRequest(http.MethodPut, "/api/tables/table1/status",
			bytes.NewBufferString(`{"status": "maintenance"}`)))
		rec := th.do(req)

		assert.Equal(t, http.StatusOK, rec.Code)
		th.tableSvc.AssertExpectations(t)
	})

	t.Run("Error - invalid status", func(t *testing.T) {
		th := newTestHandler()

		th.tableSvc.On("SetStatus", mock.Anything, "table1", tables.Status("broken")).
			Return(nil, tables.ErrInvalidStatus).Once()

		req := asAdmin(httptest.NewRequest(http.MethodPut, "/api/tables/table1/status",
			bytes.NewBufferString(`{"status": "broken"}`)))
		rec := th.do(req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestSalesReportCSV(t *testing.T) {
	th := newTestHandler()

	th.reportSvc.On("SalesCSV", mock.Anything, report.PeriodWeek).
		Return([]byte("Customer Name,Date\n"), nil).Once()

	req := asAdmin(httptest.NewRequest(http.MethodGet, "/api/reports/sales.csv?period=week", nil))
	rec := th.do(req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "sales_report.csv")
}

func TestRegister(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		th := newTestHandler()

		th.userSvc.On("Register", mock.Anything, "buyer@example.com", "secret123").
			Return("token-abc", user.User{ID: 1, Email: "buyer@example.com", Role: user.RoleBuyer}, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/register",
			bytes.NewBufferString(`{"email": "buyer@example.com", "password": "secret123"}`))
		rec := th.do(req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), "token-abc")
	})

	t.Run("Error - duplicate email maps to 409", func(t *testing.T) {
		th := newTestHandler()

		th.userSvc.On("Register", mock.Anything, "dupe@example.com", "secret123").
			Return("", user.User{}, user.ErrEmailExists).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/register",
			bytes.NewBufferString(`{"email": "dupe@example.com", "password": "secret123"}`))
		rec := th.do(req)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestLogin(t *testing.T) {
	t.Run("Error - invalid credentials", func(t *testing.T) {
		th := newTestHandler()

		th.userSvc.On("Login", mock.Anything, "buyer@example.com", "wrong").
			Return("", user.User{}, user.ErrInvalidCredentials).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/login",
			bytes.NewBufferString(`{"email": "buyer@example.com", "password": "wrong"}`))
		rec := th.do(req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
