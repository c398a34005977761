package handler

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/CraftLedger_Go/internal/domain"
	"github.com/osse101/CraftLedger_Go/internal/ledger"
	"github.com/osse101/CraftLedger_Go/mocks"
)

func TestHandleListInventory(t *testing.T) {
	mockSvc := mocks.NewMockLedgerService(t)
	mockSvc.On("ListInventory", mock.Anything).Return([]domain.InventoryRecord{{ItemID: 1, Amount: 20}})

	w := httptest.NewRecorder()
	HandleListInventory(mockSvc).ServeHTTP(w, newJSONRequest(t, http.MethodGet, "/api/v1/inventory", nil, nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"itemId":1,"amount":20}]`, w.Body.String())
}

func TestHandleSetQuantity(t *testing.T) {
	tests := []struct {
		name           string
		body           interface{}
		setupMock      func(*mocks.MockLedgerService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Set",
			body: SetQuantityRequest{ItemID: 1, Amount: 5},
			setupMock: func(m *mocks.MockLedgerService) {
				m.On("SetQuantity", mock.Anything, 1, 5).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   MsgQuantityUpdated,
		},
		{
			name: "Zero removes",
			body: SetQuantityRequest{ItemID: 1, Amount: 0},
			setupMock: func(m *mocks.MockLedgerService) {
				m.On("SetQuantity", mock.Anything, 1, 0).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   MsgQuantityUpdated,
		},
		{
			name:           "Missing item id",
			body:           SetQuantityRequest{Amount: 5},
			setupMock:      func(m *mocks.MockLedgerService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"itemId"`,
		},
		{
			name: "Unknown item",
			body: SetQuantityRequest{ItemID: 42, Amount: 5},
			setupMock: func(m *mocks.MockLedgerService) {
				m.On("SetQuantity", mock.Anything, 42, 5).Return(fmt.Errorf("set quantity: %w", domain.ErrItemNotFound))
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   ErrMsgItemNotFoundError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := mocks.NewMockLedgerService(t)
			tt.setupMock(mockSvc)

			w := httptest.NewRecorder()
			HandleSetQuantity(mockSvc).ServeHTTP(w, newJSONRequest(t, http.MethodPut, "/api/v1/inventory", tt.body, nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
		})
	}
}

func TestHandleInventoryValue(t *testing.T) {
	mockSvc := mocks.NewMockLedgerService(t)
	mockSvc.On("Valuation", mock.Anything).Return(ledger.Valuation{
		Total: decimal.NewFromInt(250),
		Units: 25,
	})

	w := httptest.NewRecorder()
	HandleInventoryValue(mockSvc).ServeHTTP(w, newJSONRequest(t, http.MethodGet, "/api/v1/inventory/value", nil, nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"250"`)
}
