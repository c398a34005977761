package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/CraftLedger_Go/internal/domain"
	"github.com/osse101/CraftLedger_Go/mocks"
)

func TestHandleListItems(t *testing.T) {
	mockSvc := mocks.NewMockLedgerService(t)
	mockSvc.On("ListItems", mock.Anything).Return([]domain.Item{
		{ID: 1, Name: "Iron Ore", Price: 10, Category: "Material"},
	})

	w := httptest.NewRecorder()
	HandleListItems(mockSvc).ServeHTTP(w, newJSONRequest(t, http.MethodGet, "/api/v1/items", nil, nil))

	assert.Equal(t, http.StatusOK, w.Code)
	items := decodeBody[[]domain.Item](t, w)
	assert.Len(t, items, 1)
	assert.Equal(t, "Iron Ore", items[0].Name)
}

func TestHandleListItems_EmptyIsArray(t *testing.T) {
	mockSvc := mocks.NewMockLedgerService(t)
	mockSvc.On("ListItems", mock.Anything).Return([]domain.Item{})

	w := httptest.NewRecorder()
	HandleListItems(mockSvc).ServeHTTP(w, newJSONRequest(t, http.MethodGet, "/api/v1/items", nil, nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestHandleSaveItem(t *testing.T) {
	tests := []struct {
		name           string
		body           interface{}
		setupMock      func(*mocks.MockLedgerService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Insert",
			body: domain.Item{Name: "Coal", Price: 5, Category: "Material"},
			setupMock: func(m *mocks.MockLedgerService) {
				m.On("UpsertItem", mock.Anything, domain.Item{Name: "Coal", Price: 5, Category: "Material"}).
					Return(domain.Item{ID: 2, Name: "Coal", Price: 5, Category: "Material"}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"id":2`,
		},
		{
			name:           "Blank name",
			body:           domain.Item{Name: "  ", Price: 5, Category: "Material"},
			setupMock:      func(m *mocks.MockLedgerService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"name"`,
		},
		{
			name:           "Negative price",
			body:           domain.Item{Name: "Coal", Price: -1, Category: "Material"},
			setupMock:      func(m *mocks.MockLedgerService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"price"`,
		},
		{
			name:           "Malformed body",
			body:           `{"name":`,
			setupMock:      func(m *mocks.MockLedgerService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidRequest,
		},
		{
			name: "Store failure",
			body: domain.Item{Name: "Coal", Price: 5, Category: "Material"},
			setupMock: func(m *mocks.MockLedgerService) {
				m.On("UpsertItem", mock.Anything, mock.Anything).Return(domain.Item{}, errors.New("disk full"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   ErrMsgGenericServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := mocks.NewMockLedgerService(t)
			tt.setupMock(mockSvc)

			w := httptest.NewRecorder()
			HandleSaveItem(mockSvc).ServeHTTP(w, newJSONRequest(t, http.MethodPost, "/api/v1/items", tt.body, nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			assert.NotContains(t, w.Body.String(), "disk full")
		})
	}
}

func TestHandleUpdateItem_UsesPathID(t *testing.T) {
	mockSvc := mocks.NewMockLedgerService(t)
	want := domain.Item{ID: 7, Name: "Gold", Price: 100, Category: "Currency"}
	mockSvc.On("UpsertItem", mock.Anything, want).Return(want, nil)

	body := domain.Item{ID: 99, Name: "Gold", Price: 100, Category: "Currency"}
	w := httptest.NewRecorder()
	HandleUpdateItem(mockSvc).ServeHTTP(w, newJSONRequest(t, http.MethodPut, "/api/v1/items/7", body, idParam("7")))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, want, decodeBody[domain.Item](t, w))
}

func TestHandleUpdateItem_InvalidID(t *testing.T) {
	for _, id := range []string{"abc", "0", "-3"} {
		t.Run(id, func(t *testing.T) {
			mockSvc := mocks.NewMockLedgerService(t)

			w := httptest.NewRecorder()
			HandleUpdateItem(mockSvc).ServeHTTP(w, newJSONRequest(t, http.MethodPut, "/api/v1/items/"+id, domain.Item{}, idParam(id)))

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), fmt.Sprintf(ErrMsgInvalidID, ParamID))
		})
	}
}

func TestHandleDeleteItem(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedBody   string
	}{
		{"Deleted", nil, http.StatusOK, MsgItemDeleted},
		{"Not found", fmt.Errorf("delete item 3: %w", domain.ErrItemNotFound), http.StatusNotFound, ErrMsgItemNotFoundError},
		{"Referenced by recipe", fmt.Errorf("delete item 3: %w", domain.ErrItemInUse), http.StatusConflict, ErrMsgItemInUseError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := mocks.NewMockLedgerService(t)
			mockSvc.On("DeleteItem", mock.Anything, 3).Return(tt.err)

			w := httptest.NewRecorder()
			HandleDeleteItem(mockSvc).ServeHTTP(w, newJSONRequest(t, http.MethodDelete, "/api/v1/items/3", nil, idParam("3")))

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
		})
	}
}
