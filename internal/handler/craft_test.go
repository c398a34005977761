package handler

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/CraftLedger_Go/internal/domain"
	"github.com/osse101/CraftLedger_Go/mocks"
)

func TestHandleCheckCraft(t *testing.T) {
	mockSvc := mocks.NewMockCraftingService(t)
	mockSvc.On("Check", mock.Anything, 1).Return(domain.CraftCheck{
		RecipeID:  1,
		Craftable: false,
		Missing:   []domain.MissingMaterial{{ItemID: 2, Required: 1, OnHand: 0}},
	}, nil)

	w := httptest.NewRecorder()
	HandleCheckCraft(mockSvc).ServeHTTP(w, newJSONRequest(t, http.MethodGet, "/api/v1/recipes/1/check", nil, idParam("1")))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"recipeId":1,"craftable":false,"missing":[{"itemId":2,"required":1,"onHand":0}]}`, w.Body.String())
}

func TestHandleCraft(t *testing.T) {
	tests := []struct {
		name           string
		body           interface{}
		setupMock      func(*mocks.MockCraftingService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success outcome",
			body: CraftRequest{Outcome: "success"},
			setupMock: func(m *mocks.MockCraftingService) {
				m.On("Resolve", mock.Anything, 1, domain.OutcomeSuccess).Return(domain.CraftResult{
					RecipeID: 1,
					Outcome:  domain.OutcomeSuccess,
					Consumed: []domain.QuantityChange{{ItemID: 1, Before: 5, After: 3}},
					Produced: []domain.QuantityChange{{ItemID: 3, Before: 0, After: 1}},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"outcome":"success"`,
		},
		{
			name: "Outcome is case-insensitive",
			body: CraftRequest{Outcome: "FAIL"},
			setupMock: func(m *mocks.MockCraftingService) {
				m.On("Resolve", mock.Anything, 1, domain.OutcomeFail).
					Return(domain.CraftResult{RecipeID: 1, Outcome: domain.OutcomeFail}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"outcome":"fail"`,
		},
		{
			name:           "Missing outcome",
			body:           CraftRequest{},
			setupMock:      func(m *mocks.MockCraftingService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"outcome"`,
		},
		{
			name:           "Unknown outcome",
			body:           CraftRequest{Outcome: "maybe"},
			setupMock:      func(m *mocks.MockCraftingService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   domain.ErrMsgInvalidOutcome,
		},
		{
			name: "Insufficient materials",
			body: CraftRequest{Outcome: "success"},
			setupMock: func(m *mocks.MockCraftingService) {
				m.On("Resolve", mock.Anything, 1, domain.OutcomeSuccess).
					Return(domain.CraftResult{}, fmt.Errorf("consume item 1: %w", domain.ErrInsufficientMaterials))
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   ErrMsgNotEnoughMaterials,
		},
		{
			name: "Unknown recipe",
			body: CraftRequest{Outcome: "success"},
			setupMock: func(m *mocks.MockCraftingService) {
				m.On("Resolve", mock.Anything, 1, domain.OutcomeSuccess).
					Return(domain.CraftResult{}, domain.ErrRecipeNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   ErrMsgRecipeNotFoundError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := mocks.NewMockCraftingService(t)
			tt.setupMock(mockSvc)

			w := httptest.NewRecorder()
			HandleCraft(mockSvc).ServeHTTP(w, newJSONRequest(t, http.MethodPost, "/api/v1/recipes/1/craft", tt.body, idParam("1")))

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
		})
	}
}
