package handler

import (
	"net/http"

	"github.com/osse101/CraftLedger_Go/internal/ledger"
)

// SetQuantityRequest sets the on-hand amount of one item
type SetQuantityRequest struct {
	ItemID int `json:"itemId" validate:"gt=0,lte=2147483647"`
	Amount int `json:"amount" validate:"lte=2147483647"`
}

// HandleListInventory returns every on-hand record
// @Summary List inventory
// @Description Returns all inventory records. Storage failures yield an empty list.
// @Tags inventory
// @Produce json
// @Success 200 {array} domain.InventoryRecord
// @Router /api/v1/inventory [get]
func HandleListInventory(svc ledger.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, svc.ListInventory(r.Context()))
	}
}

// HandleSetQuantity overwrites an item's on-hand amount
// @Summary Set quantity
// @Description Sets the amount exactly. An amount of zero or less removes the record.
// @Tags inventory
// @Accept json
// @Produce json
// @Param request body SetQuantityRequest true "Quantity"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/inventory [put]
func HandleSetQuantity(svc ledger.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SetQuantityRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Set quantity"); err != nil {
			return
		}
		if err := svc.SetQuantity(r.Context(), req.ItemID, req.Amount); err != nil {
			respondServiceError(w, r, "Set quantity", err)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgQuantityUpdated})
	}
}

// HandleInventoryValue returns the stock valuation
// @Summary Inventory value
// @Description Total price x amount of all stock, overall and per category
// @Tags inventory
// @Produce json
// @Success 200 {object} ledger.Valuation
// @Router /api/v1/inventory/value [get]
func HandleInventoryValue(svc ledger.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, svc.Valuation(r.Context()))
	}
}
