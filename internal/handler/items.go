package handler

import (
	"net/http"

	"github.com/osse101/CraftLedger_Go/internal/domain"
	"github.com/osse101/CraftLedger_Go/internal/ledger"
)

// HandleListItems returns the full catalog
// @Summary List items
// @Description Returns every catalog item. Storage failures yield an empty list.
// @Tags items
// @Produce json
// @Success 200 {array} domain.Item
// @Router /api/v1/items [get]
func HandleListItems(svc ledger.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, svc.ListItems(r.Context()))
	}
}

// HandleSaveItem creates an item, or overwrites it when the body carries a known id
// @Summary Save item
// @Description Inserts a new item (id 0 or unknown) or overwrites an existing one
// @Tags items
// @Accept json
// @Produce json
// @Param request body domain.Item true "Item"
// @Success 200 {object} domain.Item
// @Failure 400 {object} ValidationErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/items [post]
func HandleSaveItem(svc ledger.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var item domain.Item
		if err := DecodeAndValidateRequest(r, w, &item, "Save item"); err != nil {
			return
		}
		saveItem(w, r, svc, item)
	}
}

// HandleUpdateItem overwrites the item named by the path
// @Summary Update item
// @Tags items
// @Accept json
// @Produce json
// @Param id path int true "Item ID"
// @Param request body domain.Item true "Item"
// @Success 200 {object} domain.Item
// @Failure 400 {object} ValidationErrorResponse
// @Router /api/v1/items/{id} [put]
func HandleUpdateItem(svc ledger.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, ParamID)
		if !ok {
			return
		}
		var item domain.Item
		if err := DecodeRequest(r, w, &item, "Update item"); err != nil {
			return
		}
		item.ID = id
		if err := DecodeValidate(w, item); err != nil {
			return
		}
		saveItem(w, r, svc, item)
	}
}

func saveItem(w http.ResponseWriter, r *http.Request, svc ledger.Service, item domain.Item) {
	saved, err := svc.UpsertItem(r.Context(), item)
	if err != nil {
		respondServiceError(w, r, "Save item", err)
		return
	}
	respondJSON(w, http.StatusOK, saved)
}

// HandleDeleteItem removes an item and its inventory record
// @Summary Delete item
// @Description Deletes the item and its on-hand record. Items used by recipes are rejected.
// @Tags items
// @Produce json
// @Param id path int true "Item ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/items/{id} [delete]
func HandleDeleteItem(svc ledger.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, ParamID)
		if !ok {
			return
		}
		if err := svc.DeleteItem(r.Context(), id); err != nil {
			respondServiceError(w, r, "Delete item", err)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgItemDeleted})
	}
}
