package handler

import (
	"net/http"

	"github.com/osse101/CraftLedger_Go/internal/crafting"
	"github.com/osse101/CraftLedger_Go/internal/domain"
)

// CraftRequest chooses the outcome of one craft attempt
type CraftRequest struct {
	Outcome string `json:"outcome" validate:"required"`
}

// HandleCheckCraft reports whether a recipe is affordable
// @Summary Check craft
// @Description Affordability of a recipe against current stock, with missing materials
// @Tags crafting
// @Produce json
// @Param id path int true "Recipe ID"
// @Success 200 {object} domain.CraftCheck
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/recipes/{id}/check [get]
func HandleCheckCraft(svc crafting.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, ParamID)
		if !ok {
			return
		}
		check, err := svc.Check(r.Context(), id)
		if err != nil {
			respondServiceError(w, r, "Check craft", err)
			return
		}
		respondJSON(w, http.StatusOK, check)
	}
}

// HandleCraft resolves one craft attempt for the chosen outcome
// @Summary Craft
// @Description Consumes remove=true costs and produces the results of the chosen outcome, atomically
// @Tags crafting
// @Accept json
// @Produce json
// @Param id path int true "Recipe ID"
// @Param request body CraftRequest true "Outcome"
// @Success 200 {object} domain.CraftResult
// @Failure 400 {object} ValidationErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/recipes/{id}/craft [post]
func HandleCraft(svc crafting.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, ParamID)
		if !ok {
			return
		}
		var req CraftRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Craft"); err != nil {
			return
		}
		outcome, err := domain.ParseOutcome(req.Outcome)
		if err != nil {
			respondServiceError(w, r, "Craft", err)
			return
		}
		result, err := svc.Resolve(r.Context(), id, outcome)
		if err != nil {
			respondServiceError(w, r, "Craft", err)
			return
		}
		respondJSON(w, http.StatusOK, result)
	}
}
