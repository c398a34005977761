package handler

import (
	"net/http"

	"github.com/osse101/CraftLedger_Go/internal/domain"
	"github.com/osse101/CraftLedger_Go/internal/recipe"
)

// HandleListRecipes returns every recipe with its lines
// @Summary List recipes
// @Description Returns all recipes joined with costs and results. Storage failures yield an empty list.
// @Tags recipes
// @Produce json
// @Success 200 {array} domain.Recipe
// @Router /api/v1/recipes [get]
func HandleListRecipes(svc recipe.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, svc.ListRecipes(r.Context()))
	}
}

// HandleGetRecipe returns one recipe
// @Summary Get recipe
// @Tags recipes
// @Produce json
// @Param id path int true "Recipe ID"
// @Success 200 {object} domain.Recipe
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/recipes/{id} [get]
func HandleGetRecipe(svc recipe.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, ParamID)
		if !ok {
			return
		}
		rec, err := svc.GetRecipe(r.Context(), id)
		if err != nil {
			respondServiceError(w, r, "Get recipe", err)
			return
		}
		respondJSON(w, http.StatusOK, rec)
	}
}

// HandleSaveRecipe writes a recipe and replaces its lines atomically.
// Validation runs in the service after defaults are filled in.
// @Summary Save recipe
// @Description Creates (id 0 or unknown) or updates a recipe and replaces all its cost and result lines in one transaction
// @Tags recipes
// @Accept json
// @Produce json
// @Param request body domain.Recipe true "Recipe with lines"
// @Success 200 {object} domain.Recipe
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/recipes [post]
func HandleSaveRecipe(svc recipe.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var rec domain.Recipe
		if err := DecodeRequest(r, w, &rec, "Save recipe"); err != nil {
			return
		}
		saveRecipe(w, r, svc, rec)
	}
}

// HandleUpdateRecipe saves the recipe named by the path
// @Summary Update recipe
// @Tags recipes
// @Accept json
// @Produce json
// @Param id path int true "Recipe ID"
// @Param request body domain.Recipe true "Recipe with lines"
// @Success 200 {object} domain.Recipe
// @Router /api/v1/recipes/{id} [put]
func HandleUpdateRecipe(svc recipe.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, ParamID)
		if !ok {
			return
		}
		var rec domain.Recipe
		if err := DecodeRequest(r, w, &rec, "Update recipe"); err != nil {
			return
		}
		rec.ID = id
		saveRecipe(w, r, svc, rec)
	}
}

func saveRecipe(w http.ResponseWriter, r *http.Request, svc recipe.Service, rec domain.Recipe) {
	saved, err := svc.SaveRecipe(r.Context(), rec)
	if err != nil {
		respondServiceError(w, r, "Save recipe", err)
		return
	}
	respondJSON(w, http.StatusOK, saved)
}

// HandleDeleteRecipe removes a recipe and its lines
// @Summary Delete recipe
// @Tags recipes
// @Produce json
// @Param id path int true "Recipe ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/recipes/{id} [delete]
func HandleDeleteRecipe(svc recipe.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, ParamID)
		if !ok {
			return
		}
		if err := svc.DeleteRecipe(r.Context(), id); err != nil {
			respondServiceError(w, r, "Delete recipe", err)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgRecipeDeleted})
	}
}
