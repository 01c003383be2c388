package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"betterBiteAPI/services"
)

type RecipeHandler struct {
	recipeService *services.RecipeService
}

func NewRecipeHandler(recipeService *services.RecipeService) *RecipeHandler {
	return &RecipeHandler{
		recipeService: recipeService,
	}
}

// GET /api/v1/recipes?q=salad&tags=id1,id2
func (h *RecipeHandler) GetRecipes(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	query := r.URL.Query().Get("q")

	var tagIDs []string
	for _, id := range strings.Split(r.URL.Query().Get("tags"), ",") {
		if id = strings.TrimSpace(id); id != "" {
			tagIDs = append(tagIDs, id)
		}
	}

	respondWithJSON(w, http.StatusOK, h.recipeService.FilterRecipes(ctx, query, tagIDs))
}

// GET /api/v1/recipes/tags
func (h *RecipeHandler) GetTags(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	respondWithJSON(w, http.StatusOK, h.recipeService.ListTags(ctx))
}
