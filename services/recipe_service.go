package services

import (
	"context"
	"strings"

	"betterBiteAPI/internal/types/recipe"
)

// RecipeService serves the fixed recipe catalogue.
type RecipeService struct {
	recipes []recipe.Recipe
	tags    []recipe.Tag
}

func NewRecipeService(recipes []recipe.Recipe, tags []recipe.Tag) *RecipeService {
	return &RecipeService{
		recipes: append([]recipe.Recipe(nil), recipes...),
		tags:    append([]recipe.Tag(nil), tags...),
	}
}

func (s *RecipeService) ListRecipes(ctx context.Context) []recipe.Recipe {
	return append([]recipe.Recipe(nil), s.recipes...)
}

func (s *RecipeService) ListTags(ctx context.Context) []recipe.Tag {
	return append([]recipe.Tag(nil), s.tags...)
}

// TagName resolves a tag id; unknown ids give "".
func (s *RecipeService) TagName(ctx context.Context, id string) string {
	for _, t := range s.tags {
		if t.ID == id {
			return t.Name
		}
	}
	return ""
}

// FilterRecipes matches text case-insensitively against the name or any
// ingredient, and requires every tag in tagIDs. Empty arguments match all.
func (s *RecipeService) FilterRecipes(ctx context.Context, text string, tagIDs []string) []recipe.Recipe {
	needle := strings.ToLower(strings.TrimSpace(text))

	out := []recipe.Recipe{}
	for _, r := range s.recipes {
		if needle != "" && !matchesText(r, needle) {
			continue
		}
		if !hasAllTags(r, tagIDs) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func matchesText(r recipe.Recipe, needle string) bool {
	if strings.Contains(strings.ToLower(r.Name), needle) {
		return true
	}
	for _, ing := range r.Ingredients {
		if strings.Contains(strings.ToLower(ing), needle) {
			return true
		}
	}
	return false
}

func hasAllTags(r recipe.Recipe, tagIDs []string) bool {
	for _, id := range tagIDs {
		if !r.HasTag(id) {
			return false
		}
	}
	return true
}
