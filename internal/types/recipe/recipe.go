package recipe

import "github.com/google/uuid"

type Tag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Recipe struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	ImageURL    string   `json:"image_url"`
	Ingredients []string `json:"ingredients"`
	Preparation string   `json:"preparation"`
	PrepTimeMin int      `json:"prep_time_min"`
	Servings    int      `json:"servings"`

	// Per serving
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Fat      float64 `json:"fat"`
	Fiber    float64 `json:"fiber"`

	TagIDs []string `json:"tag_ids"`
}

func NewTag(name string) Tag {
	return Tag{ID: uuid.NewString(), Name: name}
}

func NewRecipe(r Recipe) Recipe {
	r.ID = uuid.NewString()
	return r
}

func (r Recipe) HasTag(tagID string) bool {
	for _, id := range r.TagIDs {
		if id == tagID {
			return true
		}
	}
	return false
}
