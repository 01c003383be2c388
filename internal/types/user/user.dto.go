package user

type RegisterRequest struct {
	Name                string  `json:"name" validate:"required"`
	Email               string  `json:"email" validate:"required,email"`
	Password            string  `json:"password" validate:"required,min=6"`
	BirthDate           string  `json:"birth_date" validate:"required,datetime=2006-01-02"`
	Gender              string  `json:"gender" validate:"required,oneof=male female other"`
	WeightKg            float64 `json:"weight_kg" validate:"gt=0"`
	HeightCm            float64 `json:"height_cm" validate:"gt=0"`
	DietaryRestrictions string  `json:"dietary_restrictions"` // comma separated
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateProfileRequest edits the logged in user. Email cannot change.
type UpdateProfileRequest struct {
	Name                string  `json:"name" validate:"required"`
	WeightKg            float64 `json:"weight_kg" validate:"gt=0"`
	HeightCm            float64 `json:"height_cm" validate:"gt=0"`
	DietaryRestrictions string  `json:"dietary_restrictions"`
}
