package user

import (
	"time"

	"github.com/google/uuid"
)

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

type User struct {
	ID                  string    `json:"id"`
	Name                string    `json:"name"`
	Email               string    `json:"email"`
	PasswordHash        string    `json:"password_hash"`
	BirthDate           time.Time `json:"birth_date"`
	Gender              Gender    `json:"gender"`
	WeightKg            float64   `json:"weight_kg"`
	HeightCm            float64   `json:"height_cm"`
	DietaryRestrictions []string  `json:"dietary_restrictions"`
}

// Profile is the user as returned over the API, without the password hash.
type Profile struct {
	ID                  string    `json:"id"`
	Name                string    `json:"name"`
	Email               string    `json:"email"`
	BirthDate           time.Time `json:"birth_date"`
	Gender              Gender    `json:"gender"`
	WeightKg            float64   `json:"weight_kg"`
	HeightCm            float64   `json:"height_cm"`
	DietaryRestrictions []string  `json:"dietary_restrictions"`
}

func NewUser(name, email, passwordHash string, birthDate time.Time, gender Gender, weightKg, heightCm float64, restrictions []string) User {
	return User{
		ID:                  uuid.NewString(),
		Name:                name,
		Email:               email,
		PasswordHash:        passwordHash,
		BirthDate:           birthDate,
		Gender:              gender,
		WeightKg:            weightKg,
		HeightCm:            heightCm,
		DietaryRestrictions: restrictions,
	}
}

func (u User) Profile() Profile {
	return Profile{
		ID:                  u.ID,
		Name:                u.Name,
		Email:               u.Email,
		BirthDate:           u.BirthDate,
		Gender:              u.Gender,
		WeightKg:            u.WeightKg,
		HeightCm:            u.HeightCm,
		DietaryRestrictions: u.DietaryRestrictions,
	}
}
