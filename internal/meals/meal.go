package meals

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/2beens/fittrack/internal/fitness"
)

var (
	ErrMealNotFound = errors.New("meal not found")
	ErrInvalidMeal  = errors.New("invalid meal")
)

type MealType string

const (
	MealTypeBreakfast MealType = "BREAKFAST"
	MealTypeLunch     MealType = "LUNCH"
	MealTypeDinner    MealType = "DINNER"
	MealTypeSnack     MealType = "SNACK"
)

func (mt MealType) IsValid() bool {
	switch mt {
	case MealTypeBreakfast, MealTypeLunch, MealTypeDinner, MealTypeSnack:
		return true
	}
	return false
}

type Meal struct {
	ID          int       `json:"id"`
	UserID      int       `json:"user_id"`
	MealType    MealType  `json:"meal_type"`
	FoodName    string    `json:"food_name"`
	Calories    int       `json:"calories"`
	ProteinG    float64   `json:"protein_g"`
	CarbsG      float64   `json:"carbs_g"`
	FatsG       float64   `json:"fats_g"`
	ServingSize string    `json:"serving_size"`
	Notes       string    `json:"notes"`
	LoggedAt    time.Time `json:"logged_at"`
}

// Normalize defaults the meal type to SNACK and validates the rest.
func (m *Meal) Normalize() error {
	if m.MealType == "" {
		m.MealType = MealTypeSnack
	}
	m.MealType = MealType(strings.ToUpper(string(m.MealType)))
	if !m.MealType.IsValid() {
		return fmt.Errorf("%w: unknown meal type [%s]", ErrInvalidMeal, m.MealType)
	}

	m.FoodName = strings.TrimSpace(m.FoodName)
	if m.FoodName == "" {
		return fmt.Errorf("%w: food_name is required", ErrInvalidMeal)
	}
	if m.Calories < 0 || m.ProteinG < 0 || m.CarbsG < 0 || m.FatsG < 0 {
		return fmt.Errorf("%w: calories and macros must not be negative", ErrInvalidMeal)
	}
	m.ProteinG = fitness.Round2(m.ProteinG)
	m.CarbsG = fitness.Round2(m.CarbsG)
	m.FatsG = fitness.Round2(m.FatsG)
	return nil
}

// Totals is the nutrition sum of a set of meals.
type Totals struct {
	Calories   int     `json:"calories"`
	Protein    float64 `json:"protein"`
	Carbs      float64 `json:"carbs"`
	Fats       float64 `json:"fats"`
	MealsCount int     `json:"meals_count"`
}

func Sum(meals []Meal) Totals {
	var t Totals
	for _, m := range meals {
		t.Calories += m.Calories
		t.Protein += m.ProteinG
		t.Carbs += m.CarbsG
		t.Fats += m.FatsG
		t.MealsCount++
	}
	t.Protein = fitness.Round2(t.Protein)
	t.Carbs = fitness.Round2(t.Carbs)
	t.Fats = fitness.Round2(t.Fats)
	return t
}
