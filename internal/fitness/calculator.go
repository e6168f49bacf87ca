// Package fitness holds the body metric formulas. Every function is pure,
// invalid input is reported through the second (ok) return value.
package fitness

import (
	"math"
	"time"
)

const (
	// DefaultMET is used for activity types missing from the MET table.
	DefaultMET = 5.0

	minNormalBMI = 18.5
	maxNormalBMI = 24.9

	proteinKcalPerGram = 4.0
	carbsKcalPerGram   = 4.0
	fatKcalPerGram     = 9.0

	waterMLPerKg = 35.0
)

var metValues = map[ActivityType]float64{
	ActivityTypeRunning:       9.8,
	ActivityTypeCycling:       7.5,
	ActivityTypeWeightlifting: 6.0,
	ActivityTypeSwimming:      8.0,
	ActivityTypeWalking:       3.8,
	ActivityTypeYoga:          2.5,
	ActivityTypeHIIT:          8.0,
	ActivityTypeOther:         5.0,
}

var tdeeMultipliers = map[ActivityLevel]float64{
	ActivityLevelSedentary: 1.2,
	ActivityLevelActive:    1.55,
	ActivityLevelAthlete:   1.9,
}

var waterBonus = map[ActivityLevel]float64{
	ActivityLevelSedentary: 1.0,
	ActivityLevelActive:    1.15,
	ActivityLevelAthlete:   1.3,
}

// Mifflin-St Jeor constants, O sits halfway between M and F.
var bmrGenderOffset = map[Gender]float64{
	GenderMale:   5,
	GenderFemale: -161,
	GenderOther:  -78,
}

type macroRatio struct {
	protein, carbs, fat float64
}

var macroRatios = map[NutritionGoal]macroRatio{
	NutritionGoalMaintain:   {protein: 0.30, carbs: 0.40, fat: 0.30},
	NutritionGoalWeightLoss: {protein: 0.40, carbs: 0.30, fat: 0.30},
	NutritionGoalMuscleGain: {protein: 0.30, carbs: 0.50, fat: 0.20},
}

type WeightRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

type Macros struct {
	ProteinG float64 `json:"protein_g"`
	CarbsG   float64 `json:"carbs_g"`
	FatG     float64 `json:"fat_g"`
	Calories float64 `json:"calories"`
}

// Round2 rounds to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// positive is false for NaN and infinities too.
func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

func BMI(weightKg, heightCm float64) (float64, bool) {
	if !positive(weightKg) || !positive(heightCm) {
		return 0, false
	}
	heightM := heightCm / 100
	return Round2(weightKg / (heightM * heightM)), true
}

func CategoryForBMI(bmi float64) BMICategory {
	switch {
	case bmi < 18.5:
		return BMICategoryUnderweight
	case bmi < 25:
		return BMICategoryNormal
	case bmi < 30:
		return BMICategoryOverweight
	default:
		return BMICategoryObese
	}
}

func IdealWeightRange(heightCm float64) (WeightRange, bool) {
	if !positive(heightCm) {
		return WeightRange{}, false
	}
	heightM := heightCm / 100
	return WeightRange{
		Min: Round2(minNormalBMI * heightM * heightM),
		Max: Round2(maxNormalBMI * heightM * heightM),
	}, true
}

// BMR computes the basal metabolic rate with the Mifflin-St Jeor equation.
func BMR(weightKg, heightCm float64, age int, gender Gender) (float64, bool) {
	if !positive(weightKg) || !positive(heightCm) || age < 0 {
		return 0, false
	}
	offset, ok := bmrGenderOffset[gender]
	if !ok {
		return 0, false
	}
	return Round2(10*weightKg + 6.25*heightCm - 5*float64(age) + offset), true
}

func TDEE(bmr float64, level ActivityLevel) (float64, bool) {
	multiplier, ok := tdeeMultipliers[level]
	if !ok || !positive(bmr) {
		return 0, false
	}
	return Round2(bmr * multiplier), true
}

func MET(activityType ActivityType) float64 {
	if met, ok := metValues[activityType]; ok {
		return met
	}
	return DefaultMET
}

// CaloriesBurned estimates kcal for a workout, unknown types use DefaultMET.
func CaloriesBurned(activityType ActivityType, durationMinutes int, weightKg float64) (int, bool) {
	if durationMinutes <= 0 || !positive(weightKg) {
		return 0, false
	}
	hours := float64(durationMinutes) / 60
	return int(math.Round(MET(activityType) * weightKg * hours)), true
}

// MacroSplit splits daily calories into grams, unknown goals fall back to MAINTAIN.
func MacroSplit(calories float64, goal NutritionGoal) (Macros, bool) {
	if !positive(calories) {
		return Macros{}, false
	}
	ratio, ok := macroRatios[goal]
	if !ok {
		ratio = macroRatios[NutritionGoalMaintain]
	}
	return Macros{
		ProteinG: Round2(calories * ratio.protein / proteinKcalPerGram),
		CarbsG:   Round2(calories * ratio.carbs / carbsKcalPerGram),
		FatG:     Round2(calories * ratio.fat / fatKcalPerGram),
		Calories: calories,
	}, true
}

func WaterTargetML(weightKg float64, level ActivityLevel) (int, bool) {
	bonus, ok := waterBonus[level]
	if !ok || !positive(weightKg) {
		return 0, false
	}
	return int(math.Round(weightKg * waterMLPerKg * bonus)), true
}

// Age returns full years between birthDate and today.
func Age(birthDate, today time.Time) (int, bool) {
	years := today.Year() - birthDate.Year()
	if today.Month() < birthDate.Month() ||
		(today.Month() == birthDate.Month() && today.Day() < birthDate.Day()) {
		years--
	}
	if years < 0 {
		return 0, false
	}
	return years, true
}
