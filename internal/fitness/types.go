package fitness

import "strings"

type Gender string

const (
	GenderMale   Gender = "M"
	GenderFemale Gender = "F"
	GenderOther  Gender = "O"
)

func (g Gender) IsValid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	default:
		return false
	}
}

type ActivityLevel string

const (
	ActivityLevelSedentary ActivityLevel = "SEDENTARY"
	ActivityLevelActive    ActivityLevel = "ACTIVE"
	ActivityLevelAthlete   ActivityLevel = "ATHLETE"
)

func (al ActivityLevel) IsValid() bool {
	_, ok := tdeeMultipliers[al]
	return ok
}

type ActivityType string

const (
	ActivityTypeRunning       ActivityType = "RUNNING"
	ActivityTypeCycling       ActivityType = "CYCLING"
	ActivityTypeWeightlifting ActivityType = "WEIGHTLIFTING"
	ActivityTypeSwimming      ActivityType = "SWIMMING"
	ActivityTypeWalking       ActivityType = "WALKING"
	ActivityTypeYoga          ActivityType = "YOGA"
	ActivityTypeHIIT          ActivityType = "HIIT"
	ActivityTypeOther         ActivityType = "OTHER"
)

// ActivityTypes lists the known types in display order.
var ActivityTypes = []ActivityType{
	ActivityTypeRunning,
	ActivityTypeCycling,
	ActivityTypeWeightlifting,
	ActivityTypeSwimming,
	ActivityTypeWalking,
	ActivityTypeYoga,
	ActivityTypeHIIT,
	ActivityTypeOther,
}

func (at ActivityType) IsValid() bool {
	_, ok := metValues[at]
	return ok
}

type NutritionGoal string

const (
	NutritionGoalMaintain   NutritionGoal = "MAINTAIN"
	NutritionGoalWeightLoss NutritionGoal = "WEIGHT_LOSS"
	NutritionGoalMuscleGain NutritionGoal = "MUSCLE_GAIN"
)

func (g NutritionGoal) IsValid() bool {
	_, ok := macroRatios[g]
	return ok
}

type BMICategory string

const (
	BMICategoryUnderweight BMICategory = "UNDERWEIGHT"
	BMICategoryNormal      BMICategory = "NORMAL"
	BMICategoryOverweight  BMICategory = "OVERWEIGHT"
	BMICategoryObese       BMICategory = "OBESE"
)

// ParseGender accepts the codes case-insensitively.
func ParseGender(s string) (Gender, bool) {
	g := Gender(strings.ToUpper(strings.TrimSpace(s)))
	return g, g.IsValid()
}

// ParseActivityLevel accepts the levels case-insensitively.
func ParseActivityLevel(s string) (ActivityLevel, bool) {
	al := ActivityLevel(strings.ToUpper(strings.TrimSpace(s)))
	return al, al.IsValid()
}

// ParseActivityType accepts the types case-insensitively, unknown types are not ok.
func ParseActivityType(s string) (ActivityType, bool) {
	at := ActivityType(strings.ToUpper(strings.TrimSpace(s)))
	return at, at.IsValid()
}

// ParseNutritionGoal never fails, unknown or empty goals become MAINTAIN.
func ParseNutritionGoal(s string) NutritionGoal {
	g := NutritionGoal(strings.ToUpper(strings.TrimSpace(s)))
	if !g.IsValid() {
		return NutritionGoalMaintain
	}
	return g
}
