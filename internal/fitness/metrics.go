package fitness

import "time"

// Snapshot is the subset of a profile the metrics are derived from.
// Nil fields are unknown.
type Snapshot struct {
	WeightKg      *float64
	HeightCm      *float64
	DateOfBirth   *time.Time
	Gender        *Gender
	ActivityLevel ActivityLevel
}

// Metrics holds every derived value, nil means unavailable.
type Metrics struct {
	BMI              *float64     `json:"bmi"`
	BMICategory      *BMICategory `json:"bmi_category"`
	IdealWeightRange *WeightRange `json:"ideal_weight_range"`
	Age              *int         `json:"age"`
	BMR              *float64     `json:"bmr"`
	TDEE             *float64     `json:"tdee"`
	Macros           *Macros      `json:"macros"`
	WaterTargetML    *int         `json:"water_target_ml"`
}

// Compute derives all metrics for the snapshot. An unset gender is treated
// as M for BMR, the same default the dashboard always used.
func Compute(s Snapshot, goal NutritionGoal, today time.Time) Metrics {
	var m Metrics

	var weight, height float64
	if s.WeightKg != nil {
		weight = *s.WeightKg
	}
	if s.HeightCm != nil {
		height = *s.HeightCm
	}

	if bmi, ok := BMI(weight, height); ok {
		category := CategoryForBMI(bmi)
		m.BMI = &bmi
		m.BMICategory = &category
	}
	if idealRange, ok := IdealWeightRange(height); ok {
		m.IdealWeightRange = &idealRange
	}
	if s.DateOfBirth != nil {
		if age, ok := Age(*s.DateOfBirth, today); ok {
			m.Age = &age
		}
	}

	gender := GenderMale
	if s.Gender != nil {
		gender = *s.Gender
	}
	if m.Age != nil {
		if bmr, ok := BMR(weight, height, *m.Age, gender); ok {
			m.BMR = &bmr
			if tdee, ok := TDEE(bmr, s.ActivityLevel); ok {
				m.TDEE = &tdee
				if macros, ok := MacroSplit(tdee, goal); ok {
					m.Macros = &macros
				}
			}
		}
	}

	if waterTarget, ok := WaterTargetML(weight, s.ActivityLevel); ok {
		m.WaterTargetML = &waterTarget
	}

	return m
}
