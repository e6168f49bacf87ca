package achievements

import (
	"time"
)

type BadgeType string

const (
	BadgeFirstWorkout      BadgeType = "FIRST_WORKOUT"
	BadgeConsistency7      BadgeType = "CONSISTENCY_7"
	BadgeConsistency30     BadgeType = "CONSISTENCY_30"
	BadgeCalorieBurner1000 BadgeType = "CALORIE_BURNER_1000"
	BadgeCalorieBurner5000 BadgeType = "CALORIE_BURNER_5000"
	BadgeEarlyBird         BadgeType = "EARLY_BIRD"
	BadgeHydrationMaster   BadgeType = "HYDRATION_MASTER"
	BadgeWeightGoal        BadgeType = "WEIGHT_GOAL"
)

const (
	earlyBirdHour        = 7
	hydrationMasterDays  = 7
	defaultBadgeIcon     = "🏅"
	consistency7Days     = 7
	consistency30Days    = 30
	calorieBurner1000Min = 1000
	calorieBurner5000Min = 5000
)

type badgeInfo struct {
	title string
	icon  string
}

var badgeCatalog = map[BadgeType]badgeInfo{
	BadgeConsistency7:      {title: "7-Day Consistency", icon: "🔥"},
	BadgeConsistency30:     {title: "30-Day Consistency", icon: "💪"},
	BadgeFirstWorkout:      {title: "First Workout", icon: "🌟"},
	BadgeCalorieBurner1000: {title: "1000 Calories Burned", icon: "🔥"},
	BadgeCalorieBurner5000: {title: "5000 Calories Burned", icon: "💥"},
	BadgeEarlyBird:         {title: "Early Bird (Workout before 7 AM)", icon: "🌅"},
	BadgeHydrationMaster:   {title: "Hydration Master", icon: "💧"},
	BadgeWeightGoal:        {title: "Weight Goal Achieved", icon: "🎯"},
}

// Title falls back to the raw type for badges missing from the catalog.
func (bt BadgeType) Title() string {
	if info, ok := badgeCatalog[bt]; ok {
		return info.title
	}
	return string(bt)
}

func (bt BadgeType) Icon() string {
	if info, ok := badgeCatalog[bt]; ok {
		return info.icon
	}
	return defaultBadgeIcon
}

func (bt BadgeType) IsValid() bool {
	_, ok := badgeCatalog[bt]
	return ok
}

// GoalState is the latest weight goal of a user.
type GoalState struct {
	TargetValue  float64
	CurrentValue float64
}

// EvaluationContext bundles everything the badge predicates look at.
// All days must already be in the user's time zone.
type EvaluationContext struct {
	Earned          map[BadgeType]bool
	ActivityDays    DaySet
	ActivityCount   int
	TotalCalories   int
	WorkoutHours    []int
	WaterGoalMetDay DaySet
	WeightGoal      *GoalState
	AsOf            time.Time
}

// Streak is the activity streak ending at AsOf.
func (ec EvaluationContext) Streak() int {
	return CurrentStreak(ec.ActivityDays, ec.AsOf)
}

type badgeRule struct {
	badge     BadgeType
	qualifies func(ec EvaluationContext, streak int) bool
}

// rules are checked in this order, the order only affects result ordering.
var rules = []badgeRule{
	{BadgeFirstWorkout, func(ec EvaluationContext, _ int) bool {
		return ec.ActivityCount >= 1
	}},
	{BadgeConsistency7, func(_ EvaluationContext, streak int) bool {
		return streak >= consistency7Days
	}},
	{BadgeConsistency30, func(_ EvaluationContext, streak int) bool {
		return streak >= consistency30Days
	}},
	{BadgeCalorieBurner1000, func(ec EvaluationContext, _ int) bool {
		return ec.TotalCalories >= calorieBurner1000Min
	}},
	{BadgeCalorieBurner5000, func(ec EvaluationContext, _ int) bool {
		return ec.TotalCalories >= calorieBurner5000Min
	}},
	{BadgeEarlyBird, func(ec EvaluationContext, _ int) bool {
		for _, h := range ec.WorkoutHours {
			if h < earlyBirdHour {
				return true
			}
		}
		return false
	}},
	{BadgeHydrationMaster, func(ec EvaluationContext, _ int) bool {
		return CurrentStreak(ec.WaterGoalMetDay, ec.AsOf) >= hydrationMasterDays
	}},
	{BadgeWeightGoal, func(ec EvaluationContext, _ int) bool {
		// exact match, values are stored with two decimals
		return ec.WeightGoal != nil && ec.WeightGoal.CurrentValue == ec.WeightGoal.TargetValue
	}},
}

// EvaluateBadges returns the badges the context qualifies for that are not
// earned yet. It never returns an already earned badge.
func EvaluateBadges(ec EvaluationContext) []BadgeType {
	streak := ec.Streak()
	newBadges := make([]BadgeType, 0)
	for _, rule := range rules {
		if ec.Earned[rule.badge] {
			continue
		}
		if rule.qualifies(ec, streak) {
			newBadges = append(newBadges, rule.badge)
		}
	}
	return newBadges
}
