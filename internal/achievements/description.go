package achievements

import "fmt"

// Description renders the text stored with an awarded badge.
func Description(bt BadgeType, streak, totalCalories int) string {
	switch bt {
	case BadgeConsistency7:
		return fmt.Sprintf("Logged activities for %d consecutive days!", streak)
	case BadgeConsistency30:
		return fmt.Sprintf("Amazing! %d consecutive days of activities!", streak)
	case BadgeFirstWorkout:
		return "Started your fitness journey!"
	case BadgeCalorieBurner1000:
		return fmt.Sprintf("Burned %d total calories!", totalCalories)
	case BadgeCalorieBurner5000:
		return fmt.Sprintf("Amazing! Burned %d total calories!", totalCalories)
	case BadgeEarlyBird:
		return "Worked out before 7 AM!"
	case BadgeHydrationMaster:
		return "Met water intake goal for 7 days straight!"
	case BadgeWeightGoal:
		return "Reached your weight goal!"
	default:
		return bt.Title()
	}
}
