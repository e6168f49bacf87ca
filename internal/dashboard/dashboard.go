package dashboard

import (
	"github.com/2beens/fittrack/internal/activities"
	"github.com/2beens/fittrack/internal/biometrics"
	"github.com/2beens/fittrack/internal/fitness"
	"github.com/2beens/fittrack/internal/goals"
	"github.com/2beens/fittrack/internal/meals"
)

const (
	recentActivitiesLimit = 5
	activeGoalsLimit      = 3
	weeklyDays            = 7
	weightTrendDays       = 30
	caloriesSeriesDays    = 7
)

type WeeklyStats struct {
	TotalWorkouts int `json:"total_workouts"`
	TotalCalories int `json:"total_calories"`
	TotalDuration int `json:"total_duration"`
}

type Dashboard struct {
	Metrics              fitness.Metrics       `json:"metrics"`
	Goal                 fitness.NutritionGoal `json:"goal"`
	CurrentWeight        *float64              `json:"current_weight"`
	TotalCaloriesToday   int                   `json:"total_calories_today"`
	TodayActivitiesCount int                   `json:"today_activities_count"`
	TotalWaterToday      int                   `json:"total_water_today"`
	WaterTarget          int                   `json:"water_target"`
	WaterPercentage      float64               `json:"water_percentage"`
	WaterGlasses         int                   `json:"water_glasses"`
	WaterTargetGlasses   int                   `json:"water_target_glasses"`
	RecentActivities     []activities.Activity `json:"recent_activities"`
	ActiveGoals          []goals.View          `json:"active_goals"`
	WeeklyStats          WeeklyStats           `json:"weekly_stats"`
	MonthlyWorkoutsCount int                   `json:"monthly_workouts_count"`
	Nutrition            meals.Totals          `json:"nutrition"`
	DailyTip             string                `json:"daily_tip"`
}

type ProgressStats struct {
	TotalActivities int      `json:"total_activities"`
	TotalCalories   int      `json:"total_calories"`
	TotalDuration   int      `json:"total_duration"`
	WeekCalories    int      `json:"week_calories"`
	WeightChange    *float64 `json:"weight_change"`
}

type Progress struct {
	WeightTrend       []biometrics.WeightPoint   `json:"weight_trend"`
	ActivityBreakdown []activities.TypeBreakdown `json:"activity_breakdown"`
	DailyCalories     []activities.DayCalories   `json:"daily_calories"`
	Stats             ProgressStats              `json:"stats"`
}

// WeightChange is last minus first, only defined for two or more points.
func WeightChange(trend []biometrics.WeightPoint) *float64 {
	if len(trend) < 2 {
		return nil
	}
	change := fitness.Round2(trend[len(trend)-1].WeightKg - trend[0].WeightKg)
	return &change
}
