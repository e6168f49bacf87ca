package goals

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/2beens/fittrack/internal/fitness"
	"github.com/2beens/fittrack/pkg"
)

var (
	ErrGoalNotFound = errors.New("goal not found")
	ErrInvalidGoal  = errors.New("invalid goal")
)

const DefaultUnit = "units"

type GoalType string

const (
	GoalTypeWeight            GoalType = "WEIGHT"
	GoalTypeWeeklySteps       GoalType = "WEEKLY_STEPS"
	GoalTypeMonthlyDistance   GoalType = "MONTHLY_DISTANCE"
	GoalTypeBodyFat           GoalType = "BODY_FAT"
	GoalTypeMuscleGain        GoalType = "MUSCLE_GAIN"
	GoalTypeExerciseFrequency GoalType = "EXERCISE_FREQUENCY"
	GoalTypeWaterIntake       GoalType = "WATER_INTAKE"
	GoalTypeOther             GoalType = "OTHER"
)

var goalTypes = map[GoalType]bool{
	GoalTypeWeight:            true,
	GoalTypeWeeklySteps:       true,
	GoalTypeMonthlyDistance:   true,
	GoalTypeBodyFat:           true,
	GoalTypeMuscleGain:        true,
	GoalTypeExerciseFrequency: true,
	GoalTypeWaterIntake:       true,
	GoalTypeOther:             true,
}

func (gt GoalType) IsValid() bool {
	return goalTypes[gt]
}

type Status string

const (
	StatusActive    Status = "ACTIVE"
	StatusCompleted Status = "COMPLETED"
	StatusAbandoned Status = "ABANDONED"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusCompleted, StatusAbandoned:
		return true
	}
	return false
}

// Goal dates are calendar dates formatted with pkg.DateLayout.
type Goal struct {
	ID           int       `json:"id"`
	UserID       int       `json:"user_id"`
	GoalType     GoalType  `json:"goal_type"`
	Title        string    `json:"title"`
	TargetValue  float64   `json:"target_value"`
	CurrentValue float64   `json:"current_value"`
	Unit         string    `json:"unit"`
	StartDate    string    `json:"start_date"`
	TargetDate   *string   `json:"target_date"`
	Status       Status    `json:"status"`
	Notes        string    `json:"notes"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Normalize fills the defaults relative to today and validates the goal.
func (g *Goal) Normalize(today time.Time) error {
	g.GoalType = GoalType(strings.ToUpper(string(g.GoalType)))
	if !g.GoalType.IsValid() {
		return fmt.Errorf("%w: unknown goal type [%s]", ErrInvalidGoal, g.GoalType)
	}

	if g.Status == "" {
		g.Status = StatusActive
	}
	g.Status = Status(strings.ToUpper(string(g.Status)))
	if !g.Status.IsValid() {
		return fmt.Errorf("%w: unknown status [%s]", ErrInvalidGoal, g.Status)
	}

	g.Title = strings.TrimSpace(g.Title)
	if g.Title == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidGoal)
	}
	if g.TargetValue < 0 || g.CurrentValue < 0 {
		return fmt.Errorf("%w: values must not be negative", ErrInvalidGoal)
	}
	g.TargetValue = fitness.Round2(g.TargetValue)
	g.CurrentValue = fitness.Round2(g.CurrentValue)

	if strings.TrimSpace(g.Unit) == "" {
		g.Unit = DefaultUnit
	}

	if g.StartDate == "" {
		g.StartDate = today.Format(pkg.DateLayout)
	}
	start, err := time.Parse(pkg.DateLayout, g.StartDate)
	if err != nil {
		return fmt.Errorf("%w: invalid start_date [%s]", ErrInvalidGoal, g.StartDate)
	}

	if g.TargetDate != nil && *g.TargetDate == "" {
		g.TargetDate = nil
	}
	if g.TargetDate != nil {
		target, err := time.Parse(pkg.DateLayout, *g.TargetDate)
		if err != nil {
			return fmt.Errorf("%w: invalid target_date [%s]", ErrInvalidGoal, *g.TargetDate)
		}
		if target.Before(start) {
			return fmt.Errorf("%w: target_date before start_date", ErrInvalidGoal)
		}
	}

	return nil
}

// ProgressPercentage is capped at 100, and 0 for a zero target.
func (g Goal) ProgressPercentage() float64 {
	if g.TargetValue == 0 {
		return 0
	}
	progress := fitness.Round2(g.CurrentValue / g.TargetValue * 100)
	if progress > 100 {
		return 100
	}
	return progress
}

func (g Goal) IsAchieved() bool {
	return g.CurrentValue >= g.TargetValue
}

// View is a goal as returned to clients.
type View struct {
	Goal
	ProgressPercentage float64 `json:"progress_percentage"`
	IsAchieved         bool    `json:"is_achieved"`
}

func NewView(g Goal) View {
	return View{
		Goal:               g,
		ProgressPercentage: g.ProgressPercentage(),
		IsAchieved:         g.IsAchieved(),
	}
}

func NewViews(goals []Goal) []View {
	views := make([]View, 0, len(goals))
	for _, g := range goals {
		views = append(views, NewView(g))
	}
	return views
}
