package events

import (
	"strconv"
	"time"
)

// EventType can be one of:
//   - activity_logged
//   - weight_report
//   - water_logged
//   - meal_logged
//   - goal_created
//   - badge_awarded
type EventType string

const (
	EventTypeActivityLogged EventType = "activity_logged"
	EventTypeWeightReport   EventType = "weight_report"
	EventTypeWaterLogged    EventType = "water_logged"
	EventTypeMealLogged     EventType = "meal_logged"
	EventTypeGoalCreated    EventType = "goal_created"
	EventTypeBadgeAwarded   EventType = "badge_awarded"
)

func (et EventType) String() string {
	return string(et)
}

func (et EventType) IsValid() bool {
	switch et {
	case EventTypeActivityLogged,
		EventTypeWeightReport,
		EventTypeWaterLogged,
		EventTypeMealLogged,
		EventTypeGoalCreated,
		EventTypeBadgeAwarded:
		return true
	default:
		return false
	}
}

// Event is stored in the fitness_event table and mirrored to kafka.
type Event struct {
	ID        int               `json:"id"`
	UUID      string            `json:"uuid"`
	UserID    int               `json:"user_id"`
	Type      EventType         `json:"type"`
	Timestamp time.Time         `json:"timestamp"`
	Data      map[string]string `json:"data"`
}

type ActivityLogged struct {
	UserID          int
	ActivityID      int
	ActivityType    string
	DurationMinutes int
	Calories        int
	Timestamp       time.Time
}

type WeightReport struct {
	UserID    int
	LogID     int
	WeightKg  float64
	Timestamp time.Time
}

type WaterLogged struct {
	UserID      int
	Milliliters int
	TodayTotal  int
	Timestamp   time.Time
}

type MealLogged struct {
	UserID    int
	MealID    int
	MealType  string
	Calories  int
	Timestamp time.Time
}

type GoalCreated struct {
	UserID      int
	GoalID      int
	GoalType    string
	TargetValue float64
	Timestamp   time.Time
}

type BadgeAwarded struct {
	UserID    int
	Badge     string
	Streak    int
	Timestamp time.Time
}

func NewActivityLoggedEvent(al ActivityLogged) Event {
	return Event{
		UserID:    al.UserID,
		Type:      EventTypeActivityLogged,
		Timestamp: al.Timestamp,
		Data: map[string]string{
			"activity_id":      strconv.Itoa(al.ActivityID),
			"activity_type":    al.ActivityType,
			"duration_minutes": strconv.Itoa(al.DurationMinutes),
			"calories":         strconv.Itoa(al.Calories),
		},
	}
}

func NewWeightReportEvent(wr WeightReport) Event {
	return Event{
		UserID:    wr.UserID,
		Type:      EventTypeWeightReport,
		Timestamp: wr.Timestamp,
		Data: map[string]string{
			"log_id": strconv.Itoa(wr.LogID),
			"weight": strconv.FormatFloat(wr.WeightKg, 'f', 2, 64),
		},
	}
}

func NewWaterLoggedEvent(wl WaterLogged) Event {
	return Event{
		UserID:    wl.UserID,
		Type:      EventTypeWaterLogged,
		Timestamp: wl.Timestamp,
		Data: map[string]string{
			"milliliters": strconv.Itoa(wl.Milliliters),
			"today_total": strconv.Itoa(wl.TodayTotal),
		},
	}
}

func NewMealLoggedEvent(ml MealLogged) Event {
	return Event{
		UserID:    ml.UserID,
		Type:      EventTypeMealLogged,
		Timestamp: ml.Timestamp,
		Data: map[string]string{
			"meal_id":   strconv.Itoa(ml.MealID),
			"meal_type": ml.MealType,
			"calories":  strconv.Itoa(ml.Calories),
		},
	}
}

func NewGoalCreatedEvent(gc GoalCreated) Event {
	return Event{
		UserID:    gc.UserID,
		Type:      EventTypeGoalCreated,
		Timestamp: gc.Timestamp,
		Data: map[string]string{
			"goal_id":      strconv.Itoa(gc.GoalID),
			"goal_type":    gc.GoalType,
			"target_value": strconv.FormatFloat(gc.TargetValue, 'f', 2, 64),
		},
	}
}

func NewBadgeAwardedEvent(ba BadgeAwarded) Event {
	return Event{
		UserID:    ba.UserID,
		Type:      EventTypeBadgeAwarded,
		Timestamp: ba.Timestamp,
		Data: map[string]string{
			"badge":  ba.Badge,
			"streak": strconv.Itoa(ba.Streak),
		},
	}
}
