package profile

import (
	"errors"
	"fmt"
	"time"

	"github.com/2beens/fittrack/internal/fitness"
)

var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrInvalidProfile  = errors.New("invalid profile")
)

const dateLayout = "2006-01-02"

type Profile struct {
	UserID        int                   `json:"user_id"`
	DateOfBirth   *time.Time            `json:"date_of_birth"`
	Gender        *fitness.Gender       `json:"gender"`
	HeightCm      *float64              `json:"height_cm"`
	WeightKg      *float64              `json:"weight_kg"`
	ActivityLevel fitness.ActivityLevel `json:"activity_level"`
	Timezone      *string               `json:"timezone"`
	CreatedAt     time.Time             `json:"created_at"`
	UpdatedAt     time.Time             `json:"updated_at"`
}

func (p *Profile) Snapshot() fitness.Snapshot {
	return fitness.Snapshot{
		WeightKg:      p.WeightKg,
		HeightCm:      p.HeightCm,
		DateOfBirth:   p.DateOfBirth,
		Gender:        p.Gender,
		ActivityLevel: p.ActivityLevel,
	}
}

// UpdateRequest is the PUT /profile body. Absent fields stay unchanged.
type UpdateRequest struct {
	DateOfBirth   *string  `json:"date_of_birth"`
	Gender        *string  `json:"gender"`
	HeightCm      *float64 `json:"height_cm"`
	WeightKg      *float64 `json:"weight_kg"`
	ActivityLevel *string  `json:"activity_level"`
	Timezone      *string  `json:"timezone"`
}

// Apply validates the request and merges it into p.
func (req UpdateRequest) Apply(p *Profile, today time.Time) error {
	if req.DateOfBirth != nil {
		dob, err := time.Parse(dateLayout, *req.DateOfBirth)
		if err != nil {
			return fmt.Errorf("%w: date_of_birth must be YYYY-MM-DD", ErrInvalidProfile)
		}
		if dob.After(today) {
			return fmt.Errorf("%w: date_of_birth in the future", ErrInvalidProfile)
		}
		p.DateOfBirth = &dob
	}
	if req.Gender != nil {
		gender, ok := fitness.ParseGender(*req.Gender)
		if !ok {
			return fmt.Errorf("%w: unknown gender [%s]", ErrInvalidProfile, *req.Gender)
		}
		p.Gender = &gender
	}
	if req.HeightCm != nil {
		if *req.HeightCm <= 0 {
			return fmt.Errorf("%w: height_cm must be positive", ErrInvalidProfile)
		}
		p.HeightCm = req.HeightCm
	}
	if req.WeightKg != nil {
		if *req.WeightKg <= 0 {
			return fmt.Errorf("%w: weight_kg must be positive", ErrInvalidProfile)
		}
		p.WeightKg = req.WeightKg
	}
	if req.ActivityLevel != nil {
		level, ok := fitness.ParseActivityLevel(*req.ActivityLevel)
		if !ok {
			return fmt.Errorf("%w: unknown activity level [%s]", ErrInvalidProfile, *req.ActivityLevel)
		}
		p.ActivityLevel = level
	}
	if req.Timezone != nil {
		if *req.Timezone == "" {
			p.Timezone = nil
		} else {
			// "Local" would be the server's zone, not the user's
			if _, err := time.LoadLocation(*req.Timezone); err != nil || *req.Timezone == "Local" {
				return fmt.Errorf("%w: unknown timezone [%s]", ErrInvalidProfile, *req.Timezone)
			}
			p.Timezone = req.Timezone
		}
	}
	return nil
}
