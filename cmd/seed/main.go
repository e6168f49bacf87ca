package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/fittrack/internal/activities"
	"github.com/2beens/fittrack/internal/auth"
	"github.com/2beens/fittrack/internal/biometrics"
	"github.com/2beens/fittrack/internal/config"
	"github.com/2beens/fittrack/internal/db"
	"github.com/2beens/fittrack/internal/fitness"
	"github.com/2beens/fittrack/internal/logging"
	"github.com/2beens/fittrack/internal/meals"
	"github.com/2beens/fittrack/internal/profile"
	"github.com/2beens/fittrack/internal/water"
)

// creates a demo user with a few weeks of fake fitness data, for local development

func main() {
	env := flag.String("env", "development", "environment [dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	envFile := flag.String("env-file", ".env", "optional file with the secret env vars")
	username := flag.String("username", "", "demo username (random when empty)")
	password := flag.String("password", "demo-password", "demo user password")
	days := flag.Int("days", 30, "number of past days to fill")
	flag.Parse()

	if err := godotenv.Load(*envFile); err != nil {
		log.Debugf("env file [%s] not loaded: %s", *envFile, err)
	}

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %s", err)
	}
	if cfg.Environment == "production" {
		log.Fatalln("refusing to seed a production database")
	}

	logging.Setup(logging.LoggerSetupParams{
		LogToStdout: true,
		LogLevel:    cfg.LogLevel,
		Environment: cfg.Environment,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:     cfg.PostgresHost,
		DBPort:     cfg.PostgresPort,
		DBName:     cfg.PostgresDBName,
		DBUser:     cfg.PostgresUser,
		DBPassword: os.Getenv("FITTRACK_DB_PASS"),
	})
	if err != nil {
		log.Fatalf("failed to create db pool: %s", err)
	}
	defer dbPool.Close()

	if _, err := dbPool.Exec(ctx, db.Schema); err != nil {
		log.Fatalf("apply schema: %s", err)
	}

	gofakeit.Seed(0)
	if *username == "" {
		*username = gofakeit.Username()
	}

	profilesRepo := profile.NewRepo(dbPool)
	// registration never touches redis
	authService := auth.NewService(auth.NewRepo(dbPool), profilesRepo, time.Hour, nil)
	user, err := authService.Register(ctx, auth.Credentials{
		Username: *username,
		Password: *password,
	})
	if err != nil {
		log.Fatalf("register demo user: %s", err)
	}
	log.Printf("demo user [%s] created with id %d", user.Username, user.ID)

	s := &seeder{
		userID:     user.ID,
		activities: activities.NewRepo(dbPool),
		water:      water.NewRepo(dbPool),
		meals:      meals.NewRepo(dbPool),
		biometrics: biometrics.NewRepo(dbPool),
	}

	weight := gofakeit.Float64Range(60, 95)
	if err := s.profile(ctx, profilesRepo, weight); err != nil {
		log.Fatalf("seed profile: %s", err)
	}

	now := time.Now().UTC()
	for d := *days - 1; d >= 0; d-- {
		day := now.AddDate(0, 0, -d)
		weight = fitness.Round2(weight + gofakeit.Float64Range(-0.4, 0.3))
		if err := s.day(ctx, day, weight); err != nil {
			log.Fatalf("seed day %s: %s", day.Format(time.DateOnly), err)
		}
	}

	if err := profilesRepo.UpdateWeight(ctx, user.ID, weight); err != nil {
		log.Fatalf("update profile weight: %s", err)
	}

	log.Printf("seeded %d days: %d activities, %d water logs, %d meals, %d weight logs",
		*days, s.activitiesCount, s.waterCount, s.mealsCount, s.weightCount)
}

type seeder struct {
	userID     int
	activities *activities.Repo
	water      *water.Repo
	meals      *meals.Repo
	biometrics *biometrics.Repo

	activitiesCount int
	waterCount      int
	mealsCount      int
	weightCount     int
}

func (s *seeder) profile(ctx context.Context, repo *profile.Repo, weight float64) error {
	p, err := repo.Get(ctx, s.userID)
	if err != nil {
		return err
	}

	dob := gofakeit.DateRange(
		time.Now().AddDate(-60, 0, 0),
		time.Now().AddDate(-18, 0, 0),
	)
	gender := fitness.Gender(gofakeit.RandomString([]string{"M", "F"}))
	height := fitness.Round2(gofakeit.Float64Range(155, 195))
	tz := gofakeit.RandomString([]string{"Europe/Belgrade", "America/New_York", "Asia/Tokyo", "UTC"})

	p.DateOfBirth = &dob
	p.Gender = &gender
	p.HeightCm = &height
	p.WeightKg = &weight
	p.ActivityLevel = fitness.ActivityLevel(gofakeit.RandomString([]string{
		string(fitness.ActivityLevelSedentary),
		string(fitness.ActivityLevelActive),
		string(fitness.ActivityLevelAthlete),
	}))
	p.Timezone = &tz

	return repo.Update(ctx, p)
}

func (s *seeder) day(ctx context.Context, day time.Time, weight float64) error {
	at := func(hour int) time.Time {
		return time.Date(day.Year(), day.Month(), day.Day(), hour, gofakeit.Number(0, 59), 0, 0, time.UTC)
	}

	// rest days
	if gofakeit.Number(1, 10) > 3 {
		activityType := fitness.ActivityTypes[gofakeit.Number(0, len(fitness.ActivityTypes)-1)]
		duration := gofakeit.Number(20, 90)
		calories, _ := fitness.CaloriesBurned(activityType, duration, weight)
		a := activities.Activity{
			UserID:          s.userID,
			ActivityType:    activityType,
			DurationMinutes: duration,
			CaloriesBurned:  calories,
			Notes:           gofakeit.Sentence(5),
			CreatedAt:       at(gofakeit.Number(5, 20)),
		}
		if activityType == fitness.ActivityTypeRunning || activityType == fitness.ActivityTypeCycling {
			distance := fitness.Round2(float64(duration) * gofakeit.Float64Range(0.12, 0.4))
			a.DistanceKm = &distance
		}
		if _, err := s.activities.Add(ctx, a); err != nil {
			return err
		}
		s.activitiesCount++
	}

	for i := 0; i < gofakeit.Number(3, 10); i++ {
		if _, err := s.water.Add(ctx, water.Intake{
			UserID:      s.userID,
			Milliliters: water.GlassML,
			RecordedAt:  at(gofakeit.Number(7, 22)),
		}); err != nil {
			return err
		}
		s.waterCount++
	}

	mealPlan := []struct {
		mealType meals.MealType
		hour     int
		food     func() string
	}{
		{meals.MealTypeBreakfast, 8, gofakeit.Breakfast},
		{meals.MealTypeLunch, 13, gofakeit.Lunch},
		{meals.MealTypeDinner, 19, gofakeit.Dinner},
		{meals.MealTypeSnack, 16, gofakeit.Snack},
	}
	for _, mp := range mealPlan {
		if _, err := s.meals.Add(ctx, meals.Meal{
			UserID:   s.userID,
			MealType: mp.mealType,
			FoodName: mp.food(),
			Calories: gofakeit.Number(150, 900),
			ProteinG: fitness.Round2(gofakeit.Float64Range(5, 50)),
			CarbsG:   fitness.Round2(gofakeit.Float64Range(10, 100)),
			FatsG:    fitness.Round2(gofakeit.Float64Range(2, 40)),
			LoggedAt: at(mp.hour),
		}); err != nil {
			return err
		}
		s.mealsCount++
	}

	if _, err := s.biometrics.Add(ctx, biometrics.Log{
		UserID:     s.userID,
		WeightKg:   weight,
		RecordedAt: at(7),
	}); err != nil {
		return err
	}
	s.weightCount++

	return nil
}
