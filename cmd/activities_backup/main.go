package main

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/fittrack/internal/activities"
	"github.com/2beens/fittrack/internal/backup"
	"github.com/2beens/fittrack/internal/config"
	"github.com/2beens/fittrack/internal/db"
	"github.com/2beens/fittrack/internal/logging"
)

// activities google drive backup cmd

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	credentialsFile := flag.String("gd-creds", "./drive-credentials.json", "google drive service account credentials json")
	shareWith := flag.String("share-with", "", "email the backup files are shared with (empty to not share)")
	logsPath := flag.String("logs-path", "", "backup logs file path (empty for stdout)")
	reinit := flag.Bool("reinit", false, "backup all activities again, ignoring previous backups")
	flag.Parse()

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %s", err)
	}

	logging.Setup(logging.LoggerSetupParams{
		LogFileName: *logsPath,
		LogToStdout: *logsPath == "",
		LogLevel:    cfg.LogLevel,
		Environment: cfg.Environment,
	})

	log.Println("starting activities backup ...")
	if *reinit {
		log.Println("!! attention: will backup all activities again ...")
	}

	credentialsBytes, err := os.ReadFile(*credentialsFile)
	if err != nil {
		log.Fatalf("unable to read google drive credentials file: %s", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
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

	store, err := backup.NewDriveStore(ctx, credentialsBytes, cfg.BackupDriveFolder, *shareWith)
	if err != nil {
		log.Fatalf("failed to create google drive store: %s", err)
	}

	s := backup.NewService(activities.NewRepo(dbPool), backup.NewRepo(dbPool), store, cfg.BackupChunkSize)

	run := s.Run
	if *reinit {
		run = s.Reinit
	}
	start := time.Now()
	rec, err := run(ctx, start)
	if err != nil {
		log.Fatalf("backup failed: %s", err)
	}

	backedUp := 0
	if rec != nil {
		backedUp = rec.ActivitiesCount
		log.Printf("backup done: %d activities in %d files", rec.ActivitiesCount, len(rec.DriveFileIDs))
	}

	socket := filepath.Join(cfg.BackupUnixSocketDir, cfg.BackupUnixSocketFileName)
	if err := backup.SendReport(socket, backedUp, time.Since(start)); err != nil {
		log.Errorf("failed to report backup to the main service: %s", err)
	}
}
