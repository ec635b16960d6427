package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"bakery/cmd"
	"bakery/internal/adapters/out/postgres"
	"bakery/internal/core/domain/model/kernel"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func main() {
	configs := getConfigs()
	slogger := newLogger(configs.LogLevel)

	clock, err := kernel.NewBusinessClock(configs.BusinessTimeZone)
	if err != nil {
		log.Fatalf("Invalid business time zone: %v", err)
	}

	gormDB := mustGormOpen(configs)
	if err = postgres.Migrate(gormDB); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, gormDB, clock, slogger)

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort, slogger)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	config := cmd.Config{
		HTTPPort:                   envOrDefault("HTTP_PORT", "8080"),
		DBHost:                     os.Getenv("DB_HOST"),
		DBPort:                     envOrDefault("DB_PORT", "5432"),
		DBUser:                     os.Getenv("DB_USER"),
		DBPassword:                 os.Getenv("DB_PASSWORD"),
		DBName:                     os.Getenv("DB_NAME"),
		DBSslMode:                  envOrDefault("DB_SSLMODE", "disable"),
		BusinessTimeZone:           envOrDefault("BUSINESS_TIME_ZONE", kernel.DefaultBusinessTimeZone),
		LogLevel:                   envOrDefault("LOG_LEVEL", "info"),
		AdminUsername:              os.Getenv("ADMIN_USERNAME"),
		AdminPasswordHash:          os.Getenv("ADMIN_PASSWORD_HASH"),
		ClosingPeriodPurgeSchedule: os.Getenv("CLOSING_PERIOD_PURGE_SCHEDULE"),
	}

	if raw := os.Getenv("RATE_LIMIT_PER_SECOND"); raw != "" {
		rateLimit, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			log.Fatalf("Invalid RATE_LIMIT_PER_SECOND %q: %v", raw, err)
		}
		config.RateLimitPerSecond = rateLimit
	}

	return config
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(level))); err != nil {
		lvl = slog.LevelInfo
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
	slog.SetDefault(logger)
	return logger
}

func mustGormOpen(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		log.Fatalf("Failed to get database handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	return gormDB
}

func startWebServer(app cmd.CompositionRoot, port string, slogger *slog.Logger) {
	e, err := app.CreateRouter()
	if err != nil {
		log.Fatalf("Failed to build router: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		slogger.Info("HTTP server listening", "port", port)
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			e.Logger.Fatal(err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		e.Logger.Error(err)
	}
}
