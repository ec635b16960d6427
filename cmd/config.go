package cmd

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	BusinessTimeZone string
	LogLevel         string

	AdminUsername     string
	AdminPasswordHash string

	RateLimitPerSecond         float64
	ClosingPeriodPurgeSchedule string
}
