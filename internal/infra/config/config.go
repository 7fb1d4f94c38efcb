package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"schedule_notification_bot/internal/domain/schedule"

	"github.com/joho/godotenv"
)

// AppConfig holds all configuration for the application
type AppConfig struct {
	TelegramToken        string
	DatabaseURL          string
	AdminTelegramIDs     map[int64]struct{}
	LogLevel             string
	Environment          string
	HTTPPort             string
	MinIOEndpoint        string
	MinIOAccessKey       string
	MinIOSecretKey       string
	MinIOBucket          string
	MinIOUseSSL          bool
	SnapshotCacheMinutes int
	CronSpecMorning      string // daily digest for subscribed users
	TimetableProfileFile string
	MaxUploadBytes       int64
}

// Load reads configuration from environment variables and .env file (if present).
func Load() (*AppConfig, error) {
	// Attempt to load .env file. Errors are ignored if the file doesn't exist.
	// godotenv.Load will not override existing env variables.
	_ = godotenv.Load()

	cfg := &AppConfig{}

	cfg.TelegramToken = os.Getenv("TELEGRAM_TOKEN")
	if cfg.TelegramToken == "" {
		return nil, fmt.Errorf("TELEGRAM_TOKEN is not set")
	}

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is not set")
	}

	adminIDsStr := os.Getenv("ADMIN_TELEGRAM_IDS")
	if adminIDsStr == "" {
		return nil, fmt.Errorf("ADMIN_TELEGRAM_IDS is not set")
	}
	cfg.AdminTelegramIDs = make(map[int64]struct{})
	for _, part := range strings.Split(adminIDsStr, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid ADMIN_TELEGRAM_IDS entry %q: %w", part, err)
		}
		cfg.AdminTelegramIDs[id] = struct{}{}
	}
	if len(cfg.AdminTelegramIDs) == 0 {
		return nil, fmt.Errorf("ADMIN_TELEGRAM_IDS contains no ids")
	}

	cfg.LogLevel = strings.ToLower(os.Getenv("LOG_LEVEL"))
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info" // Default log level
	}

	cfg.Environment = strings.ToLower(os.Getenv("ENVIRONMENT"))
	if cfg.Environment == "" {
		cfg.Environment = "development" // Default environment
	}

	cfg.HTTPPort = os.Getenv("HTTP_PORT")
	if cfg.HTTPPort == "" {
		cfg.HTTPPort = "8080"
	}

	cfg.MinIOEndpoint = getEnv("MINIO_ENDPOINT", "minio:9000")
	cfg.MinIOAccessKey = getEnv("MINIO_ACCESS_KEY", "minioadmin")
	cfg.MinIOSecretKey = getEnv("MINIO_SECRET_KEY", "minioadmin")
	cfg.MinIOBucket = getEnv("MINIO_BUCKET", "schedule-uploads")
	useSSL, _ := strconv.ParseBool(getEnv("MINIO_USE_SSL", "false"))
	cfg.MinIOUseSSL = useSSL

	cacheMinutes, _ := strconv.Atoi(getEnv("SNAPSHOT_CACHE_MINUTES", "10"))
	cfg.SnapshotCacheMinutes = cacheMinutes

	cfg.CronSpecMorning = getEnv("CRON_SPEC_MORNING_DIGEST", "0 7 * * 1-6")

	cfg.TimetableProfileFile = getEnv("TIMETABLE_PROFILE_FILE", "timetable.json")

	maxUploadMB, _ := strconv.Atoi(getEnv("MAX_UPLOAD_MB", "10"))
	cfg.MaxUploadBytes = int64(maxUploadMB) * 1024 * 1024

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// TimetableProfile bundles the static timetable inputs: the workbook layout,
// the teacher roster and the group union table. Loaded once at startup and
// treated as immutable afterwards.
type TimetableProfile struct {
	Layout schedule.Layout
	Roster []string
	Unions schedule.UnionTable
}

type timetableProfileFile struct {
	Layout schedule.Layout     `json:"layout"`
	Roster []string            `json:"roster"`
	Unions map[string][]string `json:"unions"`
}

// LoadTimetableProfile reads and validates the JSON timetable profile.
func LoadTimetableProfile(path string) (*TimetableProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read timetable profile: %w", err)
	}

	var raw timetableProfileFile
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse timetable profile: %w", err)
	}

	if err := raw.Layout.Validate(); err != nil {
		return nil, fmt.Errorf("invalid timetable layout: %w", err)
	}
	if len(raw.Roster) == 0 {
		return nil, fmt.Errorf("timetable profile has an empty roster")
	}
	unions, err := schedule.NewUnionTable(raw.Unions)
	if err != nil {
		return nil, fmt.Errorf("invalid group union table: %w", err)
	}

	return &TimetableProfile{
		Layout: raw.Layout,
		Roster: raw.Roster,
		Unions: unions,
	}, nil
}
