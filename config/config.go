package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	ServerPort  string
	Environment string
	AppURL      string
	LogLevel    string
	// Animation engine
	AnimationsEnabled bool   // When false the site is served without any animation
	MotionAssetDir    string // Local directory holding gsap.min.js and ScrollTrigger.min.js
	MotionAssetPrefix string // Object key prefix when assets live in R2
	// Interactive components
	ContactSubmitDelay   time.Duration
	ContactDisplayWindow time.Duration
	CarouselInterval     time.Duration
	ContactRateLimit     float64 // Submissions per second per client
	ContactRateBurst     int
	// Other
	AllowedOrigins []string
	StaticDir      string
	ChromePath     string // Optional Chrome binary for snapshots
	// Cloudflare R2 Storage
	R2AccountID       string
	R2AccessKeyID     string
	R2SecretAccessKey string
	R2BucketName      string
	R2PublicURL       string
}

func Load() *Config {
	// Load .env file (ignore error if not present - use system env vars)
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using system environment variables")
	}

	return &Config{
		ServerPort:           getEnv("SERVER_PORT", "8080"),
		Environment:          getEnv("ENVIRONMENT", "development"),
		AppURL:               strings.TrimSuffix(getEnv("APP_URL", "http://localhost:8080"), "/"),
		LogLevel:             getEnv("LOG_LEVEL", "info"),
		AnimationsEnabled:    getEnvBool("ANIMATIONS_ENABLED", true),
		MotionAssetDir:       getEnv("MOTION_ASSET_DIR", "static/vendor"),
		MotionAssetPrefix:    getEnv("MOTION_ASSET_PREFIX", "vendor"),
		ContactSubmitDelay:   getEnvDuration("CONTACT_SUBMIT_DELAY", 2*time.Second),
		ContactDisplayWindow: getEnvDuration("CONTACT_DISPLAY_WINDOW", 4*time.Second),
		CarouselInterval:     getEnvDuration("CAROUSEL_INTERVAL", 5*time.Second),
		ContactRateLimit:     getEnvFloat("CONTACT_RATE_LIMIT", 0.2),
		ContactRateBurst:     int(getEnvFloat("CONTACT_RATE_BURST", 3)),
		AllowedOrigins:       strings.Split(getEnv("ALLOWED_ORIGINS", "*"), ","),
		StaticDir:            getEnv("STATIC_DIR", "static"),
		ChromePath:           getEnv("CHROME_PATH", ""),
		R2AccountID:          getEnv("R2_ACCOUNT_ID", ""),
		R2AccessKeyID:        getEnv("R2_ACCESS_KEY_ID", ""),
		R2SecretAccessKey:    getEnv("R2_SECRET_ACCESS_KEY", ""),
		R2BucketName:         getEnv("R2_BUCKET_NAME", ""),
		R2PublicURL:          getEnv("R2_PUBLIC_URL", ""),
	}
}

// IsProduction reports whether the site runs with production settings.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// R2Configured reports whether every R2 credential is present.
func (c *Config) R2Configured() bool {
	return c.R2AccountID != "" && c.R2AccessKeyID != "" && c.R2SecretAccessKey != "" && c.R2BucketName != ""
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Debug().Str("key", key).Str("default", defaultValue).Msg("Using default value")
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	// Accept common boolean representations
	switch strings.ToLower(value) {
	case "true", "1", "yes", "on":
		return true
	case "false", "0", "no", "off":
		return false
	default:
		return defaultValue
	}
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil || d < 0 {
		log.Warn().Str("key", key).Str("value", value).Msg("Invalid duration, using default")
		return defaultValue
	}
	return d
}

func getEnvFloat(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil || f <= 0 {
		log.Warn().Str("key", key).Str("value", value).Msg("Invalid number, using default")
		return defaultValue
	}
	return f
}
