package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port        string
	FrontendURL string

	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// JWT secrets - one per token purpose so a token can never be
	// replayed across purposes
	JWTAccessSecret            string
	JWTRefreshSecret           string
	JWTEmailVerificationSecret string
	JWTPasswordResetSecret     string

	JWTAccessExpireMinutes string
	JWTRefreshExpireDays   string

	// OTP
	OTPExpireMinutes   string
	OTPCooldownSeconds string
	OTPMaxAttempts     string

	// Super Admin
	SuperAdminEmail    string
	SuperAdminPassword string

	// Redis
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       string

	// Email
	EmailFrom     string
	EmailFromName string
	SMTPHost      string
	SMTPPort      string
	SMTPUsername  string
	SMTPPassword  string
	SMTPUseTLS    bool

	// Rate Limiting
	RateLimitMaxRequests          string
	RateLimitTimeWindowSeconds    string
	RateLimitBlockDurationMinutes string

	LoginRateLimitMaxAttempts   string
	LoginRateLimitWindowSeconds string
	LoginRateLimitBlockMinutes  string

	RegisterRateLimitMaxAttempts string
	RegisterRateLimitWindowHours string
	RegisterRateLimitBlockHours  string

	OTPRateLimitMaxAttempts   string
	OTPRateLimitWindowMinutes string
	OTPRateLimitBlockMinutes  string

	PasswordResetMaxAttempts   string
	PasswordResetWindowMinutes string
	PasswordResetBlockHours    string

	// MinIO
	MinIOServerURL    string
	MinIORootUser     string
	MinIORootPassword string
	MinIOUseSSL       bool
	MinIOBucketName   string

	// Media upload
	MediaMaxFileSize  string
	MediaAllowedTypes string
}

var cfg *Config

// LoadConfig loads configuration from environment variables
func LoadConfig() {
	envPaths := []string{
		".env",
		"../.env",
		"../../.env",
	}

	envLoaded := false
	for _, path := range envPaths {
		if err := godotenv.Load(path); err == nil {
			log.Printf("✅ Environment loaded from: %s", path)
			envLoaded = true
			break
		}
	}

	if !envLoaded {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	cfg = &Config{
		// Server
		Port:        getEnv("PORT", "8080"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),

		// Database
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "sitebuilder"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		// JWT
		JWTAccessSecret:            getEnv("JWT_ACCESS_SECRET", "access-secret-change-this"),
		JWTRefreshSecret:           getEnv("JWT_REFRESH_SECRET", "refresh-secret-change-this"),
		JWTEmailVerificationSecret: getEnv("JWT_EMAIL_VERIFICATION_SECRET", "email-verification-secret-change-this"),
		JWTPasswordResetSecret:     getEnv("JWT_PASSWORD_RESET_SECRET", "password-reset-secret-change-this"),

		JWTAccessExpireMinutes: getEnv("JWT_ACCESS_EXPIRE_MINUTES", "15"),
		JWTRefreshExpireDays:   getEnv("JWT_REFRESH_EXPIRE_DAYS", "7"),

		// OTP
		OTPExpireMinutes:   getEnv("OTP_EXPIRE_MINUTES", "10"),
		OTPCooldownSeconds: getEnv("OTP_COOLDOWN_SECONDS", "60"),
		OTPMaxAttempts:     getEnv("OTP_MAX_ATTEMPTS", "3"),

		// Super Admin
		SuperAdminEmail:    getEnv("SUPER_ADMIN_EMAIL", "admin@sitebuilder.io"),
		SuperAdminPassword: getEnv("SUPER_ADMIN_PASSWORD", "admin123"),

		// Redis
		RedisHost:     getEnv("REDIS_HOST", "localhost"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnv("REDIS_DB", "0"),

		// Email
		EmailFrom:     getEnv("EMAIL_FROM", "noreply@sitebuilder.io"),
		EmailFromName: getEnv("EMAIL_FROM_NAME", "SiteBuilder"),
		SMTPHost:      getEnv("SMTP_HOST", "smtp.example.com"),
		SMTPPort:      getEnv("SMTP_PORT", "587"),
		SMTPUsername:  getEnv("SMTP_USERNAME", ""),
		SMTPPassword:  getEnv("SMTP_PASSWORD", ""),
		SMTPUseTLS:    getEnvAsBool("SMTP_USE_TLS", false),

		// Rate Limiting - general
		RateLimitMaxRequests:          getEnv("RATE_LIMIT_MAX_REQUESTS", "100"),
		RateLimitTimeWindowSeconds:    getEnv("RATE_LIMIT_TIME_WINDOW_SECONDS", "60"),
		RateLimitBlockDurationMinutes: getEnv("RATE_LIMIT_BLOCK_DURATION_MINUTES", "15"),

		// Login Rate Limiting
		LoginRateLimitMaxAttempts:   getEnv("LOGIN_RATE_LIMIT_MAX_ATTEMPTS", "5"),
		LoginRateLimitWindowSeconds: getEnv("LOGIN_RATE_LIMIT_WINDOW_SECONDS", "300"),
		LoginRateLimitBlockMinutes:  getEnv("LOGIN_RATE_LIMIT_BLOCK_MINUTES", "30"),

		// Register Rate Limiting
		RegisterRateLimitMaxAttempts: getEnv("REGISTER_RATE_LIMIT_MAX_ATTEMPTS", "3"),
		RegisterRateLimitWindowHours: getEnv("REGISTER_RATE_LIMIT_WINDOW_HOURS", "24"),
		RegisterRateLimitBlockHours:  getEnv("REGISTER_RATE_LIMIT_BLOCK_HOURS", "48"),

		// OTP Rate Limiting
		OTPRateLimitMaxAttempts:   getEnv("OTP_RATE_LIMIT_MAX_ATTEMPTS", "5"),
		OTPRateLimitWindowMinutes: getEnv("OTP_RATE_LIMIT_WINDOW_MINUTES", "15"),
		OTPRateLimitBlockMinutes:  getEnv("OTP_RATE_LIMIT_BLOCK_MINUTES", "30"),

		// Password Reset Rate Limiting
		PasswordResetMaxAttempts:   getEnv("PASSWORD_RESET_MAX_ATTEMPTS", "3"),
		PasswordResetWindowMinutes: getEnv("PASSWORD_RESET_WINDOW_MINUTES", "60"),
		PasswordResetBlockHours:    getEnv("PASSWORD_RESET_BLOCK_HOURS", "24"),

		// MinIO
		MinIOServerURL:    getEnv("MINIO_SERVER_URL", "http://localhost:9000"),
		MinIORootUser:     getEnv("MINIO_ROOT_USER", "minioadmin"),
		MinIORootPassword: getEnv("MINIO_ROOT_PASSWORD", "minioadmin"),
		MinIOUseSSL:       getEnvAsBool("MINIO_USE_SSL", false),
		MinIOBucketName:   getEnv("MINIO_BUCKET_NAME", "sitebuilder-media"),

		// Media upload
		MediaMaxFileSize:  getEnv("MEDIA_MAX_FILE_SIZE", "20MB"),
		MediaAllowedTypes: getEnv("MEDIA_ALLOWED_TYPES", ".jpg,.jpeg,.png,.gif,.webp,.svg,.mp4,.webm"),
	}

	log.Println("✅ Configuration loaded successfully")
}

// GetConfig returns the current configuration
func GetConfig() *Config {
	if cfg == nil {
		LoadConfig()
	}
	return cfg
}

// getEnv gets environment variable with default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// GetInt parses a numeric config value with a fallback default
func GetInt(value string, defaultValue int) int {
	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}
	return defaultValue
}

// GetOTPExpireMinutes returns how long an OTP challenge stays valid
func (c *Config) GetOTPExpireMinutes() int {
	return GetInt(c.OTPExpireMinutes, 10)
}

// GetOTPCooldownSeconds returns the minimum delay between OTP requests
func (c *Config) GetOTPCooldownSeconds() int {
	return GetInt(c.OTPCooldownSeconds, 60)
}

// GetOTPMaxAttempts returns how many wrong codes lock a challenge
func (c *Config) GetOTPMaxAttempts() int {
	return GetInt(c.OTPMaxAttempts, 3)
}
