package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all configuration values
type Config struct {
	Server       ServerConfig
	Database     DatabaseConfig
	Redis        RedisConfig
	JWT          JWTConfig
	Verification VerificationConfig
	Syndication  SyndicationConfig
	Retention    RetentionConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port string
	Env  string
	// BaseURL is the externally reachable origin, used in email links
	BaseURL string
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// URL returns the database connection URL
func (c DatabaseConfig) URL() string {
	return "postgres://" + c.User + ":" + c.Password + "@" + c.Host + ":" + strconv.Itoa(c.Port) + "/" + c.DBName + "?sslmode=" + c.SSLMode + "&prepare_threshold=0"
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	URL      string
	PASSWORD string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret        string
	AccessExpiry  time.Duration
	RefreshExpiry time.Duration
}

// VerificationConfig holds identity verification settings
type VerificationConfig struct {
	// DNSTimeout bounds every TXT lookup
	DNSTimeout time.Duration
	// DoHEndpoint enables the DNS-over-HTTPS fallback when non-empty
	DoHEndpoint string
	// BioFetchTimeout bounds public bio page fetches
	BioFetchTimeout time.Duration
	// BioCodeTTL is the code-in-bio validity window (capped at BioCodeMaxTTL)
	BioCodeTTL    time.Duration
	BioCodeMaxTTL time.Duration
	// DomainEmailProofRequired gates the secondary email proof for claims
	DomainEmailProofRequired bool
}

// SyndicationConfig holds the public feed eligibility switches
type SyndicationConfig struct {
	EnforcePlan           bool
	AllowPlatformVerified bool
}

// RetentionConfig holds lifecycle sweep settings
type RetentionConfig struct {
	Interval       time.Duration
	BatchSize      int
	LeaseStaleness time.Duration
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:    getEnv("SERVER_PORT", "8080"),
			Env:     getEnv("SERVER_ENV", "development"),
			BaseURL: getEnv("SERVER_BASE_URL", "http://localhost:8080"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvAsInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "aeobro"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			URL:      getEnv("REDIS_URL", "redis://localhost:6379"),
			PASSWORD: getEnv("REDIS_PASSWORD", ""),
		},
		JWT: JWTConfig{
			Secret:        getEnv("JWT_SECRET", "change-this-in-production"),
			AccessExpiry:  getEnvAsDuration("JWT_ACCESS_EXPIRY", 15*time.Minute),
			RefreshExpiry: getEnvAsDuration("JWT_REFRESH_EXPIRY", 7*24*time.Hour),
		},
		Verification: VerificationConfig{
			DNSTimeout:               getEnvAsDuration("VERIFY_DNS_TIMEOUT", 5*time.Second),
			DoHEndpoint:              getEnv("VERIFY_DOH_ENDPOINT", "https://dns.google/resolve"),
			BioFetchTimeout:          getEnvAsDuration("VERIFY_BIO_FETCH_TIMEOUT", 10*time.Second),
			BioCodeTTL:               getEnvAsDuration("VERIFY_BIO_CODE_TTL", 24*time.Hour),
			BioCodeMaxTTL:            getEnvAsDuration("VERIFY_BIO_CODE_MAX_TTL", 72*time.Hour),
			DomainEmailProofRequired: getEnvAsBool("VERIFY_DOMAIN_EMAIL_PROOF", false),
		},
		Syndication: SyndicationConfig{
			EnforcePlan:           getEnvAsBool("SYNDICATION_ENFORCE_PLAN", true),
			AllowPlatformVerified: getEnvAsBool("SYNDICATION_ALLOW_PLATFORM_VERIFIED", true),
		},
		Retention: RetentionConfig{
			Interval:       getEnvAsDuration("RETENTION_INTERVAL", time.Hour),
			BatchSize:      getEnvAsInt("RETENTION_BATCH_SIZE", 200),
			LeaseStaleness: getEnvAsDuration("RETENTION_LEASE_STALENESS", 30*time.Minute),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
