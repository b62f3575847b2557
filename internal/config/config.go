package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"
)

const (
	envPort                  = "PORT"
	envServerReadTimeout     = "SERVER_READ_TIMEOUT"
	envServerWriteTimeout    = "SERVER_WRITE_TIMEOUT"
	envServerShutdownTimeout = "SERVER_SHUTDOWN_TIMEOUT"
	envDBHost                = "DB_HOST"
	envDBPort                = "DB_PORT"
	envDBName                = "DB_NAME"
	envDBUser                = "DB_USER"
	envDBPassword            = "DB_PASSWORD"
	envDBSSLMode             = "DB_SSL_MODE"
	envDBMaxConns            = "DB_MAX_CONNS"
	envDBMinConns            = "DB_MIN_CONNS"
	envJWTSecret             = "JWT_SECRET"
	envJWTStrictSecret       = "JWT_STRICT_SECRET"
	envJWTSystemExpiry       = "JWT_SYSTEM_EXPIRY"
	envJWTCourseExpiry       = "JWT_COURSE_EXPIRY"
)

const (
	defaultServerPort         = "8080"
	defaultServerReadTimeout  = 10 * time.Second
	defaultServerWriteTimeout = 10 * time.Second
	defaultServerShutdown     = 10 * time.Second
	defaultDBHost             = "localhost"
	defaultDBPort             = 5432
	defaultDBName             = "teesheet"
	defaultDBUser             = "teesheet_app"
	defaultDBSSLMode          = "disable"
	defaultDBMaxConns         = 25
	defaultDBMinConns         = 5

	// System admin sessions are short; staff sessions persist across shifts.
	defaultSystemTokenExpiry = 24 * time.Hour
	defaultCourseTokenExpiry = 7 * 24 * time.Hour

	minJWTSecretLength = 32

	// DevFallbackSecret is substituted for a missing JWT_SECRET only when
	// JWT_STRICT_SECRET=false. Never acceptable outside local development.
	DevFallbackSecret = "dev-only-insecure-secret-change-me-now!!"

	errJWTSecretRequiredFmt    = "%s must be set (or set %s=false for local development)"
	errJWTSecretMinLengthFmt   = "%s must be at least %d characters"
	errInvalidConfigurationFmt = "invalid configuration: %w"
	warnDevSecretFmt           = "WARNING: %s is not set; falling back to an insecure development secret. Set %s before deploying."
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	JWT      JWTConfig
}

type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

type DatabaseConfig struct {
	Host     string
	Port     int
	Database string
	User     string
	Password string
	SSLMode  string
	MaxConns int
	MinConns int
}

type JWTConfig struct {
	Secret       string
	StrictSecret bool
	SystemExpiry time.Duration
	CourseExpiry time.Duration
}

func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnv(envPort, defaultServerPort),
			ReadTimeout:     getDurationEnv(envServerReadTimeout, defaultServerReadTimeout),
			WriteTimeout:    getDurationEnv(envServerWriteTimeout, defaultServerWriteTimeout),
			ShutdownTimeout: getDurationEnv(envServerShutdownTimeout, defaultServerShutdown),
		},
		Database: DatabaseConfig{
			Host:     getEnv(envDBHost, defaultDBHost),
			Port:     getIntEnv(envDBPort, defaultDBPort),
			Database: getEnv(envDBName, defaultDBName),
			User:     getEnv(envDBUser, defaultDBUser),
			Password: os.Getenv(envDBPassword),
			SSLMode:  getEnv(envDBSSLMode, defaultDBSSLMode),
			MaxConns: getIntEnv(envDBMaxConns, defaultDBMaxConns),
			MinConns: getIntEnv(envDBMinConns, defaultDBMinConns),
		},
		JWT: JWTConfig{
			Secret:       os.Getenv(envJWTSecret),
			StrictSecret: getBoolEnv(envJWTStrictSecret, true),
			SystemExpiry: getDurationEnv(envJWTSystemExpiry, defaultSystemTokenExpiry),
			CourseExpiry: getDurationEnv(envJWTCourseExpiry, defaultCourseTokenExpiry),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf(errInvalidConfigurationFmt, err)
	}

	return cfg, nil
}

// Validate resolves the signing secret per the configured mode. Strict mode
// refuses to start without a real secret; lenient mode substitutes a fixed
// development secret and warns loudly.
func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		if c.JWT.StrictSecret {
			return fmt.Errorf(errJWTSecretRequiredFmt, envJWTSecret, envJWTStrictSecret)
		}
		log.Printf(warnDevSecretFmt, envJWTSecret, envJWTSecret)
		c.JWT.Secret = DevFallbackSecret
		return nil
	}

	if len(c.JWT.Secret) < minJWTSecretLength {
		return fmt.Errorf(errJWTSecretMinLengthFmt, envJWTSecret, minJWTSecretLength)
	}

	return nil
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
		if hours, err := strconv.Atoi(value); err == nil {
			return time.Duration(hours) * time.Hour
		}
	}
	return defaultValue
}
