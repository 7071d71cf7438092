// Package config reads the piiguard settings from the environment, after loading the
// nearest .env file found walking up from the working directory.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/allisson/go-env"
	"github.com/joho/godotenv"

	apperrors "github.com/allisson/piiguard/internal/errors"
)

// Config holds every setting. Field comments name the environment variable.
type Config struct {
	// HTTP API.
	ServerHost string // SERVER_HOST
	ServerPort int    // SERVER_PORT

	// Database. DBDriver is "mysql" or "postgres".
	DBDriver             string        // DB_DRIVER
	DBConnectionString   string        // DB_CONNECTION_STRING
	DBMaxOpenConnections int           // DB_MAX_OPEN_CONNECTIONS
	DBMaxIdleConnections int           // DB_MAX_IDLE_CONNECTIONS
	DBConnMaxLifetime    time.Duration // DB_CONN_MAX_LIFETIME_MINUTES

	LogLevel string // LOG_LEVEL: debug, info, warn or error

	// Key material. The symmetric key file is created on first use; the RSA pair
	// wraps and unwraps backup keys. KeySealingURI optionally seals the symmetric key
	// file with a gocloud.dev/secrets keeper.
	SymmetricKeyPath        string // SYMMETRIC_KEY_PATH
	RSAPublicKeyPath        string // RSA_PUBLIC_KEY_PATH
	RSAPrivateKeyPath       string // RSA_PRIVATE_KEY_PATH
	RSAPrivateKeyPassphrase string // RSA_PRIVATE_KEY_PASSPHRASE
	KeySealingURI           string // KEY_SEALING_URI

	// Session tokens.
	TokenSigningSecret string        // TOKEN_SIGNING_SECRET
	TokenTTL           time.Duration // TOKEN_TTL_MINUTES

	// Per-IP limiter in front of POST /v1/auth/login.
	RateLimitLoginEnabled        bool    // RATE_LIMIT_LOGIN_ENABLED
	RateLimitLoginRequestsPerSec float64 // RATE_LIMIT_LOGIN_REQUESTS_PER_SEC
	RateLimitLoginBurst          int     // RATE_LIMIT_LOGIN_BURST

	CORSEnabled      bool   // CORS_ENABLED
	CORSAllowOrigins string // CORS_ALLOW_ORIGINS, comma separated

	MetricsEnabled   bool   // METRICS_ENABLED
	MetricsNamespace string // METRICS_NAMESPACE
	MetricsPort      int    // METRICS_PORT

	// Backup workflow. The dump command writes the raw dump to stdout and the restore
	// command reads it from stdin. Both are split on whitespace and run without a shell.
	BackupDumpCommand    string // BACKUP_DUMP_COMMAND
	BackupRestoreCommand string // BACKUP_RESTORE_COMMAND
}

// Load reads the configuration. Unset variables take their defaults.
func Load() *Config {
	loadDotEnv()

	return &Config{
		ServerHost: env.GetString("SERVER_HOST", "0.0.0.0"),
		ServerPort: env.GetInt("SERVER_PORT", 8080),

		DBDriver: env.GetString("DB_DRIVER", "mysql"),
		DBConnectionString: env.GetString(
			"DB_CONNECTION_STRING",
			"user:password@tcp(localhost:3306)/piiguard?parseTime=true",
		),
		DBMaxOpenConnections: env.GetInt("DB_MAX_OPEN_CONNECTIONS", 25),
		DBMaxIdleConnections: env.GetInt("DB_MAX_IDLE_CONNECTIONS", 5),
		DBConnMaxLifetime:    env.GetDuration("DB_CONN_MAX_LIFETIME_MINUTES", 5, time.Minute),

		LogLevel: env.GetString("LOG_LEVEL", "info"),

		SymmetricKeyPath:        env.GetString("SYMMETRIC_KEY_PATH", "aes.key"),
		RSAPublicKeyPath:        env.GetString("RSA_PUBLIC_KEY_PATH", "rsa_keys/public.pem"),
		RSAPrivateKeyPath:       env.GetString("RSA_PRIVATE_KEY_PATH", "rsa_keys/private.pem"),
		RSAPrivateKeyPassphrase: env.GetString("RSA_PRIVATE_KEY_PASSPHRASE", ""),
		KeySealingURI:           env.GetString("KEY_SEALING_URI", ""),

		TokenSigningSecret: env.GetString("TOKEN_SIGNING_SECRET", ""),
		TokenTTL:           env.GetDuration("TOKEN_TTL_MINUTES", 60, time.Minute),

		RateLimitLoginEnabled:        env.GetBool("RATE_LIMIT_LOGIN_ENABLED", true),
		RateLimitLoginRequestsPerSec: env.GetFloat64("RATE_LIMIT_LOGIN_REQUESTS_PER_SEC", 5.0),
		RateLimitLoginBurst:          env.GetInt("RATE_LIMIT_LOGIN_BURST", 10),

		CORSEnabled:      env.GetBool("CORS_ENABLED", false),
		CORSAllowOrigins: env.GetString("CORS_ALLOW_ORIGINS", ""),

		MetricsEnabled:   env.GetBool("METRICS_ENABLED", true),
		MetricsNamespace: env.GetString("METRICS_NAMESPACE", "piiguard"),
		MetricsPort:      env.GetInt("METRICS_PORT", 8081),

		BackupDumpCommand:    env.GetString("BACKUP_DUMP_COMMAND", ""),
		BackupRestoreCommand: env.GetString("BACKUP_RESTORE_COMMAND", ""),
	}
}

// Validate reports every setting the server cannot start without. The returned
// error matches ErrConfiguration.
func (c *Config) Validate() error {
	var problems []error
	check := func(ok bool, msg string) {
		if !ok {
			problems = append(problems, apperrors.Wrap(apperrors.ErrConfiguration, msg))
		}
	}

	check(c.DBDriver == "mysql" || c.DBDriver == "postgres", "DB_DRIVER must be mysql or postgres")
	check(c.TokenSigningSecret != "", "TOKEN_SIGNING_SECRET is required")
	check(c.TokenTTL > 0, "TOKEN_TTL_MINUTES must be positive")
	check(c.SymmetricKeyPath != "", "SYMMETRIC_KEY_PATH is required")
	check(c.RSAPublicKeyPath != "", "RSA_PUBLIC_KEY_PATH is required")
	check(!c.MetricsEnabled || c.MetricsPort != c.ServerPort, "METRICS_PORT must differ from SERVER_PORT")

	return errors.Join(problems...)
}

// GetGinMode maps LOG_LEVEL=debug to gin's debug mode and everything else to release.
func (c *Config) GetGinMode() string {
	if c.LogLevel == "debug" {
		return "debug"
	}
	return "release"
}

func loadDotEnv() {
	dir, err := os.Getwd()
	if err != nil {
		return
	}

	for {
		path := filepath.Join(dir, ".env")
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
			return
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return
		}
		dir = parent
	}
}
