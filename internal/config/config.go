package config

import (
	"github.com/kelseyhightower/envconfig"
)

// App is the full service configuration, read from the environment
// (cmd binaries load a .env file first).
type App struct {
	// HTTP
	HTTPAddr string `envconfig:"HTTP_ADDR" default:":8080"`

	// Postgres
	PGDSN string `envconfig:"PG_DSN" required:"true"`

	// Redis
	RedisAddr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	RedisPassword string `envconfig:"REDIS_PASSWORD" default:""`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0"`

	// JWT
	JWTSecret   string `envconfig:"JWT_SECRET" required:"true"`
	JWTExpireHr int    `envconfig:"JWT_EXPIRE_HR" default:"72"`

	// Logging
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"json"`
}

// Load populates App from the environment, failing on missing required vars.
func Load() (App, error) {
	var c App
	err := envconfig.Process("", &c)
	return c, err
}
