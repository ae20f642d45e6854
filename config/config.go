package config

import "github.com/kelseyhightower/envconfig"

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Admin    AdminConfig
}

type ServerConfig struct {
	SecretKey         string `envconfig:"SECRET_KEY" required:"true"`
	Port              string `envconfig:"SERVER_PORT" default:"8080"`
	ExpirationMinutes int    `envconfig:"TOKEN_EXPIRATION_MINUTES" default:"50"`
}

type DatabaseConfig struct {
	Host         string `envconfig:"DATABASE_HOST" default:"localhost"`
	Username     string `envconfig:"DATABASE_USER" required:"true"`
	Password     string `envconfig:"DATABASE_PASSWORD" required:"true"`
	DatabaseName string `envconfig:"DATABASE_NAME" required:"true"`
	Port         string `envconfig:"DATABASE_PORT" default:"5432"`
}

// AdminConfig seeds the administrator account on startup. Admin rights
// live on the account's role column, not on the email itself.
type AdminConfig struct {
	Email    string `envconfig:"ADMIN_EMAIL" default:"admin@gamestore.com"`
	Password string `envconfig:"ADMIN_PASSWORD" required:"true"`
}

var Cfg = Config{}

func (config *Config) Init() error {
	return envconfig.Process("", config)
}
