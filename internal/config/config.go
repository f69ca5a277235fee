package config

// DefaultJWTSecret is the placeholder secret shipped for local development.
// Boot fails when it is still configured in a non-development environment.
const DefaultJWTSecret = "default_secret_CHANGE_IN_PRODUCTION"

// Config holds all application configuration.
// It is built once at startup and treated as immutable afterwards;
// services receive the sections they need explicitly instead of reading
// ambient process state.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth"     validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`

	// Environment is one of development, test or production. It drives the
	// cookie flags and the JWT secret boot check.
	Environment string `mapstructure:"environment" validate:"required,oneof=development test production"`

	// AllowedOrigins is the comma-separated CORS allow list for the
	// browser client.
	AllowedOrigins string `mapstructure:"allowed_origins"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required,url"`
}

// AuthConfig contains all authentication and authorization settings.
type AuthConfig struct {
	JWTSecret            string `mapstructure:"jwt_secret"             validate:"required,min=32"`
	TokenLifetimeMinutes int    `mapstructure:"token_lifetime_minutes" validate:"required,gt=0"`
	BcryptCost           int    `mapstructure:"bcrypt_cost"            validate:"required,gte=4,lte=31"`

	// HashWorkers bounds how many bcrypt operations may run concurrently.
	HashWorkers int `mapstructure:"hash_workers" validate:"required,gt=0"`
}

// IsProduction reports whether the server runs in the production environment.
func (c ServerConfig) IsProduction() bool {
	return c.Environment == "production"
}

// IsDevelopment reports whether the server runs in the development environment.
func (c ServerConfig) IsDevelopment() bool {
	return c.Environment == "development"
}
