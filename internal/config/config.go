package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server" validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Audit    AuditConfig    `mapstructure:"audit"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required"`
	// MigrationsDir is the directory holding the goose migration files.
	MigrationsDir string `mapstructure:"migrations_dir"`
}

// AuditConfig controls the audit stamping of persisted entities.
type AuditConfig struct {
	// Actor is the identity recorded in created_by/updated_by when no
	// caller identity is available.
	Actor string `mapstructure:"actor"`
}
