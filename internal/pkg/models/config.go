package models

// Config holds all application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NSQ      NSQConfig
	JWT      JWTConfig
	Match    MatchConfig
	Logger   LoggerConfig
}

// AppConfig holds application metadata
type AppConfig struct {
	Name        string
	Environment string
	Version     string
	Debug       bool
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig holds PostgreSQL connection settings
type DatabaseConfig struct {
	Enabled   bool
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig holds Redis connection settings
type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NSQConfig holds NSQ daemon settings
type NSQConfig struct {
	Address string
	Enabled bool
}

// JWTConfig holds session token settings
type JWTConfig struct {
	Secret     string
	Expiration int // minutes
	Issuer     string
}

// MatchConfig holds proximity matching settings
type MatchConfig struct {
	MaxDistanceMeters float64
	GeohashPrecision  uint
}

// LoggerConfig holds logger settings
type LoggerConfig struct {
	Level       string
	Development bool
}
