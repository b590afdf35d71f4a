package config

import (
	"log"
	"strings"

	"github.com/liquex/liquex/internal/pkg/models"
	"github.com/spf13/viper"
)

// InitConfig loads configuration from an optional yaml file and the
// environment. Environment variables win over file values.
func InitConfig() *models.Config {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("config file not loaded, using environment and defaults: %v", err)
	}

	setDefaults()
	return loadConfig()
}

func setDefaults() {
	viper.SetDefault("app.name", "liquex-marketplace")
	viper.SetDefault("app.env", "local")
	viper.SetDefault("app.version", "0.1.0")
	viper.SetDefault("app.debug", true)

	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 9990)
	viper.SetDefault("server.read_timeout", 15)
	viper.SetDefault("server.write_timeout", 15)
	viper.SetDefault("server.shutdown_timeout", 10)

	viper.SetDefault("db.enabled", false)
	viper.SetDefault("db.host", "localhost")
	viper.SetDefault("db.port", 5432)
	viper.SetDefault("db.username", "liquex")
	viper.SetDefault("db.database", "liquex")
	viper.SetDefault("db.ssl_mode", "disable")
	viper.SetDefault("db.max_conns", 10)
	viper.SetDefault("db.idle_conns", 2)

	viper.SetDefault("redis.enabled", false)
	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.db", 0)
	viper.SetDefault("redis.pool_size", 10)

	viper.SetDefault("nsq.address", "localhost:4150")
	viper.SetDefault("nsq.enabled", false)

	viper.SetDefault("jwt.expiration", 60)
	viper.SetDefault("jwt.issuer", "liquex")

	viper.SetDefault("match.max_distance_meters", 700.0)
	viper.SetDefault("match.geohash_precision", 7)

	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.development", false)
}

func loadConfig() *models.Config {
	return &models.Config{
		App: models.AppConfig{
			Name:        viper.GetString("app.name"),
			Environment: viper.GetString("app.env"),
			Version:     viper.GetString("app.version"),
			Debug:       viper.GetBool("app.debug"),
		},
		Server: models.ServerConfig{
			Host:            viper.GetString("server.host"),
			Port:            viper.GetInt("server.port"),
			ReadTimeout:     viper.GetInt("server.read_timeout"),
			WriteTimeout:    viper.GetInt("server.write_timeout"),
			ShutdownTimeout: viper.GetInt("server.shutdown_timeout"),
		},
		Database: models.DatabaseConfig{
			Enabled:   viper.GetBool("db.enabled"),
			Host:      viper.GetString("db.host"),
			Port:      viper.GetInt("db.port"),
			Username:  viper.GetString("db.username"),
			Password:  viper.GetString("db.password"),
			Database:  viper.GetString("db.database"),
			SSLMode:   viper.GetString("db.ssl_mode"),
			MaxConns:  viper.GetInt("db.max_conns"),
			IdleConns: viper.GetInt("db.idle_conns"),
		},
		Redis: models.RedisConfig{
			Enabled:  viper.GetBool("redis.enabled"),
			Host:     viper.GetString("redis.host"),
			Port:     viper.GetInt("redis.port"),
			Password: viper.GetString("redis.password"),
			DB:       viper.GetInt("redis.db"),
			PoolSize: viper.GetInt("redis.pool_size"),
		},
		NSQ: models.NSQConfig{
			Address: viper.GetString("nsq.address"),
			Enabled: viper.GetBool("nsq.enabled"),
		},
		JWT: models.JWTConfig{
			Secret:     viper.GetString("jwt.secret"),
			Expiration: viper.GetInt("jwt.expiration"),
			Issuer:     viper.GetString("jwt.issuer"),
		},
		Match: models.MatchConfig{
			MaxDistanceMeters: viper.GetFloat64("match.max_distance_meters"),
			GeohashPrecision:  viper.GetUint("match.geohash_precision"),
		},
		Logger: models.LoggerConfig{
			Level:       viper.GetString("log.level"),
			Development: viper.GetBool("log.development"),
		},
	}
}
