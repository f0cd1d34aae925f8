package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/viper"
)

// DefaultCredFile is the dotenv file read when no other path is given.
const DefaultCredFile = ".cred"

type Config struct {
	HTTP  HTTPConfig
	DB    DBConfig
	Redis RedisConfig
	Kafka KafkaConfig
	Log   LogConfig
}

type HTTPConfig struct {
	Addr      string
	RateLimit float64
	RateBurst int
}

type DBConfig struct {
	Host     string
	User     string
	Password string
	Name     string
	Port     int
	// SSLCA is the path of a PEM bundle; TLS is enabled only when it is set.
	SSLCA          string
	MaxIdleConns   int
	ConnectRetries int
	AutoMigrate    bool
}

type RedisConfig struct {
	Addr string
}

type KafkaConfig struct {
	Brokers []string
	Topic   string
}

type LogConfig struct {
	Level string
}

// Load reads the credential file at path (a missing file is not an error)
// and overlays the process environment on top of it.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_NAME", "db_estudo")
	v.SetDefault("DB_PORT", 3306)
	v.SetDefault("DB_MAX_IDLE_CONNS", 0)
	v.SetDefault("DB_CONNECT_RETRIES", 10)
	v.SetDefault("DB_AUTO_MIGRATE", false)
	v.SetDefault("HTTP_ADDR", ":8080")
	v.SetDefault("RATE_LIMIT", 0)
	v.SetDefault("RATE_BURST", 3)
	v.SetDefault("KAFKA_TOPIC", "loja-eventos")
	v.SetDefault("LOG_LEVEL", "info")

	if path == "" {
		path = DefaultCredFile
	}
	v.SetConfigFile(path)
	v.SetConfigType("env")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.Is(err, fs.ErrNotExist) && !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read credential file %s: %w", path, err)
		}
	}

	v.AutomaticEnv()

	cfg := &Config{
		HTTP: HTTPConfig{
			Addr:      v.GetString("HTTP_ADDR"),
			RateLimit: v.GetFloat64("RATE_LIMIT"),
			RateBurst: v.GetInt("RATE_BURST"),
		},
		DB: DBConfig{
			Host:           v.GetString("DB_HOST"),
			User:           v.GetString("DB_USER"),
			Password:       v.GetString("DB_PASSWORD"),
			Name:           v.GetString("DB_NAME"),
			Port:           v.GetInt("DB_PORT"),
			SSLCA:          v.GetString("SSL_CA_PATH"),
			MaxIdleConns:   v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnectRetries: v.GetInt("DB_CONNECT_RETRIES"),
			AutoMigrate:    v.GetBool("DB_AUTO_MIGRATE"),
		},
		Redis: RedisConfig{
			Addr: v.GetString("REDIS_ADDR"),
		},
		Kafka: KafkaConfig{
			Brokers: splitList(v.GetString("KAFKA_BROKERS")),
			Topic:   v.GetString("KAFKA_TOPIC"),
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
	}

	if cfg.DB.Port <= 0 {
		return nil, fmt.Errorf("invalid DB_PORT %d", cfg.DB.Port)
	}

	return cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
