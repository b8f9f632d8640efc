package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	App    AppConfig
	Server ServerConfig
	Store  StoreConfig
	DB     PostgresConfig
	Redis  RedisConfig
	Kafka  KafkaConfig
}

type AppConfig struct {
	Name string
	Env  string
}

type ServerConfig struct {
	Host string
	Port int
}

// StoreConfig selects the order store backend at process start.
type StoreConfig struct {
	Driver string
}

const (
	StoreDriverPostgres = "postgres"
	StoreDriverRedis    = "redis"
)

type PostgresConfig struct {
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
	MaxConns    int
	OrdersTable string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type KafkaConfig struct {
	Brokers []string
	// ChannelTopics maps logical channel names to physical topics, parsed
	// from the CHANNEL_TOPICS JSON env var.
	ChannelTopics map[string]string
	ConsumerGroup string
	EventEncoding string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	channels, err := parseChannelTopics(getEnv("CHANNEL_TOPICS", `{"ordersTopic":"orders"}`))
	if err != nil {
		return nil, fmt.Errorf("CHANNEL_TOPICS is invalid: %w", err)
	}

	cfg := &Config{
		App: AppConfig{
			Name: getEnv("APP_NAME", "order_publisher"),
			Env:  getEnv("APP_ENV", "local"),
		},
		Server: ServerConfig{
			Host: getEnv("HTTP_HOST", "0.0.0.0"),
			Port: getEnvAsInt("HTTP_PORT", 5000),
		},
		Store: StoreConfig{
			Driver: getEnv("STORE_DRIVER", StoreDriverPostgres),
		},
		DB: PostgresConfig{
			Host:        getEnv("POSTGRES_HOST", "localhost"),
			Port:        getEnvAsInt("POSTGRES_PORT", 5432),
			User:        getEnv("POSTGRES_USER", "postgres"),
			Password:    getEnv("POSTGRES_PASSWORD", ""),
			DBName:      getEnv("POSTGRES_DB", "postgres"),
			SSLMode:     getEnv("DB_SSLMODE", "disable"),
			MaxConns:    getEnvAsInt("DB_MAX_CONNS", 10),
			OrdersTable: getEnv("ORDERS_TABLE_NAME", "orders"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		Kafka: KafkaConfig{
			Brokers:       splitAndTrim(getEnv("KAFKA_BOOTSTRAP_SERVERS", "localhost:9092")),
			ChannelTopics: channels,
			ConsumerGroup: getEnv("KAFKA_CONSUMER_GROUP", "order-events"),
			EventEncoding: getEnv("EVENT_ENCODING", "json"),
		},
	}

	return cfg, cfg.validate()
}

func (s ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

func (p PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		p.User,
		p.Password,
		p.Host,
		p.Port,
		p.DBName,
		p.SSLMode,
	)
}

// TopicFor resolves a logical channel name to its physical topic. Resolution
// happens once at process start; a missing mapping is a startup error.
func (k KafkaConfig) TopicFor(channel string) (string, error) {
	topic, ok := k.ChannelTopics[channel]
	if !ok || topic == "" {
		return "", fmt.Errorf("channel %q not found in CHANNEL_TOPICS", channel)
	}
	return topic, nil
}

/* ================= helpers ================= */

func (c *Config) validate() error {
	if c.Server.Port <= 0 {
		return fmt.Errorf("HTTP_PORT is invalid")
	}
	switch c.Store.Driver {
	case StoreDriverPostgres:
		if c.DB.Host == "" || c.DB.User == "" || c.DB.DBName == "" {
			return fmt.Errorf("database config is incomplete")
		}
		if c.DB.OrdersTable == "" {
			return fmt.Errorf("ORDERS_TABLE_NAME is empty")
		}
	case StoreDriverRedis:
		if c.Redis.Addr == "" {
			return fmt.Errorf("REDIS_ADDR is empty")
		}
	default:
		return fmt.Errorf("STORE_DRIVER must be %q or %q", StoreDriverPostgres, StoreDriverRedis)
	}
	if len(c.Kafka.Brokers) == 0 {
		return fmt.Errorf("kafka brokers is empty")
	}
	return nil
}

func parseChannelTopics(raw string) (map[string]string, error) {
	channels := map[string]string{}
	if err := json.Unmarshal([]byte(raw), &channels); err != nil {
		return nil, err
	}
	return channels, nil
}

func getEnv(key, defaultVal string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if v, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if val := strings.TrimSpace(p); val != "" {
			out = append(out, val)
		}
	}
	return out
}
