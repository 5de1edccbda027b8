package config

import (
	"errors"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
	Speech   SpeechConfig
	Vision   VisionConfig
	Detector DetectorConfig
}

type AppConfig struct {
	Name        string
	Version     string
	Environment string
}

type ServerConfig struct {
	Port string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

type JWTConfig struct {
	SecretKey string
}

type RedisConfig struct {
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	RedisPoolSize int
}

type KafkaConfig struct {
	Enabled   bool
	Brokers   []string
	SaleTopic string
}

type SpeechConfig struct {
	APIKey   string
	APIURL   string
	Language string
}

type VisionConfig struct {
	APIKey string
	APIURL string
}

type DetectorConfig struct {
	PairingKey string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, errors.New("invalid redis database")
	}

	redisPoolSize, err := strconv.Atoi(getEnv("REDIS_POOL_SIZE", "10"))
	if err != nil || redisPoolSize < 1 {
		return nil, errors.New("invalid redis pool size")
	}

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "SmartShop API"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			Environment: getEnv("APP_ENV", "development"),
		},
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "smartshop"),
			SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		},
		JWT: JWTConfig{
			SecretKey: getEnv("JWT_SECRET", ""),
		},
		Redis: RedisConfig{
			RedisHost:     getEnv("REDIS_HOST", "localhost"),
			RedisPort:     getEnv("REDIS_PORT", "6379"),
			RedisPassword: getEnv("REDIS_PASSWORD", ""),
			RedisDB:       redisDB,
			RedisPoolSize: redisPoolSize,
		},
		Kafka: KafkaConfig{
			Enabled:   getEnv("KAFKA_ENABLED", "false") == "true",
			Brokers:   splitList(getEnv("KAFKA_BROKERS", "localhost:9092")),
			SaleTopic: getEnv("KAFKA_SALE_TOPIC", "smartshop.sales"),
		},
		Speech: SpeechConfig{
			APIKey:   getEnv("SPEECH_API_KEY", ""),
			APIURL:   getEnv("SPEECH_API_URL", "https://api.openai.com"),
			Language: getEnv("SPEECH_LANGUAGE", "en"),
		},
		Vision: VisionConfig{
			APIKey: getEnv("VISION_API_KEY", ""),
			APIURL: getEnv("VISION_API_URL", ""),
		},
		Detector: DetectorConfig{
			PairingKey: getEnv("DETECTOR_PAIRING_KEY", ""),
		},
	}

	if cfg.JWT.SecretKey == "" {
		return nil, errors.New("missing jwt secret")
	}

	if cfg.Database.Password == "" {
		return nil, errors.New("missing database password")
	}

	if cfg.Detector.PairingKey == "" {
		return nil, errors.New("missing detector pairing key")
	}

	if cfg.Kafka.Enabled && len(cfg.Kafka.Brokers) == 0 {
		return nil, errors.New("kafka enabled but no brokers configured")
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}

	return defaultVal
}

func splitList(val string) []string {
	parts := strings.Split(val, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
