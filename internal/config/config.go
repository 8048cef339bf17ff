package config

import (
	"os"
	"strconv"
	"strings"
)

type PiercingServiceConfig struct {
	Port        string
	LogDir      string
	PostgresCfg PostgresConfig
	RedisCfg    RedisConfig
	MinioCfg    MinioConfig
	RabbitMQCfg RabbitMQConfig
	SMSCfg      SMSConfig
	CORSCfg     CORSConfig
}

type PostgresConfig struct {
	DBname   string
	Username string
	Password string
	Host     string
	Port     string
	SSLMode  string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type MinioConfig struct {
	MinioURL         string
	MinioAccessKey   string
	MinioSecretKey   string
	MinioLocation    string
	MinioSecure      string
	MinioResourceURL string
}

type RabbitMQConfig struct {
	Host     string
	Username string
	Password string
	Port     string
}

// SMSConfig selects the outbound SMS provider. Provider is "twilio" or
// "gateway"; anything else disables SMS.
type SMSConfig struct {
	Provider          string
	TwilioAccountSID  string
	TwilioAuthToken   string
	TwilioPhoneNumber string
	GatewayHost       string
	GatewayPort       string
	GatewayUsername   string
	GatewayPassword   string
}

type CORSConfig struct {
	AllowOrigins []string
}

func New() *PiercingServiceConfig {
	return &PiercingServiceConfig{
		Port:   getEnvOrDefault("PIERCING_SERVICE_PORT", "8000"),
		LogDir: getEnvOrDefault("LOG_DIR", "/piercing/log/piercing_service"),
		PostgresCfg: PostgresConfig{
			DBname:   getEnvOrDefault("POSTGRES_DB", "piercing_studio"),
			Username: getEnvOrDefault("POSTGRES_USER", "postgres"),
			Password: getEnvOrDefault("POSTGRES_PASSWORD", "postgres"),
			Host:     getEnvOrDefault("POSTGRES_HOST", "localhost"),
			Port:     getEnvOrDefault("POSTGRES_PORT", "5432"),
			SSLMode:  getEnvOrDefault("POSTGRES_SSLMODE", "disable"),
		},
		RedisCfg: RedisConfig{
			Host:     getEnvOrDefault("REDIS_HOST", "localhost"),
			Port:     getEnvOrDefault("REDIS_PORT", "6379"),
			Password: getEnvOrDefault("REDIS_PASSWORD", ""),
			DB:       getEnvIntOrDefault("REDIS_DB", 0),
		},
		MinioCfg: MinioConfig{
			MinioURL:         getEnvOrDefault("MINIO_ENDPOINT", "http://localhost:9000"),
			MinioAccessKey:   getEnvOrDefault("MINIO_ACCESS_KEY", "minio"),
			MinioSecretKey:   getEnvOrDefault("MINIO_SECRET_KEY", "minio123"),
			MinioLocation:    getEnvOrDefault("MINIO_LOCATION", "us-west-2"),
			MinioSecure:      getEnvOrDefault("MINIO_SECURE", "false"),
			MinioResourceURL: getEnvOrDefault("MINIO_RESOURCE_URL", "http://localhost:9000/"),
		},
		RabbitMQCfg: RabbitMQConfig{
			Host:     getEnvOrDefault("RABBITMQ_HOST", "rabbitmq"),
			Username: getEnvOrDefault("RABBITMQ_USER", "admin"),
			Password: getEnvOrDefault("RABBITMQ_PWD", "admin"),
			Port:     getEnvOrDefault("RABBITMQ_PORT", "5672"),
		},
		SMSCfg: SMSConfig{
			Provider:          getEnvOrDefault("SMS_PROVIDER", "twilio"),
			TwilioAccountSID:  getEnvOrDefault("TWILIO_ACCOUNT_SID", ""),
			TwilioAuthToken:   getEnvOrDefault("TWILIO_AUTH_TOKEN", ""),
			TwilioPhoneNumber: getEnvOrDefault("TWILIO_PHONE_NUMBER", ""),
			GatewayHost:       getEnvOrDefault("PHONE_HOST", ""),
			GatewayPort:       getEnvOrDefault("PHONE_PORT", ""),
			GatewayUsername:   getEnvOrDefault("PHONE_USERNAME", ""),
			GatewayPassword:   getEnvOrDefault("PHONE_PASSWORD", ""),
		},
		CORSCfg: CORSConfig{
			AllowOrigins: splitList(getEnvOrDefault("CORS_ALLOW_ORIGINS", "*")),
		},
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
