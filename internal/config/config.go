package config

import (
	"log"
	"os"
	"strconv"
)

type Config struct {
	Port           string
	LogDir         string
	MongoURI       string
	MongoDatabase  string
	JWTSecret      string
	JWTExpired     int64 // minutes
	ConsulAddress  string
	ServiceName    string
	ServiceID      string
	ServiceAddress string
	RabbitMQURI    string
	Redis          RedisConfig
	SMTP           SMTPConfig

	// Two-factor challenge tuning. MaxAttempts is 0 by default, which keeps
	// the original unlimited-attempts behavior; a positive value enables the
	// redis-backed limiter.
	TwoFactorCodeTTL     int64 // minutes
	TwoFactorMaxAttempts int
}

type RedisConfig struct {
	Address  string
	Password string
	DB       int
}

type SMTPConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
}

func New() *Config {
	jwtExpired, _ := strconv.Atoi(getEnv("TOKEN_EXPIRY_MINUTES", "60"))
	codeTTL, _ := strconv.Atoi(getEnv("TWO_FACTOR_CODE_TTL_MINUTES", "15"))
	maxAttempts, _ := strconv.Atoi(getEnv("TWO_FACTOR_MAX_ATTEMPTS", "0"))
	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))

	return &Config{
		Port:           getEnv("PORT", "3000"),
		LogDir:         getEnv("LOG_DIR", ""),
		MongoURI:       getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase:  getEnv("MONGO_DB", "cyber_sensei"),
		JWTSecret:      getEnv("JWT_SECRET", ""),
		JWTExpired:     int64(jwtExpired),
		ConsulAddress:  getEnv("CONSUL_ADDR", ""),
		ServiceName:    getEnv("SERVICE_NAME", "learning-service"),
		ServiceID:      getEnv("SERVICE_NAME", "learning-service") + "-" + getEnv("HOSTNAME", "1"),
		ServiceAddress: getEnv("SERVICE_ADDRESS", "learning-service"),
		RabbitMQURI:    getEnv("RABBITMQ_URI", ""),
		Redis: RedisConfig{
			Address:  getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PWD", ""),
			DB:       redisDB,
		},
		SMTP: SMTPConfig{
			Host:     getEnv("SMTP_HOST", ""),
			Port:     getEnv("SMTP_PORT", "587"),
			Username: getEnv("SMTP_USERNAME", ""),
			Password: getEnv("SMTP_PASSWORD", ""),
			From:     getEnv("SMTP_FROM", ""),
		},
		TwoFactorCodeTTL:     int64(codeTTL),
		TwoFactorMaxAttempts: maxAttempts,
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	log.Printf("ENV %s not set, using fallback", key)
	return fallback
}
