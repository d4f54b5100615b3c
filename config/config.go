package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string
	Env  string

	MongoURL  string
	MongoDB   string
	RedisURL  string
	CartTTL   time.Duration
	CartSlots string // "redis" or "file"
	StateDir  string

	KafkaBrokers []string
	KafkaTopic   string

	JWTSecret string

	StripeSecretKey string

	EmailJSBaseURL    string
	EmailJSServiceID  string
	EmailJSTemplateID string
	EmailJSPublicKey  string

	CORSOrigins []string

	RateLimitMax      int
	LoginRateLimitMax int
}

func Load() Config {
	// Missing .env is fine, system env wins anyway.
	_ = godotenv.Load()

	return Config{
		Port: getEnv("PORT", "8080"),
		Env:  getEnv("APP_ENV", "development"),

		MongoURL:  getEnv("MONGO_URL", "mongodb://localhost:27017"),
		MongoDB:   getEnv("MONGO_DB", "taketwo"),
		RedisURL:  getEnv("REDIS_URL", "redis://localhost:6379"),
		CartTTL:   time.Hour * 24 * 7,
		CartSlots: getEnv("CART_BACKEND", "redis"),
		StateDir:  getEnv("CART_STATE_DIR", "./data/carts"),

		KafkaBrokers: strings.Split(getEnv("KAFKA_BROKERS", "localhost:9092"), ","),
		KafkaTopic:   getEnv("KAFKA_TOPIC", "order.created"),

		JWTSecret: getEnv("JWT_SECRET", "dev-secret-change-me"),

		StripeSecretKey: getEnv("STRIPE_SECRET_KEY", ""),

		EmailJSBaseURL:    getEnv("EMAILJS_BASE_URL", "https://api.emailjs.com"),
		EmailJSServiceID:  getEnv("EMAILJS_SERVICE_ID", ""),
		EmailJSTemplateID: getEnv("EMAILJS_TEMPLATE_ID", ""),
		EmailJSPublicKey:  getEnv("EMAILJS_PUBLIC_KEY", ""),

		CORSOrigins: strings.Split(getEnv("CORS_ORIGIN", "http://localhost:3000"), ","),

		RateLimitMax:      getEnvInt("RATE_LIMIT_MAX", 100),
		LoginRateLimitMax: getEnvInt("LOGIN_RATE_LIMIT_MAX", 5),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return defaultVal
}
