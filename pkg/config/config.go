package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port                    string
	Env                     string
	FirebaseCredentialsPath string
	PostgresConnStr         string
	MongoURI                string
	JWTSecret               string
	AdminEmail              string
	RecaptchaSecret         string
	RecaptchaVerifyURL      string
	RecaptchaMinScore       float64
}

func Load() *Config {
	return &Config{
		Port:                    getEnv("PORT", "8080"),
		Env:                     getEnv("ENV", "development"),
		FirebaseCredentialsPath: getEnv("FIREBASE_CREDENTIALS_PATH", "./firebase_credentials.json"),
		PostgresConnStr:         getEnv("POSTGRES_CONN_STR", ""),
		MongoURI:                getEnv("MONGO_URI", ""),
		JWTSecret:               getEnv("JWT_SECRET", "supersecretjwtkey"),
		AdminEmail:              getEnv("ADMIN_EMAIL", "geral@stagelink.pt"),
		RecaptchaSecret:         getEnv("RECAPTCHA_SECRET", ""),
		RecaptchaVerifyURL:      getEnv("RECAPTCHA_VERIFY_URL", ""),
		RecaptchaMinScore:       getEnvFloat("RECAPTCHA_MIN_SCORE", 0.5),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}
