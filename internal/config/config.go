package config

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

type S3Config struct {
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	BucketName      string
	Region          string
}

type Config struct {
	Port        string
	DBHost      string
	DBPort      string
	DBName      string
	RedisAddr   string
	FolderPath  string
	Storage     string // "local" or "s3"
	Environment string
	CorsConfig  cors.Options
	S3          S3Config
}

// MongoURI builds the connection string for the metadata store.
func (c Config) MongoURI() string {
	return fmt.Sprintf("mongodb://%s:%s", c.DBHost, c.DBPort)
}

// Load reads configuration from the environment, optionally seeded from a
// .env file. Every setting has a working default for local development.
func Load() Config {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil {
		log.Println("No", envFile, "file found")
	}

	return Config{
		Port:        getEnv("PORT", "5000"),
		DBHost:      getEnv("DB_HOST", "localhost"),
		DBPort:      getEnv("DB_PORT", "27017"),
		DBName:      getEnv("DB_DATABASE", "files_manager"),
		RedisAddr:   getEnv("REDIS_ADDR", "localhost:6379"),
		FolderPath:  getEnv("FOLDER_PATH", "/tmp/files_manager"),
		Storage:     getEnv("STORAGE_BACKEND", "local"),
		Environment: getEnv("ENV", "development"),
		CorsConfig:  CorsConfig(),
		S3: S3Config{
			Endpoint:        getEnv("S3_ENDPOINT", ""),
			AccessKeyID:     getEnv("S3_ACCESS_KEY_ID", ""),
			SecretAccessKey: getEnv("S3_SECRET_ACCESS_KEY", ""),
			BucketName:      getEnv("S3_BUCKET_NAME", ""),
			Region:          getEnv("S3_REGION", "auto"),
		},
	}
}

// Gets the env by key or fallbacks
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func CorsConfig() cors.Options {
	return cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
	}
}
