package utils

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type AuthConfig struct {
	JWTSecret   string
	JWTIssuer   string
	JWTDuration time.Duration
}

// StorageConfig describes the object-storage bucket uploads land in.
// Endpoint is only set for S3-compatible stores (MinIO etc.).
type StorageConfig struct {
	Bucket    string
	Region    string
	Endpoint  string
	AccessKey string
	SecretKey string
}

// BaseURL is the public storage-domain prefix that stored asset URLs carry.
func (s StorageConfig) BaseURL() string {
	if s.Endpoint != "" {
		return strings.TrimRight(s.Endpoint, "/") + "/" + s.Bucket
	}
	if s.Region != "" {
		return fmt.Sprintf("https://%s.s3.%s.amazonaws.com", s.Bucket, s.Region)
	}
	return fmt.Sprintf("https://%s.s3.amazonaws.com", s.Bucket)
}

type Config struct {
	Port       string
	CDNBaseURL string
	Auth       AuthConfig
	Storage    StorageConfig
}

func Load() Config {
	_ = godotenv.Load() // .env is optional

	return Config{
		Port:       getEnv("WISSEN_PORT", "8080"),
		CDNBaseURL: strings.TrimRight(os.Getenv("WISSEN_CDN_BASE_URL"), "/"),
		Auth:       LoadAuthConfig(),
		Storage: StorageConfig{
			Bucket:    getEnv("WISSEN_S3_BUCKET", "wissen-uploads"),
			Region:    os.Getenv("WISSEN_S3_REGION"),
			Endpoint:  os.Getenv("WISSEN_S3_ENDPOINT"),
			AccessKey: os.Getenv("WISSEN_S3_ACCESS_KEY"),
			SecretKey: os.Getenv("WISSEN_S3_SECRET_KEY"),
		},
	}
}

func LoadAuthConfig() AuthConfig {
	secret := os.Getenv("WISSEN_JWT_SECRET")
	if secret == "" {
		// dev default (change for demo / production)
		secret = "dev-secret-change-me"
	}

	issuer := os.Getenv("WISSEN_JWT_ISSUER")
	if issuer == "" {
		issuer = "wissen"
	}

	ttl := 24 * time.Hour
	if raw := os.Getenv("WISSEN_JWT_TTL_HOURS"); raw != "" {
		if hours, err := strconv.Atoi(raw); err == nil && hours > 0 {
			ttl = time.Duration(hours) * time.Hour
		}
	}

	return AuthConfig{
		JWTSecret:   secret,
		JWTIssuer:   issuer,
		JWTDuration: ttl,
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}
