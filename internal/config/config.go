package config

import "os"

type Config struct {
	App      AppConfig
	Postgres PostgresConfig
	Auth     AuthConfig
	S3       S3Config
	Upload   UploadConfig
}

type AppConfig struct {
	Env  string
	Port string
}

type PostgresConfig struct {
	DatabaseURL string
	Host        string
	Port        string
	User        string
	Password    string
	Database    string
	SSLMode     string
}

type AuthConfig struct {
	AccessSecret  string
	RefreshSecret string
	AccessTTL     string
	RefreshTTL    string
	CookieDomain  string
}

type S3Config struct {
	Endpoint      string
	Region        string
	AccessKey     string
	SecretKey     string
	Bucket        string
	PublicBaseURL string
}

type UploadConfig struct {
	TempDir string
}

func Load() Config {
	return Config{
		App: AppConfig{
			Env:  getenv("APP_ENV", "development"),
			Port: getenv("PORT", "8000"),
		},
		Postgres: PostgresConfig{
			DatabaseURL: os.Getenv("DATABASE_URL"),
			Host:        getenv("PGHOST", "localhost"),
			Port:        getenv("PGPORT", "5432"),
			User:        os.Getenv("PGUSER"),
			Password:    os.Getenv("PGPASSWORD"),
			Database:    os.Getenv("PGDATABASE"),
			SSLMode:     getenv("PGSSLMODE", "disable"),
		},
		Auth: AuthConfig{
			AccessSecret:  os.Getenv("ACCESS_TOKEN_SECRET"),
			RefreshSecret: os.Getenv("REFRESH_TOKEN_SECRET"),
			AccessTTL:     getenv("ACCESS_TOKEN_TTL", "4h"),
			RefreshTTL:    getenv("REFRESH_TOKEN_TTL", "168h"),
			CookieDomain:  os.Getenv("AUTH_COOKIE_DOMAIN"),
		},
		S3: S3Config{
			Endpoint:      os.Getenv("S3_ENDPOINT"),
			Region:        getenv("S3_REGION", "us-east-1"),
			AccessKey:     os.Getenv("S3_ACCESS_KEY"),
			SecretKey:     os.Getenv("S3_SECRET_KEY"),
			Bucket:        os.Getenv("S3_BUCKET"),
			PublicBaseURL: os.Getenv("S3_PUBLIC_BASE_URL"),
		},
		Upload: UploadConfig{
			TempDir: getenv("UPLOAD_TEMP_DIR", "./temp"),
		},
	}
}

func getenv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
