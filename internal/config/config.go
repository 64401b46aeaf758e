package config

import (
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds runtime settings read from the environment.
type Config struct {
	AppEnv  string
	AppPort string

	DatabaseDriver string
	DatabaseDSN    string

	JWTSecret   string
	RabbitMQURL string

	CloudinaryCloudName string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string
	CloudinaryFolder    string

	BodyLimitMB int
}

// Load reads an optional .env file and then the process environment.
// Storage credentials and the JWT secret have no defaults; a missing value
// surfaces the first time it is used.
func Load() *Config {
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("APP_PORT", ":8080")
	v.SetDefault("DATABASE_DRIVER", "postgres")
	v.SetDefault("DATABASE_DSN", "host=127.0.0.1 user=postgres password=postgres dbname=storefront port=5432 sslmode=disable")
	v.SetDefault("CLOUDINARY_FOLDER", "ecommerce/products")
	v.SetDefault("BODY_LIMIT_MB", 10)
	v.AutomaticEnv()

	return &Config{
		AppEnv:              v.GetString("APP_ENV"),
		AppPort:             v.GetString("APP_PORT"),
		DatabaseDriver:      v.GetString("DATABASE_DRIVER"),
		DatabaseDSN:         v.GetString("DATABASE_DSN"),
		JWTSecret:           v.GetString("JWT_SECRET"),
		RabbitMQURL:         v.GetString("RABBITMQ_URL"),
		CloudinaryCloudName: v.GetString("CLOUDINARY_CLOUD_NAME"),
		CloudinaryAPIKey:    v.GetString("CLOUDINARY_API_KEY"),
		CloudinaryAPISecret: v.GetString("CLOUDINARY_API_SECRET"),
		CloudinaryFolder:    v.GetString("CLOUDINARY_FOLDER"),
		BodyLimitMB:         v.GetInt("BODY_LIMIT_MB"),
	}
}
