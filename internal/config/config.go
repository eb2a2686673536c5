package config

import (
	"os"
	"sync"

	"github.com/joho/godotenv"
	"github.com/khdiyz/common/logger"
	"github.com/spf13/cast"
)

var (
	instance *Config
	once     sync.Once
)

type Config struct {
	GrpcHost string
	GrpcPort int

	// Credentials are not validated here; a bad value surfaces on the first
	// remote call as an authentication error.
	CloudinaryCloudName string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string

	CloudinaryUploadFolder string
	CloudinaryUploadPrefix string
	CloudinarySecure       bool
}

// LoadEnvFile copies .env into the process environment without overriding
// variables already set. It runs before the logger is created so that
// LOG_LEVEL from .env applies.
func LoadEnvFile() error {
	return godotenv.Load(".env")
}

func GetConfig(log *logger.Logger) *Config {
	once.Do(func() {
		instance = Load()
		log.Infow("Configuration loaded",
			"grpc_host", instance.GrpcHost,
			"grpc_port", instance.GrpcPort,
			"cloudinary_cloud_name", instance.CloudinaryCloudName,
			"cloudinary_upload_folder", instance.CloudinaryUploadFolder,
		)
	})
	return instance
}

// Load reads the configuration from the process environment.
func Load() *Config {
	return &Config{
		GrpcHost: cast.ToString(getOrReturnDefault("GRPC_HOST", "localhost")),
		GrpcPort: cast.ToInt(getOrReturnDefault("GRPC_PORT", 5051)),

		CloudinaryCloudName: cast.ToString(getOrReturnDefault("CLOUDINARY_CLOUD_NAME", "")),
		CloudinaryAPIKey:    cast.ToString(getOrReturnDefault("CLOUDINARY_API_KEY", "")),
		CloudinaryAPISecret: cast.ToString(getOrReturnDefault("CLOUDINARY_API_SECRET", "")),

		CloudinaryUploadFolder: cast.ToString(getOrReturnDefault("CLOUDINARY_UPLOAD_FOLDER", "products")),
		CloudinaryUploadPrefix: cast.ToString(getOrReturnDefault("CLOUDINARY_UPLOAD_PREFIX", "")),
		CloudinarySecure:       cast.ToBool(getOrReturnDefault("CLOUDINARY_SECURE", true)),
	}
}

func getOrReturnDefault(key string, defaultValue any) any {
	val, exists := os.LookupEnv(key)
	if exists {
		return val
	}
	return defaultValue
}
