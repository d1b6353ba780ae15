package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort     string `mapstructure:"APP_PORT"`
	Env         string `mapstructure:"ENV"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`
	CorsOrigins string `mapstructure:"CORS_ORIGINS"`

	// Booking policy.
	MinStayNights int `mapstructure:"MIN_STAY_NIGHTS"`

	// Catalog source: "default", "file" or "mysql".
	CatalogSource string `mapstructure:"CATALOG_SOURCE"`
	CatalogFile   string `mapstructure:"CATALOG_FILE"`

	// MySQL catalog source configuration.
	MySQLURL string `mapstructure:"MYSQL_URL"`
	DBUser   string `mapstructure:"DB_USER"`
	DBPass   string `mapstructure:"DB_PASS"`
	DBHost   string `mapstructure:"DB_HOST"`
	DBPort   string `mapstructure:"DB_PORT"`
	DBName   string `mapstructure:"DB_NAME"`
}

var AppConfig Config

// LoadConfig reads config.yaml (current dir or ./config) when present
// and lets environment variables override everything.
func LoadConfig() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AutomaticEnv()

	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("CORS_ORIGINS", "")
	viper.SetDefault("MIN_STAY_NIGHTS", 1)
	viper.SetDefault("CATALOG_SOURCE", "default")
	viper.SetDefault("CATALOG_FILE", "data/rooms.yaml")
	viper.SetDefault("MYSQL_URL", "")
	viper.SetDefault("DB_USER", "root")
	viper.SetDefault("DB_PASS", "")
	viper.SetDefault("DB_HOST", "127.0.0.1")
	viper.SetDefault("DB_PORT", "3306")
	viper.SetDefault("DB_NAME", "hotel_booking")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
