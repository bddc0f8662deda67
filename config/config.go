package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"tutorhub/models"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Auth. When AuthRequired is false, requests without a token use DefaultNamespace.
	JWTSecret        string `mapstructure:"JWT_SECRET"`
	AuthRequired     bool   `mapstructure:"AUTH_REQUIRED"`
	DefaultNamespace string `mapstructure:"DEFAULT_NAMESPACE"`

	// Record storage: "file", "redis", "mongo" or "memory".
	StorageDriver    string `mapstructure:"STORAGE_DRIVER"`
	StorageKeyPrefix string `mapstructure:"STORAGE_KEY_PREFIX"`
	DataDir          string `mapstructure:"DATA_DIR"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int    `mapstructure:"REDIS_DB"`

	// MongoDB configuration.
	DatabaseURL   string `mapstructure:"DATABASE_URL"`
	MongoDatabase string `mapstructure:"MONGO_DATABASE"`

	// Availability editor.
	OpenHour            int    `mapstructure:"OPEN_HOUR"`
	CloseHour           int    `mapstructure:"CLOSE_HOUR"`
	DefaultWeekdaySlots string `mapstructure:"DEFAULT_WEEKDAY_SLOTS"`
	Timezone            string `mapstructure:"TIMEZONE"`
	NoticeTTLMillis     int    `mapstructure:"NOTICE_TTL_MS"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	SetDefaults(viper.GetViper())

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

// SetDefaults registers every default on v. Unmarshal only sees keys viper
// knows about, so env-only settings need a default to be picked up.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("AUTH_REQUIRED", false)
	v.SetDefault("DEFAULT_NAMESPACE", "default")
	v.SetDefault("STORAGE_DRIVER", "file")
	v.SetDefault("STORAGE_KEY_PREFIX", "tutor_availability")
	v.SetDefault("DATA_DIR", "./data")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	v.SetDefault("MONGO_DATABASE", "tutoring")
	v.SetDefault("OPEN_HOUR", 7)
	v.SetDefault("CLOSE_HOUR", 21)
	v.SetDefault("DEFAULT_WEEKDAY_SLOTS", "09:00,10:00,11:00,14:00,15:00,16:00")
	v.SetDefault("TIMEZONE", "UTC")
	v.SetDefault("NOTICE_TTL_MS", 3000)
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}

// WeekdayDefaults splits DEFAULT_WEEKDAY_SLOTS into its entries.
func (c Config) WeekdayDefaults() []string {
	var out []string
	for _, part := range strings.Split(c.DefaultWeekdaySlots, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Location resolves TIMEZONE, falling back to UTC.
func (c Config) Location() *time.Location {
	if c.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		log.Printf("Unknown TIMEZONE %q, using UTC", c.Timezone)
		return time.UTC
	}
	return loc
}

// NoticeTTL is how long a confirmation stays visible before auto-dismissing.
func (c Config) NoticeTTL() time.Duration {
	return time.Duration(c.NoticeTTLMillis) * time.Millisecond
}

// Window is the operating window OPEN_HOUR and CLOSE_HOUR describe.
func (c Config) Window() models.OperatingWindow {
	return models.OperatingWindow{OpenHour: c.OpenHour, CloseHour: c.CloseHour}
}

// Validate fails when the window is empty or a default weekday slot falls
// outside it; either would only surface on the first template request.
func (c Config) Validate() error {
	w := c.Window()
	if !w.Valid() {
		return fmt.Errorf("invalid operating window %d-%d", c.OpenHour, c.CloseHour)
	}
	for _, slot := range c.WeekdayDefaults() {
		if !w.Contains(slot) {
			return fmt.Errorf("DEFAULT_WEEKDAY_SLOTS entry %q is outside %02d:00-%02d:00", slot, c.OpenHour, c.CloseHour)
		}
	}
	return nil
}
