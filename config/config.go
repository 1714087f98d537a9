package config

import (
	"net"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App             AppConfig
	DB              DBConfig
	Redis           RedisConfig
	JWT             JWTConfig
	AppointmentsAPI AppointmentsAPIConfig
	Editor          EditorConfig
}

type AppConfig struct {
	Port     string
	Env      string
	Timezone string
	LogLevel string
	// CORSAllowedOrigins is comma separated in the environment
	CORSAllowedOrigins []string
}

type DBConfig struct {
	Host        string
	Port        string
	User        string
	Password    string
	Name        string
	AutoMigrate bool
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret       string
	AccessExpiry time.Duration
}

// AppointmentsAPIConfig points at the REST API that owns appointments
type AppointmentsAPIConfig struct {
	URL      string
	Username string
	Password string
	Timeout  time.Duration
}

// EditorConfig holds the appointment editor feature switches
type EditorConfig struct {
	EnableSpecialities             bool
	IsServiceOnAppointmentEditable bool
	DraftTTL                       time.Duration
}

// LoadConfig reads .env from the working directory, then the environment
func LoadConfig() (*Config, error) {
	return Load(".env")
}

// Load reads envFile when it exists; environment variables always win
func Load(envFile string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	if envFile != "" {
		if _, err := os.Stat(envFile); err == nil {
			v.SetConfigFile(envFile)
			v.SetConfigType("env")
			if err := v.ReadInConfig(); err != nil {
				return nil, err
			}
		}
	}

	config := &Config{
		App: AppConfig{
			Port:               v.GetString("APP_PORT"),
			Env:                v.GetString("APP_ENV"),
			Timezone:           v.GetString("APP_TIMEZONE"),
			LogLevel:           v.GetString("LOG_LEVEL"),
			CORSAllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
		DB: DBConfig{
			Host:        v.GetString("DB_HOST"),
			Port:        v.GetString("DB_PORT"),
			User:        v.GetString("DB_USER"),
			Password:    v.GetString("DB_PASSWORD"),
			Name:        v.GetString("DB_NAME"),
			AutoMigrate: v.GetBool("DB_AUTO_MIGRATE"),
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetString("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret:       v.GetString("JWT_SECRET"),
			AccessExpiry: durationOr(v.GetString("JWT_ACCESS_EXPIRY"), 15*time.Minute),
		},
		AppointmentsAPI: AppointmentsAPIConfig{
			URL:      v.GetString("APPOINTMENTS_API_URL"),
			Username: v.GetString("APPOINTMENTS_API_USERNAME"),
			Password: v.GetString("APPOINTMENTS_API_PASSWORD"),
			Timeout:  durationOr(v.GetString("APPOINTMENTS_API_TIMEOUT"), 10*time.Second),
		},
		Editor: EditorConfig{
			EnableSpecialities:             v.GetBool("ENABLE_SPECIALITIES"),
			IsServiceOnAppointmentEditable: v.GetBool("IS_SERVICE_ON_APPOINTMENT_EDITABLE"),
			DraftTTL:                       durationOr(v.GetString("EDITOR_DRAFT_TTL"), 2*time.Hour),
		},
	}

	return config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("APP_TIMEZONE", "UTC")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("DB_AUTO_MIGRATE", false)
	v.SetDefault("ENABLE_SPECIALITIES", false)
	v.SetDefault("IS_SERVICE_ON_APPOINTMENT_EDITABLE", false)
}

func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

func durationOr(value string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return d
}

// Location resolves the configured time zone, falling back to UTC
func (c *AppConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// DSN builds the postgres connection string for both gorm and migrate
func (c *DBConfig) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     net.JoinHostPort(c.Host, c.Port),
		Path:     "/" + c.Name,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}
